// Package fornecedores implementa o cadastro de fornecedores.
package fornecedores

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"propostasrest/internal/config"
	"propostasrest/internal/models/dto"
	"propostasrest/internal/models/entities"
	"propostasrest/internal/repositories/postgres"
	"propostasrest/internal/service/audit"

	"github.com/gin-gonic/gin"
)

// ListFornecedores lista os fornecedores, mais recentes primeiro
// @Summary      Listar fornecedores
// @Tags         fornecedores
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} entities.Fornecedor
// @Failure      500 {object} dto.ErrorResponse "Internal Server Error"
// @Router       /fornecedores [get]
func ListFornecedores(cfg *config.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		fornecedores, err := cfg.DB.ListFornecedores(c.Request.Context())
		if err != nil {
			cfg.Logger.Error("failed to list fornecedores", err)
			c.JSON(http.StatusInternalServerError,
				dto.NewErrorResponse(c, http.StatusInternalServerError,
					"Internal Server Error", "Erro ao buscar fornecedores", nil))
			return
		}
		c.JSON(http.StatusOK, fornecedores)
	}
}

// CreateFornecedor cadastra um fornecedor
// @Summary      Criar fornecedor
// @Description  O nome é único sem distinção de maiúsculas.
// @Tags         fornecedores
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        fornecedor body dto.CreateFornecedorRequest true "Dados do fornecedor"
// @Success      201 {object} dto.SuccessResponse{data=entities.Fornecedor}
// @Failure      400 {object} dto.ErrorResponse "Bad Request - nome já cadastrado"
// @Failure      500 {object} dto.ErrorResponse "Internal Server Error"
// @Router       /fornecedores [post]
func CreateFornecedor(cfg *config.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.CreateFornecedorRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest,
				dto.NewErrorResponse(c, http.StatusBadRequest,
					"Bad Request", "Corpo da requisição inválido", err.Error()))
			return
		}

		nome := strings.TrimSpace(req.Nome)
		if nome == "" {
			c.JSON(http.StatusBadRequest,
				dto.NewErrorResponse(c, http.StatusBadRequest,
					"Bad Request", "Nome é obrigatório", nil))
			return
		}

		ctx := c.Request.Context()

		if _, err := cfg.DB.GetFornecedorByNome(ctx, nome, 0); err == nil {
			c.JSON(http.StatusBadRequest,
				dto.NewErrorResponse(c, http.StatusBadRequest,
					"Bad Request", "Já existe um fornecedor com esse nome", nil))
			return
		} else if !errors.Is(err, postgres.ErrRegistroNaoEncontrado) {
			cfg.Logger.Error("failed to check fornecedor name", err)
			c.JSON(http.StatusInternalServerError,
				dto.NewErrorResponse(c, http.StatusInternalServerError,
					"Internal Server Error", "Erro ao criar fornecedor", nil))
			return
		}

		fornecedor := &entities.Fornecedor{
			Nome:        nome,
			Contato:     req.Contato,
			Whatsapp:    req.Whatsapp,
			Email:       req.Email,
			CNPJ:        req.CNPJ,
			Observacoes: req.Observacoes,
			CreatedAt:   time.Now(),
		}

		if err := cfg.DB.CreateFornecedor(ctx, fornecedor); err != nil {
			cfg.Logger.Error("failed to create fornecedor", err)
			c.JSON(http.StatusInternalServerError,
				dto.NewErrorResponse(c, http.StatusInternalServerError,
					"Internal Server Error", "Erro ao criar fornecedor", nil))
			return
		}

		audit.Record(c, cfg, entities.ActionCreate, entities.EntityFornecedor, fornecedor.Id,
			fmt.Sprintf("Fornecedor criado: %s", fornecedor.Nome))

		c.JSON(http.StatusCreated, dto.NewSuccessResponse(c, fornecedor, "Fornecedor criado com sucesso"))
	}
}

// UpdateFornecedor atualiza campos de um fornecedor
// @Summary      Atualizar fornecedor
// @Description  Atualização parcial. A troca de nome respeita a unicidade sem distinção de maiúsculas.
// @Tags         fornecedores
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Id do fornecedor"
// @Param        fornecedor body dto.UpdateFornecedorRequest true "Campos a atualizar"
// @Success      200 {object} dto.SuccessResponse
// @Failure      400 {object} dto.ErrorResponse "Bad Request - nome já cadastrado"
// @Failure      500 {object} dto.ErrorResponse "Internal Server Error"
// @Router       /fornecedores/{id} [put]
func UpdateFornecedor(cfg *config.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest,
				dto.NewErrorResponse(c, http.StatusBadRequest,
					"Bad Request", "Id inválido", nil))
			return
		}

		var req dto.UpdateFornecedorRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest,
				dto.NewErrorResponse(c, http.StatusBadRequest,
					"Bad Request", "Corpo da requisição inválido", err.Error()))
			return
		}

		ctx := c.Request.Context()
		updates := map[string]interface{}{}

		if req.Nome != nil {
			nome := strings.TrimSpace(*req.Nome)
			if nome == "" {
				c.JSON(http.StatusBadRequest,
					dto.NewErrorResponse(c, http.StatusBadRequest,
						"Bad Request", "Nome não pode ficar vazio", nil))
				return
			}
			if _, err := cfg.DB.GetFornecedorByNome(ctx, nome, uint(id)); err == nil {
				c.JSON(http.StatusBadRequest,
					dto.NewErrorResponse(c, http.StatusBadRequest,
						"Bad Request", "Já existe um fornecedor com esse nome", nil))
				return
			} else if !errors.Is(err, postgres.ErrRegistroNaoEncontrado) {
				cfg.Logger.Error("failed to check fornecedor name", err)
				c.JSON(http.StatusInternalServerError,
					dto.NewErrorResponse(c, http.StatusInternalServerError,
						"Internal Server Error", "Erro ao atualizar fornecedor", nil))
				return
			}
			updates["nome"] = nome
		}
		if req.Contato != nil {
			updates["contato"] = *req.Contato
		}
		if req.Whatsapp != nil {
			updates["whatsapp"] = *req.Whatsapp
		}
		if req.Email != nil {
			updates["email"] = *req.Email
		}
		if req.CNPJ != nil {
			updates["cnpj"] = *req.CNPJ
		}
		if req.Observacoes != nil {
			updates["observacoes"] = *req.Observacoes
		}

		if len(updates) == 0 {
			c.JSON(http.StatusBadRequest,
				dto.NewErrorResponse(c, http.StatusBadRequest,
					"Bad Request", "Nenhum campo para atualizar", nil))
			return
		}

		if err := cfg.DB.UpdateFornecedor(ctx, uint(id), updates); err != nil {
			cfg.Logger.Error("failed to update fornecedor", err)
			c.JSON(http.StatusInternalServerError,
				dto.NewErrorResponse(c, http.StatusInternalServerError,
					"Internal Server Error", "Erro ao atualizar fornecedor", nil))
			return
		}

		audit.Record(c, cfg, entities.ActionUpdate, entities.EntityFornecedor, uint(id),
			fmt.Sprintf("Fornecedor atualizado: id %d", id))

		c.JSON(http.StatusOK, dto.NewSuccessResponse(c, nil, "Fornecedor atualizado com sucesso"))
	}
}

// DeleteFornecedor remove um fornecedor
// @Summary      Excluir fornecedor
// @Tags         fornecedores
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Id do fornecedor"
// @Success      200 {object} dto.SuccessResponse
// @Failure      400 {object} dto.ErrorResponse "Bad Request"
// @Failure      500 {object} dto.ErrorResponse "Internal Server Error"
// @Router       /fornecedores/{id} [delete]
func DeleteFornecedor(cfg *config.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest,
				dto.NewErrorResponse(c, http.StatusBadRequest,
					"Bad Request", "Id inválido", nil))
			return
		}

		ctx := c.Request.Context()

		// o nome vai para a auditoria, capturado antes da exclusão;
		// id desconhecido responde 500 com a mesma mensagem genérica
		fornecedor, err := cfg.DB.GetFornecedorByID(ctx, uint(id))
		if err != nil {
			if !errors.Is(err, postgres.ErrRegistroNaoEncontrado) {
				cfg.Logger.Error("failed to load fornecedor", err)
			}
			c.JSON(http.StatusInternalServerError,
				dto.NewErrorResponse(c, http.StatusInternalServerError,
					"Internal Server Error", "Erro ao excluir fornecedor", nil))
			return
		}

		if err := cfg.DB.DeleteFornecedor(ctx, uint(id)); err != nil {
			cfg.Logger.Error("failed to delete fornecedor", err)
			c.JSON(http.StatusInternalServerError,
				dto.NewErrorResponse(c, http.StatusInternalServerError,
					"Internal Server Error", "Erro ao excluir fornecedor", nil))
			return
		}

		audit.Record(c, cfg, entities.ActionDelete, entities.EntityFornecedor, uint(id),
			fmt.Sprintf("Fornecedor removido: %s", fornecedor.Nome))

		c.JSON(http.StatusOK, dto.NewSuccessResponse(c, nil, "Fornecedor removido com sucesso"))
	}
}
