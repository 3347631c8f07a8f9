// Package produtos implementa o catálogo de produtos.
package produtos

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

// ListProdutos lista os produtos com categoria e unidades
// @Summary      Listar produtos
// @Tags         produtos
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} entities.Produto
// @Failure      500 {object} dto.ErrorResponse "Internal Server Error"
// @Router       /produtos [get]
func ListProdutos(cfg *config.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		produtos, err := cfg.DB.ListProdutos(c.Request.Context())
		if err != nil {
			cfg.Logger.Error("failed to list produtos", err)
			c.JSON(http.StatusInternalServerError,
				dto.NewErrorResponse(c, http.StatusInternalServerError,
					"Internal Server Error", "Erro ao buscar produtos", nil))
			return
		}
		c.JSON(http.StatusOK, produtos)
	}
}

// CreateProduto cadastra um produto
// @Summary      Criar produto
// @Description  A unidade é obrigatória e pode vir como conjunto (unidadeIds), como referência escalar (unidadeId) ou como texto livre (unidade). O texto legado é sincronizado com a sigla da primeira unidade vinculada.
// @Tags         produtos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        produto body dto.CreateProdutoRequest true "Dados do produto"
// @Success      201 {object} dto.SuccessResponse{data=entities.Produto}
// @Failure      400 {object} dto.ErrorResponse "Bad Request"
// @Failure      500 {object} dto.ErrorResponse "Internal Server Error"
// @Router       /produtos [post]
func CreateProduto(cfg *config.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.CreateProdutoRequest
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

		semUnidade := req.UnidadeId == nil && len(req.UnidadeIds) == 0 &&
			(req.UnidadeTexto == nil || strings.TrimSpace(*req.UnidadeTexto) == "")
		if semUnidade {
			c.JSON(http.StatusBadRequest,
				dto.NewErrorResponse(c, http.StatusBadRequest,
					"Bad Request", "Unidade é obrigatória", nil))
			return
		}

		produto := &entities.Produto{
			Nome:         nome,
			CategoriaId:  req.CategoriaId,
			UnidadeId:    req.UnidadeId,
			UnidadeTexto: req.UnidadeTexto,
			CreatedAt:    time.Now(),
		}

		if err := cfg.DB.CreateProduto(c.Request.Context(), produto, req.UnidadeIds); err != nil {
			cfg.Logger.Error("failed to create produto", err)
			c.JSON(http.StatusInternalServerError,
				dto.NewErrorResponse(c, http.StatusInternalServerError,
					"Internal Server Error", "Erro ao criar produto", nil))
			return
		}

		audit.Record(c, cfg, entities.ActionCreate, entities.EntityProduto, produto.Id,
			fmt.Sprintf("Produto criado: %s", produto.Nome))

		c.JSON(http.StatusCreated, dto.NewSuccessResponse(c, produto, "Produto criado com sucesso"))
	}
}

// UpdateProduto atualiza um produto
// @Summary      Atualizar produto
// @Description  Atualização parcial. unidadeIds ausente mantém o conjunto de unidades; presente (mesmo vazio) substitui o conjunto.
// @Tags         produtos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Id do produto"
// @Param        produto body dto.UpdateProdutoRequest true "Campos a atualizar"
// @Success      200 {object} dto.SuccessResponse
// @Failure      400 {object} dto.ErrorResponse "Bad Request"
// @Failure      500 {object} dto.ErrorResponse "Internal Server Error"
// @Router       /produtos/{id} [put]
func UpdateProduto(cfg *config.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest,
				dto.NewErrorResponse(c, http.StatusBadRequest,
					"Bad Request", "Id inválido", nil))
			return
		}

		var req dto.UpdateProdutoRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest,
				dto.NewErrorResponse(c, http.StatusBadRequest,
					"Bad Request", "Corpo da requisição inválido", err.Error()))
			return
		}

		updates := map[string]interface{}{}
		if req.Nome != nil {
			nome := strings.TrimSpace(*req.Nome)
			if nome == "" {
				c.JSON(http.StatusBadRequest,
					dto.NewErrorResponse(c, http.StatusBadRequest,
						"Bad Request", "Nome não pode ficar vazio", nil))
				return
			}
			updates["nome"] = nome
		}
		if req.CategoriaId != nil {
			updates["categoria_id"] = *req.CategoriaId
		}
		if req.UnidadeId != nil {
			updates["unidade_id"] = *req.UnidadeId
		}
		if req.UnidadeTexto != nil {
			updates["unidade_texto"] = *req.UnidadeTexto
		}

		if len(updates) == 0 && req.UnidadeIds == nil {
			c.JSON(http.StatusBadRequest,
				dto.NewErrorResponse(c, http.StatusBadRequest,
					"Bad Request", "Nenhum campo para atualizar", nil))
			return
		}

		if err := cfg.DB.UpdateProduto(c.Request.Context(), uint(id), updates, req.UnidadeIds); err != nil {
			cfg.Logger.Error("failed to update produto", err)
			c.JSON(http.StatusInternalServerError,
				dto.NewErrorResponse(c, http.StatusInternalServerError,
					"Internal Server Error", "Erro ao atualizar produto", nil))
			return
		}

		audit.Record(c, cfg, entities.ActionUpdate, entities.EntityProduto, uint(id),
			fmt.Sprintf("Produto atualizado: id %d", id))

		c.JSON(http.StatusOK, dto.NewSuccessResponse(c, nil, "Produto atualizado com sucesso"))
	}
}

// DeleteProduto remove um produto sem itens de proposta vinculados
// @Summary      Excluir produto
// @Tags         produtos
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Id do produto"
// @Success      200 {object} dto.SuccessResponse
// @Failure      400 {object} dto.ErrorResponse "Bad Request - produto em uso"
// @Failure      500 {object} dto.ErrorResponse "Internal Server Error"
// @Router       /produtos/{id} [delete]
func DeleteProduto(cfg *config.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest,
				dto.NewErrorResponse(c, http.StatusBadRequest,
					"Bad Request", "Id inválido", nil))
			return
		}

		ctx := c.Request.Context()

		emUso, err := cfg.DB.ProdutoEmUso(ctx, uint(id))
		if err != nil {
			cfg.Logger.Error("failed to check produto usage", err)
			c.JSON(http.StatusInternalServerError,
				dto.NewErrorResponse(c, http.StatusInternalServerError,
					"Internal Server Error", "Erro ao excluir produto", nil))
			return
		}
		if emUso {
			c.JSON(http.StatusBadRequest,
				dto.NewErrorResponse(c, http.StatusBadRequest,
					"Bad Request", "Produto em uso por itens de proposta", nil))
			return
		}

		// o nome vai para a auditoria, capturado antes da exclusão
		produto, err := cfg.DB.GetProdutoByID(ctx, uint(id))
		if err != nil {
			if !errors.Is(err, postgres.ErrRegistroNaoEncontrado) {
				cfg.Logger.Error("failed to load produto", err)
			}
			c.JSON(http.StatusInternalServerError,
				dto.NewErrorResponse(c, http.StatusInternalServerError,
					"Internal Server Error", "Erro ao excluir produto", nil))
			return
		}

		if err := cfg.DB.DeleteProduto(ctx, uint(id)); err != nil {
			cfg.Logger.Error("failed to delete produto", err)
			c.JSON(http.StatusInternalServerError,
				dto.NewErrorResponse(c, http.StatusInternalServerError,
					"Internal Server Error", "Erro ao excluir produto", nil))
			return
		}

		audit.Record(c, cfg, entities.ActionDelete, entities.EntityProduto, uint(id),
			fmt.Sprintf("Produto removido: %s", produto.Nome))

		c.JSON(http.StatusOK, dto.NewSuccessResponse(c, nil, "Produto removido com sucesso"))
	}
}
