// Package propostas implementa as propostas de fornecedores e seus
// itens precificados.
package propostas

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
	"propostasrest/internal/utils"

	"github.com/gin-gonic/gin"
)

// ListPropostas lista as propostas com licitação, fornecedor e itens
// @Summary      Listar propostas
// @Tags         propostas
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} entities.Proposta
// @Failure      500 {object} dto.ErrorResponse "Internal Server Error"
// @Router       /propostas [get]
func ListPropostas(cfg *config.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		propostas, err := cfg.DB.ListPropostas(c.Request.Context())
		if err != nil {
			cfg.Logger.Error("failed to list propostas", err)
			c.JSON(http.StatusInternalServerError,
				dto.NewErrorResponse(c, http.StatusInternalServerError,
					"Internal Server Error", "Erro ao buscar propostas", nil))
			return
		}
		c.JSON(http.StatusOK, propostas)
	}
}

// GetProposta retorna uma proposta com seus itens
// @Summary      Detalhar proposta
// @Tags         propostas
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Id da proposta"
// @Success      200 {object} entities.Proposta
// @Failure      400 {object} dto.ErrorResponse "Bad Request"
// @Failure      404 {object} dto.ErrorResponse "Not Found"
// @Failure      500 {object} dto.ErrorResponse "Internal Server Error"
// @Router       /propostas/{id} [get]
func GetProposta(cfg *config.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest,
				dto.NewErrorResponse(c, http.StatusBadRequest,
					"Bad Request", "Id inválido", nil))
			return
		}

		proposta, err := cfg.DB.GetPropostaByID(c.Request.Context(), uint(id))
		if errors.Is(err, postgres.ErrRegistroNaoEncontrado) {
			c.JSON(http.StatusNotFound,
				dto.NewErrorResponse(c, http.StatusNotFound,
					"Not Found", "Proposta não encontrada", nil))
			return
		}
		if err != nil {
			cfg.Logger.Error("failed to get proposta", err)
			c.JSON(http.StatusInternalServerError,
				dto.NewErrorResponse(c, http.StatusInternalServerError,
					"Internal Server Error", "Erro ao buscar proposta", nil))
			return
		}

		c.JSON(http.StatusOK, proposta)
	}
}

// CreateProposta cadastra uma proposta
// @Summary      Criar proposta
// @Tags         propostas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        proposta body dto.CreatePropostaRequest true "Dados da proposta"
// @Success      201 {object} dto.SuccessResponse{data=entities.Proposta}
// @Failure      400 {object} dto.ErrorResponse "Bad Request"
// @Failure      500 {object} dto.ErrorResponse "Internal Server Error"
// @Router       /propostas [post]
func CreateProposta(cfg *config.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.CreatePropostaRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest,
				dto.NewErrorResponse(c, http.StatusBadRequest,
					"Bad Request", "Corpo da requisição inválido", err.Error()))
			return
		}

		numero := strings.TrimSpace(req.Numero)
		if numero == "" || req.LicitacaoId == 0 || req.FornecedorId == 0 {
			c.JSON(http.StatusBadRequest,
				dto.NewErrorResponse(c, http.StatusBadRequest,
					"Bad Request", "Número, licitação e fornecedor são obrigatórios", nil))
			return
		}

		proposta := &entities.Proposta{
			Numero:       numero,
			LicitacaoId:  req.LicitacaoId,
			FornecedorId: req.FornecedorId,
			ArquivoURL:   req.ArquivoURL,
			Observacoes:  req.Observacoes,
			CreatedAt:    time.Now(),
		}

		if req.Data != nil && *req.Data != "" {
			data, err := utils.ParseData(*req.Data)
			if err != nil {
				c.JSON(http.StatusBadRequest,
					dto.NewErrorResponse(c, http.StatusBadRequest,
						"Bad Request", "Data inválida", nil))
				return
			}
			proposta.Data = &data
		}

		if err := cfg.DB.CreateProposta(c.Request.Context(), proposta); err != nil {
			cfg.Logger.Error("failed to create proposta", err)
			c.JSON(http.StatusInternalServerError,
				dto.NewErrorResponse(c, http.StatusInternalServerError,
					"Internal Server Error", "Erro ao criar proposta", nil))
			return
		}

		audit.Record(c, cfg, entities.ActionCreate, entities.EntityProposta, proposta.Id,
			fmt.Sprintf("Proposta criada: %s", proposta.Numero))

		c.JSON(http.StatusCreated, dto.NewSuccessResponse(c, proposta, "Proposta criada com sucesso"))
	}
}

// UpdateProposta atualiza uma proposta
// @Summary      Atualizar proposta
// @Tags         propostas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Id da proposta"
// @Param        proposta body dto.UpdatePropostaRequest true "Campos a atualizar"
// @Success      200 {object} dto.SuccessResponse
// @Failure      400 {object} dto.ErrorResponse "Bad Request"
// @Failure      500 {object} dto.ErrorResponse "Internal Server Error"
// @Router       /propostas/{id} [put]
func UpdateProposta(cfg *config.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest,
				dto.NewErrorResponse(c, http.StatusBadRequest,
					"Bad Request", "Id inválido", nil))
			return
		}

		var req dto.UpdatePropostaRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest,
				dto.NewErrorResponse(c, http.StatusBadRequest,
					"Bad Request", "Corpo da requisição inválido", err.Error()))
			return
		}

		updates := map[string]interface{}{}
		if req.Numero != nil {
			numero := strings.TrimSpace(*req.Numero)
			if numero == "" {
				c.JSON(http.StatusBadRequest,
					dto.NewErrorResponse(c, http.StatusBadRequest,
						"Bad Request", "Número não pode ficar vazio", nil))
				return
			}
			updates["numero"] = numero
		}
		if req.LicitacaoId != nil {
			updates["licitacao_id"] = *req.LicitacaoId
		}
		if req.FornecedorId != nil {
			updates["fornecedor_id"] = *req.FornecedorId
		}
		if req.ArquivoURL != nil {
			updates["arquivo_url"] = *req.ArquivoURL
		}
		if req.Observacoes != nil {
			updates["observacoes"] = *req.Observacoes
		}
		if req.Data != nil {
			if *req.Data == "" {
				updates["data"] = nil
			} else {
				data, err := utils.ParseData(*req.Data)
				if err != nil {
					c.JSON(http.StatusBadRequest,
						dto.NewErrorResponse(c, http.StatusBadRequest,
							"Bad Request", "Data inválida", nil))
					return
				}
				updates["data"] = data
			}
		}

		if len(updates) == 0 {
			c.JSON(http.StatusBadRequest,
				dto.NewErrorResponse(c, http.StatusBadRequest,
					"Bad Request", "Nenhum campo para atualizar", nil))
			return
		}

		if err := cfg.DB.UpdateProposta(c.Request.Context(), uint(id), updates); err != nil {
			cfg.Logger.Error("failed to update proposta", err)
			c.JSON(http.StatusInternalServerError,
				dto.NewErrorResponse(c, http.StatusInternalServerError,
					"Internal Server Error", "Erro ao atualizar proposta", nil))
			return
		}

		audit.Record(c, cfg, entities.ActionUpdate, entities.EntityProposta, uint(id),
			fmt.Sprintf("Proposta atualizada: id %d", id))

		c.JSON(http.StatusOK, dto.NewSuccessResponse(c, nil, "Proposta atualizada com sucesso"))
	}
}

// DeleteProposta remove uma proposta e seus itens
// @Summary      Excluir proposta
// @Tags         propostas
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Id da proposta"
// @Success      200 {object} dto.SuccessResponse
// @Failure      400 {object} dto.ErrorResponse "Bad Request"
// @Failure      500 {object} dto.ErrorResponse "Internal Server Error"
// @Router       /propostas/{id} [delete]
func DeleteProposta(cfg *config.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest,
				dto.NewErrorResponse(c, http.StatusBadRequest,
					"Bad Request", "Id inválido", nil))
			return
		}

		ctx := c.Request.Context()

		// o número vai para a auditoria, capturado antes da exclusão
		proposta, err := cfg.DB.GetPropostaByID(ctx, uint(id))
		if err != nil {
			if !errors.Is(err, postgres.ErrRegistroNaoEncontrado) {
				cfg.Logger.Error("failed to load proposta", err)
			}
			c.JSON(http.StatusInternalServerError,
				dto.NewErrorResponse(c, http.StatusInternalServerError,
					"Internal Server Error", "Erro ao excluir proposta", nil))
			return
		}

		if err := cfg.DB.DeleteProposta(ctx, uint(id)); err != nil {
			cfg.Logger.Error("failed to delete proposta", err)
			c.JSON(http.StatusInternalServerError,
				dto.NewErrorResponse(c, http.StatusInternalServerError,
					"Internal Server Error", "Erro ao excluir proposta", nil))
			return
		}

		audit.Record(c, cfg, entities.ActionDelete, entities.EntityProposta, uint(id),
			fmt.Sprintf("Proposta removida: %s", proposta.Numero))

		c.JSON(http.StatusOK, dto.NewSuccessResponse(c, nil, "Proposta removida com sucesso"))
	}
}
