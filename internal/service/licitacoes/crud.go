// Package licitacoes implementa o cadastro de licitações.
package licitacoes

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

// ListLicitacoes lista as licitações com município e propostas
// @Summary      Listar licitações
// @Tags         licitacoes
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} entities.Licitacao
// @Failure      500 {object} dto.ErrorResponse "Internal Server Error"
// @Router       /licitacoes [get]
func ListLicitacoes(cfg *config.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		licitacoes, err := cfg.DB.ListLicitacoes(c.Request.Context())
		if err != nil {
			cfg.Logger.Error("failed to list licitacoes", err)
			c.JSON(http.StatusInternalServerError,
				dto.NewErrorResponse(c, http.StatusInternalServerError,
					"Internal Server Error", "Erro ao buscar licitações", nil))
			return
		}
		c.JSON(http.StatusOK, licitacoes)
	}
}

// CreateLicitacao cadastra uma licitação
// @Summary      Criar licitação
// @Tags         licitacoes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        licitacao body dto.CreateLicitacaoRequest true "Dados da licitação"
// @Success      201 {object} dto.SuccessResponse{data=entities.Licitacao}
// @Failure      400 {object} dto.ErrorResponse "Bad Request"
// @Failure      500 {object} dto.ErrorResponse "Internal Server Error"
// @Router       /licitacoes [post]
func CreateLicitacao(cfg *config.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.CreateLicitacaoRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest,
				dto.NewErrorResponse(c, http.StatusBadRequest,
					"Bad Request", "Corpo da requisição inválido", err.Error()))
			return
		}

		nome := strings.TrimSpace(req.Nome)
		if nome == "" || req.MunicipioId == 0 {
			c.JSON(http.StatusBadRequest,
				dto.NewErrorResponse(c, http.StatusBadRequest,
					"Bad Request", "Nome e município são obrigatórios", nil))
			return
		}

		licitacao := &entities.Licitacao{
			Nome:        nome,
			MunicipioId: req.MunicipioId,
			CreatedAt:   time.Now(),
		}

		if req.Data != nil && *req.Data != "" {
			data, err := utils.ParseData(*req.Data)
			if err != nil {
				c.JSON(http.StatusBadRequest,
					dto.NewErrorResponse(c, http.StatusBadRequest,
						"Bad Request", "Data inválida", nil))
				return
			}
			licitacao.Data = &data
		}

		if err := cfg.DB.CreateLicitacao(c.Request.Context(), licitacao); err != nil {
			cfg.Logger.Error("failed to create licitacao", err)
			c.JSON(http.StatusInternalServerError,
				dto.NewErrorResponse(c, http.StatusInternalServerError,
					"Internal Server Error", "Erro ao criar licitação", nil))
			return
		}

		audit.Record(c, cfg, entities.ActionCreate, entities.EntityLicitacao, licitacao.Id,
			fmt.Sprintf("Licitação criada: %s", licitacao.Nome))

		c.JSON(http.StatusCreated, dto.NewSuccessResponse(c, licitacao, "Licitação criada com sucesso"))
	}
}

// UpdateLicitacao atualiza uma licitação
// @Summary      Atualizar licitação
// @Tags         licitacoes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Id da licitação"
// @Param        licitacao body dto.UpdateLicitacaoRequest true "Campos a atualizar"
// @Success      200 {object} dto.SuccessResponse
// @Failure      400 {object} dto.ErrorResponse "Bad Request"
// @Failure      500 {object} dto.ErrorResponse "Internal Server Error"
// @Router       /licitacoes/{id} [put]
func UpdateLicitacao(cfg *config.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest,
				dto.NewErrorResponse(c, http.StatusBadRequest,
					"Bad Request", "Id inválido", nil))
			return
		}

		var req dto.UpdateLicitacaoRequest
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
		if req.MunicipioId != nil {
			updates["municipio_id"] = *req.MunicipioId
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

		if err := cfg.DB.UpdateLicitacao(c.Request.Context(), uint(id), updates); err != nil {
			cfg.Logger.Error("failed to update licitacao", err)
			c.JSON(http.StatusInternalServerError,
				dto.NewErrorResponse(c, http.StatusInternalServerError,
					"Internal Server Error", "Erro ao atualizar licitação", nil))
			return
		}

		audit.Record(c, cfg, entities.ActionUpdate, entities.EntityLicitacao, uint(id),
			fmt.Sprintf("Licitação atualizada: id %d", id))

		c.JSON(http.StatusOK, dto.NewSuccessResponse(c, nil, "Licitação atualizada com sucesso"))
	}
}

// DeleteLicitacao remove uma licitação
// @Summary      Excluir licitação
// @Tags         licitacoes
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Id da licitação"
// @Success      200 {object} dto.SuccessResponse
// @Failure      400 {object} dto.ErrorResponse "Bad Request"
// @Failure      500 {object} dto.ErrorResponse "Internal Server Error"
// @Router       /licitacoes/{id} [delete]
func DeleteLicitacao(cfg *config.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest,
				dto.NewErrorResponse(c, http.StatusBadRequest,
					"Bad Request", "Id inválido", nil))
			return
		}

		ctx := c.Request.Context()

		// o nome vai para a auditoria, capturado antes da exclusão
		licitacao, err := cfg.DB.GetLicitacaoByID(ctx, uint(id))
		if err != nil {
			if !errors.Is(err, postgres.ErrRegistroNaoEncontrado) {
				cfg.Logger.Error("failed to load licitacao", err)
			}
			c.JSON(http.StatusInternalServerError,
				dto.NewErrorResponse(c, http.StatusInternalServerError,
					"Internal Server Error", "Erro ao excluir licitação", nil))
			return
		}

		if err := cfg.DB.DeleteLicitacao(ctx, uint(id)); err != nil {
			cfg.Logger.Error("failed to delete licitacao", err)
			c.JSON(http.StatusInternalServerError,
				dto.NewErrorResponse(c, http.StatusInternalServerError,
					"Internal Server Error", "Erro ao excluir licitação", nil))
			return
		}

		audit.Record(c, cfg, entities.ActionDelete, entities.EntityLicitacao, uint(id),
			fmt.Sprintf("Licitação removida: %s", licitacao.Nome))

		c.JSON(http.StatusOK, dto.NewSuccessResponse(c, nil, "Licitação removida com sucesso"))
	}
}
