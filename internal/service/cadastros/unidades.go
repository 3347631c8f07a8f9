package cadastros

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

// ListUnidades lista as unidades de medida por sigla
// @Summary      Listar unidades de medida
// @Tags         cadastros
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} entities.UnidadeMedida
// @Failure      500 {object} dto.ErrorResponse "Internal Server Error"
// @Router       /unidades [get]
func ListUnidades(cfg *config.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		unidades, err := cfg.DB.ListUnidades(c.Request.Context())
		if err != nil {
			cfg.Logger.Error("failed to list unidades", err)
			c.JSON(http.StatusInternalServerError,
				dto.NewErrorResponse(c, http.StatusInternalServerError,
					"Internal Server Error", "Erro ao buscar unidades", nil))
			return
		}
		c.JSON(http.StatusOK, unidades)
	}
}

// CreateUnidade cria uma unidade de medida
// @Summary      Criar unidade de medida
// @Tags         cadastros
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        unidade body dto.CreateUnidadeRequest true "Dados da unidade"
// @Success      201 {object} dto.SuccessResponse{data=entities.UnidadeMedida}
// @Failure      400 {object} dto.ErrorResponse "Bad Request"
// @Failure      500 {object} dto.ErrorResponse "Internal Server Error"
// @Router       /unidades [post]
func CreateUnidade(cfg *config.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.CreateUnidadeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest,
				dto.NewErrorResponse(c, http.StatusBadRequest,
					"Bad Request", "Corpo da requisição inválido", err.Error()))
			return
		}

		sigla := strings.TrimSpace(req.Sigla)
		if sigla == "" {
			c.JSON(http.StatusBadRequest,
				dto.NewErrorResponse(c, http.StatusBadRequest,
					"Bad Request", "Sigla é obrigatória", nil))
			return
		}

		unidade := &entities.UnidadeMedida{
			Sigla:     sigla,
			Nome:      req.Nome,
			CreatedAt: time.Now(),
		}

		if err := cfg.DB.CreateUnidade(c.Request.Context(), unidade); err != nil {
			cfg.Logger.Error("failed to create unidade", err)
			c.JSON(http.StatusInternalServerError,
				dto.NewErrorResponse(c, http.StatusInternalServerError,
					"Internal Server Error", "Erro ao criar unidade", nil))
			return
		}

		audit.Record(c, cfg, entities.ActionCreate, entities.EntityUnidade, unidade.Id,
			fmt.Sprintf("Unidade criada: %s", unidade.Sigla))

		c.JSON(http.StatusCreated, dto.NewSuccessResponse(c, unidade, "Unidade criada com sucesso"))
	}
}

// DeleteUnidade remove uma unidade sem vínculos
// @Summary      Excluir unidade de medida
// @Description  Remove a unidade caso nenhum produto ou item de proposta a referencie.
// @Tags         cadastros
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Id da unidade"
// @Success      200 {object} dto.SuccessResponse
// @Failure      400 {object} dto.ErrorResponse "Bad Request - unidade em uso"
// @Failure      500 {object} dto.ErrorResponse "Internal Server Error"
// @Router       /unidades/{id} [delete]
func DeleteUnidade(cfg *config.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest,
				dto.NewErrorResponse(c, http.StatusBadRequest,
					"Bad Request", "Id inválido", nil))
			return
		}

		ctx := c.Request.Context()

		emUso, err := cfg.DB.UnidadeEmUso(ctx, uint(id))
		if err != nil {
			cfg.Logger.Error("failed to check unidade usage", err)
			c.JSON(http.StatusInternalServerError,
				dto.NewErrorResponse(c, http.StatusInternalServerError,
					"Internal Server Error", "Erro ao excluir unidade", nil))
			return
		}
		if emUso {
			c.JSON(http.StatusBadRequest,
				dto.NewErrorResponse(c, http.StatusBadRequest,
					"Bad Request", "Unidade em uso por produtos ou itens", nil))
			return
		}

		// a sigla vai para a auditoria, capturada antes da exclusão
		unidade, err := cfg.DB.GetUnidadeByID(ctx, uint(id))
		if err != nil {
			if !errors.Is(err, postgres.ErrRegistroNaoEncontrado) {
				cfg.Logger.Error("failed to load unidade", err)
			}
			c.JSON(http.StatusInternalServerError,
				dto.NewErrorResponse(c, http.StatusInternalServerError,
					"Internal Server Error", "Erro ao excluir unidade", nil))
			return
		}

		if err := cfg.DB.DeleteUnidade(ctx, uint(id)); err != nil {
			cfg.Logger.Error("failed to delete unidade", err)
			c.JSON(http.StatusInternalServerError,
				dto.NewErrorResponse(c, http.StatusInternalServerError,
					"Internal Server Error", "Erro ao excluir unidade", nil))
			return
		}

		audit.Record(c, cfg, entities.ActionDelete, entities.EntityUnidade, uint(id),
			fmt.Sprintf("Unidade removida: %s", unidade.Sigla))

		c.JSON(http.StatusOK, dto.NewSuccessResponse(c, nil, "Unidade removida com sucesso"))
	}
}
