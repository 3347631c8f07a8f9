// Package cadastros expõe os cadastros auxiliares de categorias de
// produto e unidades de medida.
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

// ListCategorias lista as categorias em ordem alfabética
// @Summary      Listar categorias
// @Tags         cadastros
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} entities.CategoriaProduto
// @Failure      500 {object} dto.ErrorResponse "Internal Server Error"
// @Router       /categorias [get]
func ListCategorias(cfg *config.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		categorias, err := cfg.DB.ListCategorias(c.Request.Context())
		if err != nil {
			cfg.Logger.Error("failed to list categorias", err)
			c.JSON(http.StatusInternalServerError,
				dto.NewErrorResponse(c, http.StatusInternalServerError,
					"Internal Server Error", "Erro ao buscar categorias", nil))
			return
		}
		c.JSON(http.StatusOK, categorias)
	}
}

// CreateCategoria cria uma categoria de produto
// @Summary      Criar categoria
// @Tags         cadastros
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        categoria body dto.CreateCategoriaRequest true "Dados da categoria"
// @Success      201 {object} dto.SuccessResponse{data=entities.CategoriaProduto}
// @Failure      400 {object} dto.ErrorResponse "Bad Request"
// @Failure      500 {object} dto.ErrorResponse "Internal Server Error"
// @Router       /categorias [post]
func CreateCategoria(cfg *config.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.CreateCategoriaRequest
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

		categoria := &entities.CategoriaProduto{
			Nome:      nome,
			CreatedAt: time.Now(),
		}

		if err := cfg.DB.CreateCategoria(c.Request.Context(), categoria); err != nil {
			cfg.Logger.Error("failed to create categoria", err)
			c.JSON(http.StatusInternalServerError,
				dto.NewErrorResponse(c, http.StatusInternalServerError,
					"Internal Server Error", "Erro ao criar categoria", nil))
			return
		}

		audit.Record(c, cfg, entities.ActionCreate, entities.EntityCategoria, categoria.Id,
			fmt.Sprintf("Categoria criada: %s", categoria.Nome))

		c.JSON(http.StatusCreated, dto.NewSuccessResponse(c, categoria, "Categoria criada com sucesso"))
	}
}

// DeleteCategoria remove uma categoria sem produtos vinculados
// @Summary      Excluir categoria
// @Tags         cadastros
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Id da categoria"
// @Success      200 {object} dto.SuccessResponse
// @Failure      400 {object} dto.ErrorResponse "Bad Request - categoria em uso"
// @Failure      500 {object} dto.ErrorResponse "Internal Server Error"
// @Router       /categorias/{id} [delete]
func DeleteCategoria(cfg *config.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest,
				dto.NewErrorResponse(c, http.StatusBadRequest,
					"Bad Request", "Id inválido", nil))
			return
		}

		ctx := c.Request.Context()

		emUso, err := cfg.DB.CategoriaEmUso(ctx, uint(id))
		if err != nil {
			cfg.Logger.Error("failed to check categoria usage", err)
			c.JSON(http.StatusInternalServerError,
				dto.NewErrorResponse(c, http.StatusInternalServerError,
					"Internal Server Error", "Erro ao excluir categoria", nil))
			return
		}
		if emUso {
			c.JSON(http.StatusBadRequest,
				dto.NewErrorResponse(c, http.StatusBadRequest,
					"Bad Request", "Categoria em uso por produtos", nil))
			return
		}

		// o nome vai para a auditoria, capturado antes da exclusão;
		// id desconhecido cai aqui e responde 500, mantendo o contrato
		// histórico do front
		categoria, err := cfg.DB.GetCategoriaByID(ctx, uint(id))
		if err != nil {
			if !errors.Is(err, postgres.ErrRegistroNaoEncontrado) {
				cfg.Logger.Error("failed to load categoria", err)
			}
			c.JSON(http.StatusInternalServerError,
				dto.NewErrorResponse(c, http.StatusInternalServerError,
					"Internal Server Error", "Erro ao excluir categoria", nil))
			return
		}

		if err := cfg.DB.DeleteCategoria(ctx, uint(id)); err != nil {
			cfg.Logger.Error("failed to delete categoria", err)
			c.JSON(http.StatusInternalServerError,
				dto.NewErrorResponse(c, http.StatusInternalServerError,
					"Internal Server Error", "Erro ao excluir categoria", nil))
			return
		}

		audit.Record(c, cfg, entities.ActionDelete, entities.EntityCategoria, uint(id),
			fmt.Sprintf("Categoria removida: %s", categoria.Nome))

		c.JSON(http.StatusOK, dto.NewSuccessResponse(c, nil, "Categoria removida com sucesso"))
	}
}
