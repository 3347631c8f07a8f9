package propostas

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"propostasrest/internal/config"
	"propostasrest/internal/models/dto"
	"propostasrest/internal/models/entities"
	"propostasrest/internal/service/audit"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// CalcularPrecoTotal calcula quantidade × preço unitário arredondado
// para 2 casas. O valor é persistido na escrita e nunca recalculado na
// leitura.
func CalcularPrecoTotal(quantidade, precoUnitario float64) decimal.Decimal {
	return decimal.NewFromFloat(quantidade).
		Mul(decimal.NewFromFloat(precoUnitario)).
		Round(2)
}

// CreateItem adiciona um item precificado a uma proposta
// @Summary      Criar item de proposta
// @Tags         propostas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        item body dto.CreateItemRequest true "Dados do item"
// @Success      201 {object} dto.SuccessResponse{data=entities.ItemProposta}
// @Failure      400 {object} dto.ErrorResponse "Bad Request"
// @Failure      500 {object} dto.ErrorResponse "Internal Server Error"
// @Router       /itens [post]
func CreateItem(cfg *config.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.CreateItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest,
				dto.NewErrorResponse(c, http.StatusBadRequest,
					"Bad Request", "Corpo da requisição inválido", err.Error()))
			return
		}

		if req.PropostaId == 0 || req.ProdutoId == 0 || req.Quantidade == nil || req.PrecoUnitario == nil {
			c.JSON(http.StatusBadRequest,
				dto.NewErrorResponse(c, http.StatusBadRequest,
					"Bad Request", "Proposta, produto, quantidade e preço unitário são obrigatórios", nil))
			return
		}

		item := &entities.ItemProposta{
			PropostaId:    req.PropostaId,
			ProdutoId:     req.ProdutoId,
			UnidadeId:     req.UnidadeId,
			Quantidade:    *req.Quantidade,
			PrecoUnitario: decimal.NewFromFloat(*req.PrecoUnitario).Round(2),
			PrecoTotal:    CalcularPrecoTotal(*req.Quantidade, *req.PrecoUnitario),
			Observacoes:   req.Observacoes,
			CreatedAt:     time.Now(),
		}

		if err := cfg.DB.CreateItem(c.Request.Context(), item); err != nil {
			cfg.Logger.Error("failed to create item", err)
			c.JSON(http.StatusInternalServerError,
				dto.NewErrorResponse(c, http.StatusInternalServerError,
					"Internal Server Error", "Erro ao criar item", nil))
			return
		}

		audit.Record(c, cfg, entities.ActionCreate, entities.EntityItem, item.Id,
			fmt.Sprintf("Item criado na proposta %d", item.PropostaId))

		c.JSON(http.StatusCreated, dto.NewSuccessResponse(c, item, "Item criado com sucesso"))
	}
}

// UpdateItem atualiza um item de proposta
// @Summary      Atualizar item de proposta
// @Description  Atualização parcial. Quando quantidade ou preço unitário mudam, o preço total é recalculado a partir dos valores resultantes.
// @Tags         propostas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Id do item"
// @Param        item body dto.UpdateItemRequest true "Campos a atualizar"
// @Success      200 {object} dto.SuccessResponse
// @Failure      400 {object} dto.ErrorResponse "Bad Request"
// @Failure      500 {object} dto.ErrorResponse "Internal Server Error"
// @Router       /itens/{id} [put]
func UpdateItem(cfg *config.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest,
				dto.NewErrorResponse(c, http.StatusBadRequest,
					"Bad Request", "Id inválido", nil))
			return
		}

		var req dto.UpdateItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest,
				dto.NewErrorResponse(c, http.StatusBadRequest,
					"Bad Request", "Corpo da requisição inválido", err.Error()))
			return
		}

		ctx := c.Request.Context()

		updates := map[string]interface{}{}
		if req.ProdutoId != nil {
			updates["produto_id"] = *req.ProdutoId
		}
		if req.UnidadeId != nil {
			updates["unidade_id"] = *req.UnidadeId
		}
		if req.Observacoes != nil {
			updates["observacoes"] = *req.Observacoes
		}

		// quantidade ou preço novos exigem o estado atual para
		// recompor o total
		if req.Quantidade != nil || req.PrecoUnitario != nil {
			atual, err := cfg.DB.GetItemByID(ctx, uint(id))
			if err != nil {
				cfg.Logger.Error("failed to get item", err)
				c.JSON(http.StatusInternalServerError,
					dto.NewErrorResponse(c, http.StatusInternalServerError,
						"Internal Server Error", "Erro ao atualizar item", nil))
				return
			}

			quantidade := atual.Quantidade
			if req.Quantidade != nil {
				quantidade = *req.Quantidade
				updates["quantidade"] = quantidade
			}

			precoUnitario, _ := atual.PrecoUnitario.Float64()
			if req.PrecoUnitario != nil {
				precoUnitario = *req.PrecoUnitario
				updates["preco_unitario"] = decimal.NewFromFloat(precoUnitario).Round(2)
			}

			updates["preco_total"] = CalcularPrecoTotal(quantidade, precoUnitario)
		}

		if len(updates) == 0 {
			c.JSON(http.StatusBadRequest,
				dto.NewErrorResponse(c, http.StatusBadRequest,
					"Bad Request", "Nenhum campo para atualizar", nil))
			return
		}

		if err := cfg.DB.UpdateItem(ctx, uint(id), updates); err != nil {
			cfg.Logger.Error("failed to update item", err)
			c.JSON(http.StatusInternalServerError,
				dto.NewErrorResponse(c, http.StatusInternalServerError,
					"Internal Server Error", "Erro ao atualizar item", nil))
			return
		}

		audit.Record(c, cfg, entities.ActionUpdate, entities.EntityItem, uint(id),
			fmt.Sprintf("Item atualizado: id %d", id))

		c.JSON(http.StatusOK, dto.NewSuccessResponse(c, nil, "Item atualizado com sucesso"))
	}
}

// DeleteItem remove um item de proposta
// @Summary      Excluir item de proposta
// @Tags         propostas
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Id do item"
// @Success      200 {object} dto.SuccessResponse
// @Failure      400 {object} dto.ErrorResponse "Bad Request"
// @Failure      500 {object} dto.ErrorResponse "Internal Server Error"
// @Router       /itens/{id} [delete]
func DeleteItem(cfg *config.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest,
				dto.NewErrorResponse(c, http.StatusBadRequest,
					"Bad Request", "Id inválido", nil))
			return
		}

		if err := cfg.DB.DeleteItem(c.Request.Context(), uint(id)); err != nil {
			cfg.Logger.Error("failed to delete item", err)
			c.JSON(http.StatusInternalServerError,
				dto.NewErrorResponse(c, http.StatusInternalServerError,
					"Internal Server Error", "Erro ao excluir item", nil))
			return
		}

		audit.Record(c, cfg, entities.ActionDelete, entities.EntityItem, uint(id),
			fmt.Sprintf("Item removido: id %d", id))

		c.JSON(http.StatusOK, dto.NewSuccessResponse(c, nil, "Item removido com sucesso"))
	}
}
