// Package municipios expõe o autocomplete de municípios.
package municipios

import (
	"net/http"
	"strings"

	"propostasrest/internal/config"
	"propostasrest/internal/models/dto"
	"propostasrest/internal/models/entities"

	"github.com/gin-gonic/gin"
)

// termos com menos de 3 caracteres não consultam o banco
const minTermLength = 3

// Search busca municípios para o autocomplete
// @Summary      Buscar municípios
// @Description  Busca por substring no nome ou no nome completo, sem distinção de maiúsculas, limitada a 20 resultados. Termos com menos de 3 caracteres retornam lista vazia.
// @Tags         municipios
// @Produce      json
// @Security     BearerAuth
// @Param        search query string false "Termo de busca"
// @Success      200 {array} entities.Municipio
// @Failure      500 {object} dto.ErrorResponse "Internal Server Error"
// @Router       /municipios [get]
func Search(cfg *config.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		term := strings.TrimSpace(c.Query("search"))
		if len([]rune(term)) < minTermLength {
			c.JSON(http.StatusOK, []entities.Municipio{})
			return
		}

		municipios, err := cfg.DB.SearchMunicipios(c.Request.Context(), term)
		if err != nil {
			cfg.Logger.Error("failed to search municipios", err)
			c.JSON(http.StatusInternalServerError,
				dto.NewErrorResponse(c, http.StatusInternalServerError,
					"Internal Server Error", "Erro ao buscar municípios", nil))
			return
		}

		c.JSON(http.StatusOK, municipios)
	}
}
