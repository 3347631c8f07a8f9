package relatorios

import (
	"net/http"

	"propostasrest/internal/config"
	"propostasrest/internal/models/dto"

	"github.com/gin-gonic/gin"
)

// Geral monta o relatório geral achatado
// @Summary      Relatório geral
// @Description  Uma linha por item de proposta, com os dados da proposta repetidos, da mais recente para a mais antiga. Aceita os mesmos filtros da exportação.
// @Tags         relatorios
// @Produce      json
// @Security     BearerAuth
// @Param        search query string false "Busca textual (termos separados por espaço, todos devem casar)"
// @Param        dateStart query string false "Data inicial (inclusive, formato 2006-01-02)"
// @Param        dateEnd query string false "Data final (inclusive, formato 2006-01-02)"
// @Param        municipio query string false "Filtro por município (nome completo, igualdade exata)"
// @Param        fornecedor query string false "Filtro por fornecedor (igualdade exata)"
// @Param        licitacao query string false "Filtro por licitação (igualdade exata)"
// @Success      200 {array} dto.LinhaRelatorio
// @Failure      500 {object} dto.ErrorResponse "Internal Server Error"
// @Router       /relatorios/geral [get]
func Geral(cfg *config.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var filtro dto.FiltroRelatorio
		if err := c.ShouldBindQuery(&filtro); err != nil {
			c.JSON(http.StatusBadRequest,
				dto.NewErrorResponse(c, http.StatusBadRequest,
					"Bad Request", "Filtros inválidos", err.Error()))
			return
		}

		propostas, err := cfg.DB.ListPropostasCompletas(c.Request.Context())
		if err != nil {
			cfg.Logger.Error("failed to load propostas for report", err)
			c.JSON(http.StatusInternalServerError,
				dto.NewErrorResponse(c, http.StatusInternalServerError,
					"Internal Server Error", "Erro ao gerar relatório", nil))
			return
		}

		linhas := Flatten(AplicarFiltros(propostas, filtro))
		OrdenarPorData(linhas)

		c.JSON(http.StatusOK, linhas)
	}
}
