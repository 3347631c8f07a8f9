package healthcheck

import (
	"net/http"

	"propostasrest/internal/config"

	"github.com/gin-gonic/gin"
)

// Health - Healthcheck endpoint
// @Summary      Healthcheck
// @Tags         health
// @Produce      json
// @Success      200 {object} map[string]string
// @Failure      503 {object} map[string]string
// @Router       /healthcheck [get]
func Health(cfg *config.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := cfg.DB.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "DOWN",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status": "OK",
		})
	}
}
