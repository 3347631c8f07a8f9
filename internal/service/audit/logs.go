package audit

import (
	"net/http"

	"propostasrest/internal/config"
	"propostasrest/internal/models/dto"

	"github.com/gin-gonic/gin"
)

// auditLogLimit é quantos registros recentes a listagem devolve
const auditLogLimit = 500

type auditUser struct {
	Id    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type auditEntry struct {
	Id        uint       `json:"id"`
	Action    string     `json:"action"`
	Entity    string     `json:"entity"`
	EntityId  *uint      `json:"entityId,omitempty"`
	Details   *string    `json:"details,omitempty"`
	CreatedAt string     `json:"createdAt"`
	User      *auditUser `json:"user,omitempty"`
}

// ListLogs lista os registros de auditoria mais recentes
// @Summary      Trilha de auditoria
// @Description  Retorna os 500 registros mais recentes da trilha de auditoria, do mais novo para o mais antigo. Somente administradores.
// @Tags         audit
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} auditEntry
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      403 {object} dto.ErrorResponse "Forbidden"
// @Failure      500 {object} dto.ErrorResponse "Internal Server Error"
// @Router       /audit [get]
func ListLogs(cfg *config.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		logs, err := cfg.DB.ListAuditLogs(c.Request.Context(), auditLogLimit)
		if err != nil {
			cfg.Logger.Error("failed to list audit logs", err)
			c.JSON(http.StatusInternalServerError,
				dto.NewErrorResponse(c, http.StatusInternalServerError,
					"Internal Server Error", "Erro ao buscar logs", nil))
			return
		}

		entries := make([]auditEntry, 0, len(logs))
		for _, log := range logs {
			entry := auditEntry{
				Id:        log.Id,
				Action:    log.Action,
				Entity:    log.Entity,
				EntityId:  log.EntityId,
				Details:   log.Details,
				CreatedAt: log.CreatedAt.Format("2006-01-02T15:04:05.000Z07:00"),
			}
			if log.User != nil {
				entry.User = &auditUser{
					Id:    log.User.Id,
					Name:  log.User.Name,
					Email: log.User.Email,
				}
			}
			entries = append(entries, entry)
		}

		c.JSON(http.StatusOK, entries)
	}
}
