// Package audit grava e expõe a trilha de auditoria das mutações.
package audit

import (
	"time"

	"propostasrest/internal/config"
	"propostasrest/internal/middleware"
	"propostasrest/internal/models/entities"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Record grava um registro de auditoria para a mutação já concluída.
// Falhas na gravação são apenas logadas: a auditoria nunca desfaz nem
// falha a operação que a originou.
func Record(c *gin.Context, cfg *config.App, action, entity string, entityId uint, details string) {
	userID := middleware.CurrentUserID(c)
	if userID == 0 {
		return
	}

	log := &entities.AuditLog{
		UserId:    userID,
		Action:    action,
		Entity:    entity,
		Details:   &details,
		CreatedAt: time.Now(),
	}
	if entityId != 0 {
		log.EntityId = &entityId
	}

	if err := cfg.DB.CreateAuditLog(c.Request.Context(), log); err != nil {
		cfg.Logger.Warn("failed to record audit log",
			zap.String("action", action),
			zap.String("entity", entity),
			zap.Uint("entity_id", entityId),
			zap.Error(err),
		)
	}
}
