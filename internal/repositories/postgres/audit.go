package postgres

import (
	"context"
	"fmt"
	"propostasrest/internal/models/entities"
)

// CreateAuditLog grava um registro de auditoria
func (s *Internal) CreateAuditLog(ctx context.Context, log *entities.AuditLog) error {
	if err := s.db.WithContext(ctx).Create(log).Error; err != nil {
		return fmt.Errorf("failed to create audit log: %w", err)
	}
	return nil
}

// ListAuditLogs retorna os registros de auditoria mais recentes com o
// usuário que executou cada ação
func (s *Internal) ListAuditLogs(ctx context.Context, limit int) ([]entities.AuditLog, error) {
	var logs []entities.AuditLog
	err := s.db.WithContext(ctx).
		Preload("User").
		Order("created_at DESC").
		Limit(limit).
		Find(&logs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list audit logs: %w", err)
	}
	return logs, nil
}
