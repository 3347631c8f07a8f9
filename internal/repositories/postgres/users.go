package postgres

import (
	"context"
	"errors"
	"fmt"
	"propostasrest/internal/models/entities"

	"gorm.io/gorm"
)

// ListUsers retorna todos os usuários, mais recentes primeiro
func (s *Internal) ListUsers(ctx context.Context) ([]entities.User, error) {
	var users []entities.User
	err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// GetUserByEmail busca um usuário pelo e-mail
func (s *Internal) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	var user entities.User
	err := s.db.WithContext(ctx).
		Where("email = ?", email).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRegistroNaoEncontrado
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return &user, nil
}

// GetUserByID busca um usuário por id
func (s *Internal) GetUserByID(ctx context.Context, id uint) (*entities.User, error) {
	var user entities.User
	err := s.db.WithContext(ctx).First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRegistroNaoEncontrado
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// CreateUser cria um novo usuário
func (s *Internal) CreateUser(ctx context.Context, user *entities.User) error {
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// DeleteUser remove o usuário e antes os registros de auditoria dele,
// na mesma transação
func (s *Internal) DeleteUser(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&entities.AuditLog{}).Error; err != nil {
			return fmt.Errorf("failed to delete audit logs do usuário: %w", err)
		}
		result := tx.Delete(&entities.User{}, id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete user: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrRegistroNaoEncontrado
		}
		return nil
	})
}
