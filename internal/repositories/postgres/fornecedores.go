package postgres

import (
	"context"
	"errors"
	"fmt"
	"propostasrest/internal/models/entities"
	"time"

	"gorm.io/gorm"
)

// ListFornecedores retorna todos os fornecedores, mais recentes primeiro
func (s *Internal) ListFornecedores(ctx context.Context) ([]entities.Fornecedor, error) {
	var fornecedores []entities.Fornecedor
	err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&fornecedores).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list fornecedores: %w", err)
	}
	return fornecedores, nil
}

// GetFornecedorByNome busca um fornecedor por igualdade de nome, sem
// diferenciar maiúsculas de minúsculas, ignorando o id informado em
// excludeId (0 para não excluir nenhum). Igualdade, não LIKE: um nome
// com % ou _ não pode virar curinga na checagem de duplicidade.
func (s *Internal) GetFornecedorByNome(ctx context.Context, nome string, excludeId uint) (*entities.Fornecedor, error) {
	var fornecedor entities.Fornecedor
	query := s.db.WithContext(ctx).Where("LOWER(nome) = LOWER(?)", nome)
	if excludeId != 0 {
		query = query.Where("id <> ?", excludeId)
	}
	err := query.First(&fornecedor).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRegistroNaoEncontrado
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get fornecedor by nome: %w", err)
	}
	return &fornecedor, nil
}

// GetFornecedorByID busca um fornecedor por id
func (s *Internal) GetFornecedorByID(ctx context.Context, id uint) (*entities.Fornecedor, error) {
	var fornecedor entities.Fornecedor
	err := s.db.WithContext(ctx).First(&fornecedor, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRegistroNaoEncontrado
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get fornecedor: %w", err)
	}
	return &fornecedor, nil
}

// CreateFornecedor cria um novo fornecedor
func (s *Internal) CreateFornecedor(ctx context.Context, fornecedor *entities.Fornecedor) error {
	if err := s.db.WithContext(ctx).Create(fornecedor).Error; err != nil {
		return fmt.Errorf("failed to create fornecedor: %w", err)
	}
	return nil
}

// UpdateFornecedor aplica uma atualização parcial em um fornecedor
func (s *Internal) UpdateFornecedor(ctx context.Context, id uint, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()
	result := s.db.WithContext(ctx).
		Model(&entities.Fornecedor{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("failed to update fornecedor: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrRegistroNaoEncontrado
	}
	return nil
}

// DeleteFornecedor remove um fornecedor. Propostas existentes fazem a
// exclusão falhar pela integridade referencial do banco.
func (s *Internal) DeleteFornecedor(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&entities.Fornecedor{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete fornecedor: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrRegistroNaoEncontrado
	}
	return nil
}
