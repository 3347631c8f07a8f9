package postgres

import (
	"context"
	"errors"
	"fmt"
	"propostasrest/internal/models/entities"

	"gorm.io/gorm"
)

// ListLicitacoes retorna todas as licitações com município e propostas,
// mais recentes primeiro
func (s *Internal) ListLicitacoes(ctx context.Context) ([]entities.Licitacao, error) {
	var licitacoes []entities.Licitacao
	err := s.db.WithContext(ctx).
		Preload("Municipio").
		Preload("Propostas").
		Order("id DESC").
		Find(&licitacoes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list licitacoes: %w", err)
	}
	return licitacoes, nil
}

// ListLicitacoesCompletas retorna as licitações com município, em ordem
// de id, para a aba da planilha
func (s *Internal) ListLicitacoesCompletas(ctx context.Context) ([]entities.Licitacao, error) {
	var licitacoes []entities.Licitacao
	err := s.db.WithContext(ctx).
		Preload("Municipio").
		Order("id ASC").
		Find(&licitacoes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list licitacoes: %w", err)
	}
	return licitacoes, nil
}

// GetLicitacaoByID busca uma licitação por id
func (s *Internal) GetLicitacaoByID(ctx context.Context, id uint) (*entities.Licitacao, error) {
	var licitacao entities.Licitacao
	err := s.db.WithContext(ctx).
		Preload("Municipio").
		First(&licitacao, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRegistroNaoEncontrado
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get licitacao: %w", err)
	}
	return &licitacao, nil
}

// CreateLicitacao cria uma nova licitação
func (s *Internal) CreateLicitacao(ctx context.Context, licitacao *entities.Licitacao) error {
	if err := s.db.WithContext(ctx).Create(licitacao).Error; err != nil {
		return fmt.Errorf("failed to create licitacao: %w", err)
	}
	return nil
}

// UpdateLicitacao aplica uma atualização parcial em uma licitação
func (s *Internal) UpdateLicitacao(ctx context.Context, id uint, updates map[string]interface{}) error {
	result := s.db.WithContext(ctx).
		Model(&entities.Licitacao{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("failed to update licitacao: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrRegistroNaoEncontrado
	}
	return nil
}

// DeleteLicitacao remove uma licitação. Propostas vinculadas fazem a
// exclusão falhar pela integridade referencial do banco.
func (s *Internal) DeleteLicitacao(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&entities.Licitacao{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete licitacao: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrRegistroNaoEncontrado
	}
	return nil
}
