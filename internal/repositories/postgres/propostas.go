package postgres

import (
	"context"
	"errors"
	"fmt"
	"propostasrest/internal/models/entities"

	"gorm.io/gorm"
)

// ListPropostas retorna todas as propostas com os relacionamentos usados
// nas telas de listagem
func (s *Internal) ListPropostas(ctx context.Context) ([]entities.Proposta, error) {
	var propostas []entities.Proposta
	err := s.db.WithContext(ctx).
		Preload("Licitacao.Municipio").
		Preload("Fornecedor").
		Preload("Itens.Produto").
		Preload("Itens.Unidade").
		Order("id DESC").
		Find(&propostas).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list propostas: %w", err)
	}
	return propostas, nil
}

// ListPropostasCompletas carrega o grafo completo de cada proposta,
// incluindo categoria e unidades dos produtos, para o relatório geral e
// para a exportação
func (s *Internal) ListPropostasCompletas(ctx context.Context) ([]entities.Proposta, error) {
	var propostas []entities.Proposta
	err := s.db.WithContext(ctx).
		Preload("Licitacao.Municipio").
		Preload("Fornecedor").
		Preload("Itens.Produto.Categoria").
		Preload("Itens.Produto.Unidade").
		Preload("Itens.Produto.Unidades").
		Preload("Itens.Unidade").
		Order("id ASC").
		Find(&propostas).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list propostas: %w", err)
	}
	return propostas, nil
}

// GetPropostaByID busca uma proposta por id com itens e relacionamentos
func (s *Internal) GetPropostaByID(ctx context.Context, id uint) (*entities.Proposta, error) {
	var proposta entities.Proposta
	err := s.db.WithContext(ctx).
		Preload("Licitacao.Municipio").
		Preload("Fornecedor").
		Preload("Itens.Produto").
		Preload("Itens.Unidade").
		First(&proposta, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRegistroNaoEncontrado
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get proposta: %w", err)
	}
	return &proposta, nil
}

// CreateProposta cria uma nova proposta
func (s *Internal) CreateProposta(ctx context.Context, proposta *entities.Proposta) error {
	if err := s.db.WithContext(ctx).Create(proposta).Error; err != nil {
		return fmt.Errorf("failed to create proposta: %w", err)
	}
	return nil
}

// UpdateProposta aplica uma atualização parcial em uma proposta
func (s *Internal) UpdateProposta(ctx context.Context, id uint, updates map[string]interface{}) error {
	result := s.db.WithContext(ctx).
		Model(&entities.Proposta{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("failed to update proposta: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrRegistroNaoEncontrado
	}
	return nil
}

// DeleteProposta remove a proposta e seus itens na mesma transação
func (s *Internal) DeleteProposta(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("proposta_id = ?", id).Delete(&entities.ItemProposta{}).Error; err != nil {
			return fmt.Errorf("failed to delete itens da proposta: %w", err)
		}
		result := tx.Delete(&entities.Proposta{}, id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete proposta: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrRegistroNaoEncontrado
		}
		return nil
	})
}

// GetItemByID busca um item de proposta por id
func (s *Internal) GetItemByID(ctx context.Context, id uint) (*entities.ItemProposta, error) {
	var item entities.ItemProposta
	err := s.db.WithContext(ctx).
		Preload("Produto").
		Preload("Unidade").
		First(&item, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRegistroNaoEncontrado
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get item: %w", err)
	}
	return &item, nil
}

// CreateItem cria um item de proposta
func (s *Internal) CreateItem(ctx context.Context, item *entities.ItemProposta) error {
	if err := s.db.WithContext(ctx).Create(item).Error; err != nil {
		return fmt.Errorf("failed to create item: %w", err)
	}
	return nil
}

// UpdateItem aplica uma atualização parcial em um item de proposta
func (s *Internal) UpdateItem(ctx context.Context, id uint, updates map[string]interface{}) error {
	result := s.db.WithContext(ctx).
		Model(&entities.ItemProposta{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("failed to update item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrRegistroNaoEncontrado
	}
	return nil
}

// DeleteItem remove um item de proposta
func (s *Internal) DeleteItem(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&entities.ItemProposta{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrRegistroNaoEncontrado
	}
	return nil
}
