package postgres

import (
	"context"
	"errors"
	"fmt"
	"propostasrest/internal/models/entities"

	"gorm.io/gorm"
)

// ListProdutos retorna todos os produtos, mais recentes primeiro
func (s *Internal) ListProdutos(ctx context.Context) ([]entities.Produto, error) {
	var produtos []entities.Produto
	err := s.db.WithContext(ctx).
		Preload("Categoria").
		Preload("Unidade").
		Preload("Unidades").
		Order("created_at DESC").
		Find(&produtos).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list produtos: %w", err)
	}
	return produtos, nil
}

// ListProdutosCompletos retorna os produtos com categoria e unidades
// carregadas, em ordem de id, para as abas da planilha
func (s *Internal) ListProdutosCompletos(ctx context.Context) ([]entities.Produto, error) {
	var produtos []entities.Produto
	err := s.db.WithContext(ctx).
		Preload("Categoria").
		Preload("Unidade").
		Preload("Unidades").
		Order("id ASC").
		Find(&produtos).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list produtos: %w", err)
	}
	return produtos, nil
}

// GetProdutoByID busca um produto por id com as relações carregadas
func (s *Internal) GetProdutoByID(ctx context.Context, id uint) (*entities.Produto, error) {
	var produto entities.Produto
	err := s.db.WithContext(ctx).
		Preload("Categoria").
		Preload("Unidade").
		Preload("Unidades").
		First(&produto, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRegistroNaoEncontrado
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get produto: %w", err)
	}
	return &produto, nil
}

// CreateProduto cria um produto e vincula o conjunto de unidades
// permitidas, quando informado
func (s *Internal) CreateProduto(ctx context.Context, produto *entities.Produto, unidadeIds []uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Unidades").Create(produto).Error; err != nil {
			return fmt.Errorf("failed to create produto: %w", err)
		}
		if len(unidadeIds) > 0 {
			return s.vincularUnidades(tx, produto, unidadeIds)
		}
		return nil
	})
}

// UpdateProduto aplica uma atualização parcial. Quando unidadeIds não é
// nil o conjunto vinculado é reescrito e o campo legado unidade_texto é
// sincronizado com a sigla da primeira unidade, tudo na mesma transação.
func (s *Internal) UpdateProduto(ctx context.Context, id uint, updates map[string]interface{}, unidadeIds []uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var produto entities.Produto
		if err := tx.First(&produto, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRegistroNaoEncontrado
			}
			return fmt.Errorf("failed to get produto: %w", err)
		}

		if unidadeIds != nil {
			if err := s.vincularUnidades(tx, &produto, unidadeIds); err != nil {
				return err
			}
		}

		if len(updates) > 0 {
			if err := tx.Model(&produto).Updates(updates).Error; err != nil {
				return fmt.Errorf("failed to update produto: %w", err)
			}
		}
		return nil
	})
}

// vincularUnidades substitui o conjunto de unidades permitidas e mantém
// o fallback escalar alinhado com a primeira unidade vinculada
func (s *Internal) vincularUnidades(tx *gorm.DB, produto *entities.Produto, unidadeIds []uint) error {
	var unidades []entities.UnidadeMedida
	if len(unidadeIds) > 0 {
		if err := tx.Find(&unidades, unidadeIds).Error; err != nil {
			return fmt.Errorf("failed to load unidades: %w", err)
		}
	}
	if err := tx.Model(produto).Association("Unidades").Replace(unidades); err != nil {
		return fmt.Errorf("failed to replace unidades: %w", err)
	}

	var texto interface{}
	if len(unidades) > 0 {
		texto = unidades[0].Sigla
	}
	if err := tx.Model(produto).Update("unidade_texto", texto).Error; err != nil {
		return fmt.Errorf("failed to sync unidade_texto: %w", err)
	}
	return nil
}

// ProdutoEmUso informa se algum item de proposta referencia o produto
func (s *Internal) ProdutoEmUso(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&entities.ItemProposta{}).
		Where("produto_id = ?", id).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check produto usage: %w", err)
	}
	return count > 0, nil
}

// DeleteProduto remove um produto e seus vínculos de unidade
func (s *Internal) DeleteProduto(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		produto := entities.Produto{Id: id}
		if err := tx.Model(&produto).Association("Unidades").Clear(); err != nil {
			return fmt.Errorf("failed to clear unidades: %w", err)
		}
		result := tx.Delete(&entities.Produto{}, id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete produto: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrRegistroNaoEncontrado
		}
		return nil
	})
}
