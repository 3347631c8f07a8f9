package postgres

import (
	"context"
	"errors"
	"fmt"
	"propostasrest/internal/models/entities"

	"gorm.io/gorm"
)

// ErrRegistroNaoEncontrado indica que o id informado não existe
var ErrRegistroNaoEncontrado = errors.New("registro não encontrado")

// ListCategorias retorna todas as categorias ordenadas por nome
func (s *Internal) ListCategorias(ctx context.Context) ([]entities.CategoriaProduto, error) {
	var categorias []entities.CategoriaProduto
	err := s.db.WithContext(ctx).
		Order("nome ASC").
		Find(&categorias).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list categorias: %w", err)
	}
	return categorias, nil
}

// CreateCategoria cria uma nova categoria de produto
func (s *Internal) CreateCategoria(ctx context.Context, categoria *entities.CategoriaProduto) error {
	if err := s.db.WithContext(ctx).Create(categoria).Error; err != nil {
		return fmt.Errorf("failed to create categoria: %w", err)
	}
	return nil
}

// GetCategoriaByID busca uma categoria por id
func (s *Internal) GetCategoriaByID(ctx context.Context, id uint) (*entities.CategoriaProduto, error) {
	var categoria entities.CategoriaProduto
	err := s.db.WithContext(ctx).First(&categoria, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRegistroNaoEncontrado
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get categoria: %w", err)
	}
	return &categoria, nil
}

// CategoriaEmUso informa se algum produto referencia a categoria
func (s *Internal) CategoriaEmUso(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&entities.Produto{}).
		Where("categoria_id = ?", id).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check categoria usage: %w", err)
	}
	return count > 0, nil
}

// DeleteCategoria remove uma categoria
func (s *Internal) DeleteCategoria(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&entities.CategoriaProduto{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete categoria: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrRegistroNaoEncontrado
	}
	return nil
}

// ListUnidades retorna todas as unidades de medida ordenadas por sigla
func (s *Internal) ListUnidades(ctx context.Context) ([]entities.UnidadeMedida, error) {
	var unidades []entities.UnidadeMedida
	err := s.db.WithContext(ctx).
		Order("sigla ASC").
		Find(&unidades).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list unidades: %w", err)
	}
	return unidades, nil
}

// CreateUnidade cria uma nova unidade de medida
func (s *Internal) CreateUnidade(ctx context.Context, unidade *entities.UnidadeMedida) error {
	if err := s.db.WithContext(ctx).Create(unidade).Error; err != nil {
		return fmt.Errorf("failed to create unidade: %w", err)
	}
	return nil
}

// GetUnidadeByID busca uma unidade por id
func (s *Internal) GetUnidadeByID(ctx context.Context, id uint) (*entities.UnidadeMedida, error) {
	var unidade entities.UnidadeMedida
	err := s.db.WithContext(ctx).First(&unidade, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRegistroNaoEncontrado
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get unidade: %w", err)
	}
	return &unidade, nil
}

// UnidadeEmUso informa se a unidade é referenciada por algum item de
// proposta ou produto (unidade legada ou conjunto vinculado)
func (s *Internal) UnidadeEmUso(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&entities.ItemProposta{}).
		Where("unidade_id = ?", id).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check unidade usage: %w", err)
	}
	if count > 0 {
		return true, nil
	}

	err = s.db.WithContext(ctx).
		Model(&entities.Produto{}).
		Where("unidade_id = ?", id).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check unidade usage: %w", err)
	}
	if count > 0 {
		return true, nil
	}

	err = s.db.WithContext(ctx).
		Table("produto_unidades").
		Where("unidade_medida_id = ?", id).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check unidade usage: %w", err)
	}
	return count > 0, nil
}

// DeleteUnidade remove uma unidade de medida
func (s *Internal) DeleteUnidade(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&entities.UnidadeMedida{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete unidade: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrRegistroNaoEncontrado
	}
	return nil
}
