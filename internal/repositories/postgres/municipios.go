package postgres

import (
	"context"
	"fmt"
	"propostasrest/internal/models/entities"
)

// SearchMunicipios busca municípios cujo nome ou nome completo contenha
// o termo, sem distinção de maiúsculas, limitado a 20 resultados
func (s *Internal) SearchMunicipios(ctx context.Context, term string) ([]entities.Municipio, error) {
	var municipios []entities.Municipio
	pattern := "%" + term + "%"
	err := s.db.WithContext(ctx).
		Where("nome ILIKE ? OR nome_completo ILIKE ?", pattern, pattern).
		Order("nome ASC").
		Limit(20).
		Find(&municipios).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search municipios: %w", err)
	}
	return municipios, nil
}
