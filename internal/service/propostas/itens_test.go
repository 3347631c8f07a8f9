package propostas_test

import (
	"testing"

	"propostasrest/internal/service/propostas"

	"github.com/stretchr/testify/assert"
)

func TestCalcularPrecoTotal(t *testing.T) {
	tests := []struct {
		name          string
		quantidade    float64
		precoUnitario float64
		expected      string
	}{
		{
			name:          "multiplicação exata",
			quantidade:    100,
			precoUnitario: 32.50,
			expected:      "3250",
		},
		{
			name:          "arredonda para 2 casas",
			quantidade:    3,
			precoUnitario: 0.333,
			expected:      "1",
		},
		{
			name:          "evita erro de ponto flutuante",
			quantidade:    0.1,
			precoUnitario: 0.2,
			expected:      "0.02",
		},
		{
			name:          "quantidade fracionada",
			quantidade:    2.5,
			precoUnitario: 10.10,
			expected:      "25.25",
		},
		{
			name:          "quantidade zero",
			quantidade:    0,
			precoUnitario: 99.99,
			expected:      "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total := propostas.CalcularPrecoTotal(tt.quantidade, tt.precoUnitario)
			assert.Equal(t, tt.expected, total.String())
		})
	}
}
