package utils_test

import (
	"testing"

	"propostasrest/internal/utils"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestMaskCNPJ(t *testing.T) {
	tests := []struct {
		name     string
		input    *string
		expected string
	}{
		{
			name:     "CNPJ com 14 dígitos é formatado",
			input:    strPtr("12345678000190"),
			expected: "12.345.678/0001-90",
		},
		{
			name:     "CNPJ já formatado é normalizado",
			input:    strPtr("12.345.678/0001-90"),
			expected: "12.345.678/0001-90",
		},
		{
			name:     "menos de 14 dígitos sai sem máscara",
			input:    strPtr("1234567"),
			expected: "1234567",
		},
		{
			name:     "mais de 14 dígitos sai sem máscara",
			input:    strPtr("123456780001901"),
			expected: "123456780001901",
		},
		{
			name:     "letras são descartadas antes de mascarar",
			input:    strPtr("cnpj: 12345678000190"),
			expected: "12.345.678/0001-90",
		},
		{
			name:     "nil vira vazio",
			input:    nil,
			expected: "",
		},
		{
			name:     "vazio continua vazio",
			input:    strPtr(""),
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, utils.MaskCNPJ(tt.input))
		})
	}
}

func TestMaskPhone(t *testing.T) {
	tests := []struct {
		name     string
		input    *string
		expected string
	}{
		{
			name:     "celular com 11 dígitos",
			input:    strPtr("11987654321"),
			expected: "(11) 98765-4321",
		},
		{
			name:     "fixo com 10 dígitos",
			input:    strPtr("1133334444"),
			expected: "(11) 3333-4444",
		},
		{
			name:     "número já formatado é normalizado",
			input:    strPtr("(11) 98765-4321"),
			expected: "(11) 98765-4321",
		},
		{
			name:     "tamanho fora do padrão sai só com dígitos",
			input:    strPtr("987654321"),
			expected: "987654321",
		},
		{
			name:     "nil vira vazio",
			input:    nil,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, utils.MaskPhone(tt.input))
		})
	}
}

func TestParseData(t *testing.T) {
	t.Run("formato curto", func(t *testing.T) {
		data, err := utils.ParseData("2025-03-10")
		assert.NoError(t, err)
		assert.Equal(t, "2025-03-10", data.Format("2006-01-02"))
	})

	t.Run("RFC3339", func(t *testing.T) {
		data, err := utils.ParseData("2025-03-10T14:30:00Z")
		assert.NoError(t, err)
		assert.Equal(t, "2025-03-10", data.Format("2006-01-02"))
	})

	t.Run("valor inválido", func(t *testing.T) {
		_, err := utils.ParseData("10/03/2025")
		assert.Error(t, err)
	})
}
