package relatorios_test

import (
	"testing"
	"time"

	"propostasrest/internal/models/dto"
	"propostasrest/internal/models/entities"
	"propostasrest/internal/service/relatorios"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func dataPtr(value string) *time.Time {
	t, _ := time.Parse("2006-01-02", value)
	return &t
}

// fixture com duas propostas completas e uma sem itens
func propostasDeTeste() []entities.Proposta {
	saoPaulo := &entities.Municipio{Id: 1, Nome: "São Paulo", UF: "SP", NomeCompleto: "São Paulo - SP"}
	campinas := &entities.Municipio{Id: 2, Nome: "Campinas", UF: "SP", NomeCompleto: "Campinas - SP"}

	obras := &entities.Licitacao{Id: 1, Nome: "Obras Escolares 2025", Municipio: saoPaulo}
	merenda := &entities.Licitacao{Id: 2, Nome: "Merenda Municipal", Municipio: campinas}

	construtora := &entities.Fornecedor{Id: 1, Nome: "Construtora Alfa"}
	alimentos := &entities.Fornecedor{Id: 2, Nome: "Alimentos Beta"}

	saco := entities.UnidadeMedida{Id: 1, Sigla: "sc"}
	cimento := &entities.Produto{
		Id:        1,
		Nome:      "Cimento CP-II",
		Categoria: &entities.CategoriaProduto{Id: 1, Nome: "Construção"},
		Unidades:  []entities.UnidadeMedida{saco},
	}
	areia := &entities.Produto{
		Id:           2,
		Nome:         "Areia média",
		UnidadeTexto: strPtr("m³"),
	}
	arroz := &entities.Produto{Id: 3, Nome: "Arroz tipo 1"}

	return []entities.Proposta{
		{
			Id:          1,
			Numero:      "P-001",
			Data:        dataPtr("2025-02-10"),
			Licitacao:   obras,
			Fornecedor:  construtora,
			Observacoes: strPtr("Entrega urgente"),
			Itens: []entities.ItemProposta{
				{
					Id:            10,
					Produto:       cimento,
					Quantidade:    100,
					PrecoUnitario: decimal.NewFromFloat(32.50),
					PrecoTotal:    decimal.NewFromFloat(3250.00),
				},
				{
					Id:            11,
					Produto:       areia,
					Quantidade:    8,
					PrecoUnitario: decimal.NewFromFloat(120.00),
					PrecoTotal:    decimal.NewFromFloat(960.00),
					Observacoes:   strPtr("Lavada"),
				},
			},
		},
		{
			Id:         2,
			Numero:     "P-002",
			Data:       dataPtr("2025-03-05"),
			Licitacao:  merenda,
			Fornecedor: alimentos,
			Itens: []entities.ItemProposta{
				{
					Id:            20,
					Produto:       arroz,
					Quantidade:    500,
					PrecoUnitario: decimal.NewFromFloat(5.20),
					PrecoTotal:    decimal.NewFromFloat(2600.00),
				},
			},
		},
		{
			Id:         3,
			Numero:     "P-003",
			Licitacao:  obras,
			Fornecedor: construtora,
		},
	}
}

func TestFlatten(t *testing.T) {
	linhas := relatorios.Flatten(propostasDeTeste())

	// uma linha por item; proposta sem itens não gera linha
	assert.Len(t, linhas, 3)

	primeira := linhas[0]
	assert.Equal(t, uint(10), primeira.Id)
	assert.Equal(t, "São Paulo - SP", primeira.Municipio)
	assert.Equal(t, "Obras Escolares 2025", primeira.Licitacao)
	assert.Equal(t, "Construtora Alfa", primeira.Fornecedor)
	assert.Equal(t, "Cimento CP-II", primeira.Produto)
	assert.Equal(t, "Construção", primeira.Categoria)
	assert.Equal(t, "P-001", primeira.NumeroProposta)
	assert.Equal(t, "Entrega urgente", primeira.ObsProposta)
	assert.Equal(t, float64(100), primeira.Quantidade)
	assert.InDelta(t, 32.50, primeira.PrecoUnitario, 0.001)
	assert.InDelta(t, 3250.00, primeira.PrecoTotal, 0.001)

	assert.Equal(t, "Lavada", linhas[1].ObsItem)
	// produto sem categoria cai para o marcador
	assert.Equal(t, "-", linhas[1].Categoria)
}

func TestFlatten_SemMunicipioUsaMarcador(t *testing.T) {
	propostas := []entities.Proposta{
		{
			Id:        9,
			Numero:    "P-009",
			Licitacao: &entities.Licitacao{Id: 9, Nome: "Pregão avulso"},
			Itens: []entities.ItemProposta{
				{Id: 90, Produto: &entities.Produto{Id: 9, Nome: "Cal"}},
			},
		},
	}

	linhas := relatorios.Flatten(propostas)
	assert.Len(t, linhas, 1)
	assert.Equal(t, "-", linhas[0].Municipio)
}

func TestResolverUnidade(t *testing.T) {
	sigla := entities.UnidadeMedida{Id: 1, Sigla: "kg"}
	caixa := entities.UnidadeMedida{Id: 2, Sigla: "cx"}

	tests := []struct {
		name     string
		item     entities.ItemProposta
		expected string
	}{
		{
			name: "unidade do item tem prioridade",
			item: entities.ItemProposta{
				Unidade: &sigla,
				Produto: &entities.Produto{Unidades: []entities.UnidadeMedida{caixa}},
			},
			expected: "kg",
		},
		{
			name: "primeira unidade vinculada ao produto",
			item: entities.ItemProposta{
				Produto: &entities.Produto{Unidades: []entities.UnidadeMedida{caixa, sigla}},
			},
			expected: "cx",
		},
		{
			name: "referência escalar do produto",
			item: entities.ItemProposta{
				Produto: &entities.Produto{Unidade: &sigla},
			},
			expected: "kg",
		},
		{
			name: "texto livre legado",
			item: entities.ItemProposta{
				Produto: &entities.Produto{UnidadeTexto: strPtr("m³")},
			},
			expected: "m³",
		},
		{
			name:     "sem nenhuma unidade",
			item:     entities.ItemProposta{Produto: &entities.Produto{}},
			expected: "-",
		},
		{
			name:     "sem produto",
			item:     entities.ItemProposta{},
			expected: "-",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, relatorios.ResolverUnidade(tt.item))
		})
	}
}

func TestAplicarFiltros_Busca(t *testing.T) {
	propostas := propostasDeTeste()

	tests := []struct {
		name     string
		search   string
		expected []uint
	}{
		{
			name:     "termo no campo de observação da proposta",
			search:   "urgente",
			expected: []uint{1},
		},
		{
			name:   "todos os termos devem casar no mesmo item",
			search: "cimento areia",
			// cimento casa no item 10 e areia no 11, mas nenhum item
			// satisfaz os dois termos ao mesmo tempo
			expected: []uint{},
		},
		{
			name:     "termos casando em campos diferentes do mesmo item",
			search:   "cimento obras",
			expected: []uint{1},
		},
		{
			name:     "busca sem distinção de maiúsculas",
			search:   "ARROZ",
			expected: []uint{2},
		},
		{
			name:     "termo inexistente elimina tudo",
			search:   "parafuso",
			expected: []uint{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resultado := relatorios.AplicarFiltros(propostas, dto.FiltroRelatorio{Search: tt.search})
			ids := make([]uint, 0, len(resultado))
			for _, proposta := range resultado {
				ids = append(ids, proposta.Id)
			}
			assert.Equal(t, tt.expected, ids)
		})
	}
}

func TestAplicarFiltros_Datas(t *testing.T) {
	propostas := propostasDeTeste()

	t.Run("intervalo inclusivo nas duas pontas", func(t *testing.T) {
		resultado := relatorios.AplicarFiltros(propostas, dto.FiltroRelatorio{
			DateStart: "2025-02-10",
			DateEnd:   "2025-03-05",
		})
		assert.Len(t, resultado, 2)
	})

	t.Run("proposta sem data cai quando há limite", func(t *testing.T) {
		resultado := relatorios.AplicarFiltros(propostas, dto.FiltroRelatorio{
			DateStart: "2025-01-01",
		})
		for _, proposta := range resultado {
			assert.NotNil(t, proposta.Data)
		}
	})

	t.Run("limite final exclui datas posteriores", func(t *testing.T) {
		resultado := relatorios.AplicarFiltros(propostas, dto.FiltroRelatorio{
			DateEnd: "2025-02-28",
		})
		assert.Len(t, resultado, 1)
		assert.Equal(t, uint(1), resultado[0].Id)
	})
}

func TestAplicarFiltros_Campos(t *testing.T) {
	propostas := propostasDeTeste()

	t.Run("filtro por município casa o nome completo", func(t *testing.T) {
		resultado := relatorios.AplicarFiltros(propostas, dto.FiltroRelatorio{Municipio: "Campinas - SP"})
		assert.Len(t, resultado, 1)
		assert.Equal(t, uint(2), resultado[0].Id)
	})

	t.Run("nome simples do município não casa", func(t *testing.T) {
		resultado := relatorios.AplicarFiltros(propostas, dto.FiltroRelatorio{Municipio: "Campinas"})
		assert.Empty(t, resultado)
	})

	t.Run("filtro por fornecedor é igualdade exata", func(t *testing.T) {
		resultado := relatorios.AplicarFiltros(propostas, dto.FiltroRelatorio{Fornecedor: "Construtora Alfa"})
		assert.Len(t, resultado, 2)
	})

	t.Run("substring do fornecedor não casa", func(t *testing.T) {
		resultado := relatorios.AplicarFiltros(propostas, dto.FiltroRelatorio{Fornecedor: "Alfa"})
		assert.Empty(t, resultado)
	})

	t.Run("filtro por licitação é igualdade exata", func(t *testing.T) {
		resultado := relatorios.AplicarFiltros(propostas, dto.FiltroRelatorio{Licitacao: "Merenda Municipal"})
		assert.Len(t, resultado, 1)
	})

	t.Run("sem filtros devolve tudo", func(t *testing.T) {
		resultado := relatorios.AplicarFiltros(propostas, dto.FiltroRelatorio{})
		assert.Len(t, resultado, len(propostas))
	})
}

func TestOrdenarPorData(t *testing.T) {
	linhas := []dto.LinhaRelatorio{
		{Id: 1, Data: dataPtr("2025-01-15")},
		{Id: 2, Data: nil},
		{Id: 3, Data: dataPtr("2025-03-01")},
		{Id: 4, Data: dataPtr("2025-02-20")},
	}

	relatorios.OrdenarPorData(linhas)

	assert.Equal(t, uint(3), linhas[0].Id)
	assert.Equal(t, uint(4), linhas[1].Id)
	assert.Equal(t, uint(1), linhas[2].Id)
	// linha sem data vai para o fim
	assert.Equal(t, uint(2), linhas[3].Id)
}
