package relatorios

import (
	"testing"
	"time"

	"propostasrest/internal/models/dto"
	"propostasrest/internal/models/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMontarPlanilha_Abas(t *testing.T) {
	linhas := []dto.LinhaRelatorio{
		{Id: 1, Produto: "Cimento CP-II", NumeroProposta: "P-001", Quantidade: 10},
	}
	propostas := []entities.Proposta{{Id: 1, Numero: "P-001"}}

	workbook, err := montarPlanilha(linhas, propostas, nil, nil, nil)
	require.NoError(t, err)
	defer workbook.Close()

	assert.Equal(t, []string{
		"Relatório Geral", "Licitações", "Fornecedores", "Produtos",
		"Propostas", "Detalhamento (Itens)",
	}, workbook.GetSheetList())

	valor, err := workbook.GetCellValue("Relatório Geral", "E2")
	require.NoError(t, err)
	assert.Equal(t, "Cimento CP-II", valor)
}

func TestMontarPlanilha_SemLinhasOmiteDetalhamento(t *testing.T) {
	workbook, err := montarPlanilha(nil, nil, nil, nil, nil)
	require.NoError(t, err)
	defer workbook.Close()

	assert.NotContains(t, workbook.GetSheetList(), "Detalhamento (Itens)")
	assert.Contains(t, workbook.GetSheetList(), "Relatório Geral")
}

func TestMontarPlanilha_ColunasDeResumo(t *testing.T) {
	criadoEm, err := time.Parse("2006-01-02", "2025-01-02")
	require.NoError(t, err)
	licitacoes := []entities.Licitacao{
		{
			Id:        1,
			Nome:      "Obras Escolares 2025",
			Municipio: &entities.Municipio{Id: 1, NomeCompleto: "São Paulo - SP"},
			CreatedAt: criadoEm,
		},
	}
	contato := "Maria"
	arquivo := "/uploads/p-001.pdf"
	propostas := []entities.Proposta{
		{
			Id:         1,
			Numero:     "P-001",
			Fornecedor: &entities.Fornecedor{Id: 1, Nome: "Construtora Alfa", Contato: &contato},
			ArquivoURL: &arquivo,
		},
	}

	workbook, err := montarPlanilha(nil, propostas, licitacoes, nil, nil)
	require.NoError(t, err)
	defer workbook.Close()

	municipio, err := workbook.GetCellValue("Licitações", "C2")
	require.NoError(t, err)
	assert.Equal(t, "São Paulo - SP", municipio)

	criado, err := workbook.GetCellValue("Licitações", "E2")
	require.NoError(t, err)
	assert.Equal(t, "02/01/2025", criado)

	valorContato, err := workbook.GetCellValue("Propostas", "F2")
	require.NoError(t, err)
	assert.Equal(t, "Maria", valorContato)

	valorArquivo, err := workbook.GetCellValue("Propostas", "L2")
	require.NoError(t, err)
	assert.Equal(t, "/uploads/p-001.pdf", valorArquivo)
}

func TestMontarPlanilha_FornecedoresMascarados(t *testing.T) {
	cnpj := "12345678000190"
	whatsapp := "11987654321"
	fornecedores := []entities.Fornecedor{
		{Id: 1, Nome: "Construtora Alfa", CNPJ: &cnpj, Whatsapp: &whatsapp},
	}

	workbook, err := montarPlanilha(nil, nil, nil, fornecedores, nil)
	require.NoError(t, err)
	defer workbook.Close()

	valorCNPJ, err := workbook.GetCellValue("Fornecedores", "F2")
	require.NoError(t, err)
	assert.Equal(t, "12.345.678/0001-90", valorCNPJ)

	valorWhatsapp, err := workbook.GetCellValue("Fornecedores", "D2")
	require.NoError(t, err)
	assert.Equal(t, "(11) 98765-4321", valorWhatsapp)
}
