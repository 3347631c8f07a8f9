package relatorios

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"propostasrest/internal/config"
	"propostasrest/internal/models/dto"
	"propostasrest/internal/models/entities"
	"propostasrest/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"golang.org/x/sync/errgroup"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Export gera a planilha XLSX com os dados do sistema
// @Summary      Exportar planilha
// @Description  Gera um arquivo XLSX com o relatório geral e as abas de licitações, fornecedores, produtos e propostas. Os filtros se aplicam às abas derivadas de propostas; os cadastros saem completos.
// @Tags         relatorios
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security     BearerAuth
// @Param        search query string false "Busca textual"
// @Param        dateStart query string false "Data inicial (inclusive)"
// @Param        dateEnd query string false "Data final (inclusive)"
// @Param        municipio query string false "Filtro por município (nome completo, igualdade exata)"
// @Param        fornecedor query string false "Filtro por fornecedor (igualdade exata)"
// @Param        licitacao query string false "Filtro por licitação (igualdade exata)"
// @Success      200 {file} file
// @Failure      500 {object} dto.ErrorResponse "Internal Server Error"
// @Router       /export [get]
func Export(cfg *config.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var filtro dto.FiltroRelatorio
		if err := c.ShouldBindQuery(&filtro); err != nil {
			c.JSON(http.StatusBadRequest,
				dto.NewErrorResponse(c, http.StatusBadRequest,
					"Bad Request", "Filtros inválidos", err.Error()))
			return
		}

		var (
			propostas    []entities.Proposta
			licitacoes   []entities.Licitacao
			fornecedores []entities.Fornecedor
			produtos     []entities.Produto
		)

		g, ctx := errgroup.WithContext(c.Request.Context())
		g.Go(func() (err error) {
			propostas, err = cfg.DB.ListPropostasCompletas(ctx)
			return err
		})
		g.Go(func() (err error) {
			licitacoes, err = cfg.DB.ListLicitacoesCompletas(ctx)
			return err
		})
		g.Go(func() (err error) {
			fornecedores, err = cfg.DB.ListFornecedores(ctx)
			return err
		})
		g.Go(func() (err error) {
			produtos, err = cfg.DB.ListProdutosCompletos(ctx)
			return err
		})
		if err := g.Wait(); err != nil {
			cfg.Logger.Error("failed to load export data", err)
			c.JSON(http.StatusInternalServerError,
				dto.NewErrorResponse(c, http.StatusInternalServerError,
					"Internal Server Error", "Erro ao exportar dados", nil))
			return
		}

		filtradas := AplicarFiltros(propostas, filtro)
		linhas := Flatten(filtradas)
		OrdenarPorData(linhas)

		workbook, err := montarPlanilha(linhas, filtradas, licitacoes, fornecedores, produtos)
		if err != nil {
			cfg.Logger.Error("failed to build workbook", err)
			c.JSON(http.StatusInternalServerError,
				dto.NewErrorResponse(c, http.StatusInternalServerError,
					"Internal Server Error", "Erro ao exportar dados", nil))
			return
		}
		defer workbook.Close()

		filename := fmt.Sprintf("propostas_export_%s.xlsx", time.Now().Format("2006-01-02"))
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		c.Header("Content-Type", xlsxContentType)
		c.Status(http.StatusOK)

		if err := workbook.Write(c.Writer); err != nil {
			cfg.Logger.Error("failed to write workbook", err)
		}
	}
}

// montarPlanilha monta o workbook com as abas da exportação. A aba de
// detalhamento só existe quando há linhas no relatório.
func montarPlanilha(linhas []dto.LinhaRelatorio, propostas []entities.Proposta,
	licitacoes []entities.Licitacao, fornecedores []entities.Fornecedor,
	produtos []entities.Produto) (*excelize.File, error) {

	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", "Relatório Geral"); err != nil {
		return nil, err
	}
	if err := abaRelatorioGeral(f, linhas); err != nil {
		return nil, err
	}
	if err := abaLicitacoes(f, licitacoes); err != nil {
		return nil, err
	}
	if err := abaFornecedores(f, fornecedores); err != nil {
		return nil, err
	}
	if err := abaProdutos(f, produtos); err != nil {
		return nil, err
	}
	if err := abaPropostas(f, propostas); err != nil {
		return nil, err
	}
	if len(linhas) > 0 {
		if err := abaDetalhamento(f, linhas); err != nil {
			return nil, err
		}
	}

	return f, nil
}

func novaAba(f *excelize.File, nome string, cabecalho []interface{}) error {
	if _, err := f.NewSheet(nome); err != nil {
		return err
	}
	return f.SetSheetRow(nome, "A1", &cabecalho)
}

func abaRelatorioGeral(f *excelize.File, linhas []dto.LinhaRelatorio) error {
	cabecalho := []interface{}{
		"Data", "Município", "Licitação", "Fornecedor", "Produto", "Categoria",
		"Unidade", "Quantidade", "Preço Unitário", "Preço Total",
		"Nº Proposta", "Arquivo", "Obs. Proposta", "Obs. Item",
	}
	if err := f.SetSheetRow("Relatório Geral", "A1", &cabecalho); err != nil {
		return err
	}
	for i, linha := range linhas {
		row := []interface{}{
			formatarData(linha.Data), linha.Municipio, linha.Licitacao,
			linha.Fornecedor, linha.Produto, linha.Categoria, linha.Unidade,
			linha.Quantidade, linha.PrecoUnitario, linha.PrecoTotal,
			linha.NumeroProposta, derefOuVazio(linha.ArquivoURL),
			linha.ObsProposta, linha.ObsItem,
		}
		if err := f.SetSheetRow("Relatório Geral", fmt.Sprintf("A%d", i+2), &row); err != nil {
			return err
		}
	}
	return nil
}

func abaLicitacoes(f *excelize.File, licitacoes []entities.Licitacao) error {
	cabecalho := []interface{}{"Id", "Nome", "Município", "Data", "Criado em"}
	if err := novaAba(f, "Licitações", cabecalho); err != nil {
		return err
	}
	for i, licitacao := range licitacoes {
		municipio := "-"
		if licitacao.Municipio != nil {
			municipio = licitacao.Municipio.NomeCompleto
		}
		criadoEm := licitacao.CreatedAt
		row := []interface{}{
			licitacao.Id, licitacao.Nome, municipio,
			formatarData(licitacao.Data), formatarData(&criadoEm),
		}
		if err := f.SetSheetRow("Licitações", fmt.Sprintf("A%d", i+2), &row); err != nil {
			return err
		}
	}
	return nil
}

func abaFornecedores(f *excelize.File, fornecedores []entities.Fornecedor) error {
	cabecalho := []interface{}{"Id", "Nome", "Contato", "Whatsapp", "Email", "CNPJ", "Observações"}
	if err := novaAba(f, "Fornecedores", cabecalho); err != nil {
		return err
	}
	for i, fornecedor := range fornecedores {
		row := []interface{}{
			fornecedor.Id, fornecedor.Nome, derefOuVazio(fornecedor.Contato),
			utils.MaskPhone(fornecedor.Whatsapp), derefOuVazio(fornecedor.Email),
			utils.MaskCNPJ(fornecedor.CNPJ), derefOuVazio(fornecedor.Observacoes),
		}
		if err := f.SetSheetRow("Fornecedores", fmt.Sprintf("A%d", i+2), &row); err != nil {
			return err
		}
	}
	return nil
}

func abaProdutos(f *excelize.File, produtos []entities.Produto) error {
	if err := novaAba(f, "Produtos", []interface{}{"Id", "Nome", "Categoria", "Unidades"}); err != nil {
		return err
	}
	for i, produto := range produtos {
		var categoria string
		if produto.Categoria != nil {
			categoria = produto.Categoria.Nome
		}
		row := []interface{}{
			produto.Id, produto.Nome, categoria, unidadesDoProduto(produto),
		}
		if err := f.SetSheetRow("Produtos", fmt.Sprintf("A%d", i+2), &row); err != nil {
			return err
		}
	}
	return nil
}

func abaPropostas(f *excelize.File, propostas []entities.Proposta) error {
	cabecalho := []interface{}{
		"Id", "Número", "Data", "Licitação", "Fornecedor", "Contato",
		"Whatsapp", "Email", "Itens", "Valor Total", "Observações", "Arquivo",
	}
	if err := novaAba(f, "Propostas", cabecalho); err != nil {
		return err
	}
	for i, proposta := range propostas {
		var licitacao, fornecedor, contato, whatsapp, email string
		if proposta.Licitacao != nil {
			licitacao = proposta.Licitacao.Nome
		}
		if proposta.Fornecedor != nil {
			fornecedor = proposta.Fornecedor.Nome
			contato = derefOuVazio(proposta.Fornecedor.Contato)
			whatsapp = derefOuVazio(proposta.Fornecedor.Whatsapp)
			email = derefOuVazio(proposta.Fornecedor.Email)
		}

		total := 0.0
		for _, item := range proposta.Itens {
			valor, _ := item.PrecoTotal.Float64()
			total += valor
		}

		row := []interface{}{
			proposta.Id, proposta.Numero, formatarData(proposta.Data),
			licitacao, fornecedor, contato, whatsapp, email,
			len(proposta.Itens), total, derefOuVazio(proposta.Observacoes),
			derefOuVazio(proposta.ArquivoURL),
		}
		if err := f.SetSheetRow("Propostas", fmt.Sprintf("A%d", i+2), &row); err != nil {
			return err
		}
	}
	return nil
}

func abaDetalhamento(f *excelize.File, linhas []dto.LinhaRelatorio) error {
	cabecalho := []interface{}{
		"Proposta", "Produto", "Unidade", "Quantidade", "Preço Unitário", "Preço Total", "Obs. Item",
	}
	if err := novaAba(f, "Detalhamento (Itens)", cabecalho); err != nil {
		return err
	}
	for i, linha := range linhas {
		row := []interface{}{
			linha.NumeroProposta, linha.Produto, linha.Unidade, linha.Quantidade,
			linha.PrecoUnitario, linha.PrecoTotal, linha.ObsItem,
		}
		if err := f.SetSheetRow("Detalhamento (Itens)", fmt.Sprintf("A%d", i+2), &row); err != nil {
			return err
		}
	}
	return nil
}

func formatarData(data *time.Time) string {
	if data == nil {
		return ""
	}
	return data.Format("02/01/2006")
}

func derefOuVazio(valor *string) string {
	if valor == nil {
		return ""
	}
	return *valor
}

func unidadesDoProduto(produto entities.Produto) string {
	if len(produto.Unidades) > 0 {
		siglas := make([]string, 0, len(produto.Unidades))
		for _, unidade := range produto.Unidades {
			siglas = append(siglas, unidade.Sigla)
		}
		return strings.Join(siglas, ", ")
	}
	if produto.UnidadeTexto != nil {
		return *produto.UnidadeTexto
	}
	return ""
}
