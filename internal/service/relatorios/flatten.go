// Package relatorios monta o relatório geral achatado e a exportação
// de planilha a partir do grafo de propostas.
package relatorios

import (
	"sort"
	"strings"

	"propostasrest/internal/models/dto"
	"propostasrest/internal/models/entities"
)

// ResolverUnidade decide qual unidade exibir para um item: a unidade
// escolhida no item, senão a primeira unidade vinculada ao produto,
// senão a referência escalar legada, senão o texto livre, senão "-".
func ResolverUnidade(item entities.ItemProposta) string {
	if item.Unidade != nil && item.Unidade.Sigla != "" {
		return item.Unidade.Sigla
	}
	if item.Produto != nil {
		if len(item.Produto.Unidades) > 0 && item.Produto.Unidades[0].Sigla != "" {
			return item.Produto.Unidades[0].Sigla
		}
		if item.Produto.Unidade != nil && item.Produto.Unidade.Sigla != "" {
			return item.Produto.Unidade.Sigla
		}
		if item.Produto.UnidadeTexto != nil && *item.Produto.UnidadeTexto != "" {
			return *item.Produto.UnidadeTexto
		}
	}
	return "-"
}

// Flatten produz uma linha de relatório por item de proposta.
// Propostas sem itens não geram linhas. Município sai com o nome
// completo e, como a categoria, cai para "-" quando ausente.
func Flatten(propostas []entities.Proposta) []dto.LinhaRelatorio {
	linhas := make([]dto.LinhaRelatorio, 0)
	for _, proposta := range propostas {
		for _, item := range proposta.Itens {
			linha := dto.LinhaRelatorio{
				Id:             item.Id,
				Data:           proposta.Data,
				Municipio:      "-",
				Categoria:      "-",
				Unidade:        ResolverUnidade(item),
				Quantidade:     item.Quantidade,
				NumeroProposta: proposta.Numero,
				ArquivoURL:     proposta.ArquivoURL,
			}
			linha.PrecoUnitario, _ = item.PrecoUnitario.Float64()
			linha.PrecoTotal, _ = item.PrecoTotal.Float64()

			if proposta.Licitacao != nil {
				linha.Licitacao = proposta.Licitacao.Nome
				if proposta.Licitacao.Municipio != nil {
					linha.Municipio = proposta.Licitacao.Municipio.NomeCompleto
				}
			}
			if proposta.Fornecedor != nil {
				linha.Fornecedor = proposta.Fornecedor.Nome
			}
			if item.Produto != nil {
				linha.Produto = item.Produto.Nome
				if item.Produto.Categoria != nil {
					linha.Categoria = item.Produto.Categoria.Nome
				}
			}
			if proposta.Observacoes != nil {
				linha.ObsProposta = *proposta.Observacoes
			}
			if item.Observacoes != nil {
				linha.ObsItem = *item.Observacoes
			}

			linhas = append(linhas, linha)
		}
	}
	return linhas
}

// OrdenarPorData ordena as linhas da mais recente para a mais antiga.
// Linhas sem data vão para o fim.
func OrdenarPorData(linhas []dto.LinhaRelatorio) {
	sort.SliceStable(linhas, func(i, j int) bool {
		a, b := linhas[i].Data, linhas[j].Data
		if a == nil {
			return false
		}
		if b == nil {
			return true
		}
		return a.After(*b)
	})
}

// AplicarFiltros devolve as propostas que passam em todos os filtros
// preenchidos. A proposta inteira sobrevive ou cai: os itens nunca são
// filtrados individualmente.
func AplicarFiltros(propostas []entities.Proposta, filtro dto.FiltroRelatorio) []entities.Proposta {
	if filtro.Vazio() {
		return propostas
	}

	termos := termosDeBusca(filtro.Search)

	resultado := make([]entities.Proposta, 0, len(propostas))
	for _, proposta := range propostas {
		if !atendeData(proposta, filtro.DateStart, filtro.DateEnd) {
			continue
		}
		if !atendeCampo(municipioDaProposta(proposta), filtro.Municipio) {
			continue
		}
		if !atendeCampo(fornecedorDaProposta(proposta), filtro.Fornecedor) {
			continue
		}
		if !atendeCampo(licitacaoDaProposta(proposta), filtro.Licitacao) {
			continue
		}
		if len(termos) > 0 && !atendeBusca(proposta, termos) {
			continue
		}
		resultado = append(resultado, proposta)
	}
	return resultado
}

// termosDeBusca quebra o texto de busca em termos minúsculos
func termosDeBusca(search string) []string {
	return strings.Fields(strings.ToLower(search))
}

// atendeBusca verifica se algum item da proposta satisfaz todos os
// termos ao mesmo tempo
func atendeBusca(proposta entities.Proposta, termos []string) bool {
	for _, item := range proposta.Itens {
		if itemAtendeBusca(proposta, item, termos) {
			return true
		}
	}
	return false
}

// itemAtendeBusca exige que cada termo apareça em pelo menos um dos
// campos pesquisáveis do item ou da proposta
func itemAtendeBusca(proposta entities.Proposta, item entities.ItemProposta, termos []string) bool {
	campos := make([]string, 0, 5)
	if item.Produto != nil {
		campos = append(campos, strings.ToLower(item.Produto.Nome))
	}
	if proposta.Licitacao != nil {
		campos = append(campos, strings.ToLower(proposta.Licitacao.Nome))
	}
	if proposta.Fornecedor != nil {
		campos = append(campos, strings.ToLower(proposta.Fornecedor.Nome))
	}
	if proposta.Observacoes != nil {
		campos = append(campos, strings.ToLower(*proposta.Observacoes))
	}
	if item.Observacoes != nil {
		campos = append(campos, strings.ToLower(*item.Observacoes))
	}

	for _, termo := range termos {
		encontrado := false
		for _, campo := range campos {
			if strings.Contains(campo, termo) {
				encontrado = true
				break
			}
		}
		if !encontrado {
			return false
		}
	}
	return true
}

// atendeData aplica o intervalo de datas, inclusivo nas duas pontas.
// Propostas sem data só passam quando nenhum limite foi informado.
func atendeData(proposta entities.Proposta, dateStart, dateEnd string) bool {
	if dateStart == "" && dateEnd == "" {
		return true
	}
	if proposta.Data == nil {
		return false
	}
	data := proposta.Data.Format("2006-01-02")
	if dateStart != "" && data < dateStart {
		return false
	}
	if dateEnd != "" && data > dateEnd {
		return false
	}
	return true
}

// atendeCampo exige igualdade exata quando o filtro foi informado
func atendeCampo(valor, filtro string) bool {
	if filtro == "" {
		return true
	}
	return valor == filtro
}

// o filtro de município compara contra o nome completo (nome + UF)
func municipioDaProposta(proposta entities.Proposta) string {
	if proposta.Licitacao != nil && proposta.Licitacao.Municipio != nil {
		return proposta.Licitacao.Municipio.NomeCompleto
	}
	return ""
}

func fornecedorDaProposta(proposta entities.Proposta) string {
	if proposta.Fornecedor != nil {
		return proposta.Fornecedor.Nome
	}
	return ""
}

func licitacaoDaProposta(proposta entities.Proposta) string {
	if proposta.Licitacao != nil {
		return proposta.Licitacao.Nome
	}
	return ""
}
