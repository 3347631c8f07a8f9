package dto

import "time"

// FiltroRelatorio são os filtros opcionais aceitos pelo relatório
// geral e pela exportação de planilha
type FiltroRelatorio struct {
	Search     string `form:"search"`
	DateStart  string `form:"dateStart"`
	DateEnd    string `form:"dateEnd"`
	Municipio  string `form:"municipio"`
	Fornecedor string `form:"fornecedor"`
	Licitacao  string `form:"licitacao"`
}

// Vazio informa se nenhum filtro foi preenchido
func (f FiltroRelatorio) Vazio() bool {
	return f.Search == "" && f.DateStart == "" && f.DateEnd == "" &&
		f.Municipio == "" && f.Fornecedor == "" && f.Licitacao == ""
}

// LinhaRelatorio é uma linha achatada do relatório: uma por item de
// proposta, carregando os campos da proposta e do item
type LinhaRelatorio struct {
	Id             uint       `json:"id"`
	Data           *time.Time `json:"data"`
	Municipio      string     `json:"municipio"`
	Licitacao      string     `json:"licitacao"`
	Fornecedor     string     `json:"fornecedor"`
	Produto        string     `json:"produto"`
	Categoria      string     `json:"categoria"`
	Unidade        string     `json:"unidade"`
	Quantidade     float64    `json:"quantidade"`
	PrecoUnitario  float64    `json:"precoUnitario"`
	PrecoTotal     float64    `json:"precoTotal"`
	NumeroProposta string     `json:"numeroProposta"`
	ArquivoURL     *string    `json:"arquivoUrl"`
	ObsProposta    string     `json:"obsProp"`
	ObsItem        string     `json:"obsItem"`
}
