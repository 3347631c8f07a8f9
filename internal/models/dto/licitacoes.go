package dto

// CreateLicitacaoRequest cria uma licitação
type CreateLicitacaoRequest struct {
	Nome        string  `json:"nome"`
	MunicipioId uint    `json:"municipioId"`
	Data        *string `json:"data,omitempty"`
}

// UpdateLicitacaoRequest atualiza uma licitação parcialmente
type UpdateLicitacaoRequest struct {
	Nome        *string `json:"nome,omitempty"`
	MunicipioId *uint   `json:"municipioId,omitempty"`
	Data        *string `json:"data,omitempty"`
}

// CreatePropostaRequest cria uma proposta de fornecedor
type CreatePropostaRequest struct {
	Numero       string  `json:"numero"`
	LicitacaoId  uint    `json:"licitacaoId"`
	FornecedorId uint    `json:"fornecedorId"`
	Data         *string `json:"data,omitempty"`
	ArquivoURL   *string `json:"arquivoUrl,omitempty"`
	Observacoes  *string `json:"observacoes,omitempty"`
}

// UpdatePropostaRequest atualiza uma proposta parcialmente
type UpdatePropostaRequest struct {
	Numero       *string `json:"numero,omitempty"`
	LicitacaoId  *uint   `json:"licitacaoId,omitempty"`
	FornecedorId *uint   `json:"fornecedorId,omitempty"`
	Data         *string `json:"data,omitempty"`
	ArquivoURL   *string `json:"arquivoUrl,omitempty"`
	Observacoes  *string `json:"observacoes,omitempty"`
}

// CreateItemRequest adiciona um item precificado a uma proposta.
// Quantidade e preço são ponteiros para distinguir zero de ausente.
type CreateItemRequest struct {
	PropostaId    uint     `json:"propostaId"`
	ProdutoId     uint     `json:"produtoId"`
	UnidadeId     *uint    `json:"unidadeId,omitempty"`
	Quantidade    *float64 `json:"quantidade"`
	PrecoUnitario *float64 `json:"precoUnitario"`
	Observacoes   *string  `json:"observacoes,omitempty"`
}

// UpdateItemRequest atualiza um item; o preço total é sempre
// recalculado a partir dos valores resultantes
type UpdateItemRequest struct {
	ProdutoId     *uint    `json:"produtoId,omitempty"`
	UnidadeId     *uint    `json:"unidadeId,omitempty"`
	Quantidade    *float64 `json:"quantidade,omitempty"`
	PrecoUnitario *float64 `json:"precoUnitario,omitempty"`
	Observacoes   *string  `json:"observacoes,omitempty"`
}
