package dto

// CreateCategoriaRequest cria uma categoria de produto
type CreateCategoriaRequest struct {
	Nome string `json:"nome"`
}

// CreateUnidadeRequest cria uma unidade de medida
type CreateUnidadeRequest struct {
	Sigla string  `json:"sigla"`
	Nome  *string `json:"nome,omitempty"`
}

// CreateFornecedorRequest cria um fornecedor
type CreateFornecedorRequest struct {
	Nome        string  `json:"nome"`
	Contato     *string `json:"contato,omitempty"`
	Whatsapp    *string `json:"whatsapp,omitempty"`
	Email       *string `json:"email,omitempty"`
	CNPJ        *string `json:"cnpj,omitempty"`
	Observacoes *string `json:"observacoes,omitempty"`
}

// UpdateFornecedorRequest atualiza um fornecedor; apenas os campos
// presentes são alterados
type UpdateFornecedorRequest struct {
	Nome        *string `json:"nome,omitempty"`
	Contato     *string `json:"contato,omitempty"`
	Whatsapp    *string `json:"whatsapp,omitempty"`
	Email       *string `json:"email,omitempty"`
	CNPJ        *string `json:"cnpj,omitempty"`
	Observacoes *string `json:"observacoes,omitempty"`
}

// CreateProdutoRequest cria um produto. A unidade pode vir como
// referência legada (UnidadeId ou UnidadeTexto) ou como conjunto de
// unidades permitidas (UnidadeIds).
type CreateProdutoRequest struct {
	Nome         string  `json:"nome"`
	CategoriaId  *uint   `json:"categoriaId,omitempty"`
	UnidadeId    *uint   `json:"unidadeId,omitempty"`
	UnidadeTexto *string `json:"unidade,omitempty"`
	UnidadeIds   []uint  `json:"unidadeIds,omitempty"`
}

// UpdateProdutoRequest atualiza um produto parcialmente
type UpdateProdutoRequest struct {
	Nome         *string `json:"nome,omitempty"`
	CategoriaId  *uint   `json:"categoriaId,omitempty"`
	UnidadeId    *uint   `json:"unidadeId,omitempty"`
	UnidadeTexto *string `json:"unidadeLegacy,omitempty"`
	UnidadeIds   []uint  `json:"unidadeIds,omitempty"`
}
