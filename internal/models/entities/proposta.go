package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Proposta é a oferta de um fornecedor para uma licitação, com seus
// itens precificados. Os itens são removidos junto com a proposta.
type Proposta struct {
	Id           uint           `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	Numero       string         `json:"numero" gorm:"column:numero;size:50;not null"`
	LicitacaoId  uint           `json:"licitacaoId" gorm:"column:licitacao_id;not null"`
	Licitacao    *Licitacao     `json:"licitacao,omitempty" gorm:"foreignKey:LicitacaoId"`
	FornecedorId uint           `json:"fornecedorId" gorm:"column:fornecedor_id;not null"`
	Fornecedor   *Fornecedor    `json:"fornecedor,omitempty" gorm:"foreignKey:FornecedorId"`
	Data         *time.Time     `json:"data,omitempty" gorm:"column:data"`
	ArquivoURL   *string        `json:"arquivoUrl,omitempty" gorm:"column:arquivo_url;size:500"`
	Observacoes  *string        `json:"observacoes,omitempty" gorm:"column:observacoes;type:text"`
	Itens        []ItemProposta `json:"itens,omitempty" gorm:"foreignKey:PropostaId;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time      `json:"createdAt" gorm:"column:created_at;not null"`
}

// TableName especifica o nome da tabela no banco
func (Proposta) TableName() string {
	return "propostas"
}

// ItemProposta é uma linha precificada de uma proposta. PrecoTotal é
// persistido no momento da escrita (quantidade × preço unitário,
// arredondado para 2 casas) e nunca recalculado na leitura.
type ItemProposta struct {
	Id            uint            `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	PropostaId    uint            `json:"propostaId" gorm:"column:proposta_id;not null"`
	ProdutoId     uint            `json:"produtoId" gorm:"column:produto_id;not null"`
	Produto       *Produto        `json:"produto,omitempty" gorm:"foreignKey:ProdutoId"`
	UnidadeId     *uint           `json:"unidadeId,omitempty" gorm:"column:unidade_id"`
	Unidade       *UnidadeMedida  `json:"unidade,omitempty" gorm:"foreignKey:UnidadeId"`
	Quantidade    float64         `json:"quantidade" gorm:"column:quantidade;not null"`
	PrecoUnitario decimal.Decimal `json:"precoUnitario" gorm:"column:preco_unitario;type:decimal(12,2);not null"`
	PrecoTotal    decimal.Decimal `json:"precoTotal" gorm:"column:preco_total;type:decimal(14,2);not null"`
	Observacoes   *string         `json:"observacoes,omitempty" gorm:"column:observacoes;type:text"`
	CreatedAt     time.Time       `json:"createdAt" gorm:"column:created_at;not null"`
}

// TableName especifica o nome da tabela no banco
func (ItemProposta) TableName() string {
	return "itens_proposta"
}
