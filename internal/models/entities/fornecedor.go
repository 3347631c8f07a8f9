package entities

import "time"

// Fornecedor representa um fornecedor participante das licitações.
// O nome é único sob comparação case-insensitive (verificado na rota,
// o índice único do banco cobre apenas a igualdade exata).
type Fornecedor struct {
	Id          uint       `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	Nome        string     `json:"nome" gorm:"column:nome;size:200;not null;uniqueIndex"`
	Contato     *string    `json:"contato,omitempty" gorm:"column:contato;size:150"`
	Whatsapp    *string    `json:"whatsapp,omitempty" gorm:"column:whatsapp;size:30"`
	Email       *string    `json:"email,omitempty" gorm:"column:email;size:255"`
	CNPJ        *string    `json:"cnpj,omitempty" gorm:"column:cnpj;size:20"`
	Observacoes *string    `json:"observacoes,omitempty" gorm:"column:observacoes;type:text"`
	CreatedAt   time.Time  `json:"createdAt" gorm:"column:created_at;not null"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty" gorm:"column:updated_at"`
}

// TableName especifica o nome da tabela no banco
func (Fornecedor) TableName() string {
	return "fornecedores"
}
