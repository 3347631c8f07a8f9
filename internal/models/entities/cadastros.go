package entities

import "time"

// CategoriaProduto agrupa produtos para os relatórios
type CategoriaProduto struct {
	Id        uint      `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	Nome      string    `json:"nome" gorm:"column:nome;size:150;not null"`
	CreatedAt time.Time `json:"createdAt" gorm:"column:created_at;not null"`
}

// TableName especifica o nome da tabela no banco
func (CategoriaProduto) TableName() string {
	return "categorias_produto"
}

// UnidadeMedida é referenciada pelo produto (unidade legada e conjunto
// de unidades permitidas) e pelo item de proposta (unidade escolhida).
type UnidadeMedida struct {
	Id        uint      `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	Sigla     string    `json:"sigla" gorm:"column:sigla;size:20;not null"`
	Nome      *string   `json:"nome,omitempty" gorm:"column:nome;size:100"`
	CreatedAt time.Time `json:"createdAt" gorm:"column:created_at;not null"`
}

// TableName especifica o nome da tabela no banco
func (UnidadeMedida) TableName() string {
	return "unidades_medida"
}
