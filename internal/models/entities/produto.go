package entities

import "time"

// Produto carrega duas representações de unidade herdadas da migração:
// o campo escalar legado (UnidadeId/UnidadeTexto) e o conjunto
// many-to-many Unidades. O escalar é mantido como fallback e
// sincronizado na escrita com a sigla da primeira unidade vinculada.
type Produto struct {
	Id           uint              `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	Nome         string            `json:"nome" gorm:"column:nome;size:200;not null"`
	CategoriaId  *uint             `json:"categoriaId,omitempty" gorm:"column:categoria_id"`
	Categoria    *CategoriaProduto `json:"categoria,omitempty" gorm:"foreignKey:CategoriaId"`
	UnidadeId    *uint             `json:"unidadeId,omitempty" gorm:"column:unidade_id"`
	Unidade      *UnidadeMedida    `json:"unidade,omitempty" gorm:"foreignKey:UnidadeId"`
	UnidadeTexto *string           `json:"unidadeTexto,omitempty" gorm:"column:unidade_texto;size:50"`
	Unidades     []UnidadeMedida   `json:"unidades,omitempty" gorm:"many2many:produto_unidades"`
	CreatedAt    time.Time         `json:"createdAt" gorm:"column:created_at;not null"`
}

// TableName especifica o nome da tabela no banco
func (Produto) TableName() string {
	return "produtos"
}
