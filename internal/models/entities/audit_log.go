package entities

import "time"

// Ações registradas na trilha de auditoria
const (
	ActionCreate = "CREATE"
	ActionUpdate = "UPDATE"
	ActionDelete = "DELETE"
)

// Tags de entidade usadas nos registros de auditoria
const (
	EntityLicitacao  = "LICITACAO"
	EntityFornecedor = "FORNECEDOR"
	EntityProduto    = "PRODUTO"
	EntityProposta   = "PROPOSTA"
	EntityItem       = "ITEM"
	EntityUser       = "USER"
	EntityCategoria  = "CATEGORIA"
	EntityUnidade    = "UNIDADE"
)

// AuditLog é uma linha da trilha de auditoria: quem fez o quê, em qual
// entidade, com uma descrição legível. Escrita best-effort após cada
// mutação bem-sucedida.
type AuditLog struct {
	Id        uint      `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	UserId    uint      `json:"userId" gorm:"column:user_id;not null"`
	User      *User     `json:"user,omitempty" gorm:"foreignKey:UserId"`
	Action    string    `json:"action" gorm:"column:action;size:20;not null"`
	Entity    string    `json:"entity" gorm:"column:entity;size:30;not null"`
	EntityId  *uint     `json:"entityId,omitempty" gorm:"column:entity_id"`
	Details   *string   `json:"details,omitempty" gorm:"column:details;type:text"`
	CreatedAt time.Time `json:"createdAt" gorm:"column:created_at;not null"`
}

// TableName especifica o nome da tabela no banco
func (AuditLog) TableName() string {
	return "audit_logs"
}
