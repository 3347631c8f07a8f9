package entities

import "time"

// User representa um usuário do sistema. IsAdmin substitui a antiga
// comparação com um e-mail fixo: apenas administradores acessam a
// trilha de auditoria e o gerenciamento de usuários.
type User struct {
	Id           uint      `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	Name         string    `json:"name" gorm:"column:name;size:150;not null"`
	Email        string    `json:"email" gorm:"column:email;size:255;not null;uniqueIndex"`
	PasswordHash string    `json:"-" gorm:"column:password_hash;size:100;not null"` // Nunca retornar no JSON
	IsAdmin      bool      `json:"isAdmin" gorm:"column:is_admin;not null;default:false"`
	CreatedAt    time.Time `json:"createdAt" gorm:"column:created_at;not null"`
}

// TableName especifica o nome da tabela no banco
func (User) TableName() string {
	return "users"
}
