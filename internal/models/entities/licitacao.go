package entities

import "time"

// Licitacao representa um processo licitatório de um município
type Licitacao struct {
	Id          uint       `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	Nome        string     `json:"nome" gorm:"column:nome;size:200;not null"`
	MunicipioId uint       `json:"municipioId" gorm:"column:municipio_id;not null"`
	Municipio   *Municipio `json:"municipio,omitempty" gorm:"foreignKey:MunicipioId"`
	Data        *time.Time `json:"data,omitempty" gorm:"column:data"`
	Propostas   []Proposta `json:"propostas,omitempty" gorm:"foreignKey:LicitacaoId"`
	CreatedAt   time.Time  `json:"createdAt" gorm:"column:created_at;not null"`
}

// TableName especifica o nome da tabela no banco
func (Licitacao) TableName() string {
	return "licitacoes"
}
