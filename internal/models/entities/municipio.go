package entities

// Municipio é dado de referência carregado uma única vez a partir do
// registro nacional (IBGE). Nunca é alterado pela aplicação.
type Municipio struct {
	Id           uint   `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	CodigoIBGE   string `json:"codigoIbge" gorm:"column:codigo_ibge;size:20;not null;uniqueIndex"`
	Nome         string `json:"nome" gorm:"column:nome;size:150;not null"`
	UF           string `json:"uf" gorm:"column:uf;size:2;not null"`
	NomeCompleto string `json:"nomeCompleto" gorm:"column:nome_completo;size:160;not null"`
}

// TableName especifica o nome da tabela no banco
func (Municipio) TableName() string {
	return "municipios"
}
