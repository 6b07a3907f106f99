package models

import (
	"time"
)

// Caso represents a deceased individual record. Rows are created by the
// external ingestion pipeline and are read-only inside this service.
type Caso struct {
	BaseModel
	Nome             string     `json:"nome" gorm:"size:200;not null"`
	CPF              string     `json:"cpf" gorm:"column:cpf;size:20"`
	DataObito        *time.Time `json:"data_obito" gorm:"column:data_obito;index"`
	DataNascimento   *time.Time `json:"data_nascimento" gorm:"column:data_nascimento"`
	Idade            int        `json:"idade"`
	Genero           string     `json:"genero" gorm:"size:20"`
	Profissao        string     `json:"profissao" gorm:"size:100"`
	Cidade           string     `json:"cidade" gorm:"size:100;index"`
	Estado           string     `json:"estado" gorm:"size:2"`
	LocalFalecimento string     `json:"local_falecimento" gorm:"size:200"`
	Funeraria        string     `json:"funeraria" gorm:"size:200"`
	LocalSepultamento string    `json:"local_sepultamento" gorm:"size:200"`
	LinkFonte        string     `json:"link_fonte" gorm:"size:500"`
	InfoExtra        string     `json:"info_extra" gorm:"type:text"`

	// Address sub-fields
	Logradouro string `json:"logradouro" gorm:"size:200"`
	Numero     string `json:"numero" gorm:"size:20"`
	Bairro     string `json:"bairro" gorm:"size:100"`
	CEP        string `json:"cep" gorm:"column:cep;size:10"`

	// Relationships
	Relacionamentos []Relacionamento `json:"relacionamentos,omitempty" gorm:"foreignKey:CasoID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Caso
func (Caso) TableName() string {
	return "casos"
}
