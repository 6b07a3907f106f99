package models

import (
	"github.com/google/uuid"
)

// Relacionamento links a Contato to a Caso with a relationship-type label
// (e.g. "filho", "cônjuge"). Rows are immutable once ingested.
type Relacionamento struct {
	BaseModel
	CasoID         uuid.UUID `json:"caso_id" gorm:"type:uuid;not null;index"`
	ContatoID      uuid.UUID `json:"contato_id" gorm:"type:uuid;not null;index"`
	TipoParentesco string    `json:"tipo_parentesco" gorm:"size:50"`

	// Relationships
	Caso    *Caso    `json:"caso,omitempty" gorm:"foreignKey:CasoID;constraint:OnDelete:CASCADE"`
	Contato *Contato `json:"contato,omitempty" gorm:"foreignKey:ContatoID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Relacionamento
func (Relacionamento) TableName() string {
	return "relacionamentos"
}
