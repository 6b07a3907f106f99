package models

import (
	"strings"
	"time"
)

// Contato represents a relative or acquaintance of a caso and is the unit of
// pipeline tracking. Created by ingestion; status, notes and scheduling are
// mutated through the pipeline service.
type Contato struct {
	BaseModel
	Nome      string `json:"nome" gorm:"size:200;not null"`
	CPF       string `json:"cpf" gorm:"column:cpf;size:20"`
	Telefone1 string `json:"telefone_1" gorm:"column:telefone_1;size:20"`
	Telefone2 string `json:"telefone_2" gorm:"column:telefone_2;size:20"`
	Telefone3 string `json:"telefone_3" gorm:"column:telefone_3;size:20"`
	Telefone4 string `json:"telefone_4" gorm:"column:telefone_4;size:20"`
	Origem    string `json:"origem" gorm:"size:100"`

	// Legacy CRM flag kept for the flat editor view
	Contacted bool   `json:"contacted" gorm:"default:false"`
	Notes     string `json:"notes" gorm:"type:text"`

	Status          PipelineStatus `json:"status" gorm:"type:varchar(20);default:'New';index"`
	StatusUpdatedAt time.Time      `json:"status_updated_at"`
	ScheduledFor    *time.Time     `json:"scheduled_for"`

	// Relationships
	Relacionamentos []Relacionamento `json:"relacionamentos,omitempty" gorm:"foreignKey:ContatoID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Contato
func (Contato) TableName() string {
	return "contatos"
}

// Phones returns the non-empty phone numbers in slot order
func (c *Contato) Phones() []string {
	all := []string{c.Telefone1, c.Telefone2, c.Telefone3, c.Telefone4}
	phones := make([]string, 0, len(all))
	for _, p := range all {
		if strings.TrimSpace(p) != "" {
			phones = append(phones, strings.TrimSpace(p))
		}
	}
	return phones
}

// PhoneDisplay returns the first usable phone number, or empty when none exists
func (c *Contato) PhoneDisplay() string {
	phones := c.Phones()
	if len(phones) == 0 {
		return ""
	}
	return phones[0]
}
