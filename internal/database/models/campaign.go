package models

import (
	"time"

	"github.com/google/uuid"
)

// Campaign represents a named outreach grouping of contacts, independent of
// pipeline status
type Campaign struct {
	BaseModel
	Name        string         `json:"name" gorm:"size:100;not null"`
	Description string         `json:"description" gorm:"size:500"`
	Status      CampaignStatus `json:"status" gorm:"type:varchar(20);default:'active'"`
	Platforms   []string       `json:"platforms" gorm:"type:jsonb;serializer:json"`
	CreatedBy   uuid.UUID      `json:"created_by" gorm:"type:uuid;index"`
	UpdatedAt   time.Time      `json:"updated_at"`

	// Relationships
	Leads []CampaignLead `json:"leads,omitempty" gorm:"foreignKey:CampaignID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Campaign
func (Campaign) TableName() string {
	return "campaigns"
}

// CampaignLead joins a Campaign to a Contato. Membership is replaced
// wholesale on every campaign save.
type CampaignLead struct {
	BaseModel
	CampaignID uuid.UUID `json:"campaign_id" gorm:"type:uuid;not null;uniqueIndex:idx_campaign_contato"`
	ContatoID  uuid.UUID `json:"contato_id" gorm:"type:uuid;not null;uniqueIndex:idx_campaign_contato"`

	// Relationships
	Campaign Campaign `json:"campaign,omitempty" gorm:"foreignKey:CampaignID;constraint:OnDelete:CASCADE"`
	Contato  Contato  `json:"contato,omitempty" gorm:"foreignKey:ContatoID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for CampaignLead
func (CampaignLead) TableName() string {
	return "campaign_leads"
}
