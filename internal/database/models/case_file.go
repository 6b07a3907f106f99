package models

import (
	"github.com/google/uuid"
)

// CaseFile records an attachment uploaded for a caso. The binary itself lives
// in the object store under StorageKey; this row is the listing metadata.
type CaseFile struct {
	BaseModel
	CasoID      uuid.UUID `json:"caso_id" gorm:"type:uuid;not null;index"`
	StorageKey  string    `json:"storage_key" gorm:"size:500;not null"`
	FileName    string    `json:"file_name" gorm:"size:255;not null"`
	ContentType string    `json:"content_type" gorm:"size:100"`
	SizeBytes   int64     `json:"size_bytes"`
	UploadedBy  uuid.UUID `json:"uploaded_by" gorm:"type:uuid"`

	// Relationships
	Caso Caso `json:"caso,omitempty" gorm:"foreignKey:CasoID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for CaseFile
func (CaseFile) TableName() string {
	return "case_files"
}
