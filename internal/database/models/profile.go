package models

import (
	"time"
)

// Profile represents a role-bearing user identity, linked one-to-one with an
// authentication identity by email
type Profile struct {
	BaseModel
	Email        string      `json:"email" gorm:"size:200;not null;uniqueIndex"`
	PasswordHash string      `json:"-" gorm:"size:100;not null"`
	FullName     string      `json:"full_name" gorm:"size:200"`
	Role         ProfileRole `json:"role" gorm:"type:varchar(20);default:'operador'"`
	IsActive     bool        `json:"is_active" gorm:"default:true"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// TableName returns the table name for Profile
func (Profile) TableName() string {
	return "profiles"
}
