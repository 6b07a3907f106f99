package repository

import (
	"pipeline-crm-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProfileRepository handles database operations for operator profiles
type ProfileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// Create creates a new profile
func (r *ProfileRepository) Create(profile *models.Profile) error {
	return r.db.Create(profile).Error
}

// GetByID retrieves a profile by ID
func (r *ProfileRepository) GetByID(id uuid.UUID) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.First(&profile, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// GetByEmail retrieves a profile by email
func (r *ProfileRepository) GetByEmail(email string) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.First(&profile, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// GetAll retrieves all profiles with pagination
func (r *ProfileRepository) GetAll(limit, offset int) ([]models.Profile, int64, error) {
	var profiles []models.Profile
	var total int64

	if err := r.db.Model(&models.Profile{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.Model(&models.Profile{}).
		Order("full_name").
		Limit(limit).Offset(offset).
		Find(&profiles).Error; err != nil {
		return nil, 0, err
	}

	return profiles, total, nil
}

// Update updates a profile
func (r *ProfileRepository) Update(profile *models.Profile) error {
	return r.db.Save(profile).Error
}

// Delete deletes a profile
func (r *ProfileRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Profile{}, "id = ?", id).Error
}

// UpdateRole updates a profile's role
func (r *ProfileRepository) UpdateRole(id uuid.UUID, role models.ProfileRole) error {
	result := r.db.Model(&models.Profile{}).Where("id = ?", id).Update("role", role)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SetActiveStatus activates or deactivates a profile
func (r *ProfileRepository) SetActiveStatus(id uuid.UUID, isActive bool) error {
	result := r.db.Model(&models.Profile{}).Where("id = ?", id).Update("is_active", isActive)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
