package repository

import (
	"pipeline-crm-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CaseFileRepository handles database operations for uploaded case documents
type CaseFileRepository struct {
	db *gorm.DB
}

// NewCaseFileRepository creates a new case file repository
func NewCaseFileRepository(db *gorm.DB) *CaseFileRepository {
	return &CaseFileRepository{db: db}
}

// Create creates a new case file record
func (r *CaseFileRepository) Create(file *models.CaseFile) error {
	return r.db.Create(file).Error
}

// GetByID retrieves a case file by ID
func (r *CaseFileRepository) GetByID(id uuid.UUID) (*models.CaseFile, error) {
	var file models.CaseFile
	err := r.db.First(&file, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &file, nil
}

// GetByCasoID retrieves all files attached to a caso
func (r *CaseFileRepository) GetByCasoID(casoID uuid.UUID) ([]models.CaseFile, error) {
	var files []models.CaseFile
	err := r.db.Where("caso_id = ?", casoID).
		Order("created_at DESC").
		Find(&files).Error
	if err != nil {
		return nil, err
	}
	return files, nil
}

// Delete deletes a case file record
func (r *CaseFileRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.CaseFile{}, "id = ?", id).Error
}
