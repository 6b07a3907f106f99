package repository

import (
	"strings"
	"time"

	"pipeline-crm-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CasoRepository handles database operations for casos
type CasoRepository struct {
	db *gorm.DB
}

// NewCasoRepository creates a new caso repository
func NewCasoRepository(db *gorm.DB) *CasoRepository {
	return &CasoRepository{db: db}
}

// Create creates a new caso
func (r *CasoRepository) Create(caso *models.Caso) error {
	return r.db.Create(caso).Error
}

// GetByID retrieves a caso by ID
func (r *CasoRepository) GetByID(id uuid.UUID) (*models.Caso, error) {
	var caso models.Caso
	err := r.db.First(&caso, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &caso, nil
}

// GetAll retrieves all casos with pagination, optionally filtered by city,
// a death-date range and a free-text search over name and funeral home
func (r *CasoRepository) GetAll(city, search string, dateStart, dateEnd *time.Time, limit, offset int) ([]models.Caso, int64, error) {
	var casos []models.Caso
	var total int64

	query := r.db.Model(&models.Caso{})

	if city = strings.TrimSpace(city); city != "" {
		query = query.Where("cidade ILIKE ?", "%"+city+"%")
	}
	if search = strings.TrimSpace(search); search != "" {
		pattern := "%" + search + "%"
		query = query.Where("nome ILIKE ? OR funeraria ILIKE ?", pattern, pattern)
	}
	if dateStart != nil {
		query = query.Where("data_obito >= ?", *dateStart)
	}
	if dateEnd != nil {
		query = query.Where("data_obito <= ?", *dateEnd)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Order("data_obito DESC NULLS LAST, created_at DESC").
		Limit(limit).Offset(offset).
		Find(&casos).Error; err != nil {
		return nil, 0, err
	}

	return casos, total, nil
}

// GetWithRelacionamentos retrieves a caso with its relacionamentos and contatos
func (r *CasoRepository) GetWithRelacionamentos(id uuid.UUID) (*models.Caso, error) {
	var caso models.Caso
	err := r.db.Preload("Relacionamentos").Preload("Relacionamentos.Contato").
		First(&caso, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &caso, nil
}

// Update updates a caso
func (r *CasoRepository) Update(caso *models.Caso) error {
	return r.db.Save(caso).Error
}

// Delete deletes a caso
func (r *CasoRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Caso{}, "id = ?", id).Error
}

// Count returns the total number of casos
func (r *CasoRepository) Count() (int64, error) {
	var total int64
	err := r.db.Model(&models.Caso{}).Count(&total).Error
	return total, err
}

// GetRecent retrieves the most recently registered casos
func (r *CasoRepository) GetRecent(limit int) ([]models.Caso, error) {
	var casos []models.Caso
	err := r.db.Model(&models.Caso{}).
		Order("created_at DESC").
		Limit(limit).
		Find(&casos).Error
	if err != nil {
		return nil, err
	}
	return casos, nil
}

// GetCities returns the distinct non-empty cities across all casos
func (r *CasoRepository) GetCities() ([]string, error) {
	var cities []string
	err := r.db.Model(&models.Caso{}).
		Where("cidade IS NOT NULL AND cidade <> ''").
		Distinct().
		Order("cidade").
		Pluck("cidade", &cities).Error
	if err != nil {
		return nil, err
	}
	return cities, nil
}
