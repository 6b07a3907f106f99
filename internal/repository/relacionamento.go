package repository

import (
	"pipeline-crm-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RelacionamentoRepository handles database operations for caso-contato links
type RelacionamentoRepository struct {
	db *gorm.DB
}

// NewRelacionamentoRepository creates a new relacionamento repository
func NewRelacionamentoRepository(db *gorm.DB) *RelacionamentoRepository {
	return &RelacionamentoRepository{db: db}
}

// Create creates a new relacionamento
func (r *RelacionamentoRepository) Create(rel *models.Relacionamento) error {
	return r.db.Create(rel).Error
}

// GetByID retrieves a relacionamento by ID
func (r *RelacionamentoRepository) GetByID(id uuid.UUID) (*models.Relacionamento, error) {
	var rel models.Relacionamento
	err := r.db.First(&rel, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &rel, nil
}

// GetByCasoID retrieves all relacionamentos for a caso with contato details
func (r *RelacionamentoRepository) GetByCasoID(casoID uuid.UUID) ([]models.Relacionamento, error) {
	var rels []models.Relacionamento
	err := r.db.Preload("Contato").Where("caso_id = ?", casoID).Find(&rels).Error
	if err != nil {
		return nil, err
	}
	return rels, nil
}

// GetByContatoID retrieves all relacionamentos for a contato with caso details
func (r *RelacionamentoRepository) GetByContatoID(contatoID uuid.UUID) ([]models.Relacionamento, error) {
	var rels []models.Relacionamento
	err := r.db.Preload("Caso").Where("contato_id = ?", contatoID).Find(&rels).Error
	if err != nil {
		return nil, err
	}
	return rels, nil
}

// GetCasoIDsByContatoID returns the distinct caso ids a contato is linked to
func (r *RelacionamentoRepository) GetCasoIDsByContatoID(contatoID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.Model(&models.Relacionamento{}).
		Where("contato_id = ?", contatoID).
		Distinct().
		Pluck("caso_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// Exists reports whether a link between the caso and contato already exists
func (r *RelacionamentoRepository) Exists(casoID, contatoID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.Relacionamento{}).
		Where("caso_id = ? AND contato_id = ?", casoID, contatoID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Delete deletes a relacionamento
func (r *RelacionamentoRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Relacionamento{}, "id = ?", id).Error
}
