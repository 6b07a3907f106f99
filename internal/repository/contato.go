package repository

import (
	"strings"
	"time"

	"pipeline-crm-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContatoRepository handles database operations for contatos
type ContatoRepository struct {
	db *gorm.DB
}

// NewContatoRepository creates a new contato repository
func NewContatoRepository(db *gorm.DB) *ContatoRepository {
	return &ContatoRepository{db: db}
}

// StatusCount is a per-status aggregate row for dashboard and kanban headers
type StatusCount struct {
	Status models.PipelineStatus `json:"status"`
	Count  int64                 `json:"count"`
}

// PipelineCard is a joined projection of a contato with its linked caso,
// deduplicated so each contato appears once per caso
type PipelineCard struct {
	ContatoID       uuid.UUID             `json:"contato_id"`
	ContatoNome     string                `json:"contato_nome"`
	Telefone1       string                `json:"telefone_1"`
	Telefone2       string                `json:"telefone_2"`
	Telefone3       string                `json:"telefone_3"`
	Telefone4       string                `json:"telefone_4"`
	Status          models.PipelineStatus `json:"status"`
	StatusUpdatedAt time.Time             `json:"status_updated_at"`
	ScheduledFor    *time.Time            `json:"scheduled_for"`
	Notes           string                `json:"notes"`
	Contacted       bool                  `json:"contacted"`
	CasoID          uuid.UUID             `json:"caso_id"`
	CasoNome        string                `json:"caso_nome"`
	Cidade          string                `json:"cidade"`
	DataObito       *time.Time            `json:"data_obito"`
	TipoParentesco  string                `json:"tipo_parentesco"`
}

// Create creates a new contato
func (r *ContatoRepository) Create(contato *models.Contato) error {
	return r.db.Create(contato).Error
}

// GetByID retrieves a contato by ID
func (r *ContatoRepository) GetByID(id uuid.UUID) (*models.Contato, error) {
	var contato models.Contato
	err := r.db.First(&contato, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &contato, nil
}

// GetAll retrieves all contatos with pagination
func (r *ContatoRepository) GetAll(limit, offset int) ([]models.Contato, int64, error) {
	var contatos []models.Contato
	var total int64

	if err := r.db.Model(&models.Contato{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.Model(&models.Contato{}).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&contatos).Error; err != nil {
		return nil, 0, err
	}

	return contatos, total, nil
}

// GetByCasoID retrieves all contatos linked to a caso, with parentesco
func (r *ContatoRepository) GetByCasoID(casoID uuid.UUID) ([]models.Contato, error) {
	var contatos []models.Contato
	err := r.db.Model(&models.Contato{}).
		Joins("JOIN relacionamentos ON relacionamentos.contato_id = contatos.id").
		Where("relacionamentos.caso_id = ?", casoID).
		Distinct("contatos.*").
		Find(&contatos).Error
	if err != nil {
		return nil, err
	}
	return contatos, nil
}

// Update updates a contato
func (r *ContatoRepository) Update(contato *models.Contato) error {
	return r.db.Save(contato).Error
}

// Delete deletes a contato
func (r *ContatoRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Contato{}, "id = ?", id).Error
}

// UpdateStatus sets the pipeline status and stamps status_updated_at.
// The scheduled date is written for Scheduled and cleared for every other
// status, all in one statement.
func (r *ContatoRepository) UpdateStatus(id uuid.UUID, status models.PipelineStatus, scheduledFor *time.Time, now time.Time) error {
	updates := map[string]interface{}{
		"status":            status,
		"status_updated_at": now,
	}
	if status == models.StatusScheduled {
		updates["scheduled_for"] = scheduledFor
	} else {
		updates["scheduled_for"] = nil
	}
	result := r.db.Model(&models.Contato{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// UpdateScheduledDate sets the scheduled date without touching the status
func (r *ContatoRepository) UpdateScheduledDate(id uuid.UUID, scheduledFor *time.Time) error {
	result := r.db.Model(&models.Contato{}).
		Where("id = ?", id).
		Update("scheduled_for", scheduledFor)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// UpdateNotes replaces the free-text notes of a contato
func (r *ContatoRepository) UpdateNotes(id uuid.UUID, notes string) error {
	result := r.db.Model(&models.Contato{}).Where("id = ?", id).Update("notes", notes)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SetContacted flips the legacy contacted flag
func (r *ContatoRepository) SetContacted(id uuid.UUID, contacted bool) error {
	result := r.db.Model(&models.Contato{}).Where("id = ?", id).Update("contacted", contacted)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// WinAndCloseSiblings marks the contato Won and closes every other contato
// linked to the same caso, in a single transaction. Siblings already in a
// terminal status are left untouched, which also makes the cascade idempotent
// under concurrent wins. Returns the number of siblings auto-closed.
func (r *ContatoRepository) WinAndCloseSiblings(contatoID, casoID uuid.UUID, autoCloseNote string, now time.Time) (int64, error) {
	var closed int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Contato{}).
			Where("id = ?", contatoID).
			Updates(map[string]interface{}{
				"status":            models.StatusWon,
				"status_updated_at": now,
				"scheduled_for":     nil,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		siblings := tx.Model(&models.Relacionamento{}).
			Select("contato_id").
			Where("caso_id = ?", casoID)

		result = tx.Model(&models.Contato{}).
			Where("id IN (?) AND id <> ? AND status NOT IN ?",
				siblings, contatoID,
				[]models.PipelineStatus{models.StatusWon, models.StatusLost}).
			Updates(map[string]interface{}{
				"status":            models.StatusLost,
				"status_updated_at": now,
				"scheduled_for":     nil,
				"notes":             gorm.Expr("COALESCE(notes, '') || ?", autoCloseNote),
			})
		if result.Error != nil {
			return result.Error
		}
		closed = result.RowsAffected
		return nil
	})
	return closed, err
}

// Count returns the total number of contatos
func (r *ContatoRepository) Count() (int64, error) {
	var total int64
	err := r.db.Model(&models.Contato{}).Count(&total).Error
	return total, err
}

// CountContacted returns the number of contatos with the contacted flag set
func (r *ContatoRepository) CountContacted() (int64, error) {
	var total int64
	err := r.db.Model(&models.Contato{}).Where("contacted = ?", true).Count(&total).Error
	return total, err
}

// CountByStatus aggregates contato counts per pipeline status
func (r *ContatoRepository) CountByStatus() ([]StatusCount, error) {
	var counts []StatusCount
	err := r.db.Model(&models.Contato{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Find(&counts).Error
	if err != nil {
		return nil, err
	}
	return counts, nil
}

// GetPipelineCards retrieves contato/caso card rows for the kanban board,
// optionally filtered by caso city. Each contato appears once per linked caso.
func (r *ContatoRepository) GetPipelineCards(city string, limit, offset int) ([]PipelineCard, int64, error) {
	var cards []PipelineCard
	var total int64

	query := r.db.Model(&models.Contato{}).
		Select(`DISTINCT ON (contatos.id, casos.id)
			contatos.id AS contato_id,
			contatos.nome AS contato_nome,
			contatos.telefone_1, contatos.telefone_2, contatos.telefone_3, contatos.telefone_4,
			contatos.status, contatos.status_updated_at, contatos.scheduled_for,
			contatos.notes, contatos.contacted,
			casos.id AS caso_id, casos.nome AS caso_nome, casos.cidade, casos.data_obito,
			relacionamentos.tipo_parentesco`).
		Joins("JOIN relacionamentos ON relacionamentos.contato_id = contatos.id").
		Joins("JOIN casos ON casos.id = relacionamentos.caso_id")

	countQuery := r.db.Model(&models.Contato{}).
		Joins("JOIN relacionamentos ON relacionamentos.contato_id = contatos.id").
		Joins("JOIN casos ON casos.id = relacionamentos.caso_id").
		Distinct("contatos.id, casos.id")

	if city = strings.TrimSpace(city); city != "" {
		query = query.Where("casos.cidade ILIKE ?", "%"+city+"%")
		countQuery = countQuery.Where("casos.cidade ILIKE ?", "%"+city+"%")
	}

	if err := countQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Order("contatos.id, casos.id, contatos.status_updated_at DESC").
		Limit(limit).Offset(offset).
		Scan(&cards).Error; err != nil {
		return nil, 0, err
	}

	return cards, total, nil
}

// Search searches contatos by name, CPF or any phone column
func (r *ContatoRepository) Search(query string, limit, offset int) ([]models.Contato, int64, error) {
	var contatos []models.Contato
	var total int64

	q := strings.TrimSpace(query)
	if q == "" {
		return r.GetAll(limit, offset)
	}

	pattern := "%" + q + "%"
	searchQuery := r.db.Model(&models.Contato{}).
		Where("nome ILIKE ? OR cpf ILIKE ? OR telefone_1 ILIKE ? OR telefone_2 ILIKE ? OR telefone_3 ILIKE ? OR telefone_4 ILIKE ?",
			pattern, pattern, pattern, pattern, pattern, pattern)

	if err := searchQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := searchQuery.Limit(limit).Offset(offset).Find(&contatos).Error; err != nil {
		return nil, 0, err
	}

	return contatos, total, nil
}
