package repository

import (
	"time"

	"pipeline-crm-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// CasoRepositoryInterface defines the interface for caso repository operations
type CasoRepositoryInterface interface {
	Create(caso *models.Caso) error
	GetByID(id uuid.UUID) (*models.Caso, error)
	GetAll(city, search string, dateStart, dateEnd *time.Time, limit, offset int) ([]models.Caso, int64, error)
	GetWithRelacionamentos(id uuid.UUID) (*models.Caso, error)
	Update(caso *models.Caso) error
	Delete(id uuid.UUID) error
	Count() (int64, error)
	GetRecent(limit int) ([]models.Caso, error)
	GetCities() ([]string, error)
}

// ContatoRepositoryInterface defines the interface for contato repository operations
type ContatoRepositoryInterface interface {
	Create(contato *models.Contato) error
	GetByID(id uuid.UUID) (*models.Contato, error)
	GetAll(limit, offset int) ([]models.Contato, int64, error)
	GetByCasoID(casoID uuid.UUID) ([]models.Contato, error)
	Update(contato *models.Contato) error
	Delete(id uuid.UUID) error
	UpdateStatus(id uuid.UUID, status models.PipelineStatus, scheduledFor *time.Time, now time.Time) error
	UpdateScheduledDate(id uuid.UUID, scheduledFor *time.Time) error
	UpdateNotes(id uuid.UUID, notes string) error
	SetContacted(id uuid.UUID, contacted bool) error
	WinAndCloseSiblings(contatoID, casoID uuid.UUID, autoCloseNote string, now time.Time) (int64, error)
	Count() (int64, error)
	CountContacted() (int64, error)
	CountByStatus() ([]StatusCount, error)
	GetPipelineCards(city string, limit, offset int) ([]PipelineCard, int64, error)
	Search(query string, limit, offset int) ([]models.Contato, int64, error)
}

// RelacionamentoRepositoryInterface defines the interface for relacionamento repository operations
type RelacionamentoRepositoryInterface interface {
	Create(rel *models.Relacionamento) error
	GetByID(id uuid.UUID) (*models.Relacionamento, error)
	GetByCasoID(casoID uuid.UUID) ([]models.Relacionamento, error)
	GetByContatoID(contatoID uuid.UUID) ([]models.Relacionamento, error)
	GetCasoIDsByContatoID(contatoID uuid.UUID) ([]uuid.UUID, error)
	Exists(casoID, contatoID uuid.UUID) (bool, error)
	Delete(id uuid.UUID) error
}

// CampaignRepositoryInterface defines the interface for campaign repository operations
type CampaignRepositoryInterface interface {
	Create(campaign *models.Campaign) error
	GetByID(id uuid.UUID) (*models.Campaign, error)
	GetAll(limit, offset int) ([]models.Campaign, int64, error)
	GetWithLeads(id uuid.UUID) (*models.Campaign, error)
	Update(campaign *models.Campaign) error
	Delete(id uuid.UUID) error
	ReplaceLeads(campaignID uuid.UUID, contatoIDs []uuid.UUID) error
	GetLeadContatos(campaignID uuid.UUID) ([]models.Contato, error)
	CountLeads(campaignID uuid.UUID) (int64, error)
}

// ProfileRepositoryInterface defines the interface for profile repository operations
type ProfileRepositoryInterface interface {
	Create(profile *models.Profile) error
	GetByID(id uuid.UUID) (*models.Profile, error)
	GetByEmail(email string) (*models.Profile, error)
	GetAll(limit, offset int) ([]models.Profile, int64, error)
	Update(profile *models.Profile) error
	Delete(id uuid.UUID) error
	UpdateRole(id uuid.UUID, role models.ProfileRole) error
	SetActiveStatus(id uuid.UUID, isActive bool) error
}

// CaseFileRepositoryInterface defines the interface for case file repository operations
type CaseFileRepositoryInterface interface {
	Create(file *models.CaseFile) error
	GetByID(id uuid.UUID) (*models.CaseFile, error)
	GetByCasoID(casoID uuid.UUID) ([]models.CaseFile, error)
	Delete(id uuid.UUID) error
}
