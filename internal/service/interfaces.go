package service

import (
	"context"
	"mime/multipart"
	"time"

	"pipeline-crm-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// PipelineServiceInterface defines the interface for pipeline transitions
type PipelineServiceInterface interface {
	TransitionStatus(contatoID uuid.UUID, req *TransitionStatusRequest) (*TransitionStatusResponse, error)
	UpdateScheduledDate(contatoID uuid.UUID, req *UpdateScheduledDateRequest) error
	SaveNotes(contatoID uuid.UUID, req *SaveNotesRequest) error
	SetContacted(contatoID uuid.UUID, req *SetContactedRequest) error
}

// ContatoServiceInterface defines the interface for contato operations
type ContatoServiceInterface interface {
	CreateContato(req *CreateContatoRequest) (*ContatoResponse, error)
	GetContato(id uuid.UUID) (*ContatoResponse, error)
	GetContatoDetail(id uuid.UUID) (*ContatoDetailResponse, error)
	ListContatos(query string, limit, offset int) ([]ContatoResponse, int64, error)
	UpdateContato(id uuid.UUID, req *UpdateContatoRequest) (*ContatoResponse, error)
	DeleteContato(id uuid.UUID) error
}

// CasoServiceInterface defines the interface for caso operations
type CasoServiceInterface interface {
	CreateCaso(req *CreateCasoRequest) (*CasoResponse, error)
	GetCaso(id uuid.UUID) (*CasoResponse, error)
	GetCasoDetail(id uuid.UUID) (*CasoDetailResponse, error)
	ListCasos(city, search string, dateStart, dateEnd *time.Time, limit, offset int) ([]CasoResponse, int64, error)
	ListCities() ([]string, error)
	UpdateCaso(id uuid.UUID, req *UpdateCasoRequest) (*CasoResponse, error)
	DeleteCaso(id uuid.UUID) error
	LinkContato(casoID uuid.UUID, req *LinkContatoRequest) (*RelativeResponse, error)
	UnlinkContato(relacionamentoID uuid.UUID) error
}

// DashboardServiceInterface defines the interface for read-side views
type DashboardServiceInterface interface {
	GetSummary() (*DashboardSummaryResponse, error)
	GetBoard(city string, limit, offset int) (*KanbanBoardResponse, error)
}

// CampaignServiceInterface defines the interface for campaign operations
type CampaignServiceInterface interface {
	CreateCampaign(role models.ProfileRole, req *CreateCampaignRequest) (*CampaignResponse, error)
	GetCampaign(id uuid.UUID) (*CampaignResponse, error)
	GetCampaignDetail(id uuid.UUID) (*CampaignDetailResponse, error)
	ListCampaigns(limit, offset int) ([]CampaignResponse, int64, error)
	UpdateCampaign(role models.ProfileRole, id uuid.UUID, req *UpdateCampaignRequest) (*CampaignResponse, error)
	DeleteCampaign(role models.ProfileRole, id uuid.UUID) error
	ReplaceLeads(role models.ProfileRole, id uuid.UUID, req *ReplaceLeadsRequest) (*CampaignDetailResponse, error)
}

// ExportServiceInterface defines the interface for lead exports
type ExportServiceInterface interface {
	ExportCampaignLeads(campaignID uuid.UUID) (*ExportResult, error)
}

// ProfileServiceInterface defines the interface for profile management
type ProfileServiceInterface interface {
	CreateProfile(role models.ProfileRole, req *CreateProfileRequest) (*ProfileResponse, error)
	GetProfile(id uuid.UUID) (*ProfileResponse, error)
	ListProfiles(role models.ProfileRole, limit, offset int) ([]ProfileResponse, int64, error)
	UpdateProfile(role models.ProfileRole, id uuid.UUID, req *UpdateProfileRequest) (*ProfileResponse, error)
	ChangePassword(id uuid.UUID, req *ChangePasswordRequest) error
	DeleteProfile(role models.ProfileRole, id uuid.UUID) error
}

// DirectoryServiceInterface defines the interface for LDAP directory lookups
type DirectoryServiceInterface interface {
	IsConfigured() bool
	SearchByName(name string) ([]DirectoryUser, error)
}

// CaseFileServiceInterface defines the interface for case document storage
type CaseFileServiceInterface interface {
	Upload(ctx context.Context, casoID, uploadedBy uuid.UUID, file *multipart.FileHeader) (*CaseFileResponse, error)
	List(casoID uuid.UUID) ([]CaseFileResponse, error)
	Download(ctx context.Context, fileID uuid.UUID) (*CaseFileDownload, error)
	Delete(ctx context.Context, fileID uuid.UUID) error
}
