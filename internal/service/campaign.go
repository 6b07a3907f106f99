package service

import (
	"errors"
	"fmt"
	"time"

	apperrors "pipeline-crm-backend/internal/errors"

	"pipeline-crm-backend/internal/database/models"
	"pipeline-crm-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CampaignService provides campaign-related business logic. Mutating
// operations are gated on the caller's profile role.
type CampaignService struct {
	campaignRepo repository.CampaignRepositoryInterface
	contatoRepo  repository.ContatoRepositoryInterface
	validator    *validator.Validate
}

// Ensure CampaignService implements CampaignServiceInterface
var _ CampaignServiceInterface = (*CampaignService)(nil)

// NewCampaignService creates a new CampaignService
func NewCampaignService(campaignRepo repository.CampaignRepositoryInterface, contatoRepo repository.ContatoRepositoryInterface, validator *validator.Validate) *CampaignService {
	return &CampaignService{
		campaignRepo: campaignRepo,
		contatoRepo:  contatoRepo,
		validator:    validator,
	}
}

// CampaignResponse represents a campaign in API responses
type CampaignResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Status      string    `json:"status"`
	Platforms   []string  `json:"platforms"`
	CreatedBy   string    `json:"created_by,omitempty"`
	LeadCount   int64     `json:"lead_count"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CampaignDetailResponse is a campaign with its enrolled contatos
type CampaignDetailResponse struct {
	CampaignResponse
	Leads []ContatoResponse `json:"leads"`
}

// CreateCampaignRequest represents the payload for creating a campaign
type CreateCampaignRequest struct {
	Name        string   `json:"name" validate:"required,min=1,max=200"`
	Description string   `json:"description" validate:"max=1000"`
	Status      string   `json:"status" validate:"omitempty,oneof=active paused completed"`
	Platforms   []string `json:"platforms" validate:"max=10,dive,max=50"`
	CreatedBy   string   `json:"-"` // derived from the bearer token
}

// UpdateCampaignRequest represents the payload for updating a campaign
type UpdateCampaignRequest struct {
	Name        *string  `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Description *string  `json:"description,omitempty" validate:"omitempty,max=1000"`
	Status      *string  `json:"status,omitempty" validate:"omitempty,oneof=active paused completed"`
	Platforms   []string `json:"platforms,omitempty" validate:"omitempty,max=10,dive,max=50"`
}

// ReplaceLeadsRequest represents the payload for overwriting membership
type ReplaceLeadsRequest struct {
	ContatoIDs []string `json:"contato_ids" validate:"dive,uuid4"`
}

// CreateCampaign validates and creates a new campaign
func (s *CampaignService) CreateCampaign(role models.ProfileRole, req *CreateCampaignRequest) (*CampaignResponse, error) {
	if !role.CanManageCampaigns() {
		return nil, apperrors.ErrInsufficientRole
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	status := models.CampaignStatusActive
	if req.Status != "" {
		status = models.CampaignStatus(req.Status)
	}

	campaign := &models.Campaign{
		Name:        req.Name,
		Description: req.Description,
		Status:      status,
		Platforms:   req.Platforms,
	}
	if req.CreatedBy != "" {
		createdBy, err := uuid.Parse(req.CreatedBy)
		if err != nil {
			return nil, fmt.Errorf("invalid created_by UUID: %w", err)
		}
		campaign.CreatedBy = createdBy
	}

	if err := s.campaignRepo.Create(campaign); err != nil {
		return nil, fmt.Errorf("failed to create campaign: %w", err)
	}

	resp := toCampaignResponse(campaign, 0)
	return &resp, nil
}

// GetCampaign retrieves a campaign with its lead count
func (s *CampaignService) GetCampaign(id uuid.UUID) (*CampaignResponse, error) {
	campaign, err := s.campaignRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCampaignNotFound
		}
		return nil, fmt.Errorf("failed to get campaign: %w", err)
	}

	leadCount, err := s.campaignRepo.CountLeads(id)
	if err != nil {
		return nil, fmt.Errorf("failed to count leads: %w", err)
	}

	resp := toCampaignResponse(campaign, leadCount)
	return &resp, nil
}

// GetCampaignDetail retrieves a campaign with its enrolled contatos
func (s *CampaignService) GetCampaignDetail(id uuid.UUID) (*CampaignDetailResponse, error) {
	campaign, err := s.campaignRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCampaignNotFound
		}
		return nil, fmt.Errorf("failed to get campaign: %w", err)
	}

	contatos, err := s.campaignRepo.GetLeadContatos(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get campaign leads: %w", err)
	}

	now := time.Now()
	detail := &CampaignDetailResponse{
		CampaignResponse: toCampaignResponse(campaign, int64(len(contatos))),
		Leads:            make([]ContatoResponse, 0, len(contatos)),
	}
	for i := range contatos {
		detail.Leads = append(detail.Leads, toContatoResponse(&contatos[i], now))
	}
	return detail, nil
}

// ListCampaigns retrieves campaigns with pagination
func (s *CampaignService) ListCampaigns(limit, offset int) ([]CampaignResponse, int64, error) {
	if limit <= 0 || limit > 200 || offset < 0 {
		return nil, 0, apperrors.ErrInvalidPaginationParams
	}

	campaigns, total, err := s.campaignRepo.GetAll(limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list campaigns: %w", err)
	}

	responses := make([]CampaignResponse, 0, len(campaigns))
	for i := range campaigns {
		leadCount, err := s.campaignRepo.CountLeads(campaigns[i].ID)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to count leads: %w", err)
		}
		responses = append(responses, toCampaignResponse(&campaigns[i], leadCount))
	}
	return responses, total, nil
}

// UpdateCampaign applies a partial update to a campaign
func (s *CampaignService) UpdateCampaign(role models.ProfileRole, id uuid.UUID, req *UpdateCampaignRequest) (*CampaignResponse, error) {
	if !role.CanManageCampaigns() {
		return nil, apperrors.ErrInsufficientRole
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	campaign, err := s.campaignRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCampaignNotFound
		}
		return nil, fmt.Errorf("failed to get campaign: %w", err)
	}

	if req.Name != nil {
		campaign.Name = *req.Name
	}
	if req.Description != nil {
		campaign.Description = *req.Description
	}
	if req.Status != nil {
		campaign.Status = models.CampaignStatus(*req.Status)
	}
	if req.Platforms != nil {
		campaign.Platforms = req.Platforms
	}
	campaign.UpdatedAt = time.Now()

	if err := s.campaignRepo.Update(campaign); err != nil {
		return nil, fmt.Errorf("failed to update campaign: %w", err)
	}

	leadCount, err := s.campaignRepo.CountLeads(id)
	if err != nil {
		return nil, fmt.Errorf("failed to count leads: %w", err)
	}

	resp := toCampaignResponse(campaign, leadCount)
	return &resp, nil
}

// DeleteCampaign deletes a campaign and its membership
func (s *CampaignService) DeleteCampaign(role models.ProfileRole, id uuid.UUID) error {
	if !role.CanManageCampaigns() {
		return apperrors.ErrInsufficientRole
	}
	if _, err := s.campaignRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrCampaignNotFound
		}
		return fmt.Errorf("failed to get campaign: %w", err)
	}
	if err := s.campaignRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete campaign: %w", err)
	}
	return nil
}

// ReplaceLeads overwrites the full lead membership of a campaign. The
// request's contato ids are verified before the swap.
func (s *CampaignService) ReplaceLeads(role models.ProfileRole, id uuid.UUID, req *ReplaceLeadsRequest) (*CampaignDetailResponse, error) {
	if !role.CanManageCampaigns() {
		return nil, apperrors.ErrInsufficientRole
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.campaignRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCampaignNotFound
		}
		return nil, fmt.Errorf("failed to get campaign: %w", err)
	}

	seen := make(map[uuid.UUID]struct{}, len(req.ContatoIDs))
	contatoIDs := make([]uuid.UUID, 0, len(req.ContatoIDs))
	for _, raw := range req.ContatoIDs {
		contatoID, err := uuid.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid contato_id UUID: %w", err)
		}
		if _, dup := seen[contatoID]; dup {
			continue
		}
		seen[contatoID] = struct{}{}
		if _, err := s.contatoRepo.GetByID(contatoID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrContatoNotFound
			}
			return nil, fmt.Errorf("failed to get contato: %w", err)
		}
		contatoIDs = append(contatoIDs, contatoID)
	}

	if err := s.campaignRepo.ReplaceLeads(id, contatoIDs); err != nil {
		return nil, fmt.Errorf("failed to replace campaign leads: %w", err)
	}

	return s.GetCampaignDetail(id)
}

func toCampaignResponse(c *models.Campaign, leadCount int64) CampaignResponse {
	platforms := c.Platforms
	if platforms == nil {
		platforms = []string{}
	}
	resp := CampaignResponse{
		ID:          c.ID.String(),
		Name:        c.Name,
		Description: c.Description,
		Status:      string(c.Status),
		Platforms:   platforms,
		LeadCount:   leadCount,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
	if c.CreatedBy != uuid.Nil {
		resp.CreatedBy = c.CreatedBy.String()
	}
	return resp
}
