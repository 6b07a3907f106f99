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

// ContatoService provides contato-related business logic
type ContatoService struct {
	contatoRepo repository.ContatoRepositoryInterface
	relRepo     repository.RelacionamentoRepositoryInterface
	casoRepo    repository.CasoRepositoryInterface
	validator   *validator.Validate
}

// Ensure ContatoService implements ContatoServiceInterface
var _ ContatoServiceInterface = (*ContatoService)(nil)

// NewContatoService creates a new ContatoService
func NewContatoService(contatoRepo repository.ContatoRepositoryInterface, relRepo repository.RelacionamentoRepositoryInterface, casoRepo repository.CasoRepositoryInterface, validator *validator.Validate) *ContatoService {
	return &ContatoService{
		contatoRepo: contatoRepo,
		relRepo:     relRepo,
		casoRepo:    casoRepo,
		validator:   validator,
	}
}

// ContatoResponse represents a contato in API responses
type ContatoResponse struct {
	ID              string     `json:"id"`
	Nome            string     `json:"nome"`
	CPF             string     `json:"cpf,omitempty"`
	Telefones       []string   `json:"telefones"`
	Origem          string     `json:"origem,omitempty"`
	Contacted       bool       `json:"contacted"`
	Notes           string     `json:"notes"`
	Status          string     `json:"status"`
	StatusUpdatedAt time.Time  `json:"status_updated_at"`
	ScheduledFor    *time.Time `json:"scheduled_for,omitempty"`
	ScheduleLabel   string     `json:"schedule_label,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

// LinkedCasoResponse is a caso summary attached to a contato detail
type LinkedCasoResponse struct {
	CasoID         string     `json:"caso_id"`
	Nome           string     `json:"nome"`
	Cidade         string     `json:"cidade,omitempty"`
	DataObito      *time.Time `json:"data_obito,omitempty"`
	TipoParentesco string     `json:"tipo_parentesco,omitempty"`
}

// ContatoDetailResponse is a contato with its linked casos
type ContatoDetailResponse struct {
	ContatoResponse
	Casos []LinkedCasoResponse `json:"casos"`
}

// CreateContatoRequest represents the payload for creating a contato
type CreateContatoRequest struct {
	Nome      string `json:"nome" validate:"required,min=1,max=200"`
	CPF       string `json:"cpf" validate:"max=14"`
	Telefone1 string `json:"telefone_1" validate:"max=20"`
	Telefone2 string `json:"telefone_2" validate:"max=20"`
	Telefone3 string `json:"telefone_3" validate:"max=20"`
	Telefone4 string `json:"telefone_4" validate:"max=20"`
	Origem    string `json:"origem" validate:"max=100"`
	Notes     string `json:"notes"`
}

// UpdateContatoRequest represents the payload for updating a contato
type UpdateContatoRequest struct {
	Nome      *string `json:"nome,omitempty" validate:"omitempty,min=1,max=200"`
	CPF       *string `json:"cpf,omitempty" validate:"omitempty,max=14"`
	Telefone1 *string `json:"telefone_1,omitempty" validate:"omitempty,max=20"`
	Telefone2 *string `json:"telefone_2,omitempty" validate:"omitempty,max=20"`
	Telefone3 *string `json:"telefone_3,omitempty" validate:"omitempty,max=20"`
	Telefone4 *string `json:"telefone_4,omitempty" validate:"omitempty,max=20"`
	Origem    *string `json:"origem,omitempty" validate:"omitempty,max=100"`
}

// CreateContato validates and creates a new contato
func (s *ContatoService) CreateContato(req *CreateContatoRequest) (*ContatoResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	contato := &models.Contato{
		Nome:            req.Nome,
		CPF:             req.CPF,
		Telefone1:       req.Telefone1,
		Telefone2:       req.Telefone2,
		Telefone3:       req.Telefone3,
		Telefone4:       req.Telefone4,
		Origem:          req.Origem,
		Notes:           req.Notes,
		Status:          models.StatusNew,
		StatusUpdatedAt: time.Now(),
	}

	if err := s.contatoRepo.Create(contato); err != nil {
		return nil, fmt.Errorf("failed to create contato: %w", err)
	}

	resp := toContatoResponse(contato, time.Now())
	return &resp, nil
}

// GetContato retrieves a contato by ID
func (s *ContatoService) GetContato(id uuid.UUID) (*ContatoResponse, error) {
	contato, err := s.contatoRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrContatoNotFound
		}
		return nil, fmt.Errorf("failed to get contato: %w", err)
	}

	resp := toContatoResponse(contato, time.Now())
	return &resp, nil
}

// GetContatoDetail retrieves a contato with every caso it is linked to
func (s *ContatoService) GetContatoDetail(id uuid.UUID) (*ContatoDetailResponse, error) {
	contato, err := s.contatoRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrContatoNotFound
		}
		return nil, fmt.Errorf("failed to get contato: %w", err)
	}

	rels, err := s.relRepo.GetByContatoID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get relacionamentos: %w", err)
	}

	detail := &ContatoDetailResponse{
		ContatoResponse: toContatoResponse(contato, time.Now()),
		Casos:           make([]LinkedCasoResponse, 0, len(rels)),
	}
	for i := range rels {
		linked := LinkedCasoResponse{
			CasoID:         rels[i].CasoID.String(),
			TipoParentesco: rels[i].TipoParentesco,
		}
		if rels[i].Caso != nil {
			linked.Nome = rels[i].Caso.Nome
			linked.Cidade = rels[i].Caso.Cidade
			linked.DataObito = rels[i].Caso.DataObito
		}
		detail.Casos = append(detail.Casos, linked)
	}

	return detail, nil
}

// ListContatos retrieves contatos with pagination and optional search
func (s *ContatoService) ListContatos(query string, limit, offset int) ([]ContatoResponse, int64, error) {
	if limit <= 0 || limit > 200 || offset < 0 {
		return nil, 0, apperrors.ErrInvalidPaginationParams
	}

	contatos, total, err := s.contatoRepo.Search(query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list contatos: %w", err)
	}

	now := time.Now()
	responses := make([]ContatoResponse, 0, len(contatos))
	for i := range contatos {
		responses = append(responses, toContatoResponse(&contatos[i], now))
	}
	return responses, total, nil
}

// UpdateContato applies a partial update to a contato
func (s *ContatoService) UpdateContato(id uuid.UUID, req *UpdateContatoRequest) (*ContatoResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	contato, err := s.contatoRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrContatoNotFound
		}
		return nil, fmt.Errorf("failed to get contato: %w", err)
	}

	if req.Nome != nil {
		contato.Nome = *req.Nome
	}
	if req.CPF != nil {
		contato.CPF = *req.CPF
	}
	if req.Telefone1 != nil {
		contato.Telefone1 = *req.Telefone1
	}
	if req.Telefone2 != nil {
		contato.Telefone2 = *req.Telefone2
	}
	if req.Telefone3 != nil {
		contato.Telefone3 = *req.Telefone3
	}
	if req.Telefone4 != nil {
		contato.Telefone4 = *req.Telefone4
	}
	if req.Origem != nil {
		contato.Origem = *req.Origem
	}

	if err := s.contatoRepo.Update(contato); err != nil {
		return nil, fmt.Errorf("failed to update contato: %w", err)
	}

	resp := toContatoResponse(contato, time.Now())
	return &resp, nil
}

// DeleteContato deletes a contato
func (s *ContatoService) DeleteContato(id uuid.UUID) error {
	if _, err := s.contatoRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrContatoNotFound
		}
		return fmt.Errorf("failed to get contato: %w", err)
	}
	if err := s.contatoRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete contato: %w", err)
	}
	return nil
}

func toContatoResponse(c *models.Contato, now time.Time) ContatoResponse {
	resp := ContatoResponse{
		ID:              c.ID.String(),
		Nome:            c.Nome,
		CPF:             c.CPF,
		Telefones:       c.Phones(),
		Origem:          c.Origem,
		Contacted:       c.Contacted,
		Notes:           c.Notes,
		Status:          string(c.Status),
		StatusUpdatedAt: c.StatusUpdatedAt,
		ScheduledFor:    c.ScheduledFor,
		CreatedAt:       c.CreatedAt,
	}
	if c.Status == models.StatusScheduled && c.ScheduledFor != nil {
		resp.ScheduleLabel = ScheduleLabel(*c.ScheduledFor, now)
	}
	return resp
}
