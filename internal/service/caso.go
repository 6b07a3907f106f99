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

// CasoService provides caso-related business logic
type CasoService struct {
	casoRepo    repository.CasoRepositoryInterface
	contatoRepo repository.ContatoRepositoryInterface
	relRepo     repository.RelacionamentoRepositoryInterface
	validator   *validator.Validate
}

// Ensure CasoService implements CasoServiceInterface
var _ CasoServiceInterface = (*CasoService)(nil)

// NewCasoService creates a new CasoService
func NewCasoService(casoRepo repository.CasoRepositoryInterface, contatoRepo repository.ContatoRepositoryInterface, relRepo repository.RelacionamentoRepositoryInterface, validator *validator.Validate) *CasoService {
	return &CasoService{
		casoRepo:    casoRepo,
		contatoRepo: contatoRepo,
		relRepo:     relRepo,
		validator:   validator,
	}
}

// CasoResponse represents a caso in API responses
type CasoResponse struct {
	ID                string     `json:"id"`
	Nome              string     `json:"nome"`
	CPF               string     `json:"cpf,omitempty"`
	DataObito         *time.Time `json:"data_obito,omitempty"`
	DataNascimento    *time.Time `json:"data_nascimento,omitempty"`
	Idade             int        `json:"idade,omitempty"`
	Genero            string     `json:"genero,omitempty"`
	Profissao         string     `json:"profissao,omitempty"`
	Cidade            string     `json:"cidade,omitempty"`
	Estado            string     `json:"estado,omitempty"`
	LocalFalecimento  string     `json:"local_falecimento,omitempty"`
	Funeraria         string     `json:"funeraria,omitempty"`
	LocalSepultamento string     `json:"local_sepultamento,omitempty"`
	LinkFonte         string     `json:"link_fonte,omitempty"`
	InfoExtra         string     `json:"info_extra,omitempty"`
	Logradouro        string     `json:"logradouro,omitempty"`
	Numero            string     `json:"numero,omitempty"`
	Bairro            string     `json:"bairro,omitempty"`
	CEP               string     `json:"cep,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
}

// RelativeResponse is a contato row in the caso relatives view
type RelativeResponse struct {
	RelacionamentoID string          `json:"relacionamento_id"`
	TipoParentesco   string          `json:"tipo_parentesco,omitempty"`
	Contato          ContatoResponse `json:"contato"`
}

// CasoDetailResponse is a caso with its linked relatives
type CasoDetailResponse struct {
	CasoResponse
	Relatives []RelativeResponse `json:"relatives"`
}

// CreateCasoRequest represents the payload for creating a caso
type CreateCasoRequest struct {
	Nome              string     `json:"nome" validate:"required,min=1,max=200"`
	CPF               string     `json:"cpf" validate:"max=14"`
	DataObito         *time.Time `json:"data_obito,omitempty"`
	DataNascimento    *time.Time `json:"data_nascimento,omitempty"`
	Idade             int        `json:"idade" validate:"min=0,max=130"`
	Genero            string     `json:"genero" validate:"max=20"`
	Profissao         string     `json:"profissao" validate:"max=100"`
	Cidade            string     `json:"cidade" validate:"max=100"`
	Estado            string     `json:"estado" validate:"max=2"`
	LocalFalecimento  string     `json:"local_falecimento" validate:"max=200"`
	Funeraria         string     `json:"funeraria" validate:"max=200"`
	LocalSepultamento string     `json:"local_sepultamento" validate:"max=200"`
	LinkFonte         string     `json:"link_fonte" validate:"max=2000"`
	InfoExtra         string     `json:"info_extra"`
	Logradouro        string     `json:"logradouro" validate:"max=200"`
	Numero            string     `json:"numero" validate:"max=20"`
	Bairro            string     `json:"bairro" validate:"max=100"`
	CEP               string     `json:"cep" validate:"max=9"`
}

// UpdateCasoRequest represents the payload for updating a caso
type UpdateCasoRequest struct {
	Nome             *string    `json:"nome,omitempty" validate:"omitempty,min=1,max=200"`
	DataObito        *time.Time `json:"data_obito,omitempty"`
	Cidade           *string    `json:"cidade,omitempty" validate:"omitempty,max=100"`
	Estado           *string    `json:"estado,omitempty" validate:"omitempty,max=2"`
	Funeraria        *string    `json:"funeraria,omitempty" validate:"omitempty,max=200"`
	InfoExtra        *string    `json:"info_extra,omitempty"`
	LocalFalecimento *string    `json:"local_falecimento,omitempty" validate:"omitempty,max=200"`
}

// LinkContatoRequest represents the payload for linking a contato to a caso
type LinkContatoRequest struct {
	ContatoID      string `json:"contato_id" validate:"required,uuid4"`
	TipoParentesco string `json:"tipo_parentesco" validate:"max=100"`
}

// CreateCaso validates and creates a new caso
func (s *CasoService) CreateCaso(req *CreateCasoRequest) (*CasoResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	caso := &models.Caso{
		Nome:              req.Nome,
		CPF:               req.CPF,
		DataObito:         req.DataObito,
		DataNascimento:    req.DataNascimento,
		Idade:             req.Idade,
		Genero:            req.Genero,
		Profissao:         req.Profissao,
		Cidade:            req.Cidade,
		Estado:            req.Estado,
		LocalFalecimento:  req.LocalFalecimento,
		Funeraria:         req.Funeraria,
		LocalSepultamento: req.LocalSepultamento,
		LinkFonte:         req.LinkFonte,
		InfoExtra:         req.InfoExtra,
		Logradouro:        req.Logradouro,
		Numero:            req.Numero,
		Bairro:            req.Bairro,
		CEP:               req.CEP,
	}

	if err := s.casoRepo.Create(caso); err != nil {
		return nil, fmt.Errorf("failed to create caso: %w", err)
	}

	resp := toCasoResponse(caso)
	return &resp, nil
}

// GetCaso retrieves a caso by ID
func (s *CasoService) GetCaso(id uuid.UUID) (*CasoResponse, error) {
	caso, err := s.casoRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCasoNotFound
		}
		return nil, fmt.Errorf("failed to get caso: %w", err)
	}

	resp := toCasoResponse(caso)
	return &resp, nil
}

// GetCasoDetail retrieves a caso together with its linked relatives
func (s *CasoService) GetCasoDetail(id uuid.UUID) (*CasoDetailResponse, error) {
	caso, err := s.casoRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCasoNotFound
		}
		return nil, fmt.Errorf("failed to get caso: %w", err)
	}

	rels, err := s.relRepo.GetByCasoID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get relacionamentos: %w", err)
	}

	now := time.Now()
	detail := &CasoDetailResponse{
		CasoResponse: toCasoResponse(caso),
		Relatives:    make([]RelativeResponse, 0, len(rels)),
	}
	for i := range rels {
		if rels[i].Contato == nil {
			continue
		}
		detail.Relatives = append(detail.Relatives, RelativeResponse{
			RelacionamentoID: rels[i].ID.String(),
			TipoParentesco:   rels[i].TipoParentesco,
			Contato:          toContatoResponse(rels[i].Contato, now),
		})
	}

	return detail, nil
}

// ListCasos retrieves casos with pagination, city filter, death-date range
// and free-text search
func (s *CasoService) ListCasos(city, search string, dateStart, dateEnd *time.Time, limit, offset int) ([]CasoResponse, int64, error) {
	if limit <= 0 || limit > 200 || offset < 0 {
		return nil, 0, apperrors.ErrInvalidPaginationParams
	}
	if dateStart != nil && dateEnd != nil && dateEnd.Before(*dateStart) {
		return nil, 0, apperrors.ErrInvalidDateRange
	}

	casos, total, err := s.casoRepo.GetAll(city, search, dateStart, dateEnd, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list casos: %w", err)
	}

	responses := make([]CasoResponse, 0, len(casos))
	for i := range casos {
		responses = append(responses, toCasoResponse(&casos[i]))
	}
	return responses, total, nil
}

// ListCities returns the distinct cities across all casos
func (s *CasoService) ListCities() ([]string, error) {
	cities, err := s.casoRepo.GetCities()
	if err != nil {
		return nil, fmt.Errorf("failed to list cities: %w", err)
	}
	return cities, nil
}

// UpdateCaso applies a partial update to a caso
func (s *CasoService) UpdateCaso(id uuid.UUID, req *UpdateCasoRequest) (*CasoResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	caso, err := s.casoRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCasoNotFound
		}
		return nil, fmt.Errorf("failed to get caso: %w", err)
	}

	if req.Nome != nil {
		caso.Nome = *req.Nome
	}
	if req.DataObito != nil {
		caso.DataObito = req.DataObito
	}
	if req.Cidade != nil {
		caso.Cidade = *req.Cidade
	}
	if req.Estado != nil {
		caso.Estado = *req.Estado
	}
	if req.Funeraria != nil {
		caso.Funeraria = *req.Funeraria
	}
	if req.InfoExtra != nil {
		caso.InfoExtra = *req.InfoExtra
	}
	if req.LocalFalecimento != nil {
		caso.LocalFalecimento = *req.LocalFalecimento
	}

	if err := s.casoRepo.Update(caso); err != nil {
		return nil, fmt.Errorf("failed to update caso: %w", err)
	}

	resp := toCasoResponse(caso)
	return &resp, nil
}

// DeleteCaso deletes a caso; relacionamentos go with it via FK cascade
func (s *CasoService) DeleteCaso(id uuid.UUID) error {
	if _, err := s.casoRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrCasoNotFound
		}
		return fmt.Errorf("failed to get caso: %w", err)
	}
	if err := s.casoRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete caso: %w", err)
	}
	return nil
}

// LinkContato links an existing contato to a caso with a parentesco label
func (s *CasoService) LinkContato(casoID uuid.UUID, req *LinkContatoRequest) (*RelativeResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	contatoID, err := uuid.Parse(req.ContatoID)
	if err != nil {
		return nil, fmt.Errorf("invalid contato_id UUID: %w", err)
	}

	if _, err := s.casoRepo.GetByID(casoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCasoNotFound
		}
		return nil, fmt.Errorf("failed to get caso: %w", err)
	}
	contato, err := s.contatoRepo.GetByID(contatoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrContatoNotFound
		}
		return nil, fmt.Errorf("failed to get contato: %w", err)
	}

	exists, err := s.relRepo.Exists(casoID, contatoID)
	if err != nil {
		return nil, fmt.Errorf("failed to check relacionamento: %w", err)
	}
	if exists {
		return nil, apperrors.ErrRelacionamentoExists
	}

	rel := &models.Relacionamento{
		CasoID:         casoID,
		ContatoID:      contatoID,
		TipoParentesco: req.TipoParentesco,
	}
	if err := s.relRepo.Create(rel); err != nil {
		return nil, fmt.Errorf("failed to create relacionamento: %w", err)
	}

	return &RelativeResponse{
		RelacionamentoID: rel.ID.String(),
		TipoParentesco:   rel.TipoParentesco,
		Contato:          toContatoResponse(contato, time.Now()),
	}, nil
}

// UnlinkContato removes a caso-contato link
func (s *CasoService) UnlinkContato(relacionamentoID uuid.UUID) error {
	if _, err := s.relRepo.GetByID(relacionamentoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrRelacionamentoNotFound
		}
		return fmt.Errorf("failed to get relacionamento: %w", err)
	}
	if err := s.relRepo.Delete(relacionamentoID); err != nil {
		return fmt.Errorf("failed to delete relacionamento: %w", err)
	}
	return nil
}

func toCasoResponse(c *models.Caso) CasoResponse {
	return CasoResponse{
		ID:                c.ID.String(),
		Nome:              c.Nome,
		CPF:               c.CPF,
		DataObito:         c.DataObito,
		DataNascimento:    c.DataNascimento,
		Idade:             c.Idade,
		Genero:            c.Genero,
		Profissao:         c.Profissao,
		Cidade:            c.Cidade,
		Estado:            c.Estado,
		LocalFalecimento:  c.LocalFalecimento,
		Funeraria:         c.Funeraria,
		LocalSepultamento: c.LocalSepultamento,
		LinkFonte:         c.LinkFonte,
		InfoExtra:         c.InfoExtra,
		Logradouro:        c.Logradouro,
		Numero:            c.Numero,
		Bairro:            c.Bairro,
		CEP:               c.CEP,
		CreatedAt:         c.CreatedAt,
	}
}
