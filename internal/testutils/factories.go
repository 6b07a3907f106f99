package testutils

import (
	"time"

	"pipeline-crm-backend/internal/database/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// CasoFactory provides methods to create test Caso data
type CasoFactory struct{}

// NewCasoFactory creates a new CasoFactory
func NewCasoFactory() *CasoFactory {
	return &CasoFactory{}
}

// Create creates a test Caso with default values
func (f *CasoFactory) Create() *models.Caso {
	obito := time.Now().AddDate(0, 0, -3)
	nascimento := time.Now().AddDate(-72, 0, 0)

	return &models.Caso{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Nome:             "José da Silva",
		CPF:              "123.456.789-00",
		DataObito:        &obito,
		DataNascimento:   &nascimento,
		Idade:            72,
		Genero:           "masculino",
		Profissao:        "aposentado",
		Cidade:           "Campinas",
		Estado:           "SP",
		LocalFalecimento: "Hospital Municipal",
		Funeraria:        "Funerária Central",
	}
}

// WithCidade sets a custom city for the caso
func (f *CasoFactory) WithCidade(cidade string) *models.Caso {
	caso := f.Create()
	caso.Cidade = cidade
	return caso
}

// WithNome sets a custom name for the caso
func (f *CasoFactory) WithNome(nome string) *models.Caso {
	caso := f.Create()
	caso.Nome = nome
	return caso
}

// WithDataObito sets a custom death date for the caso
func (f *CasoFactory) WithDataObito(dataObito time.Time) *models.Caso {
	caso := f.Create()
	caso.DataObito = &dataObito
	return caso
}

// ContatoFactory provides methods to create test Contato data
type ContatoFactory struct{}

// NewContatoFactory creates a new ContatoFactory
func NewContatoFactory() *ContatoFactory {
	return &ContatoFactory{}
}

// Create creates a test Contato with default values in the New stage
func (f *ContatoFactory) Create() *models.Contato {
	id := uuid.New()

	return &models.Contato{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
		},
		Nome:            "Maria da Silva",
		CPF:             "987.654.321-00",
		Telefone1:       "(19) 99999-0001",
		Origem:          "sisobi",
		Status:          models.StatusNew,
		StatusUpdatedAt: time.Now(),
	}
}

// WithStatus sets a custom pipeline status
func (f *ContatoFactory) WithStatus(status models.PipelineStatus) *models.Contato {
	contato := f.Create()
	contato.Status = status
	return contato
}

// WithNome sets a custom name for the contato
func (f *ContatoFactory) WithNome(nome string) *models.Contato {
	contato := f.Create()
	contato.Nome = nome
	return contato
}

// Scheduled creates a contato in the Scheduled stage with the given date
func (f *ContatoFactory) Scheduled(scheduledFor time.Time) *models.Contato {
	contato := f.Create()
	contato.Status = models.StatusScheduled
	contato.ScheduledFor = &scheduledFor
	return contato
}

// RelacionamentoFactory provides methods to create test Relacionamento data
type RelacionamentoFactory struct{}

// NewRelacionamentoFactory creates a new RelacionamentoFactory
func NewRelacionamentoFactory() *RelacionamentoFactory {
	return &RelacionamentoFactory{}
}

// Create creates a test Relacionamento linking the given caso and contato
func (f *RelacionamentoFactory) Create(casoID, contatoID uuid.UUID) *models.Relacionamento {
	return &models.Relacionamento{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		CasoID:         casoID,
		ContatoID:      contatoID,
		TipoParentesco: "filho",
	}
}

// WithParentesco sets a custom kinship label
func (f *RelacionamentoFactory) WithParentesco(casoID, contatoID uuid.UUID, tipo string) *models.Relacionamento {
	rel := f.Create(casoID, contatoID)
	rel.TipoParentesco = tipo
	return rel
}

// CampaignFactory provides methods to create test Campaign data
type CampaignFactory struct{}

// NewCampaignFactory creates a new CampaignFactory
func NewCampaignFactory() *CampaignFactory {
	return &CampaignFactory{}
}

// Create creates a test Campaign with default values
func (f *CampaignFactory) Create() *models.Campaign {
	return &models.Campaign{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Name:        "Test Campaign",
		Description: "An outreach campaign for testing purposes",
		Status:      models.CampaignStatusActive,
		Platforms:   []string{"whatsapp"},
		CreatedBy:   uuid.New(),
		UpdatedAt:   time.Now(),
	}
}

// WithName sets a custom name for the campaign
func (f *CampaignFactory) WithName(name string) *models.Campaign {
	campaign := f.Create()
	campaign.Name = name
	return campaign
}

// ProfileFactory provides methods to create test Profile data
type ProfileFactory struct{}

// NewProfileFactory creates a new ProfileFactory
func NewProfileFactory() *ProfileFactory {
	return &ProfileFactory{}
}

// Create creates a test Profile with default values and password "test-password"
func (f *ProfileFactory) Create() *models.Profile {
	id := uuid.New()
	hash, _ := bcrypt.GenerateFromPassword([]byte("test-password"), bcrypt.MinCost)

	return &models.Profile{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
		},
		Email:        "operator-" + id.String()[:8] + "@test.com",
		PasswordHash: string(hash),
		FullName:     "Test Operator",
		Role:         models.RoleOperador,
		IsActive:     true,
		UpdatedAt:    time.Now(),
	}
}

// WithRole sets a custom role for the profile
func (f *ProfileFactory) WithRole(role models.ProfileRole) *models.Profile {
	profile := f.Create()
	profile.Role = role
	return profile
}

// WithEmail sets a custom email for the profile
func (f *ProfileFactory) WithEmail(email string) *models.Profile {
	profile := f.Create()
	profile.Email = email
	return profile
}

// CaseFileFactory provides methods to create test CaseFile data
type CaseFileFactory struct{}

// NewCaseFileFactory creates a new CaseFileFactory
func NewCaseFileFactory() *CaseFileFactory {
	return &CaseFileFactory{}
}

// Create creates a test CaseFile record for the given caso
func (f *CaseFileFactory) Create(casoID uuid.UUID) *models.CaseFile {
	id := uuid.New()

	return &models.CaseFile{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
		},
		CasoID:      casoID,
		StorageKey:  "cases/" + casoID.String() + "/" + id.String()[:8] + "_certidao.pdf",
		FileName:    "certidao.pdf",
		ContentType: "application/pdf",
		SizeBytes:   2048,
		UploadedBy:  uuid.New(),
	}
}

// FactorySet provides access to all factories
type FactorySet struct {
	Caso           *CasoFactory
	Contato        *ContatoFactory
	Relacionamento *RelacionamentoFactory
	Campaign       *CampaignFactory
	Profile        *ProfileFactory
	CaseFile       *CaseFileFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Caso:           NewCasoFactory(),
		Contato:        NewContatoFactory(),
		Relacionamento: NewRelacionamentoFactory(),
		Campaign:       NewCampaignFactory(),
		Profile:        NewProfileFactory(),
		CaseFile:       NewCaseFileFactory(),
	}
}
