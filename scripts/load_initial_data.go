package main

import (
	"fmt"
	"io/fs"
	"log"
	"path/filepath"
	"strings"
	"time"

	"pipeline-crm-backend/internal/config"
	"pipeline-crm-backend/internal/database"
	"pipeline-crm-backend/internal/database/models"

	"os"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type CasoData struct {
	Nome             string        `yaml:"nome"`
	CPF              string        `yaml:"cpf,omitempty"`
	DataObito        string        `yaml:"data_obito,omitempty"`
	DataNascimento   string        `yaml:"data_nascimento,omitempty"`
	Idade            int           `yaml:"idade,omitempty"`
	Genero           string        `yaml:"genero,omitempty"`
	Profissao        string        `yaml:"profissao,omitempty"`
	Cidade           string        `yaml:"cidade,omitempty"`
	Estado           string        `yaml:"estado,omitempty"`
	LocalFalecimento string        `yaml:"local_falecimento,omitempty"`
	Funeraria        string        `yaml:"funeraria,omitempty"`
	Contatos         []ContatoData `yaml:"contatos,omitempty"`
}

type ContatoData struct {
	Nome           string `yaml:"nome"`
	CPF            string `yaml:"cpf,omitempty"`
	Telefone1      string `yaml:"telefone_1,omitempty"`
	Telefone2      string `yaml:"telefone_2,omitempty"`
	Telefone3      string `yaml:"telefone_3,omitempty"`
	Telefone4      string `yaml:"telefone_4,omitempty"`
	Origem         string `yaml:"origem,omitempty"`
	TipoParentesco string `yaml:"tipo_parentesco,omitempty"`
}

type ProfileData struct {
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	FullName string `yaml:"full_name"`
	Role     string `yaml:"role"`
	IsActive bool   `yaml:"is_active"`
}

type CampaignData struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description,omitempty"`
	Status      string   `yaml:"status"`
	Platforms   []string `yaml:"platforms,omitempty"`
	LeadCPFs    []string `yaml:"lead_cpfs,omitempty"`
}

// File structures
type CasosFile struct {
	Casos []CasoData `yaml:"casos"`
}

type ProfilesFile struct {
	Profiles []ProfileData `yaml:"profiles"`
}

type CampaignsFile struct {
	Campaigns []CampaignData `yaml:"campaigns"`
}

func main() {
	log.Println("Loading initial data from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Initial data loaded successfully")
}

// connectWithRetry attempts to initialize the DB with retries to wait for
// Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	profiles, err := loadProfiles(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load profiles: %w", err)
	}

	casos, err := loadCasos(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load casos: %w", err)
	}

	campaigns, err := loadCampaigns(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load campaigns: %w", err)
	}

	profileCreated := 0
	for _, profileData := range profiles {
		_, created, err := createProfile(db, profileData)
		if err != nil {
			return fmt.Errorf("failed to create profile %s: %w", profileData.Email, err)
		}
		if created {
			profileCreated++
		}
	}
	log.Printf("Profiles: %d created, %d total", profileCreated, len(profiles))

	// Create casos with their contatos and relacionamentos
	contatoMap := make(map[string]*models.Contato)
	casoCreated, contatoCreated := 0, 0
	for _, casoData := range casos {
		caso, created, err := createCaso(db, casoData)
		if err != nil {
			return fmt.Errorf("failed to create caso %s: %w", casoData.Nome, err)
		}
		if created {
			casoCreated++
		}

		for _, contatoData := range casoData.Contatos {
			contato, created, err := createContato(db, contatoData)
			if err != nil {
				return fmt.Errorf("failed to create contato %s: %w", contatoData.Nome, err)
			}
			if created {
				contatoCreated++
			}
			if contatoData.CPF != "" {
				contatoMap[contatoData.CPF] = contato
			}
			if err := linkContato(db, caso, contato, contatoData.TipoParentesco); err != nil {
				return fmt.Errorf("failed to link contato %s to caso %s: %w", contatoData.Nome, casoData.Nome, err)
			}
		}
	}
	log.Printf("Casos: %d created, %d total", casoCreated, len(casos))
	log.Printf("Contatos: %d created", contatoCreated)

	campaignCreated := 0
	for _, campaignData := range campaigns {
		_, created, err := createCampaign(db, campaignData, contatoMap)
		if err != nil {
			log.Printf("Warning: failed to create campaign %s: %v", campaignData.Name, err)
			continue
		}
		if created {
			campaignCreated++
		}
	}
	log.Printf("Campaigns: %d created, %d total", campaignCreated, len(campaigns))

	return nil
}

func loadCasos(dataDir string) ([]CasoData, error) {
	var allCasos []CasoData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "casos") {
			var file CasosFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allCasos = append(allCasos, file.Casos...)
		}
		return nil
	})

	return allCasos, err
}

func loadProfiles(dataDir string) ([]ProfileData, error) {
	var allProfiles []ProfileData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "profiles") {
			var file ProfilesFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allProfiles = append(allProfiles, file.Profiles...)
		}
		return nil
	})

	return allProfiles, err
}

func loadCampaigns(dataDir string) ([]CampaignData, error) {
	var allCampaigns []CampaignData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "campaigns") {
			var file CampaignsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allCampaigns = append(allCampaigns, file.Campaigns...)
		}
		return nil
	})

	return allCampaigns, err
}

func createProfile(db *gorm.DB, profileData ProfileData) (*models.Profile, bool, error) {
	var profile models.Profile
	if err := db.Where("email = ?", strings.ToLower(profileData.Email)).First(&profile).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			hash, err := bcrypt.GenerateFromPassword([]byte(profileData.Password), bcrypt.DefaultCost)
			if err != nil {
				return nil, false, fmt.Errorf("failed to hash password: %w", err)
			}

			profile = models.Profile{
				Email:        strings.ToLower(profileData.Email),
				PasswordHash: string(hash),
				FullName:     profileData.FullName,
				Role:         models.ProfileRole(profileData.Role),
				IsActive:     profileData.IsActive,
			}

			if err := db.Create(&profile).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create profile: %w", err)
			}
			return &profile, true, nil
		}
		return nil, false, fmt.Errorf("failed to query profile: %w", err)
	}

	return &profile, false, nil
}

func createCaso(db *gorm.DB, casoData CasoData) (*models.Caso, bool, error) {
	var caso models.Caso
	if err := db.Where("nome = ? AND cpf = ?", casoData.Nome, casoData.CPF).First(&caso).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			caso = models.Caso{
				Nome:             casoData.Nome,
				CPF:              casoData.CPF,
				DataObito:        parseDate(casoData.DataObito),
				DataNascimento:   parseDate(casoData.DataNascimento),
				Idade:            casoData.Idade,
				Genero:           casoData.Genero,
				Profissao:        casoData.Profissao,
				Cidade:           casoData.Cidade,
				Estado:           casoData.Estado,
				LocalFalecimento: casoData.LocalFalecimento,
				Funeraria:        casoData.Funeraria,
			}

			if err := db.Create(&caso).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create caso: %w", err)
			}
			return &caso, true, nil
		}
		return nil, false, fmt.Errorf("failed to query caso: %w", err)
	}

	return &caso, false, nil
}

func createContato(db *gorm.DB, contatoData ContatoData) (*models.Contato, bool, error) {
	var contato models.Contato
	if err := db.Where("nome = ? AND cpf = ?", contatoData.Nome, contatoData.CPF).First(&contato).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			contato = models.Contato{
				Nome:            contatoData.Nome,
				CPF:             contatoData.CPF,
				Telefone1:       contatoData.Telefone1,
				Telefone2:       contatoData.Telefone2,
				Telefone3:       contatoData.Telefone3,
				Telefone4:       contatoData.Telefone4,
				Origem:          contatoData.Origem,
				Status:          models.StatusNew,
				StatusUpdatedAt: time.Now(),
			}

			if err := db.Create(&contato).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create contato: %w", err)
			}
			return &contato, true, nil
		}
		return nil, false, fmt.Errorf("failed to query contato: %w", err)
	}

	return &contato, false, nil
}

func linkContato(db *gorm.DB, caso *models.Caso, contato *models.Contato, tipoParentesco string) error {
	var rel models.Relacionamento
	err := db.Where("caso_id = ? AND contato_id = ?", caso.ID, contato.ID).First(&rel).Error
	if err == nil {
		return nil
	}
	if err != gorm.ErrRecordNotFound {
		return fmt.Errorf("failed to query relacionamento: %w", err)
	}

	rel = models.Relacionamento{
		CasoID:         caso.ID,
		ContatoID:      contato.ID,
		TipoParentesco: tipoParentesco,
	}
	if err := db.Create(&rel).Error; err != nil {
		return fmt.Errorf("failed to create relacionamento: %w", err)
	}
	return nil
}

func createCampaign(db *gorm.DB, campaignData CampaignData, contatoMap map[string]*models.Contato) (*models.Campaign, bool, error) {
	var campaign models.Campaign
	if err := db.Where("name = ?", campaignData.Name).First(&campaign).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			status := models.CampaignStatusActive
			if campaignData.Status != "" {
				status = models.CampaignStatus(campaignData.Status)
			}

			campaign = models.Campaign{
				Name:        campaignData.Name,
				Description: campaignData.Description,
				Status:      status,
				Platforms:   campaignData.Platforms,
			}

			if err := db.Create(&campaign).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create campaign: %w", err)
			}

			for _, cpf := range campaignData.LeadCPFs {
				contato := contatoMap[cpf]
				if contato == nil {
					log.Printf("Warning: contato with CPF %s not found for campaign %s", cpf, campaignData.Name)
					continue
				}
				lead := models.CampaignLead{
					CampaignID: campaign.ID,
					ContatoID:  contato.ID,
				}
				if err := db.Create(&lead).Error; err != nil {
					return nil, false, fmt.Errorf("failed to create campaign lead: %w", err)
				}
			}

			return &campaign, true, nil
		}
		return nil, false, fmt.Errorf("failed to query campaign: %w", err)
	}

	return &campaign, false, nil
}

func parseDate(value string) *time.Time {
	if value == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		log.Printf("Warning: could not parse date %q: %v", value, err)
		return nil
	}
	return &t
}
