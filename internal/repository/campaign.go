package repository

import (
	"pipeline-crm-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CampaignRepository handles database operations for campaigns and their leads
type CampaignRepository struct {
	db *gorm.DB
}

// NewCampaignRepository creates a new campaign repository
func NewCampaignRepository(db *gorm.DB) *CampaignRepository {
	return &CampaignRepository{db: db}
}

// Create creates a new campaign
func (r *CampaignRepository) Create(campaign *models.Campaign) error {
	return r.db.Create(campaign).Error
}

// GetByID retrieves a campaign by ID
func (r *CampaignRepository) GetByID(id uuid.UUID) (*models.Campaign, error) {
	var campaign models.Campaign
	err := r.db.First(&campaign, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &campaign, nil
}

// GetAll retrieves all campaigns with pagination
func (r *CampaignRepository) GetAll(limit, offset int) ([]models.Campaign, int64, error) {
	var campaigns []models.Campaign
	var total int64

	if err := r.db.Model(&models.Campaign{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.Model(&models.Campaign{}).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&campaigns).Error; err != nil {
		return nil, 0, err
	}

	return campaigns, total, nil
}

// GetWithLeads retrieves a campaign with its lead links preloaded
func (r *CampaignRepository) GetWithLeads(id uuid.UUID) (*models.Campaign, error) {
	var campaign models.Campaign
	err := r.db.Preload("Leads").First(&campaign, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &campaign, nil
}

// Update updates a campaign
func (r *CampaignRepository) Update(campaign *models.Campaign) error {
	return r.db.Save(campaign).Error
}

// Delete deletes a campaign and its lead links
func (r *CampaignRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.CampaignLead{}, "campaign_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Campaign{}, "id = ?", id).Error
	})
}

// ReplaceLeads swaps the full lead membership of a campaign in one
// transaction. The previous membership is removed first so the operation
// is a clean overwrite rather than a merge.
func (r *CampaignRepository) ReplaceLeads(campaignID uuid.UUID, contatoIDs []uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.CampaignLead{}, "campaign_id = ?", campaignID).Error; err != nil {
			return err
		}
		if len(contatoIDs) == 0 {
			return nil
		}
		leads := make([]models.CampaignLead, 0, len(contatoIDs))
		for _, contatoID := range contatoIDs {
			leads = append(leads, models.CampaignLead{
				CampaignID: campaignID,
				ContatoID:  contatoID,
			})
		}
		return tx.Create(&leads).Error
	})
}

// GetLeadContatos retrieves the contatos enrolled in a campaign
func (r *CampaignRepository) GetLeadContatos(campaignID uuid.UUID) ([]models.Contato, error) {
	var contatos []models.Contato
	err := r.db.Model(&models.Contato{}).
		Joins("JOIN campaign_leads ON campaign_leads.contato_id = contatos.id").
		Where("campaign_leads.campaign_id = ?", campaignID).
		Order("contatos.nome").
		Find(&contatos).Error
	if err != nil {
		return nil, err
	}
	return contatos, nil
}

// CountLeads returns the number of leads enrolled in a campaign
func (r *CampaignRepository) CountLeads(campaignID uuid.UUID) (int64, error) {
	var total int64
	err := r.db.Model(&models.CampaignLead{}).
		Where("campaign_id = ?", campaignID).
		Count(&total).Error
	return total, err
}
