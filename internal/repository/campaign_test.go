//go:build integration
// +build integration

package repository

import (
	"testing"

	"pipeline-crm-backend/internal/database/models"
	"pipeline-crm-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// CampaignRepositoryTestSuite tests the CampaignRepository
type CampaignRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *CampaignRepository
	contatoRepo   *ContatoRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *CampaignRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewCampaignRepository(suite.baseTestSuite.DB)
	suite.contatoRepo = NewContatoRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *CampaignRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *CampaignRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *CampaignRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *CampaignRepositoryTestSuite) createContatos(n int) []uuid.UUID {
	ids := make([]uuid.UUID, 0, n)
	for i := 0; i < n; i++ {
		contato := suite.factories.Contato.Create()
		suite.NoError(suite.contatoRepo.Create(contato))
		ids = append(ids, contato.ID)
	}
	return ids
}

// TestCreateAndGetByID tests persisting a campaign with its platform list
func (suite *CampaignRepositoryTestSuite) TestCreateAndGetByID() {
	campaign := suite.factories.Campaign.Create()

	suite.NoError(suite.repo.Create(campaign))

	found, err := suite.repo.GetByID(campaign.ID)
	suite.NoError(err)
	suite.Equal(campaign.Name, found.Name)
	suite.Equal(models.CampaignStatusActive, found.Status)
	suite.Equal([]string{"whatsapp"}, found.Platforms)
}

// TestReplaceLeadsOverwritesMembership tests that the swap is an overwrite,
// not a merge
func (suite *CampaignRepositoryTestSuite) TestReplaceLeadsOverwritesMembership() {
	campaign := suite.factories.Campaign.Create()
	suite.NoError(suite.repo.Create(campaign))

	first := suite.createContatos(2)
	suite.NoError(suite.repo.ReplaceLeads(campaign.ID, first))

	count, err := suite.repo.CountLeads(campaign.ID)
	suite.NoError(err)
	suite.Equal(int64(2), count)

	second := suite.createContatos(1)
	suite.NoError(suite.repo.ReplaceLeads(campaign.ID, second))

	contatos, err := suite.repo.GetLeadContatos(campaign.ID)
	suite.NoError(err)
	suite.Len(contatos, 1)
	suite.Equal(second[0], contatos[0].ID)
}

// TestReplaceLeadsWithEmptyListClears tests clearing the membership
func (suite *CampaignRepositoryTestSuite) TestReplaceLeadsWithEmptyListClears() {
	campaign := suite.factories.Campaign.Create()
	suite.NoError(suite.repo.Create(campaign))
	suite.NoError(suite.repo.ReplaceLeads(campaign.ID, suite.createContatos(3)))

	suite.NoError(suite.repo.ReplaceLeads(campaign.ID, nil))

	count, err := suite.repo.CountLeads(campaign.ID)
	suite.NoError(err)
	suite.Equal(int64(0), count)
}

// TestDeleteRemovesLeadLinks tests that deleting a campaign drops its links
// but keeps the contatos
func (suite *CampaignRepositoryTestSuite) TestDeleteRemovesLeadLinks() {
	campaign := suite.factories.Campaign.Create()
	suite.NoError(suite.repo.Create(campaign))
	ids := suite.createContatos(2)
	suite.NoError(suite.repo.ReplaceLeads(campaign.ID, ids))

	suite.NoError(suite.repo.Delete(campaign.ID))

	_, err := suite.repo.GetByID(campaign.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	var leadCount int64
	suite.NoError(suite.baseTestSuite.DB.Model(&models.CampaignLead{}).
		Where("campaign_id = ?", campaign.ID).Count(&leadCount).Error)
	suite.Equal(int64(0), leadCount)

	for _, id := range ids {
		_, err := suite.contatoRepo.GetByID(id)
		suite.NoError(err)
	}
}

// TestGetAllPaginates tests list pagination ordering
func (suite *CampaignRepositoryTestSuite) TestGetAllPaginates() {
	for _, name := range []string{"Campanha A", "Campanha B", "Campanha C"} {
		suite.NoError(suite.repo.Create(suite.factories.Campaign.WithName(name)))
	}

	campaigns, total, err := suite.repo.GetAll(2, 0)
	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(campaigns, 2)

	campaigns, _, err = suite.repo.GetAll(2, 2)
	suite.NoError(err)
	suite.Len(campaigns, 1)
}

// TestCampaignRepositoryTestSuite runs the test suite
func TestCampaignRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(CampaignRepositoryTestSuite))
}
