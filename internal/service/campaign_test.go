package service_test

import (
	"testing"

	"pipeline-crm-backend/internal/database/models"
	apperrors "pipeline-crm-backend/internal/errors"
	"pipeline-crm-backend/internal/mocks"
	"pipeline-crm-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// CampaignServiceTestSuite defines the test suite for CampaignService
type CampaignServiceTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockCampaignRepo *mocks.MockCampaignRepositoryInterface
	mockContatoRepo  *mocks.MockContatoRepositoryInterface
	campaignService  *service.CampaignService
}

// SetupTest sets up the test suite
func (suite *CampaignServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockCampaignRepo = mocks.NewMockCampaignRepositoryInterface(suite.ctrl)
	suite.mockContatoRepo = mocks.NewMockContatoRepositoryInterface(suite.ctrl)
	suite.campaignService = service.NewCampaignService(suite.mockCampaignRepo, suite.mockContatoRepo, validator.New())
}

// TearDownTest cleans up after each test
func (suite *CampaignServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateCampaignRoleGating tests that only admin and empresa roles can create campaigns
func (suite *CampaignServiceTestSuite) TestCreateCampaignRoleGating() {
	req := &service.CreateCampaignRequest{Name: "Dia das Mães"}

	testCases := []struct {
		name    string
		role    models.ProfileRole
		allowed bool
	}{
		{name: "Admin can create", role: models.RoleAdmin, allowed: true},
		{name: "Empresa can create", role: models.RoleEmpresa, allowed: true},
		{name: "Supervisor cannot create", role: models.RoleSupervisor, allowed: false},
		{name: "Operador cannot create", role: models.RoleOperador, allowed: false},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			if tc.allowed {
				suite.mockCampaignRepo.EXPECT().Create(gomock.Any()).Return(nil)
			}

			resp, err := suite.campaignService.CreateCampaign(tc.role, req)
			if tc.allowed {
				assert.NoError(suite.T(), err)
				assert.Equal(suite.T(), "Dia das Mães", resp.Name)
				assert.Equal(suite.T(), string(models.CampaignStatusActive), resp.Status)
			} else {
				assert.Nil(suite.T(), resp)
				assert.ErrorIs(suite.T(), err, apperrors.ErrInsufficientRole)
			}
		})
	}
}

// TestCreateCampaignValidation tests the create payload validation
func (suite *CampaignServiceTestSuite) TestCreateCampaignValidation() {
	resp, err := suite.campaignService.CreateCampaign(models.RoleAdmin, &service.CreateCampaignRequest{
		Name:   "",
		Status: "active",
	})

	assert.Nil(suite.T(), resp)
	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "validation failed")
}

// TestUpdateCampaignRequiresRole tests that a read-only role cannot update
func (suite *CampaignServiceTestSuite) TestUpdateCampaignRequiresRole() {
	name := "Renamed"
	resp, err := suite.campaignService.UpdateCampaign(models.RoleOperador, uuid.New(), &service.UpdateCampaignRequest{
		Name: &name,
	})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInsufficientRole)
}

// TestDeleteCampaignNotFound tests deleting a missing campaign
func (suite *CampaignServiceTestSuite) TestDeleteCampaignNotFound() {
	id := uuid.New()
	suite.mockCampaignRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	err := suite.campaignService.DeleteCampaign(models.RoleAdmin, id)

	assert.ErrorIs(suite.T(), err, apperrors.ErrCampaignNotFound)
}

// TestReplaceLeadsDeduplicatesAndVerifies tests that lead ids are deduplicated and checked
func (suite *CampaignServiceTestSuite) TestReplaceLeadsDeduplicatesAndVerifies() {
	campaignID := uuid.New()
	contatoID := uuid.New()
	campaign := &models.Campaign{
		BaseModel: models.BaseModel{ID: campaignID},
		Name:      "Test Campaign",
		Status:    models.CampaignStatusActive,
	}
	contato := &models.Contato{
		BaseModel: models.BaseModel{ID: contatoID},
		Nome:      "Maria da Silva",
		Status:    models.StatusNew,
	}

	suite.mockCampaignRepo.EXPECT().GetByID(campaignID).Return(campaign, nil).Times(2)
	suite.mockContatoRepo.EXPECT().GetByID(contatoID).Return(contato, nil)
	suite.mockCampaignRepo.EXPECT().ReplaceLeads(campaignID, []uuid.UUID{contatoID}).Return(nil)
	suite.mockCampaignRepo.EXPECT().GetLeadContatos(campaignID).Return([]models.Contato{*contato}, nil)

	detail, err := suite.campaignService.ReplaceLeads(models.RoleEmpresa, campaignID, &service.ReplaceLeadsRequest{
		ContatoIDs: []string{contatoID.String(), contatoID.String()},
	})

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), detail.Leads, 1)
	assert.Equal(suite.T(), int64(1), detail.LeadCount)
}

// TestReplaceLeadsUnknownContato tests that an unknown contato id fails the swap
func (suite *CampaignServiceTestSuite) TestReplaceLeadsUnknownContato() {
	campaignID := uuid.New()
	contatoID := uuid.New()
	campaign := &models.Campaign{
		BaseModel: models.BaseModel{ID: campaignID},
		Name:      "Test Campaign",
		Status:    models.CampaignStatusActive,
	}

	suite.mockCampaignRepo.EXPECT().GetByID(campaignID).Return(campaign, nil)
	suite.mockContatoRepo.EXPECT().GetByID(contatoID).Return(nil, gorm.ErrRecordNotFound)

	detail, err := suite.campaignService.ReplaceLeads(models.RoleAdmin, campaignID, &service.ReplaceLeadsRequest{
		ContatoIDs: []string{contatoID.String()},
	})

	assert.Nil(suite.T(), detail)
	assert.ErrorIs(suite.T(), err, apperrors.ErrContatoNotFound)
}

// TestListCampaignsInvalidPagination tests the pagination guard
func (suite *CampaignServiceTestSuite) TestListCampaignsInvalidPagination() {
	_, _, err := suite.campaignService.ListCampaigns(0, 0)

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidPaginationParams)
}

// TestCampaignServiceTestSuite runs the test suite
func TestCampaignServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CampaignServiceTestSuite))
}
