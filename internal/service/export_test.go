package service_test

import (
	"bytes"
	"testing"
	"time"

	"pipeline-crm-backend/internal/database/models"
	apperrors "pipeline-crm-backend/internal/errors"
	"pipeline-crm-backend/internal/mocks"
	"pipeline-crm-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// ExportServiceTestSuite defines the test suite for ExportService
type ExportServiceTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockCampaignRepo *mocks.MockCampaignRepositoryInterface
	exportService    *service.ExportService
}

// SetupTest sets up the test suite
func (suite *ExportServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockCampaignRepo = mocks.NewMockCampaignRepositoryInterface(suite.ctrl)
	suite.exportService = service.NewExportService(suite.mockCampaignRepo)
}

// TearDownTest cleans up after each test
func (suite *ExportServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestExportCampaignNotFound tests exporting a missing campaign
func (suite *ExportServiceTestSuite) TestExportCampaignNotFound() {
	campaignID := uuid.New()
	suite.mockCampaignRepo.EXPECT().GetByID(campaignID).Return(nil, gorm.ErrRecordNotFound)

	result, err := suite.exportService.ExportCampaignLeads(campaignID)

	assert.Nil(suite.T(), result)
	assert.ErrorIs(suite.T(), err, apperrors.ErrCampaignNotFound)
}

// TestExportCampaignWithoutLeads tests exporting a campaign with no enrolled contatos
func (suite *ExportServiceTestSuite) TestExportCampaignWithoutLeads() {
	campaignID := uuid.New()
	campaign := &models.Campaign{
		BaseModel: models.BaseModel{ID: campaignID},
		Name:      "Empty Campaign",
		Status:    models.CampaignStatusActive,
	}
	suite.mockCampaignRepo.EXPECT().GetByID(campaignID).Return(campaign, nil)
	suite.mockCampaignRepo.EXPECT().GetLeadContatos(campaignID).Return([]models.Contato{}, nil)

	result, err := suite.exportService.ExportCampaignLeads(campaignID)

	assert.Nil(suite.T(), result)
	assert.ErrorIs(suite.T(), err, apperrors.ErrCampaignHasNoLeads)
}

// TestExportCampaignLeadsRendersWorkbook tests the happy path end to end,
// parsing the produced workbook back to verify the rows
func (suite *ExportServiceTestSuite) TestExportCampaignLeadsRendersWorkbook() {
	campaignID := uuid.New()
	campaign := &models.Campaign{
		BaseModel: models.BaseModel{ID: campaignID},
		Name:      "Dia das Mães 2026",
		Status:    models.CampaignStatusActive,
	}
	scheduled := time.Date(2026, 9, 15, 14, 30, 0, 0, time.UTC)
	contatos := []models.Contato{
		{
			BaseModel: models.BaseModel{ID: uuid.New()},
			Nome:      "Maria da Silva",
			CPF:       "123.456.789-00",
			Telefone1: "+55 19 99999-0001",
			Telefone2: "+55 19 99999-0002",
			Origem:    "indicacao",
			Status:    models.StatusScheduled,
			Notes:     "Prefere contato pela manhã",
		},
		{
			BaseModel: models.BaseModel{ID: uuid.New()},
			Nome:      "João Pereira",
			Status:    models.StatusNew,
		},
	}
	contatos[0].ScheduledFor = &scheduled

	suite.mockCampaignRepo.EXPECT().GetByID(campaignID).Return(campaign, nil)
	suite.mockCampaignRepo.EXPECT().GetLeadContatos(campaignID).Return(contatos, nil)

	result, err := suite.exportService.ExportCampaignLeads(campaignID)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "leads_dia_das_mes_2026.xlsx", result.FileName)

	f, err := excelize.OpenReader(bytes.NewReader(result.Content))
	require.NoError(suite.T(), err)
	defer f.Close()

	sheetName := "Dia das Mães 2026"
	rows, err := f.GetRows(sheetName)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), rows, 3)

	assert.Equal(suite.T(), []string{"Nome", "CPF", "Telefones", "Origem", "Status", "Agendado Para", "Notas"}, rows[0])
	assert.Equal(suite.T(), "Maria da Silva", rows[1][0])
	assert.Equal(suite.T(), "+55 19 99999-0001, +55 19 99999-0002", rows[1][2])
	assert.Equal(suite.T(), "Scheduled", rows[1][4])
	assert.Equal(suite.T(), "2026-09-15 14:30", rows[1][5])
	assert.Equal(suite.T(), "João Pereira", rows[2][0])
}

// TestExportServiceTestSuite runs the test suite
func TestExportServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ExportServiceTestSuite))
}
