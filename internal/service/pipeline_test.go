package service_test

import (
	"testing"
	"time"

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

// PipelineServiceTestSuite defines the test suite for PipelineService
type PipelineServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockContatoRepo *mocks.MockContatoRepositoryInterface
	mockRelRepo     *mocks.MockRelacionamentoRepositoryInterface
	pipelineService *service.PipelineService
}

// SetupTest sets up the test suite
func (suite *PipelineServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockContatoRepo = mocks.NewMockContatoRepositoryInterface(suite.ctrl)
	suite.mockRelRepo = mocks.NewMockRelacionamentoRepositoryInterface(suite.ctrl)
	suite.pipelineService = service.NewPipelineService(suite.mockContatoRepo, suite.mockRelRepo, validator.New())
}

// TearDownTest cleans up after each test
func (suite *PipelineServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *PipelineServiceTestSuite) contato(status models.PipelineStatus) *models.Contato {
	return &models.Contato{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Nome:      "Maria da Silva",
		Status:    status,
	}
}

// TestTransitionStatusRejectsUnknownStatus tests that an unknown stage name is refused
func (suite *PipelineServiceTestSuite) TestTransitionStatusRejectsUnknownStatus() {
	resp, err := suite.pipelineService.TransitionStatus(uuid.New(), &service.TransitionStatusRequest{
		Status: "Closed",
	})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidStatus)
}

// TestTransitionStatusScheduledRequiresDate tests that entering Scheduled without a date is refused
func (suite *PipelineServiceTestSuite) TestTransitionStatusScheduledRequiresDate() {
	resp, err := suite.pipelineService.TransitionStatus(uuid.New(), &service.TransitionStatusRequest{
		Status: string(models.StatusScheduled),
	})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrScheduledDateRequired)
}

// TestTransitionStatusContatoNotFound tests the not-found path
func (suite *PipelineServiceTestSuite) TestTransitionStatusContatoNotFound() {
	id := uuid.New()
	suite.mockContatoRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.pipelineService.TransitionStatus(id, &service.TransitionStatusRequest{
		Status: string(models.StatusAttempted),
	})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrContatoNotFound)
}

// TestTransitionStatusSimpleMove tests a non-Won transition without cascade
func (suite *PipelineServiceTestSuite) TestTransitionStatusSimpleMove() {
	contato := suite.contato(models.StatusNew)
	suite.mockContatoRepo.EXPECT().GetByID(contato.ID).Return(contato, nil)
	suite.mockContatoRepo.EXPECT().
		UpdateStatus(contato.ID, models.StatusAttempted, nil, gomock.Any()).
		Return(nil)

	resp, err := suite.pipelineService.TransitionStatus(contato.ID, &service.TransitionStatusRequest{
		Status: string(models.StatusAttempted),
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), string(models.StatusAttempted), resp.Status)
	assert.False(suite.T(), resp.SiblingsWon)
	assert.Zero(suite.T(), resp.SiblingsClosed)
}

// TestTransitionStatusScheduledCarriesDate tests that the scheduled date is persisted
func (suite *PipelineServiceTestSuite) TestTransitionStatusScheduledCarriesDate() {
	contato := suite.contato(models.StatusInProgress)
	scheduledFor := time.Now().AddDate(0, 0, 2)

	suite.mockContatoRepo.EXPECT().GetByID(contato.ID).Return(contato, nil)
	suite.mockContatoRepo.EXPECT().
		UpdateStatus(contato.ID, models.StatusScheduled, &scheduledFor, gomock.Any()).
		Return(nil)

	resp, err := suite.pipelineService.TransitionStatus(contato.ID, &service.TransitionStatusRequest{
		Status:       string(models.StatusScheduled),
		ScheduledFor: &scheduledFor,
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), string(models.StatusScheduled), resp.Status)
	assert.NotNil(suite.T(), resp.ScheduledFor)
}

// TestTransitionStatusWonWithoutCasoLink tests that an unlinked contato wins with no cascade
func (suite *PipelineServiceTestSuite) TestTransitionStatusWonWithoutCasoLink() {
	contato := suite.contato(models.StatusInProgress)

	suite.mockContatoRepo.EXPECT().GetByID(contato.ID).Return(contato, nil)
	suite.mockRelRepo.EXPECT().GetCasoIDsByContatoID(contato.ID).Return([]uuid.UUID{}, nil)
	suite.mockContatoRepo.EXPECT().
		UpdateStatus(contato.ID, models.StatusWon, nil, gomock.Any()).
		Return(nil)

	resp, err := suite.pipelineService.TransitionStatus(contato.ID, &service.TransitionStatusRequest{
		Status: string(models.StatusWon),
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), string(models.StatusWon), resp.Status)
	assert.False(suite.T(), resp.SiblingsWon)
	assert.Zero(suite.T(), resp.SiblingsClosed)
}

// TestTransitionStatusWonAppliesCascade tests that winning a linked contato closes its siblings
func (suite *PipelineServiceTestSuite) TestTransitionStatusWonAppliesCascade() {
	contato := suite.contato(models.StatusScheduled)
	casoID := uuid.New()

	suite.mockContatoRepo.EXPECT().GetByID(contato.ID).Return(contato, nil)
	suite.mockRelRepo.EXPECT().GetCasoIDsByContatoID(contato.ID).Return([]uuid.UUID{casoID}, nil)
	suite.mockContatoRepo.EXPECT().
		WinAndCloseSiblings(contato.ID, casoID, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_, _ uuid.UUID, note string, _ time.Time) (int64, error) {
			assert.Contains(suite.T(), note, "[Auto-closed: Another relative won on ")
			return 3, nil
		})

	resp, err := suite.pipelineService.TransitionStatus(contato.ID, &service.TransitionStatusRequest{
		Status: string(models.StatusWon),
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), string(models.StatusWon), resp.Status)
	assert.True(suite.T(), resp.SiblingsWon)
	assert.Equal(suite.T(), int64(3), resp.SiblingsClosed)
}

// TestTransitionStatusWonMultipleCasos tests that a contato linked to several casos cannot win
func (suite *PipelineServiceTestSuite) TestTransitionStatusWonMultipleCasos() {
	contato := suite.contato(models.StatusInProgress)

	suite.mockContatoRepo.EXPECT().GetByID(contato.ID).Return(contato, nil)
	suite.mockRelRepo.EXPECT().
		GetCasoIDsByContatoID(contato.ID).
		Return([]uuid.UUID{uuid.New(), uuid.New()}, nil)

	resp, err := suite.pipelineService.TransitionStatus(contato.ID, &service.TransitionStatusRequest{
		Status: string(models.StatusWon),
	})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrContactLinkedToMultipleCases)
}

// TestUpdateScheduledDateRequiresScheduledStatus tests rescheduling outside Scheduled status
func (suite *PipelineServiceTestSuite) TestUpdateScheduledDateRequiresScheduledStatus() {
	contato := suite.contato(models.StatusNew)
	suite.mockContatoRepo.EXPECT().GetByID(contato.ID).Return(contato, nil)

	err := suite.pipelineService.UpdateScheduledDate(contato.ID, &service.UpdateScheduledDateRequest{
		ScheduledFor: time.Now().AddDate(0, 0, 1),
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrNotScheduled)
}

// TestUpdateScheduledDateRewritesDate tests the happy rescheduling path
func (suite *PipelineServiceTestSuite) TestUpdateScheduledDateRewritesDate() {
	contato := suite.contato(models.StatusScheduled)
	suite.mockContatoRepo.EXPECT().GetByID(contato.ID).Return(contato, nil)
	suite.mockContatoRepo.EXPECT().UpdateScheduledDate(contato.ID, gomock.Any()).Return(nil)

	err := suite.pipelineService.UpdateScheduledDate(contato.ID, &service.UpdateScheduledDateRequest{
		ScheduledFor: time.Now().AddDate(0, 0, 5),
	})

	assert.NoError(suite.T(), err)
}

// TestSaveNotesOverwrites tests that notes are written as-is
func (suite *PipelineServiceTestSuite) TestSaveNotesOverwrites() {
	id := uuid.New()
	suite.mockContatoRepo.EXPECT().UpdateNotes(id, "ligou, pediu retorno amanhã").Return(nil)

	err := suite.pipelineService.SaveNotes(id, &service.SaveNotesRequest{Notes: "ligou, pediu retorno amanhã"})

	assert.NoError(suite.T(), err)
}

// TestSetContactedFlag tests the legacy contacted flag toggle
func (suite *PipelineServiceTestSuite) TestSetContactedFlag() {
	id := uuid.New()
	suite.mockContatoRepo.EXPECT().SetContacted(id, true).Return(nil)

	err := suite.pipelineService.SetContacted(id, &service.SetContactedRequest{Contacted: true})

	assert.NoError(suite.T(), err)
}

// TestScheduleLabel tests the calendar-date label derivation
func TestScheduleLabel(t *testing.T) {
	now := time.Date(2025, 3, 10, 15, 30, 0, 0, time.UTC)

	testCases := []struct {
		name         string
		scheduledFor time.Time
		expected     string
	}{
		{
			name:         "Same calendar day, earlier hour",
			scheduledFor: time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC),
			expected:     "contact today",
		},
		{
			name:         "Next day shortly after midnight",
			scheduledFor: time.Date(2025, 3, 11, 0, 15, 0, 0, time.UTC),
			expected:     "contact tomorrow",
		},
		{
			name:         "Five days ahead",
			scheduledFor: time.Date(2025, 3, 15, 9, 0, 0, 0, time.UTC),
			expected:     "contact in 5 days",
		},
		{
			name:         "Yesterday late evening",
			scheduledFor: time.Date(2025, 3, 9, 23, 59, 0, 0, time.UTC),
			expected:     "overdue by 1 day",
		},
		{
			name:         "A week overdue",
			scheduledFor: time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC),
			expected:     "overdue by 7 days",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, service.ScheduleLabel(tc.scheduledFor, now))
		})
	}
}

// TestScheduleLabelAcrossDSTTransition tests that shortened and stretched
// local days still count as whole calendar days
func TestScheduleLabelAcrossDSTTransition(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("failed to load location: %v", err)
	}

	// Clocks spring forward on 2026-03-08, making it a 23-hour day
	now := time.Date(2026, 3, 7, 20, 0, 0, 0, loc)
	scheduledFor := time.Date(2026, 3, 8, 10, 0, 0, 0, loc)
	assert.Equal(t, "contact tomorrow", service.ScheduleLabel(scheduledFor, now))

	// Clocks fall back on 2026-11-01, making it a 25-hour day
	now = time.Date(2026, 10, 31, 20, 0, 0, 0, loc)
	scheduledFor = time.Date(2026, 11, 2, 9, 0, 0, 0, loc)
	assert.Equal(t, "contact in 2 days", service.ScheduleLabel(scheduledFor, now))
}

// TestPipelineServiceTestSuite runs the test suite
func TestPipelineServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PipelineServiceTestSuite))
}
