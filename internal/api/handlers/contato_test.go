package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pipeline-crm-backend/internal/api/handlers"
	apperrors "pipeline-crm-backend/internal/errors"
	"pipeline-crm-backend/internal/mocks"
	"pipeline-crm-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// ContatoHandlerTestSuite defines the test suite for ContatoHandler
type ContatoHandlerTestSuite struct {
	suite.Suite
	ctrl                *gomock.Controller
	mockContatoService  *mocks.MockContatoServiceInterface
	mockPipelineService *mocks.MockPipelineServiceInterface
	router              *gin.Engine
}

// SetupTest sets up the test suite
func (suite *ContatoHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockContatoService = mocks.NewMockContatoServiceInterface(suite.ctrl)
	suite.mockPipelineService = mocks.NewMockPipelineServiceInterface(suite.ctrl)

	handler := handlers.NewContatoHandler(suite.mockContatoService, suite.mockPipelineService)

	suite.router = gin.New()
	contatos := suite.router.Group("/contatos")
	{
		contatos.GET("", handler.ListContatos)
		contatos.POST("", handler.CreateContato)
		contatos.GET("/:id", handler.GetContato)
		contatos.PUT("/:id", handler.UpdateContato)
		contatos.DELETE("/:id", handler.DeleteContato)
		contatos.PATCH("/:id/status", handler.TransitionStatus)
		contatos.PATCH("/:id/schedule", handler.UpdateScheduledDate)
		contatos.PUT("/:id/notes", handler.SaveNotes)
		contatos.PATCH("/:id/contacted", handler.SetContacted)
	}
}

// TearDownTest cleans up after each test
func (suite *ContatoHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ContatoHandlerTestSuite) makeRequest(method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// TestListContatos tests the paginated list
func (suite *ContatoHandlerTestSuite) TestListContatos() {
	contatos := []service.ContatoResponse{{ID: uuid.New().String(), Nome: "Maria da Silva"}}
	suite.mockContatoService.EXPECT().ListContatos("maria", 50, 0).Return(contatos, int64(1), nil)

	w := suite.makeRequest(http.MethodGet, "/contatos?q=maria", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	var response map[string]interface{}
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(suite.T(), float64(1), response["total"])
	assert.Len(suite.T(), response["items"], 1)
}

// TestGetContatoNotFound tests the 404 mapping
func (suite *ContatoHandlerTestSuite) TestGetContatoNotFound() {
	id := uuid.New()
	suite.mockContatoService.EXPECT().GetContatoDetail(id).Return(nil, apperrors.ErrContatoNotFound)

	w := suite.makeRequest(http.MethodGet, "/contatos/"+id.String(), nil)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

// TestGetContatoInvalidUUID tests the 400 mapping for a malformed id
func (suite *ContatoHandlerTestSuite) TestGetContatoInvalidUUID() {
	w := suite.makeRequest(http.MethodGet, "/contatos/not-a-uuid", nil)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestTransitionStatusOK tests a successful pipeline transition
func (suite *ContatoHandlerTestSuite) TestTransitionStatusOK() {
	id := uuid.New()
	req := &service.TransitionStatusRequest{Status: "Attempted"}
	suite.mockPipelineService.EXPECT().TransitionStatus(id, req).Return(&service.TransitionStatusResponse{
		ContatoID: id.String(),
		Status:    "Attempted",
	}, nil)

	w := suite.makeRequest(http.MethodPatch, "/contatos/"+id.String()+"/status", req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	var response service.TransitionStatusResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(suite.T(), "Attempted", response.Status)
	assert.False(suite.T(), response.SiblingsWon)
}

// TestTransitionStatusWonReportsCascade tests the cascade fields in the response
func (suite *ContatoHandlerTestSuite) TestTransitionStatusWonReportsCascade() {
	id := uuid.New()
	req := &service.TransitionStatusRequest{Status: "Won"}
	suite.mockPipelineService.EXPECT().TransitionStatus(id, req).Return(&service.TransitionStatusResponse{
		ContatoID:      id.String(),
		Status:         "Won",
		SiblingsWon:    true,
		SiblingsClosed: 2,
	}, nil)

	w := suite.makeRequest(http.MethodPatch, "/contatos/"+id.String()+"/status", req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	var response map[string]interface{}
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(suite.T(), true, response["cascade_applied"])
	assert.Equal(suite.T(), float64(2), response["siblings_closed"])
}

// TestTransitionStatusMultipleCasosConflict tests the 409 mapping
func (suite *ContatoHandlerTestSuite) TestTransitionStatusMultipleCasosConflict() {
	id := uuid.New()
	req := &service.TransitionStatusRequest{Status: "Won"}
	suite.mockPipelineService.EXPECT().TransitionStatus(id, req).
		Return(nil, apperrors.ErrContactLinkedToMultipleCases)

	w := suite.makeRequest(http.MethodPatch, "/contatos/"+id.String()+"/status", req)

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

// TestTransitionStatusInvalidStatus tests the 400 mapping for unknown stages
func (suite *ContatoHandlerTestSuite) TestTransitionStatusInvalidStatus() {
	id := uuid.New()
	req := &service.TransitionStatusRequest{Status: "Closed"}
	suite.mockPipelineService.EXPECT().TransitionStatus(id, req).
		Return(nil, apperrors.ErrInvalidStatus)

	w := suite.makeRequest(http.MethodPatch, "/contatos/"+id.String()+"/status", req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestUpdateScheduledDateConflict tests rescheduling a contato that is not
// in the Scheduled stage
func (suite *ContatoHandlerTestSuite) TestUpdateScheduledDateConflict() {
	id := uuid.New()
	req := &service.UpdateScheduledDateRequest{ScheduledFor: time.Now().Add(24 * time.Hour).UTC().Truncate(time.Second)}
	suite.mockPipelineService.EXPECT().UpdateScheduledDate(id, req).Return(apperrors.ErrNotScheduled)

	w := suite.makeRequest(http.MethodPatch, "/contatos/"+id.String()+"/schedule", req)

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

// TestSaveNotes tests the overwrite-notes endpoint
func (suite *ContatoHandlerTestSuite) TestSaveNotes() {
	id := uuid.New()
	req := &service.SaveNotesRequest{Notes: "ligou de volta"}
	suite.mockPipelineService.EXPECT().SaveNotes(id, req).Return(nil)

	w := suite.makeRequest(http.MethodPut, "/contatos/"+id.String()+"/notes", req)

	assert.Equal(suite.T(), http.StatusNoContent, w.Code)
}

// TestSetContacted tests the legacy contacted flag endpoint
func (suite *ContatoHandlerTestSuite) TestSetContacted() {
	id := uuid.New()
	req := &service.SetContactedRequest{Contacted: true}
	suite.mockPipelineService.EXPECT().SetContacted(id, req).Return(nil)

	w := suite.makeRequest(http.MethodPatch, "/contatos/"+id.String()+"/contacted", req)

	assert.Equal(suite.T(), http.StatusNoContent, w.Code)
}

// TestDeleteContato tests the delete endpoint
func (suite *ContatoHandlerTestSuite) TestDeleteContato() {
	id := uuid.New()
	suite.mockContatoService.EXPECT().DeleteContato(id).Return(nil)

	w := suite.makeRequest(http.MethodDelete, "/contatos/"+id.String(), nil)

	assert.Equal(suite.T(), http.StatusNoContent, w.Code)
}

// TestContatoHandlerTestSuite runs the test suite
func TestContatoHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ContatoHandlerTestSuite))
}
