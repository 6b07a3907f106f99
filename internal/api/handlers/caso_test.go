package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pipeline-crm-backend/internal/api/handlers"
	"pipeline-crm-backend/internal/mocks"
	"pipeline-crm-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// CasoHandlerTestSuite defines the test suite for CasoHandler
type CasoHandlerTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockCasoService *mocks.MockCasoServiceInterface
	router          *gin.Engine
}

// SetupTest sets up the test suite
func (suite *CasoHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockCasoService = mocks.NewMockCasoServiceInterface(suite.ctrl)

	handler := handlers.NewCasoHandler(suite.mockCasoService)

	suite.router = gin.New()
	casos := suite.router.Group("/casos")
	{
		casos.GET("", handler.ListCasos)
		casos.GET("/:id", handler.GetCaso)
	}
}

// TearDownTest cleans up after each test
func (suite *CasoHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *CasoHandlerTestSuite) makeRequest(method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// TestListCasos tests the paginated list without filters
func (suite *CasoHandlerTestSuite) TestListCasos() {
	casos := []service.CasoResponse{{ID: uuid.New().String(), Nome: "José da Silva"}}
	suite.mockCasoService.EXPECT().ListCasos("", "", nil, nil, 50, 0).Return(casos, int64(1), nil)

	w := suite.makeRequest(http.MethodGet, "/casos")

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	var response map[string]interface{}
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(suite.T(), float64(1), response["total"])
	assert.Len(suite.T(), response["items"], 1)
}

// TestListCasosWithDateRange tests that the death-date window reaches the service
func (suite *CasoHandlerTestSuite) TestListCasosWithDateRange() {
	start := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 4, 30, 0, 0, 0, 0, time.UTC)
	suite.mockCasoService.EXPECT().ListCasos("campinas", "", &start, &end, 50, 0).
		Return([]service.CasoResponse{}, int64(0), nil)

	w := suite.makeRequest(http.MethodGet, "/casos?city=campinas&date_start=2026-02-01&date_end=2026-04-30")

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

// TestListCasosMalformedDateRejected tests the 400 mapping for a bad date
func (suite *CasoHandlerTestSuite) TestListCasosMalformedDateRejected() {
	w := suite.makeRequest(http.MethodGet, "/casos?date_start=01-02-2026")

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestCasoHandlerTestSuite runs the test suite
func TestCasoHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CasoHandlerTestSuite))
}
