package handlers

import (
	"net/http"

	"pipeline-crm-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// DashboardHandler handles HTTP requests for the dashboard and kanban board
type DashboardHandler struct {
	dashboardService service.DashboardServiceInterface
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService service.DashboardServiceInterface) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetSummary handles GET /dashboard/summary
// @Summary Dashboard summary
// @Description Aggregate counts across casos, contatos and pipeline stages plus the most recent casos
// @Tags dashboard
// @Accept json
// @Produce json
// @Success 200 {object} service.DashboardSummaryResponse
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /dashboard/summary [get]
func (h *DashboardHandler) GetSummary(c *gin.Context) {
	summary, err := h.dashboardService.GetSummary()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, summary)
}

// GetBoard handles GET /dashboard/board
// @Summary Kanban board
// @Description Pipeline cards grouped into the six stage columns, with an optional city filter
// @Tags dashboard
// @Accept json
// @Produce json
// @Param city query string false "Filter by city"
// @Param limit query int false "Card cap (default 200)"
// @Param offset query int false "Card offset"
// @Success 200 {object} service.KanbanBoardResponse
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /dashboard/board [get]
func (h *DashboardHandler) GetBoard(c *gin.Context) {
	limit, offset := parsePagination(c, 200)

	board, err := h.dashboardService.GetBoard(c.Query("city"), limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, board)
}
