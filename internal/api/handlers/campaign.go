package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"pipeline-crm-backend/internal/auth"
	apperrors "pipeline-crm-backend/internal/errors"
	"pipeline-crm-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CampaignHandler handles HTTP requests for campaign operations
type CampaignHandler struct {
	campaignService service.CampaignServiceInterface
	exportService   service.ExportServiceInterface
}

// NewCampaignHandler creates a new campaign handler
func NewCampaignHandler(campaignService service.CampaignServiceInterface, exportService service.ExportServiceInterface) *CampaignHandler {
	return &CampaignHandler{
		campaignService: campaignService,
		exportService:   exportService,
	}
}

// ListCampaigns handles GET /campaigns
// @Summary List campaigns
// @Description List campaigns with their lead counts
// @Tags campaigns
// @Accept json
// @Produce json
// @Param limit query int false "Page size (default 50)"
// @Param offset query int false "Page offset"
// @Success 200 {object} map[string]interface{} "Paginated campaign list"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /campaigns [get]
func (h *CampaignHandler) ListCampaigns(c *gin.Context) {
	limit, offset := parsePagination(c, 50)

	campaigns, total, err := h.campaignService.ListCampaigns(limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, listEnvelope{Items: campaigns, Total: total, Limit: limit, Offset: offset})
}

// CreateCampaign handles POST /campaigns
// @Summary Create campaign
// @Description Create an outreach campaign; requires the admin or empresa role
// @Tags campaigns
// @Accept json
// @Produce json
// @Param request body service.CreateCampaignRequest true "Campaign payload"
// @Success 201 {object} service.CampaignResponse
// @Failure 400 {object} ErrorResponse "Validation error"
// @Failure 403 {object} ErrorResponse "Insufficient role"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /campaigns [post]
func (h *CampaignHandler) CreateCampaign(c *gin.Context) {
	var req service.CreateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	role, _ := auth.GetRole(c)
	campaign, err := h.campaignService.CreateCampaign(role, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrInsufficientRole) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, campaign)
}

// GetCampaign handles GET /campaigns/:id
// @Summary Get campaign
// @Description Get a campaign with its full lead list
// @Tags campaigns
// @Accept json
// @Produce json
// @Param id path string true "Campaign ID"
// @Success 200 {object} service.CampaignDetailResponse
// @Failure 400 {object} ErrorResponse "Invalid UUID"
// @Failure 404 {object} ErrorResponse "Campaign not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /campaigns/{id} [get]
func (h *CampaignHandler) GetCampaign(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid campaign ID"})
		return
	}

	detail, err := h.campaignService.GetCampaignDetail(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrCampaignNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, detail)
}

// UpdateCampaign handles PUT /campaigns/:id
// @Summary Update campaign
// @Description Apply a partial update to a campaign; requires the admin or empresa role
// @Tags campaigns
// @Accept json
// @Produce json
// @Param id path string true "Campaign ID"
// @Param request body service.UpdateCampaignRequest true "Fields to update"
// @Success 200 {object} service.CampaignResponse
// @Failure 400 {object} ErrorResponse "Invalid UUID or validation error"
// @Failure 403 {object} ErrorResponse "Insufficient role"
// @Failure 404 {object} ErrorResponse "Campaign not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /campaigns/{id} [put]
func (h *CampaignHandler) UpdateCampaign(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid campaign ID"})
		return
	}

	var req service.UpdateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	role, _ := auth.GetRole(c)
	campaign, err := h.campaignService.UpdateCampaign(role, id, &req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrCampaignNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrInsufficientRole):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, campaign)
}

// DeleteCampaign handles DELETE /campaigns/:id
// @Summary Delete campaign
// @Description Delete a campaign and its lead memberships; requires the admin or empresa role
// @Tags campaigns
// @Accept json
// @Produce json
// @Param id path string true "Campaign ID"
// @Success 204 "Deleted"
// @Failure 400 {object} ErrorResponse "Invalid UUID"
// @Failure 403 {object} ErrorResponse "Insufficient role"
// @Failure 404 {object} ErrorResponse "Campaign not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /campaigns/{id} [delete]
func (h *CampaignHandler) DeleteCampaign(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid campaign ID"})
		return
	}

	role, _ := auth.GetRole(c)
	if err := h.campaignService.DeleteCampaign(role, id); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrCampaignNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrInsufficientRole):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// ReplaceLeads handles PUT /campaigns/:id/leads
// @Summary Replace campaign leads
// @Description Replace the full lead list of a campaign; requires the admin or empresa role
// @Tags campaigns
// @Accept json
// @Produce json
// @Param id path string true "Campaign ID"
// @Param request body service.ReplaceLeadsRequest true "Contato IDs"
// @Success 200 {object} service.CampaignDetailResponse
// @Failure 400 {object} ErrorResponse "Invalid UUID or unknown contato"
// @Failure 403 {object} ErrorResponse "Insufficient role"
// @Failure 404 {object} ErrorResponse "Campaign not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /campaigns/{id}/leads [put]
func (h *CampaignHandler) ReplaceLeads(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid campaign ID"})
		return
	}

	var req service.ReplaceLeadsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	role, _ := auth.GetRole(c)
	detail, err := h.campaignService.ReplaceLeads(role, id, &req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrCampaignNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrInsufficientRole):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrContatoNotFound):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, detail)
}

// ExportLeads handles GET /campaigns/:id/export
// @Summary Export campaign leads
// @Description Download the campaign's lead list as an Excel workbook
// @Tags campaigns
// @Accept json
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param id path string true "Campaign ID"
// @Success 200 {file} binary "Excel workbook"
// @Failure 400 {object} ErrorResponse "Invalid UUID"
// @Failure 404 {object} ErrorResponse "Campaign not found"
// @Failure 422 {object} ErrorResponse "Campaign has no leads"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /campaigns/{id}/export [get]
func (h *CampaignHandler) ExportLeads(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid campaign ID"})
		return
	}

	result, err := h.exportService.ExportCampaignLeads(id)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrCampaignNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrCampaignHasNoLeads):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.FileName))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", result.Content)
}
