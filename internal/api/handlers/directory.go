package handlers

import (
	"errors"
	"net/http"

	apperrors "pipeline-crm-backend/internal/errors"
	"pipeline-crm-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// DirectoryHandler handles HTTP requests for corporate directory lookups
type DirectoryHandler struct {
	directoryService service.DirectoryServiceInterface
}

// NewDirectoryHandler creates a new directory handler
func NewDirectoryHandler(directoryService service.DirectoryServiceInterface) *DirectoryHandler {
	return &DirectoryHandler{directoryService: directoryService}
}

// Search handles GET /directory/search
// @Summary Search the corporate directory
// @Description Look up users in the corporate LDAP directory by display name prefix
// @Tags directory
// @Accept json
// @Produce json
// @Param name query string true "Name prefix"
// @Success 200 {object} map[string][]service.DirectoryUser
// @Failure 400 {object} ErrorResponse "Missing name parameter"
// @Failure 502 {object} ErrorResponse "Directory unavailable"
// @Failure 503 {object} ErrorResponse "Directory not configured"
// @Security BearerAuth
// @Router /directory/search [get]
func (h *DirectoryHandler) Search(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query parameter 'name' is required"})
		return
	}

	users, err := h.directoryService.SearchByName(name)
	if err != nil {
		if errors.Is(err, apperrors.ErrDirectoryProviderNotConfigured) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": users})
}
