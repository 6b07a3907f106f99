package handlers

import (
	"errors"
	"net/http"

	"pipeline-crm-backend/internal/auth"
	apperrors "pipeline-crm-backend/internal/errors"
	"pipeline-crm-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ProfileHandler handles HTTP requests for profile management
type ProfileHandler struct {
	profileService service.ProfileServiceInterface
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profileService service.ProfileServiceInterface) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// ListProfiles handles GET /profiles
// @Summary List profiles
// @Description List operator profiles; admin only
// @Tags profiles
// @Accept json
// @Produce json
// @Param limit query int false "Page size (default 50)"
// @Param offset query int false "Page offset"
// @Success 200 {object} map[string]interface{} "Paginated profile list"
// @Failure 403 {object} ErrorResponse "Insufficient role"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /profiles [get]
func (h *ProfileHandler) ListProfiles(c *gin.Context) {
	limit, offset := parsePagination(c, 50)

	role, _ := auth.GetRole(c)
	profiles, total, err := h.profileService.ListProfiles(role, limit, offset)
	if err != nil {
		if errors.Is(err, apperrors.ErrInsufficientRole) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, listEnvelope{Items: profiles, Total: total, Limit: limit, Offset: offset})
}

// CreateProfile handles POST /profiles
// @Summary Create profile
// @Description Register a new operator profile; admin only
// @Tags profiles
// @Accept json
// @Produce json
// @Param request body service.CreateProfileRequest true "Profile payload"
// @Success 201 {object} service.ProfileResponse
// @Failure 400 {object} ErrorResponse "Validation error"
// @Failure 403 {object} ErrorResponse "Insufficient role"
// @Failure 409 {object} ErrorResponse "Email already registered"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /profiles [post]
func (h *ProfileHandler) CreateProfile(c *gin.Context) {
	var req service.CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	role, _ := auth.GetRole(c)
	profile, err := h.profileService.CreateProfile(role, &req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInsufficientRole):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrProfileExists):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, profile)
}

// GetProfile handles GET /profiles/:id
// @Summary Get profile
// @Description Get a single operator profile
// @Tags profiles
// @Accept json
// @Produce json
// @Param id path string true "Profile ID"
// @Success 200 {object} service.ProfileResponse
// @Failure 400 {object} ErrorResponse "Invalid UUID"
// @Failure 404 {object} ErrorResponse "Profile not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /profiles/{id} [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid profile ID"})
		return
	}

	profile, err := h.profileService.GetProfile(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, profile)
}

// UpdateProfile handles PUT /profiles/:id
// @Summary Update profile
// @Description Apply a partial update to a profile (name, role, active flag); admin only
// @Tags profiles
// @Accept json
// @Produce json
// @Param id path string true "Profile ID"
// @Param request body service.UpdateProfileRequest true "Fields to update"
// @Success 200 {object} service.ProfileResponse
// @Failure 400 {object} ErrorResponse "Invalid UUID or validation error"
// @Failure 403 {object} ErrorResponse "Insufficient role"
// @Failure 404 {object} ErrorResponse "Profile not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /profiles/{id} [put]
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid profile ID"})
		return
	}

	var req service.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	role, _ := auth.GetRole(c)
	profile, err := h.profileService.UpdateProfile(role, id, &req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrProfileNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrInsufficientRole):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, profile)
}

// ChangePassword handles PUT /profiles/me/password
// @Summary Change own password
// @Description Change the authenticated profile's password after verifying the current one
// @Tags profiles
// @Accept json
// @Produce json
// @Param request body service.ChangePasswordRequest true "Current and new passwords"
// @Success 204 "Password changed"
// @Failure 400 {object} ErrorResponse "Validation error"
// @Failure 401 {object} ErrorResponse "Current password is wrong"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /profiles/me/password [put]
func (h *ProfileHandler) ChangePassword(c *gin.Context) {
	profileID, ok := auth.GetProfileID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req service.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	if err := h.profileService.ChangePassword(profileID, &req); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrProfileNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteProfile handles DELETE /profiles/:id
// @Summary Delete profile
// @Description Delete an operator profile; admin only
// @Tags profiles
// @Accept json
// @Produce json
// @Param id path string true "Profile ID"
// @Success 204 "Deleted"
// @Failure 400 {object} ErrorResponse "Invalid UUID"
// @Failure 403 {object} ErrorResponse "Insufficient role"
// @Failure 404 {object} ErrorResponse "Profile not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /profiles/{id} [delete]
func (h *ProfileHandler) DeleteProfile(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid profile ID"})
		return
	}

	role, _ := auth.GetRole(c)
	if err := h.profileService.DeleteProfile(role, id); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrProfileNotFound):
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
