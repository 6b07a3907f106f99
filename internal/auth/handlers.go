package auth

import (
	"net/http"

	apperrors "pipeline-crm-backend/internal/errors"

	"github.com/gin-gonic/gin"
)

// Handler handles HTTP requests for authentication
type Handler struct {
	service *Service
}

// NewHandler creates a new authentication handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// SignIn handles POST /api/auth/signin
// @Summary Sign in with email and password
// @Description Verify operator credentials and issue an access/refresh token pair
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body SignInRequest true "Credentials"
// @Success 200 {object} TokenResponse
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 401 {object} map[string]interface{} "Invalid credentials or deactivated profile"
// @Router /api/auth/signin [post]
func (h *Handler) SignIn(c *gin.Context) {
	var req SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	response, err := h.service.SignIn(&req)
	if err != nil {
		if apperrors.IsAuthentication(err) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Sign-in failed"})
		return
	}

	c.JSON(http.StatusOK, response)
}

// Refresh handles POST /api/auth/refresh
// @Summary Refresh access token
// @Description Rotate the refresh token and issue a new access token
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body RefreshTokenRequest true "Refresh token"
// @Success 200 {object} TokenResponse
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 401 {object} map[string]interface{} "Invalid or expired refresh token"
// @Router /api/auth/refresh [post]
func (h *Handler) Refresh(c *gin.Context) {
	var req RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	response, err := h.service.RefreshToken(req.RefreshToken)
	if err != nil {
		switch {
		case err == apperrors.ErrInvalidRefreshToken, err == apperrors.ErrRefreshTokenExpired:
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		case apperrors.IsAuthentication(err):
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token refresh failed"})
		}
		return
	}

	c.JSON(http.StatusOK, response)
}

// SignOut handles POST /api/auth/signout
// @Summary Sign out
// @Description Revoke the refresh token
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body RefreshTokenRequest true "Refresh token"
// @Success 200 {object} map[string]interface{} "Signed out"
// @Router /api/auth/signout [post]
func (h *Handler) SignOut(c *gin.Context) {
	var req RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	h.service.SignOut(req.RefreshToken)
	c.JSON(http.StatusOK, gin.H{"message": "Signed out successfully"})
}

// Me handles GET /api/auth/me
// @Summary Current identity
// @Description Return the identity claims of the presented access token
// @Tags authentication
// @Produce json
// @Security BearerAuth
// @Success 200 {object} ProfileSnapshot
// @Failure 401 {object} map[string]interface{} "Missing or invalid token"
// @Router /api/auth/me [get]
func (h *Handler) Me(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	c.JSON(http.StatusOK, ProfileSnapshot{
		ID:       claims.ProfileID,
		Email:    claims.Email,
		FullName: claims.FullName,
		Role:     claims.Role,
	})
}
