package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"pipeline-crm-backend/internal/auth"
	apperrors "pipeline-crm-backend/internal/errors"
	"pipeline-crm-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CaseFileHandler handles HTTP requests for caso file attachments
type CaseFileHandler struct {
	caseFileService service.CaseFileServiceInterface
}

// NewCaseFileHandler creates a new case file handler
func NewCaseFileHandler(caseFileService service.CaseFileServiceInterface) *CaseFileHandler {
	return &CaseFileHandler{caseFileService: caseFileService}
}

// Upload handles POST /casos/:id/files
// @Summary Upload caso attachment
// @Description Attach a document (death certificate, contract) to a caso; max 25 MB
// @Tags files
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Caso ID"
// @Param file formData file true "File to upload"
// @Success 201 {object} service.CaseFileResponse
// @Failure 400 {object} ErrorResponse "Invalid UUID, missing file, or file too large"
// @Failure 404 {object} ErrorResponse "Caso not found"
// @Failure 503 {object} ErrorResponse "Storage not configured"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /casos/{id}/files [post]
func (h *CaseFileHandler) Upload(c *gin.Context) {
	casoID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid caso ID"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File is required", "details": err.Error()})
		return
	}

	uploadedBy, _ := auth.GetProfileID(c)

	record, err := h.caseFileService.Upload(c.Request.Context(), casoID, uploadedBy, fileHeader)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrCasoNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrStorageProviderNotConfigured):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		case apperrors.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, record)
}

// List handles GET /casos/:id/files
// @Summary List caso attachments
// @Description List the documents attached to a caso, newest first
// @Tags files
// @Accept json
// @Produce json
// @Param id path string true "Caso ID"
// @Success 200 {object} map[string][]service.CaseFileResponse
// @Failure 400 {object} ErrorResponse "Invalid UUID"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /casos/{id}/files [get]
func (h *CaseFileHandler) List(c *gin.Context) {
	casoID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid caso ID"})
		return
	}

	files, err := h.caseFileService.List(casoID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"files": files})
}

// Download handles GET /files/:fileId
// @Summary Download caso attachment
// @Description Stream an attached document back to the caller
// @Tags files
// @Accept json
// @Produce application/octet-stream
// @Param fileId path string true "File ID"
// @Success 200 {file} binary "File content"
// @Failure 400 {object} ErrorResponse "Invalid UUID"
// @Failure 404 {object} ErrorResponse "File not found"
// @Failure 503 {object} ErrorResponse "Storage not configured"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /files/{fileId} [get]
func (h *CaseFileHandler) Download(c *gin.Context) {
	fileID, err := uuid.Parse(c.Param("fileId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid file ID"})
		return
	}

	download, err := h.caseFileService.Download(c.Request.Context(), fileID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrCaseFileNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrStorageProviderNotConfigured):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	defer download.Body.Close()

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", download.FileName))
	c.Header("Content-Type", download.ContentType)
	c.Status(http.StatusOK)
	_, _ = io.Copy(c.Writer, download.Body)
}

// Delete handles DELETE /files/:fileId
// @Summary Delete caso attachment
// @Description Remove an attached document from storage and the database
// @Tags files
// @Accept json
// @Produce json
// @Param fileId path string true "File ID"
// @Success 204 "Deleted"
// @Failure 400 {object} ErrorResponse "Invalid UUID"
// @Failure 404 {object} ErrorResponse "File not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /files/{fileId} [delete]
func (h *CaseFileHandler) Delete(c *gin.Context) {
	fileID, err := uuid.Parse(c.Param("fileId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid file ID"})
		return
	}

	if err := h.caseFileService.Delete(c.Request.Context(), fileID); err != nil {
		if errors.Is(err, apperrors.ErrCaseFileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
