package handlers

import (
	"errors"
	"net/http"

	apperrors "pipeline-crm-backend/internal/errors"
	"pipeline-crm-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ContatoHandler handles HTTP requests for contato and pipeline operations
type ContatoHandler struct {
	contatoService  service.ContatoServiceInterface
	pipelineService service.PipelineServiceInterface
}

// NewContatoHandler creates a new contato handler
func NewContatoHandler(contatoService service.ContatoServiceInterface, pipelineService service.PipelineServiceInterface) *ContatoHandler {
	return &ContatoHandler{
		contatoService:  contatoService,
		pipelineService: pipelineService,
	}
}

// ListContatos handles GET /contatos
// @Summary List contatos
// @Description List contatos with pagination and an optional free-text search over name, CPF and phones
// @Tags contatos
// @Accept json
// @Produce json
// @Param q query string false "Search text"
// @Param limit query int false "Page size (default 50)"
// @Param offset query int false "Page offset"
// @Success 200 {object} map[string]interface{} "Paginated contato list"
// @Failure 400 {object} ErrorResponse "Invalid pagination parameters"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /contatos [get]
func (h *ContatoHandler) ListContatos(c *gin.Context) {
	limit, offset := parsePagination(c, 50)

	contatos, total, err := h.contatoService.ListContatos(c.Query("q"), limit, offset)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidPaginationParams) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, listEnvelope{Items: contatos, Total: total, Limit: limit, Offset: offset})
}

// CreateContato handles POST /contatos
// @Summary Create contato
// @Description Create a new contato; it enters the pipeline in the New stage
// @Tags contatos
// @Accept json
// @Produce json
// @Param request body service.CreateContatoRequest true "Contato payload"
// @Success 201 {object} service.ContatoResponse
// @Failure 400 {object} ErrorResponse "Validation error"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /contatos [post]
func (h *ContatoHandler) CreateContato(c *gin.Context) {
	var req service.CreateContatoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	contato, err := h.contatoService.CreateContato(&req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, contato)
}

// GetContato handles GET /contatos/:id
// @Summary Get contato
// @Description Get a contato with its linked casos
// @Tags contatos
// @Accept json
// @Produce json
// @Param id path string true "Contato ID"
// @Success 200 {object} service.ContatoDetailResponse
// @Failure 400 {object} ErrorResponse "Invalid UUID"
// @Failure 404 {object} ErrorResponse "Contato not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /contatos/{id} [get]
func (h *ContatoHandler) GetContato(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid contato ID"})
		return
	}

	detail, err := h.contatoService.GetContatoDetail(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrContatoNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, detail)
}

// UpdateContato handles PUT /contatos/:id
// @Summary Update contato
// @Description Apply a partial update to a contato's identity fields
// @Tags contatos
// @Accept json
// @Produce json
// @Param id path string true "Contato ID"
// @Param request body service.UpdateContatoRequest true "Fields to update"
// @Success 200 {object} service.ContatoResponse
// @Failure 400 {object} ErrorResponse "Invalid UUID or validation error"
// @Failure 404 {object} ErrorResponse "Contato not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /contatos/{id} [put]
func (h *ContatoHandler) UpdateContato(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid contato ID"})
		return
	}

	var req service.UpdateContatoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	contato, err := h.contatoService.UpdateContato(id, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrContatoNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, contato)
}

// DeleteContato handles DELETE /contatos/:id
// @Summary Delete contato
// @Description Delete a contato and its caso links
// @Tags contatos
// @Accept json
// @Produce json
// @Param id path string true "Contato ID"
// @Success 204 "Deleted"
// @Failure 400 {object} ErrorResponse "Invalid UUID"
// @Failure 404 {object} ErrorResponse "Contato not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /contatos/{id} [delete]
func (h *ContatoHandler) DeleteContato(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid contato ID"})
		return
	}

	if err := h.contatoService.DeleteContato(id); err != nil {
		if errors.Is(err, apperrors.ErrContatoNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// TransitionStatus handles PATCH /contatos/:id/status
// @Summary Transition pipeline status
// @Description Apply a status transition; a Won transition auto-closes the other contatos of the same caso
// @Tags pipeline
// @Accept json
// @Produce json
// @Param id path string true "Contato ID"
// @Param request body service.TransitionStatusRequest true "Target status"
// @Success 200 {object} service.TransitionStatusResponse
// @Failure 400 {object} ErrorResponse "Invalid status, missing scheduled date, or invalid UUID"
// @Failure 404 {object} ErrorResponse "Contato not found"
// @Failure 409 {object} ErrorResponse "Contato linked to more than one caso"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /contatos/{id}/status [patch]
func (h *ContatoHandler) TransitionStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid contato ID"})
		return
	}

	var req service.TransitionStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	result, err := h.pipelineService.TransitionStatus(id, &req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrContatoNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrInvalidStatus),
			errors.Is(err, apperrors.ErrScheduledDateRequired):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrContactLinkedToMultipleCases):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

// UpdateScheduledDate handles PATCH /contatos/:id/schedule
// @Summary Reschedule a contato
// @Description Rewrite the scheduled date of a contato currently in Scheduled status
// @Tags pipeline
// @Accept json
// @Produce json
// @Param id path string true "Contato ID"
// @Param request body service.UpdateScheduledDateRequest true "New scheduled date"
// @Success 204 "Rescheduled"
// @Failure 400 {object} ErrorResponse "Invalid UUID or validation error"
// @Failure 404 {object} ErrorResponse "Contato not found"
// @Failure 409 {object} ErrorResponse "Contato is not in Scheduled status"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /contatos/{id}/schedule [patch]
func (h *ContatoHandler) UpdateScheduledDate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid contato ID"})
		return
	}

	var req service.UpdateScheduledDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	if err := h.pipelineService.UpdateScheduledDate(id, &req); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrContatoNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotScheduled):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// SaveNotes handles PUT /contatos/:id/notes
// @Summary Save notes
// @Description Overwrite the free-text notes of a contato (last write wins)
// @Tags pipeline
// @Accept json
// @Produce json
// @Param id path string true "Contato ID"
// @Param request body service.SaveNotesRequest true "Notes text"
// @Success 204 "Saved"
// @Failure 400 {object} ErrorResponse "Invalid UUID"
// @Failure 404 {object} ErrorResponse "Contato not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /contatos/{id}/notes [put]
func (h *ContatoHandler) SaveNotes(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid contato ID"})
		return
	}

	var req service.SaveNotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	if err := h.pipelineService.SaveNotes(id, &req); err != nil {
		if errors.Is(err, apperrors.ErrContatoNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// SetContacted handles PATCH /contatos/:id/contacted
// @Summary Flip the contacted flag
// @Description Set or clear the legacy contacted marker on a contato
// @Tags pipeline
// @Accept json
// @Produce json
// @Param id path string true "Contato ID"
// @Param request body service.SetContactedRequest true "Contacted flag"
// @Success 204 "Updated"
// @Failure 400 {object} ErrorResponse "Invalid UUID"
// @Failure 404 {object} ErrorResponse "Contato not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /contatos/{id}/contacted [patch]
func (h *ContatoHandler) SetContacted(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid contato ID"})
		return
	}

	var req service.SetContactedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	if err := h.pipelineService.SetContacted(id, &req); err != nil {
		if errors.Is(err, apperrors.ErrContatoNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
