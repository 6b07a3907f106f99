package handlers

import (
	"errors"
	"net/http"

	apperrors "pipeline-crm-backend/internal/errors"
	"pipeline-crm-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CasoHandler handles HTTP requests for caso operations
type CasoHandler struct {
	casoService service.CasoServiceInterface
}

// NewCasoHandler creates a new caso handler
func NewCasoHandler(casoService service.CasoServiceInterface) *CasoHandler {
	return &CasoHandler{casoService: casoService}
}

// ListCasos handles GET /casos
// @Summary List casos
// @Description List casos with pagination, optional city filter, death-date range and free-text search over name and funeral home
// @Tags casos
// @Accept json
// @Produce json
// @Param city query string false "Filter by city"
// @Param search query string false "Search text"
// @Param date_start query string false "Earliest death date (YYYY-MM-DD)"
// @Param date_end query string false "Latest death date (YYYY-MM-DD)"
// @Param limit query int false "Page size (default 50)"
// @Param offset query int false "Page offset"
// @Success 200 {object} map[string]interface{} "Paginated caso list"
// @Failure 400 {object} ErrorResponse "Invalid pagination or date parameters"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /casos [get]
func (h *CasoHandler) ListCasos(c *gin.Context) {
	limit, offset := parsePagination(c, 50)

	dateStart, ok := parseDateParam(c, "date_start")
	if !ok {
		return
	}
	dateEnd, ok := parseDateParam(c, "date_end")
	if !ok {
		return
	}

	casos, total, err := h.casoService.ListCasos(c.Query("city"), c.Query("search"), dateStart, dateEnd, limit, offset)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidPaginationParams) || errors.Is(err, apperrors.ErrInvalidDateRange) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, listEnvelope{Items: casos, Total: total, Limit: limit, Offset: offset})
}

// ListCities handles GET /casos/cities
// @Summary List cities
// @Description List the distinct cities present across all casos
// @Tags casos
// @Accept json
// @Produce json
// @Success 200 {object} map[string][]string
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /casos/cities [get]
func (h *CasoHandler) ListCities(c *gin.Context) {
	cities, err := h.casoService.ListCities()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"cities": cities})
}

// CreateCaso handles POST /casos
// @Summary Create caso
// @Description Register a new caso (deceased person record)
// @Tags casos
// @Accept json
// @Produce json
// @Param request body service.CreateCasoRequest true "Caso payload"
// @Success 201 {object} service.CasoResponse
// @Failure 400 {object} ErrorResponse "Validation error"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /casos [post]
func (h *CasoHandler) CreateCaso(c *gin.Context) {
	var req service.CreateCasoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	caso, err := h.casoService.CreateCaso(&req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, caso)
}

// GetCaso handles GET /casos/:id
// @Summary Get caso
// @Description Get a caso with its linked relatives and their pipeline state
// @Tags casos
// @Accept json
// @Produce json
// @Param id path string true "Caso ID"
// @Success 200 {object} service.CasoDetailResponse
// @Failure 400 {object} ErrorResponse "Invalid UUID"
// @Failure 404 {object} ErrorResponse "Caso not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /casos/{id} [get]
func (h *CasoHandler) GetCaso(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid caso ID"})
		return
	}

	detail, err := h.casoService.GetCasoDetail(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrCasoNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, detail)
}

// UpdateCaso handles PUT /casos/:id
// @Summary Update caso
// @Description Apply a partial update to a caso
// @Tags casos
// @Accept json
// @Produce json
// @Param id path string true "Caso ID"
// @Param request body service.UpdateCasoRequest true "Fields to update"
// @Success 200 {object} service.CasoResponse
// @Failure 400 {object} ErrorResponse "Invalid UUID or validation error"
// @Failure 404 {object} ErrorResponse "Caso not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /casos/{id} [put]
func (h *CasoHandler) UpdateCaso(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid caso ID"})
		return
	}

	var req service.UpdateCasoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	caso, err := h.casoService.UpdateCaso(id, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrCasoNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, caso)
}

// DeleteCaso handles DELETE /casos/:id
// @Summary Delete caso
// @Description Delete a caso; its contatos survive but lose the link
// @Tags casos
// @Accept json
// @Produce json
// @Param id path string true "Caso ID"
// @Success 204 "Deleted"
// @Failure 400 {object} ErrorResponse "Invalid UUID"
// @Failure 404 {object} ErrorResponse "Caso not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /casos/{id} [delete]
func (h *CasoHandler) DeleteCaso(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid caso ID"})
		return
	}

	if err := h.casoService.DeleteCaso(id); err != nil {
		if errors.Is(err, apperrors.ErrCasoNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// LinkContato handles POST /casos/:id/relatives
// @Summary Link contato to caso
// @Description Create a relacionamento between a caso and a contato with a kinship label
// @Tags casos
// @Accept json
// @Produce json
// @Param id path string true "Caso ID"
// @Param request body service.LinkContatoRequest true "Contato and kinship"
// @Success 201 {object} service.RelativeResponse
// @Failure 400 {object} ErrorResponse "Invalid UUID or validation error"
// @Failure 404 {object} ErrorResponse "Caso or contato not found"
// @Failure 409 {object} ErrorResponse "Link already exists"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /casos/{id}/relatives [post]
func (h *CasoHandler) LinkContato(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid caso ID"})
		return
	}

	var req service.LinkContatoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	relative, err := h.casoService.LinkContato(id, &req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrCasoNotFound),
			errors.Is(err, apperrors.ErrContatoNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrRelacionamentoExists):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, relative)
}

// UnlinkContato handles DELETE /casos/relatives/:relId
// @Summary Unlink contato from caso
// @Description Delete a relacionamento; both the caso and the contato survive
// @Tags casos
// @Accept json
// @Produce json
// @Param relId path string true "Relacionamento ID"
// @Success 204 "Unlinked"
// @Failure 400 {object} ErrorResponse "Invalid UUID"
// @Failure 404 {object} ErrorResponse "Relacionamento not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /casos/relatives/{relId} [delete]
func (h *CasoHandler) UnlinkContato(c *gin.Context) {
	relID, err := uuid.Parse(c.Param("relId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid relacionamento ID"})
		return
	}

	if err := h.casoService.UnlinkContato(relID); err != nil {
		if errors.Is(err, apperrors.ErrRelacionamentoNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
