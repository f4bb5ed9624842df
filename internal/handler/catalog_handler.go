package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cyclonesb/schedule-builder/internal/catalog"
	"github.com/cyclonesb/schedule-builder/internal/dto"
	"github.com/cyclonesb/schedule-builder/internal/middleware"
	"github.com/cyclonesb/schedule-builder/internal/models"
	appErrors "github.com/cyclonesb/schedule-builder/pkg/errors"
	"github.com/cyclonesb/schedule-builder/pkg/response"
)

type catalogProvider interface {
	Periods() []catalog.AcademicPeriod
	Departments(ctx context.Context, periodID string) ([]string, error)
	SetPeriod(ctx context.Context, sessionID string, req dto.SetPeriodRequest) (*models.SessionState, error)
}

// CatalogHandler exposes academic period and department lookups.
type CatalogHandler struct {
	service catalogProvider
}

// NewCatalogHandler constructs the handler.
func NewCatalogHandler(svc catalogProvider) *CatalogHandler {
	return &CatalogHandler{service: svc}
}

// Periods godoc
// @Summary List available academic periods
// @Tags Catalog
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /periods [get]
func (h *CatalogHandler) Periods(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.Periods())
}

// Departments godoc
// @Summary List departments for an academic period
// @Tags Catalog
// @Produce json
// @Param academicPeriod query string false "Academic period ID"
// @Success 200 {object} response.Envelope
// @Router /departments [get]
func (h *CatalogHandler) Departments(c *gin.Context) {
	departments, err := h.service.Departments(c.Request.Context(), c.Query("academicPeriod"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, departments)
}

// SetPeriod godoc
// @Summary Switch the session's academic period
// @Description Changing period clears the course basket and any generated schedules.
// @Tags Catalog
// @Accept json
// @Produce json
// @Param payload body dto.SetPeriodRequest true "Period payload"
// @Success 200 {object} response.Envelope
// @Router /period [post]
func (h *CatalogHandler) SetPeriod(c *gin.Context) {
	var req dto.SetPeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid period payload"))
		return
	}
	state, err := h.service.SetPeriod(c.Request.Context(), middleware.SessionID(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, dto.BasketResponse{AcademicPeriod: state.AcademicPeriod, Courses: state.Courses})
}
