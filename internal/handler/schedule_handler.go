package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cyclonesb/schedule-builder/internal/dto"
	"github.com/cyclonesb/schedule-builder/internal/middleware"
	appErrors "github.com/cyclonesb/schedule-builder/pkg/errors"
	"github.com/cyclonesb/schedule-builder/pkg/response"
)

type scheduleManager interface {
	Generate(ctx context.Context, sessionID string, req dto.GenerateSchedulesRequest) (*dto.GenerateSchedulesResponse, error)
	Current(ctx context.Context, sessionID string) (*dto.CurrentScheduleResponse, error)
	Advance(ctx context.Context, sessionID string, delta int) (*dto.CurrentScheduleResponse, error)
}

// ScheduleHandler exposes schedule generation and navigation endpoints.
type ScheduleHandler struct {
	service scheduleManager
}

// NewScheduleHandler constructs the handler.
func NewScheduleHandler(svc scheduleManager) *ScheduleHandler {
	return &ScheduleHandler{service: svc}
}

// Generate godoc
// @Summary Generate ranked conflict-free schedules for the basket
// @Tags Schedules
// @Accept json
// @Produce json
// @Param payload body dto.GenerateSchedulesRequest true "Generation payload"
// @Success 200 {object} response.Envelope
// @Router /schedules/generate [post]
func (h *ScheduleHandler) Generate(c *gin.Context) {
	var req dto.GenerateSchedulesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid generation payload"))
		return
	}
	resp, err := h.service.Generate(c.Request.Context(), middleware.SessionID(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, resp)
}

// Current godoc
// @Summary Get the schedule the session is positioned on
// @Tags Schedules
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /schedules/current [get]
func (h *ScheduleHandler) Current(c *gin.Context) {
	resp, err := h.service.Current(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, resp)
}

// Next godoc
// @Summary Advance to the next schedule, wrapping at the end
// @Tags Schedules
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /schedules/next [post]
func (h *ScheduleHandler) Next(c *gin.Context) {
	h.advance(c, 1)
}

// Previous godoc
// @Summary Step back to the previous schedule, wrapping at the start
// @Tags Schedules
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /schedules/previous [post]
func (h *ScheduleHandler) Previous(c *gin.Context) {
	h.advance(c, -1)
}

func (h *ScheduleHandler) advance(c *gin.Context, delta int) {
	resp, err := h.service.Advance(c.Request.Context(), middleware.SessionID(c), delta)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, resp)
}
