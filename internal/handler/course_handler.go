package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cyclonesb/schedule-builder/internal/dto"
	"github.com/cyclonesb/schedule-builder/internal/middleware"
	"github.com/cyclonesb/schedule-builder/internal/models"
	appErrors "github.com/cyclonesb/schedule-builder/pkg/errors"
	"github.com/cyclonesb/schedule-builder/pkg/response"
)

type basketManager interface {
	AddCourses(ctx context.Context, sessionID string, req dto.AddCoursesRequest) (*models.SessionState, error)
	RemoveCourse(ctx context.Context, sessionID, courseID string) (*models.SessionState, error)
	Basket(ctx context.Context, sessionID string) (*models.SessionState, error)
}

// CourseHandler exposes the course basket endpoints.
type CourseHandler struct {
	service basketManager
}

// NewCourseHandler constructs the handler.
func NewCourseHandler(svc basketManager) *CourseHandler {
	return &CourseHandler{service: svc}
}

// Add godoc
// @Summary Search the catalog and add matches to the basket
// @Tags Courses
// @Accept json
// @Produce json
// @Param payload body dto.AddCoursesRequest true "Course search payload"
// @Success 201 {object} response.Envelope
// @Router /courses [post]
func (h *CourseHandler) Add(c *gin.Context) {
	var req dto.AddCoursesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid course search payload"))
		return
	}
	state, err := h.service.AddCourses(c.Request.Context(), middleware.SessionID(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.BasketResponse{AcademicPeriod: state.AcademicPeriod, Courses: state.Courses})
}

// Remove godoc
// @Summary Remove a course from the basket
// @Tags Courses
// @Produce json
// @Param courseId path string true "Course ID"
// @Success 200 {object} response.Envelope
// @Router /courses/{courseId} [delete]
func (h *CourseHandler) Remove(c *gin.Context) {
	state, err := h.service.RemoveCourse(c.Request.Context(), middleware.SessionID(c), c.Param("courseId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, dto.BasketResponse{AcademicPeriod: state.AcademicPeriod, Courses: state.Courses})
}

// List godoc
// @Summary List the courses currently in the basket
// @Tags Courses
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /courses [get]
func (h *CourseHandler) List(c *gin.Context) {
	state, err := h.service.Basket(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, dto.BasketResponse{AcademicPeriod: state.AcademicPeriod, Courses: state.Courses})
}
