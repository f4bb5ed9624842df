package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/cyclonesb/schedule-builder/internal/catalog"
	"github.com/cyclonesb/schedule-builder/internal/dto"
	"github.com/cyclonesb/schedule-builder/internal/models"
	appErrors "github.com/cyclonesb/schedule-builder/pkg/errors"
)

type catalogSearcher interface {
	Departments(ctx context.Context, periodID string) ([]string, error)
	SearchCourses(ctx context.Context, search catalog.SearchRequest) ([]models.Course, error)
}

type sessionStore interface {
	Get(ctx context.Context, sessionID string) (*models.SessionState, error)
	Save(ctx context.Context, sessionID string, state *models.SessionState) error
	Delete(ctx context.Context, sessionID string) error
}

// CourseService manages the per-session course basket against the catalog.
type CourseService struct {
	catalog       catalogSearcher
	sessions      sessionStore
	metrics       *MetricsService
	validator     *validator.Validate
	logger        *zap.Logger
	defaultPeriod string
}

// NewCourseService wires basket dependencies.
func NewCourseService(cat catalogSearcher, sessions sessionStore, metrics *MetricsService, validate *validator.Validate, logger *zap.Logger, defaultPeriod string) *CourseService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if defaultPeriod == "" {
		defaultPeriod = "ACADEMIC_PERIOD-2025Fall"
	}
	return &CourseService{
		catalog:       cat,
		sessions:      sessions,
		metrics:       metrics,
		validator:     validate,
		logger:        logger,
		defaultPeriod: defaultPeriod,
	}
}

// Periods lists the selectable academic periods.
func (s *CourseService) Periods() []catalog.AcademicPeriod {
	return catalog.DefaultPeriods()
}

// Departments returns department codes for a period, defaulting to the
// configured period when none is supplied.
func (s *CourseService) Departments(ctx context.Context, periodID string) ([]string, error) {
	if periodID == "" {
		periodID = s.defaultPeriod
	}
	start := time.Now()
	departments, err := s.catalog.Departments(ctx, periodID)
	s.metrics.ObserveCatalogRequest("departments", time.Since(start))
	if err != nil {
		return nil, err
	}
	return departments, nil
}

// AddCourses searches the catalog and merges the matches into the basket.
// Any previously generated schedules are invalidated.
func (s *CourseService) AddCourses(ctx context.Context, sessionID string, req dto.AddCoursesRequest) (*models.SessionState, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid course search payload")
	}

	state := s.loadOrCreate(ctx, sessionID)
	periodID := req.AcademicPeriodID
	if periodID == "" {
		periodID = state.AcademicPeriod
	}

	start := time.Now()
	courses, err := s.catalog.SearchCourses(ctx, catalog.NewSearchRequest(periodID, req.Department, req.CourseID))
	s.metrics.ObserveCatalogRequest("search", time.Since(start))
	if err != nil {
		return nil, err
	}
	if len(courses) == 0 {
		return nil, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("no courses found for %s %s", req.Department, req.CourseID))
	}

	for _, course := range courses {
		state.AddCourse(course)
	}
	state.AcademicPeriod = periodID
	state.Schedules = nil
	state.CurrentIndex = 0

	if err := s.sessions.Save(ctx, sessionID, state); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to persist session")
	}
	s.logger.Info("courses added to basket",
		zap.String("session_id", sessionID), zap.Int("added", len(courses)), zap.Int("basket_size", len(state.Courses)))
	return state, nil
}

// RemoveCourse drops a course from the basket.
func (s *CourseService) RemoveCourse(ctx context.Context, sessionID, courseID string) (*models.SessionState, error) {
	state := s.loadOrCreate(ctx, sessionID)
	if !state.RemoveCourse(courseID) {
		return nil, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("course %s is not in the basket", courseID))
	}
	if err := s.sessions.Save(ctx, sessionID, state); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to persist session")
	}
	return state, nil
}

// Basket returns the session's current selection.
func (s *CourseService) Basket(ctx context.Context, sessionID string) (*models.SessionState, error) {
	return s.loadOrCreate(ctx, sessionID), nil
}

// SetPeriod switches the academic period, clearing the basket since course
// offerings differ between terms.
func (s *CourseService) SetPeriod(ctx context.Context, sessionID string, req dto.SetPeriodRequest) (*models.SessionState, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid period payload")
	}
	if _, ok := catalog.PeriodByID(req.AcademicPeriodID); !ok {
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unknown academic period %s", req.AcademicPeriodID))
	}

	state := s.loadOrCreate(ctx, sessionID)
	if state.AcademicPeriod != req.AcademicPeriodID {
		state.AcademicPeriod = req.AcademicPeriodID
		state.Courses = nil
		state.Schedules = nil
		state.CurrentIndex = 0
	}
	if err := s.sessions.Save(ctx, sessionID, state); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to persist session")
	}
	return state, nil
}

// loadOrCreate fetches session state, falling back to a fresh state on miss.
func (s *CourseService) loadOrCreate(ctx context.Context, sessionID string) *models.SessionState {
	state, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		if !errors.Is(err, appErrors.ErrCacheMiss) {
			s.logger.Warn("session load failed, starting fresh", zap.String("session_id", sessionID), zap.Error(err))
		}
		s.metrics.RecordSessionLookup(false)
		return &models.SessionState{AcademicPeriod: s.defaultPeriod}
	}
	s.metrics.RecordSessionLookup(true)
	if state.AcademicPeriod == "" {
		state.AcademicPeriod = s.defaultPeriod
	}
	return state
}
