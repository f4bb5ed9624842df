package service

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/cyclonesb/schedule-builder/internal/dto"
	"github.com/cyclonesb/schedule-builder/internal/models"
	appErrors "github.com/cyclonesb/schedule-builder/pkg/errors"
)

type scheduleGenerator interface {
	Generate(courses []models.Course, maxSchedules int, prefs models.SchedulePreferences, uniqueOnly bool) []models.Schedule
}

// ScheduleService runs the generator over the session basket and manages
// navigation through the results.
type ScheduleService struct {
	engine    scheduleGenerator
	sessions  sessionStore
	metrics   *MetricsService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewScheduleService wires generation dependencies.
func NewScheduleService(engine scheduleGenerator, sessions sessionStore, metrics *MetricsService, validate *validator.Validate, logger *zap.Logger) *ScheduleService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScheduleService{
		engine:    engine,
		sessions:  sessions,
		metrics:   metrics,
		validator: validate,
		logger:    logger,
	}
}

// Generate produces ranked schedules for the session's basket and stores
// them as the session's working set.
func (s *ScheduleService) Generate(ctx context.Context, sessionID string, req dto.GenerateSchedulesRequest) (*dto.GenerateSchedulesResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid generation payload")
	}

	state, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(state.Courses) == 0 {
		return nil, appErrors.ErrEmptyBasket
	}

	start := time.Now()
	schedules := s.engine.Generate(state.Courses, req.MaxSchedules, req.Preferences.Model(), req.UniqueOnly)
	elapsed := time.Since(start)
	s.metrics.ObserveGeneration(elapsed, len(schedules))
	s.logger.Info("schedules generated",
		zap.String("session_id", sessionID),
		zap.Int("courses", len(state.Courses)),
		zap.Int("schedules", len(schedules)),
		zap.Duration("elapsed", elapsed))

	state.Schedules = schedules
	state.CurrentIndex = 0
	if err := s.sessions.Save(ctx, sessionID, state); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to persist session")
	}

	return &dto.GenerateSchedulesResponse{Total: len(schedules), Schedules: schedules}, nil
}

// Current returns the schedule the session is positioned on.
func (s *ScheduleService) Current(ctx context.Context, sessionID string) (*dto.CurrentScheduleResponse, error) {
	state, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	current, ok := state.CurrentSchedule()
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "no schedules generated yet")
	}
	return &dto.CurrentScheduleResponse{Index: state.CurrentIndex, Total: len(state.Schedules), Schedule: current}, nil
}

// Advance moves the schedule pointer forward or backward, wrapping at both
// ends, and returns the newly selected schedule.
func (s *ScheduleService) Advance(ctx context.Context, sessionID string, delta int) (*dto.CurrentScheduleResponse, error) {
	state, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(state.Schedules) == 0 {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "no schedules generated yet")
	}

	state.Advance(delta)
	if err := s.sessions.Save(ctx, sessionID, state); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to persist session")
	}
	current, _ := state.CurrentSchedule()
	return &dto.CurrentScheduleResponse{Index: state.CurrentIndex, Total: len(state.Schedules), Schedule: current}, nil
}

func (s *ScheduleService) load(ctx context.Context, sessionID string) (*models.SessionState, error) {
	state, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, appErrors.ErrCacheMiss) {
			s.metrics.RecordSessionLookup(false)
			return &models.SessionState{}, nil
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load session")
	}
	s.metrics.RecordSessionLookup(true)
	return state, nil
}
