package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cyclonesb/schedule-builder/internal/dto"
	"github.com/cyclonesb/schedule-builder/internal/models"
	appErrors "github.com/cyclonesb/schedule-builder/pkg/errors"
)

type stubEngine struct {
	schedules    []models.Schedule
	lastMax      int
	lastUnique   bool
	lastPrefs    models.SchedulePreferences
	lastCourses  int
	invocations  int
}

func (s *stubEngine) Generate(courses []models.Course, maxSchedules int, prefs models.SchedulePreferences, uniqueOnly bool) []models.Schedule {
	s.invocations++
	s.lastCourses = len(courses)
	s.lastMax = maxSchedules
	s.lastPrefs = prefs
	s.lastUnique = uniqueOnly
	return s.schedules
}

func TestScheduleServiceGenerate(t *testing.T) {
	sessions := newStubSessions()
	sessions.states["sid"] = &models.SessionState{
		Courses:      []models.Course{sampleCourse("COM S 227")},
		CurrentIndex: 3,
	}
	engine := &stubEngine{schedules: []models.Schedule{{Score: 20}, {Score: 10}}}
	svc := NewScheduleService(engine, sessions, nil, nil, nil)

	resp, err := svc.Generate(context.Background(), "sid", dto.GenerateSchedulesRequest{
		MaxSchedules: 10,
		UniqueOnly:   true,
		Preferences:  dto.PreferencesPayload{TimePreference: "morning"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Total)
	assert.Equal(t, 10, engine.lastMax)
	assert.True(t, engine.lastUnique)
	assert.Equal(t, "morning", engine.lastPrefs.TimePreference)

	state := sessions.states["sid"]
	assert.Len(t, state.Schedules, 2)
	assert.Zero(t, state.CurrentIndex)
}

func TestScheduleServiceGenerateEmptyBasket(t *testing.T) {
	svc := NewScheduleService(&stubEngine{}, newStubSessions(), nil, nil, nil)

	_, err := svc.Generate(context.Background(), "sid", dto.GenerateSchedulesRequest{})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrEmptyBasket.Code, appErrors.FromError(err).Code)
}

func TestScheduleServiceGenerateValidation(t *testing.T) {
	svc := NewScheduleService(&stubEngine{}, newStubSessions(), nil, nil, nil)

	_, err := svc.Generate(context.Background(), "sid", dto.GenerateSchedulesRequest{
		Preferences: dto.PreferencesPayload{TimePreference: "midnight"},
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestScheduleServiceCurrent(t *testing.T) {
	sessions := newStubSessions()
	sessions.states["sid"] = &models.SessionState{
		Schedules:    []models.Schedule{{Score: 20}, {Score: 10}},
		CurrentIndex: 1,
	}
	svc := NewScheduleService(&stubEngine{}, sessions, nil, nil, nil)

	resp, err := svc.Current(context.Background(), "sid")
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Index)
	assert.Equal(t, 2, resp.Total)
	assert.Equal(t, 10, resp.Schedule.Score)
}

func TestScheduleServiceCurrentWithoutSchedules(t *testing.T) {
	svc := NewScheduleService(&stubEngine{}, newStubSessions(), nil, nil, nil)

	_, err := svc.Current(context.Background(), "sid")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestScheduleServiceAdvanceWraps(t *testing.T) {
	sessions := newStubSessions()
	sessions.states["sid"] = &models.SessionState{
		Schedules: []models.Schedule{{Score: 30}, {Score: 20}, {Score: 10}},
	}
	svc := NewScheduleService(&stubEngine{}, sessions, nil, nil, nil)

	resp, err := svc.Advance(context.Background(), "sid", -1)
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Index)
	assert.Equal(t, 10, resp.Schedule.Score)

	resp, err = svc.Advance(context.Background(), "sid", 1)
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Index)
}

func TestScheduleServiceAdvanceWithoutSchedules(t *testing.T) {
	svc := NewScheduleService(&stubEngine{}, newStubSessions(), nil, nil, nil)

	_, err := svc.Advance(context.Background(), "sid", 1)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}
