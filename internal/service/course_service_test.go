package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cyclonesb/schedule-builder/internal/catalog"
	"github.com/cyclonesb/schedule-builder/internal/dto"
	"github.com/cyclonesb/schedule-builder/internal/models"
	appErrors "github.com/cyclonesb/schedule-builder/pkg/errors"
)

type stubSessions struct {
	states  map[string]*models.SessionState
	getErr  error
	saveErr error
	saved   int
}

func newStubSessions() *stubSessions {
	return &stubSessions{states: make(map[string]*models.SessionState)}
}

func (s *stubSessions) Get(ctx context.Context, sessionID string) (*models.SessionState, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	if state, ok := s.states[sessionID]; ok {
		return state, nil
	}
	return nil, appErrors.ErrCacheMiss
}

func (s *stubSessions) Save(ctx context.Context, sessionID string, state *models.SessionState) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saved++
	s.states[sessionID] = state
	return nil
}

func (s *stubSessions) Delete(ctx context.Context, sessionID string) error {
	delete(s.states, sessionID)
	return nil
}

type stubCatalog struct {
	departments []string
	courses     []models.Course
	err         error
	lastSearch  catalog.SearchRequest
	lastPeriod  string
}

func (s *stubCatalog) Departments(ctx context.Context, periodID string) ([]string, error) {
	s.lastPeriod = periodID
	return s.departments, s.err
}

func (s *stubCatalog) SearchCourses(ctx context.Context, search catalog.SearchRequest) ([]models.Course, error) {
	s.lastSearch = search
	return s.courses, s.err
}

func sampleCourse(id string) models.Course {
	return models.Course{
		CourseID: id,
		Sections: []models.Section{{
			CourseID:            id,
			Number:              "1",
			InstructionalFormat: "Lecture",
			DaysOfTheWeek:       "Mon,Wed",
			TimeStart:           "9:00 AM",
			TimeEnd:             "9:50 AM",
			DeliveryMode:        models.DeliveryInPerson,
		}},
	}
}

func TestCourseServiceAddCourses(t *testing.T) {
	sessions := newStubSessions()
	cat := &stubCatalog{courses: []models.Course{sampleCourse("COM S 227")}}
	svc := NewCourseService(cat, sessions, nil, nil, nil, "ACADEMIC_PERIOD-2025Fall")

	state, err := svc.AddCourses(context.Background(), "sid", dto.AddCoursesRequest{Department: "COM S", CourseID: "227"})
	require.NoError(t, err)
	require.Len(t, state.Courses, 1)
	assert.Equal(t, "ACADEMIC_PERIOD-2025Fall", cat.lastSearch.AcademicPeriodID)
	assert.Equal(t, "COM S", cat.lastSearch.Department)
	assert.Equal(t, 1, sessions.saved)
}

func TestCourseServiceAddCoursesInvalidatesSchedules(t *testing.T) {
	sessions := newStubSessions()
	sessions.states["sid"] = &models.SessionState{
		AcademicPeriod: "ACADEMIC_PERIOD-2025Fall",
		Courses:        []models.Course{sampleCourse("MATH 165")},
		Schedules:      []models.Schedule{{Score: 10}},
		CurrentIndex:   1,
	}
	cat := &stubCatalog{courses: []models.Course{sampleCourse("COM S 227")}}
	svc := NewCourseService(cat, sessions, nil, nil, nil, "ACADEMIC_PERIOD-2025Fall")

	state, err := svc.AddCourses(context.Background(), "sid", dto.AddCoursesRequest{Department: "COM S"})
	require.NoError(t, err)
	assert.Len(t, state.Courses, 2)
	assert.Empty(t, state.Schedules)
	assert.Zero(t, state.CurrentIndex)
}

func TestCourseServiceAddCoursesValidation(t *testing.T) {
	svc := NewCourseService(&stubCatalog{}, newStubSessions(), nil, nil, nil, "")

	_, err := svc.AddCourses(context.Background(), "sid", dto.AddCoursesRequest{})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestCourseServiceAddCoursesNoMatches(t *testing.T) {
	svc := NewCourseService(&stubCatalog{}, newStubSessions(), nil, nil, nil, "")

	_, err := svc.AddCourses(context.Background(), "sid", dto.AddCoursesRequest{Department: "COM S", CourseID: "999"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestCourseServiceRemoveCourse(t *testing.T) {
	sessions := newStubSessions()
	sessions.states["sid"] = &models.SessionState{
		Courses:   []models.Course{sampleCourse("COM S 227")},
		Schedules: []models.Schedule{{Score: 1}},
	}
	svc := NewCourseService(&stubCatalog{}, sessions, nil, nil, nil, "")

	state, err := svc.RemoveCourse(context.Background(), "sid", "COM S 227")
	require.NoError(t, err)
	assert.Empty(t, state.Courses)
	assert.Empty(t, state.Schedules)

	_, err = svc.RemoveCourse(context.Background(), "sid", "COM S 227")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestCourseServiceSetPeriodClearsBasket(t *testing.T) {
	sessions := newStubSessions()
	sessions.states["sid"] = &models.SessionState{
		AcademicPeriod: "ACADEMIC_PERIOD-2025Fall",
		Courses:        []models.Course{sampleCourse("COM S 227")},
	}
	svc := NewCourseService(&stubCatalog{}, sessions, nil, nil, nil, "")

	state, err := svc.SetPeriod(context.Background(), "sid", dto.SetPeriodRequest{AcademicPeriodID: "ACADEMIC_PERIOD-2025Spring"})
	require.NoError(t, err)
	assert.Equal(t, "ACADEMIC_PERIOD-2025Spring", state.AcademicPeriod)
	assert.Empty(t, state.Courses)
}

func TestCourseServiceSetPeriodUnknown(t *testing.T) {
	svc := NewCourseService(&stubCatalog{}, newStubSessions(), nil, nil, nil, "")

	_, err := svc.SetPeriod(context.Background(), "sid", dto.SetPeriodRequest{AcademicPeriodID: "ACADEMIC_PERIOD-1999Fall"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestCourseServiceDepartmentsDefaultsPeriod(t *testing.T) {
	cat := &stubCatalog{departments: []string{"COM S", "MATH"}}
	svc := NewCourseService(cat, newStubSessions(), nil, nil, nil, "ACADEMIC_PERIOD-2025Fall")

	departments, err := svc.Departments(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, []string{"COM S", "MATH"}, departments)
	assert.Equal(t, "ACADEMIC_PERIOD-2025Fall", cat.lastPeriod)
}

func TestCourseServicePeriods(t *testing.T) {
	svc := NewCourseService(&stubCatalog{}, newStubSessions(), nil, nil, nil, "")
	periods := svc.Periods()
	require.NotEmpty(t, periods)
	assert.Equal(t, "ACADEMIC_PERIOD-2025Fall", periods[0].ID)
}
