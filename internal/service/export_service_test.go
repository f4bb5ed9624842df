package service

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cyclonesb/schedule-builder/internal/dto"
	"github.com/cyclonesb/schedule-builder/internal/models"
	appErrors "github.com/cyclonesb/schedule-builder/pkg/errors"
	"github.com/cyclonesb/schedule-builder/pkg/jobs"
	"github.com/cyclonesb/schedule-builder/pkg/storage"
)

type stubQueue struct {
	enqueued []jobs.Job
	err      error
}

func (q *stubQueue) Enqueue(job jobs.Job) error {
	if q.err != nil {
		return q.err
	}
	q.enqueued = append(q.enqueued, job)
	return nil
}

func newExportFixture(t *testing.T) (*ExportService, *stubSessions, *stubQueue) {
	t.Helper()
	files, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	signer := storage.NewDownloadSigner("test-secret", time.Hour)
	sessions := newStubSessions()
	queue := &stubQueue{}
	svc := NewExportService(sessions, queue, files, signer, nil, nil, ExportConfig{APIPrefix: "/api/v1"})
	return svc, sessions, queue
}

func sessionWithSchedule() *models.SessionState {
	course := sampleCourse("COM S 227")
	return &models.SessionState{
		AcademicPeriod: "ACADEMIC_PERIOD-2025Fall",
		Courses:        []models.Course{course},
		Schedules: []models.Schedule{{
			Selections: []models.CourseSelection{{CourseID: course.CourseID, Sections: course.Sections}},
			Score:      42,
		}},
	}
}

func TestExportServiceLifecycle(t *testing.T) {
	svc, sessions, queue := newExportFixture(t)
	sessions.states["sid"] = sessionWithSchedule()

	resp, err := svc.CreateExport(context.Background(), "sid", dto.CreateExportRequest{Format: "csv"})
	require.NoError(t, err)
	assert.Equal(t, ExportStatusQueued, resp.Status)
	assert.Empty(t, resp.DownloadURL)
	require.Len(t, queue.enqueued, 1)

	require.NoError(t, svc.Process(context.Background(), queue.enqueued[0]))

	status, err := svc.GetJob(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.Equal(t, ExportStatusCompleted, status.Status)
	assert.Contains(t, status.DownloadURL, "/api/v1/exports/download/")
	require.NotNil(t, status.ExpiresAt)

	token := strings.TrimPrefix(status.DownloadURL, "/api/v1/exports/download/")
	download, err := svc.ResolveDownload(context.Background(), token)
	require.NoError(t, err)
	defer download.File.Close()

	content, err := io.ReadAll(download.File)
	require.NoError(t, err)
	assert.Contains(t, string(content), "COM S 227")
	assert.Contains(t, string(content), "9:00 AM")
}

func TestExportServicePDF(t *testing.T) {
	svc, sessions, queue := newExportFixture(t)
	sessions.states["sid"] = sessionWithSchedule()

	resp, err := svc.CreateExport(context.Background(), "sid", dto.CreateExportRequest{Format: "pdf"})
	require.NoError(t, err)
	require.NoError(t, svc.Process(context.Background(), queue.enqueued[0]))

	status, err := svc.GetJob(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.Equal(t, ExportStatusCompleted, status.Status)
}

func TestExportServiceRequiresSchedule(t *testing.T) {
	svc, sessions, _ := newExportFixture(t)
	sessions.states["sid"] = &models.SessionState{Courses: []models.Course{sampleCourse("COM S 227")}}

	_, err := svc.CreateExport(context.Background(), "sid", dto.CreateExportRequest{Format: "csv"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestExportServiceValidatesFormat(t *testing.T) {
	svc, sessions, _ := newExportFixture(t)
	sessions.states["sid"] = sessionWithSchedule()

	_, err := svc.CreateExport(context.Background(), "sid", dto.CreateExportRequest{Format: "xlsx"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestExportServiceUnknownJob(t *testing.T) {
	svc, _, _ := newExportFixture(t)

	_, err := svc.GetJob(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestExportServiceRejectsBadToken(t *testing.T) {
	svc, _, _ := newExportFixture(t)

	_, err := svc.ResolveDownload(context.Background(), "not-a-token")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}
