package service

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cyclonesb/schedule-builder/internal/dto"
	"github.com/cyclonesb/schedule-builder/internal/models"
	appErrors "github.com/cyclonesb/schedule-builder/pkg/errors"
	"github.com/cyclonesb/schedule-builder/pkg/export"
	"github.com/cyclonesb/schedule-builder/pkg/jobs"
	"github.com/cyclonesb/schedule-builder/pkg/storage"
)

// Export job states.
const (
	ExportStatusQueued     = "queued"
	ExportStatusProcessing = "processing"
	ExportStatusCompleted  = "completed"
	ExportStatusFailed     = "failed"
)

type jobDispatcher interface {
	Enqueue(job jobs.Job) error
}

type fileStorage interface {
	Save(filename string, data []byte) (string, error)
	Open(filename string) (*os.File, error)
	Delete(filename string) error
	CleanupOlderThan(ttl time.Duration) ([]string, error)
}

type csvRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

type pdfRenderer interface {
	Render(data export.Dataset, title string) ([]byte, error)
}

// ExportConfig tunes export behaviour.
type ExportConfig struct {
	APIPrefix string
	ResultTTL time.Duration
}

// ExportDownload aggregates resolved download data.
type ExportDownload struct {
	File      *os.File
	Filename  string
	Format    string
	ExpiresAt time.Time
}

type exportJob struct {
	ID          string
	Format      string
	Status      string
	RelPath     string
	Token       string
	DownloadURL string
	ExpiresAt   time.Time
	Error       string
	CreatedAt   time.Time

	schedule models.Schedule
	period   string
}

// ExportService renders the session's current schedule to CSV or PDF through
// a background worker queue and serves results via signed download tokens.
type ExportService struct {
	sessions  sessionStore
	queue     jobDispatcher
	storage   fileStorage
	csv       csvRenderer
	pdf       pdfRenderer
	signer    *storage.DownloadSigner
	validator *validator.Validate
	logger    *zap.Logger
	cfg       ExportConfig
	store     *exportJobStore
}

// NewExportService constructs an ExportService.
func NewExportService(sessions sessionStore, queue jobDispatcher, files fileStorage, signer *storage.DownloadSigner, validate *validator.Validate, logger *zap.Logger, cfg ExportConfig) *ExportService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.ResultTTL <= 0 {
		cfg.ResultTTL = 24 * time.Hour
	}
	return &ExportService{
		sessions:  sessions,
		queue:     queue,
		storage:   files,
		csv:       export.NewCSVExporter(),
		pdf:       export.NewPDFExporter(),
		signer:    signer,
		validator: validate,
		logger:    logger,
		cfg:       cfg,
		store:     newExportJobStore(cfg.ResultTTL),
	}
}

// SetQueue attaches the worker queue after construction. The queue's handler
// is this service's Process method, so the two cannot be built in one step.
func (s *ExportService) SetQueue(queue jobDispatcher) {
	s.queue = queue
}

// CreateExport snapshots the session's current schedule and queues rendering.
func (s *ExportService) CreateExport(ctx context.Context, sessionID string, req dto.CreateExportRequest) (*dto.ExportJobResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid export payload")
	}

	state, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "no schedules generated yet")
	}
	current, ok := state.CurrentSchedule()
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "no schedules generated yet")
	}

	job := exportJob{
		ID:        uuid.NewString(),
		Format:    req.Format,
		Status:    ExportStatusQueued,
		CreatedAt: time.Now().UTC(),
		schedule:  current,
		period:    state.AcademicPeriod,
	}
	s.store.Save(job)

	if err := s.queue.Enqueue(jobs.Job{ID: job.ID, Type: req.Format}); err != nil {
		job.Status = ExportStatusFailed
		job.Error = "failed to enqueue export"
		s.store.Save(job)
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to enqueue export job")
	}

	return s.toResponse(job), nil
}

// Process is the queue handler: it renders and stores a queued export.
func (s *ExportService) Process(ctx context.Context, queued jobs.Job) error {
	job, ok := s.store.Get(queued.ID)
	if !ok {
		s.logger.Warn("export job expired before processing", zap.String("job_id", queued.ID))
		return nil
	}
	job.Status = ExportStatusProcessing
	s.store.Save(job)

	if err := s.render(&job); err != nil {
		job.Error = err.Error()
		job.Status = ExportStatusFailed
		s.store.Save(job)
		return err
	}

	job.Status = ExportStatusCompleted
	job.Error = ""
	s.store.Save(job)
	s.logger.Info("export completed", zap.String("job_id", job.ID), zap.String("format", job.Format))
	return nil
}

func (s *ExportService) render(job *exportJob) error {
	dataset := scheduleDataset(job.schedule)

	var payload []byte
	var err error
	switch job.Format {
	case "csv":
		payload, err = s.csv.Render(dataset)
	case "pdf":
		payload, err = s.pdf.Render(dataset, exportTitle(job.period))
	default:
		err = fmt.Errorf("unsupported format %s", job.Format)
	}
	if err != nil {
		return err
	}

	filename := fmt.Sprintf("schedules/%s-%s.%s", time.Now().UTC().Format("20060102-150405"), job.ID[:8], job.Format)
	relPath, err := s.storage.Save(filename, payload)
	if err != nil {
		return err
	}

	token, expiresAt, err := s.signer.Sign(storage.DownloadClaims{
		JobID:  job.ID,
		Format: job.Format,
		Path:   relPath,
	})
	if err != nil {
		return err
	}

	prefix := strings.TrimRight(s.cfg.APIPrefix, "/")
	if prefix == "" {
		prefix = "/api/v1"
	}

	job.RelPath = relPath
	job.Token = token
	job.ExpiresAt = expiresAt
	job.DownloadURL = fmt.Sprintf("%s/exports/download/%s", prefix, token)
	return nil
}

// GetJob reports export job state.
func (s *ExportService) GetJob(ctx context.Context, jobID string) (*dto.ExportJobResponse, error) {
	job, ok := s.store.Get(jobID)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "export job not found")
	}
	return s.toResponse(job), nil
}

// ResolveDownload validates a token and opens the stored export file.
func (s *ExportService) ResolveDownload(ctx context.Context, token string) (*ExportDownload, error) {
	claims, err := s.signer.Verify(token)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "invalid or expired download token")
	}
	job, ok := s.store.Get(claims.JobID)
	if !ok || job.Status != ExportStatusCompleted {
		return nil, appErrors.ErrExportNotReady
	}

	file, err := s.storage.Open(claims.Path)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "export file no longer available")
	}
	parts := strings.Split(claims.Path, "/")
	return &ExportDownload{
		File:      file,
		Filename:  parts[len(parts)-1],
		Format:    claims.Format,
		ExpiresAt: claims.ExpiresAt,
	}, nil
}

// Cleanup removes expired export files and forgotten job records.
func (s *ExportService) Cleanup() {
	deleted, err := s.storage.CleanupOlderThan(s.cfg.ResultTTL)
	if err != nil {
		s.logger.Warn("export cleanup failed", zap.Error(err))
		return
	}
	if len(deleted) > 0 {
		s.logger.Info("expired exports removed", zap.Int("count", len(deleted)))
	}
	s.store.Prune()
}

func (s *ExportService) toResponse(job exportJob) *dto.ExportJobResponse {
	resp := &dto.ExportJobResponse{
		ID:        job.ID,
		Status:    job.Status,
		Format:    job.Format,
		Error:     job.Error,
		CreatedAt: job.CreatedAt,
	}
	if job.Status == ExportStatusCompleted {
		resp.DownloadURL = job.DownloadURL
		expires := job.ExpiresAt
		resp.ExpiresAt = &expires
	}
	return resp
}

// scheduleDataset flattens a schedule into export rows.
func scheduleDataset(schedule models.Schedule) export.Dataset {
	headers := []string{"Course", "Section", "Format", "Days", "Start", "End", "Instructor", "Location", "Credits"}
	var rows [][]string
	for _, section := range schedule.AllSections() {
		rows = append(rows, []string{
			section.CourseID,
			section.Number,
			section.InstructionalFormat,
			section.DaysOfTheWeek,
			section.TimeStart,
			section.TimeEnd,
			section.Instructor,
			section.Location,
			section.Credits,
		})
	}
	return export.Dataset{Headers: headers, Rows: rows}
}

func exportTitle(periodID string) string {
	if periodID == "" {
		return "Course Schedule"
	}
	return "Course Schedule " + strings.TrimPrefix(periodID, "ACADEMIC_PERIOD-")
}

type exportJobStore struct {
	ttl   time.Duration
	mu    sync.RWMutex
	items map[string]exportJob
}

func newExportJobStore(ttl time.Duration) *exportJobStore {
	return &exportJobStore{
		ttl:   ttl,
		items: make(map[string]exportJob),
	}
}

func (s *exportJobStore) Save(job exportJob) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[job.ID] = job
}

func (s *exportJobStore) Get(id string) (exportJob, bool) {
	s.mu.RLock()
	job, ok := s.items[id]
	s.mu.RUnlock()
	if !ok {
		return exportJob{}, false
	}
	if time.Since(job.CreatedAt) > s.ttl {
		s.Delete(id)
		return exportJob{}, false
	}
	return job, true
}

func (s *exportJobStore) Delete(id string) {
	s.mu.Lock()
	delete(s.items, id)
	s.mu.Unlock()
}

// Prune drops records past their TTL.
func (s *exportJobStore) Prune() {
	cutoff := time.Now().Add(-s.ttl)
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, job := range s.items {
		if job.CreatedAt.Before(cutoff) {
			delete(s.items, id)
		}
	}
}
