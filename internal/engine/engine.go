// Package engine enumerates, validates, scores and ranks weekly course
// timetables. It is synchronous and CPU-bound: callers hand it a frozen
// course catalog snapshot plus optional preferences and receive a ranked,
// bounded list of conflict-free schedules. Nothing here performs I/O, and no
// condition inside the engine is fatal; the worst outcome is an empty result
// list.
package engine

import (
	"sort"

	"go.uber.org/zap"

	"github.com/cyclonesb/schedule-builder/internal/models"
)

const (
	// DefaultMaxSchedules is the absolute ceiling on returned schedules;
	// caller requests are clamped to it.
	DefaultMaxSchedules = 100

	// DefaultBufferMinutes is the minimum commute time required between two
	// in-person sections on a shared day.
	DefaultBufferMinutes = 10

	// DefaultMaxCombinations bounds explored search nodes against
	// pathological inputs (many courses with many sections each).
	DefaultMaxCombinations = 250000
)

// Config tunes the generator. Zero values fall back to the defaults above so
// an empty Config is usable.
type Config struct {
	MaxSchedules    int
	BufferMinutes   int
	MaxCombinations int
}

// Generator is the engine's public entry point. It is stateless between
// calls and safe for concurrent use: every search operates purely on its own
// arguments.
type Generator struct {
	cfg    Config
	logger *zap.Logger
}

// New constructs a Generator. A nil logger degrades to a no-op sink.
func New(cfg Config, logger *zap.Logger) *Generator {
	if cfg.MaxSchedules <= 0 {
		cfg.MaxSchedules = DefaultMaxSchedules
	}
	if cfg.BufferMinutes <= 0 {
		cfg.BufferMinutes = DefaultBufferMinutes
	}
	if cfg.MaxCombinations <= 0 {
		cfg.MaxCombinations = DefaultMaxCombinations
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{cfg: cfg, logger: logger}
}

// Generate enumerates conflict-free schedules over the given courses and
// returns them ranked by score, truncated to maxSchedules (clamped to the
// configured ceiling). Courses without usable sections are filtered out
// before the search; an empty result is a valid outcome, never an error.
func (g *Generator) Generate(courses []models.Course, maxSchedules int, prefs models.SchedulePreferences, uniqueOnly bool) []models.Schedule {
	if maxSchedules <= 0 || maxSchedules > g.cfg.MaxSchedules {
		maxSchedules = g.cfg.MaxSchedules
	}

	candidates := g.prepare(courses)
	if len(candidates) == 0 {
		return []models.Schedule{}
	}

	state := &searchState{
		courses:       candidates,
		bufferMinutes: g.cfg.BufferMinutes,
		maxResults:    maxSchedules,
		maxExplored:   g.cfg.MaxCombinations,
		logger:        g.logger,
	}
	schedules := state.run()

	if uniqueOnly {
		schedules = dedupe(schedules)
	}

	for i := range schedules {
		schedules[i].Score = state.score(schedules[i], prefs)
	}
	// Stable: equal scores preserve generation order, keeping output
	// deterministic for identical inputs.
	sort.SliceStable(schedules, func(i, j int) bool {
		return schedules[i].Score > schedules[j].Score
	})

	if len(schedules) > maxSchedules {
		schedules = schedules[:maxSchedules]
	}
	return schedules
}

// prepare filters out courses that cannot contribute to a schedule and
// precomputes each survivor's combinations. Filtering happens before the
// recursion so the search never blocks on an empty course.
func (g *Generator) prepare(courses []models.Course) []courseCandidates {
	candidates := make([]courseCandidates, 0, len(courses))
	for _, course := range courses {
		if course.CourseID == "" || len(course.Sections) == 0 {
			g.logger.Warn("skipping course without usable sections",
				zap.String("course_id", course.CourseID))
			continue
		}
		combos := combinationsFor(course)
		if len(combos) == 0 {
			g.logger.Warn("skipping course with no valid combinations",
				zap.String("course_id", course.CourseID))
			continue
		}
		candidates = append(candidates, courseCandidates{course: course, combos: combos})
	}
	return candidates
}
