package engine

import (
	"go.uber.org/zap"

	"github.com/cyclonesb/schedule-builder/internal/models"
)

// courseCandidates carries a course together with its precomputed
// combinations, in input order.
type courseCandidates struct {
	course models.Course
	combos []combination
}

// searchState threads the bounded backtracking search. Assignments are copied
// per branch so no branch observes another's mutations.
type searchState struct {
	courses       []courseCandidates
	bufferMinutes int
	maxResults    int
	maxExplored   int
	explored      int
	results       []models.Schedule
	logger        *zap.Logger
}

// run assembles one combination per course such that the running set of
// sections stays pairwise conflict-free. Course order is input order and
// combinations are tried in generation order, so output is deterministic.
func (s *searchState) run() []models.Schedule {
	s.assign(0, nil)
	return s.results
}

func (s *searchState) assign(idx int, chosen []models.CourseSelection) {
	if len(s.results) >= s.maxResults {
		return
	}
	if s.maxExplored > 0 && s.explored >= s.maxExplored {
		return
	}

	if idx == len(s.courses) {
		if !validAssignment(s.courses, chosen) {
			return
		}
		schedule := models.Schedule{Selections: make([]models.CourseSelection, len(chosen))}
		copy(schedule.Selections, chosen)
		s.results = append(s.results, schedule)
		return
	}

	candidate := s.courses[idx]
	for _, combo := range candidate.combos {
		if len(s.results) >= s.maxResults {
			return
		}
		s.explored++
		if s.maxExplored > 0 && s.explored > s.maxExplored {
			s.logger.Warn("combination cap reached, returning partial results",
				zap.Int("explored", s.explored),
				zap.Int("results", len(s.results)))
			return
		}
		if s.comboConflicts(combo, chosen) {
			continue
		}
		next := make([]models.CourseSelection, 0, len(chosen)+1)
		next = append(next, chosen...)
		next = append(next, models.CourseSelection{CourseID: candidate.course.CourseID, Sections: combo})
		s.assign(idx+1, next)
	}
}

// comboConflicts checks the combination against every already-placed section
// and against itself: a primary+secondary pair can collide on its own, and
// the no-conflict guarantee covers every section pair in a schedule.
func (s *searchState) comboConflicts(combo combination, chosen []models.CourseSelection) bool {
	for i := 0; i < len(combo); i++ {
		for j := i + 1; j < len(combo); j++ {
			if conflicts(combo[i], combo[j], s.bufferMinutes, s.logger) {
				return true
			}
		}
	}
	for _, selection := range chosen {
		for _, placed := range selection.Sections {
			for _, section := range combo {
				if conflicts(placed, section, s.bufferMinutes, s.logger) {
					return true
				}
			}
		}
	}
	return false
}

// validAssignment re-checks the pairing requirement on a complete assignment:
// any course whose section set offers both roles must have chosen exactly one
// of each. The combination generator already guarantees this; the validator
// is the safety net before a schedule is surfaced.
func validAssignment(courses []courseCandidates, chosen []models.CourseSelection) bool {
	selections := make(map[string]models.CourseSelection, len(chosen))
	for _, selection := range chosen {
		selections[selection.CourseID] = selection
	}

	for _, candidate := range courses {
		var hasPrimary, hasSecondary bool
		for _, section := range candidate.course.Sections {
			if ClassifyRole(section) == RolePrimary {
				hasPrimary = true
			} else {
				hasSecondary = true
			}
		}
		if !hasPrimary || !hasSecondary {
			continue
		}

		selection, ok := selections[candidate.course.CourseID]
		if !ok {
			return false
		}
		var chosePrimary, choseSecondary int
		for _, section := range selection.Sections {
			if ClassifyRole(section) == RolePrimary {
				chosePrimary++
			} else {
				choseSecondary++
			}
		}
		if chosePrimary != 1 || choseSecondary != 1 {
			return false
		}
	}
	return true
}
