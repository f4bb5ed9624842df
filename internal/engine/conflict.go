package engine

import (
	"go.uber.org/zap"

	"github.com/cyclonesb/schedule-builder/internal/models"
)

// conflicts reports whether two sections cannot coexist on a weekly grid.
//
// Sections without a concrete meeting pattern (Online/TBD/N/A sentinels)
// never conflict. Otherwise two sections conflict when they share a day and
// either their intervals overlap directly or the gap between them is shorter
// than the configured commute buffer.
func conflicts(a, b models.Section, bufferMinutes int, logger *zap.Logger) bool {
	if !a.Schedulable() || !b.Schedulable() {
		return false
	}
	if !shareDay(a, b) {
		return false
	}

	startA := minuteOfDay(a.TimeStart, logger)
	endA := minuteOfDay(a.TimeEnd, logger)
	startB := minuteOfDay(b.TimeStart, logger)
	endB := minuteOfDay(b.TimeEnd, logger)

	if startA < endB && startB < endA {
		return true
	}

	gap := startB - endA
	if startA > startB {
		gap = startA - endB
	}
	return gap < bufferMinutes
}

func shareDay(a, b models.Section) bool {
	daysB := b.Days()
	for _, day := range a.Days() {
		for _, other := range daysB {
			if day == other {
				return true
			}
		}
	}
	return false
}
