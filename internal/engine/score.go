package engine

import (
	"sort"

	"go.uber.org/zap"

	"github.com/cyclonesb/schedule-builder/internal/models"
)

// placed is a section flattened onto a single day with resolved minutes.
type placed struct {
	day   string
	start int
	end   int
}

// score rates a complete schedule on structural quality: comfortable gaps,
// balanced days, reasonable start hours and pairing completeness, plus the
// user's preference score when preferences are present.
func (s *searchState) score(schedule models.Schedule, prefs models.SchedulePreferences) int {
	sections := schedule.AllSections()
	grid := placements(sections, s.logger)

	total := 0
	total += gapQuality(grid)
	total += dayBalance(grid)
	total += reasonableHours(sections, s.logger)

	if validAssignment(s.courses, schedule.Selections) {
		total += 25
	} else {
		total -= 50
	}

	if !prefs.IsEmpty() {
		total += preferenceScore(grid, prefs)
	}
	return total
}

// placements expands each schedulable section onto its meeting days, sorted
// by (day, start) so gap scoring can walk consecutive same-day pairs.
func placements(sections []models.Section, logger *zap.Logger) []placed {
	var grid []placed
	for _, section := range sections {
		if !section.Schedulable() {
			continue
		}
		start := minuteOfDay(section.TimeStart, logger)
		end := minuteOfDay(section.TimeEnd, logger)
		for _, day := range section.Days() {
			grid = append(grid, placed{day: day, start: start, end: end})
		}
	}
	sort.Slice(grid, func(i, j int) bool {
		if grid[i].day != grid[j].day {
			return dayIndex(grid[i].day) < dayIndex(grid[j].day)
		}
		return grid[i].start < grid[j].start
	})
	return grid
}

// gapQuality rewards short walking gaps between back-to-back classes and
// penalizes dead time. Sub-buffer gaps should already be excluded by the
// conflict detector; scoring them harshly defends the ranking anyway.
func gapQuality(grid []placed) int {
	total := 0
	for i := 1; i < len(grid); i++ {
		if grid[i].day != grid[i-1].day {
			continue
		}
		gap := grid[i].start - grid[i-1].end
		switch {
		case gap < 10:
			total -= 20
		case gap <= 30:
			total += 15
		case gap <= 60:
			total += 10
		default:
			total -= gap / 30
		}
	}
	return total
}

func dayBalance(grid []placed) int {
	perDay := make(map[string]int)
	busiest := 0
	for _, entry := range grid {
		perDay[entry.day]++
		if perDay[entry.day] > busiest {
			busiest = perDay[entry.day]
		}
	}
	return 30 - busiest*5
}

// reasonableHours awards a small bonus per section that starts between 9:00
// and 15:00, once per section regardless of how many days it meets.
func reasonableHours(sections []models.Section, logger *zap.Logger) int {
	total := 0
	for _, section := range sections {
		if !section.Schedulable() {
			continue
		}
		start := minuteOfDay(section.TimeStart, logger)
		if start >= 9*60 && start <= 15*60 {
			total += 5
		}
	}
	return total
}

// preferenceScore applies the user's soft preferences over in-person
// placements only.
func preferenceScore(grid []placed, prefs models.SchedulePreferences) int {
	total := 0

	for _, entry := range grid {
		if prefs.DayPreferred(entry.day) {
			total += 15
		} else {
			total -= 5
		}
	}

	if prefs.TimePreference != "" {
		for _, entry := range grid {
			if timeBucket(entry.start) == prefs.TimePreference {
				total += 20
			} else {
				total -= 10
			}
		}
	}

	if prefs.GapPreference != "" && prefs.GapPreference != models.GapPreferenceNone {
		min, max := prefs.GapWindow()
		for i := 1; i < len(grid); i++ {
			if grid[i].day != grid[i-1].day {
				continue
			}
			gap := grid[i].start - grid[i-1].end
			if gap >= min && gap <= max {
				total += 15
			} else {
				total -= 5
			}
		}
	}

	switch prefs.ScheduleStyle {
	case models.StyleCompact, models.StyleSpread:
		daysUsed := make(map[string]struct{})
		perDay := make(map[string]int)
		maxPerDay := 0
		for _, entry := range grid {
			daysUsed[entry.day] = struct{}{}
			perDay[entry.day]++
			if perDay[entry.day] > maxPerDay {
				maxPerDay = perDay[entry.day]
			}
		}
		if prefs.ScheduleStyle == models.StyleCompact {
			total += (5-len(daysUsed))*10 + maxPerDay*5
		} else {
			total += len(daysUsed)*10 - maxPerDay*5
		}
	}
	return total
}

func timeBucket(startMinutes int) string {
	hour := startMinutes / 60
	switch {
	case hour >= 8 && hour < 12:
		return models.TimePreferenceMorning
	case hour >= 12 && hour < 17:
		return models.TimePreferenceAfternoon
	case hour >= 17 && hour < 21:
		return models.TimePreferenceEvening
	default:
		return ""
	}
}
