package engine

import (
	"sort"
	"strings"

	"github.com/cyclonesb/schedule-builder/internal/models"
)

// dedupe keeps the first schedule seen per signature, in generation order.
// Ranking happens after dedup, so "first" means first generated, not best
// scored.
func dedupe(schedules []models.Schedule) []models.Schedule {
	seen := make(map[string]struct{}, len(schedules))
	unique := make([]models.Schedule, 0, len(schedules))
	for _, schedule := range schedules {
		sig := signature(schedule)
		if _, dup := seen[sig]; dup {
			continue
		}
		seen[sig] = struct{}{}
		unique = append(unique, schedule)
	}
	return unique
}

// signature canonicalizes a schedule down to what a student would see on a
// calendar grid: per-course day/time/format tuples. Instructor, room and
// section number are deliberately ignored so cosmetic variants collapse.
func signature(schedule models.Schedule) string {
	selections := make([]models.CourseSelection, len(schedule.Selections))
	copy(selections, schedule.Selections)
	sort.Slice(selections, func(i, j int) bool {
		return selections[i].CourseID < selections[j].CourseID
	})

	var b strings.Builder
	for _, selection := range selections {
		sections := make([]models.Section, len(selection.Sections))
		copy(sections, selection.Sections)
		sort.Slice(sections, func(i, j int) bool {
			if sections[i].DaysOfTheWeek != sections[j].DaysOfTheWeek {
				return sections[i].DaysOfTheWeek < sections[j].DaysOfTheWeek
			}
			if sections[i].TimeStart != sections[j].TimeStart {
				return sections[i].TimeStart < sections[j].TimeStart
			}
			return sections[i].TimeEnd < sections[j].TimeEnd
		})

		b.WriteString(selection.CourseID)
		b.WriteByte(':')
		for _, section := range sections {
			b.WriteString(section.InstructionalFormat)
			b.WriteByte('-')
			b.WriteString(section.DaysOfTheWeek)
			b.WriteByte('-')
			b.WriteString(section.TimeStart)
			b.WriteByte('-')
			b.WriteString(section.TimeEnd)
			b.WriteByte(';')
		}
		b.WriteByte('|')
	}
	return b.String()
}
