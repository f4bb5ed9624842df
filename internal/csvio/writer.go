package csvio

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"

	"github.com/cyclonesb/schedule-builder/internal/models"
)

// ScheduleRow is one exported CSV row: a single section within a ranked
// schedule. Rank and score repeat across a schedule's sections.
type ScheduleRow struct {
	Rank       int    `csv:"rank"`
	Score      int    `csv:"score"`
	Course     string `csv:"course"`
	Section    string `csv:"section"`
	Format     string `csv:"format"`
	Days       string `csv:"days"`
	Start      string `csv:"start"`
	End        string `csv:"end"`
	Instructor string `csv:"instructor"`
	Location   string `csv:"location"`
}

// WriteSchedules writes the ranked schedules to a CSV file, best first.
func WriteSchedules(path string, schedules []models.Schedule) error {
	rows := scheduleRows(schedules)

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer out.Close()

	if err := gocsv.MarshalFile(&rows, out); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// SchedulesString renders the ranked schedules as CSV text.
func SchedulesString(schedules []models.Schedule) (string, error) {
	rows := scheduleRows(schedules)
	return gocsv.MarshalString(&rows)
}

func scheduleRows(schedules []models.Schedule) []*ScheduleRow {
	rows := []*ScheduleRow{}
	for i, schedule := range schedules {
		for _, selection := range schedule.Selections {
			for _, section := range selection.Sections {
				rows = append(rows, &ScheduleRow{
					Rank:       i + 1,
					Score:      schedule.Score,
					Course:     selection.CourseID,
					Section:    section.Number,
					Format:     section.InstructionalFormat,
					Days:       section.DaysOfTheWeek,
					Start:      section.TimeStart,
					End:        section.TimeEnd,
					Instructor: section.Instructor,
					Location:   section.Location,
				})
			}
		}
	}
	return rows
}
