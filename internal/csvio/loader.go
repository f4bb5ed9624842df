// Package csvio loads catalog snapshots from CSV and writes ranked schedules
// back out, for offline use without the catalog API.
package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/gocarina/gocsv"

	"github.com/cyclonesb/schedule-builder/internal/models"
)

// SectionRecord is one CSV row of a catalog snapshot. One row per section;
// course columns repeat across a course's sections.
type SectionRecord struct {
	CourseID            string `csv:"course_id"`
	CourseName          string `csv:"course_name"`
	SectionNumber       string `csv:"section"`
	InstructionalFormat string `csv:"format"`
	DaysOfTheWeek       string `csv:"days"`
	TimeStart           string `csv:"start"`
	TimeEnd             string `csv:"end"`
	Instructor          string `csv:"instructor"`
	Location            string `csv:"location"`
	DeliveryMode        string `csv:"delivery_mode"`
	OpenSeats           int    `csv:"open_seats"`
	Credits             string `csv:"credits"`
}

// LoadCourses reads a snapshot file and groups its rows into courses,
// preserving first-seen course order. Rows without a course ID are skipped.
// A zero delimiter falls back to comma.
func LoadCourses(path string, delim rune) ([]models.Course, error) {
	if delim == 0 {
		delim = ','
	}
	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		r := csv.NewReader(in)
		r.Comma = delim
		return r
	})

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open snapshot: %w", err)
	}
	defer file.Close()

	records := []*SectionRecord{}
	if err := gocsv.UnmarshalFile(file, &records); err != nil {
		return nil, fmt.Errorf("parse snapshot: %w", err)
	}

	index := map[string]int{}
	var courses []models.Course
	for _, rec := range records {
		if rec.CourseID == "" {
			continue
		}
		pos, ok := index[rec.CourseID]
		if !ok {
			pos = len(courses)
			index[rec.CourseID] = pos
			courses = append(courses, models.Course{
				CourseID:   rec.CourseID,
				CourseName: rec.CourseName,
			})
		}
		courses[pos].Sections = append(courses[pos].Sections, sectionFromRecord(rec))
	}
	return courses, nil
}

func sectionFromRecord(rec *SectionRecord) models.Section {
	section := models.Section{
		CourseID:            rec.CourseID,
		Number:              rec.SectionNumber,
		InstructionalFormat: rec.InstructionalFormat,
		DaysOfTheWeek:       rec.DaysOfTheWeek,
		TimeStart:           rec.TimeStart,
		TimeEnd:             rec.TimeEnd,
		Instructor:          rec.Instructor,
		Location:            rec.Location,
		DeliveryMode:        rec.DeliveryMode,
		OpenSeats:           rec.OpenSeats,
		Credits:             rec.Credits,
	}
	if section.InstructionalFormat == "" {
		section.InstructionalFormat = "Lecture"
	}
	if section.DaysOfTheWeek == "" {
		section.DaysOfTheWeek = models.SentinelTBD
	}
	if section.TimeStart == "" {
		section.TimeStart = models.SentinelTBD
	}
	if section.TimeEnd == "" {
		section.TimeEnd = models.SentinelTBD
	}
	if section.Instructor == "" {
		section.Instructor = models.SentinelNA
	}
	if section.DeliveryMode == "" {
		section.DeliveryMode = models.DeliveryInPerson
	}
	return section
}
