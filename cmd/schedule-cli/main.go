package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/cyclonesb/schedule-builder/internal/csvio"
	"github.com/cyclonesb/schedule-builder/internal/engine"
	"github.com/cyclonesb/schedule-builder/internal/models"
)

var (
	input      = flag.String("input", "catalog.csv", "catalog snapshot CSV, one row per section")
	output     = flag.String("output", "", "write ranked schedules to this CSV file (default: stdout summary only)")
	delimiter  = flag.String("delimiter", ",", "CSV field delimiter")
	maxResults = flag.Int("max", 10, "maximum number of schedules to produce")
	buffer     = flag.Int("buffer", 0, "minimum minutes between back-to-back sections (default 10)")
	uniqueOnly = flag.Bool("unique", true, "collapse schedules that differ only cosmetically")
	days       = flag.String("days", "", "preferred days, comma separated (Mon,Tue,...)")
	timeOfDay  = flag.String("time", "", "preferred time of day: morning, afternoon or evening")
	gap        = flag.String("gap", "", "preferred gap length: none, minimal, short, medium or long")
	style      = flag.String("style", "", "schedule style: compact or spread")
)

func main() {
	flag.Parse()

	var delim rune
	if *delimiter != "" {
		delim = rune((*delimiter)[0])
	}

	courses, err := csvio.LoadCourses(*input, delim)
	if err != nil {
		log.Fatalf("failed to load catalog snapshot: %v", err)
	}
	if len(courses) == 0 {
		log.Fatal("catalog snapshot contains no courses")
	}

	prefs := models.SchedulePreferences{
		TimePreference: *timeOfDay,
		GapPreference:  *gap,
		ScheduleStyle:  *style,
	}
	if *days != "" {
		prefs.PreferredDays = strings.Split(*days, ",")
	}

	generator := engine.New(engine.Config{BufferMinutes: *buffer}, nil)

	start := time.Now()
	schedules := generator.Generate(courses, *maxResults, prefs, *uniqueOnly)
	elapsed := time.Since(start)

	fmt.Printf("%d course(s), %d schedule(s) in %s\n\n", len(courses), len(schedules), elapsed.Round(time.Millisecond))

	if len(schedules) == 0 {
		fmt.Println("No conflict-free combination exists for these courses.")
		os.Exit(1)
	}

	for i, schedule := range schedules {
		fmt.Printf("#%d (score %d)\n", i+1, schedule.Score)
		for _, selection := range schedule.Selections {
			for _, section := range selection.Sections {
				fmt.Printf("  %-12s sec %-4s %-12s %s  %s-%s  %s\n",
					selection.CourseID, section.Number, section.InstructionalFormat,
					section.DaysOfTheWeek, section.TimeStart, section.TimeEnd, section.Instructor)
			}
		}
		fmt.Println()
	}

	if *output != "" {
		if err := csvio.WriteSchedules(*output, schedules); err != nil {
			log.Fatalf("failed to write schedules: %v", err)
		}
		fmt.Printf("wrote %s\n", *output)
	}
}
