package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/cyclonesb/schedule-builder/internal/models"
)

func TestGapQuality(t *testing.T) {
	tests := []struct {
		name string
		grid []placed
		want int
	}{
		{
			name: "short gap rewarded",
			grid: []placed{{day: "Mon", start: 540, end: 590}, {day: "Mon", start: 610, end: 660}},
			want: 15,
		},
		{
			name: "moderate gap rewarded less",
			grid: []placed{{day: "Mon", start: 540, end: 590}, {day: "Mon", start: 635, end: 685}},
			want: 10,
		},
		{
			name: "long gap penalized proportionally",
			grid: []placed{{day: "Mon", start: 540, end: 590}, {day: "Mon", start: 710, end: 760}},
			want: -4,
		},
		{
			name: "sub-buffer gap penalized hard",
			grid: []placed{{day: "Mon", start: 540, end: 590}, {day: "Mon", start: 595, end: 645}},
			want: -20,
		},
		{
			name: "different days ignored",
			grid: []placed{{day: "Mon", start: 540, end: 590}, {day: "Tue", start: 595, end: 645}},
			want: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, gapQuality(tt.grid))
		})
	}
}

func TestDayBalance(t *testing.T) {
	spread := []placed{
		{day: "Mon", start: 540, end: 590},
		{day: "Wed", start: 540, end: 590},
		{day: "Fri", start: 540, end: 590},
	}
	stacked := []placed{
		{day: "Mon", start: 480, end: 530},
		{day: "Mon", start: 540, end: 590},
		{day: "Mon", start: 600, end: 650},
	}
	assert.Equal(t, 25, dayBalance(spread))
	assert.Equal(t, 15, dayBalance(stacked))
	assert.Equal(t, 30, dayBalance(nil))
}

func TestReasonableHoursCountsPerSectionNotPerDay(t *testing.T) {
	sections := []models.Section{
		lectureAt("X 101", "1", "Mon,Wed,Fri", "9:00 AM", "9:50 AM", "Stone"),
		lectureAt("X 101", "2", "Tue", "7:30 AM", "8:20 AM", "Stone"),
		lectureAt("X 101", "3", "Tue", "4:10 PM", "5:00 PM", "Stone"),
	}
	assert.Equal(t, 5, reasonableHours(sections, zap.NewNop()))
}

func TestReasonableHoursSkipsSentinelSections(t *testing.T) {
	sections := []models.Section{
		{
			CourseID:            "ON 300",
			InstructionalFormat: "Lecture",
			DaysOfTheWeek:       models.SentinelOnline,
			TimeStart:           models.SentinelOnline,
			TimeEnd:             models.SentinelOnline,
		},
	}
	assert.Equal(t, 0, reasonableHours(sections, zap.NewNop()))
}

func TestPlacementsExpandsAndSortsByDayThenStart(t *testing.T) {
	sections := []models.Section{
		lectureAt("X 101", "1", "Wed,Mon", "1:10 PM", "2:00 PM", "Stone"),
		lectureAt("Y 201", "1", "Mon", "9:00 AM", "9:50 AM", "Ward"),
	}
	grid := placements(sections, zap.NewNop())

	assert.Equal(t, []placed{
		{day: "Mon", start: 540, end: 590},
		{day: "Mon", start: 790, end: 840},
		{day: "Wed", start: 790, end: 840},
	}, grid)
}

func TestPreferenceScoreDays(t *testing.T) {
	grid := []placed{
		{day: "Mon", start: 540, end: 590},
		{day: "Fri", start: 540, end: 590},
	}
	prefs := models.SchedulePreferences{PreferredDays: []string{"Mon", "Wed"}}
	assert.Equal(t, 10, preferenceScore(grid, prefs))
}

func TestPreferenceScoreTimeBucket(t *testing.T) {
	grid := []placed{
		{day: "Mon", start: 540, end: 590},
		{day: "Mon", start: 800, end: 850},
	}
	prefs := models.SchedulePreferences{TimePreference: models.TimePreferenceMorning}
	// Both placements land on a preferred-free day (+15 each); one morning
	// start (+20) and one afternoon start (-10).
	assert.Equal(t, 40, preferenceScore(grid, prefs))
}

func TestPreferenceScoreGapWindow(t *testing.T) {
	grid := []placed{
		{day: "Mon", start: 540, end: 590},
		{day: "Mon", start: 610, end: 660},
	}
	inWindow := models.SchedulePreferences{GapPreference: models.GapPreferenceShort}
	outOfWindow := models.SchedulePreferences{GapPreference: models.GapPreferenceLong}
	assert.Equal(t, 30+15, preferenceScore(grid, inWindow))
	assert.Equal(t, 30-5, preferenceScore(grid, outOfWindow))
}

func TestPreferenceScoreScheduleStyle(t *testing.T) {
	grid := []placed{
		{day: "Mon", start: 480, end: 530},
		{day: "Mon", start: 540, end: 590},
		{day: "Tue", start: 540, end: 590},
	}
	compact := models.SchedulePreferences{ScheduleStyle: models.StyleCompact}
	spread := models.SchedulePreferences{ScheduleStyle: models.StyleSpread}
	// Base day bonus is +15 per placement (no preferred days set).
	assert.Equal(t, 45+(5-2)*10+2*5, preferenceScore(grid, compact))
	assert.Equal(t, 45+2*10-2*5, preferenceScore(grid, spread))
}

func TestTimeBucket(t *testing.T) {
	assert.Equal(t, models.TimePreferenceMorning, timeBucket(8*60))
	assert.Equal(t, models.TimePreferenceMorning, timeBucket(11*60+59))
	assert.Equal(t, models.TimePreferenceAfternoon, timeBucket(12*60))
	assert.Equal(t, models.TimePreferenceAfternoon, timeBucket(16*60+59))
	assert.Equal(t, models.TimePreferenceEvening, timeBucket(17*60))
	assert.Equal(t, models.TimePreferenceEvening, timeBucket(20*60+59))
	assert.Equal(t, "", timeBucket(7*60))
	assert.Equal(t, "", timeBucket(22*60))
}
