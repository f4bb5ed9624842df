package models

import (
	"math"
	"strings"
)

// Time-of-day preference buckets.
const (
	TimePreferenceMorning   = "morning"
	TimePreferenceAfternoon = "afternoon"
	TimePreferenceEvening   = "evening"
)

// Gap preference labels, each mapping to a minute window via GapWindow.
const (
	GapPreferenceNone    = "none"
	GapPreferenceMinimal = "minimal"
	GapPreferenceShort   = "short"
	GapPreferenceMedium  = "medium"
	GapPreferenceLong    = "long"
)

// Schedule style labels.
const (
	StyleCompact = "compact"
	StyleSpread  = "spread"
)

// SchedulePreferences captures optional user preferences for ranking. The
// zero value (or a value with all fields empty/default) means "no
// preferences" and must not perturb scoring.
type SchedulePreferences struct {
	PreferredDays  []string `json:"preferredDays"`
	TimePreference string   `json:"timePreference"`
	GapPreference  string   `json:"gapPreference"`
	ScheduleStyle  string   `json:"scheduleStyle"`
}

// IsEmpty reports whether the preferences are effectively absent.
func (p SchedulePreferences) IsEmpty() bool {
	return len(p.PreferredDays) == 0 &&
		p.TimePreference == "" &&
		(p.GapPreference == "" || p.GapPreference == GapPreferenceNone) &&
		p.ScheduleStyle == ""
}

// DayPreferred reports whether a day counts as preferred. An empty preferred
// set treats every day as preferred.
func (p SchedulePreferences) DayPreferred(day string) bool {
	if len(p.PreferredDays) == 0 {
		return true
	}
	for _, preferred := range p.PreferredDays {
		if strings.EqualFold(preferred, day) {
			return true
		}
	}
	return false
}

// GapWindow maps the gap preference label onto its [min,max] minute window.
func (p SchedulePreferences) GapWindow() (min, max int) {
	switch strings.ToLower(p.GapPreference) {
	case GapPreferenceMinimal:
		return 0, 15
	case GapPreferenceShort:
		return 15, 30
	case GapPreferenceMedium:
		return 30, 60
	case GapPreferenceLong:
		return 60, math.MaxInt32
	default:
		return 0, math.MaxInt32
	}
}
