package dto

import "github.com/cyclonesb/schedule-builder/internal/models"

// PreferencesPayload carries optional soft preferences for ranking.
type PreferencesPayload struct {
	PreferredDays  []string `json:"preferredDays" validate:"omitempty,dive,oneof=Mon Tue Wed Thu Fri Sat Sun"`
	TimePreference string   `json:"timePreference" validate:"omitempty,oneof=morning afternoon evening"`
	GapPreference  string   `json:"gapPreference" validate:"omitempty,oneof=none minimal short medium long"`
	ScheduleStyle  string   `json:"scheduleStyle" validate:"omitempty,oneof=compact spread"`
}

// Model converts the payload into the engine's preference type.
func (p PreferencesPayload) Model() models.SchedulePreferences {
	return models.SchedulePreferences{
		PreferredDays:  p.PreferredDays,
		TimePreference: p.TimePreference,
		GapPreference:  p.GapPreference,
		ScheduleStyle:  p.ScheduleStyle,
	}
}

// GenerateSchedulesRequest triggers schedule generation over the basket.
type GenerateSchedulesRequest struct {
	MaxSchedules int                `json:"maxSchedules" validate:"omitempty,min=1,max=100"`
	UniqueOnly   bool               `json:"uniqueOnly"`
	Preferences  PreferencesPayload `json:"preferences"`
}

// GenerateSchedulesResponse returns the ranked schedules.
type GenerateSchedulesResponse struct {
	Total     int               `json:"total"`
	Schedules []models.Schedule `json:"schedules"`
}

// CurrentScheduleResponse positions the client within the generated list.
type CurrentScheduleResponse struct {
	Index    int             `json:"index"`
	Total    int             `json:"total"`
	Schedule models.Schedule `json:"schedule"`
}
