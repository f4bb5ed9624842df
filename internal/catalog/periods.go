package catalog

import "strings"

// AcademicPeriod identifies a term offered by the registrar.
type AcademicPeriod struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Active      bool   `json:"isActive"`
}

// DefaultPeriods returns the currently offered academic periods. The upstream
// API has no period listing endpoint, so the set is maintained here.
func DefaultPeriods() []AcademicPeriod {
	return []AcademicPeriod{
		{ID: "ACADEMIC_PERIOD-2025Fall", DisplayName: "2025 Fall Semester (08/25/2025-12/19/2025)", StartDate: "2025-08-25", EndDate: "2025-12-19", Active: true},
		{ID: "ACADEMIC_PERIOD-2025Spring", DisplayName: "2025 Spring Semester (01/21/2025-05/16/2025)", StartDate: "2025-01-21", EndDate: "2025-05-16"},
		{ID: "ACADEMIC_PERIOD-2025Summer", DisplayName: "2025 Summer Semester (05/19/2025-08/08/2025)", StartDate: "2025-05-19", EndDate: "2025-08-08"},
		{ID: "ACADEMIC_PERIOD-2024Winter", DisplayName: "2024-2025 Winter Session (12/23/2024-01/17/2025)", StartDate: "2024-12-23", EndDate: "2025-01-17"},
	}
}

// PeriodByID looks a period up in the default set.
func PeriodByID(id string) (AcademicPeriod, bool) {
	for _, period := range DefaultPeriods() {
		if period.ID == id {
			return period, true
		}
	}
	return AcademicPeriod{}, false
}

// PeriodIDFromDisplayName converts a registrar display name such as
// "2025 Fall Semester (08/25/2025-12/19/2025)" into the upstream period ID.
func PeriodIDFromDisplayName(displayName string) string {
	switch {
	case strings.Contains(displayName, "Fall Semester") && len(displayName) >= 4:
		return "ACADEMIC_PERIOD-" + displayName[:4] + "Fall"
	case strings.Contains(displayName, "Spring Semester") && len(displayName) >= 4:
		return "ACADEMIC_PERIOD-" + displayName[:4] + "Spring"
	case strings.Contains(displayName, "Summer Semester") && len(displayName) >= 4:
		return "ACADEMIC_PERIOD-" + displayName[:4] + "Summer"
	case strings.Contains(displayName, "Winter Session"):
		yearRange, _, found := strings.Cut(displayName, " ")
		if found {
			firstYear, _, _ := strings.Cut(yearRange, "-")
			return "ACADEMIC_PERIOD-" + firstYear + "Winter"
		}
	}
	return "ACADEMIC_PERIOD-2025Fall"
}
