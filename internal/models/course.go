package models

import "strings"

// Sentinel values used by the catalog feed for sections that have no fixed
// meeting pattern. Sections carrying one of these in their day or time fields
// never participate in conflict checks.
const (
	SentinelTBD    = "TBD"
	SentinelOnline = "Online"
	SentinelNA     = "N/A"
)

// Delivery modes reported by the catalog.
const (
	DeliveryInPerson = "In-Person"
	DeliveryOnline   = "Online"
	DeliveryTBD      = "TBD"
)

// Course is an immutable engine input: one catalog course with its candidate
// sections. A course must carry at least one section to participate in a
// search.
type Course struct {
	CourseID    string    `json:"courseId"`
	CourseName  string    `json:"courseName"`
	Description string    `json:"description,omitempty"`
	Sections    []Section `json:"sections"`
}

// Section is a single offering of a course. Day and time fields keep the
// catalog's lexical conventions: days as "Mon,Wed,Fri", times as "1:10 PM",
// with TBD/Online/N/A sentinels for unscheduled offerings.
type Section struct {
	CourseID            string `json:"courseId"`
	Number              string `json:"number"`
	InstructionalFormat string `json:"instructionalFormat"`
	DaysOfTheWeek       string `json:"daysOfTheWeek"`
	TimeStart           string `json:"timeStart"`
	TimeEnd             string `json:"timeEnd"`
	Instructor          string `json:"instructor"`
	OpenSeats           int    `json:"openSeats"`
	Location            string `json:"location,omitempty"`
	DeliveryMode        string `json:"deliveryMode"`
	Credits             string `json:"credits,omitempty"`
}

// Days splits the day field into individual day names. Sentinel values yield
// an empty list.
func (s Section) Days() []string {
	if IsSentinel(s.DaysOfTheWeek) || s.DaysOfTheWeek == "" {
		return nil
	}
	parts := strings.Split(s.DaysOfTheWeek, ",")
	days := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			days = append(days, trimmed)
		}
	}
	return days
}

// Schedulable reports whether the section has a concrete weekly meeting
// pattern. Online and TBD sections are displayed but never placed on the
// conflict grid.
func (s Section) Schedulable() bool {
	if IsSentinel(s.DaysOfTheWeek) || IsSentinel(s.TimeStart) || IsSentinel(s.TimeEnd) {
		return false
	}
	return s.DaysOfTheWeek != "" && s.TimeStart != "" && s.TimeEnd != ""
}

// IsSentinel reports whether the value is one of the non-schedulable markers.
func IsSentinel(value string) bool {
	switch value {
	case SentinelTBD, SentinelOnline, SentinelNA:
		return true
	default:
		return false
	}
}
