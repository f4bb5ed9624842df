package models

// SessionState is the per-browser working set: the course basket, the active
// academic period and the most recently generated schedules.
type SessionState struct {
	AcademicPeriod string     `json:"academicPeriod"`
	Courses        []Course   `json:"courses"`
	Schedules      []Schedule `json:"schedules"`
	CurrentIndex   int        `json:"currentIndex"`
}

// CurrentSchedule returns the schedule the session is positioned on.
func (s *SessionState) CurrentSchedule() (Schedule, bool) {
	if len(s.Schedules) == 0 || s.CurrentIndex < 0 || s.CurrentIndex >= len(s.Schedules) {
		return Schedule{}, false
	}
	return s.Schedules[s.CurrentIndex], true
}

// Advance moves the current schedule pointer by delta, wrapping around both
// ends of the list.
func (s *SessionState) Advance(delta int) {
	if len(s.Schedules) == 0 {
		s.CurrentIndex = 0
		return
	}
	n := len(s.Schedules)
	s.CurrentIndex = ((s.CurrentIndex+delta)%n + n) % n
}

// AddCourse appends a course to the basket, replacing any earlier entry with
// the same identifier.
func (s *SessionState) AddCourse(course Course) {
	for i, existing := range s.Courses {
		if existing.CourseID == course.CourseID {
			s.Courses[i] = course
			return
		}
	}
	s.Courses = append(s.Courses, course)
}

// RemoveCourse drops a course from the basket by identifier and reports
// whether it was present. Removing a course invalidates generated schedules.
func (s *SessionState) RemoveCourse(courseID string) bool {
	for i, existing := range s.Courses {
		if existing.CourseID == courseID {
			s.Courses = append(s.Courses[:i], s.Courses[i+1:]...)
			s.Schedules = nil
			s.CurrentIndex = 0
			return true
		}
	}
	return false
}
