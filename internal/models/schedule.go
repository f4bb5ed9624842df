package models

// CourseSelection is the combination chosen for a single course: a lone
// primary section, a lone secondary, or a primary+secondary pair.
type CourseSelection struct {
	CourseID string    `json:"courseId"`
	Sections []Section `json:"sections"`
}

// Schedule is one complete conflict-free weekly timetable. Selections keep
// the input course order, making results deterministic and renderable without
// further sorting.
type Schedule struct {
	Selections []CourseSelection `json:"selections"`
	Score      int               `json:"score"`
}

// AllSections flattens the schedule into its individual sections.
func (s Schedule) AllSections() []Section {
	var sections []Section
	for _, selection := range s.Selections {
		sections = append(sections, selection.Sections...)
	}
	return sections
}

// SelectionFor returns the chosen combination for a course, if present.
func (s Schedule) SelectionFor(courseID string) (CourseSelection, bool) {
	for _, selection := range s.Selections {
		if selection.CourseID == courseID {
			return selection, true
		}
	}
	return CourseSelection{}, false
}
