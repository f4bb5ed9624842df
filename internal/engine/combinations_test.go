package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cyclonesb/schedule-builder/internal/models"
)

func section(courseID, number, format, instructor string) models.Section {
	return models.Section{
		CourseID:            courseID,
		Number:              number,
		InstructionalFormat: format,
		DaysOfTheWeek:       "Mon,Wed",
		TimeStart:           "9:00 AM",
		TimeEnd:             "9:50 AM",
		Instructor:          instructor,
		DeliveryMode:        models.DeliveryInPerson,
	}
}

func TestCombinationsLectureOnly(t *testing.T) {
	course := models.Course{
		CourseID: "COM S 227",
		Sections: []models.Section{
			section("COM S 227", "1", "Lecture", "Stone"),
			section("COM S 227", "2", "Lecture", "Ward"),
		},
	}
	combos := combinationsFor(course)
	require.Len(t, combos, 2)
	for _, combo := range combos {
		assert.Len(t, combo, 1)
	}
}

func TestCombinationsSecondaryOnly(t *testing.T) {
	// Rare but supported: a course offering nothing but companion sections.
	course := models.Course{
		CourseID: "CHEM 177L",
		Sections: []models.Section{
			section("CHEM 177L", "A", "Laboratory", "Burnett"),
			section("CHEM 177L", "B", "Laboratory", "Burnett"),
		},
	}
	combos := combinationsFor(course)
	require.Len(t, combos, 2)
	for _, combo := range combos {
		assert.Len(t, combo, 1)
	}
}

func TestCombinationsSingleLabInstructorPairsFreely(t *testing.T) {
	course := models.Course{
		CourseID: "PHYS 231",
		Sections: []models.Section{
			section("PHYS 231", "1", "Lecture", "Stone"),
			section("PHYS 231", "2", "Lecture", "Ward"),
			section("PHYS 231", "A", "Lab", "Burnett"),
			section("PHYS 231", "B", "Lab", "Burnett"),
		},
	}
	combos := combinationsFor(course)
	// One lab instructor: every lecture pairs with every lab.
	require.Len(t, combos, 4)
	for _, combo := range combos {
		require.Len(t, combo, 2)
		assert.Equal(t, RolePrimary, ClassifyRole(combo[0]))
		assert.Equal(t, RoleSecondary, ClassifyRole(combo[1]))
	}
}

func TestCombinationsMultipleLabInstructorsRequireMatch(t *testing.T) {
	course := models.Course{
		CourseID: "PHYS 232",
		Sections: []models.Section{
			section("PHYS 232", "1", "Lecture", "Stone"),
			section("PHYS 232", "2", "Lecture", "Ward"),
			section("PHYS 232", "A", "Lab", "Stone"),
			section("PHYS 232", "B", "Lab", "Ward"),
		},
	}
	combos := combinationsFor(course)
	require.Len(t, combos, 2)
	for _, combo := range combos {
		assert.Equal(t, combo[0].Instructor, combo[1].Instructor)
	}
}

func TestCombinationsRecitationPairsPermissively(t *testing.T) {
	course := models.Course{
		CourseID: "MATH 165",
		Sections: []models.Section{
			section("MATH 165", "1", "Lecture", "Keller"),
			section("MATH 165", "A1", "Recitation", "Nguyen"),
			section("MATH 165", "A2", "Recitation", "Patel"),
		},
	}
	combos := combinationsFor(course)
	require.Len(t, combos, 2)
}

func TestCombinationsFallbackWhenFilterEmpty(t *testing.T) {
	// Two lab instructors but no lecture shares an instructor with any lab:
	// the filter yields nothing, so all pairs are admitted instead of
	// leaving the course unschedulable.
	course := models.Course{
		CourseID: "BIOL 211",
		Sections: []models.Section{
			section("BIOL 211", "1", "Lecture", "Keller"),
			section("BIOL 211", "A", "Lab", "Stone"),
			section("BIOL 211", "B", "Lab", "Ward"),
		},
	}
	combos := combinationsFor(course)
	require.Len(t, combos, 2)
}
