package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cyclonesb/schedule-builder/internal/models"
)

func scheduleOf(selections ...models.CourseSelection) models.Schedule {
	return models.Schedule{Selections: selections}
}

func TestSignatureIgnoresInstructorAndSectionNumber(t *testing.T) {
	a := scheduleOf(models.CourseSelection{
		CourseID: "X 101",
		Sections: []models.Section{lectureAt("X 101", "1", "Mon,Wed", "9:00 AM", "9:50 AM", "Stone")},
	})
	b := scheduleOf(models.CourseSelection{
		CourseID: "X 101",
		Sections: []models.Section{lectureAt("X 101", "7", "Mon,Wed", "9:00 AM", "9:50 AM", "Ward")},
	})
	assert.Equal(t, signature(a), signature(b))
}

func TestSignatureDistinguishesTimes(t *testing.T) {
	a := scheduleOf(models.CourseSelection{
		CourseID: "X 101",
		Sections: []models.Section{lectureAt("X 101", "1", "Mon,Wed", "9:00 AM", "9:50 AM", "Stone")},
	})
	b := scheduleOf(models.CourseSelection{
		CourseID: "X 101",
		Sections: []models.Section{lectureAt("X 101", "1", "Mon,Wed", "10:00 AM", "10:50 AM", "Stone")},
	})
	assert.NotEqual(t, signature(a), signature(b))
}

func TestSignatureIsOrderInsensitive(t *testing.T) {
	x := models.CourseSelection{
		CourseID: "X 101",
		Sections: []models.Section{lectureAt("X 101", "1", "Mon", "9:00 AM", "9:50 AM", "Stone")},
	}
	y := models.CourseSelection{
		CourseID: "Y 201",
		Sections: []models.Section{
			lectureAt("Y 201", "1", "Tue", "9:00 AM", "9:50 AM", "Keller"),
			labAt("Y 201", "A", "Thu", "1:10 PM", "3:00 PM", "Keller"),
		},
	}
	yFlipped := models.CourseSelection{
		CourseID: "Y 201",
		Sections: []models.Section{y.Sections[1], y.Sections[0]},
	}
	assert.Equal(t, signature(scheduleOf(x, y)), signature(scheduleOf(yFlipped, x)))
}

func TestDedupeKeepsFirstGenerated(t *testing.T) {
	first := scheduleOf(models.CourseSelection{
		CourseID: "X 101",
		Sections: []models.Section{lectureAt("X 101", "1", "Mon", "9:00 AM", "9:50 AM", "Stone")},
	})
	duplicate := scheduleOf(models.CourseSelection{
		CourseID: "X 101",
		Sections: []models.Section{lectureAt("X 101", "2", "Mon", "9:00 AM", "9:50 AM", "Ward")},
	})
	distinct := scheduleOf(models.CourseSelection{
		CourseID: "X 101",
		Sections: []models.Section{lectureAt("X 101", "3", "Tue", "9:00 AM", "9:50 AM", "Ward")},
	})

	unique := dedupe([]models.Schedule{first, duplicate, distinct})
	assert.Len(t, unique, 2)
	assert.Equal(t, "Stone", unique[0].Selections[0].Sections[0].Instructor)
	assert.Equal(t, "Tue", unique[1].Selections[0].Sections[0].DaysOfTheWeek)
}

func TestDedupeEmptyInput(t *testing.T) {
	assert.Empty(t, dedupe(nil))
}
