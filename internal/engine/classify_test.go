package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cyclonesb/schedule-builder/internal/models"
)

func TestClassifyFormatMappingTable(t *testing.T) {
	cases := map[string]SectionFormat{
		"Lecture":             FormatLecture,
		"lecture":             FormatLecture,
		" Lecture ":           FormatLecture,
		"Laboratory":          FormatLab,
		"Lab":                 FormatLab,
		"Recitation":          FormatRecitation,
		"Discussion":          FormatDiscussion,
		"Quiz Section":        FormatQuiz,
		"Workshop":            FormatWorkshop,
		"Tutorial":            FormatTutorial,
		"Studio":              FormatStudio,
		"Seminar":             FormatSeminar,
		"Arranged":            FormatArranged,
		"Independent Study":   FormatUnknown,
		"":                    FormatUnknown,
		"Recitation/Workshop": FormatRecitation,
	}
	for raw, want := range cases {
		assert.Equal(t, want, ClassifyFormat(raw), "format %q", raw)
	}
}

func TestClassifyRoleFromFormat(t *testing.T) {
	lecture := models.Section{InstructionalFormat: "Lecture", Number: "1"}
	lab := models.Section{InstructionalFormat: "Laboratory", Number: "1"}
	recitation := models.Section{InstructionalFormat: "Recitation", Number: "2"}

	assert.Equal(t, RolePrimary, ClassifyRole(lecture))
	assert.Equal(t, RoleSecondary, ClassifyRole(lab))
	assert.Equal(t, RoleSecondary, ClassifyRole(recitation))
}

func TestClassifyRoleNumberFallback(t *testing.T) {
	// Unrecognized formats fall back to the section-number shape: a leading
	// letter marks a companion section.
	numeric := models.Section{InstructionalFormat: "Unknown", Number: "3"}
	alpha := models.Section{InstructionalFormat: "Unknown", Number: "B"}
	empty := models.Section{InstructionalFormat: "", Number: ""}

	assert.Equal(t, RolePrimary, ClassifyRole(numeric))
	assert.Equal(t, RoleSecondary, ClassifyRole(alpha))
	assert.Equal(t, RolePrimary, ClassifyRole(empty))
}
