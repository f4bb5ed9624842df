package engine

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/cyclonesb/schedule-builder/internal/models"
)

// SectionFormat is the closed set of instructional formats the engine
// understands. Raw catalog strings are folded onto it through formatKeywords
// so the classification heuristic stays auditable in one place.
type SectionFormat int

const (
	FormatUnknown SectionFormat = iota
	FormatLecture
	FormatLab
	FormatRecitation
	FormatDiscussion
	FormatQuiz
	FormatWorkshop
	FormatTutorial
	FormatStudio
	FormatSeminar
	FormatArranged
)

// SectionRole is derived from the format, never stored on the section.
type SectionRole int

const (
	RolePrimary SectionRole = iota
	RoleSecondary
)

// formatKeywords maps case-insensitive substrings of the raw catalog format
// onto the closed enum. Order matters only for the first match; the keywords
// are mutually exclusive in practice.
var formatKeywords = []struct {
	keyword string
	format  SectionFormat
}{
	{"recitation", FormatRecitation},
	{"discussion", FormatDiscussion},
	{"laboratory", FormatLab},
	{"lab", FormatLab},
	{"quiz", FormatQuiz},
	{"workshop", FormatWorkshop},
	{"tutorial", FormatTutorial},
	{"studio", FormatStudio},
	{"seminar", FormatSeminar},
	{"arranged", FormatArranged},
}

// ClassifyFormat folds a raw catalog format string onto the closed enum.
// "Lecture" is matched exactly (the catalog never qualifies it); everything
// else goes through substring keywords.
func ClassifyFormat(raw string) SectionFormat {
	trimmed := strings.TrimSpace(raw)
	if strings.EqualFold(trimmed, "Lecture") {
		return FormatLecture
	}
	lowered := strings.ToLower(trimmed)
	for _, entry := range formatKeywords {
		if strings.Contains(lowered, entry.keyword) {
			return entry.format
		}
	}
	return FormatUnknown
}

// ClassifyRole decides whether a section is a standalone (primary) offering
// or a companion (secondary) one. Unknown formats fall back to the section
// number's shape: an alphabetic leading character marks companion sections in
// the catalog's numbering convention. This is a heuristic, not a guarantee.
func ClassifyRole(section models.Section) SectionRole {
	switch ClassifyFormat(section.InstructionalFormat) {
	case FormatLecture:
		return RolePrimary
	case FormatUnknown:
		return roleFromNumber(section.Number)
	default:
		return RoleSecondary
	}
}

func roleFromNumber(number string) SectionRole {
	trimmed := strings.TrimSpace(number)
	if trimmed == "" {
		return RolePrimary
	}
	first, _ := utf8.DecodeRuneInString(trimmed)
	if unicode.IsLetter(first) {
		return RoleSecondary
	}
	return RolePrimary
}
