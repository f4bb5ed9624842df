package engine

import (
	"strings"

	"github.com/samber/lo"

	"github.com/cyclonesb/schedule-builder/internal/models"
)

// combination is one schedulable unit for a course: a lone primary, a lone
// secondary, or a primary+secondary pair.
type combination []models.Section

// combinationsFor produces every valid section combination for a course.
//
// Courses carrying both primary and secondary sections pair them through
// compatiblePair; if the compatibility filter rejects everything the course
// still gets all pairs rather than no combinations at all. Courses with a
// single group yield each of its sections alone.
func combinationsFor(course models.Course) []combination {
	var primaries, secondaries []models.Section
	for _, section := range course.Sections {
		if ClassifyRole(section) == RolePrimary {
			primaries = append(primaries, section)
		} else {
			secondaries = append(secondaries, section)
		}
	}

	if len(primaries) > 0 && len(secondaries) > 0 {
		labInstructors := distinctLabInstructors(secondaries)
		var pairs []combination
		for _, primary := range primaries {
			for _, secondary := range secondaries {
				if compatiblePair(primary, secondary, labInstructors) {
					pairs = append(pairs, combination{primary, secondary})
				}
			}
		}
		if len(pairs) == 0 {
			// Never leave a course without combinations when sections
			// exist: the numbering convention the filter assumes does not
			// hold everywhere in the catalog.
			for _, primary := range primaries {
				for _, secondary := range secondaries {
					pairs = append(pairs, combination{primary, secondary})
				}
			}
		}
		return pairs
	}

	solo := primaries
	if len(solo) == 0 {
		solo = secondaries
	}
	combos := make([]combination, 0, len(solo))
	for _, section := range solo {
		combos = append(combos, combination{section})
	}
	return combos
}

// compatiblePair decides whether a primary section may be scheduled with a
// secondary one.
//
// Lecture/Lab pairs require an instructor match only when the course has more
// than one distinct lab instructor; a single-instructor lab pool is assumed
// interchangeable. Every other secondary type (recitation, discussion,
// studio, ...) pairs permissively: the catalog rarely encodes a strict
// lecture link for them, so instructor and section-number hints are treated
// as advisory and the pairing always falls through to compatible. Known
// fidelity risk, preserved on purpose: tightening this needs product input.
func compatiblePair(primary, secondary models.Section, labInstructors int) bool {
	if ClassifyFormat(primary.InstructionalFormat) == FormatLecture &&
		ClassifyFormat(secondary.InstructionalFormat) == FormatLab {
		if labInstructors > 1 {
			return sameInstructor(primary, secondary)
		}
		return true
	}
	return true
}

func sameInstructor(a, b models.Section) bool {
	return strings.EqualFold(strings.TrimSpace(a.Instructor), strings.TrimSpace(b.Instructor))
}

func distinctLabInstructors(secondaries []models.Section) int {
	labs := lo.Filter(secondaries, func(section models.Section, _ int) bool {
		return ClassifyFormat(section.InstructionalFormat) == FormatLab
	})
	instructors := lo.Uniq(lo.Map(labs, func(section models.Section, _ int) string {
		return strings.ToLower(strings.TrimSpace(section.Instructor))
	}))
	return len(instructors)
}
