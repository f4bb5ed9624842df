package engine

import (
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// clockPattern matches the catalog's 12-hour "h:mm a" convention, tolerating
// missing whitespace before the meridiem.
var clockPattern = regexp.MustCompile(`(?i)^\s*(\d{1,2}):(\d{2})\s*(AM|PM)\s*$`)

var dayOrder = map[string]int{
	"Mon": 0,
	"Tue": 1,
	"Wed": 2,
	"Thu": 3,
	"Fri": 4,
	"Sat": 5,
	"Sun": 6,
}

// minuteOfDay converts a "h:mm a" time string into minutes since midnight.
// Malformed values degrade to zero with a warning rather than failing the
// search.
func minuteOfDay(raw string, logger *zap.Logger) int {
	parts := clockPattern.FindStringSubmatch(raw)
	if parts == nil {
		if logger != nil {
			logger.Warn("unparseable section time, treating as midnight", zap.String("value", raw))
		}
		return 0
	}

	hours, err := strconv.Atoi(parts[1])
	if err != nil || hours < 1 || hours > 12 {
		if logger != nil {
			logger.Warn("section time out of range, treating as midnight", zap.String("value", raw))
		}
		return 0
	}
	minutes, err := strconv.Atoi(parts[2])
	if err != nil || minutes > 59 {
		if logger != nil {
			logger.Warn("section time out of range, treating as midnight", zap.String("value", raw))
		}
		return 0
	}

	if strings.EqualFold(parts[3], "PM") {
		if hours != 12 {
			hours += 12
		}
	} else if hours == 12 {
		hours = 0
	}

	return hours*60 + minutes
}

// dayIndex orders weekday abbreviations Mon..Sun. Unknown days sort last so
// malformed catalog data cannot panic the scorer.
func dayIndex(day string) int {
	if idx, ok := dayOrder[day]; ok {
		return idx
	}
	return len(dayOrder)
}
