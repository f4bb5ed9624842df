package catalog

import (
	"encoding/json"
	"strings"

	"go.uber.org/zap"

	"github.com/cyclonesb/schedule-builder/internal/models"
)

// Parser converts raw catalog API payloads into course models. Malformed
// courses and sections are skipped with a warning rather than failing the
// whole payload.
type Parser struct {
	logger *zap.Logger
}

// NewParser builds a parser. A nil logger falls back to a no-op logger.
func NewParser(logger *zap.Logger) *Parser {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Parser{logger: logger}
}

type searchPayload struct {
	Data []courseNode `json:"data"`
}

type courseNode struct {
	CourseNumber string        `json:"courseNumber"`
	Number       string        `json:"number"`
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	Sections     []sectionNode `json:"sections"`
}

type sectionNode struct {
	MeetingPatterns     string     `json:"meetingPatterns"`
	InstructionalFormat string     `json:"instructionalFormat"`
	Locations           string     `json:"locations"`
	CourseNumber        string     `json:"courseNumber"`
	CourseID            string     `json:"courseId"`
	Number              string     `json:"number"`
	Instructors         string     `json:"instructors"`
	DeliveryMode        string     `json:"deliveryMode"`
	OpenSeats           int        `json:"openSeats"`
	Credits             flexString `json:"credits"`
}

// flexString absorbs fields the upstream API serializes inconsistently as
// either a JSON string or a bare number.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = flexString(n.String())
	return nil
}

// ParseCourses decodes a course search response body. Courses without a
// usable identifier or without any parseable section are dropped.
func (p *Parser) ParseCourses(body []byte) ([]models.Course, error) {
	var payload searchPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, err
	}

	courses := make([]models.Course, 0, len(payload.Data))
	for _, node := range payload.Data {
		courseID := node.CourseNumber
		if courseID == "" {
			courseID = node.Number
		}
		if courseID == "" {
			p.logger.Warn("course missing identifier, skipping")
			continue
		}

		course := models.Course{
			CourseID:    courseID,
			CourseName:  node.Title,
			Description: node.Description,
		}
		for _, raw := range node.Sections {
			section, ok := p.parseSection(raw)
			if !ok {
				continue
			}
			course.Sections = append(course.Sections, section)
		}
		if len(course.Sections) == 0 {
			p.logger.Warn("course has no usable sections, skipping", zap.String("course_id", courseID))
			continue
		}
		courses = append(courses, course)
	}
	return courses, nil
}

func (p *Parser) parseSection(node sectionNode) (models.Section, bool) {
	days := models.SentinelNA
	timeStart := models.SentinelNA
	timeEnd := models.SentinelNA

	if pattern, times, found := strings.Cut(node.MeetingPatterns, "|"); found {
		days = convertDays(strings.TrimSpace(pattern))
		if start, end, ok := strings.Cut(strings.TrimSpace(times), "-"); ok {
			timeStart = strings.TrimSpace(start)
			timeEnd = strings.TrimSpace(end)
		}
	}

	courseID := node.CourseNumber
	if courseID == "" {
		courseID = node.CourseID
	}
	if courseID == "" || node.Number == "" {
		p.logger.Warn("section missing required fields",
			zap.String("course_id", courseID), zap.String("number", node.Number))
		return models.Section{}, false
	}

	format := node.InstructionalFormat
	if format == "" {
		format = "Unknown"
	}
	location := node.Locations
	if location == "" {
		location = "TBA"
	}
	instructors := node.Instructors
	if instructors == "" {
		instructors = "TBA"
	}
	delivery := node.DeliveryMode
	if delivery == "" {
		delivery = models.DeliveryInPerson
	}
	credits := string(node.Credits)
	if credits == "" {
		credits = "0"
	}

	hasDays := days != "" && days != models.SentinelNA
	hasTime := timeStart != "" && timeStart != models.SentinelNA && timeEnd != "" && timeEnd != models.SentinelNA
	online := strings.EqualFold(delivery, "Online")

	switch {
	case online:
		if !hasDays {
			days = models.SentinelOnline
		}
		if !hasTime {
			timeStart = models.SentinelOnline
			timeEnd = models.SentinelOnline
		}
	case !hasDays || !hasTime:
		if !hasDays {
			days = models.SentinelTBD
		}
		if !hasTime {
			timeStart = models.SentinelTBD
			timeEnd = models.SentinelTBD
		}
	}

	return models.Section{
		CourseID:            courseID,
		Number:              node.Number,
		InstructionalFormat: format,
		DaysOfTheWeek:       days,
		TimeStart:           timeStart,
		TimeEnd:             timeEnd,
		Instructor:          instructors,
		OpenSeats:           node.OpenSeats,
		Location:            location,
		DeliveryMode:        delivery,
		Credits:             credits,
	}, true
}

var dayNames = map[rune]string{
	'M': "Mon",
	'T': "Tue",
	'W': "Wed",
	'R': "Thu",
	'F': "Fri",
	'S': "Sat",
	'U': "Sun",
}

// convertDays expands registrar day letters ("MWF") into comma separated
// short names ("Mon,Wed,Fri"). Unrecognized letters are dropped; an empty
// expansion means the section meets online.
func convertDays(letters string) string {
	var names []string
	for _, letter := range strings.ToUpper(letters) {
		if name, ok := dayNames[letter]; ok {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return models.SentinelOnline
	}
	return strings.Join(names, ",")
}
