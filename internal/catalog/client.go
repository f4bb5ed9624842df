package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/cyclonesb/schedule-builder/internal/models"
	"github.com/cyclonesb/schedule-builder/pkg/config"
	appErrors "github.com/cyclonesb/schedule-builder/pkg/errors"
)

// SearchRequest is the payload the catalog API expects on course searches.
// Field presence matters upstream, so optional filters stay as pointers that
// serialize to null when unset.
type SearchRequest struct {
	AcademicPeriodID    string   `json:"academicPeriodId"`
	Department          string   `json:"department"`
	CourseID            string   `json:"courseId"`
	Level               *string  `json:"level"`
	Requirement         *string  `json:"requirement"`
	Instructor          string   `json:"instructor"`
	OpenSeats           bool     `json:"openSeats"`
	DaysOfTheWeek       []string `json:"daysOfTheWeek"`
	SectionStartDate    *string  `json:"sectionStartDate"`
	SectionEndDate      *string  `json:"sectionEndDate"`
	Title               string   `json:"title"`
	DeliveryMode        *string  `json:"deliveryMode"`
	AllowedGradingBases []string `json:"allowedGradingBases"`
}

// NewSearchRequest builds the default search payload for a period, department
// and course identifier.
func NewSearchRequest(periodID, department, courseID string) SearchRequest {
	return SearchRequest{
		AcademicPeriodID:    periodID,
		Department:          department,
		CourseID:            courseID,
		DaysOfTheWeek:       []string{},
		AllowedGradingBases: []string{},
	}
}

// Client talks to the university course catalog API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	parser     *Parser
	logger     *zap.Logger
}

// NewClient constructs a catalog client from configuration.
func NewClient(cfg config.CatalogConfig, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.Timeout},
		parser:     NewParser(logger),
		logger:     logger,
	}
}

// Departments returns the department codes offered in an academic period.
func (c *Client) Departments(ctx context.Context, periodID string) ([]string, error) {
	endpoint := fmt.Sprintf("%s/departments?academicPeriod=%s", c.baseURL, url.QueryEscape(periodID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "build departments request")
	}

	body, err := c.do(req)
	if err != nil {
		return nil, err
	}

	var payload struct {
		Data []string `json:"data"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, "decode departments response")
	}
	return payload.Data, nil
}

// SearchCourses queries the catalog and parses the matching courses.
func (c *Client) SearchCourses(ctx context.Context, search SearchRequest) ([]models.Course, error) {
	payload, err := json.Marshal(search)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "encode course search")
	}

	endpoint := c.baseURL + "/courses/search"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "build course search request")
	}
	req.Header.Set("Content-Type", "application/json")

	body, err := c.do(req)
	if err != nil {
		return nil, err
	}

	courses, err := c.parser.ParseCourses(body)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, "decode course search response")
	}
	return courses, nil
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("catalog request failed", zap.String("url", req.URL.String()), zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, appErrors.ErrUpstream.Message)
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, "read catalog response")
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("catalog returned non-success status",
			zap.String("url", req.URL.String()), zap.Int("status", resp.StatusCode))
		return nil, appErrors.New(appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status,
			fmt.Sprintf("catalog responded with status %d", resp.StatusCode))
	}
	return body, nil
}
