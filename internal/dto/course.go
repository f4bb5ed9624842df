package dto

import "github.com/cyclonesb/schedule-builder/internal/models"

// AddCoursesRequest searches the catalog and adds the matches to the basket.
type AddCoursesRequest struct {
	Department       string `json:"department" validate:"required"`
	CourseID         string `json:"courseId"`
	AcademicPeriodID string `json:"academicPeriodId"`
}

// SetPeriodRequest switches the active academic period for the session.
type SetPeriodRequest struct {
	AcademicPeriodID string `json:"academicPeriodId" validate:"required"`
}

// BasketResponse describes the session's selected courses.
type BasketResponse struct {
	AcademicPeriod string          `json:"academicPeriod"`
	Courses        []models.Course `json:"courses"`
}
