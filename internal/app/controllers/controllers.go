package controllers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yigit/unidash/internal/app/services"
	"github.com/yigit/unidash/internal/pkg/apperrors"
	"github.com/yigit/unidash/internal/pkg/helpers"
)

// Controllers groups every HTTP handler set
type Controllers struct {
	Students    *StudentController
	Courses     *CourseController
	Faculty     *FacultyController
	Grades      *GradeController
	Enrollments *EnrollmentController
	Reports     *ReportController
	Maintenance *MaintenanceController
}

// NewControllers builds the handlers over svc
func NewControllers(svc *services.Services) *Controllers {
	return &Controllers{
		Students:    NewStudentController(svc.Students),
		Courses:     NewCourseController(svc.Courses),
		Faculty:     NewFacultyController(svc.Faculty),
		Grades:      NewGradeController(svc.Grades),
		Enrollments: NewEnrollmentController(svc.Enrollment),
		Reports:     NewReportController(svc.Reports),
		Maintenance: NewMaintenanceController(svc.Maintenance),
	}
}

// parseListQuery reads search, sort, order, page and size from the query string.
func parseListQuery(ctx *gin.Context) (services.ListQuery, error) {
	page, size := helpers.ParsePaginationParams(ctx)
	q := services.ListQuery{
		Search:   ctx.Query("search"),
		Sort:     ctx.Query("sort"),
		Page:     page,
		PageSize: size,
	}

	switch strings.ToLower(ctx.DefaultQuery("order", "asc")) {
	case "asc":
	case "desc":
		q.Descending = true
	default:
		return q, apperrors.NewBadRequestError("order must be asc or desc")
	}
	return q, nil
}

// optionalInt parses an optional integer query parameter.
func optionalInt(ctx *gin.Context, key string) (*int, error) {
	raw, ok := ctx.GetQuery(key)
	if !ok || raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, apperrors.NewBadRequestError(key + " must be an integer")
	}
	return &n, nil
}
