package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/yigit/unidash/internal/app/models"
	"github.com/yigit/unidash/internal/app/repositories"
	"github.com/yigit/unidash/internal/pkg/apperrors"
)

// Services defined in this package:
// - EnrollmentService: keeps enrolledCourses and enrollmentCount consistent
// - StudentService, CourseService, FacultyService, GradeService: validated CRUD
// - ReportService: dashboard and course performance aggregates
// - MaintenanceService: duplicate cleanup and count reconciliation
type Services struct {
	Enrollment  *EnrollmentService
	Students    *StudentService
	Courses     *CourseService
	Faculty     *FacultyService
	Grades      *GradeService
	Reports     *ReportService
	Maintenance *MaintenanceService
}

// NewServices wires every service over one set of repositories
func NewServices(repos *repositories.Repositories) *Services {
	enrollment := NewEnrollmentService(repos)
	return &Services{
		Enrollment:  enrollment,
		Students:    NewStudentService(repos, enrollment),
		Courses:     NewCourseService(repos, enrollment),
		Faculty:     NewFacultyService(repos),
		Grades:      NewGradeService(repos),
		Reports:     NewReportService(repos),
		Maintenance: NewMaintenanceService(repos, enrollment),
	}
}

// ListQuery carries the shared listing parameters
type ListQuery struct {
	Search     string
	Sort       string
	Descending bool
	Page       int
	PageSize   int
}

// assignID mints a logical id when the client sent none.
func assignID(id string) string {
	if id = strings.TrimSpace(id); id != "" {
		return id
	}
	return uuid.NewString()
}

// ensureAbsent fails with a conflict when a record with id is already stored.
func ensureAbsent[T models.Entity](ctx context.Context, store repositories.RecordStore[T], kind, id string) error {
	_, err := store.GetByID(ctx, id)
	switch {
	case err == nil:
		return apperrors.NewConflictError(fmt.Sprintf("%s with id %s already exists", kind, id))
	case errors.Is(err, apperrors.ErrNotFound):
		return nil
	default:
		return err
	}
}

// sortAndPage applies the optional sort and then the page window, returning the
// page and the total number of matches.
func sortAndPage[T any](items []T, fields map[string]Field[T], q ListQuery) ([]T, int, error) {
	if q.Sort != "" {
		field, ok := fields[q.Sort]
		if !ok {
			return nil, 0, apperrors.NewBadRequestError(fmt.Sprintf("unknown sort field %q", q.Sort))
		}
		items = SortByField(items, field, q.Descending)
	}
	return Paginate(items, q.Page, q.PageSize), len(items), nil
}
