package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/yigit/unidash/internal/app/models"
	"github.com/yigit/unidash/internal/app/repositories"
	"github.com/yigit/unidash/internal/pkg/apperrors"
	"github.com/yigit/unidash/internal/pkg/validation"
)

// CourseQuery selects a page of courses
type CourseQuery struct {
	ListQuery
	Department string
}

// CourseService handles course-related operations
type CourseService struct {
	courses    repositories.RecordStore[models.Course]
	students   repositories.RecordStore[models.Student]
	enrollment *EnrollmentService
}

// NewCourseService creates a new course service instance
func NewCourseService(repos *repositories.Repositories, enrollment *EnrollmentService) *CourseService {
	return &CourseService{
		courses:    repos.Courses,
		students:   repos.Students,
		enrollment: enrollment,
	}
}

// ListCourses returns the deduplicated, filtered, sorted page and the number of matches
func (s *CourseService) ListCourses(ctx context.Context, q CourseQuery) ([]models.Course, int, error) {
	all, err := s.all(ctx)
	if err != nil {
		return nil, 0, err
	}
	return sortAndPage(FilterCourses(all, q.Search, q.Department), CourseFields, q.ListQuery)
}

// PopularCourses returns the n courses with the most enrolled students
func (s *CourseService) PopularCourses(ctx context.Context, n int) ([]models.Course, error) {
	all, err := s.all(ctx)
	if err != nil {
		return nil, err
	}
	return TopN(all, CourseFields["enrollmentCount"], n), nil
}

// GetCourseByID retrieves a course by logical id
func (s *CourseService) GetCourseByID(ctx context.Context, id string) (models.Course, error) {
	return s.courses.GetByID(ctx, id)
}

// GetEnrolledStudents lists the students whose course list contains the course
func (s *CourseService) GetEnrolledStudents(ctx context.Context, id string) ([]models.Student, error) {
	if _, err := s.courses.GetByID(ctx, id); err != nil {
		return nil, err
	}

	students, err := s.students.List(ctx)
	if err != nil {
		return nil, err
	}
	return FilterStudents(Dedupe(students), "", StudentFilter{CourseID: id}), nil
}

// CreateCourse validates and stores a new course. Its enrollmentCount is derived
// from the students already listing its id, whatever the client sent.
func (s *CourseService) CreateCourse(ctx context.Context, course models.Course) (models.Course, error) {
	course.ID = assignID(course.ID)
	course.Code = strings.TrimSpace(course.Code)
	course.FacultyIDs = models.UniqueStrings(course.FacultyIDs)
	course.EnrollmentCount = 0

	if err := validation.Struct(course); err != nil {
		return models.Course{}, err
	}
	if err := ensureAbsent(ctx, s.courses, "course", course.ID); err != nil {
		return models.Course{}, err
	}

	created, err := s.courses.Create(ctx, course)
	if err != nil {
		return models.Course{}, fmt.Errorf("error creating course: %w", err)
	}

	counts, err := s.enrollment.RecomputeCourses(ctx, created.ID)
	if err != nil {
		return created, err
	}
	created.EnrollmentCount = counts[created.ID]
	return created, nil
}

// UpdateCourse merges patch into the stored course
func (s *CourseService) UpdateCourse(ctx context.Context, id string, patch models.CoursePatch) (models.Course, error) {
	patch.EnrollmentCount = nil
	if err := validation.Struct(patch); err != nil {
		return models.Course{}, err
	}
	if patch.FacultyIDs != nil {
		unique := models.UniqueStrings(*patch.FacultyIDs)
		patch.FacultyIDs = &unique
	}

	return s.courses.Update(ctx, id, patch)
}

// DeleteCourse removes the course. Students keep any reference to it; such
// dangling ids are tolerated everywhere.
func (s *CourseService) DeleteCourse(ctx context.Context, id string) error {
	removed, err := s.courses.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("error deleting course: %w", err)
	}
	if !removed {
		return fmt.Errorf("%w: id %s", apperrors.ErrCourseNotFound, id)
	}
	return nil
}

func (s *CourseService) all(ctx context.Context) ([]models.Course, error) {
	courses, err := s.courses.List(ctx)
	if err != nil {
		return nil, err
	}
	return Dedupe(courses), nil
}
