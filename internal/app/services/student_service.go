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

// StudentQuery selects a page of students
type StudentQuery struct {
	ListQuery
	Filter StudentFilter
}

// StudentService handles student-related operations
type StudentService struct {
	students   repositories.RecordStore[models.Student]
	grades     repositories.RecordStore[models.Grade]
	enrollment *EnrollmentService
}

// NewStudentService creates a new student service instance
func NewStudentService(repos *repositories.Repositories, enrollment *EnrollmentService) *StudentService {
	return &StudentService{
		students:   repos.Students,
		grades:     repos.Grades,
		enrollment: enrollment,
	}
}

// ListStudents returns the deduplicated, filtered, sorted page and the number of matches
func (s *StudentService) ListStudents(ctx context.Context, q StudentQuery) ([]models.Student, int, error) {
	all, err := s.all(ctx)
	if err != nil {
		return nil, 0, err
	}
	return sortAndPage(FilterStudents(all, q.Search, q.Filter), StudentFields, q.ListQuery)
}

// TopStudents returns the n students with the highest GPA
func (s *StudentService) TopStudents(ctx context.Context, n int) ([]models.Student, error) {
	all, err := s.all(ctx)
	if err != nil {
		return nil, err
	}
	return TopN(all, StudentFields["gpa"], n), nil
}

// GetStudentByID retrieves a student by logical id
func (s *StudentService) GetStudentByID(ctx context.Context, id string) (models.Student, error) {
	return s.students.GetByID(ctx, id)
}

// GetStudentProgress summarizes the student's grades
func (s *StudentService) GetStudentProgress(ctx context.Context, id string) (Progress, error) {
	if _, err := s.students.GetByID(ctx, id); err != nil {
		return Progress{}, err
	}

	grades, err := s.grades.List(ctx)
	if err != nil {
		return Progress{}, err
	}

	own := make([]models.Grade, 0)
	for _, g := range Dedupe(grades) {
		if g.StudentID == id {
			own = append(own, g)
		}
	}
	return Summarize(own), nil
}

// CreateStudent validates and stores a new student, then recomputes the counts
// of every course it is enrolled in.
func (s *StudentService) CreateStudent(ctx context.Context, student models.Student) (models.Student, error) {
	student.ID = assignID(student.ID)
	student.Name = strings.TrimSpace(student.Name)
	student.Email = strings.TrimSpace(student.Email)
	student.EnrolledCourses = models.UniqueStrings(student.EnrolledCourses)

	if err := validation.Struct(student); err != nil {
		return models.Student{}, err
	}
	if err := ensureAbsent(ctx, s.students, "student", student.ID); err != nil {
		return models.Student{}, err
	}

	created, err := s.students.Create(ctx, student)
	if err != nil {
		return models.Student{}, fmt.Errorf("error creating student: %w", err)
	}

	if _, err := s.enrollment.RecomputeCourses(ctx, created.EnrolledCourses...); err != nil {
		return created, err
	}
	return created, nil
}

// UpdateStudent merges patch into the stored student. When the course list
// changes, every added or removed course is recomputed.
func (s *StudentService) UpdateStudent(ctx context.Context, id string, patch models.StudentPatch) (models.Student, error) {
	if err := validation.Struct(patch); err != nil {
		return models.Student{}, err
	}
	if patch.EnrolledCourses != nil {
		unique := models.UniqueStrings(*patch.EnrolledCourses)
		patch.EnrolledCourses = &unique
	}

	var before []string
	updated, err := s.students.Update(ctx, id, models.PatchFunc[models.Student](func(st *models.Student) {
		before = append([]string(nil), st.EnrolledCourses...)
		patch.Apply(st)
	}))
	if err != nil {
		return models.Student{}, err
	}

	if patch.EnrolledCourses != nil {
		touched := append(before, updated.EnrolledCourses...)
		if _, err := s.enrollment.RecomputeCourses(ctx, touched...); err != nil {
			return updated, err
		}
	}
	return updated, nil
}

// DeleteStudent removes the student and recomputes the courses it was enrolled in
func (s *StudentService) DeleteStudent(ctx context.Context, id string) error {
	existing, err := s.students.GetByID(ctx, id)
	if err != nil {
		return err
	}

	removed, err := s.students.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("error deleting student: %w", err)
	}
	if !removed {
		return fmt.Errorf("%w: id %s", apperrors.ErrStudentNotFound, id)
	}

	_, err = s.enrollment.RecomputeCourses(ctx, existing.EnrolledCourses...)
	return err
}

func (s *StudentService) all(ctx context.Context) ([]models.Student, error) {
	students, err := s.students.List(ctx)
	if err != nil {
		return nil, err
	}
	return Dedupe(students), nil
}
