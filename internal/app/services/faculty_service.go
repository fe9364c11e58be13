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

// FacultyService handles faculty-related operations.
// coursesTeaching is never stored; it is joined from Course.facultyIds on every read.
type FacultyService struct {
	faculty repositories.RecordStore[models.Faculty]
	courses repositories.RecordStore[models.Course]
}

// NewFacultyService creates a new faculty service instance
func NewFacultyService(repos *repositories.Repositories) *FacultyService {
	return &FacultyService{
		faculty: repos.Faculty,
		courses: repos.Courses,
	}
}

// ListFaculty returns every faculty member, optionally restricted to one department
func (s *FacultyService) ListFaculty(ctx context.Context, department string) ([]models.Faculty, error) {
	members, err := s.faculty.List(ctx)
	if err != nil {
		return nil, err
	}
	teaching, err := s.teachingIndex(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]models.Faculty, 0, len(members))
	for _, f := range Dedupe(members) {
		if department != "" && f.Department != department {
			continue
		}
		out = append(out, withTeaching(f, teaching))
	}
	return out, nil
}

// GetFacultyByID retrieves a faculty member with the courses they teach
func (s *FacultyService) GetFacultyByID(ctx context.Context, id string) (models.Faculty, error) {
	f, err := s.faculty.GetByID(ctx, id)
	if err != nil {
		return models.Faculty{}, err
	}
	return s.join(ctx, f)
}

// CreateFaculty validates and stores a new faculty member
func (s *FacultyService) CreateFaculty(ctx context.Context, f models.Faculty) (models.Faculty, error) {
	f.ID = assignID(f.ID)
	f.Email = strings.TrimSpace(f.Email)
	f.CoursesTeaching = nil

	if err := validation.Struct(f); err != nil {
		return models.Faculty{}, err
	}
	if err := ensureAbsent(ctx, s.faculty, "faculty", f.ID); err != nil {
		return models.Faculty{}, err
	}

	created, err := s.faculty.Create(ctx, f)
	if err != nil {
		return models.Faculty{}, fmt.Errorf("error creating faculty: %w", err)
	}
	return s.join(ctx, created)
}

// UpdateFaculty merges patch into the stored faculty member
func (s *FacultyService) UpdateFaculty(ctx context.Context, id string, patch models.FacultyPatch) (models.Faculty, error) {
	if err := validation.Struct(patch); err != nil {
		return models.Faculty{}, err
	}
	updated, err := s.faculty.Update(ctx, id, patch)
	if err != nil {
		return models.Faculty{}, err
	}
	return s.join(ctx, updated)
}

// DeleteFaculty removes the faculty member. Course.facultyIds entries are kept.
func (s *FacultyService) DeleteFaculty(ctx context.Context, id string) error {
	removed, err := s.faculty.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("error deleting faculty: %w", err)
	}
	if !removed {
		return fmt.Errorf("%w: id %s", apperrors.ErrFacultyNotFound, id)
	}
	return nil
}

func (s *FacultyService) join(ctx context.Context, f models.Faculty) (models.Faculty, error) {
	teaching, err := s.teachingIndex(ctx)
	if err != nil {
		return models.Faculty{}, err
	}
	return withTeaching(f, teaching), nil
}

// teachingIndex maps faculty id to the ids of the courses listing it, in course order.
func (s *FacultyService) teachingIndex(ctx context.Context) (map[string][]string, error) {
	courses, err := s.courses.List(ctx)
	if err != nil {
		return nil, err
	}
	return TeachingIndex(Dedupe(courses)), nil
}

// TeachingIndex derives the faculty side of the course-faculty relation.
func TeachingIndex(courses []models.Course) map[string][]string {
	index := make(map[string][]string)
	for _, c := range courses {
		for _, fid := range models.UniqueStrings(c.FacultyIDs) {
			index[fid] = append(index[fid], c.ID)
		}
	}
	return index
}

func withTeaching(f models.Faculty, index map[string][]string) models.Faculty {
	f.CoursesTeaching = append([]string{}, index[f.ID]...)
	return f
}
