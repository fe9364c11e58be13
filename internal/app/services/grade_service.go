package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/yigit/unidash/internal/app/models"
	"github.com/yigit/unidash/internal/app/repositories"
	"github.com/yigit/unidash/internal/pkg/apperrors"
	"github.com/yigit/unidash/internal/pkg/logger"
	"github.com/yigit/unidash/internal/pkg/validation"
)

// GradeFilter restricts a grade listing. Empty fields are ignored.
type GradeFilter struct {
	StudentID string
	CourseID  string
}

// GradeService handles grade-related operations.
// At most one grade is kept per (studentId, courseId) pair.
type GradeService struct {
	grades repositories.RecordStore[models.Grade]
}

// NewGradeService creates a new grade service instance
func NewGradeService(repos *repositories.Repositories) *GradeService {
	return &GradeService{grades: repos.Grades}
}

// ListGrades returns the deduplicated grades matching filter
func (s *GradeService) ListGrades(ctx context.Context, filter GradeFilter) ([]models.Grade, error) {
	all, err := s.grades.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]models.Grade, 0)
	for _, g := range Dedupe(all) {
		if filter.StudentID != "" && g.StudentID != filter.StudentID {
			continue
		}
		if filter.CourseID != "" && g.CourseID != filter.CourseID {
			continue
		}
		out = append(out, g)
	}
	return out, nil
}

// GetGradeByID retrieves a grade by logical id
func (s *GradeService) GetGradeByID(ctx context.Context, id string) (models.Grade, error) {
	return s.grades.GetByID(ctx, id)
}

// SubmitGrade records a grade for its (studentId, courseId) pair. An existing
// grade for the pair is overwritten instead of adding a second one; created
// reports which case applied. The letter is derived when omitted.
func (s *GradeService) SubmitGrade(ctx context.Context, grade models.Grade) (saved models.Grade, created bool, err error) {
	grade.StudentID = strings.TrimSpace(grade.StudentID)
	grade.CourseID = strings.TrimSpace(grade.CourseID)
	if strings.TrimSpace(grade.Grade) == "" {
		grade.Grade = LetterGrade(grade.NumericGrade)
	}

	if err := validation.Struct(grade); err != nil {
		return models.Grade{}, false, err
	}

	pair, err := s.ListGrades(ctx, GradeFilter{StudentID: grade.StudentID, CourseID: grade.CourseID})
	if err != nil {
		return models.Grade{}, false, err
	}

	if len(pair) == 0 {
		grade.ID = assignID(grade.ID)
		if err := ensureAbsent(ctx, s.grades, "grade", grade.ID); err != nil {
			return models.Grade{}, false, err
		}
		saved, err := s.grades.Create(ctx, grade)
		if err != nil {
			return models.Grade{}, false, fmt.Errorf("error creating grade: %w", err)
		}
		return saved, true, nil
	}

	existing := pair[0]
	saved, err = s.grades.Update(ctx, existing.ID, models.GradePatch{
		Grade:        &grade.Grade,
		NumericGrade: &grade.NumericGrade,
		Semester:     &grade.Semester,
	})
	if err != nil {
		return models.Grade{}, false, err
	}

	// Older writes may have left more than one grade for the pair.
	for _, extra := range pair[1:] {
		if _, err := s.grades.Delete(ctx, extra.ID); err != nil {
			return saved, false, fmt.Errorf("error removing extra grade %s: %w", extra.ID, err)
		}
		logger.Warn().Str("gradeId", extra.ID).Str("studentId", grade.StudentID).Str("courseId", grade.CourseID).
			Msg("Removed extra grade for student and course")
	}
	return saved, false, nil
}

// UpdateGrade merges patch into the stored grade. Moving a grade onto a pair that
// already has a different grade is a conflict. A new numericGrade without a
// letter re-derives the letter.
func (s *GradeService) UpdateGrade(ctx context.Context, id string, patch models.GradePatch) (models.Grade, error) {
	if err := validation.Struct(patch); err != nil {
		return models.Grade{}, err
	}

	current, err := s.grades.GetByID(ctx, id)
	if err != nil {
		return models.Grade{}, err
	}

	next := current
	patch.Apply(&next)
	if next.StudentID != current.StudentID || next.CourseID != current.CourseID {
		pair, err := s.ListGrades(ctx, GradeFilter{StudentID: next.StudentID, CourseID: next.CourseID})
		if err != nil {
			return models.Grade{}, err
		}
		for _, g := range pair {
			if g.ID != id {
				return models.Grade{}, apperrors.ErrGradeAlreadyExists
			}
		}
	}

	if patch.NumericGrade != nil && patch.Grade == nil {
		letter := LetterGrade(*patch.NumericGrade)
		patch.Grade = &letter
	}
	return s.grades.Update(ctx, id, patch)
}

// DeleteGrade removes the grade
func (s *GradeService) DeleteGrade(ctx context.Context, id string) error {
	removed, err := s.grades.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("error deleting grade: %w", err)
	}
	if !removed {
		return fmt.Errorf("%w: id %s", apperrors.ErrGradeNotFound, id)
	}
	return nil
}
