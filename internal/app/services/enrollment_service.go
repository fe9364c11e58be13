package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/yigit/unidash/internal/app/models"
	"github.com/yigit/unidash/internal/app/repositories"
	"github.com/yigit/unidash/internal/pkg/apperrors"
	"github.com/yigit/unidash/internal/pkg/logger"
	"github.com/yigit/unidash/internal/pkg/metrics"
)

// EnrollmentResult reports the outcome of a single enrollment change
type EnrollmentResult struct {
	StudentID       string `json:"studentId"`
	CourseID        string `json:"courseId"`
	Enrolled        bool   `json:"enrolled"`
	Changed         bool   `json:"changed"`
	EnrollmentCount int    `json:"enrollmentCount"`
}

// BulkEnrollmentResult reports the outcome of a bulk enrollment change
type BulkEnrollmentResult struct {
	CourseID        string   `json:"courseId"`
	Enrolled        bool     `json:"enrolled"`
	UpdatedCount    int      `json:"updatedCount"`
	EnrollmentCount int      `json:"enrollmentCount"`
	MissingStudents []string `json:"missingStudents"`
}

// EnrollmentCorrection is one course whose stored count disagreed with its students
type EnrollmentCorrection struct {
	CourseID string `json:"courseId"`
	Previous int    `json:"previous"`
	Current  int    `json:"current"`
}

// EnrollmentService keeps Student.enrolledCourses and Course.enrollmentCount consistent.
// Counts are always recomputed from the full student set, never incremented.
type EnrollmentService struct {
	students repositories.RecordStore[models.Student]
	courses  repositories.RecordStore[models.Course]
	log      zerolog.Logger
}

// NewEnrollmentService creates a new enrollment service instance
func NewEnrollmentService(repos *repositories.Repositories) *EnrollmentService {
	return &EnrollmentService{
		students: repos.Students,
		courses:  repos.Courses,
		log:      logger.Component("enrollment"),
	}
}

// SetEnrollment adds or removes courseID on the student's persisted record and then
// recomputes the course's enrollmentCount. A missing student or course is tolerated.
func (s *EnrollmentService) SetEnrollment(ctx context.Context, studentID, courseID string, enrolled bool) (EnrollmentResult, error) {
	result := EnrollmentResult{StudentID: studentID, CourseID: courseID, Enrolled: enrolled}

	changed, err := s.toggle(ctx, studentID, courseID, enrolled)
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		s.log.Warn().Str("studentId", studentID).Str("courseId", courseID).
			Msg("Enrollment references a missing student, skipping student side")
	case err != nil:
		return result, err
	}
	result.Changed = changed

	counts, err := s.RecomputeCourses(ctx, courseID)
	if err != nil {
		return result, err
	}
	result.EnrollmentCount = counts[courseID]
	return result, nil
}

// BulkSetEnrollment applies SetEnrollment to each student, re-reading each one from the
// store, and recomputes the course count once at the end. UpdatedCount only counts
// students whose enrollment actually changed.
func (s *EnrollmentService) BulkSetEnrollment(ctx context.Context, studentIDs []string, courseID string, enrolled bool) (BulkEnrollmentResult, error) {
	result := BulkEnrollmentResult{CourseID: courseID, Enrolled: enrolled, MissingStudents: []string{}}

	var failure error
	for _, id := range models.UniqueStrings(studentIDs) {
		changed, err := s.toggle(ctx, id, courseID, enrolled)
		if errors.Is(err, apperrors.ErrNotFound) {
			s.log.Warn().Str("studentId", id).Str("courseId", courseID).Msg("Bulk enrollment skipped a missing student")
			result.MissingStudents = append(result.MissingStudents, id)
			continue
		}
		if err != nil {
			failure = fmt.Errorf("bulk enrollment stopped at student %s: %w", id, err)
			break
		}
		if changed {
			result.UpdatedCount++
		}
	}

	// Recompute even after a failure so students already written are reflected.
	counts, err := s.RecomputeCourses(ctx, courseID)
	if err != nil || failure != nil {
		return result, errors.Join(failure, err)
	}
	result.EnrollmentCount = counts[courseID]
	return result, nil
}

// RecomputeCourses recounts enrolled students for every given course and persists the
// counts. Each count is taken while the course record is locked, so the last writer
// always stores a count from the latest student state. Missing courses are counted
// but not stored.
func (s *EnrollmentService) RecomputeCourses(ctx context.Context, courseIDs ...string) (map[string]int, error) {
	counts := make(map[string]int, len(courseIDs))
	for _, courseID := range models.UniqueStrings(courseIDs) {
		_, count, err := s.recompute(ctx, courseID)
		if err != nil {
			return nil, err
		}
		counts[courseID] = count
	}
	return counts, nil
}

// ReconcileAll recomputes every course's count and returns the ones that had drifted.
func (s *EnrollmentService) ReconcileAll(ctx context.Context) ([]EnrollmentCorrection, error) {
	courses, err := s.courses.List(ctx)
	if err != nil {
		return nil, err
	}

	corrections := make([]EnrollmentCorrection, 0)
	for _, c := range Dedupe(courses) {
		previous, count, err := s.recompute(ctx, c.ID)
		if err != nil {
			return corrections, err
		}
		if previous == count {
			continue
		}
		metrics.EnrollmentDriftCorrectedTotal.Inc()
		corrections = append(corrections, EnrollmentCorrection{CourseID: c.ID, Previous: previous, Current: count})
	}

	if len(corrections) > 0 {
		s.log.Info().Int("corrected", len(corrections)).Msg("Reconciled enrollment counts")
	}
	return corrections, nil
}

// recompute scans the students inside the course's read-modify-write and stores the
// count. It returns the count stored before and after.
func (s *EnrollmentService) recompute(ctx context.Context, courseID string) (int, int, error) {
	var previous, count int
	_, err := s.courses.UpdateFunc(ctx, courseID, func(ctx context.Context, c *models.Course) error {
		n, err := s.countEnrolled(ctx, courseID)
		if err != nil {
			return err
		}
		previous, count = c.EnrollmentCount, n
		c.EnrollmentCount = n
		return nil
	})
	if errors.Is(err, apperrors.ErrNotFound) {
		s.log.Warn().Str("courseId", courseID).Msg("Enrollment references a missing course, count not stored")
		n, err := s.countEnrolled(ctx, courseID)
		return 0, n, err
	}
	if err != nil {
		return 0, 0, err
	}

	metrics.EnrollmentRecomputesTotal.Inc()
	s.log.Debug().Str("courseId", courseID).Int("enrollmentCount", count).Msg("Recomputed enrollment count")
	return previous, count, nil
}

// countEnrolled is the number of distinct students listing courseID.
func (s *EnrollmentService) countEnrolled(ctx context.Context, courseID string) (int, error) {
	students, err := s.students.List(ctx)
	if err != nil {
		return 0, err
	}
	return countEnrollments(Dedupe(students))[courseID], nil
}

// toggle edits the student's course list inside the store's read-modify-write,
// so the change always applies to the latest persisted list.
func (s *EnrollmentService) toggle(ctx context.Context, studentID, courseID string, enrolled bool) (bool, error) {
	var changed bool
	_, err := s.students.Update(ctx, studentID, models.PatchFunc[models.Student](func(st *models.Student) {
		st.EnrolledCourses, changed = withEnrollment(st.EnrolledCourses, courseID, enrolled)
	}))
	if err != nil {
		return false, err
	}
	return changed, nil
}

// withEnrollment returns the deduplicated course list with courseID present or absent,
// and whether courseID's membership changed.
func withEnrollment(courses []string, courseID string, enrolled bool) ([]string, bool) {
	out := models.UniqueStrings(courses)
	was := models.ContainsString(out, courseID)

	switch {
	case enrolled && !was:
		return append(out, courseID), true
	case !enrolled && was:
		kept := out[:0]
		for _, id := range out {
			if id != courseID {
				kept = append(kept, id)
			}
		}
		return kept, true
	default:
		return out, false
	}
}

// countEnrollments maps course id to the number of distinct students listing it.
func countEnrollments(students []models.Student) map[string]int {
	counts := make(map[string]int)
	for _, st := range students {
		for _, courseID := range models.UniqueStrings(st.EnrolledCourses) {
			counts[courseID]++
		}
	}
	return counts
}
