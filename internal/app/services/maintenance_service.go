package services

import (
	"context"
	"fmt"

	"github.com/yigit/unidash/internal/app/models"
	"github.com/yigit/unidash/internal/app/repositories"
	"github.com/yigit/unidash/internal/pkg/logger"
	"github.com/yigit/unidash/internal/pkg/metrics"
)

// DedupeReport counts the shadow records removed per collection
type DedupeReport struct {
	DuplicatesRemoved map[models.Kind]int `json:"duplicatesRemoved"`
}

// MaintenanceService runs explicit, operator-triggered repair jobs
type MaintenanceService struct {
	repos      *repositories.Repositories
	enrollment *EnrollmentService
}

// NewMaintenanceService creates a new maintenance service instance
func NewMaintenanceService(repos *repositories.Repositories, enrollment *EnrollmentService) *MaintenanceService {
	return &MaintenanceService{repos: repos, enrollment: enrollment}
}

// RemoveDuplicates physically deletes every record whose logical id already
// appeared earlier in its collection, keeping the same record reads keep.
func (s *MaintenanceService) RemoveDuplicates(ctx context.Context) (DedupeReport, error) {
	report := DedupeReport{DuplicatesRemoved: make(map[models.Kind]int, len(models.Kinds))}

	jobs := map[models.Kind]func(context.Context) (int, error){
		models.KindStudent: s.repos.Students.RemoveDuplicates,
		models.KindCourse:  s.repos.Courses.RemoveDuplicates,
		models.KindFaculty: s.repos.Faculty.RemoveDuplicates,
		models.KindGrade:   s.repos.Grades.RemoveDuplicates,
	}

	for _, kind := range models.Kinds {
		removed, err := jobs[kind](ctx)
		if err != nil {
			return report, fmt.Errorf("error removing duplicate %s: %w", kind, err)
		}
		report.DuplicatesRemoved[kind] = removed
		metrics.DuplicatesRemovedTotal.WithLabelValues(string(kind)).Add(float64(removed))
	}

	logger.Info().Interface("duplicatesRemoved", report.DuplicatesRemoved).Msg("Duplicate cleanup finished")
	return report, nil
}

// ReconcileEnrollments recomputes every course's enrollmentCount
func (s *MaintenanceService) ReconcileEnrollments(ctx context.Context) ([]EnrollmentCorrection, error) {
	return s.enrollment.ReconcileAll(ctx)
}
