package services

import (
	"context"

	"github.com/yigit/unidash/internal/app/models"
	"github.com/yigit/unidash/internal/app/repositories"
	"golang.org/x/sync/errgroup"
)

// DashboardTopN is the size of the dashboard leaderboards
const DashboardTopN = 5

// Dashboard is the landing page summary
type Dashboard struct {
	TotalStudents  int              `json:"totalStudents"`
	TotalCourses   int              `json:"totalCourses"`
	TotalFaculty   int              `json:"totalFaculty"`
	TotalGrades    int              `json:"totalGrades"`
	TopStudents    []models.Student `json:"topStudents"`
	PopularCourses []models.Course  `json:"popularCourses"`
}

// FilterOptions lists the distinct values offered by the dashboard filters
type FilterOptions struct {
	Majors      []string `json:"majors"`
	Years       []int    `json:"years"`
	Departments []string `json:"departments"`
	Semesters   []string `json:"semesters"`
}

// ReportService computes read-only aggregates over full collection scans
type ReportService struct {
	repos *repositories.Repositories
}

// NewReportService creates a new report service instance
func NewReportService(repos *repositories.Repositories) *ReportService {
	return &ReportService{repos: repos}
}

type snapshot struct {
	students []models.Student
	courses  []models.Course
	faculty  []models.Faculty
	grades   []models.Grade
}

// load reads the four collections concurrently and deduplicates each one
func (s *ReportService) load(ctx context.Context) (snapshot, error) {
	var snap snapshot
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		all, err := s.repos.Students.List(ctx)
		snap.students = Dedupe(all)
		return err
	})
	g.Go(func() error {
		all, err := s.repos.Courses.List(ctx)
		snap.courses = Dedupe(all)
		return err
	})
	g.Go(func() error {
		all, err := s.repos.Faculty.List(ctx)
		snap.faculty = Dedupe(all)
		return err
	})
	g.Go(func() error {
		all, err := s.repos.Grades.List(ctx)
		snap.grades = Dedupe(all)
		return err
	})

	if err := g.Wait(); err != nil {
		return snapshot{}, err
	}
	return snap, nil
}

// GetDashboard returns totals and the top students and courses
func (s *ReportService) GetDashboard(ctx context.Context) (Dashboard, error) {
	snap, err := s.load(ctx)
	if err != nil {
		return Dashboard{}, err
	}

	return Dashboard{
		TotalStudents:  len(snap.students),
		TotalCourses:   len(snap.courses),
		TotalFaculty:   len(snap.faculty),
		TotalGrades:    len(snap.grades),
		TopStudents:    TopN(snap.students, StudentFields["gpa"], DashboardTopN),
		PopularCourses: TopN(snap.courses, CourseFields["enrollmentCount"], DashboardTopN),
	}, nil
}

// GetCoursePerformance averages grades per course, best first
func (s *ReportService) GetCoursePerformance(ctx context.Context) ([]CoursePerformance, error) {
	snap, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return CoursePerformanceReport(snap.courses, snap.grades), nil
}

// GetFilterOptions returns the sorted distinct field values used by list filters
func (s *ReportService) GetFilterOptions(ctx context.Context) (FilterOptions, error) {
	snap, err := s.load(ctx)
	if err != nil {
		return FilterOptions{}, err
	}

	semesters := append(
		UniqueValues(snap.courses, func(c models.Course) string { return c.Semester }),
		UniqueValues(snap.grades, func(g models.Grade) string { return g.Semester })...,
	)

	return FilterOptions{
		Majors:      UniqueValues(snap.students, func(st models.Student) string { return st.Major }),
		Years:       UniqueValues(snap.students, func(st models.Student) int { return st.Year }),
		Departments: UniqueValues(snap.courses, func(c models.Course) string { return c.Department }),
		Semesters:   UniqueValues(semesters, func(v string) string { return v }),
	}, nil
}
