package services

import (
	"cmp"
	"slices"
	"strings"

	"github.com/yigit/unidash/internal/app/models"
)

// Dedupe keeps the first record seen for each logical id, preserving input order.
func Dedupe[T models.Entity](records []T) []T {
	out := make([]T, 0, len(records))
	seen := make(map[string]struct{}, len(records))
	for _, r := range records {
		id := r.LogicalID()
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, r)
	}
	return out
}

// StudentFilter holds the optional exact-match clauses of FilterStudents.
// A nil or empty clause is absent.
type StudentFilter struct {
	CourseID string
	Year     *int
	Major    string
}

// FilterStudents keeps students matching the search term (case-insensitive
// substring of name, email or major) and every present filter clause.
func FilterStudents(students []models.Student, search string, filter StudentFilter) []models.Student {
	term := strings.ToLower(strings.TrimSpace(search))
	out := make([]models.Student, 0, len(students))
	for _, s := range students {
		if term != "" && !containsFold(term, s.Name, s.Email, s.Major) {
			continue
		}
		if filter.CourseID != "" && !s.IsEnrolledIn(filter.CourseID) {
			continue
		}
		if filter.Year != nil && s.Year != *filter.Year {
			continue
		}
		if filter.Major != "" && s.Major != filter.Major {
			continue
		}
		out = append(out, s)
	}
	return out
}

// FilterCourses keeps courses whose name or code contains search, restricted to
// department when one is given.
func FilterCourses(courses []models.Course, search, department string) []models.Course {
	term := strings.ToLower(strings.TrimSpace(search))
	out := make([]models.Course, 0, len(courses))
	for _, c := range courses {
		if term != "" && !containsFold(term, c.Name, c.Code) {
			continue
		}
		if department != "" && c.Department != department {
			continue
		}
		out = append(out, c)
	}
	return out
}

func containsFold(lowerTerm string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), lowerTerm) {
			return true
		}
	}
	return false
}

// Paginate returns the 1-indexed page of items. page and pageSize below 1 are
// treated as 1; a page past the end is empty.
func Paginate[T any](items []T, page, pageSize int) []T {
	page = max(page, 1)
	pageSize = max(pageSize, 1)

	// Compare page indexes rather than offsets so huge pages cannot overflow.
	if len(items) == 0 || page-1 > (len(items)-1)/pageSize {
		return []T{}
	}
	start := (page - 1) * pageSize
	end := start + min(pageSize, len(items)-start)
	return items[start:end]
}

// Field compares two records on one attribute, cmp.Compare style.
type Field[T any] func(a, b T) int

// By builds a Field from an ordered key.
func By[T any, K cmp.Ordered](key func(T) K) Field[T] {
	return func(a, b T) int {
		return cmp.Compare(key(a), key(b))
	}
}

// SortByField returns a stably sorted copy of items. Ties keep input order in
// both directions.
func SortByField[T any](items []T, field Field[T], descending bool) []T {
	out := slices.Clone(items)
	if out == nil {
		return []T{}
	}
	if descending {
		slices.SortStableFunc(out, func(a, b T) int { return field(b, a) })
	} else {
		slices.SortStableFunc(out, field)
	}
	return out
}

// TopN returns the n largest items by field, ties in input order.
func TopN[T any](items []T, field Field[T], n int) []T {
	sorted := SortByField(items, field, true)
	if n < 0 {
		n = 0
	}
	if n >= len(sorted) {
		return sorted
	}
	return sorted[:n]
}

// UniqueValues returns the distinct values of key across items, sorted ascending.
func UniqueValues[T any, V cmp.Ordered](items []T, key func(T) V) []V {
	seen := make(map[V]struct{}, len(items))
	out := make([]V, 0)
	for _, it := range items {
		v := key(it)
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	slices.Sort(out)
	return out
}

// StudentFields are the sortable student attributes, keyed by their JSON name.
var StudentFields = map[string]Field[models.Student]{
	"gpa":   By(func(s models.Student) float64 { return s.GPA }),
	"year":  By(func(s models.Student) int { return s.Year }),
	"name":  By(func(s models.Student) string { return s.Name }),
	"major": By(func(s models.Student) string { return s.Major }),
}

// CourseFields are the sortable course attributes, keyed by their JSON name.
var CourseFields = map[string]Field[models.Course]{
	"enrollmentCount": By(func(c models.Course) int { return c.EnrollmentCount }),
	"credits":         By(func(c models.Course) int { return c.Credits }),
	"name":            By(func(c models.Course) string { return c.Name }),
	"code":            By(func(c models.Course) string { return c.Code }),
}

// CoursePerformance is the grade average of one course.
// StudentCount zero means there is no data, not a zero average.
type CoursePerformance struct {
	Course       models.Course `json:"course"`
	AverageGrade float64       `json:"averageGrade"`
	StudentCount int           `json:"studentCount"`
}

// CoursePerformanceReport averages numericGrade per course and sorts by average, highest first.
func CoursePerformanceReport(courses []models.Course, grades []models.Grade) []CoursePerformance {
	type acc struct {
		sum   float64
		count int
	}
	byCourse := make(map[string]*acc, len(courses))
	for _, g := range grades {
		a := byCourse[g.CourseID]
		if a == nil {
			a = &acc{}
			byCourse[g.CourseID] = a
		}
		a.sum += g.NumericGrade
		a.count++
	}

	out := make([]CoursePerformance, 0, len(courses))
	for _, c := range courses {
		p := CoursePerformance{Course: c}
		if a := byCourse[c.ID]; a != nil && a.count > 0 {
			p.AverageGrade = a.sum / float64(a.count)
			p.StudentCount = a.count
		}
		out = append(out, p)
	}

	slices.SortStableFunc(out, func(a, b CoursePerformance) int {
		return cmp.Compare(b.AverageGrade, a.AverageGrade)
	})
	return out
}
