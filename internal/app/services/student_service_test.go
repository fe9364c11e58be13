package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/unidash/internal/app/models"
	"github.com/yigit/unidash/internal/pkg/apperrors"
)

func validStudent(id string, courses ...string) models.Student {
	mailbox := id
	if mailbox == "" {
		mailbox = "new"
	}
	return models.Student{
		ID: id, Name: "Student " + id, Email: mailbox + "@uni.edu", GPA: 3.2, Year: 2, Major: "Physics",
		EnrolledCourses: courses,
	}
}

func TestCreateStudent(t *testing.T) {
	ctx := context.Background()
	svc, repos := newTestServices(t)
	seedCourses(t, repos, models.Course{ID: "c1"}, models.Course{ID: "c2"})

	created, err := svc.Students.CreateStudent(ctx, validStudent("", "c1", "c2", "c1"))
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID, "an id is minted when missing")
	assert.Equal(t, []string{"c1", "c2"}, created.EnrolledCourses)
	assert.Equal(t, 1, storedCount(t, repos, "c1"))
	assert.Equal(t, 1, storedCount(t, repos, "c2"))

	_, err = svc.Students.CreateStudent(ctx, validStudent(created.ID))
	assert.True(t, errors.Is(err, apperrors.ErrConflict))
}

func TestCreateStudent_CollectsAllViolations(t *testing.T) {
	svc, _ := newTestServices(t)

	_, err := svc.Students.CreateStudent(context.Background(), models.Student{
		Name: " ", Email: "not-an-email", GPA: 4.2, Year: 9,
	})
	require.Error(t, err)

	vErr, ok := apperrors.AsValidationError(err)
	require.True(t, ok)

	fields := make([]string, 0, len(vErr.Fields))
	for _, f := range vErr.Fields {
		fields = append(fields, f.Field)
	}
	assert.ElementsMatch(t, []string{"name", "email", "gpa", "year", "major"}, fields)
}

func TestUpdateStudent_RecomputesTouchedCourses(t *testing.T) {
	ctx := context.Background()
	svc, repos := newTestServices(t)
	seedCourses(t, repos, models.Course{ID: "c1"}, models.Course{ID: "c2"}, models.Course{ID: "c3"})

	_, err := svc.Students.CreateStudent(ctx, validStudent("s1", "c1", "c2"))
	require.NoError(t, err)

	next := []string{"c2", "c3", "c3"}
	gpa := 3.9
	updated, err := svc.Students.UpdateStudent(ctx, "s1", models.StudentPatch{EnrolledCourses: &next, GPA: &gpa})
	require.NoError(t, err)
	assert.Equal(t, []string{"c2", "c3"}, updated.EnrolledCourses)
	assert.Equal(t, 3.9, updated.GPA)
	assert.Equal(t, "Student s1", updated.Name)

	assert.Equal(t, 0, storedCount(t, repos, "c1"))
	assert.Equal(t, 1, storedCount(t, repos, "c2"))
	assert.Equal(t, 1, storedCount(t, repos, "c3"))
}

func TestUpdateStudent_Errors(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestServices(t)
	_, err := svc.Students.CreateStudent(ctx, validStudent("s1"))
	require.NoError(t, err)

	bad := 7.0
	_, err = svc.Students.UpdateStudent(ctx, "s1", models.StudentPatch{GPA: &bad})
	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))

	empty := ""
	_, err = svc.Students.UpdateStudent(ctx, "s1", models.StudentPatch{Name: &empty})
	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed), "a provided field must still be valid")

	name := "x"
	_, err = svc.Students.UpdateStudent(ctx, "missing", models.StudentPatch{Name: &name})
	assert.True(t, errors.Is(err, apperrors.ErrStudentNotFound))
}

func TestDeleteStudent(t *testing.T) {
	ctx := context.Background()
	svc, repos := newTestServices(t)
	seedCourses(t, repos, models.Course{ID: "c1"})

	_, err := svc.Students.CreateStudent(ctx, validStudent("s1", "c1"))
	require.NoError(t, err)
	require.Equal(t, 1, storedCount(t, repos, "c1"))

	require.NoError(t, svc.Students.DeleteStudent(ctx, "s1"))
	assert.Equal(t, 0, storedCount(t, repos, "c1"))

	err = svc.Students.DeleteStudent(ctx, "s1")
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestListStudents(t *testing.T) {
	ctx := context.Background()
	svc, repos := newTestServices(t)
	seedStudents(t, repos, sampleStudents()...)
	seedStudents(t, repos, models.Student{ID: "1", Name: "Shadow Alice", Major: "Physics"})

	page, total, err := svc.Students.ListStudents(ctx, StudentQuery{
		ListQuery: ListQuery{Page: 1, PageSize: 2, Sort: "name"},
		Filter:    StudentFilter{Major: "Physics"},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, total, "the shadow duplicate of 1 is not counted")
	assert.Equal(t, []string{"2", "3"}, ids(page))

	_, _, err = svc.Students.ListStudents(ctx, StudentQuery{ListQuery: ListQuery{Sort: "shoeSize"}})
	assert.True(t, errors.Is(err, apperrors.ErrBadRequest))
}

func TestTopStudents(t *testing.T) {
	ctx := context.Background()
	svc, repos := newTestServices(t)
	seedStudents(t, repos,
		models.Student{ID: "a", GPA: 3.1},
		models.Student{ID: "b", GPA: 3.9},
		models.Student{ID: "c", GPA: 3.5},
	)

	top, err := svc.Students.TopStudents(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c"}, ids(top))
}

func TestGetStudentProgress(t *testing.T) {
	ctx := context.Background()
	svc, repos := newTestServices(t)
	seedStudents(t, repos, validStudent("s1"))
	for _, g := range []models.Grade{
		{ID: "g1", StudentID: "s1", CourseID: "c1", NumericGrade: 90},
		{ID: "g2", StudentID: "s1", CourseID: "c2", NumericGrade: 96},
		{ID: "g2", StudentID: "s1", CourseID: "c2", NumericGrade: 10},
		{ID: "g3", StudentID: "s2", CourseID: "c1", NumericGrade: 50},
	} {
		_, err := repos.Grades.Create(ctx, g)
		require.NoError(t, err)
	}

	p, err := svc.Students.GetStudentProgress(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 2, p.TotalCourses)
	assert.InDelta(t, 93, p.AverageGrade, 1e-9)
	assert.Equal(t, "A", p.LetterGrade)

	_, err = svc.Students.GetStudentProgress(ctx, "nobody")
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}
