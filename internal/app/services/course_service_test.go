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

func validCourse(id string, faculty ...string) models.Course {
	return models.Course{
		ID: id, Name: "Course " + id, Code: "CS" + id, Department: "Computer Science",
		Credits: 3, FacultyIDs: faculty, Semester: "Fall 2025",
	}
}

func TestCreateCourse_DerivesEnrollmentCount(t *testing.T) {
	ctx := context.Background()
	svc, repos := newTestServices(t)
	seedStudents(t, repos,
		models.Student{ID: "s1", EnrolledCourses: []string{"c9"}},
		models.Student{ID: "s2", EnrolledCourses: []string{"c9"}},
	)

	c := validCourse("c9", "f1", "f1")
	c.EnrollmentCount = 500
	created, err := svc.Courses.CreateCourse(ctx, c)
	require.NoError(t, err)
	assert.Equal(t, 2, created.EnrollmentCount)
	assert.Equal(t, []string{"f1"}, created.FacultyIDs)
	assert.Equal(t, 2, storedCount(t, repos, "c9"))

	_, err = svc.Courses.CreateCourse(ctx, validCourse("c9", "f1"))
	assert.True(t, errors.Is(err, apperrors.ErrConflict))
}

func TestCreateCourse_Validation(t *testing.T) {
	svc, _ := newTestServices(t)

	_, err := svc.Courses.CreateCourse(context.Background(), models.Course{Credits: 7})
	vErr, ok := apperrors.AsValidationError(err)
	require.True(t, ok)

	fields := make([]string, 0, len(vErr.Fields))
	for _, f := range vErr.Fields {
		fields = append(fields, f.Field)
	}
	assert.ElementsMatch(t, []string{"name", "code", "department", "credits", "facultyIds", "semester"}, fields)
}

func TestUpdateCourse_IgnoresEnrollmentCount(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestServices(t)
	_, err := svc.Courses.CreateCourse(ctx, validCourse("c1", "f1"))
	require.NoError(t, err)

	forged := 99
	credits := 4
	updated, err := svc.Courses.UpdateCourse(ctx, "c1", models.CoursePatch{Credits: &credits, EnrollmentCount: &forged})
	require.NoError(t, err)
	assert.Equal(t, 4, updated.Credits)
	assert.Zero(t, updated.EnrollmentCount)

	none := []string{}
	_, err = svc.Courses.UpdateCourse(ctx, "c1", models.CoursePatch{FacultyIDs: &none})
	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))
}

func TestCourseQueries(t *testing.T) {
	ctx := context.Background()
	svc, repos := newTestServices(t)
	seedCourses(t, repos,
		models.Course{ID: "c1", Name: "Algorithms", Code: "CS301", Department: "Computer Science", EnrollmentCount: 4},
		models.Course{ID: "c2", Name: "Optics", Code: "PHYS210", Department: "Physics", EnrollmentCount: 9},
		models.Course{ID: "c3", Name: "Compilers", Code: "CS402", Department: "Computer Science", EnrollmentCount: 9},
	)
	seedStudents(t, repos, models.Student{ID: "s1", EnrolledCourses: []string{"c1"}}, models.Student{ID: "s2"})

	page, total, err := svc.Courses.ListCourses(ctx, CourseQuery{
		ListQuery:  ListQuery{Search: "cs", Sort: "code", Descending: true, Page: 1, PageSize: 10},
		Department: "Computer Science",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Equal(t, []string{"c3", "c1"}, ids(page))

	popular, err := svc.Courses.PopularCourses(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"c2", "c3"}, ids(popular))

	enrolled, err := svc.Courses.GetEnrolledStudents(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, []string{"s1"}, ids(enrolled))

	_, err = svc.Courses.GetEnrolledStudents(ctx, "nope")
	assert.True(t, errors.Is(err, apperrors.ErrCourseNotFound))
}

func TestDeleteCourse_LeavesStudentReferences(t *testing.T) {
	ctx := context.Background()
	svc, repos := newTestServices(t)
	seedCourses(t, repos, validCourse("c1", "f1"))
	seedStudents(t, repos, models.Student{ID: "s1", EnrolledCourses: []string{"c1"}})

	require.NoError(t, svc.Courses.DeleteCourse(ctx, "c1"))
	assert.True(t, errors.Is(svc.Courses.DeleteCourse(ctx, "c1"), apperrors.ErrNotFound))

	s1, err := repos.Students.GetByID(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, []string{"c1"}, s1.EnrolledCourses)

	_, err = svc.Enrollment.SetEnrollment(ctx, "s1", "c1", false)
	assert.NoError(t, err, "a dangling course id can still be removed")
}
