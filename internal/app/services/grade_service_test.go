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

func TestSubmitGrade_Upsert(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestServices(t)

	first, created, err := svc.Grades.SubmitGrade(ctx, models.Grade{StudentID: "1", CourseID: "2", NumericGrade: 80, Semester: "Fall 2025"})
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "B-", first.Grade, "letter derived when omitted")

	second, created, err := svc.Grades.SubmitGrade(ctx, models.Grade{StudentID: "1", CourseID: "2", NumericGrade: 95, Semester: "Fall 2025"})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)

	pair, err := svc.Grades.ListGrades(ctx, GradeFilter{StudentID: "1", CourseID: "2"})
	require.NoError(t, err)
	require.Len(t, pair, 1)
	assert.Equal(t, 95.0, pair[0].NumericGrade)
	assert.Equal(t, "A", pair[0].Grade)
}

func TestSubmitGrade_CollapsesLegacyDuplicates(t *testing.T) {
	ctx := context.Background()
	svc, repos := newTestServices(t)
	for _, g := range []models.Grade{
		{ID: "old1", StudentID: "1", CourseID: "2", Grade: "C", NumericGrade: 74, Semester: "Fall"},
		{ID: "old2", StudentID: "1", CourseID: "2", Grade: "B", NumericGrade: 84, Semester: "Fall"},
	} {
		_, err := repos.Grades.Create(ctx, g)
		require.NoError(t, err)
	}

	saved, created, err := svc.Grades.SubmitGrade(ctx, models.Grade{StudentID: "1", CourseID: "2", Grade: "A-", NumericGrade: 91, Semester: "Fall"})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, "old1", saved.ID)

	all, err := repos.Grades.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "A-", all[0].Grade)
}

func TestSubmitGrade_Validation(t *testing.T) {
	svc, _ := newTestServices(t)

	_, _, err := svc.Grades.SubmitGrade(context.Background(), models.Grade{Grade: "E", NumericGrade: 120})
	vErr, ok := apperrors.AsValidationError(err)
	require.True(t, ok)

	fields := make([]string, 0, len(vErr.Fields))
	for _, f := range vErr.Fields {
		fields = append(fields, f.Field)
	}
	assert.ElementsMatch(t, []string{"studentId", "courseId", "grade", "numericGrade", "semester"}, fields)
}

func TestUpdateGrade(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestServices(t)

	a, _, err := svc.Grades.SubmitGrade(ctx, models.Grade{StudentID: "s1", CourseID: "c1", NumericGrade: 70, Semester: "Fall"})
	require.NoError(t, err)
	b, _, err := svc.Grades.SubmitGrade(ctx, models.Grade{StudentID: "s1", CourseID: "c2", NumericGrade: 70, Semester: "Fall"})
	require.NoError(t, err)

	n := 88.0
	updated, err := svc.Grades.UpdateGrade(ctx, a.ID, models.GradePatch{NumericGrade: &n})
	require.NoError(t, err)
	assert.Equal(t, "B+", updated.Grade, "letter follows the new numeric grade")

	c2 := "c2"
	_, err = svc.Grades.UpdateGrade(ctx, a.ID, models.GradePatch{CourseID: &c2})
	assert.True(t, errors.Is(err, apperrors.ErrConflict))

	c3 := "c3"
	moved, err := svc.Grades.UpdateGrade(ctx, b.ID, models.GradePatch{CourseID: &c3})
	require.NoError(t, err)
	assert.Equal(t, "c3", moved.CourseID)

	_, err = svc.Grades.UpdateGrade(ctx, "missing", models.GradePatch{NumericGrade: &n})
	assert.True(t, errors.Is(err, apperrors.ErrGradeNotFound))
}

func TestListAndDeleteGrades(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestServices(t)
	for _, g := range []models.Grade{
		{StudentID: "s1", CourseID: "c1", NumericGrade: 90, Semester: "Fall"},
		{StudentID: "s1", CourseID: "c2", NumericGrade: 80, Semester: "Fall"},
		{StudentID: "s2", CourseID: "c1", NumericGrade: 70, Semester: "Fall"},
	} {
		_, _, err := svc.Grades.SubmitGrade(ctx, g)
		require.NoError(t, err)
	}

	byStudent, err := svc.Grades.ListGrades(ctx, GradeFilter{StudentID: "s1"})
	require.NoError(t, err)
	assert.Len(t, byStudent, 2)

	byCourse, err := svc.Grades.ListGrades(ctx, GradeFilter{CourseID: "c1"})
	require.NoError(t, err)
	require.Len(t, byCourse, 2)

	require.NoError(t, svc.Grades.DeleteGrade(ctx, byCourse[0].ID))
	assert.True(t, errors.Is(svc.Grades.DeleteGrade(ctx, byCourse[0].ID), apperrors.ErrGradeNotFound))

	all, err := svc.Grades.ListGrades(ctx, GradeFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
