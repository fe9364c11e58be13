package seed

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/unidash/internal/app/models"
	"github.com/yigit/unidash/internal/app/repositories"
	"github.com/yigit/unidash/internal/app/services"
	"github.com/yigit/unidash/internal/pkg/validation"
)

func TestDataSetIsValid(t *testing.T) {
	for _, s := range Students {
		assert.NoError(t, validation.Struct(s), "student %s", s.ID)
	}
	for _, c := range Courses {
		assert.NoError(t, validation.Struct(c), "course %s", c.ID)
	}
	for _, f := range Faculty {
		assert.NoError(t, validation.Struct(f), "faculty %s", f.ID)
	}
	for _, g := range Grades {
		assert.NoError(t, validation.Struct(g), "grade %s", g.ID)
	}
}

func TestCreateDefaultData(t *testing.T) {
	ctx := context.Background()
	repos := repositories.NewMemoryRepositories()
	svc := services.NewServices(repos)

	require.NoError(t, CreateDefaultData(ctx, repos, svc, zerolog.Nop()))

	students, err := repos.Students.List(ctx)
	require.NoError(t, err)
	assert.Len(t, students, len(Students))

	// Counts come from the students' lists.
	want := map[string]int{}
	for _, s := range Students {
		for _, id := range models.UniqueStrings(s.EnrolledCourses) {
			want[id]++
		}
	}
	courses, err := repos.Courses.List(ctx)
	require.NoError(t, err)
	require.Len(t, courses, len(Courses))
	for _, c := range courses {
		assert.Equal(t, want[c.ID], c.EnrollmentCount, "course %s", c.ID)
	}

	t.Run("non-empty store is left alone", func(t *testing.T) {
		require.NoError(t, CreateDefaultData(ctx, repos, svc, zerolog.Nop()))
		again, err := repos.Students.List(ctx)
		require.NoError(t, err)
		assert.Len(t, again, len(Students))
	})
}
