package repositories

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/unidash/internal/app/migrations"
	"github.com/yigit/unidash/internal/app/models"
	"github.com/yigit/unidash/internal/db"
	"github.com/yigit/unidash/internal/pkg/apperrors"
)

func newSQLiteRepos(t *testing.T) *Repositories {
	t.Helper()

	lite, err := db.NewSQLiteDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, migrations.NewSQLiteMigrator(lite).Migrate(context.Background()))

	repos := NewSQLiteRepositories(lite)
	t.Cleanup(func() { _ = repos.Close() })
	return repos
}

func storeBackends() map[string]func(t *testing.T) *Repositories {
	return map[string]func(t *testing.T) *Repositories{
		"memory": func(t *testing.T) *Repositories { return NewMemoryRepositories() },
		"sqlite": newSQLiteRepos,
	}
}

func TestRecordStore_CRUD(t *testing.T) {
	for name, newRepos := range storeBackends() {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			store := newRepos(t).Students

			created, err := store.Create(ctx, models.Student{
				ID: "s1", Name: "Alice", Email: "alice@uni.edu", GPA: 3.5, Year: 2, Major: "Physics",
				EnrolledCourses: []string{"c1"},
			})
			require.NoError(t, err)
			assert.Equal(t, "s1", created.ID)

			got, err := store.GetByID(ctx, "s1")
			require.NoError(t, err)
			assert.Equal(t, created, got)

			name := "Alice Cooper"
			courses := []string{"c2", "c3"}
			updated, err := store.Update(ctx, "s1", models.StudentPatch{Name: &name, EnrolledCourses: &courses})
			require.NoError(t, err)
			assert.Equal(t, "Alice Cooper", updated.Name)
			assert.Equal(t, "alice@uni.edu", updated.Email, "omitted fields are retained")
			assert.Equal(t, []string{"c2", "c3"}, updated.EnrolledCourses, "slices are replaced wholesale")

			got, err = store.GetByID(ctx, "s1")
			require.NoError(t, err)
			assert.Equal(t, updated, got)

			removed, err := store.Delete(ctx, "s1")
			require.NoError(t, err)
			assert.True(t, removed)

			removed, err = store.Delete(ctx, "s1")
			require.NoError(t, err)
			assert.False(t, removed)

			_, err = store.GetByID(ctx, "s1")
			assert.True(t, errors.Is(err, apperrors.ErrNotFound))
			assert.True(t, errors.Is(err, apperrors.ErrStudentNotFound))
		})
	}
}

func TestRecordStore_UpdateMissing(t *testing.T) {
	for name, newRepos := range storeBackends() {
		t.Run(name, func(t *testing.T) {
			title := "Professor"
			_, err := newRepos(t).Faculty.Update(context.Background(), "nope", models.FacultyPatch{Title: &title})
			assert.True(t, errors.Is(err, apperrors.ErrFacultyNotFound))
		})
	}
}

func TestRecordStore_UpdateFuncJoinsTransaction(t *testing.T) {
	for name, newRepos := range storeBackends() {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			repos := newRepos(t)

			_, err := repos.Courses.Create(ctx, models.Course{ID: "c1", Name: "Optics"})
			require.NoError(t, err)
			for _, id := range []string{"s1", "s2"} {
				_, err := repos.Students.Create(ctx, models.Student{ID: id, EnrolledCourses: []string{"c1"}})
				require.NoError(t, err)
			}

			updated, err := repos.Courses.UpdateFunc(ctx, "c1", func(ctx context.Context, c *models.Course) error {
				students, err := repos.Students.List(ctx)
				if err != nil {
					return err
				}
				c.EnrollmentCount = len(students)
				return nil
			})
			require.NoError(t, err)
			assert.Equal(t, 2, updated.EnrollmentCount)

			boom := errors.New("boom")
			_, err = repos.Courses.UpdateFunc(ctx, "c1", func(_ context.Context, c *models.Course) error {
				c.Name = "changed"
				return boom
			})
			assert.ErrorIs(t, err, boom)

			got, err := repos.Courses.GetByID(ctx, "c1")
			require.NoError(t, err)
			assert.Equal(t, "Optics", got.Name, "a failed mutation is not stored")
			assert.Equal(t, 2, got.EnrollmentCount)
		})
	}
}

func TestRecordStore_DuplicatesKeepFirst(t *testing.T) {
	for name, newRepos := range storeBackends() {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			store := newRepos(t).Courses

			for _, c := range []models.Course{
				{ID: "c1", Name: "first", Credits: 3},
				{ID: "c2", Name: "other", Credits: 3},
				{ID: "c1", Name: "shadow", Credits: 4},
				{ID: "c1", Name: "shadow again", Credits: 5},
			} {
				_, err := store.Create(ctx, c)
				require.NoError(t, err)
			}

			all, err := store.List(ctx)
			require.NoError(t, err)
			require.Len(t, all, 4)
			assert.Equal(t, []string{"first", "other", "shadow", "shadow again"},
				[]string{all[0].Name, all[1].Name, all[2].Name, all[3].Name})

			got, err := store.GetByID(ctx, "c1")
			require.NoError(t, err)
			assert.Equal(t, "first", got.Name)

			removed, err := store.RemoveDuplicates(ctx)
			require.NoError(t, err)
			assert.Equal(t, 2, removed)

			all, err = store.List(ctx)
			require.NoError(t, err)
			require.Len(t, all, 2)
			assert.Equal(t, "first", all[0].Name)
			assert.Equal(t, "other", all[1].Name)

			removed, err = store.RemoveDuplicates(ctx)
			require.NoError(t, err)
			assert.Zero(t, removed)
		})
	}
}

func TestRecordStore_DeleteRemovesShadows(t *testing.T) {
	for name, newRepos := range storeBackends() {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			store := newRepos(t).Grades

			for _, g := range []models.Grade{
				{ID: "g1", StudentID: "s1", CourseID: "c1", NumericGrade: 80},
				{ID: "g1", StudentID: "s1", CourseID: "c1", NumericGrade: 80},
			} {
				_, err := store.Create(ctx, g)
				require.NoError(t, err)
			}

			removed, err := store.Delete(ctx, "g1")
			require.NoError(t, err)
			assert.True(t, removed)

			all, err := store.List(ctx)
			require.NoError(t, err)
			assert.Empty(t, all)
		})
	}
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore[models.Student](apperrors.ErrStudentNotFound)

	_, err := store.Create(ctx, models.Student{ID: "s1", EnrolledCourses: []string{"c1"}})
	require.NoError(t, err)

	got, err := store.GetByID(ctx, "s1")
	require.NoError(t, err)
	got.EnrolledCourses[0] = "mutated"

	again, err := store.GetByID(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, []string{"c1"}, again.EnrolledCourses)
}

func TestSQLiteMigrate_Idempotent(t *testing.T) {
	lite, err := db.NewSQLiteDB(filepath.Join(t.TempDir(), "twice.db"))
	require.NoError(t, err)
	defer lite.Close()

	m := migrations.NewSQLiteMigrator(lite)
	require.NoError(t, m.Migrate(context.Background()))
	require.NoError(t, m.Migrate(context.Background()))
}
