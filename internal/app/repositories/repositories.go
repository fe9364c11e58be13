package repositories

import (
	"context"
	"errors"

	"github.com/yigit/unidash/internal/app/models"
	"github.com/yigit/unidash/internal/db"
	"github.com/yigit/unidash/internal/pkg/apperrors"
)

// RecordStore persists one record kind keyed by its logical id.
//
// Stores do not enforce uniqueness of the logical id: two physical records may
// carry the same id. List returns every physical record in storage order; callers
// deduplicate. GetByID and Update address the first stored record for an id.
type RecordStore[T models.Entity] interface {
	List(ctx context.Context) ([]T, error)
	// GetByID returns an error matching apperrors.ErrNotFound when no record has id.
	GetByID(ctx context.Context, id string) (T, error)
	Create(ctx context.Context, record T) (T, error)
	// Update shallow-merges patch into the current persisted record.
	Update(ctx context.Context, id string, patch models.Patch[T]) (T, error)
	// UpdateFunc runs fn on the current persisted record while holding its write lock
	// and stores the result. Reads fn makes through stores of the same Repositories with
	// the ctx it receives see every write committed before the lock was taken.
	// An error from fn aborts the update.
	UpdateFunc(ctx context.Context, id string, fn MutateFunc[T]) (T, error)
	// Delete removes every physical record carrying id and reports whether any existed.
	Delete(ctx context.Context, id string) (bool, error)
	// RemoveDuplicates physically deletes every record whose id was already seen
	// earlier in storage order, and returns how many were removed.
	RemoveDuplicates(ctx context.Context) (int, error)
}

// MutateFunc edits record in place. ctx must be used for any nested store call.
type MutateFunc[T models.Entity] func(ctx context.Context, record *T) error

// Repositories holds one store per record kind
type Repositories struct {
	Students RecordStore[models.Student]
	Courses  RecordStore[models.Course]
	Faculty  RecordStore[models.Faculty]
	Grades   RecordStore[models.Grade]

	closers []func() error
}

// Close releases the underlying database handle, if any.
func (r *Repositories) Close() error {
	var err error
	for _, c := range r.closers {
		err = errors.Join(err, c())
	}
	r.closers = nil
	return err
}

// NewPostgresRepositories builds document stores over a pgx pool
func NewPostgresRepositories(pg *db.PostgresDB) *Repositories {
	repos := newDocumentRepositories(newPostgresBackend(pg))
	repos.closers = append(repos.closers, pg.Close)
	return repos
}

// NewSQLiteRepositories builds document stores over the embedded SQLite handle
func NewSQLiteRepositories(lite *db.SQLiteDB) *Repositories {
	repos := newDocumentRepositories(newSQLiteBackend(lite))
	repos.closers = append(repos.closers, lite.Close)
	return repos
}

// NewMemoryRepositories builds in-process stores, used by tests and the memory driver
func NewMemoryRepositories() *Repositories {
	return &Repositories{
		Students: NewMemoryStore[models.Student](apperrors.ErrStudentNotFound),
		Courses:  NewMemoryStore[models.Course](apperrors.ErrCourseNotFound),
		Faculty:  NewMemoryStore[models.Faculty](apperrors.ErrFacultyNotFound),
		Grades:   NewMemoryStore[models.Grade](apperrors.ErrGradeNotFound),
	}
}

func newDocumentRepositories(b backend) *Repositories {
	return &Repositories{
		Students: newDocumentStore[models.Student](b, models.KindStudent, apperrors.ErrStudentNotFound),
		Courses:  newDocumentStore[models.Course](b, models.KindCourse, apperrors.ErrCourseNotFound),
		Faculty:  newDocumentStore[models.Faculty](b, models.KindFaculty, apperrors.ErrFacultyNotFound),
		Grades:   newDocumentStore[models.Grade](b, models.KindGrade, apperrors.ErrGradeNotFound),
	}
}
