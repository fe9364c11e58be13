package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/yigit/unidash/internal/app/models"
	appRepos "github.com/yigit/unidash/internal/app/repositories"
	appServices "github.com/yigit/unidash/internal/app/services"
)

// CreateDefaultData loads the demo data set into an empty record store.
// A store holding any record is left untouched. Enrollment counts are derived by a
// reconcile pass afterwards, never copied from the data set.
func CreateDefaultData(ctx context.Context, repos *appRepos.Repositories, svc *appServices.Services, lgr zerolog.Logger) error {
	empty, err := isEmpty(ctx, repos)
	if err != nil {
		return fmt.Errorf("failed to inspect record store: %w", err)
	}
	if !empty {
		lgr.Info().Msg("Record store already holds data, skipping seed")
		return nil
	}

	lgr.Info().Msg("Seeding demo data set...")
	var finalErr error // collect every failure and keep going

	finalErr = errors.Join(finalErr, createAll(ctx, repos.Faculty, Faculty, lgr))
	finalErr = errors.Join(finalErr, createAll(ctx, repos.Courses, Courses, lgr))
	finalErr = errors.Join(finalErr, createAll(ctx, repos.Students, Students, lgr))
	finalErr = errors.Join(finalErr, createAll(ctx, repos.Grades, Grades, lgr))

	corrections, err := svc.Enrollment.ReconcileAll(ctx)
	if err != nil {
		lgr.Error().Err(err).Msg("Error deriving enrollment counts for seeded courses")
		finalErr = errors.Join(finalErr, err)
	}

	lgr.Info().
		Int("students", len(Students)).
		Int("courses", len(Courses)).
		Int("faculty", len(Faculty)).
		Int("grades", len(Grades)).
		Int("countsDerived", len(corrections)).
		Msg("Demo data seeded")
	return finalErr
}

func createAll[T models.Entity](ctx context.Context, store appRepos.RecordStore[T], records []T, lgr zerolog.Logger) error {
	var finalErr error
	for _, r := range records {
		if _, err := store.Create(ctx, r); err != nil {
			lgr.Error().Err(err).Str("id", r.LogicalID()).Msg("Error creating seed record")
			finalErr = errors.Join(finalErr, err)
		}
	}
	return finalErr
}

func isEmpty(ctx context.Context, repos *appRepos.Repositories) (bool, error) {
	checks := []func(context.Context) (int, error){
		count(repos.Students),
		count(repos.Courses),
		count(repos.Faculty),
		count(repos.Grades),
	}
	for _, check := range checks {
		n, err := check(ctx)
		if err != nil {
			return false, err
		}
		if n > 0 {
			return false, nil
		}
	}
	return true, nil
}

func count[T models.Entity](store appRepos.RecordStore[T]) func(context.Context) (int, error) {
	return func(ctx context.Context) (int, error) {
		records, err := store.List(ctx)
		return len(records), err
	}
}
