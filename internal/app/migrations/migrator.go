package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/unidash/internal/db"
	"github.com/yigit/unidash/internal/pkg/logger"
)

//go:embed sql
var files embed.FS

// Dialect selects the embedded migration set
type Dialect string

const (
	Postgres Dialect = "postgres"
	SQLite   Dialect = "sqlite"
)

// migrationTx is the minimal surface a migration needs inside its transaction
type migrationTx interface {
	exec(ctx context.Context, query string, args ...any) error
}

// Migrator manages database migrations
type Migrator struct {
	dialect Dialect
	sb      squirrel.StatementBuilderType

	exec   func(ctx context.Context, query string, args ...any) error
	exists func(ctx context.Context, query string, args ...any) (bool, error)
	inTx   func(ctx context.Context, fn func(tx migrationTx) error) error
}

// NewPostgresMigrator creates a migrator over a pgx pool
func NewPostgresMigrator(pg *db.PostgresDB) *Migrator {
	return &Migrator{
		dialect: Postgres,
		sb:      squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
		exec: func(ctx context.Context, query string, args ...any) error {
			_, err := pg.Pool.Exec(ctx, query, args...)
			return err
		},
		exists: func(ctx context.Context, query string, args ...any) (bool, error) {
			var n int
			err := pg.Pool.QueryRow(ctx, query, args...).Scan(&n)
			return n > 0, err
		},
		inTx: func(ctx context.Context, fn func(tx migrationTx) error) error {
			return pg.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
				return fn(pgxMigrationTx{tx})
			})
		},
	}
}

// NewSQLiteMigrator creates a migrator over the embedded SQLite handle
func NewSQLiteMigrator(lite *db.SQLiteDB) *Migrator {
	return &Migrator{
		dialect: SQLite,
		sb:      squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
		exec: func(ctx context.Context, query string, args ...any) error {
			_, err := lite.DB.ExecContext(ctx, query, args...)
			return err
		},
		exists: func(ctx context.Context, query string, args ...any) (bool, error) {
			var n int
			err := lite.DB.QueryRowContext(ctx, query, args...).Scan(&n)
			return n > 0, err
		},
		inTx: func(ctx context.Context, fn func(tx migrationTx) error) error {
			return lite.WithTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
				return fn(sqlMigrationTx{tx})
			})
		},
	}
}

type pgxMigrationTx struct{ tx pgx.Tx }

func (t pgxMigrationTx) exec(ctx context.Context, query string, args ...any) error {
	_, err := t.tx.Exec(ctx, query, args...)
	return err
}

type sqlMigrationTx struct{ tx *sql.Tx }

func (t sqlMigrationTx) exec(ctx context.Context, query string, args ...any) error {
	_, err := t.tx.ExecContext(ctx, query, args...)
	return err
}

// ensureMigrationTableExists creates the migration tracking table if it doesn't exist
func (m *Migrator) ensureMigrationTableExists(ctx context.Context) error {
	createTableSQL := `
	CREATE TABLE IF NOT EXISTS schema_migrations (
		version VARCHAR(255) PRIMARY KEY,
		applied_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);`

	if err := m.exec(ctx, createTableSQL); err != nil {
		return fmt.Errorf("failed to create migration tracking table: %w", err)
	}
	return nil
}

// isMigrationApplied checks if a specific migration has already been applied
func (m *Migrator) isMigrationApplied(ctx context.Context, version string) (bool, error) {
	query, args, err := m.sb.Select("COUNT(*)").From("schema_migrations").
		Where(squirrel.Eq{"version": version}).ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build migration status query: %w", err)
	}

	applied, err := m.exists(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to check migration status: %w", err)
	}
	return applied, nil
}

// Migrate applies every embedded migration for the dialect that has not run yet
func (m *Migrator) Migrate(ctx context.Context) error {
	if err := m.ensureMigrationTableExists(ctx); err != nil {
		return err
	}

	dir := path.Join("sql", string(m.dialect))
	entries, err := fs.ReadDir(files, dir)
	if err != nil {
		return fmt.Errorf("failed to read migration directory: %w", err)
	}

	var sqlFiles []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			sqlFiles = append(sqlFiles, entry.Name())
		}
	}
	sort.Strings(sqlFiles)

	for _, name := range sqlFiles {
		if err := m.apply(ctx, dir, name); err != nil {
			return err
		}
	}
	return nil
}

func (m *Migrator) apply(ctx context.Context, dir, name string) error {
	log := logger.Component("migrations")

	// "001_documents.sql" => "001"
	version := strings.SplitN(name, "_", 2)[0]

	applied, err := m.isMigrationApplied(ctx, version)
	if err != nil {
		return err
	}
	if applied {
		log.Debug().Str("migration", name).Msg("Migration already applied, skipping")
		return nil
	}

	content, err := fs.ReadFile(files, path.Join(dir, name))
	if err != nil {
		return fmt.Errorf("failed to read migration file: %w", err)
	}

	record, args, err := m.sb.Insert("schema_migrations").
		Columns("version", "applied_at").
		Values(version, time.Now().UTC()).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build migration record: %w", err)
	}

	err = m.inTx(ctx, func(tx migrationTx) error {
		if err := tx.exec(ctx, string(content)); err != nil {
			return fmt.Errorf("error occurred during SQL migration execution: %w", err)
		}
		if err := tx.exec(ctx, record, args...); err != nil {
			return fmt.Errorf("failed to record migration: %w", err)
		}
		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("migration", name).Msg("Migration failed")
		return err
	}

	log.Info().Str("migration", name).Str("dialect", string(m.dialect)).Msg("Migration applied")
	return nil
}
