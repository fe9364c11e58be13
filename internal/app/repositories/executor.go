package repositories

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/unidash/internal/db"
)

// rowScanner is the common surface of pgx.Row and *sql.Row.
type rowScanner interface {
	Scan(dest ...any) error
}

// rowIterator is the common surface of pgx.Rows and *sql.Rows.
type rowIterator interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close()
}

// executor runs statements against either a pool/handle or an open transaction.
type executor interface {
	QueryRow(ctx context.Context, sql string, args ...any) rowScanner
	Query(ctx context.Context, sql string, args ...any) (rowIterator, error)
	Exec(ctx context.Context, sql string, args ...any) (int64, error)
}

// backend is a database the document store can run against.
type backend interface {
	executor
	InTx(ctx context.Context, fn func(ctx context.Context, ex executor) error) error
	Placeholder() squirrel.PlaceholderFormat
	// LockSuffix is appended to a select that precedes a write in the same transaction.
	LockSuffix() string
}

type txKey struct{}

// withTx marks ctx as running inside ex, so stores sharing the backend join the transaction.
func withTx(ctx context.Context, ex executor) context.Context {
	return context.WithValue(ctx, txKey{}, ex)
}

func txFrom(ctx context.Context) (executor, bool) {
	ex, ok := ctx.Value(txKey{}).(executor)
	return ex, ok
}

// --- pgx ---

// pgxQuerier is satisfied by *pgxpool.Pool and pgx.Tx.
type pgxQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

type pgxExecutor struct {
	q    pgxQuerier
	exec func(ctx context.Context, sql string, args ...any) (int64, error)
}

func (e pgxExecutor) QueryRow(ctx context.Context, sql string, args ...any) rowScanner {
	return e.q.QueryRow(ctx, sql, args...)
}

func (e pgxExecutor) Query(ctx context.Context, sql string, args ...any) (rowIterator, error) {
	rows, err := e.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (e pgxExecutor) Exec(ctx context.Context, sql string, args ...any) (int64, error) {
	return e.exec(ctx, sql, args...)
}

func newPgxTxExecutor(tx pgx.Tx) pgxExecutor {
	return pgxExecutor{
		q: tx,
		exec: func(ctx context.Context, sql string, args ...any) (int64, error) {
			tag, err := tx.Exec(ctx, sql, args...)
			return tag.RowsAffected(), err
		},
	}
}

type postgresBackend struct {
	pgxExecutor
	db *db.PostgresDB
}

func newPostgresBackend(pg *db.PostgresDB) *postgresBackend {
	return &postgresBackend{
		db: pg,
		pgxExecutor: pgxExecutor{
			q: pg.Pool,
			exec: func(ctx context.Context, sql string, args ...any) (int64, error) {
				tag, err := pg.Pool.Exec(ctx, sql, args...)
				return tag.RowsAffected(), err
			},
		},
	}
}

func (b *postgresBackend) InTx(ctx context.Context, fn func(ctx context.Context, ex executor) error) error {
	return b.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		return fn(ctx, newPgxTxExecutor(tx))
	})
}

func (b *postgresBackend) Placeholder() squirrel.PlaceholderFormat { return squirrel.Dollar }

func (b *postgresBackend) LockSuffix() string { return "FOR UPDATE" }

// --- database/sql ---

type sqlQuerier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

type sqlExecutor struct {
	q sqlQuerier
}

type sqlRows struct {
	*sql.Rows
}

func (r sqlRows) Close() { _ = r.Rows.Close() }

func (e sqlExecutor) QueryRow(ctx context.Context, query string, args ...any) rowScanner {
	return e.q.QueryRowContext(ctx, query, args...)
}

func (e sqlExecutor) Query(ctx context.Context, query string, args ...any) (rowIterator, error) {
	rows, err := e.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return sqlRows{rows}, nil
}

func (e sqlExecutor) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	res, err := e.q.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

type sqliteBackend struct {
	sqlExecutor
	db *db.SQLiteDB
}

func newSQLiteBackend(lite *db.SQLiteDB) *sqliteBackend {
	return &sqliteBackend{db: lite, sqlExecutor: sqlExecutor{q: lite.DB}}
}

func (b *sqliteBackend) InTx(ctx context.Context, fn func(ctx context.Context, ex executor) error) error {
	return b.db.WithTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		return fn(ctx, sqlExecutor{q: tx})
	})
}

func (b *sqliteBackend) Placeholder() squirrel.PlaceholderFormat { return squirrel.Question }

// SQLite has no row locks; the handle's writer lock serializes transactions instead.
func (b *sqliteBackend) LockSuffix() string { return "" }
