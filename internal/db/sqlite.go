package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/yigit/unidash/internal/pkg/logger"
	_ "modernc.org/sqlite" // pure go sqlite driver
)

// SQLiteDB is a single-writer handle around an embedded SQLite file.
// All transactions are serialized by mu so read-modify-write sequences never interleave.
type SQLiteDB struct {
	DB *sql.DB
	mu sync.Mutex
}

// NewSQLiteDB opens (and creates if needed) the database file at path.
func NewSQLiteDB(path string) (*SQLiteDB, error) {
	if path == "" {
		return nil, errors.New("sqlite path is required")
	}
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil && !errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("create dirs: %w", err)
		}
	}

	database, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// One connection keeps the file single-writer and makes :memory: databases shared.
	database.SetMaxOpenConns(1)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := database.PingContext(ctx); err != nil {
		_ = database.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	if _, err := database.ExecContext(ctx, `PRAGMA busy_timeout = 5000`); err != nil {
		_ = database.Close()
		return nil, fmt.Errorf("configure sqlite: %w", err)
	}

	return &SQLiteDB{DB: database}, nil
}

// Close closes the underlying handle.
func (db *SQLiteDB) Close() error {
	if db.DB == nil {
		return nil
	}
	return db.DB.Close()
}

// SQLTransactionFn is a function that executes within a database/sql transaction
type SQLTransactionFn func(ctx context.Context, tx *sql.Tx) error

// WithTransaction runs fn inside a transaction while holding the writer lock.
func (db *SQLiteDB) WithTransaction(ctx context.Context, fn SQLTransactionFn) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	tx, err := db.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(ctx, tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			logger.Error().Err(rbErr).Msg("Failed to rollback sqlite transaction")
			return fmt.Errorf("error: %v, rollback error: %w", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
