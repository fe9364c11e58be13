package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/unidash/internal/config"
	"github.com/yigit/unidash/internal/pkg/helpers"
	"github.com/yigit/unidash/internal/pkg/logger"
)

const (
	connectTimeout     = 10 * time.Second
	defaultTxTimeout   = 30 * time.Second
	defaultMaxLifetime = time.Hour
	healthCheckPeriod  = time.Minute
)

// PostgresDB is the pool backing the document tables on Postgres
type PostgresDB struct {
	Pool *pgxpool.Pool
}

// NewPostgresDB connects the pool and verifies the server answers
func NewPostgresDB(cfg *config.Config) (*PostgresDB, error) {
	poolConfig, err := poolConfigFrom(cfg)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create database connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to establish database connection: %w", err)
	}

	log := logger.Component("postgres")
	log.Info().
		Str("host", poolConfig.ConnConfig.Host).
		Str("database", poolConfig.ConnConfig.Database).
		Int32("maxConns", poolConfig.MaxConns).
		Msg("Connected to PostgreSQL")
	return &PostgresDB{Pool: pool}, nil
}

func poolConfigFrom(cfg *config.Config) (*pgxpool.Config, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.GetPostgresConnectionString())
	if err != nil {
		return nil, fmt.Errorf("failed to parse pgxpool config: %w", err)
	}

	if cfg.Database.MaxOpenConns > 0 {
		poolConfig.MaxConns = int32(cfg.Database.MaxOpenConns)
	}
	poolConfig.MinConns = min(int32(max(cfg.Database.MaxIdleConns, 0)), poolConfig.MaxConns)
	poolConfig.MaxConnLifetime = helpers.PositiveDuration(cfg.Database.ConnMaxLifetime, defaultMaxLifetime)
	poolConfig.HealthCheckPeriod = healthCheckPeriod
	return poolConfig, nil
}

// Close closes the pool. It is safe to call more than once.
func (db *PostgresDB) Close() error {
	if db.Pool != nil {
		db.Pool.Close()
	}
	return nil
}

// TransactionFn is a function that executes within a transaction
type TransactionFn func(ctx context.Context, tx pgx.Tx) error

// WithTransaction runs fn in a transaction that commits when fn returns nil.
// A context without a deadline gets defaultTxTimeout so a stuck lock cannot hang a request.
func (db *PostgresDB) WithTransaction(ctx context.Context, fn TransactionFn) error {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, defaultTxTimeout)
		defer cancel()
	}

	return pgx.BeginTxFunc(ctx, db.Pool, pgx.TxOptions{}, func(tx pgx.Tx) error {
		return fn(ctx, tx)
	})
}
