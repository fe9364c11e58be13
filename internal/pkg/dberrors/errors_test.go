package dberrors

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/puddle/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/unidash/internal/pkg/apperrors"
)

func TestIsUnavailable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "bad conn", err: fmt.Errorf("query: %w", driver.ErrBadConn), want: true},
		{name: "conn done", err: sql.ErrConnDone, want: true},
		{name: "deadline", err: context.DeadlineExceeded, want: true},
		{name: "closed pool", err: fmt.Errorf("acquire: %w", puddle.ErrClosedPool), want: true},
		{name: "server error", err: &pgconn.PgError{Code: "23505"}, want: false},
		{name: "no rows", err: pgx.ErrNoRows, want: false},
		{name: "plain", err: errors.New("syntax error"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsUnavailable(tt.err))
		})
	}
}

func TestIsUnavailable_ClosedPgxPool(t *testing.T) {
	ctx := context.Background()
	// pgxpool connects lazily, so no server is needed.
	pool, err := pgxpool.New(ctx, "postgres://unidash@127.0.0.1:1/unidash?sslmode=disable")
	require.NoError(t, err)
	pool.Close()

	_, err = pool.Acquire(ctx)
	require.Error(t, err)
	assert.True(t, IsUnavailable(err))
	assert.True(t, errors.Is(Classify("list students", err), apperrors.ErrStoreUnavailable))
}

func TestClassify(t *testing.T) {
	assert.NoError(t, Classify("op", nil))

	err := Classify("list students", driver.ErrBadConn)
	assert.True(t, errors.Is(err, apperrors.ErrStoreUnavailable))
	assert.True(t, errors.Is(err, driver.ErrBadConn))

	plain := errors.New("constraint")
	assert.Equal(t, plain, Classify("create", plain))
}

func TestIsNoRows(t *testing.T) {
	assert.True(t, IsNoRows(pgx.ErrNoRows))
	assert.True(t, IsNoRows(fmt.Errorf("get: %w", sql.ErrNoRows)))
	assert.False(t, IsNoRows(errors.New("other")))
}
