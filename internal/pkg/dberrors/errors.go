package dberrors

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"net"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/puddle/v2"
	"github.com/yigit/unidash/internal/pkg/apperrors"
)

// IsNoRows reports whether err means the query matched nothing.
func IsNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows)
}

// IsUnavailable reports whether err is a transport-level failure talking to the
// database, as opposed to an error the database itself returned for a statement.
func IsUnavailable(err error) bool {
	if err == nil {
		return false
	}

	// A PgError is a server answer, the connection is fine.
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return false
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	// pgxpool hands out puddle's sentinel once the pool is closed.
	return errors.Is(err, puddle.ErrClosedPool) ||
		errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, sql.ErrConnDone) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, net.ErrClosed) ||
		pgconn.Timeout(err)
}

// Classify turns a driver error into an application error for operation op.
// Unavailable stores become apperrors.ErrStoreUnavailable; anything else is wrapped as-is.
func Classify(op string, err error) error {
	if err == nil {
		return nil
	}
	if IsUnavailable(err) {
		return apperrors.NewStoreUnavailableError(op, err)
	}
	return err
}
