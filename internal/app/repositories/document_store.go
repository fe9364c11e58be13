package repositories

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/rs/zerolog"
	"github.com/yigit/unidash/internal/app/models"
	"github.com/yigit/unidash/internal/pkg/dberrors"
	"github.com/yigit/unidash/internal/pkg/logger"
)

// DocumentStore keeps records of one kind as JSON payloads in a table of the same name.
// Rows are ordered by their storage key, doc_key, so "first stored" is well defined.
type DocumentStore[T models.Entity] struct {
	db       backend
	sb       squirrel.StatementBuilderType
	table    string
	notFound error
	log      zerolog.Logger
}

func newDocumentStore[T models.Entity](b backend, kind models.Kind, notFound error) *DocumentStore[T] {
	return &DocumentStore[T]{
		db:       b,
		sb:       squirrel.StatementBuilder.PlaceholderFormat(b.Placeholder()),
		table:    string(kind),
		notFound: notFound,
		log:      logger.Component("repository").With().Str("kind", string(kind)).Logger(),
	}
}

// List returns every stored record in doc_key order, duplicates included
func (s *DocumentStore[T]) List(ctx context.Context) ([]T, error) {
	query, args, err := s.sb.Select("payload").From(s.table).OrderBy("doc_key ASC").ToSql()
	if err != nil {
		return nil, s.buildFailed("list", err)
	}

	rows, err := s.conn(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, s.execFailed("list", "", err)
	}
	defer rows.Close()

	records := make([]T, 0)
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, s.execFailed("list", "", err)
		}
		record, err := s.decode(payload)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, s.execFailed("list", "", err)
	}

	return records, nil
}

// GetByID returns the first stored record with the logical id
func (s *DocumentStore[T]) GetByID(ctx context.Context, id string) (T, error) {
	var zero T

	query, args, err := s.sb.Select("payload").From(s.table).
		Where(squirrel.Eq{"id": id}).
		OrderBy("doc_key ASC").
		Limit(1).
		ToSql()
	if err != nil {
		return zero, s.buildFailed("get", err)
	}

	var payload []byte
	if err := s.conn(ctx).QueryRow(ctx, query, args...).Scan(&payload); err != nil {
		if dberrors.IsNoRows(err) {
			return zero, fmt.Errorf("%w: id %s", s.notFound, id)
		}
		return zero, s.execFailed("get", id, err)
	}

	return s.decode(payload)
}

// Create stores record as a new row
func (s *DocumentStore[T]) Create(ctx context.Context, record T) (T, error) {
	var zero T

	payload, err := json.Marshal(record)
	if err != nil {
		return zero, fmt.Errorf("failed to encode %s record: %w", s.table, err)
	}

	query, args, err := s.sb.Insert(s.table).
		Columns("id", "payload").
		Values(record.LogicalID(), string(payload)).
		ToSql()
	if err != nil {
		return zero, s.buildFailed("create", err)
	}

	if _, err := s.conn(ctx).Exec(ctx, query, args...); err != nil {
		return zero, s.execFailed("create", record.LogicalID(), err)
	}

	return record, nil
}

// Update reads the first stored record for id, applies patch and writes it back in one transaction
func (s *DocumentStore[T]) Update(ctx context.Context, id string, patch models.Patch[T]) (T, error) {
	return s.UpdateFunc(ctx, id, func(_ context.Context, record *T) error {
		patch.Apply(record)
		return nil
	})
}

// UpdateFunc locks the first stored record for id, hands it to fn and writes the result back.
// fn runs inside the transaction; its ctx routes nested store calls through it.
func (s *DocumentStore[T]) UpdateFunc(ctx context.Context, id string, fn MutateFunc[T]) (T, error) {
	var updated T

	selectQuery := s.sb.Select("doc_key", "payload").From(s.table).
		Where(squirrel.Eq{"id": id}).
		OrderBy("doc_key ASC").
		Limit(1)
	if suffix := s.db.LockSuffix(); suffix != "" {
		selectQuery = selectQuery.Suffix(suffix)
	}
	query, args, err := selectQuery.ToSql()
	if err != nil {
		return updated, s.buildFailed("update", err)
	}

	err = s.inTx(ctx, func(ctx context.Context, ex executor) error {
		var docKey int64
		var payload []byte
		if err := ex.QueryRow(ctx, query, args...).Scan(&docKey, &payload); err != nil {
			if dberrors.IsNoRows(err) {
				return fmt.Errorf("%w: id %s", s.notFound, id)
			}
			return s.execFailed("update", id, err)
		}

		record, err := s.decode(payload)
		if err != nil {
			return err
		}
		if err := fn(ctx, &record); err != nil {
			return err
		}

		encoded, err := json.Marshal(record)
		if err != nil {
			return fmt.Errorf("failed to encode %s record: %w", s.table, err)
		}

		updateQuery, updateArgs, err := s.sb.Update(s.table).
			Set("id", record.LogicalID()).
			Set("payload", string(encoded)).
			Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
			Where(squirrel.Eq{"doc_key": docKey}).
			ToSql()
		if err != nil {
			return s.buildFailed("update", err)
		}
		if _, err := ex.Exec(ctx, updateQuery, updateArgs...); err != nil {
			return s.execFailed("update", id, err)
		}

		updated = record
		return nil
	})
	if err != nil {
		return updated, err
	}

	return updated, nil
}

// Delete removes every row carrying the logical id
func (s *DocumentStore[T]) Delete(ctx context.Context, id string) (bool, error) {
	query, args, err := s.sb.Delete(s.table).Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return false, s.buildFailed("delete", err)
	}

	n, err := s.conn(ctx).Exec(ctx, query, args...)
	if err != nil {
		return false, s.execFailed("delete", id, err)
	}
	return n > 0, nil
}

// RemoveDuplicates keeps the lowest doc_key per logical id, matching read-time dedupe
func (s *DocumentStore[T]) RemoveDuplicates(ctx context.Context) (int, error) {
	query, args, err := s.sb.Delete(s.table).
		Where(fmt.Sprintf("doc_key NOT IN (SELECT MIN(doc_key) FROM %s GROUP BY id)", s.table)).
		ToSql()
	if err != nil {
		return 0, s.buildFailed("remove duplicates", err)
	}

	n, err := s.conn(ctx).Exec(ctx, query, args...)
	if err != nil {
		return 0, s.execFailed("remove duplicates", "", err)
	}
	if n > 0 {
		s.log.Info().Int64("removed", n).Msg("Removed duplicate records")
	}
	return int(n), nil
}

// conn returns the transaction carried by ctx, or the backend itself.
func (s *DocumentStore[T]) conn(ctx context.Context) executor {
	if ex, ok := txFrom(ctx); ok {
		return ex
	}
	return s.db
}

// inTx joins the transaction carried by ctx or opens a new one.
func (s *DocumentStore[T]) inTx(ctx context.Context, fn func(ctx context.Context, ex executor) error) error {
	if ex, ok := txFrom(ctx); ok {
		return fn(ctx, ex)
	}
	return s.db.InTx(ctx, func(ctx context.Context, ex executor) error {
		return fn(withTx(ctx, ex), ex)
	})
}

func (s *DocumentStore[T]) decode(payload []byte) (T, error) {
	var record T
	if err := json.Unmarshal(payload, &record); err != nil {
		s.log.Error().Err(err).Msg("Failed to decode stored record")
		return record, fmt.Errorf("failed to decode %s record: %w", s.table, err)
	}
	return record, nil
}

func (s *DocumentStore[T]) buildFailed(op string, err error) error {
	s.log.Error().Err(err).Str("op", op).Msg("Failed to build SQL query")
	return fmt.Errorf("failed to build %s query: %w", op, err)
}

func (s *DocumentStore[T]) execFailed(op, id string, err error) error {
	event := s.log.Error().Err(err).Str("op", op)
	if id != "" {
		event = event.Str("id", id)
	}
	event.Msg("Record store operation failed")
	return fmt.Errorf("failed to %s %s: %w", op, s.table, dberrors.Classify(op+" "+s.table, err))
}
