package repositories

import (
	"context"
	"fmt"
	"sync"

	"github.com/yigit/unidash/internal/app/models"
)

type cloneable[T any] interface {
	models.Entity
	Clone() T
}

// MemoryStore is a mutex-guarded in-process store. Like the database stores it
// does not reject a second record with an existing logical id.
type MemoryStore[T models.Entity] struct {
	mu       sync.RWMutex
	records  []T
	clone    func(T) T
	notFound error
}

// NewMemoryStore creates an empty store. notFound is wrapped by lookups that miss.
func NewMemoryStore[T cloneable[T]](notFound error) *MemoryStore[T] {
	return &MemoryStore[T]{
		records:  make([]T, 0),
		clone:    func(v T) T { return v.Clone() },
		notFound: notFound,
	}
}

func (s *MemoryStore[T]) List(ctx context.Context) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]T, len(s.records))
	for i, r := range s.records {
		out[i] = s.clone(r)
	}
	return out, nil
}

func (s *MemoryStore[T]) GetByID(ctx context.Context, id string) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.indexOf(id); i >= 0 {
		return s.clone(s.records[i]), nil
	}
	return zero, fmt.Errorf("%w: id %s", s.notFound, id)
}

func (s *MemoryStore[T]) Create(ctx context.Context, record T) (T, error) {
	if err := ctx.Err(); err != nil {
		var zero T
		return zero, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append(s.records, s.clone(record))
	return s.clone(record), nil
}

func (s *MemoryStore[T]) Update(ctx context.Context, id string, patch models.Patch[T]) (T, error) {
	return s.UpdateFunc(ctx, id, func(_ context.Context, record *T) error {
		patch.Apply(record)
		return nil
	})
}

// UpdateFunc holds the write lock for the whole of fn. fn must not call back into this store.
func (s *MemoryStore[T]) UpdateFunc(ctx context.Context, id string, fn MutateFunc[T]) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return zero, fmt.Errorf("%w: id %s", s.notFound, id)
	}
	record := s.clone(s.records[i])
	if err := fn(ctx, &record); err != nil {
		return zero, err
	}
	s.records[i] = record
	return s.clone(record), nil
}

func (s *MemoryStore[T]) Delete(ctx context.Context, id string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.records[:0]
	removed := false
	for _, r := range s.records {
		if r.LogicalID() == id {
			removed = true
			continue
		}
		kept = append(kept, r)
	}
	s.records = kept
	return removed, nil
}

func (s *MemoryStore[T]) RemoveDuplicates(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[string]struct{}, len(s.records))
	kept := s.records[:0]
	for _, r := range s.records {
		if _, ok := seen[r.LogicalID()]; ok {
			continue
		}
		seen[r.LogicalID()] = struct{}{}
		kept = append(kept, r)
	}
	removed := len(s.records) - len(kept)
	s.records = kept
	return removed, nil
}

func (s *MemoryStore[T]) indexOf(id string) int {
	for i, r := range s.records {
		if r.LogicalID() == id {
			return i
		}
	}
	return -1
}
