// Package memory is an in-process ledger backend used by tests and local
// runs without a durable file.
package memory

import (
	"context"
	"sync"

	"voicespend/internal/core"
	"voicespend/internal/ledger"
)

type Store struct {
	mu    sync.Mutex
	items []core.Record
}

var _ ledger.Ledger = (*Store)(nil)

func New() *Store {
	return &Store{}
}

func (s *Store) Append(_ context.Context, r core.Record) error {
	if err := r.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, r)
	return nil
}

func (s *Store) RecordsForDate(_ context.Context, date string) ([]core.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []core.Record
	for _, r := range s.items {
		if r.Date == date {
			out = append(out, r)
		}
	}
	return out, nil
}

// Len reports the total number of stored records, any date.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}
