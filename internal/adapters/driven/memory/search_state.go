package memory

import (
	"context"
	"sync"

	"github.com/obralink/docsearch-core/internal/core/domain"
	"github.com/obralink/docsearch-core/internal/core/ports/driven"
)

// Verify interface compliance
var (
	_ driven.HistoryStore     = (*HistoryStore)(nil)
	_ driven.SavedFilterStore = (*SavedFilterStore)(nil)
)

const historyLimit = 10

// HistoryStore keeps the bounded search history in process memory. State
// lives for the lifetime of the store; a process restart loses it.
type HistoryStore struct {
	mu      sync.Mutex
	entries []string // most-recent-first
}

// NewHistoryStore creates an in-memory HistoryStore.
func NewHistoryStore() *HistoryStore {
	return &HistoryStore{}
}

// Push records a query. An already-present query is ignored without
// re-ordering; a strictly-new query is prepended and the oldest entry is
// evicted past the bound.
func (s *HistoryStore) Push(_ context.Context, query string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, entry := range s.entries {
		if entry == query {
			return nil
		}
	}

	s.entries = append([]string{query}, s.entries...)
	if len(s.entries) > historyLimit {
		s.entries = s.entries[:historyLimit]
	}
	return nil
}

// List returns the history, most-recent-first.
func (s *HistoryStore) List(_ context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, len(s.entries))
	copy(out, s.entries)
	return out, nil
}

// SavedFilterStore keeps named SearchOptions snapshots in process memory,
// listed in insertion order. Re-saving an existing name updates its
// options in place without moving it.
type SavedFilterStore struct {
	mu      sync.Mutex
	order   []string
	filters map[string]domain.SearchOptions
}

// NewSavedFilterStore creates an in-memory SavedFilterStore.
func NewSavedFilterStore() *SavedFilterStore {
	return &SavedFilterStore{
		filters: make(map[string]domain.SearchOptions),
	}
}

// Save stores a snapshot under the given name (last write wins).
func (s *SavedFilterStore) Save(_ context.Context, name string, opts domain.SearchOptions) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.filters[name]; !exists {
		s.order = append(s.order, name)
	}
	s.filters[name] = opts.Clone()
	return nil
}

// List returns all saved filters in insertion order.
func (s *SavedFilterStore) List(_ context.Context) ([]domain.SavedFilter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.SavedFilter, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, domain.SavedFilter{
			Name:    name,
			Options: s.filters[name].Clone(),
		})
	}
	return out, nil
}

// Delete removes a filter by exact name.
func (s *SavedFilterStore) Delete(_ context.Context, name string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.filters[name]; !exists {
		return false, nil
	}
	delete(s.filters, name)
	for i, n := range s.order {
		if n == name {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true, nil
}
