package driven

import (
	"context"

	"github.com/obralink/docsearch-core/internal/core/domain"
)

// HistoryStore keeps the bounded search history.
// Implementations enforce the invariants themselves: at most 10 entries,
// most-recent-first, no duplicates, and a repeated query does not re-order
// the list. Each call is atomic with respect to concurrent callers.
type HistoryStore interface {
	// Push records a query. Already-present queries are ignored; a
	// strictly-new query is prepended and the oldest entry evicted past
	// the bound.
	Push(ctx context.Context, query string) error

	// List returns the history, most-recent-first.
	List(ctx context.Context) ([]string, error)
}

// SavedFilterStore keeps named SearchOptions snapshots.
// Listing order is insertion order; re-saving an existing name updates its
// options in place without moving it.
type SavedFilterStore interface {
	// Save stores a snapshot under the given name (last write wins).
	Save(ctx context.Context, name string, opts domain.SearchOptions) error

	// List returns all saved filters in insertion order.
	List(ctx context.Context) ([]domain.SavedFilter, error)

	// Delete removes a filter by exact name and reports whether a removal
	// occurred.
	Delete(ctx context.Context, name string) (bool, error)
}
