package driving

import (
	"context"

	"github.com/obralink/docsearch-core/internal/core/domain"
)

// SearchService is the public entry point of the relevance-search engine.
// The caller supplies the corpus on every call; the service never queries
// the document repository itself.
type SearchService interface {
	// Search runs the filter -> score -> rank -> paginate pipeline over the
	// given corpus. A blank query means "filters only": every surviving
	// document is returned with score 1 and no highlights. A non-blank
	// query is recorded in the search history as a side effect.
	Search(ctx context.Context, documents []*domain.Document, opts domain.SearchOptions) ([]*domain.SearchResult, error)

	// Suggest returns up to 10 distinct autocomplete candidates for a
	// partial query: document names first, then categories, then tags.
	// An empty query yields an empty list.
	Suggest(ctx context.Context, query string, documents []*domain.Document) ([]string, error)

	// History returns up to the 10 most recent distinct queries,
	// most-recent-first.
	History(ctx context.Context) ([]string, error)

	// SaveFilter stores a deep snapshot of the options under the given
	// name. Saving an existing name overwrites its options but keeps its
	// position in the listing order.
	SaveFilter(ctx context.Context, name string, opts domain.SearchOptions) error

	// SavedFilters returns all saved filters in insertion order.
	SavedFilters(ctx context.Context) ([]domain.SavedFilter, error)

	// DeleteFilter removes a saved filter by exact name and reports
	// whether a removal occurred.
	DeleteFilter(ctx context.Context, name string) (bool, error)
}
