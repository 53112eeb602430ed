package services

import (
	"context"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"

	"github.com/obralink/docsearch-core/internal/core/domain"
	"github.com/obralink/docsearch-core/internal/core/ports/driven"
	"github.com/obralink/docsearch-core/internal/core/ports/driving"
	"github.com/obralink/docsearch-core/internal/relevance"
)

// Ensure searchService implements SearchService
var _ driving.SearchService = (*searchService)(nil)

// searchService implements the SearchService interface. It composes the
// filter -> score -> rank -> paginate pipeline and owns the two pieces of
// search state: history and saved filters.
type searchService struct {
	scorer       *relevance.Scorer
	history      driven.HistoryStore
	savedFilters driven.SavedFilterStore
	collation    language.Tag
	concurrency  int
	logger       *slog.Logger
}

// SearchServiceConfig holds the search service dependencies.
type SearchServiceConfig struct {
	Scorer       *relevance.Scorer
	History      driven.HistoryStore
	SavedFilters driven.SavedFilterStore

	// Collation selects the locale for name ordering.
	Collation language.Tag

	// Concurrency bounds the number of documents scored in parallel.
	Concurrency int

	Logger *slog.Logger
}

// NewSearchService creates a new SearchService.
func NewSearchService(cfg SearchServiceConfig) driving.SearchService {
	concurrency := cfg.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &searchService{
		scorer:       cfg.Scorer,
		history:      cfg.History,
		savedFilters: cfg.SavedFilters,
		collation:    cfg.Collation,
		concurrency:  concurrency,
		logger:       logger,
	}
}

// Search runs the search pipeline over the supplied corpus.
func (s *searchService) Search(ctx context.Context, documents []*domain.Document, opts domain.SearchOptions) ([]*domain.SearchResult, error) {
	applyDefaults(&opts)

	filtered := applyFilters(documents, opts.Filters)

	query := strings.TrimSpace(opts.Query)
	var results []*domain.SearchResult
	if query == "" {
		// Filters only: no ranking signal, no history entry. Every
		// survivor scores 1 so the stable relevance sort keeps corpus
		// order.
		results = make([]*domain.SearchResult, len(filtered))
		for i, doc := range filtered {
			results[i] = &domain.SearchResult{Document: doc, Score: 1}
		}
	} else {
		var err error
		results, err = s.scoreAll(ctx, filtered, query, opts)
		if err != nil {
			return nil, err
		}
	}

	rankResults(results, opts.SortBy, opts.SortOrder, s.collation)
	page := paginate(results, opts.Offset, opts.Limit)

	if query != "" {
		// Best effort: a history backend failure must not fail the search.
		if err := s.history.Push(ctx, opts.Query); err != nil {
			s.logger.Warn("failed to record search history", "error", err)
		}
	}

	return page, nil
}

// scoreAll scores every filtered document against the query. Documents are
// independent, so they are scored in parallel with a bounded worker count;
// slot indexing keeps corpus order for the stable sort, and zero-score
// documents are dropped.
func (s *searchService) scoreAll(ctx context.Context, docs []*domain.Document, query string, opts domain.SearchOptions) ([]*domain.SearchResult, error) {
	inContent := opts.ContentEnabled()
	inMetadata := opts.MetadataEnabled()

	slots := make([]*domain.SearchResult, len(docs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for i, doc := range docs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			score, highlights, matched := s.scorer.Score(gctx, doc, query, inContent, inMetadata)
			if score > 0 {
				slots[i] = &domain.SearchResult{
					Document:      doc,
					Score:         score,
					Highlights:    highlights,
					MatchedFields: matched,
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	results := make([]*domain.SearchResult, 0, len(docs))
	for _, r := range slots {
		if r != nil {
			results = append(results, r)
		}
	}
	return results, nil
}

// Suggest provides search suggestions/autocomplete.
func (s *searchService) Suggest(_ context.Context, query string, documents []*domain.Document) ([]string, error) {
	return suggestions(query, documents), nil
}

// History returns the recent distinct queries, most-recent-first.
func (s *searchService) History(ctx context.Context) ([]string, error) {
	return s.history.List(ctx)
}

// SaveFilter stores a deep snapshot of the options under the given name.
func (s *searchService) SaveFilter(ctx context.Context, name string, opts domain.SearchOptions) error {
	if strings.TrimSpace(name) == "" {
		return domain.ErrInvalidInput
	}
	// Snapshot before handing off so later mutation of the caller's value
	// cannot leak into the store.
	return s.savedFilters.Save(ctx, name, opts.Clone())
}

// SavedFilters returns all saved filters in insertion order.
func (s *searchService) SavedFilters(ctx context.Context) ([]domain.SavedFilter, error) {
	return s.savedFilters.List(ctx)
}

// DeleteFilter removes a saved filter by exact name.
func (s *searchService) DeleteFilter(ctx context.Context, name string) (bool, error) {
	return s.savedFilters.Delete(ctx, name)
}

func applyDefaults(opts *domain.SearchOptions) {
	if opts.SortBy == "" {
		opts.SortBy = domain.SortByRelevance
	}
	if opts.SortOrder == "" {
		opts.SortOrder = domain.SortDesc
	}
	if opts.Limit <= 0 {
		opts.Limit = 50
	}
	if opts.Offset < 0 {
		opts.Offset = 0
	}
}

// paginate slices [offset, offset+limit) over the ordered results. An
// offset past the end yields an empty page, not an error.
func paginate(results []*domain.SearchResult, offset, limit int) []*domain.SearchResult {
	if offset >= len(results) {
		return []*domain.SearchResult{}
	}
	end := offset + limit
	if end > len(results) {
		end = len(results)
	}
	return results[offset:end]
}
