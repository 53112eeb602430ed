package relevance

import (
	"context"
	"log/slog"
	"time"

	"github.com/obralink/docsearch-core/internal/core/domain"
	"github.com/obralink/docsearch-core/internal/core/ports/driven"
)

// Match score contributions. The total is the unweighted sum of every
// triggered bonus.
const (
	scoreNameMatch     = 10
	scoreMetadataMatch = 5
	scoreTagMatch      = 7
	scoreContentMatch  = 3

	maxContentFragments = 3
)

// Scorer computes the relevance score, matched-field list, and highlighted
// excerpts for one document against one query. It holds no per-search
// state and is safe for concurrent use.
type Scorer struct {
	provider       driven.ContentProvider
	contentTimeout time.Duration
	logger         *slog.Logger
}

// ScorerConfig configures a Scorer.
type ScorerConfig struct {
	// Provider supplies extracted document text. May be nil, in which
	// case no document gets a content contribution.
	Provider driven.ContentProvider

	// ContentTimeout bounds a single content extraction call.
	ContentTimeout time.Duration

	Logger *slog.Logger
}

// NewScorer creates a Scorer.
func NewScorer(cfg ScorerConfig) *Scorer {
	timeout := cfg.ContentTimeout
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Scorer{
		provider:       cfg.Provider,
		contentTimeout: timeout,
		logger:         logger,
	}
}

// Score matches a document against a query. Matching is case-insensitive
// substring containment throughout: no tokenization, no stemming, no fuzzy
// matching. Tag matching is always active regardless of the two toggles.
// A content provider failure or timeout degrades that document to "no
// content" instead of failing the search.
func (s *Scorer) Score(ctx context.Context, doc *domain.Document, query string, inContent, inMetadata bool) (int, domain.Highlights, []string) {
	score := 0
	var highlights domain.Highlights
	var matched []string

	if inMetadata {
		for _, mf := range ExtractMetadata(doc) {
			if mf.Value == "" || !containsFold(mf.Value, query) {
				continue
			}
			if mf.Field == FieldName {
				score += scoreNameMatch
			} else {
				score += scoreMetadataMatch
			}
			matched = append(matched, mf.Field)
			highlights.Metadata = append(highlights.Metadata, domain.FieldHighlight{
				Field: mf.Field,
				Text:  highlightAll(mf.Value, query),
			})
		}
	}

	if inContent && doc.HasTextContent() && s.provider != nil {
		if text, ok := s.extractContent(ctx, doc); ok && containsFold(text, query) {
			score += scoreContentMatch
			matched = append(matched, FieldContent)
			highlights.Content = highlightSentences(text, query, maxContentFragments)
		}
	}

	// One bonus and one matchedFields entry per matching tag.
	for _, tag := range doc.Tags {
		if containsFold(tag, query) {
			score += scoreTagMatch
			matched = append(matched, FieldTags)
		}
	}

	return score, highlights, matched
}

func (s *Scorer) extractContent(ctx context.Context, doc *domain.Document) (string, bool) {
	ctx, cancel := context.WithTimeout(ctx, s.contentTimeout)
	defer cancel()

	extraction, err := s.provider.ExtractContent(ctx, doc)
	if err != nil {
		s.logger.Debug("content extraction failed, scoring without content",
			"document_id", doc.ID,
			"error", err,
		)
		return "", false
	}
	return extraction.Text, true
}
