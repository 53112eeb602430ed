package services

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/obralink/docsearch-core/internal/core/domain"
)

// rankResults orders scored results in place. Each sort key has a natural
// direction (relevance, date, and size are descending; name is ascending
// locale-aware collation); sortOrder=asc inverts the comparator sign
// uniformly. The sort is stable: ties keep pipeline-insertion order.
func rankResults(results []*domain.SearchResult, sortBy domain.SortBy, order domain.SortOrder, collation language.Tag) {
	cmp := comparatorFor(sortBy, collation)
	sort.SliceStable(results, func(i, j int) bool {
		c := cmp(results[i], results[j])
		if order == domain.SortAsc {
			c = -c
		}
		return c < 0
	})
}

// comparatorFor returns the natural comparator for a sort key. A fresh
// collator is built per sort; collators carry internal buffers and must
// not be shared across concurrent searches.
func comparatorFor(sortBy domain.SortBy, collation language.Tag) func(a, b *domain.SearchResult) int {
	switch sortBy {
	case domain.SortByDate:
		return func(a, b *domain.SearchResult) int {
			ta, _ := parseUploadDate(a.Document.UploadedAt)
			tb, _ := parseUploadDate(b.Document.UploadedAt)
			return tb.Compare(ta)
		}
	case domain.SortByName:
		collator := collate.New(collation)
		return func(a, b *domain.SearchResult) int {
			return collator.CompareString(a.Document.Name, b.Document.Name)
		}
	case domain.SortBySize:
		return func(a, b *domain.SearchResult) int {
			return compareInt64(b.Document.SizeBytes, a.Document.SizeBytes)
		}
	default: // relevance
		return func(a, b *domain.SearchResult) int {
			return compareInt64(int64(b.Score), int64(a.Score))
		}
	}
}

func compareInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
