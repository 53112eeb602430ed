package services

import (
	"strings"

	"github.com/obralink/docsearch-core/internal/core/domain"
)

const maxSuggestions = 10

// suggestions produces autocomplete candidates for a partial query:
// document names first, then categories, then tag values, deduplicated by
// exact string equality and capped at maxSuggestions. Matching is
// case-insensitive substring containment, independent of the main search
// pipeline. An empty query yields an empty list.
func suggestions(query string, docs []*domain.Document) []string {
	if strings.TrimSpace(query) == "" {
		return []string{}
	}

	lowerQuery := strings.ToLower(query)
	seen := make(map[string]struct{})
	out := make([]string, 0, maxSuggestions)

	add := func(candidate string) bool {
		if candidate == "" || !strings.Contains(strings.ToLower(candidate), lowerQuery) {
			return len(out) < maxSuggestions
		}
		if _, dup := seen[candidate]; dup {
			return len(out) < maxSuggestions
		}
		seen[candidate] = struct{}{}
		out = append(out, candidate)
		return len(out) < maxSuggestions
	}

	for _, doc := range docs {
		if !add(doc.Name) {
			return out
		}
	}
	for _, doc := range docs {
		if !add(doc.Category) {
			return out
		}
	}
	for _, doc := range docs {
		for _, tag := range doc.Tags {
			if !add(tag) {
				return out
			}
		}
	}
	return out
}
