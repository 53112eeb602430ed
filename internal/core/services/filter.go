package services

import (
	"time"

	"github.com/obralink/docsearch-core/internal/core/domain"
)

// Upload-date layouts accepted from the document repository. Records carry
// the date exactly as uploaded, so several formats show up in practice.
var uploadDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// applyFilters retains the documents that pass every populated filter
// dimension. It runs before scoring, is independent of the query string,
// and never produces a score.
func applyFilters(docs []*domain.Document, f domain.Filters) []*domain.Document {
	filtered := make([]*domain.Document, 0, len(docs))
	for _, doc := range docs {
		if matchesFilters(doc, f) {
			filtered = append(filtered, doc)
		}
	}
	return filtered
}

func matchesFilters(doc *domain.Document, f domain.Filters) bool {
	if !memberOf(doc.Category, f.Categories) {
		return false
	}
	if !memberOf(doc.Type, f.Types) {
		return false
	}
	if !memberOf(doc.ProjectID, f.ProjectIDs) {
		return false
	}
	if !matchesDateRange(doc, f.DateRange) {
		return false
	}
	if !matchesSizeRange(doc, f.SizeRange) {
		return false
	}
	if !matchesTags(doc, f.Tags) {
		return false
	}
	return true
}

// memberOf reports set membership; an empty set means "no constraint".
func memberOf(value string, set []string) bool {
	if len(set) == 0 {
		return true
	}
	for _, v := range set {
		if v == value {
			return true
		}
	}
	return false
}

// matchesDateRange checks the upload date against the populated range
// sides. A document with an unparsable date fails a populated date filter.
func matchesDateRange(doc *domain.Document, r *domain.DateRange) bool {
	if r == nil || (r.Start == nil && r.End == nil) {
		return true
	}
	uploaded, ok := parseUploadDate(doc.UploadedAt)
	if !ok {
		return false
	}
	if r.Start != nil && uploaded.Before(*r.Start) {
		return false
	}
	if r.End != nil && uploaded.After(*r.End) {
		return false
	}
	return true
}

func matchesSizeRange(doc *domain.Document, r *domain.SizeRange) bool {
	if r == nil {
		return true
	}
	if r.Min != nil && doc.SizeBytes < *r.Min {
		return false
	}
	if r.Max != nil && doc.SizeBytes > *r.Max {
		return false
	}
	return true
}

// matchesTags retains a document with at least one tag in the filter set.
// Unlike the outer dimensions, membership within tags is OR.
func matchesTags(doc *domain.Document, tags []string) bool {
	if len(tags) == 0 {
		return true
	}
	for _, docTag := range doc.Tags {
		for _, filterTag := range tags {
			if docTag == filterTag {
				return true
			}
		}
	}
	return false
}

// parseUploadDate parses a repository-supplied upload date.
func parseUploadDate(s string) (time.Time, bool) {
	for _, layout := range uploadDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
