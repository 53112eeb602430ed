package domain

import "time"

// SortBy selects the ranking key
type SortBy string

const (
	SortByRelevance SortBy = "relevance"
	SortByDate      SortBy = "date"
	SortByName      SortBy = "name"
	SortBySize      SortBy = "size"
)

// SortOrder selects the ranking direction
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// SearchOptions configures a search request
type SearchOptions struct {
	Query string `json:"query"`

	// Both toggles default to true when absent
	SearchInContent  *bool `json:"searchInContent,omitempty"`
	SearchInMetadata *bool `json:"searchInMetadata,omitempty"`

	Filters   Filters   `json:"filters,omitempty"`
	SortBy    SortBy    `json:"sortBy,omitempty"`
	SortOrder SortOrder `json:"sortOrder,omitempty"`
	Limit     int       `json:"limit,omitempty"`
	Offset    int       `json:"offset,omitempty"`
}

// ContentEnabled reports whether content matching is requested (default true)
func (o *SearchOptions) ContentEnabled() bool {
	return o.SearchInContent == nil || *o.SearchInContent
}

// MetadataEnabled reports whether metadata matching is requested (default true)
func (o *SearchOptions) MetadataEnabled() bool {
	return o.SearchInMetadata == nil || *o.SearchInMetadata
}

// DefaultSearchOptions returns sensible defaults
func DefaultSearchOptions() SearchOptions {
	return SearchOptions{
		SortBy:    SortByRelevance,
		SortOrder: SortDesc,
		Limit:     50,
		Offset:    0,
	}
}

// DateRange constrains the document upload date; each side is optional
type DateRange struct {
	Start *time.Time `json:"start,omitempty"`
	End   *time.Time `json:"end,omitempty"`
}

// SizeRange constrains the document size in bytes; each side is optional
type SizeRange struct {
	Min *int64 `json:"min,omitempty"`
	Max *int64 `json:"max,omitempty"`
}

// Filters provides structured search constraints. Every populated
// dimension is a conjunctive (AND) constraint; within a set-valued
// dimension, membership is OR.
type Filters struct {
	Categories []string   `json:"categories,omitempty"`
	Types      []string   `json:"types,omitempty"`
	ProjectIDs []string   `json:"projectIds,omitempty"`
	DateRange  *DateRange `json:"dateRange,omitempty"`
	SizeRange  *SizeRange `json:"sizeRange,omitempty"`
	Tags       []string   `json:"tags,omitempty"`
}

// FieldHighlight is a highlighted metadata field value
type FieldHighlight struct {
	Field string `json:"field"`
	Text  string `json:"text"`
}

// Highlights bundles the rendering-ready match fragments for one result
type Highlights struct {
	Content  []string         `json:"content,omitempty"`
	Metadata []FieldHighlight `json:"metadata,omitempty"`
}

// SearchResult is one ranked document. Document is shared with the corpus,
// not copied.
type SearchResult struct {
	Document      *Document  `json:"document"`
	Score         int        `json:"score"`
	Highlights    Highlights `json:"highlights"`
	MatchedFields []string   `json:"matchedFields,omitempty"`
}

// SavedFilter is a named, re-appliable SearchOptions snapshot
type SavedFilter struct {
	Name    string        `json:"name"`
	Options SearchOptions `json:"options"`
}

// Clone returns a deep copy of the options so a saved snapshot cannot be
// mutated through the original value.
func (o SearchOptions) Clone() SearchOptions {
	c := o
	if o.SearchInContent != nil {
		v := *o.SearchInContent
		c.SearchInContent = &v
	}
	if o.SearchInMetadata != nil {
		v := *o.SearchInMetadata
		c.SearchInMetadata = &v
	}
	c.Filters = o.Filters.Clone()
	return c
}

// Clone returns a deep copy of the filters
func (f Filters) Clone() Filters {
	c := f
	c.Categories = cloneStrings(f.Categories)
	c.Types = cloneStrings(f.Types)
	c.ProjectIDs = cloneStrings(f.ProjectIDs)
	c.Tags = cloneStrings(f.Tags)
	if f.DateRange != nil {
		dr := DateRange{}
		if f.DateRange.Start != nil {
			v := *f.DateRange.Start
			dr.Start = &v
		}
		if f.DateRange.End != nil {
			v := *f.DateRange.End
			dr.End = &v
		}
		c.DateRange = &dr
	}
	if f.SizeRange != nil {
		sr := SizeRange{}
		if f.SizeRange.Min != nil {
			v := *f.SizeRange.Min
			sr.Min = &v
		}
		if f.SizeRange.Max != nil {
			v := *f.SizeRange.Max
			sr.Max = &v
		}
		c.SizeRange = &sr
	}
	return c
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}
