package driven

import (
	"context"

	"github.com/obralink/docsearch-core/internal/core/domain"
)

// ContentProvider supplies the extracted textual content of a document.
// Implementations may be backed by a real OCR/text-extraction pipeline and
// can be slow; callers bound each call with a context deadline and treat
// any error as "no content available" for that document.
type ContentProvider interface {
	ExtractContent(ctx context.Context, doc *domain.Document) (*domain.ContentExtraction, error)
}
