package driven

import (
	"context"

	"github.com/obralink/docsearch-core/internal/core/domain"
)

// DocumentStore is the document repository boundary. It supplies the
// corpus as an in-memory sequence; persistence of document records is
// owned entirely by the adapter behind it.
type DocumentStore interface {
	// List returns all documents.
	List(ctx context.Context) ([]*domain.Document, error)

	// ListByProject returns all documents associated with a project.
	ListByProject(ctx context.Context, projectID string) ([]*domain.Document, error)

	// Get retrieves a document by ID. Returns domain.ErrNotFound if the
	// document does not exist.
	Get(ctx context.Context, id string) (*domain.Document, error)

	// Save creates or updates a document record.
	Save(ctx context.Context, doc *domain.Document) error

	// Delete removes a document record. Returns domain.ErrNotFound if the
	// document does not exist.
	Delete(ctx context.Context, id string) error

	// Count returns the total document count.
	Count(ctx context.Context) (int, error)
}
