package driving

import (
	"context"

	"github.com/obralink/docsearch-core/internal/core/domain"
)

// DocumentService exposes the document corpus to callers. It is a thin
// read surface over the document repository; documents are created and
// destroyed outside this subsystem.
type DocumentService interface {
	// List returns the corpus, optionally scoped to one project.
	// An empty projectID means all projects.
	List(ctx context.Context, projectID string) ([]*domain.Document, error)

	// Get retrieves a single document by ID.
	Get(ctx context.Context, id string) (*domain.Document, error)
}
