package services

import (
	"context"

	"github.com/obralink/docsearch-core/internal/core/domain"
	"github.com/obralink/docsearch-core/internal/core/ports/driven"
	"github.com/obralink/docsearch-core/internal/core/ports/driving"
)

// Ensure documentService implements DocumentService
var _ driving.DocumentService = (*documentService)(nil)

// documentService exposes the document repository to callers. Documents
// are created and destroyed outside this subsystem; this is a read surface
// that supplies the corpus for search and suggestion calls.
type documentService struct {
	store driven.DocumentStore
}

// NewDocumentService creates a new DocumentService.
func NewDocumentService(store driven.DocumentStore) driving.DocumentService {
	return &documentService{store: store}
}

func (s *documentService) List(ctx context.Context, projectID string) ([]*domain.Document, error) {
	if projectID == "" {
		return s.store.List(ctx)
	}
	return s.store.ListByProject(ctx, projectID)
}

func (s *documentService) Get(ctx context.Context, id string) (*domain.Document, error) {
	return s.store.Get(ctx, id)
}
