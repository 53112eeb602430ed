package services

import (
	"context"
	"errors"
	"testing"

	"github.com/obralink/docsearch-core/internal/core/domain"
	"github.com/obralink/docsearch-core/internal/core/ports/driven/mocks"
)

func TestDocumentService_List(t *testing.T) {
	store := mocks.NewMockDocumentStore()
	ctx := context.Background()
	for _, doc := range searchCorpus() {
		if err := store.Save(ctx, doc); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	svc := NewDocumentService(store)

	all, err := svc.List(ctx, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 documents, got %d", len(all))
	}

	scoped, err := svc.List(ctx, "proj-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(scoped) != 2 {
		t.Errorf("expected 2 documents in proj-1, got %d", len(scoped))
	}

	none, err := svc.List(ctx, "proj-99")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("expected no documents in proj-99, got %d", len(none))
	}
}

func TestDocumentService_Get(t *testing.T) {
	store := mocks.NewMockDocumentStore()
	ctx := context.Background()
	if err := store.Save(ctx, &domain.Document{ID: "doc-1", Name: "Plano"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	svc := NewDocumentService(store)

	doc, err := svc.Get(ctx, "doc-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Name != "Plano" {
		t.Errorf("expected name Plano, got %q", doc.Name)
	}

	_, err = svc.Get(ctx, "missing")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
