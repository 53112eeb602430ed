package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/obralink/docsearch-core/internal/core/domain"
)

// MockContentProvider is a deterministic ContentProvider for testing.
// Text is configured per document ID; unknown documents return
// domain.ErrContentUnavailable.
type MockContentProvider struct {
	mu       sync.RWMutex
	texts    map[string]string
	failNext bool
	delay    time.Duration
	calls    int
}

// NewMockContentProvider creates a new MockContentProvider
func NewMockContentProvider() *MockContentProvider {
	return &MockContentProvider{
		texts: make(map[string]string),
	}
}

// SetText configures the extracted text for a document ID
func (m *MockContentProvider) SetText(docID, text string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.texts[docID] = text
}

// SetFailNext makes the next extraction call fail
func (m *MockContentProvider) SetFailNext(fail bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failNext = fail
}

// SetDelay makes every extraction call block for d before responding,
// to exercise timeout handling
func (m *MockContentProvider) SetDelay(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.delay = d
}

// Calls returns how many extractions were attempted
func (m *MockContentProvider) Calls() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.calls
}

func (m *MockContentProvider) ExtractContent(ctx context.Context, doc *domain.Document) (*domain.ContentExtraction, error) {
	m.mu.Lock()
	m.calls++
	failNext := m.failNext
	m.failNext = false
	delay := m.delay
	text, ok := m.texts[doc.ID]
	m.mu.Unlock()

	if delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
	}

	if failNext {
		return nil, domain.ErrContentUnavailable
	}
	if !ok {
		return nil, domain.ErrContentUnavailable
	}
	return &domain.ContentExtraction{
		Text:       text,
		Confidence: 0.95,
		Pages:      []domain.PageText{{Page: 1, Text: text}},
	}, nil
}
