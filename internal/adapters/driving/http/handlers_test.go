package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/obralink/docsearch-core/internal/adapters/driven/memory"
	"github.com/obralink/docsearch-core/internal/core/domain"
	"github.com/obralink/docsearch-core/internal/core/ports/driven/mocks"
	"github.com/obralink/docsearch-core/internal/core/services"
	"github.com/obralink/docsearch-core/internal/relevance"
)

const testSecret = "test-secret"

func newTestServer(t *testing.T) *Server {
	t.Helper()

	store := mocks.NewMockDocumentStore()
	ctx := context.Background()
	docs := []*domain.Document{
		{
			ID:         "doc-1",
			Name:       "Plano Estructural A",
			Type:       "pdf",
			Category:   "planos",
			ProjectID:  "proj-1",
			UploadedAt: "2024-03-15T10:30:00Z",
			SizeBytes:  204800,
			Tags:       []string{"estructura"},
		},
		{
			ID:         "doc-2",
			Name:       "Factura 001",
			Type:       "pdf",
			Category:   "facturas",
			ProjectID:  "proj-2",
			UploadedAt: "2024-01-10T08:00:00Z",
			SizeBytes:  51200,
			Tags:       []string{"finanzas"},
		},
	}
	for _, doc := range docs {
		require.NoError(t, store.Save(ctx, doc))
	}

	scorer := relevance.NewScorer(relevance.ScorerConfig{
		Provider:       mocks.NewMockContentProvider(),
		ContentTimeout: 100 * time.Millisecond,
	})
	searchService := services.NewSearchService(services.SearchServiceConfig{
		Scorer:       scorer,
		History:      memory.NewHistoryStore(),
		SavedFilters: memory.NewSavedFilterStore(),
		Collation:    language.Spanish,
	})
	docService := services.NewDocumentService(store)

	return NewServer(Config{
		Host:      "127.0.0.1",
		Port:      0,
		Version:   "test",
		JWTSecret: testSecret,
	}, searchService, docService, nil, nil)
}

func signToken(t *testing.T, secret string, expiresAt time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "user-1",
		"exp": expiresAt.Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func authedRequest(t *testing.T, method, target string, body []byte) *http.Request {
	t.Helper()
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, time.Now().Add(time.Hour)))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

func TestHealthEndpoints(t *testing.T) {
	server := newTestServer(t)

	for _, path := range []string{"/health", "/ready", "/version"} {
		rec := httptest.NewRecorder()
		server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestSearch_RequiresAuth(t *testing.T) {
	server := newTestServer(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/search", bytes.NewReader([]byte(`{}`)))
	server.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSearch_ExpiredToken(t *testing.T) {
	server := newTestServer(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/search", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, time.Now().Add(-time.Hour)))
	server.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var errResp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
	assert.Equal(t, "token expired", errResp.Error)
}

func TestSearch_WrongSecret(t *testing.T) {
	server := newTestServer(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/search", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Authorization", "Bearer "+signToken(t, "other-secret", time.Now().Add(time.Hour)))
	server.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSearch(t *testing.T) {
	server := newTestServer(t)

	body := []byte(`{"query": "plano"}`)
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, authedRequest(t, http.MethodPost, "/api/v1/search", body))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp SearchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Count)
	assert.Equal(t, "doc-1", resp.Results[0].Document.ID)
	// +10 for the name, +5 for the "planos" category.
	assert.Equal(t, 15, resp.Results[0].Score)
	assert.Equal(t, []string{"name", "category"}, resp.Results[0].MatchedFields)
}

func TestSearch_ProjectScope(t *testing.T) {
	server := newTestServer(t)

	// Both documents are pdf, but the corpus is scoped to proj-2.
	body := []byte(`{"query": "", "filters": {"types": ["pdf"]}}`)
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, authedRequest(t, http.MethodPost, "/api/v1/search?project_id=proj-2", body))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp SearchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Count)
	assert.Equal(t, "doc-2", resp.Results[0].Document.ID)
}

func TestSearch_NoMatchesReturnsEmptyArray(t *testing.T) {
	server := newTestServer(t)

	body := []byte(`{"query": "inexistente"}`)
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, authedRequest(t, http.MethodPost, "/api/v1/search", body))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"results": [], "count": 0}`, rec.Body.String())
}

func TestSearch_InvalidBody(t *testing.T) {
	server := newTestServer(t)

	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, authedRequest(t, http.MethodPost, "/api/v1/search", []byte(`{not json`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSuggestions(t *testing.T) {
	server := newTestServer(t)

	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, authedRequest(t, http.MethodGet, "/api/v1/search/suggestions?q=plano", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp SuggestionsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []string{"Plano Estructural A", "planos"}, resp.Suggestions)
}

func TestSuggestions_EmptyQuery(t *testing.T) {
	server := newTestServer(t)

	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, authedRequest(t, http.MethodGet, "/api/v1/search/suggestions", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"suggestions": []}`, rec.Body.String())
}

func TestHistory(t *testing.T) {
	server := newTestServer(t)

	for _, q := range []string{"plano", "factura"} {
		rec := httptest.NewRecorder()
		body := []byte(`{"query": "` + q + `"}`)
		server.Handler().ServeHTTP(rec, authedRequest(t, http.MethodPost, "/api/v1/search", body))
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, authedRequest(t, http.MethodGet, "/api/v1/search/history", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp HistoryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []string{"factura", "plano"}, resp.History)
}

func TestSavedFilters_Lifecycle(t *testing.T) {
	server := newTestServer(t)

	saveBody := []byte(`{"name": "mis planos", "options": {"query": "plano", "filters": {"categories": ["planos"]}}}`)
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, authedRequest(t, http.MethodPost, "/api/v1/search/filters", saveBody))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, authedRequest(t, http.MethodGet, "/api/v1/search/filters", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var filters []domain.SavedFilter
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &filters))
	require.Len(t, filters, 1)
	assert.Equal(t, "mis planos", filters[0].Name)
	assert.Equal(t, "plano", filters[0].Options.Query)

	rec = httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, authedRequest(t, http.MethodDelete, "/api/v1/search/filters/mis%20planos", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"deleted": true}`, rec.Body.String())

	rec = httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, authedRequest(t, http.MethodDelete, "/api/v1/search/filters/mis%20planos", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"deleted": false}`, rec.Body.String())
}

func TestSaveFilter_EmptyName(t *testing.T) {
	server := newTestServer(t)

	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, authedRequest(t, http.MethodPost, "/api/v1/search/filters", []byte(`{"name": "  "}`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListDocuments(t *testing.T) {
	server := newTestServer(t)

	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, authedRequest(t, http.MethodGet, "/api/v1/documents", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var docs []*domain.Document
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &docs))
	assert.Len(t, docs, 2)
}

func TestGetDocument(t *testing.T) {
	server := newTestServer(t)

	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, authedRequest(t, http.MethodGet, "/api/v1/documents/doc-1", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var doc domain.Document
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.Equal(t, "Plano Estructural A", doc.Name)
}

func TestGetDocument_NotFound(t *testing.T) {
	server := newTestServer(t)

	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, authedRequest(t, http.MethodGet, "/api/v1/documents/missing", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
