package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/obralink/docsearch-core/internal/core/domain"
)

// ErrorResponse represents an API error response
// @Description API error response
type ErrorResponse struct {
	Error string `json:"error" example:"invalid request body"`
}

// SearchResponse wraps one page of search results
// @Description One page of ranked search results
type SearchResponse struct {
	Results []*domain.SearchResult `json:"results"`
	Count   int                    `json:"count"`
}

// SuggestionsResponse holds autocomplete candidates
type SuggestionsResponse struct {
	Suggestions []string `json:"suggestions"`
}

// HistoryResponse holds recent queries, most-recent-first
type HistoryResponse struct {
	History []string `json:"history"`
}

// SaveFilterRequest names a SearchOptions snapshot
type SaveFilterRequest struct {
	Name    string               `json:"name"`
	Options domain.SearchOptions `json:"options"`
}

// DeleteFilterResponse reports whether a removal occurred
type DeleteFilterResponse struct {
	Deleted bool `json:"deleted"`
}

// Health endpoints

// handleHealth godoc
// @Summary      Health check
// @Tags         Health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleReady godoc
// @Summary      Readiness check
// @Description  Checks database and optional Redis connectivity
// @Tags         Health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      503  {object}  ErrorResponse
// @Router       /ready [get]
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	if s.db != nil {
		if err := s.db.Ping(r.Context()); err != nil {
			writeError(w, http.StatusServiceUnavailable, "database unavailable")
			return
		}
	}
	if s.redisClient != nil {
		if err := s.redisClient.Ping(r.Context()); err != nil {
			writeError(w, http.StatusServiceUnavailable, "redis unavailable")
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

// handleVersion godoc
// @Summary      Get API version
// @Tags         Health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /version [get]
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"version": s.version})
}

// Search endpoints

// handleSearch godoc
// @Summary      Search documents
// @Description  Runs the relevance-search pipeline over the corpus, optionally scoped to one project via the project_id query parameter
// @Tags         Search
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        project_id  query     string                false  "Project scope"
// @Param        request     body      domain.SearchOptions  true   "Search options"
// @Success      200         {object}  SearchResponse
// @Failure      400         {object}  ErrorResponse  "Invalid request body"
// @Router       /search [post]
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var opts domain.SearchOptions
	if err := json.NewDecoder(r.Body).Decode(&opts); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	docs, err := s.docService.List(r.Context(), r.URL.Query().Get("project_id"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load documents")
		return
	}

	results, err := s.searchService.Search(r.Context(), docs, opts)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "search failed")
		return
	}

	// Results must serialize as [], never null: an empty page is a valid
	// outcome, not an error.
	if results == nil {
		results = []*domain.SearchResult{}
	}
	writeJSON(w, http.StatusOK, SearchResponse{Results: results, Count: len(results)})
}

// handleSuggestions godoc
// @Summary      Autocomplete suggestions
// @Description  Returns up to 10 candidate strings for a partial query
// @Tags         Search
// @Produce      json
// @Security     BearerAuth
// @Param        q           query     string  true   "Partial query"
// @Param        project_id  query     string  false  "Project scope"
// @Success      200         {object}  SuggestionsResponse
// @Router       /search/suggestions [get]
func (s *Server) handleSuggestions(w http.ResponseWriter, r *http.Request) {
	docs, err := s.docService.List(r.Context(), r.URL.Query().Get("project_id"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load documents")
		return
	}

	suggestions, err := s.searchService.Suggest(r.Context(), r.URL.Query().Get("q"), docs)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "suggestions failed")
		return
	}
	writeJSON(w, http.StatusOK, SuggestionsResponse{Suggestions: suggestions})
}

// handleHistory godoc
// @Summary      Recent searches
// @Description  Returns up to the 10 most recent distinct queries, most-recent-first
// @Tags         Search
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  HistoryResponse
// @Router       /search/history [get]
func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	history, err := s.searchService.History(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load history")
		return
	}
	if history == nil {
		history = []string{}
	}
	writeJSON(w, http.StatusOK, HistoryResponse{History: history})
}

// Saved filter endpoints

// handleSaveFilter godoc
// @Summary      Save a named filter
// @Tags         Filters
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      SaveFilterRequest  true  "Filter name and options"
// @Success      201      {object}  domain.SavedFilter
// @Failure      400      {object}  ErrorResponse  "Invalid request body or empty name"
// @Router       /search/filters [post]
func (s *Server) handleSaveFilter(w http.ResponseWriter, r *http.Request) {
	var req SaveFilterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := s.searchService.SaveFilter(r.Context(), req.Name, req.Options); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, "filter name is required")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to save filter")
		return
	}

	writeJSON(w, http.StatusCreated, domain.SavedFilter{Name: req.Name, Options: req.Options})
}

// handleListFilters godoc
// @Summary      List saved filters
// @Description  Returns saved filters in insertion order
// @Tags         Filters
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.SavedFilter
// @Router       /search/filters [get]
func (s *Server) handleListFilters(w http.ResponseWriter, r *http.Request) {
	filters, err := s.searchService.SavedFilters(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load filters")
		return
	}
	if filters == nil {
		filters = []domain.SavedFilter{}
	}
	writeJSON(w, http.StatusOK, filters)
}

// handleDeleteFilter godoc
// @Summary      Delete a saved filter
// @Tags         Filters
// @Produce      json
// @Security     BearerAuth
// @Param        name  path      string  true  "Filter name"
// @Success      200   {object}  DeleteFilterResponse
// @Router       /search/filters/{name} [delete]
func (s *Server) handleDeleteFilter(w http.ResponseWriter, r *http.Request) {
	deleted, err := s.searchService.DeleteFilter(r.Context(), r.PathValue("name"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to delete filter")
		return
	}
	writeJSON(w, http.StatusOK, DeleteFilterResponse{Deleted: deleted})
}

// Document endpoints

// handleListDocuments godoc
// @Summary      List documents
// @Tags         Documents
// @Produce      json
// @Security     BearerAuth
// @Param        project_id  query    string  false  "Project scope"
// @Success      200         {array}  domain.Document
// @Router       /documents [get]
func (s *Server) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	docs, err := s.docService.List(r.Context(), r.URL.Query().Get("project_id"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load documents")
		return
	}
	if docs == nil {
		docs = []*domain.Document{}
	}
	writeJSON(w, http.StatusOK, docs)
}

// handleGetDocument godoc
// @Summary      Get a document
// @Tags         Documents
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Document ID"
// @Success      200  {object}  domain.Document
// @Failure      404  {object}  ErrorResponse  "Document not found"
// @Router       /documents/{id} [get]
func (s *Server) handleGetDocument(w http.ResponseWriter, r *http.Request) {
	doc, err := s.docService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "document not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to load document")
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

// Response helpers

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}
