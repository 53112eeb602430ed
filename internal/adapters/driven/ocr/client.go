package ocr

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/obralink/docsearch-core/internal/core/domain"
	"github.com/obralink/docsearch-core/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.ContentProvider = (*Client)(nil)

// Client implements driven.ContentProvider against an external
// OCR/text-extraction service. The scorer bounds each call with a
// per-document deadline; a failed or timed-out extraction degrades that
// document to "no content" instead of failing the search.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Config holds OCR service connection configuration
type Config struct {
	// BaseURL is the extraction service endpoint (e.g., http://localhost:9090)
	BaseURL string

	// Timeout for HTTP requests
	Timeout time.Duration
}

// DefaultConfig returns sensible defaults
func DefaultConfig(baseURL string) Config {
	return Config{
		BaseURL: baseURL,
		Timeout: 15 * time.Second,
	}
}

// NewClient creates a new OCR-backed ContentProvider
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

type extractRequest struct {
	DocumentID string `json:"document_id"`
	Name       string `json:"name"`
	Type       string `json:"type"`
}

type extractResponse struct {
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"`
	Pages      []struct {
		Page int    `json:"page"`
		Text string `json:"text"`
	} `json:"pages"`
}

// ExtractContent requests the extracted text of a document.
func (c *Client) ExtractContent(ctx context.Context, doc *domain.Document) (*domain.ContentExtraction, error) {
	body, err := json.Marshal(extractRequest{
		DocumentID: doc.ID,
		Name:       doc.Name,
		Type:       doc.Type,
	})
	if err != nil {
		return nil, err
	}

	url := c.baseURL + "/v1/extract"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrContentUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: extraction failed: %s - %s",
			domain.ErrContentUnavailable, resp.Status, string(respBody))
	}

	var extracted extractResponse
	if err := json.NewDecoder(resp.Body).Decode(&extracted); err != nil {
		return nil, fmt.Errorf("%w: invalid extraction response: %v", domain.ErrContentUnavailable, err)
	}

	result := &domain.ContentExtraction{
		Text:       extracted.Text,
		Confidence: extracted.Confidence,
	}
	for _, page := range extracted.Pages {
		result.Pages = append(result.Pages, domain.PageText{Page: page.Page, Text: page.Text})
	}
	return result, nil
}

// HealthCheck verifies the extraction service is reachable.
func (c *Client) HealthCheck(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("ocr service unhealthy: %s", resp.Status)
	}
	return nil
}
