package domain

// Content-bearing document types. Only these can contribute a content
// match; image formats and the like have no extractable text.
const (
	TypePDF  = "pdf"
	TypeDoc  = "doc"
	TypeDocx = "docx"
)

// Document represents a project document record supplied by the document
// repository. The search engine never mutates it.
type Document struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Type        string   `json:"type"` // File-format tag (pdf, docx, jpg, ...)
	Category    string   `json:"category"`
	ProjectID   string   `json:"projectId,omitempty"`
	UploadedAt  string   `json:"uploadedAt"` // As supplied by the repository, not reformatted
	SizeBytes   int64    `json:"sizeBytes"`
	Tags        []string `json:"tags,omitempty"` // Ordered, may contain duplicates
	Description string   `json:"description,omitempty"`
}

// HasTextContent reports whether the document's type carries extractable
// text worth sending to the content provider.
func (d *Document) HasTextContent() bool {
	switch d.Type {
	case TypePDF, TypeDoc, TypeDocx:
		return true
	}
	return false
}

// PageText is the extracted text of a single page.
type PageText struct {
	Page int    `json:"page"`
	Text string `json:"text"`
}

// ContentExtraction holds the text a content provider extracted from a
// document. Confidence is informational only; it does not affect scoring.
type ContentExtraction struct {
	Text       string     `json:"text"`
	Confidence float64    `json:"confidence"`
	Pages      []PageText `json:"pages,omitempty"`
}
