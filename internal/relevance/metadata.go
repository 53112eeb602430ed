package relevance

import (
	"strconv"
	"strings"

	"github.com/obralink/docsearch-core/internal/core/domain"
)

// Metadata field names as they appear in matchedFields and highlights.
const (
	FieldName        = "name"
	FieldType        = "type"
	FieldCategory    = "category"
	FieldProject     = "project"
	FieldUploadDate  = "uploadDate"
	FieldSize        = "size"
	FieldTags        = "tags"
	FieldContent     = "content"
	FieldDescription = "description"
)

// MetadataField is one stringified document field.
type MetadataField struct {
	Field string
	Value string
}

// ExtractMetadata derives the flat field->text mapping used for metadata
// matching. The result is an ordered slice, not a map: matchedFields order
// must be deterministic. Total over any well-formed document.
func ExtractMetadata(doc *domain.Document) []MetadataField {
	return []MetadataField{
		{FieldName, doc.Name},
		{FieldType, doc.Type},
		{FieldCategory, doc.Category},
		{FieldProject, doc.ProjectID},
		{FieldUploadDate, doc.UploadedAt},
		{FieldSize, strconv.FormatInt(doc.SizeBytes, 10)},
		{FieldTags, strings.Join(doc.Tags, " ")},
		{FieldDescription, doc.Description},
	}
}
