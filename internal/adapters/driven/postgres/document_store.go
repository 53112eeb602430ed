package postgres

import (
	"context"
	"database/sql"

	"github.com/lib/pq"

	"github.com/obralink/docsearch-core/internal/core/domain"
	"github.com/obralink/docsearch-core/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.DocumentStore = (*DocumentStore)(nil)

// DocumentStore implements driven.DocumentStore using PostgreSQL
type DocumentStore struct {
	db *DB
}

// NewDocumentStore creates a new DocumentStore
func NewDocumentStore(db *DB) *DocumentStore {
	return &DocumentStore{db: db}
}

const documentColumns = `id, name, type, category, project_id, uploaded_at, size_bytes, tags, description`

// List returns all documents, oldest first, so corpus order is stable
// across calls.
func (s *DocumentStore) List(ctx context.Context) ([]*domain.Document, error) {
	query := `SELECT ` + documentColumns + ` FROM documents ORDER BY created_at, id`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return s.scanDocuments(rows)
}

// ListByProject returns all documents for a project
func (s *DocumentStore) ListByProject(ctx context.Context, projectID string) ([]*domain.Document, error) {
	query := `SELECT ` + documentColumns + ` FROM documents WHERE project_id = $1 ORDER BY created_at, id`

	rows, err := s.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return s.scanDocuments(rows)
}

// Get retrieves a document by ID
func (s *DocumentStore) Get(ctx context.Context, id string) (*domain.Document, error) {
	query := `SELECT ` + documentColumns + ` FROM documents WHERE id = $1`

	row := s.db.QueryRowContext(ctx, query, id)

	var doc domain.Document
	err := row.Scan(
		&doc.ID,
		&doc.Name,
		&doc.Type,
		&doc.Category,
		&doc.ProjectID,
		&doc.UploadedAt,
		&doc.SizeBytes,
		pq.Array(&doc.Tags),
		&doc.Description,
	)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &doc, nil
}

// Save creates or updates a document
func (s *DocumentStore) Save(ctx context.Context, doc *domain.Document) error {
	query := `
		INSERT INTO documents (id, name, type, category, project_id, uploaded_at, size_bytes, tags, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			type = EXCLUDED.type,
			category = EXCLUDED.category,
			project_id = EXCLUDED.project_id,
			uploaded_at = EXCLUDED.uploaded_at,
			size_bytes = EXCLUDED.size_bytes,
			tags = EXCLUDED.tags,
			description = EXCLUDED.description
	`

	_, err := s.db.ExecContext(ctx, query,
		doc.ID,
		doc.Name,
		doc.Type,
		doc.Category,
		doc.ProjectID,
		doc.UploadedAt,
		doc.SizeBytes,
		pq.Array(doc.Tags),
		doc.Description,
	)
	return err
}

// Delete deletes a document
func (s *DocumentStore) Delete(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM documents WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return domain.ErrNotFound
	}

	return nil
}

// Count returns total document count
func (s *DocumentStore) Count(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM documents`).Scan(&count)
	return count, err
}

func (s *DocumentStore) scanDocuments(rows *sql.Rows) ([]*domain.Document, error) {
	var docs []*domain.Document
	for rows.Next() {
		var doc domain.Document
		err := rows.Scan(
			&doc.ID,
			&doc.Name,
			&doc.Type,
			&doc.Category,
			&doc.ProjectID,
			&doc.UploadedAt,
			&doc.SizeBytes,
			pq.Array(&doc.Tags),
			&doc.Description,
		)
		if err != nil {
			return nil, err
		}
		docs = append(docs, &doc)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return docs, nil
}
