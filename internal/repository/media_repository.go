package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/robinboard/api/internal/models"
)

// MediaRepository persists caption metadata for uploaded files. Rows are
// sparse: a file without a row simply has no caption yet.
type MediaRepository struct {
	db *sqlx.DB
}

// NewMediaRepository constructs the repository.
func NewMediaRepository(db *sqlx.DB) *MediaRepository {
	return &MediaRepository{db: db}
}

// Captions returns the filename → caption map for all metadata rows.
func (r *MediaRepository) Captions(ctx context.Context) (map[string]string, error) {
	const query = `SELECT filename, caption, created_at FROM media_files`
	var rows []models.MediaFile
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list media metadata: %w", err)
	}
	captions := make(map[string]string, len(rows))
	for _, row := range rows {
		captions[row.Filename] = row.Caption
	}
	return captions, nil
}

// Create inserts the metadata row for a freshly uploaded file.
func (r *MediaRepository) Create(ctx context.Context, filename string) error {
	const query = `INSERT INTO media_files (filename, caption, created_at) VALUES ($1, '', now())
ON CONFLICT (filename) DO NOTHING`
	if _, err := r.db.ExecContext(ctx, query, filename); err != nil {
		return fmt.Errorf("create media metadata: %w", err)
	}
	return nil
}

// UpsertCaption sets the caption for a filename, creating the row when
// absent. Existence of the file on disk is not checked here.
func (r *MediaRepository) UpsertCaption(ctx context.Context, filename, caption string) error {
	const query = `INSERT INTO media_files (filename, caption, created_at) VALUES ($1, $2, now())
ON CONFLICT (filename) DO UPDATE SET caption = EXCLUDED.caption`
	if _, err := r.db.ExecContext(ctx, query, filename, caption); err != nil {
		return fmt.Errorf("upsert media caption: %w", err)
	}
	return nil
}

// Delete removes the metadata row regardless of whether it exists.
func (r *MediaRepository) Delete(ctx context.Context, filename string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM media_files WHERE filename = $1`, filename); err != nil {
		return fmt.Errorf("delete media metadata: %w", err)
	}
	return nil
}
