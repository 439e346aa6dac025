package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/robinboard/api/internal/models"
)

// SettingsRepository persists the singleton settings document.
type SettingsRepository struct {
	db *sqlx.DB
}

// NewSettingsRepository constructs the repository.
func NewSettingsRepository(db *sqlx.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// Get fetches the settings document. Returns sql.ErrNoRows when the
// singleton was never created.
func (r *SettingsRepository) Get(ctx context.Context) (models.Document, error) {
	const query = `SELECT doc FROM settings WHERE id = 1`
	var doc models.Document
	if err := r.db.GetContext(ctx, &doc, query); err != nil {
		return nil, err
	}
	return doc, nil
}

// MergeUpsert applies a top-level merge of the partial document: named
// keys are replaced, unlisted keys stay untouched, and the row is
// created when absent. Returns the merged result.
func (r *SettingsRepository) MergeUpsert(ctx context.Context, partial models.Document) (models.Document, error) {
	const query = `INSERT INTO settings (id, doc, updated_at) VALUES (1, $1, now())
ON CONFLICT (id)
DO UPDATE SET doc = settings.doc || EXCLUDED.doc, updated_at = now()
RETURNING doc`
	var merged models.Document
	if err := r.db.GetContext(ctx, &merged, query, partial); err != nil {
		return nil, fmt.Errorf("merge settings: %w", err)
	}
	return merged, nil
}

// Backfill seeds the singleton with the default document, or merges the
// defaults underneath the stored document so missing keys are added
// without overwriting existing values.
func (r *SettingsRepository) Backfill(ctx context.Context, defaults models.Document) error {
	const query = `INSERT INTO settings (id, doc, updated_at) VALUES (1, $1, now())
ON CONFLICT (id)
DO UPDATE SET doc = EXCLUDED.doc || settings.doc, updated_at = now()`
	if _, err := r.db.ExecContext(ctx, query, defaults); err != nil {
		return fmt.Errorf("backfill settings: %w", err)
	}
	return nil
}
