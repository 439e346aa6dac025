package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/robinboard/api/internal/models"
)

// ScheduleRepository persists the singleton weekly schedule.
type ScheduleRepository struct {
	db *sqlx.DB
}

// NewScheduleRepository constructs the repository.
func NewScheduleRepository(db *sqlx.DB) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

// GetDays returns the stored days map. Returns sql.ErrNoRows when no
// schedule was ever saved.
func (r *ScheduleRepository) GetDays(ctx context.Context) (models.Document, error) {
	const query = `SELECT days FROM schedule WHERE id = 1`
	var days models.Document
	if err := r.db.GetContext(ctx, &days, query); err != nil {
		return nil, err
	}
	return days, nil
}

// Replace wholesale-replaces the days map; weekdays absent from the new
// payload are dropped.
func (r *ScheduleRepository) Replace(ctx context.Context, days models.Document) error {
	const query = `INSERT INTO schedule (id, days, updated_at) VALUES (1, $1, now())
ON CONFLICT (id)
DO UPDATE SET days = EXCLUDED.days, updated_at = now()`
	if _, err := r.db.ExecContext(ctx, query, days); err != nil {
		return fmt.Errorf("replace schedule: %w", err)
	}
	return nil
}
