package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/robinboard/api/internal/models"
)

// StudentRepository manages persistence for student records.
type StudentRepository struct {
	db *sqlx.DB
}

// NewStudentRepository constructs a StudentRepository.
func NewStudentRepository(db *sqlx.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

// List returns every student record.
func (r *StudentRepository) List(ctx context.Context) ([]models.Student, error) {
	const query = `SELECT id, name, class, birth_date, extra, created_at FROM students ORDER BY created_at ASC`
	var students []models.Student
	if err := r.db.SelectContext(ctx, &students, query); err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	return students, nil
}

// ListByBirthDates returns students whose birth_date matches any of the
// provided "DD-MM" keys.
func (r *StudentRepository) ListByBirthDates(ctx context.Context, keys []string) ([]models.Student, error) {
	if len(keys) == 0 {
		return nil, nil
	}
	const query = `SELECT id, name, class, birth_date, extra, created_at FROM students WHERE birth_date = ANY($1)`
	var students []models.Student
	if err := r.db.SelectContext(ctx, &students, query, pq.Array(keys)); err != nil {
		return nil, fmt.Errorf("list students by birth date: %w", err)
	}
	return students, nil
}

// CreateBulk inserts the given records within a transaction. Identity is
// always assigned here.
func (r *StudentRepository) CreateBulk(ctx context.Context, students []models.Student) error {
	if len(students) == 0 {
		return nil
	}
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin student insert tx: %w", err)
	}
	const query = `INSERT INTO students (id, name, class, birth_date, extra, created_at)
VALUES (:id, :name, :class, :birth_date, :extra, :created_at)`
	now := time.Now().UTC()
	for i := range students {
		students[i].ID = uuid.NewString()
		if students[i].Extra == nil {
			students[i].Extra = models.Document{}
		}
		students[i].CreatedAt = now
		if _, err := tx.NamedExecContext(ctx, query, students[i]); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("insert student: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit student insert tx: %w", err)
	}
	return nil
}

// Delete removes one student and returns the number of affected rows.
func (r *StudentRepository) Delete(ctx context.Context, id string) (int64, error) {
	const query = `DELETE FROM students WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return 0, fmt.Errorf("delete student: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete student rows affected: %w", err)
	}
	return affected, nil
}

// DeleteAll wipes the collection.
func (r *StudentRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM students`); err != nil {
		return fmt.Errorf("clear students: %w", err)
	}
	return nil
}
