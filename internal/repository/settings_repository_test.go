package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robinboard/api/internal/models"
)

func newRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	sqlxDB := sqlx.NewDb(db, "postgres")
	return sqlxDB, mock, func() {
		sqlxDB.Close()
		db.Close()
	}
}

func TestSettingsRepositoryGet(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewSettingsRepository(db)
	rows := sqlmock.NewRows([]string{"doc"}).
		AddRow([]byte(`{"schoolName":"Test Lisesi","isEmergency":false}`))
	mock.ExpectQuery("SELECT doc FROM settings").WillReturnRows(rows)

	doc, err := repo.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Test Lisesi", doc["schoolName"])
	assert.Equal(t, false, doc["isEmergency"])
}

func TestSettingsRepositoryGetNoRows(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewSettingsRepository(db)
	mock.ExpectQuery("SELECT doc FROM settings").WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background())
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestSettingsRepositoryMergeUpsert(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewSettingsRepository(db)
	rows := sqlmock.NewRows([]string{"doc"}).
		AddRow([]byte(`{"schoolName":"Test Lisesi","marqueeText":"yeni"}`))
	mock.ExpectQuery("INSERT INTO settings").
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(rows)

	merged, err := repo.MergeUpsert(context.Background(), models.Document{"marqueeText": "yeni"})
	require.NoError(t, err)
	assert.Equal(t, "yeni", merged["marqueeText"])
	assert.Equal(t, "Test Lisesi", merged["schoolName"])
}

func TestSettingsRepositoryBackfill(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewSettingsRepository(db)
	mock.ExpectExec("INSERT INTO settings").
		WithArgs(sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Backfill(context.Background(), models.DefaultSettings()))
	require.NoError(t, mock.ExpectationsWereMet())
}
