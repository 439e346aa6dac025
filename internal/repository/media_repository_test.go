package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robinboard/api/internal/models"
)

func TestMediaRepositoryCaptions(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewMediaRepository(db)
	rows := sqlmock.NewRows([]string{"filename", "caption", "created_at"}).
		AddRow("a1b2c3d4-pano.jpg", "Tören fotoğrafı", time.Now()).
		AddRow("e5f6a7b8-video.mp4", "", time.Now())
	mock.ExpectQuery("SELECT filename, caption").WillReturnRows(rows)

	captions, err := repo.Captions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Tören fotoğrafı", captions["a1b2c3d4-pano.jpg"])
	assert.Equal(t, "", captions["e5f6a7b8-video.mp4"])
}

func TestMediaRepositoryUpsertCaption(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewMediaRepository(db)
	mock.ExpectExec("INSERT INTO media_files").
		WithArgs("a1b2c3d4-pano.jpg", "Yeni başlık").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpsertCaption(context.Background(), "a1b2c3d4-pano.jpg", "Yeni başlık"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestScheduleRepositoryReplace(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewScheduleRepository(db)
	mock.ExpectExec("INSERT INTO schedule").
		WithArgs(sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	days := models.Document{"Pazartesi": []interface{}{"Matematik", "Fizik"}}
	require.NoError(t, repo.Replace(context.Background(), days))
	require.NoError(t, mock.ExpectationsWereMet())
}
