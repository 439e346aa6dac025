package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robinboard/api/internal/models"
	"github.com/robinboard/api/internal/realtime"
	appErrors "github.com/robinboard/api/pkg/errors"
)

type scheduleRepoStub struct {
	days models.Document
	err  error
}

func (s *scheduleRepoStub) GetDays(ctx context.Context) (models.Document, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.days == nil {
		return nil, sql.ErrNoRows
	}
	return s.days, nil
}

func (s *scheduleRepoStub) Replace(ctx context.Context, days models.Document) error {
	if s.err != nil {
		return s.err
	}
	s.days = days
	return nil
}

func TestScheduleServiceGetBeforeFirstSave(t *testing.T) {
	service := NewScheduleService(&scheduleRepoStub{}, nil, nil)
	days, err := service.Get(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, days)
	assert.Empty(t, days)
}

func TestScheduleServiceReplaceBroadcasts(t *testing.T) {
	repo := &scheduleRepoStub{days: models.Document{"Pazartesi": []interface{}{"Matematik"}}}
	publisher := &publisherStub{}
	service := NewScheduleService(repo, publisher, nil)

	next := models.Document{"Salı": []interface{}{"Fizik"}}
	require.NoError(t, service.Replace(context.Background(), next))
	assert.Equal(t, next, repo.days)
	require.Len(t, publisher.events, 1)
	assert.Equal(t, realtime.EventScheduleChanged, publisher.events[0])
}

func TestScheduleServiceStoreErrorMapsToUnavailable(t *testing.T) {
	service := NewScheduleService(&scheduleRepoStub{err: errors.New("connection refused")}, nil, nil)
	_, err := service.Get(context.Background())
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrServiceUnavailable.Status, appErrors.FromError(err).Status)
}
