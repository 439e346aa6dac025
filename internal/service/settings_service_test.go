package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robinboard/api/internal/models"
	appErrors "github.com/robinboard/api/pkg/errors"
)

type settingsRepoStub struct {
	doc models.Document
	err error
}

func (s *settingsRepoStub) Get(ctx context.Context) (models.Document, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.doc == nil {
		return nil, sql.ErrNoRows
	}
	return s.doc.Clone(), nil
}

func (s *settingsRepoStub) MergeUpsert(ctx context.Context, partial models.Document) (models.Document, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.doc == nil {
		s.doc = models.Document{}
	}
	for key, value := range partial {
		s.doc[key] = value
	}
	return s.doc.Clone(), nil
}

func (s *settingsRepoStub) Backfill(ctx context.Context, defaults models.Document) error {
	if s.err != nil {
		return s.err
	}
	if s.doc == nil {
		s.doc = models.Document{}
	}
	for key, value := range defaults {
		if _, ok := s.doc[key]; !ok {
			s.doc[key] = value
		}
	}
	return nil
}

type publisherStub struct {
	events   []string
	payloads []interface{}
}

func (p *publisherStub) Broadcast(event string, payload interface{}) {
	p.events = append(p.events, event)
	p.payloads = append(p.payloads, payload)
}

func fixedClock(value string) func() time.Time {
	t, _ := time.Parse("2006-01-02", value)
	return func() time.Time { return t }
}

func TestSettingsServiceGetBackfillsRotationDate(t *testing.T) {
	repo := &settingsRepoStub{doc: models.Document{"schoolName": "Okul"}}
	service := NewSettingsService(repo, nil, nil)
	service.now = fixedClock("2026-03-05") // a Thursday

	doc, err := service.Get(context.Background(), true)
	require.NoError(t, err)
	assert.Equal(t, "2026-03-02", doc[models.SettingsKeyRotationStartDate])
	assert.Equal(t, "2026-03-02", repo.doc[models.SettingsKeyRotationStartDate], "resolved date must be persisted")
}

func TestSettingsServiceGetPublicProjection(t *testing.T) {
	repo := &settingsRepoStub{doc: models.Document{
		"schoolName":                        "Okul",
		models.SettingsKeyWeatherAPIKey:     "secret",
		models.SettingsKeyRotationStartDate: "2026-01-05",
	}}
	service := NewSettingsService(repo, nil, nil)

	doc, err := service.Get(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, "Okul", doc["schoolName"])
	assert.NotContains(t, doc, models.SettingsKeyWeatherAPIKey)
	assert.Equal(t, "2026-01-05", doc[models.SettingsKeyRotationStartDate], "rotation date is public, displays need it")
}

func TestSettingsServiceUpdatePreservesRotationAnchor(t *testing.T) {
	repo := &settingsRepoStub{doc: models.Document{
		models.SettingsKeyRotationStartDate: "2025-09-01",
	}}
	publisher := &publisherStub{}
	service := NewSettingsService(repo, publisher, nil)

	_, err := service.Update(context.Background(), models.Document{
		models.SettingsKeyDutySchedule: []interface{}{"Ali", "Veli"},
	})
	require.NoError(t, err)
	assert.Equal(t, "2025-09-01", repo.doc[models.SettingsKeyRotationStartDate])
	require.Len(t, publisher.events, 1)
}

func TestSettingsServiceUpdateIsIdempotent(t *testing.T) {
	repo := &settingsRepoStub{}
	service := NewSettingsService(repo, nil, nil)

	first, err := service.Update(context.Background(), models.Document{"schoolName": "A"})
	require.NoError(t, err)
	second, err := service.Update(context.Background(), models.Document{"schoolName": "A"})
	require.NoError(t, err)
	assert.Equal(t, first["schoolName"], second["schoolName"])
}

func TestSettingsServiceUpdateSeedsDefaults(t *testing.T) {
	repo := &settingsRepoStub{}
	service := NewSettingsService(repo, nil, nil)

	merged, err := service.Update(context.Background(), models.Document{"schoolName": "Yeni Okul"})
	require.NoError(t, err)
	assert.Equal(t, "Yeni Okul", merged["schoolName"])
	assert.Contains(t, merged, "bellConfig", "defaults must be seeded before a partial first write")
}

func TestSettingsServiceStoreErrorMapsToUnavailable(t *testing.T) {
	repo := &settingsRepoStub{err: errors.New("connection refused")}
	service := NewSettingsService(repo, nil, nil)

	_, err := service.Get(context.Background(), true)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrServiceUnavailable.Status, appErrors.FromError(err).Status)
}
