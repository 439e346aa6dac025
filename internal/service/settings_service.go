package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/robinboard/api/internal/models"
	"github.com/robinboard/api/internal/realtime"
	appErrors "github.com/robinboard/api/pkg/errors"
)

type settingsRepository interface {
	Get(ctx context.Context) (models.Document, error)
	MergeUpsert(ctx context.Context, partial models.Document) (models.Document, error)
	Backfill(ctx context.Context, defaults models.Document) error
}

// SettingsService owns the singleton board configuration: public/admin
// projection, lazy rotation-date backfill and the merge-upsert flow.
type SettingsService struct {
	repo      settingsRepository
	publisher realtime.Publisher
	logger    *zap.Logger
	now       func() time.Time
}

// NewSettingsService constructs a SettingsService.
func NewSettingsService(repo settingsRepository, publisher realtime.Publisher, logger *zap.Logger) *SettingsService {
	if publisher == nil {
		publisher = realtime.Nop{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SettingsService{repo: repo, publisher: publisher, logger: logger, now: time.Now}
}

// EnsureDefaults seeds the singleton at startup and backfills any keys
// added since the document was first created. Existing values win.
func (s *SettingsService) EnsureDefaults(ctx context.Context) error {
	if err := s.repo.Backfill(ctx, models.DefaultSettings()); err != nil {
		return storeUnavailable(err)
	}
	return nil
}

// Get returns the settings document. Non-admin callers receive only the
// public allow-list. An empty dutyRotationStartDate is resolved to the
// Monday of the current week and persisted before it is returned.
func (s *SettingsService) Get(ctx context.Context, isAdmin bool) (models.Document, error) {
	doc, err := s.repo.Get(ctx)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			return nil, storeUnavailable(err)
		}
		doc = models.Document{}
	}

	if rotationDate(doc) == "" {
		monday := mondayISO(s.now())
		doc[models.SettingsKeyRotationStartDate] = monday
		if _, err := s.repo.MergeUpsert(ctx, models.Document{models.SettingsKeyRotationStartDate: monday}); err != nil {
			return nil, storeUnavailable(err)
		}
	}

	if isAdmin {
		return doc, nil
	}

	public := models.Document{}
	for key, value := range doc {
		if _, ok := models.PublicSettingsFields[key]; ok {
			public[key] = value
		}
	}
	return public, nil
}

// Update merge-upserts the partial document and fans the raw payload out
// to connected displays. A dutySchedule edit without an explicit
// rotation date inherits the stored one so a roster edit never resets
// the rotation anchor. The defaults are re-applied before the merge so
// a partial first write cannot produce a malformed singleton.
func (s *SettingsService) Update(ctx context.Context, partial models.Document) (models.Document, error) {
	if partial == nil {
		partial = models.Document{}
	}

	if _, hasDuty := partial[models.SettingsKeyDutySchedule]; hasDuty {
		if _, hasDate := partial[models.SettingsKeyRotationStartDate]; !hasDate {
			current, err := s.repo.Get(ctx)
			if err != nil && !errors.Is(err, sql.ErrNoRows) {
				return nil, storeUnavailable(err)
			}
			anchor := rotationDate(current)
			if anchor == "" {
				anchor = mondayISO(s.now())
			}
			partial[models.SettingsKeyRotationStartDate] = anchor
		}
	}

	if err := s.repo.Backfill(ctx, models.DefaultSettings()); err != nil {
		return nil, storeUnavailable(err)
	}
	merged, err := s.repo.MergeUpsert(ctx, partial)
	if err != nil {
		return nil, storeUnavailable(err)
	}

	s.publisher.Broadcast(realtime.EventSettingsChanged, partial)
	return merged, nil
}

func rotationDate(doc models.Document) string {
	if doc == nil {
		return ""
	}
	value, _ := doc[models.SettingsKeyRotationStartDate].(string)
	return value
}

// mondayISO returns the ISO date of the Monday of the week containing t.
func mondayISO(t time.Time) string {
	daysSinceMonday := (int(t.Weekday()) + 6) % 7
	return t.AddDate(0, 0, -daysSinceMonday).Format("2006-01-02")
}

func storeUnavailable(err error) *appErrors.Error {
	return appErrors.Wrap(err, appErrors.ErrServiceUnavailable.Code, appErrors.ErrServiceUnavailable.Status, "Veritabanı bağlantısı yok")
}
