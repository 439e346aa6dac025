package service

import (
	"context"
	"database/sql"
	"errors"

	"go.uber.org/zap"

	"github.com/robinboard/api/internal/models"
	"github.com/robinboard/api/internal/realtime"
)

type scheduleRepository interface {
	GetDays(ctx context.Context) (models.Document, error)
	Replace(ctx context.Context, days models.Document) error
}

// ScheduleService reads and wholesale-replaces the weekly class
// schedule. The per-day structure is opaque to the backend.
type ScheduleService struct {
	repo      scheduleRepository
	publisher realtime.Publisher
	logger    *zap.Logger
}

// NewScheduleService constructs a ScheduleService.
func NewScheduleService(repo scheduleRepository, publisher realtime.Publisher, logger *zap.Logger) *ScheduleService {
	if publisher == nil {
		publisher = realtime.Nop{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScheduleService{repo: repo, publisher: publisher, logger: logger}
}

// Get returns the stored days map, or an empty map before the first save.
func (s *ScheduleService) Get(ctx context.Context) (models.Document, error) {
	days, err := s.repo.GetDays(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Document{}, nil
		}
		return nil, storeUnavailable(err)
	}
	if days == nil {
		days = models.Document{}
	}
	return days, nil
}

// Replace swaps the whole days map and fans the raw payload out.
func (s *ScheduleService) Replace(ctx context.Context, days models.Document) error {
	if days == nil {
		days = models.Document{}
	}
	if err := s.repo.Replace(ctx, days); err != nil {
		return storeUnavailable(err)
	}
	s.publisher.Broadcast(realtime.EventScheduleChanged, days)
	return nil
}
