package service

import (
	"context"
	"strings"
	"time"

	"github.com/guttosm/ticketpulse/internal/domain/models"
	"github.com/guttosm/ticketpulse/internal/logger"
	"github.com/guttosm/ticketpulse/internal/storage"
)

// allowedDayWindows are the only look-ahead windows the API accepts for the
// upcoming-events query. Anything else well-typed is coerced to the default
// with a warning rather than rejected; callers depend on that soft-fail.
var allowedDayWindows = map[int]bool{30: true, 60: true, 180: true}

const defaultDayWindow = 30

// EventService defines business logic for event reads.
// It decouples HTTP handlers from data access.
type EventService interface {
	UpcomingEvents(ctx context.Context, days int) ([]models.Event, error)
	EventByID(ctx context.Context, id string) (*models.Event, error)
}

type eventService struct {
	repo storage.EventsRepository
	now  func() time.Time
}

func NewEventService(repo storage.EventsRepository) EventService {
	return &eventService{repo: repo, now: time.Now}
}

// UpcomingEvents returns events starting within the next `days` days,
// ordered ascending by start time.
//
// days must be positive; a non-positive value is a caller error. A positive
// value outside {30, 60, 180} is coerced to 30 with a warning log, which
// replicates the controller behavior the API has always had.
func (s *eventService) UpcomingEvents(_ context.Context, days int) ([]models.Event, error) {
	if days <= 0 {
		return nil, models.ErrInvalidDays
	}
	if !allowedDayWindows[days] {
		logger.L().Warn().Int("days", days).Int("default", defaultDayWindow).Msg("invalid day window, using default")
		days = defaultDayWindow
	}

	from := s.now().UTC()
	to := from.AddDate(0, 0, days)
	return s.repo.GetEventsStartingInRange(from, to)
}

// EventByID returns one event, or (nil, nil) when the id is unknown.
// An empty or blank id is rejected before any query runs.
func (s *eventService) EventByID(_ context.Context, id string) (*models.Event, error) {
	if strings.TrimSpace(id) == "" {
		return nil, models.ErrEmptyEventID
	}
	return s.repo.GetEventByID(id)
}
