package service

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/guttosm/ticketpulse/internal/domain/models"
	"github.com/guttosm/ticketpulse/internal/storage"
)

// TicketService defines business logic for ticket-sale reads and the
// top-N sales rankings.
type TicketService interface {
	TicketsForEvent(ctx context.Context, eventID string) ([]models.TicketSale, error)
	TopEventsByCount(ctx context.Context, count int) ([]models.TopEvent, error)
	TopEventsByRevenue(ctx context.Context, count int) ([]models.TopEvent, error)
	SalesSummary(ctx context.Context, count int) (byCount, byRevenue []models.TopEvent, err error)
}

type ticketService struct {
	repo storage.EventsRepository
}

func NewTicketService(repo storage.EventsRepository) TicketService {
	return &ticketService{repo: repo}
}

// TicketsForEvent returns every sale for the event, parent name resolved.
// An empty or blank event id is rejected before any query runs.
func (s *ticketService) TicketsForEvent(_ context.Context, eventID string) ([]models.TicketSale, error) {
	if strings.TrimSpace(eventID) == "" {
		return nil, models.ErrEmptyEventID
	}
	return s.repo.GetSalesForEvent(eventID)
}

// TopEventsByCount returns the `count` events with the most ticket sales.
// count must be positive; the handler layer clamps out-of-range values
// before this is reached.
func (s *ticketService) TopEventsByCount(_ context.Context, count int) ([]models.TopEvent, error) {
	if count <= 0 {
		return nil, models.ErrInvalidCount
	}
	return s.repo.GetTopEventsByCount(count)
}

// TopEventsByRevenue returns the `count` events with the highest summed
// revenue. Same validation as TopEventsByCount.
func (s *ticketService) TopEventsByRevenue(_ context.Context, count int) ([]models.TopEvent, error) {
	if count <= 0 {
		return nil, models.ErrInvalidCount
	}
	return s.repo.GetTopEventsByRevenue(count)
}

// SalesSummary computes both rankings for the dashboard in one call. The two
// queries are independent reads, so they run concurrently; the first error
// cancels the sibling and fails the whole operation.
func (s *ticketService) SalesSummary(ctx context.Context, count int) ([]models.TopEvent, []models.TopEvent, error) {
	if count <= 0 {
		return nil, nil, models.ErrInvalidCount
	}

	var byCount, byRevenue []models.TopEvent
	g, _ := errgroup.WithContext(ctx)

	g.Go(func() error {
		rows, err := s.repo.GetTopEventsByCount(count)
		if err != nil {
			return err
		}
		byCount = rows
		return nil
	})
	g.Go(func() error {
		rows, err := s.repo.GetTopEventsByRevenue(count)
		if err != nil {
			return err
		}
		byRevenue = rows
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return byCount, byRevenue, nil
}
