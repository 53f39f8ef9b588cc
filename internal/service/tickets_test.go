package service

import (
	"context"
	"errors"
	"testing"

	"github.com/guttosm/ticketpulse/internal/domain/models"
)

func TestTicketsForEvent(t *testing.T) {
	cases := []struct {
		name    string
		eventID string
		repo    *stubRepo
		wantErr error
		wantLen int
	}{
		{name: "empty id rejected", eventID: "", repo: &stubRepo{}, wantErr: models.ErrEmptyEventID},
		{name: "blank id rejected", eventID: "  ", repo: &stubRepo{}, wantErr: models.ErrEmptyEventID},
		{
			name:    "success",
			eventID: "evt-1",
			repo: &stubRepo{sales: []models.TicketSale{
				{ID: "s1", EventID: "evt-1", PriceInCents: 1000, EventName: "Jazz"},
				{ID: "s2", EventID: "evt-1", PriceInCents: 2500, EventName: "Jazz"},
			}},
			wantLen: 2,
		},
		{name: "no sales is empty without error", eventID: "evt-2", repo: &stubRepo{}, wantLen: 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewTicketService(tc.repo)
			out, err := svc.TicketsForEvent(context.Background(), tc.eventID)

			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("want %v got %v", tc.wantErr, err)
				}
				if tc.repo.calls != 0 {
					t.Fatalf("storage must not be touched on invalid input")
				}
				return
			}
			if err != nil || len(out) != tc.wantLen {
				t.Fatalf("unexpected out=%+v err=%v", out, err)
			}
		})
	}
}

func TestTopEvents_CountValidation(t *testing.T) {
	for _, count := range []int{0, -1, -100} {
		repo := &stubRepo{}
		svc := NewTicketService(repo)

		if _, err := svc.TopEventsByCount(context.Background(), count); !errors.Is(err, models.ErrInvalidCount) {
			t.Fatalf("count=%d: want ErrInvalidCount got %v", count, err)
		}
		if _, err := svc.TopEventsByRevenue(context.Background(), count); !errors.Is(err, models.ErrInvalidCount) {
			t.Fatalf("count=%d: want ErrInvalidCount got %v", count, err)
		}
		if repo.calls != 0 {
			t.Fatalf("storage must not be touched on invalid count")
		}
	}
}

func TestTopEvents_Success(t *testing.T) {
	rows := []models.TopEvent{
		{Event: models.Event{ID: "evt-1"}, TicketCount: 10},
		{Event: models.Event{ID: "evt-2"}, TicketCount: 3},
	}
	svc := NewTicketService(&stubRepo{topEvents: rows})

	out, err := svc.TopEventsByCount(context.Background(), 5)
	if err != nil || len(out) != 2 || out[0].ID != "evt-1" {
		t.Fatalf("unexpected out=%+v err=%v", out, err)
	}
}

func TestSalesSummary(t *testing.T) {
	t.Run("invalid count rejected", func(t *testing.T) {
		svc := NewTicketService(&stubRepo{})
		if _, _, err := svc.SalesSummary(context.Background(), 0); !errors.Is(err, models.ErrInvalidCount) {
			t.Fatalf("want ErrInvalidCount got %v", err)
		}
	})

	t.Run("success returns both rankings", func(t *testing.T) {
		rows := []models.TopEvent{{Event: models.Event{ID: "evt-1"}, TicketCount: 4, RevenueCents: 4000}}
		svc := NewTicketService(&stubRepo{topEvents: rows})

		byCount, byRevenue, err := svc.SalesSummary(context.Background(), 5)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if len(byCount) != 1 || len(byRevenue) != 1 {
			t.Fatalf("unexpected rankings: %+v %+v", byCount, byRevenue)
		}
	})

	t.Run("first failure fails the whole operation", func(t *testing.T) {
		svc := NewTicketService(&stubRepo{err: errors.New("db down")})
		byCount, byRevenue, err := svc.SalesSummary(context.Background(), 5)
		if err == nil || byCount != nil || byRevenue != nil {
			t.Fatalf("expected failure, got %+v %+v %v", byCount, byRevenue, err)
		}
	})
}
