package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/guttosm/ticketpulse/internal/domain/models"
)

// stubRepo records the arguments of the last range query so tests can assert
// on the effective window. The mutex keeps it safe under the concurrent
// sales-summary fan-out.
type stubRepo struct {
	events    []models.Event
	event     *models.Event
	topEvents []models.TopEvent
	sales     []models.TicketSale
	err       error

	mu       sync.Mutex
	lastFrom time.Time
	lastTo   time.Time
	calls    int
}

func (s *stubRepo) touch() {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
}

func (s *stubRepo) GetEventByID(_ string) (*models.Event, error) {
	s.touch()
	return s.event, s.err
}

func (s *stubRepo) GetEventsStartingInRange(from, to time.Time) ([]models.Event, error) {
	s.mu.Lock()
	s.calls++
	s.lastFrom = from
	s.lastTo = to
	s.mu.Unlock()
	return s.events, s.err
}

func (s *stubRepo) GetTopEventsByCount(_ int) ([]models.TopEvent, error) {
	s.touch()
	return s.topEvents, s.err
}

func (s *stubRepo) GetTopEventsByRevenue(_ int) ([]models.TopEvent, error) {
	s.touch()
	return s.topEvents, s.err
}

func (s *stubRepo) GetSalesForEvent(_ string) ([]models.TicketSale, error) {
	s.touch()
	return s.sales, s.err
}

func (s *stubRepo) InsertEventsBatch(_ []models.Event) error { return s.err }

func (s *stubRepo) InsertSalesBatch(_ []models.TicketSale) error { return s.err }

func fixedNow() time.Time {
	return time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
}

func newEventServiceWithClock(repo *stubRepo) *eventService {
	return &eventService{repo: repo, now: fixedNow}
}

func TestUpcomingEvents_Validation(t *testing.T) {
	cases := []struct {
		name     string
		days     int
		wantErr  error
		wantDays int // effective window the repo must be queried with
	}{
		{name: "zero rejected", days: 0, wantErr: models.ErrInvalidDays},
		{name: "negative rejected", days: -5, wantErr: models.ErrInvalidDays},
		{name: "30 accepted", days: 30, wantDays: 30},
		{name: "60 accepted", days: 60, wantDays: 60},
		{name: "180 accepted", days: 180, wantDays: 180},
		{name: "45 coerced to 30", days: 45, wantDays: 30},
		{name: "7 coerced to 30", days: 7, wantDays: 30},
		{name: "1000 coerced to 30", days: 1000, wantDays: 30},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &stubRepo{}
			svc := newEventServiceWithClock(repo)

			_, err := svc.UpcomingEvents(context.Background(), tc.days)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("want %v got %v", tc.wantErr, err)
				}
				if repo.calls != 0 {
					t.Fatalf("storage must not be touched on invalid input")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			wantTo := fixedNow().UTC().AddDate(0, 0, tc.wantDays)
			if !repo.lastFrom.Equal(fixedNow().UTC()) || !repo.lastTo.Equal(wantTo) {
				t.Fatalf("window [%v, %v], want [%v, %v]", repo.lastFrom, repo.lastTo, fixedNow().UTC(), wantTo)
			}
		})
	}
}

func TestUpcomingEvents_CoercionMatchesDefaultWindow(t *testing.T) {
	// For any days outside {30,60,180}, the query window must be identical
	// to the one produced by days=30.
	repoDefault := &stubRepo{}
	svcDefault := newEventServiceWithClock(repoDefault)
	if _, err := svcDefault.UpcomingEvents(context.Background(), 30); err != nil {
		t.Fatalf("baseline: %v", err)
	}

	for _, days := range []int{1, 29, 31, 45, 90, 179, 181, 365} {
		repo := &stubRepo{}
		svc := newEventServiceWithClock(repo)
		if _, err := svc.UpcomingEvents(context.Background(), days); err != nil {
			t.Fatalf("days=%d: %v", days, err)
		}
		if !repo.lastFrom.Equal(repoDefault.lastFrom) || !repo.lastTo.Equal(repoDefault.lastTo) {
			t.Fatalf("days=%d window differs from days=30", days)
		}
	}
}

func TestEventByID(t *testing.T) {
	starts := fixedNow()
	cases := []struct {
		name    string
		id      string
		repo    *stubRepo
		wantErr error
		wantNil bool
	}{
		{name: "empty id rejected", id: "", repo: &stubRepo{}, wantErr: models.ErrEmptyEventID},
		{name: "blank id rejected", id: "   ", repo: &stubRepo{}, wantErr: models.ErrEmptyEventID},
		{
			name: "found",
			id:   "evt-1",
			repo: &stubRepo{event: &models.Event{ID: "evt-1", Name: "Jazz", StartsOn: starts, EndsOn: starts.Add(time.Hour), Location: "Arena"}},
		},
		{name: "not found is nil without error", id: "missing", repo: &stubRepo{}, wantNil: true},
		{name: "storage failure propagates", id: "evt-1", repo: &stubRepo{err: errors.New("db down")}, wantErr: nil, wantNil: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewEventService(tc.repo)
			out, err := svc.EventByID(context.Background(), tc.id)

			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("want %v got %v", tc.wantErr, err)
				}
				if tc.repo.calls != 0 {
					t.Fatalf("storage must not be touched on invalid input")
				}
				return
			}
			if tc.repo.err != nil {
				if err == nil {
					t.Fatalf("expected propagated storage error")
				}
				return
			}
			if tc.wantNil {
				if err != nil || out != nil {
					t.Fatalf("want nil,nil got out=%+v err=%v", out, err)
				}
				return
			}
			if err != nil || out == nil || out.ID != tc.id {
				t.Fatalf("unexpected out=%+v err=%v", out, err)
			}
		})
	}
}
