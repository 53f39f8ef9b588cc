package seed

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/guttosm/ticketpulse/internal/domain/models"
)

// Fixture is the on-disk shape of one seed file. Each file is self-contained:
// every sale in a file must reference an event defined in the same file or
// one already present in the database, otherwise the foreign key fails the
// whole batch.
type Fixture struct {
	Events      []fixtureEvent `json:"events"`
	TicketSales []fixtureSale  `json:"ticket_sales"`
}

type fixtureEvent struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	StartsOn time.Time `json:"starts_on"`
	EndsOn   time.Time `json:"ends_on"`
	Location string    `json:"location"`
}

type fixtureSale struct {
	ID           string    `json:"id"`
	EventID      string    `json:"event_id"`
	UserID       string    `json:"user_id"`
	PurchaseDate time.Time `json:"purchase_date"`
	PriceInCents int64     `json:"price_in_cents"`
}

// parseFile reads and validates one fixture file, returning domain slices
// ready for batch insertion.
//
// It is STRICT about structure: any invalid record fails the whole file, so
// a partially seeded fixture can never slip through silently.
func parseFile(path string) ([]models.Event, []models.TicketSale, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read: %w", err)
	}

	var fx Fixture
	dec := json.NewDecoder(strings.NewReader(string(raw)))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&fx); err != nil {
		return nil, nil, fmt.Errorf("decode: %w", err)
	}

	events := make([]models.Event, 0, len(fx.Events))
	for i, e := range fx.Events {
		if err := validateEvent(e); err != nil {
			return nil, nil, fmt.Errorf("event %d: %w", i, err)
		}
		events = append(events, models.Event{
			ID:       e.ID,
			Name:     e.Name,
			StartsOn: e.StartsOn,
			EndsOn:   e.EndsOn,
			Location: e.Location,
		})
	}

	sales := make([]models.TicketSale, 0, len(fx.TicketSales))
	for i, s := range fx.TicketSales {
		if err := validateSale(s); err != nil {
			return nil, nil, fmt.Errorf("ticket_sale %d: %w", i, err)
		}
		sales = append(sales, models.TicketSale{
			ID:           s.ID,
			EventID:      s.EventID,
			UserID:       s.UserID,
			PurchaseDate: s.PurchaseDate,
			PriceInCents: s.PriceInCents,
		})
	}

	return events, sales, nil
}

func validateEvent(e fixtureEvent) error {
	if strings.TrimSpace(e.ID) == "" {
		return fmt.Errorf("missing id")
	}
	if strings.TrimSpace(e.Name) == "" {
		return fmt.Errorf("missing name")
	}
	if strings.TrimSpace(e.Location) == "" {
		return fmt.Errorf("missing location")
	}
	if e.StartsOn.IsZero() || e.EndsOn.IsZero() {
		return fmt.Errorf("missing starts_on/ends_on")
	}
	if e.EndsOn.Before(e.StartsOn) {
		return fmt.Errorf("ends_on before starts_on")
	}
	return nil
}

func validateSale(s fixtureSale) error {
	if strings.TrimSpace(s.ID) == "" {
		return fmt.Errorf("missing id")
	}
	if strings.TrimSpace(s.EventID) == "" {
		return fmt.Errorf("missing event_id")
	}
	if strings.TrimSpace(s.UserID) == "" {
		return fmt.Errorf("missing user_id")
	}
	if s.PurchaseDate.IsZero() {
		return fmt.Errorf("missing purchase_date")
	}
	if s.PriceInCents < 0 {
		return fmt.Errorf("negative price_in_cents")
	}
	return nil
}
