package storage

import (
	"database/sql"
	"errors"
	"time"

	pq "github.com/lib/pq"

	"github.com/guttosm/ticketpulse/internal/domain/models"
)

// EventsRepository defines the contract for all event and ticket-sale
// DB operations.
//
// Read methods return (nil, nil) when no matching row exists so callers can
// tell "not found" apart from a failed query. Every ordering carries an
// explicit secondary sort key (id ASC) so result order is deterministic even
// when the primary key of the sort ties.
type EventsRepository interface {
	GetEventByID(id string) (*models.Event, error)
	GetEventsStartingInRange(from, to time.Time) ([]models.Event, error)
	GetTopEventsByCount(limit int) ([]models.TopEvent, error)
	GetTopEventsByRevenue(limit int) ([]models.TopEvent, error)
	GetSalesForEvent(eventID string) ([]models.TicketSale, error)
	InsertEventsBatch(events []models.Event) error
	InsertSalesBatch(sales []models.TicketSale) error
}

type eventsRepository struct {
	db *sql.DB
}

func NewEventsRepository(db *sql.DB) EventsRepository {
	return &eventsRepository{db: db}
}

// GetEventByID returns a single event, or (nil, nil) when the id is unknown.
func (r *eventsRepository) GetEventByID(id string) (*models.Event, error) {
	var e models.Event
	err := r.db.QueryRow(`
		SELECT id, name, starts_on, ends_on, location
		FROM events
		WHERE id = $1`, id).
		Scan(&e.ID, &e.Name, &e.StartsOn, &e.EndsOn, &e.Location)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// GetEventsStartingInRange returns events with starts_on inside [from, to],
// ordered by starts_on, then id for ties.
func (r *eventsRepository) GetEventsStartingInRange(from, to time.Time) ([]models.Event, error) {
	rows, err := r.db.Query(`
		SELECT id, name, starts_on, ends_on, location
		FROM events
		WHERE starts_on >= $1 AND starts_on <= $2
		ORDER BY starts_on ASC, id ASC`, from, to)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var events []models.Event
	for rows.Next() {
		var e models.Event
		if err := rows.Scan(&e.ID, &e.Name, &e.StartsOn, &e.EndsOn, &e.Location); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// GetTopEventsByCount ranks events by number of ticket sales, descending.
// The inner join over ticket_sales means events with zero sales never appear.
func (r *eventsRepository) GetTopEventsByCount(limit int) ([]models.TopEvent, error) {
	rows, err := r.db.Query(`
		SELECT e.id, e.name, e.starts_on, e.ends_on, e.location, COUNT(ts.id) AS ticket_count
		FROM ticket_sales ts
		JOIN events e ON e.id = ts.event_id
		GROUP BY e.id, e.name, e.starts_on, e.ends_on, e.location
		ORDER BY ticket_count DESC, e.id ASC
		LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []models.TopEvent
	for rows.Next() {
		var t models.TopEvent
		if err := rows.Scan(&t.ID, &t.Name, &t.StartsOn, &t.EndsOn, &t.Location, &t.TicketCount); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// GetTopEventsByRevenue ranks events by summed price_in_cents, descending.
// The sum stays in integer cents end to end; no float arithmetic.
func (r *eventsRepository) GetTopEventsByRevenue(limit int) ([]models.TopEvent, error) {
	rows, err := r.db.Query(`
		SELECT e.id, e.name, e.starts_on, e.ends_on, e.location, SUM(ts.price_in_cents) AS revenue_cents
		FROM ticket_sales ts
		JOIN events e ON e.id = ts.event_id
		GROUP BY e.id, e.name, e.starts_on, e.ends_on, e.location
		ORDER BY revenue_cents DESC, e.id ASC
		LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []models.TopEvent
	for rows.Next() {
		var t models.TopEvent
		if err := rows.Scan(&t.ID, &t.Name, &t.StartsOn, &t.EndsOn, &t.Location, &t.RevenueCents); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// GetSalesForEvent returns every sale for an event with the parent event's
// name resolved in the same query. Resolution is an explicit inner join,
// never a lazy follow-up fetch, so a sale pointing at a missing event fails
// the query instead of producing a partial row.
func (r *eventsRepository) GetSalesForEvent(eventID string) ([]models.TicketSale, error) {
	rows, err := r.db.Query(`
		SELECT ts.id, ts.event_id, ts.user_id, ts.purchase_date, ts.price_in_cents, e.name
		FROM ticket_sales ts
		JOIN events e ON e.id = ts.event_id
		WHERE ts.event_id = $1
		ORDER BY ts.purchase_date ASC, ts.id ASC`, eventID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var sales []models.TicketSale
	for rows.Next() {
		var s models.TicketSale
		if err := rows.Scan(&s.ID, &s.EventID, &s.UserID, &s.PurchaseDate, &s.PriceInCents, &s.EventName); err != nil {
			return nil, err
		}
		sales = append(sales, s)
	}
	return sales, rows.Err()
}

// InsertEventsBatch inserts events in a single transaction using COPY into a
// staging table, then moves rows with a no-op upsert so re-seeding the same
// fixtures is idempotent.
func (r *eventsRepository) InsertEventsBatch(events []models.Event) error {
	if len(events) == 0 {
		return nil
	}
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}

	if _, err := tx.Exec(`
		CREATE TEMP TABLE events_stage
		(LIKE events INCLUDING DEFAULTS)
		ON COMMIT DROP`); err != nil {
		_ = tx.Rollback()
		return err
	}

	stmt, err := tx.Prepare(pq.CopyIn("events_stage", "id", "name", "starts_on", "ends_on", "location"))
	if err != nil {
		_ = tx.Rollback()
		return err
	}
	for _, e := range events {
		if _, err := stmt.Exec(e.ID, e.Name, e.StartsOn, e.EndsOn, e.Location); err != nil {
			_ = stmt.Close()
			_ = tx.Rollback()
			return err
		}
	}
	if _, err := stmt.Exec(); err != nil {
		_ = stmt.Close()
		_ = tx.Rollback()
		return err
	}
	if err := stmt.Close(); err != nil {
		_ = tx.Rollback()
		return err
	}

	if _, err := tx.Exec(`
		INSERT INTO events (id, name, starts_on, ends_on, location)
		SELECT id, name, starts_on, ends_on, location FROM events_stage
		ON CONFLICT (id) DO NOTHING`); err != nil {
		_ = tx.Rollback()
		return err
	}

	return tx.Commit()
}

// InsertSalesBatch inserts ticket sales the same way as InsertEventsBatch.
// The events foreign key fires when rows leave the staging table, so a sale
// referencing an unknown event fails the whole batch.
func (r *eventsRepository) InsertSalesBatch(sales []models.TicketSale) error {
	if len(sales) == 0 {
		return nil
	}
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}

	if _, err := tx.Exec(`
		CREATE TEMP TABLE ticket_sales_stage
		(LIKE ticket_sales INCLUDING DEFAULTS)
		ON COMMIT DROP`); err != nil {
		_ = tx.Rollback()
		return err
	}

	stmt, err := tx.Prepare(pq.CopyIn("ticket_sales_stage", "id", "event_id", "user_id", "purchase_date", "price_in_cents"))
	if err != nil {
		_ = tx.Rollback()
		return err
	}
	for _, s := range sales {
		if _, err := stmt.Exec(s.ID, s.EventID, s.UserID, s.PurchaseDate, s.PriceInCents); err != nil {
			_ = stmt.Close()
			_ = tx.Rollback()
			return err
		}
	}
	if _, err := stmt.Exec(); err != nil {
		_ = stmt.Close()
		_ = tx.Rollback()
		return err
	}
	if err := stmt.Close(); err != nil {
		_ = tx.Rollback()
		return err
	}

	if _, err := tx.Exec(`
		INSERT INTO ticket_sales (id, event_id, user_id, purchase_date, price_in_cents)
		SELECT id, event_id, user_id, purchase_date, price_in_cents FROM ticket_sales_stage
		ON CONFLICT (id) DO NOTHING`); err != nil {
		_ = tx.Rollback()
		return err
	}

	return tx.Commit()
}
