package models

import "time"

// TicketSale represents a single ticket purchase transaction.
//
// Prices are stored as integer minor units (cents). Conversion to major
// units happens only at the API boundary, via exact decimal arithmetic,
// so no floating-point rounding can leak into stored or aggregated values.
//
// EventName is resolved through a join when the sale is loaded; sales are
// never returned with an unresolved parent event.
type TicketSale struct {
	ID           string    `json:"id"`
	EventID      string    `json:"event_id"`
	UserID       string    `json:"user_id"`
	PurchaseDate time.Time `json:"purchase_date"`
	PriceInCents int64     `json:"price_in_cents"`
	EventName    string    `json:"event_name"`
}
