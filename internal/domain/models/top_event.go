package models

// TopEvent is a row of a top-N sales ranking: the event itself plus the
// metric that drove its position.
//
// Exactly one of TicketCount / RevenueCents is populated depending on
// which ranking produced the row. Revenue is an exact integer sum of
// price_in_cents, never a floating-point accumulation.
type TopEvent struct {
	Event
	TicketCount  int64 `json:"ticket_count,omitempty"`
	RevenueCents int64 `json:"revenue_cents,omitempty"`
}
