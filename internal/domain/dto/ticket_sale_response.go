package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/guttosm/ticketpulse/internal/domain/models"
)

// TicketSaleResponse is the JSON shape of one ticket sale.
//
// Price is the major-unit amount ("10.00" for 1000 cents), formatted with
// two decimal places. The cents→major conversion is an exact base-10 shift
// (decimal.New(cents, -2)); float64 is never involved, so 999 + 1 cents
// always comes out as exactly 10.00.
type TicketSaleResponse struct {
	ID           string    `json:"id" example:"sale-001"`
	EventID      string    `json:"event_id" example:"evt-001"`
	UserID       string    `json:"user_id" example:"user-42"`
	PurchaseDate time.Time `json:"purchase_date" example:"2026-05-30T14:11:02Z"`
	Price        string    `json:"price" example:"10.00"`
	EventName    string    `json:"event_name" example:"Summer Jazz Night"`
}

// NewTicketSaleResponse maps a domain ticket sale to its API representation,
// converting the stored minor units to a major-unit decimal string.
func NewTicketSaleResponse(s models.TicketSale) TicketSaleResponse {
	return TicketSaleResponse{
		ID:           s.ID,
		EventID:      s.EventID,
		UserID:       s.UserID,
		PurchaseDate: s.PurchaseDate,
		Price:        CentsToMajorUnits(s.PriceInCents),
		EventName:    s.EventName,
	}
}

// NewTicketSaleResponses maps a slice of sales, preserving order.
func NewTicketSaleResponses(sales []models.TicketSale) []TicketSaleResponse {
	out := make([]TicketSaleResponse, 0, len(sales))
	for _, s := range sales {
		out = append(out, NewTicketSaleResponse(s))
	}
	return out
}

// CentsToMajorUnits converts an integer amount of minor currency units to a
// major-unit string with exactly two decimal places.
func CentsToMajorUnits(cents int64) string {
	return decimal.New(cents, -2).StringFixed(2)
}
