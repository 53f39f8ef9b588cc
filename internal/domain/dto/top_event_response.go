package dto

import (
	"time"

	"github.com/guttosm/ticketpulse/internal/domain/models"
)

// TopEventResponse is one row of a top-N sales ranking.
//
// The metric that drove the ranking is always included: TicketCount for the
// by-count ranking, TotalRevenue (major units, two decimal places) for the
// by-revenue ranking. The other field is omitted.
type TopEventResponse struct {
	ID           string    `json:"id" example:"evt-001"`
	Name         string    `json:"name" example:"Summer Jazz Night"`
	StartsOn     time.Time `json:"starts_on" example:"2026-06-12T20:00:00Z"`
	EndsOn       time.Time `json:"ends_on" example:"2026-06-12T23:30:00Z"`
	Location     string    `json:"location" example:"Riverside Arena"`
	TicketCount  int64     `json:"ticket_count,omitempty" example:"128"`
	TotalRevenue string    `json:"total_revenue,omitempty" example:"3520.00"`
}

// NewTopEventByCountResponses maps a by-count ranking, preserving order.
func NewTopEventByCountResponses(rows []models.TopEvent) []TopEventResponse {
	out := make([]TopEventResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, TopEventResponse{
			ID:          r.ID,
			Name:        r.Name,
			StartsOn:    r.StartsOn,
			EndsOn:      r.EndsOn,
			Location:    r.Location,
			TicketCount: r.TicketCount,
		})
	}
	return out
}

// NewTopEventByRevenueResponses maps a by-revenue ranking, preserving order
// and converting the summed cents to major units.
func NewTopEventByRevenueResponses(rows []models.TopEvent) []TopEventResponse {
	out := make([]TopEventResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, TopEventResponse{
			ID:           r.ID,
			Name:         r.Name,
			StartsOn:     r.StartsOn,
			EndsOn:       r.EndsOn,
			Location:     r.Location,
			TotalRevenue: CentsToMajorUnits(r.RevenueCents),
		})
	}
	return out
}

// SalesSummaryResponse bundles both rankings for the dashboard view.
type SalesSummaryResponse struct {
	TopByCount   []TopEventResponse `json:"top_by_count"`
	TopByRevenue []TopEventResponse `json:"top_by_revenue"`
}
