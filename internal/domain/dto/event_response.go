package dto

import (
	"time"

	"github.com/guttosm/ticketpulse/internal/domain/models"
)

// EventResponse is the JSON shape of a single event as exposed by the API.
//
// Fields deliberately mirror the internal model today but remain a separate
// type so the wire contract can evolve independently.
type EventResponse struct {
	ID       string    `json:"id" example:"evt-001"`
	Name     string    `json:"name" example:"Summer Jazz Night"`
	StartsOn time.Time `json:"starts_on" example:"2026-06-12T20:00:00Z"`
	EndsOn   time.Time `json:"ends_on" example:"2026-06-12T23:30:00Z"`
	Location string    `json:"location" example:"Riverside Arena"`
}

// NewEventResponse maps a domain event to its API representation.
func NewEventResponse(e models.Event) EventResponse {
	return EventResponse{
		ID:       e.ID,
		Name:     e.Name,
		StartsOn: e.StartsOn,
		EndsOn:   e.EndsOn,
		Location: e.Location,
	}
}

// NewEventResponses maps a slice of domain events, preserving order.
func NewEventResponses(events []models.Event) []EventResponse {
	out := make([]EventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, NewEventResponse(e))
	}
	return out
}
