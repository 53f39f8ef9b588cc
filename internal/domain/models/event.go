package models

import "time"

// Event represents a single event in the ticketing catalog.
//
// Fields:
//   - ID: opaque unique identifier assigned by the event creator
//     (not generated by the database).
//   - Name: display name of the event.
//   - StartsOn / EndsOn: timezone-aware instants delimiting the event.
//     StartsOn <= EndsOn is assumed upstream and not enforced here.
//   - Location: display string of the venue.
//
// Events are created externally; this service only reads them.
//
// swagger:model Event
type Event struct {
	ID       string    `json:"id" example:"evt-001"`
	Name     string    `json:"name" example:"Summer Jazz Night"`
	StartsOn time.Time `json:"starts_on" example:"2026-06-12T20:00:00Z"`
	EndsOn   time.Time `json:"ends_on" example:"2026-06-12T23:30:00Z"`
	Location string    `json:"location" example:"Riverside Arena"`
}
