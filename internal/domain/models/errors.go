package models

import "errors"

// Sentinel errors for caller mistakes. Handlers map these to 400; anything
// else coming out of the service layer is treated as an internal failure.
var (
	// ErrEmptyEventID is returned when an operation requires an event ID
	// and the caller passed an empty or blank one.
	ErrEmptyEventID = errors.New("event id must not be empty")

	// ErrInvalidDays is returned when the upcoming-events window is not a
	// positive number of days.
	ErrInvalidDays = errors.New("days must be greater than zero")

	// ErrInvalidCount is returned when a top-N limit is not a positive number.
	ErrInvalidCount = errors.New("count must be greater than zero")
)
