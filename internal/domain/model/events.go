package model

import "encoding/json"

// EventKind names a push-channel event type.
type EventKind string

const (
	// EventNewBooking signals that a booking was created; dashboards re-fetch.
	EventNewBooking EventKind = "new_booking"
	// EventNewUser signals that a user registered; dashboards re-fetch.
	EventNewUser EventKind = "new_user"
)

// Notification is one event delivered over the push channel. Transient,
// never persisted. The payload carries no contract beyond "re-fetch".
type Notification struct {
	Kind    EventKind       `json:"event"`
	Payload json.RawMessage `json:"payload,omitempty"`
}
