// Package queue defines the message payloads exchanged over the broker
// plus the publisher and background consumer for them.
package queue

// Actions carried by EventChanged.
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// EventChanged is published after an admin write to an event. It holds
// enough for downstream consumers to log or notify without querying the
// primary database.
type EventChanged struct {
	EventID    uint64 `json:"event_id"`
	Action     string `json:"action"`
	Title      string `json:"title,omitempty"`
	Status     string `json:"status,omitempty"`
	StartDate  string `json:"start_date,omitempty"`
	EndDate    string `json:"end_date,omitempty"`
	OccurredAt string `json:"occurred_at"`
}
