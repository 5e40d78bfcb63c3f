package model

import "time"

// EventStatus is the derived lifecycle state of an event. It is computed
// from the date range whenever a write touches startDate or endDate and
// is never accepted from clients.
type EventStatus string

const (
	StatusUpcoming  EventStatus = "UPCOMING"
	StatusOngoing   EventStatus = "ONGOING"
	StatusCompleted EventStatus = "COMPLETED"
)

// EventPatch carries a partial update for an event. Nil fields are left
// untouched. Status and the date fields are set together by the service
// when the patch includes either date; clients can never set Status.
type EventPatch struct {
	Title       *string
	Description *string
	Location    *string
	Credits     *int
	NumDays     *int
	Capacity    *int
	Status      *EventStatus
	StartDate   *time.Time
	EndDate     *time.Time
}

// Event represents a row in the `events` table. Status is stored as
// written; it is not re-derived at read time, so an UPCOMING event whose
// start has passed keeps its stored status until the next date-touching
// update.
type Event struct {
	ID          uint64      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Location    string      `json:"location"`
	Credits     int         `json:"credits"`
	NumDays     int         `json:"numDays"`
	Capacity    int         `json:"capacity"`
	Status      EventStatus `json:"status"`
	StartDate   time.Time   `json:"startDate"`
	EndDate     time.Time   `json:"endDate"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}
