package service

import (
	"context"
	"time"

	"github.com/iliyamo/event-hub/internal/model"
	"github.com/iliyamo/event-hub/internal/repository"
)

// EventStore is the persistence surface for events.
type EventStore interface {
	Create(ctx context.Context, e *model.Event) (model.Event, error)
	GetByID(ctx context.Context, id uint64) (model.Event, error)
	List(ctx context.Context) ([]model.Event, error)
	Update(ctx context.Context, id uint64, patch model.EventPatch) (model.Event, error)
	Delete(ctx context.Context, id uint64) error
}

// EventService validates dates and derives status for event writes.
// Now is injectable so derivation can be tested against a fixed clock.
type EventService struct {
	Events EventStore
	Now    func() time.Time
}

func NewEventService(store EventStore) *EventService {
	return &EventService{Events: store, Now: time.Now}
}

// dateLayouts are the accepted wire formats for startDate/endDate, tried
// in order. Bare dates parse to midnight UTC.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// DeriveStatus maps a date range and the current instant to a lifecycle
// status. Boundary instants equal to now count as ONGOING on both ends.
// The result is a pure function of its three inputs.
func DeriveStatus(start, end, now time.Time) model.EventStatus {
	switch {
	case !start.After(now) && !end.Before(now):
		return model.StatusOngoing
	case end.Before(now):
		return model.StatusCompleted
	default:
		return model.StatusUpcoming
	}
}

// CreateEventInput carries the client-supplied event fields. Status is
// absent on purpose: it is always derived.
type CreateEventInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Credits     int    `json:"credits"`
	NumDays     int    `json:"numDays"`
	Capacity    int    `json:"capacity"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
}

// UpdateEventInput is a partial patch; nil fields are left unchanged.
type UpdateEventInput struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Location    *string `json:"location"`
	Credits     *int    `json:"credits"`
	NumDays     *int    `json:"numDays"`
	Capacity    *int    `json:"capacity"`
	StartDate   *string `json:"startDate"`
	EndDate     *string `json:"endDate"`
}

// Create validates the date range, derives the status and persists the
// event. Nothing is written when validation fails.
func (s *EventService) Create(ctx context.Context, in CreateEventInput) (model.Event, error) {
	start, ok := parseDate(in.StartDate)
	if !ok {
		return model.Event{}, EC(KindInvalidDate, "START_DATE_INVALID", "invalid start date format")
	}
	end, ok := parseDate(in.EndDate)
	if !ok {
		return model.Event{}, EC(KindInvalidDate, "END_DATE_INVALID", "invalid end date format")
	}
	if start.After(end) {
		return model.Event{}, EC(KindInvalidRange, "INVALID_DATE_RANGE", "event cannot end before it starts")
	}

	e := model.Event{
		Title:       in.Title,
		Description: in.Description,
		Location:    in.Location,
		Credits:     in.Credits,
		NumDays:     in.NumDays,
		Capacity:    in.Capacity,
		Status:      DeriveStatus(start, end, s.Now()),
		StartDate:   start,
		EndDate:     end,
	}
	return s.Events.Create(ctx, &e)
}

// Update applies a partial patch. When the patch touches neither date
// the other fields go straight through and the stored status stays as
// it is. When a date changes, the provided dates are merged over the
// existing ones, the range re-validated and the status recomputed with
// the same rule as Create.
func (s *EventService) Update(ctx context.Context, id uint64, in UpdateEventInput) (model.Event, error) {
	if id == 0 {
		return model.Event{}, E(KindInvalidID, "invalid event ID")
	}

	patch := model.EventPatch{
		Title:       in.Title,
		Description: in.Description,
		Location:    in.Location,
		Credits:     in.Credits,
		NumDays:     in.NumDays,
		Capacity:    in.Capacity,
	}

	if in.StartDate != nil || in.EndDate != nil {
		existing, err := s.Events.GetByID(ctx, id)
		if err != nil {
			if err == repository.ErrEventNotFound {
				return model.Event{}, E(KindNotFound, "event not found")
			}
			return model.Event{}, err
		}

		start := existing.StartDate
		if in.StartDate != nil {
			t, ok := parseDate(*in.StartDate)
			if !ok {
				return model.Event{}, EC(KindInvalidDate, "START_DATE_INVALID", "invalid start date format")
			}
			start = t
			patch.StartDate = &t
		}
		end := existing.EndDate
		if in.EndDate != nil {
			t, ok := parseDate(*in.EndDate)
			if !ok {
				return model.Event{}, EC(KindInvalidDate, "END_DATE_INVALID", "invalid end date format")
			}
			end = t
			patch.EndDate = &t
		}
		if start.After(end) {
			return model.Event{}, EC(KindInvalidRange, "INVALID_DATE_RANGE", "end date must be after start date")
		}
		status := DeriveStatus(start, end, s.Now())
		patch.Status = &status
	}

	updated, err := s.Events.Update(ctx, id, patch)
	if err != nil {
		if err == repository.ErrEventNotFound {
			return model.Event{}, E(KindNotFound, "event not found")
		}
		return model.Event{}, err
	}
	return updated, nil
}

// Get fetches one event by id.
func (s *EventService) Get(ctx context.Context, id uint64) (model.Event, error) {
	if id == 0 {
		return model.Event{}, E(KindInvalidID, "invalid event ID format")
	}
	e, err := s.Events.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrEventNotFound {
			return model.Event{}, E(KindNotFound, "event not found")
		}
		return model.Event{}, err
	}
	return e, nil
}

// List returns all events, newest start date first.
func (s *EventService) List(ctx context.Context) ([]model.Event, error) {
	return s.Events.List(ctx)
}

// Delete removes an event; a missing id is a not-found domain error.
func (s *EventService) Delete(ctx context.Context, id uint64) error {
	if id == 0 {
		return E(KindInvalidID, "invalid event ID")
	}
	if err := s.Events.Delete(ctx, id); err != nil {
		if err == repository.ErrEventNotFound {
			return E(KindNotFound, "event not found")
		}
		return err
	}
	return nil
}
