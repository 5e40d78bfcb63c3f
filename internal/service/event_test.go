package service

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/iliyamo/event-hub/internal/model"
	"github.com/iliyamo/event-hub/internal/repository"
)

// fakeEventStore is an in-memory EventStore mirroring the repository
// contract, including ErrEventNotFound on misses.
type fakeEventStore struct {
	nextID uint64
	events map[uint64]model.Event
}

func newFakeEventStore() *fakeEventStore {
	return &fakeEventStore{nextID: 1, events: map[uint64]model.Event{}}
}

func (s *fakeEventStore) Create(_ context.Context, e *model.Event) (model.Event, error) {
	e.ID = s.nextID
	s.nextID++
	e.CreatedAt = time.Now().UTC()
	e.UpdatedAt = e.CreatedAt
	s.events[e.ID] = *e
	return *e, nil
}

func (s *fakeEventStore) GetByID(_ context.Context, id uint64) (model.Event, error) {
	e, ok := s.events[id]
	if !ok {
		return model.Event{}, repository.ErrEventNotFound
	}
	return e, nil
}

func (s *fakeEventStore) List(_ context.Context) ([]model.Event, error) {
	out := make([]model.Event, 0, len(s.events))
	for _, e := range s.events {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartDate.After(out[j].StartDate) })
	return out, nil
}

func (s *fakeEventStore) Update(_ context.Context, id uint64, patch model.EventPatch) (model.Event, error) {
	e, ok := s.events[id]
	if !ok {
		return model.Event{}, repository.ErrEventNotFound
	}
	if patch.Title != nil {
		e.Title = *patch.Title
	}
	if patch.Description != nil {
		e.Description = *patch.Description
	}
	if patch.Location != nil {
		e.Location = *patch.Location
	}
	if patch.Credits != nil {
		e.Credits = *patch.Credits
	}
	if patch.NumDays != nil {
		e.NumDays = *patch.NumDays
	}
	if patch.Capacity != nil {
		e.Capacity = *patch.Capacity
	}
	if patch.Status != nil {
		e.Status = *patch.Status
	}
	if patch.StartDate != nil {
		e.StartDate = *patch.StartDate
	}
	if patch.EndDate != nil {
		e.EndDate = *patch.EndDate
	}
	e.UpdatedAt = time.Now().UTC()
	s.events[id] = e
	return e, nil
}

func (s *fakeEventStore) Delete(_ context.Context, id uint64) error {
	if _, ok := s.events[id]; !ok {
		return repository.ErrEventNotFound
	}
	delete(s.events, id)
	return nil
}

func newTestEventService(store *fakeEventStore, now time.Time) *EventService {
	return &EventService{Events: store, Now: func() time.Time { return now }}
}

func TestDeriveStatus(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
	day := 24 * time.Hour

	tests := []struct {
		name       string
		start, end time.Time
		want       model.EventStatus
	}{
		{"future range", now.Add(day), now.Add(3 * day), model.StatusUpcoming},
		{"past range", now.Add(-3 * day), now.Add(-day), model.StatusCompleted},
		{"spanning now", now.Add(-day), now.Add(day), model.StatusOngoing},
		{"starts exactly now", now, now.Add(day), model.StatusOngoing},
		{"ends exactly now", now.Add(-day), now, model.StatusOngoing},
		{"single instant now", now, now, model.StatusOngoing},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveStatus(tt.start, tt.end, now)
			if got != tt.want {
				t.Fatalf("DeriveStatus() = %s, want %s", got, tt.want)
			}
			// Same inputs, same output.
			if again := DeriveStatus(tt.start, tt.end, now); again != got {
				t.Fatalf("DeriveStatus() not idempotent: %s then %s", got, again)
			}
		})
	}
}

func TestCreateEventDerivesStatus(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
	store := newFakeEventStore()
	svc := newTestEventService(store, now)

	e, err := svc.Create(context.Background(), CreateEventInput{
		Title:     "Tech Fest",
		StartDate: "2099-01-01",
		EndDate:   "2099-01-10",
	})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if e.Status != model.StatusUpcoming {
		t.Fatalf("status = %s, want UPCOMING", e.Status)
	}
	if e.ID == 0 {
		t.Fatalf("expected assigned id")
	}

	e, err = svc.Create(context.Background(), CreateEventInput{
		Title:     "Hackathon",
		StartDate: "2026-06-14",
		EndDate:   "2026-06-16",
	})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if e.Status != model.StatusOngoing {
		t.Fatalf("status = %s, want ONGOING", e.Status)
	}

	e, err = svc.Create(context.Background(), CreateEventInput{
		Title:     "Orientation",
		StartDate: "2020-01-01",
		EndDate:   "2020-01-02",
	})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if e.Status != model.StatusCompleted {
		t.Fatalf("status = %s, want COMPLETED", e.Status)
	}
}

func TestCreateEventRejectsBadDates(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
	store := newFakeEventStore()
	svc := newTestEventService(store, now)

	tests := []struct {
		name       string
		start, end string
		wantKind   ErrorKind
		wantCode   string
	}{
		{"garbage start", "not-a-date", "2099-01-10", KindInvalidDate, "START_DATE_INVALID"},
		{"garbage end", "2099-01-01", "soon", KindInvalidDate, "END_DATE_INVALID"},
		{"reversed range", "2099-01-10", "2099-01-01", KindInvalidRange, "INVALID_DATE_RANGE"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), CreateEventInput{
				Title: "x", StartDate: tt.start, EndDate: tt.end,
			})
			if err == nil {
				t.Fatalf("expected error")
			}
			if KindOf(err) != tt.wantKind {
				t.Fatalf("kind = %v, want %v", KindOf(err), tt.wantKind)
			}
			if CodeOf(err) != tt.wantCode {
				t.Fatalf("code = %q, want %q", CodeOf(err), tt.wantCode)
			}
		})
	}
	if len(store.events) != 0 {
		t.Fatalf("invalid input persisted %d events", len(store.events))
	}
}

func TestCreateEventAcceptsMultipleLayouts(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
	svc := newTestEventService(newFakeEventStore(), now)

	for _, dates := range [][2]string{
		{"2099-01-01T10:00:00Z", "2099-01-02T18:00:00Z"},
		{"2099-01-01 10:00:00", "2099-01-02 18:00:00"},
		{"2099-01-01", "2099-01-02"},
	} {
		if _, err := svc.Create(context.Background(), CreateEventInput{
			Title: "x", StartDate: dates[0], EndDate: dates[1],
		}); err != nil {
			t.Fatalf("Create(%q, %q) error: %v", dates[0], dates[1], err)
		}
	}
}

func TestUpdateEventWithoutDatesKeepsStatus(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
	store := newFakeEventStore()
	svc := newTestEventService(store, now)

	created, err := svc.Create(context.Background(), CreateEventInput{
		Title: "Tech Fest", StartDate: "2099-01-01", EndDate: "2099-01-10",
	})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	// Move the clock far past the event; a non-date patch must not
	// refresh the stored (now stale) status.
	svc.Now = func() time.Time { return time.Date(2100, 1, 1, 0, 0, 0, 0, time.UTC) }

	title := "Tech Fest 2099"
	updated, err := svc.Update(context.Background(), created.ID, UpdateEventInput{Title: &title})
	if err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	if updated.Title != title {
		t.Fatalf("title = %q, want %q", updated.Title, title)
	}
	if updated.Status != model.StatusUpcoming {
		t.Fatalf("status = %s, want stale UPCOMING preserved", updated.Status)
	}
}

func TestUpdateEventRecomputesStatusOnDateChange(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
	store := newFakeEventStore()
	svc := newTestEventService(store, now)

	// Stored as UPCOMING, but its start is already past relative to the
	// later update clock.
	created, err := svc.Create(context.Background(), CreateEventInput{
		Title: "Workshop", StartDate: "2026-06-20", EndDate: "2026-06-25",
	})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if created.Status != model.StatusUpcoming {
		t.Fatalf("status = %s, want UPCOMING", created.Status)
	}

	svc.Now = func() time.Time { return time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC) }

	end := "2026-06-28"
	updated, err := svc.Update(context.Background(), created.ID, UpdateEventInput{EndDate: &end})
	if err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	if updated.Status != model.StatusCompleted {
		t.Fatalf("status = %s, want COMPLETED after end moved into the past", updated.Status)
	}
}

func TestUpdateEventRejectsReversedRange(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
	store := newFakeEventStore()
	svc := newTestEventService(store, now)

	created, err := svc.Create(context.Background(), CreateEventInput{
		Title: "Seminar", StartDate: "2099-01-05", EndDate: "2099-01-10",
	})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	// End before the existing start.
	end := "2099-01-01"
	_, err = svc.Update(context.Background(), created.ID, UpdateEventInput{EndDate: &end})
	if KindOf(err) != KindInvalidRange {
		t.Fatalf("kind = %v, want KindInvalidRange", KindOf(err))
	}

	// Nothing mutated.
	got, _ := store.GetByID(context.Background(), created.ID)
	if !got.EndDate.Equal(created.EndDate) {
		t.Fatalf("end date mutated by rejected update")
	}
}

func TestUpdateEventErrors(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
	svc := newTestEventService(newFakeEventStore(), now)

	if _, err := svc.Update(context.Background(), 0, UpdateEventInput{}); KindOf(err) != KindInvalidID {
		t.Fatalf("id 0: kind = %v, want KindInvalidID", KindOf(err))
	}
	start := "2099-01-01"
	if _, err := svc.Update(context.Background(), 42, UpdateEventInput{StartDate: &start}); KindOf(err) != KindNotFound {
		t.Fatalf("missing id: kind = %v, want KindNotFound", KindOf(err))
	}
}

func TestDeleteEvent(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
	store := newFakeEventStore()
	svc := newTestEventService(store, now)

	created, err := svc.Create(context.Background(), CreateEventInput{
		Title: "Expo", StartDate: "2099-01-01", EndDate: "2099-01-02",
	})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	if err := svc.Delete(context.Background(), created.ID); KindOf(err) != KindNotFound {
		t.Fatalf("second delete: kind = %v, want KindNotFound", KindOf(err))
	}
}

func TestListEventsNewestFirst(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
	store := newFakeEventStore()
	svc := newTestEventService(store, now)

	for _, d := range []string{"2099-01-01", "2099-03-01", "2099-02-01"} {
		if _, err := svc.Create(context.Background(), CreateEventInput{
			Title: d, StartDate: d, EndDate: "2099-12-31",
		}); err != nil {
			t.Fatalf("Create() error: %v", err)
		}
	}

	events, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("len = %d, want 3", len(events))
	}
	for i := 1; i < len(events); i++ {
		if events[i].StartDate.After(events[i-1].StartDate) {
			t.Fatalf("events not ordered by start date descending")
		}
	}
}
