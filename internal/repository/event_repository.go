package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/iliyamo/event-hub/internal/model"
)

// EventRepo persists rows of the 'events' table.
type EventRepo struct{ DB *sql.DB }

func NewEventRepo(db *sql.DB) *EventRepo { return &EventRepo{DB: db} }

const eventColumns = "id,title,description,location,credits,num_days,capacity,status,start_date,end_date,created_at,updated_at"

func scanEvent(row *sql.Row) (model.Event, error) {
	var e model.Event
	err := row.Scan(&e.ID, &e.Title, &e.Description, &e.Location, &e.Credits,
		&e.NumDays, &e.Capacity, &e.Status, &e.StartDate, &e.EndDate,
		&e.CreatedAt, &e.UpdatedAt)
	return e, err
}

// Create inserts an event with its derived status and returns the fully
// populated row, including DB-assigned timestamps.
func (r *EventRepo) Create(ctx context.Context, e *model.Event) (model.Event, error) {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO events (title, description, location, credits, num_days, capacity, status, start_date, end_date) VALUES (?,?,?,?,?,?,?,?,?)",
		e.Title, e.Description, e.Location, e.Credits, e.NumDays, e.Capacity,
		string(e.Status), e.StartDate, e.EndDate)
	if err != nil {
		return model.Event{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Event{}, err
	}
	return r.GetByID(ctx, uint64(id))
}

// GetByID fetches a single event.
func (r *EventRepo) GetByID(ctx context.Context, id uint64) (model.Event, error) {
	e, err := scanEvent(r.DB.QueryRowContext(ctx,
		"SELECT "+eventColumns+" FROM events WHERE id=? LIMIT 1", id))
	if err == sql.ErrNoRows {
		return model.Event{}, ErrEventNotFound
	}
	return e, err
}

// List returns all events ordered by start date descending. No
// pagination; the dataset is assumed small.
func (r *EventRepo) List(ctx context.Context) ([]model.Event, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+eventColumns+" FROM events ORDER BY start_date DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]model.Event, 0)
	for rows.Next() {
		var e model.Event
		if err := rows.Scan(&e.ID, &e.Title, &e.Description, &e.Location,
			&e.Credits, &e.NumDays, &e.Capacity, &e.Status, &e.StartDate,
			&e.EndDate, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// Update applies the non-nil fields of the patch to the row and returns
// the updated record. ErrEventNotFound when no row has the id.
func (r *EventRepo) Update(ctx context.Context, id uint64, patch model.EventPatch) (model.Event, error) {
	sets := make([]string, 0, 9)
	args := make([]any, 0, 10)
	add := func(col string, v any) {
		sets = append(sets, col+"=?")
		args = append(args, v)
	}
	if patch.Title != nil {
		add("title", *patch.Title)
	}
	if patch.Description != nil {
		add("description", *patch.Description)
	}
	if patch.Location != nil {
		add("location", *patch.Location)
	}
	if patch.Credits != nil {
		add("credits", *patch.Credits)
	}
	if patch.NumDays != nil {
		add("num_days", *patch.NumDays)
	}
	if patch.Capacity != nil {
		add("capacity", *patch.Capacity)
	}
	if patch.Status != nil {
		add("status", string(*patch.Status))
	}
	if patch.StartDate != nil {
		add("start_date", *patch.StartDate)
	}
	if patch.EndDate != nil {
		add("end_date", *patch.EndDate)
	}
	if len(sets) == 0 {
		return r.GetByID(ctx, id)
	}
	args = append(args, id)

	res, err := r.DB.ExecContext(ctx,
		"UPDATE events SET "+strings.Join(sets, ",")+" WHERE id=?", args...)
	if err != nil {
		return model.Event{}, err
	}
	// RowsAffected is zero both for a missing row and for a no-op write,
	// so existence is confirmed by the re-read below.
	if _, err := res.RowsAffected(); err != nil {
		return model.Event{}, err
	}
	return r.GetByID(ctx, id)
}

// Delete removes an event by id. ErrEventNotFound when nothing matched.
func (r *EventRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM events WHERE id=?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrEventNotFound
	}
	return nil
}
