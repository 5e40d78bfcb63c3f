package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/event-hub/internal/model"
	"github.com/iliyamo/event-hub/internal/queue"
	"github.com/iliyamo/event-hub/internal/service"
)

// EventHandler exposes the event CRUD endpoints. Create/update/delete
// are admin-gated by the router; list and get are public. Writes fire a
// best-effort change notification to the broker.
type EventHandler struct {
	Events *service.EventService
	Notify func(ctx context.Context, ev queue.EventChanged) error
}

func NewEventHandler(events *service.EventService) *EventHandler {
	return &EventHandler{Events: events, Notify: queue.PublishEventChanged}
}

func (h *EventHandler) notify(c echo.Context, action string, e model.Event, id uint64) {
	if h.Notify == nil {
		return
	}
	ev := queue.EventChanged{
		EventID:    id,
		Action:     action,
		Title:      e.Title,
		Status:     string(e.Status),
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	}
	if !e.StartDate.IsZero() {
		ev.StartDate = e.StartDate.Format(time.RFC3339)
		ev.EndDate = e.EndDate.Format(time.RFC3339)
	}
	// Notification failures never fail the request; the publisher logs.
	_ = h.Notify(c.Request().Context(), ev)
}

// eventErr maps domain error kinds to the event endpoints' statuses.
// Validation failures carry their machine-readable code in the error
// field with the human text in message.
func eventErr(c echo.Context, err error) error {
	switch service.KindOf(err) {
	case service.KindInvalidDate, service.KindInvalidRange:
		return c.JSON(http.StatusBadRequest, Response{
			Success: false,
			Message: err.Error(),
			Error:   service.CodeOf(err),
		})
	case service.KindInvalidID:
		return c.JSON(http.StatusBadRequest, fail(err.Error()))
	case service.KindNotFound:
		return c.JSON(http.StatusNotFound, fail(err.Error()))
	}
	return c.JSON(http.StatusInternalServerError, Response{
		Success: false,
		Message: "Internal server error",
		Error:   "unexpected error",
	})
}

// Create handles POST /api/event (admin only).
func (h *EventHandler) Create(c echo.Context) error {
	var req service.CreateEventInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, fail("invalid body"))
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	e, err := h.Events.Create(ctx, req)
	if err != nil {
		return eventErr(c, err)
	}
	h.notify(c, queue.ActionCreated, e, e.ID)
	return c.JSON(http.StatusCreated, okMsg("Event created successfully", e))
}

// Update handles PUT /api/event/:id (admin only). Status is recomputed
// only when the patch includes a date field.
func (h *EventHandler) Update(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, fail("invalid event ID"))
	}
	var req service.UpdateEventInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, fail("invalid body"))
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	e, err := h.Events.Update(ctx, id, req)
	if err != nil {
		return eventErr(c, err)
	}
	h.notify(c, queue.ActionUpdated, e, e.ID)
	return c.JSON(http.StatusOK, okMsg("Event updated successfully", e))
}

// Delete handles DELETE /api/event/:id (admin only).
func (h *EventHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, fail("invalid event ID"))
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Events.Delete(ctx, id); err != nil {
		return eventErr(c, err)
	}
	h.notify(c, queue.ActionDeleted, model.Event{}, id)
	return c.JSON(http.StatusOK, okMsg("Event deleted successfully", nil))
}

// List handles GET /api/event (public). All events, newest start first.
func (h *EventHandler) List(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	events, err := h.Events.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, fail("failed to fetch events"))
	}
	return c.JSON(http.StatusOK, okList(events, len(events)))
}

// Get handles GET /api/event/:id (public).
func (h *EventHandler) Get(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, fail("invalid event ID format"))
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	e, err := h.Events.Get(ctx, id)
	if err != nil {
		return eventErr(c, err)
	}
	return c.JSON(http.StatusOK, ok(e))
}
