package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/kulturboden/api/internal/model"
	"github.com/kulturboden/api/internal/repository"
)

// EventsHandler serves the admin event surface. The public program read
// lives on /pages and goes through the availability-deriving service.
type EventsHandler struct {
	events *repository.Events
}

// NewEventsHandler creates the events handler.
func NewEventsHandler(events *repository.Events) *EventsHandler {
	return &EventsHandler{events: events}
}

// List handles GET /events?archived=0|1
func (h *EventsHandler) List(w http.ResponseWriter, r *http.Request) {
	var archived *bool
	switch r.URL.Query().Get("archived") {
	case "":
	case "1", "true":
		v := true
		archived = &v
	case "0", "false":
		v := false
		archived = &v
	default:
		WriteError(w, http.StatusBadRequest, "invalid archived flag")
		return
	}

	events, err := h.events.List(r.Context(), archived)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteData(w, http.StatusOK, events)
}

// Create handles POST /events
func (h *EventsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var event model.Event
	if err := DecodeJSON(r, &event); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if event.Title == "" {
		WriteError(w, http.StatusBadRequest, "title is required")
		return
	}
	if event.Date == "" {
		WriteError(w, http.StatusBadRequest, "date is required")
		return
	}

	created, err := h.events.Create(r.Context(), event)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteData(w, http.StatusOK, created)
}

// Get handles GET /events/{id}
func (h *EventsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "invalid id")
		return
	}

	event, err := h.events.Get(r.Context(), id)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteData(w, http.StatusOK, event)
}

// Update handles PUT /events/{id}
func (h *EventsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "invalid id")
		return
	}

	patch, err := readPatch(r)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.events.Update(r.Context(), id, patch)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteData(w, http.StatusOK, updated)
}

// Delete handles DELETE /events/{id}
func (h *EventsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "invalid id")
		return
	}

	removed, err := h.events.Delete(r.Context(), id)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteData(w, http.StatusOK, removed)
}

// ToggleArchive handles POST /events/{id}/toggle-archive
func (h *EventsHandler) ToggleArchive(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "invalid id")
		return
	}

	toggled, err := h.events.ToggleArchive(r.Context(), id)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteData(w, http.StatusOK, toggled)
}

// pathID parses the {id} chi path parameter.
func pathID(r *http.Request) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}

var errInvalidID = errors.New("invalid id")

// readPatch reads the request body as a raw shallow-merge patch and checks
// it is a JSON object.
func readPatch(r *http.Request) (json.RawMessage, error) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, err
	}
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(body, &probe); err != nil {
		return nil, err
	}
	return body, nil
}
