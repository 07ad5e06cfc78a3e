package handler

import (
	"net/http"
	"strconv"

	"github.com/kulturboden/api/internal/model"
	"github.com/kulturboden/api/internal/repository"
	"github.com/kulturboden/api/internal/service"
)

// ReservationsHandler serves the admin reservation surface.
type ReservationsHandler struct {
	reservations *repository.Reservations
	svc          *service.ReservationService
}

// NewReservationsHandler creates the reservations handler.
func NewReservationsHandler(reservations *repository.Reservations, svc *service.ReservationService) *ReservationsHandler {
	return &ReservationsHandler{reservations: reservations, svc: svc}
}

// List handles GET /reservations?eventId=&status=
func (h *ReservationsHandler) List(w http.ResponseWriter, r *http.Request) {
	var filter repository.ReservationFilter

	if raw := r.URL.Query().Get("eventId"); raw != "" {
		eventID, err := strconv.Atoi(raw)
		if err != nil {
			WriteError(w, http.StatusBadRequest, "invalid eventId")
			return
		}
		filter.EventID = &eventID
	}
	if raw := r.URL.Query().Get("status"); raw != "" {
		status, ok := model.CanonicalReservationStatus(raw)
		if !ok {
			WriteError(w, http.StatusBadRequest, "invalid status")
			return
		}
		filter.Status = &status
	}

	views, err := h.svc.List(r.Context(), filter)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteData(w, http.StatusOK, views)
}

// Create handles POST /reservations (back office; confirmed by default)
func (h *ReservationsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var reservation model.Reservation
	if err := DecodeJSON(r, &reservation); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if msg, ok := validateReservation(reservation); !ok {
		WriteError(w, http.StatusBadRequest, msg)
		return
	}

	created, err := h.svc.CreateAdmin(r.Context(), reservation)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteData(w, http.StatusOK, created)
}

// Get handles GET /reservations/{id}
func (h *ReservationsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "invalid id")
		return
	}

	reservation, err := h.reservations.Get(r.Context(), id)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteData(w, http.StatusOK, reservation)
}

// Update handles PUT /reservations/{id}
func (h *ReservationsHandler) Update(w http.ResponseWriter, r *http.Request) {
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

	updated, err := h.reservations.Update(r.Context(), id, patch)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteData(w, http.StatusOK, updated)
}

// Delete handles DELETE /reservations/{id}
func (h *ReservationsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "invalid id")
		return
	}

	removed, err := h.reservations.Delete(r.Context(), id)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteData(w, http.StatusOK, removed)
}

// SetStatus handles POST /reservations/{id}/status. The body's status may
// be canonical or one of the legacy aliases the old admin panel sends.
func (h *ReservationsHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.svc.SetStatus(r.Context(), id, req.Status)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteData(w, http.StatusOK, updated)
}

func validateReservation(r model.Reservation) (string, bool) {
	switch {
	case r.EventID <= 0:
		return "eventId is required", false
	case r.Name == "":
		return "name is required", false
	case r.Email == "":
		return "email is required", false
	case r.Tickets <= 0:
		return "tickets must be a positive number", false
	}
	return "", true
}
