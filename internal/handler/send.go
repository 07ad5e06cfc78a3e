package handler

import (
	"net/http"

	"github.com/kulturboden/api/internal/model"
	"github.com/kulturboden/api/internal/repository"
	"github.com/kulturboden/api/internal/service"
)

// SendHandler serves the public form submissions. Each flow persists the
// record first, then fans out the notification mails; a mail failure is a
// 500 but the record is already durable, so resubmission is the retry path.
type SendHandler struct {
	contacts     *repository.Contacts
	memberships  *repository.Memberships
	vouchers     *repository.Vouchers
	reservations *service.ReservationService
	notifier     *service.Notifier
}

// NewSendHandler creates the public form handler.
func NewSendHandler(
	contacts *repository.Contacts,
	memberships *repository.Memberships,
	vouchers *repository.Vouchers,
	reservations *service.ReservationService,
	notifier *service.Notifier,
) *SendHandler {
	return &SendHandler{
		contacts:     contacts,
		memberships:  memberships,
		vouchers:     vouchers,
		reservations: reservations,
		notifier:     notifier,
	}
}

// Contact handles POST /send/contact
func (h *SendHandler) Contact(w http.ResponseWriter, r *http.Request) {
	var contact model.Contact
	if err := DecodeJSON(r, &contact); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	switch {
	case contact.Name == "":
		WriteError(w, http.StatusBadRequest, "name is required")
		return
	case contact.Email == "":
		WriteError(w, http.StatusBadRequest, "email is required")
		return
	case contact.Message == "":
		WriteError(w, http.StatusBadRequest, "message is required")
		return
	}

	created, err := h.contacts.Create(r.Context(), contact)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	if err := h.notifier.ContactSubmitted(r.Context(), created); err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteData(w, http.StatusOK, created)
}

// Membership handles POST /send/membership
func (h *SendHandler) Membership(w http.ResponseWriter, r *http.Request) {
	var application model.MembershipApplication
	if err := DecodeJSON(r, &application); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	switch {
	case application.FirstName == "":
		WriteError(w, http.StatusBadRequest, "firstName is required")
		return
	case application.LastName == "":
		WriteError(w, http.StatusBadRequest, "lastName is required")
		return
	case application.Email == "":
		WriteError(w, http.StatusBadRequest, "email is required")
		return
	case application.MembershipType == "":
		WriteError(w, http.StatusBadRequest, "membershipType is required")
		return
	}

	created, err := h.memberships.Create(r.Context(), application)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	if err := h.notifier.MembershipApplied(r.Context(), created); err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteData(w, http.StatusOK, created)
}

// Voucher handles POST /send/voucher
func (h *SendHandler) Voucher(w http.ResponseWriter, r *http.Request) {
	var order model.VoucherOrder
	if err := DecodeJSON(r, &order); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	switch {
	case order.BuyerName == "":
		WriteError(w, http.StatusBadRequest, "buyerName is required")
		return
	case order.BuyerEmail == "":
		WriteError(w, http.StatusBadRequest, "buyerEmail is required")
		return
	case order.VoucherType == model.VoucherAmount && order.Amount <= 0:
		WriteError(w, http.StatusBadRequest, "amount must be a positive number")
		return
	case order.VoucherType == model.VoucherEvent && order.EventName == "":
		WriteError(w, http.StatusBadRequest, "eventName is required")
		return
	case order.VoucherType != model.VoucherAmount && order.VoucherType != model.VoucherEvent:
		WriteError(w, http.StatusBadRequest, "voucherType must be amount or event")
		return
	}

	created, err := h.vouchers.Create(r.Context(), order)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	if err := h.notifier.VoucherOrdered(r.Context(), created); err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteData(w, http.StatusOK, created)
}

// ReserveTickets handles POST /send/reserve-tickets
func (h *SendHandler) ReserveTickets(w http.ResponseWriter, r *http.Request) {
	var reservation model.Reservation
	if err := DecodeJSON(r, &reservation); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if msg, ok := validateReservation(reservation); !ok {
		WriteError(w, http.StatusBadRequest, msg)
		return
	}

	created, err := h.reservations.CreatePublic(r.Context(), reservation)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	eventDate := h.reservations.EventDateLabel(r.Context(), created.EventID)
	if err := h.notifier.ReservationSubmitted(r.Context(), created, eventDate); err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteData(w, http.StatusOK, created)
}
