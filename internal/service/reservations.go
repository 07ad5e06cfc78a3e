package service

import (
	"context"

	"github.com/kulturboden/api/internal/model"
	"github.com/kulturboden/api/internal/repository"
)

// ReservationService creates reservations and serves the admin listing
// enriched with parent event details.
type ReservationService struct {
	reservations *repository.Reservations
	events       *repository.Events
}

// NewReservationService creates the reservation service.
func NewReservationService(reservations *repository.Reservations, events *repository.Events) *ReservationService {
	return &ReservationService{reservations: reservations, events: events}
}

// CreatePublic stores a reservation from the public flow with status
// pending. The event title is snapshotted onto the record so the listing
// survives event deletion.
func (s *ReservationService) CreatePublic(ctx context.Context, reservation model.Reservation) (model.Reservation, error) {
	reservation.Status = model.ReservationPending
	return s.create(ctx, reservation)
}

// CreateAdmin stores a reservation entered in the back office, confirmed
// immediately unless the caller chose another canonical status.
func (s *ReservationService) CreateAdmin(ctx context.Context, reservation model.Reservation) (model.Reservation, error) {
	if reservation.Status == "" {
		reservation.Status = model.ReservationConfirmed
	}
	canonical, ok := model.CanonicalReservationStatus(string(reservation.Status))
	if !ok {
		return model.Reservation{}, ErrInvalidStatus
	}
	reservation.Status = canonical
	return s.create(ctx, reservation)
}

func (s *ReservationService) create(ctx context.Context, reservation model.Reservation) (model.Reservation, error) {
	if reservation.EventTitle == "" {
		if event, err := s.events.Get(ctx, reservation.EventID); err == nil {
			reservation.EventTitle = event.Title
		}
	}
	return s.reservations.Create(ctx, reservation)
}

// List returns reservations matching the filter, enriched with event date
// and artist where the event still exists. A missing event leaves only the
// stored title on the record.
func (s *ReservationService) List(ctx context.Context, filter repository.ReservationFilter) ([]model.ReservationView, error) {
	reservations, err := s.reservations.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	events, err := s.events.List(ctx, nil)
	if err != nil {
		return nil, err
	}
	byID := make(map[int]model.Event, len(events))
	for _, e := range events {
		byID[e.ID] = e
	}

	views := make([]model.ReservationView, 0, len(reservations))
	for _, r := range reservations {
		view := model.ReservationView{Reservation: r}
		if event, ok := byID[r.EventID]; ok {
			view.EventTitle = event.Title
			view.EventDate = event.Date
			view.EventArtist = event.Artist
		}
		views = append(views, view)
	}
	return views, nil
}

// SetStatus transitions a reservation. Accepts the canonical statuses plus
// the legacy aliases active and archived.
func (s *ReservationService) SetStatus(ctx context.Context, id int, status string) (model.Reservation, error) {
	canonical, ok := model.CanonicalReservationStatus(status)
	if !ok {
		return model.Reservation{}, ErrInvalidStatus
	}
	return s.reservations.SetStatus(ctx, id, canonical)
}

// EventDateLabel returns the German-formatted date of the reservation's
// event for confirmation mails, or "" when the event is gone.
func (s *ReservationService) EventDateLabel(ctx context.Context, eventID int) string {
	event, err := s.events.Get(ctx, eventID)
	if err != nil {
		return ""
	}
	return model.GermanDate(event.Date)
}
