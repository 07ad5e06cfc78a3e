package service

import (
	"context"

	"github.com/kulturboden/api/internal/model"
	"github.com/kulturboden/api/internal/repository"
)

// EventService serves the public program surface: events enriched with
// ticket availability derived from live reservation counts.
type EventService struct {
	events       *repository.Events
	reservations *repository.Reservations
}

// NewEventService creates the event service.
func NewEventService(events *repository.Events, reservations *repository.Reservations) *EventService {
	return &EventService{events: events, reservations: reservations}
}

// PublicEvents returns non-archived events sorted by date. Events with a
// configured capacity get availability and remaining tickets derived from
// pending and confirmed reservations; events without one keep their stored
// availability and expose no remaining count.
func (s *EventService) PublicEvents(ctx context.Context) ([]model.PublicEvent, error) {
	archived := false
	events, err := s.events.List(ctx, &archived)
	if err != nil {
		return nil, err
	}

	booked, err := s.reservations.TicketsByEvent(ctx)
	if err != nil {
		return nil, err
	}

	public := make([]model.PublicEvent, 0, len(events))
	for _, e := range events {
		public = append(public, enrich(e, booked))
	}
	return public, nil
}

// PublicEvent returns a single event with derived availability.
func (s *EventService) PublicEvent(ctx context.Context, id int) (model.PublicEvent, error) {
	event, err := s.events.Get(ctx, id)
	if err != nil {
		return model.PublicEvent{}, err
	}

	booked, err := s.reservations.TicketsByEvent(ctx)
	if err != nil {
		return model.PublicEvent{}, err
	}
	return enrich(event, booked), nil
}

func enrich(e model.Event, booked map[int]int) model.PublicEvent {
	pe := model.PublicEvent{Event: e}
	if e.MaxTickets > 0 {
		availability, remaining := model.DeriveAvailability(e.MaxTickets, booked[e.ID])
		pe.Availability = availability
		pe.RemainingTickets = &remaining
	}
	return pe
}
