package repository

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"github.com/kulturboden/api/internal/model"
	"github.com/kulturboden/api/internal/store"
)

// Reservations is the reservation collection repository.
type Reservations struct {
	coll *Collection[model.Reservation]
}

// NewReservations creates the reservation repository.
func NewReservations(s store.Store) *Reservations {
	coll := NewCollection(s, "reservations",
		func(r *model.Reservation) *int { return &r.ID },
		"createdAt",
	)
	return &Reservations{coll: coll}
}

// ReservationFilter narrows a listing. Nil fields match everything.
type ReservationFilter struct {
	EventID *int
	Status  *model.ReservationStatus
}

// List returns reservations matching the filter, newest first.
func (r *Reservations) List(ctx context.Context, filter ReservationFilter) ([]model.Reservation, error) {
	reservations, err := r.coll.Load(ctx)
	if err != nil {
		return nil, err
	}

	filtered := reservations[:0]
	for _, res := range reservations {
		if filter.EventID != nil && res.EventID != *filter.EventID {
			continue
		}
		if filter.Status != nil && res.Status != *filter.Status {
			continue
		}
		filtered = append(filtered, res)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
	})
	return filtered, nil
}

// Get returns the reservation with the given id.
func (r *Reservations) Get(ctx context.Context, id int) (model.Reservation, error) {
	return r.coll.Get(ctx, id)
}

// Create appends a new reservation. CreatedAt is set here unconditionally;
// the caller decides the creation-path default status (pending from the
// public flow, confirmed from the admin panel).
func (r *Reservations) Create(ctx context.Context, reservation model.Reservation) (model.Reservation, error) {
	reservation.CreatedAt = time.Now().UTC()
	return r.coll.Add(ctx, reservation)
}

// Update shallow-merges the patch over the stored reservation.
func (r *Reservations) Update(ctx context.Context, id int, patch json.RawMessage) (model.Reservation, error) {
	return r.coll.Update(ctx, id, patch)
}

// Delete removes the reservation and returns the removed record.
func (r *Reservations) Delete(ctx context.Context, id int) (model.Reservation, error) {
	return r.coll.Delete(ctx, id)
}

// SetStatus transitions the reservation to a canonical status.
func (r *Reservations) SetStatus(ctx context.Context, id int, status model.ReservationStatus) (model.Reservation, error) {
	reservation, err := r.coll.Get(ctx, id)
	if err != nil {
		return model.Reservation{}, err
	}
	reservation.Status = status
	return r.coll.Replace(ctx, id, reservation)
}

// TicketsByEvent sums the tickets of capacity-holding reservations per
// event id. Used for availability derivation on the public event read.
func (r *Reservations) TicketsByEvent(ctx context.Context) (map[int]int, error) {
	reservations, err := r.coll.Load(ctx)
	if err != nil {
		return nil, err
	}

	booked := make(map[int]int)
	for _, res := range reservations {
		if res.CountsTowardCapacity() {
			booked[res.EventID] += res.Tickets
		}
	}
	return booked, nil
}
