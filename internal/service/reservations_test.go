package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kulturboden/api/internal/model"
	"github.com/kulturboden/api/internal/repository"
	"github.com/kulturboden/api/internal/store"
)

func newReservationService(t *testing.T) (*ReservationService, *repository.Events, *repository.Reservations) {
	t.Helper()
	s := store.NewMemStore()
	events := repository.NewEvents(s)
	reservations := repository.NewReservations(s)
	return NewReservationService(reservations, events), events, reservations
}

func TestCreatePublic(t *testing.T) {
	t.Parallel()

	svc, events, _ := newReservationService(t)
	ctx := context.Background()

	event, err := events.Create(ctx, model.Event{Title: "Chansonabend", Date: "2026-02-20"})
	require.NoError(t, err)

	created, err := svc.CreatePublic(ctx, model.Reservation{
		EventID: event.ID, Name: "Erika Muster", Email: "erika@example.com", Tickets: 2,
		// A public caller cannot pick a status.
		Status: model.ReservationConfirmed,
	})
	require.NoError(t, err)

	assert.Equal(t, model.ReservationPending, created.Status)
	assert.Equal(t, "Chansonabend", created.EventTitle, "event title is snapshotted onto the record")
	assert.False(t, created.CreatedAt.IsZero())
}

func TestCreateAdmin_DefaultsToConfirmed(t *testing.T) {
	t.Parallel()

	svc, events, _ := newReservationService(t)
	ctx := context.Background()

	event, err := events.Create(ctx, model.Event{Title: "Kabarett", Date: "2026-02-21"})
	require.NoError(t, err)

	created, err := svc.CreateAdmin(ctx, model.Reservation{
		EventID: event.ID, Name: "Kasse", Email: "kasse@example.com", Tickets: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, model.ReservationConfirmed, created.Status)
}

func TestCreateAdmin_RejectsUnknownStatus(t *testing.T) {
	t.Parallel()

	svc, _, _ := newReservationService(t)

	_, err := svc.CreateAdmin(context.Background(), model.Reservation{
		Name: "X", Email: "x@example.com", Tickets: 1, Status: "erledigt",
	})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestList_EnrichesWithEventDetails(t *testing.T) {
	t.Parallel()

	svc, events, reservations := newReservationService(t)
	ctx := context.Background()

	event, err := events.Create(ctx, model.Event{
		Title: "Irish Folk Night", Artist: "The Rovers", Date: "2026-03-14",
	})
	require.NoError(t, err)
	_, err = reservations.Create(ctx, model.Reservation{
		EventID: event.ID, Name: "A", Email: "a@example.com", Tickets: 2,
		Status: model.ReservationPending,
	})
	require.NoError(t, err)

	views, err := svc.List(ctx, repository.ReservationFilter{})
	require.NoError(t, err)
	require.Len(t, views, 1)

	assert.Equal(t, "Irish Folk Night", views[0].EventTitle)
	assert.Equal(t, "2026-03-14", views[0].EventDate)
	assert.Equal(t, "The Rovers", views[0].EventArtist)
}

func TestList_DeletedEventKeepsStoredTitle(t *testing.T) {
	t.Parallel()

	svc, events, _ := newReservationService(t)
	ctx := context.Background()

	event, err := events.Create(ctx, model.Event{Title: "Silvestergala", Date: "2026-12-31"})
	require.NoError(t, err)
	_, err = svc.CreatePublic(ctx, model.Reservation{
		EventID: event.ID, Name: "B", Email: "b@example.com", Tickets: 4,
	})
	require.NoError(t, err)

	_, err = events.Delete(ctx, event.ID)
	require.NoError(t, err)

	views, err := svc.List(ctx, repository.ReservationFilter{})
	require.NoError(t, err)
	require.Len(t, views, 1)

	assert.Equal(t, "Silvestergala", views[0].EventTitle)
	assert.Empty(t, views[0].EventDate)
	assert.Empty(t, views[0].EventArtist)
}

func TestSetStatus_AcceptsLegacyAliases(t *testing.T) {
	t.Parallel()

	svc, events, _ := newReservationService(t)
	ctx := context.Background()

	event, err := events.Create(ctx, model.Event{Title: "Blues", Date: "2026-07-01"})
	require.NoError(t, err)
	created, err := svc.CreatePublic(ctx, model.Reservation{
		EventID: event.ID, Name: "C", Email: "c@example.com", Tickets: 1,
	})
	require.NoError(t, err)

	updated, err := svc.SetStatus(ctx, created.ID, "active")
	require.NoError(t, err)
	assert.Equal(t, model.ReservationConfirmed, updated.Status)

	updated, err = svc.SetStatus(ctx, created.ID, "archived")
	require.NoError(t, err)
	assert.Equal(t, model.ReservationCancelled, updated.Status)

	_, err = svc.SetStatus(ctx, created.ID, "weggeworfen")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestEventDateLabel(t *testing.T) {
	t.Parallel()

	svc, events, _ := newReservationService(t)
	ctx := context.Background()

	event, err := events.Create(ctx, model.Event{Title: "Neujahrskonzert", Date: "2026-01-15"})
	require.NoError(t, err)

	assert.Equal(t, "15. Januar 2026", svc.EventDateLabel(ctx, event.ID))
	assert.Empty(t, svc.EventDateLabel(ctx, 9999))
}
