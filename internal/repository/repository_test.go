package repository

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kulturboden/api/internal/model"
	"github.com/kulturboden/api/internal/store"
)

func TestContacts_Create_AssignsMaxPlusOne(t *testing.T) {
	t.Parallel()
	repo := NewContacts(store.NewMemStore())
	ctx := context.Background()

	first, err := repo.Create(ctx, model.Contact{Name: "Anna", Email: "anna@example.de", Message: "Hallo"})
	require.NoError(t, err)
	assert.Equal(t, 1, first.ID)

	second, err := repo.Create(ctx, model.Contact{Name: "Ben", Email: "ben@example.de", Message: "Moin"})
	require.NoError(t, err)
	assert.Equal(t, 2, second.ID)

	contacts, err := repo.List(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, contacts, 2)
}

func TestContacts_Create_IdReusedAfterDeletingHighest(t *testing.T) {
	t.Parallel()
	repo := NewContacts(store.NewMemStore())
	ctx := context.Background()

	_, err := repo.Create(ctx, model.Contact{Name: "Anna", Email: "a@example.de", Message: "x"})
	require.NoError(t, err)
	second, err := repo.Create(ctx, model.Contact{Name: "Ben", Email: "b@example.de", Message: "y"})
	require.NoError(t, err)

	_, err = repo.Delete(ctx, second.ID)
	require.NoError(t, err)

	third, err := repo.Create(ctx, model.Contact{Name: "Cleo", Email: "c@example.de", Message: "z"})
	require.NoError(t, err)
	// Compatibility with the legacy max+1 rule: the highest id is reused.
	assert.Equal(t, 2, third.ID)
}

func TestContacts_Create_ServerControlsStatusAndCreatedAt(t *testing.T) {
	t.Parallel()
	repo := NewContacts(store.NewMemStore())
	ctx := context.Background()

	stale := time.Date(2001, 1, 1, 0, 0, 0, 0, time.UTC)
	created, err := repo.Create(ctx, model.Contact{
		Name:      "Anna",
		Email:     "anna@example.de",
		Message:   "Hallo",
		Status:    model.ContactArchived, // caller-supplied, must be ignored
		CreatedAt: stale,
	})
	require.NoError(t, err)

	assert.Equal(t, model.ContactNew, created.Status)
	assert.WithinDuration(t, time.Now().UTC(), created.CreatedAt, time.Minute)
}

func TestContacts_Update_ShallowMergeLaw(t *testing.T) {
	t.Parallel()
	repo := NewContacts(store.NewMemStore())
	ctx := context.Background()

	created, err := repo.Create(ctx, model.Contact{
		Name:    "Anna",
		Email:   "anna@example.de",
		Phone:   "0123",
		Subject: "Booking",
		Message: "Hallo",
	})
	require.NoError(t, err)

	updated, err := repo.Update(ctx, created.ID, json.RawMessage(`{"status":"read","notes":"called back"}`))
	require.NoError(t, err)

	// Only the patched keys changed.
	assert.Equal(t, model.ContactRead, updated.Status)
	assert.Equal(t, "called back", updated.Notes)
	assert.Equal(t, created.Name, updated.Name)
	assert.Equal(t, created.Email, updated.Email)
	assert.Equal(t, created.Phone, updated.Phone)
	assert.Equal(t, created.Subject, updated.Subject)
	assert.Equal(t, created.Message, updated.Message)

	got, err := repo.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, got)
}

func TestContacts_Update_ProtectedKeysSurvivePatch(t *testing.T) {
	t.Parallel()
	repo := NewContacts(store.NewMemStore())
	ctx := context.Background()

	created, err := repo.Create(ctx, model.Contact{Name: "Anna", Email: "a@example.de", Message: "x"})
	require.NoError(t, err)

	updated, err := repo.Update(ctx, created.ID,
		json.RawMessage(`{"id":99,"createdAt":"2001-01-01T00:00:00Z","notes":"n"}`))
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.CreatedAt.Unix(), updated.CreatedAt.Unix())
	assert.Equal(t, "n", updated.Notes)
}

func TestContacts_Update_UnknownID_ReturnsErrNotFound(t *testing.T) {
	t.Parallel()
	repo := NewContacts(store.NewMemStore())

	_, err := repo.Update(context.Background(), 42, json.RawMessage(`{"notes":"n"}`))

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestContacts_Delete_RemovesExactlyOne(t *testing.T) {
	t.Parallel()
	repo := NewContacts(store.NewMemStore())
	ctx := context.Background()

	first, err := repo.Create(ctx, model.Contact{Name: "Anna", Email: "a@example.de", Message: "x"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, model.Contact{Name: "Ben", Email: "b@example.de", Message: "y"})
	require.NoError(t, err)

	removed, err := repo.Delete(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, removed.ID)

	_, err = repo.Get(ctx, first.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	contacts, err := repo.List(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, contacts, 1)
}

func TestCollection_Load_CorruptCollection_TreatedAsEmpty(t *testing.T) {
	t.Parallel()
	ms := store.NewMemStore()
	ctx := context.Background()
	require.NoError(t, ms.Write(ctx, "contacts", []byte("{not json")))

	repo := NewContacts(ms)
	contacts, err := repo.List(ctx, nil)

	require.NoError(t, err)
	assert.Empty(t, contacts)
}

func TestReservations_TicketsByEvent_SumsOnlyActiveStatuses(t *testing.T) {
	t.Parallel()
	repo := NewReservations(store.NewMemStore())
	ctx := context.Background()

	mk := func(eventID, tickets int, status model.ReservationStatus) {
		t.Helper()
		_, err := repo.Create(ctx, model.Reservation{
			EventID: eventID,
			Name:    "Gast",
			Email:   "gast@example.de",
			Tickets: tickets,
			Status:  status,
		})
		require.NoError(t, err)
	}

	mk(1, 2, model.ReservationPending)
	mk(1, 4, model.ReservationConfirmed)
	mk(1, 3, model.ReservationCancelled)
	mk(2, 5, model.ReservationConfirmed)

	booked, err := repo.TicketsByEvent(ctx)
	require.NoError(t, err)

	assert.Equal(t, 6, booked[1])
	assert.Equal(t, 5, booked[2])
}

func TestReservations_List_FilterByEventAndStatus(t *testing.T) {
	t.Parallel()
	repo := NewReservations(store.NewMemStore())
	ctx := context.Background()

	_, err := repo.Create(ctx, model.Reservation{EventID: 1, Name: "A", Email: "a@x.de", Tickets: 1, Status: model.ReservationPending})
	require.NoError(t, err)
	_, err = repo.Create(ctx, model.Reservation{EventID: 2, Name: "B", Email: "b@x.de", Tickets: 1, Status: model.ReservationConfirmed})
	require.NoError(t, err)

	eventID := 1
	byEvent, err := repo.List(ctx, ReservationFilter{EventID: &eventID})
	require.NoError(t, err)
	require.Len(t, byEvent, 1)
	assert.Equal(t, "A", byEvent[0].Name)

	status := model.ReservationConfirmed
	byStatus, err := repo.List(ctx, ReservationFilter{Status: &status})
	require.NoError(t, err)
	require.Len(t, byStatus, 1)
	assert.Equal(t, "B", byStatus[0].Name)
}

func TestReservations_SetStatus(t *testing.T) {
	t.Parallel()
	repo := NewReservations(store.NewMemStore())
	ctx := context.Background()

	created, err := repo.Create(ctx, model.Reservation{EventID: 1, Name: "A", Email: "a@x.de", Tickets: 2, Status: model.ReservationPending})
	require.NoError(t, err)

	updated, err := repo.SetStatus(ctx, created.ID, model.ReservationConfirmed)
	require.NoError(t, err)
	assert.Equal(t, model.ReservationConfirmed, updated.Status)

	got, err := repo.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, model.ReservationConfirmed, got.Status)
}

func TestSponsors_ListPublic_OnlyAllowListedFields(t *testing.T) {
	t.Parallel()
	repo := NewSponsors(store.NewMemStore())
	ctx := context.Background()

	_, err := repo.Create(ctx, model.Sponsor{
		Name:     "Stadtwerke",
		Category: model.SponsorHauptfoerderer,
		Position: 2,
		Notes:    "internal remark",
	})
	require.NoError(t, err)

	public, err := repo.ListPublic(ctx)
	require.NoError(t, err)
	require.Len(t, public, 1)

	raw, err := json.Marshal(public[0])
	require.NoError(t, err)

	var fields map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &fields))
	for key := range fields {
		assert.Contains(t, []string{"id", "name", "logo", "url", "category", "position"}, key)
	}
}

func TestSponsors_List_OrderedByCategoryThenPosition(t *testing.T) {
	t.Parallel()
	repo := NewSponsors(store.NewMemStore())
	ctx := context.Background()

	_, err := repo.Create(ctx, model.Sponsor{Name: "B", Category: model.SponsorFoerderer, Position: 2})
	require.NoError(t, err)
	_, err = repo.Create(ctx, model.Sponsor{Name: "A", Category: model.SponsorFoerderer, Position: 1})
	require.NoError(t, err)

	sponsors, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, sponsors, 2)
	assert.Equal(t, "A", sponsors[0].Name)
	assert.Equal(t, "B", sponsors[1].Name)
}

func TestSettings_Get_DefaultsWhenNeverWritten(t *testing.T) {
	t.Parallel()
	repo := NewSettings(store.NewMemStore())

	settings, err := repo.Get(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, settings.ID)
	assert.Equal(t, "Kulturboden", settings.SiteName)
}

func TestSettings_Put_OverwritesWholesale(t *testing.T) {
	t.Parallel()
	repo := NewSettings(store.NewMemStore())
	ctx := context.Background()

	_, err := repo.Put(ctx, model.SiteSettings{SiteName: "Kulturboden", Tagline: "Kultur im Dorf"})
	require.NoError(t, err)
	_, err = repo.Put(ctx, model.SiteSettings{SiteName: "Kulturboden", Email: "info@kulturboden.de"})
	require.NoError(t, err)

	settings, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "info@kulturboden.de", settings.Email)
	assert.Empty(t, settings.Tagline)
}

func TestAdmins_GetByUsername_CaseInsensitive(t *testing.T) {
	t.Parallel()
	repo := NewAdmins(store.NewMemStore())
	ctx := context.Background()

	_, err := repo.Create(ctx, model.Admin{Username: "Verwaltung", PasswordHash: "h"})
	require.NoError(t, err)

	admin, err := repo.GetByUsername(ctx, "verwaltung")
	require.NoError(t, err)
	assert.Equal(t, "Verwaltung", admin.Username)

	_, err = repo.GetByUsername(ctx, "unknown")
	assert.ErrorIs(t, err, ErrNotFound)
}
