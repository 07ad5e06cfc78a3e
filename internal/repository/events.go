package repository

import (
	"context"
	"encoding/json"
	"sort"

	"github.com/kulturboden/api/internal/model"
	"github.com/kulturboden/api/internal/store"
)

// Events is the event collection repository.
type Events struct {
	coll *Collection[model.Event]
}

// NewEvents creates the event repository. The month label is derived from
// the date on every write.
func NewEvents(s store.Store) *Events {
	coll := NewCollection(s, "events", func(e *model.Event) *int { return &e.ID }, "month")
	coll.WithRecompute(func(e *model.Event) {
		e.Month = model.MonthLabel(e.Date)
	})
	return &Events{coll: coll}
}

// List returns events sorted by date. When archived is non-nil only events
// matching the flag are returned.
func (r *Events) List(ctx context.Context, archived *bool) ([]model.Event, error) {
	events, err := r.coll.Load(ctx)
	if err != nil {
		return nil, err
	}

	if archived != nil {
		filtered := events[:0]
		for _, e := range events {
			if e.IsArchived == *archived {
				filtered = append(filtered, e)
			}
		}
		events = filtered
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Date < events[j].Date
	})
	return events, nil
}

// Get returns the event with the given id.
func (r *Events) Get(ctx context.Context, id int) (model.Event, error) {
	return r.coll.Get(ctx, id)
}

// Create appends a new event. Availability defaults to available when the
// caller left it empty; the month label is derived from the date.
func (r *Events) Create(ctx context.Context, event model.Event) (model.Event, error) {
	if event.Availability == "" {
		event.Availability = model.AvailabilityAvailable
	}
	event.IsArchived = false
	return r.coll.Add(ctx, event)
}

// Update shallow-merges the patch over the stored event and re-derives the
// month label.
func (r *Events) Update(ctx context.Context, id int, patch json.RawMessage) (model.Event, error) {
	return r.coll.Update(ctx, id, patch)
}

// Delete removes the event and returns the removed record.
func (r *Events) Delete(ctx context.Context, id int) (model.Event, error) {
	return r.coll.Delete(ctx, id)
}

// ToggleArchive flips the archived flag, distinct from a full update.
func (r *Events) ToggleArchive(ctx context.Context, id int) (model.Event, error) {
	event, err := r.coll.Get(ctx, id)
	if err != nil {
		return model.Event{}, err
	}
	event.IsArchived = !event.IsArchived
	return r.coll.Replace(ctx, id, event)
}
