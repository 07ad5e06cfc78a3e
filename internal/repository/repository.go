// Package repository implements the collection repositories of the
// Kulturboden API: one thin CRUD surface per resource type over the shared
// store, all following the same convention. A repository reads the full
// collection, transforms it in memory (filter, find, mutate, append,
// delete) and writes the full collection back. Filtering and sorting happen
// in memory after the read; there is no query language.
//
// Ids are assigned as max(existing ids) + 1, or 1 for an empty collection.
// This matches the legacy system exactly: deleting the highest-id record and
// inserting again reuses that id, and two concurrent inserts can race to the
// same id since there is no locking. Known limitation, kept for
// compatibility with existing data.
package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/kulturboden/api/internal/store"
)

// ErrNotFound indicates no record with the requested id exists.
var ErrNotFound = errors.New("record not found")

// Collection binds a record type to a named collection in the store and
// implements the shared CRUD pattern. Resource-specific behavior (derived
// fields, default statuses, upserts) lives in the typed repositories built
// on top of it.
type Collection[T any] struct {
	store     store.Store
	name      string
	id        func(*T) *int
	protected []string
	recompute func(*T)
}

// NewCollection creates a collection bound to name. The id accessor returns
// a pointer to the record's integer id field. Protected keys are
// server-controlled top-level JSON keys that patch updates may never
// replace; "id" is always protected.
func NewCollection[T any](s store.Store, name string, id func(*T) *int, protected ...string) *Collection[T] {
	if !slices.Contains(protected, "id") {
		protected = append(protected, "id")
	}
	return &Collection[T]{
		store:     s,
		name:      name,
		id:        id,
		protected: protected,
	}
}

// WithRecompute installs a derived-field hook applied to every record right
// before it is persisted by Add, Update or Replace (e.g. the German month
// label derived from an event's date).
func (c *Collection[T]) WithRecompute(fn func(*T)) *Collection[T] {
	c.recompute = fn
	return c
}

// Name returns the collection name.
func (c *Collection[T]) Name() string {
	return c.name
}

// Load reads the full collection. A collection that has never been written
// is an empty collection, not an error. A collection that fails to parse is
// logged and treated as empty rather than propagated, so one corrupt write
// cannot take the whole resource offline.
func (c *Collection[T]) Load(ctx context.Context) ([]T, error) {
	data, err := c.store.Read(ctx, c.name)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return []T{}, nil
		}
		return nil, fmt.Errorf("load %s: %w", c.name, err)
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		slog.Error("collection failed to parse, treating as empty",
			slog.String("collection", c.name),
			slog.String("error", err.Error()),
		)
		return []T{}, nil
	}
	return records, nil
}

// Save replaces the entire persisted collection. The payload is
// pretty-printed so the file backend stays hand-inspectable.
func (c *Collection[T]) Save(ctx context.Context, records []T) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("save %s: %w", c.name, err)
	}
	if err := c.store.Write(ctx, c.name, data); err != nil {
		slog.Error("collection write failed",
			slog.String("collection", c.name),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("save %s: %w", c.name, err)
	}
	return nil
}

// Get returns the record with the given id, or ErrNotFound.
func (c *Collection[T]) Get(ctx context.Context, id int) (T, error) {
	var zero T
	records, err := c.Load(ctx)
	if err != nil {
		return zero, err
	}
	for i := range records {
		if *c.id(&records[i]) == id {
			return records[i], nil
		}
	}
	return zero, ErrNotFound
}

// Add assigns the next id, appends the record and persists the collection.
// The caller has already set server-controlled fields; the id is always
// overwritten here.
func (c *Collection[T]) Add(ctx context.Context, record T) (T, error) {
	var zero T
	records, err := c.Load(ctx)
	if err != nil {
		return zero, err
	}

	*c.id(&record) = c.nextID(records)
	if c.recompute != nil {
		c.recompute(&record)
	}
	records = append(records, record)

	if err := c.Save(ctx, records); err != nil {
		return zero, err
	}
	return record, nil
}

// Update shallow-merges the patch over the stored record: only top-level
// JSON keys present in the patch replace the corresponding stored keys, and
// protected keys are dropped from the patch before merging. Returns the
// merged record, or ErrNotFound.
func (c *Collection[T]) Update(ctx context.Context, id int, patch json.RawMessage) (T, error) {
	var zero T
	records, err := c.Load(ctx)
	if err != nil {
		return zero, err
	}

	for i := range records {
		if *c.id(&records[i]) != id {
			continue
		}

		merged, err := c.merge(records[i], patch)
		if err != nil {
			return zero, err
		}
		if c.recompute != nil {
			c.recompute(&merged)
		}
		records[i] = merged

		if err := c.Save(ctx, records); err != nil {
			return zero, err
		}
		return merged, nil
	}
	return zero, ErrNotFound
}

// Replace swaps the stored record wholesale, keeping its id. Used by typed
// repositories for transitions they computed themselves (archive toggle,
// status changes, upserts).
func (c *Collection[T]) Replace(ctx context.Context, id int, record T) (T, error) {
	var zero T
	records, err := c.Load(ctx)
	if err != nil {
		return zero, err
	}

	for i := range records {
		if *c.id(&records[i]) == id {
			*c.id(&record) = id
			if c.recompute != nil {
				c.recompute(&record)
			}
			records[i] = record
			if err := c.Save(ctx, records); err != nil {
				return zero, err
			}
			return record, nil
		}
	}
	return zero, ErrNotFound
}

// Delete removes the record with the given id, persists the remainder and
// returns the removed record for confirmation.
func (c *Collection[T]) Delete(ctx context.Context, id int) (T, error) {
	var zero T
	records, err := c.Load(ctx)
	if err != nil {
		return zero, err
	}

	for i := range records {
		if *c.id(&records[i]) == id {
			removed := records[i]
			records = append(records[:i], records[i+1:]...)
			if err := c.Save(ctx, records); err != nil {
				return zero, err
			}
			return removed, nil
		}
	}
	return zero, ErrNotFound
}

// nextID is max(existing ids) + 1, or 1 for an empty collection.
func (c *Collection[T]) nextID(records []T) int {
	max := 0
	for i := range records {
		if id := *c.id(&records[i]); id > max {
			max = id
		}
	}
	return max + 1
}

func (c *Collection[T]) merge(existing T, patch json.RawMessage) (T, error) {
	var zero T

	existingJSON, err := json.Marshal(existing)
	if err != nil {
		return zero, fmt.Errorf("merge %s: %w", c.name, err)
	}

	var base map[string]json.RawMessage
	if err := json.Unmarshal(existingJSON, &base); err != nil {
		return zero, fmt.Errorf("merge %s: %w", c.name, err)
	}

	var overlay map[string]json.RawMessage
	if err := json.Unmarshal(patch, &overlay); err != nil {
		return zero, fmt.Errorf("merge %s: invalid patch: %w", c.name, err)
	}

	for key, value := range overlay {
		if slices.Contains(c.protected, key) {
			continue
		}
		base[key] = value
	}

	mergedJSON, err := json.Marshal(base)
	if err != nil {
		return zero, fmt.Errorf("merge %s: %w", c.name, err)
	}

	var merged T
	if err := json.Unmarshal(mergedJSON, &merged); err != nil {
		return zero, fmt.Errorf("merge %s: invalid field value: %w", c.name, err)
	}
	return merged, nil
}
