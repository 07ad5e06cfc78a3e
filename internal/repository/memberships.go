package repository

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"github.com/kulturboden/api/internal/model"
	"github.com/kulturboden/api/internal/store"
)

// Memberships is the membership application collection repository.
type Memberships struct {
	coll *Collection[model.MembershipApplication]
}

// NewMemberships creates the membership application repository.
func NewMemberships(s store.Store) *Memberships {
	coll := NewCollection(s, "memberships",
		func(m *model.MembershipApplication) *int { return &m.ID },
		"createdAt",
	)
	return &Memberships{coll: coll}
}

// List returns applications, newest first, optionally filtered by status.
func (r *Memberships) List(ctx context.Context, status *model.MembershipStatus) ([]model.MembershipApplication, error) {
	applications, err := r.coll.Load(ctx)
	if err != nil {
		return nil, err
	}

	if status != nil {
		filtered := applications[:0]
		for _, a := range applications {
			if a.Status == *status {
				filtered = append(filtered, a)
			}
		}
		applications = filtered
	}

	sort.SliceStable(applications, func(i, j int) bool {
		return applications[i].CreatedAt.After(applications[j].CreatedAt)
	})
	return applications, nil
}

// Get returns the application with the given id.
func (r *Memberships) Get(ctx context.Context, id int) (model.MembershipApplication, error) {
	return r.coll.Get(ctx, id)
}

// Create appends a new application. Status and CreatedAt are
// server-controlled.
func (r *Memberships) Create(ctx context.Context, application model.MembershipApplication) (model.MembershipApplication, error) {
	application.Status = model.MembershipPending
	application.CreatedAt = time.Now().UTC()
	return r.coll.Add(ctx, application)
}

// Update shallow-merges the patch over the stored application.
func (r *Memberships) Update(ctx context.Context, id int, patch json.RawMessage) (model.MembershipApplication, error) {
	return r.coll.Update(ctx, id, patch)
}

// Delete removes the application and returns the removed record.
func (r *Memberships) Delete(ctx context.Context, id int) (model.MembershipApplication, error) {
	return r.coll.Delete(ctx, id)
}
