package repository

import (
	"context"
	"encoding/json"
	"sort"

	"github.com/kulturboden/api/internal/model"
	"github.com/kulturboden/api/internal/store"
)

// Sponsors is the sponsor collection repository.
type Sponsors struct {
	coll *Collection[model.Sponsor]
}

// NewSponsors creates the sponsor repository.
func NewSponsors(s store.Store) *Sponsors {
	coll := NewCollection(s, "sponsors",
		func(sp *model.Sponsor) *int { return &sp.ID },
	)
	return &Sponsors{coll: coll}
}

// List returns all sponsors ordered by category, then position.
func (r *Sponsors) List(ctx context.Context) ([]model.Sponsor, error) {
	sponsors, err := r.coll.Load(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(sponsors, func(i, j int) bool {
		if sponsors[i].Category != sponsors[j].Category {
			return sponsors[i].Category < sponsors[j].Category
		}
		return sponsors[i].Position < sponsors[j].Position
	})
	return sponsors, nil
}

// ListPublic returns the allow-list projection served without auth. Admin
// fields never pass through this path.
func (r *Sponsors) ListPublic(ctx context.Context) ([]model.PublicSponsor, error) {
	sponsors, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	public := make([]model.PublicSponsor, 0, len(sponsors))
	for _, s := range sponsors {
		public = append(public, s.Public())
	}
	return public, nil
}

// Get returns the sponsor with the given id.
func (r *Sponsors) Get(ctx context.Context, id int) (model.Sponsor, error) {
	return r.coll.Get(ctx, id)
}

// Create appends a new sponsor.
func (r *Sponsors) Create(ctx context.Context, sponsor model.Sponsor) (model.Sponsor, error) {
	return r.coll.Add(ctx, sponsor)
}

// Update shallow-merges the patch over the stored sponsor.
func (r *Sponsors) Update(ctx context.Context, id int, patch json.RawMessage) (model.Sponsor, error) {
	return r.coll.Update(ctx, id, patch)
}

// Delete removes the sponsor and returns the removed record.
func (r *Sponsors) Delete(ctx context.Context, id int) (model.Sponsor, error) {
	return r.coll.Delete(ctx, id)
}
