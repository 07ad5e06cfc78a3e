package repository

import (
	"context"
	"strings"
	"time"

	"github.com/kulturboden/api/internal/model"
	"github.com/kulturboden/api/internal/store"
)

// Admins is the back-office user repository. The collection is tiny and
// rarely changes.
type Admins struct {
	coll *Collection[model.Admin]
}

// NewAdmins creates the admin repository.
func NewAdmins(s store.Store) *Admins {
	coll := NewCollection(s, "admins",
		func(a *model.Admin) *int { return &a.ID },
		"createdAt", "passwordHash",
	)
	return &Admins{coll: coll}
}

// List returns all admins.
func (r *Admins) List(ctx context.Context) ([]model.Admin, error) {
	return r.coll.Load(ctx)
}

// GetByUsername returns the admin with the given username
// (case-insensitive), or ErrNotFound.
func (r *Admins) GetByUsername(ctx context.Context, username string) (model.Admin, error) {
	admins, err := r.coll.Load(ctx)
	if err != nil {
		return model.Admin{}, err
	}
	for _, a := range admins {
		if strings.EqualFold(a.Username, username) {
			return a, nil
		}
	}
	return model.Admin{}, ErrNotFound
}

// Create appends a new admin. CreatedAt is server-controlled.
func (r *Admins) Create(ctx context.Context, admin model.Admin) (model.Admin, error) {
	admin.CreatedAt = time.Now().UTC()
	return r.coll.Add(ctx, admin)
}

// SetPasswordHash replaces the stored hash, used for the legacy-digest
// upgrade on login.
func (r *Admins) SetPasswordHash(ctx context.Context, id int, hash string) error {
	admin, err := r.coll.Get(ctx, id)
	if err != nil {
		return err
	}
	admin.PasswordHash = hash
	_, err = r.coll.Replace(ctx, id, admin)
	return err
}
