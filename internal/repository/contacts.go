package repository

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"github.com/kulturboden/api/internal/model"
	"github.com/kulturboden/api/internal/store"
)

// Contacts is the contact request collection repository.
type Contacts struct {
	coll *Collection[model.Contact]
}

// NewContacts creates the contact repository.
func NewContacts(s store.Store) *Contacts {
	coll := NewCollection(s, "contacts",
		func(c *model.Contact) *int { return &c.ID },
		"createdAt",
	)
	return &Contacts{coll: coll}
}

// List returns contact requests, newest first, optionally filtered by
// status.
func (r *Contacts) List(ctx context.Context, status *model.ContactStatus) ([]model.Contact, error) {
	contacts, err := r.coll.Load(ctx)
	if err != nil {
		return nil, err
	}

	if status != nil {
		filtered := contacts[:0]
		for _, c := range contacts {
			if c.Status == *status {
				filtered = append(filtered, c)
			}
		}
		contacts = filtered
	}

	sort.SliceStable(contacts, func(i, j int) bool {
		return contacts[i].CreatedAt.After(contacts[j].CreatedAt)
	})
	return contacts, nil
}

// Get returns the contact with the given id.
func (r *Contacts) Get(ctx context.Context, id int) (model.Contact, error) {
	return r.coll.Get(ctx, id)
}

// Create appends a new contact request. Status and CreatedAt are
// server-controlled.
func (r *Contacts) Create(ctx context.Context, contact model.Contact) (model.Contact, error) {
	contact.Status = model.ContactNew
	contact.CreatedAt = time.Now().UTC()
	if contact.FormType == "" {
		contact.FormType = model.ContactFormGeneral
	}
	return r.coll.Add(ctx, contact)
}

// Update shallow-merges the patch over the stored contact.
func (r *Contacts) Update(ctx context.Context, id int, patch json.RawMessage) (model.Contact, error) {
	return r.coll.Update(ctx, id, patch)
}

// Delete removes the contact and returns the removed record.
func (r *Contacts) Delete(ctx context.Context, id int) (model.Contact, error) {
	return r.coll.Delete(ctx, id)
}
