package repository

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kulturboden/api/internal/model"
	"github.com/kulturboden/api/internal/store"
)

// Subscribers is the newsletter subscriber collection repository.
type Subscribers struct {
	coll *Collection[model.NewsletterSubscriber]
}

// NewSubscribers creates the subscriber repository.
func NewSubscribers(s store.Store) *Subscribers {
	coll := NewCollection(s, "newsletter-subscribers",
		func(sub *model.NewsletterSubscriber) *int { return &sub.ID },
		"subscribedAt", "unsubscribeToken",
	)
	return &Subscribers{coll: coll}
}

// Subscribe is an idempotent upsert keyed by case-insensitive email. An
// existing subscriber is reactivated with a refreshed subscription time; a
// new one gets a fresh unsubscribe token. The second return reports whether
// a record was created, which callers must not leak to the public response.
func (r *Subscribers) Subscribe(ctx context.Context, email, name, source string) (model.NewsletterSubscriber, bool, error) {
	email = strings.TrimSpace(email)

	subscribers, err := r.coll.Load(ctx)
	if err != nil {
		return model.NewsletterSubscriber{}, false, err
	}

	for _, sub := range subscribers {
		if strings.EqualFold(sub.Email, email) {
			sub.Status = model.SubscriberActive
			sub.SubscribedAt = time.Now().UTC()
			if name != "" {
				sub.Name = name
			}
			updated, err := r.coll.Replace(ctx, sub.ID, sub)
			return updated, false, err
		}
	}

	created, err := r.coll.Add(ctx, model.NewsletterSubscriber{
		Email:            email,
		Name:             name,
		Source:           source,
		SubscribedAt:     time.Now().UTC(),
		Status:           model.SubscriberActive,
		UnsubscribeToken: uuid.NewString(),
	})
	return created, true, err
}

// Unsubscribe flips the subscriber matching the token to unsubscribed.
// Idempotent: an already-unsubscribed match is returned unchanged.
func (r *Subscribers) Unsubscribe(ctx context.Context, token string) (model.NewsletterSubscriber, error) {
	subscribers, err := r.coll.Load(ctx)
	if err != nil {
		return model.NewsletterSubscriber{}, err
	}

	for _, sub := range subscribers {
		if sub.UnsubscribeToken != token || token == "" {
			continue
		}
		if sub.Status == model.SubscriberUnsubscribed {
			return sub, nil
		}
		sub.Status = model.SubscriberUnsubscribed
		return r.coll.Replace(ctx, sub.ID, sub)
	}
	return model.NewsletterSubscriber{}, ErrNotFound
}

// List returns all subscribers, newest first.
func (r *Subscribers) List(ctx context.Context) ([]model.NewsletterSubscriber, error) {
	subscribers, err := r.coll.Load(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(subscribers, func(i, j int) bool {
		return subscribers[i].SubscribedAt.After(subscribers[j].SubscribedAt)
	})
	return subscribers, nil
}

// ListActive returns subscribers with status active, the newsletter send
// audience.
func (r *Subscribers) ListActive(ctx context.Context) ([]model.NewsletterSubscriber, error) {
	subscribers, err := r.coll.Load(ctx)
	if err != nil {
		return nil, err
	}
	active := subscribers[:0]
	for _, sub := range subscribers {
		if sub.Status == model.SubscriberActive {
			active = append(active, sub)
		}
	}
	return active, nil
}

// Get returns the subscriber with the given id.
func (r *Subscribers) Get(ctx context.Context, id int) (model.NewsletterSubscriber, error) {
	return r.coll.Get(ctx, id)
}

// Update shallow-merges the patch over the stored subscriber.
func (r *Subscribers) Update(ctx context.Context, id int, patch json.RawMessage) (model.NewsletterSubscriber, error) {
	return r.coll.Update(ctx, id, patch)
}

// Delete removes the subscriber and returns the removed record.
func (r *Subscribers) Delete(ctx context.Context, id int) (model.NewsletterSubscriber, error) {
	return r.coll.Delete(ctx, id)
}

// Issues is the newsletter issue collection repository.
type Issues struct {
	coll *Collection[model.NewsletterIssue]
}

// NewIssues creates the newsletter issue repository. Status and send
// timestamp only move through MarkSent, never through a patch.
func NewIssues(s store.Store) *Issues {
	coll := NewCollection(s, "newsletter-issues",
		func(i *model.NewsletterIssue) *int { return &i.ID },
		"createdAt", "status", "sentAt",
	)
	return &Issues{coll: coll}
}

// List returns issues, newest first.
func (r *Issues) List(ctx context.Context) ([]model.NewsletterIssue, error) {
	issues, err := r.coll.Load(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(issues, func(i, j int) bool {
		return issues[i].CreatedAt.After(issues[j].CreatedAt)
	})
	return issues, nil
}

// Get returns the issue with the given id.
func (r *Issues) Get(ctx context.Context, id int) (model.NewsletterIssue, error) {
	return r.coll.Get(ctx, id)
}

// Create appends a new draft issue.
func (r *Issues) Create(ctx context.Context, issue model.NewsletterIssue) (model.NewsletterIssue, error) {
	issue.Status = model.IssueDraft
	issue.CreatedAt = time.Now().UTC()
	issue.SentAt = nil
	if issue.SelectedEventIDs == nil {
		issue.SelectedEventIDs = []int{}
	}
	return r.coll.Add(ctx, issue)
}

// Update shallow-merges the patch over the stored issue. Status and sentAt
// are protected keys and survive any patch.
func (r *Issues) Update(ctx context.Context, id int, patch json.RawMessage) (model.NewsletterIssue, error) {
	return r.coll.Update(ctx, id, patch)
}

// Delete removes the issue and returns the removed record.
func (r *Issues) Delete(ctx context.Context, id int) (model.NewsletterIssue, error) {
	return r.coll.Delete(ctx, id)
}

// MarkSent transitions the issue draft -> sent, exactly once. Marking an
// already-sent issue is a no-op returning the stored record.
func (r *Issues) MarkSent(ctx context.Context, id int) (model.NewsletterIssue, error) {
	issue, err := r.coll.Get(ctx, id)
	if err != nil {
		return model.NewsletterIssue{}, err
	}
	if issue.Status == model.IssueSent {
		return issue, nil
	}
	now := time.Now().UTC()
	issue.Status = model.IssueSent
	issue.SentAt = &now
	return r.coll.Replace(ctx, id, issue)
}
