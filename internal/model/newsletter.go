package model

import "time"

// SubscriberStatus is active or unsubscribed; re-subscribing flips the
// status back rather than creating a second record.
type SubscriberStatus string

const (
	SubscriberActive       SubscriberStatus = "active"
	SubscriberUnsubscribed SubscriberStatus = "unsubscribed"
)

// NewsletterSubscriber is one newsletter recipient. Email is unique
// case-insensitively across the collection.
type NewsletterSubscriber struct {
	ID               int              `json:"id"`
	Email            string           `json:"email"`
	Name             string           `json:"name,omitempty"`
	Source           string           `json:"source,omitempty"`
	SubscribedAt     time.Time        `json:"subscribedAt"`
	Status           SubscriberStatus `json:"status"`
	UnsubscribeToken string           `json:"unsubscribeToken"`
}

// IssueStatus is draft until the issue is sent, then sent forever.
type IssueStatus string

const (
	IssueDraft IssueStatus = "draft"
	IssueSent  IssueStatus = "sent"
)

// NewsletterIssue is one edition of the newsletter. SelectedEventIDs
// reference events to feature; dangling ids are skipped at send time.
type NewsletterIssue struct {
	ID               int         `json:"id"`
	Title            string      `json:"title"`
	IntroText        string      `json:"introText,omitempty"`
	SelectedEventIDs []int       `json:"selectedEventIds"`
	Status           IssueStatus `json:"status"`
	CreatedAt        time.Time   `json:"createdAt"`
	SentAt           *time.Time  `json:"sentAt,omitempty"`
}
