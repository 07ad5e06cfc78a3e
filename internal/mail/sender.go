// Package mail sends transactional email through an external provider.
//
// The core hands a fully rendered HTML body to Send; template rendering
// lives in templates.go and carries no business logic. Provider failures are
// returned to the caller, which decides whether the overall request fails.
package mail

import "context"

// Message is one outbound email.
type Message struct {
	To      string
	Subject string
	HTML    string
	ReplyTo string
}

// Sender delivers messages via an external provider and returns the
// provider's message id.
type Sender interface {
	Send(ctx context.Context, msg Message) (string, error)
}
