package service

import "errors"

// Sentinel errors returned by services. Handlers map these to response
// statuses at the boundary.
var (
	// ErrInvalidCredentials is returned for an unknown username or a wrong
	// password; callers must not distinguish the two.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrIssueAlreadySent is returned when a newsletter issue that already
	// went out is asked to go out again.
	ErrIssueAlreadySent = errors.New("newsletter issue already sent")

	// ErrInvalidStatus is returned for a status transition outside the
	// allowed set.
	ErrInvalidStatus = errors.New("invalid status")
)
