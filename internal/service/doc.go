// Package service holds the business logic between handlers and
// repositories: admin authentication and seeding, availability derivation
// for the public program, reservation status transitions, the notification
// fan-out for the public forms, and the batched newsletter issue send.
package service
