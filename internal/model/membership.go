package model

import "time"

// MembershipStatus tracks an application from submission to active
// membership.
type MembershipStatus string

const (
	MembershipPending   MembershipStatus = "pending"
	MembershipApproved  MembershipStatus = "approved"
	MembershipActive    MembershipStatus = "active"
	MembershipCancelled MembershipStatus = "cancelled"
)

// MembershipApplication is a submission from the public membership form.
type MembershipApplication struct {
	ID              int              `json:"id"`
	FirstName       string           `json:"firstName"`
	LastName        string           `json:"lastName"`
	Email           string           `json:"email"`
	Phone           string           `json:"phone,omitempty"`
	Street          string           `json:"street,omitempty"`
	PostalCode      string           `json:"postalCode,omitempty"`
	City            string           `json:"city,omitempty"`
	MembershipType  string           `json:"membershipType"`
	MembershipPrice float64          `json:"membershipPrice,omitempty"`
	Message         string           `json:"message,omitempty"`
	Status          MembershipStatus `json:"status"`
	Notes           string           `json:"notes,omitempty"`
	CreatedAt       time.Time        `json:"createdAt"`
}
