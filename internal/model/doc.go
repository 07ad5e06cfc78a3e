// Package model defines the persisted entities of the Kulturboden API and
// their derived-field helpers (German month labels, availability thresholds,
// locale formatting for the public pages surface).
//
// Every entity carries a positive integer ID unique within its collection.
// Cross-collection references (e.g. Reservation.EventID) are informational:
// they may point at deleted records, and callers treat a failed lookup as
// "unknown" rather than an error.
package model
