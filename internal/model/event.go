package model

import (
	"strconv"
	"strings"
	"time"
)

// Availability describes how many tickets remain for an event.
type Availability string

const (
	AvailabilityAvailable Availability = "available"
	AvailabilityFewLeft   Availability = "few-left"
	AvailabilitySoldOut   Availability = "sold-out"
)

// Event is a public listing on the venue's program page.
type Event struct {
	ID           int          `json:"id"`
	Title        string       `json:"title"`
	Artist       string       `json:"artist"`
	Date         string       `json:"date"` // ISO date, e.g. "2026-01-15"
	Time         string       `json:"time"` // e.g. "20:00"
	Price        float64      `json:"price"`
	Genre        string       `json:"genre"`
	Month        string       `json:"month"` // derived from Date, German month name
	Availability Availability `json:"availability"`
	Description  string       `json:"description"`
	Image        string       `json:"image,omitempty"`
	IsArchived   bool         `json:"is_archived"`
	MaxTickets   int          `json:"maxTickets,omitempty"`
}

// PublicEvent is an Event enriched with live ticket availability for the
// public program listing.
type PublicEvent struct {
	Event
	RemainingTickets *int `json:"remainingTickets,omitempty"`
}

var germanMonths = [12]string{
	"Januar", "Februar", "März", "April", "Mai", "Juni",
	"Juli", "August", "September", "Oktober", "November", "Dezember",
}

// MonthLabel derives the German month name from an ISO date. Recomputed
// whenever the date changes; empty when the date does not parse.
func MonthLabel(isoDate string) string {
	parts := strings.SplitN(isoDate, "-", 3)
	if len(parts) < 2 {
		return ""
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil || month < 1 || month > 12 {
		return ""
	}
	return germanMonths[month-1]
}

// DeriveAvailability computes availability from configured capacity and the
// number of tickets held by active reservations. Thresholds: more than 5
// remaining is available, 1-5 is few-left, 0 is sold-out.
func DeriveAvailability(maxTickets, booked int) (Availability, int) {
	remaining := maxTickets - booked
	if remaining < 0 {
		remaining = 0
	}
	switch {
	case remaining == 0:
		return AvailabilitySoldOut, remaining
	case remaining <= 5:
		return AvailabilityFewLeft, remaining
	default:
		return AvailabilityAvailable, remaining
	}
}

// GermanDate formats an ISO date for the public pages surface,
// e.g. "15. Januar 2026".
func GermanDate(isoDate string) string {
	t, err := time.Parse("2006-01-02", isoDate)
	if err != nil {
		return isoDate
	}
	return strconv.Itoa(t.Day()) + ". " + germanMonths[t.Month()-1] + " " + strconv.Itoa(t.Year())
}

// GermanTime formats an event start time for the public pages surface,
// e.g. "20:00 Uhr".
func GermanTime(clock string) string {
	if clock == "" {
		return ""
	}
	return clock + " Uhr"
}

// GermanPrice formats a price in euros for the public pages surface,
// e.g. "18,00 EUR".
func GermanPrice(price float64) string {
	s := strconv.FormatFloat(price, 'f', 2, 64)
	return strings.Replace(s, ".", ",", 1) + " EUR"
}
