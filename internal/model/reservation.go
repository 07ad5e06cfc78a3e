package model

import "time"

// ReservationStatus is the canonical reservation lifecycle enum. The
// historical API used two drifted enums ({pending, confirmed, cancelled} in
// most paths, {active, archived} in the status-transition endpoint); this
// implementation canonicalizes on the former and accepts the latter as
// aliases at the boundary.
type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "pending"
	ReservationConfirmed ReservationStatus = "confirmed"
	ReservationCancelled ReservationStatus = "cancelled"
)

// CanonicalReservationStatus maps an incoming status string, including the
// legacy aliases, onto the canonical enum. The second return is false for
// unknown values.
func CanonicalReservationStatus(s string) (ReservationStatus, bool) {
	switch s {
	case "pending":
		return ReservationPending, true
	case "confirmed", "active":
		return ReservationConfirmed, true
	case "cancelled", "archived":
		return ReservationCancelled, true
	default:
		return "", false
	}
}

// Reservation is a ticket request for an event. EventID is informational:
// it may point to a deleted event, in which case the stored EventTitle is
// the only display fallback.
type Reservation struct {
	ID         int               `json:"id"`
	EventID    int               `json:"eventId"`
	Name       string            `json:"name"`
	Email      string            `json:"email"`
	Phone      string            `json:"phone,omitempty"`
	Tickets    int               `json:"tickets"`
	Status     ReservationStatus `json:"status"`
	Notes      string            `json:"notes,omitempty"`
	EventTitle string            `json:"eventTitle,omitempty"`
	CreatedAt  time.Time         `json:"createdAt"`
}

// CountsTowardCapacity reports whether the reservation's tickets are held
// against the event's capacity.
func (r Reservation) CountsTowardCapacity() bool {
	return r.Status == ReservationPending || r.Status == ReservationConfirmed
}

// ReservationView is a Reservation enriched with parent event details at
// read time. The join is computed, never stored; when the event is gone the
// stored EventTitle carries the display name.
type ReservationView struct {
	Reservation
	EventDate   string `json:"eventDate,omitempty"`
	EventArtist string `json:"eventArtist,omitempty"`
}
