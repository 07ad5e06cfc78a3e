package model

import "time"

// Admin is a back-office user. PasswordHash is a bcrypt hash; records
// imported from the legacy system may still carry a sha256+salt digest,
// which the auth service verifies and upgrades on login.
type Admin struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"passwordHash"`
	CreatedAt    time.Time `json:"createdAt"`
}
