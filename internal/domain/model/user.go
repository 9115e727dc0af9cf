package model

import "time"

// User is a known account looked up by email when linking registrations.
// Lookup is best-effort; registrations never require a user.
type User struct {
	ID        int64
	Email     string
	Name      string
	CreatedAt time.Time
}
