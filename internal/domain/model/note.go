package model

import "time"

// OrderNote is an append-only annotation on a registration. Notes are never
// edited, only deleted.
type OrderNote struct {
	ID             int64
	RegistrationID int64
	Author         string
	Body           string
	IsPrivate      bool
	CreatedAt      time.Time
}
