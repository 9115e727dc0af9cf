package model

import "time"

// RegistrationSnapshot carries the pending registration data captured when a
// payment intent is created, so confirmation can build the order without
// re-asking the customer.
type RegistrationSnapshot struct {
	RequesterName  string `json:"requesterName"`
	RequesterEmail string `json:"requesterEmail"`
	RequesterPhone string `json:"requesterPhone"`
	CompanyName    string `json:"companyName"`
}

// PaymentIntentRecord mirrors a provider-issued payment intent. A record is
// consumed into a registration at most once.
type PaymentIntentRecord struct {
	ID           string
	ScheduleID   int64
	CourseID     int64
	Participants int
	Amount       float64
	Snapshot     RegistrationSnapshot
	Consumed     bool
	CreatedAt    time.Time
}
