package dto

import "time"

// OrderResponse describes a course registration.
type OrderResponse struct {
	ID             int64      `json:"id"`
	UserID         *int64     `json:"userId,omitempty"`
	ScheduleID     int64      `json:"scheduleId"`
	CourseID       int64      `json:"courseId"`
	RequesterName  string     `json:"requesterName"`
	RequesterEmail string     `json:"requesterEmail"`
	RequesterPhone string     `json:"requesterPhone,omitempty"`
	CompanyName    string     `json:"companyName,omitempty"`
	PaymentMethod  string     `json:"paymentMethod"`
	PaymentStatus  string     `json:"paymentStatus"`
	OrderStatus    string     `json:"orderStatus"`
	Participants   int        `json:"participants"`
	Total          float64    `json:"total"`
	DeletedAt      *time.Time `json:"deletedAt,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
}

// OrderEnvelope pairs a registration with its invoice when one exists. A
// warning reports a dropped delivery after an otherwise successful call.
type OrderEnvelope struct {
	Order   OrderResponse    `json:"order"`
	Invoice *InvoiceResponse `json:"invoice,omitempty"`
	Warning string           `json:"warning,omitempty"`
}

// ActionRequest names one admin verb to run against an order.
type ActionRequest struct {
	Action string `json:"action"`
}

// OrderPatch carries optional contact and billing corrections.
type OrderPatch struct {
	RequesterName  *string  `json:"requesterName,omitempty"`
	RequesterEmail *string  `json:"requesterEmail,omitempty"`
	RequesterPhone *string  `json:"requesterPhone,omitempty"`
	CompanyName    *string  `json:"companyName,omitempty"`
	PaymentStatus  *string  `json:"paymentStatus,omitempty"`
	Participants   *int     `json:"participants,omitempty"`
	Total          *float64 `json:"total,omitempty"`
}

// NoteCreateRequest adds an annotation to an order.
type NoteCreateRequest struct {
	Author    string `json:"author"`
	Body      string `json:"body"`
	IsPrivate bool   `json:"isPrivate"`
}

// NoteResponse describes one order annotation.
type NoteResponse struct {
	ID        int64     `json:"id"`
	Author    string    `json:"author"`
	Body      string    `json:"body"`
	IsPrivate bool      `json:"isPrivate"`
	CreatedAt time.Time `json:"createdAt"`
}
