package dto

import "time"

// InvoiceRequestSubmission is the public payload opening an invoice request.
type InvoiceRequestSubmission struct {
	ScheduleID     int64  `json:"scheduleId"`
	CourseID       int64  `json:"courseId"`
	RequesterName  string `json:"requesterName"`
	RequesterEmail string `json:"requesterEmail"`
	RequesterPhone string `json:"requesterPhone"`
	CompanyName    string `json:"companyName"`
	Participants   int    `json:"participants"`
}

// Review actions accepted by the invoice request PATCH endpoint.
const (
	ReviewActionApprove = "approve"
	ReviewActionReject  = "reject"
)

// RequestDecision carries an admin review of a pending invoice request.
// Participants and amount override stored values on approval; the rejection
// reason is stored on rejection.
type RequestDecision struct {
	Action          string   `json:"action"`
	Participants    *int     `json:"participants,omitempty"`
	Amount          *float64 `json:"amount,omitempty"`
	RejectionReason *string  `json:"rejectionReason,omitempty"`
}

// InvoiceRequestResponse describes an invoice request record.
type InvoiceRequestResponse struct {
	ID              int64      `json:"id"`
	ScheduleID      int64      `json:"scheduleId"`
	CourseID        int64      `json:"courseId"`
	RequesterName   string     `json:"requesterName"`
	RequesterEmail  string     `json:"requesterEmail"`
	RequesterPhone  string     `json:"requesterPhone,omitempty"`
	CompanyName     string     `json:"companyName,omitempty"`
	Participants    int        `json:"participants"`
	Amount          *float64   `json:"amount,omitempty"`
	Status          string     `json:"status"`
	RejectionReason *string    `json:"rejectionReason,omitempty"`
	ApprovedAt      *time.Time `json:"approvedAt,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
}

// RequestDecisionResponse is returned from the review endpoint. The order is
// present after an approval; a warning reports a dropped notification.
type RequestDecisionResponse struct {
	Request InvoiceRequestResponse `json:"request"`
	Order   *OrderResponse         `json:"order,omitempty"`
	Warning string                 `json:"warning,omitempty"`
}
