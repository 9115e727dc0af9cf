package model

import "time"

// RequestStatus describes invoice request review lifecycle.
type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "PENDING"
	RequestStatusApproved RequestStatus = "APPROVED"
	RequestStatusRejected RequestStatus = "REJECTED"
)

// RejectionReasonFallback is stored when an admin rejects without a reason.
const RejectionReasonFallback = "No reason provided"

var requestTransitions = map[RequestStatus]map[RequestStatus]struct{}{
	RequestStatusPending: {
		RequestStatusApproved: {},
		RequestStatusRejected: {},
	},
}

// CanTransitionRequest reports whether a request status change is allowed.
// Approved and rejected are terminal.
func CanTransitionRequest(from, to RequestStatus) bool {
	allowed, ok := requestTransitions[from]
	if !ok {
		return false
	}
	_, ok = allowed[to]
	return ok
}

// InvoiceRequest describes a company's inquiry to pay for seats via invoice.
type InvoiceRequest struct {
	ID              int64
	ScheduleID      int64
	CourseID        int64
	RequesterName   string
	RequesterEmail  string
	RequesterPhone  string
	CompanyName     string
	Participants    int
	Amount          *float64
	Status          RequestStatus
	RejectionReason *string
	ApprovedAt      *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
