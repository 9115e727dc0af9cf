package model

import "time"

// OrderStatus describes registration fulfilment lifecycle.
type OrderStatus string

const (
	OrderStatusInProgress OrderStatus = "IN_PROGRESS"
	OrderStatusCompleted  OrderStatus = "COMPLETED"
	OrderStatusCancelled  OrderStatus = "CANCELLED"
)

// PaymentStatus describes how much of the order total has been settled.
// Admin overrides here are free-form and only act as an invoice trigger;
// there is deliberately no payment-status transition machine.
type PaymentStatus string

const (
	PaymentStatusUnpaid            PaymentStatus = "UNPAID"
	PaymentStatusPaid              PaymentStatus = "PAID"
	PaymentStatusPartiallyRefunded PaymentStatus = "PARTIALLY_REFUNDED"
	PaymentStatusRefunded          PaymentStatus = "REFUNDED"
)

// ValidPaymentStatus reports whether the value belongs to the closed set.
func ValidPaymentStatus(s PaymentStatus) bool {
	switch s {
	case PaymentStatusUnpaid, PaymentStatusPaid, PaymentStatusPartiallyRefunded, PaymentStatusRefunded:
		return true
	}
	return false
}

// PaymentMethod tells how the registration is being paid for.
type PaymentMethod string

const (
	PaymentMethodCard    PaymentMethod = "card"
	PaymentMethodInvoice PaymentMethod = "invoice"
)

// OrderVerb is an admin-issued transition on a registration.
type OrderVerb string

const (
	VerbMarkCompleted  OrderVerb = "mark_completed"
	VerbMarkIncomplete OrderVerb = "mark_incomplete"
	VerbMarkCancelled  OrderVerb = "mark_cancelled"
	VerbNotifyCustomer OrderVerb = "notify_customer"
	VerbSendInvoice    OrderVerb = "send_invoice"
)

// verbSources lists order statuses a verb may be applied from. Cancelled is
// terminal and is never a valid source.
var verbSources = map[OrderVerb][]OrderStatus{
	VerbMarkCompleted:  {OrderStatusInProgress},
	VerbMarkIncomplete: {OrderStatusInProgress, OrderStatusCompleted},
	VerbMarkCancelled:  {OrderStatusInProgress, OrderStatusCompleted},
}

// verbTargets maps a mutating verb to its resulting order status.
var verbTargets = map[OrderVerb]OrderStatus{
	VerbMarkCompleted:  OrderStatusCompleted,
	VerbMarkIncomplete: OrderStatusInProgress,
	VerbMarkCancelled:  OrderStatusCancelled,
}

// VerbTransition resolves a mutating verb into its target status and the
// statuses it may legally be applied from. ok is false for unknown or
// non-mutating verbs.
func VerbTransition(verb OrderVerb) (target OrderStatus, from []OrderStatus, ok bool) {
	target, ok = verbTargets[verb]
	if !ok {
		return "", nil, false
	}
	return target, verbSources[verb], true
}

// KnownVerb reports whether the verb belongs to the closed admin vocabulary.
func KnownVerb(verb OrderVerb) bool {
	switch verb {
	case VerbMarkCompleted, VerbMarkIncomplete, VerbMarkCancelled, VerbNotifyCustomer, VerbSendInvoice:
		return true
	}
	return false
}

// Registration is the canonical enrollment record, created either from an
// approved invoice request or a confirmed payment intent.
type Registration struct {
	ID               int64
	UserID           *int64
	ScheduleID       int64
	CourseID         int64
	InvoiceRequestID *int64
	PaymentIntentID  *string
	RequesterName    string
	RequesterEmail   string
	RequesterPhone   string
	CompanyName      string
	PaymentMethod    PaymentMethod
	PaymentStatus    PaymentStatus
	OrderStatus      OrderStatus
	Participants     int
	Total            float64
	DeletedAt        *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// InvoiceDue reports whether the registration state qualifies for invoicing.
func (r *Registration) InvoiceDue() bool {
	return r.PaymentStatus == PaymentStatusPaid || r.OrderStatus == OrderStatusCompleted
}
