package notification

import (
	"github.com/coursedesk/coursedesk/internal/domain/model"
)

// Kind names an outgoing notification event.
type Kind string

const (
	KindRequestRejected Kind = "request_rejected"
	KindInvoiceIssued   Kind = "invoice_issued"
	KindInvoiceResent   Kind = "invoice_resent"
	KindCustomerNotice  Kind = "customer_notice"
)

// Notification is an event queued for asynchronous email delivery. Only the
// fields relevant to its kind are set.
type Notification struct {
	Kind         Kind
	Recipient    string
	Request      *model.InvoiceRequest
	Registration *model.Registration
	Invoice      *model.Invoice
	Schedule     *model.CourseSchedule
	Reason       string
}

// Submitter accepts notifications for delivery. Submission is fire-and-forget
// relative to the state transition that produced the event: ok reports only
// whether the event was queued, never whether it was delivered.
type Submitter interface {
	Submit(n Notification) bool
}
