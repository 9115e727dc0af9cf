package model

import "time"

// InvoiceStatus describes stored invoice lifecycle states. OVERDUE is never
// stored; it is derived at read time.
type InvoiceStatus string

const (
	InvoiceStatusPending   InvoiceStatus = "PENDING"
	InvoiceStatusPaid      InvoiceStatus = "PAID"
	InvoiceStatusCancelled InvoiceStatus = "CANCELLED"

	// InvoiceStatusOverdue is a display-only value.
	InvoiceStatusOverdue InvoiceStatus = "OVERDUE"
)

var invoiceTransitions = map[InvoiceStatus]map[InvoiceStatus]struct{}{
	InvoiceStatusPending: {
		InvoiceStatusPaid:      {},
		InvoiceStatusCancelled: {},
	},
	InvoiceStatusPaid: {
		InvoiceStatusCancelled: {},
	},
}

// CanTransitionInvoice reports whether a stored status change is allowed.
// Cancelled is terminal.
func CanTransitionInvoice(from, to InvoiceStatus) bool {
	allowed, ok := invoiceTransitions[from]
	if !ok {
		return false
	}
	_, ok = allowed[to]
	return ok
}

// Invoice is created at most once per registration.
type Invoice struct {
	ID             int64
	InvoiceNo      string
	RegistrationID int64
	Amount         float64
	Status         InvoiceStatus
	IssueDate      time.Time
	DueDate        time.Time
	PaymentDate    *time.Time
	TransactionID  *string
	PDFURL         *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// DisplayStatus derives the externally visible status at the given moment.
func (i *Invoice) DisplayStatus(now time.Time) InvoiceStatus {
	if i.Status == InvoiceStatusPending && now.After(i.DueDate) {
		return InvoiceStatusOverdue
	}
	return i.Status
}
