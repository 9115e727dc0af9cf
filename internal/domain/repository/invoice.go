package repository

import (
	"context"
	"time"

	"github.com/coursedesk/coursedesk/internal/domain/model"
)

// InvoiceRepository describes persistence operations with invoices.
type InvoiceRepository interface {
	// CreateIfAbsent inserts the invoice unless one already exists for its
	// registration; the unique constraint on registration_id decides races.
	CreateIfAbsent(ctx context.Context, inv *model.Invoice) (*model.Invoice, bool, error)
	GetByID(ctx context.Context, id int64) (*model.Invoice, error)
	GetByRegistration(ctx context.Context, registrationID int64) (*model.Invoice, error)
	// UpdateStatus conditionally moves the stored status from an expected
	// current value. Returns ErrConflict when the row changed underneath.
	UpdateStatus(ctx context.Context, id int64, from, to model.InvoiceStatus, paymentDate *time.Time, transactionID *string) (*model.Invoice, error)
}
