package repository

import (
	"context"
	"time"

	"github.com/coursedesk/coursedesk/internal/domain/model"
)

// InvoiceRequestRepository describes persistence operations with invoice requests.
type InvoiceRequestRepository interface {
	Create(ctx context.Context, req *model.InvoiceRequest) (*model.InvoiceRequest, error)
	GetByID(ctx context.Context, id int64) (*model.InvoiceRequest, error)
	// Approve conditionally moves a pending request to approved, merging the
	// effective participants/amount. Returns ErrConflict when the request is
	// already terminal.
	Approve(ctx context.Context, id int64, approvedAt time.Time, participants int, amount *float64) (*model.InvoiceRequest, error)
	// Reject conditionally moves a pending request to rejected. Same guards
	// as Approve.
	Reject(ctx context.Context, id int64, reason string) (*model.InvoiceRequest, error)
}
