package repository

import (
	"context"

	"github.com/coursedesk/coursedesk/internal/domain/model"
)

// RegistrationPatch carries optional field updates for a registration. Nil
// fields are left untouched.
type RegistrationPatch struct {
	RequesterName  *string
	RequesterEmail *string
	RequesterPhone *string
	CompanyName    *string
	PaymentStatus  *model.PaymentStatus
	Participants   *int
	Total          *float64
}

// Empty reports whether the patch changes nothing.
func (p RegistrationPatch) Empty() bool {
	return p.RequesterName == nil && p.RequesterEmail == nil && p.RequesterPhone == nil &&
		p.CompanyName == nil && p.PaymentStatus == nil && p.Participants == nil && p.Total == nil
}

// RegistrationRepository describes persistence operations with registrations.
type RegistrationRepository interface {
	// CreateFromRequest inserts a registration keyed by its invoice request.
	// The unique constraint on invoice_request_id makes retries converge on
	// one row; created reports whether this call inserted it.
	CreateFromRequest(ctx context.Context, reg *model.Registration) (*model.Registration, bool, error)
	GetByID(ctx context.Context, id int64) (*model.Registration, error)
	GetByIntent(ctx context.Context, intentID string) (*model.Registration, error)
	// UpdateOrderStatus conditionally moves order status to target when the
	// current status is one of from. Returns ErrConflict when the precondition
	// no longer holds, ErrNotFound for unknown ids.
	UpdateOrderStatus(ctx context.Context, id int64, target model.OrderStatus, from []model.OrderStatus) (*model.Registration, error)
	UpdateFields(ctx context.Context, id int64, patch RegistrationPatch) (*model.Registration, error)
	SoftDelete(ctx context.Context, id int64) error
	Restore(ctx context.Context, id int64) error
}
