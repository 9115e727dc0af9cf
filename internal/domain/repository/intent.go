package repository

import (
	"context"

	"github.com/coursedesk/coursedesk/internal/domain/model"
)

// PaymentIntentRepository describes persistence operations with payment intents.
type PaymentIntentRepository interface {
	Create(ctx context.Context, rec *model.PaymentIntentRecord) error
	GetByID(ctx context.Context, id string) (*model.PaymentIntentRecord, error)
	// Consume atomically flips consumed=false to true and inserts the
	// registration in the same transaction. A replay for an already consumed
	// intent returns the existing registration with created=false. Two
	// concurrent calls race safely to exactly one winner.
	Consume(ctx context.Context, id string, reg *model.Registration) (*model.Registration, bool, error)
}
