package test

import (
	"context"

	"github.com/coursedesk/coursedesk/internal/adapter/payment"
	"github.com/coursedesk/coursedesk/internal/domain/model"
)

// PaymentProviderStub simulates the card-payment provider.
type PaymentProviderStub struct {
	Handle   *model.PaymentIntentHandle
	Status   model.ProviderPaymentStatus
	Err      error
	CreateFn func(context.Context, float64) (*model.PaymentIntentHandle, error)
	StatusFn func(context.Context, string) (model.ProviderPaymentStatus, error)
}

// CreateIntent returns the configured handle or delegates to the override.
func (s *PaymentProviderStub) CreateIntent(ctx context.Context, amount float64) (*model.PaymentIntentHandle, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, amount)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Handle != nil {
		return s.Handle, nil
	}
	return &model.PaymentIntentHandle{ID: "pi_test", ClientSecret: "secret"}, nil
}

// GetStatus returns the configured status or delegates to the override.
func (s *PaymentProviderStub) GetStatus(ctx context.Context, intentID string) (model.ProviderPaymentStatus, error) {
	if s.StatusFn != nil {
		return s.StatusFn(ctx, intentID)
	}
	if s.Err != nil {
		return "", s.Err
	}
	if s.Status != "" {
		return s.Status, nil
	}
	return model.ProviderPaymentSucceeded, nil
}

var _ payment.Client = (*PaymentProviderStub)(nil)
