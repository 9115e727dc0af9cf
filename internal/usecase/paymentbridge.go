package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	domainErrors "github.com/coursedesk/coursedesk/internal/domain/errors"
	"github.com/coursedesk/coursedesk/internal/domain/model"
	"github.com/coursedesk/coursedesk/internal/domain/repository"
)

// PaymentProvider is the slice of the card-payment provider the bridge needs.
type PaymentProvider interface {
	CreateIntent(ctx context.Context, amount float64) (*model.PaymentIntentHandle, error)
	GetStatus(ctx context.Context, intentID string) (model.ProviderPaymentStatus, error)
}

// PaymentBridge records provider payment intents and reconciles their
// confirmation into registrations, exactly once per intent.
type PaymentBridge struct {
	intents       repository.PaymentIntentRepository
	registrations repository.RegistrationRepository
	schedules     repository.ScheduleRepository
	users         repository.UserRepository
	provider      PaymentProvider
	invoices      *InvoiceLifecycle
	minimumFee    float64
	logger        *slog.Logger
}

// NewPaymentBridge constructs PaymentBridge.
func NewPaymentBridge(
	intents repository.PaymentIntentRepository,
	registrations repository.RegistrationRepository,
	schedules repository.ScheduleRepository,
	users repository.UserRepository,
	provider PaymentProvider,
	invoices *InvoiceLifecycle,
	minimumFee float64,
	logger *slog.Logger,
) *PaymentBridge {
	return &PaymentBridge{
		intents:       intents,
		registrations: registrations,
		schedules:     schedules,
		users:         users,
		provider:      provider,
		invoices:      invoices,
		minimumFee:    minimumFee,
		logger:        logger,
	}
}

// CreateIntent computes the amount from the schedule fee chain, registers the
// intent with the provider, and persists the pending-registration snapshot
// keyed by the provider's intent id.
func (b *PaymentBridge) CreateIntent(ctx context.Context, scheduleID, courseID int64, participants int, snapshot model.RegistrationSnapshot) (*model.PaymentIntentHandle, error) {
	if participants <= 0 {
		participants = 1
	}
	if !ValidateEmail(snapshot.RequesterEmail) {
		return nil, fmt.Errorf("create intent: requester email: %w", domainErrors.ErrValidation)
	}

	schedule, err := b.schedules.GetByID(ctx, scheduleID)
	if err != nil {
		return nil, fmt.Errorf("create intent: schedule %d: %w", scheduleID, err)
	}
	amount := schedule.SeatFee(b.minimumFee) * float64(participants)

	handle, err := b.provider.CreateIntent(ctx, amount)
	if err != nil {
		return nil, err
	}

	rec := &model.PaymentIntentRecord{
		ID:           handle.ID,
		ScheduleID:   scheduleID,
		CourseID:     courseID,
		Participants: participants,
		Amount:       amount,
		Snapshot:     snapshot,
	}
	if err := b.intents.Create(ctx, rec); err != nil {
		return nil, fmt.Errorf("persist intent %s: %w", handle.ID, err)
	}
	return handle, nil
}

// ConfirmResult carries the outcome of reconciling one intent. Created is
// false on replays. A non-empty warning reports a post-commit follow-up that
// failed and will be recovered later.
type ConfirmResult struct {
	Registration *model.Registration
	Created      bool
	Warning      string
}

// Confirm reconciles a provider confirmation into a registration. Replays
// return the existing registration; concurrent calls race to exactly one
// winner through the conditional consume. Safe to retry in full.
func (b *PaymentBridge) Confirm(ctx context.Context, intentID string) (*ConfirmResult, error) {
	rec, err := b.intents.GetByID(ctx, intentID)
	if err != nil {
		return nil, err
	}

	if rec.Consumed {
		existing, err := b.registrations.GetByIntent(ctx, intentID)
		if err != nil {
			return nil, err
		}
		return &ConfirmResult{Registration: existing}, nil
	}

	status, err := b.provider.GetStatus(ctx, intentID)
	if err != nil {
		return nil, err
	}
	if status != model.ProviderPaymentSucceeded {
		return nil, fmt.Errorf("intent %s is %s: %w", intentID, status, domainErrors.ErrConflict)
	}

	var userID *int64
	if ValidateEmail(rec.Snapshot.RequesterEmail) {
		if user, lookupErr := b.users.GetByEmail(ctx, rec.Snapshot.RequesterEmail); lookupErr == nil {
			userID = &user.ID
		} else if !errors.Is(lookupErr, domainErrors.ErrNotFound) {
			b.logger.Warn("user lookup failed", slog.String("error", lookupErr.Error()))
		}
	}

	id := rec.ID
	reg := &model.Registration{
		UserID:          userID,
		ScheduleID:      rec.ScheduleID,
		CourseID:        rec.CourseID,
		PaymentIntentID: &id,
		RequesterName:   rec.Snapshot.RequesterName,
		RequesterEmail:  rec.Snapshot.RequesterEmail,
		RequesterPhone:  rec.Snapshot.RequesterPhone,
		CompanyName:     rec.Snapshot.CompanyName,
		PaymentMethod:   model.PaymentMethodCard,
		PaymentStatus:   model.PaymentStatusPaid,
		OrderStatus:     model.OrderStatusInProgress,
		Participants:    rec.Participants,
		Total:           rec.Amount,
	}

	result, created, err := b.intents.Consume(ctx, intentID, reg)
	if err != nil {
		return nil, err
	}

	// The registration is paid, so it immediately qualifies for invoicing.
	// EnsureInvoice commits independently; a failure here is recovered by
	// retrying Confirm or by any later qualifying transition.
	warning := ""
	if _, _, invErr := b.invoices.EnsureInvoice(ctx, result.ID); invErr != nil {
		b.logger.Error("ensure invoice after confirm failed",
			slog.Int64("registration", result.ID), slog.String("error", invErr.Error()))
		warning = "invoice creation deferred"
	}
	return &ConfirmResult{Registration: result, Created: created, Warning: warning}, nil
}
