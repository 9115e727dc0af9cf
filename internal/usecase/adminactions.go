package usecase

import (
	"context"
	"fmt"
	"log/slog"

	domainErrors "github.com/coursedesk/coursedesk/internal/domain/errors"
	"github.com/coursedesk/coursedesk/internal/domain/model"
	"github.com/coursedesk/coursedesk/internal/notification"
)

// ActionResult carries the fresh state returned after an admin action. The
// invoice is present when one exists for the registration. A non-empty
// warning reports a dropped delivery; the action itself still succeeded.
type ActionResult struct {
	Registration *model.Registration
	Invoice      *model.Invoice
	Warning      string
}

// AdminActionExecutor maps the closed admin verb vocabulary onto validated
// transitions and notification triggers.
type AdminActionExecutor struct {
	registrations *RegistrationUseCase
	invoices      *InvoiceLifecycle
	notifier      notification.Submitter
	logger        *slog.Logger
}

// NewAdminActionExecutor constructs AdminActionExecutor.
func NewAdminActionExecutor(
	registrations *RegistrationUseCase,
	invoices *InvoiceLifecycle,
	notifier notification.Submitter,
	logger *slog.Logger,
) *AdminActionExecutor {
	return &AdminActionExecutor{
		registrations: registrations,
		invoices:      invoices,
		notifier:      notifier,
		logger:        logger,
	}
}

// Execute runs one admin verb against a registration. Unknown verbs fail
// with ErrValidation. Mutating verbs re-read and return fresh state so the
// caller never operates on stale data; notify_customer and send_invoice
// never mutate anything.
func (e *AdminActionExecutor) Execute(ctx context.Context, registrationID int64, verb model.OrderVerb) (*ActionResult, error) {
	if !model.KnownVerb(verb) {
		return nil, fmt.Errorf("action %q: %w", verb, domainErrors.ErrValidation)
	}

	switch verb {
	case model.VerbNotifyCustomer:
		reg, err := e.registrations.Get(ctx, registrationID)
		if err != nil {
			return nil, err
		}
		queued := e.notifier.Submit(notification.Notification{
			Kind:         notification.KindCustomerNotice,
			Recipient:    reg.RequesterEmail,
			Registration: reg,
		})
		warning := ""
		if !queued {
			warning = WarnNotQueued
		}
		return e.freshResult(ctx, registrationID, warning)

	case model.VerbSendInvoice:
		_, warning, err := e.invoices.ResendForRegistration(ctx, registrationID)
		if err != nil {
			return nil, err
		}
		return e.freshResult(ctx, registrationID, warning)

	default:
		if _, err := e.registrations.ApplyVerb(ctx, registrationID, verb); err != nil {
			return nil, err
		}
		return e.freshResult(ctx, registrationID, "")
	}
}

// freshResult re-reads the registration and its invoice after an action.
func (e *AdminActionExecutor) freshResult(ctx context.Context, registrationID int64, warning string) (*ActionResult, error) {
	reg, err := e.registrations.Get(ctx, registrationID)
	if err != nil {
		return nil, err
	}
	inv, err := e.invoices.InvoiceForRegistration(ctx, registrationID)
	if err != nil {
		e.logger.Warn("invoice read after action failed",
			slog.Int64("registration", registrationID), slog.String("error", err.Error()))
	}
	return &ActionResult{Registration: reg, Invoice: inv, Warning: warning}, nil
}
