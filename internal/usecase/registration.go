package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	domainErrors "github.com/coursedesk/coursedesk/internal/domain/errors"
	"github.com/coursedesk/coursedesk/internal/domain/model"
	"github.com/coursedesk/coursedesk/internal/domain/repository"
)

// RegistrationUseCase is the canonical order model: it validates verb
// transitions, applies free-form admin patches, and is the single place the
// invoice trigger predicate is evaluated.
type RegistrationUseCase struct {
	registrations repository.RegistrationRepository
	notes         repository.OrderNoteRepository
	invoices      *InvoiceLifecycle
	logger        *slog.Logger
}

// NewRegistrationUseCase constructs RegistrationUseCase.
func NewRegistrationUseCase(
	registrations repository.RegistrationRepository,
	notes repository.OrderNoteRepository,
	invoices *InvoiceLifecycle,
	logger *slog.Logger,
) *RegistrationUseCase {
	return &RegistrationUseCase{
		registrations: registrations,
		notes:         notes,
		invoices:      invoices,
		logger:        logger,
	}
}

// Get returns a registration by id.
func (u *RegistrationUseCase) Get(ctx context.Context, id int64) (*model.Registration, error) {
	return u.registrations.GetByID(ctx, id)
}

// ApplyVerb performs a guarded order-status transition. The conditional
// write fails with ErrConflict when the current status is no longer a valid
// source, so racing admins and webhooks never silently overwrite each other.
func (u *RegistrationUseCase) ApplyVerb(ctx context.Context, id int64, verb model.OrderVerb) (*model.Registration, error) {
	target, from, ok := model.VerbTransition(verb)
	if !ok {
		return nil, fmt.Errorf("verb %q: %w", verb, domainErrors.ErrValidation)
	}

	reg, err := u.registrations.UpdateOrderStatus(ctx, id, target, from)
	if err != nil {
		return nil, err
	}

	u.maybeInvoice(ctx, reg)
	return reg, nil
}

// Patch applies a free-form field update. Payment-status writes are
// unvalidated overrides by design; they still feed the invoice trigger.
func (u *RegistrationUseCase) Patch(ctx context.Context, id int64, patch repository.RegistrationPatch) (*model.Registration, error) {
	if patch.Empty() {
		return nil, fmt.Errorf("empty patch: %w", domainErrors.ErrValidation)
	}
	if patch.PaymentStatus != nil && !model.ValidPaymentStatus(*patch.PaymentStatus) {
		return nil, fmt.Errorf("payment status %q: %w", *patch.PaymentStatus, domainErrors.ErrValidation)
	}
	if patch.RequesterEmail != nil && !ValidateEmail(*patch.RequesterEmail) {
		return nil, fmt.Errorf("requester email: %w", domainErrors.ErrValidation)
	}
	if patch.Participants != nil && *patch.Participants <= 0 {
		return nil, fmt.Errorf("participants must be positive: %w", domainErrors.ErrValidation)
	}
	if patch.Total != nil && *patch.Total < 0 {
		return nil, fmt.Errorf("total must not be negative: %w", domainErrors.ErrValidation)
	}

	reg, err := u.registrations.UpdateFields(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	u.maybeInvoice(ctx, reg)
	return reg, nil
}

// maybeInvoice invokes the guarded ensure-invoice call when the registration
// qualifies. The invoice commit is independent of the transition commit; a
// failure here is logged and recovered by the next qualifying call.
func (u *RegistrationUseCase) maybeInvoice(ctx context.Context, reg *model.Registration) {
	if !reg.InvoiceDue() {
		return
	}
	if _, _, err := u.invoices.EnsureInvoice(ctx, reg.ID); err != nil {
		u.logger.Error("ensure invoice failed",
			slog.Int64("registration", reg.ID), slog.String("error", err.Error()))
	}
}

// Trash soft-deletes a registration.
func (u *RegistrationUseCase) Trash(ctx context.Context, id int64) error {
	return u.registrations.SoftDelete(ctx, id)
}

// Restore brings a trashed registration back.
func (u *RegistrationUseCase) Restore(ctx context.Context, id int64) error {
	return u.registrations.Restore(ctx, id)
}

// AddNote appends an annotation to the registration. Notes are immutable
// once created.
func (u *RegistrationUseCase) AddNote(ctx context.Context, registrationID int64, author, body string, isPrivate bool) (*model.OrderNote, error) {
	if strings.TrimSpace(body) == "" {
		return nil, fmt.Errorf("empty note: %w", domainErrors.ErrValidation)
	}
	if _, err := u.registrations.GetByID(ctx, registrationID); err != nil {
		return nil, err
	}
	return u.notes.Add(ctx, &model.OrderNote{
		RegistrationID: registrationID,
		Author:         author,
		Body:           body,
		IsPrivate:      isPrivate,
	})
}

// Notes lists the registration's annotations, newest first.
func (u *RegistrationUseCase) Notes(ctx context.Context, registrationID int64) ([]model.OrderNote, error) {
	if _, err := u.registrations.GetByID(ctx, registrationID); err != nil {
		return nil, err
	}
	return u.notes.ListByRegistration(ctx, registrationID)
}

// DeleteNote removes an annotation.
func (u *RegistrationUseCase) DeleteNote(ctx context.Context, registrationID, noteID int64) error {
	return u.notes.Delete(ctx, registrationID, noteID)
}
