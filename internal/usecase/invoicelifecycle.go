package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	domainErrors "github.com/coursedesk/coursedesk/internal/domain/errors"
	"github.com/coursedesk/coursedesk/internal/domain/model"
	"github.com/coursedesk/coursedesk/internal/domain/repository"
	"github.com/coursedesk/coursedesk/internal/notification"
)

// InvoiceLifecycle derives and maintains invoice status and guarantees at
// most one invoice per registration.
type InvoiceLifecycle struct {
	invoices      repository.InvoiceRepository
	registrations repository.RegistrationRepository
	dueAfter      time.Duration
	notifier      notification.Submitter
	logger        *slog.Logger
}

// NewInvoiceLifecycle constructs InvoiceLifecycle.
func NewInvoiceLifecycle(
	invoices repository.InvoiceRepository,
	registrations repository.RegistrationRepository,
	dueAfter time.Duration,
	notifier notification.Submitter,
	logger *slog.Logger,
) *InvoiceLifecycle {
	return &InvoiceLifecycle{
		invoices:      invoices,
		registrations: registrations,
		dueAfter:      dueAfter,
		notifier:      notifier,
		logger:        logger,
	}
}

func newInvoiceNo(now time.Time) string {
	entropy := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("INV-%s-%s", now.Format("20060102"), entropy)
}

// EnsureInvoice creates the registration's invoice unless one already
// exists. Safe to call redundantly and concurrently; the unique constraint
// on registration_id picks exactly one winner and every caller gets the same
// row back. The invoice document is queued for delivery only on first
// creation.
func (l *InvoiceLifecycle) EnsureInvoice(ctx context.Context, registrationID int64) (*model.Invoice, bool, error) {
	reg, err := l.registrations.GetByID(ctx, registrationID)
	if err != nil {
		return nil, false, err
	}

	now := time.Now()
	candidate := &model.Invoice{
		InvoiceNo:      newInvoiceNo(now),
		RegistrationID: registrationID,
		Amount:         reg.Total,
		Status:         model.InvoiceStatusPending,
		IssueDate:      now,
		DueDate:        now.Add(l.dueAfter),
	}

	inv, created, err := l.invoices.CreateIfAbsent(ctx, candidate)
	if err != nil {
		return nil, false, err
	}
	if created {
		l.notifier.Submit(notification.Notification{
			Kind:         notification.KindInvoiceIssued,
			Recipient:    reg.RequesterEmail,
			Registration: reg,
			Invoice:      inv,
		})
	}
	return inv, created, nil
}

// Get returns an invoice by id.
func (l *InvoiceLifecycle) Get(ctx context.Context, id int64) (*model.Invoice, error) {
	return l.invoices.GetByID(ctx, id)
}

// UpdateStatus applies an admin status change. PAID stamps the payment date
// and optional transaction id; CANCELLED is terminal. OVERDUE is derived at
// read time and can never be stored.
func (l *InvoiceLifecycle) UpdateStatus(ctx context.Context, id int64, to model.InvoiceStatus, transactionID *string) (*model.Invoice, error) {
	if to != model.InvoiceStatusPaid && to != model.InvoiceStatusCancelled {
		return nil, fmt.Errorf("invoice status %q: %w", to, domainErrors.ErrValidation)
	}

	current, err := l.invoices.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !model.CanTransitionInvoice(current.Status, to) {
		return nil, fmt.Errorf("invoice %d: %s -> %s: %w", id, current.Status, to, domainErrors.ErrConflict)
	}

	var paymentDate *time.Time
	if to == model.InvoiceStatusPaid {
		now := time.Now()
		paymentDate = &now
	}
	return l.invoices.UpdateStatus(ctx, id, current.Status, to, paymentDate, transactionID)
}

// WarnNotQueued is surfaced to the caller when a delivery could not be
// queued. The committed state change stands regardless.
const WarnNotQueued = "notification could not be queued"

// Resend queues the invoice document again. Never mutates status, payment
// date, or invoice number. A non-empty warning means the delivery was
// dropped while the request itself succeeded.
func (l *InvoiceLifecycle) Resend(ctx context.Context, id int64) (*model.Invoice, string, error) {
	inv, err := l.invoices.GetByID(ctx, id)
	if err != nil {
		return nil, "", err
	}
	reg, err := l.registrations.GetByID(ctx, inv.RegistrationID)
	if err != nil {
		return nil, "", err
	}

	queued := l.notifier.Submit(notification.Notification{
		Kind:         notification.KindInvoiceResent,
		Recipient:    reg.RequesterEmail,
		Registration: reg,
		Invoice:      inv,
	})
	if !queued {
		return inv, WarnNotQueued, nil
	}
	return inv, "", nil
}

// ResendForRegistration queues the registration's invoice document again.
func (l *InvoiceLifecycle) ResendForRegistration(ctx context.Context, registrationID int64) (*model.Invoice, string, error) {
	inv, err := l.invoices.GetByRegistration(ctx, registrationID)
	if err != nil {
		return nil, "", err
	}
	return l.Resend(ctx, inv.ID)
}

// InvoiceForRegistration returns the registration's invoice when present,
// nil when none exists yet.
func (l *InvoiceLifecycle) InvoiceForRegistration(ctx context.Context, registrationID int64) (*model.Invoice, error) {
	inv, err := l.invoices.GetByRegistration(ctx, registrationID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return inv, nil
}
