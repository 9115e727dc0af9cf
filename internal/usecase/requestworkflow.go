package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	domainErrors "github.com/coursedesk/coursedesk/internal/domain/errors"
	"github.com/coursedesk/coursedesk/internal/domain/model"
	"github.com/coursedesk/coursedesk/internal/domain/repository"
	"github.com/coursedesk/coursedesk/internal/notification"
)

// ApprovalOverrides are optional admin-supplied values that win over the
// originally submitted request fields.
type ApprovalOverrides struct {
	Participants *int
	Amount       *float64
}

// LookupOutcome tells how a best-effort user lookup ended. The distinction
// between no-match and a failed lookup matters for tests and logs; neither
// ever fails the primary operation.
type LookupOutcome string

const (
	LookupMatched   LookupOutcome = "matched"
	LookupNoMatch   LookupOutcome = "no_match"
	LookupMalformed LookupOutcome = "malformed"
	LookupFailed    LookupOutcome = "failed"
)

// UserLookup is the typed result of resolving a requester email to a user.
type UserLookup struct {
	UserID  *int64
	Outcome LookupOutcome
}

// RequestWorkflow governs the pending/approved/rejected lifecycle of
// company-invoice inquiries.
type RequestWorkflow struct {
	requests      repository.InvoiceRequestRepository
	registrations repository.RegistrationRepository
	schedules     repository.ScheduleRepository
	users         repository.UserRepository
	notifier      notification.Submitter
	minimumFee    float64
	logger        *slog.Logger
}

// NewRequestWorkflow constructs RequestWorkflow.
func NewRequestWorkflow(
	requests repository.InvoiceRequestRepository,
	registrations repository.RegistrationRepository,
	schedules repository.ScheduleRepository,
	users repository.UserRepository,
	notifier notification.Submitter,
	minimumFee float64,
	logger *slog.Logger,
) *RequestWorkflow {
	return &RequestWorkflow{
		requests:      requests,
		registrations: registrations,
		schedules:     schedules,
		users:         users,
		notifier:      notifier,
		minimumFee:    minimumFee,
		logger:        logger,
	}
}

// Submit records a new customer inquiry.
func (w *RequestWorkflow) Submit(ctx context.Context, req *model.InvoiceRequest) (*model.InvoiceRequest, error) {
	if req.ScheduleID <= 0 || req.CourseID <= 0 {
		return nil, fmt.Errorf("submit request: missing schedule or course: %w", domainErrors.ErrValidation)
	}
	if strings.TrimSpace(req.RequesterName) == "" || !ValidateEmail(req.RequesterEmail) {
		return nil, fmt.Errorf("submit request: incomplete requester contact: %w", domainErrors.ErrValidation)
	}
	if req.Participants <= 0 {
		req.Participants = 1
	}
	if _, err := w.schedules.GetByID(ctx, req.ScheduleID); err != nil {
		return nil, fmt.Errorf("submit request: schedule %d: %w", req.ScheduleID, err)
	}
	return w.requests.Create(ctx, req)
}

// Get returns a request by id.
func (w *RequestWorkflow) Get(ctx context.Context, id int64) (*model.InvoiceRequest, error) {
	return w.requests.GetByID(ctx, id)
}

// Approve moves a pending request to approved and spawns its registration.
// Override values win over stored ones; participants defaults to 1. The
// status write and the registration insert commit independently; the unique
// constraint on invoice_request_id keeps retries from duplicating the order.
func (w *RequestWorkflow) Approve(ctx context.Context, id int64, overrides ApprovalOverrides) (*model.InvoiceRequest, *model.Registration, error) {
	req, err := w.requests.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if req.Status != model.RequestStatusPending {
		return nil, nil, fmt.Errorf("approve request %d: already %s: %w", id, req.Status, domainErrors.ErrConflict)
	}

	participants := req.Participants
	if overrides.Participants != nil {
		participants = *overrides.Participants
	}
	if participants <= 0 {
		participants = 1
	}

	approved, err := w.requests.Approve(ctx, id, time.Now(), participants, overrides.Amount)
	if err != nil {
		return nil, nil, err
	}

	lookup := w.LookupUser(ctx, approved.RequesterEmail)

	total := 0.0
	if approved.Amount != nil {
		total = *approved.Amount
	} else if schedule, schedErr := w.schedules.GetByID(ctx, approved.ScheduleID); schedErr == nil {
		total = schedule.SeatFee(w.minimumFee) * float64(participants)
	}

	reg := &model.Registration{
		UserID:           lookup.UserID,
		ScheduleID:       approved.ScheduleID,
		CourseID:         approved.CourseID,
		InvoiceRequestID: &approved.ID,
		RequesterName:    approved.RequesterName,
		RequesterEmail:   approved.RequesterEmail,
		RequesterPhone:   approved.RequesterPhone,
		CompanyName:      approved.CompanyName,
		PaymentMethod:    model.PaymentMethodInvoice,
		PaymentStatus:    model.PaymentStatusUnpaid,
		OrderStatus:      model.OrderStatusInProgress,
		Participants:     participants,
		Total:            total,
	}

	created, _, err := w.registrations.CreateFromRequest(ctx, reg)
	if err != nil {
		return nil, nil, fmt.Errorf("create registration for request %d: %w", id, err)
	}
	return approved, created, nil
}

// Reject moves a pending request to rejected and queues a rejection notice
// containing the original request snapshot. A missing reason is stored as
// the literal fallback string. Notification failure never reverts the
// rejection.
func (w *RequestWorkflow) Reject(ctx context.Context, id int64, reason *string) (*model.InvoiceRequest, string, error) {
	req, err := w.requests.GetByID(ctx, id)
	if err != nil {
		return nil, "", err
	}
	if req.Status != model.RequestStatusPending {
		return nil, "", fmt.Errorf("reject request %d: already %s: %w", id, req.Status, domainErrors.ErrConflict)
	}

	stored := model.RejectionReasonFallback
	if reason != nil && strings.TrimSpace(*reason) != "" {
		stored = *reason
	}

	rejected, err := w.requests.Reject(ctx, id, stored)
	if err != nil {
		return nil, "", err
	}

	var schedule *model.CourseSchedule
	if s, schedErr := w.schedules.GetByID(ctx, rejected.ScheduleID); schedErr == nil {
		schedule = s
	} else {
		w.logger.Warn("schedule lookup for rejection notice failed",
			slog.Int64("request", id), slog.String("error", schedErr.Error()))
	}

	queued := w.notifier.Submit(notification.Notification{
		Kind:      notification.KindRequestRejected,
		Recipient: rejected.RequesterEmail,
		Request:   rejected,
		Schedule:  schedule,
		Reason:    stored,
	})
	if !queued {
		return rejected, WarnNotQueued, nil
	}
	return rejected, "", nil
}

// LookupUser resolves a requester email to a known user, best effort. A
// malformed address counts as not found; a storage failure is logged and
// likewise never surfaces to the caller.
func (w *RequestWorkflow) LookupUser(ctx context.Context, address string) UserLookup {
	if !ValidateEmail(address) {
		return UserLookup{Outcome: LookupMalformed}
	}
	user, err := w.users.GetByEmail(ctx, address)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return UserLookup{Outcome: LookupNoMatch}
		}
		w.logger.Warn("user lookup failed", slog.String("error", err.Error()))
		return UserLookup{Outcome: LookupFailed}
	}
	return UserLookup{UserID: &user.ID, Outcome: LookupMatched}
}
