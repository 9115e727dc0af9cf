package app

import (
	"context"
	"fmt"

	domainErrors "github.com/coursedesk/coursedesk/internal/domain/errors"
	"github.com/coursedesk/coursedesk/internal/domain/model"
	"github.com/coursedesk/coursedesk/internal/domain/repository"
	pkgAuth "github.com/coursedesk/coursedesk/internal/pkg/auth"
	"github.com/coursedesk/coursedesk/internal/usecase"
)

// adminSubject is the only identity admin tokens are ever issued for.
const adminSubject = "admin"

// DeskFacade aggregates the use cases behind one surface for the HTTP layer.
type DeskFacade struct {
	requests      *usecase.RequestWorkflow
	registrations *usecase.RegistrationUseCase
	invoices      *usecase.InvoiceLifecycle
	payments      *usecase.PaymentBridge
	actions       *usecase.AdminActionExecutor
	strategy      pkgAuth.Strategy
	hasher        pkgAuth.PasswordHasher
	passwordHash  string
}

func NewDeskFacade(
	requests *usecase.RequestWorkflow,
	registrations *usecase.RegistrationUseCase,
	invoices *usecase.InvoiceLifecycle,
	payments *usecase.PaymentBridge,
	actions *usecase.AdminActionExecutor,
	strategy pkgAuth.Strategy,
	hasher pkgAuth.PasswordHasher,
	passwordHash string,
) *DeskFacade {
	return &DeskFacade{
		requests:      requests,
		registrations: registrations,
		invoices:      invoices,
		payments:      payments,
		actions:       actions,
		strategy:      strategy,
		hasher:        hasher,
		passwordHash:  passwordHash,
	}
}

// AdminLogin checks the credentials against the configured hash and issues a
// token. An empty configured hash disables admin access entirely.
func (f *DeskFacade) AdminLogin(_ context.Context, login, password string) (string, error) {
	if login != adminSubject || f.passwordHash == "" {
		return "", domainErrors.ErrInvalidCredentials
	}
	if err := f.hasher.Compare(f.passwordHash, password); err != nil {
		return "", domainErrors.ErrInvalidCredentials
	}

	token, err := f.strategy.IssueToken(adminSubject)
	if err != nil {
		return "", fmt.Errorf("issue admin token: %w", err)
	}
	return token, nil
}

func (f *DeskFacade) ParseToken(token string) (string, error) {
	return f.strategy.ParseToken(token)
}

func (f *DeskFacade) SubmitRequest(ctx context.Context, req *model.InvoiceRequest) (*model.InvoiceRequest, error) {
	return f.requests.Submit(ctx, req)
}

func (f *DeskFacade) Request(ctx context.Context, id int64) (*model.InvoiceRequest, error) {
	return f.requests.Get(ctx, id)
}

func (f *DeskFacade) ApproveRequest(ctx context.Context, id int64, overrides usecase.ApprovalOverrides) (*model.InvoiceRequest, *model.Registration, error) {
	return f.requests.Approve(ctx, id, overrides)
}

func (f *DeskFacade) RejectRequest(ctx context.Context, id int64, reason *string) (*model.InvoiceRequest, string, error) {
	return f.requests.Reject(ctx, id, reason)
}

func (f *DeskFacade) Order(ctx context.Context, id int64) (*model.Registration, error) {
	return f.registrations.Get(ctx, id)
}

func (f *DeskFacade) OrderInvoice(ctx context.Context, id int64) (*model.Invoice, error) {
	return f.invoices.InvoiceForRegistration(ctx, id)
}

func (f *DeskFacade) ExecuteAction(ctx context.Context, id int64, verb model.OrderVerb) (*usecase.ActionResult, error) {
	return f.actions.Execute(ctx, id, verb)
}

func (f *DeskFacade) PatchOrder(ctx context.Context, id int64, patch repository.RegistrationPatch) (*model.Registration, error) {
	return f.registrations.Patch(ctx, id, patch)
}

func (f *DeskFacade) TrashOrder(ctx context.Context, id int64) error {
	return f.registrations.Trash(ctx, id)
}

func (f *DeskFacade) RestoreOrder(ctx context.Context, id int64) error {
	return f.registrations.Restore(ctx, id)
}

func (f *DeskFacade) AddOrderNote(ctx context.Context, id int64, author, body string, isPrivate bool) (*model.OrderNote, error) {
	return f.registrations.AddNote(ctx, id, author, body, isPrivate)
}

func (f *DeskFacade) OrderNotes(ctx context.Context, id int64) ([]model.OrderNote, error) {
	return f.registrations.Notes(ctx, id)
}

func (f *DeskFacade) DeleteOrderNote(ctx context.Context, id, noteID int64) error {
	return f.registrations.DeleteNote(ctx, id, noteID)
}

func (f *DeskFacade) Invoice(ctx context.Context, id int64) (*model.Invoice, error) {
	return f.invoices.Get(ctx, id)
}

func (f *DeskFacade) UpdateInvoiceStatus(ctx context.Context, id int64, to model.InvoiceStatus, transactionID *string) (*model.Invoice, error) {
	return f.invoices.UpdateStatus(ctx, id, to, transactionID)
}

func (f *DeskFacade) ResendInvoice(ctx context.Context, id int64) (*model.Invoice, string, error) {
	return f.invoices.Resend(ctx, id)
}

func (f *DeskFacade) CreatePaymentIntent(ctx context.Context, scheduleID, courseID int64, participants int, snapshot model.RegistrationSnapshot) (*model.PaymentIntentHandle, error) {
	return f.payments.CreateIntent(ctx, scheduleID, courseID, participants, snapshot)
}

func (f *DeskFacade) ConfirmPaymentIntent(ctx context.Context, intentID string) (*usecase.ConfirmResult, error) {
	return f.payments.Confirm(ctx, intentID)
}
