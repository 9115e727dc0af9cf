package handlers

import (
	"context"

	"github.com/coursedesk/coursedesk/internal/domain/model"
	"github.com/coursedesk/coursedesk/internal/domain/repository"
	"github.com/coursedesk/coursedesk/internal/usecase"
)

// AuthFacade describes admin authentication capabilities required by handlers.
type AuthFacade interface {
	AdminLogin(ctx context.Context, login, password string) (string, error)
	ParseToken(token string) (string, error)
}

// RequestFacade exposes the invoice request workflow via HTTP.
type RequestFacade interface {
	SubmitRequest(ctx context.Context, req *model.InvoiceRequest) (*model.InvoiceRequest, error)
	Request(ctx context.Context, id int64) (*model.InvoiceRequest, error)
	ApproveRequest(ctx context.Context, id int64, overrides usecase.ApprovalOverrides) (*model.InvoiceRequest, *model.Registration, error)
	RejectRequest(ctx context.Context, id int64, reason *string) (*model.InvoiceRequest, string, error)
}

// OrderFacade encapsulates registration operations exposed via HTTP.
type OrderFacade interface {
	Order(ctx context.Context, id int64) (*model.Registration, error)
	OrderInvoice(ctx context.Context, id int64) (*model.Invoice, error)
	ExecuteAction(ctx context.Context, id int64, verb model.OrderVerb) (*usecase.ActionResult, error)
	PatchOrder(ctx context.Context, id int64, patch repository.RegistrationPatch) (*model.Registration, error)
	TrashOrder(ctx context.Context, id int64) error
	RestoreOrder(ctx context.Context, id int64) error
	AddOrderNote(ctx context.Context, id int64, author, body string, isPrivate bool) (*model.OrderNote, error)
	OrderNotes(ctx context.Context, id int64) ([]model.OrderNote, error)
	DeleteOrderNote(ctx context.Context, id, noteID int64) error
}

// InvoiceFacade provides invoice lifecycle operations.
type InvoiceFacade interface {
	Invoice(ctx context.Context, id int64) (*model.Invoice, error)
	UpdateInvoiceStatus(ctx context.Context, id int64, to model.InvoiceStatus, transactionID *string) (*model.Invoice, error)
	ResendInvoice(ctx context.Context, id int64) (*model.Invoice, string, error)
}

// PaymentFacade provides card payment intent operations.
type PaymentFacade interface {
	CreatePaymentIntent(ctx context.Context, scheduleID, courseID int64, participants int, snapshot model.RegistrationSnapshot) (*model.PaymentIntentHandle, error)
	ConfirmPaymentIntent(ctx context.Context, intentID string) (*usecase.ConfirmResult, error)
}

// DeskFacade aggregates the full set of operations used across handlers.
type DeskFacade interface {
	AuthFacade
	RequestFacade
	OrderFacade
	InvoiceFacade
	PaymentFacade
}
