package test

import (
	"context"

	"github.com/coursedesk/coursedesk/internal/domain/model"
	"github.com/coursedesk/coursedesk/internal/domain/repository"
	"github.com/coursedesk/coursedesk/internal/usecase"
)

// DeskFacadeStub simulates the aggregated application facade for HTTP tests.
// Every operation delegates to its Fn override; unset operations return zero
// values so tests only wire what they exercise.
type DeskFacadeStub struct {
	AdminLoginFn func(context.Context, string, string) (string, error)
	ParseFn      func(string) (string, error)

	SubmitRequestFn  func(context.Context, *model.InvoiceRequest) (*model.InvoiceRequest, error)
	RequestFn        func(context.Context, int64) (*model.InvoiceRequest, error)
	ApproveRequestFn func(context.Context, int64, usecase.ApprovalOverrides) (*model.InvoiceRequest, *model.Registration, error)
	RejectRequestFn  func(context.Context, int64, *string) (*model.InvoiceRequest, string, error)

	OrderFn           func(context.Context, int64) (*model.Registration, error)
	OrderInvoiceFn    func(context.Context, int64) (*model.Invoice, error)
	ExecuteActionFn   func(context.Context, int64, model.OrderVerb) (*usecase.ActionResult, error)
	PatchOrderFn      func(context.Context, int64, repository.RegistrationPatch) (*model.Registration, error)
	TrashOrderFn      func(context.Context, int64) error
	RestoreOrderFn    func(context.Context, int64) error
	AddOrderNoteFn    func(context.Context, int64, string, string, bool) (*model.OrderNote, error)
	OrderNotesFn      func(context.Context, int64) ([]model.OrderNote, error)
	DeleteOrderNoteFn func(context.Context, int64, int64) error

	InvoiceFn             func(context.Context, int64) (*model.Invoice, error)
	UpdateInvoiceStatusFn func(context.Context, int64, model.InvoiceStatus, *string) (*model.Invoice, error)
	ResendInvoiceFn       func(context.Context, int64) (*model.Invoice, string, error)

	CreatePaymentIntentFn  func(context.Context, int64, int64, int, model.RegistrationSnapshot) (*model.PaymentIntentHandle, error)
	ConfirmPaymentIntentFn func(context.Context, string) (*usecase.ConfirmResult, error)
}

func (s *DeskFacadeStub) AdminLogin(ctx context.Context, login, password string) (string, error) {
	if s.AdminLoginFn != nil {
		return s.AdminLoginFn(ctx, login, password)
	}
	return "token", nil
}

func (s *DeskFacadeStub) ParseToken(token string) (string, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return "admin", nil
}

func (s *DeskFacadeStub) SubmitRequest(ctx context.Context, req *model.InvoiceRequest) (*model.InvoiceRequest, error) {
	if s.SubmitRequestFn != nil {
		return s.SubmitRequestFn(ctx, req)
	}
	return req, nil
}

func (s *DeskFacadeStub) Request(ctx context.Context, id int64) (*model.InvoiceRequest, error) {
	if s.RequestFn != nil {
		return s.RequestFn(ctx, id)
	}
	return &model.InvoiceRequest{ID: id, Status: model.RequestStatusPending}, nil
}

func (s *DeskFacadeStub) ApproveRequest(ctx context.Context, id int64, overrides usecase.ApprovalOverrides) (*model.InvoiceRequest, *model.Registration, error) {
	if s.ApproveRequestFn != nil {
		return s.ApproveRequestFn(ctx, id, overrides)
	}
	return &model.InvoiceRequest{ID: id, Status: model.RequestStatusApproved}, &model.Registration{ID: 1}, nil
}

func (s *DeskFacadeStub) RejectRequest(ctx context.Context, id int64, reason *string) (*model.InvoiceRequest, string, error) {
	if s.RejectRequestFn != nil {
		return s.RejectRequestFn(ctx, id, reason)
	}
	return &model.InvoiceRequest{ID: id, Status: model.RequestStatusRejected}, "", nil
}

func (s *DeskFacadeStub) Order(ctx context.Context, id int64) (*model.Registration, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, id)
	}
	return &model.Registration{ID: id}, nil
}

func (s *DeskFacadeStub) OrderInvoice(ctx context.Context, id int64) (*model.Invoice, error) {
	if s.OrderInvoiceFn != nil {
		return s.OrderInvoiceFn(ctx, id)
	}
	return nil, nil
}

func (s *DeskFacadeStub) ExecuteAction(ctx context.Context, id int64, verb model.OrderVerb) (*usecase.ActionResult, error) {
	if s.ExecuteActionFn != nil {
		return s.ExecuteActionFn(ctx, id, verb)
	}
	return &usecase.ActionResult{Registration: &model.Registration{ID: id}}, nil
}

func (s *DeskFacadeStub) PatchOrder(ctx context.Context, id int64, patch repository.RegistrationPatch) (*model.Registration, error) {
	if s.PatchOrderFn != nil {
		return s.PatchOrderFn(ctx, id, patch)
	}
	return &model.Registration{ID: id}, nil
}

func (s *DeskFacadeStub) TrashOrder(ctx context.Context, id int64) error {
	if s.TrashOrderFn != nil {
		return s.TrashOrderFn(ctx, id)
	}
	return nil
}

func (s *DeskFacadeStub) RestoreOrder(ctx context.Context, id int64) error {
	if s.RestoreOrderFn != nil {
		return s.RestoreOrderFn(ctx, id)
	}
	return nil
}

func (s *DeskFacadeStub) AddOrderNote(ctx context.Context, id int64, author, body string, isPrivate bool) (*model.OrderNote, error) {
	if s.AddOrderNoteFn != nil {
		return s.AddOrderNoteFn(ctx, id, author, body, isPrivate)
	}
	return &model.OrderNote{ID: 1, RegistrationID: id, Author: author, Body: body, IsPrivate: isPrivate}, nil
}

func (s *DeskFacadeStub) OrderNotes(ctx context.Context, id int64) ([]model.OrderNote, error) {
	if s.OrderNotesFn != nil {
		return s.OrderNotesFn(ctx, id)
	}
	return nil, nil
}

func (s *DeskFacadeStub) DeleteOrderNote(ctx context.Context, id, noteID int64) error {
	if s.DeleteOrderNoteFn != nil {
		return s.DeleteOrderNoteFn(ctx, id, noteID)
	}
	return nil
}

func (s *DeskFacadeStub) Invoice(ctx context.Context, id int64) (*model.Invoice, error) {
	if s.InvoiceFn != nil {
		return s.InvoiceFn(ctx, id)
	}
	return &model.Invoice{ID: id, Status: model.InvoiceStatusPending}, nil
}

func (s *DeskFacadeStub) UpdateInvoiceStatus(ctx context.Context, id int64, to model.InvoiceStatus, transactionID *string) (*model.Invoice, error) {
	if s.UpdateInvoiceStatusFn != nil {
		return s.UpdateInvoiceStatusFn(ctx, id, to, transactionID)
	}
	return &model.Invoice{ID: id, Status: to}, nil
}

func (s *DeskFacadeStub) ResendInvoice(ctx context.Context, id int64) (*model.Invoice, string, error) {
	if s.ResendInvoiceFn != nil {
		return s.ResendInvoiceFn(ctx, id)
	}
	return &model.Invoice{ID: id, Status: model.InvoiceStatusPending}, "", nil
}

func (s *DeskFacadeStub) CreatePaymentIntent(ctx context.Context, scheduleID, courseID int64, participants int, snapshot model.RegistrationSnapshot) (*model.PaymentIntentHandle, error) {
	if s.CreatePaymentIntentFn != nil {
		return s.CreatePaymentIntentFn(ctx, scheduleID, courseID, participants, snapshot)
	}
	return &model.PaymentIntentHandle{ID: "pi_test", ClientSecret: "secret"}, nil
}

func (s *DeskFacadeStub) ConfirmPaymentIntent(ctx context.Context, intentID string) (*usecase.ConfirmResult, error) {
	if s.ConfirmPaymentIntentFn != nil {
		return s.ConfirmPaymentIntentFn(ctx, intentID)
	}
	return &usecase.ConfirmResult{Registration: &model.Registration{ID: 1}, Created: true}, nil
}
