package usecase

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/coursedesk/coursedesk/internal/config"
	"github.com/coursedesk/coursedesk/internal/domain/repository"
	"github.com/coursedesk/coursedesk/internal/notification"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	newRequestWorkflow,
	newInvoiceLifecycle,
	NewRegistrationUseCase,
	newPaymentBridge,
	NewAdminActionExecutor,
)

type workflowParams struct {
	fx.In

	Requests      repository.InvoiceRequestRepository
	Registrations repository.RegistrationRepository
	Schedules     repository.ScheduleRepository
	Users         repository.UserRepository
	Notifier      notification.Submitter
	Config        *config.Config
	Logger        *slog.Logger
}

func newRequestWorkflow(p workflowParams) *RequestWorkflow {
	return NewRequestWorkflow(p.Requests, p.Registrations, p.Schedules, p.Users, p.Notifier, p.Config.MinimumSeatFee, p.Logger)
}

type lifecycleParams struct {
	fx.In

	Invoices      repository.InvoiceRepository
	Registrations repository.RegistrationRepository
	Notifier      notification.Submitter
	Config        *config.Config
	Logger        *slog.Logger
}

func newInvoiceLifecycle(p lifecycleParams) *InvoiceLifecycle {
	return NewInvoiceLifecycle(p.Invoices, p.Registrations, p.Config.InvoiceDueAfter, p.Notifier, p.Logger)
}

type bridgeParams struct {
	fx.In

	Intents       repository.PaymentIntentRepository
	Registrations repository.RegistrationRepository
	Schedules     repository.ScheduleRepository
	Users         repository.UserRepository
	Provider      PaymentProvider
	Invoices      *InvoiceLifecycle
	Config        *config.Config
	Logger        *slog.Logger
}

func newPaymentBridge(p bridgeParams) *PaymentBridge {
	return NewPaymentBridge(p.Intents, p.Registrations, p.Schedules, p.Users, p.Provider, p.Invoices, p.Config.MinimumSeatFee, p.Logger)
}
