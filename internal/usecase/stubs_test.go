package usecase

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/coursedesk/coursedesk/internal/domain/model"
	"github.com/coursedesk/coursedesk/internal/domain/repository"
	"github.com/coursedesk/coursedesk/internal/notification"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type stubRequests struct {
	createFn  func(context.Context, *model.InvoiceRequest) (*model.InvoiceRequest, error)
	getFn     func(context.Context, int64) (*model.InvoiceRequest, error)
	approveFn func(context.Context, int64, time.Time, int, *float64) (*model.InvoiceRequest, error)
	rejectFn  func(context.Context, int64, string) (*model.InvoiceRequest, error)
}

func (s stubRequests) Create(ctx context.Context, req *model.InvoiceRequest) (*model.InvoiceRequest, error) {
	return s.createFn(ctx, req)
}

func (s stubRequests) GetByID(ctx context.Context, id int64) (*model.InvoiceRequest, error) {
	return s.getFn(ctx, id)
}

func (s stubRequests) Approve(ctx context.Context, id int64, approvedAt time.Time, participants int, amount *float64) (*model.InvoiceRequest, error) {
	return s.approveFn(ctx, id, approvedAt, participants, amount)
}

func (s stubRequests) Reject(ctx context.Context, id int64, reason string) (*model.InvoiceRequest, error) {
	return s.rejectFn(ctx, id, reason)
}

type stubRegistrations struct {
	createFromRequestFn func(context.Context, *model.Registration) (*model.Registration, bool, error)
	getByIDFn           func(context.Context, int64) (*model.Registration, error)
	getByIntentFn       func(context.Context, string) (*model.Registration, error)
	updateOrderStatusFn func(context.Context, int64, model.OrderStatus, []model.OrderStatus) (*model.Registration, error)
	updateFieldsFn      func(context.Context, int64, repository.RegistrationPatch) (*model.Registration, error)
	softDeleteFn        func(context.Context, int64) error
	restoreFn           func(context.Context, int64) error
}

func (s stubRegistrations) CreateFromRequest(ctx context.Context, reg *model.Registration) (*model.Registration, bool, error) {
	return s.createFromRequestFn(ctx, reg)
}

func (s stubRegistrations) GetByID(ctx context.Context, id int64) (*model.Registration, error) {
	return s.getByIDFn(ctx, id)
}

func (s stubRegistrations) GetByIntent(ctx context.Context, intentID string) (*model.Registration, error) {
	return s.getByIntentFn(ctx, intentID)
}

func (s stubRegistrations) UpdateOrderStatus(ctx context.Context, id int64, target model.OrderStatus, from []model.OrderStatus) (*model.Registration, error) {
	return s.updateOrderStatusFn(ctx, id, target, from)
}

func (s stubRegistrations) UpdateFields(ctx context.Context, id int64, patch repository.RegistrationPatch) (*model.Registration, error) {
	return s.updateFieldsFn(ctx, id, patch)
}

func (s stubRegistrations) SoftDelete(ctx context.Context, id int64) error {
	return s.softDeleteFn(ctx, id)
}

func (s stubRegistrations) Restore(ctx context.Context, id int64) error {
	return s.restoreFn(ctx, id)
}

type stubIntents struct {
	createFn  func(context.Context, *model.PaymentIntentRecord) error
	getFn     func(context.Context, string) (*model.PaymentIntentRecord, error)
	consumeFn func(context.Context, string, *model.Registration) (*model.Registration, bool, error)
}

func (s stubIntents) Create(ctx context.Context, rec *model.PaymentIntentRecord) error {
	return s.createFn(ctx, rec)
}

func (s stubIntents) GetByID(ctx context.Context, id string) (*model.PaymentIntentRecord, error) {
	return s.getFn(ctx, id)
}

func (s stubIntents) Consume(ctx context.Context, id string, reg *model.Registration) (*model.Registration, bool, error) {
	return s.consumeFn(ctx, id, reg)
}

type stubInvoices struct {
	createIfAbsentFn    func(context.Context, *model.Invoice) (*model.Invoice, bool, error)
	getFn               func(context.Context, int64) (*model.Invoice, error)
	getByRegistrationFn func(context.Context, int64) (*model.Invoice, error)
	updateStatusFn      func(context.Context, int64, model.InvoiceStatus, model.InvoiceStatus, *time.Time, *string) (*model.Invoice, error)
}

func (s stubInvoices) CreateIfAbsent(ctx context.Context, inv *model.Invoice) (*model.Invoice, bool, error) {
	return s.createIfAbsentFn(ctx, inv)
}

func (s stubInvoices) GetByID(ctx context.Context, id int64) (*model.Invoice, error) {
	return s.getFn(ctx, id)
}

func (s stubInvoices) GetByRegistration(ctx context.Context, registrationID int64) (*model.Invoice, error) {
	return s.getByRegistrationFn(ctx, registrationID)
}

func (s stubInvoices) UpdateStatus(ctx context.Context, id int64, from, to model.InvoiceStatus, paymentDate *time.Time, transactionID *string) (*model.Invoice, error) {
	return s.updateStatusFn(ctx, id, from, to, paymentDate, transactionID)
}

type stubNotes struct {
	addFn    func(context.Context, *model.OrderNote) (*model.OrderNote, error)
	listFn   func(context.Context, int64) ([]model.OrderNote, error)
	deleteFn func(context.Context, int64, int64) error
}

func (s stubNotes) Add(ctx context.Context, note *model.OrderNote) (*model.OrderNote, error) {
	return s.addFn(ctx, note)
}

func (s stubNotes) ListByRegistration(ctx context.Context, registrationID int64) ([]model.OrderNote, error) {
	return s.listFn(ctx, registrationID)
}

func (s stubNotes) Delete(ctx context.Context, registrationID, noteID int64) error {
	return s.deleteFn(ctx, registrationID, noteID)
}

type stubSchedules struct {
	getFn func(context.Context, int64) (*model.CourseSchedule, error)
}

func (s stubSchedules) GetByID(ctx context.Context, id int64) (*model.CourseSchedule, error) {
	return s.getFn(ctx, id)
}

type stubUsers struct {
	byEmailFn func(context.Context, string) (*model.User, error)
	byIDFn    func(context.Context, int64) (*model.User, error)
}

func (s stubUsers) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return s.byEmailFn(ctx, email)
}

func (s stubUsers) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return s.byIDFn(ctx, id)
}

type recordingNotifier struct {
	mu     sync.Mutex
	notes  []notification.Notification
	reject bool
}

func (r *recordingNotifier) Submit(n notification.Notification) bool {
	if r.reject {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notes = append(r.notes, n)
	return true
}

func (r *recordingNotifier) submitted() []notification.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]notification.Notification, len(r.notes))
	copy(out, r.notes)
	return out
}

type stubProvider struct {
	createFn func(context.Context, float64) (*model.PaymentIntentHandle, error)
	statusFn func(context.Context, string) (model.ProviderPaymentStatus, error)
}

func (s stubProvider) CreateIntent(ctx context.Context, amount float64) (*model.PaymentIntentHandle, error) {
	return s.createFn(ctx, amount)
}

func (s stubProvider) GetStatus(ctx context.Context, intentID string) (model.ProviderPaymentStatus, error) {
	return s.statusFn(ctx, intentID)
}
