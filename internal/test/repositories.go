package test

import (
	"context"
	"time"

	domainErrors "github.com/coursedesk/coursedesk/internal/domain/errors"
	"github.com/coursedesk/coursedesk/internal/domain/model"
	"github.com/coursedesk/coursedesk/internal/domain/repository"
)

// RequestRepositoryStub keeps invoice requests in-memory for tests.
type RequestRepositoryStub struct {
	Requests map[int64]*model.InvoiceRequest
	Next     int64
	Err      error

	CreateFn  func(context.Context, *model.InvoiceRequest) (*model.InvoiceRequest, error)
	ApproveFn func(context.Context, int64, time.Time, int, *float64) (*model.InvoiceRequest, error)
	RejectFn  func(context.Context, int64, string) (*model.InvoiceRequest, error)
}

// NewRequestRepositoryStub constructs stub repository with initialized maps.
func NewRequestRepositoryStub() *RequestRepositoryStub {
	return &RequestRepositoryStub{Requests: make(map[int64]*model.InvoiceRequest), Next: 1}
}

func (s *RequestRepositoryStub) Create(ctx context.Context, req *model.InvoiceRequest) (*model.InvoiceRequest, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, req)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	stored := *req
	stored.ID = s.Next
	stored.Status = model.RequestStatusPending
	stored.CreatedAt = time.Now()
	s.Next++
	s.Requests[stored.ID] = &stored
	return &stored, nil
}

func (s *RequestRepositoryStub) GetByID(ctx context.Context, id int64) (*model.InvoiceRequest, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if req, ok := s.Requests[id]; ok {
		copied := *req
		return &copied, nil
	}
	return nil, domainErrors.ErrNotFound
}

func (s *RequestRepositoryStub) Approve(ctx context.Context, id int64, approvedAt time.Time, participants int, amount *float64) (*model.InvoiceRequest, error) {
	if s.ApproveFn != nil {
		return s.ApproveFn(ctx, id, approvedAt, participants, amount)
	}
	req, ok := s.Requests[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	if req.Status != model.RequestStatusPending {
		return nil, domainErrors.ErrConflict
	}
	req.Status = model.RequestStatusApproved
	req.ApprovedAt = &approvedAt
	req.Participants = participants
	if amount != nil {
		req.Amount = amount
	}
	copied := *req
	return &copied, nil
}

func (s *RequestRepositoryStub) Reject(ctx context.Context, id int64, reason string) (*model.InvoiceRequest, error) {
	if s.RejectFn != nil {
		return s.RejectFn(ctx, id, reason)
	}
	req, ok := s.Requests[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	if req.Status != model.RequestStatusPending {
		return nil, domainErrors.ErrConflict
	}
	req.Status = model.RequestStatusRejected
	req.RejectionReason = &reason
	copied := *req
	return &copied, nil
}

// RegistrationRepositoryStub keeps registrations in-memory for tests.
type RegistrationRepositoryStub struct {
	Registrations map[int64]*model.Registration
	Next          int64
	Err           error

	CreateFromRequestFn func(context.Context, *model.Registration) (*model.Registration, bool, error)
	UpdateOrderStatusFn func(context.Context, int64, model.OrderStatus, []model.OrderStatus) (*model.Registration, error)
	UpdateFieldsFn      func(context.Context, int64, repository.RegistrationPatch) (*model.Registration, error)
}

// NewRegistrationRepositoryStub constructs stub repository with initialized maps.
func NewRegistrationRepositoryStub() *RegistrationRepositoryStub {
	return &RegistrationRepositoryStub{Registrations: make(map[int64]*model.Registration), Next: 1}
}

func (s *RegistrationRepositoryStub) CreateFromRequest(ctx context.Context, reg *model.Registration) (*model.Registration, bool, error) {
	if s.CreateFromRequestFn != nil {
		return s.CreateFromRequestFn(ctx, reg)
	}
	if s.Err != nil {
		return nil, false, s.Err
	}
	for _, existing := range s.Registrations {
		if reg.InvoiceRequestID != nil && existing.InvoiceRequestID != nil && *existing.InvoiceRequestID == *reg.InvoiceRequestID {
			copied := *existing
			return &copied, false, nil
		}
		if reg.PaymentIntentID != nil && existing.PaymentIntentID != nil && *existing.PaymentIntentID == *reg.PaymentIntentID {
			copied := *existing
			return &copied, false, nil
		}
	}
	stored := *reg
	stored.ID = s.Next
	stored.CreatedAt = time.Now()
	s.Next++
	s.Registrations[stored.ID] = &stored
	copied := stored
	return &copied, true, nil
}

func (s *RegistrationRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Registration, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if reg, ok := s.Registrations[id]; ok {
		copied := *reg
		return &copied, nil
	}
	return nil, domainErrors.ErrNotFound
}

func (s *RegistrationRepositoryStub) GetByIntent(ctx context.Context, intentID string) (*model.Registration, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, reg := range s.Registrations {
		if reg.PaymentIntentID != nil && *reg.PaymentIntentID == intentID {
			copied := *reg
			return &copied, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

func (s *RegistrationRepositoryStub) UpdateOrderStatus(ctx context.Context, id int64, target model.OrderStatus, from []model.OrderStatus) (*model.Registration, error) {
	if s.UpdateOrderStatusFn != nil {
		return s.UpdateOrderStatusFn(ctx, id, target, from)
	}
	reg, ok := s.Registrations[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	allowed := false
	for _, status := range from {
		if reg.OrderStatus == status {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, domainErrors.ErrConflict
	}
	reg.OrderStatus = target
	copied := *reg
	return &copied, nil
}

func (s *RegistrationRepositoryStub) UpdateFields(ctx context.Context, id int64, patch repository.RegistrationPatch) (*model.Registration, error) {
	if s.UpdateFieldsFn != nil {
		return s.UpdateFieldsFn(ctx, id, patch)
	}
	reg, ok := s.Registrations[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	if patch.RequesterName != nil {
		reg.RequesterName = *patch.RequesterName
	}
	if patch.RequesterEmail != nil {
		reg.RequesterEmail = *patch.RequesterEmail
	}
	if patch.RequesterPhone != nil {
		reg.RequesterPhone = *patch.RequesterPhone
	}
	if patch.CompanyName != nil {
		reg.CompanyName = *patch.CompanyName
	}
	if patch.PaymentStatus != nil {
		reg.PaymentStatus = *patch.PaymentStatus
	}
	if patch.Participants != nil {
		reg.Participants = *patch.Participants
	}
	if patch.Total != nil {
		reg.Total = *patch.Total
	}
	copied := *reg
	return &copied, nil
}

func (s *RegistrationRepositoryStub) SoftDelete(ctx context.Context, id int64) error {
	reg, ok := s.Registrations[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	now := time.Now()
	reg.DeletedAt = &now
	return nil
}

func (s *RegistrationRepositoryStub) Restore(ctx context.Context, id int64) error {
	reg, ok := s.Registrations[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	reg.DeletedAt = nil
	return nil
}

// IntentRepositoryStub keeps payment intents in-memory for tests.
type IntentRepositoryStub struct {
	Intents       map[string]*model.PaymentIntentRecord
	Registrations *RegistrationRepositoryStub
	Err           error

	ConsumeFn func(context.Context, string, *model.Registration) (*model.Registration, bool, error)
}

// NewIntentRepositoryStub constructs stub repository backed by the given
// registration stub so consume inserts land where tests can see them.
func NewIntentRepositoryStub(registrations *RegistrationRepositoryStub) *IntentRepositoryStub {
	return &IntentRepositoryStub{Intents: make(map[string]*model.PaymentIntentRecord), Registrations: registrations}
}

func (s *IntentRepositoryStub) Create(ctx context.Context, rec *model.PaymentIntentRecord) error {
	if s.Err != nil {
		return s.Err
	}
	if _, exists := s.Intents[rec.ID]; exists {
		return domainErrors.ErrAlreadyExists
	}
	stored := *rec
	stored.CreatedAt = time.Now()
	s.Intents[rec.ID] = &stored
	return nil
}

func (s *IntentRepositoryStub) GetByID(ctx context.Context, id string) (*model.PaymentIntentRecord, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if rec, ok := s.Intents[id]; ok {
		copied := *rec
		return &copied, nil
	}
	return nil, domainErrors.ErrNotFound
}

func (s *IntentRepositoryStub) Consume(ctx context.Context, id string, reg *model.Registration) (*model.Registration, bool, error) {
	if s.ConsumeFn != nil {
		return s.ConsumeFn(ctx, id, reg)
	}
	rec, ok := s.Intents[id]
	if !ok {
		return nil, false, domainErrors.ErrNotFound
	}
	if rec.Consumed {
		existing, err := s.Registrations.GetByIntent(ctx, id)
		if err != nil {
			return nil, false, err
		}
		return existing, false, nil
	}
	rec.Consumed = true
	created, _, err := s.Registrations.CreateFromRequest(ctx, reg)
	if err != nil {
		return nil, false, err
	}
	return created, true, nil
}

// InvoiceRepositoryStub keeps invoices in-memory for tests.
type InvoiceRepositoryStub struct {
	Invoices map[int64]*model.Invoice
	Next     int64
	Err      error

	CreateIfAbsentFn func(context.Context, *model.Invoice) (*model.Invoice, bool, error)
	UpdateStatusFn   func(context.Context, int64, model.InvoiceStatus, model.InvoiceStatus, *time.Time, *string) (*model.Invoice, error)
}

// NewInvoiceRepositoryStub constructs stub repository with initialized maps.
func NewInvoiceRepositoryStub() *InvoiceRepositoryStub {
	return &InvoiceRepositoryStub{Invoices: make(map[int64]*model.Invoice), Next: 1}
}

func (s *InvoiceRepositoryStub) CreateIfAbsent(ctx context.Context, inv *model.Invoice) (*model.Invoice, bool, error) {
	if s.CreateIfAbsentFn != nil {
		return s.CreateIfAbsentFn(ctx, inv)
	}
	if s.Err != nil {
		return nil, false, s.Err
	}
	for _, existing := range s.Invoices {
		if existing.RegistrationID == inv.RegistrationID {
			copied := *existing
			return &copied, false, nil
		}
	}
	stored := *inv
	stored.ID = s.Next
	stored.CreatedAt = time.Now()
	s.Next++
	s.Invoices[stored.ID] = &stored
	copied := stored
	return &copied, true, nil
}

func (s *InvoiceRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Invoice, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if inv, ok := s.Invoices[id]; ok {
		copied := *inv
		return &copied, nil
	}
	return nil, domainErrors.ErrNotFound
}

func (s *InvoiceRepositoryStub) GetByRegistration(ctx context.Context, registrationID int64) (*model.Invoice, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, inv := range s.Invoices {
		if inv.RegistrationID == registrationID {
			copied := *inv
			return &copied, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

func (s *InvoiceRepositoryStub) UpdateStatus(ctx context.Context, id int64, from, to model.InvoiceStatus, paymentDate *time.Time, transactionID *string) (*model.Invoice, error) {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, id, from, to, paymentDate, transactionID)
	}
	inv, ok := s.Invoices[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	if inv.Status != from {
		return nil, domainErrors.ErrConflict
	}
	inv.Status = to
	if paymentDate != nil {
		inv.PaymentDate = paymentDate
	}
	if transactionID != nil {
		inv.TransactionID = transactionID
	}
	copied := *inv
	return &copied, nil
}

// NoteRepositoryStub keeps order notes in-memory for tests.
type NoteRepositoryStub struct {
	Notes map[int64]*model.OrderNote
	Next  int64
	Err   error
}

// NewNoteRepositoryStub constructs stub repository with initialized maps.
func NewNoteRepositoryStub() *NoteRepositoryStub {
	return &NoteRepositoryStub{Notes: make(map[int64]*model.OrderNote), Next: 1}
}

func (s *NoteRepositoryStub) Add(ctx context.Context, note *model.OrderNote) (*model.OrderNote, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	stored := *note
	stored.ID = s.Next
	stored.CreatedAt = time.Now()
	s.Next++
	s.Notes[stored.ID] = &stored
	copied := stored
	return &copied, nil
}

func (s *NoteRepositoryStub) ListByRegistration(ctx context.Context, registrationID int64) ([]model.OrderNote, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var notes []model.OrderNote
	for _, note := range s.Notes {
		if note.RegistrationID == registrationID {
			notes = append(notes, *note)
		}
	}
	return notes, nil
}

func (s *NoteRepositoryStub) Delete(ctx context.Context, registrationID, noteID int64) error {
	if s.Err != nil {
		return s.Err
	}
	note, ok := s.Notes[noteID]
	if !ok || note.RegistrationID != registrationID {
		return domainErrors.ErrNotFound
	}
	delete(s.Notes, noteID)
	return nil
}

// ScheduleRepositoryStub serves course schedules from a fixed map.
type ScheduleRepositoryStub struct {
	Schedules map[int64]*model.CourseSchedule
	Err       error
}

// NewScheduleRepositoryStub constructs stub repository with initialized maps.
func NewScheduleRepositoryStub() *ScheduleRepositoryStub {
	return &ScheduleRepositoryStub{Schedules: make(map[int64]*model.CourseSchedule)}
}

func (s *ScheduleRepositoryStub) GetByID(ctx context.Context, id int64) (*model.CourseSchedule, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if schedule, ok := s.Schedules[id]; ok {
		copied := *schedule
		return &copied, nil
	}
	return nil, domainErrors.ErrNotFound
}

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	ByEmail map[string]*model.User
	ByID    map[int64]*model.User
	Err     error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{ByEmail: make(map[string]*model.User), ByID: make(map[int64]*model.User)}
}

// AddUser registers a user in both lookup maps.
func (s *UserRepositoryStub) AddUser(user *model.User) {
	s.ByEmail[user.Email] = user
	s.ByID[user.ID] = user
}

func (s *UserRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByEmail[email]; ok {
		copied := *user
		return &copied, nil
	}
	return nil, domainErrors.ErrNotFound
}

func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		copied := *user
		return &copied, nil
	}
	return nil, domainErrors.ErrNotFound
}

var (
	_ repository.InvoiceRequestRepository = (*RequestRepositoryStub)(nil)
	_ repository.RegistrationRepository   = (*RegistrationRepositoryStub)(nil)
	_ repository.PaymentIntentRepository  = (*IntentRepositoryStub)(nil)
	_ repository.InvoiceRepository        = (*InvoiceRepositoryStub)(nil)
	_ repository.OrderNoteRepository      = (*NoteRepositoryStub)(nil)
	_ repository.ScheduleRepository       = (*ScheduleRepositoryStub)(nil)
	_ repository.UserRepository           = (*UserRepositoryStub)(nil)
)
