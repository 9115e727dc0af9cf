package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	domainErrors "github.com/coursedesk/coursedesk/internal/domain/errors"
	"github.com/coursedesk/coursedesk/internal/domain/model"
	"github.com/coursedesk/coursedesk/internal/notification"
)

func paidRegistration(id int64) *model.Registration {
	return &model.Registration{
		ID:             id,
		ScheduleID:     10,
		CourseID:       20,
		RequesterEmail: "jane@example.com",
		PaymentStatus:  model.PaymentStatusPaid,
		OrderStatus:    model.OrderStatusInProgress,
		Participants:   2,
		Total:          500,
	}
}

func registrationsReturning(reg *model.Registration) stubRegistrations {
	return stubRegistrations{getByIDFn: func(_ context.Context, id int64) (*model.Registration, error) {
		if reg == nil || reg.ID != id {
			return nil, domainErrors.ErrNotFound
		}
		copied := *reg
		return &copied, nil
	}}
}

func TestEnsureInvoiceCreatesOnceAndNotifies(t *testing.T) {
	reg := paidRegistration(7)
	notifier := &recordingNotifier{}
	var stored *model.Invoice

	invoices := stubInvoices{createIfAbsentFn: func(_ context.Context, inv *model.Invoice) (*model.Invoice, bool, error) {
		if stored != nil {
			copied := *stored
			return &copied, false, nil
		}
		candidate := *inv
		candidate.ID = 1
		stored = &candidate
		copied := candidate
		return &copied, true, nil
	}}

	lc := NewInvoiceLifecycle(invoices, registrationsReturning(reg), 14*24*time.Hour, notifier, testLogger())

	inv, created, err := lc.EnsureInvoice(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !created {
		t.Fatal("expected invoice to be created")
	}
	if !strings.HasPrefix(inv.InvoiceNo, "INV-") {
		t.Fatalf("unexpected invoice number %q", inv.InvoiceNo)
	}
	if inv.Amount != reg.Total {
		t.Fatalf("expected amount %v, got %v", reg.Total, inv.Amount)
	}
	if inv.Status != model.InvoiceStatusPending {
		t.Fatalf("expected pending, got %s", inv.Status)
	}
	if got := inv.DueDate.Sub(inv.IssueDate); got != 14*24*time.Hour {
		t.Fatalf("expected due offset 14 days, got %v", got)
	}

	again, createdAgain, err := lc.EnsureInvoice(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if createdAgain {
		t.Fatal("second call must not create")
	}
	if again.ID != inv.ID || again.InvoiceNo != inv.InvoiceNo {
		t.Fatalf("expected the same invoice back, got %+v", again)
	}

	submitted := notifier.submitted()
	if len(submitted) != 1 {
		t.Fatalf("expected exactly one issued notification, got %d", len(submitted))
	}
	if submitted[0].Kind != notification.KindInvoiceIssued {
		t.Fatalf("unexpected kind %s", submitted[0].Kind)
	}
}

func TestEnsureInvoiceUnknownRegistration(t *testing.T) {
	lc := NewInvoiceLifecycle(stubInvoices{}, registrationsReturning(nil), time.Hour, &recordingNotifier{}, testLogger())
	if _, _, err := lc.EnsureInvoice(context.Background(), 404); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestUpdateStatusRejectsNonTerminalTargets(t *testing.T) {
	lc := NewInvoiceLifecycle(stubInvoices{}, stubRegistrations{}, time.Hour, &recordingNotifier{}, testLogger())

	for _, target := range []model.InvoiceStatus{model.InvoiceStatusPending, model.InvoiceStatusOverdue, "JUNK"} {
		if _, err := lc.UpdateStatus(context.Background(), 1, target, nil); !errors.Is(err, domainErrors.ErrValidation) {
			t.Fatalf("%s: expected validation error, got %v", target, err)
		}
	}
}

func TestUpdateStatusPaidStampsPaymentDate(t *testing.T) {
	current := &model.Invoice{ID: 1, Status: model.InvoiceStatusPending}
	txn := "txn-9"
	var gotDate *time.Time
	var gotTxn *string

	invoices := stubInvoices{
		getFn: func(context.Context, int64) (*model.Invoice, error) {
			copied := *current
			return &copied, nil
		},
		updateStatusFn: func(_ context.Context, _ int64, from, to model.InvoiceStatus, paymentDate *time.Time, transactionID *string) (*model.Invoice, error) {
			if from != model.InvoiceStatusPending || to != model.InvoiceStatusPaid {
				t.Fatalf("unexpected transition %s -> %s", from, to)
			}
			gotDate = paymentDate
			gotTxn = transactionID
			updated := *current
			updated.Status = to
			updated.PaymentDate = paymentDate
			updated.TransactionID = transactionID
			return &updated, nil
		},
	}

	lc := NewInvoiceLifecycle(invoices, stubRegistrations{}, time.Hour, &recordingNotifier{}, testLogger())

	inv, err := lc.UpdateStatus(context.Background(), 1, model.InvoiceStatusPaid, &txn)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotDate == nil {
		t.Fatal("expected payment date to be stamped")
	}
	if gotTxn == nil || *gotTxn != txn {
		t.Fatalf("expected transaction id %q, got %v", txn, gotTxn)
	}
	if inv.Status != model.InvoiceStatusPaid {
		t.Fatalf("expected paid, got %s", inv.Status)
	}
}

func TestUpdateStatusCancelledIsTerminal(t *testing.T) {
	invoices := stubInvoices{getFn: func(context.Context, int64) (*model.Invoice, error) {
		return &model.Invoice{ID: 1, Status: model.InvoiceStatusCancelled}, nil
	}}
	lc := NewInvoiceLifecycle(invoices, stubRegistrations{}, time.Hour, &recordingNotifier{}, testLogger())

	for _, target := range []model.InvoiceStatus{model.InvoiceStatusPaid, model.InvoiceStatusCancelled} {
		if _, err := lc.UpdateStatus(context.Background(), 1, target, nil); !errors.Is(err, domainErrors.ErrConflict) {
			t.Fatalf("%s: expected conflict, got %v", target, err)
		}
	}
}

func TestResendNeverMutatesAndReportsDrops(t *testing.T) {
	reg := paidRegistration(7)
	inv := &model.Invoice{ID: 3, RegistrationID: 7, InvoiceNo: "INV-20260101-ABCDEF01", Status: model.InvoiceStatusPending}
	notifier := &recordingNotifier{}

	invoices := stubInvoices{
		getFn: func(context.Context, int64) (*model.Invoice, error) {
			copied := *inv
			return &copied, nil
		},
		updateStatusFn: func(context.Context, int64, model.InvoiceStatus, model.InvoiceStatus, *time.Time, *string) (*model.Invoice, error) {
			t.Fatal("resend must not write")
			return nil, nil
		},
	}

	lc := NewInvoiceLifecycle(invoices, registrationsReturning(reg), time.Hour, notifier, testLogger())

	got, warning, err := lc.Resend(context.Background(), 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if warning != "" {
		t.Fatalf("unexpected warning %q", warning)
	}
	if got.InvoiceNo != inv.InvoiceNo {
		t.Fatalf("unexpected invoice %+v", got)
	}

	submitted := notifier.submitted()
	if len(submitted) != 1 || submitted[0].Kind != notification.KindInvoiceResent {
		t.Fatalf("expected one resend notification, got %+v", submitted)
	}

	notifier.reject = true
	_, warning, err = lc.Resend(context.Background(), 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if warning != WarnNotQueued {
		t.Fatalf("expected drop warning, got %q", warning)
	}
}

func TestInvoiceForRegistrationAbsentIsNil(t *testing.T) {
	invoices := stubInvoices{getByRegistrationFn: func(context.Context, int64) (*model.Invoice, error) {
		return nil, domainErrors.ErrNotFound
	}}
	lc := NewInvoiceLifecycle(invoices, stubRegistrations{}, time.Hour, &recordingNotifier{}, testLogger())

	inv, err := lc.InvoiceForRegistration(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inv != nil {
		t.Fatalf("expected nil invoice, got %+v", inv)
	}
}
