package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/coursedesk/coursedesk/internal/domain/errors"
	"github.com/coursedesk/coursedesk/internal/domain/model"
	"github.com/coursedesk/coursedesk/internal/domain/repository"
	"github.com/coursedesk/coursedesk/internal/server/http/dto"
	testhelpers "github.com/coursedesk/coursedesk/internal/test"
	"github.com/coursedesk/coursedesk/internal/usecase"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performRequest(t *testing.T, method, route, target string, handler gin.HandlerFunc, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	router := gin.New()
	router.Handle(method, route, handler)

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeJSON[T any](t *testing.T, resp *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v\n%s", err, resp.Body.String())
	}
	return out
}

func TestAuthHandlerLogin(t *testing.T) {
	body, _ := json.Marshal(dto.AuthRequest{Login: "admin", Password: "secret"})
	resp := performRequest(t, http.MethodPost, "/login", "/login", NewAuthHandler(&testhelpers.DeskFacadeStub{}).Login, body)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	result := resp.Result()
	t.Cleanup(func() { _ = result.Body.Close() })
	found := false
	for _, cookie := range result.Cookies() {
		if cookie.Name == "coursedesk_token" {
			if cookie.Value != "token" {
				t.Fatalf("unexpected token stored in cookie: %q", cookie.Value)
			}
			found = true
		}
	}
	if !found {
		t.Fatal("expected auth cookie named coursedesk_token")
	}
}

func TestAuthHandlerLoginFailures(t *testing.T) {
	tests := []struct {
		name   string
		facade *testhelpers.DeskFacadeStub
		body   []byte
		status int
	}{
		{name: "bad json", facade: &testhelpers.DeskFacadeStub{}, body: []byte("not json"), status: http.StatusBadRequest},
		{name: "invalid credentials", body: []byte(`{"login":"admin","password":"wrong"}`), facade: &testhelpers.DeskFacadeStub{AdminLoginFn: func(context.Context, string, string) (string, error) {
			return "", domainErrors.ErrInvalidCredentials
		}}, status: http.StatusUnauthorized},
		{name: "internal", body: []byte(`{"login":"admin","password":"x"}`), facade: &testhelpers.DeskFacadeStub{AdminLoginFn: func(context.Context, string, string) (string, error) {
			return "", errors.New("boom")
		}}, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := performRequest(t, http.MethodPost, "/login", "/login", NewAuthHandler(tt.facade).Login, tt.body)
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.Code)
			}
		})
	}
}

func TestRequestHandlerSubmit(t *testing.T) {
	body, _ := json.Marshal(dto.InvoiceRequestSubmission{
		ScheduleID:     10,
		CourseID:       20,
		RequesterName:  "Jane Doe",
		RequesterEmail: "jane@example.com",
		Participants:   2,
	})
	facade := &testhelpers.DeskFacadeStub{SubmitRequestFn: func(_ context.Context, req *model.InvoiceRequest) (*model.InvoiceRequest, error) {
		if req.ScheduleID != 10 || req.RequesterEmail != "jane@example.com" || req.Participants != 2 {
			t.Fatalf("unexpected payload forwarded: %+v", req)
		}
		stored := *req
		stored.ID = 5
		stored.Status = model.RequestStatusPending
		return &stored, nil
	}}
	resp := performRequest(t, http.MethodPost, "/requests", "/requests", NewRequestHandler(facade).Submit, body)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.Code)
	}
	got := decodeJSON[dto.InvoiceRequestResponse](t, resp)
	if got.ID != 5 || got.Status != string(model.RequestStatusPending) {
		t.Fatalf("unexpected response %+v", got)
	}
}

func TestRequestHandlerSubmitValidationError(t *testing.T) {
	facade := &testhelpers.DeskFacadeStub{SubmitRequestFn: func(context.Context, *model.InvoiceRequest) (*model.InvoiceRequest, error) {
		return nil, domainErrors.ErrValidation
	}}
	resp := performRequest(t, http.MethodPost, "/requests", "/requests", NewRequestHandler(facade).Submit, []byte(`{}`))
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
}

func TestRequestHandlerGetRejectsMalformedID(t *testing.T) {
	for _, target := range []string{"/requests/abc", "/requests/0", "/requests/-3"} {
		resp := performRequest(t, http.MethodGet, "/requests/:id", target, NewRequestHandler(&testhelpers.DeskFacadeStub{}).Get, nil)
		if resp.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected status 400, got %d", target, resp.Code)
		}
	}
}

func TestRequestHandlerPatchApprove(t *testing.T) {
	participants := 4
	amount := 1200.0
	body, _ := json.Marshal(dto.RequestDecision{Action: dto.ReviewActionApprove, Participants: &participants, Amount: &amount})

	facade := &testhelpers.DeskFacadeStub{ApproveRequestFn: func(_ context.Context, id int64, overrides usecase.ApprovalOverrides) (*model.InvoiceRequest, *model.Registration, error) {
		if overrides.Participants == nil || *overrides.Participants != 4 {
			t.Fatalf("participants override not forwarded: %+v", overrides)
		}
		if overrides.Amount == nil || *overrides.Amount != 1200 {
			t.Fatalf("amount override not forwarded: %+v", overrides)
		}
		return &model.InvoiceRequest{ID: id, Status: model.RequestStatusApproved},
			&model.Registration{ID: 9, OrderStatus: model.OrderStatusInProgress}, nil
	}}
	resp := performRequest(t, http.MethodPatch, "/requests/:id", "/requests/5", NewRequestHandler(facade).Patch, body)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	got := decodeJSON[dto.RequestDecisionResponse](t, resp)
	if got.Request.Status != string(model.RequestStatusApproved) {
		t.Fatalf("unexpected request status %q", got.Request.Status)
	}
	if got.Order == nil || got.Order.ID != 9 {
		t.Fatalf("expected the created order in the response, got %+v", got.Order)
	}
}

func TestRequestHandlerPatchReject(t *testing.T) {
	reason := "fully booked"
	body, _ := json.Marshal(dto.RequestDecision{Action: dto.ReviewActionReject, RejectionReason: &reason})

	facade := &testhelpers.DeskFacadeStub{RejectRequestFn: func(_ context.Context, id int64, got *string) (*model.InvoiceRequest, string, error) {
		if got == nil || *got != reason {
			t.Fatalf("reason not forwarded: %v", got)
		}
		return &model.InvoiceRequest{ID: id, Status: model.RequestStatusRejected, RejectionReason: &reason}, usecase.WarnNotQueued, nil
	}}
	resp := performRequest(t, http.MethodPatch, "/requests/:id", "/requests/5", NewRequestHandler(facade).Patch, body)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	got := decodeJSON[dto.RequestDecisionResponse](t, resp)
	if got.Warning != usecase.WarnNotQueued {
		t.Fatalf("expected warning %q, got %q", usecase.WarnNotQueued, got.Warning)
	}
	if got.Order != nil {
		t.Fatal("rejection must not carry an order")
	}
}

func TestRequestHandlerPatchFailures(t *testing.T) {
	tests := []struct {
		name   string
		facade *testhelpers.DeskFacadeStub
		body   string
		status int
	}{
		{name: "bad json", facade: &testhelpers.DeskFacadeStub{}, body: "not json", status: http.StatusBadRequest},
		{name: "unknown action", facade: &testhelpers.DeskFacadeStub{}, body: `{"action":"escalate"}`, status: http.StatusBadRequest},
		{name: "already reviewed", body: `{"action":"approve"}`, facade: &testhelpers.DeskFacadeStub{ApproveRequestFn: func(context.Context, int64, usecase.ApprovalOverrides) (*model.InvoiceRequest, *model.Registration, error) {
			return nil, nil, domainErrors.ErrConflict
		}}, status: http.StatusConflict},
		{name: "unknown request", body: `{"action":"reject"}`, facade: &testhelpers.DeskFacadeStub{RejectRequestFn: func(context.Context, int64, *string) (*model.InvoiceRequest, string, error) {
			return nil, "", domainErrors.ErrNotFound
		}}, status: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := performRequest(t, http.MethodPatch, "/requests/:id", "/requests/5", NewRequestHandler(tt.facade).Patch, []byte(tt.body))
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.Code)
			}
		})
	}
}

func TestOrderHandlerGetAttachesInvoice(t *testing.T) {
	facade := &testhelpers.DeskFacadeStub{
		OrderFn: func(_ context.Context, id int64) (*model.Registration, error) {
			return &model.Registration{ID: id, OrderStatus: model.OrderStatusInProgress, PaymentStatus: model.PaymentStatusPaid}, nil
		},
		OrderInvoiceFn: func(_ context.Context, id int64) (*model.Invoice, error) {
			return &model.Invoice{ID: 3, RegistrationID: id, Status: model.InvoiceStatusPending, DueDate: time.Now().Add(time.Hour)}, nil
		},
	}
	resp := performRequest(t, http.MethodGet, "/orders/:id", "/orders/7", NewOrderHandler(facade).Get, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	got := decodeJSON[dto.OrderEnvelope](t, resp)
	if got.Order.ID != 7 {
		t.Fatalf("unexpected order %+v", got.Order)
	}
	if got.Invoice == nil || got.Invoice.ID != 3 {
		t.Fatalf("expected attached invoice, got %+v", got.Invoice)
	}
}

func TestOrderHandlerGetWithoutInvoice(t *testing.T) {
	facade := &testhelpers.DeskFacadeStub{OrderInvoiceFn: func(context.Context, int64) (*model.Invoice, error) {
		return nil, domainErrors.ErrNotFound
	}}
	resp := performRequest(t, http.MethodGet, "/orders/:id", "/orders/7", NewOrderHandler(facade).Get, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	got := decodeJSON[dto.OrderEnvelope](t, resp)
	if got.Invoice != nil {
		t.Fatalf("expected no invoice, got %+v", got.Invoice)
	}
}

func TestOrderHandlerActions(t *testing.T) {
	facade := &testhelpers.DeskFacadeStub{ExecuteActionFn: func(_ context.Context, id int64, verb model.OrderVerb) (*usecase.ActionResult, error) {
		if verb != model.VerbNotifyCustomer {
			t.Fatalf("unexpected verb %q", verb)
		}
		return &usecase.ActionResult{
			Registration: &model.Registration{ID: id, OrderStatus: model.OrderStatusInProgress},
			Warning:      usecase.WarnNotQueued,
		}, nil
	}}
	resp := performRequest(t, http.MethodPost, "/orders/:id/actions", "/orders/7/actions", NewOrderHandler(facade).Actions, []byte(`{"action":"notify_customer"}`))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	got := decodeJSON[dto.OrderEnvelope](t, resp)
	if got.Warning != usecase.WarnNotQueued {
		t.Fatalf("expected warning in envelope, got %q", got.Warning)
	}
}

func TestOrderHandlerActionsFailures(t *testing.T) {
	tests := []struct {
		name   string
		facade *testhelpers.DeskFacadeStub
		body   string
		status int
	}{
		{name: "bad json", facade: &testhelpers.DeskFacadeStub{}, body: "not json", status: http.StatusBadRequest},
		{name: "unknown verb", body: `{"action":"explode"}`, facade: &testhelpers.DeskFacadeStub{ExecuteActionFn: func(context.Context, int64, model.OrderVerb) (*usecase.ActionResult, error) {
			return nil, domainErrors.ErrValidation
		}}, status: http.StatusBadRequest},
		{name: "stale transition", body: `{"action":"mark_completed"}`, facade: &testhelpers.DeskFacadeStub{ExecuteActionFn: func(context.Context, int64, model.OrderVerb) (*usecase.ActionResult, error) {
			return nil, domainErrors.ErrConflict
		}}, status: http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := performRequest(t, http.MethodPost, "/orders/:id/actions", "/orders/7/actions", NewOrderHandler(tt.facade).Actions, []byte(tt.body))
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.Code)
			}
		})
	}
}

func TestOrderHandlerPatchMapsPaymentStatus(t *testing.T) {
	facade := &testhelpers.DeskFacadeStub{PatchOrderFn: func(_ context.Context, id int64, patch repository.RegistrationPatch) (*model.Registration, error) {
		if patch.PaymentStatus == nil || *patch.PaymentStatus != model.PaymentStatusPaid {
			t.Fatalf("payment status not mapped: %+v", patch)
		}
		return &model.Registration{ID: id, PaymentStatus: model.PaymentStatusPaid}, nil
	}}
	resp := performRequest(t, http.MethodPatch, "/orders/:id", "/orders/7", NewOrderHandler(facade).Patch, []byte(`{"paymentStatus":"PAID"}`))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
}

func TestOrderHandlerTrashAndRestore(t *testing.T) {
	var trashed, restored int64
	facade := &testhelpers.DeskFacadeStub{
		TrashOrderFn: func(_ context.Context, id int64) error {
			trashed = id
			return nil
		},
		RestoreOrderFn: func(_ context.Context, id int64) error {
			restored = id
			return nil
		},
	}

	resp := performRequest(t, http.MethodDelete, "/orders/:id", "/orders/7", NewOrderHandler(facade).Trash, nil)
	if resp.Code != http.StatusNoContent || trashed != 7 {
		t.Fatalf("trash: status %d, id %d", resp.Code, trashed)
	}

	resp = performRequest(t, http.MethodPost, "/orders/:id/restore", "/orders/7/restore", NewOrderHandler(facade).Restore, nil)
	if resp.Code != http.StatusOK || restored != 7 {
		t.Fatalf("restore: status %d, id %d", resp.Code, restored)
	}
}

func TestOrderHandlerNotes(t *testing.T) {
	facade := &testhelpers.DeskFacadeStub{
		AddOrderNoteFn: func(_ context.Context, id int64, author, body string, isPrivate bool) (*model.OrderNote, error) {
			return &model.OrderNote{ID: 3, RegistrationID: id, Author: author, Body: body, IsPrivate: isPrivate}, nil
		},
		OrderNotesFn: func(_ context.Context, id int64) ([]model.OrderNote, error) {
			return []model.OrderNote{{ID: 3, RegistrationID: id, Body: "call them back"}}, nil
		},
	}

	body, _ := json.Marshal(dto.NoteCreateRequest{Author: "admin", Body: "call them back", IsPrivate: true})
	resp := performRequest(t, http.MethodPost, "/orders/:id/notes", "/orders/7/notes", NewOrderHandler(facade).AddNote, body)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.Code)
	}
	note := decodeJSON[dto.NoteResponse](t, resp)
	if note.ID != 3 || !note.IsPrivate {
		t.Fatalf("unexpected note %+v", note)
	}

	resp = performRequest(t, http.MethodGet, "/orders/:id/notes", "/orders/7/notes", NewOrderHandler(facade).Notes, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	notes := decodeJSON[[]dto.NoteResponse](t, resp)
	if len(notes) != 1 || notes[0].Body != "call them back" {
		t.Fatalf("unexpected notes %+v", notes)
	}

	resp = performRequest(t, http.MethodDelete, "/orders/:id/notes/:noteID", "/orders/7/notes/3", NewOrderHandler(&testhelpers.DeskFacadeStub{}).DeleteNote, nil)
	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", resp.Code)
	}
}

func TestInvoiceHandlerGetUsesDisplayStatus(t *testing.T) {
	facade := &testhelpers.DeskFacadeStub{InvoiceFn: func(_ context.Context, id int64) (*model.Invoice, error) {
		return &model.Invoice{
			ID:      id,
			Status:  model.InvoiceStatusPending,
			DueDate: time.Now().Add(-24 * time.Hour),
		}, nil
	}}
	resp := performRequest(t, http.MethodGet, "/invoices/:id", "/invoices/3", NewInvoiceHandler(facade).Get, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	got := decodeJSON[dto.InvoiceResponse](t, resp)
	if got.Status != string(model.InvoiceStatusOverdue) {
		t.Fatalf("expected OVERDUE display status, got %q", got.Status)
	}
}

func TestInvoiceHandlerPatch(t *testing.T) {
	txn := "txn_1"
	facade := &testhelpers.DeskFacadeStub{UpdateInvoiceStatusFn: func(_ context.Context, id int64, to model.InvoiceStatus, transactionID *string) (*model.Invoice, error) {
		if to != model.InvoiceStatusPaid || transactionID == nil || *transactionID != txn {
			t.Fatalf("unexpected update %s %v", to, transactionID)
		}
		now := time.Now()
		return &model.Invoice{ID: id, Status: to, PaymentDate: &now, TransactionID: transactionID, DueDate: now.Add(time.Hour)}, nil
	}}
	body, _ := json.Marshal(dto.InvoicePatch{Status: "PAID", TransactionID: &txn})
	resp := performRequest(t, http.MethodPatch, "/invoices/:id", "/invoices/3", NewInvoiceHandler(facade).Patch, body)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	got := decodeJSON[dto.InvoiceResponse](t, resp)
	if got.Status != string(model.InvoiceStatusPaid) || got.PaymentDate == nil {
		t.Fatalf("unexpected response %+v", got)
	}
}

func TestInvoiceHandlerPatchFailures(t *testing.T) {
	tests := []struct {
		name   string
		facade *testhelpers.DeskFacadeStub
		status int
	}{
		{name: "unsupported target", facade: &testhelpers.DeskFacadeStub{UpdateInvoiceStatusFn: func(context.Context, int64, model.InvoiceStatus, *string) (*model.Invoice, error) {
			return nil, domainErrors.ErrValidation
		}}, status: http.StatusBadRequest},
		{name: "terminal invoice", facade: &testhelpers.DeskFacadeStub{UpdateInvoiceStatusFn: func(context.Context, int64, model.InvoiceStatus, *string) (*model.Invoice, error) {
			return nil, domainErrors.ErrConflict
		}}, status: http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := performRequest(t, http.MethodPatch, "/invoices/:id", "/invoices/3", NewInvoiceHandler(tt.facade).Patch, []byte(`{"status":"PAID"}`))
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.Code)
			}
		})
	}
}

func TestInvoiceHandlerResend(t *testing.T) {
	facade := &testhelpers.DeskFacadeStub{ResendInvoiceFn: func(_ context.Context, id int64) (*model.Invoice, string, error) {
		return &model.Invoice{ID: id, Status: model.InvoiceStatusPending, DueDate: time.Now().Add(time.Hour)}, usecase.WarnNotQueued, nil
	}}
	resp := performRequest(t, http.MethodPost, "/invoices/:id/resend", "/invoices/3/resend", NewInvoiceHandler(facade).Resend, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	got := decodeJSON[dto.InvoiceEnvelope](t, resp)
	if got.Warning != usecase.WarnNotQueued {
		t.Fatalf("expected warning, got %q", got.Warning)
	}
}

func TestPaymentHandlerCreate(t *testing.T) {
	body, _ := json.Marshal(dto.IntentCreateRequest{
		ScheduleID:   10,
		CourseID:     20,
		Participants: 2,
		Snapshot: dto.IntentSnapshot{
			RequesterName:  "Jane Doe",
			RequesterEmail: "jane@example.com",
		},
	})
	facade := &testhelpers.DeskFacadeStub{CreatePaymentIntentFn: func(_ context.Context, scheduleID, courseID int64, participants int, snapshot model.RegistrationSnapshot) (*model.PaymentIntentHandle, error) {
		if scheduleID != 10 || courseID != 20 || participants != 2 || snapshot.RequesterEmail != "jane@example.com" {
			t.Fatalf("payload not forwarded: %d %d %d %+v", scheduleID, courseID, participants, snapshot)
		}
		return &model.PaymentIntentHandle{ID: "pi_1", ClientSecret: "cs_1"}, nil
	}}
	resp := performRequest(t, http.MethodPost, "/payment-intents", "/payment-intents", NewPaymentHandler(facade).Create, body)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.Code)
	}
	got := decodeJSON[dto.IntentCreateResponse](t, resp)
	if got.IntentID != "pi_1" || got.ClientSecret != "cs_1" {
		t.Fatalf("unexpected response %+v", got)
	}
}

func TestPaymentHandlerCreateExternalFailure(t *testing.T) {
	facade := &testhelpers.DeskFacadeStub{CreatePaymentIntentFn: func(context.Context, int64, int64, int, model.RegistrationSnapshot) (*model.PaymentIntentHandle, error) {
		return nil, domainErrors.ErrExternalService
	}}
	resp := performRequest(t, http.MethodPost, "/payment-intents", "/payment-intents", NewPaymentHandler(facade).Create, []byte(`{}`))
	if resp.Code != http.StatusBadGateway {
		t.Fatalf("expected status 502, got %d", resp.Code)
	}
}

func TestPaymentHandlerConfirm(t *testing.T) {
	facade := &testhelpers.DeskFacadeStub{ConfirmPaymentIntentFn: func(_ context.Context, intentID string) (*usecase.ConfirmResult, error) {
		if intentID != "pi_1" {
			t.Fatalf("unexpected intent id %q", intentID)
		}
		return &usecase.ConfirmResult{
			Registration: &model.Registration{ID: 9, PaymentStatus: model.PaymentStatusPaid},
			Created:      true,
			Warning:      "invoice creation deferred",
		}, nil
	}}
	resp := performRequest(t, http.MethodPost, "/payment-intents/:id/confirm", "/payment-intents/pi_1/confirm", NewPaymentHandler(facade).Confirm, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	got := decodeJSON[dto.IntentConfirmResponse](t, resp)
	if got.RegistrationID != 9 || got.Warning != "invoice creation deferred" {
		t.Fatalf("unexpected response %+v", got)
	}
}

func TestPaymentHandlerConfirmFailures(t *testing.T) {
	tests := []struct {
		name   string
		facade *testhelpers.DeskFacadeStub
		status int
	}{
		{name: "unknown intent", facade: &testhelpers.DeskFacadeStub{ConfirmPaymentIntentFn: func(context.Context, string) (*usecase.ConfirmResult, error) {
			return nil, domainErrors.ErrNotFound
		}}, status: http.StatusNotFound},
		{name: "unsettled intent", facade: &testhelpers.DeskFacadeStub{ConfirmPaymentIntentFn: func(context.Context, string) (*usecase.ConfirmResult, error) {
			return nil, domainErrors.ErrConflict
		}}, status: http.StatusConflict},
		{name: "provider unreachable", facade: &testhelpers.DeskFacadeStub{ConfirmPaymentIntentFn: func(context.Context, string) (*usecase.ConfirmResult, error) {
			return nil, domainErrors.ErrExternalService
		}}, status: http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := performRequest(t, http.MethodPost, "/payment-intents/:id/confirm", "/payment-intents/pi_1/confirm", NewPaymentHandler(tt.facade).Confirm, nil)
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.Code)
			}
		})
	}
}
