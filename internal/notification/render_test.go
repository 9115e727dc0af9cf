package notification

import (
	"strings"
	"testing"
	"time"

	"github.com/coursedesk/coursedesk/internal/domain/model"
)

func TestRenderRejectionIncludesCourseFeesAndReason(t *testing.T) {
	amount := 900.0
	msg := render(Notification{
		Kind:      KindRequestRejected,
		Recipient: "jane@example.com",
		Reason:    "The session is fully booked",
		Schedule:  &model.CourseSchedule{Title: "Advanced Welding"},
		Request: &model.InvoiceRequest{
			RequesterName:  "Jane Doe",
			RequesterEmail: "jane@example.com",
			Participants:   3,
			Amount:         &amount,
		},
	})

	if msg.To != "jane@example.com" || msg.Subject != "Invoice request declined" {
		t.Fatalf("unexpected envelope %+v", msg)
	}
	for _, want := range []string{
		"Advanced Welding",
		"3 participant(s) at $300.00 each, $900.00 total",
		"Jane Doe <jane@example.com>",
		"Reason: The session is fully booked",
	} {
		if !strings.Contains(msg.TextBody, want) {
			t.Fatalf("body missing %q:\n%s", want, msg.TextBody)
		}
	}
	if !strings.Contains(msg.HTMLBody, "Advanced Welding") {
		t.Fatal("html body missing course title")
	}
}

func TestRenderRejectionFallsBackOnBlankReason(t *testing.T) {
	msg := render(Notification{
		Kind:      KindRequestRejected,
		Recipient: "jane@example.com",
		Reason:    "   ",
	})
	if !strings.Contains(msg.TextBody, "Reason: No reason provided") {
		t.Fatalf("expected fallback reason, got:\n%s", msg.TextBody)
	}
}

func TestRenderInvoiceVariants(t *testing.T) {
	pdf := "https://files.example.com/inv.pdf"
	inv := &model.Invoice{
		InvoiceNo: "INV-20260101-ABCDEF01",
		Amount:    450,
		DueDate:   time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
		PDFURL:    &pdf,
	}

	issued := render(Notification{Kind: KindInvoiceIssued, Recipient: "jane@example.com", Invoice: inv})
	if issued.Subject != "Your invoice" {
		t.Fatalf("unexpected subject %q", issued.Subject)
	}
	for _, want := range []string{"INV-20260101-ABCDEF01", "$450.00", "2026-01-15", pdf} {
		if !strings.Contains(issued.TextBody, want) {
			t.Fatalf("body missing %q:\n%s", want, issued.TextBody)
		}
	}

	resent := render(Notification{Kind: KindInvoiceResent, Recipient: "jane@example.com", Invoice: inv})
	if resent.Subject != "Your invoice (resent)" {
		t.Fatalf("unexpected subject %q", resent.Subject)
	}

	bare := render(Notification{Kind: KindInvoiceIssued, Recipient: "jane@example.com"})
	if !strings.Contains(bare.TextBody, "Your invoice is ready.") {
		t.Fatalf("expected generic wording, got:\n%s", bare.TextBody)
	}
}

func TestRenderNoticeCarriesOrderState(t *testing.T) {
	msg := render(Notification{
		Kind:      KindCustomerNotice,
		Recipient: "jane@example.com",
		Registration: &model.Registration{
			ID:            7,
			OrderStatus:   model.OrderStatusCompleted,
			PaymentStatus: model.PaymentStatusPaid,
		},
	})
	if msg.Subject != "Course registration update" {
		t.Fatalf("unexpected subject %q", msg.Subject)
	}
	if !strings.Contains(msg.TextBody, "Order #7 status: COMPLETED, payment: PAID") {
		t.Fatalf("body missing order state:\n%s", msg.TextBody)
	}
}
