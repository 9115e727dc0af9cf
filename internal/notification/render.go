package notification

import (
	"fmt"
	"strings"

	"github.com/coursedesk/coursedesk/internal/adapter/email"
)

// render builds the outgoing message for a notification. Rendering never
// fails; missing data degrades to generic wording rather than blocking the
// send.
func render(n Notification) email.Message {
	switch n.Kind {
	case KindRequestRejected:
		return renderRejection(n)
	case KindInvoiceIssued:
		return renderInvoice(n, "Your invoice")
	case KindInvoiceResent:
		return renderInvoice(n, "Your invoice (resent)")
	default:
		return renderNotice(n)
	}
}

func renderRejection(n Notification) email.Message {
	reason := n.Reason
	if strings.TrimSpace(reason) == "" {
		reason = "No reason provided"
	}

	var course, fees string
	if n.Schedule != nil {
		course = n.Schedule.Title
	}
	if n.Request != nil {
		participants := n.Request.Participants
		if participants <= 0 {
			participants = 1
		}
		if n.Request.Amount != nil {
			perSeat := *n.Request.Amount / float64(participants)
			fees = fmt.Sprintf("%d participant(s) at $%.2f each, $%.2f total",
				participants, perSeat, *n.Request.Amount)
		} else {
			fees = fmt.Sprintf("%d participant(s)", participants)
		}
	}

	var text strings.Builder
	text.WriteString("Your invoice request could not be approved.\n\n")
	if course != "" {
		fmt.Fprintf(&text, "Course: %s\n", course)
	}
	if fees != "" {
		fmt.Fprintf(&text, "Requested: %s\n", fees)
	}
	if n.Request != nil {
		fmt.Fprintf(&text, "Contact: %s <%s>\n", n.Request.RequesterName, n.Request.RequesterEmail)
	}
	fmt.Fprintf(&text, "\nReason: %s\n", reason)

	return email.Message{
		To:       n.Recipient,
		Subject:  "Invoice request declined",
		HTMLBody: "<p>" + strings.ReplaceAll(text.String(), "\n", "<br>") + "</p>",
		TextBody: text.String(),
	}
}

func renderInvoice(n Notification, subject string) email.Message {
	var text strings.Builder
	if n.Invoice != nil {
		fmt.Fprintf(&text, "Invoice %s for $%.2f is attached.\n", n.Invoice.InvoiceNo, n.Invoice.Amount)
		fmt.Fprintf(&text, "Due date: %s\n", n.Invoice.DueDate.Format("2006-01-02"))
		if n.Invoice.PDFURL != nil {
			fmt.Fprintf(&text, "Download: %s\n", *n.Invoice.PDFURL)
		}
	} else {
		text.WriteString("Your invoice is ready.\n")
	}

	return email.Message{
		To:       n.Recipient,
		Subject:  subject,
		HTMLBody: "<p>" + strings.ReplaceAll(text.String(), "\n", "<br>") + "</p>",
		TextBody: text.String(),
	}
}

func renderNotice(n Notification) email.Message {
	var text strings.Builder
	text.WriteString("There is an update on your course registration.\n")
	if n.Registration != nil {
		fmt.Fprintf(&text, "Order #%d status: %s, payment: %s\n",
			n.Registration.ID, n.Registration.OrderStatus, n.Registration.PaymentStatus)
	}

	return email.Message{
		To:       n.Recipient,
		Subject:  "Course registration update",
		HTMLBody: "<p>" + strings.ReplaceAll(text.String(), "\n", "<br>") + "</p>",
		TextBody: text.String(),
	}
}
