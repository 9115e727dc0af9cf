package dto

import "time"

// InvoiceResponse describes an invoice. Status is the derived display value,
// so a pending invoice past its due date reads OVERDUE.
type InvoiceResponse struct {
	ID             int64      `json:"id"`
	InvoiceNo      string     `json:"invoiceNo"`
	RegistrationID int64      `json:"registrationId"`
	Amount         float64    `json:"amount"`
	Status         string     `json:"status"`
	IssueDate      time.Time  `json:"issueDate"`
	DueDate        time.Time  `json:"dueDate"`
	PaymentDate    *time.Time `json:"paymentDate,omitempty"`
	TransactionID  *string    `json:"transactionId,omitempty"`
	PDFURL         *string    `json:"pdfUrl,omitempty"`
}

// InvoicePatch carries an admin invoice status change.
type InvoicePatch struct {
	Status        string  `json:"status"`
	TransactionID *string `json:"transactionId,omitempty"`
}

// InvoiceEnvelope wraps an invoice with an optional delivery warning.
type InvoiceEnvelope struct {
	Invoice InvoiceResponse `json:"invoice"`
	Warning string          `json:"warning,omitempty"`
}
