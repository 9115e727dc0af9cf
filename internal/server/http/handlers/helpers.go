package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/coursedesk/coursedesk/internal/domain/errors"
	"github.com/coursedesk/coursedesk/internal/domain/model"
	"github.com/coursedesk/coursedesk/internal/server/http/dto"
)

// pathID parses a numeric path parameter. A malformed id aborts with 400.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.Status(http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

// respondError translates domain failures into HTTP statuses.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domainErrors.ErrValidation):
		c.Status(http.StatusBadRequest)
	case errors.Is(err, domainErrors.ErrNotFound):
		c.Status(http.StatusNotFound)
	case errors.Is(err, domainErrors.ErrConflict), errors.Is(err, domainErrors.ErrAlreadyExists):
		c.Status(http.StatusConflict)
	case errors.Is(err, domainErrors.ErrExternalService):
		c.Status(http.StatusBadGateway)
	default:
		c.Status(http.StatusInternalServerError)
	}
}

func toRequestResponse(req *model.InvoiceRequest) dto.InvoiceRequestResponse {
	return dto.InvoiceRequestResponse{
		ID:              req.ID,
		ScheduleID:      req.ScheduleID,
		CourseID:        req.CourseID,
		RequesterName:   req.RequesterName,
		RequesterEmail:  req.RequesterEmail,
		RequesterPhone:  req.RequesterPhone,
		CompanyName:     req.CompanyName,
		Participants:    req.Participants,
		Amount:          req.Amount,
		Status:          string(req.Status),
		RejectionReason: req.RejectionReason,
		ApprovedAt:      req.ApprovedAt,
		CreatedAt:       req.CreatedAt,
	}
}

func toOrderResponse(reg *model.Registration) dto.OrderResponse {
	return dto.OrderResponse{
		ID:             reg.ID,
		UserID:         reg.UserID,
		ScheduleID:     reg.ScheduleID,
		CourseID:       reg.CourseID,
		RequesterName:  reg.RequesterName,
		RequesterEmail: reg.RequesterEmail,
		RequesterPhone: reg.RequesterPhone,
		CompanyName:    reg.CompanyName,
		PaymentMethod:  string(reg.PaymentMethod),
		PaymentStatus:  string(reg.PaymentStatus),
		OrderStatus:    string(reg.OrderStatus),
		Participants:   reg.Participants,
		Total:          reg.Total,
		DeletedAt:      reg.DeletedAt,
		CreatedAt:      reg.CreatedAt,
	}
}

func toInvoiceResponse(inv *model.Invoice) dto.InvoiceResponse {
	return dto.InvoiceResponse{
		ID:             inv.ID,
		InvoiceNo:      inv.InvoiceNo,
		RegistrationID: inv.RegistrationID,
		Amount:         inv.Amount,
		Status:         string(inv.DisplayStatus(time.Now())),
		IssueDate:      inv.IssueDate,
		DueDate:        inv.DueDate,
		PaymentDate:    inv.PaymentDate,
		TransactionID:  inv.TransactionID,
		PDFURL:         inv.PDFURL,
	}
}

func toNoteResponse(note *model.OrderNote) dto.NoteResponse {
	return dto.NoteResponse{
		ID:        note.ID,
		Author:    note.Author,
		Body:      note.Body,
		IsPrivate: note.IsPrivate,
		CreatedAt: note.CreatedAt,
	}
}
