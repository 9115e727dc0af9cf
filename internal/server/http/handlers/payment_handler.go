package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/coursedesk/coursedesk/internal/domain/model"
	"github.com/coursedesk/coursedesk/internal/server/http/dto"
)

// PaymentHandler manages card payment intent endpoints.
type PaymentHandler struct {
	facade PaymentFacade
}

// NewPaymentHandler constructs PaymentHandler.
func NewPaymentHandler(facade PaymentFacade) *PaymentHandler {
	return &PaymentHandler{facade: facade}
}

// Create handles POST /api/payment-intents.
func (h *PaymentHandler) Create(c *gin.Context) {
	var req dto.IntentCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	handle, err := h.facade.CreatePaymentIntent(c.Request.Context(), req.ScheduleID, req.CourseID, req.Participants, model.RegistrationSnapshot{
		RequesterName:  req.Snapshot.RequesterName,
		RequesterEmail: req.Snapshot.RequesterEmail,
		RequesterPhone: req.Snapshot.RequesterPhone,
		CompanyName:    req.Snapshot.CompanyName,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.IntentCreateResponse{IntentID: handle.ID, ClientSecret: handle.ClientSecret})
}

// Confirm handles POST /api/payment-intents/:id/confirm.
func (h *PaymentHandler) Confirm(c *gin.Context) {
	intentID := strings.TrimSpace(c.Param("id"))
	if intentID == "" {
		c.Status(http.StatusBadRequest)
		return
	}

	result, err := h.facade.ConfirmPaymentIntent(c.Request.Context(), intentID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.IntentConfirmResponse{RegistrationID: result.Registration.ID, Warning: result.Warning})
}
