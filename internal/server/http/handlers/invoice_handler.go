package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coursedesk/coursedesk/internal/domain/model"
	"github.com/coursedesk/coursedesk/internal/server/http/dto"
)

// InvoiceHandler manages invoice endpoints.
type InvoiceHandler struct {
	facade InvoiceFacade
}

// NewInvoiceHandler constructs InvoiceHandler.
func NewInvoiceHandler(facade InvoiceFacade) *InvoiceHandler {
	return &InvoiceHandler{facade: facade}
}

// Get handles GET /api/invoices/:id.
func (h *InvoiceHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	inv, err := h.facade.Invoice(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toInvoiceResponse(inv))
}

// Patch handles PATCH /api/invoices/:id.
func (h *InvoiceHandler) Patch(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.InvoicePatch
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	inv, err := h.facade.UpdateInvoiceStatus(c.Request.Context(), id, model.InvoiceStatus(req.Status), req.TransactionID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toInvoiceResponse(inv))
}

// Resend handles POST /api/invoices/:id/resend.
func (h *InvoiceHandler) Resend(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	inv, warning, err := h.facade.ResendInvoice(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.InvoiceEnvelope{Invoice: toInvoiceResponse(inv), Warning: warning})
}
