package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coursedesk/coursedesk/internal/domain/model"
	"github.com/coursedesk/coursedesk/internal/domain/repository"
	"github.com/coursedesk/coursedesk/internal/server/http/dto"
)

// OrderHandler manages registration endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Get handles GET /api/orders/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	reg, err := h.facade.Order(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	envelope := dto.OrderEnvelope{Order: toOrderResponse(reg)}
	if inv, invErr := h.facade.OrderInvoice(c.Request.Context(), id); invErr == nil && inv != nil {
		resp := toInvoiceResponse(inv)
		envelope.Invoice = &resp
	}

	c.JSON(http.StatusOK, envelope)
}

// Actions handles POST /api/orders/:id/actions.
func (h *OrderHandler) Actions(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.ActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	result, err := h.facade.ExecuteAction(c.Request.Context(), id, model.OrderVerb(req.Action))
	if err != nil {
		respondError(c, err)
		return
	}

	envelope := dto.OrderEnvelope{Order: toOrderResponse(result.Registration), Warning: result.Warning}
	if result.Invoice != nil {
		resp := toInvoiceResponse(result.Invoice)
		envelope.Invoice = &resp
	}

	c.JSON(http.StatusOK, envelope)
}

// Patch handles PATCH /api/orders/:id.
func (h *OrderHandler) Patch(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.OrderPatch
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	patch := repository.RegistrationPatch{
		RequesterName:  req.RequesterName,
		RequesterEmail: req.RequesterEmail,
		RequesterPhone: req.RequesterPhone,
		CompanyName:    req.CompanyName,
		Participants:   req.Participants,
		Total:          req.Total,
	}
	if req.PaymentStatus != nil {
		status := model.PaymentStatus(*req.PaymentStatus)
		patch.PaymentStatus = &status
	}

	reg, err := h.facade.PatchOrder(c.Request.Context(), id, patch)
	if err != nil {
		respondError(c, err)
		return
	}

	envelope := dto.OrderEnvelope{Order: toOrderResponse(reg)}
	if inv, invErr := h.facade.OrderInvoice(c.Request.Context(), id); invErr == nil && inv != nil {
		resp := toInvoiceResponse(inv)
		envelope.Invoice = &resp
	}

	c.JSON(http.StatusOK, envelope)
}

// Trash handles DELETE /api/orders/:id.
func (h *OrderHandler) Trash(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.facade.TrashOrder(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Restore handles POST /api/orders/:id/restore.
func (h *OrderHandler) Restore(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.facade.RestoreOrder(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// AddNote handles POST /api/orders/:id/notes.
func (h *OrderHandler) AddNote(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.NoteCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	note, err := h.facade.AddOrderNote(c.Request.Context(), id, req.Author, req.Body, req.IsPrivate)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toNoteResponse(note))
}

// Notes handles GET /api/orders/:id/notes.
func (h *OrderHandler) Notes(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	notes, err := h.facade.OrderNotes(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]dto.NoteResponse, 0, len(notes))
	for i := range notes {
		resp = append(resp, toNoteResponse(&notes[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteNote handles DELETE /api/orders/:id/notes/:noteID.
func (h *OrderHandler) DeleteNote(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	noteID, ok := pathID(c, "noteID")
	if !ok {
		return
	}

	if err := h.facade.DeleteOrderNote(c.Request.Context(), id, noteID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
