package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coursedesk/coursedesk/internal/domain/model"
	"github.com/coursedesk/coursedesk/internal/server/http/dto"
	"github.com/coursedesk/coursedesk/internal/usecase"
)

// RequestHandler manages invoice request endpoints.
type RequestHandler struct {
	facade RequestFacade
}

// NewRequestHandler constructs RequestHandler.
func NewRequestHandler(facade RequestFacade) *RequestHandler {
	return &RequestHandler{facade: facade}
}

// Submit handles POST /api/invoice-requests.
func (h *RequestHandler) Submit(c *gin.Context) {
	var req dto.InvoiceRequestSubmission
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	created, err := h.facade.SubmitRequest(c.Request.Context(), &model.InvoiceRequest{
		ScheduleID:     req.ScheduleID,
		CourseID:       req.CourseID,
		RequesterName:  req.RequesterName,
		RequesterEmail: req.RequesterEmail,
		RequesterPhone: req.RequesterPhone,
		CompanyName:    req.CompanyName,
		Participants:   req.Participants,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toRequestResponse(created))
}

// Get handles GET /api/invoice-requests/:id.
func (h *RequestHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	req, err := h.facade.Request(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toRequestResponse(req))
}

// Patch handles PATCH /api/invoice-requests/:id. The only supported changes
// are the two terminal review decisions.
func (h *RequestHandler) Patch(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var decision dto.RequestDecision
	if err := c.ShouldBindJSON(&decision); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	switch decision.Action {
	case dto.ReviewActionApprove:
		req, reg, err := h.facade.ApproveRequest(c.Request.Context(), id, usecase.ApprovalOverrides{
			Participants: decision.Participants,
			Amount:       decision.Amount,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		order := toOrderResponse(reg)
		c.JSON(http.StatusOK, dto.RequestDecisionResponse{Request: toRequestResponse(req), Order: &order})

	case dto.ReviewActionReject:
		req, warning, err := h.facade.RejectRequest(c.Request.Context(), id, decision.RejectionReason)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.RequestDecisionResponse{Request: toRequestResponse(req), Warning: warning})

	default:
		c.Status(http.StatusBadRequest)
	}
}
