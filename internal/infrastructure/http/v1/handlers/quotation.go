package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/Nethupa05/NS-Stores-Backend/internal/domain/orders/quotation"
	"github.com/Nethupa05/NS-Stores-Backend/internal/infrastructure/http/v1/dto"
)

// QuotationHandler handles quotation endpoints.
type QuotationHandler struct {
	*BaseHandler
	service *quotation.Service
}

// NewQuotationHandler creates a quotation handler.
func NewQuotationHandler(base *BaseHandler, service *quotation.Service) *QuotationHandler {
	return &QuotationHandler{BaseHandler: base, service: service}
}

// Create handles POST /quotations.
func (h *QuotationHandler) Create(c *gin.Context) {
	var req dto.CreateQuotationRequest
	if !h.BindJSON(c, &req) {
		return
	}

	q := quotation.NewQuotation(req.ProductCategory, req.TotalAmount)
	if err := h.service.Create(c.Request.Context(), q); err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, q.ID.String())
}

// Get handles GET /quotations/:id.
func (h *QuotationHandler) Get(c *gin.Context) {
	quotationID, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	q, err := h.service.Get(c.Request.Context(), quotationID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, q)
}

// List handles GET /quotations.
func (h *QuotationHandler) List(c *gin.Context) {
	var req dto.QuotationListRequest
	if !h.BindQuery(c, &req) {
		return
	}

	filter := quotation.ListFilter{
		Status:   quotation.Status(req.Status),
		Category: req.Category,
		Limit:    req.Limit,
		Offset:   req.Offset,
	}

	items, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.NewListData(items, total, filter.Limit, filter.Offset))
}

// UpdateStatus handles PATCH /quotations/:id/status.
func (h *QuotationHandler) UpdateStatus(c *gin.Context) {
	quotationID, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateStatusRequest
	if !h.BindJSON(c, &req) {
		return
	}

	q, err := h.service.UpdateStatus(c.Request.Context(), quotationID, quotation.Status(req.Status))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, q)
}

// Delete handles DELETE /quotations/:id.
func (h *QuotationHandler) Delete(c *gin.Context) {
	quotationID, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), quotationID); err != nil {
		h.Error(c, err)
		return
	}
	h.NoContent(c)
}
