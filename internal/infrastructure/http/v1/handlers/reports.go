package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/Nethupa05/NS-Stores-Backend/internal/domain/reports"
)

// ReportsHandler handles report endpoints. Report documents are
// response-shaped already, so they go into the envelope as-is.
type ReportsHandler struct {
	*BaseHandler
	service *reports.Service
}

// NewReportsHandler creates a reports handler.
func NewReportsHandler(base *BaseHandler, service *reports.Service) *ReportsHandler {
	return &ReportsHandler{BaseHandler: base, service: service}
}

// period reads the trailing window from the query string. A missing
// parameter falls back to the default window.
func (h *ReportsHandler) period(c *gin.Context) (int, error) {
	return h.ParseIntQuery(c, "period", reports.DefaultPeriodDays)
}

// Products handles GET /reports/products.
func (h *ReportsHandler) Products(c *gin.Context) {
	periodDays, err := h.period(c)
	if err != nil {
		h.Error(c, err)
		return
	}

	report, err := h.service.ProductReport(c.Request.Context(), periodDays)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, report)
}

// Suppliers handles GET /reports/suppliers.
func (h *ReportsHandler) Suppliers(c *gin.Context) {
	periodDays, err := h.period(c)
	if err != nil {
		h.Error(c, err)
		return
	}

	report, err := h.service.SupplierReport(c.Request.Context(), periodDays)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, report)
}

// Users handles GET /reports/users.
func (h *ReportsHandler) Users(c *gin.Context) {
	periodDays, err := h.period(c)
	if err != nil {
		h.Error(c, err)
		return
	}

	report, err := h.service.UserReport(c.Request.Context(), periodDays)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, report)
}

// Quotations handles GET /reports/quotations.
func (h *ReportsHandler) Quotations(c *gin.Context) {
	periodDays, err := h.period(c)
	if err != nil {
		h.Error(c, err)
		return
	}

	report, err := h.service.QuotationReport(c.Request.Context(), periodDays)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, report)
}

// Reservations handles GET /reports/reservations.
func (h *ReportsHandler) Reservations(c *gin.Context) {
	periodDays, err := h.period(c)
	if err != nil {
		h.Error(c, err)
		return
	}

	report, err := h.service.ReservationReport(c.Request.Context(), periodDays)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, report)
}

// Dashboard handles GET /reports/dashboard.
func (h *ReportsHandler) Dashboard(c *gin.Context) {
	report, err := h.service.DashboardReport(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, report)
}
