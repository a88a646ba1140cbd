package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/Nethupa05/NS-Stores-Backend/internal/domain/orders/reservation"
	"github.com/Nethupa05/NS-Stores-Backend/internal/infrastructure/http/v1/dto"
)

// ReservationHandler handles reservation endpoints.
type ReservationHandler struct {
	*BaseHandler
	service *reservation.Service
}

// NewReservationHandler creates a reservation handler.
func NewReservationHandler(base *BaseHandler, service *reservation.Service) *ReservationHandler {
	return &ReservationHandler{BaseHandler: base, service: service}
}

// Create handles POST /reservations.
func (h *ReservationHandler) Create(c *gin.Context) {
	var req dto.CreateReservationRequest
	if !h.BindJSON(c, &req) {
		return
	}

	r := reservation.NewReservation(req.Email)
	if err := h.service.Create(c.Request.Context(), r); err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, r.ID.String())
}

// Get handles GET /reservations/:id.
func (h *ReservationHandler) Get(c *gin.Context) {
	reservationID, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	r, err := h.service.Get(c.Request.Context(), reservationID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, r)
}

// List handles GET /reservations.
func (h *ReservationHandler) List(c *gin.Context) {
	var req dto.ReservationListRequest
	if !h.BindQuery(c, &req) {
		return
	}

	filter := reservation.ListFilter{
		Status: reservation.Status(req.Status),
		Email:  req.Email,
		Limit:  req.Limit,
		Offset: req.Offset,
	}

	items, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.NewListData(items, total, filter.Limit, filter.Offset))
}

// UpdateStatus handles PATCH /reservations/:id/status.
func (h *ReservationHandler) UpdateStatus(c *gin.Context) {
	reservationID, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateStatusRequest
	if !h.BindJSON(c, &req) {
		return
	}

	r, err := h.service.UpdateStatus(c.Request.Context(), reservationID, reservation.Status(req.Status))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, r)
}

// Delete handles DELETE /reservations/:id.
func (h *ReservationHandler) Delete(c *gin.Context) {
	reservationID, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), reservationID); err != nil {
		h.Error(c, err)
		return
	}
	h.NoContent(c)
}
