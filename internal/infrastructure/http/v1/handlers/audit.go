package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/Nethupa05/NS-Stores-Backend/internal/domain/audit"
)

const defaultHistoryLimit = 50

// AuditHandler exposes the recorded audit trail to administrators.
type AuditHandler struct {
	*BaseHandler
	history audit.Historian
}

// NewAuditHandler creates an audit handler.
func NewAuditHandler(base *BaseHandler, history audit.Historian) *AuditHandler {
	return &AuditHandler{BaseHandler: base, history: history}
}

// EntityHistory handles GET /audit/:entityType/:id.
func (h *AuditHandler) EntityHistory(c *gin.Context) {
	entityType := c.Param("entityType")
	entityID, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}
	limit, err := h.ParseIntQuery(c, "limit", defaultHistoryLimit)
	if err != nil {
		h.Error(c, err)
		return
	}
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	entries, err := h.history.EntityHistory(c.Request.Context(), entityType, entityID, limit)
	if err != nil {
		h.Error(c, err)
		return
	}
	if entries == nil {
		entries = []audit.Entry{}
	}
	h.OK(c, entries)
}
