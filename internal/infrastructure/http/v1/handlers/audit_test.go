package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/Nethupa05/NS-Stores-Backend/internal/core/apperror"
	"github.com/Nethupa05/NS-Stores-Backend/internal/core/id"
	"github.com/Nethupa05/NS-Stores-Backend/internal/domain/audit"
	"github.com/Nethupa05/NS-Stores-Backend/internal/infrastructure/http/v1/middleware"
)

type stubHistorian struct {
	entries []audit.Entry
	err     error

	gotEntityType string
	gotEntityID   id.ID
	gotLimit      int
}

func (s *stubHistorian) EntityHistory(_ context.Context, entityType string, entityID id.ID, limit int) ([]audit.Entry, error) {
	s.gotEntityType = entityType
	s.gotEntityID = entityID
	s.gotLimit = limit
	return s.entries, s.err
}

func newAuditTestRouter(history audit.Historian) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.ErrorHandler())
	handler := NewAuditHandler(NewBaseHandler(), history)
	router.GET("/audit/:entityType/:id", handler.EntityHistory)
	return router
}

func TestEntityHistory(t *testing.T) {
	entityID := id.New()
	history := &stubHistorian{
		entries: []audit.Entry{{
			ID:         id.New(),
			EntityType: "product",
			EntityID:   entityID,
			Action:     audit.ActionUpdate,
			UserEmail:  "admin@ns-stores.local",
			Changes:    json.RawMessage(`{"stock":0}`),
			CreatedAt:  time.Now().UTC(),
		}},
	}
	router := newAuditTestRouter(history)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/audit/product/"+entityID.String(), nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "product", history.gotEntityType)
	assert.Equal(t, entityID, history.gotEntityID)
	assert.Equal(t, defaultHistoryLimit, history.gotLimit)

	var body struct {
		Success bool          `json:"success"`
		Data    []audit.Entry `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Len(t, body.Data, 1)
	assert.Equal(t, audit.ActionUpdate, body.Data[0].Action)
}

func TestEntityHistoryLimitParam(t *testing.T) {
	history := &stubHistorian{}
	router := newAuditTestRouter(history)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/audit/product/"+id.New().String()+"?limit=5", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 5, history.gotLimit)
}

func TestEntityHistoryEmptyTrail(t *testing.T) {
	router := newAuditTestRouter(&stubHistorian{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/audit/product/"+id.New().String(), nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"data":[]`)
}

func TestEntityHistoryInvalidID(t *testing.T) {
	router := newAuditTestRouter(&stubHistorian{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/audit/product/not-a-uuid", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), apperror.CodeValidation)
}
