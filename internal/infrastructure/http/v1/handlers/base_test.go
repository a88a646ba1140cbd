package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/Nethupa05/NS-Stores-Backend/internal/core/apperror"
	"github.com/Nethupa05/NS-Stores-Backend/internal/core/id"
)

func newTestContext(target string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	return c, w
}

func TestParseIntQuery(t *testing.T) {
	h := NewBaseHandler()

	c, _ := newTestContext("/reports/products?period=7")
	val, err := h.ParseIntQuery(c, "period", 30)
	assert.NoError(t, err)
	assert.Equal(t, 7, val)
}

func TestParseIntQueryDefault(t *testing.T) {
	h := NewBaseHandler()

	c, _ := newTestContext("/reports/products")
	val, err := h.ParseIntQuery(c, "period", 30)
	assert.NoError(t, err)
	assert.Equal(t, 30, val)
}

func TestParseIntQueryMalformed(t *testing.T) {
	h := NewBaseHandler()

	c, _ := newTestContext("/reports/products?period=abc")
	_, err := h.ParseIntQuery(c, "period", 30)

	appErr, ok := apperror.AsAppError(err)
	assert.True(t, ok)
	assert.Equal(t, apperror.CodeValidation, appErr.Code)
	assert.Equal(t, "period", appErr.Details["param"])
}

func TestParseIDParam(t *testing.T) {
	h := NewBaseHandler()
	known := id.New()

	c, _ := newTestContext("/products/" + known.String())
	c.Params = gin.Params{{Key: "id", Value: known.String()}}

	parsed, ok := h.ParseIDParam(c, "id")
	assert.True(t, ok)
	assert.Equal(t, known, parsed)
}

func TestParseIDParamInvalid(t *testing.T) {
	h := NewBaseHandler()

	c, _ := newTestContext("/products/not-a-uuid")
	c.Params = gin.Params{{Key: "id", Value: "not-a-uuid"}}

	_, ok := h.ParseIDParam(c, "id")
	assert.False(t, ok)
	assert.True(t, c.IsAborted())
}

func TestOKEnvelope(t *testing.T) {
	h := NewBaseHandler()

	c, w := newTestContext("/products")
	h.OK(c, map[string]string{"name": "Steel Bolt M8"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"data":{"name":"Steel Bolt M8"}}`, w.Body.String())
}
