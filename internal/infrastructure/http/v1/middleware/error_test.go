package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/Nethupa05/NS-Stores-Backend/internal/core/apperror"
)

func newErrorTestRouter(handler gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(ErrorHandler())
	router.GET("/test", handler)
	return router
}

func doRequest(router *gin.Engine) (*httptest.ResponseRecorder, map[string]any) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	router.ServeHTTP(w, req)

	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return w, body
}

func TestErrorHandlerAppError(t *testing.T) {
	router := newErrorTestRouter(func(c *gin.Context) {
		_ = c.Error(apperror.NewNotFound("product", "p-1"))
		c.Abort()
	})

	w, body := doRequest(router)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, apperror.CodeNotFound, body["code"])
	assert.Equal(t, "product not found", body["message"])
	assert.Contains(t, body, "details")
}

func TestErrorHandlerValidationDetails(t *testing.T) {
	router := newErrorTestRouter(func(c *gin.Context) {
		_ = c.Error(apperror.NewValidation("period must be a non-negative number of days").
			WithDetail("period", -5))
		c.Abort()
	})

	w, body := doRequest(router)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, apperror.CodeValidation, body["code"])

	details, ok := body["details"].(map[string]any)
	assert.True(t, ok)
	assert.Equal(t, float64(-5), details["period"])
}

func TestErrorHandlerUnknownError(t *testing.T) {
	router := newErrorTestRouter(func(c *gin.Context) {
		_ = c.Error(errors.New("something broke"))
		c.Abort()
	})

	w, body := doRequest(router)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, apperror.CodeInternal, body["code"])
	assert.Equal(t, "something broke", body["message"])
}

func TestErrorHandlerNoError(t *testing.T) {
	router := newErrorTestRouter(func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	w, body := doRequest(router)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["success"])
}

func TestErrorHandlerRespectsWrittenResponse(t *testing.T) {
	router := newErrorTestRouter(func(c *gin.Context) {
		c.JSON(http.StatusTeapot, gin.H{"handled": true})
		_ = c.Error(errors.New("late error"))
	})

	w, body := doRequest(router)

	assert.Equal(t, http.StatusTeapot, w.Code)
	assert.Equal(t, true, body["handled"])
}
