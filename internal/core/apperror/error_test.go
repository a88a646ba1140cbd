package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFactoriesStatusAndCode(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, NewValidation("bad").HTTPStatus)
	assert.Equal(t, CodeValidation, NewValidation("bad").Code)

	assert.Equal(t, http.StatusNotFound, NewNotFound("product", "p-1").HTTPStatus)
	assert.Equal(t, http.StatusUnauthorized, NewUnauthorized("no").HTTPStatus)
	assert.Equal(t, http.StatusForbidden, NewForbidden("no").HTTPStatus)
	assert.Equal(t, http.StatusConflict, NewConflict("taken").HTTPStatus)
	assert.Equal(t, http.StatusConflict, NewDuplicate("user", "email", "a@x.com").HTTPStatus)
	assert.Equal(t, http.StatusInternalServerError, NewInternal(errors.New("boom")).HTTPStatus)
}

func TestNewDatabaseKeepsCauseMessage(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewDatabase(cause)

	assert.Equal(t, CodeDatabase, err.Code)
	assert.Equal(t, "connection refused", err.Message)
	assert.True(t, errors.Is(err, cause))
}

func TestWithDetail(t *testing.T) {
	err := NewValidation("bad").WithDetail("field", "sku").WithDetail("value", "")

	assert.Equal(t, "sku", err.Details["field"])
	assert.Len(t, err.Details, 2)
}

func TestAsAppError(t *testing.T) {
	appErr := NewNotFound("product", "p-1")
	wrapped := fmt.Errorf("lookup failed: %w", appErr)

	got, ok := AsAppError(wrapped)
	assert.True(t, ok)
	assert.Equal(t, appErr, got)

	_, ok = AsAppError(errors.New("plain"))
	assert.False(t, ok)
}

func TestGetHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, GetHTTPStatus(NewNotFound("product", "p-1")))
	assert.Equal(t, http.StatusInternalServerError, GetHTTPStatus(errors.New("plain")))
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(NewNotFound("product", "p-1")))
	assert.False(t, IsNotFound(NewValidation("bad")))
	assert.False(t, IsNotFound(nil))
}
