package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructorsCarryHTTPCode(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, NewValidationError("x").Code)
	assert.Equal(t, http.StatusNotFound, NewNotFoundError("x").Code)
	assert.Equal(t, http.StatusForbidden, NewForbiddenError("x").Code)
	assert.Equal(t, http.StatusInternalServerError, NewInternalError("x").Code)
}

func TestPredicatesSeeThroughWrapping(t *testing.T) {
	err := fmt.Errorf("load ticket: %w", NewNotFoundError("ticket not found", "id=4"))

	assert.True(t, IsNotFoundError(err))
	assert.False(t, IsValidationError(err))
	assert.Equal(t, "not_found: ticket not found (id=4)", GetAppError(err).Error())
}

func TestIsDuplicateError(t *testing.T) {
	assert.True(t, IsDuplicateError(fmt.Errorf("UNIQUE constraint failed: queues.name")))
	assert.True(t, IsDuplicateError(fmt.Errorf("Error 1062: Duplicate entry 'x'")))
	assert.False(t, IsDuplicateError(nil))
}
