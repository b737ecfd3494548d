package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Unwrap(t *testing.T) {
	err := NewValidationError("Description is required")

	assert.True(t, errors.Is(err, ErrValidation))
	assert.Equal(t, "Description is required: validation error", err.Error())

	wrapped := fmt.Errorf("create transaction: %w", err)
	assert.True(t, errors.Is(wrapped, ErrValidation))
	assert.Equal(t, "Description is required", MessageOf(wrapped))
}

func TestNewNotFoundError(t *testing.T) {
	err := NewNotFoundError("account", "1001")

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "NOT_FOUND", err.Code)
	assert.Equal(t, "account 1001 not found", MessageOf(err))
}

func TestMessageOf_PlainError(t *testing.T) {
	assert.Equal(t, "resource not found", MessageOf(ErrNotFound))
}

func TestAppError_NilCause(t *testing.T) {
	err := &AppError{Code: "X", Message: "only message"}
	assert.Equal(t, "only message", err.Error())
	assert.Nil(t, err.Unwrap())
}

func TestNewValidationErrors(t *testing.T) {
	msgs := []string{"Description is required", "Date is required"}
	err := NewValidationErrors(msgs)
	msgs[0] = "mutated"

	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "Description is required, Date is required", MessageOf(err))
	assert.Equal(t, []string{"Description is required", "Date is required"}, DetailsOf(fmt.Errorf("wrap: %w", err)))
	assert.Nil(t, DetailsOf(ErrNotFound))
}
