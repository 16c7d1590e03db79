package errs_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/deppfellow/registration-validator/internal/errs"
)

func TestValidationError(t *testing.T) {
	err := errs.ValidationError([]errs.FieldError{{Field: "email", Error: "bad"}})

	assert.Equal(t, http.StatusUnprocessableEntity, err.Status)
	assert.Equal(t, "UNPROCESSABLE_ENTITY", err.Code)
	assert.Equal(t, "Validation failed", err.Error())
	assert.True(t, err.Override)
	assert.Len(t, err.Errors, 1)
}

func TestNewUnprocessableEntityError_CustomCode(t *testing.T) {
	code := "BODY_INVALID"
	err := errs.NewUnprocessableEntityError("Invalid request body", false, &code, nil)

	assert.Equal(t, "BODY_INVALID", err.Code)
	assert.Nil(t, err.Errors)
}

func TestNewTooManyRequestsError(t *testing.T) {
	err := errs.NewTooManyRequestsError("Too many requests", "3")

	assert.Equal(t, http.StatusTooManyRequests, err.Status)
	assert.Equal(t, "TOO_MANY_REQUESTS", err.Code)
	if assert.NotNil(t, err.Action) {
		assert.Equal(t, errs.ActionTypeRetry, err.Action.Type)
		assert.Equal(t, "3", err.Action.Value)
	}

	assert.Nil(t, errs.NewTooManyRequestsError("Too many requests", "").Action)
}

func TestNewInternalServerError_HidesDetails(t *testing.T) {
	err := errs.NewInternalServerError()

	assert.Equal(t, http.StatusInternalServerError, err.Status)
	assert.Equal(t, "Internal Server Error", err.Message)
	assert.False(t, err.Override)
}

func TestHTTPError_IsAndAs(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", errs.NewNotFoundError("Route not found", false, nil))

	assert.True(t, errors.Is(wrapped, &errs.HTTPError{}))

	var httpErr *errs.HTTPError
	if assert.True(t, errors.As(wrapped, &httpErr)) {
		assert.Equal(t, "NOT_FOUND", httpErr.Code)
	}
}

func TestHTTPError_WithMessage(t *testing.T) {
	orig := errs.ValidationError(nil)
	copied := orig.WithMessage("Check the highlighted fields")

	assert.Equal(t, "Check the highlighted fields", copied.Message)
	assert.Equal(t, "Validation failed", orig.Message)
	assert.Equal(t, orig.Status, copied.Status)
}

func TestMakeUpperCaseWithUnderscores(t *testing.T) {
	assert.Equal(t, "UNPROCESSABLE_ENTITY", errs.MakeUpperCaseWithUnderscores("Unprocessable Entity"))
	assert.Equal(t, "NOT_FOUND", errs.MakeUpperCaseWithUnderscores("Not Found"))
}
