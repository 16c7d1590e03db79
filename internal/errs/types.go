package errs

import (
	"net/http"
)

// NewUnprocessableEntityError creates a 422 Unprocessable Entity HTTPError.
//
// This is the shape every request validation failure takes:
//   - code: optional custom code string (if nil, defaults to "UNPROCESSABLE_ENTITY")
//   - errors: one entry per failing field
func NewUnprocessableEntityError(message string, override bool, code *string, errors []FieldError) *HTTPError {
	formattedCode := MakeUpperCaseWithUnderscores(http.StatusText(http.StatusUnprocessableEntity))

	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Code:     formattedCode,
		Message:  message,
		Status:   http.StatusUnprocessableEntity,
		Override: override,
		Errors:   errors,
	}
}

// NewNotFoundError creates a 404 Not Found HTTPError.
//
// Supports optional custom code override similar to NewUnprocessableEntityError.
func NewNotFoundError(message string, override bool, code *string) *HTTPError {
	formattedCode := MakeUpperCaseWithUnderscores(http.StatusText(http.StatusNotFound))

	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Code:     formattedCode,
		Message:  message,
		Status:   http.StatusNotFound,
		Override: override,
	}
}

// NewTooManyRequestsError creates a 429 Too Many Requests HTTPError.
//
// retryAfter is surfaced to the client as an Action so a UI can back off.
func NewTooManyRequestsError(message string, retryAfter string) *HTTPError {
	var action *Action
	if retryAfter != "" {
		action = &Action{
			Type:    ActionTypeRetry,
			Message: "Retry the request later",
			Value:   retryAfter,
		}
	}

	return &HTTPError{
		Code:     MakeUpperCaseWithUnderscores(http.StatusText(http.StatusTooManyRequests)),
		Message:  message,
		Status:   http.StatusTooManyRequests,
		Override: true,
		Action:   action,
	}
}

// NewInternalServerError creates a 500 Internal Server Error HTTPError.
//
// The message is the generic status text, never the underlying error.
func NewInternalServerError() *HTTPError {
	return &HTTPError{
		Code:     MakeUpperCaseWithUnderscores(http.StatusText(http.StatusInternalServerError)),
		Message:  http.StatusText(http.StatusInternalServerError),
		Status:   http.StatusInternalServerError,
		Override: false,
	}
}

// ValidationError wraps field errors into the standard 422 response.
//
// This is a helper so callers can do:
//
//	return errs.ValidationError(fieldErrors)
func ValidationError(fieldErrors []FieldError) *HTTPError {
	return NewUnprocessableEntityError("Validation failed", true, nil, fieldErrors)
}
