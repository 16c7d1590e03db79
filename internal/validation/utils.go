package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/deppfellow/registration-validator/internal/errs"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Validatable is implemented by request payload types that know how to validate themselves.
//
// Typical pattern:
//   - Define a request struct with json + validator tags (`validate:"required"`)
//   - Implement Validate() error that calls Fields(...) with a Rule per field
//   - Return CustomValidationErrors (or validator.ValidationErrors)
type Validatable interface {
	Validate() error
}

// CustomValidationError represents a single validation issue for a specific field.
type CustomValidationError struct {
	Field   string
	Message string
	Kind    Kind
	Reason  Reason
}

// CustomValidationErrors is a slice of custom validation errors that satisfies error.
type CustomValidationErrors []CustomValidationError

func (c CustomValidationErrors) Error() string {
	return "Validation failed"
}

func (c CustomValidationErrors) find(field string) (CustomValidationError, bool) {
	for _, e := range c {
		if e.Field == field {
			return e, true
		}
	}
	return CustomValidationError{}, false
}

// Location is where a body field lives in the request, e.g. ["body", "email"].
func Location(field string) []string {
	return []string{"body", field}
}

// BindAndValidate binds request data into payload and validates it.
//
// Flow:
//  1. c.Bind(payload) populates the request struct from the JSON body.
//     Keys must match the json tags exactly; "EMAIL" does not fill "email".
//  2. payload.Validate() applies validation rules.
//  3. Either failure becomes a 422 *errs.HTTPError with field-level errors.
//
// NOTE: c.Bind expects a pointer to a struct.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := dropInexactKeys(c, payload); err != nil {
		return bindError(err)
	}

	if err := c.Bind(payload); err != nil {
		return bindError(err)
	}

	if err := payload.Validate(); err != nil {
		return errs.ValidationError(extractValidationError(err))
	}

	return nil
}

// dropInexactKeys removes top-level JSON keys that match one of payload's json
// tags only case-insensitively, so encoding/json cannot fold them into a field.
//
// Bodies that are not a JSON object are left alone for c.Bind to reject.
func dropInexactKeys(c echo.Context, payload any) error {
	req := c.Request()
	if req.Body == nil || req.ContentLength == 0 {
		return nil
	}
	if mediaType, _, _ := strings.Cut(req.Header.Get(echo.HeaderContentType), ";"); strings.TrimSpace(mediaType) != echo.MIMEApplicationJSON {
		return nil
	}

	body, err := io.ReadAll(req.Body)
	if err != nil {
		return fmt.Errorf("read request body: %w", err)
	}
	_ = req.Body.Close()

	var object map[string]json.RawMessage
	if json.Unmarshal(body, &object) == nil {
		tags := jsonTags(payload)
		dropped := false
		for key := range object {
			if tags[key] {
				continue
			}
			for tag := range tags {
				if strings.EqualFold(key, tag) {
					delete(object, key)
					dropped = true
					break
				}
			}
		}
		if dropped {
			if body, err = json.Marshal(object); err != nil {
				return fmt.Errorf("re-encode request body: %w", err)
			}
		}
	}

	req.Body = io.NopCloser(bytes.NewReader(body))
	req.ContentLength = int64(len(body))

	return nil
}

// jsonTags lists the json key names of the struct payload points to.
func jsonTags(payload any) map[string]bool {
	t := reflect.TypeOf(payload)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	tags := make(map[string]bool)
	if t == nil || t.Kind() != reflect.Struct {
		return tags
	}

	for i := 0; i < t.NumField(); i++ {
		name := strings.SplitN(t.Field(i).Tag.Get("json"), ",", 2)[0]
		if name != "" && name != "-" {
			tags[name] = true
		}
	}

	return tags
}

// bindError turns a body decoding failure into the same 422 shape validation uses.
func bindError(err error) *errs.HTTPError {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		kind := typeErr.Type.Kind()
		return errs.ValidationError([]errs.FieldError{{
			Field:    typeErr.Field,
			Location: Location(typeErr.Field),
			Error:    fmt.Sprintf("Input should be a valid %s", kind),
			Type:     kind.String() + "_type",
		}})
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return errs.NewUnprocessableEntityError("Invalid JSON body", true, nil, []errs.FieldError{{
			Field:    "body",
			Location: []string{"body", fmt.Sprint(syntaxErr.Offset)},
			Error:    "JSON decode error",
			Type:     "json_invalid",
		}})
	}

	return errs.NewUnprocessableEntityError("Invalid request body", true, nil, nil)
}

func extractValidationError(err error) []errs.FieldError {
	var fieldErrors []errs.FieldError

	var customValidationErrors CustomValidationErrors
	if errors.As(err, &customValidationErrors) {
		for _, err := range customValidationErrors {
			fieldErrors = append(fieldErrors, errs.FieldError{
				Field:    err.Field,
				Location: Location(err.Field),
				Error:    err.Message,
				Type:     string(err.Kind),
				Reason:   string(err.Reason),
			})
		}
		return fieldErrors
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, fe := range validationErrors {
			custom := fromFieldError(fe)
			fieldErrors = append(fieldErrors, errs.FieldError{
				Field:    custom.Field,
				Location: Location(custom.Field),
				Error:    custom.Message,
				Type:     string(custom.Kind),
				Reason:   string(custom.Reason),
			})
		}
		return fieldErrors
	}

	// Anything else is reported against the whole body.
	return []errs.FieldError{{
		Field:    "body",
		Location: []string{"body"},
		Error:    err.Error(),
		Type:     "value_error",
	}}
}

// tagMessage converts a validator tag failure into a user-friendly message.
func tagMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "Field required"

	case "min":
		// - for strings: minimum length
		// - for numbers: minimum value
		if err.Type().Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", err.Param())
		}
		return fmt.Sprintf("must be at least %s", err.Param())

	case "max":
		if err.Type().Kind() == reflect.String {
			return fmt.Sprintf("must not exceed %s characters", err.Param())
		}
		return fmt.Sprintf("must not exceed %s", err.Param())

	case "oneof":
		return fmt.Sprintf("must be one of: %s", err.Param())

	case "email":
		return "must be a valid email address"

	case "e164":
		return "must be a valid phone number with country code"

	default:
		// Includes tag name and param (if any) to help debugging.
		if err.Param() != "" {
			return fmt.Sprintf("%s: %s:%s", err.Field(), err.Tag(), err.Param())
		}
		return fmt.Sprintf("%s: %s", err.Field(), err.Tag())
	}
}
