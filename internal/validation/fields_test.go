package validation_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/registration-validator/internal/errs"
	"github.com/deppfellow/registration-validator/internal/validation"
)

type signup struct {
	Name     *string `json:"name" validate:"required"`
	Password *string `json:"password" validate:"required"`
	Nickname *string `json:"nickname" validate:"required"`
}

func str(s string) *string { return &s }

func (s *signup) Validate() error {
	return validation.Fields(s,
		validation.Field{Name: "name", Value: s.Name, Rule: validation.Name},
		validation.Field{Name: "password", Value: s.Password, Rule: validation.Password},
	)
}

func TestFields_Valid(t *testing.T) {
	s := &signup{Name: str("Jane"), Password: str("Secret1!"), Nickname: str("jj")}
	assert.NoError(t, s.Validate())
}

func TestFields_CollectsEveryFailingField(t *testing.T) {
	s := &signup{Name: str("J0"), Password: str("abcdefgh"), Nickname: str("jj")}

	err := s.Validate()
	require.Error(t, err)

	var fieldErrs validation.CustomValidationErrors
	require.True(t, errors.As(err, &fieldErrs))
	require.Len(t, fieldErrs, 2)

	assert.Equal(t, "name", fieldErrs[0].Field)
	assert.Equal(t, validation.KindInvalidNameFormat, fieldErrs[0].Kind)
	assert.Equal(t, validation.ReasonNotAlphabetic, fieldErrs[0].Reason)

	assert.Equal(t, "password", fieldErrs[1].Field)
	assert.Equal(t, validation.KindWeakPassword, fieldErrs[1].Kind)
	assert.Equal(t, validation.ReasonMissingUppercase, fieldErrs[1].Reason)
}

func TestFields_MissingFieldSkipsItsRule(t *testing.T) {
	s := &signup{Password: str("Secret1!")}

	err := s.Validate()
	require.Error(t, err)

	var fieldErrs validation.CustomValidationErrors
	require.True(t, errors.As(err, &fieldErrs))
	require.Len(t, fieldErrs, 2)

	// Declared fields come first, then tag failures of fields without a rule.
	assert.Equal(t, "name", fieldErrs[0].Field)
	assert.Equal(t, validation.KindMissing, fieldErrs[0].Kind)
	assert.Equal(t, validation.ReasonRequired, fieldErrs[0].Reason)

	assert.Equal(t, "nickname", fieldErrs[1].Field)
	assert.Equal(t, validation.KindMissing, fieldErrs[1].Kind)
}

func TestFields_EmptyStringRunsRule(t *testing.T) {
	s := &signup{Name: str(""), Password: str("Secret1!"), Nickname: str("")}

	err := s.Validate()
	require.Error(t, err)

	var fieldErrs validation.CustomValidationErrors
	require.True(t, errors.As(err, &fieldErrs))
	require.Len(t, fieldErrs, 1)

	// Nickname has no rule, so its empty value is accepted as present.
	assert.Equal(t, "name", fieldErrs[0].Field)
	assert.Equal(t, validation.KindInvalidNameFormat, fieldErrs[0].Kind)
	assert.Equal(t, validation.ReasonTooShort, fieldErrs[0].Reason)
}

func newJSONContext(body string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return e.NewContext(req, httptest.NewRecorder())
}

func requireHTTPError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr), "expected *errs.HTTPError, got %v", err)
	return httpErr
}

func TestBindAndValidate_Valid(t *testing.T) {
	c := newJSONContext(`{"name":"Jane","password":"Secret1!","nickname":"jj"}`)

	s := &signup{}
	require.NoError(t, validation.BindAndValidate(c, s))
	require.NotNil(t, s.Name)
	assert.Equal(t, "Jane", *s.Name)
}

func TestBindAndValidate_ValidationFailure(t *testing.T) {
	c := newJSONContext(`{"name":"Jane","password":"short","nickname":"jj"}`)

	httpErr := requireHTTPError(t, validation.BindAndValidate(c, &signup{}))
	assert.Equal(t, http.StatusUnprocessableEntity, httpErr.Status)
	require.Len(t, httpErr.Errors, 1)

	fe := httpErr.Errors[0]
	assert.Equal(t, "password", fe.Field)
	assert.Equal(t, []string{"body", "password"}, fe.Location)
	assert.Equal(t, string(validation.KindWeakPassword), fe.Type)
	assert.Equal(t, string(validation.ReasonTooShort), fe.Reason)
	assert.Equal(t, "String should have at least 8 characters.", fe.Error)
}

func TestBindAndValidate_WrongType(t *testing.T) {
	c := newJSONContext(`{"name":123,"password":"Secret1!","nickname":"jj"}`)

	httpErr := requireHTTPError(t, validation.BindAndValidate(c, &signup{}))
	assert.Equal(t, http.StatusUnprocessableEntity, httpErr.Status)
	require.Len(t, httpErr.Errors, 1)
	assert.Equal(t, "name", httpErr.Errors[0].Field)
	assert.Equal(t, "string_type", httpErr.Errors[0].Type)
}

func TestBindAndValidate_MalformedJSON(t *testing.T) {
	c := newJSONContext(`{invalid`)

	httpErr := requireHTTPError(t, validation.BindAndValidate(c, &signup{}))
	assert.Equal(t, http.StatusUnprocessableEntity, httpErr.Status)
	assert.Equal(t, "Invalid JSON body", httpErr.Message)
	require.Len(t, httpErr.Errors, 1)
	assert.Equal(t, "json_invalid", httpErr.Errors[0].Type)
}

func TestBindAndValidate_KeysMustMatchExactly(t *testing.T) {
	c := newJSONContext(`{"NAME":"Jane","password":"Secret1!","Nickname":"jj"}`)

	httpErr := requireHTTPError(t, validation.BindAndValidate(c, &signup{}))
	require.Len(t, httpErr.Errors, 2)
	assert.Equal(t, "name", httpErr.Errors[0].Field)
	assert.Equal(t, string(validation.KindMissing), httpErr.Errors[0].Type)
	assert.Equal(t, "nickname", httpErr.Errors[1].Field)
}

func TestBindAndValidate_ExactKeyWinsOverFoldedDuplicate(t *testing.T) {
	c := newJSONContext(`{"name":"Jane","NAME":"J0","password":"Secret1!","nickname":"jj"}`)

	s := &signup{}
	require.NoError(t, validation.BindAndValidate(c, s))
	assert.Equal(t, "Jane", *s.Name)
}
