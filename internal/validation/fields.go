package validation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is shared by every payload. *validator.Validate caches struct
// metadata and is safe for concurrent use.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report JSON keys ("first_name") instead of Go field names ("FirstName").
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// Field binds a JSON key and its value to the rule that validates it.
//
// A nil Value means the key was absent (or null) in the request; its
// presence is left to the `required` tag and the Rule is not run.
type Field struct {
	Name  string
	Value *string
	Rule  Rule
}

// Fields validates payload in two passes and collects every failing field:
//
//  1. struct tags (`validate:"required"`) via go-playground/validator
//  2. each Field's Rule, for present fields that passed their tags
//
// An empty string is a present value: it is judged by the field's Rule,
// not reported as missing.
//
// Each field reports at most one error, its first failure. Errors are ordered as
// fields are declared, followed by tag failures of fields without a Rule.
// It returns nil or CustomValidationErrors.
func Fields(payload any, fields ...Field) error {
	var tagErrors CustomValidationErrors

	if err := validate.Struct(payload); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return err
		}
		for _, fe := range validationErrors {
			tagErrors = append(tagErrors, fromFieldError(fe))
		}
	}

	var result CustomValidationErrors
	declared := make(map[string]bool, len(fields))

	for _, f := range fields {
		declared[f.Name] = true

		if tagErr, ok := tagErrors.find(f.Name); ok {
			result = append(result, tagErr)
			continue
		}

		if f.Rule == nil || f.Value == nil {
			continue
		}

		if err := f.Rule(*f.Value); err != nil {
			result = append(result, fromRuleError(f.Name, err))
		}
	}

	for _, tagErr := range tagErrors {
		if !declared[tagErr.Field] {
			result = append(result, tagErr)
		}
	}

	if len(result) == 0 {
		return nil
	}

	return result
}

func fromRuleError(field string, err error) CustomValidationError {
	var ruleErr *RuleError
	if errors.As(err, &ruleErr) {
		return CustomValidationError{
			Field:   field,
			Message: ruleErr.Message,
			Kind:    ruleErr.Kind,
			Reason:  ruleErr.Reason,
		}
	}

	return CustomValidationError{
		Field:   field,
		Message: err.Error(),
	}
}

func fromFieldError(fe validator.FieldError) CustomValidationError {
	kind := Kind(fe.Tag())
	var reason Reason
	if fe.Tag() == "required" {
		kind = KindMissing
		reason = ReasonRequired
	}

	return CustomValidationError{
		Field:   fe.Field(),
		Message: tagMessage(fe),
		Kind:    kind,
		Reason:  reason,
	}
}
