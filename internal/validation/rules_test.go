package validation_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/registration-validator/internal/validation"
)

func requireRuleError(t *testing.T, err error, kind validation.Kind, reason validation.Reason) *validation.RuleError {
	t.Helper()

	var ruleErr *validation.RuleError
	require.True(t, errors.As(err, &ruleErr), "expected *RuleError, got %v", err)
	assert.Equal(t, kind, ruleErr.Kind)
	assert.Equal(t, reason, ruleErr.Reason)
	assert.NotEmpty(t, ruleErr.Message)

	return ruleErr
}

func TestName(t *testing.T) {
	valid := []string{"Jo", "John", "Zoë", "José", "Łukasz"}
	for _, v := range valid {
		assert.NoError(t, validation.Name(v), v)
	}

	tests := []struct {
		value  string
		reason validation.Reason
	}{
		{"", validation.ReasonTooShort},
		{"J", validation.ReasonTooShort},
		{"0", validation.ReasonTooShort},
		{"J0e", validation.ReasonNotAlphabetic},
		{"Mary Ann", validation.ReasonNotAlphabetic},
		{"O'Brien", validation.ReasonNotAlphabetic},
		{"Jean-Luc", validation.ReasonNotAlphabetic},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			requireRuleError(t, validation.Name(tt.value), validation.KindInvalidNameFormat, tt.reason)
		})
	}
}

func TestName_CountsCharactersNotBytes(t *testing.T) {
	// "É" is two bytes but one character.
	err := validation.Name("É")
	requireRuleError(t, err, validation.KindInvalidNameFormat, validation.ReasonTooShort)

	assert.NoError(t, validation.Name("Éa"))
}

func TestEmail(t *testing.T) {
	valid := []string{"john@example.com", "first.last+tag@sub.example.org"}
	for _, v := range valid {
		assert.NoError(t, validation.Email(v), v)
	}

	invalid := []string{"", "not-an-email", "john@", "@example.com", "john@localhost", "john doe@example.com"}
	for _, v := range invalid {
		t.Run(v, func(t *testing.T) {
			requireRuleError(t, validation.Email(v), validation.KindInvalidEmailFormat, validation.ReasonInvalidSyntax)
		})
	}
}

func TestPassword(t *testing.T) {
	assert.NoError(t, validation.Password("Secret1!"))
	assert.NoError(t, validation.Password("Abcdefg1<"))

	tests := []struct {
		name   string
		value  string
		reason validation.Reason
	}{
		{"too short", "Ab1!", validation.ReasonTooShort},
		{"too short wins over everything", "a", validation.ReasonTooShort},
		{"uppercase is checked first", "abcdefgh", validation.ReasonMissingUppercase},
		{"lowercase after uppercase", "ABCDEFG1!", validation.ReasonMissingLowercase},
		{"digit after letters", "Abcdefgh!", validation.ReasonMissingDigit},
		{"special last", "Abcdefg1", validation.ReasonMissingSpecial},
		{"non-listed symbol is not special", "Abcdefg1~", validation.ReasonMissingSpecial},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requireRuleError(t, validation.Password(tt.value), validation.KindWeakPassword, tt.reason)
		})
	}
}

func TestPassword_ExactlyMinimumLength(t *testing.T) {
	assert.NoError(t, validation.Password("Abcdef1!"))
}

func TestPhoneNumber(t *testing.T) {
	valid := []string{"1234567890", "123456789012345", "+123456789", "+123456789012", "+12345678901234"}
	for _, v := range valid {
		assert.NoError(t, validation.PhoneNumber(v), v)
	}

	tests := []struct {
		value  string
		reason validation.Reason
	}{
		{"", validation.ReasonInvalidLength},
		{"123", validation.ReasonInvalidLength},
		{"123456789", validation.ReasonInvalidLength},
		{"1234567890123456", validation.ReasonInvalidLength},
		{"123-456-7890", validation.ReasonInvalidCharacters},
		{"(123)4567890", validation.ReasonInvalidCharacters},
		{"12345+67890", validation.ReasonInvalidCharacters},
		{"+12345abcde", validation.ReasonNonDigitAfterPlus},
		{"+1234+56789", validation.ReasonNonDigitAfterPlus},
		{"++123456789", validation.ReasonNonDigitAfterPlus},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			requireRuleError(t, validation.PhoneNumber(tt.value), validation.KindInvalidPhoneFormat, tt.reason)
		})
	}
}

func TestRuleError_Is(t *testing.T) {
	err := validation.Password("abcdefgh")

	assert.True(t, errors.Is(err, &validation.RuleError{Kind: validation.KindWeakPassword}))
	assert.True(t, errors.Is(err, &validation.RuleError{
		Kind:   validation.KindWeakPassword,
		Reason: validation.ReasonMissingUppercase,
	}))
	assert.False(t, errors.Is(err, &validation.RuleError{
		Kind:   validation.KindWeakPassword,
		Reason: validation.ReasonMissingDigit,
	}))
	assert.False(t, errors.Is(err, &validation.RuleError{Kind: validation.KindInvalidNameFormat}))
}
