package validation

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Kind is the category of a failed field rule.
type Kind string

const (
	KindMissing            Kind = "missing"
	KindInvalidNameFormat  Kind = "invalid_name_format"
	KindInvalidEmailFormat Kind = "invalid_email_format"
	KindWeakPassword       Kind = "weak_password"
	KindInvalidPhoneFormat Kind = "invalid_phone_format"
)

// Reason identifies the individual check inside a rule that failed.
type Reason string

const (
	ReasonRequired Reason = "required"

	ReasonTooShort      Reason = "too_short"
	ReasonNotAlphabetic Reason = "not_alphabetic"

	ReasonInvalidSyntax Reason = "invalid_syntax"

	ReasonMissingUppercase Reason = "missing_uppercase"
	ReasonMissingLowercase Reason = "missing_lowercase"
	ReasonMissingDigit     Reason = "missing_digit"
	ReasonMissingSpecial   Reason = "missing_special_character"

	ReasonInvalidLength     Reason = "invalid_length"
	ReasonInvalidCharacters Reason = "invalid_characters"
	ReasonNonDigitAfterPlus Reason = "non_digit_after_plus"
)

const (
	MinNameLength     = 2
	MinPasswordLength = 8
	MinPhoneLength    = 10
	MaxPhoneLength    = 15
)

// PasswordSpecialCharacters is the set a password must draw at least one character from.
const PasswordSpecialCharacters = `!@#$%^&*(),.?":{}|<>`

// RuleError is the typed result of a failed field rule.
type RuleError struct {
	Kind    Kind
	Reason  Reason
	Message string
}

func (e *RuleError) Error() string {
	return e.Message
}

// Is matches another *RuleError of the same Kind, and the same Reason when the target sets one.
//
//	errors.Is(err, &RuleError{Kind: KindWeakPassword})
func (e *RuleError) Is(target error) bool {
	t, ok := target.(*RuleError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Reason == "" || t.Reason == e.Reason)
}

// Rule validates a single field value. A nil error means the value is accepted.
type Rule func(value string) error

// check is one predicate in an ordered rule. The first failing check wins.
type check struct {
	reason  Reason
	message string
	ok      func(value string) bool
}

func runChecks(kind Kind, checks []check, value string) error {
	for _, c := range checks {
		if !c.ok(value) {
			return &RuleError{Kind: kind, Reason: c.reason, Message: c.message}
		}
	}
	return nil
}

var nameChecks = []check{
	{
		reason:  ReasonTooShort,
		message: "String should have at least 2 characters.",
		ok:      minLength(MinNameLength),
	},
	{
		reason:  ReasonNotAlphabetic,
		message: "The field must contain only letters.",
		ok:      allRunes(unicode.IsLetter),
	},
}

// Name accepts first and last names: at least two characters, letters only.
func Name(value string) error {
	return runChecks(KindInvalidNameFormat, nameChecks, value)
}

var emailChecks = []check{
	{
		reason:  ReasonInvalidSyntax,
		message: "The value is not a valid email address.",
		ok:      isEmail,
	},
	{
		reason:  ReasonInvalidSyntax,
		message: "The domain part of the email address must contain a period.",
		ok:      domainHasPeriod,
	},
}

// Email accepts syntactically valid addresses whose domain contains a ".".
func Email(value string) error {
	return runChecks(KindInvalidEmailFormat, emailChecks, value)
}

var passwordChecks = []check{
	{
		reason:  ReasonTooShort,
		message: "String should have at least 8 characters.",
		ok:      minLength(MinPasswordLength),
	},
	{
		reason:  ReasonMissingUppercase,
		message: "The password must contain at least one uppercase letter.",
		ok:      anyRune(isASCIIUpper),
	},
	{
		reason:  ReasonMissingLowercase,
		message: "The password must contain at least one lowercase letter.",
		ok:      anyRune(isASCIILower),
	},
	{
		reason:  ReasonMissingDigit,
		message: "The password must contain at least one digit.",
		ok:      anyRune(unicode.IsDigit),
	},
	{
		reason:  ReasonMissingSpecial,
		message: "The password must contain at least one special character.",
		ok:      anyRune(isPasswordSpecial),
	},
}

// Password reports the first unmet strength requirement, in order:
// length, uppercase, lowercase, digit, special character.
func Password(value string) error {
	return runChecks(KindWeakPassword, passwordChecks, value)
}

var phoneChecks = []check{
	{
		reason:  ReasonInvalidLength,
		message: "The length of the phone number must be between 10 and 15 characters.",
		ok: func(value string) bool {
			n := utf8.RuneCountInString(value)
			return n >= MinPhoneLength && n <= MaxPhoneLength
		},
	},
	{
		reason:  ReasonInvalidCharacters,
		message: "The phone number must consist of only digits or start with '+'.",
		ok: func(value string) bool {
			return strings.HasPrefix(value, "+") || allDigits(value)
		},
	},
	{
		reason:  ReasonNonDigitAfterPlus,
		message: "The phone number after '+' must contain only numbers.",
		ok: func(value string) bool {
			rest, hasPlus := strings.CutPrefix(value, "+")
			return !hasPlus || allDigits(rest)
		},
	},
}

// PhoneNumber accepts 10 to 15 characters that are all digits, or a "+" followed by digits.
func PhoneNumber(value string) error {
	return runChecks(KindInvalidPhoneFormat, phoneChecks, value)
}

func minLength(n int) func(string) bool {
	return func(value string) bool {
		return utf8.RuneCountInString(value) >= n
	}
}

// allRunes reports true for non-empty values whose every rune satisfies pred.
func allRunes(pred func(rune) bool) func(string) bool {
	return func(value string) bool {
		if value == "" {
			return false
		}
		for _, r := range value {
			if !pred(r) {
				return false
			}
		}
		return true
	}
}

func anyRune(pred func(rune) bool) func(string) bool {
	return func(value string) bool {
		return strings.IndexFunc(value, pred) >= 0
	}
}

var allDigits = allRunes(unicode.IsDigit)

func isASCIIUpper(r rune) bool { return r >= 'A' && r <= 'Z' }

func isASCIILower(r rune) bool { return r >= 'a' && r <= 'z' }

func isPasswordSpecial(r rune) bool {
	return strings.ContainsRune(PasswordSpecialCharacters, r)
}

func isEmail(value string) bool {
	return validate.Var(value, "email") == nil
}

func domainHasPeriod(value string) bool {
	at := strings.LastIndexByte(value, '@')
	if at < 0 {
		return false
	}
	return strings.Contains(value[at+1:], ".")
}
