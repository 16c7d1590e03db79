// Package validation contains the logic for validating
// request data.
//
// Field rules (Name, Email, Password, PhoneNumber) are ordered
// lists of pure checks that report the first one a value fails.
// Struct tags (like required fields) are enforced with the
// `validator` library, and both kinds of failure are extracted
// into a format the client can understand.
package validation
