// Package user holds the registration request and response payloads.
package user

import (
	"github.com/deppfellow/registration-validator/internal/validation"
)

// RegisteredMessage is the fixed success message. The spelling is part of the wire format.
const RegisteredMessage = "User registred"

// RegisterUserPayload is the body of POST /register/.
//
// Fields are pointers so an absent key (nil) can be told apart from an
// empty string: only the former is missing, "" is checked by the field rule.
type RegisterUserPayload struct {
	FirstName   *string `json:"first_name" validate:"required"`
	LastName    *string `json:"last_name" validate:"required"`
	Email       *string `json:"email" validate:"required"`
	Password    *string `json:"password" validate:"required"`
	PhoneNumber *string `json:"phone_number" validate:"required"`
}

// Validate checks every field independently and reports all failing fields.
func (p *RegisterUserPayload) Validate() error {
	return validation.Fields(p,
		validation.Field{Name: "first_name", Value: p.FirstName, Rule: validation.Name},
		validation.Field{Name: "last_name", Value: p.LastName, Rule: validation.Name},
		validation.Field{Name: "email", Value: p.Email, Rule: validation.Email},
		validation.Field{Name: "password", Value: p.Password, Rule: validation.Password},
		validation.Field{Name: "phone_number", Value: p.PhoneNumber, Rule: validation.PhoneNumber},
	)
}

// RegisteredUser is the accepted input as echoed back to the client.
//
// Values are returned unchanged, password included.
type RegisteredUser struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	PhoneNumber string `json:"phone_number"`
}

// RegisterUserResponse is the 201 body of POST /register/.
type RegisterUserResponse struct {
	Message  string         `json:"message"`
	UserData RegisteredUser `json:"user_data"`
}

// NewRegisterUserResponse echoes a validated payload back to the client.
func NewRegisterUserResponse(payload *RegisterUserPayload) *RegisterUserResponse {
	return &RegisterUserResponse{
		Message: RegisteredMessage,
		UserData: RegisteredUser{
			FirstName:   deref(payload.FirstName),
			LastName:    deref(payload.LastName),
			Email:       deref(payload.Email),
			Password:    deref(payload.Password),
			PhoneNumber: deref(payload.PhoneNumber),
		},
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
