package service

import (
	"github.com/deppfellow/registration-validator/internal/server"
)

// Services groups the business layer so handlers receive a single dependency.
type Services struct {
	Registration *RegistrationService
}

func NewServices(s *server.Server) (*Services, error) {
	return &Services{
		Registration: NewRegistrationService(s),
	}, nil
}
