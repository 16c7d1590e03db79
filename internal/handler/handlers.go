package handler

import (
	"github.com/deppfellow/registration-validator/internal/server"
	"github.com/deppfellow/registration-validator/internal/service"
)

// Handlers groups all HTTP handlers so router setup receives one object.
type Handlers struct {
	Health       *HealthHandler       // Health serves the status endpoint.
	OpenAPI      *OpenAPIHandler      // OpenAPI serves API documentation (/docs).
	Registration *RegistrationHandler // Registration validates and echoes sign-up input.
}

// NewHandlers constructs the handler container.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:       NewHealthHandler(s),
		OpenAPI:      NewOpenAPIHandler(s),
		Registration: NewRegistrationHandler(s, services.Registration),
	}
}
