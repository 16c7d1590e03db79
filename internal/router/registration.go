package router

import (
	"github.com/deppfellow/registration-validator/internal/handler"
	"github.com/labstack/echo/v4"
)

func registerRegistrationRoutes(r *echo.Echo, h *handler.Handlers) {
	r.POST("/register/", h.Registration.RegisterUser())

	// Clients posting without the trailing slash are redirected, not rejected.
	r.POST("/register", h.Registration.RedirectToCanonicalPath)
}
