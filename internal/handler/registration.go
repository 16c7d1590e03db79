package handler

import (
	"net/http"

	"github.com/deppfellow/registration-validator/internal/model/user"
	"github.com/deppfellow/registration-validator/internal/server"
	"github.com/deppfellow/registration-validator/internal/service"
	"github.com/labstack/echo/v4"
)

// RegistrationHandler serves POST /register/.
type RegistrationHandler struct {
	Handler
	registrationService *service.RegistrationService
}

func NewRegistrationHandler(s *server.Server, registrationService *service.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{
		Handler:             NewHandler(s),
		registrationService: registrationService,
	}
}

// Register echoes a validated payload back with 201 Created.
//
// Invalid payloads never reach this method: the Handle pipeline answers them with
// 422 and one error per failing field.
func (h *RegistrationHandler) Register(c echo.Context, payload *user.RegisterUserPayload) (*user.RegisterUserResponse, error) {
	return h.registrationService.Register(c.Request().Context(), payload)
}

// RegisterUser is the route-ready form of Register.
func (h *RegistrationHandler) RegisterUser() echo.HandlerFunc {
	return Handle(h.Handler, h.Register, http.StatusCreated, &user.RegisterUserPayload{})
}

// RedirectToCanonicalPath sends POST /register to /register/.
//
// 307 keeps the method and body on the retried request.
func (h *RegistrationHandler) RedirectToCanonicalPath(c echo.Context) error {
	target := "/register/"
	if query := c.QueryString(); query != "" {
		target += "?" + query
	}
	return c.Redirect(http.StatusTemporaryRedirect, target)
}
