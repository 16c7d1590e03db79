package router

import (
	"github.com/deppfellow/registration-validator/internal/handler"
	"github.com/deppfellow/registration-validator/internal/server"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes registers endpoints that are not part of business logic:
// health, docs and the static assets the docs page loads.
func registerSystemRoutes(r *echo.Echo, s *server.Server, h *handler.Handlers) {
	r.GET("/", h.OpenAPI.RedirectToDocs)

	r.GET("/status", h.Health.CheckHealth)

	// openapi.json and anything else the docs page needs.
	r.Static("/static", s.Config.Server.StaticDir)

	r.GET(handler.DocsPath, h.OpenAPI.ServeOpenAPIUI)
}
