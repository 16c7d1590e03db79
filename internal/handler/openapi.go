package handler

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/deppfellow/registration-validator/internal/server"
	"github.com/labstack/echo/v4"
)

// DocsPath is where the interactive API documentation lives.
const DocsPath = "/docs"

// OpenAPIHandler serves the OpenAPI UI for testing APIs.
//
// The UI is a static HTML file (openapi.html) that loads JS from a CDN and
// reads openapi.json from the static folder.
type OpenAPIHandler struct {
	Handler
}

// NewOpenAPIHandler constructs an OpenAPIHandler with access to shared dependencies.
func NewOpenAPIHandler(s *server.Server) *OpenAPIHandler {
	return &OpenAPIHandler{
		Handler: NewHandler(s),
	}
}

// ServeOpenAPIUI reads <static_dir>/openapi.html and serves it as an HTML response.
//
// Cache-Control is set to "no-cache" so clients do not reuse old docs UI.
func (h *OpenAPIHandler) ServeOpenAPIUI(c echo.Context) error {
	templatePath := filepath.Join(h.server.Config.Server.StaticDir, "openapi.html")
	templateBytes, err := os.ReadFile(templatePath)

	c.Response().Header().Set("Cache-Control", "no-cache")

	if err != nil {
		return fmt.Errorf("failed to read OpenAPI UI template: %w", err)
	}

	if err := c.HTML(http.StatusOK, string(templateBytes)); err != nil {
		return fmt.Errorf("failed to write HTML response: %w", err)
	}

	return nil
}

// RedirectToDocs sends the root path to the documentation page with 307.
func (h *OpenAPIHandler) RedirectToDocs(c echo.Context) error {
	return c.Redirect(http.StatusTemporaryRedirect, DocsPath)
}
