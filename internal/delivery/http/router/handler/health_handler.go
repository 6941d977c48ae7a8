package handler

import (
	"net/http"

	"appcenar/internal/delivery/http/middleware"
	"appcenar/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// HealthCheck reports service liveness.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Root sends an authenticated caller to its role home. Anonymous callers get
// the unauthorized envelope, there is no page to redirect them to.
func Root(c echo.Context) error {
	if role, ok := middleware.GetRole(c); ok {
		return c.Redirect(http.StatusFound, role.HomePath())
	}

	return response.Unauthorized(c, "INVALID_TOKEN", "Debes iniciar sesión")
}
