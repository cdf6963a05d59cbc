package router

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/northwind/internal/handler"
)

// registerSystemRoutes registers endpoints outside the API surface.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/status", h.Health.CheckHealth)
}
