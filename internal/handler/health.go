package handler

import (
	"context"
	"net/http"
	"slices"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/northwind/internal/middleware"
	"github.com/deppfellow/northwind/internal/server"
	"github.com/deppfellow/northwind/internal/service"
)

type pinger interface {
	Ping(ctx context.Context) error
}

type counter interface {
	Count(ctx context.Context) (int64, error)
}

// HealthHandler serves GET /status for load balancers and monitors.
type HealthHandler struct {
	Handler
	db     pinger
	tables map[string]counter
}

func NewHealthHandler(s *server.Server, services *service.Services) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
		db:      s.DB,
		tables: map[string]counter{
			"customers": services.Customers,
			"shippers":  services.Shippers,
			"products":  services.Products,
		},
	}
}

// CheckHealth runs the configured checks within the configured timeout.
// It answers 200 when all pass and 503 otherwise.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()
	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	cfg := h.server.Config.Observability.HealthChecks
	checks := map[string]any{}
	healthy := true

	ctx, cancel := context.WithTimeout(c.Request().Context(), cfg.Timeout)
	defer cancel()

	if slices.Contains(cfg.Checks, "database") {
		dbStart := time.Now()
		if err := h.db.Ping(ctx); err != nil {
			healthy = false
			checks["database"] = map[string]any{
				"status":        "unhealthy",
				"response_time": time.Since(dbStart).String(),
				"error":         err.Error(),
			}
			logger.Error().Err(err).Dur("response_time", time.Since(dbStart)).Msg("database health check failed")
			h.recordFailure("database", err)
		} else {
			checks["database"] = map[string]any{
				"status":        "healthy",
				"response_time": time.Since(dbStart).String(),
			}
		}
	}

	if slices.Contains(cfg.Checks, "tables") {
		rows := map[string]int64{}
		status := "healthy"
		for name, table := range h.tables {
			n, err := table.Count(ctx)
			if err != nil {
				healthy = false
				status = "unhealthy"
				logger.Error().Err(err).Str("table", name).Msg("table health check failed")
				h.recordFailure("table_"+name, err)
				continue
			}
			rows[name] = n
		}
		checks["tables"] = map[string]any{
			"status": status,
			"rows":   rows,
		}
	}

	response := map[string]any{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
		"checks":      checks,
	}

	if !healthy {
		response["status"] = "unhealthy"
		logger.Warn().Dur("total_duration", time.Since(start)).Msg("health check failed")
		return c.JSON(http.StatusServiceUnavailable, response)
	}

	logger.Debug().Dur("total_duration", time.Since(start)).Msg("health check passed")
	return c.JSON(http.StatusOK, response)
}

func (h *HealthHandler) recordFailure(check string, err error) {
	if h.server.LoggerService == nil {
		return
	}
	if app := h.server.LoggerService.GetApplication(); app != nil {
		app.RecordCustomEvent("HealthCheckError", map[string]any{
			"check_type":    check,
			"operation":     "health_check",
			"error_message": err.Error(),
		})
	}
}
