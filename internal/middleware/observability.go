package middleware

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/mentora-labs/mentora-go-api/internal/observability"
)

// Observability attaches Prometheus metrics and structured latency/error
// logging for the analytics rollup endpoints, which carry the heaviest
// aggregation work.
func Observability(logger zerolog.Logger) fiber.Handler {
	observability.RegisterMetrics()

	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		duration := time.Since(start)

		if isAnalyticsPath(c.Path()) {
			route := routeTemplate(c)
			method := c.Method()
			status := c.Response().StatusCode()
			statusLabel := fmt.Sprintf("%d", status)

			observability.AnalyticsRequests().WithLabelValues(method, route, statusLabel).Inc()
			observability.AnalyticsLatency().WithLabelValues(method, route).Observe(duration.Seconds())
			if status >= fiber.StatusBadRequest {
				observability.AnalyticsErrors().WithLabelValues(method, route, statusLabel).Inc()
			}

			requestLogger := logger.With().
				Str("correlation_id", GetCorrelationID(c)).
				Str("route", route).
				Str("method", method).
				Int("status", status).
				Float64("latency_ms", float64(duration)/float64(time.Millisecond)).
				Logger()

			switch {
			case status >= fiber.StatusInternalServerError:
				requestLogger.Error().Msg("analytics request failed")
			case status >= fiber.StatusBadRequest:
				requestLogger.Warn().Msg("analytics request completed with client error")
			default:
				requestLogger.Info().Msg("analytics request completed")
			}
		}

		return err
	}
}

func isAnalyticsPath(path string) bool {
	return strings.HasPrefix(path, "/analytics") ||
		strings.HasPrefix(path, "/department") ||
		strings.HasPrefix(path, "/recommendation") ||
		strings.HasPrefix(path, "/api/analytics")
}

func routeTemplate(c *fiber.Ctx) string {
	if c.Route() != nil && c.Route().Path != "" {
		return c.Route().Path
	}
	return c.Path()
}
