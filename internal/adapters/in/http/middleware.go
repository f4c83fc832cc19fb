package http

import (
	"log/slog"
	"strconv"
	"time"

	"fulfillment/internal/metrics"

	"github.com/labstack/echo/v4"
)

// Observability records request counters and latency per route pattern and
// logs every request at debug level.
func Observability(m *metrics.Metrics, logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			if err := next(c); err != nil {
				c.Error(err)
			}
			elapsed := time.Since(start)

			path := c.Path() // route pattern keeps label cardinality bounded
			if path == "" {
				path = "unmatched"
			}
			method := c.Request().Method
			status := c.Response().Status

			m.HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
			m.HTTPRequestDuration.WithLabelValues(method, path, strconv.Itoa(status)).Observe(elapsed.Seconds())

			logger.Debug("http request",
				"method", method, "path", path, "status", status, "duration", elapsed)
			return nil
		}
	}
}
