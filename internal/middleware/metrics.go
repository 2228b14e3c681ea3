package middleware

import (
	"strconv"
	"time"

	"erp-service/prometheus"

	"github.com/labstack/echo/v4"
)

// MetricsMiddleware records a count and a latency observation per request.
// Labels carry the route template (/api/customers/:id), not the raw URL, so
// path parameters do not blow up label cardinality.
func MetricsMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		status := c.Response().Status
		if he, ok := err.(*echo.HTTPError); ok {
			status = he.Code
		}

		route := c.Path()
		if route == "" {
			route = c.Request().URL.Path
		}

		method := c.Request().Method
		code := strconv.Itoa(status)
		prometheus.HttpRequestsTotal.WithLabelValues(method, route, code).Inc()
		prometheus.HttpRequestDuration.WithLabelValues(method, route, code).Observe(time.Since(start).Seconds())

		return err
	}
}
