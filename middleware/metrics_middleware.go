package middleware

import (
	"strconv"
	"time"

	"qinsight/utils/metrics"

	"github.com/labstack/echo/v4"
)

func MetricsMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			if req.URL.Path == "/metrics" {
				return next(c)
			}

			start := time.Now()
			err := next(c)
			duration := time.Since(start)

			// Use the route pattern so path parameters don't explode label cardinality
			path := c.Path()
			if path == "" {
				path = req.URL.Path
			}

			status := c.Response().Status
			if err != nil {
				if he, ok := err.(*echo.HTTPError); ok {
					status = he.Code
				}
			}

			metrics.HTTPRequestsTotal.WithLabelValues(req.Method, path, strconv.Itoa(status)).Inc()
			metrics.HTTPRequestDuration.WithLabelValues(req.Method, path).Observe(duration.Seconds())

			return err
		}
	}
}
