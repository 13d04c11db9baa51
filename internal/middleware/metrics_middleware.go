package middleware

import (
	"strconv"
	"time"

	"wareFlow/pkg/metrics"

	"github.com/labstack/echo/v4"
)

// Metrics records request counts and latency per route. The registered route
// path is used as the label, not the raw URL, to keep cardinality bounded.
func Metrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			method := c.Request().Method
			path := c.Path()
			status := c.Response().Status
			if err != nil {
				if httpErr, ok := err.(*echo.HTTPError); ok {
					status = httpErr.Code
				}
			}

			metrics.HTTPRequestLatency.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
			metrics.HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()

			return err
		}
	}
}
