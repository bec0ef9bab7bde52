// Package middleware holds echo middleware shared by the socket server.
package middleware

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"
)

// CharmLog logs each request through the global charm logger. Requests are
// logged at debug level; server errors at error level.
func CharmLog() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			if err := next(c); err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()
			fields := []any{
				"method", req.Method,
				"path", req.URL.Path,
				"status", res.Status,
				"took", time.Since(start),
			}
			if res.Status >= 500 {
				log.Error("ipc request", fields...)
			} else {
				log.Debug("ipc request", fields...)
			}
			return nil
		}
	}
}
