package middleware

import (
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"
)

// RequestLogger logs one line per request once the handler chain returns.
func RequestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				// Let the error handler write the response so the status is final.
				c.Error(err)
			}

			req := c.Request()
			status := c.Response().Status
			level := slog.LevelInfo
			switch {
			case status >= 500:
				level = slog.LevelError
			case status >= 400:
				level = slog.LevelWarn
			}

			logger.Log(req.Context(), level, "request completed",
				"trace_id", GetTraceID(c),
				"method", req.Method,
				"path", req.URL.Path,
				"route", c.Path(),
				"status", status,
				"bytes", c.Response().Size,
				"duration_ms", time.Since(start).Milliseconds(),
			)

			return nil
		}
	}
}
