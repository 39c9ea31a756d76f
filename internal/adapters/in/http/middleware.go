package http

import (
	"log/slog"
	"net/http"
	"time"

	"freight/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// AppUserHeader carries the caller's AppUser id. Authentication happens
// upstream of this service.
const AppUserHeader = "X-App-User-ID"

const appUserKey = "app_user_id"

func requireAppUser(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		raw := c.Request().Header.Get(AppUserHeader)
		if raw == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "missing "+AppUserHeader+" header")
		}
		id, err := kernel.UUIDFromString(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "malformed "+AppUserHeader+" header")
		}
		c.Set(appUserKey, id)
		return next(c)
	}
}

func appUser(c echo.Context) kernel.UUID {
	id, _ := c.Get(appUserKey).(kernel.UUID)
	return id
}

// requestLogger writes one entry per request; server errors log at error level.
func (s *Server) requestLogger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		if err != nil {
			c.Error(err)
		}

		req := c.Request()
		status := c.Response().Status
		attrs := []any{
			"method", req.Method,
			"path", req.URL.Path,
			"status", status,
			"latency", time.Since(start),
			"remote_ip", c.RealIP(),
		}
		if err != nil {
			attrs = append(attrs, "error", err.Error())
		}

		level := slog.LevelInfo
		switch {
		case status >= http.StatusInternalServerError:
			level = slog.LevelError
		case status >= http.StatusBadRequest:
			level = slog.LevelWarn
		}
		s.logger.Log(req.Context(), level, "HTTP request", attrs...)
		return nil
	}
}
