package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"wellness/config"
	deliverycontext "wellness/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// LoggerMiddleware emits a verbose access line per request. It is a no-op unless env.debug is set.
type LoggerMiddleware struct {
	logger  *slog.Logger
	enabled bool
}

func NewLoggerMiddleware(logger *slog.Logger, cfg *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger:  logger,
		enabled: cfg.Env.Debug,
	}
}

func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	if !m.enabled {
		return next
	}

	return func(c echo.Context) error {
		began := time.Now()
		err := next(c)

		req := c.Request()
		status := c.Response().Status
		deliverycontext.GetLoggerOrDefault(req.Context(), m.logger).
			LogAttrs(req.Context(), accessLevel(status), "HTTP Request", accessAttrs(c, status, time.Since(began), err)...)

		return err
	}
}

func accessAttrs(c echo.Context, status int, latency time.Duration, err error) []slog.Attr {
	req := c.Request()
	attrs := make([]slog.Attr, 0, 10)
	attrs = append(attrs,
		slog.String("method", req.Method),
		slog.String("route", c.Path()),
		slog.String("uri", req.URL.Path),
		slog.Int("status", status),
		slog.Duration("latency", latency),
		slog.String("remote_ip", c.RealIP()),
		slog.String("user_agent", req.UserAgent()),
	)

	if req.URL.RawQuery != "" {
		attrs = append(attrs, slog.String("query", req.URL.RawQuery))
	}
	if userID := deliverycontext.GetUserID(c); userID != "" {
		attrs = append(attrs, slog.String("user_id", userID))
	}
	if err != nil {
		attrs = append(attrs, slog.Any("error", err))
	}

	return attrs
}

func accessLevel(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
