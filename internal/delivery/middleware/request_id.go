package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "wellness/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// maxRequestIDLength caps client supplied request ids before they reach logs.
const maxRequestIDLength = 128

// RequestIDMiddleware tags each request with an id and a logger carrying it.
type RequestIDMiddleware struct {
	logger *slog.Logger
}

func NewRequestIDMiddleware(logger *slog.Logger) *RequestIDMiddleware {
	return &RequestIDMiddleware{logger: logger}
}

// Process keeps an inbound X-Request-Id when it is printable ASCII of sane length,
// otherwise mints a UUID. The id is echoed in the response header.
func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := requestIDFrom(c.Request().Header.Get(deliverycontext.HeaderXRequestID))

		deliverycontext.SetRequestID(c, id)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, id)

		ctx := deliverycontext.WithRequestID(c.Request().Context(), id)
		ctx = deliverycontext.WithLogger(ctx, m.logger.With(slog.String("request_id", id)))
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

func requestIDFrom(header string) string {
	if header == "" || len(header) > maxRequestIDLength {
		return uuid.NewString()
	}

	if strings.IndexFunc(header, func(r rune) bool { return r < '!' || r > '~' }) >= 0 {
		return uuid.NewString()
	}

	return header
}
