package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"wellness/config"
	deliverycontext "wellness/internal/delivery/context"
	"wellness/internal/delivery/http/response"
	domainerrors "wellness/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger      *slog.Logger
	development bool
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger, cfg *config.Config) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger:      logger,
		development: cfg.IsDevelopment(),
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)

	// Try to parse as AppError
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.internal(c, logger, err)

			return
		}

		_ = response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())

		return
	}

	// Check if it's Echo's HTTPError
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		// Access log middleware wraps plain handler errors as a 500 HTTPError.
		if httpErr.Internal != nil && httpErr.Code >= http.StatusInternalServerError {
			m.internal(c, logger, httpErr.Internal)

			return
		}
		m.echoError(c, httpErr)

		return
	}

	m.internal(c, logger, err)
}

func (m *ErrorMiddleware) echoError(c echo.Context, httpErr *echo.HTTPError) {
	req := c.Request()

	switch httpErr.Code {
	case http.StatusNotFound:
		_ = response.Error(c, http.StatusNotFound, domainerrors.ErrRouteNotFound.ErrorCode(),
			fmt.Sprintf("Rota %s %s não encontrada", req.Method, req.URL.Path), nil)
	case http.StatusBadRequest:
		_ = response.Error(c, http.StatusBadRequest, domainerrors.ErrValidationFailed.ErrorCode(),
			domainerrors.ErrValidationFailed.Message(), []string{httpMessage(httpErr)})
	default:
		_ = response.Error(c, httpErr.Code, "HTTP_ERROR", httpMessage(httpErr), nil)
	}
}

func (m *ErrorMiddleware) internal(c echo.Context, logger *slog.Logger, err error) {
	logger.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	if m.development {
		_ = response.ErrorWithStack(c, http.StatusInternalServerError,
			domainerrors.ErrInternalError.ErrorCode(), err.Error(), fmt.Sprintf("%+v", err))

		return
	}

	_ = response.Error(c, http.StatusInternalServerError,
		domainerrors.ErrInternalError.ErrorCode(), domainerrors.ErrInternalError.Message(), nil)
}

func httpMessage(httpErr *echo.HTTPError) string {
	if msg, ok := httpErr.Message.(string); ok {
		return msg
	}

	return http.StatusText(httpErr.Code)
}
