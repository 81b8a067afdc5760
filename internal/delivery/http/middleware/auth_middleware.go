package middleware

import (
	"strings"

	deliverycontext "wellness/internal/delivery/context"
	domainerrors "wellness/internal/domain/errors"
	"wellness/internal/infra/metrics"
	"wellness/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const bearerPrefix = "Bearer "

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	Sessions usecase.SessionUsecase
	Metrics  *metrics.Metrics `optional:"true"`
}

// AuthMiddleware runs the session guard in front of protected routes.
type AuthMiddleware struct {
	sessions usecase.SessionUsecase
	metrics  *metrics.Metrics
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{sessions: params.Sessions, metrics: params.Metrics}
}

// Authenticate rejects the request unless it carries a valid, non-revoked bearer token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		session, err := m.sessions.Authenticate(c.Request().Context(), bearerToken(c))
		if err != nil {
			m.reject(err)

			return errors.WithStack(err)
		}

		deliverycontext.SetSession(c, session)

		return next(c)
	}
}

// OptionalAuth attaches the session when the token is valid and never rejects.
func (m *AuthMiddleware) OptionalAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if token := bearerToken(c); token != "" {
			if session, err := m.sessions.Authenticate(c.Request().Context(), token); err == nil {
				deliverycontext.SetSession(c, session)
			}
		}

		return next(c)
	}
}

func (m *AuthMiddleware) reject(err error) {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		m.metrics.GuardRejected(appErr.ErrorCode())
	}
}

func bearerToken(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if len(header) < len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return ""
	}

	return strings.TrimSpace(header[len(bearerPrefix):])
}
