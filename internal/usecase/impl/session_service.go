// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"time"

	"wellness/config"
	deliverycontext "wellness/internal/delivery/context"
	"wellness/internal/domain/entity"
	domainerrors "wellness/internal/domain/errors"
	"wellness/internal/domain/repository"
	"wellness/internal/domain/service"
	"wellness/internal/infra/metrics"
	"wellness/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultRevocationTTL = 7 * 24 * time.Hour

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	blacklistRepo repository.TokenBlacklistRepository
	tokenService  service.TokenService
	clock         service.Clock
	metrics       *metrics.Metrics
	revocationTTL time.Duration
	logger        *slog.Logger
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	BlacklistRepo repository.TokenBlacklistRepository
	TokenService  service.TokenService
	Clock         service.Clock
	Metrics       *metrics.Metrics `optional:"true"`
	Config        *config.Config
	Logger        *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	revocationTTL := defaultRevocationTTL
	if params.Config != nil && params.Config.Auth != nil && params.Config.Auth.TokenTTL > 0 {
		revocationTTL = params.Config.Auth.TokenTTL
	}

	return &sessionService{
		blacklistRepo: params.BlacklistRepo,
		tokenService:  params.TokenService,
		clock:         params.Clock,
		metrics:       params.Metrics,
		revocationTTL: revocationTTL,
		logger:        params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Authenticate checks, in order, presence, the blacklist, signature and expiry,
// and finally any user-wide revocation issued after the token.
func (srv *sessionService) Authenticate(ctx context.Context, rawToken string) (*usecase.Session, error) {
	if rawToken == "" {
		return nil, errors.WithStack(domainerrors.ErrTokenRequired)
	}

	if srv.IsBlacklisted(ctx, rawToken) {
		return nil, errors.Wrap(domainerrors.ErrTokenBlacklisted, "token is blacklisted")
	}

	verified, err := srv.tokenService.Verify(rawToken)
	if err != nil {
		if errors.Is(err, service.ErrTokenExpired) {
			return nil, errors.Wrap(domainerrors.ErrTokenExpired, err.Error())
		}

		return nil, errors.Wrap(domainerrors.ErrTokenInvalid, err.Error())
	}

	identity, err := srv.tokenService.Identity(verified)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrTokenInvalid, err.Error())
	}

	if srv.revokedForUser(ctx, identity.UserID, verified.IssuedAt) {
		return nil, errors.Wrap(domainerrors.ErrTokenBlacklisted, "token predates user revocation")
	}

	return &usecase.Session{
		Identity:  *identity,
		Token:     rawToken,
		IssuedAt:  verified.IssuedAt,
		ExpiresAt: verified.ExpiresAt,
	}, nil
}

// Blacklist invalidates the token until its expiry. Repeated calls are harmless.
func (srv *sessionService) Blacklist(ctx context.Context, token, userID string, expiresAt time.Time) error {
	row := &entity.BlacklistedToken{
		Token:         token,
		UserID:        userID,
		BlacklistedAt: srv.clock.Now(),
		ExpiresAt:     expiresAt,
	}

	if err := srv.blacklistRepo.Add(ctx, row); err != nil {
		return errors.Wrap(err, "failed to blacklist token")
	}

	srv.log(ctx).Debug("Token blacklisted", slog.String("user_id", userID), slog.Time("expires_at", expiresAt))

	return nil
}

// IsBlacklisted fails open: a storage error is logged and counted, and the token
// is treated as not blacklisted.
func (srv *sessionService) IsBlacklisted(ctx context.Context, token string) bool {
	exists, err := srv.blacklistRepo.Exists(ctx, token)
	if err != nil {
		srv.log(ctx).Warn("Blacklist lookup failed, allowing token", slog.Any("error", err))
		srv.metrics.FailOpen()

		return false
	}

	return exists
}

// RevokeAllForUser writes the user's revocation marker. The marker outlives every
// token issued before until.
func (srv *sessionService) RevokeAllForUser(ctx context.Context, userID string, until time.Time) error {
	marker := &entity.BlacklistedToken{
		Token:         entity.RevocationKey(userID),
		UserID:        userID,
		BlacklistedAt: until,
		ExpiresAt:     until.Add(srv.revocationTTL),
	}

	if err := srv.blacklistRepo.Add(ctx, marker); err != nil {
		return errors.Wrap(err, "failed to revoke user sessions")
	}

	srv.log(ctx).Info("Revoked all sessions", slog.String("user_id", userID))

	return nil
}

// CleanupExpired deletes blacklist rows whose expiry has passed.
func (srv *sessionService) CleanupExpired(ctx context.Context) (int, error) {
	deleted, err := srv.blacklistRepo.DeleteExpired(ctx, srv.clock.Now())
	if err != nil {
		return 0, errors.Wrap(err, "failed to delete expired blacklist rows")
	}

	srv.metrics.Purged(deleted)
	srv.log(ctx).Info("Expired blacklist rows deleted", slog.Int("deleted", deleted))

	return deleted, nil
}

// revokedForUser compares at second precision because iat carries whole seconds.
func (srv *sessionService) revokedForUser(ctx context.Context, userID string, issuedAt time.Time) bool {
	marker, err := srv.blacklistRepo.Find(ctx, entity.RevocationKey(userID))
	if err != nil {
		if !errors.Is(err, repository.ErrBlacklistEntryNotFound) {
			srv.log(ctx).Warn("Revocation lookup failed, allowing token", slog.String("user_id", userID), slog.Any("error", err))
			srv.metrics.FailOpen()
		}

		return false
	}

	return issuedAt.Before(marker.BlacklistedAt.Truncate(time.Second))
}
