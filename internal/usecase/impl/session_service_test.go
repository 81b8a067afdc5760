package impl

import (
	"context"
	"testing"
	"time"

	"wellness/config"
	"wellness/internal/domain/entity"
	"wellness/internal/domain/repository"
	"wellness/internal/domain/service"
	"wellness/internal/infra/metrics"
	mockRepo "wellness/internal/mocks/repository"
	mockSvc "wellness/internal/mocks/service"
	"wellness/internal/usecase"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type sessionMocks struct {
	blacklist *mockRepo.MockTokenBlacklistRepository
	tokens    *mockSvc.MockTokenService
	clock     *stepClock
	metrics   *metrics.Metrics
}

func newSessionServiceWithMocks(t *testing.T) (usecase.SessionUsecase, *sessionMocks) {
	t.Helper()

	m := &sessionMocks{
		blacklist: mockRepo.NewMockTokenBlacklistRepository(t),
		tokens:    mockSvc.NewMockTokenService(t),
		clock:     newStepClock(time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC)),
		metrics:   metrics.New(prometheus.NewRegistry()),
	}

	srv := NewSessionService(SessionServiceParams{
		BlacklistRepo: m.blacklist,
		TokenService:  m.tokens,
		Clock:         m.clock,
		Metrics:       m.metrics,
		Config:        &config.Config{Auth: &config.AuthConfig{TokenTTL: 24 * time.Hour}},
		Logger:        newDiscardLogger(),
	})

	return srv, m
}

func TestSessionService_Authenticate_TokenRequired(t *testing.T) {
	srv, _ := newSessionServiceWithMocks(t)

	_, err := srv.Authenticate(context.Background(), "")

	requireAppError(t, err, "TOKEN_REQUIRED")
}

func TestSessionService_Authenticate_Blacklisted(t *testing.T) {
	srv, m := newSessionServiceWithMocks(t)
	ctx := context.Background()

	m.blacklist.EXPECT().Exists(ctx, "raw").Return(true, nil)

	_, err := srv.Authenticate(ctx, "raw")

	requireAppError(t, err, "TOKEN_BLACKLISTED")
	m.tokens.AssertNotCalled(t, "Verify", mock.Anything)
}

func TestSessionService_Authenticate_VerifyFailures(t *testing.T) {
	tests := []struct {
		name      string
		verifyErr error
		wantCode  string
	}{
		{name: "expired", verifyErr: errors.Wrap(service.ErrTokenExpired, "exp"), wantCode: "TOKEN_EXPIRED"},
		{name: "bad signature", verifyErr: errors.WithStack(service.ErrTokenSignatureInvalid), wantCode: "TOKEN_INVALID"},
		{name: "malformed", verifyErr: errors.WithStack(service.ErrTokenMalformed), wantCode: "TOKEN_INVALID"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, m := newSessionServiceWithMocks(t)
			ctx := context.Background()

			m.blacklist.EXPECT().Exists(ctx, "raw").Return(false, nil)
			m.tokens.EXPECT().Verify("raw").Return(nil, tt.verifyErr)

			_, err := srv.Authenticate(ctx, "raw")

			requireAppError(t, err, tt.wantCode)
		})
	}
}

func TestSessionService_Authenticate_IdentityFailure(t *testing.T) {
	srv, m := newSessionServiceWithMocks(t)
	ctx := context.Background()
	verified := service.NewVerifiedToken("raw", m.clock.Now(), m.clock.Now().Add(time.Hour), nil)

	m.blacklist.EXPECT().Exists(ctx, "raw").Return(false, nil)
	m.tokens.EXPECT().Verify("raw").Return(verified, nil)
	m.tokens.EXPECT().Identity(verified).Return(nil, errors.New("missing id claim"))

	_, err := srv.Authenticate(ctx, "raw")

	requireAppError(t, err, "TOKEN_INVALID")
}

func TestSessionService_Authenticate_Valid(t *testing.T) {
	srv, m := newSessionServiceWithMocks(t)
	ctx := context.Background()
	iat := m.clock.Now().Add(-time.Minute)
	exp := iat.Add(time.Hour)
	verified := service.NewVerifiedToken("raw", iat, exp, nil)
	identity := &service.TokenIdentity{UserID: "u1", Name: "Ana", Email: "ana@x.com"}

	m.blacklist.EXPECT().Exists(ctx, "raw").Return(false, nil)
	m.tokens.EXPECT().Verify("raw").Return(verified, nil)
	m.tokens.EXPECT().Identity(verified).Return(identity, nil)
	m.blacklist.EXPECT().Find(ctx, entity.RevocationKey("u1")).Return(nil, repository.ErrBlacklistEntryNotFound)

	session, err := srv.Authenticate(ctx, "raw")

	require.NoError(t, err)
	assert.Equal(t, *identity, session.Identity)
	assert.Equal(t, "raw", session.Token)
	assert.Equal(t, iat, session.IssuedAt)
	assert.Equal(t, exp, session.ExpiresAt)
}

func TestSessionService_Authenticate_RevocationMarker(t *testing.T) {
	tests := []struct {
		name      string
		iatOffset time.Duration
		wantErr   bool
	}{
		{name: "issued before marker", iatOffset: -2 * time.Second, wantErr: true},
		{name: "issued in the marker second", iatOffset: 0, wantErr: false},
		{name: "issued after marker", iatOffset: time.Minute, wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, m := newSessionServiceWithMocks(t)
			ctx := context.Background()
			markerAt := m.clock.Now().Add(500 * time.Millisecond)
			iat := m.clock.Now().Add(tt.iatOffset)
			verified := service.NewVerifiedToken("raw", iat, iat.Add(time.Hour), nil)

			m.blacklist.EXPECT().Exists(ctx, "raw").Return(false, nil)
			m.tokens.EXPECT().Verify("raw").Return(verified, nil)
			m.tokens.EXPECT().Identity(verified).Return(&service.TokenIdentity{UserID: "u1"}, nil)
			m.blacklist.EXPECT().Find(ctx, entity.RevocationKey("u1")).Return(&entity.BlacklistedToken{
				Token:         entity.RevocationKey("u1"),
				UserID:        "u1",
				BlacklistedAt: markerAt,
				ExpiresAt:     markerAt.Add(24 * time.Hour),
			}, nil)

			_, err := srv.Authenticate(ctx, "raw")

			if tt.wantErr {
				requireAppError(t, err, "TOKEN_BLACKLISTED")
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestSessionService_Authenticate_FailsOpenOnStorageError(t *testing.T) {
	srv, m := newSessionServiceWithMocks(t)
	ctx := context.Background()
	verified := service.NewVerifiedToken("raw", m.clock.Now(), m.clock.Now().Add(time.Hour), nil)

	m.blacklist.EXPECT().Exists(ctx, "raw").Return(false, errors.New("firestore unavailable"))
	m.tokens.EXPECT().Verify("raw").Return(verified, nil)
	m.tokens.EXPECT().Identity(verified).Return(&service.TokenIdentity{UserID: "u1"}, nil)
	m.blacklist.EXPECT().Find(ctx, entity.RevocationKey("u1")).Return(nil, errors.New("firestore unavailable"))

	session, err := srv.Authenticate(ctx, "raw")

	require.NoError(t, err)
	assert.Equal(t, "u1", session.Identity.UserID)
	assert.InDelta(t, 2, testutil.ToFloat64(m.metrics.BlacklistFailOpen), 0)
}

func TestSessionService_Blacklist(t *testing.T) {
	srv, m := newSessionServiceWithMocks(t)
	ctx := context.Background()
	exp := m.clock.Now().Add(time.Hour)

	m.blacklist.EXPECT().Add(ctx, &entity.BlacklistedToken{
		Token:         "raw",
		UserID:        "u1",
		BlacklistedAt: m.clock.Now(),
		ExpiresAt:     exp,
	}).Return(nil)

	require.NoError(t, srv.Blacklist(ctx, "raw", "u1", exp))
}

func TestSessionService_Blacklist_StorageError(t *testing.T) {
	srv, m := newSessionServiceWithMocks(t)
	ctx := context.Background()

	m.blacklist.EXPECT().Add(ctx, mock.Anything).Return(errors.New("boom"))

	err := srv.Blacklist(ctx, "raw", "u1", m.clock.Now())
	assert.ErrorContains(t, err, "failed to blacklist token")
}

func TestSessionService_IsBlacklisted(t *testing.T) {
	srv, m := newSessionServiceWithMocks(t)
	ctx := context.Background()

	m.blacklist.EXPECT().Exists(ctx, "yes").Return(true, nil)
	m.blacklist.EXPECT().Exists(ctx, "no").Return(false, nil)
	m.blacklist.EXPECT().Exists(ctx, "err").Return(true, errors.New("timeout"))

	assert.True(t, srv.IsBlacklisted(ctx, "yes"))
	assert.False(t, srv.IsBlacklisted(ctx, "no"))
	assert.False(t, srv.IsBlacklisted(ctx, "err"))
	assert.InDelta(t, 1, testutil.ToFloat64(m.metrics.BlacklistFailOpen), 0)
}

func TestSessionService_RevokeAllForUser(t *testing.T) {
	srv, m := newSessionServiceWithMocks(t)
	ctx := context.Background()
	until := m.clock.Now()

	m.blacklist.EXPECT().Add(ctx, &entity.BlacklistedToken{
		Token:         "revoked-before:u1",
		UserID:        "u1",
		BlacklistedAt: until,
		ExpiresAt:     until.Add(24 * time.Hour),
	}).Return(nil)

	require.NoError(t, srv.RevokeAllForUser(ctx, "u1", until))
}

func TestSessionService_CleanupExpired(t *testing.T) {
	srv, m := newSessionServiceWithMocks(t)
	ctx := context.Background()

	m.blacklist.EXPECT().DeleteExpired(ctx, m.clock.Now()).Return(3, nil)

	deleted, err := srv.CleanupExpired(ctx)

	require.NoError(t, err)
	assert.Equal(t, 3, deleted)
	assert.InDelta(t, 3, testutil.ToFloat64(m.metrics.BlacklistRowsPurged), 0)
}

func TestSessionService_CleanupExpired_Error(t *testing.T) {
	srv, m := newSessionServiceWithMocks(t)
	ctx := context.Background()

	m.blacklist.EXPECT().DeleteExpired(ctx, m.clock.Now()).Return(0, errors.New("boom"))

	_, err := srv.CleanupExpired(ctx)
	assert.Error(t, err)
}
