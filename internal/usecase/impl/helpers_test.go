package impl

import (
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"wellness/config"
	domainerrors "wellness/internal/domain/errors"
	"wellness/internal/domain/service"
	"wellness/internal/infra/auth"
	"wellness/internal/infra/persistence/memory"
	mockSvc "wellness/internal/mocks/service"
	"wellness/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// stepClock returns a fixed time that tests move forward explicitly.
type stepClock struct {
	mu  sync.Mutex
	now time.Time
}

func newStepClock(start time.Time) *stepClock {
	return &stepClock{now: start}
}

func (c *stepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *stepClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = c.now.Add(d)
}

func (c *stepClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = t
}

// fixture wires the real services over the in-memory store.
type fixture struct {
	clock    *stepClock
	tokens   service.TokenService
	verifier *mockSvc.MockIdentityVerifier
	sessions usecase.SessionUsecase
	identity usecase.IdentityUsecase
	moods    usecase.MoodUsecase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	cfg := &config.Config{Auth: &config.AuthConfig{TokenTTL: time.Hour}}
	cfg.SecretKey.Access = "test-secret"

	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	store := memory.NewStore()
	clock := newStepClock(time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC))
	logger := newDiscardLogger()
	verifier := mockSvc.NewMockIdentityVerifier(t)

	sessions := NewSessionService(SessionServiceParams{
		BlacklistRepo: memory.NewTokenBlacklistRepository(store),
		TokenService:  tokens,
		Clock:         clock,
		Config:        cfg,
		Logger:        logger,
	})

	identity := NewIdentityService(IdentityServiceParams{
		UserRepo:     memory.NewUserRepository(store),
		Hasher:       auth.NewBcryptHasherWithCost(bcrypt.MinCost),
		TokenService: tokens,
		Verifier:     verifier,
		Sessions:     sessions,
		Clock:        clock,
		Logger:       logger,
	})

	moods := NewMoodService(MoodServiceParams{
		MoodRepo: memory.NewMoodRepository(store),
		Clock:    clock,
		Logger:   logger,
	})

	return &fixture{
		clock:    clock,
		tokens:   tokens,
		verifier: verifier,
		sessions: sessions,
		identity: identity,
		moods:    moods,
	}
}

func requireAppError(t *testing.T, err error, code string) domainerrors.AppError {
	t.Helper()

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %v", err)
	require.Equal(t, code, appErr.ErrorCode())

	return appErr
}

func ptr[T any](v T) *T {
	return &v
}
