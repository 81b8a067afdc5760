// Package worker contains background deliveries that run beside the HTTP server.
package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"wellness/config"
	"wellness/internal/delivery"
	deliverycontext "wellness/internal/delivery/context"
	"wellness/internal/domain/lifecycle"
	"wellness/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const defaultJanitorInterval = time.Hour

// JanitorParams holds dependencies for the blacklist janitor, injected by Fx.
type JanitorParams struct {
	fx.In

	Lc       fx.Lifecycle
	Cfg      *config.Config
	Logger   *slog.Logger
	Sessions usecase.SessionUsecase
}

// janitor periodically deletes expired token blacklist rows.
type janitor struct {
	sessions usecase.SessionUsecase
	interval time.Duration
	logger   *slog.Logger

	stopOnce sync.Once
	stopCh   chan struct{}
	doneCh   chan struct{}
}

// NewJanitor creates the janitor delivery.
func NewJanitor(params JanitorParams) delivery.Delivery {
	interval := defaultJanitorInterval
	if params.Cfg.Janitor != nil && params.Cfg.Janitor.Interval > 0 {
		interval = params.Cfg.Janitor.Interval
	}

	j := newJanitor(params.Sessions, interval, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStop: j.stop,
	})

	return j
}

func newJanitor(sessions usecase.SessionUsecase, interval time.Duration, logger *slog.Logger) *janitor {
	return &janitor{
		sessions: sessions,
		interval: interval,
		logger:   logger,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Serve runs one sweep immediately and then one per interval until stopped.
func (j *janitor) Serve(ctx context.Context) error {
	defer close(j.doneCh)

	j.logger.Info("Starting blacklist janitor", slog.Duration("interval", j.interval))

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		j.sweep(ctx)

		select {
		case <-ticker.C:
		case <-j.stopCh:
			return nil
		case <-ctx.Done():
			return nil
		}
	}
}

func (j *janitor) sweep(ctx context.Context) {
	runID := uuid.NewString()
	runLogger := j.logger.With(slog.String("request_id", runID))

	ctx = deliverycontext.WithRequestID(ctx, runID)
	ctx = deliverycontext.WithLogger(ctx, runLogger)

	ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	deleted, err := j.sessions.CleanupExpired(ctx)
	if err != nil {
		runLogger.Error("[Janitor] Blacklist sweep failed", slog.Any("error", err))

		return
	}

	runLogger.Debug("[Janitor] Blacklist sweep finished", slog.Int("deleted", deleted))
}

// stop signals Serve to return and waits for the running sweep.
func (j *janitor) stop(ctx context.Context) error {
	j.stopOnce.Do(func() { close(j.stopCh) })

	j.logger.Info("Shutting down blacklist janitor")

	select {
	case <-j.doneCh:
	case <-ctx.Done():
	}

	return nil
}
