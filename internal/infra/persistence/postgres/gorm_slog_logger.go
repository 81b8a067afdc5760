package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"wellness/config"
	deliverycontext "wellness/internal/delivery/context"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const defaultSlowQueryThreshold = 200 * time.Millisecond

// queryLogger routes GORM output through slog. Statements issued with a request
// context are logged by that request's logger so they carry its request_id.
type queryLogger struct {
	fallback      *slog.Logger
	level         gormlogger.LogLevel
	slowThreshold time.Duration
}

func newQueryLogger(fallback *slog.Logger, cfg *config.Config) gormlogger.Interface {
	level := gormlogger.Warn
	if cfg != nil && cfg.Env.Debug {
		level = gormlogger.Info
	}

	return &queryLogger{
		fallback:      fallback,
		level:         level,
		slowThreshold: defaultSlowQueryThreshold,
	}
}

func (l *queryLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *queryLogger) Info(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, gormlogger.Info, slog.LevelInfo, msg, args...)
}

func (l *queryLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, gormlogger.Warn, slog.LevelWarn, msg, args...)
}

func (l *queryLogger) Error(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, gormlogger.Error, slog.LevelError, msg, args...)
}

func (l *queryLogger) printf(ctx context.Context, min gormlogger.LogLevel, level slog.Level, msg string, args ...any) {
	logger := l.loggerFor(ctx)
	if l.level < min || logger == nil {
		return
	}

	logger.LogAttrs(ctx, level, "postgres", slog.String("message", fmt.Sprintf(msg, args...)))
}

// Trace logs failed statements at ERROR, slow ones at WARN and, in debug mode, everything else at DEBUG.
// A missing row is an expected outcome for lookups and is not reported.
func (l *queryLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	logger := l.loggerFor(ctx)
	if logger == nil || l.level == gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)

	switch {
	case err != nil && l.level >= gormlogger.Error && !errors.Is(err, gorm.ErrRecordNotFound):
		logger.LogAttrs(ctx, slog.LevelError, "postgres query failed",
			append(queryAttrs(fc, elapsed), slog.String("error", err.Error()))...)
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= gormlogger.Warn:
		logger.LogAttrs(ctx, slog.LevelWarn, "postgres slow query",
			append(queryAttrs(fc, elapsed), slog.Duration("threshold", l.slowThreshold))...)
	case l.level >= gormlogger.Info:
		logger.LogAttrs(ctx, slog.LevelDebug, "postgres query", queryAttrs(fc, elapsed)...)
	}
}

func (l *queryLogger) loggerFor(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return l.fallback
	}

	return deliverycontext.GetLoggerOrDefault(ctx, l.fallback)
}

func queryAttrs(fc func() (string, int64), elapsed time.Duration) []slog.Attr {
	sql, rows := fc()

	return []slog.Attr{
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", sql),
	}
}
