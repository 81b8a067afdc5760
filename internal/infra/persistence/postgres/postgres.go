package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"wellness/config"
	domainerrors "wellness/internal/domain/errors"
	"wellness/internal/domain/lifecycle"
	"wellness/internal/errors"
	"wellness/internal/infra/persistence/model"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	poolMonitorInterval   = 5 * time.Second
	poolWaitWarnThreshold = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the PostgreSQL connection pool and ties it to the fx lifecycle.
func New(params Params) (*gorm.DB, error) {
	if params.Config.Postgres == nil {
		return nil, errors.New("postgres config is missing")
	}

	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	// Every write touches a single row, so GORM's implicit per-statement transaction is skipped.
	db = db.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		Logger:                 newQueryLogger(params.Logger, params.Config),
	})
	db.Config.TranslateError = true

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			monitor := &poolMonitor{
				logger:    params.Logger,
				stats:     sqlDB.Stats,
				interval:  poolMonitorInterval,
				warnAfter: poolWaitWarnThreshold,
			}
			go monitor.run(monitorCtx)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// Migrate creates or updates the tables used by the postgres driver.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(model.All()...); err != nil {
		return errors.Wrap(err, "auto migrate")
	}

	return nil
}

// poolMonitor reports connection pool contention between two Stats snapshots.
type poolMonitor struct {
	logger    *slog.Logger
	stats     func() sql.DBStats
	interval  time.Duration
	warnAfter time.Duration
}

func (m *poolMonitor) run(ctx context.Context) {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	prev := m.stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := m.stats()
			m.observe(ctx, prev, cur)
			prev = cur
		}
	}
}

// observe logs when requests had to wait for a connection since the previous snapshot.
// Waits totalling at least warnAfter are logged at WARN, shorter ones at DEBUG.
func (m *poolMonitor) observe(ctx context.Context, prev, cur sql.DBStats) {
	waits := cur.WaitCount - prev.WaitCount
	if waits <= 0 {
		return
	}
	waited := cur.WaitDuration - prev.WaitDuration

	level := slog.LevelDebug
	if waited >= m.warnAfter {
		level = slog.LevelWarn
	}

	m.logger.LogAttrs(ctx, level, "Postgres pool contention",
		slog.Int64("waits", waits),
		slog.Duration("waited", waited),
		slog.Duration("avgWait", waited/time.Duration(waits)),
		slog.Int("open", cur.OpenConnections),
		slog.Int("inUse", cur.InUse),
		slog.Int("idle", cur.Idle),
		slog.Int("maxOpen", cur.MaxOpenConnections),
	)
}

// deleteAll removes every row of the model's table.
func deleteAll(ctx context.Context, db *gorm.DB, value any, details string) (int, error) {
	result := db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(value)
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, details)
	}

	return int(result.RowsAffected), nil
}
