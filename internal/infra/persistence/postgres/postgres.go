package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"teka/config"
	"teka/internal/domain/lifecycle"
	"teka/internal/errors"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	poolCheckInterval   = 5 * time.Second
	poolSlowWaitMinimum = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the marketplace database. The connection is verified when the
// fx app starts and the pool is watched for contention until it stops.
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "open marketplace database")
	}

	// Multi-step writes go through TransactionManager.Execute, single
	// statements do not need gorm's implicit transaction.
	db = db.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "marketplace database handle")
	}

	watchCtx, stopWatch := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "ping marketplace database")
			}

			go watchPool(watchCtx, params.Logger, sqlDB.Stats, poolCheckInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			stopWatch()

			return errors.WithStack(sqlDB.Close())
		},
	})

	return db, nil
}

// poolWait is the connection wait accumulated between two pool snapshots.
type poolWait struct {
	count    int64
	duration time.Duration
}

func waitBetween(prev, cur sql.DBStats) poolWait {
	return poolWait{
		count:    cur.WaitCount - prev.WaitCount,
		duration: cur.WaitDuration - prev.WaitDuration,
	}
}

func (w poolWait) level() slog.Level {
	if w.duration >= poolSlowWaitMinimum {
		return slog.LevelWarn
	}

	return slog.LevelDebug
}

func watchPool(ctx context.Context, logger *slog.Logger, stats func() sql.DBStats, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := stats()
			if wait := waitBetween(prev, cur); wait.count > 0 {
				logger.LogAttrs(ctx, wait.level(), "Database pool contention",
					slog.Int64("waits", wait.count),
					slog.Duration("wait_time", wait.duration),
					slog.Duration("avg_wait", wait.duration/time.Duration(wait.count)),
					slog.Int("open", cur.OpenConnections),
					slog.Int("in_use", cur.InUse),
					slog.Int("idle", cur.Idle),
					slog.Int("max_open", cur.MaxOpenConnections),
				)
			}

			prev = cur
		}
	}
}
