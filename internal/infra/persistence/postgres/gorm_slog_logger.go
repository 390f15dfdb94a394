package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"teka/config"
	deliverycontext "teka/internal/delivery/context"
	"teka/internal/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const defaultSlowQuery = 200 * time.Millisecond

// gormSlogLogger sends gorm output through the request logger when the
// statement runs under a request context, so SQL lines carry request_id.
type gormSlogLogger struct {
	base      *slog.Logger
	mode      logger.LogLevel
	slowQuery time.Duration
}

func newGormSlogLogger(base *slog.Logger, cfg *config.Config) logger.Interface {
	l := &gormSlogLogger{base: base, mode: logger.Warn, slowQuery: defaultSlowQuery}
	if cfg == nil {
		return l
	}
	if cfg.Env.Debug {
		l.mode = logger.Info
	}
	if cfg.Env.Log.SlowQuery > 0 {
		l.slowQuery = cfg.Env.Log.SlowQuery
	}

	return l
}

func (l *gormSlogLogger) LogMode(mode logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.mode = mode

	return &cloned
}

func (l *gormSlogLogger) Info(ctx context.Context, msg string, args ...any) {
	l.message(ctx, logger.Info, msg, args...)
}

func (l *gormSlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.message(ctx, logger.Warn, msg, args...)
}

func (l *gormSlogLogger) Error(ctx context.Context, msg string, args ...any) {
	l.message(ctx, logger.Error, msg, args...)
}

var gormToSlog = map[logger.LogLevel]slog.Level{
	logger.Info:  slog.LevelInfo,
	logger.Warn:  slog.LevelWarn,
	logger.Error: slog.LevelError,
}

func (l *gormSlogLogger) message(ctx context.Context, at logger.LogLevel, msg string, args ...any) {
	if l.base == nil || l.mode < at {
		return
	}

	deliverycontext.GetLoggerOrDefault(ctx, l.base).
		LogAttrs(ctx, gormToSlog[at], "gorm", slog.String("message", fmt.Sprintf(msg, args...)))
}

// traceLevel decides whether a finished statement is logged and at which
// level. Missing rows are an expected outcome and never logged as failures.
func (l *gormSlogLogger) traceLevel(elapsed time.Duration, err error) (slog.Level, string, bool) {
	switch {
	case l.mode == logger.Silent:
		return 0, "", false
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && l.mode >= logger.Error:
		return slog.LevelError, "SQL failed", true
	case l.slowQuery > 0 && elapsed > l.slowQuery && l.mode >= logger.Warn:
		return slog.LevelWarn, "SQL slow", true
	case l.mode >= logger.Info:
		return slog.LevelDebug, "SQL", true
	default:
		return 0, "", false
	}
}

func (l *gormSlogLogger) Trace(ctx context.Context, begin time.Time, sqlAndRows func() (string, int64), err error) {
	if l.base == nil {
		return
	}

	elapsed := time.Since(begin)
	level, title, ok := l.traceLevel(elapsed, err)
	if !ok {
		return
	}

	sql, rows := sqlAndRows()
	attrs := []slog.Attr{
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", sql),
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}

	deliverycontext.GetLoggerOrDefault(ctx, l.base).LogAttrs(ctx, level, title, attrs...)
}
