package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"teka/config"
	deliverycontext "teka/internal/delivery/context"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestGormSlogLogger_TraceLevel(t *testing.T) {
	l := &gormSlogLogger{base: slog.Default(), mode: logger.Warn, slowQuery: 100 * time.Millisecond}

	tests := []struct {
		name      string
		mode      logger.LogLevel
		elapsed   time.Duration
		err       error
		wantLevel slog.Level
		wantOK    bool
	}{
		{name: "failure", mode: logger.Warn, err: errors.New("syntax"), wantLevel: slog.LevelError, wantOK: true},
		{name: "not found is quiet", mode: logger.Warn, err: gorm.ErrRecordNotFound},
		{name: "slow", mode: logger.Warn, elapsed: time.Second, wantLevel: slog.LevelWarn, wantOK: true},
		{name: "fast outside debug", mode: logger.Warn, elapsed: time.Millisecond},
		{name: "fast in debug", mode: logger.Info, elapsed: time.Millisecond, wantLevel: slog.LevelDebug, wantOK: true},
		{name: "silent", mode: logger.Silent, err: errors.New("syntax")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, _, ok := l.LogMode(tt.mode).(*gormSlogLogger).traceLevel(tt.elapsed, tt.err)

			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantLevel, level)
			}
		})
	}
}

func TestGormSlogLogger_TraceUsesRequestLogger(t *testing.T) {
	var base, scoped bytes.Buffer
	cfg := &config.Config{}
	cfg.Env.Log.SlowQuery = time.Nanosecond

	l := newGormSlogLogger(slog.New(slog.NewTextHandler(&base, nil)), cfg)
	ctx := deliverycontext.WithLogger(context.Background(),
		slog.New(slog.NewTextHandler(&scoped, nil)).With(slog.String("request_id", "req-9")))

	l.Trace(ctx, time.Now().Add(-time.Second), func() (string, int64) {
		return "SELECT 1", 1
	}, nil)

	assert.Empty(t, base.String())
	assert.Contains(t, scoped.String(), "SQL slow")
	assert.Contains(t, scoped.String(), "request_id=req-9")
	assert.Contains(t, scoped.String(), `sql="SELECT 1"`)
}
