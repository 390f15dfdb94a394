package postgres

import (
	"context"
	"database/sql"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// sqlRecorder keeps every statement gorm traces, with its arguments inlined.
type sqlRecorder struct {
	logger.Interface

	mu         sync.Mutex
	statements []string
}

func (r *sqlRecorder) LogMode(logger.LogLevel) logger.Interface {
	return r
}

func (r *sqlRecorder) Trace(_ context.Context, _ time.Time, fc func() (string, int64), _ error) {
	sql, _ := fc()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.statements = append(r.statements, sql)
}

func (r *sqlRecorder) last(t *testing.T) string {
	t.Helper()

	r.mu.Lock()
	defer r.mu.Unlock()
	require.NotEmpty(t, r.statements, "no statement recorded")

	return r.statements[len(r.statements)-1]
}

// withPrefix returns the first statement starting with prefix.
func (r *sqlRecorder) withPrefix(t *testing.T, prefix string) string {
	t.Helper()

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, stmt := range r.statements {
		if strings.HasPrefix(stmt, prefix) {
			return stmt
		}
	}
	require.Failf(t, "statement not recorded", "prefix %q", prefix)

	return ""
}

var errNoServer = errors.New("stub pool has no server")

// stubConnPool stands in for a PostgreSQL connection. Statements fail with stmtErr,
// transactions begin and commit with commitErr.
type stubConnPool struct {
	stmtErr   error
	commitErr error
}

func (p stubConnPool) fail() error {
	if p.stmtErr != nil {
		return p.stmtErr
	}

	return errNoServer
}

func (p stubConnPool) PrepareContext(context.Context, string) (*sql.Stmt, error) {
	return nil, p.fail()
}

func (p stubConnPool) ExecContext(context.Context, string, ...any) (sql.Result, error) {
	return nil, p.fail()
}

func (p stubConnPool) QueryContext(context.Context, string, ...any) (*sql.Rows, error) {
	return nil, p.fail()
}

func (stubConnPool) QueryRowContext(context.Context, string, ...any) *sql.Row {
	return nil
}

func (p stubConnPool) BeginTx(context.Context, *sql.TxOptions) (gorm.ConnPool, error) {
	return &stubTx{stubConnPool: p}, nil
}

// stubTx is a pointer so gorm's nil check on the committer holds.
type stubTx struct {
	stubConnPool
}

func (tx *stubTx) Commit() error {
	return tx.commitErr
}

func (*stubTx) Rollback() error {
	return nil
}

func openStubDB(t *testing.T, pool stubConnPool, dryRun bool) (*gorm.DB, *sqlRecorder) {
	t.Helper()

	rec := &sqlRecorder{Interface: logger.Discard}
	db, err := gorm.Open(pgdriver.New(pgdriver.Config{Conn: pool}), &gorm.Config{
		DryRun:               dryRun,
		DisableAutomaticPing: true,
		Logger:               rec,
	})
	require.NoError(t, err)

	return db, rec
}

// newDryRunDB builds SQL for the PostgreSQL dialect without executing it.
func newDryRunDB(t *testing.T) (*gorm.DB, *sqlRecorder) {
	t.Helper()

	return openStubDB(t, stubConnPool{}, true)
}
