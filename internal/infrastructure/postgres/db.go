package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/hszk-dev/vidshare/internal/domain/repository"
)

// DBTX is an interface that abstracts pgxpool.Pool and pgx.Tx for testability.
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

// poolErr translates a bounded-wait timeout on the shared connection pool
// into repository.ErrPoolExhausted. Other errors pass through unchanged.
func poolErr(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return repository.ErrPoolExhausted
	}
	return err
}

// boundedDB wraps a DBTX and bounds every operation with a timeout that
// covers both pool acquisition and query execution. Timeouts surface as
// repository.ErrPoolExhausted.
type boundedDB struct {
	inner   DBTX
	timeout time.Duration
}

// NewBoundedDB returns a DBTX whose operations fail with
// repository.ErrPoolExhausted when they cannot complete within timeout.
func NewBoundedDB(inner DBTX, timeout time.Duration) DBTX {
	return &boundedDB{inner: inner, timeout: timeout}
}

func (b *boundedDB) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	ctx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()

	tag, err := b.inner.Exec(ctx, sql, arguments...)
	return tag, poolErr(err)
}

func (b *boundedDB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	// pgx watches the statement context until the rows are closed, so the
	// timeout must stay armed while the caller iterates.
	ctx, cancel := context.WithTimeout(ctx, b.timeout)

	rows, err := b.inner.Query(ctx, sql, args...)
	if err != nil {
		cancel()
		return nil, poolErr(err)
	}
	return &boundedRows{Rows: rows, cancel: cancel}, nil
}

func (b *boundedDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	// pgx defers execution until Scan, so the context must stay alive
	// until the row has been consumed.
	ctx, cancel := context.WithTimeout(ctx, b.timeout)
	return &boundedRow{row: b.inner.QueryRow(ctx, sql, args...), cancel: cancel}
}

func (b *boundedDB) Begin(ctx context.Context) (pgx.Tx, error) {
	tx, err := b.inner.Begin(ctx)
	return tx, poolErr(err)
}

type boundedRow struct {
	row    pgx.Row
	cancel context.CancelFunc
}

func (r *boundedRow) Scan(dest ...any) error {
	defer r.cancel()
	return poolErr(r.row.Scan(dest...))
}

// boundedRows releases the statement timeout when the row stream is
// closed and translates a deadline hit during iteration.
type boundedRows struct {
	pgx.Rows
	cancel context.CancelFunc
}

func (r *boundedRows) Close() {
	r.Rows.Close()
	r.cancel()
}

func (r *boundedRows) Err() error {
	return poolErr(r.Rows.Err())
}
