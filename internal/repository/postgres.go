package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"
)

const (
	foreignKeyViolation  = "23503"
	checkViolation       = "23514"
	stringDataTruncation = "22001"
	numericOutOfRange    = "22003"
)

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func queryContext(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}

func pqErrorCode(err error) pq.ErrorCode {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code
	}
	return ""
}

// isDataOutOfRange reports whether the store rejected a value that exceeds its column limits.
func isDataOutOfRange(err error) bool {
	switch pqErrorCode(err) {
	case stringDataTruncation, numericOutOfRange:
		return true
	}
	return false
}

func rollback(tx *sql.Tx) {
	// Rollback after Commit returns sql.ErrTxDone and is harmless.
	_ = tx.Rollback()
}
