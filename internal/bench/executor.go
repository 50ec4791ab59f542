package bench

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"sqlbench/internal/errors"
)

// Execute runs one query against an open connection under a deadline.
//
// The statement is prepared first; a preparation failure (malformed SQL,
// dead connection) is a structural problem and is returned as an error.
// After successful preparation, any failure (including deadline expiry)
// is folded into a timeout outcome: the driver layer cannot reliably
// distinguish "took too long" from "failed", and both mean the statement
// was unusable within budget. Elapsed time includes draining the full
// result set, not just query dispatch.
func Execute(ctx context.Context, db *sql.DB, query string, timeout time.Duration) (ExecutionResult, error) {
	stmt, err := db.PrepareContext(ctx, query)
	if err != nil {
		return ExecutionResult{}, errors.NewDataError(errors.ErrCodePrepareFailed,
			fmt.Sprintf("prepare failed: %v", err), "").WithCause(err)
	}
	defer stmt.Close()

	execCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()
	rows, err := stmt.QueryContext(execCtx)
	if err != nil {
		return timeoutResult(timeout), nil
	}

	var count int64
	for rows.Next() {
		count++
	}
	drainErr := rows.Err()
	rows.Close()
	elapsed := time.Since(start)

	if drainErr != nil {
		return timeoutResult(timeout), nil
	}

	return ExecutionResult{
		ElapsedMS: elapsed.Milliseconds(),
		Rows:      count,
	}, nil
}

// timeoutResult encodes a post-preparation failure as a sentinel sample
// equal to the full timeout budget.
func timeoutResult(timeout time.Duration) ExecutionResult {
	return ExecutionResult{
		ElapsedMS: timeout.Milliseconds(),
		Rows:      0,
		TimedOut:  true,
	}
}
