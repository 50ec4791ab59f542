package bench

import (
	"fmt"

	"sqlbench/internal/errors"
)

// BuildSequence produces the deterministic ordered list of queries to
// execute. Output length is always len(queries) * runs.
//
// ModeSequential fully consumes one query before moving to the next;
// ModeRoundRobin makes `runs` passes over the query list in input order.
func BuildSequence(queries []string, runs int, mode Mode) ([]string, error) {
	if runs <= 0 {
		return nil, errors.NewConfigError(errors.ErrCodeInvalidRunCount,
			fmt.Sprintf("run count must be positive, got %d", runs), "")
	}
	if len(queries) == 0 {
		return nil, errors.NewConfigError(errors.ErrCodeNoQueries,
			"no queries to schedule", "add at least one query to the suite")
	}

	seq := make([]string, 0, len(queries)*runs)
	switch mode {
	case ModeRoundRobin:
		for i := 0; i < runs; i++ {
			seq = append(seq, queries...)
		}
	default:
		for _, q := range queries {
			for i := 0; i < runs; i++ {
				seq = append(seq, q)
			}
		}
	}
	return seq, nil
}
