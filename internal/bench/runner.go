package bench

import (
	"context"
	"database/sql"
	"strconv"
	"time"

	"sqlbench/internal/errors"
	"sqlbench/internal/logger"
)

// DefaultTimeout is the per-statement execution deadline when the suite
// does not set one.
const DefaultTimeout = 5 * time.Minute

// RunConfig holds the parameters of one benchmarking invocation.
type RunConfig struct {
	Queries []string
	Runs    int
	Mode    Mode
	Timeout time.Duration
}

// Runner orchestrates a benchmarking invocation: per database target it
// connects, builds the execution sequence, executes it feeding a collector,
// and emits one report per query to the result sink.
//
// Execution is fully sequential: one connection per database, one
// statement in flight at any instant. The connection is exclusively owned
// by the runner for the duration of that database's pass.
type Runner struct {
	cfg  RunConfig
	sink Sink
	log  logger.Logger
}

// NewRunner validates the run configuration and creates a runner.
func NewRunner(cfg RunConfig, sink Sink, log logger.Logger) (*Runner, error) {
	if len(cfg.Queries) == 0 {
		return nil, errors.NewConfigError(errors.ErrCodeNoQueries,
			"benchmark suite has no queries", "add at least one query to the suite")
	}
	if cfg.Runs <= 0 {
		return nil, errors.NewConfigError(errors.ErrCodeInvalidRunCount,
			"run count must be positive", "set runs to 1 or more")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if log == nil {
		log = logger.NewNullLogger()
	}
	return &Runner{cfg: cfg, sink: sink, log: log}, nil
}

// Run benchmarks every target in order and returns the accumulated reports.
// A connection failure skips that one target; remaining targets still run.
// The only errors that surface are context cancellation and result-log
// write failures; per-database and per-run failures are contained and
// visible solely through the logs.
func (r *Runner) Run(ctx context.Context, targets []ResolvedTarget) ([]Report, error) {
	var reports []Report

	for _, t := range targets {
		if err := ctx.Err(); err != nil {
			return reports, err
		}

		passReports, err := r.runTarget(ctx, t)
		if err != nil {
			return reports, err
		}
		reports = append(reports, passReports...)
	}

	return reports, nil
}

// runTarget performs one database's full pass. Returns an error only for
// cancellation or sink write failure; connection and statement problems
// are logged and contained.
func (r *Runner) runTarget(ctx context.Context, t ResolvedTarget) ([]Report, error) {
	name := t.Target.Name
	op := r.log.StartOperation(name)

	if err := r.sink.Info("===== Benchmarking %s =====", name); err != nil {
		return nil, err
	}

	db, err := t.Open()
	if err == nil {
		err = db.PingContext(ctx)
	}
	if err != nil {
		op.Fail("connection failed", "error", err)
		if serr := r.sink.Severe("[%s] Connection error: %v", name, err); serr != nil {
			return nil, serr
		}
		return nil, nil
	}
	defer db.Close()

	r.log.Info("Connected", "target", name, "driver", t.Target.Driver)

	seq, err := BuildSequence(r.cfg.Queries, r.cfg.Runs, r.cfg.Mode)
	if err != nil {
		// Inputs were validated in NewRunner; reaching this is a bug.
		return nil, errors.NewInternalError(errors.ErrCodeLogicError,
			"sequence build failed after validation").WithCause(err)
	}

	collector := NewCollector(r.cfg.Timeout.Milliseconds())
	runNo := make(map[string]int, len(r.cfg.Queries))

	for _, query := range seq {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		runNo[query]++

		if err := r.executeOne(ctx, db, name, query, runNo[query], collector); err != nil {
			return nil, err
		}
	}

	reports := make([]Report, 0, len(r.cfg.Queries))
	for _, query := range r.cfg.Queries {
		rep := Report{
			Database: name,
			Query:    query,
			Runs:     r.cfg.Runs,
			Stats:    collector.StatsFor(query),
		}
		rep.Rows, rep.RowsKnown = collector.RowsFor(query)

		if err := r.emitReport(rep); err != nil {
			return nil, err
		}
		reports = append(reports, rep)
	}

	op.Complete("pass finished", "runs", r.cfg.Runs, "mode", r.cfg.Mode.String())
	return reports, nil
}

// executeOne runs a single sequence item and records the outcome. Prepare
// failures are logged SEVERE and excluded from the samples; post-prepare
// failures arrive as timeout results and are recorded as sentinel samples.
func (r *Runner) executeOne(ctx context.Context, db *sql.DB, name, query string, run int, collector *Collector) error {
	res, err := Execute(ctx, db, query, r.cfg.Timeout)
	if err != nil {
		r.log.Warn("Run failed before execution", "target", name, "query", query, "error", err)
		return r.sink.Severe("[%s] Error on run %d: %v", name, run, err)
	}

	collector.Record(query, res)

	if res.TimedOut {
		r.log.Warn("Run timed out", "target", name, "query", query)
		return r.sink.Warning("[%s] Timeout on run %d after %ds",
			name, run, int(r.cfg.Timeout.Seconds()))
	}
	return nil
}

// emitReport writes one (database, query) summary block to the result sink.
func (r *Runner) emitReport(rep Report) error {
	rows := "N/A"
	if rep.RowsKnown {
		rows = strconv.FormatInt(rep.Rows, 10)
	}

	var err error
	info := func(format string, args ...any) {
		if err == nil {
			err = r.sink.Info(format, args...)
		}
	}

	info("[%s] SQL: %q", rep.Database, rep.Query)
	info("[%s] Runs: %d", rep.Database, rep.Runs)
	info("[%s] Timeouts: %d", rep.Database, rep.Stats.Timeouts)
	info("[%s] Rows returned: %s", rep.Database, rows)
	info("[%s] First run: %dms", rep.Database, rep.Stats.First)
	info("[%s] Last run: %dms", rep.Database, rep.Stats.Last)
	info("[%s] Min time: %dms", rep.Database, rep.Stats.Min)
	info("[%s] Max time: %dms", rep.Database, rep.Stats.Max)
	info("[%s] Avg time: %.2fms", rep.Database, rep.Stats.Average)
	info("[%s] Median: %.2fms", rep.Database, rep.Stats.Median)
	if err == nil {
		err = r.sink.Blank()
	}
	return err
}
