package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"sqlbench/internal/bench"
	"sqlbench/internal/catalog"
	"sqlbench/internal/config"
	"sqlbench/internal/driver"
	"sqlbench/internal/hostinfo"
)

var (
	benchLast       int
	benchOutputJSON bool
	benchNoCatalog  bool
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Run latency benchmarks and inspect past runs",
	Long: `Measure per-statement latency across the databases in a suite.

Subcommands:

  run      Execute the suite and append results to the log
  history  Show past runs from the catalog
  show     Display the full report for a specific run

Examples:

  # Run a suite
  sqlbench bench run --suite suites/crash.yaml

  # Ten interleaved runs per statement
  sqlbench bench run --suite suites/crash.yaml --runs 10 --mode round-robin

  # View history
  sqlbench bench history --last 10

  # Full report for one run
  sqlbench bench show 7d9e7c3a --json`,
}

var benchRunCmd = &cobra.Command{
	Use:   "run",
	Short: "Execute the suite and append results to the log",
	Long: `Execute every statement in the suite against every database it names.

Each database gets one connection and a full pass of the schedule. A
database that cannot be reached is reported and skipped; the remaining
databases still run. Per-statement results go to the append-only result
log; a summary table and the catalog entry are written at the end.`,
	Args: cobra.NoArgs,
	RunE: runBench,
}

var benchHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "Show past runs from the catalog",
	RunE:  runBenchHistory,
}

var benchShowCmd = &cobra.Command{
	Use:   "show [run-id]",
	Short: "Display the full report for a run",
	Args:  cobra.ExactArgs(1),
	RunE:  runBenchShow,
}

func init() {
	rootCmd.AddCommand(benchCmd)
	benchCmd.AddCommand(benchRunCmd)
	benchCmd.AddCommand(benchHistoryCmd)
	benchCmd.AddCommand(benchShowCmd)

	benchRunCmd.Flags().BoolVar(&benchNoCatalog, "no-catalog", false, "Skip recording the run in the catalog")
	benchRunCmd.Flags().BoolVar(&benchOutputJSON, "json", false, "Print reports as JSON instead of the summary table")

	benchHistoryCmd.Flags().IntVar(&benchLast, "last", 20, "Number of recent runs to show")
	benchShowCmd.Flags().BoolVar(&benchOutputJSON, "json", false, "Print raw JSON")
}

func runBench(cmd *cobra.Command, args []string) error {
	suite, err := config.LoadSuite(cfg.SuitePath)
	if err != nil {
		return err
	}
	// Flags the user typed beat suite values, which beat the defaults.
	pf := cmd.Root().PersistentFlags()
	rc, err := suite.RunConfig(cfg, config.Explicit{
		Runs:    pf.Changed("runs"),
		Mode:    pf.Changed("mode"),
		Timeout: pf.Changed("timeout"),
	})
	if err != nil {
		return err
	}

	// A suite naming an unknown driver dies here, before anything runs.
	targets, err := driver.ResolveTargets(suite.Targets)
	if err != nil {
		return err
	}

	logPath := suite.LogPath(cfg)
	sink := bench.NewFileSink(logPath)

	runner, err := bench.NewRunner(rc, sink, log)
	if err != nil {
		return err
	}

	host := hostinfo.Collect()
	log.Info("Starting benchmark",
		"suite", cfg.SuitePath, "databases", len(targets),
		"queries", len(rc.Queries), "runs", rc.Runs,
		"mode", rc.Mode.String(), "log", logPath)

	started := time.Now()
	reports, err := runner.Run(cmd.Context(), targets)
	if err != nil {
		return err
	}
	finished := time.Now()

	if benchOutputJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(reports); err != nil {
			return err
		}
	} else {
		bench.PrintSummary(reports)
	}

	if !benchNoCatalog {
		if err := saveRun(cmd, suite, rc, reports, host, started, finished); err != nil {
			// History is best-effort; the result log already has the data.
			log.Warn("Could not record run in catalog", "error", err)
		}
	}

	log.Info("Benchmark finished", "elapsed", finished.Sub(started).Round(time.Millisecond).String())
	return nil
}

func saveRun(cmd *cobra.Command, suite *config.Suite, rc bench.RunConfig,
	reports []bench.Report, host hostinfo.Info, started, finished time.Time) error {

	store, err := catalog.Open(cfg.CatalogDB)
	if err != nil {
		return err
	}
	defer store.Close()

	rec := &catalog.RunRecord{
		RunID:      uuid.New().String(),
		Suite:      cfg.SuitePath,
		Runs:       rc.Runs,
		Mode:       rc.Mode.String(),
		TimeoutSec: int(rc.Timeout.Seconds()),
		StartedAt:  started,
		FinishedAt: finished,
		Host:       host,
		Reports:    reports,
	}
	if err := store.Save(cmd.Context(), rec); err != nil {
		return err
	}
	log.Info("Run recorded", "run_id", rec.RunID)
	return nil
}

func runBenchHistory(cmd *cobra.Command, args []string) error {
	store, err := catalog.Open(cfg.CatalogDB)
	if err != nil {
		return fmt.Errorf("open catalog: %w", err)
	}
	defer store.Close()

	runs, err := store.ListRecent(cmd.Context(), benchLast)
	if err != nil {
		return fmt.Errorf("query history: %w", err)
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	fmt.Println()
	fmt.Printf("%-38s %-28s %4s %4s %4s %-20s %s\n",
		"Run ID", "Suite", "DBs", "Qs", "T/O", "Started", "Host")
	fmt.Println(strings.Repeat("─", 110))
	for _, r := range runs {
		fmt.Printf("%-38s %-28s %4d %4d %4d %-20s %s\n",
			r.RunID, r.Suite, r.Targets, r.Queries, r.Timeouts,
			r.StartedAt.Format("2006-01-02 15:04:05"), r.Hostname)
	}
	fmt.Println()
	return nil
}

func runBenchShow(cmd *cobra.Command, args []string) error {
	store, err := catalog.Open(cfg.CatalogDB)
	if err != nil {
		return fmt.Errorf("open catalog: %w", err)
	}
	defer store.Close()

	rec, err := store.Get(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("load run: %w", err)
	}

	if benchOutputJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rec)
	}

	fmt.Printf("\nRun %s\n", rec.RunID)
	fmt.Printf("Suite: %s   Host: %s\n", rec.Suite, rec.Host.Hostname)
	fmt.Printf("Env: %s/%s   CPU: %s (%d cores)   RAM: %s   %s\n",
		rec.Host.Platform, rec.Host.Arch,
		rec.Host.CPUModel, rec.Host.CPUCores,
		humanize.IBytes(rec.Host.TotalRAM), rec.Host.GoVersion)
	fmt.Printf("Runs: %d   Mode: %s   Timeout: %ds   Started: %s\n",
		rec.Runs, rec.Mode, rec.TimeoutSec,
		rec.StartedAt.Format("2006-01-02 15:04:05"))
	for _, r := range rec.Reports {
		bench.PrintDetail(r)
	}
	fmt.Println()
	return nil
}
