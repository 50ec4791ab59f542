// Package cmd wires the sqlbench command tree.
package cmd

import (
	"context"
	"time"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"sqlbench/internal/config"
	"sqlbench/internal/logger"
)

// Shared across subcommands, set once in Execute.
var (
	cfg *config.Config
	log logger.Logger
)

var timeoutSecFlag int

var rootCmd = &cobra.Command{
	Use:   "sqlbench",
	Short: "SQL statement latency benchmarking harness",
	Long: `sqlbench repeatedly executes a fixed set of SQL statements against one
or more databases and reports per-statement latency statistics: first,
last, min, max, average, median, standard deviation, timeout count and
row count.

A suite file names the databases and the statements; results go to an
append-only log file that survives across runs.

Examples:
  # Run the suite with its own settings
  sqlbench bench run --suite suites/crash.yaml

  # Ten interleaved runs per statement, 30s timeout
  sqlbench bench run --suite suites/crash.yaml --runs 10 --mode round-robin --timeout 30

  # Import the collision dataset first
  sqlbench load --suite suites/crash.yaml --file Motor_Vehicle_Collisions.tsv.gz`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command with the given configuration and logger.
func Execute(ctx context.Context, c *config.Config, l logger.Logger) error {
	cfg = c
	log = l

	// Optional .env in the working directory, same keys as the
	// environment. Missing file is fine.
	if err := godotenv.Load(); err == nil {
		log.Debug("Loaded .env file")
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&cfg.SuitePath, "suite", "s", cfg.SuitePath, "Suite file (YAML, TOML or JSON)")
	pf.IntVarP(&cfg.Runs, "runs", "r", cfg.Runs, "Runs per statement")
	pf.StringVarP(&cfg.Mode, "mode", "m", cfg.Mode, "Schedule mode (sequential, round-robin)")
	pf.IntVarP(&timeoutSecFlag, "timeout", "t", int(cfg.Timeout/time.Second), "Per-statement timeout in seconds")
	pf.StringVarP(&cfg.ResultLog, "log", "l", cfg.ResultLog, "Result log file (default from suite)")
	pf.StringVar(&cfg.CatalogDB, "catalog", cfg.CatalogDB, "Run history database")
	pf.BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "Disable colored output")
	pf.BoolVar(&cfg.Debug, "debug", cfg.Debug, "Enable debug logging")

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		cfg.Timeout = time.Duration(timeoutSecFlag) * time.Second
		if cfg.NoColor {
			color.NoColor = true
		}
	}

	return rootCmd.ExecuteContext(ctx)
}
