// sqlbench: SQL statement latency benchmarking harness.
// Runs a fixed set of queries repeatedly against one or more databases
// and appends per-statement timing statistics to a result log.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"

	"sqlbench/cmd"
	"sqlbench/internal/config"
	"sqlbench/internal/logger"
)

// Build information (set by ldflags)
var (
	version   = "1.2.0"
	buildTime = "unknown"
	gitCommit = "unknown"
)

func main() {
	// Create context that cancels on interrupt
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg := config.New()
	cfg.Version = version
	cfg.BuildTime = buildTime
	cfg.GitCommit = gitCommit

	// Honor NO_COLOR before anything writes to the terminal. The
	// --no-color flag covers the same switch after flag parsing.
	if cfg.NoColor {
		color.NoColor = true
	}

	// Promote to debug level when the Debug flag is set
	logLevel := cfg.LogLevel
	if cfg.Debug && logLevel != "debug" {
		logLevel = "debug"
	}
	log := logger.New(logLevel, cfg.LogFormat)

	if err := cmd.Execute(ctx, cfg, log); err != nil {
		log.Error("Command failed", "error", err)
		os.Exit(1)
	}
}
