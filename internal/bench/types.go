// Package bench implements the benchmarking harness: execution scheduling,
// per-statement timeout containment, and statistics aggregation.
package bench

import (
	"database/sql"
	"fmt"
	"strings"

	"sqlbench/internal/errors"
)

// Target describes one database to benchmark. Immutable once parsed from
// configuration; lifetime is a single invocation.
type Target struct {
	Name     string `json:"name" mapstructure:"name"`
	Driver   string `json:"driver" mapstructure:"driver"`
	URL      string `json:"url" mapstructure:"url"`
	User     string `json:"user,omitempty" mapstructure:"user"`
	Password string `json:"-" mapstructure:"password"`
}

// ResolvedTarget pairs a target with its connection-opening strategy,
// resolved from the driver registry at configuration-parse time. An
// unresolvable driver never reaches the runner.
type ResolvedTarget struct {
	Target Target
	Open   func() (*sql.DB, error)
}

// Mode is the ordering policy controlling how repeated runs of different
// queries are interleaved.
type Mode int

const (
	// ModeSequential runs query A `runs` times, then B `runs` times, etc.
	ModeSequential Mode = iota
	// ModeRoundRobin interleaves: A,B,C,A,B,C,… for `runs` cycles.
	ModeRoundRobin
)

func (m Mode) String() string {
	switch m {
	case ModeRoundRobin:
		return "round-robin"
	default:
		return "sequential"
	}
}

// ParseMode parses a schedule mode name.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "sequential", "seq":
		return ModeSequential, nil
	case "round-robin", "roundrobin", "rr":
		return ModeRoundRobin, nil
	}
	return ModeSequential, errors.NewConfigError(errors.ErrCodeInvalidMode,
		fmt.Sprintf("unknown schedule mode %q", s),
		"use \"sequential\" or \"round-robin\"")
}

// ExecutionResult is the outcome of one statement execution attempt.
type ExecutionResult struct {
	ElapsedMS int64 `json:"elapsed_ms"`
	Rows      int64 `json:"rows"`
	TimedOut  bool  `json:"timed_out"`
}

// Report summarizes one (database, query) pair after a full pass.
type Report struct {
	Database  string `json:"database"`
	Query     string `json:"query"`
	Runs      int    `json:"runs"`
	Stats     Stats  `json:"stats"`
	Rows      int64  `json:"rows"`
	RowsKnown bool   `json:"rows_known"`
}
