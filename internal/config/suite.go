package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"

	"sqlbench/internal/bench"
	"sqlbench/internal/errors"
)

// Suite is the benchmark suite file: the databases to measure and the
// statements to measure against them. Supports YAML, TOML and JSON,
// whatever viper can decode from the file extension.
type Suite struct {
	// LogFile is the result log path. The --log flag overrides it.
	LogFile string `mapstructure:"log_file"`

	// Runs, Mode and TimeoutSec override the global defaults when non-zero.
	Runs       int    `mapstructure:"runs"`
	Mode       string `mapstructure:"mode"`
	TimeoutSec int    `mapstructure:"timeout_sec"`

	Targets []bench.Target `mapstructure:"databases"`
	Queries []string       `mapstructure:"queries"`
}

// LoadSuite reads and validates a suite file.
func LoadSuite(path string) (*Suite, error) {
	if path == "" {
		return nil, errors.NewConfigError(errors.ErrCodeMissingSuite,
			"no suite file given",
			"pass --suite or set SQLBENCH_SUITE")
	}
	if _, err := os.Stat(path); err != nil {
		return nil, errors.NewConfigError(errors.ErrCodeMissingSuite,
			fmt.Sprintf("suite file not readable: %v", err),
			"check the path given to --suite").WithCause(err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, errors.NewConfigError(errors.ErrCodeInvalidSuite,
			fmt.Sprintf("suite file %s does not parse: %v", path, err),
			"fix the syntax error in the suite file").WithCause(err)
	}

	var s Suite
	if err := v.Unmarshal(&s); err != nil {
		return nil, errors.NewConfigError(errors.ErrCodeInvalidSuite,
			fmt.Sprintf("suite file %s has the wrong shape: %v", path, err),
			"compare the file against the example suite in the README").WithCause(err)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks structural completeness. Driver resolution happens
// later, in the driver registry.
func (s *Suite) Validate() error {
	if len(s.Targets) == 0 {
		return errors.NewConfigError(errors.ErrCodeNoTargets,
			"suite defines no databases",
			"add at least one entry under 'databases'")
	}
	if len(s.Queries) == 0 {
		return errors.NewConfigError(errors.ErrCodeNoQueries,
			"suite defines no queries",
			"add at least one entry under 'queries'")
	}
	for i, q := range s.Queries {
		if q == "" {
			return errors.NewConfigError(errors.ErrCodeInvalidSuite,
				fmt.Sprintf("query %d is empty", i+1),
				"remove the empty entry or fill in the statement")
		}
	}

	seen := make(map[string]bool, len(s.Targets))
	for i, t := range s.Targets {
		if t.Name == "" {
			return errors.NewConfigError(errors.ErrCodeInvalidSuite,
				fmt.Sprintf("database %d has no name", i+1),
				"give every database a unique name")
		}
		if seen[t.Name] {
			return errors.NewConfigError(errors.ErrCodeInvalidSuite,
				fmt.Sprintf("database name %q appears twice", t.Name),
				"give every database a unique name")
		}
		seen[t.Name] = true
		if t.Driver == "" {
			return errors.NewConfigError(errors.ErrCodeInvalidSuite,
				fmt.Sprintf("database %q has no driver", t.Name),
				"set driver to postgres, mysql or sqlite")
		}
		if t.URL == "" {
			return errors.NewConfigError(errors.ErrCodeInvalidSuite,
				fmt.Sprintf("database %q has no url", t.Name),
				"set the connection url")
		}
	}

	if s.Runs < 0 {
		return errors.NewConfigError(errors.ErrCodeInvalidRunCount,
			"runs must not be negative",
			"set runs to 1 or more, or omit it")
	}
	if s.TimeoutSec < 0 {
		return errors.NewConfigError(errors.ErrCodeInvalidSuite,
			"timeout_sec must not be negative",
			"set timeout_sec to 1 or more, or omit it")
	}
	if s.Mode != "" {
		if _, err := bench.ParseMode(s.Mode); err != nil {
			return err
		}
	}
	return nil
}

// Explicit marks run parameters the user set on the command line. An
// explicit flag beats the suite value, which beats the global default.
type Explicit struct {
	Runs    bool
	Mode    bool
	Timeout bool
}

// RunConfig merges the suite's overrides over the global defaults and
// produces the final run parameters. Flags marked explicit win over
// the suite.
func (s *Suite) RunConfig(cfg *Config, explicit Explicit) (bench.RunConfig, error) {
	runs := cfg.Runs
	if s.Runs > 0 && !explicit.Runs {
		runs = s.Runs
	}
	timeout := cfg.Timeout
	if s.TimeoutSec > 0 && !explicit.Timeout {
		timeout = time.Duration(s.TimeoutSec) * time.Second
	}

	modeStr := cfg.Mode
	if s.Mode != "" && !explicit.Mode {
		modeStr = s.Mode
	}
	mode, err := bench.ParseMode(modeStr)
	if err != nil {
		return bench.RunConfig{}, err
	}

	return bench.RunConfig{
		Queries: s.Queries,
		Runs:    runs,
		Mode:    mode,
		Timeout: timeout,
	}, nil
}

// LogPath picks the result log destination: flag beats suite beats a
// timestamped default in the working directory.
func (s *Suite) LogPath(cfg *Config) string {
	if cfg.ResultLog != "" {
		return cfg.ResultLog
	}
	if s.LogFile != "" {
		return s.LogFile
	}
	return fmt.Sprintf("sqlbench_%s.log", time.Now().Format("20060102_150405"))
}
