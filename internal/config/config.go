package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds all configuration options
type Config struct {
	// Version information
	Version   string
	BuildTime string
	GitCommit string

	// Suite file path (--suite flag)
	SuitePath string

	// Benchmark options
	Runs    int
	Mode    string // "sequential" or "round-robin"
	Timeout time.Duration

	// Result log path. Overrides the suite's log_file when set.
	ResultLog string

	// Run catalog database (local SQLite)
	CatalogDB string

	// Output options
	NoColor   bool
	Debug     bool
	LogLevel  string
	LogFormat string
}

// New creates a new configuration with default values
func New() *Config {
	return &Config{
		SuitePath: getEnvString("SQLBENCH_SUITE", ""),

		Runs:    getEnvInt("SQLBENCH_RUNS", 10),
		Mode:    getEnvString("SQLBENCH_MODE", "sequential"),
		Timeout: time.Duration(getEnvInt("SQLBENCH_TIMEOUT_SEC", 300)) * time.Second,

		ResultLog: getEnvString("SQLBENCH_LOG", ""),
		CatalogDB: getEnvString("SQLBENCH_CATALOG", getDefaultCatalogPath()),

		NoColor:   getEnvBool("NO_COLOR", false),
		Debug:     getEnvBool("DEBUG", false),
		LogLevel:  getEnvString("LOG_LEVEL", "info"),
		LogFormat: getEnvString("LOG_FORMAT", "text"),
	}
}

// Helper functions
func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getDefaultCatalogPath() string {
	homeDir, _ := os.UserHomeDir()
	if homeDir != "" {
		return filepath.Join(homeDir, ".config", "sqlbench", "catalog.db")
	}
	return filepath.Join(os.TempDir(), "sqlbench-catalog.db")
}
