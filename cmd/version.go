// Package cmd - version command showing build and system info
package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"sqlbench/internal/driver"
)

var versionOutputFormat string

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version and system information",
	Long: `Display version information including:

  - sqlbench version, build time, and git commit
  - Go runtime version
  - Operating system and architecture
  - Supported database drivers

Examples:
  # Show version info
  sqlbench version

  # JSON output for scripts
  sqlbench version --format json

  # Short version only
  sqlbench version --format short`,
	Run: runVersionCmd,
}

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().StringVar(&versionOutputFormat, "format", "table", "Output format (table, json, short)")
}

type versionInfo struct {
	Version   string   `json:"version"`
	BuildTime string   `json:"build_time"`
	GitCommit string   `json:"git_commit"`
	GoVersion string   `json:"go_version"`
	OS        string   `json:"os"`
	Arch      string   `json:"arch"`
	NumCPU    int      `json:"num_cpu"`
	Drivers   []string `json:"drivers"`
}

func runVersionCmd(cmd *cobra.Command, args []string) {
	info := versionInfo{
		Version:   cfg.Version,
		BuildTime: cfg.BuildTime,
		GitCommit: cfg.GitCommit,
		GoVersion: runtime.Version(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
		NumCPU:    runtime.NumCPU(),
		Drivers:   driver.Known(),
	}

	switch versionOutputFormat {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		enc.Encode(info)
	case "short":
		fmt.Printf("sqlbench %s\n", info.Version)
	default:
		fmt.Printf("sqlbench %s\n", info.Version)
		fmt.Printf("  Build Time: %s\n", info.BuildTime)
		fmt.Printf("  Git Commit: %s\n", info.GitCommit)
		fmt.Printf("  Go:         %s (%s/%s, %d CPUs)\n",
			info.GoVersion, info.OS, info.Arch, info.NumCPU)
		fmt.Printf("  Drivers:    %v\n", info.Drivers)
	}
}
