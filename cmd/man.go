package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

var manOutputDir string

var manCmd = &cobra.Command{
	Use:   "man",
	Short: "Generate man pages for sqlbench",
	Long: `Generate Unix manual (man) pages for all sqlbench commands.

Installation:
  # Generate pages
  sqlbench man --output /tmp/man

  # Install system-wide (requires root)
  sudo cp /tmp/man/*.1 /usr/local/share/man/man1/
  sudo mandb

  # View pages
  man sqlbench
  man sqlbench-bench`,
	Args: cobra.NoArgs,
	RunE: runGenerateMan,
}

func init() {
	rootCmd.AddCommand(manCmd)
	manCmd.Flags().StringVarP(&manOutputDir, "output", "o", "./man", "Output directory for man pages")
}

func runGenerateMan(cmd *cobra.Command, args []string) error {
	if err := os.MkdirAll(manOutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	header := &doc.GenManHeader{
		Title:   "SQLBENCH",
		Section: "1",
		Source:  "sqlbench",
		Manual:  "SQL Latency Benchmarking Tool",
	}

	if err := doc.GenManTree(cmd.Root(), header, manOutputDir); err != nil {
		return fmt.Errorf("generate man pages: %w", err)
	}

	fmt.Printf("Generated man pages in %s\n", manOutputDir)
	return nil
}
