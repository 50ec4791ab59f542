package bench

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
)

// PrintSummary writes a compact per-query summary table to stdout after a
// run. This is a convenience view; the result log is the durable output.
func PrintSummary(reports []Report) {
	if len(reports) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString("╔══════════════════════════════════════════════════════════════════════════════╗\n")
	sb.WriteString("║                              BENCHMARK RESULTS                               ║\n")
	sb.WriteString("╠══════════════════════════════════════════════════════════════════════════════╣\n")
	sb.WriteString("║  Database     Query                 Runs  T/O     Rows      Avg      Median  ║\n")
	sb.WriteString("║  ──────────── ───────────────────── ───── ──── ────────── ───────── ──────── ║\n")
	for _, r := range reports {
		rows := "N/A"
		if r.RowsKnown {
			rows = humanize.Comma(r.Rows)
		}
		sb.WriteString(fmt.Sprintf("║  %-12s %-21s %5d %4d %10s %7.2fms %6.2fms ║\n",
			truncate(r.Database, 12), truncate(flatten(r.Query), 21),
			r.Runs, r.Stats.Timeouts, rows, r.Stats.Average, r.Stats.Median))
	}
	sb.WriteString("╚══════════════════════════════════════════════════════════════════════════════╝\n")
	fmt.Print(sb.String())
}

// PrintDetail writes the full statistic set for one report to stdout.
func PrintDetail(r Report) {
	rows := "N/A"
	if r.RowsKnown {
		rows = humanize.Comma(r.Rows)
	}
	fmt.Printf("\n── %s ──\n", r.Database)
	fmt.Printf("  SQL:      %s\n", flatten(r.Query))
	fmt.Printf("  Runs:     %d   Timeouts: %d   Rows: %s\n", r.Runs, r.Stats.Timeouts, rows)
	fmt.Printf("  First:    %dms   Last: %dms\n", r.Stats.First, r.Stats.Last)
	fmt.Printf("  Min:      %dms   Max: %dms\n", r.Stats.Min, r.Stats.Max)
	fmt.Printf("  Avg:      %.2fms   Median: %.2fms   StdDev: %.2fms\n",
		r.Stats.Average, r.Stats.Median, r.Stats.StdDev)
}

// flatten collapses a multi-line SQL statement to one display line.
func flatten(sql string) string {
	return strings.Join(strings.Fields(sql), " ")
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
