package catalog

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"sqlbench/internal/bench"
	"sqlbench/internal/hostinfo"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "catalog.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleRecord(id string, started time.Time) *RunRecord {
	return &RunRecord{
		RunID:      id,
		Suite:      "suites/crash.yaml",
		Runs:       10,
		Mode:       "sequential",
		TimeoutSec: 300,
		StartedAt:  started,
		FinishedAt: started.Add(90 * time.Second),
		Host: hostinfo.Info{
			Hostname:  "bench-host",
			OS:        "linux",
			Platform:  "debian 12.6",
			Arch:      "amd64",
			CPUModel:  "Intel Xeon E5-2680",
			CPUCores:  8,
			TotalRAM:  16 << 30,
			GoVersion: "go1.24.0",
		},
		Reports: []bench.Report{
			{
				Database: "local-pg",
				Query:    "SELECT COUNT(*) FROM crash_data",
				Runs:     10,
				Stats:    bench.Stats{Min: 12, Max: 40, Average: 20.5, Median: 19, Timeouts: 1},
				Rows:     1, RowsKnown: true,
			},
			{
				Database: "local-maria",
				Query:    "SELECT COUNT(*) FROM crash_data",
				Runs:     10,
				Stats:    bench.Stats{Min: 30, Max: 80, Average: 50, Median: 48, Timeouts: 2},
				Rows:     1, RowsKnown: true,
			},
		},
	}
}

func TestStoreSaveAndGet(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	rec := sampleRecord("run-001", time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC))
	if err := s.Save(ctx, rec); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := s.Get(ctx, "run-001")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Suite != rec.Suite || got.Mode != rec.Mode || got.TimeoutSec != 300 {
		t.Errorf("record = %+v", got)
	}
	if len(got.Reports) != 2 {
		t.Fatalf("got %d reports, want 2", len(got.Reports))
	}
	if got.Reports[0].Stats.Average != 20.5 {
		t.Errorf("Average = %v, want 20.5", got.Reports[0].Stats.Average)
	}

	// The host environment survives the round trip, not just the name.
	if got.Host.Hostname != "bench-host" {
		t.Errorf("Hostname = %q, want bench-host", got.Host.Hostname)
	}
	if got.Host.Platform != "debian 12.6" || got.Host.CPUModel != "Intel Xeon E5-2680" {
		t.Errorf("host environment lost: %+v", got.Host)
	}
	if got.Host.CPUCores != 8 || got.Host.TotalRAM != 16<<30 {
		t.Errorf("host sizing lost: %+v", got.Host)
	}
}

func TestStoreListRecentNewestFirst(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	base := time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)
	for i, id := range []string{"run-a", "run-b", "run-c"} {
		if err := s.Save(ctx, sampleRecord(id, base.Add(time.Duration(i)*time.Hour))); err != nil {
			t.Fatalf("Save %s: %v", id, err)
		}
	}

	list, err := s.ListRecent(ctx, 2)
	if err != nil {
		t.Fatalf("ListRecent: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("got %d rows, want 2", len(list))
	}
	if list[0].RunID != "run-c" || list[1].RunID != "run-b" {
		t.Errorf("order = [%s, %s], want newest first", list[0].RunID, list[1].RunID)
	}

	// Summary columns are derived from the reports.
	if list[0].Targets != 2 || list[0].Queries != 1 {
		t.Errorf("summary = %d targets / %d queries, want 2/1", list[0].Targets, list[0].Queries)
	}
	if list[0].Timeouts != 3 {
		t.Errorf("Timeouts = %d, want 3", list[0].Timeouts)
	}
	if list[0].Hostname != "bench-host" {
		t.Errorf("Hostname = %q, want bench-host", list[0].Hostname)
	}
}

func TestStoreListRecentScanErrorSurfaces(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	// A hand-written row with a NULL hostname does not scan into a
	// string. The error must reach the caller instead of the row
	// silently vanishing from the listing.
	now := time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO latency_runs (
			run_id, suite, runs, mode, timeout_sec,
			targets, queries, timeouts,
			started_at, finished_at, report_json, hostname
		) VALUES ('run-bad','suites/crash.yaml',1,'sequential',1,1,1,0,?,?,NULL,NULL)`,
		now, now)
	if err != nil {
		t.Fatalf("insert: %v", err)
	}

	if _, err := s.ListRecent(ctx, 10); err == nil {
		t.Fatal("expected scan error, got none")
	}
}

func TestStoreSaveIsIdempotentPerRunID(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	started := time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)
	if err := s.Save(ctx, sampleRecord("run-x", started)); err != nil {
		t.Fatalf("Save: %v", err)
	}
	updated := sampleRecord("run-x", started)
	updated.Runs = 20
	if err := s.Save(ctx, updated); err != nil {
		t.Fatalf("second Save: %v", err)
	}

	list, err := s.ListRecent(ctx, 10)
	if err != nil {
		t.Fatalf("ListRecent: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("got %d rows, want 1 (replace, not duplicate)", len(list))
	}
	got, err := s.Get(ctx, "run-x")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Runs != 20 {
		t.Errorf("Runs = %d, want replaced value 20", got.Runs)
	}
}
