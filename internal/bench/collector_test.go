package bench

import (
	"testing"
)

func TestCollectorRecordsInCallOrder(t *testing.T) {
	c := NewCollector(1000)
	c.Record("Q", ExecutionResult{ElapsedMS: 30, Rows: 1})
	c.Record("Q", ExecutionResult{ElapsedMS: 10, Rows: 1})
	c.Record("Q", ExecutionResult{ElapsedMS: 20, Rows: 1})

	s := c.StatsFor("Q")
	if s.First != 30 {
		t.Errorf("First = %d, want 30", s.First)
	}
	if s.Last != 20 {
		t.Errorf("Last = %d, want 20", s.Last)
	}
	if c.Samples("Q") != 3 {
		t.Errorf("Samples = %d, want 3", c.Samples("Q"))
	}
}

func TestCollectorRowsFirstWriteWins(t *testing.T) {
	c := NewCollector(1000)
	c.Record("Q", ExecutionResult{ElapsedMS: 10, Rows: 42})
	c.Record("Q", ExecutionResult{ElapsedMS: 12, Rows: 99})

	rows, ok := c.RowsFor("Q")
	if !ok {
		t.Fatal("expected row count")
	}
	if rows != 42 {
		t.Errorf("rows = %d, want 42 (first successful run)", rows)
	}
}

func TestCollectorRowsSurviveLaterTimeout(t *testing.T) {
	c := NewCollector(1000)
	c.Record("Q", ExecutionResult{ElapsedMS: 10, Rows: 42})
	c.Record("Q", ExecutionResult{ElapsedMS: 1000, TimedOut: true})

	rows, ok := c.RowsFor("Q")
	if !ok || rows != 42 {
		t.Errorf("rows = %d ok=%v, want 42 true", rows, ok)
	}
}

func TestCollectorRowsSkipTimeouts(t *testing.T) {
	c := NewCollector(1000)
	c.Record("Q", ExecutionResult{ElapsedMS: 1000, TimedOut: true})

	if _, ok := c.RowsFor("Q"); ok {
		t.Error("expected no row count when every run timed out")
	}

	// First non-timeout run supplies the count even after timeouts
	c.Record("Q", ExecutionResult{ElapsedMS: 15, Rows: 7})
	rows, ok := c.RowsFor("Q")
	if !ok || rows != 7 {
		t.Errorf("rows = %d ok=%v, want 7 true", rows, ok)
	}
}

func TestCollectorIdenticalTextSharesBucket(t *testing.T) {
	// Identity is exact text: textually identical queries share a bucket
	c := NewCollector(1000)
	c.Record("SELECT 1", ExecutionResult{ElapsedMS: 5, Rows: 1})
	c.Record("SELECT 1", ExecutionResult{ElapsedMS: 7, Rows: 1})

	if c.Samples("SELECT 1") != 2 {
		t.Errorf("Samples = %d, want 2", c.Samples("SELECT 1"))
	}
}

func TestCollectorUnknownQuery(t *testing.T) {
	c := NewCollector(1000)

	s := c.StatsFor("never recorded")
	if s.First != 0 || s.Timeouts != 0 {
		t.Errorf("expected zero stats, got %+v", s)
	}
	if _, ok := c.RowsFor("never recorded"); ok {
		t.Error("expected no rows for unknown query")
	}
}

func TestCollectorStatsRecomputedFresh(t *testing.T) {
	c := NewCollector(1000)
	c.Record("Q", ExecutionResult{ElapsedMS: 10, Rows: 1})

	first := c.StatsFor("Q")
	c.Record("Q", ExecutionResult{ElapsedMS: 50, Rows: 1})
	second := c.StatsFor("Q")

	if first.Max != 10 {
		t.Errorf("first snapshot Max = %d, want 10", first.Max)
	}
	if second.Max != 50 {
		t.Errorf("second snapshot Max = %d, want 50", second.Max)
	}
}
