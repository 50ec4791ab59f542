package bench

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFileSinkAppendsTaggedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.log")
	sink := NewFileSink(path)

	if err := sink.Info("[db] Runs: %d", 5); err != nil {
		t.Fatalf("Info: %v", err)
	}
	if err := sink.Warning("[db] Timeout on run %d after %ds", 2, 300); err != nil {
		t.Fatalf("Warning: %v", err)
	}
	if err := sink.Severe("[db] Connection error: %s", "refused"); err != nil {
		t.Fatalf("Severe: %v", err)
	}
	if err := sink.Blank(); err != nil {
		t.Fatalf("Blank: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}

	lines := strings.Split(string(data), "\n")
	want := []string{
		"INFO: [db] Runs: 5",
		"WARNING: [db] Timeout on run 2 after 300s",
		"SEVERE: [db] Connection error: refused",
		"",
	}
	for i, w := range want {
		if i >= len(lines) {
			t.Fatalf("missing line %d, got %q", i, string(data))
		}
		if lines[i] != w {
			t.Errorf("line %d = %q, want %q", i, lines[i], w)
		}
	}
}

func TestFileSinkAppendsAcrossInstances(t *testing.T) {
	// The file handle is not held open: a fresh sink on the same path
	// must append, not truncate.
	path := filepath.Join(t.TempDir(), "results.log")

	if err := NewFileSink(path).Info("first"); err != nil {
		t.Fatalf("first append: %v", err)
	}
	if err := NewFileSink(path).Info("second"); err != nil {
		t.Fatalf("second append: %v", err)
	}

	data, _ := os.ReadFile(path)
	if string(data) != "INFO: first\nINFO: second\n" {
		t.Errorf("unexpected content: %q", string(data))
	}
}

func TestBufferSink(t *testing.T) {
	sink := NewBufferSink()
	_ = sink.Info("a %d", 1)
	_ = sink.Warning("b")
	_ = sink.Severe("c")
	_ = sink.Blank()

	lines := sink.Lines()
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d", len(lines))
	}
	if lines[0] != "INFO: a 1" || lines[1] != "WARNING: b" || lines[2] != "SEVERE: c" || lines[3] != "" {
		t.Errorf("unexpected lines: %v", lines)
	}
}
