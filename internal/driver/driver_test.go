package driver

import (
	"testing"

	"sqlbench/internal/bench"
	"sqlbench/internal/errors"
)

func TestResolveKnownDrivers(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"postgres", "postgres"},
		{"postgresql", "postgres"},
		{"pgx", "postgres"},
		{"PG", "postgres"},
		{"mysql", "mysql"},
		{"mariadb", "mysql"},
		{"sqlite", "sqlite"},
		{"sqlite3", "sqlite"},
		{" sqlite ", "sqlite"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			d, err := Resolve(tt.in)
			if err != nil {
				t.Fatalf("Resolve(%q): %v", tt.in, err)
			}
			if d.Name != tt.want {
				t.Errorf("Resolve(%q).Name = %q, want %q", tt.in, d.Name, tt.want)
			}
		})
	}
}

func TestResolveUnknownDriver(t *testing.T) {
	_, err := Resolve("oracle")
	if err == nil {
		t.Fatal("expected error for unknown driver")
	}
	if code := errors.CodeOf(err); code != errors.ErrCodeUnknownDriver {
		t.Errorf("code = %q, want %q", code, errors.ErrCodeUnknownDriver)
	}
	if !errors.IsConfigError(err) {
		t.Error("unknown driver must be a configuration error")
	}
}

func TestKnownIsSortedCanonical(t *testing.T) {
	got := Known()
	want := []string{"mysql", "postgres", "sqlite"}
	if len(got) != len(want) {
		t.Fatalf("Known() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Known() = %v, want %v", got, want)
		}
	}
}

func TestResolveTargetsFailsFast(t *testing.T) {
	targets := []bench.Target{
		{Name: "ok", Driver: "sqlite", URL: ":memory:"},
		{Name: "bad", Driver: "cassandra", URL: "whatever"},
	}
	_, err := ResolveTargets(targets)
	if err == nil {
		t.Fatal("expected resolution to fail on the unknown driver")
	}
	if code := errors.CodeOf(err); code != errors.ErrCodeUnknownDriver {
		t.Errorf("code = %q, want %q", code, errors.ErrCodeUnknownDriver)
	}
}

func TestResolveTargetsBindsEachTarget(t *testing.T) {
	targets := []bench.Target{
		{Name: "one", Driver: "sqlite", URL: "file:one.db"},
		{Name: "two", Driver: "sqlite", URL: "file:two.db"},
	}
	resolved, err := ResolveTargets(targets)
	if err != nil {
		t.Fatalf("ResolveTargets: %v", err)
	}
	if len(resolved) != 2 {
		t.Fatalf("got %d resolved targets, want 2", len(resolved))
	}
	for i, r := range resolved {
		if r.Target.Name != targets[i].Name {
			t.Errorf("resolved[%d].Target.Name = %q, want %q", i, r.Target.Name, targets[i].Name)
		}
		if r.Open == nil {
			t.Errorf("resolved[%d].Open is nil", i)
		}
	}
}

func TestPlaceholders(t *testing.T) {
	pg, _ := Resolve("postgres")
	if got := pg.Placeholder(3); got != "$3" {
		t.Errorf("postgres placeholder = %q, want $3", got)
	}
	my, _ := Resolve("mysql")
	if got := my.Placeholder(3); got != "?" {
		t.Errorf("mysql placeholder = %q, want ?", got)
	}
	lite, _ := Resolve("sqlite")
	if got := lite.Placeholder(1); got != "?" {
		t.Errorf("sqlite placeholder = %q, want ?", got)
	}
}
