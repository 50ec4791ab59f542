// Package driver maps configured driver names onto database/sql drivers.
// Resolution happens at configuration-parse time: a suite referencing an
// unknown driver is rejected before any benchmarking starts.
package driver

import (
	"database/sql"
	"fmt"
	"sort"
	"strings"

	"sqlbench/internal/bench"
	"sqlbench/internal/errors"
)

// Driver adapts one database engine: how to open a connection from a
// target's URL and credentials, and how to spell bind parameters.
type Driver struct {
	// Name is the canonical driver name used in suite files.
	Name string

	// Placeholder renders the i-th bind parameter (1-based).
	Placeholder func(i int) string

	// Open establishes a connection pool for the target. It must not
	// ping; the caller decides when connectivity is verified.
	Open func(t bench.Target) (*sql.DB, error)
}

var registry = map[string]*Driver{}

// Register adds a driver under its canonical name plus aliases.
func Register(d *Driver, aliases ...string) {
	registry[d.Name] = d
	for _, a := range aliases {
		registry[a] = d
	}
}

// Resolve looks up a driver by name. Unknown names produce a fatal
// configuration error naming the supported drivers.
func Resolve(name string) (*Driver, error) {
	d, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, errors.NewConfigError(errors.ErrCodeUnknownDriver,
			fmt.Sprintf("unknown driver %q", name),
			fmt.Sprintf("use one of: %s", strings.Join(Known(), ", ")))
	}
	return d, nil
}

// Known returns the canonical driver names, sorted.
func Known() []string {
	seen := map[string]bool{}
	var names []string
	for _, d := range registry {
		if !seen[d.Name] {
			seen[d.Name] = true
			names = append(names, d.Name)
		}
	}
	sort.Strings(names)
	return names
}

// ResolveTargets resolves every target's driver. The first unresolvable
// driver aborts the whole resolution: a misconfigured suite never gets a
// partial pass.
func ResolveTargets(targets []bench.Target) ([]bench.ResolvedTarget, error) {
	resolved := make([]bench.ResolvedTarget, 0, len(targets))
	for _, t := range targets {
		d, err := Resolve(t.Driver)
		if err != nil {
			return nil, err
		}
		t := t
		resolved = append(resolved, bench.ResolvedTarget{
			Target: t,
			Open:   func() (*sql.DB, error) { return d.Open(t) },
		})
	}
	return resolved, nil
}
