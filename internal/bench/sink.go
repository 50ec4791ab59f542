package bench

import (
	"fmt"
	"os"
	"strings"
	"sync"
)

// Sink is the append-only result log. One event per line, tagged with a
// severity token. Distinct from operational logging: the line format here
// is a stable output contract consumed by downstream analysis scripts.
type Sink interface {
	Info(format string, args ...any) error
	Warning(format string, args ...any) error
	Severe(format string, args ...any) error
	// Blank appends an empty separator line.
	Blank() error
}

// FileSink appends to a log file, opening and closing the file for each
// individual line. Interleaved writers from other processes therefore
// cannot corrupt a single append.
type FileSink struct {
	path string
}

// NewFileSink creates a sink for the given path. The file is created on
// first append.
func NewFileSink(path string) *FileSink {
	return &FileSink{path: path}
}

func (s *FileSink) Info(format string, args ...any) error {
	return s.append("INFO: " + fmt.Sprintf(format, args...))
}

func (s *FileSink) Warning(format string, args ...any) error {
	return s.append("WARNING: " + fmt.Sprintf(format, args...))
}

func (s *FileSink) Severe(format string, args ...any) error {
	return s.append("SEVERE: " + fmt.Sprintf(format, args...))
}

func (s *FileSink) Blank() error {
	return s.append("")
}

func (s *FileSink) append(line string) error {
	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("open result log: %w", err)
	}
	_, werr := f.WriteString(line + "\n")
	cerr := f.Close()
	if werr != nil {
		return fmt.Errorf("append result log: %w", werr)
	}
	return cerr
}

// BufferSink collects log lines in memory (for tests and dry runs).
type BufferSink struct {
	mu    sync.Mutex
	lines []string
}

func NewBufferSink() *BufferSink {
	return &BufferSink{}
}

func (s *BufferSink) Info(format string, args ...any) error {
	s.add("INFO: " + fmt.Sprintf(format, args...))
	return nil
}

func (s *BufferSink) Warning(format string, args ...any) error {
	s.add("WARNING: " + fmt.Sprintf(format, args...))
	return nil
}

func (s *BufferSink) Severe(format string, args ...any) error {
	s.add("SEVERE: " + fmt.Sprintf(format, args...))
	return nil
}

func (s *BufferSink) Blank() error {
	s.add("")
	return nil
}

func (s *BufferSink) add(line string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = append(s.lines, line)
}

// Lines returns a copy of all appended lines.
func (s *BufferSink) Lines() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.lines))
	copy(out, s.lines)
	return out
}

// String joins all lines for substring assertions.
func (s *BufferSink) String() string {
	return strings.Join(s.Lines(), "\n")
}
