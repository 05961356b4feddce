package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// LogFilePath is the path to the log file, relative to the working directory (project root when run via go run ./cmd/bounce).
const LogFilePath = "logs/bounce.txt"

// maxLines bounds how many lines are kept in memory for the on-screen terminal.
const maxLines = 500

// Logger stores recent lines in memory (for the terminal overlay and status bars) and appends them to a file on disk.
// Safe for use from multiple goroutines; audio and telemetry report start-up failures from their own goroutines.
type Logger struct {
	mu    sync.Mutex
	path  string
	lines []string
}

// New returns a Logger writing to LogFilePath and ensures the logs directory exists.
func New() *Logger {
	return NewAt(LogFilePath)
}

// NewAt returns a Logger writing to path. An empty path keeps lines in memory only.
func NewAt(path string) *Logger {
	if path != "" {
		_ = os.MkdirAll(filepath.Dir(path), 0755)
	}
	return &Logger{path: path, lines: make([]string, 0)}
}

// Log appends a line to the logger and appends it to the log file on disk. Each entry is prefixed with [timestamp] using computer time.
func (l *Logger) Log(line string) {
	ts := time.Now().Format("2006-01-02 15:04:05")
	stamped := "[" + ts + "] " + line

	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, stamped)
	if len(l.lines) > maxLines {
		l.lines = append(l.lines[:0], l.lines[len(l.lines)-maxLines:]...)
	}

	if l.path == "" {
		return
	}
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	_, _ = f.WriteString(stamped + "\n")
	_ = f.Close()
}

// Logf formats according to a format specifier and logs the result.
func (l *Logger) Logf(format string, args ...any) {
	l.Log(fmt.Sprintf(format, args...))
}

// Lines returns a copy of all stored lines.
func (l *Logger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}

// Last returns the newest line without its timestamp, or "" when nothing was logged.
func (l *Logger) Last() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.lines) == 0 {
		return ""
	}
	line := l.lines[len(l.lines)-1]
	// "[2006-01-02 15:04:05] " is 22 bytes.
	if len(line) > 22 {
		return line[22:]
	}
	return line
}
