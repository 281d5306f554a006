// Package logger provides verbose diagnostics for folio.
// Nothing is written unless verbose mode is switched on with --verbose;
// when it is, each stage of the recommendation pipeline reports what it
// did to stderr.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Level tags a diagnostic line.
type Level string

// Diagnostic levels.
const (
	LevelDebug Level = "DEBUG"
	LevelInfo  Level = "INFO"
	LevelWarn  Level = "WARN"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
)

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput redirects verbose output. Defaults to os.Stderr.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

func logf(level Level, format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if !verbose {
		return
	}
	fmt.Fprintf(output, "["+string(level)+"] "+format+"\n", args...)
}

// Debug logs pipeline detail.
func Debug(format string, args ...any) { logf(LevelDebug, format, args...) }

// Info logs a notable event such as an early return.
func Info(format string, args ...any) { logf(LevelInfo, format, args...) }

// Warn logs a recovered problem.
func Warn(format string, args ...any) { logf(LevelWarn, format, args...) }

// Section prints a stage header.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}

// Stage prints a stage header and returns a func that logs the stage's
// elapsed time. Typical use: defer logger.Stage("Topics")().
func Stage(name string) func() {
	Section(name)
	start := time.Now()
	return func() {
		Debug("%s took %s", name, time.Since(start).Round(time.Microsecond))
	}
}
