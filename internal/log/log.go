// ABOUTME: Level-gated diagnostic logging built on slog level constants
// ABOUTME: Writes [LEVEL]-prefixed lines to stderr; writer is swappable for tests

package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"
)

// Level constants matching slog levels.
const (
	LevelDebug = slog.LevelDebug
	LevelInfo  = slog.LevelInfo
	LevelWarn  = slog.LevelWarn
	LevelError = slog.LevelError
)

var (
	level atomic.Int64

	outMu sync.Mutex
	out   io.Writer = os.Stderr
)

func init() {
	level.Store(int64(LevelInfo))
}

// SetLevel sets the global log level.
func SetLevel(l slog.Level) {
	level.Store(int64(l))
}

// GetLevel returns the current log level.
func GetLevel() slog.Level {
	return slog.Level(level.Load())
}

// Enabled reports whether messages at l would be written.
func Enabled(l slog.Level) bool {
	return l >= GetLevel()
}

// SetOutput redirects log lines to w and returns the previous writer.
// A nil w restores stderr.
func SetOutput(w io.Writer) io.Writer {
	if w == nil {
		w = os.Stderr
	}
	outMu.Lock()
	defer outMu.Unlock()
	prev := out
	out = w
	return prev
}

// Debug logs a debug message if the level allows it.
func Debug(format string, args ...any) {
	emit(LevelDebug, "[DEBUG] ", format, args)
}

// Info logs an info message if the level allows it.
func Info(format string, args ...any) {
	emit(LevelInfo, "[INFO] ", format, args)
}

// Warn logs a warning message if the level allows it.
func Warn(format string, args ...any) {
	emit(LevelWarn, "[WARN] ", format, args)
}

// Error logs an error message (always emitted).
func Error(format string, args ...any) {
	emit(LevelError, "[ERROR] ", format, args)
}

func emit(l slog.Level, prefix, format string, args []any) {
	if l < LevelError && !Enabled(l) {
		return
	}
	line := prefix + fmt.Sprintf(format, args...) + "\n"

	outMu.Lock()
	defer outMu.Unlock()
	_, _ = io.WriteString(out, line)
}
