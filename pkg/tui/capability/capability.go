// ABOUTME: Backend contract for terminal capability queries and the Kind variant naming each strategy
// ABOUTME: Unavailable capabilities are reported as false or an absent size, never as errors

// Package capability answers "is this stream a terminal" and "how big is
// the terminal" for the rest of the runtime. One Backend is chosen per
// process from a fixed set of OS and build-mode specific strategies; when
// none applies, or the chosen one cannot be loaded, queries fall back to
// the most conservative answers.
package capability

import (
	"errors"
	"fmt"
)

// ErrBackendUnavailable reports that a backend cannot run in this process.
var ErrBackendUnavailable = errors.New("capability backend unavailable")

// DefaultSize is the layout size callers use when the terminal size is unknown.
var DefaultSize = Size{Columns: 79, Rows: 24}

// Kind names a capability strategy.
type Kind int

const (
	KindFallback Kind = iota
	KindNativePosix
	KindNativeWindows
	KindHostedPosix
	KindHostedWindows
)

var kindNames = [...]string{
	KindFallback:      "fallback",
	KindNativePosix:   "native-posix",
	KindNativeWindows: "native-windows",
	KindHostedPosix:   "hosted-posix",
	KindHostedWindows: "hosted-windows",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind parses a name produced by Kind.String.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s {
			return Kind(k), nil
		}
	}
	return KindFallback, fmt.Errorf("unknown capability backend %q", s)
}

// Size is a terminal size in character cells.
type Size struct {
	Columns int
	Rows    int
}

// Backend answers terminal capability queries. Implementations hold no
// mutable state and never block.
type Backend interface {
	Kind() Kind
	// StdoutInteractive reports whether standard output is a terminal.
	StdoutInteractive() bool
	// StdinInteractive reports whether standard input is a terminal.
	StdinInteractive() bool
	// TerminalSize returns the size of the terminal attached to standard
	// output, or false when it cannot be determined.
	TerminalSize() (Size, bool)
}

// Fallback is the conservative backend: nothing is interactive and the
// size is never known.
type Fallback struct{}

var _ Backend = Fallback{}

func (Fallback) Kind() Kind                 { return KindFallback }
func (Fallback) StdoutInteractive() bool    { return false }
func (Fallback) StdinInteractive() bool     { return false }
func (Fallback) TerminalSize() (Size, bool) { return Size{}, false }
