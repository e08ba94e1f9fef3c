// ABOUTME: Hosted backends answer capability queries through x/term and go-isatty
// ABOUTME: The Windows variant also accepts Cygwin/MSYS ptys and falls back to COLUMNS/LINES

package capability

import (
	"os"
	"strconv"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"

	"github.com/mauromedda/termrt/pkg/tui/procenv"
)

// hosted is the portable backend used when the binary is not a native build.
type hosted struct {
	kind   Kind
	stdin  *os.File
	stdout *os.File
}

func newHosted(kind Kind, stdin, stdout *os.File) *hosted {
	return &hosted{kind: kind, stdin: stdin, stdout: stdout}
}

func (h *hosted) Kind() Kind              { return h.kind }
func (h *hosted) StdoutInteractive() bool { return h.isTerminal(h.stdout) }
func (h *hosted) StdinInteractive() bool  { return h.isTerminal(h.stdin) }

func (h *hosted) TerminalSize() (Size, bool) {
	if !h.isTerminal(h.stdout) {
		return Size{}, false
	}
	cols, rows, err := term.GetSize(int(h.stdout.Fd()))
	if err == nil && cols > 0 && rows > 0 {
		return Size{Columns: cols, Rows: rows}, true
	}
	// Cygwin and MSYS ptys are pipes to the console API.
	if h.kind == KindHostedWindows {
		return sizeFromEnv(procenv.Getenv)
	}
	return Size{}, false
}

func (h *hosted) isTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fd := f.Fd()
	if isatty.IsTerminal(fd) {
		return true
	}
	return h.kind == KindHostedWindows && isatty.IsCygwinTerminal(fd)
}

// sizeFromEnv reads COLUMNS and LINES as exported by POSIX shells.
func sizeFromEnv(lookup func(string) (string, bool)) (Size, bool) {
	cols, ok := positiveEnv(lookup, "COLUMNS")
	if !ok {
		return Size{}, false
	}
	rows, ok := positiveEnv(lookup, "LINES")
	if !ok {
		return Size{}, false
	}
	return Size{Columns: cols, Rows: rows}, true
}

func positiveEnv(lookup func(string) (string, bool), key string) (int, bool) {
	v, ok := lookup(key)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
