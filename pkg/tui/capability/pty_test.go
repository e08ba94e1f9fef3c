// ABOUTME: PTY-backed tests for the hosted and native POSIX backends
// ABOUTME: A creack/pty pair stands in for an interactive terminal; a temp file for redirection

//go:build linux || darwin || freebsd

package capability

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/creack/pty"
)

// openTerminal returns the slave side of a fresh pty sized cols x rows.
func openTerminal(t *testing.T, cols, rows uint16) *os.File {
	t.Helper()

	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skipf("pty unavailable: %v", err)
	}
	t.Cleanup(func() {
		_ = tty.Close()
		_ = ptmx.Close()
	})
	if err := pty.Setsize(tty, &pty.Winsize{Cols: cols, Rows: rows}); err != nil {
		t.Fatalf("setting pty size: %v", err)
	}
	return tty
}

func openRegularFile(t *testing.T) *os.File {
	t.Helper()

	f, err := os.Create(filepath.Join(t.TempDir(), "redirected.out"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func TestHosted_Terminal(t *testing.T) {
	t.Parallel()

	for _, kind := range []Kind{KindHostedPosix, KindHostedWindows} {
		t.Run(kind.String(), func(t *testing.T) {
			t.Parallel()

			tty := openTerminal(t, 100, 30)
			b := newHosted(kind, tty, tty)

			if !b.StdoutInteractive() || !b.StdinInteractive() {
				t.Error("pty should be interactive")
			}
			size, ok := b.TerminalSize()
			if !ok || size != (Size{Columns: 100, Rows: 30}) {
				t.Errorf("TerminalSize() = (%v, %v), want 100x30", size, ok)
			}
		})
	}
}

func TestHosted_Redirected(t *testing.T) {
	t.Parallel()

	f := openRegularFile(t)
	b := newHosted(KindHostedPosix, f, f)

	if b.StdoutInteractive() || b.StdinInteractive() {
		t.Error("regular file must not be interactive")
	}
	if s, ok := b.TerminalSize(); ok {
		t.Errorf("TerminalSize() = %v, want absent", s)
	}
}

func TestHosted_NilFiles(t *testing.T) {
	t.Parallel()

	b := newHosted(KindHostedPosix, nil, nil)
	if b.StdoutInteractive() || b.StdinInteractive() {
		t.Error("nil files must not be interactive")
	}
	if _, ok := b.TerminalSize(); ok {
		t.Error("nil stdout must have no size")
	}
}

func TestNativePosix_Terminal(t *testing.T) {
	t.Parallel()

	tty := openTerminal(t, 132, 43)
	b := newNativePosix(int(tty.Fd()), int(tty.Fd()))

	if !b.StdoutInteractive() || !b.StdinInteractive() {
		t.Error("pty should be interactive")
	}
	size, ok := b.TerminalSize()
	if !ok || size != (Size{Columns: 132, Rows: 43}) {
		t.Errorf("TerminalSize() = (%v, %v), want 132x43", size, ok)
	}
}

func TestNativePosix_Redirected(t *testing.T) {
	t.Parallel()

	f := openRegularFile(t)
	b := newNativePosix(int(f.Fd()), int(f.Fd()))

	if b.StdoutInteractive() {
		t.Error("regular file must not be interactive")
	}
	if s, ok := b.TerminalSize(); ok {
		t.Errorf("TerminalSize() = %v, want absent", s)
	}
}

func TestLoad_NativePosixOnHost(t *testing.T) {
	t.Parallel()

	b, err := Load(KindNativePosix)
	if err != nil {
		t.Fatalf("Load(native-posix) error: %v", err)
	}
	if b.Kind() != KindNativePosix {
		t.Errorf("Kind() = %v", b.Kind())
	}
}
