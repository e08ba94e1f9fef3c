// ABOUTME: Tests for ttyConsole terminal-mode restoration around hidden reads
// ABOUTME: Swaps the x/term entry points, so these tests must not run in parallel

package terminal

import (
	"errors"
	"testing"

	"golang.org/x/term"

	"github.com/mauromedda/termrt/pkg/tui/exithook"
)

type fakeTTY struct {
	saved      *term.State
	stateErr   error
	restored   int
	restoredFd int
	restoredTo *term.State
}

// install replaces the x/term calls used by ttyConsole until the test ends.
func (f *fakeTTY) install(t *testing.T, read func(fd int) ([]byte, error)) {
	t.Helper()

	prevRead, prevGet, prevRestore := readPassword, getState, restoreState
	t.Cleanup(func() {
		readPassword, getState, restoreState = prevRead, prevGet, prevRestore
	})

	readPassword = read
	getState = func(int) (*term.State, error) {
		if f.stateErr != nil {
			return nil, f.stateErr
		}
		return f.saved, nil
	}
	restoreState = func(fd int, s *term.State) error {
		f.restored++
		f.restoredFd = fd
		f.restoredTo = s
		return nil
	}
}

func TestTTYConsole_HooksRunMidReadRestoreMode(t *testing.T) {
	reg := exithook.NewRegistry()
	tty := &fakeTTY{saved: &term.State{}}
	tty.install(t, func(int) ([]byte, error) {
		if n := reg.Pending(); n != 1 {
			t.Errorf("Pending() during read = %d, want 1", n)
		}
		// What NotifyOnSignal does when Ctrl-C arrives mid-read.
		reg.Run()
		return []byte("s3cret"), nil
	})

	got, err := NewTTYConsole(7, reg).ReadPassword()
	if err != nil {
		t.Fatalf("ReadPassword: %v", err)
	}
	if string(got) != "s3cret" {
		t.Errorf("ReadPassword() = %q", got)
	}
	if tty.restored != 1 || tty.restoredFd != 7 || tty.restoredTo != tty.saved {
		t.Errorf("restore calls = %d (fd %d, state %p), want 1 (fd 7, state %p)",
			tty.restored, tty.restoredFd, tty.restoredTo, tty.saved)
	}
}

func TestTTYConsole_HookCancelledAfterRead(t *testing.T) {
	reg := exithook.NewRegistry()
	tty := &fakeTTY{saved: &term.State{}}
	tty.install(t, func(int) ([]byte, error) { return []byte("pw"), nil })

	if _, err := NewTTYConsole(3, reg).ReadPassword(); err != nil {
		t.Fatalf("ReadPassword: %v", err)
	}
	if n := reg.Pending(); n != 0 {
		t.Errorf("Pending() after read = %d, want 0", n)
	}
	reg.Run()
	if tty.restored != 0 {
		t.Errorf("restore ran %d times after a completed read", tty.restored)
	}
}

func TestTTYConsole_HookCancelledAfterReadError(t *testing.T) {
	reg := exithook.NewRegistry()
	tty := &fakeTTY{saved: &term.State{}}
	errRead := errors.New("read interrupted")
	tty.install(t, func(int) ([]byte, error) { return nil, errRead })

	if _, err := NewTTYConsole(3, reg).ReadPassword(); !errors.Is(err, errRead) {
		t.Fatalf("ReadPassword error = %v, want %v", err, errRead)
	}
	if n := reg.Pending(); n != 0 {
		t.Errorf("Pending() after failed read = %d, want 0", n)
	}
}

func TestTTYConsole_NoHookWithoutState(t *testing.T) {
	reg := exithook.NewRegistry()
	tty := &fakeTTY{stateErr: errors.New("not a terminal")}
	tty.install(t, func(int) ([]byte, error) {
		if n := reg.Pending(); n != 0 {
			t.Errorf("Pending() during read = %d, want 0", n)
		}
		return []byte("pw"), nil
	})

	if _, err := NewTTYConsole(3, reg).ReadPassword(); err != nil {
		t.Fatalf("ReadPassword: %v", err)
	}
}

func TestTTYConsole_NilHooks(t *testing.T) {
	tty := &fakeTTY{saved: &term.State{}}
	tty.install(t, func(int) ([]byte, error) { return []byte("pw"), nil })

	got, err := NewTTYConsole(3, nil).ReadPassword()
	if err != nil || string(got) != "pw" {
		t.Fatalf("ReadPassword() = (%q, %v)", got, err)
	}
}
