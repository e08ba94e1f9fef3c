// ABOUTME: Cursor shows and hides the terminal cursor and can restore it at process exit
// ABOUTME: State and the pending exit hook change together under one mutex

package terminal

import (
	"fmt"
	"io"
	"sync"

	"github.com/mauromedda/termrt/pkg/tui/exithook"
)

const (
	showCursorSeq = "\x1b[?25h"
	hideCursorSeq = "\x1b[?25l"
)

// CursorState is the visibility state of a Cursor.
type CursorState int

const (
	CursorVisible CursorState = iota
	CursorHiddenNoRestore
	CursorHiddenWithRestore
)

func (s CursorState) String() string {
	switch s {
	case CursorVisible:
		return "visible"
	case CursorHiddenNoRestore:
		return "hidden"
	case CursorHiddenWithRestore:
		return "hidden (restore on exit)"
	default:
		return fmt.Sprintf("CursorState(%d)", int(s))
	}
}

// Cursor controls cursor visibility for one terminal.
type Cursor struct {
	out   io.Writer
	hooks exithook.Registrar

	mu      sync.Mutex
	state   CursorState
	pending exithook.Handle
}

// NewCursor returns a visible Cursor writing control sequences to out.
// Exit restoration is registered with hooks; a nil hooks disables it.
func NewCursor(out io.Writer, hooks exithook.Registrar) *Cursor {
	return &Cursor{out: out, hooks: hooks}
}

// State returns the current state.
func (c *Cursor) State() CursorState {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state
}

// Show cancels any pending exit restoration and makes the cursor visible.
// The show sequence is only written when the cursor was hidden. A write
// error is returned but the cursor is still considered visible.
func (c *Cursor) Show() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.pending != 0 {
		c.hooks.Cancel(c.pending)
		c.pending = 0
	}
	wasHidden := c.state != CursorVisible
	c.state = CursorVisible
	if !wasHidden {
		return nil
	}
	return c.write(showCursorSeq)
}

// Hide hides the cursor. With restoreOnExit an exit hook that shows the
// cursor again is registered, unless one is already pending. A write error
// is returned but the cursor is still considered hidden.
func (c *Cursor) Hide(restoreOnExit bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if restoreOnExit && c.pending == 0 && c.hooks != nil {
		c.pending = c.hooks.Register(c.restoreAtExit)
	}
	if c.pending != 0 {
		c.state = CursorHiddenWithRestore
	} else {
		c.state = CursorHiddenNoRestore
	}
	return c.write(hideCursorSeq)
}

// restoreAtExit runs from the exit-hook registry.
func (c *Cursor) restoreAtExit() {
	_ = c.Show()
}

func (c *Cursor) write(seq string) error {
	if _, err := io.WriteString(c.out, seq); err != nil {
		return fmt.Errorf("writing cursor sequence: %w", err)
	}
	return nil
}
