// ABOUTME: RestoreOnPanic recovers from panics, shows the cursor, drains exit hooks and prints the stack
// ABOUTME: Intended for use as a deferred call in the main goroutine

package terminal

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/mauromedda/termrt/pkg/tui/exithook"
)

// osExit is replaced in tests.
var osExit = os.Exit

// RestoreOnPanic should be deferred at the top of main. On panic it shows
// the cursor, runs pending exit hooks, prints the panic value and stack
// trace, then exits with code 1. Either argument may be nil.
func RestoreOnPanic(c *Cursor, hooks exithook.Runner) {
	r := recover()
	if r == nil {
		return
	}

	if c != nil {
		_ = c.Show()
	}
	if hooks != nil {
		hooks.Run()
	}

	fmt.Fprintf(os.Stderr, "\npanic: %v\n\n%s\n", r, debug.Stack())
	osExit(1)
}

// RecoverGoroutine should be deferred at the top of background goroutines
// that render while the cursor may be hidden. Unlike RestoreOnPanic it
// neither runs exit hooks nor exits, leaving shutdown to main.
func RecoverGoroutine(c *Cursor) {
	r := recover()
	if r == nil {
		return
	}

	if c != nil {
		_ = c.Show()
	}

	fmt.Fprintf(os.Stderr, "\ngoroutine panic: %v\n\n%s\n", r, debug.Stack())
}
