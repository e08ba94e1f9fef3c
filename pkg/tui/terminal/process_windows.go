// ABOUTME: Windows stub for ProcessTerminal resize handling.
// ABOUTME: Windows delivers no resize signal; callers poll Size instead.

//go:build windows

package terminal

// startResizeListener is a no-op on Windows. Console resize events arrive
// through ReadConsoleInput, which would compete with LineReader for input.
func (t *ProcessTerminal) startResizeListener() {}
