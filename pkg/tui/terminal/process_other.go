// ABOUTME: Resize handling stub for platforms that are neither unix nor Windows
// ABOUTME: js, wasip1 and plan9 deliver no resize notification

//go:build !unix && !windows

package terminal

// startResizeListener is a no-op; callers poll Size instead.
func (t *ProcessTerminal) startResizeListener() {}
