// ABOUTME: VirtualTerminal implements Terminal for testing without a real TTY.
// ABOUTME: Captures stdout and stderr separately, records requests and can inject write failures.

package terminal

import (
	"bytes"
	"slices"
	"sync"

	"github.com/mauromedda/termrt/pkg/tui/capability"
)

// VirtualTerminal is a fake Terminal for unit tests.
type VirtualTerminal struct {
	mu       sync.Mutex
	stdout   bytes.Buffer
	stderr   bytes.Buffer
	requests []PrintRequest
	size     capability.Size
	writeErr error
	resizeFn func(size capability.Size)
}

var _ Terminal = (*VirtualTerminal)(nil)

// NewVirtualTerminal returns a VirtualTerminal with the given dimensions.
func NewVirtualTerminal(cols, rows int) *VirtualTerminal {
	return &VirtualTerminal{size: capability.Size{Columns: cols, Rows: rows}}
}

// CompletePrintRequest records req and appends its text to the matching stream.
func (v *VirtualTerminal) CompletePrintRequest(req PrintRequest) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.requests = append(v.requests, req)
	if v.writeErr != nil {
		return v.writeErr
	}
	buf := &v.stdout
	if req.Stderr {
		buf = &v.stderr
	}
	buf.WriteString(req.Text)
	if req.TrailingLinebreak {
		buf.WriteByte('\n')
	}
	return nil
}

// Write appends raw bytes to the stdout buffer.
func (v *VirtualTerminal) Write(p []byte) (int, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.writeErr != nil {
		return 0, v.writeErr
	}
	return v.stdout.Write(p)
}

// Size returns the configured terminal dimensions.
func (v *VirtualTerminal) Size() capability.Size {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.size
}

// OnResize stores the resize callback.
func (v *VirtualTerminal) OnResize(fn func(size capability.Size)) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.resizeFn = fn
}

// --- Test helpers (not part of Terminal interface) ---

// Output returns everything written to stdout so far.
func (v *VirtualTerminal) Output() string {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.stdout.String()
}

// ErrOutput returns everything written to stderr so far.
func (v *VirtualTerminal) ErrOutput() string {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.stderr.String()
}

// Requests returns the print requests received, in order.
func (v *VirtualTerminal) Requests() []PrintRequest {
	v.mu.Lock()
	defer v.mu.Unlock()

	return slices.Clone(v.requests)
}

// FailWrites makes every later write return err. A nil err clears it.
func (v *VirtualTerminal) FailWrites(err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.writeErr = err
}

// Reset clears captured output and requests.
func (v *VirtualTerminal) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.stdout.Reset()
	v.stderr.Reset()
	v.requests = nil
}

// SetSize updates the terminal dimensions and, if a resize callback
// is registered, invokes it with the new size.
func (v *VirtualTerminal) SetSize(cols, rows int) {
	v.mu.Lock()
	v.size = capability.Size{Columns: cols, Rows: rows}
	fn := v.resizeFn
	v.mu.Unlock()

	if fn != nil {
		fn(capability.Size{Columns: cols, Rows: rows})
	}
}
