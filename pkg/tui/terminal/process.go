// ABOUTME: ProcessTerminal implements Terminal over the process's stdout and stderr
// ABOUTME: Owns the cursor and interceptor chain; capability queries go through a Provider

package terminal

import (
	"fmt"
	"io"
	"os"
	"slices"
	"sync"

	"github.com/mauromedda/termrt/pkg/tui/capability"
	"github.com/mauromedda/termrt/pkg/tui/exithook"
)

// ProcessTerminal is the real terminal of the running process.
type ProcessTerminal struct {
	caps   *capability.Provider
	stdout io.Writer
	stderr io.Writer
	hooks  exithook.Registrar
	cursor *Cursor

	writeMu sync.Mutex

	mu           sync.Mutex
	interceptors []Interceptor
	resizeFn     func(size capability.Size)
	resizeOnce   sync.Once
}

var _ Terminal = (*ProcessTerminal)(nil)

// Option configures a ProcessTerminal.
type Option func(*ProcessTerminal)

// WithOutput replaces the standard output and error streams.
func WithOutput(stdout, stderr io.Writer) Option {
	return func(t *ProcessTerminal) {
		t.stdout = stdout
		t.stderr = stderr
	}
}

// WithExitHooks sets where cursor restoration is registered. The default is
// the process-wide exithook registry.
func WithExitHooks(r exithook.Registrar) Option {
	return func(t *ProcessTerminal) { t.hooks = r }
}

// WithInterceptors sets the initial interceptor chain.
func WithInterceptors(interceptors ...Interceptor) Option {
	return func(t *ProcessTerminal) { t.interceptors = slices.Clone(interceptors) }
}

// NewProcessTerminal returns a ProcessTerminal answering capability queries
// through caps. A nil caps means capability.Default().
func NewProcessTerminal(caps *capability.Provider, opts ...Option) *ProcessTerminal {
	if caps == nil {
		caps = capability.Default()
	}
	t := &ProcessTerminal{
		caps:   caps,
		stdout: os.Stdout,
		stderr: os.Stderr,
		hooks:  exithook.Default(),
	}
	for _, opt := range opts {
		opt(t)
	}
	t.cursor = NewCursor(t, t.hooks)
	return t
}

// CompletePrintRequest writes req to stdout or stderr.
func (t *ProcessTerminal) CompletePrintRequest(req PrintRequest) error {
	w := t.stdout
	if req.Stderr {
		w = t.stderr
	}
	text := req.Text
	if req.TrailingLinebreak {
		text += "\n"
	}

	t.writeMu.Lock()
	defer t.writeMu.Unlock()

	if _, err := io.WriteString(w, text); err != nil {
		return fmt.Errorf("writing print request: %w", err)
	}
	return nil
}

// Write sends raw bytes to stdout without interception.
func (t *ProcessTerminal) Write(p []byte) (int, error) {
	t.writeMu.Lock()
	defer t.writeMu.Unlock()

	n, err := t.stdout.Write(p)
	if err != nil {
		return n, fmt.Errorf("writing to stdout: %w", err)
	}
	return n, nil
}

// Print passes req through the interceptor chain and writes the result.
func (t *ProcessTerminal) Print(req PrintRequest) error {
	t.mu.Lock()
	chain := slices.Clone(t.interceptors)
	t.mu.Unlock()

	return Dispatch(req, t, chain)
}

// Println prints text followed by a linebreak.
func (t *ProcessTerminal) Println(text string) error {
	return t.Print(PrintRequest{Text: text, TrailingLinebreak: true})
}

// AddInterceptor appends i to the interceptor chain.
func (t *ProcessTerminal) AddInterceptor(i Interceptor) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.interceptors = append(t.interceptors, i)
}

// Cursor returns the terminal's cursor controller.
func (t *ProcessTerminal) Cursor() *Cursor {
	return t.cursor
}

// Capabilities returns the provider the terminal queries.
func (t *ProcessTerminal) Capabilities() *capability.Provider {
	return t.caps
}

// Interactive reports whether stdout is a terminal.
func (t *ProcessTerminal) Interactive() bool {
	return t.caps.StdoutInteractive()
}

// Size returns the terminal size, or capability.DefaultSize when unknown.
func (t *ProcessTerminal) Size() capability.Size {
	return t.caps.SizeOr(capability.DefaultSize)
}

// OnResize registers a callback invoked when the terminal is resized.
// Platform-specific signal handling is set up by startResizeListener.
func (t *ProcessTerminal) OnResize(fn func(size capability.Size)) {
	t.mu.Lock()
	t.resizeFn = fn
	t.mu.Unlock()

	t.resizeOnce.Do(t.startResizeListener)
}

func (t *ProcessTerminal) notifyResize() {
	t.mu.Lock()
	fn := t.resizeFn
	t.mu.Unlock()

	if fn != nil {
		fn(t.Size())
	}
}
