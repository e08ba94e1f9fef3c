// ABOUTME: LineReader reads input lines, optionally with echo disabled through a Console
// ABOUTME: Secure reads fall back to plain reads when no console is usable; end of input is not an error

package terminal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"golang.org/x/term"
	"golang.org/x/text/unicode/norm"

	"github.com/mauromedda/termrt/internal/log"
	"github.com/mauromedda/termrt/pkg/tui/exithook"
)

// Console reads a line without echoing it.
type Console interface {
	ReadPassword() ([]byte, error)
}

// Replaced in tests.
var (
	readPassword = term.ReadPassword
	getState     = term.GetState
	restoreState = term.Restore
)

type ttyConsole struct {
	fd    int
	hooks exithook.Registrar
}

// NewTTYConsole returns a Console reading from the terminal fd. While a
// read is in progress an exit hook registered with hooks restores the
// terminal mode, so echo comes back if the process exits mid-read. A nil
// hooks skips the registration.
func NewTTYConsole(fd int, hooks exithook.Registrar) Console {
	return ttyConsole{fd: fd, hooks: hooks}
}

func (c ttyConsole) ReadPassword() ([]byte, error) {
	if c.hooks != nil {
		if state, err := getState(c.fd); err == nil {
			h := c.hooks.Register(func() { _ = restoreState(c.fd, state) })
			defer c.hooks.Cancel(h)
		}
	}
	return readPassword(c.fd)
}

// StdinConsole returns a Console reading from standard input, or nil when
// standard input is not a terminal. Terminal mode restoration is registered
// with the process exit-hook registry.
func StdinConsole() Console {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return nil
	}
	return NewTTYConsole(fd, exithook.Default())
}

// LineReader reads lines from an input stream. It buffers, so one reader
// should own the stream.
type LineReader struct {
	mu      sync.Mutex
	in      *bufio.Reader
	console Console
	form    *norm.Form
}

// ReaderOption configures a LineReader.
type ReaderOption func(*LineReader)

// WithConsole sets the Console used for hidden input. A nil Console means
// hidden input is read like any other line.
func WithConsole(c Console) ReaderOption {
	return func(r *LineReader) { r.console = c }
}

// WithNormalization normalizes every returned line to form f.
func WithNormalization(f norm.Form) ReaderOption {
	return func(r *LineReader) { r.form = &f }
}

// NewLineReader returns a LineReader over in with no Console.
func NewLineReader(in io.Reader, opts ...ReaderOption) *LineReader {
	r := &LineReader{in: bufio.NewReader(in)}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NewStdinReader returns a LineReader over standard input that hides input
// through the terminal when standard input is one.
func NewStdinReader(opts ...ReaderOption) *LineReader {
	return NewLineReader(os.Stdin, append([]ReaderOption{WithConsole(StdinConsole())}, opts...)...)
}

// ReadLine reads one line without its terminator. ok is false once input is
// exhausted. When hideInput is set and a Console is available the line is
// read without echo; if the Console fails the line is read plainly instead.
// err is only set for read failures on the plain input stream.
func (r *LineReader) ReadLine(hideInput bool) (line string, ok bool, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if hideInput && r.console != nil {
		secret, err := r.readSecret()
		switch {
		case err == nil:
			return secret, true, nil
		case errors.Is(err, io.EOF):
			return "", false, nil
		default:
			log.Debug("terminal: hidden input unavailable, reading plainly: %v", err)
		}
	}
	return r.readPlain()
}

func (r *LineReader) readSecret() (string, error) {
	secret, err := r.console.ReadPassword()
	defer clear(secret)
	if err != nil {
		return "", err
	}
	return r.normalize(string(secret)), nil
}

func (r *LineReader) readPlain() (string, bool, error) {
	s, err := r.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", false, fmt.Errorf("reading line: %w", err)
	}
	if err != nil && s == "" {
		return "", false, nil
	}
	s = strings.TrimSuffix(s, "\n")
	s = strings.TrimSuffix(s, "\r")
	return r.normalize(s), true, nil
}

func (r *LineReader) normalize(s string) string {
	if r.form == nil {
		return s
	}
	return r.form.String(s)
}
