// ABOUTME: Tests for the plain-output decision made at init
// ABOUTME: The init side effects themselves depend on the test runner's stdout

package termfix

import "testing"

func TestForcePlain(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		isTTY bool
		term  string
		want  bool
	}{
		{name: "tty with xterm", isTTY: true, term: "xterm-256color", want: false},
		{name: "tty with dumb", isTTY: true, term: "dumb", want: true},
		{name: "pipe", isTTY: false, term: "xterm-256color", want: true},
		{name: "pipe without TERM", isTTY: false, term: "", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := forcePlain(tt.isTTY, tt.term); got != tt.want {
				t.Errorf("forcePlain(%v, %q) = %v, want %v", tt.isTTY, tt.term, got, tt.want)
			}
		})
	}
}
