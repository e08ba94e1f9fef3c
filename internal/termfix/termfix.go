// ABOUTME: Pins lipgloss background and colour profile before anything renders
// ABOUTME: Stops OSC queries from leaking into pipes and logs when stdout is not a terminal

package termfix

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Plain is true when styled output was downgraded to plain ASCII.
var Plain bool

func init() {
	// An explicit background skips lipgloss's lazy OSC 11 query, whose
	// reply would otherwise arrive on stdin as garbage.
	lipgloss.SetHasDarkBackground(true)

	fd := os.Stdout.Fd()
	tty := isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	if forcePlain(tty, os.Getenv("TERM")) {
		lipgloss.SetColorProfile(termenv.Ascii)
		Plain = true
	}
}

// forcePlain reports whether output must not carry colour sequences.
func forcePlain(isTTY bool, term string) bool {
	return !isTTY || term == "dumb"
}
