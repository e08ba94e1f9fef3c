// ABOUTME: Process environment access and stderr printing for the terminal runtime
// ABOUTME: Lookups are never cached so tests that mutate the environment see fresh values

package procenv

import (
	"io"
	"os"
)

// Getenv returns the value of key and whether it was set. The empty string
// is a valid value distinct from an unset variable.
func Getenv(key string) (string, bool) {
	return os.LookupEnv(key)
}

// PrintStderr writes message to standard error, followed by a newline when
// newline is true. Standard error is unbuffered, so the text has reached the
// descriptor when PrintStderr returns.
func PrintStderr(message string, newline bool) {
	fprint(os.Stderr, message, newline)
}

func fprint(w io.Writer, message string, newline bool) {
	if newline {
		message += "\n"
	}
	_, _ = io.WriteString(w, message)
}
