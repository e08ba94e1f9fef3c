// ABOUTME: Termination signals and exit status for platforms with numbered signals
// ABOUTME: Everything except plan9, whose notes are strings

//go:build !plan9

package exithook

import (
	"os"
	"syscall"
)

var terminationSignals = []os.Signal{os.Interrupt, syscall.SIGTERM}

func exitCode(sig os.Signal) int {
	if s, ok := sig.(syscall.Signal); ok {
		return 128 + int(s)
	}
	return 1
}
