// ABOUTME: Termination notes and exit status on plan9
// ABOUTME: Notes carry no number, so every interrupted exit reports status 1

//go:build plan9

package exithook

import "os"

var terminationSignals = []os.Signal{os.Interrupt}

func exitCode(os.Signal) int {
	return 1
}
