// ABOUTME: Parent argument lookup for platforms without procfs
// ABOUTME: Always fails, so only the own-binary marker is checked

//go:build !linux

package procenv

import "errors"

var errNoProcfs = errors.New("parent launch arguments not readable on this platform")

func parentArgs(int) ([]string, error) {
	return nil, errNoProcfs
}
