// ABOUTME: Reads a process's launch arguments from procfs
// ABOUTME: Used to recognise a parent debugger on Linux

//go:build linux

package procenv

import (
	"bytes"
	"fmt"
	"os"
	"strconv"
)

// parentArgs reads the launch arguments of pid from procfs.
func parentArgs(pid int) ([]string, error) {
	data, err := os.ReadFile("/proc/" + strconv.Itoa(pid) + "/cmdline")
	if err != nil {
		return nil, fmt.Errorf("reading cmdline of %d: %w", pid, err)
	}
	data = bytes.TrimRight(data, "\x00")
	if len(data) == 0 {
		return nil, nil
	}
	parts := bytes.Split(data, []byte{0})
	args := make([]string, len(parts))
	for i, p := range parts {
		args[i] = string(p)
	}
	return args, nil
}
