// ABOUTME: Termios read request for Linux and System V descendants
// ABOUTME: Paired with termios_bsd.go for BSD-derived kernels

//go:build aix || linux || solaris

package capability

import "golang.org/x/sys/unix"

const ioctlReadTermios = unix.TCGETS
