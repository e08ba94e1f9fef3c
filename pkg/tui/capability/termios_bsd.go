// ABOUTME: Termios read request for BSD-derived kernels
// ABOUTME: Paired with termios_sysv.go for Linux and System V descendants

//go:build darwin || dragonfly || freebsd || netbsd || openbsd

package capability

import "golang.org/x/sys/unix"

const ioctlReadTermios = unix.TIOCGETA
