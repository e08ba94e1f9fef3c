// ABOUTME: Native POSIX backend issuing termios and TIOCGWINSZ ioctls through x/sys/unix
// ABOUTME: Used for native builds on unix platforms

//go:build aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris

package capability

import (
	"os"

	"golang.org/x/sys/unix"
)

type nativePosix struct {
	stdin  int
	stdout int
}

func loadNativePosix() (Backend, error) {
	return newNativePosix(int(os.Stdin.Fd()), int(os.Stdout.Fd())), nil
}

func newNativePosix(stdin, stdout int) nativePosix {
	return nativePosix{stdin: stdin, stdout: stdout}
}

func (nativePosix) Kind() Kind                { return KindNativePosix }
func (b nativePosix) StdoutInteractive() bool { return isTerminalFd(b.stdout) }
func (b nativePosix) StdinInteractive() bool  { return isTerminalFd(b.stdin) }

func (b nativePosix) TerminalSize() (Size, bool) {
	ws, err := unix.IoctlGetWinsize(b.stdout, unix.TIOCGWINSZ)
	if err != nil || ws.Col == 0 || ws.Row == 0 {
		return Size{}, false
	}
	return Size{Columns: int(ws.Col), Rows: int(ws.Row)}, true
}

// isTerminalFd reports whether fd answers a termios query, which only
// terminal devices do.
func isTerminalFd(fd int) bool {
	_, err := unix.IoctlGetTermios(fd, ioctlReadTermios)
	return err == nil
}
