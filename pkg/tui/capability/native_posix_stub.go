// ABOUTME: Native POSIX backend stub for platforms without termios ioctls
// ABOUTME: Loading always fails so selection degrades to Fallback

//go:build !(aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris)

package capability

import (
	"fmt"
	"runtime"
)

func loadNativePosix() (Backend, error) {
	return nil, fmt.Errorf("native posix backend on %s: %w", runtime.GOOS, ErrBackendUnavailable)
}
