// ABOUTME: Native Windows backend stub for non-Windows builds
// ABOUTME: Loading always fails so selection degrades to Fallback

//go:build !windows

package capability

import (
	"fmt"
	"runtime"
)

func loadNativeWindows() (Backend, error) {
	return nil, fmt.Errorf("native windows backend on %s: %w", runtime.GOOS, ErrBackendUnavailable)
}
