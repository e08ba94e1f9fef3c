// ABOUTME: Platform identifies the OS family and build mode used to pick a capability backend
// ABOUTME: The native build flag comes from a linker-set variable or TERMRT_BUILD_MODE

package capability

import (
	"runtime"
	"slices"

	"github.com/mauromedda/termrt/pkg/tui/procenv"
)

// buildMode is set at link time:
//
//	go build -ldflags "-X github.com/mauromedda/termrt/pkg/tui/capability.buildMode=native"
var buildMode string

const (
	nativeBuildMode = "native"
	buildModeEnv    = "TERMRT_BUILD_MODE"
)

var posixOS = []string{
	"aix", "android", "darwin", "dragonfly", "freebsd", "illumos",
	"ios", "linux", "netbsd", "openbsd", "solaris",
}

// Platform is the identity a backend is chosen for.
type Platform struct {
	// OS is a GOOS value.
	OS string
	// Native marks builds that talk to the OS through direct system calls
	// rather than the portable terminal libraries.
	Native bool
}

// Detect returns the Platform of the running process.
func Detect() Platform {
	native := buildMode == nativeBuildMode
	if v, ok := procenv.Getenv(buildModeEnv); ok {
		native = v == nativeBuildMode
	}
	return Platform{OS: runtime.GOOS, Native: native}
}

// IsWindows reports whether p is a Windows platform.
func (p Platform) IsWindows() bool {
	return p.OS == "windows"
}

// IsPosix reports whether p is a POSIX-like platform.
func (p Platform) IsPosix() bool {
	return slices.Contains(posixOS, p.OS)
}

// Preferred returns the backend kind p should use, before any load attempt.
func (p Platform) Preferred() Kind {
	switch {
	case p.Native && p.IsWindows():
		return KindNativeWindows
	case p.Native && p.IsPosix():
		return KindNativePosix
	case p.IsWindows():
		return KindHostedWindows
	case p.IsPosix():
		return KindHostedPosix
	default:
		return KindFallback
	}
}
