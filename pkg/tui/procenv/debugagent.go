// ABOUTME: Best-effort detection of a debugger (Delve) attached at launch
// ABOUTME: Inspects own and parent launch arguments; any introspection failure means false

package procenv

import (
	"os"
	"path"
	"strings"
)

// debugBinaryPrefix is the name Delve gives binaries it builds for editor
// debug sessions (__debug_bin, __debug_bin1234, __debug_bin.exe).
const debugBinaryPrefix = "__debug_bin"

// RunningUnderDebugAgent reports whether the process appears to have been
// launched by a debugger. It never fails: launch arguments that cannot be
// read are treated as carrying no marker.
func RunningUnderDebugAgent() bool {
	parent, err := parentArgs(os.Getppid())
	if err != nil {
		parent = nil
	}
	return hasDebugMarker(os.Args, parent)
}

// hasDebugMarker inspects the launch arguments of the process and its parent.
func hasDebugMarker(self, parent []string) bool {
	if len(self) > 0 && strings.HasPrefix(executableName(self[0]), debugBinaryPrefix) {
		return true
	}
	if len(parent) > 0 && executableName(parent[0]) == "dlv" {
		return true
	}
	return false
}

// executableName returns the lower-cased base name of arg without a .exe
// suffix. Both separators are accepted so Windows paths work on any host.
func executableName(arg string) string {
	base := path.Base(strings.ReplaceAll(arg, `\`, "/"))
	return strings.TrimSuffix(strings.ToLower(base), ".exe")
}
