//go:build windows

package tagged

var platform = "windows"

func windowsOnly() {}
