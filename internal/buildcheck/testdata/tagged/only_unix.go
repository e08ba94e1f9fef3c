//go:build unix

package tagged

var platform = "unix"
