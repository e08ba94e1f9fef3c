// ABOUTME: Native Windows backend calling the console API through x/sys/windows
// ABOUTME: Loading probes kernel32 for GetConsoleScreenBufferInfo before the backend is used

//go:build windows

package capability

import (
	"fmt"
	"os"

	"golang.org/x/sys/windows"
)

var (
	modkernel32                    = windows.NewLazySystemDLL("kernel32.dll")
	procGetConsoleScreenBufferInfo = modkernel32.NewProc("GetConsoleScreenBufferInfo")
)

type nativeWindows struct {
	stdin  windows.Handle
	stdout windows.Handle
}

func loadNativeWindows() (Backend, error) {
	if err := procGetConsoleScreenBufferInfo.Find(); err != nil {
		return nil, fmt.Errorf("linking console API: %w", err)
	}
	return nativeWindows{
		stdin:  windows.Handle(os.Stdin.Fd()),
		stdout: windows.Handle(os.Stdout.Fd()),
	}, nil
}

func (nativeWindows) Kind() Kind                { return KindNativeWindows }
func (b nativeWindows) StdoutInteractive() bool { return isConsole(b.stdout) }
func (b nativeWindows) StdinInteractive() bool  { return isConsole(b.stdin) }

func (b nativeWindows) TerminalSize() (Size, bool) {
	var info windows.ConsoleScreenBufferInfo
	if err := windows.GetConsoleScreenBufferInfo(b.stdout, &info); err != nil {
		return Size{}, false
	}
	cols := int(info.Window.Right-info.Window.Left) + 1
	rows := int(info.Window.Bottom-info.Window.Top) + 1
	if cols <= 0 || rows <= 0 {
		return Size{}, false
	}
	return Size{Columns: cols, Rows: rows}, true
}

func isConsole(h windows.Handle) bool {
	var mode uint32
	return windows.GetConsoleMode(h, &mode) == nil
}
