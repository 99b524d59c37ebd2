//go:build windows

package console

import (
	"os"
	"syscall"
	"unsafe"
)

type windowsPlatform struct{}

func newPlatform() platform { return &windowsPlatform{} }

type coord struct{ X, Y int16 }
type smallRect struct{ Left, Top, Right, Bottom int16 }
type consoleScreenBufferInfo struct {
	Size              coord
	CursorPosition    coord
	Attributes        uint16
	Window            smallRect
	MaximumWindowSize coord
}

var (
	kernel32                       = syscall.NewLazyDLL("kernel32.dll")
	procGetConsoleMode             = kernel32.NewProc("GetConsoleMode")
	procSetConsoleMode             = kernel32.NewProc("SetConsoleMode")
	procGetConsoleScreenBufferInfo = kernel32.NewProc("GetConsoleScreenBufferInfo")
	procGetStdHandle               = kernel32.NewProc("GetStdHandle")
)

const (
	stdOutputHandle                 = ^uintptr(10) + 1 // (uintptr)(-11)
	stdInputHandle                  = ^uintptr(9) + 1  // (uintptr)(-10)
	enableVirtualTerminalProcessing = 0x0004
	invalidHandle                   = ^uintptr(0)
)

func handleOf(f *os.File) uintptr {
	switch f {
	case os.Stdout:
		h, _, _ := procGetStdHandle.Call(stdOutputHandle)
		return h
	case os.Stdin:
		h, _, _ := procGetStdHandle.Call(stdInputHandle)
		return h
	}
	return f.Fd()
}

func consoleMode(h uintptr) (uint32, bool) {
	if h == 0 || h == invalidHandle {
		return 0, false
	}
	var mode uint32
	r, _, _ := procGetConsoleMode.Call(h, uintptr(unsafe.Pointer(&mode)))
	return mode, r != 0
}

func (w *windowsPlatform) isTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	_, ok := consoleMode(handleOf(f))
	return ok
}

func (w *windowsPlatform) termSize(f *os.File) (int, int, bool) {
	if f == nil {
		return 0, 0, false
	}
	var info consoleScreenBufferInfo
	r, _, _ := procGetConsoleScreenBufferInfo.Call(handleOf(f), uintptr(unsafe.Pointer(&info)))
	if r == 0 {
		return 0, 0, false
	}
	width := int(info.Window.Right - info.Window.Left + 1)
	height := int(info.Window.Bottom - info.Window.Top + 1)
	if width <= 0 || height <= 0 {
		return 0, 0, false
	}
	return width, height, true
}

func (w *windowsPlatform) enableVirtualTerminal() bool {
	h := handleOf(os.Stdout)
	mode, ok := consoleMode(h)
	if !ok {
		return false
	}
	if mode&enableVirtualTerminalProcessing != 0 {
		return true
	}
	r, _, _ := procSetConsoleMode.Call(h, uintptr(mode|enableVirtualTerminalProcessing))
	return r != 0
}

func (w *windowsPlatform) vtEnabled() bool {
	mode, ok := consoleMode(handleOf(os.Stdout))
	return ok && mode&enableVirtualTerminalProcessing != 0
}

// colorCapabilityLevel assumes truecolor for Windows Terminal, ConEmu and any
// console with VT processing, 256 colors for other consoles.
func (w *windowsPlatform) colorCapabilityLevel() int {
	if os.Getenv("WT_SESSION") != "" || os.Getenv("WT_PROFILE_ID") != "" {
		return 3
	}
	if os.Getenv("ConEmuANSI") == "ON" {
		return 3
	}
	if w.vtEnabled() {
		return 3
	}
	if w.isTerminal(os.Stdout) {
		return 2
	}
	return 0
}
