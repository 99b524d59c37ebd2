//go:build !windows

package console

import (
	"os"
	"os/exec"
	"strconv"
	"strings"
	"sync"
	"syscall"
	"unsafe"
)

type unixPlatform struct {
	capOnce sync.Once
	colors  int // -1 unknown, otherwise the number of colors reported
}

func newPlatform() platform { return &unixPlatform{} }

type winsize struct{ Row, Col, Xpixel, Ypixel uint16 }

func ioctlWinsize(f *os.File) (winsize, bool) {
	var ws winsize
	_, _, errno := syscall.Syscall(syscall.SYS_IOCTL, f.Fd(), uintptr(syscall.TIOCGWINSZ), uintptr(unsafe.Pointer(&ws)))
	return ws, errno == 0
}

func (u *unixPlatform) isTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	if _, ok := ioctlWinsize(f); ok {
		return true
	}
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

func (u *unixPlatform) termSize(f *os.File) (int, int, bool) {
	if f == nil {
		return 0, 0, false
	}
	ws, ok := ioctlWinsize(f)
	if !ok || ws.Col == 0 || ws.Row == 0 {
		return 0, 0, false
	}
	return int(ws.Col), int(ws.Row), true
}

func (u *unixPlatform) enableVirtualTerminal() bool { return true }
func (u *unixPlatform) vtEnabled() bool             { return true }

// detectColors asks terminfo through tput, then falls back to TERM.
func (u *unixPlatform) detectColors() int {
	u.capOnce.Do(func() {
		u.colors = -1
		if err := exec.Command("tput", "RGB").Run(); err == nil {
			u.colors = 1 << 24
			return
		}
		if out, err := exec.Command("tput", "colors").Output(); err == nil {
			if n, perr := strconv.Atoi(strings.TrimSpace(string(out))); perr == nil {
				u.colors = n
				return
			}
		}
		term := os.Getenv("TERM")
		switch {
		case strings.Contains(term, "256"):
			u.colors = 256
		case term != "" && term != "dumb":
			u.colors = 8
		}
	})
	return u.colors
}

func (u *unixPlatform) colorCapabilityLevel() int {
	switch n := u.detectColors(); {
	case n >= 1<<24:
		return 3
	case n >= 256:
		return 2
	case n >= 8:
		return 1
	default:
		return 0
	}
}
