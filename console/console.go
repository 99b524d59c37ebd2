// Package console is the terminal output helper used by the command-line
// tools: stream selection, color capability detection, styled and leveled
// output.
package console

import (
	"fmt"
	stdio "io"
	"os"
	"runtime"
	"strings"
	"sync"
)

// platform is implemented per OS in platform_unix.go and platform_windows.go.
type platform interface {
	isTerminal(*os.File) bool
	termSize(*os.File) (width, height int, ok bool)
	enableVirtualTerminal() bool
	vtEnabled() bool
	colorCapabilityLevel() int // 0=none, 1=16, 2=256, 3=truecolor
}

// ColorMode selects how color support is decided.
type ColorMode int

const (
	ColorAuto ColorMode = iota
	ColorAlways
	ColorNever
)

// Console owns the process streams and their terminal capabilities.
type Console struct {
	mu     sync.Mutex
	in     stdio.Reader
	out    stdio.Writer
	err    stdio.Writer
	stderr bool // Printf writes to err instead of out

	mode       ColorMode
	forceLevel int // >0 overrides detection
	p          platform
}

// New returns a console bound to the process stdio.
func New() *Console {
	return &Console{in: os.Stdin, out: os.Stdout, err: os.Stderr, p: newPlatform()}
}

// WithIn sets the input reader.
func (c *Console) WithIn(r stdio.Reader) *Console { c.in = r; return c }

// WithOut sets the standard output writer.
func (c *Console) WithOut(w stdio.Writer) *Console { c.out = w; return c }

// WithErr sets the standard error writer.
func (c *Console) WithErr(w stdio.Writer) *Console { c.err = w; return c }

// WithColor sets the color mode.
func (c *Console) WithColor(mode ColorMode) *Console { c.mode = mode; return c }

// WithColorLevel forces a color level (1=16, 2=256, 3=truecolor) when
// detection gets the terminal wrong. Zero restores detection.
func (c *Console) WithColorLevel(level int) *Console { c.forceLevel = level; return c }

// UseStderr switches Printf and Verbosef between stdout and stderr.
func (c *Console) UseStderr(enabled bool) *Console {
	c.mu.Lock()
	c.stderr = enabled
	c.mu.Unlock()
	return c
}

// In returns the input reader.
func (c *Console) In() stdio.Reader { return c.in }

// Out returns the standard output writer.
func (c *Console) Out() stdio.Writer { return c.out }

// Err returns the standard error writer.
func (c *Console) Err() stdio.Writer { return c.err }

// IsTTY reports whether stdout is a terminal.
func (c *Console) IsTTY() bool { return c.p.isTerminal(os.Stdout) }

// IsRedirected reports whether stdout is not a terminal.
func (c *Console) IsRedirected() bool { return !c.IsTTY() }

// Width returns the terminal width, COLUMNS, or 80.
func (c *Console) Width() int {
	if w, _, ok := c.p.termSize(os.Stdout); ok && w > 0 {
		return w
	}
	if w, _ := fallbackTermSize(); w > 0 {
		return w
	}
	return 80
}

// SupportsColor reports whether ANSI sequences should be written. NO_COLOR
// and FORCE_COLOR are honored in auto mode.
func (c *Console) SupportsColor() bool {
	switch c.mode {
	case ColorNever:
		return false
	case ColorAlways:
		return true
	case ColorAuto:
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}
	if goos() == "windows" {
		return c.p.vtEnabled()
	}
	if !c.IsTTY() {
		return false
	}
	term := os.Getenv("TERM")
	return term != "" && term != "dumb"
}

// ColorLevel returns 0 for none, 1 for 16 colors, 2 for 256 colors and 3
// for truecolor.
func (c *Console) ColorLevel() int {
	if c.forceLevel > 0 {
		return c.forceLevel
	}
	if !c.SupportsColor() {
		return 0
	}
	if ct := os.Getenv("COLORTERM"); ct == "truecolor" || ct == "24bit" {
		return 3
	}
	term := os.Getenv("TERM")
	if strings.Contains(term, "truecolor") || strings.Contains(term, "24bit") {
		return 3
	}
	if tp := os.Getenv("TERM_PROGRAM"); tp == "vscode" || tp == "zed" {
		return 3
	}
	if strings.Contains(term, "256color") {
		return 2
	}
	if level := c.p.colorCapabilityLevel(); level > 0 {
		return level
	}
	return 1
}

// EnableVirtualTerminal turns on ANSI processing for Windows consoles. It is
// a no-op elsewhere.
func (c *Console) EnableVirtualTerminal() bool { return c.p.enableVirtualTerminal() }

// Printf writes formatted text to the current print stream.
func (c *Console) Printf(format string, a ...any) (int, error) {
	return fmt.Fprintf(c.printStream(), format, a...)
}

// Verbosef is Printf in yellow, written only when verbose is set.
func (c *Console) Verbosef(verbose bool, format string, a ...any) (int, error) {
	if !verbose {
		return 0, nil
	}
	text := NewStyle().Fg(Yellow).Sprint(c, fmt.Sprintf(format, a...))
	return stdio.WriteString(c.printStream(), text)
}

func (c *Console) printStream() stdio.Writer {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stderr {
		return c.err
	}
	return c.out
}

func goos() string {
	if v := os.Getenv("COMMIT365_GOOS"); v != "" {
		return v
	}
	return runtime.GOOS
}
