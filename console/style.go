package console

import (
	"strconv"
	"strings"
)

// Color is an ANSI color in the 16-color, 256-color or truecolor space.
type Color struct {
	space   uint8 // 0 unset, 1 basic, 2 indexed, 3 rgb
	index   uint8
	r, g, b uint8
}

// The 16 console colors.
var (
	Black   = basic(0)
	Red     = basic(1)
	Green   = basic(2)
	Yellow  = basic(3)
	Blue    = basic(4)
	Magenta = basic(5)
	Cyan    = basic(6)
	White   = basic(7)

	Gray         = basic(8)
	LightRed     = basic(9)
	LightGreen   = basic(10)
	LightYellow  = basic(11)
	LightBlue    = basic(12)
	LightMagenta = basic(13)
	LightCyan    = basic(14)
	BrightWhite  = basic(15)
)

func basic(i uint8) Color { return Color{space: 1, index: i & 0x0F} }

// Indexed returns a color from the 256-color palette.
func Indexed(i uint8) Color { return Color{space: 2, index: i} }

// RGB returns a truecolor color.
func RGB(r, g, b uint8) Color { return Color{space: 3, r: r, g: g, b: b} }

// IsZero reports whether c is unset.
func (c Color) IsZero() bool { return c.space == 0 }

// code renders the SGR parameters for c, degraded to what level supports.
func (c Color) code(level int, background bool) string {
	switch {
	case c.space == 3 && level >= 3:
		p := "38;2;"
		if background {
			p = "48;2;"
		}
		return p + strconv.Itoa(int(c.r)) + ";" + strconv.Itoa(int(c.g)) + ";" + strconv.Itoa(int(c.b))
	case c.space >= 2 && level >= 2:
		p := "38;5;"
		if background {
			p = "48;5;"
		}
		return p + strconv.Itoa(int(c.toIndexed()))
	default:
		return basicCode(c.toBasic(), background)
	}
}

func basicCode(i uint8, background bool) string {
	base := 30
	if i >= 8 {
		base = 90
		i -= 8
	}
	if background {
		base += 10
	}
	return strconv.Itoa(base + int(i))
}

func (c Color) toIndexed() uint8 {
	if c.space != 3 {
		return c.index
	}
	q := func(v uint8) uint8 { return uint8((int(v)*5 + 127) / 255) }
	return 16 + 36*q(c.r) + 6*q(c.g) + q(c.b)
}

// toBasic approximates c with one of the 16 console colors.
func (c Color) toBasic() uint8 {
	if c.space == 1 {
		return c.index
	}
	var r, g, b uint8
	switch {
	case c.space == 3:
		r, g, b = c.r, c.g, c.b
	case c.index < 16:
		return c.index
	case c.index >= 232:
		v := c.index - 232
		if v < 8 {
			return 0
		}
		if v < 16 {
			return 8
		}
		return 7
	default:
		v := c.index - 16
		r, g, b = v/36*51, v/6%6*51, v%6*51
	}
	var idx uint8
	if r >= 128 {
		idx |= 1
	}
	if g >= 128 {
		idx |= 2
	}
	if b >= 128 {
		idx |= 4
	}
	if max(r, g, b) >= 200 && idx != 0 {
		idx += 8
	}
	return idx
}

// Style is a set of SGR attributes applied to text.
type Style struct {
	fg, bg    Color
	bold      bool
	dim       bool
	underline bool
}

// NewStyle returns an empty style.
func NewStyle() Style { return Style{} }

func (s Style) Fg(c Color) Style { s.fg = c; return s }
func (s Style) Bg(c Color) Style { s.bg = c; return s }
func (s Style) Bold() Style { s.bold = true; return s }
func (s Style) Dim() Style { s.dim = true; return s }
func (s Style) Underline() Style { s.underline = true; return s }

// Sprint renders text with the style when c supports color, or returns it
// unchanged otherwise.
func (s Style) Sprint(c *Console, text string) string {
	level := c.ColorLevel()
	if level == 0 {
		return text
	}
	prefix := s.prefix(level)
	if prefix == "" {
		return text
	}
	return prefix + text + "\x1b[0m"
}

func (s Style) prefix(level int) string {
	var params []string
	if s.bold {
		params = append(params, "1")
	}
	if s.dim {
		params = append(params, "2")
	}
	if s.underline {
		params = append(params, "4")
	}
	if !s.fg.IsZero() {
		params = append(params, s.fg.code(level, false))
	}
	if !s.bg.IsZero() {
		params = append(params, s.bg.code(level, true))
	}
	if len(params) == 0 {
		return ""
	}
	return "\x1b[" + strings.Join(params, ";") + "m"
}

// Theme maps log levels to colors.
type Theme struct {
	Debug, Info, Success, Warning, Error Color
}

// DefaultTheme uses the 16 console colors so it renders the same at every
// color level.
func DefaultTheme() Theme {
	return Theme{
		Debug:   Gray,
		Info:    Cyan,
		Success: Green,
		Warning: Yellow,
		Error:   Red,
	}
}
