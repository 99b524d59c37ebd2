package console

import (
	"fmt"
	stdio "io"
	"strings"
	"time"
)

// Level is the severity of a log line.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelSuccess
	LevelWarning
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelSuccess:
		return "SUCCESS"
	case LevelWarning:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Format selects the per-line prefix.
type Format int

const (
	FormatSymbols Format = iota // ● ◆ ✓ ▲ ✗
	FormatTagged                // [DEBUG] [INFO] ...
	FormatPlain                 // no prefix
)

var prefixes = map[Format]map[Level]string{
	FormatSymbols: {
		LevelDebug:   "●",
		LevelInfo:    "◆",
		LevelSuccess: "✓",
		LevelWarning: "▲",
		LevelError:   "✗",
	},
	FormatTagged: {
		LevelDebug:   "[DEBUG]",
		LevelInfo:    "[INFO]",
		LevelSuccess: "[SUCCESS]",
		LevelWarning: "[WARN]",
		LevelError:   "[ERROR]",
	},
}

// Logger writes leveled, optionally colored lines to a Console.
type Logger struct {
	c            *Console
	format       Format
	minLevel     Level
	withTime     bool
	timeFormat   string
	errorsStderr bool
	theme        Theme
	now          func() time.Time
}

// NewLogger returns a logger writing symbol-prefixed lines at LevelInfo and
// above, with warnings and errors on stderr.
func NewLogger(c *Console) *Logger {
	return &Logger{
		c:            c,
		format:       FormatSymbols,
		minLevel:     LevelInfo,
		timeFormat:   "15:04:05",
		errorsStderr: true,
		theme:        DefaultTheme(),
		now:          time.Now,
	}
}

// WithFormat sets the line prefix format.
func (l *Logger) WithFormat(f Format) *Logger { l.format = f; return l }

// WithLevel drops lines below level.
func (l *Logger) WithLevel(level Level) *Logger { l.minLevel = level; return l }

// WithTimestamp adds a timestamp after the prefix.
func (l *Logger) WithTimestamp(enabled bool) *Logger { l.withTime = enabled; return l }

// WithTimeFormat sets the timestamp layout.
func (l *Logger) WithTimeFormat(layout string) *Logger { l.timeFormat = layout; return l }

// ErrorsToStderr controls whether warnings and errors go to stderr.
func (l *Logger) ErrorsToStderr(enabled bool) *Logger { l.errorsStderr = enabled; return l }

// WithTheme sets the level colors.
func (l *Logger) WithTheme(t Theme) *Logger { l.theme = t; return l }

// Enabled reports whether lines at level are written.
func (l *Logger) Enabled(level Level) bool { return level >= l.minLevel }

// Log writes one line at level.
func (l *Logger) Log(level Level, format string, args ...any) {
	if !l.Enabled(level) {
		return
	}
	line := l.formatLine(level, fmt.Sprintf(format, args...))
	fmt.Fprintln(l.writer(level), line)
}

func (l *Logger) formatLine(level Level, msg string) string {
	if strings.TrimSpace(msg) == "" {
		return msg
	}
	parts := make([]string, 0, 3)
	if p := prefixes[l.format][level]; p != "" {
		parts = append(parts, p)
	}
	if l.withTime {
		ts := l.now().Format(l.timeFormat)
		if l.format != FormatPlain {
			ts = "[" + ts + "]"
		}
		parts = append(parts, ts)
	}
	parts = append(parts, msg)
	return l.colorize(level, strings.Join(parts, " "))
}

func (l *Logger) colorize(level Level, text string) string {
	var color Color
	switch level {
	case LevelDebug:
		color = l.theme.Debug
	case LevelInfo:
		color = l.theme.Info
	case LevelSuccess:
		color = l.theme.Success
	case LevelWarning:
		color = l.theme.Warning
	case LevelError:
		color = l.theme.Error
	}
	if color.IsZero() {
		return text
	}
	return NewStyle().Fg(color).Sprint(l.c, text)
}

func (l *Logger) writer(level Level) stdio.Writer {
	if l.errorsStderr && level >= LevelWarning {
		return l.c.Err()
	}
	return l.c.Out()
}

func (l *Logger) Debug(format string, args ...any)   { l.Log(LevelDebug, format, args...) }
func (l *Logger) Info(format string, args ...any)    { l.Log(LevelInfo, format, args...) }
func (l *Logger) Success(format string, args ...any) { l.Log(LevelSuccess, format, args...) }
func (l *Logger) Warning(format string, args ...any) { l.Log(LevelWarning, format, args...) }
func (l *Logger) Error(format string, args ...any)   { l.Log(LevelError, format, args...) }
