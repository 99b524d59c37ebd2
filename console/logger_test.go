package console

import (
	"testing"
	"time"
)

func fixedClock() time.Time { return time.Date(2026, 3, 6, 12, 34, 56, 0, time.UTC) }

func TestLoggerRouting(t *testing.T) {
	clearColorEnv(t)
	c, out, errOut := newTestConsole(fakePlatform{})
	c.WithColor(ColorNever)
	log := NewLogger(c).WithFormat(FormatTagged)

	log.Debug("dropped")
	log.Info("info %d", 1)
	log.Success("done")
	log.Warning("careful")
	log.Error("broken")

	if got, want := out.String(), "[INFO] info 1\n[SUCCESS] done\n"; got != want {
		t.Errorf("stdout = %q, want %q", got, want)
	}
	if got, want := errOut.String(), "[WARN] careful\n[ERROR] broken\n"; got != want {
		t.Errorf("stderr = %q, want %q", got, want)
	}

	out.Reset()
	errOut.Reset()
	log.ErrorsToStderr(false).WithLevel(LevelDebug)
	log.Debug("kept")
	log.Error("inline")
	if got, want := out.String(), "[DEBUG] kept\n[ERROR] inline\n"; got != want {
		t.Errorf("stdout = %q, want %q", got, want)
	}
	if errOut.Len() != 0 {
		t.Errorf("stderr = %q, want empty", errOut.String())
	}
}

func TestLoggerFormats(t *testing.T) {
	tests := []struct {
		name     string
		format   Format
		withTime bool
		level    Level
		msg      string
		want     string
	}{
		{name: "symbols", format: FormatSymbols, level: LevelSuccess, msg: "ok", want: "✓ ok\n"},
		{name: "tagged", format: FormatTagged, level: LevelInfo, msg: "ok", want: "[INFO] ok\n"},
		{name: "plain", format: FormatPlain, level: LevelInfo, msg: "ok", want: "ok\n"},
		{name: "tagged time", format: FormatTagged, withTime: true, level: LevelInfo, msg: "ok", want: "[INFO] [12:34:56] ok\n"},
		{name: "plain time", format: FormatPlain, withTime: true, level: LevelInfo, msg: "ok", want: "12:34:56 ok\n"},
		{name: "blank message", format: FormatTagged, level: LevelInfo, msg: "  ", want: "  \n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearColorEnv(t)
			c, out, _ := newTestConsole(fakePlatform{})
			c.WithColor(ColorNever)
			log := NewLogger(c).WithFormat(tt.format).WithTimestamp(tt.withTime)
			log.now = fixedClock

			log.Log(tt.level, "%s", tt.msg)
			if got := out.String(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLoggerColor(t *testing.T) {
	clearColorEnv(t)
	c, _, errOut := newTestConsole(fakePlatform{})
	c.WithColor(ColorAlways).WithColorLevel(1)
	log := NewLogger(c).WithFormat(FormatTagged)

	log.Error("x")
	if got, want := errOut.String(), "\x1b[31m[ERROR] x\x1b[0m\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	errOut.Reset()
	log.WithTheme(Theme{})
	log.Error("x")
	if got, want := errOut.String(), "[ERROR] x\n"; got != want {
		t.Errorf("empty theme: got %q, want %q", got, want)
	}
}

func TestLevelString(t *testing.T) {
	for level, want := range map[Level]string{
		LevelDebug: "DEBUG", LevelInfo: "INFO", LevelSuccess: "SUCCESS",
		LevelWarning: "WARN", LevelError: "ERROR", Level(99): "UNKNOWN",
	} {
		if got := level.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", int(level), got, want)
		}
	}
}
