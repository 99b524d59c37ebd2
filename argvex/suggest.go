package argvex

import (
	"strings"

	"github.com/fcharlie/commit365/internal/fuzzy"
)

// Suggest returns the long option name in opts closest to the name carried
// by raw (an unmatched "--name" or "--name=value" token), or "" when nothing
// is close enough.
func Suggest(raw string, opts []Option) string {
	name := strings.TrimPrefix(raw, "--")
	if i := strings.IndexByte(name, '='); i >= 0 {
		name = name[:i]
	}
	names := make([]string, 0, len(opts))
	for _, o := range opts {
		if o.Name != "" {
			names = append(names, o.Name)
		}
	}
	return fuzzy.Closest(name, names)
}

// UnknownOption builds the diagnostic for an unmatched option token, with a
// "did you mean" hint when one is available.
func UnknownOption(m Match, opts []Option) *ScanError {
	msg := "unknown option: " + m.Raw
	if strings.HasPrefix(m.Raw, "--") {
		if s := Suggest(m.Raw, opts); s != "" {
			msg += " (did you mean '--" + s + "'?)"
		}
	}
	return &ScanError{Type: ErrorTypeSkipped, Message: msg, Token: m.Raw, Index: m.Index}
}
