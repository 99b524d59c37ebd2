package argvex

import "strings"

// Match is one recognized option handed to a Handler.
type Match struct {
	ID       int    // option id, flag character for short options, Unmatched for unknown long options
	Value    string // resolved value, empty when HasValue is false
	HasValue bool
	Raw      string // option token as it appeared in argv
	Index    int    // argv index of Raw
}

// Handler is called once per option token in argv order. Returning false
// declines the option and stops the scan with a declined Status.
type Handler func(m Match) bool

// Scanner walks one argument vector. It keeps a cursor and the positional
// arguments seen so far; it is single use and not safe for concurrent use.
type Scanner struct {
	argv        []string
	index       int
	positionals []string
	scanned     bool
}

// NewScanner creates a scanner over argv. argv[0] is the program name and is
// never scanned. The slice is borrowed, not copied.
func NewScanner(argv []string) *Scanner {
	return &Scanner{
		argv:        argv,
		positionals: make([]string, 0, len(argv)),
	}
}

// Scan classifies every token after argv[0] and dispatches options to h.
//
// Tokens not starting with '-' are collected as positionals. Option shapes:
//
//	-x  -xVALUE  -x=VALUE  -x VALUE (required arity)
//	--name  --name=VALUE  --name VALUE (required arity)
//
// Scan stops at the first malformed token, at an option whose value policy
// is violated, or when h returns false. Positionals collected before the stop
// remain available through Positionals.
func (s *Scanner) Scan(opts []Option, h Handler) Status {
	if s.scanned {
		return failure(ErrorTypeReused, "scanner already used", "", 0)
	}
	s.scanned = true
	if len(s.argv) == 0 {
		return failure(ErrorTypeInvalidArgumentInput, "invalid argument input", "", 0)
	}
	if h == nil {
		h = acceptAll
	}

	for s.index = 1; s.index < len(s.argv); s.index++ {
		arg := s.argv[s.index]
		if !strings.HasPrefix(arg, "-") {
			s.positionals = append(s.positionals, arg)
			continue
		}
		if st := s.scanOption(arg, opts, h); !st.OK() {
			return st
		}
	}
	return success()
}

// scanOption resolves one option token and invokes the handler.
func (s *Scanner) scanOption(arg string, opts []Option, h Handler) Status {
	at := s.index
	if len(arg) < 2 {
		return failure(ErrorTypeMalformedToken, "Invalid argument", arg, at)
	}

	id := Unmatched
	arity := OptionalArgument
	var value string
	hasValue := false

	if arg[1] == '-' {
		// --name, --name=value, --name value
		name := arg[2:]
		if pos := strings.IndexByte(arg, '='); pos != -1 {
			if pos+1 >= len(arg) {
				return failure(ErrorTypeMalformedToken, "Incorrect argument: "+arg, arg, at)
			}
			name = arg[2:pos]
			value, hasValue = arg[pos+1:], true
		}
		if o, ok := lookupLong(opts, name); ok {
			id, arity = o.ID, o.Arity
		}
	} else {
		// -x, -xvalue, -x=value, -x value
		c := arg[1]
		id = int(c)
		if len(arg) == 3 && arg[2] == '=' {
			return failure(ErrorTypeMalformedToken, "Incorrect argument: "+arg, arg, at)
		}
		if len(arg) > 3 {
			if arg[2] == '=' {
				value = arg[3:]
			} else {
				value = arg[2:]
			}
			hasValue = true
		}
		if o, ok := lookupShort(opts, c); ok {
			arity = o.Arity
		}
	}

	if hasValue && arity == NoArgument {
		return failure(ErrorTypeUnexpectedValue, "Unacceptable input: "+arg, arg, at)
	}
	if !hasValue && arity == RequiredArgument {
		if s.index+1 >= len(s.argv) {
			return failure(ErrorTypeMissingValue, "Option value cannot be empty: "+arg, arg, at)
		}
		s.index++
		value, hasValue = s.argv[s.index], true
	}

	if !h(Match{ID: id, Value: value, HasValue: hasValue, Raw: arg, Index: at}) {
		return declined(arg, at)
	}
	return success()
}

func acceptAll(Match) bool { return true }

// Positionals returns the non-option tokens in the order they appeared. The
// slice is valid after Scan returns, whether or not the scan completed.
func (s *Scanner) Positionals() []string {
	return s.positionals
}

// Cursor returns the argv index the scan stopped at. After a complete scan it
// equals len(argv).
func (s *Scanner) Cursor() int {
	return s.index
}

// Scan is a convenience wrapper that scans argv with a fresh Scanner and
// returns the positionals together with the Status.
func Scan(argv []string, opts []Option, h Handler) ([]string, Status) {
	s := NewScanner(argv)
	st := s.Scan(opts, h)
	return s.Positionals(), st
}
