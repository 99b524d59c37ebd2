package argvex

// Arity is an option's value policy.
type Arity int

const (
	// RequiredArgument takes its value inline (-x=v, -xv, --name=v) or from
	// the following token (-x v, --name v).
	RequiredArgument Arity = iota
	// NoArgument rejects an inline value.
	NoArgument
	// OptionalArgument accepts an inline value only. Unknown options use it.
	OptionalArgument
)

func (a Arity) String() string {
	switch a {
	case RequiredArgument:
		return "required"
	case NoArgument:
		return "none"
	case OptionalArgument:
		return "optional"
	default:
		return "unknown"
	}
}

// Unmatched is the id delivered for a long option that is not in the table.
// Short options always deliver their flag character, matched or not.
const Unmatched = -1

// Option describes one recognized option.
//
// ID serves two roles: it is the value handed to the Handler, and it is the
// character code a short option is matched against (-x matches ID 'x'). An
// option that has both forms therefore uses its short flag character as ID.
// Use Short, Long and Both to make the role explicit at the call site.
type Option struct {
	Name  string
	Arity Arity
	ID    int
}

// Short declares an option reachable only as -c.
func Short(c byte, arity Arity) Option {
	return Option{Arity: arity, ID: int(c)}
}

// Long declares an option reachable only as --name. The id must not collide
// with a short flag character in the same table unless that is intended.
func Long(name string, arity Arity, id int) Option {
	return Option{Name: name, Arity: arity, ID: id}
}

// Both declares an option reachable as --name and -c; c is its id.
func Both(name string, c byte, arity Arity) Option {
	return Option{Name: name, Arity: arity, ID: int(c)}
}

// ShortFlag returns the short flag character this option answers to. The
// second result is false when ID is outside the single-byte range.
func (o Option) ShortFlag() (byte, bool) {
	if o.ID < 0 || o.ID > 0xFF {
		return 0, false
	}
	return byte(o.ID), true
}

// lookupLong returns the first option named name. Short-only options have no
// name and never match.
func lookupLong(opts []Option, name string) (Option, bool) {
	for _, o := range opts {
		if o.Name != "" && o.Name == name {
			return o, true
		}
	}
	return Option{}, false
}

// lookupShort returns the first option whose ID equals the flag character.
func lookupShort(opts []Option, c byte) (Option, bool) {
	for _, o := range opts {
		if o.ID == int(c) {
			return o, true
		}
	}
	return Option{}, false
}
