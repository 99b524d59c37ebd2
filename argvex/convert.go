package argvex

import "unsafe"

// Integer is the set of fixed-width integer types ParseInteger can produce.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Base limits accepted by ParseInteger.
const (
	MinBase = 2
	MaxBase = 36
)

// ParseInteger converts text to T in the given base (2 to 36).
//
// A single leading '-' is accepted for signed T only. Digits are consumed left
// to right until the first byte that is not a digit in base; trailing bytes
// after the numeric prefix are ignored. There is no '+' sign, no whitespace
// trimming and no base prefix ("0x").
//
// The error is a *NumError: ErrInvalidArgument when no digit was consumed (or
// the input is not plain ASCII within the scanned prefix), ErrOutOfRange when
// the digits describe a value T cannot represent. On error the returned value
// is zero and must not be used.
func ParseInteger[T Integer](text string, base int) (T, error) {
	v, _, err := parseInteger[T]("ParseInteger", text, base)
	return v, err
}

// ParseIntegerPrefix is ParseInteger that also reports how many bytes of text
// were consumed, sign included. The count is only meaningful on success.
func ParseIntegerPrefix[T Integer](text string, base int) (T, int, error) {
	return parseInteger[T]("ParseIntegerPrefix", text, base)
}

// MustParseInteger is like ParseInteger but panics on error.
func MustParseInteger[T Integer](text string, base int) T {
	v, err := ParseInteger[T](text, base)
	if err != nil {
		panic(err)
	}
	return v
}

// limits describes the representable range of an integer type as the
// magnitude bounds of its positive and negative branches.
type limits struct {
	signed bool
	maxPos uint64 // largest positive value
	maxNeg uint64 // magnitude of the minimum value, 0 for unsigned
}

func limitsOf[T Integer]() limits {
	var zero T
	bits := uint(unsafe.Sizeof(zero)) * 8
	umax := ^uint64(0) >> (64 - bits)
	if ^zero < 0 {
		imax := umax >> 1
		return limits{signed: true, maxPos: imax, maxNeg: imax + 1}
	}
	return limits{maxPos: umax}
}

// thresholds returns the largest accumulator that can take any further digit
// without leaving [0, bound], and the largest digit allowed when the
// accumulator equals that value.
func thresholds(bound uint64, base uint64) (risky uint64, maxFinal uint64) {
	return bound / base, bound % base
}

func parseInteger[T Integer](fn, text string, base int) (T, int, error) {
	fail := func(typ ErrorType) (T, int, error) {
		return 0, 0, &NumError{Func: fn, Input: text, Type: typ}
	}
	if base < MinBase || base > MaxBase {
		return fail(ErrorTypeInvalidArgument)
	}

	lim := limitsOf[T]()
	i := 0
	negative := false
	if lim.signed && len(text) > 0 && text[0] == '-' {
		negative = true
		i++
	}
	start := i

	bound := lim.maxPos
	if negative {
		bound = lim.maxNeg
	}
	b := uint64(base)
	risky, maxFinal := thresholds(bound, b)

	var value uint64
	overflowed := false
	for ; i < len(text); i++ {
		c := text[i]
		if c > 0x7F {
			return fail(ErrorTypeInvalidArgument)
		}
		d := uint64(digitOf(c))
		if d >= b {
			break
		}
		if value < risky || (value == risky && d <= maxFinal) {
			value = value*b + d
		} else {
			// keep scanning so the stop position stays correct
			overflowed = true
		}
	}

	if i == start {
		return fail(ErrorTypeInvalidArgument)
	}
	if overflowed {
		return fail(ErrorTypeOutOfRange)
	}
	if negative {
		value = -value
	}
	return T(value), i, nil
}
