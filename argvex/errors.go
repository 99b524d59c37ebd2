package argvex

import (
	"errors"
	"strconv"
)

// ErrorType represents the failure categories of the scanner and the
// converter. Categories drive Status codes and exit-code mapping (see ExitCodes).
type ErrorType string

const (
	// Scanner categories.
	ErrorTypeInvalidArgumentInput ErrorType = "invalid_argument_input"
	ErrorTypeMalformedToken       ErrorType = "malformed_token"
	ErrorTypeUnexpectedValue      ErrorType = "unexpected_value"
	ErrorTypeMissingValue         ErrorType = "missing_value"
	ErrorTypeSkipped              ErrorType = "skipped"
	ErrorTypeReused               ErrorType = "reused"

	// Converter categories.
	ErrorTypeInvalidArgument ErrorType = "invalid_argument"
	ErrorTypeOutOfRange      ErrorType = "out_of_range"
)

// Sentinel errors for errors.Is checks against *NumError and *ScanError.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrOutOfRange      = errors.New("result out of range")
	ErrMalformedToken  = errors.New("malformed token")
	ErrUnexpectedValue = errors.New("unexpected value")
	ErrMissingValue    = errors.New("missing value")
	ErrSkipped         = errors.New("skipped")
	ErrInvalidInput    = errors.New("invalid argument input")
	ErrReused          = errors.New("scanner already used")
)

// NumError records a failed integer conversion.
type NumError struct {
	Func  string // "ParseInteger"
	Input string
	Type  ErrorType
}

func (e *NumError) Error() string {
	return "argvex." + e.Func + ": parsing " + strconv.Quote(e.Input) + ": " + e.sentinel().Error()
}

// Unwrap lets errors.Is match ErrInvalidArgument or ErrOutOfRange.
func (e *NumError) Unwrap() error { return e.sentinel() }

func (e *NumError) sentinel() error {
	if e.Type == ErrorTypeOutOfRange {
		return ErrOutOfRange
	}
	return ErrInvalidArgument
}

// ScanError represents a scan that stopped at a specific token.
type ScanError struct {
	Type    ErrorType
	Message string
	Token   string // raw token that stopped the scan, empty for input errors
	Index   int    // argv index of Token
}

func (e *ScanError) Error() string {
	return e.Message
}

// Unwrap maps the category onto its sentinel error.
func (e *ScanError) Unwrap() error {
	switch e.Type {
	case ErrorTypeMalformedToken:
		return ErrMalformedToken
	case ErrorTypeUnexpectedValue:
		return ErrUnexpectedValue
	case ErrorTypeMissingValue:
		return ErrMissingValue
	case ErrorTypeSkipped:
		return ErrSkipped
	case ErrorTypeInvalidArgumentInput:
		return ErrInvalidInput
	case ErrorTypeReused:
		return ErrReused
	case ErrorTypeInvalidArgument:
		return ErrInvalidArgument
	case ErrorTypeOutOfRange:
		return ErrOutOfRange
	}
	return nil
}

// Status codes reported by Scan.
const (
	CodeSuccess  = 0
	CodeFailure  = 1
	CodeDeclined = 2
)

// Status is the tri-state outcome of a scan: success, hard failure, or the
// handler declining an option.
type Status struct {
	Code    int
	Message string
	Err     *ScanError
}

// OK reports whether the scan consumed the whole argument vector.
func (s Status) OK() bool { return s.Code == CodeSuccess }

// Skipped reports whether the handler declined an option.
func (s Status) Skipped() bool { return s.Code == CodeDeclined }

// Failed reports whether the scan hit a hard failure.
func (s Status) Failed() bool { return s.Code == CodeFailure }

// AsError returns the underlying *ScanError as an error, or nil on success.
// A declined scan also returns its error so callers can match ErrSkipped.
func (s Status) AsError() error {
	if s.Err == nil {
		return nil
	}
	return s.Err
}

func (s Status) String() string {
	if s.Message == "" {
		return "ok"
	}
	return s.Message
}

func success() Status { return Status{Code: CodeSuccess} }

func failure(typ ErrorType, message, token string, index int) Status {
	return Status{
		Code:    CodeFailure,
		Message: message,
		Err:     &ScanError{Type: typ, Message: message, Token: token, Index: index},
	}
}

func declined(token string, index int) Status {
	return Status{
		Code:    CodeDeclined,
		Message: "skipped",
		Err:     &ScanError{Type: ErrorTypeSkipped, Message: "skipped", Token: token, Index: index},
	}
}
