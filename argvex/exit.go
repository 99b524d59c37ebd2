package argvex

import (
	"errors"
	"reflect"
)

// ExitError is a sentinel used to request a specific exit code from inside a
// handler or a command body.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return "exit"
}

func (e *ExitError) Unwrap() error { return e.Err }

// ExitCodeDefaults holds common default codes.
type ExitCodeDefaults struct {
	Success       int // default: 0
	GeneralError  int // default: 1
	MisusageError int // default: 2
	Declined      int // default: 0
}

func defaultExitDefaults() ExitCodeDefaults {
	return ExitCodeDefaults{Success: 0, GeneralError: 1, MisusageError: 2, Declined: 0}
}

// ExitCodes maps scan outcomes and errors to process exit codes.
type ExitCodes struct {
	codesByType map[reflect.Type]int
	codesByKind map[ErrorType]int
	defaults    ExitCodeDefaults
}

// NewExitCodes returns a mapping with usage errors prewired to the misusage
// code and a declined scan mapped to Declined.
func NewExitCodes() *ExitCodes {
	m := &ExitCodes{
		codesByType: make(map[reflect.Type]int),
		codesByKind: make(map[ErrorType]int),
		defaults:    defaultExitDefaults(),
	}
	m.prewire()
	return m
}

func (m *ExitCodes) prewire() {
	for _, typ := range []ErrorType{
		ErrorTypeInvalidArgumentInput,
		ErrorTypeMalformedToken,
		ErrorTypeUnexpectedValue,
		ErrorTypeMissingValue,
		ErrorTypeInvalidArgument,
		ErrorTypeOutOfRange,
	} {
		m.codesByKind[typ] = m.defaults.MisusageError
	}
	m.codesByKind[ErrorTypeReused] = m.defaults.GeneralError
	m.codesByKind[ErrorTypeSkipped] = m.defaults.Declined
}

// Define overrides the exit code used for an error category produced by the
// scanner or the converter.
func (m *ExitCodes) Define(typ ErrorType, code int) *ExitCodes {
	m.codesByKind[typ] = code
	return m
}

// DefineError maps a concrete error value (by its dynamic type) to an exit
// code. Category mappings take precedence.
func (m *ExitCodes) DefineError(err error, code int) *ExitCodes {
	if err == nil {
		return m
	}
	m.codesByType[reflect.TypeOf(err)] = code
	return m
}

// Default replaces the default codes and re-derives the category mappings
// from them. Call Define afterwards to override single categories.
func (m *ExitCodes) Default(d ExitCodeDefaults) *ExitCodes {
	m.defaults = d
	m.prewire()
	return m
}

// Status converts a scan Status to an exit code.
func (m *ExitCodes) Status(st Status) int {
	if st.OK() {
		return m.defaults.Success
	}
	return m.Resolve(st.AsError())
}

// Resolve converts an error to an exit code.
// Precedence:
//  1. ExitError (requested code)
//  2. ScanError / NumError category mapping (Define)
//  3. Concrete error type mapping (DefineError)
//  4. GeneralError
func (m *ExitCodes) Resolve(err error) int {
	if err == nil {
		return m.defaults.Success
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	var scanErr *ScanError
	if errors.As(err, &scanErr) {
		if code, ok := m.codesByKind[scanErr.Type]; ok {
			return code
		}
		return m.defaults.GeneralError
	}
	var numErr *NumError
	if errors.As(err, &numErr) {
		if code, ok := m.codesByKind[numErr.Type]; ok {
			return code
		}
		return m.defaults.GeneralError
	}

	for t, code := range m.codesByType {
		if errors.As(err, reflect.New(t).Interface()) {
			return code
		}
	}
	return m.defaults.GeneralError
}
