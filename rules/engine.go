// Package rules decides whether a repository path is protected, by directory
// prefix or by regular expression, with rule sets selected per branch from a
// JSON document.
package rules

import (
	"regexp"
)

// Engine holds the protection rules for one branch.
type Engine struct {
	prefixes []string
	patterns []*regexp.Regexp
	invalid  []string
}

// New returns an engine with no rules; it protects nothing.
func New() *Engine {
	return &Engine{}
}

// AddPrefix protects path and everything below it. It returns false when
// path cleans to nothing.
func (e *Engine) AddPrefix(path string) bool {
	p := CleanPath(path)
	if p == "" {
		return false
	}
	e.prefixes = append(e.prefixes, p)
	return true
}

// AddRegex protects every path the expression matches in full. A bad
// expression is recorded in Invalid and returned as an error.
func (e *Engine) AddRegex(expr string) error {
	re, err := regexp.Compile(`^(?:` + expr + `)$`)
	if err != nil {
		e.invalid = append(e.invalid, expr)
		return err
	}
	e.patterns = append(e.patterns, re)
	return nil
}

// Match reports whether path is protected. Prefixes are checked before
// expressions.
func (e *Engine) Match(path string) bool {
	p := CleanPath(path)
	for _, prefix := range e.prefixes {
		if Contains(prefix, p) {
			return true
		}
	}
	for _, re := range e.patterns {
		if re.MatchString(p) {
			return true
		}
	}
	return false
}

// Prefixes returns the cleaned directory prefixes in insertion order.
func (e *Engine) Prefixes() []string {
	return append([]string(nil), e.prefixes...)
}

// Invalid returns the expressions AddRegex rejected.
func (e *Engine) Invalid() []string {
	return append([]string(nil), e.invalid...)
}

// Empty reports whether the engine has no usable rules.
func (e *Engine) Empty() bool {
	return len(e.prefixes) == 0 && len(e.patterns) == 0
}
