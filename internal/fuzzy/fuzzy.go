// Package fuzzy ranks candidate option names against a mistyped one.
// Used by argvex.Suggest to build "did you mean" hints for unknown long options.
package fuzzy

import (
	"sort"
	"strings"

	"github.com/fcharlie/commit365/internal/pool"
)

// DefaultMaxDistance is the edit distance used by the package-level helpers.
const DefaultMaxDistance = 2

// Matcher ranks candidates by edit distance and a similarity score.
type Matcher struct {
	maxDistance int
	minLength   int
}

// NewMatcher creates a matcher accepting candidates up to maxDistance edits away.
func NewMatcher(maxDistance int) *Matcher {
	return &Matcher{
		maxDistance: maxDistance,
		minLength:   2, // single characters are short flags, not typos
	}
}

// Match is a ranked candidate.
type Match struct {
	Value    string
	Distance int
	Score    float64 // 0.0 to 1.0, higher is better
}

// Closest returns the best candidate for input, or "" when none is close enough.
func (m *Matcher) Closest(input string, candidates []string) string {
	matches := m.Rank(input, candidates)
	if len(matches) == 0 {
		return ""
	}
	return matches[0].Value
}

// Rank returns the candidates within maxDistance of input, best first.
// Exact matches (ignoring case) and empty candidates are excluded.
func (m *Matcher) Rank(input string, candidates []string) []Match {
	if len(input) < m.minLength {
		return nil
	}
	input = strings.ToLower(input)

	var matches []Match
	seen := make(map[string]struct{}, len(candidates))
	for _, candidate := range candidates {
		if candidate == "" {
			continue
		}
		if _, dup := seen[candidate]; dup {
			continue
		}
		seen[candidate] = struct{}{}

		lower := strings.ToLower(candidate)
		if lower == input {
			continue
		}
		d := m.distance(input, lower)
		if d > m.maxDistance {
			continue
		}
		matches = append(matches, Match{Value: candidate, Distance: d, Score: m.score(input, lower, d)})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Score == matches[j].Score {
			return matches[i].Distance < matches[j].Distance
		}
		return matches[i].Score > matches[j].Score
	})
	return matches
}

// score weighs edit distance with shared prefix, length and character overlap.
func (m *Matcher) score(input, candidate string, distance int) float64 {
	if distance > m.maxDistance {
		return 0
	}
	longest := max(len(input), len(candidate))
	if longest == 0 {
		return 1
	}

	s := 1 - float64(distance)/float64(longest)
	if p := commonPrefix(input, candidate); p > 0 {
		s += float64(p) / float64(min(len(input), len(candidate))) * 0.3
	}
	s += (1 - float64(absInt(len(input)-len(candidate)))/float64(longest)) * 0.2
	s += float64(sharedChars(input, candidate)) / float64(longest) * 0.1
	if s > 1 {
		s = 1
	}
	return s
}

// distance is the Levenshtein distance of a and b, or maxDistance+1 as soon
// as the result is known to exceed maxDistance.
func (m *Matcher) distance(a, b string) int {
	if a == "" {
		return len(b)
	}
	if b == "" {
		return len(a)
	}
	if absInt(len(a)-len(b)) > m.maxDistance {
		return m.maxDistance + 1
	}
	if len(a) > len(b) {
		a, b = b, a
	}

	prevBuf, curBuf := pool.Ints(len(a)+1), pool.Ints(len(a)+1)
	defer pool.PutInts(prevBuf)
	defer pool.PutInts(curBuf)
	prev, cur := *prevBuf, *curBuf
	for i := range prev {
		prev[i] = i
	}
	for i := 1; i <= len(b); i++ {
		cur[0] = i
		rowMin := i
		for j := 1; j <= len(a); j++ {
			cost := 1
			if a[j-1] == b[i-1] {
				cost = 0
			}
			cur[j] = min(cur[j-1]+1, prev[j]+1, prev[j-1]+cost)
			rowMin = min(rowMin, cur[j])
		}
		if rowMin > m.maxDistance {
			return m.maxDistance + 1
		}
		prev, cur = cur, prev
	}
	return prev[len(a)]
}

func commonPrefix(a, b string) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}

// sharedChars counts characters of b also present in a, with multiplicity.
func sharedChars(a, b string) int {
	counts := make(map[rune]int, len(a))
	for _, r := range a {
		counts[r]++
	}
	shared := 0
	for _, r := range b {
		if counts[r] > 0 {
			shared++
			counts[r]--
		}
	}
	return shared
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Closest returns the best candidate within DefaultMaxDistance.
func Closest(input string, candidates []string) string {
	return NewMatcher(DefaultMaxDistance).Closest(input, candidates)
}

// Suggestions returns up to limit candidates within maxDistance, best first.
func Suggestions(input string, candidates []string, maxDistance, limit int) []string {
	matches := NewMatcher(maxDistance).Rank(input, candidates)
	if limit >= 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.Value)
	}
	return out
}
