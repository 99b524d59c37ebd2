package rules

import "strings"

// CleanPath normalizes a repository-relative path: empty and "." segments
// are dropped, ".." removes the previous segment, and the result never
// starts with "/". A path with no segments left cleans to "".
func CleanPath(p string) string {
	segments := make([]string, 0, strings.Count(p, "/")+1)
	for _, s := range strings.Split(p, "/") {
		switch s {
		case "", ".":
		case "..":
			if len(segments) > 0 {
				segments = segments[:len(segments)-1]
			}
		default:
			segments = append(segments, s)
		}
	}
	return strings.Join(segments, "/")
}

// Contains reports whether sub is parent itself or lies below it. Both
// paths are compared as given; clean them first.
func Contains(parent, sub string) bool {
	if !strings.HasPrefix(sub, parent) {
		return false
	}
	return len(sub) == len(parent) || sub[len(parent)] == '/'
}
