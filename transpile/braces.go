package transpile

import "strings"

// matchBrace scans forward from start, which must be just past an opening
// '{', and returns the offset of the '}' that closes it. The scan counts
// braces only; it knows nothing about comments or literals.
func matchBrace(s string, start int) (int, bool) {
	depth := 1
	for i := start; i < len(s); i++ {
		switch s[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}
	return -1, false
}

// braceDepth returns the number of '{' minus the number of '}' in s.
func braceDepth(s string) int {
	return strings.Count(s, "{") - strings.Count(s, "}")
}

// innermostOpen returns the index of the last '{' in s that is not closed
// later in s, or -1.
func innermostOpen(s string) int {
	depth := 0
	for i := len(s) - 1; i >= 0; i-- {
		switch s[i] {
		case '}':
			depth++
		case '{':
			if depth == 0 {
				return i
			}
			depth--
		}
	}
	return -1
}
