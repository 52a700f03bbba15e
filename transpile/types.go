package transpile

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	declTypeRe = regexp.MustCompile(`\b(?:` + strings.Join(declarationTypes, "|") + `|[A-Z][a-z]\w*)(?:\[\])*\s+`)

	classBodyOpenRe    = regexp.MustCompile(`\bclass\s+\w+\s*$`)
	subclassBodyOpenRe = regexp.MustCompile(`\bclass\s+\w+\s+extends\s+\w+\s*$`)
	staticTailRe       = regexp.MustCompile(`\bstatic\s+$`)
)

// eraseTypes replaces the type in front of a declared name with `let`.
// Directly inside a class body the type is dropped instead, leaving a class
// field declaration. A `static` in front of a top-level `let` is dropped too;
// it is left over from the unwrapped entry class.
func eraseTypes(s string) string {
	var b strings.Builder
	last := 0
	for _, loc := range declTypeRe.FindAllStringIndex(s, -1) {
		if followsKeyword(s, loc[0], typeLeaders) {
			continue
		}
		if notTypes[strings.TrimSpace(s[loc[0]:loc[1]])] {
			continue
		}

		start := loc[0]
		var replacement string
		if opensClassBody(s[:loc[0]]) {
			replacement = ""
		} else {
			replacement = "let "
			if tail := staticTailRe.FindStringIndex(s[last:loc[0]]); tail != nil {
				start = last + tail[0]
			}
		}

		b.WriteString(s[last:start])
		b.WriteString(replacement)
		last = loc[1]
	}
	b.WriteString(s[last:])
	return b.String()
}

// opensClassBody reports whether the innermost unclosed '{' in before is the
// brace of a class header, meaning the declaration that follows is a field.
func opensClassBody(before string) bool {
	open := innermostOpen(before)
	if open == -1 {
		return false
	}
	head := strings.TrimSpace(before[:open])
	return classBodyOpenRe.MatchString(head) || subclassBodyOpenRe.MatchString(head)
}

// followsKeyword reports whether s[:pos] ends with one of keywords followed
// by at least one whitespace character.
func followsKeyword(s string, pos int, keywords []string) bool {
	j := strings.TrimRightFunc(s[:pos], unicode.IsSpace)
	if len(j) == pos {
		return false
	}
	for _, kw := range keywords {
		if strings.HasSuffix(j, kw) {
			return true
		}
	}
	return false
}
