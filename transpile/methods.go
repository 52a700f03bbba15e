package transpile

import (
	"regexp"
	"strings"
)

var methodHeaderRe = regexp.MustCompile(`(?:static\s+)?([\w<>\[\]]+\s+)?(\w+)\s*\(([^)]*)\)\s*\{`)

// rewriteMethods turns Java method and constructor headers into JavaScript
// ones. A header is inside a class when more braces have been opened than
// closed before it; there it becomes a class method (or a constructor when
// it has no return type). Anywhere else it becomes a function declaration.
func rewriteMethods(s string) string {
	var b strings.Builder
	last := 0
	for _, m := range methodHeaderRe.FindAllStringSubmatchIndex(s, -1) {
		name := s[m[4]:m[5]]
		if controlKeywords[name] {
			continue
		}
		header := s[m[0]:m[1]]
		params := paramNames(s[m[6]:m[7]])
		hasReturnType := m[2] != -1

		var rewritten string
		if braceDepth(s[:m[0]]) > 0 {
			switch {
			case !hasReturnType:
				rewritten = "constructor(" + params + ") {"
			case strings.Contains(header, "static"):
				rewritten = "static " + name + "(" + params + ") {"
			default:
				rewritten = name + "(" + params + ") {"
			}
		} else {
			rewritten = "function " + name + "(" + params + ") {"
		}

		b.WriteString(s[last:m[0]])
		b.WriteString(rewritten)
		last = m[1]
	}
	b.WriteString(s[last:])
	return b.String()
}

// paramNames reduces a Java parameter list to its names: `int a, String[] b`
// becomes `a, b`.
func paramNames(list string) string {
	var names []string
	for _, arg := range strings.Split(list, ",") {
		parts := strings.Fields(arg)
		if len(parts) == 0 {
			continue
		}
		names = append(names, parts[len(parts)-1])
	}
	return strings.Join(names, ", ")
}
