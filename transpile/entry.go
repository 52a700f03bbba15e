package transpile

import "regexp"

var (
	plainClassRe = regexp.MustCompile(`class\s+\w+\s*\{`)
	mainDeclRe   = regexp.MustCompile(`\bvoid\s+main\s*\(`)
)

// entryInvocation runs main when the program defined one. Programs without
// main have already executed their top-level statements by then.
const entryInvocation = "\nif (typeof main === 'function') { main(); }\n"

// unwrapEntryClass removes the `class X { ... }` wrapper around the first
// class whose own body declares `void main(`, so that its methods and static
// fields become top-level declarations. Only that class is unwrapped; any
// later class declaring main keeps its wrapper. Classes with an extends
// clause are never considered.
func unwrapEntryClass(s string) string {
	for _, loc := range plainClassRe.FindAllStringIndex(s, -1) {
		end, ok := matchBrace(s, loc[1])
		if !ok || !declaresMain(s[loc[1]:end]) {
			continue
		}
		return s[:loc[0]] + s[loc[1]:end] + s[end+1:]
	}
	return s
}

// declaresMain reports whether body has a main declaration at its own
// brace level.
func declaresMain(body string) bool {
	for _, loc := range mainDeclRe.FindAllStringIndex(body, -1) {
		if braceDepth(body[:loc[0]]) == 0 {
			return true
		}
	}
	return false
}

func appendEntryInvocation(s string) string {
	return s + entryInvocation
}
