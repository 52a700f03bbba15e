package transpile

import (
	"regexp"
	"strings"
	"unicode"
)

// indexPasses bounds how deeply nested subscripts (`a[i][j][k]`) are guarded.
const indexPasses = 3

var (
	subscriptRe    = regexp.MustCompile(`([\w\.\[\]]+)\[([^\]]+)\]`)
	forEachRe      = regexp.MustCompile(`for\s*\(\s*[\w<>\[\]]+\s+(\w+)\s*:\s*(\w+)\s*\)`)
	catchClauseRe  = regexp.MustCompile(`catch\s*\([\w<>\[\]\.]+\s+(\w+)\s*\)`)
	printlnRe      = regexp.MustCompile(`System\.out\.println`)
	printRe        = regexp.MustCompile(`System\.out\.print`)
	numberSuffixRe = regexp.MustCompile(`(\d+\.?\d*)[fFlL]\b`)
	lengthCallRe   = regexp.MustCompile(`\.length\(\)`)
	equalsCallRe   = regexp.MustCompile(`\.equals\(([^)]+)\)`)
)

// guardIndexing routes element accesses through the bounds-checked
// accessor: `a[i]` becomes `__get(a, i)`. Subscripts on a primitive or
// String type name are part of an array type and stay as written.
func guardIndexing(s string) string {
	for i := 0; i < indexPasses; i++ {
		s = guardIndexingOnce(s)
	}
	return s
}

func guardIndexingOnce(s string) string {
	var b strings.Builder
	last := 0
	for _, m := range subscriptRe.FindAllStringSubmatchIndex(s, -1) {
		target, index := s[m[2]:m[3]], s[m[4]:m[5]]
		if isArrayType(target) {
			continue
		}
		b.WriteString(s[last:m[0]])
		b.WriteString("__get(" + target + ", " + index + ")")
		last = m[1]
	}
	b.WriteString(s[last:])
	return b.String()
}

// isArrayType reports whether target is a primitive or String type name,
// possibly followed by further subscripts (`int[3]`).
func isArrayType(target string) bool {
	if arrayTypes[target] {
		return true
	}
	if strings.HasSuffix(target, "]") {
		base := strings.TrimSpace(target[:strings.LastIndex(target, "[")])
		return arrayTypes[base]
	}
	return false
}

func rewriteForEach(s string) string {
	return forEachRe.ReplaceAllString(s, "for (let ${1} of ${2})")
}

func rewriteCatch(s string) string {
	return catchClauseRe.ReplaceAllString(s, "catch (${1})")
}

// convertArrayInitializers turns `{...}` array initializers into `[...]`.
// A brace opens an initializer when the text before it, ignoring
// whitespace, ends in `=`, `return` or `,`; every brace nested inside an
// initializer converts as well.
func convertArrayInitializers(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	depth := 0
	inArray := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '{' && (inArray || startsInitializer(s[:i])):
			b.WriteByte('[')
			depth++
			inArray = true
		case c == '}' && inArray:
			b.WriteByte(']')
			depth--
			if depth == 0 {
				inArray = false
			}
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

func startsInitializer(before string) bool {
	prev := strings.TrimRightFunc(before, unicode.IsSpace)
	return strings.HasSuffix(prev, "=") || strings.HasSuffix(prev, "return") || strings.HasSuffix(prev, ",")
}

// rewritePrints maps the System.out printers onto the capture sink. print
// becomes a parenthesised arrow so the argument list that follows is applied to it.
func rewritePrints(s string) string {
	s = printlnRe.ReplaceAllLiteralString(s, "__log")
	s = printRe.ReplaceAllLiteralString(s, "((msg) => __log(msg, false))")
	return s
}

// normalizeLiterals strips numeric suffixes and maps the String methods that
// have a direct JavaScript spelling. `.equals(x)` becomes ` === x`, which is
// only an approximation of value equality.
func normalizeLiterals(s string) string {
	s = numberSuffixRe.ReplaceAllString(s, "${1}")
	s = lengthCallRe.ReplaceAllLiteralString(s, ".length")
	s = equalsCallRe.ReplaceAllString(s, " === ${1}")
	return s
}
