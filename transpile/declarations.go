package transpile

import (
	"regexp"
	"strings"
)

var (
	packageRe    = regexp.MustCompile(`package\s+[\w.]+;`)
	importRe     = regexp.MustCompile(`import\s+(?:static\s+)?[\w.]+(?:\.\*)?;`)
	interfaceRe  = regexp.MustCompile(`interface\s+\w+\s*\{[\s\S]*?\}`)
	implementsRe = regexp.MustCompile(`\bimplements\s+[\w\s,]+`)
	modifierRe   = regexp.MustCompile(`\b(` + strings.Join(modifiers, "|") + `)\b`)
	annotationRe = regexp.MustCompile(`@\w+`)
)

// stripDeclarations removes everything that has no runtime meaning in the
// translated program: package and import lines, interface blocks,
// implements clauses, modifiers and annotations.
//
// Interface bodies are matched up to the first '}', so an interface that
// declares default methods leaves its tail behind.
func stripDeclarations(s string) string {
	s = packageRe.ReplaceAllString(s, "")
	s = importRe.ReplaceAllString(s, "")
	s = interfaceRe.ReplaceAllString(s, "")
	s = implementsRe.ReplaceAllString(s, "")
	s = modifierRe.ReplaceAllString(s, "")
	s = annotationRe.ReplaceAllString(s, "")
	return s
}
