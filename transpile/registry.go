package transpile

import (
	"regexp"
	"strings"
)

var (
	classHeaderRe  = regexp.MustCompile(`class\s+(\w+)(?:\s+extends\s+(\w+))?\s*(?:\s+implements\s+[\w\s,]+)?\s*\{`)
	fieldDeclRe    = regexp.MustCompile(`(?:static\s+)?(?:[\w<>\[\]]+\s+)(\w+)\s*(?:=[^;]*)?;`)
	catchBindingRe = regexp.MustCompile(`\bcatch\s*\(\s*$`)
	headerParamRe  = regexp.MustCompile(`([\w$]+)\s*\(([^)]*)\)\s*$`)
)

// Fields holds the field names declared directly in one class body.
type Fields struct {
	Static   []string
	Instance []string
}

func (f *Fields) has(name string) bool {
	for _, n := range f.Static {
		if n == name {
			return true
		}
	}
	for _, n := range f.Instance {
		if n == name {
			return true
		}
	}
	return false
}

// Registry maps class names to their fields. Classes are kept in the order
// their headers were found.
type Registry struct {
	order   []string
	classes map[string]*Fields
}

func newRegistry() *Registry {
	return &Registry{classes: make(map[string]*Fields)}
}

// Classes returns the registered class names in declaration order.
func (r *Registry) Classes() []string {
	return append([]string(nil), r.order...)
}

// Fields returns the fields recorded for class.
func (r *Registry) Fields(class string) (Fields, bool) {
	f, ok := r.classes[class]
	if !ok {
		return Fields{}, false
	}
	return *f, true
}

func (r *Registry) set(class string, f *Fields) {
	if _, ok := r.classes[class]; !ok {
		r.order = append(r.order, class)
	}
	r.classes[class] = f
}

// collectFields scans every class body for field declarations that sit at
// the body's own brace level and records them as static or instance fields.
// A class whose closing brace cannot be found is not registered.
func collectFields(s string) *Registry {
	reg := newRegistry()
	for _, m := range classHeaderRe.FindAllStringSubmatchIndex(s, -1) {
		name := s[m[2]:m[3]]
		start := m[1]
		end, ok := matchBrace(s, start)
		if !ok {
			continue
		}
		body := s[start:end]
		fields := &Fields{}
		for _, fm := range fieldDeclRe.FindAllStringSubmatchIndex(body, -1) {
			if braceDepth(body[:fm[0]]) != 0 {
				continue
			}
			field := body[fm[2]:fm[3]]
			if fields.has(field) {
				continue
			}
			if strings.Contains(body[fm[0]:fm[1]], "static") {
				fields.Static = append(fields.Static, field)
			} else {
				fields.Instance = append(fields.Instance, field)
			}
		}
		reg.set(name, fields)
	}
	return reg
}

// qualifyFields prefixes bare field references inside each registered
// class: static fields with the class name, instance fields with `this.`.
// References at the class body's own level (the declarations) are left
// alone, as are names shadowed by a parameter of the enclosing method or
// constructor. String literals are masked so their text is never touched.
func qualifyFields(s string, reg *Registry) string {
	for _, class := range reg.order {
		fields := reg.classes[class]
		masked := maskLiterals(s)
		loc := classHeaderFor(class).FindStringIndex(masked)
		if loc == nil {
			continue
		}
		start := loc[1]
		end, ok := matchBrace(masked, start)
		if !ok {
			continue
		}
		body := s[start:end]
		for _, field := range fields.Static {
			body = qualifyName(body, field, class+".")
		}
		for _, field := range fields.Instance {
			body = qualifyName(body, field, "this.")
		}
		s = s[:start] + body + s[end:]
	}
	return s
}

// classHeaderFor matches the header of class in the same shapes
// collectFields accepts, with or without an extends clause.
func classHeaderFor(class string) *regexp.Regexp {
	return regexp.MustCompile(`class\s+` + regexp.QuoteMeta(class) + `(?:\s+extends\s+\w+)?\s*(?:\s+implements\s+[\w\s,]+)?\s*\{`)
}

// qualifyName rewrites bare occurrences of name in body to prefix+name.
func qualifyName(body, name, prefix string) string {
	masked := maskLiterals(body)
	nameRe := regexp.MustCompile(`\b` + regexp.QuoteMeta(name) + `\b`)

	var b strings.Builder
	last := 0
	for _, loc := range nameRe.FindAllStringIndex(masked, -1) {
		if !isBareReference(masked, loc[0], loc[1]) {
			continue
		}
		before := masked[:loc[0]]
		if braceDepth(before) <= 0 {
			continue
		}
		if strings.HasSuffix(strings.TrimSpace(before), prefix) {
			continue
		}
		if catchBindingRe.MatchString(before) || shadowedByParam(masked, loc[0], name) {
			continue
		}
		b.WriteString(body[last:loc[0]])
		b.WriteString(prefix)
		b.WriteString(name)
		last = loc[1]
	}
	if last == 0 {
		return body
	}
	b.WriteString(body[last:])
	return b.String()
}

// isBareReference reports whether s[start:end] is neither part of a dotted
// path nor part of a longer identifier.
func isBareReference(s string, start, end int) bool {
	if start > 0 && (isWordByte(s[start-1]) || s[start-1] == '.') {
		return false
	}
	if end < len(s) && (isWordByte(s[end]) || s[end] == '.') {
		return false
	}
	return true
}

// shadowedByParam walks outward from offset through the enclosing unclosed
// braces until it reaches a method or constructor header, and reports
// whether name is one of that header's parameters. Blocks opened by control
// statements are stepped over; a catch clause binding name also shadows it.
func shadowedByParam(s string, offset int, name string) bool {
	end := offset
	for {
		open := innermostOpen(s[:end])
		if open == -1 {
			return false
		}
		end = open
		m := headerParamRe.FindStringSubmatch(s[:open])
		if m == nil {
			continue
		}
		declared := hasParam(m[2], name)
		if controlKeywords[m[1]] {
			if m[1] == "catch" && declared {
				return true
			}
			continue
		}
		return declared
	}
}

func hasParam(list, name string) bool {
	for _, p := range strings.Split(list, ",") {
		if strings.TrimSpace(p) == name {
			return true
		}
	}
	return false
}

func isWordByte(c byte) bool {
	return c == '_' || c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}
