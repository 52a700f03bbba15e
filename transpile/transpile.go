// Package transpile converts a best-effort subset of Java source into
// JavaScript that runs in the sandbox package.
//
// The conversion is a fixed sequence of text rewrites, not a parse. Each
// stage maps the whole program text to new text and tolerates input it does
// not recognise, so malformed programs still translate; they fail later,
// when the result runs.
//
// The translated program expects two names to be bound by its runner:
// __log(msg, newline) prints and __get(target, index) reads an element with a
// bounds check.
package transpile

import (
	"fmt"

	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("javaplay.transpile")

// TranslationError reports a stage that failed to rewrite the program.
type TranslationError struct {
	Stage   string
	Message string
}

func (e *TranslationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Stage, e.Message)
}

// Result is the outcome of a translation. Err is nil on success, otherwise
// a *TranslationError.
type Result struct {
	Code string
	Err  error
}

// OK reports whether the translation succeeded.
func (r Result) OK() bool {
	return r.Err == nil
}

// Options tune a translation.
type Options struct {
	// Trace, when set, is called with the program text after every stage.
	Trace func(stage, code string)
}

// unit is the state threaded through the stages of one translation.
type unit struct {
	code     string
	vault    []string
	registry *Registry
}

type stage struct {
	name  string
	apply func(u *unit)
}

var pipeline = []stage{
	{"protect-literals", func(u *unit) { u.code, u.vault = protectLiterals(u.code) }},
	{"strip-declarations", func(u *unit) { u.code = stripDeclarations(u.code) }},
	{"collect-fields", func(u *unit) { u.registry = collectFields(u.code) }},
	{"unwrap-entry-class", func(u *unit) { u.code = unwrapEntryClass(u.code) }},
	{"rewrite-methods", func(u *unit) { u.code = rewriteMethods(u.code) }},
	{"erase-types", func(u *unit) { u.code = eraseTypes(u.code) }},
	{"guard-indexing", func(u *unit) { u.code = guardIndexing(u.code) }},
	{"rewrite-foreach", func(u *unit) { u.code = rewriteForEach(u.code) }},
	{"rewrite-catch", func(u *unit) { u.code = rewriteCatch(u.code) }},
	{"array-initializers", func(u *unit) { u.code = convertArrayInitializers(u.code) }},
	{"rewrite-prints", func(u *unit) { u.code = rewritePrints(u.code) }},
	{"normalize-literals", func(u *unit) { u.code = normalizeLiterals(u.code) }},
	{"restore-literals", func(u *unit) { u.code = restoreLiterals(u.code, u.vault) }},
	{"qualify-fields", func(u *unit) { u.code = qualifyFields(u.code, u.registry) }},
	{"invoke-entry", func(u *unit) { u.code = appendEntryInvocation(u.code) }},
}

// Stages returns the names of the translation stages in the order they run.
func Stages() []string {
	names := make([]string, len(pipeline))
	for i, st := range pipeline {
		names[i] = st.name
	}
	return names
}

// Translate converts Java source to JavaScript. It never panics; a failure
// in any stage is returned as a *TranslationError in the result.
func Translate(source string) Result {
	return TranslateWith(source, Options{})
}

// TranslateWith is Translate with options.
func TranslateWith(source string, opts Options) Result {
	return run(pipeline, source, opts)
}

func run(stages []stage, source string, opts Options) (res Result) {
	u := &unit{code: source}
	current := ""

	defer func() {
		if r := recover(); r != nil {
			log.Errorf("translation failed in %s: %v", current, r)
			res = Result{Err: &TranslationError{Stage: current, Message: fmt.Sprint(r)}}
		}
	}()

	for _, st := range stages {
		current = st.name
		st.apply(u)
		log.Debugf("%s: %d bytes", st.name, len(u.code))
		if opts.Trace != nil {
			opts.Trace(st.name, u.code)
		}
	}
	return Result{Code: u.code}
}

// FieldsOf runs the stages up to field collection and returns the registry
// they build. It is meant for tooling that wants to show what the
// translator believes the classes declare.
func FieldsOf(source string) *Registry {
	code, _ := protectLiterals(source)
	return collectFields(stripDeclarations(code))
}
