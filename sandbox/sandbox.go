// Package sandbox runs translated programs in a fresh JavaScript runtime and
// captures what they print.
//
// A program sees exactly two names supplied by the runner: __log, the
// capture sink, and __get, the bounds-checked element accessor. Each run
// gets its own goja.Runtime, so nothing survives from one run to the next.
package sandbox

import (
	"context"
	"errors"
	"fmt"

	"github.com/dop251/goja"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("javaplay.sandbox")

const defaultMaxCallStackSize = 1024

// ExecutionError describes an exception raised while a program ran.
type ExecutionError struct {
	Message string
}

func (e *ExecutionError) Error() string {
	return "Error: " + e.Message
}

// Result holds the captured output of a run. Err is nil when the program
// completed, otherwise an *ExecutionError; Output then holds whatever was
// printed before the failure.
type Result struct {
	Output string
	Err    error
}

type Option func(*runner)

// WithMaxCallStackSize bounds the depth of nested JavaScript calls.
func WithMaxCallStackSize(n int) Option {
	return func(r *runner) {
		r.maxCallStackSize = n
	}
}

type runner struct {
	maxCallStackSize int
}

// Run executes code with no time limit. A program that never terminates
// never returns.
func Run(code string, opts ...Option) Result {
	return RunContext(context.Background(), code, opts...)
}

// RunContext executes code until it finishes or ctx is done, whichever
// comes first.
func RunContext(ctx context.Context, code string, opts ...Option) (res Result) {
	r := &runner{maxCallStackSize: defaultMaxCallStackSize}
	for _, opt := range opts {
		opt(r)
	}

	if err := ctx.Err(); err != nil {
		return Result{Err: &ExecutionError{Message: err.Error()}}
	}

	vm := goja.New()
	vm.SetMaxCallStackSize(r.maxCallStackSize)

	out := &capture{}
	defer func() {
		if p := recover(); p != nil {
			log.Errorf("runtime panic: %v", p)
			res = Result{Output: out.String(), Err: &ExecutionError{Message: fmt.Sprint(p)}}
		}
	}()

	stop := context.AfterFunc(ctx, func() {
		vm.Interrupt(ctx.Err())
	})
	defer stop()

	err := execute(vm, code, out)
	if err != nil {
		log.Debugf("run failed: %v", err)
		return Result{Output: out.String(), Err: &ExecutionError{Message: describe(err)}}
	}
	return Result{Output: out.String()}
}

// Compile parses code as the body of a program function without running it.
// The returned error, if any, is an *ExecutionError carrying the syntax
// error.
func Compile(code string) error {
	src := "(function (__log, __get) {\n" + code + "\n})"
	if _, err := goja.Compile("program.js", src, false); err != nil {
		return &ExecutionError{Message: err.Error()}
	}
	return nil
}

// execute builds a function from code whose only parameters are __log and
// __get, then calls it once.
func execute(vm *goja.Runtime, code string, out *capture) error {
	fnObj, err := vm.New(vm.Get("Function"), vm.ToValue("__log"), vm.ToValue("__get"), vm.ToValue(code))
	if err != nil {
		return err
	}
	fn, ok := goja.AssertFunction(fnObj)
	if !ok {
		return errors.New("program did not compile to a function")
	}
	_, err = fn(goja.Undefined(), vm.ToValue(out.log), vm.ToValue(indexer(vm)))
	return err
}

// describe extracts the message a JavaScript host would show for err.
func describe(err error) string {
	var ex *goja.Exception
	if errors.As(err, &ex) {
		if obj, ok := ex.Value().(*goja.Object); ok {
			if msg := obj.Get("message"); msg != nil && !goja.IsUndefined(msg) {
				return msg.String()
			}
		}
		return ex.Value().String()
	}
	var interrupted *goja.InterruptedError
	if errors.As(err, &interrupted) {
		if cause, ok := interrupted.Value().(error); ok {
			return "interrupted: " + cause.Error()
		}
		return "interrupted"
	}
	return err.Error()
}
