package sandbox

import (
	"strconv"
	"strings"

	"github.com/dop251/goja"
)

// capture is the print sink behind __log.
type capture struct {
	lines []string
}

// log implements __log(msg, newline = true). With newline false the text is
// appended to the last line instead of starting a new one.
func (c *capture) log(call goja.FunctionCall) goja.Value {
	text := call.Argument(0).String()
	newline := true
	if nl := call.Argument(1); !goja.IsUndefined(nl) {
		newline = nl.ToBoolean()
	}
	c.write(text, newline)
	return goja.Undefined()
}

func (c *capture) write(text string, newline bool) {
	if newline {
		c.lines = append(c.lines, text)
		return
	}
	if len(c.lines) == 0 {
		c.lines = append(c.lines, "")
	}
	c.lines[len(c.lines)-1] += text
}

func (c *capture) String() string {
	return strings.Join(c.lines, "\n")
}

// indexer returns the __get(target, index) accessor. Arrays are bounds
// checked and throw ArrayIndexOutOfBoundsException; any other value is
// indexed like a plain property access.
func indexer(vm *goja.Runtime) func(goja.FunctionCall) goja.Value {
	return func(call goja.FunctionCall) goja.Value {
		target := call.Argument(0)
		index := call.Argument(1)

		if goja.IsUndefined(target) || goja.IsNull(target) {
			panic(vm.NewTypeError("Cannot read properties of %s (reading '%s')", target.String(), index.String()))
		}

		obj := target.ToObject(vm)
		if obj.ClassName() != "Array" {
			return property(obj, index)
		}

		length := obj.Get("length").ToInteger()
		i := index.ToFloat()
		if i < 0 || i >= float64(length) {
			panic(outOfBounds(vm, index, length))
		}
		return property(obj, index)
	}
}

func property(obj *goja.Object, key goja.Value) goja.Value {
	if v := obj.Get(key.String()); v != nil {
		return v
	}
	return goja.Undefined()
}

func outOfBounds(vm *goja.Runtime, index goja.Value, length int64) goja.Value {
	msg := "ArrayIndexOutOfBoundsException: Index " + index.String() + " out of bounds for length " + strconv.FormatInt(length, 10)
	errObj, err := vm.New(vm.Get("Error"), vm.ToValue(msg))
	if err != nil {
		return vm.ToValue(msg)
	}
	return errObj
}
