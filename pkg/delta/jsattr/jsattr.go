// Package jsattr is a scripted attribute algebra for pkg/delta: a
// user-supplied JavaScript function decides how two attribute sets
// compose, run through an embedded goja interpreter rather than Go code.
// It demonstrates the pluggable-attribute extension point with a real
// engine instead of a toy fixed-shape type.
package jsattr

import (
	"fmt"
	"reflect"

	"github.com/dop251/goja"
)

// Program wraps a compiled compose function: a JS expression evaluating to
// a function of (a, b) -> merged, where a and b are plain attribute maps.
type Program struct {
	vm      *goja.Runtime
	compose goja.Callable
}

// Compile evaluates src, which must evaluate to a JavaScript function
// taking two attribute objects and returning their merge.
func Compile(src string) (*Program, error) {
	vm := goja.New()
	v, err := vm.RunString(src)
	if err != nil {
		return nil, fmt.Errorf("jsattr: compiling compose script: %w", err)
	}
	fn, ok := goja.AssertFunction(v)
	if !ok {
		return nil, fmt.Errorf("jsattr: compose script must evaluate to a function")
	}
	return &Program{vm: vm, compose: fn}, nil
}

// merge invokes the compiled compose function on a and b.
func (p *Program) merge(a, b map[string]any) (map[string]any, error) {
	result, err := p.compose(goja.Undefined(), p.vm.ToValue(a), p.vm.ToValue(b))
	if err != nil {
		return nil, fmt.Errorf("jsattr: running compose script: %w", err)
	}
	out := make(map[string]any)
	if err := p.vm.ExportTo(result, &out); err != nil {
		return nil, fmt.Errorf("jsattr: exporting compose result: %w", err)
	}
	return out, nil
}

// Value is a delta.Attrs implementation whose Compose calls out to a
// Program's script. It satisfies delta.Attrs[Value].
type Value struct {
	Fields  map[string]any
	program *Program
}

// New wraps attrs as a scripted attribute value composed via program.
func New(program *Program, attrs map[string]any) Value {
	return Value{Fields: attrs, program: program}
}

// Compose runs the program's JS function over the receiver and other's
// fields. It panics if the script errors, since a malformed script is a
// caller configuration bug, not a runtime data condition.
func (v Value) Compose(other Value) Value {
	merged, err := v.program.merge(v.Fields, other.Fields)
	if err != nil {
		panic(err)
	}
	return Value{Fields: merged, program: v.program}
}

// Equal reports whether the two values' fields are deeply equal. The
// program reference is not compared.
func (v Value) Equal(other Value) bool {
	return reflect.DeepEqual(v.Fields, other.Fields)
}
