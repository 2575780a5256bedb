// Package runtime implements the object model: polymorphic values, the
// ObjectHolder handle, Closures, the evaluation Context, and the
// comparison/arithmetic dispatch that falls through to user dunder methods.
//
// This package imports nothing from pkg/ast: Method bodies are typed as
// Executable, a structural interface that pkg/ast's node types satisfy
// without runtime needing to know about them.
package runtime

import (
	"fmt"
	"io"
)

// Kind identifies the concrete variant an Object holds.
type Kind int

const (
	KindNumber Kind = iota
	KindString
	KindBool
	KindClass
	KindClassInstance
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "Number"
	case KindString:
		return "String"
	case KindBool:
		return "Bool"
	case KindClass:
		return "Class"
	case KindClassInstance:
		return "ClassInstance"
	default:
		return "Unknown"
	}
}

// Context is the evaluation-time environment every Execute call threads
// through. Besides the output sink (mirroring the original interpreter's
// runtime::Context), it exposes Globals: the single program-lifetime
// Closure that class definitions bind into. Classes outlive every call
// activation (per the data model's "classes are program-lifetime once
// defined"), but each method call gets its own fresh, flat Closure with no
// parent chaining — so a class reference used inside a method body (to
// construct an instance, or to resolve a named parent class) is resolved
// against Globals when it is not a local/field name, not against the
// caller's closure.
type Context interface {
	Output() io.Writer
	Globals() Closure
}

// SimpleContext is the standard Context backed directly by a writer and a
// single shared Globals closure. Nested contexts (e.g. the scratch context
// Stringify builds around an in-memory buffer) are constructed by copying
// the same Globals reference forward, since Closure is a map and therefore
// already a shared reference.
type SimpleContext struct {
	W        io.Writer
	globals  Closure
}

// NewSimpleContext builds a context over w, sharing globals as its class
// registry. Passing the same Closure used as the top-level program
// Closure makes top-level execution and Globals() resolve identically.
func NewSimpleContext(w io.Writer, globals Closure) *SimpleContext {
	return &SimpleContext{W: w, globals: globals}
}

func (c *SimpleContext) Output() io.Writer {
	return c.W
}

func (c *SimpleContext) Globals() Closure {
	return c.globals
}

// Object is the capability every runtime value exposes: it can print
// itself to a stream given an evaluation Context (classes may print via
// __str__, which itself needs to execute code).
type Object interface {
	Kind() Kind
	Print(w io.Writer, ctx Context) error
}

// Number is a signed 32-bit integer value. The language has no floating
// point (spec Non-goal), so int32 is the only numeric representation.
type Number struct {
	Value int32
}

func (Number) Kind() Kind { return KindNumber }

func (n Number) Print(w io.Writer, _ Context) error {
	_, err := fmt.Fprintf(w, "%d", n.Value)
	return err
}

// String is a value holding UTF-8 text decoded from a string literal.
type String struct {
	Value string
}

func (String) Kind() Kind { return KindString }

func (s String) Print(w io.Writer, _ Context) error {
	_, err := io.WriteString(w, s.Value)
	return err
}

// Bool is a truth value. Printed as Python-style "True"/"False".
type Bool struct {
	Value bool
}

func (Bool) Kind() Kind { return KindBool }

func (b Bool) Print(w io.Writer, _ Context) error {
	text := "False"
	if b.Value {
		text = "True"
	}
	_, err := io.WriteString(w, text)
	return err
}
