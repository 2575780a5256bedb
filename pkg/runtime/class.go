package runtime

import (
	"fmt"
	"io"
)

const toStringMethod = "__str__"

// Executable is satisfied by any AST statement/expression node. runtime
// never imports pkg/ast; a Method's body is invoked purely through this
// interface, which pkg/ast's node types implement directly.
type Executable interface {
	Execute(closure Closure, ctx Context) (ObjectHolder, error)
}

// Method is a named, owned AST body with an ordered list of formal
// parameter names (self is bound separately by ClassInstanceObject.Call,
// not counted among these).
type Method struct {
	Name   string
	Params []string
	Body   Executable
}

// ClassObject is a class value: a name, an optional parent (single
// inheritance), and its own method table. Classes are program-lifetime
// once defined, so a *ClassObject is shared freely by value holders.
type ClassObject struct {
	Name    string
	Parent  *ClassObject
	Methods map[string]*Method
}

// NewClass builds a class value from its own (non-inherited) methods.
func NewClass(name string, methods []*Method, parent *ClassObject) *ClassObject {
	table := make(map[string]*Method, len(methods))
	for _, m := range methods {
		table[m.Name] = m
	}
	return &ClassObject{Name: name, Parent: parent, Methods: table}
}

func (c *ClassObject) Kind() Kind { return KindClass }

func (c *ClassObject) Print(w io.Writer, _ Context) error {
	_, err := fmt.Fprintf(w, "Class %s", c.Name)
	return err
}

// GetMethod searches this class and, recursively, its parent chain. The
// first match wins; there is no overload resolution.
func (c *ClassObject) GetMethod(name string) *Method {
	if m, ok := c.Methods[name]; ok {
		return m
	}
	if c.Parent != nil {
		return c.Parent.GetMethod(name)
	}
	return nil
}

// ClassInstanceObject is an instance of a ClassObject: a class reference
// plus a Closure of fields created lazily by FieldAssignment or __init__.
type ClassInstanceObject struct {
	Class  *ClassObject
	Fields Closure
}

// NewInstance allocates a zero-field instance of cls.
func NewInstance(cls *ClassObject) *ClassInstanceObject {
	return &ClassInstanceObject{Class: cls, Fields: NewClosure()}
}

func (i *ClassInstanceObject) Kind() Kind { return KindClassInstance }

// HasMethod reports whether the first definition of method found in the
// inheritance chain (see GetMethod) has exactly argCount formal
// parameters. Definitions further up the chain are not consulted.
func (i *ClassInstanceObject) HasMethod(method string, argCount int) bool {
	m := i.Class.GetMethod(method)
	return m != nil && len(m.Params) == argCount
}

// Call builds a fresh activation Closure binding formal parameters
// positionally to args, binds self to a non-owning share of the instance,
// and executes the method body against that Closure.
func (i *ClassInstanceObject) Call(method string, args []ObjectHolder, ctx Context) (ObjectHolder, error) {
	if !i.HasMethod(method, len(args)) {
		return None(), fmt.Errorf("mython: method %s does not exist", method)
	}
	m := i.Class.GetMethod(method)

	activation := NewClosure()
	for idx, param := range m.Params {
		activation.Set(param, args[idx])
	}
	activation.Set("self", Share(i))

	return m.Body.Execute(activation, ctx)
}

// Print calls __str__() if defined with zero parameters and prints its
// result; otherwise it prints an implementation-defined identifier, as the
// spec permits when no __str__ override exists.
func (i *ClassInstanceObject) Print(w io.Writer, ctx Context) error {
	if i.HasMethod(toStringMethod, 0) {
		result, err := i.Call(toStringMethod, nil, ctx)
		if err != nil {
			return err
		}
		return PrintHolder(result, w, ctx)
	}
	_, err := fmt.Fprintf(w, "<%s instance at %p>", i.Class.Name, i)
	return err
}
