package ast

import (
	"fmt"

	"mython/pkg/runtime"
)

const initMethod = "__init__"

// MethodDef is the declarative form of a method inside a class body: a
// name, its formal parameters (self already stripped by the parser), and
// its body statement.
type MethodDef struct {
	Name   string
	Params []string
	Body   Statement
}

// ClassDefinition declares a class by name, with an optional parent class
// referenced by name. Executing it resolves the parent (if any), builds
// the runtime.ClassObject, and binds it under its own name in the
// program's Globals — classes are program-lifetime once defined, so they
// must be visible from any method activation, not just the closure active
// at definition time. This is where a class value is materialized, since
// pkg/ast cannot hold a pre-built *runtime.ClassObject without creating an
// import cycle back from runtime.
type ClassDefinition struct {
	Name       string
	ParentName string
	Methods    []MethodDef
}

func NewClassDefinition(name, parentName string, methods []MethodDef) *ClassDefinition {
	return &ClassDefinition{Name: name, ParentName: parentName, Methods: methods}
}

func (*ClassDefinition) Type() NodeType { return NodeClassDefinition }

func (c *ClassDefinition) Execute(closure runtime.Closure, ctx runtime.Context) (runtime.ObjectHolder, error) {
	var parent *runtime.ClassObject
	if c.ParentName != "" {
		h, ok := closure.Lookup(c.ParentName)
		if !ok {
			h, ok = ctx.Globals().Lookup(c.ParentName)
		}
		if !ok {
			return runtime.None(), fmt.Errorf("mython: unknown parent class %s", c.ParentName)
		}
		p, ok := runtime.As[*runtime.ClassObject](h)
		if !ok {
			return runtime.None(), fmt.Errorf("mython: %s is not a class", c.ParentName)
		}
		parent = p
	}

	methods := make([]*runtime.Method, len(c.Methods))
	for i, md := range c.Methods {
		methods[i] = &runtime.Method{Name: md.Name, Params: md.Params, Body: md.Body}
	}

	cls := runtime.NewClass(c.Name, methods, parent)
	ctx.Globals().Set(c.Name, runtime.Own(cls))
	return runtime.None(), nil
}

// NewInstance allocates a ClassInstance of the named class. If __init__
// exists its formal-parameter count must equal len(Args); args are
// evaluated in order and passed to it. If __init__ does not exist, Args
// must be empty.
type NewInstanceExpr struct {
	ClassName string
	Args      []Statement
}

func NewNewInstance(className string, args []Statement) *NewInstanceExpr {
	return &NewInstanceExpr{ClassName: className, Args: args}
}

func (*NewInstanceExpr) Type() NodeType { return NodeNewInstance }

func (n *NewInstanceExpr) Execute(closure runtime.Closure, ctx runtime.Context) (runtime.ObjectHolder, error) {
	h, ok := closure.Lookup(n.ClassName)
	if !ok {
		h, ok = ctx.Globals().Lookup(n.ClassName)
	}
	if !ok {
		return runtime.None(), fmt.Errorf("mython: unknown class %s", n.ClassName)
	}
	cls, ok := runtime.As[*runtime.ClassObject](h)
	if !ok {
		return runtime.None(), fmt.Errorf("mython: %s is not a class", n.ClassName)
	}

	init := cls.GetMethod(initMethod)
	wantArgs := 0
	if init != nil {
		wantArgs = len(init.Params)
	}
	if wantArgs != len(n.Args) {
		return runtime.None(), fmt.Errorf("mython: can't find constructor for %s", cls.Name)
	}

	instance := runtime.NewInstance(cls)
	instHolder := runtime.Own(instance)

	if init != nil {
		args := make([]runtime.ObjectHolder, len(n.Args))
		for i, a := range n.Args {
			v, err := a.Execute(closure, ctx)
			if err != nil {
				return runtime.None(), err
			}
			args[i] = v
		}
		if _, err := instance.Call(initMethod, args, ctx); err != nil {
			return runtime.None(), err
		}
	}

	return instHolder, nil
}
