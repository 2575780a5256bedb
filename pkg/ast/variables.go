package ast

import (
	"fmt"

	"mython/pkg/runtime"
)

// VariableValue looks up a possibly-dotted identifier chain: d0 resolves
// in the current closure, falling back to ctx.Globals() when it is not
// bound there, and each subsequent di requires the current
// value to be a ClassInstance and looks di up in its fields.
type VariableValue struct {
	DottedIDs []string
}

// NewVariableValue builds a single-identifier VariableValue.
func NewVariableValue(name string) *VariableValue {
	return &VariableValue{DottedIDs: []string{name}}
}

// NewVariableValueDotted builds a dotted VariableValue, e.g. self.x.y.
func NewVariableValueDotted(ids []string) *VariableValue {
	return &VariableValue{DottedIDs: ids}
}

func (*VariableValue) Type() NodeType { return NodeVariableValue }

func (v *VariableValue) Execute(closure runtime.Closure, ctx runtime.Context) (runtime.ObjectHolder, error) {
	h, ok := closure.Lookup(v.DottedIDs[0])
	if !ok {
		h, ok = ctx.Globals().Lookup(v.DottedIDs[0])
	}
	if !ok {
		return runtime.None(), fmt.Errorf("mython: unknown field %s", v.DottedIDs[0])
	}
	for _, name := range v.DottedIDs[1:] {
		inst, ok := runtime.As[*runtime.ClassInstanceObject](h)
		if !ok {
			return runtime.None(), fmt.Errorf("mython: unknown field %s", name)
		}
		h, ok = inst.Fields.Lookup(name)
		if !ok {
			return runtime.None(), fmt.Errorf("mython: unknown field %s", name)
		}
	}
	return h, nil
}

// Assignment evaluates rv and binds var in the current closure.
type Assignment struct {
	Var string
	RV  Statement
}

func NewAssignment(v string, rv Statement) *Assignment {
	return &Assignment{Var: v, RV: rv}
}

func (*Assignment) Type() NodeType { return NodeAssignment }

func (a *Assignment) Execute(closure runtime.Closure, ctx runtime.Context) (runtime.ObjectHolder, error) {
	ret, err := a.RV.Execute(closure, ctx)
	if err != nil {
		return runtime.None(), err
	}
	closure.Set(a.Var, ret)
	return ret, nil
}

// FieldAssignment evaluates object (a VariableValue), requires the result
// be a ClassInstance, and binds field in its Fields closure.
type FieldAssignment struct {
	Object *VariableValue
	Field  string
	RV     Statement
}

func NewFieldAssignment(object *VariableValue, field string, rv Statement) *FieldAssignment {
	return &FieldAssignment{Object: object, Field: field, RV: rv}
}

func (*FieldAssignment) Type() NodeType { return NodeFieldAssignment }

func (f *FieldAssignment) Execute(closure runtime.Closure, ctx runtime.Context) (runtime.ObjectHolder, error) {
	objHolder, err := f.Object.Execute(closure, ctx)
	if err != nil {
		return runtime.None(), err
	}
	inst, ok := runtime.As[*runtime.ClassInstanceObject](objHolder)
	if !ok {
		return runtime.None(), fmt.Errorf("mython: field assignment target is not a class instance")
	}
	val, err := f.RV.Execute(closure, ctx)
	if err != nil {
		return runtime.None(), err
	}
	inst.Fields.Set(f.Field, val)
	return val, nil
}
