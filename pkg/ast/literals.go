package ast

import "mython/pkg/runtime"

// NumericConst evaluates to a fixed Number.
type NumericConst struct {
	Value int32
}

func NewNumericConst(v int32) *NumericConst { return &NumericConst{Value: v} }

func (*NumericConst) Type() NodeType { return NodeNumericConst }

func (n *NumericConst) Execute(_ runtime.Closure, _ runtime.Context) (runtime.ObjectHolder, error) {
	return runtime.Own(runtime.Number{Value: n.Value}), nil
}

// StringConst evaluates to a fixed String.
type StringConst struct {
	Value string
}

func NewStringConst(v string) *StringConst { return &StringConst{Value: v} }

func (*StringConst) Type() NodeType { return NodeStringConst }

func (s *StringConst) Execute(_ runtime.Closure, _ runtime.Context) (runtime.ObjectHolder, error) {
	return runtime.Own(runtime.String{Value: s.Value}), nil
}

// BoolConst evaluates to a fixed Bool (True/False literal).
type BoolConst struct {
	Value bool
}

func NewBoolConst(v bool) *BoolConst { return &BoolConst{Value: v} }

func (*BoolConst) Type() NodeType { return NodeBoolConst }

func (b *BoolConst) Execute(_ runtime.Closure, _ runtime.Context) (runtime.ObjectHolder, error) {
	return runtime.Own(runtime.Bool{Value: b.Value}), nil
}

// NoneLiteral evaluates to the empty holder (the None literal).
type NoneLiteral struct{}

func NewNoneLiteral() *NoneLiteral { return &NoneLiteral{} }

func (*NoneLiteral) Type() NodeType { return NodeNoneLiteral }

func (*NoneLiteral) Execute(_ runtime.Closure, _ runtime.Context) (runtime.ObjectHolder, error) {
	return runtime.None(), nil
}
