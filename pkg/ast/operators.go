package ast

import (
	"fmt"

	"mython/pkg/runtime"
)

// binaryOperation holds the two evaluated-in-order operands shared by every
// binary node below.
type binaryOperation struct {
	LHS, RHS Statement
}

func (b *binaryOperation) operands(closure runtime.Closure, ctx runtime.Context) (runtime.ObjectHolder, runtime.ObjectHolder, error) {
	l, err := b.LHS.Execute(closure, ctx)
	if err != nil {
		return runtime.None(), runtime.None(), err
	}
	r, err := b.RHS.Execute(closure, ctx)
	if err != nil {
		return runtime.None(), runtime.None(), err
	}
	return l, r, nil
}

// Add is the + operator: Number+Number, String+String, or a ClassInstance
// dispatching to __add__.
type Add struct{ binaryOperation }

func NewAdd(lhs, rhs Statement) *Add { return &Add{binaryOperation{lhs, rhs}} }

func (*Add) Type() NodeType { return NodeAdd }

func (a *Add) Execute(closure runtime.Closure, ctx runtime.Context) (runtime.ObjectHolder, error) {
	l, r, err := a.operands(closure, ctx)
	if err != nil {
		return runtime.None(), err
	}
	return runtime.Add(l, r, ctx)
}

// Sub is the - operator.
type Sub struct{ binaryOperation }

func NewSub(lhs, rhs Statement) *Sub { return &Sub{binaryOperation{lhs, rhs}} }

func (*Sub) Type() NodeType { return NodeSub }

func (s *Sub) Execute(closure runtime.Closure, ctx runtime.Context) (runtime.ObjectHolder, error) {
	l, r, err := s.operands(closure, ctx)
	if err != nil {
		return runtime.None(), err
	}
	return runtime.Sub(l, r, ctx)
}

// Mul is the * operator.
type Mul struct{ binaryOperation }

func NewMul(lhs, rhs Statement) *Mul { return &Mul{binaryOperation{lhs, rhs}} }

func (*Mul) Type() NodeType { return NodeMul }

func (m *Mul) Execute(closure runtime.Closure, ctx runtime.Context) (runtime.ObjectHolder, error) {
	l, r, err := m.operands(closure, ctx)
	if err != nil {
		return runtime.None(), err
	}
	return runtime.Mul(l, r, ctx)
}

// Div is the / operator.
type Div struct{ binaryOperation }

func NewDiv(lhs, rhs Statement) *Div { return &Div{binaryOperation{lhs, rhs}} }

func (*Div) Type() NodeType { return NodeDiv }

func (d *Div) Execute(closure runtime.Closure, ctx runtime.Context) (runtime.ObjectHolder, error) {
	l, r, err := d.operands(closure, ctx)
	if err != nil {
		return runtime.None(), err
	}
	return runtime.Div(l, r, ctx)
}

// And is the short-circuiting logical and: if lhs is falsy it yields False
// without evaluating rhs; otherwise it yields rhs's truthiness.
type And struct{ LHS, RHS Statement }

func NewAnd(lhs, rhs Statement) *And { return &And{LHS: lhs, RHS: rhs} }

func (*And) Type() NodeType { return NodeAnd }

func (a *And) Execute(closure runtime.Closure, ctx runtime.Context) (runtime.ObjectHolder, error) {
	l, err := a.LHS.Execute(closure, ctx)
	if err != nil {
		return runtime.None(), err
	}
	if !runtime.IsTrue(l) {
		return runtime.Own(runtime.Bool{Value: false}), nil
	}
	r, err := a.RHS.Execute(closure, ctx)
	if err != nil {
		return runtime.None(), err
	}
	return runtime.Own(runtime.Bool{Value: runtime.IsTrue(r)}), nil
}

// Or is the short-circuiting logical or: if lhs is truthy it yields True
// without evaluating rhs; otherwise it yields rhs's truthiness.
type Or struct{ LHS, RHS Statement }

func NewOr(lhs, rhs Statement) *Or { return &Or{LHS: lhs, RHS: rhs} }

func (*Or) Type() NodeType { return NodeOr }

func (o *Or) Execute(closure runtime.Closure, ctx runtime.Context) (runtime.ObjectHolder, error) {
	l, err := o.LHS.Execute(closure, ctx)
	if err != nil {
		return runtime.None(), err
	}
	if runtime.IsTrue(l) {
		return runtime.Own(runtime.Bool{Value: true}), nil
	}
	r, err := o.RHS.Execute(closure, ctx)
	if err != nil {
		return runtime.None(), err
	}
	return runtime.Own(runtime.Bool{Value: runtime.IsTrue(r)}), nil
}

// Not requires a Bool operand and yields its negation; any other operand
// kind is fatal (there is no truthiness coercion for not).
type Not struct {
	Arg Statement
}

func NewNot(arg Statement) *Not { return &Not{Arg: arg} }

func (*Not) Type() NodeType { return NodeNot }

func (n *Not) Execute(closure runtime.Closure, ctx runtime.Context) (runtime.ObjectHolder, error) {
	arg, err := n.Arg.Execute(closure, ctx)
	if err != nil {
		return runtime.None(), err
	}
	b, ok := runtime.As[runtime.Bool](arg)
	if !ok {
		return runtime.None(), fmt.Errorf("mython: not for non-bool value")
	}
	return runtime.Own(runtime.Bool{Value: !b.Value}), nil
}

// CompareOp names the six relational operators a Comparison node dispatches.
type CompareOp int

const (
	OpEq CompareOp = iota
	OpNotEq
	OpLess
	OpGreater
	OpLessOrEq
	OpGreaterOrEq
)

// Comparison evaluates both operands and invokes the matching comparator
// from pkg/runtime, yielding a Bool.
type Comparison struct {
	binaryOperation
	Op CompareOp
}

func NewComparison(op CompareOp, lhs, rhs Statement) *Comparison {
	return &Comparison{binaryOperation: binaryOperation{lhs, rhs}, Op: op}
}

func (*Comparison) Type() NodeType { return NodeComparison }

func (c *Comparison) Execute(closure runtime.Closure, ctx runtime.Context) (runtime.ObjectHolder, error) {
	l, r, err := c.operands(closure, ctx)
	if err != nil {
		return runtime.None(), err
	}
	var result bool
	switch c.Op {
	case OpEq:
		result, err = runtime.Equal(l, r, ctx)
	case OpNotEq:
		result, err = runtime.NotEqual(l, r, ctx)
	case OpLess:
		result, err = runtime.Less(l, r, ctx)
	case OpGreater:
		result, err = runtime.Greater(l, r, ctx)
	case OpLessOrEq:
		result, err = runtime.LessOrEqual(l, r, ctx)
	case OpGreaterOrEq:
		result, err = runtime.GreaterOrEqual(l, r, ctx)
	default:
		return runtime.None(), fmt.Errorf("mython: unknown comparison operator")
	}
	if err != nil {
		return runtime.None(), err
	}
	return runtime.Own(runtime.Bool{Value: result}), nil
}
