package ast

import (
	"bytes"
	"fmt"
	"io"

	"mython/pkg/runtime"
)

// Print writes each argument's printed form to the context's output,
// space-separated, followed by a newline. Always returns None.
type Print struct {
	Args []Statement
}

func NewPrint(args []Statement) *Print { return &Print{Args: args} }

// PrintVariable builds a Print of a single bare variable reference.
func PrintVariable(name string) *Print {
	return &Print{Args: []Statement{NewVariableValue(name)}}
}

func (*Print) Type() NodeType { return NodePrint }

func (p *Print) Execute(closure runtime.Closure, ctx runtime.Context) (runtime.ObjectHolder, error) {
	out := ctx.Output()
	for i, arg := range p.Args {
		if i > 0 {
			if _, err := io.WriteString(out, " "); err != nil {
				return runtime.None(), err
			}
		}
		val, err := arg.Execute(closure, ctx)
		if err != nil {
			return runtime.None(), err
		}
		if err := runtime.PrintHolder(val, out, ctx); err != nil {
			return runtime.None(), err
		}
	}
	if _, err := io.WriteString(out, "\n"); err != nil {
		return runtime.None(), err
	}
	return runtime.None(), nil
}

// Stringify evaluates expr and returns an owned String containing what
// Print of a single argument would have written, without the trailing
// newline: it runs a fresh SimpleContext over an in-memory buffer.
type Stringify struct {
	Expr Statement
}

func NewStringify(expr Statement) *Stringify { return &Stringify{Expr: expr} }

func (*Stringify) Type() NodeType { return NodeStringify }

func (s *Stringify) Execute(closure runtime.Closure, ctx runtime.Context) (runtime.ObjectHolder, error) {
	var buf bytes.Buffer
	inner := runtime.NewSimpleContext(&buf, ctx.Globals())
	val, err := s.Expr.Execute(closure, ctx)
	if err != nil {
		return runtime.None(), err
	}
	if err := runtime.PrintHolder(val, inner.Output(), inner); err != nil {
		return runtime.None(), err
	}
	return runtime.Own(runtime.String{Value: buf.String()}), nil
}

// MethodCall evaluates object, requires it to be a ClassInstance, and
// invokes the named method with the evaluated arguments.
type MethodCall struct {
	Object Statement
	Method string
	Args   []Statement
}

func NewMethodCall(object Statement, method string, args []Statement) *MethodCall {
	return &MethodCall{Object: object, Method: method, Args: args}
}

func (*MethodCall) Type() NodeType { return NodeMethodCall }

func (m *MethodCall) Execute(closure runtime.Closure, ctx runtime.Context) (runtime.ObjectHolder, error) {
	objHolder, err := m.Object.Execute(closure, ctx)
	if err != nil {
		return runtime.None(), err
	}
	inst, ok := runtime.As[*runtime.ClassInstanceObject](objHolder)
	if !ok {
		return runtime.None(), fmt.Errorf("mython: call method for non-class type")
	}
	args := make([]runtime.ObjectHolder, len(m.Args))
	for i, a := range m.Args {
		v, err := a.Execute(closure, ctx)
		if err != nil {
			return runtime.None(), err
		}
		args[i] = v
	}
	return inst.Call(m.Method, args, ctx)
}
