package ast

import "mython/pkg/runtime"

// IfElse executes ifBody when condition is truthy, elseBody otherwise (if
// present). Its result is whatever branch returned, which Compound uses to
// detect an implicit return escaping the conditional.
type IfElse struct {
	Condition       Statement
	IfBody, ElseBody Statement
}

// NewIfElse builds an IfElse; elseBody may be nil for a bodiless else.
func NewIfElse(condition, ifBody, elseBody Statement) *IfElse {
	return &IfElse{Condition: condition, IfBody: ifBody, ElseBody: elseBody}
}

func (*IfElse) Type() NodeType { return NodeIfElse }

func (i *IfElse) Execute(closure runtime.Closure, ctx runtime.Context) (runtime.ObjectHolder, error) {
	cond, err := i.Condition.Execute(closure, ctx)
	if err != nil {
		return runtime.None(), err
	}
	if runtime.IsTrue(cond) {
		return i.IfBody.Execute(closure, ctx)
	}
	if i.ElseBody != nil {
		return i.ElseBody.Execute(closure, ctx)
	}
	return runtime.None(), nil
}

// Return evaluates its expression and surfaces the value as its own
// result; Compound is what actually stops executing subsequent statements.
type Return struct {
	Expr Statement
}

func NewReturn(expr Statement) *Return { return &Return{Expr: expr} }

func (*Return) Type() NodeType { return NodeReturn }

func (r *Return) Execute(closure runtime.Closure, ctx runtime.Context) (runtime.ObjectHolder, error) {
	return r.Expr.Execute(closure, ctx)
}

// Compound executes statements in order. A Return statement's result is
// returned immediately. An IfElse statement's result is propagated
// immediately if non-empty — this is the sole mechanism by which a Return
// nested inside a branch escapes the enclosing method body. Any other
// statement's result is discarded. Falling off the end yields None.
type Compound struct {
	Stmts []Statement
}

func NewCompound(stmts []Statement) *Compound { return &Compound{Stmts: stmts} }

func (*Compound) Type() NodeType { return NodeCompound }

func (c *Compound) Execute(closure runtime.Closure, ctx runtime.Context) (runtime.ObjectHolder, error) {
	for _, stmt := range c.Stmts {
		if _, isReturn := stmt.(*Return); isReturn {
			return stmt.Execute(closure, ctx)
		}
		if _, isIfElse := stmt.(*IfElse); isIfElse {
			result, err := stmt.Execute(closure, ctx)
			if err != nil {
				return runtime.None(), err
			}
			if !result.IsEmpty() {
				return result, nil
			}
			continue
		}
		if _, err := stmt.Execute(closure, ctx); err != nil {
			return runtime.None(), err
		}
	}
	return runtime.None(), nil
}

// MethodBody is the outer shell of every method body so that a top-level
// Return is handled uniformly by the surrounding Call machinery.
type MethodBody struct {
	Body Statement
}

func NewMethodBody(body Statement) *MethodBody { return &MethodBody{Body: body} }

func (*MethodBody) Type() NodeType { return NodeMethodBody }

func (m *MethodBody) Execute(closure runtime.Closure, ctx runtime.Context) (runtime.ObjectHolder, error) {
	return m.Body.Execute(closure, ctx)
}
