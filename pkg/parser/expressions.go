package parser

import (
	"fmt"

	"mython/pkg/ast"
	"mython/pkg/token"
)

// parseExpr is the entry point for the full precedence chain:
// or > and > not > comparison > additive > multiplicative > unary > postfix > primary.
func (p *Parser) parseExpr() (ast.Statement, error) {
	return p.parseOr()
}

func (p *Parser) parseOr() (ast.Statement, error) {
	lhs, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.cur.Kind == token.Or {
		if err := p.advance(); err != nil {
			return nil, err
		}
		rhs, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		lhs = ast.NewOr(lhs, rhs)
	}
	return lhs, nil
}

func (p *Parser) parseAnd() (ast.Statement, error) {
	lhs, err := p.parseNot()
	if err != nil {
		return nil, err
	}
	for p.cur.Kind == token.And {
		if err := p.advance(); err != nil {
			return nil, err
		}
		rhs, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		lhs = ast.NewAnd(lhs, rhs)
	}
	return lhs, nil
}

func (p *Parser) parseNot() (ast.Statement, error) {
	if p.cur.Kind == token.Not {
		if err := p.advance(); err != nil {
			return nil, err
		}
		arg, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		return ast.NewNot(arg), nil
	}
	return p.parseComparison()
}

func (p *Parser) parseComparison() (ast.Statement, error) {
	lhs, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}

	var op ast.CompareOp
	switch {
	case p.cur.Kind == token.Eq:
		op = ast.OpEq
	case p.cur.Kind == token.NotEq:
		op = ast.OpNotEq
	case p.cur.Kind == token.LessOrEq:
		op = ast.OpLessOrEq
	case p.cur.Kind == token.GreaterOrEq:
		op = ast.OpGreaterOrEq
	case p.isChar("<"):
		op = ast.OpLess
	case p.isChar(">"):
		op = ast.OpGreater
	default:
		return lhs, nil
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	rhs, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	return ast.NewComparison(op, lhs, rhs), nil
}

func (p *Parser) parseAdditive() (ast.Statement, error) {
	lhs, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for p.isChar("+") || p.isChar("-") {
		op := p.cur.Text
		if err := p.advance(); err != nil {
			return nil, err
		}
		rhs, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		if op == "+" {
			lhs = ast.NewAdd(lhs, rhs)
		} else {
			lhs = ast.NewSub(lhs, rhs)
		}
	}
	return lhs, nil
}

func (p *Parser) parseMultiplicative() (ast.Statement, error) {
	lhs, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.isChar("*") || p.isChar("/") {
		op := p.cur.Text
		if err := p.advance(); err != nil {
			return nil, err
		}
		rhs, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		if op == "*" {
			lhs = ast.NewMul(lhs, rhs)
		} else {
			lhs = ast.NewDiv(lhs, rhs)
		}
	}
	return lhs, nil
}

// parseUnary handles a leading "-", binding tighter than * and / so
// -3 * 4 parses as (-3) * 4. There is no literal negative-number token;
// unary minus is folded into 0 - operand, matching the binary Sub node.
func (p *Parser) parseUnary() (ast.Statement, error) {
	if p.isChar("-") {
		if err := p.advance(); err != nil {
			return nil, err
		}
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return ast.NewSub(ast.NewNumericConst(0), operand), nil
	}
	return p.parsePostfix()
}

// parsePostfix handles dotted field access and method calls. Field access
// is only representable when the running expression is a *ast.VariableValue
// chain, matching the evaluator's closure-rooted VariableValue contract.
func (p *Parser) parsePostfix() (ast.Statement, error) {
	obj, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for p.isChar(".") {
		if err := p.advance(); err != nil {
			return nil, err
		}
		field, err := p.expectID()
		if err != nil {
			return nil, err
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.isChar("(") {
			if err := p.advance(); err != nil {
				return nil, err
			}
			args, err := p.parseArgs()
			if err != nil {
				return nil, err
			}
			if err := p.expectChar(")"); err != nil {
				return nil, err
			}
			if err := p.advance(); err != nil {
				return nil, err
			}
			obj = ast.NewMethodCall(obj, field, args)
			continue
		}
		vv, ok := obj.(*ast.VariableValue)
		if !ok {
			return nil, fmt.Errorf("mython: parse error: field access on a non-variable expression")
		}
		obj = ast.NewVariableValueDotted(append(vv.DottedIDs, field))
	}
	return obj, nil
}

func (p *Parser) parseArgs() ([]ast.Statement, error) {
	if p.isChar(")") {
		return nil, nil
	}
	first, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	args := []ast.Statement{first}
	for p.isChar(",") {
		if err := p.advance(); err != nil {
			return nil, err
		}
		next, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, next)
	}
	return args, nil
}

func (p *Parser) parsePrimary() (ast.Statement, error) {
	switch p.cur.Kind {
	case token.Number:
		v := p.cur.Num
		if err := p.advance(); err != nil {
			return nil, err
		}
		return ast.NewNumericConst(v), nil

	case token.String:
		v := p.cur.Text
		if err := p.advance(); err != nil {
			return nil, err
		}
		return ast.NewStringConst(v), nil

	case token.True:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return ast.NewBoolConst(true), nil

	case token.False:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return ast.NewBoolConst(false), nil

	case token.None:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return ast.NewNoneLiteral(), nil

	case token.Char:
		if p.cur.Text == "(" {
			if err := p.advance(); err != nil {
				return nil, err
			}
			expr, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			if err := p.expectChar(")"); err != nil {
				return nil, err
			}
			if err := p.advance(); err != nil {
				return nil, err
			}
			return expr, nil
		}
		return nil, fmt.Errorf("mython: parse error: unexpected %v", p.cur)

	case token.Id:
		name := p.cur.Text
		if err := p.advance(); err != nil {
			return nil, err
		}
		if name == "str" && p.isChar("(") {
			if err := p.advance(); err != nil {
				return nil, err
			}
			inner, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			if err := p.expectChar(")"); err != nil {
				return nil, err
			}
			if err := p.advance(); err != nil {
				return nil, err
			}
			return ast.NewStringify(inner), nil
		}
		if p.isChar("(") {
			if err := p.advance(); err != nil {
				return nil, err
			}
			args, err := p.parseArgs()
			if err != nil {
				return nil, err
			}
			if err := p.expectChar(")"); err != nil {
				return nil, err
			}
			if err := p.advance(); err != nil {
				return nil, err
			}
			return ast.NewNewInstance(name, args), nil
		}
		return ast.NewVariableValue(name), nil

	default:
		return nil, fmt.Errorf("mython: parse error: unexpected token %v", p.cur)
	}
}
