package parser

import (
	"mython/pkg/ast"
	"mython/pkg/token"
)

func (p *Parser) parseClassDef() (ast.Statement, error) {
	if err := p.advance(); err != nil { // consume 'class'
		return nil, err
	}
	name, err := p.expectID()
	if err != nil {
		return nil, err
	}
	if err := p.advance(); err != nil {
		return nil, err
	}

	parent := ""
	if p.isChar("(") {
		if err := p.advance(); err != nil {
			return nil, err
		}
		parent, err = p.expectID()
		if err != nil {
			return nil, err
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		if err := p.expectChar(")"); err != nil {
			return nil, err
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
	}

	if err := p.expectChar(":"); err != nil {
		return nil, err
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	if err := p.expectKind(token.Newline); err != nil {
		return nil, err
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	if err := p.expectKind(token.Indent); err != nil {
		return nil, err
	}
	if err := p.advance(); err != nil {
		return nil, err
	}

	var methods []ast.MethodDef
	for p.cur.Kind == token.Def {
		m, err := p.parseMethodDef()
		if err != nil {
			return nil, err
		}
		methods = append(methods, m)
	}

	if err := p.expectKind(token.Dedent); err != nil {
		return nil, err
	}
	if err := p.advance(); err != nil {
		return nil, err
	}

	return ast.NewClassDefinition(name, parent, methods), nil
}

func (p *Parser) parseMethodDef() (ast.MethodDef, error) {
	if err := p.advance(); err != nil { // consume 'def'
		return ast.MethodDef{}, err
	}
	name, err := p.expectID()
	if err != nil {
		return ast.MethodDef{}, err
	}
	if err := p.advance(); err != nil {
		return ast.MethodDef{}, err
	}
	if err := p.expectChar("("); err != nil {
		return ast.MethodDef{}, err
	}
	if err := p.advance(); err != nil {
		return ast.MethodDef{}, err
	}

	var params []string
	for p.cur.Kind == token.Id {
		params = append(params, p.cur.Text)
		if err := p.advance(); err != nil {
			return ast.MethodDef{}, err
		}
		if p.isChar(",") {
			if err := p.advance(); err != nil {
				return ast.MethodDef{}, err
			}
			continue
		}
		break
	}

	if err := p.expectChar(")"); err != nil {
		return ast.MethodDef{}, err
	}
	if err := p.advance(); err != nil {
		return ast.MethodDef{}, err
	}

	body, err := p.parseIndentedBlock()
	if err != nil {
		return ast.MethodDef{}, err
	}

	if len(params) > 0 && params[0] == "self" {
		params = params[1:]
	}

	return ast.MethodDef{Name: name, Params: params, Body: ast.NewMethodBody(body)}, nil
}
