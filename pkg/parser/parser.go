// Package parser is a hand-written recursive-descent parser turning a
// pkg/lexer token stream into pkg/ast nodes. The original interpreter
// treats the parser as an external collaborator; this package exists so
// the rest of the repository is runnable end to end from source text.
package parser

import (
	"fmt"

	"mython/pkg/ast"
	"mython/pkg/lexer"
	"mython/pkg/token"
)

// Parser consumes a *lexer.Lexer and produces an *ast.Compound representing
// the whole module.
type Parser struct {
	lx  *lexer.Lexer
	cur token.Token
}

// New wraps a primed lexer for parsing.
func New(lx *lexer.Lexer) *Parser {
	return &Parser{lx: lx, cur: lx.Current()}
}

func (p *Parser) advance() error {
	tok, err := p.lx.Next()
	if err != nil {
		return err
	}
	p.cur = tok
	return nil
}

func (p *Parser) isChar(c string) bool {
	return p.cur.Kind == token.Char && p.cur.Text == c
}

func (p *Parser) expectKind(k token.Kind) error {
	if p.cur.Kind != k {
		return fmt.Errorf("mython: parse error: expected %v, got %v", k, p.cur)
	}
	return nil
}

func (p *Parser) expectChar(c string) error {
	if !p.isChar(c) {
		return fmt.Errorf("mython: parse error: expected %q, got %v", c, p.cur)
	}
	return nil
}

func (p *Parser) expectID() (string, error) {
	if p.cur.Kind != token.Id {
		return "", fmt.Errorf("mython: parse error: expected identifier, got %v", p.cur)
	}
	return p.cur.Text, nil
}

// ParseModule parses an entire program into a single Compound of top-level
// statements and class definitions.
func (p *Parser) ParseModule() (*ast.Compound, error) {
	var stmts []ast.Statement
	for p.cur.Kind != token.Eof {
		var stmt ast.Statement
		var err error
		if p.cur.Kind == token.Class {
			stmt, err = p.parseClassDef()
		} else {
			stmt, err = p.parseStmt()
		}
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return ast.NewCompound(stmts), nil
}

// parseStmtList parses statements until a Dedent (or Eof) is reached,
// without consuming the Dedent.
func (p *Parser) parseStmtList() ([]ast.Statement, error) {
	var stmts []ast.Statement
	for p.cur.Kind != token.Dedent && p.cur.Kind != token.Eof {
		stmt, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return stmts, nil
}

// parseStmt parses one statement: an if/else block, or a simple statement
// terminated by a Newline.
func (p *Parser) parseStmt() (ast.Statement, error) {
	if p.cur.Kind == token.If {
		return p.parseIfElse()
	}
	stmt, err := p.parseSimpleStmt()
	if err != nil {
		return nil, err
	}
	if err := p.expectKind(token.Newline); err != nil {
		return nil, err
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return stmt, nil
}

// parseSimpleStmt parses print/return statements, plus plain and
// field/variable assignments and bare expression statements — the latter
// two are disambiguated after the fact by checking whether a full
// expression parse left an assignable target followed by "=".
func (p *Parser) parseSimpleStmt() (ast.Statement, error) {
	switch p.cur.Kind {
	case token.Print:
		return p.parsePrint()
	case token.Return:
		return p.parseReturn()
	}

	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if !p.isChar("=") {
		return expr, nil
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	rhs, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	vv, ok := expr.(*ast.VariableValue)
	if !ok {
		return nil, fmt.Errorf("mython: parse error: invalid assignment target")
	}
	if len(vv.DottedIDs) == 1 {
		return ast.NewAssignment(vv.DottedIDs[0], rhs), nil
	}
	field := vv.DottedIDs[len(vv.DottedIDs)-1]
	object := ast.NewVariableValueDotted(vv.DottedIDs[:len(vv.DottedIDs)-1])
	return ast.NewFieldAssignment(object, field, rhs), nil
}

func (p *Parser) parsePrint() (ast.Statement, error) {
	if err := p.advance(); err != nil { // consume 'print'
		return nil, err
	}
	if p.cur.Kind == token.Newline {
		return ast.NewPrint(nil), nil
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
	return ast.NewPrint(args), nil
}

func (p *Parser) parseReturn() (ast.Statement, error) {
	if err := p.advance(); err != nil { // consume 'return'
		return nil, err
	}
	if p.cur.Kind == token.Newline {
		return ast.NewReturn(ast.NewNoneLiteral()), nil
	}
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return ast.NewReturn(expr), nil
}

func (p *Parser) parseIfElse() (ast.Statement, error) {
	if err := p.advance(); err != nil { // consume 'if'
		return nil, err
	}
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	thenBody, err := p.parseIndentedBlock()
	if err != nil {
		return nil, err
	}

	var elseBody ast.Statement
	if p.cur.Kind == token.Else {
		if err := p.advance(); err != nil {
			return nil, err
		}
		elseStmts, err := p.parseIndentedBlock()
		if err != nil {
			return nil, err
		}
		elseBody = elseStmts
	}
	return ast.NewIfElse(cond, thenBody, elseBody), nil
}

// parseIndentedBlock parses ":" NEWLINE INDENT { stmt } DEDENT and returns
// the body as a Compound.
func (p *Parser) parseIndentedBlock() (*ast.Compound, error) {
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
	stmts, err := p.parseStmtList()
	if err != nil {
		return nil, err
	}
	if err := p.expectKind(token.Dedent); err != nil {
		return nil, err
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return ast.NewCompound(stmts), nil
}
