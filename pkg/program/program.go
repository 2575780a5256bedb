// Package program drives a complete run: lex, parse, and evaluate a source
// file against one top-level Closure that doubles as the program's Globals.
package program

import (
	"io"

	"mython/pkg/lexer"
	"mython/pkg/parser"
	"mython/pkg/runtime"
)

// Run lexes and parses src, then evaluates the resulting module against a
// fresh top-level Closure, writing print output to out. There is no
// implicit entry function — every top-level statement executes in
// program order, exactly as the top-level Compound mutates its Closure
// directly.
func Run(src io.Reader, out io.Writer) error {
	lx, err := lexer.New(src)
	if err != nil {
		return err
	}
	module, err := parser.New(lx).ParseModule()
	if err != nil {
		return err
	}

	globals := runtime.NewClosure()
	ctx := runtime.NewSimpleContext(out, globals)
	_, err = module.Execute(globals, ctx)
	return err
}
