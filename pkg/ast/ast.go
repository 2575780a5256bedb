// Package ast defines every statement/expression node of the language and
// implements the evaluator directly on each node type: Execute(closure,
// context) is the one contract every node satisfies, mirroring the
// original tree-walking interpreter's virtual Statement::Execute rather
// than a centralized type-switch dispatcher.
package ast

import "mython/pkg/runtime"

// NodeType names a node's concrete kind, useful for diagnostics and tests.
type NodeType string

const (
	NodeNumericConst     NodeType = "NumericConst"
	NodeStringConst      NodeType = "StringConst"
	NodeBoolConst        NodeType = "BoolConst"
	NodeNoneLiteral      NodeType = "NoneLiteral"
	NodeVariableValue    NodeType = "VariableValue"
	NodeAssignment       NodeType = "Assignment"
	NodeFieldAssignment  NodeType = "FieldAssignment"
	NodePrint            NodeType = "Print"
	NodeStringify        NodeType = "Stringify"
	NodeMethodCall       NodeType = "MethodCall"
	NodeNewInstance      NodeType = "NewInstance"
	NodeAdd              NodeType = "Add"
	NodeSub              NodeType = "Sub"
	NodeMul              NodeType = "Mul"
	NodeDiv              NodeType = "Div"
	NodeAnd              NodeType = "And"
	NodeOr               NodeType = "Or"
	NodeNot              NodeType = "Not"
	NodeComparison       NodeType = "Comparison"
	NodeIfElse           NodeType = "IfElse"
	NodeReturn           NodeType = "Return"
	NodeCompound         NodeType = "Compound"
	NodeMethodBody       NodeType = "MethodBody"
	NodeClassDefinition  NodeType = "ClassDefinition"
)

// Statement is the single contract every node in this package satisfies.
// It is also, structurally, a runtime.Executable: runtime invokes method
// bodies through that narrower interface without importing this package.
type Statement interface {
	Type() NodeType
	Execute(closure runtime.Closure, ctx runtime.Context) (runtime.ObjectHolder, error)
}

var _ runtime.Executable = Statement(nil)
