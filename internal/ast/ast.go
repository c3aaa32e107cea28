// Package ast defines the expression sum type the reader assembles (spec
// §1's external "AST node library" collaborator). Nodes are shared by
// pointer: an Expression may be referenced by a DefineExpr's Rhs, a
// ConvertExpr's Arg, a Lambda's Body, and the parser's output slot at the
// same time, with no reference counting needed.
package ast

import "github.com/xo-lang/schematica/internal/typesystem"

// Expression is the root interface of the AST sum type.
type Expression interface {
	exprNode()
}

// Constant is a literal value.
type Constant struct {
	Type  *typesystem.TypeDescr
	Value float64
}

func (*Constant) exprNode() {}

// Variable is a resolved reference to a named binding, carrying the type
// it was declared with (e.g. a lambda formal).
type Variable struct {
	Name string
	Type *typesystem.TypeDescr
}

func (*Variable) exprNode() {}

// UnresolvedVariable is a placeholder for a symbol in expression position
// that could not be found in the active environment. Per spec §9, the
// reader does not fail parsing over this — name resolution is a semantic
// pass, not a parsing concern.
type UnresolvedVariable struct {
	Name string
}

func (*UnresolvedVariable) exprNode() {}

// DefineExpr represents `def NAME [: TYPE] = RHS ;`. LhsName is set first
// (define phase D0->D1). Without a type ascription Rhs is set to the rhs
// expression at D4->D5; with one, Rhs is set to a ConvertExpr at D2->D3
// and the rhs expression becomes that ConvertExpr's Arg at D4->D5.
type DefineExpr struct {
	LhsName string
	Rhs     Expression
}

// SetLhsName assigns the definition's name. Called once, from define
// phase D0.
func (d *DefineExpr) SetLhsName(name string) { d.LhsName = name }

// SetRhs assigns the right-hand-side expression. Called once: from define
// phase D2 with the ConvertExpr when a type ascription is present,
// otherwise from D4 with the rhs expression itself.
func (d *DefineExpr) SetRhs(e Expression) { d.Rhs = e }

func (*DefineExpr) exprNode() {}

// ConvertExpr represents a type-ascribed definition's right-hand side:
// the destination type is known (from the `: TYPE` clause) before the
// source expression arrives.
type ConvertExpr struct {
	Dest *typesystem.TypeDescr
	Arg  Expression
}

// SetArg assigns the expression being converted. Called once, after the
// ConvertExpr has already been constructed with its destination type.
func (c *ConvertExpr) SetArg(e Expression) { c.Arg = e }

func (*ConvertExpr) exprNode() {}

// Lambda represents `lambda ( formals ) body`. Unlike DefineExpr, a
// Lambda is constructed in one shot once all three of its fields (name,
// args, body) are known -- by lambda phase L3 the reader already has all
// three.
type Lambda struct {
	Name string
	Args []*Variable
	Body Expression
}

func (*Lambda) exprNode() {}

// Apply represents function application. Not produced by this grammar yet
// (reserved for a future reader extension); included so the sum type is
// the complete one spec §3 names.
type Apply struct {
	Fn   Expression
	Args []Expression
}

func (*Apply) exprNode() {}

// If represents a conditional. Not produced by this grammar yet (the `if`
// keyword is reserved, spec §6); included for the same reason as Apply.
type If struct {
	Cond, Then, Else Expression
}

func (*If) exprNode() {}
