// Package reader implements the pushdown parser described in spec: an
// incremental reader that accepts one token.Token at a time and yields a
// complete ast.Expression whenever enough tokens have arrived to close one
// out. It never sees a full token slice up front.
package reader

import (
	"github.com/xo-lang/schematica/internal/ast"
	"github.com/xo-lang/schematica/internal/diagnostics"
	"github.com/xo-lang/schematica/internal/token"
	"github.com/xo-lang/schematica/internal/typesystem"
)

// ExprState is one frame of the parser's stack. Each concrete type
// corresponds to a production the reader is partway through recognizing.
// Most methods are upward callbacks invoked by a child frame that just
// popped itself; the On*Token methods are the dispatch shim's targets.
//
// Every method has a default implementation on base: On*Token defaults to
// an "unexpected token" diagnostic, and the upward callbacks default to a
// panic, since a child should never deliver a callback its parent did not
// ask for (a stack-discipline bug, not a user input error).
type ExprState interface {
	Name() string
	Dump() string

	OnDefToken(tk token.Token, psm *ParserStateMachine) error
	OnLambdaToken(tk token.Token, psm *ParserStateMachine) error
	OnSymbolToken(tk token.Token, psm *ParserStateMachine) error
	OnColonToken(tk token.Token, psm *ParserStateMachine) error
	OnSemicolonToken(tk token.Token, psm *ParserStateMachine) error
	OnSingleAssignToken(tk token.Token, psm *ParserStateMachine) error
	OnLParenToken(tk token.Token, psm *ParserStateMachine) error
	OnRParenToken(tk token.Token, psm *ParserStateMachine) error
	OnCommaToken(tk token.Token, psm *ParserStateMachine) error
	OnF64Token(tk token.Token, psm *ParserStateMachine) error
	OnI64Token(tk token.Token, psm *ParserStateMachine) error

	// OnExpr delivers a just-completed expression to the state that asked
	// for one (directly, or via ExprProgress once a terminator arrived).
	OnExpr(e ast.Expression, psm *ParserStateMachine) error
	// OnSymbol delivers a resolved symbol name from ExpectSymbol.
	OnSymbol(name string, psm *ParserStateMachine) error
	// OnTypeDescr delivers a resolved type from ExpectType.
	OnTypeDescr(td *typesystem.TypeDescr, psm *ParserStateMachine) error
	// OnFormalArgList delivers a completed formal list from FormalArgList.
	OnFormalArgList(args []*ast.Variable, psm *ParserStateMachine) error
	// OnFormal delivers one completed formal from Formal to its arglist.
	OnFormal(v *ast.Variable, psm *ParserStateMachine) error
}

// base supplies the illegal-input and assert(false)-style default behavior
// every concrete ExprState shadows selectively. Go has no virtual dispatch
// through embedding, so a promoted (non-shadowed) method reports this
// state's own Name()/Dump(), not a dynamically overridden one -- harmless,
// since it only happens on input this state genuinely never expected.
type base struct {
	name string
}

func newBase(name string) base { return base{name: name} }

func (b *base) Name() string { return b.name }
func (b *base) Dump() string { return b.name }

func (b *base) illegal(tk token.Token) error {
	return diagnostics.NewUnexpectedTokenError(tk, b.name, b.name)
}

func (b *base) OnDefToken(tk token.Token, _ *ParserStateMachine) error          { return b.illegal(tk) }
func (b *base) OnLambdaToken(tk token.Token, _ *ParserStateMachine) error       { return b.illegal(tk) }
func (b *base) OnSymbolToken(tk token.Token, _ *ParserStateMachine) error       { return b.illegal(tk) }
func (b *base) OnColonToken(tk token.Token, _ *ParserStateMachine) error        { return b.illegal(tk) }
func (b *base) OnSemicolonToken(tk token.Token, _ *ParserStateMachine) error    { return b.illegal(tk) }
func (b *base) OnSingleAssignToken(tk token.Token, _ *ParserStateMachine) error { return b.illegal(tk) }
func (b *base) OnLParenToken(tk token.Token, _ *ParserStateMachine) error       { return b.illegal(tk) }
func (b *base) OnRParenToken(tk token.Token, _ *ParserStateMachine) error       { return b.illegal(tk) }
func (b *base) OnCommaToken(tk token.Token, _ *ParserStateMachine) error        { return b.illegal(tk) }
func (b *base) OnF64Token(tk token.Token, _ *ParserStateMachine) error          { return b.illegal(tk) }
func (b *base) OnI64Token(tk token.Token, _ *ParserStateMachine) error          { return b.illegal(tk) }

func (b *base) OnExpr(ast.Expression, *ParserStateMachine) error {
	panic(b.name + ": received on_expr, which this state never pushes a producer for")
}
func (b *base) OnSymbol(string, *ParserStateMachine) error {
	panic(b.name + ": received on_symbol, which this state never pushes ExpectSymbol for")
}
func (b *base) OnTypeDescr(*typesystem.TypeDescr, *ParserStateMachine) error {
	panic(b.name + ": received on_typedescr, which this state never pushes ExpectType for")
}
func (b *base) OnFormalArgList([]*ast.Variable, *ParserStateMachine) error {
	panic(b.name + ": received on_formal_arglist, which this state never pushes FormalArgList for")
}
func (b *base) OnFormal(*ast.Variable, *ParserStateMachine) error {
	panic(b.name + ": received on_formal, which this state never pushes Formal for")
}

// dispatch is the shim component: it maps a token's kind to the ExprState
// method that handles it and invokes it on the current stack top.
func dispatch(top ExprState, tk token.Token, psm *ParserStateMachine) error {
	switch tk.Kind {
	case token.Def:
		return top.OnDefToken(tk, psm)
	case token.Lambda:
		return top.OnLambdaToken(tk, psm)
	case token.Symbol:
		return top.OnSymbolToken(tk, psm)
	case token.Colon:
		return top.OnColonToken(tk, psm)
	case token.Semicolon:
		return top.OnSemicolonToken(tk, psm)
	case token.SingleAssign:
		return top.OnSingleAssignToken(tk, psm)
	case token.LParen:
		return top.OnLParenToken(tk, psm)
	case token.RParen:
		return top.OnRParenToken(tk, psm)
	case token.Comma:
		return top.OnCommaToken(tk, psm)
	case token.F64:
		return top.OnF64Token(tk, psm)
	case token.I64:
		return top.OnI64Token(tk, psm)
	default:
		return diagnostics.NewUnexpectedTokenError(tk, top.Name(), top.Dump())
	}
}

// delegateToExpectExpr pushes a fresh ExpectExpr and redelivers tk into it.
// Used by every state whose grammar position is "an expression starts
// here" (TopLevelSeq's bare atom-or-paren-or-lambda alternative).
func delegateToExpectExpr(tk token.Token, psm *ParserStateMachine) error {
	e := newExpectExprState()
	psm.Push(e)
	return dispatch(e, tk, psm)
}
