package reader

import (
	"github.com/xo-lang/schematica/internal/ast"
	"github.com/xo-lang/schematica/internal/token"
)

// expectExprState captures one expression for whatever pushed it: a
// Define's rhs, a Paren's inner expression, a Lambda's body, or a bare
// top-level atom-or-paren-or-lambda. It builds atoms (F64/I64/Symbol)
// directly, or delegates to Paren/Lambda for the compound forms.
//
// Whichever way the expression is obtained, completing it always pushes
// an ExprProgress rather than forwarding immediately: the grammar's
// atom-or-paren production is only finished once a terminator (';' or
// ')') has also been seen, and ExprProgress is what waits for that.
type expectExprState struct{ base }

func newExpectExprState() *expectExprState {
	return &expectExprState{base: newBase("expect_expr")}
}

func (s *expectExprState) complete(e ast.Expression, psm *ParserStateMachine) error {
	psm.Pop()
	psm.Push(newExprProgressState(e))
	return nil
}

func (s *expectExprState) OnF64Token(tk token.Token, psm *ParserStateMachine) error {
	c := &ast.Constant{Type: psm.builtinType("f64"), Value: tk.F64Value}
	return s.complete(c, psm)
}

func (s *expectExprState) OnI64Token(tk token.Token, psm *ParserStateMachine) error {
	c := &ast.Constant{Type: psm.builtinType("i64"), Value: tk.F64Value}
	return s.complete(c, psm)
}

func (s *expectExprState) OnSymbolToken(tk token.Token, psm *ParserStateMachine) error {
	var e ast.Expression
	if v, ok := psm.LookupVar(tk.Text); ok {
		e = v
	} else {
		e = &ast.UnresolvedVariable{Name: tk.Text}
	}
	return s.complete(e, psm)
}

// OnLParenToken pushes a Paren sub-state instead of popping itself; the
// eventual on_expr from Paren arrives through OnExpr below.
func (s *expectExprState) OnLParenToken(tk token.Token, psm *ParserStateMachine) error {
	newParenState(psm)
	return nil
}

// OnLambdaToken pushes a Lambda sub-state instead of popping itself; the
// eventual on_expr from Lambda arrives through OnExpr below.
func (s *expectExprState) OnLambdaToken(tk token.Token, psm *ParserStateMachine) error {
	newLambdaState(psm)
	return nil
}

// OnExpr receives a completed expression forwarded up from a Paren or
// Lambda sub-state.
func (s *expectExprState) OnExpr(e ast.Expression, psm *ParserStateMachine) error {
	return s.complete(e, psm)
}

// expectSymbolState is a one-shot transparent state: it pops itself as
// soon as a Symbol arrives and forwards the name to its parent.
type expectSymbolState struct{ base }

func newExpectSymbolState() *expectSymbolState {
	return &expectSymbolState{base: newBase("expect_symbol")}
}

func (s *expectSymbolState) OnSymbolToken(tk token.Token, psm *ParserStateMachine) error {
	psm.Pop()
	return psm.Top().OnSymbol(tk.Text, psm)
}

// expectTypeState is a one-shot transparent state: it resolves a Symbol
// against the type registry and forwards the TypeDescr to its parent.
type expectTypeState struct{ base }

func newExpectTypeState() *expectTypeState {
	return &expectTypeState{base: newBase("expect_type")}
}

func (s *expectTypeState) OnSymbolToken(tk token.Token, psm *ParserStateMachine) error {
	td, err := psm.ResolveType(tk)
	if err != nil {
		return err
	}
	psm.Pop()
	return psm.Top().OnTypeDescr(td, psm)
}
