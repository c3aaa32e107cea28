package reader

import (
	"fmt"

	"github.com/xo-lang/schematica/internal/ast"
	"github.com/xo-lang/schematica/internal/token"
)

// exprProgressState represents a just-completed atomic or parenthesized
// expression that may still be extended (by operator application, in a
// later grammar). In the currently specified grammar it only accepts ';'
// or ')': on either, it pops itself, forwards the expression to whatever
// is now on top, and then redelivers the same terminator token to the
// new top again -- that token may need to close an enclosing construct
// too (a Define, a Paren, or TopLevelSeq, which simply ignores it).
type exprProgressState struct {
	base
	expr ast.Expression
}

func newExprProgressState(e ast.Expression) *exprProgressState {
	return &exprProgressState{base: newBase("expr_progress"), expr: e}
}

func (s *exprProgressState) Dump() string { return fmt.Sprintf("expr_progress(%T)", s.expr) }

func (s *exprProgressState) OnSemicolonToken(tk token.Token, psm *ParserStateMachine) error {
	return s.resolve(tk, psm)
}

func (s *exprProgressState) OnRParenToken(tk token.Token, psm *ParserStateMachine) error {
	return s.resolve(tk, psm)
}

func (s *exprProgressState) resolve(tk token.Token, psm *ParserStateMachine) error {
	psm.Pop()
	parent := psm.Top()
	if err := parent.OnExpr(s.expr, psm); err != nil {
		return err
	}
	newTop := psm.Top()
	return dispatch(newTop, tk, psm)
}
