package reader

import (
	"github.com/xo-lang/schematica/internal/ast"
	"github.com/xo-lang/schematica/internal/token"
)

// topLevelSeqState is the bottom-of-stack state: it never pops itself and
// accepts an unbounded sequence of top-level expressions, one per Def or
// per atom-or-paren-or-lambda terminated by ';'.
type topLevelSeqState struct{ base }

func newTopLevelSeqState() *topLevelSeqState {
	return &topLevelSeqState{base: newBase("expect_toplevel_expression_sequence")}
}

func (s *topLevelSeqState) OnDefToken(tk token.Token, psm *ParserStateMachine) error {
	d := newDefineState()
	psm.Push(d)
	psm.Push(newExpectSymbolState())
	return nil
}

func (s *topLevelSeqState) OnLambdaToken(tk token.Token, psm *ParserStateMachine) error {
	return delegateToExpectExpr(tk, psm)
}

func (s *topLevelSeqState) OnLParenToken(tk token.Token, psm *ParserStateMachine) error {
	return delegateToExpectExpr(tk, psm)
}

func (s *topLevelSeqState) OnSymbolToken(tk token.Token, psm *ParserStateMachine) error {
	return delegateToExpectExpr(tk, psm)
}

func (s *topLevelSeqState) OnF64Token(tk token.Token, psm *ParserStateMachine) error {
	return delegateToExpectExpr(tk, psm)
}

func (s *topLevelSeqState) OnI64Token(tk token.Token, psm *ParserStateMachine) error {
	return delegateToExpectExpr(tk, psm)
}

// OnSemicolonToken ignores a semicolon seen between expressions: an
// atom-or-paren-or-lambda's terminator ends up redelivered here (by
// ExprProgress) once the expression it closes has already been emitted,
// and an empty input (";;") is not an error. A definition's ';' is
// consumed by Define itself and never reaches here.
func (s *topLevelSeqState) OnSemicolonToken(tk token.Token, psm *ParserStateMachine) error {
	return nil
}

// OnExpr writes the completed top-level expression to the output mailbox.
// Unlike every other state's OnExpr, TopLevelSeq does not pop itself: it
// stays ready for the next top-level expression.
func (s *topLevelSeqState) OnExpr(e ast.Expression, psm *ParserStateMachine) error {
	psm.Emit(e)
	return nil
}
