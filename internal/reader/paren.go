package reader

import (
	"fmt"

	"github.com/xo-lang/schematica/internal/ast"
	"github.com/xo-lang/schematica/internal/token"
)

// parenPhase names parenState's P0-P1 phases from spec.
type parenPhase int

const (
	parenPhaseAwaitInner parenPhase = iota // P0: awaiting the parenthesized expression
	parenPhaseAwaitClose                   // P1: awaiting the closing ')'
)

// parenState recognizes `( EXPR )`. On construction it is already past
// consuming the '(' that triggered it (spec: "on entry ... phase is P0"),
// and immediately pushes an ExpectExpr to capture the inner expression.
type parenState struct {
	base
	phase parenPhase
	inner ast.Expression
}

func newParenState(psm *ParserStateMachine) *parenState {
	p := &parenState{base: newBase("parenexpr"), phase: parenPhaseAwaitInner}
	psm.Push(p)
	psm.Push(newExpectExprState())
	return p
}

func (s *parenState) Dump() string { return fmt.Sprintf("parenexpr(phase=%d)", s.phase) }

// OnExpr receives the inner expression (P0 -> P1).
func (s *parenState) OnExpr(e ast.Expression, psm *ParserStateMachine) error {
	if s.phase != parenPhaseAwaitInner {
		panic("parenexpr: OnExpr delivered outside P0")
	}
	s.inner = e
	s.phase = parenPhaseAwaitClose
	return nil
}

// OnRParenToken closes the parenthesized expression (P1), forwarding the
// inner expression to whatever pushed this Paren.
func (s *parenState) OnRParenToken(tk token.Token, psm *ParserStateMachine) error {
	if s.phase != parenPhaseAwaitClose {
		return s.illegal(tk)
	}
	psm.Pop()
	parent := psm.Top()
	return parent.OnExpr(s.inner, psm)
}
