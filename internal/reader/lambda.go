package reader

import (
	"fmt"

	"github.com/xo-lang/schematica/internal/ast"
	"github.com/xo-lang/schematica/internal/config"
	"github.com/xo-lang/schematica/internal/token"
)

// lambdaPhase names lambdaState's L1-L3 phases from spec. L0 ("just saw
// the Lambda token, about to push FormalArgList") is collapsed into
// construction: nothing else ever dispatches to a lambdaState before that
// transition happens, so there is no observable L0 state to represent.
type lambdaPhase int

const (
	lambdaPhaseFormals lambdaPhase = iota // L1: awaiting the formal arg list
	lambdaPhaseBody                       // L2: awaiting the body expression
	lambdaPhaseDone                       // L3: awaiting the closing ';'
)

// lambdaState recognizes `lambda ( FORMALS ) BODY`.
type lambdaState struct {
	base
	phase lambdaPhase
	args  []*ast.Variable
	body  ast.Expression
}

func newLambdaState(psm *ParserStateMachine) *lambdaState {
	l := &lambdaState{base: newBase("lambdaexpr"), phase: lambdaPhaseFormals}
	psm.Push(l)
	psm.Push(newFormalArgListState())
	return l
}

func (s *lambdaState) Dump() string {
	return fmt.Sprintf("lambdaexpr(phase=%d, nargs=%d)", s.phase, len(s.args))
}

// OnFormalArgList receives the completed formal list from FormalArgList
// (L1 -> L2), binding each formal into a fresh lexical scope before
// pushing an ExpectExpr to capture the body.
func (s *lambdaState) OnFormalArgList(args []*ast.Variable, psm *ParserStateMachine) error {
	if s.phase != lambdaPhaseFormals {
		panic("lambdaexpr: OnFormalArgList delivered outside L1")
	}
	s.args = args
	psm.PushEnv()
	for _, v := range args {
		psm.BindVar(v)
	}
	s.phase = lambdaPhaseBody
	psm.Push(newExpectExprState())
	return nil
}

// OnExpr receives the body expression (L2 -> L3).
func (s *lambdaState) OnExpr(e ast.Expression, psm *ParserStateMachine) error {
	if s.phase != lambdaPhaseBody {
		panic("lambdaexpr: OnExpr delivered outside L2")
	}
	s.body = e
	s.phase = lambdaPhaseDone
	return nil
}

// OnSemicolonToken closes the lambda (L3): it pops itself and its lexical
// scope, builds the Lambda node, forwards it to its parent, and then
// redelivers the same ';' to whatever is now on top -- the same token may
// also close an enclosing Define or Lambda, or reach TopLevelSeq.
func (s *lambdaState) OnSemicolonToken(tk token.Token, psm *ParserStateMachine) error {
	if s.phase != lambdaPhaseDone {
		return s.illegal(tk)
	}
	psm.Pop()
	psm.PopEnv()
	lambda := &ast.Lambda{Name: config.AnonymousLambdaName, Args: s.args, Body: s.body}

	parent := psm.Top()
	if err := parent.OnExpr(lambda, psm); err != nil {
		return err
	}
	newTop := psm.Top()
	return dispatch(newTop, tk, psm)
}
