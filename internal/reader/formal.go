package reader

import (
	"fmt"

	"github.com/xo-lang/schematica/internal/token"
	"github.com/xo-lang/schematica/internal/typesystem"

	"github.com/xo-lang/schematica/internal/ast"
)

// argListPhase names formalArgListState's phases: awaiting the opening
// '(', awaiting one formal, and awaiting ',' or ')' after one.
type argListPhase int

const (
	argListPhaseOpen   argListPhase = iota
	argListPhaseFormal              // just consumed '(' or ',': a Formal is pushed and pending
	argListPhaseSep                 // a formal just completed: awaiting ',' or ')'
)

// formalArgListState recognizes `( f0 , f1 , ... , fn )`, one or more
// formals separated by commas.
type formalArgListState struct {
	base
	phase argListPhase
	args  []*ast.Variable
}

func newFormalArgListState() *formalArgListState {
	return &formalArgListState{base: newBase("formal_arglist"), phase: argListPhaseOpen}
}

func (s *formalArgListState) Dump() string {
	return fmt.Sprintf("formal_arglist(phase=%d, n=%d)", s.phase, len(s.args))
}

func (s *formalArgListState) OnLParenToken(tk token.Token, psm *ParserStateMachine) error {
	if s.phase != argListPhaseOpen {
		return s.illegal(tk)
	}
	s.phase = argListPhaseFormal
	psm.Push(newFormalState())
	return nil
}

// OnFormal receives one completed formal from Formal.
func (s *formalArgListState) OnFormal(v *ast.Variable, psm *ParserStateMachine) error {
	if s.phase != argListPhaseFormal {
		panic("formal_arglist: OnFormal delivered outside formal phase")
	}
	s.args = append(s.args, v)
	s.phase = argListPhaseSep
	return nil
}

func (s *formalArgListState) OnCommaToken(tk token.Token, psm *ParserStateMachine) error {
	if s.phase != argListPhaseSep {
		return s.illegal(tk)
	}
	s.phase = argListPhaseFormal
	psm.Push(newFormalState())
	return nil
}

// OnRParenToken closes the list, forwarding it to whatever pushed this
// FormalArgList (a lambdaState).
func (s *formalArgListState) OnRParenToken(tk token.Token, psm *ParserStateMachine) error {
	if s.phase != argListPhaseSep {
		return s.illegal(tk)
	}
	psm.Pop()
	parent := psm.Top()
	return parent.OnFormalArgList(s.args, psm)
}

// formalPhase names formalState's phases: awaiting the formal's name,
// awaiting ':', and awaiting its type (delivered via ExpectType).
type formalPhase int

const (
	formalPhaseName formalPhase = iota
	formalPhaseColon
	formalPhaseType
)

// formalState recognizes one `NAME : TYPE` formal and forwards the
// resulting Variable to its FormalArgList.
type formalState struct {
	base
	phase formalPhase
	name  string
}

func newFormalState() *formalState {
	return &formalState{base: newBase("formal"), phase: formalPhaseName}
}

func (s *formalState) Dump() string {
	return fmt.Sprintf("formal(phase=%d, name=%q)", s.phase, s.name)
}

func (s *formalState) OnSymbolToken(tk token.Token, psm *ParserStateMachine) error {
	if s.phase != formalPhaseName {
		return s.illegal(tk)
	}
	s.name = tk.Text
	s.phase = formalPhaseColon
	return nil
}

func (s *formalState) OnColonToken(tk token.Token, psm *ParserStateMachine) error {
	if s.phase != formalPhaseColon {
		return s.illegal(tk)
	}
	s.phase = formalPhaseType
	psm.Push(newExpectTypeState())
	return nil
}

// OnTypeDescr receives the formal's type from ExpectType, completing this
// Formal and forwarding the resulting Variable up to the arglist.
func (s *formalState) OnTypeDescr(td *typesystem.TypeDescr, psm *ParserStateMachine) error {
	if s.phase != formalPhaseType {
		panic("formal: OnTypeDescr delivered outside type phase")
	}
	psm.Pop()
	v := &ast.Variable{Name: s.name, Type: td}
	return psm.Top().OnFormal(v, psm)
}
