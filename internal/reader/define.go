package reader

import (
	"fmt"

	"github.com/xo-lang/schematica/internal/ast"
	"github.com/xo-lang/schematica/internal/token"
	"github.com/xo-lang/schematica/internal/typesystem"
)

// definePhase names defineState's D0-D5 phases from spec.
type definePhase int

const (
	defPhaseLhs      definePhase = iota // D0: awaiting the lhs name (delivered via ExpectSymbol)
	defPhaseAfterLhs                    // D1: awaiting ':' or '='
	defPhaseType                        // D2: awaiting the ascribed type (delivered via ExpectType)
	defPhaseAfterType                   // D3: awaiting '='
	defPhaseRhs                         // D4: awaiting the rhs expression (delivered via ExpectExpr)
	defPhaseDone                        // D5: awaiting the closing ';'
)

// defineState recognizes `def NAME [: TYPE] = RHS ;`.
type defineState struct {
	base
	phase definePhase
	def   *ast.DefineExpr
	cvt   *ast.ConvertExpr
}

func newDefineState() *defineState {
	return &defineState{base: newBase("defexpr"), phase: defPhaseLhs, def: &ast.DefineExpr{}}
}

func (s *defineState) Dump() string {
	return fmt.Sprintf("defexpr(phase=%d, lhs=%q)", s.phase, s.def.LhsName)
}

// OnSymbol receives the lhs name from ExpectSymbol (D0 -> D1).
func (s *defineState) OnSymbol(name string, psm *ParserStateMachine) error {
	if s.phase != defPhaseLhs {
		panic("defexpr: OnSymbol delivered outside D0")
	}
	s.def.SetLhsName(name)
	s.phase = defPhaseAfterLhs
	return nil
}

// OnColonToken starts a type ascription (D1 -> D2).
func (s *defineState) OnColonToken(tk token.Token, psm *ParserStateMachine) error {
	if s.phase != defPhaseAfterLhs {
		return s.illegal(tk)
	}
	s.phase = defPhaseType
	psm.Push(newExpectTypeState())
	return nil
}

// OnTypeDescr receives the ascribed type from ExpectType (D2 -> D3),
// building the ConvertExpr that will wrap the eventual rhs.
func (s *defineState) OnTypeDescr(td *typesystem.TypeDescr, psm *ParserStateMachine) error {
	if s.phase != defPhaseType {
		panic("defexpr: OnTypeDescr delivered outside D2")
	}
	s.cvt = &ast.ConvertExpr{Dest: td}
	s.def.SetRhs(s.cvt)
	s.phase = defPhaseAfterType
	return nil
}

// OnSingleAssignToken starts the rhs expression, from either D1 (no
// ascription) or D3 (after an ascription) -> D4.
func (s *defineState) OnSingleAssignToken(tk token.Token, psm *ParserStateMachine) error {
	if s.phase != defPhaseAfterLhs && s.phase != defPhaseAfterType {
		return s.illegal(tk)
	}
	s.phase = defPhaseRhs
	psm.Push(newExpectExprState())
	return nil
}

// OnExpr receives the rhs expression (D4 -> D5), either as the arg of a
// pending ConvertExpr or directly as the definition's rhs.
func (s *defineState) OnExpr(e ast.Expression, psm *ParserStateMachine) error {
	if s.phase != defPhaseRhs {
		panic("defexpr: OnExpr delivered outside D4")
	}
	if s.cvt != nil {
		s.cvt.SetArg(e)
	} else {
		s.def.SetRhs(e)
	}
	s.phase = defPhaseDone
	return nil
}

// OnSemicolonToken closes the definition (D5), forwarding it to
// TopLevelSeq. Unlike Lambda and ExprProgress, Define does not redeliver
// the ';': it is the outermost construct this terminator can close.
func (s *defineState) OnSemicolonToken(tk token.Token, psm *ParserStateMachine) error {
	if s.phase != defPhaseDone {
		return s.illegal(tk)
	}
	psm.Pop()
	parent := psm.Top()
	return parent.OnExpr(s.def, psm)
}
