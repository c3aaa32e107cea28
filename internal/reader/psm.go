package reader

import (
	"io"

	"github.com/xo-lang/schematica/internal/ast"
	"github.com/xo-lang/schematica/internal/diagnostics"
	"github.com/xo-lang/schematica/internal/token"
	"github.com/xo-lang/schematica/internal/typesystem"
)

// ParserStateMachine is the shared context every ExprState reads and
// mutates through: the control stack, the lexical environment, the type
// registry, and the single-slot output mailbox a completed top-level
// expression is written to.
type ParserStateMachine struct {
	stack  ExprStateStack
	env    EnvFrameStack
	types  *typesystem.Registry
	output ast.Expression
}

func newParserStateMachine(types *typesystem.Registry) *ParserStateMachine {
	return &ParserStateMachine{types: types}
}

// Push places state on top of the control stack.
func (psm *ParserStateMachine) Push(state ExprState) { psm.stack.Push(state) }

// Pop removes and returns the top of the control stack.
func (psm *ParserStateMachine) Pop() ExprState { return psm.stack.Pop() }

// Top returns the current top of the control stack.
func (psm *ParserStateMachine) Top() ExprState { return psm.stack.Top() }

// Empty reports whether the control stack holds no frames.
func (psm *ParserStateMachine) Empty() bool { return psm.stack.Empty() }

// StackDepth returns the current control stack depth.
func (psm *ParserStateMachine) StackDepth() int { return psm.stack.Len() }

// PushEnv opens a new lexical scope (entering a Lambda body).
func (psm *ParserStateMachine) PushEnv() { psm.env.Push() }

// PopEnv closes the innermost lexical scope (leaving a Lambda body).
func (psm *ParserStateMachine) PopEnv() { psm.env.Pop() }

// EnvDepth returns the number of open lexical scopes.
func (psm *ParserStateMachine) EnvDepth() int { return psm.env.Len() }

// BindVar introduces v into the innermost open lexical scope.
func (psm *ParserStateMachine) BindVar(v *ast.Variable) { psm.env.Bind(v) }

// LookupVar searches the open lexical scopes for name.
func (psm *ParserStateMachine) LookupVar(name string) (*ast.Variable, bool) {
	return psm.env.Lookup(name)
}

// ResolveType resolves tk's text against the type registry, translating a
// miss into the diagnostic kind spec names (unknown type name).
func (psm *ParserStateMachine) ResolveType(tk token.Token) (*typesystem.TypeDescr, error) {
	td, err := psm.types.Resolve(tk.Text)
	if err != nil {
		return nil, diagnostics.NewUnknownTypeError(tk, tk.Text)
	}
	return td, nil
}

// builtinType resolves one of config.BuiltinTypeNames, which NewRegistry
// guarantees is always present; a miss here is a registry construction
// bug, not a user input error.
func (psm *ParserStateMachine) builtinType(name string) *typesystem.TypeDescr {
	td, err := psm.types.Resolve(name)
	if err != nil {
		panic("reader: builtin type " + name + " missing from registry")
	}
	return td
}

// Emit writes e to the output mailbox. Called exactly once per completed
// top-level expression, by TopLevelSeq.OnExpr.
func (psm *ParserStateMachine) Emit(e ast.Expression) { psm.output = e }

// TakeOutput returns and clears the output mailbox.
func (psm *ParserStateMachine) TakeOutput() ast.Expression {
	e := psm.output
	psm.output = nil
	return e
}

// Print writes a top-first dump of the control stack.
func (psm *ParserStateMachine) Print(w io.Writer) { psm.stack.Print(w) }
