package reader

import (
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/xo-lang/schematica/internal/ast"
)

// exprStateFrame is one entry of ExprStateStack. The uuid gives each
// pushed state a stable identity for the lifetime of the frame, so a
// Print() dump can be correlated across calls even though ExprState
// values carry no identity of their own.
type exprStateFrame struct {
	id    uuid.UUID
	state ExprState
}

// ExprStateStack is the parser's control stack: the top frame is the
// state that the next token is dispatched to.
type ExprStateStack struct {
	frames []exprStateFrame
}

// Push places state on top of the stack.
func (s *ExprStateStack) Push(state ExprState) {
	s.frames = append(s.frames, exprStateFrame{id: uuid.New(), state: state})
}

// Pop removes and returns the top state. Popping an empty stack is a
// caller bug (stack discipline must be checked by Parser before any
// dispatch reaches here), so it panics rather than returning an error.
func (s *ExprStateStack) Pop() ExprState {
	n := len(s.frames)
	top := s.frames[n-1]
	s.frames = s.frames[:n-1]
	return top.state
}

// Top returns the current top state without removing it.
func (s *ExprStateStack) Top() ExprState {
	return s.frames[len(s.frames)-1].state
}

// Empty reports whether the stack holds no frames.
func (s *ExprStateStack) Empty() bool { return len(s.frames) == 0 }

// Len returns the current stack depth.
func (s *ExprStateStack) Len() int { return len(s.frames) }

// Print writes a human-readable, top-first dump of the stack. It does not
// mutate the stack and may be called at any point, including mid-parse.
func (s *ExprStateStack) Print(w io.Writer) {
	for i := len(s.frames) - 1; i >= 0; i-- {
		f := s.frames[i]
		fmt.Fprintf(w, "[%d] %s  (frame %s)\n", i, f.state.Dump(), f.id)
	}
}

// envFrame binds formal names to the Variable introduced for them, for one
// lexical scope (one Lambda's formals).
type envFrame struct {
	vars map[string]*ast.Variable
}

// EnvFrameStack tracks the lexical scopes opened by Lambda bodies so a
// Symbol encountered in expression position can resolve to the Variable
// its enclosing formal list introduced, rather than always becoming an
// UnresolvedVariable.
type EnvFrameStack struct {
	frames []*envFrame
}

// Push opens a new, empty lexical scope.
func (e *EnvFrameStack) Push() {
	e.frames = append(e.frames, &envFrame{vars: make(map[string]*ast.Variable)})
}

// Pop closes the innermost lexical scope.
func (e *EnvFrameStack) Pop() {
	e.frames = e.frames[:len(e.frames)-1]
}

// Bind introduces v into the innermost open scope.
func (e *EnvFrameStack) Bind(v *ast.Variable) {
	e.frames[len(e.frames)-1].vars[v.Name] = v
}

// Lookup searches scopes from innermost to outermost for name.
func (e *EnvFrameStack) Lookup(name string) (*ast.Variable, bool) {
	for i := len(e.frames) - 1; i >= 0; i-- {
		if v, ok := e.frames[i].vars[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Len returns the number of open lexical scopes.
func (e *EnvFrameStack) Len() int { return len(e.frames) }
