package reader

import (
	"io"

	"github.com/xo-lang/schematica/internal/ast"
	"github.com/xo-lang/schematica/internal/diagnostics"
	"github.com/xo-lang/schematica/internal/token"
	"github.com/xo-lang/schematica/internal/typesystem"
)

// Parser is the public facade over the pushdown state machine: callers
// feed it one token.Token at a time via IncludeToken and get back an
// ast.Expression whenever one has just completed.
//
// Every reader error is fatal to the Parser instance: once IncludeToken
// returns an error, every subsequent call returns that same error until a
// new translation unit is begun. There is no recovery path.
type Parser struct {
	types *typesystem.Registry
	psm   *ParserStateMachine
	err   error
}

// New returns a Parser with its own type registry, ready to have
// BeginTranslationUnit called on it.
func New() *Parser {
	return &Parser{types: typesystem.NewRegistry()}
}

// BeginTranslationUnit resets the parser to start reading a new sequence
// of top-level expressions, discarding any in-progress parse.
func (p *Parser) BeginTranslationUnit() {
	p.psm = newParserStateMachine(p.types)
	p.psm.Push(newTopLevelSeqState())
	p.err = nil
}

// IncludeToken delivers one token to the parser. It returns a non-nil
// ast.Expression exactly when tk completed a top-level expression, and a
// non-nil error exactly when tk was rejected -- in which case this Parser
// is now dead and every later IncludeToken call returns the same error.
func (p *Parser) IncludeToken(tk token.Token) (ast.Expression, error) {
	if p.err != nil {
		return nil, p.err
	}
	if p.psm == nil || p.psm.Empty() {
		err := diagnostics.NewEmptyStackError(tk)
		p.err = err
		return nil, err
	}

	top := p.psm.Top()
	if err := dispatch(top, tk, p.psm); err != nil {
		p.err = err
		return nil, err
	}
	return p.psm.TakeOutput(), nil
}

// HasIncompleteExpr reports whether the parser is mid-expression: the
// control stack holds more than just TopLevelSeq.
func (p *Parser) HasIncompleteExpr() bool {
	return p.psm != nil && p.psm.StackDepth() > 1
}

// StackDepth returns the current control stack depth, 0 before
// BeginTranslationUnit has been called.
func (p *Parser) StackDepth() int {
	if p.psm == nil {
		return 0
	}
	return p.psm.StackDepth()
}

// EnvDepth returns the number of open lexical scopes, 0 before
// BeginTranslationUnit has been called. It returns to 0 between top-level
// expressions, mirroring StackDepth's return to 1.
func (p *Parser) EnvDepth() int {
	if p.psm == nil {
		return 0
	}
	return p.psm.EnvDepth()
}

// Print writes a top-first dump of the control stack. It does not mutate
// parser state and may be called at any point, including after an error.
func (p *Parser) Print(w io.Writer) {
	if p.psm != nil {
		p.psm.Print(w)
	}
}
