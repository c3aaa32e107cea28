// Package diagnostics holds the error taxonomy raised by the lexer and
// reader. Every error is fatal to the translation unit in progress; there
// is no recovery path (spec §7).
package diagnostics

import (
	"fmt"

	"github.com/xo-lang/schematica/internal/token"
)

// Phase names the processing stage an error came from.
type Phase string

const (
	PhaseLexer  Phase = "lexer"
	PhaseReader Phase = "reader"
)

// ErrorCode is a stable-ish (but not externally guaranteed) error tag.
type ErrorCode string

const (
	// Lexer errors.
	ErrL001 ErrorCode = "L001" // invalid character

	// Reader errors (spec §7 kinds 1-3).
	ErrR001 ErrorCode = "R001" // unexpected token for parsing state
	ErrR002 ErrorCode = "R002" // unknown type name
	ErrR003 ErrorCode = "R003" // include_token called on an empty stack
)

var errorTemplates = map[ErrorCode]string{
	ErrL001: "invalid character: %q",
	ErrR001: "unexpected token %s for parsing state %s",
	ErrR002: "unknown type name: %q",
	ErrR003: "include_token called with no translation unit in progress",
}

// Error is the single error type raised by this module. It carries enough
// context to print a useful diagnostic without being a stable machine-
// readable error code (spec §7: "No error codes are externally stable").
type Error struct {
	Code  ErrorCode
	Phase Phase
	Args  []interface{}
	Token token.Token
	// StateDump, when non-empty, is a printable dump of the offending
	// ExprState, matching the C++ original's illegal_input_error(self,
	// token, *this) shape.
	StateDump string
}

func (e *Error) Error() string {
	template, ok := errorTemplates[e.Code]
	if !ok {
		return fmt.Sprintf("unknown error code: %s", e.Code)
	}

	message := fmt.Sprintf(template, e.Args...)

	phaseStr := ""
	if e.Phase != "" {
		phaseStr = fmt.Sprintf("[%s] ", e.Phase)
	}

	result := fmt.Sprintf("%serror at %d:%d [%s]: %s", phaseStr, e.Token.Line, e.Token.Column, e.Code, message)
	if e.StateDump != "" {
		result += fmt.Sprintf(" (state: %s)", e.StateDump)
	}
	return result
}

// NewLexerError builds an invalid-character diagnostic.
func NewLexerError(tok token.Token, ch byte) *Error {
	return &Error{Code: ErrL001, Phase: PhaseLexer, Token: tok, Args: []interface{}{string(ch)}}
}

// NewUnexpectedTokenError builds the "unexpected token for parsing state"
// diagnostic (spec §7 kind 1).
func NewUnexpectedTokenError(tok token.Token, stateName, stateDump string) *Error {
	return &Error{
		Code:      ErrR001,
		Phase:     PhaseReader,
		Token:     tok,
		Args:      []interface{}{tok.Kind.GoName(), stateName},
		StateDump: stateDump,
	}
}

// NewUnknownTypeError builds the "unknown type name" diagnostic (spec §7
// kind 2).
func NewUnknownTypeError(tok token.Token, name string) *Error {
	return &Error{Code: ErrR002, Phase: PhaseReader, Token: tok, Args: []interface{}{name}}
}

// NewEmptyStackError builds the "empty stack on input" diagnostic (spec §7
// kind 3).
func NewEmptyStackError(tok token.Token) *Error {
	return &Error{Code: ErrR003, Phase: PhaseReader, Token: tok}
}
