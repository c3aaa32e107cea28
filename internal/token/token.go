// Package token defines the lexical tokens consumed by the reader.
package token

import "fmt"

// Kind identifies the lexical class of a Token.
type Kind string

// Token is the unit of input fed to the reader, one at a time.
type Token struct {
	Kind     Kind
	Text     string
	F64Value float64
	Line     int
	Column   int
}

func (t Token) String() string {
	return fmt.Sprintf("Line %d:%d, Kind: %s, Text: %q", t.Line, t.Column, t.Kind, t.Text)
}

// Token kinds. The reserved-but-unimplemented kinds (If, Let, In, End,
// Decl, the bracket/brace/angle family, Dot, DoubleColon, Assign,
// Yields) are named here so a real lexer can produce them, even though no
// ExprState in this package accepts them yet; every state rejects them
// as unexpected input.
const (
	Invalid Kind = "ILLEGAL"
	EOF     Kind = "EOF"

	// Keywords
	Def    Kind = "def"
	Lambda Kind = "lambda"
	If     Kind = "if"
	Let    Kind = "let"
	In     Kind = "in"
	End    Kind = "end"
	Type   Kind = "type"
	Decl   Kind = "decl"

	// Literals and names
	Symbol Kind = "SYMBOL"
	I64    Kind = "I64"
	F64    Kind = "F64"
	String Kind = "STRING"

	// Delimiters
	LParen   Kind = "("
	RParen   Kind = ")"
	LBracket Kind = "["
	RBracket Kind = "]"
	LBrace   Kind = "{"
	RBrace   Kind = "}"
	LAngle   Kind = "<"
	RAngle   Kind = ">"

	Dot         Kind = "."
	Comma       Kind = ","
	Colon       Kind = ":"
	DoubleColon Kind = "::"
	Semicolon   Kind = ";"

	SingleAssign Kind = "="
	Assign       Kind = ":="
	Yields       Kind = "->"
)

// goNames maps every Kind to the identifier it is named with in this
// package, so diagnostics can report "Colon" rather than the bare ":" a
// user would otherwise have to guess at.
var goNames = map[Kind]string{
	Invalid: "Invalid", EOF: "EOF",
	Def: "Def", Lambda: "Lambda", If: "If", Let: "Let", In: "In", End: "End", Type: "Type", Decl: "Decl",
	Symbol: "Symbol", I64: "I64", F64: "F64", String: "String",
	LParen: "LParen", RParen: "RParen", LBracket: "LBracket", RBracket: "RBracket",
	LBrace: "LBrace", RBrace: "RBrace", LAngle: "LAngle", RAngle: "RAngle",
	Dot: "Dot", Comma: "Comma", Colon: "Colon", DoubleColon: "DoubleColon", Semicolon: "Semicolon",
	SingleAssign: "SingleAssign", Assign: "Assign", Yields: "Yields",
}

// GoName returns the identifier this Kind is declared under, for use in
// diagnostics where the raw source spelling (e.g. ":") would be unhelpful.
func (k Kind) GoName() string {
	if n, ok := goNames[k]; ok {
		return n
	}
	return string(k)
}

var keywords = map[string]Kind{
	"def":    Def,
	"lambda": Lambda,
	"if":     If,
	"let":    Let,
	"in":     In,
	"end":    End,
	"type":   Type,
	"decl":   Decl,
}

// LookupIdent reports whether ident names a keyword, returning Symbol
// for any identifier that is not.
func LookupIdent(ident string) Kind {
	if k, ok := keywords[ident]; ok {
		return k
	}
	return Symbol
}
