package reader_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/xo-lang/schematica/internal/ast"
	"github.com/xo-lang/schematica/internal/reader"
	"github.com/xo-lang/schematica/internal/token"
	"github.com/xo-lang/schematica/internal/typesystem"
)

func tok(kind token.Kind, text string) token.Token {
	return token.Token{Kind: kind, Text: text}
}

func f64Tok(text string, v float64) token.Token {
	return token.Token{Kind: token.F64, Text: text, F64Value: v}
}

func sym(name string) token.Token { return tok(token.Symbol, name) }

var (
	semi   = tok(token.Semicolon, ";")
	lparen = tok(token.LParen, "(")
	rparen = tok(token.RParen, ")")
	colon  = tok(token.Colon, ":")
	assign = tok(token.SingleAssign, "=")
	def    = tok(token.Def, "def")
	lambda = tok(token.Lambda, "lambda")
	comma  = tok(token.Comma, ",")
)

// feed delivers every token in turn and records which calls returned a
// non-nil expression, by index.
func feed(t *testing.T, p *reader.Parser, toks []token.Token) []ast.Expression {
	t.Helper()
	out := make([]ast.Expression, len(toks))
	for i, tk := range toks {
		e, err := p.IncludeToken(tk)
		if err != nil {
			t.Fatalf("token %d (%s): unexpected error: %v", i, tk.Kind, err)
		}
		out[i] = e
	}
	return out
}

func f64Type(t *testing.T) *typesystem.TypeDescr {
	t.Helper()
	r := typesystem.NewRegistry()
	td, err := r.Resolve("f64")
	if err != nil {
		t.Fatalf("f64 not registered: %v", err)
	}
	return td
}

// scenario 1: a bare literal only completes once the terminating ';'
// arrives, not on the literal token itself.
func TestBareLiteral(t *testing.T) {
	p := reader.New()
	p.BeginTranslationUnit()

	results := feed(t, p, []token.Token{f64Tok("3.14", 3.14), semi})

	if results[0] != nil {
		t.Fatalf("expected nil after literal token alone, got %#v", results[0])
	}
	want := &ast.Constant{Type: f64Type(t), Value: 3.14}
	if !reflect.DeepEqual(results[1], want) {
		t.Fatalf("after ';': got %#v, want %#v", results[1], want)
	}
	if p.HasIncompleteExpr() {
		t.Fatalf("expected stack back to depth 1 after a completed top-level expression")
	}
}

// scenario 2: a simple definition with no type ascription.
func TestSimpleDefine(t *testing.T) {
	p := reader.New()
	p.BeginTranslationUnit()

	toks := []token.Token{def, sym("pi"), assign, f64Tok("3.14159265", 3.14159265), semi}
	results := feed(t, p, toks)

	for i := 0; i < len(results)-1; i++ {
		if results[i] != nil {
			t.Fatalf("token %d: expected nil, got %#v", i, results[i])
		}
	}
	want := &ast.DefineExpr{LhsName: "pi", Rhs: &ast.Constant{Type: f64Type(t), Value: 3.14159265}}
	if !reflect.DeepEqual(results[len(results)-1], want) {
		t.Fatalf("got %#v, want %#v", results[len(results)-1], want)
	}
}

// scenario 3: a definition with a type ascription wraps the rhs in a
// ConvertExpr naming the ascribed destination type.
func TestDefineWithTypeAscription(t *testing.T) {
	p := reader.New()
	p.BeginTranslationUnit()

	toks := []token.Token{def, sym("x"), colon, sym("f64"), assign, f64Tok("1.0", 1.0), semi}
	results := feed(t, p, toks)

	want := &ast.DefineExpr{
		LhsName: "x",
		Rhs: &ast.ConvertExpr{
			Dest: f64Type(t),
			Arg:  &ast.Constant{Type: f64Type(t), Value: 1.0},
		},
	}
	got := results[len(results)-1]
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v, want %#v", got, want)
	}
}

// scenario 4: a parenthesized literal also only completes on the final
// ';', not on the closing ')'.
func TestParenthesizedLiteral(t *testing.T) {
	p := reader.New()
	p.BeginTranslationUnit()

	toks := []token.Token{lparen, f64Tok("1.234", 1.234), rparen, semi}
	results := feed(t, p, toks)

	for i := 0; i < len(results)-1; i++ {
		if results[i] != nil {
			t.Fatalf("token %d: expected nil before the final ';', got %#v", i, results[i])
		}
	}
	want := &ast.Constant{Type: f64Type(t), Value: 1.234}
	if !reflect.DeepEqual(results[len(results)-1], want) {
		t.Fatalf("got %#v, want %#v", results[len(results)-1], want)
	}
}

// scenario 5: a lambda definition. The same trailing ';' closes both the
// Lambda and the enclosing Define via the redelivery mechanism.
func TestDefineLambda(t *testing.T) {
	p := reader.New()
	p.BeginTranslationUnit()

	toks := []token.Token{
		def, sym("id"), assign,
		lambda, lparen, sym("x"), colon, sym("f64"), rparen,
		sym("x"), semi,
	}
	results := feed(t, p, toks)

	xVar := &ast.Variable{Name: "x", Type: f64Type(t)}
	want := &ast.DefineExpr{
		LhsName: "id",
		Rhs: &ast.Lambda{
			Name: "<anonymous>",
			Args: []*ast.Variable{xVar},
			Body: xVar,
		},
	}
	got := results[len(results)-1]
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v, want %#v", got, want)
	}
	if p.HasIncompleteExpr() {
		t.Fatalf("expected stack back to depth 1 after the definition closed")
	}
	if p.EnvDepth() != 0 {
		t.Fatalf("expected the lambda's scope to close along with it, env depth=%d", p.EnvDepth())
	}
}

// env stack discipline: PushEnv/PopEnv must balance across nested lambdas,
// not just a single one.
func TestEnvStackDisciplineNestedLambdas(t *testing.T) {
	p := reader.New()
	p.BeginTranslationUnit()

	// def k = lambda(x: f64) lambda(y: f64) x;
	toks := []token.Token{
		def, sym("k"), assign,
		lambda, lparen, sym("x"), colon, sym("f64"), rparen,
		lambda, lparen, sym("y"), colon, sym("f64"), rparen,
		sym("x"), semi,
	}

	for i, tk := range toks {
		if _, err := p.IncludeToken(tk); err != nil {
			t.Fatalf("token %d (%s): unexpected error: %v", i, tk.Kind, err)
		}
		if i < len(toks)-1 && p.EnvDepth() > 2 {
			t.Fatalf("token %d: env depth %d exceeds the two nested lambda scopes", i, p.EnvDepth())
		}
	}
	if p.EnvDepth() != 0 {
		t.Fatalf("expected both lambda scopes to close, env depth=%d", p.EnvDepth())
	}
	if p.HasIncompleteExpr() {
		t.Fatalf("expected stack back to depth 1 after the definition closed")
	}
}

// spec §7 kind 2: an unresolvable type name in a type ascription is a
// fatal, unrecoverable error naming the offending type.
func TestUnknownTypeNameIsFatal(t *testing.T) {
	p := reader.New()
	p.BeginTranslationUnit()

	toks := []token.Token{def, sym("x"), colon, sym("nosuchtype"), assign, f64Tok("1.0", 1.0), semi}

	var gotErr error
	for i, tk := range toks {
		_, err := p.IncludeToken(tk)
		if err != nil {
			gotErr = err
			break
		}
		_ = i
	}
	if gotErr == nil {
		t.Fatalf("expected an unknown-type-name error for %q", "nosuchtype")
	}
	msg := gotErr.Error()
	if !strings.Contains(msg, "nosuchtype") {
		t.Fatalf("error message %q does not mention the unresolved type name", msg)
	}
	if !strings.Contains(msg, "R002") {
		t.Fatalf("error message %q does not mention the unknown-type-name error code", msg)
	}

	// The parser is now dead.
	_, err2 := p.IncludeToken(semi)
	if err2 == nil || err2.Error() != msg {
		t.Fatalf("expected the parser to latch its first error, got %v", err2)
	}
}

// scenario 6: a token no reachable state admits is a fatal, unrecoverable
// error naming both the rejected token and the state that rejected it.
func TestUnexpectedTokenIsFatal(t *testing.T) {
	p := reader.New()
	p.BeginTranslationUnit()

	_, err := p.IncludeToken(colon)
	if err == nil {
		t.Fatalf("expected an error for a bare ':' at top level")
	}
	msg := err.Error()
	if !strings.Contains(msg, "Colon") {
		t.Fatalf("error message %q does not mention the token kind", msg)
	}
	if !strings.Contains(msg, "expect_toplevel_expression_sequence") {
		t.Fatalf("error message %q does not mention the rejecting state", msg)
	}

	// The parser is now dead: every later call returns the same error.
	_, err2 := p.IncludeToken(semi)
	if err2 == nil || err2.Error() != msg {
		t.Fatalf("expected the parser to latch its first error, got %v", err2)
	}
}

func TestEmptyStackBeforeBeginTranslationUnit(t *testing.T) {
	p := reader.New()
	_, err := p.IncludeToken(semi)
	if err == nil {
		t.Fatalf("expected an error delivering a token before BeginTranslationUnit")
	}
}

// Multiple top-level expressions in one translation unit each complete
// independently, with TopLevelSeq surviving between them.
func TestMultipleTopLevelExpressions(t *testing.T) {
	p := reader.New()
	p.BeginTranslationUnit()

	toks := []token.Token{
		f64Tok("1.0", 1.0), semi,
		f64Tok("2.0", 2.0), semi,
	}
	results := feed(t, p, toks)

	if results[1] == nil || results[3] == nil {
		t.Fatalf("expected both expressions to complete: %#v", results)
	}
	if results[0] != nil || results[2] != nil {
		t.Fatalf("expected no output before each ';': %#v", results)
	}
	if p.StackDepth() != 1 {
		t.Fatalf("expected TopLevelSeq alone on the stack between expressions, depth=%d", p.StackDepth())
	}
}

func TestCommaSeparatedFormals(t *testing.T) {
	p := reader.New()
	p.BeginTranslationUnit()

	toks := []token.Token{
		def, sym("add"), assign,
		lambda, lparen, sym("a"), colon, sym("f64"), comma, sym("b"), colon, sym("f64"), rparen,
		sym("a"), semi,
	}
	results := feed(t, p, toks)

	got, ok := results[len(results)-1].(*ast.DefineExpr)
	if !ok {
		t.Fatalf("expected a *ast.DefineExpr, got %#v", results[len(results)-1])
	}
	lam, ok := got.Rhs.(*ast.Lambda)
	if !ok {
		t.Fatalf("expected rhs to be a *ast.Lambda, got %#v", got.Rhs)
	}
	if len(lam.Args) != 2 || lam.Args[0].Name != "a" || lam.Args[1].Name != "b" {
		t.Fatalf("unexpected formals: %#v", lam.Args)
	}
}
