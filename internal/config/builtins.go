// Package config is the single source of truth for built-in type names and
// reserved keywords recognized by the lexer and type registry.
package config

// BuiltinTypeNames are the primitive type names the type registry resolves
// without consulting any user-registered alias.
var BuiltinTypeNames = []string{"f64", "f32", "i64", "i32", "i16"}

// IsBuiltinTypeName reports whether name is one of BuiltinTypeNames.
func IsBuiltinTypeName(name string) bool {
	for _, n := range BuiltinTypeNames {
		if n == name {
			return true
		}
	}
	return false
}

// ReservedKeywords names constructs present in the token set but not yet
// recognized by any reader ExprState. Every state rejects these tokens as
// unexpected input; they are listed here so lexer and diagnostics code has
// one place to point to instead of repeating the list inline.
var ReservedKeywords = []string{"if", "let", "in", "end", "decl"}

// AnonymousLambdaName is the placeholder name assigned to every Lambda
// node, matching the original reader's lack of name inference for lambda
// expressions.
const AnonymousLambdaName = "<anonymous>"
