// Command schematica reads a source file one token at a time and prints
// each top-level expression as it completes.
package main

import (
	"fmt"
	"os"

	"github.com/xo-lang/schematica/internal/ast"
	"github.com/xo-lang/schematica/internal/lexer"
	"github.com/xo-lang/schematica/internal/reader"
	"github.com/xo-lang/schematica/internal/token"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			if os.Getenv("DEBUG") == "1" {
				panic(r)
			}
			fmt.Fprintf(os.Stderr, "internal error: %v\n", r)
			fmt.Fprintln(os.Stderr, "this is a bug. please report it.")
			os.Exit(1)
		}
	}()

	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <source-file>\n", os.Args[0])
		os.Exit(1)
	}

	src, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	if err := run(string(src), os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(src string, out *os.File) error {
	l := lexer.New(src)
	p := reader.New()
	p.BeginTranslationUnit()

	for {
		tk, err := l.NextToken()
		if err != nil {
			return err
		}

		if tk.Kind == token.EOF {
			if p.HasIncompleteExpr() {
				return fmt.Errorf("unexpected end of input: translation unit has an incomplete expression")
			}
			return nil
		}

		expr, err := p.IncludeToken(tk)
		if err != nil {
			return err
		}
		if expr != nil {
			fmt.Fprintln(out, describe(expr))
		}
	}
}

func describe(e ast.Expression) string {
	switch v := e.(type) {
	case *ast.Constant:
		return fmt.Sprintf("Constant(%s, %v)", v.Type, v.Value)
	case *ast.Variable:
		return fmt.Sprintf("Variable(%s: %s)", v.Name, v.Type)
	case *ast.UnresolvedVariable:
		return fmt.Sprintf("UnresolvedVariable(%s)", v.Name)
	case *ast.DefineExpr:
		return fmt.Sprintf("Define(%s = %s)", v.LhsName, describe(v.Rhs))
	case *ast.ConvertExpr:
		return fmt.Sprintf("Convert(%s, %s)", v.Dest, describe(v.Arg))
	case *ast.Lambda:
		args := make([]string, len(v.Args))
		for i, a := range v.Args {
			args[i] = fmt.Sprintf("%s: %s", a.Name, a.Type)
		}
		return fmt.Sprintf("Lambda(%s)(%v) -> %s", v.Name, args, describe(v.Body))
	default:
		return fmt.Sprintf("%#v", e)
	}
}
