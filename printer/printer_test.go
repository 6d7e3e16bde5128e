package printer

import (
	"testing"

	"github.com/loxwalk/lox/lex"
	"github.com/loxwalk/lox/parse"
)

func TestExprPrintsLiteralsWithDecimalPoint(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   string
	}{
		{"precedence", "1 + 2 * 3", "(+ 1.0 (* 2.0 3.0))"},
		{"integral literal keeps trailing .0", "42", "42.0"},
		{"fractional literal", "10.40", "10.4"},
		{"grouping", "(1)", "(group 1.0)"},
		{"unary", "-5", "(- 5.0)"},
		{"string literal", `"hi"`, "hi"},
		{"boolean", "true", "true"},
		{"nil", "nil", "nil"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, errs := lex.Scan(tt.source)
			if len(errs) != 0 {
				t.Fatalf("lex.Scan: unexpected errors: %v", errs)
			}
			expr, err := parse.ParseSingleExpression(tokens)
			if err != nil {
				t.Fatalf("ParseSingleExpression: %v", err)
			}
			if got := Expr(expr); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExprIsDeterministic(t *testing.T) {
	// Printing is a pure function of the tree: parsing the same source
	// twice and printing both trees must produce identical output.
	sources := []string{"1 + 2 * 3", "-(1 + 2)", `"a" + "b" == "ab"`, "1 < 2", "!true"}
	for _, source := range sources {
		tokens, errs := lex.Scan(source)
		if len(errs) != 0 {
			t.Fatalf("lex.Scan(%q): %v", source, errs)
		}
		expr1, err := parse.ParseSingleExpression(tokens)
		if err != nil {
			t.Fatalf("ParseSingleExpression(%q): %v", source, err)
		}
		expr2, err := parse.ParseSingleExpression(tokens)
		if err != nil {
			t.Fatalf("ParseSingleExpression(%q): %v", source, err)
		}
		if got1, got2 := Expr(expr1), Expr(expr2); got1 != got2 {
			t.Errorf("source %q: %q != %q", source, got1, got2)
		}
	}
}

func TestStmtPrintsBlock(t *testing.T) {
	tokens, errs := lex.Scan("{ var a = 1; print a; }")
	if len(errs) != 0 {
		t.Fatalf("lex.Scan: unexpected errors: %v", errs)
	}
	stmts, parseErrs := parse.Parse(tokens)
	if len(parseErrs) != 0 {
		t.Fatalf("parse.Parse: unexpected errors: %v", parseErrs)
	}
	if len(stmts) != 1 {
		t.Fatalf("got %d statements, want 1", len(stmts))
	}
	want := "(block (var a 1.0) (print a))"
	if got := Stmt(stmts[0]); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
