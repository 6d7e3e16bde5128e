// Package printer pretty-prints an ast.Expr/ast.Stmt tree as a
// parenthesised, Lisp-like S-expression, in the teacher's
// ast_printer.go idiom (parenthesize), converted to a type switch.
package printer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/loxwalk/lox/ast"
)

// Expr renders a single expression tree.
func Expr(e ast.Expr) string {
	switch n := e.(type) {
	case ast.NumberLiteral:
		return formatNumberLiteral(n.Value)
	case ast.StringLiteral:
		return n.Value
	case ast.BooleanLiteral:
		if n.Value {
			return "true"
		}
		return "false"
	case ast.NilLiteral:
		return "nil"
	case ast.Grouping:
		return parenthesize("group", Expr(n.Inner))
	case ast.Unary:
		return parenthesize(n.Op.Lexeme, Expr(n.Right))
	case ast.Binary:
		return parenthesize(n.Op.Lexeme, Expr(n.Left), Expr(n.Right))
	case ast.Variable:
		return n.Name.Lexeme
	case ast.Assignment:
		return parenthesize("= "+n.Name.Lexeme, Expr(n.Value))
	default:
		return fmt.Sprintf("<unknown expr %T>", e)
	}
}

// Stmt renders a single statement tree.
func Stmt(s ast.Stmt) string {
	switch n := s.(type) {
	case ast.ExprStmt:
		return parenthesize("expr", Expr(n.Expr))
	case ast.PrintStmt:
		return parenthesize("print", Expr(n.Expr))
	case ast.VarStmt:
		if n.Initializer == nil {
			return parenthesize("var "+n.Name.Lexeme, "nil")
		}
		return parenthesize("var "+n.Name.Lexeme, Expr(n.Initializer))
	case ast.BlockStmt:
		parts := make([]string, len(n.Statements))
		for i, stmt := range n.Statements {
			parts[i] = Stmt(stmt)
		}
		return parenthesize("block", parts...)
	default:
		return fmt.Sprintf("<unknown stmt %T>", s)
	}
}

func parenthesize(name string, parts ...string) string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(name)
	for _, p := range parts {
		b.WriteByte(' ')
		b.WriteString(p)
	}
	b.WriteByte(')')
	return b.String()
}

// formatNumberLiteral renders a number the way the `parse` command's
// expected output (`1 + 2 * 3` prints as `(+ 1.0 (* 2.0 3.0))`)
// requires: always showing a decimal point, the
// classic double-to-string form, distinct from eval.Format's trimmed
// rule used by `print`/`evaluate` output.
func formatNumberLiteral(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
