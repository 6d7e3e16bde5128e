package eval

import (
	"fmt"
	"io"

	"github.com/loxwalk/lox/ast"
	"github.com/loxwalk/lox/loxerr"
)

// Exec executes a single statement against env for effect, per
// spec.md §4.7, writing `print` output to stdout.
func Exec(stmt ast.Stmt, env Env, stdout io.Writer) (Env, *loxerr.Diagnostic) {
	switch n := stmt.(type) {
	case ast.ExprStmt:
		_, env, err := Eval(n.Expr, env)
		return env, err
	case ast.PrintStmt:
		value, env, err := Eval(n.Expr, env)
		if err != nil {
			return env, err
		}
		fmt.Fprintln(stdout, Format(value))
		return env, nil
	case ast.VarStmt:
		var value interface{}
		var err *loxerr.Diagnostic
		if n.Initializer != nil {
			value, env, err = Eval(n.Initializer, env)
			if err != nil {
				return env, err
			}
		}
		return env.Define(n.Name.Lexeme, value), nil
	case ast.BlockStmt:
		return execBlock(n, env, stdout)
	default:
		return env, loxerr.New(loxerr.Runtime, 0, "unknown statement node")
	}
}

// execBlock runs a block's statements in a child scope. The child's own
// frame (its block-local `var` declarations) is discarded on exit,
// success or error alike, so they never leak into the enclosing scope —
// the REDESIGN FLAG resolution spec.md §9 calls for, fixing the
// teacher's interpreter.go, whose executeBlock restores the enclosing
// *environment pointer but does so by mutation rather than scoping the
// child out structurally. Assignments made inside the block to a
// variable owned by an outer frame do propagate out: inner.parent holds
// that outer frame's latest state, rewritten by Env.Assign each time an
// ancestor binding changes.
func execBlock(block ast.BlockStmt, outer Env, stdout io.Writer) (Env, *loxerr.Diagnostic) {
	inner := outer.Child()
	for _, stmt := range block.Statements {
		var err *loxerr.Diagnostic
		inner, err = Exec(stmt, inner, stdout)
		if err != nil {
			return *inner.parent, err
		}
	}
	return *inner.parent, nil
}

// ExecProgram runs a full statement sequence in order, stopping at the
// first runtime error (spec.md §7: "Runtime ... immediately aborts
// program execution").
func ExecProgram(stmts []ast.Stmt, env Env, stdout io.Writer) (Env, *loxerr.Diagnostic) {
	for _, stmt := range stmts {
		var err *loxerr.Diagnostic
		env, err = Exec(stmt, env, stdout)
		if err != nil {
			return env, err
		}
	}
	return env, nil
}
