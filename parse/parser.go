// Package parse implements a recursive-descent parser over an
// immutable token cursor, grounded on the teacher's parser.go
// (consume/match/check/advance, synchronize, the precedence ladder
// expression -> assignment -> equality -> comparison -> term -> factor
// -> unary -> primary) but rewritten around value cursors and
// errors-as-data instead of panic/recover (spec.md Design Notes §9).
package parse

import (
	"github.com/loxwalk/lox/ast"
	"github.com/loxwalk/lox/loxerr"
	"github.com/loxwalk/lox/token"
)

// cursor is an immutable positional view over a token slice.
type cursor struct {
	tokens []token.Token
	pos    int
}

func newCursor(tokens []token.Token) cursor {
	return cursor{tokens: tokens}
}

func (c cursor) peek() token.Token {
	return c.tokens[c.pos]
}

func (c cursor) previous() token.Token {
	return c.tokens[c.pos-1]
}

func (c cursor) atEnd() bool {
	return c.peek().Kind == token.EOF
}

func (c cursor) advance() cursor {
	if !c.atEnd() {
		c.pos++
	}
	return c
}

func (c cursor) check(kind token.Kind) bool {
	if c.atEnd() {
		return false
	}
	return c.peek().Kind == kind
}

// match reports whether the current token is one of kinds and, if so,
// returns the cursor advanced past it.
func (c cursor) match(kinds ...token.Kind) (cursor, bool) {
	for _, k := range kinds {
		if c.check(k) {
			return c.advance(), true
		}
	}
	return c, false
}

func errAt(tok token.Token, message string) *loxerr.Diagnostic {
	where := " at '" + tok.Lexeme + "'"
	if tok.Kind == token.EOF {
		where = " at end"
	}
	return loxerr.At(loxerr.Syntax, tok.Line, where, message)
}

// consume requires the current token to be kind, returning the
// advanced cursor and the consumed token, or a diagnostic and the
// cursor advanced by one (the recovery step spec.md §4.4 specifies).
func (c cursor) consume(kind token.Kind, message string) (cursor, token.Token, *loxerr.Diagnostic) {
	if c.check(kind) {
		return c.advance(), c.peek(), nil
	}
	return c.advance(), token.Token{}, errAt(c.peek(), message)
}

// Parse parses a full program: declaration* EOF. It never stops at the
// first error — each failing declaration is skipped via synchronize so
// that later errors can still be reported (spec.md §4.4/§7).
func Parse(tokens []token.Token) ([]ast.Stmt, []*loxerr.Diagnostic) {
	c := newCursor(tokens)
	var stmts []ast.Stmt
	var errs []*loxerr.Diagnostic
	for !c.atEnd() {
		var stmt ast.Stmt
		var err *loxerr.Diagnostic
		stmt, c, err = declaration(c)
		if err != nil {
			errs = append(errs, err)
			c = synchronize(c)
			continue
		}
		stmts = append(stmts, stmt)
	}
	return stmts, errs
}

// ParseSingleExpression implements the driver's single-expression
// compatibility mode (spec.md §4.4): parse a bare expression from the
// start of tokens, ignoring any trailing content beyond it.
func ParseSingleExpression(tokens []token.Token) (ast.Expr, *loxerr.Diagnostic) {
	c := newCursor(tokens)
	expr, _, err := expression(c)
	return expr, err
}

// IsMissingSemicolon reports whether err is the "Expected ';'"-shaped
// diagnostic the single-expression fallback looks for.
func IsMissingSemicolon(err *loxerr.Diagnostic) bool {
	return err != nil && err.Message == "Expect ';' after expression."
}

func synchronize(c cursor) cursor {
	c = c.advance()
	for !c.atEnd() {
		if c.previous().Kind == token.SEMICOLON {
			return c
		}
		switch c.peek().Kind {
		case token.CLASS, token.FOR, token.FUN, token.IF, token.PRINT, token.RETURN, token.VAR, token.WHILE:
			return c
		}
		c = c.advance()
	}
	return c
}

func declaration(c cursor) (ast.Stmt, cursor, *loxerr.Diagnostic) {
	if next, ok := c.match(token.VAR); ok {
		return varDeclaration(next)
	}
	return statement(c)
}

func varDeclaration(c cursor) (ast.Stmt, cursor, *loxerr.Diagnostic) {
	c, name, err := c.consume(token.IDENTIFIER, "Expect variable name.")
	if err != nil {
		return nil, c, err
	}

	var initializer ast.Expr
	if next, ok := c.match(token.EQUAL); ok {
		c = next
		initializer, c, err = expression(c)
		if err != nil {
			return nil, c, err
		}
	}

	c, _, err = c.consume(token.SEMICOLON, "Expect ';' after variable declaration.")
	if err != nil {
		return nil, c, err
	}
	return ast.VarStmt{Name: name, Initializer: initializer}, c, nil
}

func statement(c cursor) (ast.Stmt, cursor, *loxerr.Diagnostic) {
	if next, ok := c.match(token.PRINT); ok {
		return printStatement(next)
	}
	if next, ok := c.match(token.LEFT_BRACE); ok {
		return block(next)
	}
	return expressionStatement(c)
}

func printStatement(c cursor) (ast.Stmt, cursor, *loxerr.Diagnostic) {
	expr, c, err := expression(c)
	if err != nil {
		return nil, c, err
	}
	c, _, err = c.consume(token.SEMICOLON, "Expect ';' after value.")
	if err != nil {
		return nil, c, err
	}
	return ast.PrintStmt{Expr: expr}, c, nil
}

func block(c cursor) (ast.Stmt, cursor, *loxerr.Diagnostic) {
	var stmts []ast.Stmt
	for !c.check(token.RIGHT_BRACE) && !c.atEnd() {
		var stmt ast.Stmt
		var err *loxerr.Diagnostic
		stmt, c, err = declaration(c)
		if err != nil {
			return nil, c, err
		}
		stmts = append(stmts, stmt)
	}
	c, _, err := c.consume(token.RIGHT_BRACE, "Expect '}' after block.")
	if err != nil {
		return nil, c, err
	}
	return ast.BlockStmt{Statements: stmts}, c, nil
}

func expressionStatement(c cursor) (ast.Stmt, cursor, *loxerr.Diagnostic) {
	expr, c, err := expression(c)
	if err != nil {
		return nil, c, err
	}
	c, _, err = c.consume(token.SEMICOLON, "Expect ';' after expression.")
	if err != nil {
		return nil, c, err
	}
	return ast.ExprStmt{Expr: expr}, c, nil
}

func expression(c cursor) (ast.Expr, cursor, *loxerr.Diagnostic) {
	return assignment(c)
}

// assignment is right-associative via recursion and validates that its
// left-hand side is a Variable only after parsing the full right-hand
// side (spec.md §4.4's "Assignment target validation": the RHS has
// already been parsed, so an invalid target never double-consumes it).
func assignment(c cursor) (ast.Expr, cursor, *loxerr.Diagnostic) {
	expr, c, err := equality(c)
	if err != nil {
		return nil, c, err
	}

	next, ok := c.match(token.EQUAL)
	if !ok {
		return expr, c, nil
	}
	equalsTok := next.previous()

	value, next, err := assignment(next)
	if err != nil {
		return nil, next, err
	}

	if v, ok := expr.(ast.Variable); ok {
		return ast.Assignment{Name: v.Name, Value: value}, next, nil
	}
	return nil, next, errAt(equalsTok, "Invalid assignment target")
}

func equality(c cursor) (ast.Expr, cursor, *loxerr.Diagnostic) {
	return leftAssocBinary(c, comparison, token.BANG_EQUAL, token.EQUAL_EQUAL)
}

func comparison(c cursor) (ast.Expr, cursor, *loxerr.Diagnostic) {
	return leftAssocBinary(c, term, token.GREATER, token.GREATER_EQUAL, token.LESS, token.LESS_EQUAL)
}

func term(c cursor) (ast.Expr, cursor, *loxerr.Diagnostic) {
	return leftAssocBinary(c, factor, token.PLUS, token.MINUS)
}

func factor(c cursor) (ast.Expr, cursor, *loxerr.Diagnostic) {
	return leftAssocBinary(c, unary, token.SLASH, token.STAR)
}

// leftAssocBinary implements `next ( (kinds) next )*` iteratively, per
// spec.md §4.4's "enforced by iterative consumption (while not foldr)".
func leftAssocBinary(c cursor, next func(cursor) (ast.Expr, cursor, *loxerr.Diagnostic), kinds ...token.Kind) (ast.Expr, cursor, *loxerr.Diagnostic) {
	expr, c, err := next(c)
	if err != nil {
		return nil, c, err
	}

	for {
		nc, ok := c.match(kinds...)
		if !ok {
			break
		}
		operator := nc.previous()
		var right ast.Expr
		right, nc, err = next(nc)
		if err != nil {
			return nil, nc, err
		}
		expr = ast.Binary{Left: expr, Op: operator, Right: right}
		c = nc
	}

	return expr, c, nil
}

func unary(c cursor) (ast.Expr, cursor, *loxerr.Diagnostic) {
	if next, ok := c.match(token.BANG, token.MINUS); ok {
		operator := next.previous()
		right, next, err := unary(next)
		if err != nil {
			return nil, next, err
		}
		return ast.Unary{Op: operator, Right: right}, next, nil
	}
	return primary(c)
}

func primary(c cursor) (ast.Expr, cursor, *loxerr.Diagnostic) {
	switch {
	case c.check(token.FALSE):
		return ast.BooleanLiteral{Value: false}, c.advance(), nil
	case c.check(token.TRUE):
		return ast.BooleanLiteral{Value: true}, c.advance(), nil
	case c.check(token.NIL):
		return ast.NilLiteral{}, c.advance(), nil
	case c.check(token.NUMBER):
		tok := c.peek()
		return ast.NumberLiteral{Value: tok.Literal.(float64), Lexeme: tok.Lexeme}, c.advance(), nil
	case c.check(token.STRING):
		tok := c.peek()
		return ast.StringLiteral{Value: tok.Literal.(string)}, c.advance(), nil
	case c.check(token.IDENTIFIER):
		return ast.Variable{Name: c.peek()}, c.advance(), nil
	case c.check(token.LEFT_PAREN):
		next := c.advance()
		inner, next, err := expression(next)
		if err != nil {
			return nil, next, err
		}
		next, _, err = next.consume(token.RIGHT_PAREN, "Expect ')' after expression.")
		if err != nil {
			return nil, next, err
		}
		return ast.Grouping{Inner: inner}, next, nil
	}

	return nil, c.advance(), errAt(c.peek(), "Expect expression.")
}
