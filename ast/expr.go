// Package ast defines the tagged-variant expression and statement
// trees produced by the parser. Each variant is a small struct
// implementing a sealed marker method; call sites dispatch with a
// type switch rather than the teacher's Accept(visitor) double
// dispatch (see SPEC_FULL.md §3 and spec.md Design Notes §9).
package ast

import "github.com/loxwalk/lox/token"

// Expr is any expression node. exprNode is unexported so only types in
// this package can implement Expr, sealing the variant set.
type Expr interface {
	exprNode()
}

// NumberLiteral is a parsed numeric constant. Lexeme is the literal's
// source spelling; the printer renders Value, not Lexeme.
type NumberLiteral struct {
	Value  float64
	Lexeme string
}

// StringLiteral is a parsed string constant (quotes already stripped).
type StringLiteral struct {
	Value string
}

// BooleanLiteral is the literal `true` or `false`.
type BooleanLiteral struct {
	Value bool
}

// NilLiteral is the literal `nil`.
type NilLiteral struct{}

// Grouping is a parenthesised expression; it always owns exactly one child.
type Grouping struct {
	Inner Expr
}

// Unary is a prefix operator application: `-x` or `!x`.
type Unary struct {
	Op    token.Token
	Right Expr
}

// Binary is an infix operator application.
type Binary struct {
	Left  Expr
	Op    token.Token
	Right Expr
}

// Variable is a reference to a named binding.
type Variable struct {
	Name token.Token
}

// Assignment assigns Value to the already-declared binding Name.
type Assignment struct {
	Name  token.Token
	Value Expr
}

func (NumberLiteral) exprNode()  {}
func (StringLiteral) exprNode()  {}
func (BooleanLiteral) exprNode() {}
func (NilLiteral) exprNode()     {}
func (Grouping) exprNode()       {}
func (Unary) exprNode()          {}
func (Binary) exprNode()         {}
func (Variable) exprNode()       {}
func (Assignment) exprNode()     {}
