// Package eval walks an ast.Expr/ast.Stmt tree against an Env,
// producing values or runtime diagnostics, grounded on the teacher's
// interpreter.go (operator switch tables) and env.go
// (define/get/assign), rewritten around a persistent Env and
// errors-as-data (spec.md §4.6/§4.7, Design Notes §9) instead of the
// teacher's mutable *environment plus panic(runtimeError{}).
package eval

import "github.com/loxwalk/lox/token"

// Env is an immutable, lexically scoped mapping from name to value.
// Every mutation (Define, Assign) returns a new Env; the receiver is
// left untouched, so callers that still hold the old value keep seeing
// the old bindings (spec.md §3 "Environment").
type Env struct {
	parent *Env
	values map[string]interface{}
}

// NewEnv returns an empty, top-level environment.
func NewEnv() Env {
	return Env{}
}

// Child returns a new environment nested inside e, used to enter a
// block scope (spec.md §4.7 / the REDESIGN FLAG in spec.md §9).
func (e Env) Child() Env {
	parent := e
	return Env{parent: &parent}
}

// Define binds name to value in e's own frame (not any ancestor),
// shadowing an outer binding of the same name if one exists.
func (e Env) Define(name string, value interface{}) Env {
	values := make(map[string]interface{}, len(e.values)+1)
	for k, v := range e.values {
		values[k] = v
	}
	values[name] = value
	return Env{parent: e.parent, values: values}
}

// Get looks up name starting at e's own frame and walking outward.
func (e Env) Get(name token.Token) (interface{}, bool) {
	if v, ok := e.values[name.Lexeme]; ok {
		return v, true
	}
	if e.parent != nil {
		return e.parent.Get(name)
	}
	return nil, false
}

// Assign rebinds name to value in whichever frame already defines it
// (spec.md §4.6 "Assignment"), returning the new environment and
// whether an existing binding was found.
func (e Env) Assign(name token.Token, value interface{}) (Env, bool) {
	if _, ok := e.values[name.Lexeme]; ok {
		return e.Define(name.Lexeme, value), true
	}
	if e.parent != nil {
		newParent, ok := e.parent.Assign(name, value)
		if !ok {
			return e, false
		}
		return Env{parent: &newParent, values: e.values}, true
	}
	return e, false
}
