package eval

import (
	"github.com/loxwalk/lox/ast"
	"github.com/loxwalk/lox/loxerr"
	"github.com/loxwalk/lox/token"
)

// Eval evaluates a single expression against env, per spec.md §4.6.
// It returns the resulting environment regardless of which operand, if
// either, produced an error — binary evaluates its left operand first
// (yielding env1), then its right against env1 (yielding env2), and
// env2 is returned even when the right side is what failed.
func Eval(expr ast.Expr, env Env) (interface{}, Env, *loxerr.Diagnostic) {
	switch n := expr.(type) {
	case ast.NumberLiteral:
		return n.Value, env, nil
	case ast.StringLiteral:
		return n.Value, env, nil
	case ast.BooleanLiteral:
		return n.Value, env, nil
	case ast.NilLiteral:
		return nil, env, nil
	case ast.Grouping:
		return Eval(n.Inner, env)
	case ast.Unary:
		return evalUnary(n, env)
	case ast.Binary:
		return evalBinary(n, env)
	case ast.Variable:
		v, ok := env.Get(n.Name)
		if !ok {
			return nil, env, undefinedVariable(n.Name)
		}
		return v, env, nil
	case ast.Assignment:
		value, env, err := Eval(n.Value, env)
		if err != nil {
			return nil, env, err
		}
		env, ok := env.Assign(n.Name, value)
		if !ok {
			return nil, env, undefinedVariable(n.Name)
		}
		return value, env, nil
	default:
		return nil, env, loxerr.New(loxerr.Runtime, 0, "unknown expression node")
	}
}

func undefinedVariable(name token.Token) *loxerr.Diagnostic {
	return loxerr.New(loxerr.Runtime, name.Line, "Undefined variable '"+name.Lexeme+"'")
}

// IsTruthy implements spec.md §4.6's truthiness rule: nil and false
// are falsy, everything else (including 0 and "") is truthy.
func IsTruthy(value interface{}) bool {
	if value == nil {
		return false
	}
	if b, ok := value.(bool); ok {
		return b
	}
	return true
}

func evalUnary(n ast.Unary, env Env) (interface{}, Env, *loxerr.Diagnostic) {
	right, env, err := Eval(n.Right, env)
	if err != nil {
		return nil, env, err
	}

	switch n.Op.Kind {
	case token.MINUS:
		num, ok := right.(float64)
		if !ok {
			return nil, env, loxerr.New(loxerr.Runtime, n.Op.Line, "Operand must be a number for unary operator '-'")
		}
		return -num, env, nil
	case token.BANG:
		return !IsTruthy(right), env, nil
	default:
		return nil, env, loxerr.New(loxerr.Runtime, n.Op.Line, "unknown unary operator")
	}
}

func evalBinary(n ast.Binary, env Env) (interface{}, Env, *loxerr.Diagnostic) {
	left, env, err := Eval(n.Left, env)
	if err != nil {
		return nil, env, err
	}
	right, env, err := Eval(n.Right, env)
	if err != nil {
		return nil, env, err
	}

	switch n.Op.Kind {
	case token.PLUS:
		if lf, ok := left.(float64); ok {
			if rf, ok := right.(float64); ok {
				return lf + rf, env, nil
			}
		}
		if ls, ok := left.(string); ok {
			if rs, ok := right.(string); ok {
				return ls + rs, env, nil
			}
		}
		return nil, env, loxerr.New(loxerr.Runtime, n.Op.Line, "Operands must be two numbers or two strings")
	case token.MINUS:
		lf, rf, ok := numberOperands(left, right)
		if !ok {
			return nil, env, loxerr.New(loxerr.Runtime, n.Op.Line, "Operands must be numbers")
		}
		return lf - rf, env, nil
	case token.STAR:
		lf, rf, ok := numberOperands(left, right)
		if !ok {
			return nil, env, loxerr.New(loxerr.Runtime, n.Op.Line, "Operands must be numbers")
		}
		return lf * rf, env, nil
	case token.SLASH:
		lf, rf, ok := numberOperands(left, right)
		if !ok {
			return nil, env, loxerr.New(loxerr.Runtime, n.Op.Line, "Operands must be numbers")
		}
		if rf == 0.0 {
			return nil, env, loxerr.New(loxerr.Runtime, n.Op.Line, "Division by zero")
		}
		return lf / rf, env, nil
	case token.GREATER:
		lf, rf, ok := numberOperands(left, right)
		if !ok {
			return nil, env, loxerr.New(loxerr.Runtime, n.Op.Line, "Operands must be numbers")
		}
		return lf > rf, env, nil
	case token.GREATER_EQUAL:
		lf, rf, ok := numberOperands(left, right)
		if !ok {
			return nil, env, loxerr.New(loxerr.Runtime, n.Op.Line, "Operands must be numbers")
		}
		return lf >= rf, env, nil
	case token.LESS:
		lf, rf, ok := numberOperands(left, right)
		if !ok {
			return nil, env, loxerr.New(loxerr.Runtime, n.Op.Line, "Operands must be numbers")
		}
		return lf < rf, env, nil
	case token.LESS_EQUAL:
		lf, rf, ok := numberOperands(left, right)
		if !ok {
			return nil, env, loxerr.New(loxerr.Runtime, n.Op.Line, "Operands must be numbers")
		}
		return lf <= rf, env, nil
	case token.EQUAL_EQUAL:
		return valuesEqual(left, right), env, nil
	case token.BANG_EQUAL:
		return !valuesEqual(left, right), env, nil
	default:
		return nil, env, loxerr.New(loxerr.Runtime, n.Op.Line, "unknown binary operator")
	}
}

func numberOperands(left, right interface{}) (float64, float64, bool) {
	lf, ok := left.(float64)
	if !ok {
		return 0, 0, false
	}
	rf, ok := right.(float64)
	if !ok {
		return 0, 0, false
	}
	return lf, rf, true
}

// valuesEqual implements spec.md §4.6's equality rule: same-variant
// value equality for Number/String/Boolean, Nil equals only Nil, and
// different variants are always unequal.
func valuesEqual(left, right interface{}) bool {
	if left == nil || right == nil {
		return left == nil && right == nil
	}
	switch l := left.(type) {
	case float64:
		r, ok := right.(float64)
		return ok && l == r
	case string:
		r, ok := right.(string)
		return ok && l == r
	case bool:
		r, ok := right.(bool)
		return ok && l == r
	default:
		return false
	}
}
