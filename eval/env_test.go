package eval

import (
	"testing"

	"github.com/loxwalk/lox/token"
)

func name(lexeme string) token.Token {
	return token.Token{Kind: token.IDENTIFIER, Lexeme: lexeme}
}

func TestEnvDefineAndGet(t *testing.T) {
	env := NewEnv().Define("a", 1.0)
	v, ok := env.Get(name("a"))
	if !ok || v != 1.0 {
		t.Fatalf("Get(a): got %v, %v", v, ok)
	}
	if _, ok := env.Get(name("b")); ok {
		t.Fatalf("Get(b): expected not found")
	}
}

func TestEnvDefineIsImmutable(t *testing.T) {
	env1 := NewEnv().Define("a", 1.0)
	env2 := env1.Define("a", 2.0)

	if v, _ := env1.Get(name("a")); v != 1.0 {
		t.Errorf("env1 mutated: got %v, want 1", v)
	}
	if v, _ := env2.Get(name("a")); v != 2.0 {
		t.Errorf("env2: got %v, want 2", v)
	}
}

func TestEnvChildShadowing(t *testing.T) {
	outer := NewEnv().Define("a", 1.0)
	inner := outer.Child().Define("a", 2.0)

	if v, _ := inner.Get(name("a")); v != 2.0 {
		t.Errorf("inner shadow: got %v, want 2", v)
	}
	if v, _ := outer.Get(name("a")); v != 1.0 {
		t.Errorf("outer unaffected: got %v, want 1", v)
	}
}

func TestEnvChildSeesOuterBinding(t *testing.T) {
	outer := NewEnv().Define("a", 1.0)
	inner := outer.Child()
	v, ok := inner.Get(name("a"))
	if !ok || v != 1.0 {
		t.Fatalf("inner.Get(a): got %v, %v", v, ok)
	}
}

func TestEnvAssignExistingBinding(t *testing.T) {
	env := NewEnv().Define("a", 1.0)
	env, ok := env.Assign(name("a"), 2.0)
	if !ok {
		t.Fatalf("Assign: expected ok")
	}
	if v, _ := env.Get(name("a")); v != 2.0 {
		t.Errorf("got %v, want 2", v)
	}
}

func TestEnvAssignUndefinedFails(t *testing.T) {
	env := NewEnv()
	_, ok := env.Assign(name("a"), 2.0)
	if ok {
		t.Fatalf("Assign: expected not found")
	}
}

func TestEnvAssignThroughChildReachesOuterFrame(t *testing.T) {
	outer := NewEnv().Define("a", 1.0)
	inner := outer.Child()

	inner, ok := inner.Assign(name("a"), 2.0)
	if !ok {
		t.Fatalf("Assign: expected ok")
	}
	if v, _ := inner.Get(name("a")); v != 2.0 {
		t.Errorf("inner after assign: got %v, want 2", v)
	}
	if v, _ := inner.parent.Get(name("a")); v != 2.0 {
		t.Errorf("assign through child did not update the outer frame: got %v, want 2", v)
	}
}
