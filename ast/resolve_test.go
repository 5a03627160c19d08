package ast

import "testing"

func TestResolveArdenClosureProducesStar(t *testing.T) {
	// e = "" | a.Var(1)   solves (Arden) to a*
	e := Choice(Empty(), Concat(Letter('a'), Var(1)))
	got := Resolve(e, 1)
	want := Star(Letter('a'))
	if !Equal(got, want) {
		t.Errorf("Resolve(\"\"|a.Var(1), 1) = %s, want %s", Repr(got), Repr(want))
	}
}

func TestResolveNoRecursionIsIdentity(t *testing.T) {
	// e has no Var(1) at all: R = Phi, B = e, so Resolve = Empty . e = e.
	e := Letter('a')
	got := Resolve(e, 1)
	if !Equal(got, e) {
		t.Errorf("Resolve(a, 1) = %s, want a", Repr(got))
	}
}

func TestResolveOuterVarUntouched(t *testing.T) {
	// Var(2) is an outer activation's placeholder; resolving k=1 must
	// leave it as an ordinary base term.
	e := Choice(Var(2), Concat(Letter('a'), Var(1)))
	got := Resolve(e, 1)
	// R = a, B = Var(2); resolves to a* . Var(2)
	want := Concat(Star(Letter('a')), Var(2))
	if !Equal(got, want) {
		t.Errorf("Resolve = %s, want %s", Repr(got), Repr(want))
	}
}
