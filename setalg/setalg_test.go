package setalg

import (
	"testing"

	"github.com/coregx/antirx/ast"
	"github.com/coregx/antirx/decide"
	"github.com/coregx/antirx/internal/asttest"
)

func rangeRx(lo, hi rune) ast.Rx { return asttest.Cls(lo, hi) }

func TestIntersectBaseCases(t *testing.T) {
	a := ast.Letter('a')
	if got := Intersect(ast.Phi(), a); !ast.IsPhi(got) {
		t.Errorf("Intersect(phi, a) = %s, want phi", ast.Repr(got))
	}
	if got := Intersect(ast.Empty(), ast.Star(a)); !ast.IsEmpty(got) {
		t.Errorf("Intersect(empty, a*) = %s, want empty", ast.Repr(got))
	}
	if got := Intersect(ast.Empty(), a); !ast.IsPhi(got) {
		t.Errorf("Intersect(empty, a) = %s, want phi", ast.Repr(got))
	}
}

func TestIntersectOfOverlappingRanges(t *testing.T) {
	// [a-c] ∩ [b-d] ≡ [b-c]
	ac := rangeRx('a', 'c')
	bd := rangeRx('b', 'd')
	got := Intersect(ac, bd)
	want := rangeRx('b', 'c')
	if !decide.Equiv(got, want) {
		t.Errorf("Intersect([a-c],[b-d]) = %s, want equiv to %s", ast.Repr(got), ast.Repr(want))
	}
}

func TestIntersectStarWithLargerStar(t *testing.T) {
	// a* ∩ (a|b)* ≡ a*
	aStar := ast.Star(ast.Letter('a'))
	abStar := ast.Star(ast.Choice(ast.Letter('a'), ast.Letter('b')))
	got := Intersect(aStar, abStar)
	if !decide.Equiv(got, aStar) {
		t.Errorf("Intersect(a*, (a|b)*) = %s, want equiv to a*", ast.Repr(got))
	}
}

func TestIntersectSharedResidueAcrossBranches(t *testing.T) {
	// ac|bc reaches the residue pair (c, c) from two different first
	// classes. The second branch must re-expand the pair rather than
	// pick up a placeholder whose activation has already closed.
	r := ast.Choice(asttest.Lit("ac"), asttest.Lit("bc"))
	got := Intersect(r, r)
	if !decide.Equiv(got, r) {
		t.Errorf("Intersect(r, r) = %s, want equiv to %s", ast.Repr(got), ast.Repr(r))
	}
}

func TestDifferenceBaseCases(t *testing.T) {
	a := ast.Letter('a')
	if got := Difference(ast.Phi(), a); !ast.IsPhi(got) {
		t.Errorf("Difference(phi, a) = %s, want phi", ast.Repr(got))
	}
	if got := Difference(a, ast.Phi()); !ast.Equal(got, a) {
		t.Errorf("Difference(a, phi) = %s, want a", ast.Repr(got))
	}
}

func TestDifferenceRemovesOverlap(t *testing.T) {
	// [a-c] - [b-d] ≡ [a]
	ac := rangeRx('a', 'c')
	bd := rangeRx('b', 'd')
	got := Difference(ac, bd)
	want := ast.Letter('a')
	if !decide.Equiv(got, want) {
		t.Errorf("Difference([a-c],[b-d]) = %s, want equiv to a", ast.Repr(got))
	}
}

func TestDifferenceWithSelfIsPhi(t *testing.T) {
	aStar := ast.Star(ast.Letter('a'))
	got := Difference(aStar, aStar)
	if !decide.Equiv(got, ast.Phi()) {
		t.Errorf("Difference(a*, a*) = %s, want equiv to phi", ast.Repr(got))
	}
}

func TestXorBaseCases(t *testing.T) {
	a := ast.Letter('a')
	if got := Xor(ast.Phi(), a); !ast.Equal(got, a) {
		t.Errorf("Xor(phi, a) = %s, want a", ast.Repr(got))
	}
	if got := Xor(a, ast.Phi()); !ast.Equal(got, a) {
		t.Errorf("Xor(a, phi) = %s, want a", ast.Repr(got))
	}
}

func TestXorIsSymmetricDifference(t *testing.T) {
	// [a-c] ^ [b-d] ≡ [a] | [d]
	ac := rangeRx('a', 'c')
	bd := rangeRx('b', 'd')
	got := Xor(ac, bd)
	want := ast.Choice(ast.Letter('a'), ast.Letter('d'))
	if !decide.Equiv(got, want) {
		t.Errorf("Xor([a-c],[b-d]) = %s, want equiv to a|d", ast.Repr(got))
	}
}

func TestXorOfSelfIsPhi(t *testing.T) {
	r := ast.Concat(ast.Letter('a'), ast.Star(ast.Letter('b')))
	if got := Xor(r, r); !decide.Equiv(got, ast.Phi()) {
		t.Errorf("Xor(r, r) = %s, want equiv to phi", ast.Repr(got))
	}
}

func TestComplementOfUniverseIsPhi(t *testing.T) {
	got := Complement(Universe())
	if !decide.Equiv(got, ast.Phi()) {
		t.Errorf("Complement(Universe) = %s, want equiv to phi", ast.Repr(got))
	}
}

func TestComplementTwiceIsIdentity(t *testing.T) {
	r := ast.Star(ast.Letter('a'))
	got := Complement(Complement(r))
	if !decide.Equiv(got, r) {
		t.Errorf("~~a* = %s, want equiv to a*", ast.Repr(got))
	}
}

func TestCanonicalFidelity(t *testing.T) {
	r := ast.Star(ast.Letter('a'))
	got := Canonical(r)
	if !decide.Equiv(got, r) {
		t.Errorf("Canonical(a*) = %s not equivalent to a*", ast.Repr(got))
	}
}

func TestCanonicalAgreesOnEquivalentInputs(t *testing.T) {
	aStar := ast.Star(ast.Letter('a'))
	aa := ast.Concat(ast.Letter('a'), ast.Letter('a'))
	alt := ast.Choice(ast.Star(aa), ast.Concat(ast.Star(aa), ast.Letter('a')))

	c1 := Canonical(aStar)
	c2 := Canonical(alt)
	if !ast.Equal(c1, c2) {
		t.Errorf("Canonical(a*) = %s, Canonical(alt) = %s: want structurally equal",
			ast.Repr(c1), ast.Repr(c2))
	}
}

func TestCanonicalOfPhi(t *testing.T) {
	if got := Canonical(ast.Phi()); !ast.IsPhi(got) {
		t.Errorf("Canonical(phi) = %s, want phi", ast.Repr(got))
	}
}
