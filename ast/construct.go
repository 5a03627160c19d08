package ast

import (
	"github.com/coregx/antirx/letterset"
)

var (
	phiTerm   = wrap(&node{kind: KindPhi})
	emptyTerm = wrap(&node{kind: KindEmpty})
)

// Phi is the empty language, ∅. It matches no string.
func Phi() Rx { return phiTerm }

// Empty is the language {""}: matches only the empty string.
func Empty() Rx { return emptyTerm }

// Letter is the single-character language {c}.
func Letter(c rune) Rx { return wrap(&node{kind: KindLetter, ch: c}) }

// Letters is the language {c : c ∈ s}. An empty s normalizes to Phi
// and a singleton s normalizes to Letter; only |s| >= 2 produces an
// actual KindLetters node.
func Letters(s letterset.LetterSet) Rx {
	if s.IsEmpty() {
		return Phi()
	}
	if c, ok := s.SingleValue(); ok {
		return Letter(c)
	}
	return wrap(&node{kind: KindLetters, set: s})
}

// Choice is r1 ∪ r2, normalized so that Phi is the identity, equal
// operands collapse to one, and two
// letter-ish leaves fuse into a single Letters via set union.
func Choice(x, y Rx) Rx {
	if isPhiNode(x) {
		return y
	}
	if isPhiNode(y) {
		return x
	}
	if Equal(x, y) {
		return x
	}
	if isLetterish(x) && isLetterish(y) {
		return Letters(letterSetOf(x).Union(letterSetOf(y)))
	}
	return wrap(&node{kind: KindChoice, l: x.n, r: y.n})
}

// Concat is {xy : x ∈ r1, y ∈ r2}, normalized so that Phi annihilates
// and Empty is the identity.
func Concat(x, y Rx) Rx {
	if isPhiNode(x) || isPhiNode(y) {
		return Phi()
	}
	if isEmptyNode(x) {
		return y
	}
	if isEmptyNode(y) {
		return x
	}
	return wrap(&node{kind: KindConcat, l: x.n, r: y.n})
}

// Star is r*, normalized so that Phi* and Empty* both collapse to
// Empty and Star is idempotent (Star(Star(r)) = Star(r)).
func Star(x Rx) Rx {
	if isPhiNode(x) || isEmptyNode(x) {
		return Empty()
	}
	if x.n.kind == KindStar {
		return x
	}
	return wrap(&node{kind: KindStar, sub: x.n})
}

// Repeat is r repeated between m and n times inclusive. It fails with
// InvalidArgument if m < 0 or n < m. n = 0 collapses to Empty, and
// Repeat of Phi or Empty collapses to Phi or Empty respectively, so a
// KindRepeat node is only ever built for n >= 1 on a term that is
// neither Phi nor Empty.
func Repeat(x Rx, m, n int) (Rx, error) {
	if m < 0 || n < m {
		return Rx{}, &InvariantError{
			Kind: KindInvalidArgument,
			Msg:  "repeat: require 0 <= m <= n",
		}
	}
	if n == 0 {
		return Empty(), nil
	}
	if isPhiNode(x) {
		return Phi(), nil
	}
	if isEmptyNode(x) {
		return Empty(), nil
	}
	return wrap(&node{kind: KindRepeat, sub: x.n, min: m, max: n}), nil
}

// Pow is r repeated exactly k times. A negative k yields Empty.
func Pow(x Rx, k int) Rx {
	if k < 0 {
		return Empty()
	}
	r, err := Repeat(x, k, k)
	if err != nil {
		// k >= 0 so m == n == k always satisfies 0 <= m <= n.
		panic(err)
	}
	return r
}

// Var is a recursion marker used only by the intersection, difference,
// XOR, and canonicalization algorithms in package setalg while they
// build a not-yet-resolved derivative-automaton expression; Resolve
// eliminates every Var before the expression escapes that algorithm.
// There is no way to reach a Var term through the public antirx API.
func Var(id int) Rx { return wrap(&node{kind: KindVar, varID: id}) }
