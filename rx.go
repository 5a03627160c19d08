package antirx

import (
	"errors"

	"github.com/coregx/antirx/ast"
	"github.com/coregx/antirx/decide"
	"github.com/coregx/antirx/letterset"
	"github.com/coregx/antirx/rxsyntax"
	"github.com/coregx/antirx/setalg"
	"github.com/coregx/antirx/size"
)

// Rx is a value in the language-set algebra: an immutable, hash-consed
// regular-expression term. Two Rx values compare equal (==) exactly
// when they are the same interned term, which hash-consing makes the
// same as being structurally identical however they were built, so
// identity comparison is O(1). Use Equiv to compare by language rather
// than by term.
type Rx = ast.Rx

// Phi is the empty language, matching no string.
func Phi() Rx { return ast.Phi() }

// Empty is the language containing only the empty string.
func Empty() Rx { return ast.Empty() }

// Dot is the language of any single character over the full alphabet:
// Letters(Full).
func Dot() Rx { return ast.Letters(letterset.Full) }

// Universe is the language of all strings over the full alphabet:
// Star(Dot()).
func Universe() Rx { return setalg.Universe() }

// Letter is the single-character language {c}.
func Letter(c rune) Rx { return ast.Letter(c) }

// Range is the language of any character in [lo, hi] inclusive.
func Range(lo, hi rune) Rx {
	return ast.Letters(letterset.New(letterset.Range{Lo: lo, Hi: hi}))
}

// Letters is the language of any character in s.
func Letters(s letterset.LetterSet) Rx { return ast.Letters(s) }

// Literal is the language containing exactly the one string s.
func Literal(s string) Rx {
	r := ast.Empty()
	for _, c := range s {
		r = ast.Concat(r, ast.Letter(c))
	}
	return r
}

// Parse compiles a standard regexp pattern (regexp/syntax's Perl
// grammar) into an Rx, delegating to the Parser collaborator
// (package rxsyntax). Anchors, word boundaries, and backreferences
// are rejected since they have no meaning in a pure language-set
// algebra; capture groups are accepted and flattened away.
func Parse(pattern string) (Rx, error) {
	r, err := rxsyntax.Parse(pattern)
	if err != nil {
		return Rx{}, &Error{Kind: ErrParse, Msg: "parse", Err: err}
	}
	return r, nil
}

// Choice is r1 ∪ r2 (also written r1 | r2).
func Choice(r1, r2 Rx) Rx { return ast.Choice(r1, r2) }

// Concat is the concatenation r1 · r2.
func Concat(r1, r2 Rx) Rx { return ast.Concat(r1, r2) }

// Star is the Kleene closure r*.
func Star(r Rx) Rx { return ast.Star(r) }

// Pow is r repeated exactly k times; a negative k yields Empty.
func Pow(r Rx, k int) Rx { return ast.Pow(r, k) }

// Repeat is r repeated between m and n times inclusive. It returns an
// *Error with Kind == ErrInvalidArgument if m < 0 or n < m.
func Repeat(r Rx, m, n int) (Rx, error) {
	out, err := ast.Repeat(r, m, n)
	if err != nil {
		return Rx{}, fromInvariant(err)
	}
	return out, nil
}

// Intersect is r1 ∩ r2.
func Intersect(r1, r2 Rx) Rx { return setalg.Intersect(r1, r2) }

// Difference is r1 − r2.
func Difference(r1, r2 Rx) Rx { return setalg.Difference(r1, r2) }

// Xor is the symmetric difference r1 △ r2.
func Xor(r1, r2 Rx) Rx { return setalg.Xor(r1, r2) }

// Complement is Universe − r.
func Complement(r Rx) Rx { return setalg.Complement(r) }

// Accepts reports whether r's language contains s.
func Accepts(r Rx, s string) bool { return ast.Accepts(r, s) }

// Rejects is !Accepts(r, s).
func Rejects(r Rx, s string) bool { return ast.Rejects(r, s) }

// Equiv decides whether r1 and r2 denote the same language.
func Equiv(r1, r2 Rx) bool { return decide.Equiv(r1, r2) }

// PartialCompare decides the partial order between r1 and r2: LT if
// r1's language is a proper subset of r2's, GT for the reverse, EQ for
// equivalent languages, Incomparable if neither contains the other.
func PartialCompare(r1, r2 Rx) decide.Ordering { return decide.PartialCompare(r1, r2) }

// Less is r1 < r2: r1 a proper subset of r2.
func Less(r1, r2 Rx) bool { return PartialCompare(r1, r2) == decide.LT }

// LessEq is r1 ≤ r2: r1 a (possibly improper) subset of r2.
func LessEq(r1, r2 Rx) bool {
	o := PartialCompare(r1, r2)
	return o == decide.LT || o == decide.EQ
}

// Greater is r1 > r2: r1 a proper superset of r2.
func Greater(r1, r2 Rx) bool { return PartialCompare(r1, r2) == decide.GT }

// GreaterEq is r1 ≥ r2: r1 a (possibly improper) superset of r2.
func GreaterEq(r1, r2 Rx) bool {
	o := PartialCompare(r1, r2)
	return o == decide.GT || o == decide.EQ
}

// SubsetOf is LessEq(r1, r2).
func SubsetOf(r1, r2 Rx) bool { return LessEq(r1, r2) }

// SupersetOf is GreaterEq(r1, r2).
func SupersetOf(r1, r2 Rx) bool { return GreaterEq(r1, r2) }

// ProperSubsetOf is Less(r1, r2).
func ProperSubsetOf(r1, r2 Rx) bool { return Less(r1, r2) }

// ProperSupersetOf is Greater(r1, r2).
func ProperSupersetOf(r1, r2 Rx) bool { return Greater(r1, r2) }

// FirstSet is the set of characters that can begin a non-empty string
// in r's language.
func FirstSet(r Rx) []letterset.LetterSet { return ast.FirstSet(r) }

// MatchSizes returns the [lo, hi] bounds on the length of strings in
// r's language, and false if r's language is empty.
func MatchSizes(r Rx) (lo, hi Size, ok bool) { return ast.MatchSizes(r) }

// AcceptsEmpty reports whether r's language contains the empty string.
func AcceptsEmpty(r Rx) bool { return ast.AcceptsEmpty(r) }

// IsPhi reports whether r's language is empty.
func IsPhi(r Rx) bool { return ast.IsPhi(r) }

// IsEmpty reports whether r's language is exactly {""}.
func IsEmpty(r Rx) bool { return ast.IsEmpty(r) }

// IsSingle reports whether r is exactly a single-letter term.
func IsSingle(r Rx) bool { return ast.IsSingleLetter(r) }

// Repr renders r in a textual form close to standard regex syntax:
// "∅" for Phi, `""` for Empty, escaped characters for
// letters, bracket classes for Letters, and flattened |/concat chains.
func Repr(r Rx) string { return ast.Repr(r) }

// GoString renders r as a debug form showing its constructor tree
// (e.g. "Concat(Letter('a'), Star(Letter('b')))").
func GoString(r Rx) string { return ast.GoString(r) }

// Canonical computes a representative term for r's language: every
// term equivalent to r produces the identical Canonical result.
func Canonical(r Rx) Rx { return setalg.Canonical(r) }

// IntersectBounded, DifferenceBounded, XorBounded, and CanonicalBounded
// enforce cfg.MaxEnvPairs on the corresponding unbounded operation. A
// non-positive MaxEnvPairs leaves the operation unbounded.

// boundedErr wraps a failure from a Bounded operation. A blown
// resource budget and an escaped internal invariant both surface as
// ErrInternalInvariant, but with a message naming what actually
// happened; errors.Is against the underlying sentinel still works
// through Unwrap.
func boundedErr(opName string, err error) *Error {
	if errors.Is(err, setalg.ErrEnvLimitExceeded) || errors.Is(err, decide.ErrEnvLimitExceeded) {
		return &Error{Kind: ErrInternalInvariant, Msg: opName + " exceeded resource budget", Err: err}
	}
	return fromInvariant(err)
}

// IntersectBounded is Intersect under cfg's resource guard.
func IntersectBounded(r1, r2 Rx, cfg EngineConfig) (Rx, error) {
	out, err := setalg.IntersectBounded(r1, r2, cfg.MaxEnvPairs)
	if err != nil {
		return Rx{}, boundedErr("intersect", err)
	}
	return out, nil
}

// DifferenceBounded is Difference under cfg's resource guard.
func DifferenceBounded(r1, r2 Rx, cfg EngineConfig) (Rx, error) {
	out, err := setalg.DifferenceBounded(r1, r2, cfg.MaxEnvPairs)
	if err != nil {
		return Rx{}, boundedErr("difference", err)
	}
	return out, nil
}

// XorBounded is Xor under cfg's resource guard.
func XorBounded(r1, r2 Rx, cfg EngineConfig) (Rx, error) {
	out, err := setalg.XorBounded(r1, r2, cfg.MaxEnvPairs)
	if err != nil {
		return Rx{}, boundedErr("xor", err)
	}
	return out, nil
}

// CanonicalBounded is Canonical under cfg's resource guard.
func CanonicalBounded(r Rx, cfg EngineConfig) (Rx, error) {
	out, err := setalg.CanonicalBounded(r, cfg.MaxEnvPairs)
	if err != nil {
		return Rx{}, boundedErr("canonical", err)
	}
	return out, nil
}

// EquivBounded is Equiv under cfg's resource guard.
func EquivBounded(r1, r2 Rx, cfg EngineConfig) (bool, error) {
	out, err := decide.EquivBounded(r1, r2, cfg.MaxEnvPairs)
	if err != nil {
		return false, boundedErr("equiv", err)
	}
	return out, nil
}

// PartialCompareBounded is PartialCompare under cfg's resource guard.
func PartialCompareBounded(r1, r2 Rx, cfg EngineConfig) (decide.Ordering, error) {
	out, err := decide.PartialCompareBounded(r1, r2, cfg.MaxEnvPairs)
	if err != nil {
		return decide.Incomparable, boundedErr("partialCompare", err)
	}
	return out, nil
}

// Size is the extended-natural type used by MatchSizes.
type Size = size.Size
