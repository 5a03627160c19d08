package ast

// AcceptsEmpty decides whether a's language contains the empty string.
// The result is memoized on a's hash-consed node since it is a pure
// structural function.
func AcceptsEmpty(a Rx) bool {
	a.n.onceNullable.Do(func() {
		a.n.nullable = computeNullable(a)
	})
	return a.n.nullable
}

func computeNullable(a Rx) bool {
	switch a.n.kind {
	case KindPhi, KindLetter, KindLetters:
		return false
	case KindEmpty, KindStar:
		return true
	case KindRepeat:
		return a.n.min == 0 || AcceptsEmpty(Rx{a.n.sub})
	case KindChoice:
		return AcceptsEmpty(Rx{a.n.l}) || AcceptsEmpty(Rx{a.n.r})
	case KindConcat:
		return AcceptsEmpty(Rx{a.n.l}) && AcceptsEmpty(Rx{a.n.r})
	case KindVar:
		panicInvariant("AcceptsEmpty: Var encountered outside resolve")
		return false
	default:
		panicInvariant("AcceptsEmpty: unknown kind")
		return false
	}
}

// IsPhi reports whether a's language is provably empty by strict
// structural traversal: Phi anywhere inside a Concat
// propagates, and both sides of a Choice must themselves be Phi. Because
// every term in this package is built through smart constructors that
// already collapse Phi eagerly (Concat/Choice/Star/Repeat all annihilate
// or absorb Phi at construction time), IsPhi(a) is equivalent to
// a.Kind() == KindPhi for any term built through this package's public
// constructors; the full traversal exists to stay correct for terms a
// caller might assemble by hand from lower-level pieces.
func IsPhi(a Rx) bool {
	a.n.onceIsPhi.Do(func() {
		a.n.isPhiVal = computeIsPhi(a)
	})
	return a.n.isPhiVal
}

func computeIsPhi(a Rx) bool {
	switch a.n.kind {
	case KindPhi:
		return true
	case KindEmpty, KindLetter, KindLetters:
		return false
	case KindStar:
		return false // Star(Phi) already normalizes to Empty
	case KindRepeat:
		return IsPhi(Rx{a.n.sub})
	case KindChoice:
		return IsPhi(Rx{a.n.l}) && IsPhi(Rx{a.n.r})
	case KindConcat:
		return IsPhi(Rx{a.n.l}) || IsPhi(Rx{a.n.r})
	case KindVar:
		panicInvariant("IsPhi: Var encountered outside resolve")
		return false
	default:
		panicInvariant("IsPhi: unknown kind")
		return false
	}
}

// IsEmpty reports whether a's language is exactly {""} by strict
// structural traversal: every leaf must be Empty, and the
// tree must contain no Phi, Letter, Star, Repeat, or Var.
func IsEmpty(a Rx) bool {
	a.n.onceIsEmpty.Do(func() {
		a.n.isEmptyVal = computeIsEmpty(a)
	})
	return a.n.isEmptyVal
}

func computeIsEmpty(a Rx) bool {
	switch a.n.kind {
	case KindEmpty:
		return true
	case KindPhi, KindLetter, KindLetters, KindStar, KindRepeat:
		return false
	case KindChoice:
		return IsEmpty(Rx{a.n.l}) && IsEmpty(Rx{a.n.r})
	case KindConcat:
		return IsEmpty(Rx{a.n.l}) && IsEmpty(Rx{a.n.r})
	case KindVar:
		panicInvariant("IsEmpty: Var encountered outside resolve")
		return false
	default:
		panicInvariant("IsEmpty: unknown kind")
		return false
	}
}

// IsSingleLetter reports whether a is exactly the single-character
// Letter variant — a single letter, not a class and not a compound
// term whose language happens to contain one string.
func IsSingleLetter(a Rx) bool { return a.n.kind == KindLetter }
