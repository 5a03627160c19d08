// Package ast implements the Rx term algebra: the nine-variant AST,
// its invariant-enforcing smart constructors, and the derivative
// engine (nullability, firstSet, matchSizes, partial derivatives,
// membership) that the decide and setalg packages build on.
//
// Terms are hash-consed: structurally equal terms share one *node, so
// Equal is pointer comparison and a term can be used directly as a map
// key by identity.
package ast

// Kind identifies which of the nine AST variants a term is.
type Kind uint8

const (
	// KindPhi is the empty language, ∅.
	KindPhi Kind = iota
	// KindEmpty is the language {""}.
	KindEmpty
	// KindLetter is a single-character language {c}.
	KindLetter
	// KindLetters is a language {c : c ∈ S} for |S| >= 2.
	KindLetters
	// KindChoice is r1 ∪ r2.
	KindChoice
	// KindConcat is {xy : x ∈ r1, y ∈ r2}.
	KindConcat
	// KindStar is r*.
	KindStar
	// KindRepeat is r repeated between m and n times inclusive.
	KindRepeat
	// KindVar is a recursion marker used only during resolve (§4.10).
	KindVar
)

func (k Kind) String() string {
	switch k {
	case KindPhi:
		return "Phi"
	case KindEmpty:
		return "Empty"
	case KindLetter:
		return "Letter"
	case KindLetters:
		return "Letters"
	case KindChoice:
		return "Choice"
	case KindConcat:
		return "Concat"
	case KindStar:
		return "Star"
	case KindRepeat:
		return "Repeat"
	case KindVar:
		return "Var"
	default:
		return "Kind(?)"
	}
}
