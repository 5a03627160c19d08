// Package antirx is a decision engine for classical regular languages,
// built around Antimirov partial derivatives over a term algebra
// enriched with character-class transitions.
//
// Where a conventional regex engine answers "does this string match,
// and where" on one pattern at a time, antirx treats patterns as
// values in an algebra of languages: two expressions can be compared
// for equivalence or containment, combined with intersection,
// difference, and XOR, and reduced to a canonical form — all without
// ever scanning an input string. There is no capture, no anchor, no
// lookaround, and no compiled matcher; everything is a pure function
// of the term values involved.
//
// # Construction
//
//	a := antirx.Letter('a')
//	digits := antirx.Range('0', '9')
//	r, err := antirx.Parse(`a(bc)*d{2,4}`)
//
// # Algebra
//
//	ab := antirx.Concat(a, b)
//	aOrB := antirx.Choice(a, b)
//	aStar := antirx.Star(a)
//	both := antirx.Intersect(r, s)
//	onlyR := antirx.Difference(r, s)
//	sym := antirx.Xor(r, s)
//	not := antirx.Complement(r)
//
// # Decision
//
//	antirx.Accepts(r, "abcbcd")
//	antirx.Equiv(r, s)
//	antirx.PartialCompare(r, s) // LT, EQ, GT, or Incomparable
//
// # Introspection
//
//	antirx.Repr(r)      // "a(bc)*(d){2,4}"
//	antirx.Canonical(r) // a representative term for r's language
//
// The algorithms are grounded in Antimirov's partial derivatives and a
// coinductive bisimulation over pairs of terms (for Equiv and
// PartialCompare) and Arden's rule (for the set-algebra combinators
// and Canonical), each closing a recursive derivative expansion into a
// finite term via a fresh recursion variable.
package antirx
