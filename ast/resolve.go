package ast

// Resolve closes a not-yet-finished expression e built by package setalg
// that may mention Var(k) — Vars of outer activations are left alone as
// ordinary base terms — into a Var(k)-free term, via Arden's rule: split
// e into (R, B) such that e ≡ R·Var(k) + B, then e resolves to R*·B.
func Resolve(e Rx, k int) Rx {
	r, b := split(e, k)
	return Concat(Star(r), b)
}

// split performs the recursive descent behind Resolve: Var(k)
// contributes (Empty, Phi) — the recursive path with no base term;
// Var(j) for j != k contributes unchanged to B; Concat and Choice lift
// their children's splits via the stated Cartesian-product/componentwise
// formulas; every other term is atomic, contributing (Phi, {term}).
func split(e Rx, k int) (r, b Rx) {
	switch e.n.kind {
	case KindVar:
		if e.n.varID == k {
			return Empty(), Phi()
		}
		return Phi(), e
	case KindConcat:
		r1, b1 := split(Rx{e.n.l}, k)
		r2, b2 := split(Rx{e.n.r}, k)
		r = Choice(Choice(Concat(r1, r2), Concat(r1, b2)), Concat(b1, r2))
		b = Concat(b1, b2)
		return r, b
	case KindChoice:
		r1, b1 := split(Rx{e.n.l}, k)
		r2, b2 := split(Rx{e.n.r}, k)
		return Choice(r1, r2), Choice(b1, b2)
	default:
		return Phi(), e
	}
}
