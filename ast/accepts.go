package ast

// Accepts reports whether a's language contains s. It
// feeds s's runes left to right, tracking the set of Antimirov residues
// reached so far (starting from {a}) and accepting iff any residue
// accepts the empty string once s is exhausted. Residues are
// deduplicated by hash-consed identity between steps (a BFS over a
// set, not a list), which this package's interning makes nearly free.
func Accepts(a Rx, s string) bool {
	frontier := newTermSet()
	frontier.add(a)
	for _, c := range s {
		next := newTermSet()
		for _, r := range frontier.list {
			for _, d := range PartialDeriv(r, c) {
				if !IsPhi(d) {
					next.add(d)
				}
			}
		}
		if len(next.list) == 0 {
			return false
		}
		frontier = next
	}
	for _, r := range frontier.list {
		if AcceptsEmpty(r) {
			return true
		}
	}
	return false
}

// Rejects is the negation of Accepts.
func Rejects(a Rx, s string) bool { return !Accepts(a, s) }
