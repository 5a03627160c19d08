package ast

import "sync"

// termSet is an insertion-ordered, hash-consed-identity-deduplicated set
// of terms — an Antimirov derivative's set of residues, made cheap by
// the package's hash-consing: membership is a plain map lookup
// on the Rx value itself (a single-pointer struct, so it is directly
// comparable and hashable).
type termSet struct {
	seen map[Rx]bool
	list []Rx
}

func newTermSet() *termSet { return &termSet{seen: make(map[Rx]bool)} }

func (s *termSet) add(r Rx) {
	if s.seen[r] {
		return
	}
	s.seen[r] = true
	s.list = append(s.list, r)
}

// PartialDeriv returns the Antimirov partial derivative of a with
// respect to the character c: a set of terms whose union denotes the
// Brzozowski derivative, with subterms shared so fixed-point algorithms
// over it terminate on finitely many distinct residues.
func PartialDeriv(a Rx, c rune) []Rx {
	out := newTermSet()
	partialDerivInto(a, c, out)
	return out.list
}

func partialDerivInto(a Rx, c rune, out *termSet) {
	switch a.n.kind {
	case KindPhi, KindEmpty:
		return
	case KindLetter:
		if a.n.ch == c {
			out.add(Empty())
		}
	case KindLetters:
		if a.n.set.Contains(c) {
			out.add(Empty())
		}
	case KindChoice:
		partialDerivInto(Rx{a.n.l}, c, out)
		partialDerivInto(Rx{a.n.r}, c, out)
	case KindConcat:
		left, right := Rx{a.n.l}, Rx{a.n.r}
		leftDerivs := newTermSet()
		partialDerivInto(left, c, leftDerivs)
		for _, d := range leftDerivs.list {
			if !IsPhi(d) {
				out.add(Concat(d, right))
			}
		}
		if AcceptsEmpty(left) {
			partialDerivInto(right, c, out)
		}
	case KindStar:
		sub := Rx{a.n.sub}
		subDerivs := newTermSet()
		partialDerivInto(sub, c, subDerivs)
		for _, d := range subDerivs.list {
			if !IsPhi(d) {
				out.add(Concat(d, a))
			}
		}
	case KindRepeat:
		sub := Rx{a.n.sub}
		subDerivs := newTermSet()
		partialDerivInto(sub, c, subDerivs)
		var nonPhi []Rx
		for _, d := range subDerivs.list {
			if !IsPhi(d) {
				nonPhi = append(nonPhi, d)
			}
		}
		if len(nonPhi) == 0 {
			return
		}
		restMin := a.n.min - 1
		if restMin < 0 {
			restMin = 0
		}
		rest, err := Repeat(sub, restMin, a.n.max-1)
		if err != nil {
			panicInvariant("PartialDeriv: Repeat recursion produced invalid bounds")
		}
		for _, d := range nonPhi {
			out.add(Concat(d, rest))
		}
	case KindVar:
		panicInvariant("PartialDeriv: Var encountered outside resolve")
	default:
		panicInvariant("PartialDeriv: unknown kind")
	}
}

// derivKey memoizes Deriv per (term, character). The cache is shared
// across calls and goroutines; Store is idempotent because Deriv is a
// pure function of interned inputs, so a racing double-compute settles
// on the same Rx value.
type derivKey struct {
	n *node
	c rune
}

var derivCache sync.Map // derivKey -> Rx

// Deriv is the ordinary (Brzozowski) derivative of a with respect to c:
// the union, via Choice-reduction, of PartialDeriv(a, c).
func Deriv(a Rx, c rune) Rx {
	key := derivKey{a.n, c}
	if v, ok := derivCache.Load(key); ok {
		return v.(Rx)
	}
	parts := PartialDeriv(a, c)
	result := Phi()
	for _, p := range parts {
		result = Choice(result, p)
	}
	derivCache.Store(key, result)
	return result
}
