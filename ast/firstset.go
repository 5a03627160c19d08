package ast

import "github.com/coregx/antirx/letterset"

// FirstSet returns the list of pairwise disjoint LetterSets covering
// exactly the characters that may begin some string a accepts. Each
// returned class is a congruence class: every
// character within one class drives an identical partial-derivative
// step. The result is memoized on a's hash-consed node.
func FirstSet(a Rx) []letterset.LetterSet {
	a.n.onceFirst.Do(func() {
		a.n.first = computeFirstSet(a)
	})
	return a.n.first
}

func computeFirstSet(a Rx) []letterset.LetterSet {
	switch a.n.kind {
	case KindPhi, KindEmpty:
		return nil
	case KindLetter:
		return []letterset.LetterSet{letterset.Single(a.n.ch)}
	case KindLetters:
		return []letterset.LetterSet{a.n.set}
	case KindStar, KindRepeat:
		return FirstSet(Rx{a.n.sub})
	case KindConcat:
		left, right := Rx{a.n.l}, Rx{a.n.r}
		if !AcceptsEmpty(left) {
			return FirstSet(left)
		}
		return vennSets(FirstSet(left), FirstSet(right))
	case KindChoice:
		return vennSets(FirstSet(Rx{a.n.l}), FirstSet(Rx{a.n.r}))
	case KindVar:
		panicInvariant("FirstSet: Var encountered outside resolve")
		return nil
	default:
		panicInvariant("FirstSet: unknown kind")
		return nil
	}
}

// vennSets partitions A ∪ B via letterset.Venn and keeps only the
// character-set values, discarding the Left/Right/Both tags.
func vennSets(a, b []letterset.LetterSet) []letterset.LetterSet {
	pieces := letterset.Venn(a, b)
	out := make([]letterset.LetterSet, 0, len(pieces))
	for _, p := range pieces {
		out = append(out, p.Set)
	}
	return out
}
