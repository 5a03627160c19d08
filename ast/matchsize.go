package ast

import "github.com/coregx/antirx/size"

// MatchSizes returns the (lo, hi) bounds on accepted-string length, or
// ok=false if a's language is empty.
func MatchSizes(a Rx) (lo, hi size.Size, ok bool) {
	a.n.onceSizes.Do(func() {
		a.n.sizesOK, a.n.sizesLo, a.n.sizesHi = computeMatchSizes(a)
	})
	return a.n.sizesLo, a.n.sizesHi, a.n.sizesOK
}

func computeMatchSizes(a Rx) (ok bool, lo, hi size.Size) {
	switch a.n.kind {
	case KindPhi:
		return false, size.Zero, size.Zero
	case KindEmpty:
		return true, size.Zero, size.Zero
	case KindLetter, KindLetters:
		return true, size.One, size.One
	case KindChoice:
		llo, lhi, lok := MatchSizes(Rx{a.n.l})
		rlo, rhi, rok := MatchSizes(Rx{a.n.r})
		switch {
		case !lok && !rok:
			return false, size.Zero, size.Zero
		case !lok:
			return true, rlo, rhi
		case !rok:
			return true, llo, lhi
		default:
			return true, llo.Min(rlo), lhi.Max(rhi)
		}
	case KindConcat:
		llo, lhi, lok := MatchSizes(Rx{a.n.l})
		rlo, rhi, rok := MatchSizes(Rx{a.n.r})
		if !lok || !rok {
			return false, size.Zero, size.Zero
		}
		return true, llo.Add(rlo), lhi.Add(rhi)
	case KindStar:
		_, shi, sok := MatchSizes(Rx{a.n.sub})
		if !sok {
			return true, size.Zero, size.Zero
		}
		return true, size.Zero, shi.Mul(size.Unbounded())
	case KindRepeat:
		slo, shi, sok := MatchSizes(Rx{a.n.sub})
		if !sok {
			if a.n.min > 0 {
				return false, size.Zero, size.Zero
			}
			return true, size.Zero, size.Zero
		}
		return true, slo.MulN(uint64(a.n.min)), shi.MulN(uint64(a.n.max))
	case KindVar:
		panicInvariant("MatchSizes: Var encountered outside resolve")
		return false, size.Zero, size.Zero
	default:
		panicInvariant("MatchSizes: unknown kind")
		return false, size.Zero, size.Zero
	}
}
