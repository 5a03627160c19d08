package decide

import (
	"github.com/coregx/antirx/ast"
	"github.com/coregx/antirx/letterset"
	"github.com/coregx/antirx/size"
)

// Ordering is the result of PartialCompare: a four-valued verdict on
// the containment lattice, with Incomparable playing the role NaN
// plays for floating-point comparison.
type Ordering uint8

const (
	// LT means lhs is a proper subset of rhs.
	LT Ordering = iota
	// EQ means lhs and rhs are equivalent.
	EQ
	// GT means lhs is a proper superset of rhs.
	GT
	// Incomparable means neither side contains the other.
	Incomparable
)

func (o Ordering) String() string {
	switch o {
	case LT:
		return "<"
	case EQ:
		return "="
	case GT:
		return ">"
	case Incomparable:
		return "incomparable"
	default:
		return "Ordering(?)"
	}
}

// acc joins an accumulated Ordering with the next comparison's
// result: agreeing directions stick, opposing directions collapse to
// Incomparable, and EQ is the identity.
func acc(x, y Ordering) Ordering {
	if x == Incomparable || y == Incomparable {
		return Incomparable
	}
	switch x {
	case LT:
		if y == GT {
			return Incomparable
		}
		return LT
	case GT:
		if y == LT {
			return Incomparable
		}
		return GT
	default: // EQ
		return y
	}
}

// sizeRange bundles a MatchSizes result for rangeSubset.
type sizeRange struct {
	lo, hi size.Size
	ok     bool
}

// rangeSubset compares two match-size ranges: equal
// ranges are EQ; a strict subset is LT, a strict superset is GT, a
// partial overlap is Incomparable. None (ok=false) compares as the
// empty range, which is a subset of everything.
func rangeSubset(a, b sizeRange) Ordering {
	switch {
	case !a.ok && !b.ok:
		return EQ
	case !a.ok:
		return LT
	case !b.ok:
		return GT
	}
	if a.lo.Equal(b.lo) && a.hi.Equal(b.hi) {
		return EQ
	}
	aSubB := b.lo.LessEq(a.lo) && a.hi.LessEq(b.hi)
	bSubA := a.lo.LessEq(b.lo) && b.hi.LessEq(a.hi)
	switch {
	case aSubB:
		return LT
	case bSubA:
		return GT
	default:
		return Incomparable
	}
}

// PartialCompare decides the partial order between lhs and rhs: EQ
// for equivalent languages, LT for a proper subset, GT for a proper
// superset, Incomparable for neither.
func PartialCompare(lhs, rhs ast.Rx) Ordering {
	env := make(map[pairKey]bool)
	return compareStep(lhs, rhs, env, nil)
}

// PartialCompareBounded is PartialCompare with EquivBounded's
// resource guard.
func PartialCompareBounded(lhs, rhs ast.Rx, maxPairs int) (res Ordering, err error) {
	defer ast.Recover(&err)
	env := make(map[pairKey]bool)
	lim := &limiter{max: maxPairs}
	res = compareStep(lhs, rhs, env, lim)
	if lim.exceeded {
		return Incomparable, ErrEnvLimitExceeded
	}
	return res, nil
}

func compareStep(lhs, rhs ast.Rx, env map[pairKey]bool, lim *limiter) Ordering {
	if ast.IsPhi(lhs) {
		if ast.IsPhi(rhs) {
			return EQ
		}
		return LT
	}
	if ast.IsPhi(rhs) {
		return GT
	}
	if ast.IsEmpty(lhs) {
		switch {
		case ast.IsEmpty(rhs):
			return EQ
		case ast.AcceptsEmpty(rhs):
			return LT
		default:
			return Incomparable
		}
	}
	if ast.IsEmpty(rhs) {
		switch {
		case ast.AcceptsEmpty(lhs):
			return GT
		default:
			return Incomparable
		}
	}

	key := pairKey{lhs, rhs}
	if env[key] {
		return EQ // coinduction: assume equivalence on a revisited pair
	}
	if lim.overBudget(len(env)) {
		return EQ
	}

	var res Ordering
	switch {
	case ast.AcceptsEmpty(lhs) == ast.AcceptsEmpty(rhs):
		res = EQ
	case ast.AcceptsEmpty(lhs):
		res = GT
	default:
		res = LT
	}

	llo, lhi, lok := ast.MatchSizes(lhs)
	rlo, rhi, rok := ast.MatchSizes(rhs)
	res = acc(res, rangeSubset(sizeRange{llo, lhi, lok}, sizeRange{rlo, rhi, rok}))
	if res == Incomparable {
		return Incomparable
	}

	pieces := letterset.Venn(ast.FirstSet(lhs), ast.FirstSet(rhs))
	var both []letterset.LetterSet
	for _, p := range pieces {
		switch p.Tag {
		case letterset.Left:
			res = acc(res, GT)
		case letterset.Right:
			res = acc(res, LT)
		case letterset.Both:
			both = append(both, p.Set)
		}
		if res == Incomparable {
			return Incomparable
		}
	}

	env[key] = true
	for _, cs := range both {
		c, ok := cs.Min()
		if !ok {
			continue
		}
		res = acc(res, compareStep(ast.Deriv(lhs, c), ast.Deriv(rhs, c), env, lim))
		if res == Incomparable {
			return Incomparable
		}
	}
	return res
}
