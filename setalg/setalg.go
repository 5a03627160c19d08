// Package setalg implements the derivative-driven set-algebra
// combinators over regular languages: intersection, difference, XOR,
// and canonicalization. Each builds a small on-the-fly automaton over
// pairs of terms — one state per visited pair, one fresh ast.Var
// placeholder per state — and closes the recursion with ast.Resolve
// (Arden's rule).
package setalg

import (
	"errors"

	"github.com/coregx/antirx/ast"
	"github.com/coregx/antirx/letterset"
)

// ErrEnvLimitExceeded is returned by the Bounded variants when the
// derivative-automaton construction would expand more term pairs than
// the caller's budget.
var ErrEnvLimitExceeded = errors.New("setalg: derivative automaton exceeded configured pair limit")

// limiter caps how many pairs/terms a single top-level call may expand.
// A nil *limiter (or maxPairs <= 0) means unbounded.
type limiter struct {
	max      int
	visited  int
	exceeded bool
}

func (l *limiter) overBudget() bool {
	if l == nil || l.max <= 0 {
		return false
	}
	l.visited++
	if l.visited > l.max {
		l.exceeded = true
		return true
	}
	return false
}

// pairKey identifies an ordered pair of terms visited during a
// combine() run. ast.Rx is a single-pointer struct, so pairKey is
// directly usable as a map key.
type pairKey struct {
	a, b ast.Rx
}

// op bundles the pieces that vary per operator:
// the base cases that short-circuit before a state is even allocated,
// which Venn pieces to keep, and what (if anything) to add to the
// construction as the pair's nullability residue.
type op struct {
	// base returns a final term and true if (lhs, rhs) short-circuits
	// without entering the combine machinery.
	base func(lhs, rhs ast.Rx) (ast.Rx, bool)
	// keep reports whether a Venn piece with the given tag should be
	// recursed into.
	keep func(tag letterset.Side) bool
	// residue returns the nullability term to add to the body (if
	// any), given whether lhs and rhs each accept the empty string.
	residue func(lhsNull, rhsNull bool) (ast.Rx, bool)
}

func bothPhi(lhs, rhs ast.Rx) bool { return ast.IsPhi(lhs) && ast.IsPhi(rhs) }

var intersectOp = op{
	base: func(lhs, rhs ast.Rx) (ast.Rx, bool) {
		switch {
		case ast.IsPhi(lhs) || ast.IsPhi(rhs):
			return ast.Phi(), true
		case ast.IsEmpty(lhs):
			if ast.AcceptsEmpty(rhs) {
				return ast.Empty(), true
			}
			return ast.Phi(), true
		case ast.IsEmpty(rhs):
			if ast.AcceptsEmpty(lhs) {
				return ast.Empty(), true
			}
			return ast.Phi(), true
		}
		return ast.Rx{}, false
	},
	keep: func(tag letterset.Side) bool { return tag == letterset.Both },
	residue: func(lhsNull, rhsNull bool) (ast.Rx, bool) {
		if lhsNull && rhsNull {
			return ast.Empty(), true
		}
		return ast.Rx{}, false
	},
}

var differenceOp = op{
	base: func(lhs, rhs ast.Rx) (ast.Rx, bool) {
		switch {
		case ast.IsPhi(lhs):
			return ast.Phi(), true
		case ast.IsPhi(rhs):
			return lhs, true
		case ast.IsEmpty(lhs):
			if ast.AcceptsEmpty(rhs) {
				return ast.Phi(), true
			}
			return ast.Empty(), true
		}
		return ast.Rx{}, false
	},
	keep: func(tag letterset.Side) bool { return tag == letterset.Both || tag == letterset.Left },
	residue: func(lhsNull, rhsNull bool) (ast.Rx, bool) {
		if lhsNull && !rhsNull {
			return ast.Empty(), true
		}
		return ast.Rx{}, false
	},
}

var xorOp = op{
	base: func(lhs, rhs ast.Rx) (ast.Rx, bool) {
		switch {
		case bothPhi(lhs, rhs):
			return ast.Phi(), true
		case ast.IsPhi(lhs):
			return rhs, true
		case ast.IsPhi(rhs):
			return lhs, true
		case ast.IsEmpty(lhs) && !ast.AcceptsEmpty(rhs):
			return ast.Choice(rhs, ast.Empty()), true
		case ast.IsEmpty(rhs) && !ast.AcceptsEmpty(lhs):
			return ast.Choice(lhs, ast.Empty()), true
		}
		return ast.Rx{}, false
	},
	keep: func(tag letterset.Side) bool { return true },
	residue: func(lhsNull, rhsNull bool) (ast.Rx, bool) {
		if lhsNull != rhsNull {
			return ast.Empty(), true
		}
		return ast.Rx{}, false
	},
}

// counter is the shared, monotonically-increasing Var-index source
// for one top-level combine() run.
type counter struct{ n int }

func (c *counter) next() int {
	c.n++
	return c.n
}

// combine expands the pair automaton for one operator. env is the
// coinduction hypothesis and holds exactly the pairs on the current
// recursion path: each frame records its pair before descending and
// removes it after its Arden closure. A hit therefore always hands
// back the Var of an activation that is still live, which is the only
// Var its owner's resolve can still eliminate — a completed frame's
// placeholder handed to a later sibling would escape every remaining
// resolve and poison the result.
func combine(lhs, rhs ast.Rx, env map[pairKey]ast.Rx, cnt *counter, o op, lim *limiter) ast.Rx {
	if v, ok := o.base(lhs, rhs); ok {
		return v
	}
	key := pairKey{lhs, rhs}
	if v, ok := env[key]; ok {
		return v
	}
	if lim.overBudget() {
		return ast.Phi()
	}

	k := cnt.next()
	placeholder := ast.Var(k)
	env[key] = placeholder

	var terms []ast.Rx
	if v, ok := o.residue(ast.AcceptsEmpty(lhs), ast.AcceptsEmpty(rhs)); ok {
		terms = append(terms, v)
	}

	pieces := letterset.Venn(ast.FirstSet(lhs), ast.FirstSet(rhs))
	for _, p := range pieces {
		if !o.keep(p.Tag) {
			continue
		}
		c, ok := p.Set.Min()
		if !ok {
			continue
		}
		rec := combine(ast.Deriv(lhs, c), ast.Deriv(rhs, c), env, cnt, o, lim)
		terms = append(terms, ast.Concat(ast.Letters(p.Set), rec))
	}

	body := ast.Phi()
	for _, t := range terms {
		body = ast.Choice(body, t)
	}
	res := ast.Resolve(body, k)
	delete(env, key)
	return res
}

// Intersect computes the term for L(lhs) ∩ L(rhs).
func Intersect(lhs, rhs ast.Rx) ast.Rx {
	return combine(lhs, rhs, make(map[pairKey]ast.Rx), &counter{}, intersectOp, nil)
}

// Difference computes the term for L(lhs) − L(rhs).
func Difference(lhs, rhs ast.Rx) ast.Rx {
	return combine(lhs, rhs, make(map[pairKey]ast.Rx), &counter{}, differenceOp, nil)
}

// Xor computes the term for the symmetric difference L(lhs) △ L(rhs).
func Xor(lhs, rhs ast.Rx) ast.Rx {
	return combine(lhs, rhs, make(map[pairKey]ast.Rx), &counter{}, xorOp, nil)
}

// IntersectBounded is Intersect with an explicit resource guard:
// construction stops and reports ErrEnvLimitExceeded rather than
// expanding more than maxPairs term pairs. Every expansion counts,
// including a pair expanded again in a sibling branch after its first
// activation closed. maxPairs <= 0 means unbounded.
func IntersectBounded(lhs, rhs ast.Rx, maxPairs int) (ast.Rx, error) {
	return combineBounded(lhs, rhs, intersectOp, maxPairs)
}

// DifferenceBounded is Difference with IntersectBounded's resource guard.
func DifferenceBounded(lhs, rhs ast.Rx, maxPairs int) (ast.Rx, error) {
	return combineBounded(lhs, rhs, differenceOp, maxPairs)
}

// XorBounded is Xor with IntersectBounded's resource guard.
func XorBounded(lhs, rhs ast.Rx, maxPairs int) (ast.Rx, error) {
	return combineBounded(lhs, rhs, xorOp, maxPairs)
}

func combineBounded(lhs, rhs ast.Rx, o op, maxPairs int) (res ast.Rx, err error) {
	defer ast.Recover(&err)
	lim := &limiter{max: maxPairs}
	res = combine(lhs, rhs, make(map[pairKey]ast.Rx), &counter{}, o, lim)
	if lim.exceeded {
		return ast.Rx{}, ErrEnvLimitExceeded
	}
	return res, nil
}

// Universe is Letters(Full).star — the language of all strings over
// the full alphabet, used to define complement.
func Universe() ast.Rx {
	return ast.Star(ast.Letters(letterset.Full))
}

// Complement computes the term for the complement of r: Universe − r.
func Complement(r ast.Rx) ast.Rx {
	return Difference(Universe(), r)
}
