// Package decide implements the coinductive decision procedures over
// regular-language terms: equivalence and the partial order (subset/
// superset/incomparable), both realized as a bisimulation over
// Antimirov derivatives. The walk is guarded by a visited-pair set so
// the otherwise-cyclic derivative graph terminates.
package decide

import (
	"errors"

	"github.com/coregx/antirx/ast"
	"github.com/coregx/antirx/letterset"
)

// pairKey identifies an ordered pair of terms for the coinduction
// hypothesis / memoization env. ast.Rx is itself a single-pointer
// struct, so pairKey is directly comparable and usable as a map key.
type pairKey struct {
	a, b ast.Rx
}

// ErrEnvLimitExceeded is returned by the Bounded variants when the
// coinduction env would grow past the caller's budget. Each pair in
// env corresponds to one state pair of the reachable derivative
// automaton, so the limit bounds peak memory.
var ErrEnvLimitExceeded = errors.New("decide: coinduction environment exceeded configured pair limit")

// limiter caps how many distinct pairs a single top-level call may add
// to its env. A nil *limiter (or maxPairs <= 0) means unbounded.
type limiter struct {
	max      int
	exceeded bool
}

func (l *limiter) overBudget(envLen int) bool {
	if l == nil || l.max <= 0 {
		return false
	}
	if envLen >= l.max {
		l.exceeded = true
		return true
	}
	return false
}

// Equiv decides whether lhs and rhs denote the same language. env is
// the coinduction hypothesis: a pair already
// assumed equivalent is trusted, never recomputed, which is what
// guarantees termination over the otherwise-cyclic derivative graph.
func Equiv(lhs, rhs ast.Rx) bool {
	env := make(map[pairKey]bool)
	return equivStep(lhs, rhs, env, nil)
}

// EquivBounded is Equiv with an explicit resource guard: it stops and
// reports ErrEnvLimitExceeded rather than growing the coinduction env
// past maxPairs distinct term pairs. maxPairs <= 0 means unbounded.
func EquivBounded(lhs, rhs ast.Rx, maxPairs int) (res bool, err error) {
	defer ast.Recover(&err)
	env := make(map[pairKey]bool)
	lim := &limiter{max: maxPairs}
	res = equivStep(lhs, rhs, env, lim)
	if lim.exceeded {
		return false, ErrEnvLimitExceeded
	}
	return res, nil
}

func equivStep(lhs, rhs ast.Rx, env map[pairKey]bool, lim *limiter) bool {
	if ast.AcceptsEmpty(lhs) != ast.AcceptsEmpty(rhs) {
		return false
	}
	if ast.IsPhi(lhs) != ast.IsPhi(rhs) {
		return false
	}
	key := pairKey{lhs, rhs}
	if env[key] {
		return true
	}
	if lim.overBudget(len(env)) {
		return true
	}
	llo, lhi, lok := ast.MatchSizes(lhs)
	rlo, rhi, rok := ast.MatchSizes(rhs)
	if lok != rok || (lok && (!llo.Equal(rlo) || !lhi.Equal(rhi))) {
		return false
	}

	pieces := letterset.Venn(ast.FirstSet(lhs), ast.FirstSet(rhs))
	for _, p := range pieces {
		if p.Tag != letterset.Both {
			return false // one side can start with a character the other cannot
		}
	}

	env[key] = true
	for _, p := range pieces {
		c, ok := p.Set.Min()
		if !ok {
			continue
		}
		if !equivStep(ast.Deriv(lhs, c), ast.Deriv(rhs, c), env, lim) {
			return false
		}
	}
	return true
}
