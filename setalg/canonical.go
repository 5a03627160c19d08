package setalg

import (
	"github.com/coregx/antirx/ast"
	"github.com/coregx/antirx/decide"
)

// canonEnv is the canonicalization walk's coinduction hypothesis: the
// automaton states on the current recursion path, each bound to its
// Var placeholder. Lookup is by language equivalence (decide.Equiv),
// not term identity: two derivative chains that reach equivalent
// residues through different syntax must fold into the same automaton
// state, or equivalent inputs would walk automata of different shapes
// and come out of Canonical structurally different. Identity is
// checked first since hash-consing makes it a pointer comparison.
type canonEnv struct {
	states []ast.Rx
	vars   []ast.Rx
}

func (e *canonEnv) lookup(r ast.Rx) (ast.Rx, bool) {
	for i, s := range e.states {
		if ast.Equal(s, r) || decide.Equiv(s, r) {
			return e.vars[i], true
		}
	}
	return ast.Rx{}, false
}

func (e *canonEnv) push(r, v ast.Rx) {
	e.states = append(e.states, r)
	e.vars = append(e.vars, v)
}

func (e *canonEnv) pop() {
	e.states = e.states[:len(e.states)-1]
	e.vars = e.vars[:len(e.vars)-1]
}

// Canonical computes a representative term for r's language:
// equivalent inputs produce structurally equal outputs, though
// not necessarily the smallest possible term. It walks the derivative
// automaton quotiented by equivalence, allocating a fresh Var per
// unseen state exactly as combine() does, then closes each activation
// with ast.Resolve.
func Canonical(r ast.Rx) ast.Rx {
	return canon(r, &canonEnv{}, &counter{}, nil)
}

// CanonicalBounded is Canonical with IntersectBounded's resource guard.
func CanonicalBounded(r ast.Rx, maxTerms int) (res ast.Rx, err error) {
	defer ast.Recover(&err)
	lim := &limiter{max: maxTerms}
	res = canon(r, &canonEnv{}, &counter{}, lim)
	if lim.exceeded {
		return ast.Rx{}, ErrEnvLimitExceeded
	}
	return res, nil
}

func canon(r ast.Rx, env *canonEnv, cnt *counter, lim *limiter) ast.Rx {
	if ast.IsPhi(r) {
		return ast.Phi()
	}
	if v, ok := env.lookup(r); ok {
		return v
	}
	if lim.overBudget() {
		return ast.Phi()
	}

	k := cnt.next()
	env.push(r, ast.Var(k))

	var terms []ast.Rx
	if ast.AcceptsEmpty(r) {
		terms = append(terms, ast.Empty())
	}

	for _, cs := range ast.FirstSet(r) {
		c, ok := cs.Min()
		if !ok {
			continue
		}
		rec := canon(ast.Deriv(r, c), env, cnt, lim)
		terms = append(terms, ast.Concat(ast.Letters(cs), rec))
	}

	body := ast.Phi()
	for _, t := range terms {
		body = ast.Choice(body, t)
	}
	res := ast.Resolve(body, k)
	env.pop()
	return res
}
