// Package asttest holds small term-construction helpers shared by the
// decide and setalg test files: a handful of free functions, not a
// fixture framework.
package asttest

import (
	"testing"

	"github.com/coregx/antirx/ast"
	"github.com/coregx/antirx/letterset"
)

// Lit builds the concatenation of s's characters as an ast.Rx, for
// tests that want a multi-character literal without spelling out
// nested Concat calls.
func Lit(s string) ast.Rx {
	r := ast.Empty()
	for _, c := range s {
		r = ast.Concat(r, ast.Letter(c))
	}
	return r
}

// Cls builds the Letters term for the inclusive range [lo, hi].
func Cls(lo, hi rune) ast.Rx {
	return ast.Letters(letterset.New(letterset.Range{Lo: lo, Hi: hi}))
}

// MustRepeat is ast.Repeat, failing the test immediately on error
// instead of threading one through every call site.
func MustRepeat(t *testing.T, r ast.Rx, m, n int) ast.Rx {
	t.Helper()
	out, err := ast.Repeat(r, m, n)
	if err != nil {
		t.Fatalf("Repeat(%s, %d, %d): %v", ast.Repr(r), m, n, err)
	}
	return out
}

// RequireAccepts fails the test if r's language does not contain s.
func RequireAccepts(t *testing.T, r ast.Rx, s string) {
	t.Helper()
	if !ast.Accepts(r, s) {
		t.Errorf("%s should accept %q", ast.Repr(r), s)
	}
}

// RequireRejects fails the test if r's language contains s.
func RequireRejects(t *testing.T, r ast.Rx, s string) {
	t.Helper()
	if ast.Accepts(r, s) {
		t.Errorf("%s should reject %q", ast.Repr(r), s)
	}
}
