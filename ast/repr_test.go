package ast

import "testing"

func TestReprBasics(t *testing.T) {
	cases := []struct {
		r    Rx
		want string
	}{
		{Phi(), "∅"},
		{Empty(), `""`},
		{Letter('a'), "a"},
		{Letter('.'), `\.`},
	}
	for _, c := range cases {
		if got := Repr(c.r); got != c.want {
			t.Errorf("Repr(%v) = %q, want %q", c.r.Kind(), got, c.want)
		}
	}
}

func TestReprStarParenthesizesConcat(t *testing.T) {
	ab := Concat(Letter('a'), Letter('b'))
	got := Repr(Star(ab))
	if got != "(ab)*" {
		t.Errorf("Repr((ab)*) = %q, want %q", got, "(ab)*")
	}
}

func TestReprConcatParenthesizesChoice(t *testing.T) {
	choice := Choice(Concat(Letter('x'), Letter('y')), Letter('z'))
	r := Concat(choice, Letter('w'))
	got := Repr(r)
	if got != "(xy|z)w" {
		t.Errorf("Repr = %q, want %q", got, "(xy|z)w")
	}
}

func TestReprRepeat(t *testing.T) {
	rep, _ := Repeat(Letter('a'), 2, 4)
	if got, want := Repr(rep), "(a){2,4}"; got != want {
		t.Errorf("Repr(a{2,4}) = %q, want %q", got, want)
	}
}

func TestGoStringNamesConstructors(t *testing.T) {
	r := Concat(Letter('a'), Star(Letter('b')))
	got := GoString(r)
	if got != "Concat(Letter('a'), Star(Letter('b')))" {
		t.Errorf("GoString = %q", got)
	}
}
