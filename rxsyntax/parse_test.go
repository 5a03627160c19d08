package rxsyntax

import (
	"testing"

	"github.com/coregx/antirx/ast"
	"github.com/coregx/antirx/decide"
)

func mustParse(t *testing.T, pattern string) ast.Rx {
	t.Helper()
	r, err := Parse(pattern)
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", pattern, err)
	}
	return r
}

func TestParseLiteral(t *testing.T) {
	r := mustParse(t, "abc")
	want := ast.Concat(ast.Concat(ast.Letter('a'), ast.Letter('b')), ast.Letter('c'))
	if !decide.Equiv(r, want) {
		t.Errorf("Parse(abc) = %s, want equiv to abc", ast.Repr(r))
	}
}

func TestParseCharClass(t *testing.T) {
	r := mustParse(t, "[a-c]")
	want := ast.Choice(ast.Choice(ast.Letter('a'), ast.Letter('b')), ast.Letter('c'))
	if !decide.Equiv(r, want) {
		t.Errorf("Parse([a-c]) = %s, want equiv to a|b|c", ast.Repr(r))
	}
}

func TestParseStarPlusQuest(t *testing.T) {
	star := mustParse(t, "a*")
	if !decide.Equiv(star, ast.Star(ast.Letter('a'))) {
		t.Errorf("Parse(a*) = %s, want a*", ast.Repr(star))
	}

	plus := mustParse(t, "a+")
	if !decide.Equiv(plus, ast.Concat(ast.Letter('a'), ast.Star(ast.Letter('a')))) {
		t.Errorf("Parse(a+) not equiv to a.a*, got %s", ast.Repr(plus))
	}

	quest := mustParse(t, "a?")
	if !decide.Equiv(quest, ast.Choice(ast.Empty(), ast.Letter('a'))) {
		t.Errorf("Parse(a?) not equiv to \"\"|a, got %s", ast.Repr(quest))
	}
}

func TestParseAlternate(t *testing.T) {
	r := mustParse(t, "cat|dog")
	cat := ast.Concat(ast.Concat(ast.Letter('c'), ast.Letter('a')), ast.Letter('t'))
	dog := ast.Concat(ast.Concat(ast.Letter('d'), ast.Letter('o')), ast.Letter('g'))
	if !decide.Equiv(r, ast.Choice(cat, dog)) {
		t.Errorf("Parse(cat|dog) not equiv to cat|dog, got %s", ast.Repr(r))
	}
}

func TestParseBoundedRepeat(t *testing.T) {
	r := mustParse(t, "a{2,4}")
	want, err := ast.Repeat(ast.Letter('a'), 2, 4)
	if err != nil {
		t.Fatal(err)
	}
	if !decide.Equiv(r, want) {
		t.Errorf("Parse(a{2,4}) not equiv to a{2,4}, got %s", ast.Repr(r))
	}
}

func TestParseUnboundedRepeat(t *testing.T) {
	r := mustParse(t, "a{2,}")
	want := ast.Concat(ast.Pow(ast.Letter('a'), 2), ast.Star(ast.Letter('a')))
	if !decide.Equiv(r, want) {
		t.Errorf("Parse(a{2,}) not equiv to aa.a*, got %s", ast.Repr(r))
	}
}

func TestParseAnyChar(t *testing.T) {
	r := mustParse(t, "(?s).")
	if len(ast.FirstSet(r)) == 0 {
		t.Errorf("Parse((?s).) should accept some characters")
	}
	if !ast.Accepts(r, "x") || !ast.Accepts(r, "\n") {
		t.Errorf("Parse((?s).) should accept any single character including newline")
	}
}

func TestParseCaptureGroupIsTransparent(t *testing.T) {
	r := mustParse(t, "(ab)")
	want := ast.Concat(ast.Letter('a'), ast.Letter('b'))
	if !decide.Equiv(r, want) {
		t.Errorf("Parse((ab)) not equiv to ab, got %s", ast.Repr(r))
	}
}

func TestParseRejectsAnchors(t *testing.T) {
	for _, pattern := range []string{"^a", "a$", `\ba`, `\Ba`} {
		if _, err := Parse(pattern); err == nil {
			t.Errorf("Parse(%q) succeeded, want ErrUnsupported", pattern)
		}
	}
}

func TestParseFoldCase(t *testing.T) {
	r := mustParse(t, "(?i)a")
	if !decide.Equiv(r, ast.Choice(ast.Letter('a'), ast.Letter('A'))) {
		t.Errorf("Parse((?i)a) not equiv to a|A, got %s", ast.Repr(r))
	}
}
