package ast

import (
	"fmt"
	"strings"
)

// metaChars are the standard-regex-syntax characters Repr escapes when
// rendering a bare Letter.
const metaChars = `.*+?()[]{}|^$\`

func escapeChar(c rune) string {
	if strings.ContainsRune(metaChars, c) {
		return `\` + string(c)
	}
	switch c {
	case '\n':
		return `\n`
	case '\t':
		return `\t`
	}
	return string(c)
}

// Repr renders a in a textual form close to standard regex syntax: ∅ for Phi,
// "" for Empty, an escaped character for Letter, a bracket expression
// for Letters, x* for Star, (x){m,n} for Repeat, |-separated choices
// flattened across however the Choice tree happens to be shaped, and
// juxtaposed concatenation. The output does not always parse back to
// the same term: rxsyntax reads ∅ and "" as literal characters. For a
// debugging-oriented form that names every constructor see GoString.
func Repr(a Rx) string {
	switch a.n.kind {
	case KindPhi:
		return "∅"
	case KindEmpty:
		return `""`
	case KindLetter:
		return escapeChar(a.n.ch)
	case KindLetters:
		return a.n.set.String()
	case KindChoice:
		branches := flattenChoice(a)
		parts := make([]string, len(branches))
		for i, b := range branches {
			parts[i] = Repr(b)
		}
		return strings.Join(parts, "|")
	case KindConcat:
		atoms := flattenConcat(a)
		var b strings.Builder
		for _, atom := range atoms {
			if atom.n.kind == KindChoice {
				b.WriteByte('(')
				b.WriteString(Repr(atom))
				b.WriteByte(')')
			} else {
				b.WriteString(Repr(atom))
			}
		}
		return b.String()
	case KindStar:
		return reprAtom(Rx{a.n.sub}) + "*"
	case KindRepeat:
		return fmt.Sprintf("(%s){%d,%d}", Repr(Rx{a.n.sub}), a.n.min, a.n.max)
	case KindVar:
		return fmt.Sprintf("Var(%d)", a.n.varID)
	default:
		return "?"
	}
}

// reprAtom wraps sub in parens if it is not already a single token of
// standard regex syntax (Star needs grouping around a Choice or Concat
// operand: (ab)* not ab*).
func reprAtom(sub Rx) string {
	if sub.n.kind == KindChoice || sub.n.kind == KindConcat {
		return "(" + Repr(sub) + ")"
	}
	return Repr(sub)
}

func flattenChoice(a Rx) []Rx {
	if a.n.kind != KindChoice {
		return []Rx{a}
	}
	var out []Rx
	out = append(out, flattenChoice(Rx{a.n.l})...)
	out = append(out, flattenChoice(Rx{a.n.r})...)
	return out
}

func flattenConcat(a Rx) []Rx {
	if a.n.kind != KindConcat {
		return []Rx{a}
	}
	var out []Rx
	out = append(out, flattenConcat(Rx{a.n.l})...)
	out = append(out, flattenConcat(Rx{a.n.r})...)
	return out
}

// GoString is a host-debugging form: it adds parentheses generously and
// names every constructor, deliberately looser than Repr and not meant
// to be parsed back by anything. It is a plain function, not a method
// on Rx, so fmt's %#v verb does not call it.
func GoString(a Rx) string {
	switch a.n.kind {
	case KindPhi:
		return "Phi"
	case KindEmpty:
		return "Empty"
	case KindLetter:
		return fmt.Sprintf("Letter(%q)", a.n.ch)
	case KindLetters:
		return fmt.Sprintf("Letters(%s)", a.n.set.String())
	case KindChoice:
		return fmt.Sprintf("Choice(%s, %s)", GoString(Rx{a.n.l}), GoString(Rx{a.n.r}))
	case KindConcat:
		return fmt.Sprintf("Concat(%s, %s)", GoString(Rx{a.n.l}), GoString(Rx{a.n.r}))
	case KindStar:
		return fmt.Sprintf("Star(%s)", GoString(Rx{a.n.sub}))
	case KindRepeat:
		return fmt.Sprintf("Repeat(%s, %d, %d)", GoString(Rx{a.n.sub}), a.n.min, a.n.max)
	case KindVar:
		return fmt.Sprintf("Var(%d)", a.n.varID)
	default:
		return "?"
	}
}
