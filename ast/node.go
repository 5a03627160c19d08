package ast

import (
	"fmt"
	"strings"
	"sync"

	"github.com/coregx/antirx/letterset"
	"github.com/coregx/antirx/size"
)

// node is the hash-consed representation backing an Rx value. Once
// constructed via intern, a node is never mutated except for its
// memoized-derived-property fields below, which are written at most
// once each (guarded by sync.Once; safe under concurrent access since
// each is a pure function of the immutable term).
type node struct {
	kind Kind

	ch  rune             // KindLetter
	set letterset.LetterSet // KindLetters

	l, r *node // KindChoice, KindConcat
	sub  *node // KindStar, KindRepeat

	min, max int // KindRepeat

	varID int // KindVar

	onceNullable sync.Once
	nullable     bool

	onceFirst sync.Once
	first     []letterset.LetterSet

	onceSizes  sync.Once
	sizesOK    bool
	sizesLo    size.Size
	sizesHi    size.Size

	onceIsPhi sync.Once
	isPhiVal  bool

	onceIsEmpty sync.Once
	isEmptyVal  bool
}

// Rx is an immutable regular-language term, hash-consed so that
// structurally equal terms compare and hash by pointer identity.
type Rx struct {
	n *node
}

// Equal reports whether a and b denote structurally identical terms
// (equivalent to == on the underlying hash-consed node).
func Equal(a, b Rx) bool { return a.n == b.n }

// Kind returns a's AST variant.
func (a Rx) Kind() Kind { return a.n.kind }

var (
	internMu  sync.Mutex
	internTab = make(map[string]*node)
)

// intern returns the canonical *node for n's structural key, storing n
// as the canonical instance the first time a key is seen. Children
// referenced by n must already be canonical (i.e. produced by a
// previous call to intern), which every smart constructor in this
// package guarantees by construction.
func intern(n *node) *node {
	key := nodeKey(n)
	internMu.Lock()
	defer internMu.Unlock()
	if existing, ok := internTab[key]; ok {
		return existing
	}
	internTab[key] = n
	return n
}

func nodeKey(n *node) string {
	switch n.kind {
	case KindPhi:
		return "P"
	case KindEmpty:
		return "E"
	case KindLetter:
		return fmt.Sprintf("L(%d)", n.ch)
	case KindLetters:
		// Numeric range encoding: the display form is ambiguous (a
		// literal '-' member is indistinguishable from a range dash).
		var b strings.Builder
		b.WriteString("S(")
		for _, r := range n.set.Ranges() {
			fmt.Fprintf(&b, "%d:%d;", r.Lo, r.Hi)
		}
		b.WriteByte(')')
		return b.String()
	case KindChoice:
		return fmt.Sprintf("C(%p,%p)", n.l, n.r)
	case KindConcat:
		return fmt.Sprintf("X(%p,%p)", n.l, n.r)
	case KindStar:
		return fmt.Sprintf("*(%p)", n.sub)
	case KindRepeat:
		return fmt.Sprintf("R(%p,%d,%d)", n.sub, n.min, n.max)
	case KindVar:
		return fmt.Sprintf("V(%d)", n.varID)
	default:
		panic(fmt.Sprintf("ast: nodeKey: unknown kind %v", n.kind))
	}
}

func wrap(n *node) Rx { return Rx{n: intern(n)} }

func isPhiNode(a Rx) bool   { return a.n.kind == KindPhi }
func isEmptyNode(a Rx) bool { return a.n.kind == KindEmpty }
func isLetterish(a Rx) bool { return a.n.kind == KindLetter || a.n.kind == KindLetters }

func letterSetOf(a Rx) letterset.LetterSet {
	switch a.n.kind {
	case KindLetter:
		return letterset.Single(a.n.ch)
	case KindLetters:
		return a.n.set
	default:
		panic("ast: letterSetOf called on non-letter term")
	}
}
