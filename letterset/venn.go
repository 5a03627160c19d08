package letterset

import "sort"

// Side tags which original list(s) cover a Venn piece.
type Side uint8

const (
	// Left marks a piece covered only by the A list.
	Left Side = iota
	// Right marks a piece covered only by the B list.
	Right
	// Both marks a piece covered by both lists.
	Both
)

func (t Side) String() string {
	switch t {
	case Left:
		return "Left"
	case Right:
		return "Right"
	case Both:
		return "Both"
	default:
		return "Side(?)"
	}
}

// Piece is one disjoint slice of the Venn partition, tagged by which
// original list(s) it came from.
type Piece struct {
	Tag Side
	Set LetterSet
}

// boundary is an event in the sweep over rune space: +1 at a range's Lo,
// -1 just past its Hi.
type boundary struct {
	pos   rune
	delta int
	from  int // 0 = A, 1 = B
}

// Venn partitions A ∪ B, where A and B are each lists of pairwise
// disjoint LetterSets, into pairwise-disjoint pieces tagged Left/Right/
// Both. Each piece lies entirely inside zero-or-one element of A and
// zero-or-one element of B, so each piece is one congruence class:
// every rune within it behaves identically under one derivative step
// of the terms A and B were computed from.
//
// Pieces are cut at every range boundary of every input element, and
// never coalesced across a boundary: two adjacent same-tag stretches
// can belong to different elements of the same list, and gluing them
// would hand callers a "class" whose runes drive different derivative
// steps.
func Venn(a, b []LetterSet) []Piece {
	var events []boundary
	for _, s := range a {
		for _, r := range s.Ranges() {
			events = append(events, boundary{r.Lo, 1, 0}, boundary{r.Hi + 1, -1, 0})
		}
	}
	for _, s := range b {
		for _, r := range s.Ranges() {
			events = append(events, boundary{r.Lo, 1, 1}, boundary{r.Hi + 1, -1, 1})
		}
	}
	if len(events) == 0 {
		return nil
	}
	sort.Slice(events, func(i, j int) bool { return events[i].pos < events[j].pos })

	var pieces []Piece
	depthA, depthB := 0, 0
	pos := events[0].pos
	i := 0
	for i < len(events) {
		cur := events[i].pos
		if cur > pos && (depthA > 0 || depthB > 0) {
			tag, ok := tagFor(depthA > 0, depthB > 0)
			if ok {
				pieces = append(pieces, Piece{Tag: tag, Set: New(Range{pos, cur - 1})})
			}
		}
		for i < len(events) && events[i].pos == cur {
			if events[i].from == 0 {
				depthA += events[i].delta
			} else {
				depthB += events[i].delta
			}
			i++
		}
		pos = cur
	}
	return pieces
}

func tagFor(inA, inB bool) (Side, bool) {
	switch {
	case inA && inB:
		return Both, true
	case inA:
		return Left, true
	case inB:
		return Right, true
	default:
		return 0, false
	}
}
