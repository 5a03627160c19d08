package letterset

import "testing"

func TestNewMergesOverlapAndAdjacent(t *testing.T) {
	s := New(Range{'a', 'c'}, Range{'b', 'e'}, Range{'g', 'h'}, Range{'f', 'f'})
	want := New(Range{'a', 'e'}, Range{'f', 'h'})
	if !s.Equal(want) {
		t.Errorf("New(...) = %v, want %v", s, want)
	}
}

func TestContains(t *testing.T) {
	s := New(Range{'a', 'c'}, Range{'x', 'z'})
	for _, c := range []rune{'a', 'b', 'c', 'x', 'z'} {
		if !s.Contains(c) {
			t.Errorf("Contains(%q) = false, want true", c)
		}
	}
	for _, c := range []rune{'d', 'w', '0'} {
		if s.Contains(c) {
			t.Errorf("Contains(%q) = true, want false", c)
		}
	}
}

func TestSingleValue(t *testing.T) {
	if c, ok := Single('q').SingleValue(); !ok || c != 'q' {
		t.Errorf("SingleValue() = (%q, %v), want ('q', true)", c, ok)
	}
	if _, ok := New(Range{'a', 'b'}).SingleValue(); ok {
		t.Error("SingleValue() on a 2-element set should be false")
	}
}

func TestUnionIntersectDiff(t *testing.T) {
	abc := New(Range{'a', 'c'})
	bcd := New(Range{'b', 'd'})

	if got, want := abc.Union(bcd), New(Range{'a', 'd'}); !got.Equal(want) {
		t.Errorf("Union = %v, want %v", got, want)
	}
	if got, want := abc.Intersect(bcd), New(Range{'b', 'c'}); !got.Equal(want) {
		t.Errorf("Intersect = %v, want %v", got, want)
	}
	if got, want := abc.Diff(bcd), New(Range{'a', 'a'}); !got.Equal(want) {
		t.Errorf("Diff = %v, want %v", got, want)
	}
	if got, want := bcd.Diff(abc), New(Range{'d', 'd'}); !got.Equal(want) {
		t.Errorf("Diff(reverse) = %v, want %v", got, want)
	}
}

func TestMinMax(t *testing.T) {
	s := New(Range{'x', 'z'}, Range{'a', 'c'})
	if c, ok := s.Min(); !ok || c != 'a' {
		t.Errorf("Min() = (%q, %v), want ('a', true)", c, ok)
	}
	if c, ok := s.Max(); !ok || c != 'z' {
		t.Errorf("Max() = (%q, %v), want ('z', true)", c, ok)
	}
	if _, ok := Empty.Min(); ok {
		t.Error("Min() of empty set should report ok=false")
	}
}

func TestLenAndString(t *testing.T) {
	s := New(Range{'a', 'c'})
	if s.Len() != 3 {
		t.Errorf("Len() = %d, want 3", s.Len())
	}
	if got, want := s.String(), "[a-c]"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
