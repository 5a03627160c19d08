package size

import "testing"

func TestAddUnboundedAbsorbs(t *testing.T) {
	if got := Unbounded().Add(Finite(5)); !got.IsUnbounded() {
		t.Errorf("Unbounded + 5 = %v, want unbounded", got)
	}
	if got := Finite(3).Add(Finite(4)); got.Equal(Unbounded()) || got != Finite(7) {
		t.Errorf("3 + 4 = %v, want 7", got)
	}
}

func TestMulZeroUnboundedIsZero(t *testing.T) {
	if got := Zero.Mul(Unbounded()); !got.Equal(Zero) {
		t.Errorf("0 * unbounded = %v, want 0", got)
	}
	if got := Unbounded().Mul(Zero); !got.Equal(Zero) {
		t.Errorf("unbounded * 0 = %v, want 0", got)
	}
}

func TestMulPositiveUnboundedIsUnbounded(t *testing.T) {
	if got := Finite(1).Mul(Unbounded()); !got.IsUnbounded() {
		t.Errorf("1 * unbounded = %v, want unbounded", got)
	}
}

func TestMinMax(t *testing.T) {
	if got := Finite(3).Min(Unbounded()); !got.Equal(Finite(3)) {
		t.Errorf("min(3, unbounded) = %v, want 3", got)
	}
	if got := Finite(3).Max(Unbounded()); !got.IsUnbounded() {
		t.Errorf("max(3, unbounded) = %v, want unbounded", got)
	}
	if got := Finite(2).Min(Finite(5)); !got.Equal(Finite(2)) {
		t.Errorf("min(2,5) = %v, want 2", got)
	}
}

func TestLessEq(t *testing.T) {
	cases := []struct {
		a, b Size
		want bool
	}{
		{Finite(1), Finite(2), true},
		{Finite(2), Finite(1), false},
		{Finite(2), Finite(2), true},
		{Finite(2), Unbounded(), true},
		{Unbounded(), Finite(2), false},
		{Unbounded(), Unbounded(), true},
	}
	for _, c := range cases {
		if got := c.a.LessEq(c.b); got != c.want {
			t.Errorf("%v <= %v = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestString(t *testing.T) {
	if got := Finite(42).String(); got != "42" {
		t.Errorf("String() = %q, want %q", got, "42")
	}
	if got := Unbounded().String(); got != "unbounded" {
		t.Errorf("String() = %q, want %q", got, "unbounded")
	}
}
