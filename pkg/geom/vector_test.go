package geom

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestVectorEqualsTolerance(t *testing.T) {
	a := New(1, 2, 3)
	b := New(1+Epsilon/2, 2, 3-Epsilon/2)
	if !a.Equals(b) {
		t.Errorf("expected %v to tolerantly equal %v", a, b)
	}
	c := New(1.01, 2, 3)
	if a.Equals(c) {
		t.Errorf("expected %v to not equal %v", a, c)
	}
}

func TestVectorHashKeyAgreesWithEquals(t *testing.T) {
	a := New(1, 2, 3)
	b := New(1+Epsilon/4, 2, 3)
	if a.Equals(b) && a.HashKey() != b.HashKey() {
		t.Errorf("hash keys disagree for equal vectors: %v vs %v", a.HashKey(), b.HashKey())
	}
}

func TestVectorCrossDot(t *testing.T) {
	x := New(1, 0, 0)
	y := New(0, 1, 0)
	z := x.Cross(y)
	if !z.Equals(New(0, 0, 1)) {
		t.Errorf("x cross y = %v, want (0,0,1)", z)
	}
	if got := x.Dot(y); got != 0 {
		t.Errorf("x dot y = %v, want 0", got)
	}
}

func TestVectorLerp(t *testing.T) {
	a := New(0, 0, 0)
	b := New(10, 0, 0)
	mid := a.Lerp(b, 0.5)
	if !mid.Equals(New(5, 0, 0)) {
		t.Errorf("lerp midpoint = %v, want (5,0,0)", mid)
	}
}

func TestVectorCompare(t *testing.T) {
	p := NewPlane(New(0, 1, 0), New(0, 0, 0))
	cases := []struct {
		v    Vector
		want Side
	}{
		{New(0, 1, 0), Front},
		{New(0, -1, 0), Back},
		{New(5, 0, -5), Coplanar},
	}
	for _, c := range cases {
		if got := c.v.Compare(p); got != c.want {
			t.Errorf("Compare(%v) = %v, want %v", c.v, got, c.want)
		}
	}
}

func TestVectorNormalizedZero(t *testing.T) {
	z := Vector{}
	if got := z.Normalized(); !cmp.Equal(got, z) {
		t.Errorf("normalizing the zero vector should return itself, got %v", got)
	}
}
