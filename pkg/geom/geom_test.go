package geom

import "testing"

func TestPlaneClassification(t *testing.T) {
	p, ok := NewPlaneFromPoints(New(0, 0, 0), New(1, 0, 0), New(0, 1, 0))
	if !ok {
		t.Fatal("expected a valid plane")
	}
	if !p.OnPlane(New(5, 5, 0)) {
		t.Errorf("expected (5,5,0) to lie on the XY plane")
	}
	if p.OnPlane(New(0, 0, 1)) {
		t.Errorf("expected (0,0,1) to not lie on the XY plane")
	}
}

func TestPlaneFlippedReversesSense(t *testing.T) {
	p, _ := NewPlaneFromPoints(New(0, 0, 0), New(1, 0, 0), New(0, 1, 0))
	f := p.Flipped()
	v := New(0, 0, 1)
	if v.Compare(p) == v.Compare(f) {
		t.Errorf("flipped plane should reverse front/back classification")
	}
}

func TestLineSegmentCanonicalization(t *testing.T) {
	a, b := New(1, 0, 0), New(0, 0, 0)
	s1 := NewLineSegment(a, b)
	s2 := NewLineSegment(b, a)
	if !s1.Equals(s2) {
		t.Errorf("segments should be equal regardless of direction: %v vs %v", s1, s2)
	}
	if s1.HashKey() != s2.HashKey() {
		t.Errorf("segment hash keys should agree regardless of direction")
	}
}

func TestBoundsUnionAndContains(t *testing.T) {
	a := BoundsFromPoints(New(0, 0, 0), New(1, 1, 1))
	b := BoundsFromPoints(New(2, 2, 2), New(3, 3, 3))
	u := a.Union(b)
	if !u.ContainsPoint(New(0, 0, 0)) || !u.ContainsPoint(New(3, 3, 3)) {
		t.Errorf("union bounds should contain both inputs' corners")
	}
	if u.ContainsPoint(New(10, 10, 10)) {
		t.Errorf("union bounds should not contain a far-away point")
	}
}

func TestBoundsCompareSpanning(t *testing.T) {
	b := BoundsFromPoints(New(-1, -1, -1), New(1, 1, 1))
	p := NewPlane(New(1, 0, 0), New(0, 0, 0))
	if got := b.Compare(p); got != Spanning {
		t.Errorf("Compare = %v, want Spanning", got)
	}
}

func TestRotationIdentityRoundTrip(t *testing.T) {
	v := New(1, 2, 3)
	if got := Identity.Rotate(v); !got.Equals(v) {
		t.Errorf("identity rotation should not move %v, got %v", v, got)
	}
}

func TestRotationInverseCancels(t *testing.T) {
	r := FromAxisAngle(New(0, 0, 1), 1.2345)
	v := New(1, 0, 0)
	rotated := r.Rotate(v)
	back := r.Inverse().Rotate(rotated)
	if !back.Equals(v) {
		t.Errorf("rotate then inverse-rotate should round-trip: got %v, want %v", back, v)
	}
}

func TestTransformComposeAppliesChildInParentFrame(t *testing.T) {
	parent := IdentityTransform.Translated(New(10, 0, 0))
	child := IdentityTransform.Translated(New(0, 5, 0))
	combined := parent.Compose(child)
	got := combined.Apply(Vector{})
	want := New(10, 5, 0)
	if !got.Equals(want) {
		t.Errorf("combined.Apply(origin) = %v, want %v", got, want)
	}
}

func TestColorHexRoundTrip(t *testing.T) {
	c, err := ParseColor("#4A90D9")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := c.Hex(); got != "#4a90d9" {
		t.Errorf("Hex() = %q, want #4a90d9", got)
	}
}

func TestColorNamed(t *testing.T) {
	c, err := ParseColor("red")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !c.Equals(Red) {
		t.Errorf("ParseColor(\"red\") = %v, want %v", c, Red)
	}
}

func TestColorInvalid(t *testing.T) {
	if _, err := ParseColor("#zzz"); err == nil {
		t.Error("expected an error for invalid hex digits")
	}
	if _, err := ParseColor("not-a-color"); err == nil {
		t.Error("expected an error for an unrecognized color name")
	}
}
