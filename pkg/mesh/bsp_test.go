package mesh

import (
	"testing"

	"github.com/jaikdean/ShapeScript/pkg/geom"
)

func TestBSPContainsPointInsideCube(t *testing.T) {
	tree := NewBSP(cubePolygons(1), nil)

	if !tree.ContainsPoint(geom.Zero) {
		t.Fatalf("expected origin to be inside the cube")
	}
	if tree.ContainsPoint(geom.New(5, 0, 0)) {
		t.Fatalf("expected far point to be outside the cube")
	}
}

func TestBSPInvertFlipsContainment(t *testing.T) {
	tree := NewBSP(cubePolygons(1), nil)
	inverted := tree.Invert()

	if inverted.ContainsPoint(geom.Zero) {
		t.Fatalf("inverted solid should not contain the origin")
	}
	if !inverted.ContainsPoint(geom.New(5, 0, 0)) {
		t.Fatalf("inverted solid should contain points far outside the original")
	}
}

func TestBSPClipRemovesPolygonsInsideTree(t *testing.T) {
	tree := NewBSP(cubePolygons(1), nil)

	// A single face of a smaller cube entirely inside the unit cube's
	// interior should be clipped away to nothing.
	innerFace := cubePolygons(0.5)[:1]
	clipped := tree.Clip(innerFace, false)
	if len(clipped) != 0 {
		t.Fatalf("expected interior face to be fully clipped, got %d polygons", len(clipped))
	}
}

func TestBSPAllPolygonsRoundTrips(t *testing.T) {
	polys := cubePolygons(1)
	tree := NewBSP(polys, nil)
	got := tree.AllPolygons()
	if len(got) != len(polys) {
		t.Fatalf("expected %d polygons back out of the tree, got %d", len(polys), len(got))
	}
}

func TestBSPCancellationStopsConstruction(t *testing.T) {
	called := false
	isCancelled := func() bool {
		called = true
		return true
	}
	tree := NewBSP(cubePolygons(1), isCancelled)
	if tree != nil {
		t.Fatalf("expected a cancelled build to return nil")
	}
	if !called {
		t.Fatalf("expected isCancelled to be polled")
	}
}
