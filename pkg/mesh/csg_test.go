package mesh

import (
	"math"
	"testing"

	"github.com/jaikdean/ShapeScript/pkg/geom"
)

func translatedCube(half float64, offset geom.Vector) []Polygon {
	t := geom.IdentityTransform.Translated(offset)
	polys := cubePolygons(half)
	out := make([]Polygon, len(polys))
	for i, p := range polys {
		out[i] = p.Transformed(t)
	}
	return out
}

func TestUnionContainsBothOperands(t *testing.T) {
	a := cubePolygons(1)
	b := translatedCube(1, geom.New(1.5, 0, 0))

	result := Union(a, b, nil)
	tree := NewBSP(result, nil)

	if !tree.ContainsPoint(geom.New(-0.5, 0, 0)) {
		t.Fatalf("union should contain a point only inside a")
	}
	if !tree.ContainsPoint(geom.New(2, 0, 0)) {
		t.Fatalf("union should contain a point only inside b")
	}
	if tree.ContainsPoint(geom.New(5, 0, 0)) {
		t.Fatalf("union should not contain a point outside both")
	}
}

func TestIntersectionKeepsOnlyOverlap(t *testing.T) {
	a := cubePolygons(1)
	b := translatedCube(1, geom.New(1.5, 0, 0))

	result := Intersection(a, b, nil)
	tree := NewBSP(result, nil)

	if !tree.ContainsPoint(geom.New(0.9, 0, 0)) {
		t.Fatalf("intersection should contain the overlap region")
	}
	if tree.ContainsPoint(geom.New(-0.9, 0, 0)) {
		t.Fatalf("intersection should not contain a point only in a")
	}
	if tree.ContainsPoint(geom.New(2, 0, 0)) {
		t.Fatalf("intersection should not contain a point only in b")
	}
}

func TestDifferenceRemovesOverlap(t *testing.T) {
	a := cubePolygons(1)
	b := translatedCube(1, geom.New(1.5, 0, 0))

	result := Difference(a, b, nil)
	tree := NewBSP(result, nil)

	if !tree.ContainsPoint(geom.New(-0.9, 0, 0)) {
		t.Fatalf("difference should keep the part of a outside b")
	}
	if tree.ContainsPoint(geom.New(0.9, 0, 0)) {
		t.Fatalf("difference should remove the overlap")
	}
	if tree.ContainsPoint(geom.New(2, 0, 0)) {
		t.Fatalf("difference should not contain any of b outside the overlap")
	}
}

func TestXorMatchesUnionMinusIntersection(t *testing.T) {
	a := cubePolygons(1)
	b := translatedCube(1, geom.New(1.5, 0, 0))

	xorTree := NewBSP(Xor(a, b, nil), nil)

	if xorTree.ContainsPoint(geom.New(0.9, 0, 0)) {
		t.Fatalf("xor should exclude the shared interior")
	}
	if !xorTree.ContainsPoint(geom.New(-0.9, 0, 0)) {
		t.Fatalf("xor should keep the exclusive part of a")
	}
	if !xorTree.ContainsPoint(geom.New(2, 0, 0)) {
		t.Fatalf("xor should keep the exclusive part of b")
	}
}

func TestStencilKeepsGeometryAndRecolorsOverlap(t *testing.T) {
	a := cubePolygons(1)
	b := translatedCube(1, geom.New(1.5, 0, 0))
	stamp := &Material{Name: "stamped"}

	result := Stencil(a, b, stamp, nil)
	tree := NewBSP(result, nil)

	if !tree.ContainsPoint(geom.New(-0.9, 0, 0)) || !tree.ContainsPoint(geom.New(0.9, 0, 0)) {
		t.Fatalf("stencil must preserve all of a's volume")
	}

	var sawStamped bool
	for _, p := range result {
		if p.Material == stamp {
			sawStamped = true
		}
	}
	if !sawStamped {
		t.Fatalf("expected at least one polygon recolored with the stamp material")
	}
}

// rotatedCube builds a cube whose faces don't share any plane normal with
// an axis-aligned one, so a stencil's recolored fragments can be told
// apart by which operand's own face plane they descend from.
func rotatedCube(half float64, offset geom.Vector) []Polygon {
	t := geom.IdentityTransform.Rotated(geom.FromAxisAngle(geom.New(0, 1, 0), math.Pi/4)).Translated(offset)
	polys := cubePolygons(half)
	out := make([]Polygon, len(polys))
	for i, p := range polys {
		out[i] = p.Transformed(t)
	}
	return out
}

func TestStencilRecoloredPortionComesFromB(t *testing.T) {
	a := cubePolygons(1)
	b := rotatedCube(1, geom.New(1, 0, 0))
	stamp := &Material{Name: "stamped"}

	result := Stencil(a, b, stamp, nil)

	axisNormal := func(n geom.Vector) bool {
		axes := []geom.Vector{geom.New(1, 0, 0), geom.New(0, 1, 0), geom.New(0, 0, 1)}
		for _, ax := range axes {
			if ax.Sub(n).Length() < 1e-6 || ax.Add(n).Length() < 1e-6 {
				return true
			}
		}
		return false
	}

	var sawNonAxisStamped bool
	for _, p := range result {
		if p.Material == stamp && !axisNormal(p.Plane.Normal) {
			sawNonAxisStamped = true
		}
	}
	if !sawNonAxisStamped {
		t.Fatalf("expected the recolored overlap to include fragments of b's own (rotated) faces, not just a's axis-aligned ones")
	}
}
