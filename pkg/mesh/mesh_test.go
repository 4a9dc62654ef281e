package mesh

import (
	"testing"

	"github.com/jaikdean/ShapeScript/pkg/geom"
)

func TestMeshBoundsOfUnitCube(t *testing.T) {
	m := cube(1)
	b := m.Bounds()
	if !b.Min.Equals(geom.New(-1, -1, -1)) || !b.Max.Equals(geom.New(1, 1, 1)) {
		t.Fatalf("unexpected bounds %v..%v", b.Min, b.Max)
	}
}

func TestMeshIsConvexForCube(t *testing.T) {
	if !cube(1).IsConvex() {
		t.Fatalf("a cube should be reported convex")
	}
}

func TestMeshIsWatertightForCube(t *testing.T) {
	if !cube(1).IsWatertight() {
		t.Fatalf("a closed cube should be watertight")
	}
}

func TestMeshIsNotWatertightWithOpenFace(t *testing.T) {
	polys := cubePolygons(1)[1:] // drop one face
	m := New(polys)
	if m.IsWatertight() {
		t.Fatalf("a cube missing a face should not be watertight")
	}
}

func TestMeshSubmeshesSeparatesDisjointSolids(t *testing.T) {
	a := cubePolygons(1)
	b := translatedCube(1, geom.New(10, 0, 0))
	m := New(append(append([]Polygon(nil), a...), b...))

	subs := m.Submeshes()
	if len(subs) != 2 {
		t.Fatalf("expected 2 disjoint submeshes, got %d", len(subs))
	}
}

func TestMeshMaterialsDeduplicatesAndPreservesOrder(t *testing.T) {
	red := &Material{Name: "red"}
	blue := &Material{Name: "blue"}

	polys := cubePolygons(1)
	for i := range polys {
		if i%2 == 0 {
			polys[i] = polys[i].WithMaterial(red)
		} else {
			polys[i] = polys[i].WithMaterial(blue)
		}
	}
	m := New(polys)
	mats := m.Materials()
	if len(mats) != 2 || mats[0] != red || mats[1] != blue {
		t.Fatalf("unexpected materials %v", mats)
	}
}

func TestMeshTransformedMovesBounds(t *testing.T) {
	m := cube(1).Transformed(geom.IdentityTransform.Translated(geom.New(5, 0, 0)))
	b := m.Bounds()
	if !b.Center().Equals(geom.New(5, 0, 0)) {
		t.Fatalf("expected transformed cube centered at (5,0,0), got %v", b.Center())
	}
}

func TestMeshInvertedFlipsContainment(t *testing.T) {
	m := cube(1).Inverted()
	if m.ContainsPoint(geom.Zero) {
		t.Fatalf("inverted cube should not contain its own center")
	}
}

func TestEmptyMeshHasNoBoundsPanic(t *testing.T) {
	if !Empty.IsEmpty() {
		t.Fatalf("Empty should report IsEmpty")
	}
	if !Empty.Bounds().IsEmpty() {
		t.Fatalf("Empty mesh should have empty bounds")
	}
}
