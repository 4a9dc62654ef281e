package path

import (
	"testing"

	"github.com/jaikdean/ShapeScript/pkg/geom"
)

func square() Path {
	return New([]PathPoint{
		Corner(geom.New(-1, -1, 0)),
		Corner(geom.New(1, -1, 0)),
		Corner(geom.New(1, 1, 0)),
		Corner(geom.New(-1, 1, 0)),
		Corner(geom.New(-1, -1, 0)),
	})
}

func TestPathIsClosedRequiresMatchingEndpoints(t *testing.T) {
	if !square().IsClosed() {
		t.Fatalf("square should report closed")
	}
	open := New(square().Points[:4])
	if open.IsClosed() {
		t.Fatalf("open path should not report closed")
	}
}

func TestPathBoundsOfSquare(t *testing.T) {
	b := square().Bounds()
	if !b.Min.Equals(geom.New(-1, -1, 0)) || !b.Max.Equals(geom.New(1, 1, 0)) {
		t.Fatalf("unexpected bounds %v..%v", b.Min, b.Max)
	}
}

func TestPathPlaneOfSquareFacesZ(t *testing.T) {
	plane, ok := square().Plane()
	if !ok {
		t.Fatalf("expected a planar path to report a plane")
	}
	if absf(plane.Normal.Dot(geom.New(0, 0, 1))-1) > 1e-6 {
		t.Fatalf("expected square's normal to point along +Z, got %v", plane.Normal)
	}
}

func TestPathIsSimpleRejectsSelfCrossing(t *testing.T) {
	bowtie := New([]PathPoint{
		Corner(geom.New(-1, -1, 0)),
		Corner(geom.New(1, 1, 0)),
		Corner(geom.New(1, -1, 0)),
		Corner(geom.New(-1, 1, 0)),
		Corner(geom.New(-1, -1, 0)),
	})
	if bowtie.IsSimple() {
		t.Fatalf("expected bowtie path to be reported non-simple")
	}
	if !square().IsSimple() {
		t.Fatalf("expected square to be simple")
	}
}

func TestPathSubpathsSplitsAtRepeatedPoint(t *testing.T) {
	figure8 := New([]PathPoint{
		Corner(geom.New(0, 0, 0)),
		Corner(geom.New(1, 1, 0)),
		Corner(geom.New(1, -1, 0)),
		Corner(geom.New(0, 0, 0)),
		Corner(geom.New(-1, 1, 0)),
		Corner(geom.New(-1, -1, 0)),
		Corner(geom.New(0, 0, 0)),
	})
	subs := figure8.Subpaths()
	if len(subs) != 2 {
		t.Fatalf("expected figure-8 to split into 2 subpaths, got %d", len(subs))
	}
}

func TestPathFaceVerticesOfSquareYieldsTwoTriangles(t *testing.T) {
	tris, err := square().FaceVertices(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tris) != 2 {
		t.Fatalf("expected 2 triangles, got %d", len(tris))
	}
}

func TestPathEdgeVerticesEmitsPairsPerSegment(t *testing.T) {
	p := square()
	outward := func(i int) geom.Vector { return geom.New(0, 0, 1) }
	verts := p.EdgeVertices(outward)
	if len(verts) != 2*(len(p.Points)-1) {
		t.Fatalf("expected %d vertices, got %d", 2*(len(p.Points)-1), len(verts))
	}
}

func TestPathClipToYAxisKeepsOnlyNegativeHalf(t *testing.T) {
	p := New([]PathPoint{
		Corner(geom.New(-1, 0, 0)),
		Corner(geom.New(1, 0, 0)),
	})
	clipped := p.ClipToYAxis()
	for _, pt := range clipped.Points {
		if pt.Position.X > geom.Epsilon {
			t.Fatalf("expected no point with positive x, got %v", pt.Position)
		}
	}
}
