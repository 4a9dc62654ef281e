package path

import (
	"testing"

	"github.com/jaikdean/ShapeScript/pkg/geom"
)

func TestSubdivideCurvesThroughSingleControlPoint(t *testing.T) {
	points := []PathPoint{
		Corner(geom.New(-1, 0, 0)),
		Curve(geom.New(0, 1, 0)),
		Corner(geom.New(1, 0, 0)),
	}

	got := SubdivideCurves(points, 4)
	if len(got) != 5 {
		t.Fatalf("expected 5 points, got %d", len(got))
	}

	p := New(got)
	verts := p.EdgeVertices(func(int) geom.Vector { return geom.New(0, 0, 1) })
	if len(verts) != 8 {
		t.Fatalf("expected 8 edge vertices, got %d", len(verts))
	}

	if !got[0].Position.Equals(geom.New(-1, 0, 0)) {
		t.Errorf("expected first point unchanged, got %v", got[0].Position)
	}
	if !got[len(got)-1].Position.Equals(geom.New(1, 0, 0)) {
		t.Errorf("expected last point unchanged, got %v", got[len(got)-1].Position)
	}
	if got[0].IsCurved || got[len(got)-1].IsCurved {
		t.Errorf("expected flanking points to stay sharp corners")
	}
}

func TestSubdivideCurvesLeavesCornerOnlyPathsUnchanged(t *testing.T) {
	points := square().Points
	got := SubdivideCurves(points, 4)
	if len(got) != len(points) {
		t.Fatalf("expected %d points, got %d", len(points), len(got))
	}
}

func TestSubdivideCurvesInsertsImpliedMidpointBetweenConsecutiveCurves(t *testing.T) {
	points := []PathPoint{
		Corner(geom.New(0, 0, 0)),
		Curve(geom.New(1, 1, 0)),
		Curve(geom.New(2, -1, 0)),
		Corner(geom.New(3, 0, 0)),
	}

	got := SubdivideCurves(points, 2)
	// detail=2 yields one interior point per half-segment plus the implied
	// midpoint anchor, so both bezier halves contribute their own points.
	if len(got) < 4 {
		t.Fatalf("expected at least 4 points, got %d", len(got))
	}
	if !got[0].Position.Equals(geom.New(0, 0, 0)) {
		t.Errorf("expected path to start at the first corner, got %v", got[0].Position)
	}
	if !got[len(got)-1].Position.Equals(geom.New(3, 0, 0)) {
		t.Errorf("expected path to end at the last corner, got %v", got[len(got)-1].Position)
	}
}

func TestSubdivideCurvesFloorsDetailAtOne(t *testing.T) {
	points := []PathPoint{
		Corner(geom.New(-1, 0, 0)),
		Curve(geom.New(0, 1, 0)),
		Corner(geom.New(1, 0, 0)),
	}
	got := SubdivideCurves(points, 0)
	if len(got) != 2 {
		t.Fatalf("expected curve control point collapsed to a single straight segment, got %d points", len(got))
	}
}
