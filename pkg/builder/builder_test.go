package builder

import (
	"testing"

	"github.com/jaikdean/ShapeScript/pkg/geom"
	"github.com/jaikdean/ShapeScript/pkg/path"
)

func squarePath() path.Path {
	return path.New([]path.PathPoint{
		path.Corner(geom.New(-1, -1, 0)),
		path.Corner(geom.New(1, -1, 0)),
		path.Corner(geom.New(1, 1, 0)),
		path.Corner(geom.New(-1, 1, 0)),
		path.Corner(geom.New(-1, -1, 0)),
	})
}

func TestExtrudeProducesWatertightBox(t *testing.T) {
	m, err := Extrude([]path.Path{squarePath()}, geom.New(0, 0, 1), 2, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.IsEmpty() {
		t.Fatalf("expected non-empty mesh")
	}
	if !m.IsWatertight() {
		t.Fatalf("expected extruded closed planar path to be watertight")
	}
	if !m.ContainsPoint(geom.New(0, 0, 1)) {
		t.Fatalf("expected extruded box to contain its own center")
	}
}

func TestExtrudeAlongGuideProducesWatertightSweep(t *testing.T) {
	guide := path.New([]path.PathPoint{
		path.Corner(geom.New(0, 0, 0)),
		path.Corner(geom.New(0, 0, 1)),
		path.Corner(geom.New(0, 0, 2)),
	})
	m, err := Extrude([]path.Path{squarePath()}, geom.New(0, 0, 1), 0, &guide, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.IsEmpty() {
		t.Fatalf("expected non-empty mesh")
	}
	if !m.IsWatertight() {
		t.Fatalf("expected a guide-path sweep of a closed planar path to be watertight")
	}
	if !m.ContainsPoint(geom.New(0, 0, 1)) {
		t.Fatalf("expected the sweep to contain a point on its own guide path")
	}
}

func TestExtrudeAlongGuideRejectsDegenerateGuide(t *testing.T) {
	guide := path.New([]path.PathPoint{path.Corner(geom.New(0, 0, 0))})
	_, err := Extrude([]path.Path{squarePath()}, geom.New(0, 0, 1), 0, &guide, nil)
	if err == nil {
		t.Fatalf("expected an error for a guide path with fewer than 2 points")
	}
}

func TestLatheProducesNonEmptyMesh(t *testing.T) {
	profile := path.New([]path.PathPoint{
		path.Corner(geom.New(-1, -1, 0)),
		path.Corner(geom.New(-2, 0, 0)),
		path.Corner(geom.New(-1, 1, 0)),
	})
	m, err := Lathe([]path.Path{profile}, 12, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.IsEmpty() {
		t.Fatalf("expected lathe to produce polygons")
	}
}

func TestLoftBetweenTwoSquares(t *testing.T) {
	bottom := squarePath()
	top := path.New([]path.PathPoint{
		path.Corner(geom.New(-1, -1, 2)),
		path.Corner(geom.New(1, -1, 2)),
		path.Corner(geom.New(1, 1, 2)),
		path.Corner(geom.New(-1, 1, 2)),
		path.Corner(geom.New(-1, -1, 2)),
	})
	m, err := Loft([]path.Path{bottom, top}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.IsEmpty() {
		t.Fatalf("expected loft to produce polygons")
	}
}

func TestLoftRejectsMismatchedPointCounts(t *testing.T) {
	bottom := squarePath()
	triangle := path.New([]path.PathPoint{
		path.Corner(geom.New(-1, -1, 2)),
		path.Corner(geom.New(1, -1, 2)),
		path.Corner(geom.New(-1, -1, 2)),
	})
	if _, err := Loft([]path.Path{bottom, triangle}, nil); err == nil {
		t.Fatalf("expected an error for mismatched point counts")
	}
}

func TestFillProducesSingleFace(t *testing.T) {
	m, err := Fill([]path.Path{squarePath()}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.IsEmpty() {
		t.Fatalf("expected fill to produce polygons")
	}
}

func TestHullOfCubeCornersIsConvex(t *testing.T) {
	corners := []geom.Vector{
		geom.New(-1, -1, -1), geom.New(1, -1, -1), geom.New(1, 1, -1), geom.New(-1, 1, -1),
		geom.New(-1, -1, 1), geom.New(1, -1, 1), geom.New(1, 1, 1), geom.New(-1, 1, 1),
	}
	m, err := Hull(corners, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !m.ContainsPoint(geom.Zero) {
		t.Fatalf("expected hull of cube corners to contain the origin")
	}
	if m.ContainsPoint(geom.New(5, 0, 0)) {
		t.Fatalf("expected hull to not extend beyond its input points")
	}
}

func TestHullOfThreePointsEmitsFlatFan(t *testing.T) {
	m, err := Hull([]geom.Vector{
		geom.New(0, 0, 0), geom.New(1, 0, 0), geom.New(0, 1, 0),
	}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.IsEmpty() {
		t.Fatalf("expected a degenerate flat fan, not an empty mesh")
	}
}

func TestHullOfCollinearPointsErrors(t *testing.T) {
	if _, err := Hull([]geom.Vector{
		geom.New(0, 0, 0), geom.New(1, 0, 0), geom.New(2, 0, 0),
	}, nil); err == nil {
		t.Fatalf("expected an error for collinear points")
	}
}
