package meshio

import (
	"testing"

	"github.com/jaikdean/ShapeScript/pkg/geom"
	"github.com/jaikdean/ShapeScript/pkg/mesh"
)

func square(material *mesh.Material) mesh.Polygon {
	verts := []mesh.Vertex{
		mesh.NewVertex(geom.New(0, 0, 0), geom.New(0, 0, 1)),
		mesh.NewVertex(geom.New(1, 0, 0), geom.New(0, 0, 1)),
		mesh.NewVertex(geom.New(1, 1, 0), geom.New(0, 0, 1)),
		mesh.NewVertex(geom.New(0, 1, 0), geom.New(0, 0, 1)),
	}
	p, err := mesh.NewPolygon(verts, material)
	if err != nil {
		panic(err)
	}
	return p
}

func TestEncodeDecodeRoundTripsFlatMeshWithNoMaterial(t *testing.T) {
	m := mesh.New([]mesh.Polygon{square(nil)})

	data, err := Encode(m)
	if err != nil {
		t.Fatalf("encode error: %v", err)
	}
	got, err := Decode(data)
	if err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if len(got.Polygons()) != 1 {
		t.Fatalf("expected 1 polygon, got %d", len(got.Polygons()))
	}
	if len(got.Polygons()[0].Vertices) != 4 {
		t.Fatalf("expected 4 vertices, got %d", len(got.Polygons()[0].Vertices))
	}
}

func TestEncodeDecodeRoundTripsGroupedMeshWithMaterials(t *testing.T) {
	red := &mesh.Material{Name: "red", Color: geom.Red}
	blue := &mesh.Material{Name: "blue", Color: geom.Blue}
	m := mesh.New([]mesh.Polygon{square(red), square(blue), square(red)})

	data, err := Encode(m)
	if err != nil {
		t.Fatalf("encode error: %v", err)
	}
	got, err := Decode(data)
	if err != nil {
		t.Fatalf("decode error: %v", err)
	}
	polys := got.Polygons()
	if len(polys) != 3 {
		t.Fatalf("expected 3 polygons, got %d", len(polys))
	}
	mats := got.Materials()
	if len(mats) != 2 {
		t.Fatalf("expected 2 distinct materials, got %d", len(mats))
	}
	for _, p := range polys {
		if p.Material == nil {
			t.Fatalf("expected every polygon to have a material")
		}
		if p.Material.Name != "red" && p.Material.Name != "blue" {
			t.Fatalf("unexpected material name %q", p.Material.Name)
		}
	}
}

func TestEncodePreservesVertexPositions(t *testing.T) {
	m := mesh.New([]mesh.Polygon{square(nil)})
	data, err := Encode(m)
	if err != nil {
		t.Fatalf("encode error: %v", err)
	}
	got, err := Decode(data)
	if err != nil {
		t.Fatalf("decode error: %v", err)
	}
	want := square(nil).Vertices
	have := got.Polygons()[0].Vertices
	for i := range want {
		if !want[i].Position.Equals(have[i].Position) {
			t.Fatalf("vertex %d position mismatch: want %v, got %v", i, want[i].Position, have[i].Position)
		}
	}
}

func TestDecodeRejectsMismatchedGroupCount(t *testing.T) {
	bad := `{"materials":[{"name":"a","color":"#ff0000"},{"name":"b","color":"#0000ff"}],"polygons":[[]]}`
	if _, err := Decode([]byte(bad)); err == nil {
		t.Fatalf("expected an error for mismatched group/material counts")
	}
}
