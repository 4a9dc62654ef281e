package mesh

import (
	"sync/atomic"

	"github.com/jaikdean/ShapeScript/pkg/geom"
)

// nextPolygonID allocates the monotonically increasing polygon identifiers
// used to tie-break coplanar fragments that descend from a common ancestor
// polygon.
var nextPolygonID int64

// NextPolygonID returns a fresh polygon id.
func NextPolygonID() int {
	return int(atomic.AddInt64(&nextPolygonID, 1))
}

// Polygon is a planar, convex, non-self-intersecting loop of at least three
// vertices.
type Polygon struct {
	Vertices []Vertex
	Plane    geom.Plane
	Material *Material
	ID       int
}

// NewPolygon builds a Polygon from an ordered, already-convex vertex loop,
// computing its plane by Newell's method (the same technique pkg/path uses
// for Path.plane) so that near-planar numerical noise in the input doesn't
// reject valid input. Vertices with a zero normal are assigned the plane's
// normal.
func NewPolygon(vertices []Vertex, material *Material) (Polygon, error) {
	return newPolygonWithID(vertices, material, NextPolygonID())
}

func newPolygonWithID(vertices []Vertex, material *Material, id int) (Polygon, error) {
	if len(vertices) < 3 {
		return Polygon{}, &GeometryError{Kind: ErrNonPlanarPolygon, Hint: "a polygon needs at least 3 vertices"}
	}
	normal := newellNormal(vertices)
	if normal.IsZero() {
		return Polygon{}, &GeometryError{Kind: ErrNonPlanarPolygon, Hint: "polygon vertices are collinear or coincident"}
	}
	plane := geom.Plane{Normal: normal, W: normal.Dot(vertices[0].Position)}

	for _, v := range vertices {
		if d := v.Position.DistanceToPlane(plane); absf(d) > geom.Epsilon*8 {
			return Polygon{}, &GeometryError{Kind: ErrNonPlanarPolygon, Hint: "polygon vertices are not coplanar"}
		}
	}

	out := make([]Vertex, len(vertices))
	for i, v := range vertices {
		if v.Normal.IsZero() {
			v.Normal = plane.Normal
		}
		out[i] = v
	}

	return Polygon{Vertices: out, Plane: plane, Material: material, ID: id}, nil
}

func absf(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

// newellNormal computes a polygon normal robust to mild non-planarity via
// geom.NewellNormal over the vertex positions.
func newellNormal(vertices []Vertex) geom.Vector {
	points := make([]geom.Vector, len(vertices))
	for i, v := range vertices {
		points[i] = v.Position
	}
	return geom.NewellNormal(points)
}

// Flipped reverses the winding order and negates both the plane and every
// vertex normal, so the polygon faces the opposite direction.
func (p Polygon) Flipped() Polygon {
	verts := make([]Vertex, len(p.Vertices))
	n := len(p.Vertices)
	for i, v := range p.Vertices {
		verts[n-1-i] = v.Flipped()
	}
	return Polygon{Vertices: verts, Plane: p.Plane.Flipped(), Material: p.Material, ID: p.ID}
}

// Transformed applies t to every vertex and recomputes the plane.
func (p Polygon) Transformed(t geom.Transform) Polygon {
	verts := make([]Vertex, len(p.Vertices))
	for i, v := range p.Vertices {
		verts[i] = v.Transformed(t)
	}
	n := t.ApplyNormal(p.Plane.Normal)
	w := n.Dot(verts[0].Position)
	return Polygon{Vertices: verts, Plane: geom.Plane{Normal: n, W: w}, Material: p.Material, ID: p.ID}
}

// WithMaterial returns a copy of p with its material replaced.
func (p Polygon) WithMaterial(m *Material) Polygon {
	p.Material = m
	return p
}

// Centroid returns the arithmetic mean of the polygon's vertex positions.
func (p Polygon) Centroid() geom.Vector {
	var sum geom.Vector
	for _, v := range p.Vertices {
		sum = sum.Add(v.Position)
	}
	return sum.Scale(1 / float64(len(p.Vertices)))
}

// SharesEdgeAndID reports whether p and o share a full edge (the same two
// endpoints, in either order) and descend from the same source polygon.
// Used by the coplanar-polygon detessellator.
func (p Polygon) SharesEdgeAndID(o Polygon) bool {
	if p.ID != o.ID || !p.Plane.Equals(o.Plane) {
		return false
	}
	for _, e1 := range p.edges() {
		for _, e2 := range o.edges() {
			if e1.Equals(e2) {
				return true
			}
		}
	}
	return false
}

func (p Polygon) edges() []geom.LineSegment {
	n := len(p.Vertices)
	out := make([]geom.LineSegment, n)
	for i := 0; i < n; i++ {
		out[i] = geom.NewLineSegment(p.Vertices[i].Position, p.Vertices[(i+1)%n].Position)
	}
	return out
}
