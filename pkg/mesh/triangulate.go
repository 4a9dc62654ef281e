package mesh

import "github.com/jaikdean/ShapeScript/pkg/geom"

// Triangulate decomposes p into triangles by ear clipping in p's own
// plane. Convex polygons (the common case, since every Polygon is already
// required to be convex) triangulate trivially as a fan from the first
// vertex; the general ear-clipping loop below still handles them
// correctly, it just never needs to reject an ear.
func (p Polygon) Triangulate() []Polygon {
	n := len(p.Vertices)
	if n == 3 {
		return []Polygon{p}
	}

	u, v := planeBasis(p.Plane.Normal)
	project := func(pos geom.Vector) (float64, float64) {
		return pos.Dot(u), pos.Dot(v)
	}

	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}

	var tris []Polygon
	for len(indices) > 3 {
		earFound := false
		m := len(indices)
		for k := 0; k < m; k++ {
			i0 := indices[(k+m-1)%m]
			i1 := indices[k]
			i2 := indices[(k+1)%m]

			a := p.Vertices[i0].Position
			b := p.Vertices[i1].Position
			c := p.Vertices[i2].Position
			ax, ay := project(a)
			bx, by := project(b)
			cx, cy := project(c)

			if cross2(ax, ay, bx, by, cx, cy) <= geom.Epsilon {
				continue // reflex or degenerate at this vertex
			}

			isEar := true
			for _, idx := range indices {
				if idx == i0 || idx == i1 || idx == i2 {
					continue
				}
				px, py := project(p.Vertices[idx].Position)
				if pointInTriangle2(px, py, ax, ay, bx, by, cx, cy) {
					isEar = false
					break
				}
			}
			if !isEar {
				continue
			}

			tri, err := newPolygonWithID([]Vertex{p.Vertices[i0], p.Vertices[i1], p.Vertices[i2]}, p.Material, p.ID)
			if err == nil {
				tris = append(tris, tri)
			}
			indices = append(indices[:k], indices[k+1:]...)
			earFound = true
			break
		}
		if !earFound {
			// Numerically degenerate remainder; fan out what's left rather
			// than looping forever.
			break
		}
	}
	if len(indices) == 3 {
		tri, err := newPolygonWithID([]Vertex{
			p.Vertices[indices[0]], p.Vertices[indices[1]], p.Vertices[indices[2]],
		}, p.Material, p.ID)
		if err == nil {
			tris = append(tris, tri)
		}
	}
	return tris
}

// planeBasis picks two orthonormal vectors spanning the plane with the
// given normal, for projecting 3D points to 2D during triangulation.
func planeBasis(normal geom.Vector) (geom.Vector, geom.Vector) {
	ref := geom.New(0, 1, 0)
	if absf(normal.Dot(ref)) > 0.9 {
		ref = geom.New(1, 0, 0)
	}
	u := ref.Cross(normal).Normalized()
	v := normal.Cross(u).Normalized()
	return u, v
}

func cross2(ax, ay, bx, by, cx, cy float64) float64 {
	return (bx-ax)*(cy-ay) - (by-ay)*(cx-ax)
}

func pointInTriangle2(px, py, ax, ay, bx, by, cx, cy float64) bool {
	d1 := cross2(ax, ay, bx, by, px, py)
	d2 := cross2(bx, by, cx, cy, px, py)
	d3 := cross2(cx, cy, ax, ay, px, py)
	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}
