package builder

import (
	"github.com/jaikdean/ShapeScript/pkg/geom"
	"github.com/jaikdean/ShapeScript/pkg/mesh"
)

// hullFace is a triangle of the hull-under-construction, referencing
// points by index with a winding whose Newell normal faces outward.
type hullFace struct{ a, b, c int }

func (f hullFace) normal(points []geom.Vector) geom.Vector {
	return geom.NewellNormal([]geom.Vector{points[f.a], points[f.b], points[f.c]})
}

func (f hullFace) edges() [3][2]int {
	return [3][2]int{{f.a, f.b}, {f.b, f.c}, {f.c, f.a}}
}

// Hull builds the 3D convex hull of points using an incremental
// (Beneath-Beyond style) algorithm: start from an initial tetrahedron,
// then for each remaining point remove the faces it lies in front of and
// stitch new faces from the resulting horizon back to the point. For ≤3
// non-collinear input points, the degenerate flat fan is emitted instead
// of attempting a solid.
func Hull(points []geom.Vector, material *mesh.Material) (mesh.Mesh, error) {
	distinct := dedupePoints(points)
	if len(distinct) < 3 {
		return mesh.Empty, &mesh.GeometryError{Kind: mesh.ErrDegenerateHull, Hint: "hull needs at least 3 non-coincident points"}
	}

	i0, i1, i2, i3, ok := findTetrahedron(distinct)
	if !ok {
		return flatFan(distinct, material)
	}

	faces := initialTetrahedron(distinct, i0, i1, i2, i3)
	for i, p := range distinct {
		if i == i0 || i == i1 || i == i2 || i == i3 {
			continue
		}
		faces = addPointToHull(faces, distinct, p, i)
	}

	var polys []mesh.Polygon
	for _, f := range faces {
		verts := []mesh.Vertex{
			mesh.NewVertex(distinct[f.a], geom.Zero),
			mesh.NewVertex(distinct[f.b], geom.Zero),
			mesh.NewVertex(distinct[f.c], geom.Zero),
		}
		p, err := mesh.NewPolygon(verts, material)
		if err != nil {
			continue
		}
		polys = append(polys, p)
	}
	return mesh.New(polys), nil
}

func dedupePoints(points []geom.Vector) []geom.Vector {
	var out []geom.Vector
	for _, p := range points {
		dup := false
		for _, o := range out {
			if p.Equals(o) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, p)
		}
	}
	return out
}

// findTetrahedron locates 4 points with nonzero enclosed volume, so an
// initial solid tetrahedron can seed the incremental algorithm. ok is
// false when all points are coplanar (including collinear/coincident).
func findTetrahedron(points []geom.Vector) (i0, i1, i2, i3 int, ok bool) {
	n := len(points)
	for a := 0; a < n; a++ {
		for b := a + 1; b < n; b++ {
			for c := b + 1; c < n; c++ {
				normal := geom.NewellNormal([]geom.Vector{points[a], points[b], points[c]})
				if normal.IsZero() {
					continue
				}
				for d := c + 1; d < n; d++ {
					if absf(normal.Dot(points[d].Sub(points[a]))) > geom.Epsilon {
						return a, b, c, d, true
					}
				}
			}
		}
	}
	return 0, 0, 0, 0, false
}

func absf(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

// initialTetrahedron builds the 4 faces of the tetrahedron (i0,i1,i2,i3),
// orienting each outward (away from the tetrahedron's centroid).
func initialTetrahedron(points []geom.Vector, i0, i1, i2, i3 int) []hullFace {
	centroid := points[i0].Add(points[i1]).Add(points[i2]).Add(points[i3]).Scale(0.25)
	candidates := [][3]int{{i0, i1, i2}, {i0, i1, i3}, {i0, i2, i3}, {i1, i2, i3}}

	faces := make([]hullFace, 0, 4)
	for _, c := range candidates {
		f := hullFace{c[0], c[1], c[2]}
		faces = append(faces, orientOutward(f, points, centroid))
	}
	return faces
}

func orientOutward(f hullFace, points []geom.Vector, interior geom.Vector) hullFace {
	n := f.normal(points)
	if n.Dot(points[f.a].Sub(interior)) < 0 {
		return hullFace{f.a, f.c, f.b}
	}
	return f
}

// addPointToHull removes every face p is in front of and stitches the
// resulting horizon to p, leaving faces not visible from p untouched.
func addPointToHull(faces []hullFace, points []geom.Vector, p geom.Vector, pIdx int) []hullFace {
	visible := make(map[int]bool)
	for i, f := range faces {
		n := f.normal(points)
		d := n.Dot(p.Sub(points[f.a]))
		if d > geom.Epsilon {
			visible[i] = true
		}
	}
	if len(visible) == 0 {
		return faces // p lies inside (or on) the current hull
	}

	owner := map[[2]int]int{}
	for i, f := range faces {
		for _, e := range f.edges() {
			owner[e] = i
		}
	}

	var kept []hullFace
	var horizon [][2]int
	for i, f := range faces {
		if !visible[i] {
			kept = append(kept, f)
			continue
		}
		for _, e := range f.edges() {
			opp := [2]int{e[1], e[0]}
			if oi, ok := owner[opp]; !ok || !visible[oi] {
				horizon = append(horizon, e)
			}
		}
	}

	for _, e := range horizon {
		kept = append(kept, hullFace{e[0], e[1], pIdx})
	}
	return kept
}

// flatFan builds the degenerate flat output for ≤3 non-collinear points
// (or coplanar input in general): a single n-gon split into triangles by
// Polygon.Triangulate, with both winding directions present so the result reads
// correctly from either side.
func flatFan(points []geom.Vector, material *mesh.Material) (mesh.Mesh, error) {
	if len(points) < 3 {
		return mesh.Empty, &mesh.GeometryError{Kind: mesh.ErrDegenerateHull, Hint: "hull needs at least 3 non-collinear points"}
	}
	verts := make([]mesh.Vertex, len(points))
	for i, p := range points {
		verts[i] = mesh.NewVertex(p, geom.Zero)
	}
	face, err := mesh.NewPolygon(verts, material)
	if err != nil {
		return mesh.Empty, err
	}
	tris := face.Triangulate()
	var polys []mesh.Polygon
	for _, t := range tris {
		polys = append(polys, t, t.Flipped())
	}
	return mesh.New(polys), nil
}
