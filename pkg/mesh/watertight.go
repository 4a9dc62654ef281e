package mesh

import "github.com/jaikdean/ShapeScript/pkg/geom"

// computeWatertight reports whether every undirected edge formed by
// consecutive polygon vertices has even multiplicity across the whole
// polygon set: every boundary is shared by exactly two faces, or by some
// other even number of faces at a non-manifold seam, leaving no dangling
// edge with only one adjacent face.
func computeWatertight(polygons []Polygon) bool {
	counts := edgeCounts(polygons)
	for _, c := range counts {
		if c%2 != 0 {
			return false
		}
	}
	return true
}

func edgeCounts(polygons []Polygon) map[geom.LineSegment]int {
	counts := make(map[geom.LineSegment]int)
	for _, p := range polygons {
		n := len(p.Vertices)
		for i := 0; i < n; i++ {
			seg := geom.NewLineSegment(p.Vertices[i].Position, p.Vertices[(i+1)%n].Position)
			if seg.IsDegenerate() {
				continue
			}
			counts[seg]++
		}
	}
	return counts
}

// RepairTJunctions attempts to close single-face ("dangling") edges caused
// by T-junctions: a vertex from one polygon landing in the middle of an
// unbroken edge belonging to another. For every dangling edge it looks for
// a vertex of some other polygon lying strictly between the edge's
// endpoints and, if found, splits the edge there so the two fragments each
// get their own matching counterpart. This is best-effort: topology that
// isn't a simple T-junction (genuine gaps, non-manifold seams) is left
// unchanged.
func RepairTJunctions(polygons []Polygon) []Polygon {
	counts := edgeCounts(polygons)
	dangling := map[geom.LineSegment]bool{}
	for seg, c := range counts {
		if c == 1 {
			dangling[seg] = true
		}
	}
	if len(dangling) == 0 {
		return polygons
	}

	splitPoints := map[geom.LineSegment][]geom.Vector{}
	for _, p := range polygons {
		for _, v := range p.Vertices {
			for seg := range dangling {
				if liesStrictlyBetween(v.Position, seg.Start, seg.End) {
					splitPoints[seg] = append(splitPoints[seg], v.Position)
				}
			}
		}
	}
	if len(splitPoints) == 0 {
		return polygons
	}

	out := make([]Polygon, 0, len(polygons))
	for _, p := range polygons {
		out = append(out, insertTJunctionVertices(p, splitPoints))
	}
	return out
}

func liesStrictlyBetween(v, a, b geom.Vector) bool {
	if v.Equals(a) || v.Equals(b) {
		return false
	}
	ab := b.Sub(a)
	av := v.Sub(a)
	length := ab.Length()
	if length < geom.Epsilon {
		return false
	}
	t := av.Dot(ab) / (length * length)
	if t <= geom.Epsilon || t >= 1-geom.Epsilon {
		return false
	}
	proj := a.Add(ab.Scale(t))
	return proj.Distance(v) < geom.Epsilon
}

// insertTJunctionVertices rebuilds p's vertex loop, inserting an
// interpolated vertex wherever an edge of p matches a dangling edge that
// other polygons want split.
func insertTJunctionVertices(p Polygon, splitPoints map[geom.LineSegment][]geom.Vector) Polygon {
	n := len(p.Vertices)
	var verts []Vertex
	for i := 0; i < n; i++ {
		vi := p.Vertices[i]
		vj := p.Vertices[(i+1)%n]
		verts = append(verts, vi)

		seg := geom.NewLineSegment(vi.Position, vj.Position)
		points, ok := splitPoints[seg]
		if !ok {
			continue
		}
		points = orderAlongSegment(points, vi.Position, vj.Position)
		for _, pt := range points {
			t := vi.Position.Distance(pt) / seg.Length()
			verts = append(verts, vi.Lerp(vj, t))
		}
	}
	if len(verts) == len(p.Vertices) {
		return p
	}
	return Polygon{Vertices: verts, Plane: p.Plane, Material: p.Material, ID: p.ID}
}

func orderAlongSegment(points []geom.Vector, start, _ geom.Vector) []geom.Vector {
	out := append([]geom.Vector(nil), points...)
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && start.Distance(out[j]) < start.Distance(out[j-1]); j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}
