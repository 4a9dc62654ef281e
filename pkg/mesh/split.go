package mesh

import "github.com/jaikdean/ShapeScript/pkg/geom"

// vertex classification bit flags, combined across a polygon's vertices to
// decide which of the four buckets the whole polygon falls into.
const (
	classCoplanar = 0
	classFront    = 1
	classBack     = 2
	classSpanning = 3
)

func classifyVertex(v geom.Vector, p geom.Plane) int {
	d := v.DistanceToPlane(p)
	switch {
	case d > geom.Epsilon:
		return classFront
	case d < -geom.Epsilon:
		return classBack
	default:
		return classCoplanar
	}
}

// SplitByPlane partitions q against plane: coplanar pieces go to
// coplanarFront/coplanarBack depending on the sign of
// plane.Normal . q.Plane.Normal; front/back pieces pass through unchanged;
// spanning polygons are cut, with both output pieces inheriting q's ID so a
// caller can later recognize them as having split a common ancestor.
func (q Polygon) SplitByPlane(plane geom.Plane) (coplanarFront, coplanarBack []Polygon, front, back *Polygon) {
	vertexClass := make([]int, len(q.Vertices))
	polygonClass := classCoplanar
	for i, v := range q.Vertices {
		c := classifyVertex(v.Position, plane)
		vertexClass[i] = c
		polygonClass |= c
	}

	switch polygonClass {
	case classCoplanar:
		if plane.Normal.Dot(q.Plane.Normal) > 0 {
			coplanarFront = append(coplanarFront, q)
		} else {
			coplanarBack = append(coplanarBack, q)
		}
		return

	case classFront:
		f := q
		return nil, nil, &f, nil

	case classBack:
		b := q
		return nil, nil, nil, &b

	default: // classSpanning
		var frontVerts, backVerts []Vertex
		n := len(q.Vertices)
		for i := 0; i < n; i++ {
			j := (i + 1) % n
			ti, tj := vertexClass[i], vertexClass[j]
			vi, vj := q.Vertices[i], q.Vertices[j]

			// A coplanar vertex (ti == classCoplanar) belongs to both sides.
			if ti != classBack {
				frontVerts = append(frontVerts, vi)
			}
			if ti != classFront {
				backVerts = append(backVerts, vi)
			}

			if (ti | tj) == classSpanning {
				t := (plane.W - plane.Normal.Dot(vi.Position)) /
					plane.Normal.Dot(vj.Position.Sub(vi.Position))
				mid := vi.Lerp(vj, t)
				frontVerts = append(frontVerts, mid)
				backVerts = append(backVerts, mid)
			}
		}

		newID := q.ID
		if len(frontVerts) >= 3 && len(backVerts) >= 3 {
			// A genuine split: the two descendants get a fresh shared id so
			// that callers can tell them apart from an unsplit polygon that
			// merely passed through a node unchanged.
			newID = NextPolygonID()
		}

		if len(frontVerts) >= 3 {
			fp := Polygon{Vertices: frontVerts, Plane: q.Plane, Material: q.Material, ID: newID}
			front = &fp
		}
		if len(backVerts) >= 3 {
			bp := Polygon{Vertices: backVerts, Plane: q.Plane, Material: q.Material, ID: newID}
			back = &bp
		}
		return
	}
}
