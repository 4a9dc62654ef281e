package mesh

// Detessellate folds coplanar polygon fragments that descend from the same
// source polygon (SharesEdgeAndID) and share a full edge back into a
// single polygon. This is the conservative merge a CSG operator's result
// gets before it's returned: only pairs that are unambiguously part of the
// same original face and meet cleanly along one whole edge are merged, so
// the pass can only ever remove seams, never introduce the holes an
// unconditional detessellate risks.
func Detessellate(polygons []Polygon) []Polygon {
	out := append([]Polygon(nil), polygons...)
	for {
		merged := false
		for i := 0; i < len(out) && !merged; i++ {
			for j := i + 1; j < len(out); j++ {
				if !out[i].SharesEdgeAndID(out[j]) {
					continue
				}
				m, ok := mergeAlongSharedEdge(out[i], out[j])
				if !ok {
					continue
				}
				out[i] = m
				out = append(out[:j], out[j+1:]...)
				merged = true
				break
			}
		}
		if !merged {
			return out
		}
	}
}

// mergeAlongSharedEdge splices p and o into a single polygon by dropping
// their shared edge, assuming (as two fragments of the same source face
// produced by BSP clipping always do) that the edge runs in opposite
// directions around each fragment's loop.
func mergeAlongSharedEdge(p, o Polygon) (Polygon, bool) {
	pi, oj, ok := reversedSharedEdge(p, o)
	if !ok {
		return Polygon{}, false
	}
	chainP := rotateVertices(p.Vertices, pi+1)
	chainQ := rotateVertices(o.Vertices, oj+1)
	if len(chainP) < 2 || len(chainQ) < 2 {
		return Polygon{}, false
	}

	merged := make([]Vertex, 0, len(chainP)+len(chainQ)-2)
	merged = append(merged, chainP...)
	merged = append(merged, chainQ[1:len(chainQ)-1]...)
	if len(merged) < 3 {
		return Polygon{}, false
	}
	return Polygon{Vertices: merged, Plane: p.Plane, Material: p.Material, ID: p.ID}, true
}

// reversedSharedEdge finds an edge of p and an edge of o that connect the
// same two points in opposite directions, returning the starting index of
// each edge.
func reversedSharedEdge(p, o Polygon) (int, int, bool) {
	pn, on := len(p.Vertices), len(o.Vertices)
	for i := 0; i < pn; i++ {
		a, b := p.Vertices[i].Position, p.Vertices[(i+1)%pn].Position
		for j := 0; j < on; j++ {
			c, d := o.Vertices[j].Position, o.Vertices[(j+1)%on].Position
			if a.Equals(d) && b.Equals(c) {
				return i, j, true
			}
		}
	}
	return 0, 0, false
}

func rotateVertices(verts []Vertex, start int) []Vertex {
	n := len(verts)
	out := make([]Vertex, n)
	for i := 0; i < n; i++ {
		out[i] = verts[(start+i)%n]
	}
	return out
}
