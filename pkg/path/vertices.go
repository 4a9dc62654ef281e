package path

import (
	"github.com/jaikdean/ShapeScript/pkg/geom"
	"github.com/jaikdean/ShapeScript/pkg/mesh"
)

// FaceVertices tessellates a simple closed planar path into triangles
// (outward normals consistent with the path's winding) by ear clipping,
// for use as extrude/loft/fill end caps.
func (p Path) FaceVertices(material *mesh.Material) ([]mesh.Polygon, error) {
	plane, ok := p.Plane()
	if !ok {
		return nil, &mesh.GeometryError{Kind: mesh.ErrDegeneratePath, Hint: "path is not closed, simple and planar"}
	}
	loop := p.loopPositions()
	if len(loop) < 3 {
		return nil, &mesh.GeometryError{Kind: mesh.ErrDegeneratePath, Hint: "path has fewer than 3 distinct points"}
	}

	verts := make([]mesh.Vertex, len(loop))
	for i, pos := range loop {
		verts[i] = mesh.NewVertex(pos, plane.Normal)
	}
	working, err := mesh.NewPolygon(verts, material)
	if err != nil {
		return nil, err
	}
	return working.Triangulate(), nil
}

// EdgeVertices emits, for each segment of p, the pair of vertices bounding
// that segment's side wall, with the texture v-coordinate set to the
// cumulative arc length normalized to [0,1]. Where two successive segments
// share a curved endpoint, the shared vertex's normal is the average of
// the adjacent segments' outward directions; sharp ("corner") endpoints
// get distinct, unsmoothed normals per segment.
func (p Path) EdgeVertices(outward func(segmentIndex int) geom.Vector) []mesh.Vertex {
	n := len(p.Points)
	if n < 2 {
		return nil
	}

	total := 0.0
	lengths := make([]float64, n-1)
	for i := 0; i < n-1; i++ {
		lengths[i] = p.Points[i].Position.Distance(p.Points[i+1].Position)
		total += lengths[i]
	}
	if total < geom.Epsilon {
		total = 1
	}

	normalAt := func(pointIndex int) geom.Vector {
		pt := p.Points[pointIndex]
		if !pt.IsCurved {
			return outward(clampSegment(pointIndex, n))
		}
		var sum geom.Vector
		count := 0
		if pointIndex > 0 {
			sum = sum.Add(outward(pointIndex - 1))
			count++
		}
		if pointIndex < n-1 {
			sum = sum.Add(outward(pointIndex))
			count++
		}
		if count == 0 {
			return outward(0)
		}
		return sum.Normalized()
	}

	var out []mesh.Vertex
	cumulative := 0.0
	for i := 0; i < n-1; i++ {
		a, b := p.Points[i], p.Points[i+1]
		va := mesh.NewVertex(a.Position, normalAt(i))
		vb := mesh.NewVertex(b.Position, normalAt(i+1))
		va.Texcoord = geom.New(0, cumulative/total, 0)
		cumulative += lengths[i]
		vb.Texcoord = geom.New(0, cumulative/total, 0)
		if a.Color != nil {
			va.Color = a.Color
		}
		if b.Color != nil {
			vb.Color = b.Color
		}
		out = append(out, va, vb)
	}
	return out
}

func clampSegment(pointIndex, n int) int {
	if pointIndex >= n-1 {
		return n - 2
	}
	return pointIndex
}
