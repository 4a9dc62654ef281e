package builder

import (
	"github.com/jaikdean/ShapeScript/pkg/geom"
	"github.com/jaikdean/ShapeScript/pkg/mesh"
	"github.com/jaikdean/ShapeScript/pkg/path"
)

// Loft triangulates a ruled surface between each pair of successive paths
// (which must have the same point count) and caps the ends when the first
// and last paths are closed.
func Loft(paths []path.Path, material *mesh.Material) (mesh.Mesh, error) {
	if len(paths) < 2 {
		return mesh.Empty, &mesh.GeometryError{Kind: mesh.ErrDegeneratePath, Hint: "loft needs at least 2 paths"}
	}

	var polys []mesh.Polygon
	for i := 0; i < len(paths)-1; i++ {
		a, b := paths[i], paths[i+1]
		n := len(a.Points)
		if n != len(b.Points) {
			return mesh.Empty, &mesh.GeometryError{Kind: mesh.ErrDegeneratePath, Hint: "loft requires paths with matching point counts"}
		}
		for k := 0; k < n-1; k++ {
			quad := []mesh.Vertex{
				mesh.NewVertex(a.Points[k].Position, geom.Zero),
				mesh.NewVertex(a.Points[k+1].Position, geom.Zero),
				mesh.NewVertex(b.Points[k+1].Position, geom.Zero),
				mesh.NewVertex(b.Points[k].Position, geom.Zero),
			}
			p, err := mesh.NewPolygon(quad, material)
			if err != nil {
				continue
			}
			polys = append(polys, p.Triangulate()...)
		}
	}

	if first := paths[0]; first.IsClosed() && first.IsSimple() {
		capPolys, err := first.FaceVertices(material)
		if err == nil {
			for _, tri := range capPolys {
				polys = append(polys, tri.Flipped())
			}
		}
	}
	if last := paths[len(paths)-1]; last.IsClosed() && last.IsSimple() {
		capPolys, err := last.FaceVertices(material)
		if err == nil {
			polys = append(polys, capPolys...)
		}
	}

	return mesh.New(polys), nil
}
