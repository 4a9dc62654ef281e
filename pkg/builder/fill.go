package builder

import (
	"github.com/jaikdean/ShapeScript/pkg/mesh"
	"github.com/jaikdean/ShapeScript/pkg/path"
)

// Fill produces a single planar face per source path (no side walls),
// concatenating the triangulated faces of every closed, simple, planar
// path in paths.
func Fill(paths []path.Path, material *mesh.Material) (mesh.Mesh, error) {
	var polys []mesh.Polygon
	for _, p := range paths {
		tris, err := p.FaceVertices(material)
		if err != nil {
			return mesh.Empty, err
		}
		polys = append(polys, tris...)
	}
	return mesh.New(polys), nil
}
