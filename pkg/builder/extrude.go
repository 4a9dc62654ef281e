// Package builder turns paths and point clouds into meshes: extrusion,
// lathing, lofting, planar filling and convex-hull construction.
package builder

import (
	"github.com/jaikdean/ShapeScript/pkg/geom"
	"github.com/jaikdean/ShapeScript/pkg/mesh"
	"github.com/jaikdean/ShapeScript/pkg/path"
)

// Extrude sweeps each source path either straight along axis (a direction
// vector, swept to the given depth) or, when along is non-nil, along a
// guide path: a copy of the source path is placed at every point of the
// guide and successive copies are ruled together, in place of the single
// fixed-offset translation a straight sweep produces. Side walls come from
// extrudeSides (built on Path.EdgeVertices) and end caps come from
// Path.FaceVertices when the source path is closed and planar. The result
// is marked watertight exactly when every source path is closed and planar.
func Extrude(paths []path.Path, axis geom.Vector, depth float64, along *path.Path, material *mesh.Material) (mesh.Mesh, error) {
	if along != nil {
		return extrudeAlongGuide(paths, *along, material)
	}

	var polys []mesh.Polygon

	for _, p := range paths {
		offset := axis.Normalized().Scale(depth)
		near := p
		far := translatePath(p, offset)

		sideOutward := func(i int) geom.Vector {
			segStart := p.Points[i].Position
			segEnd := p.Points[(i+1)%len(p.Points)].Position
			edge := segEnd.Sub(segStart)
			return edge.Cross(offset).Normalized()
		}

		sides, err := extrudeSides(near, far, sideOutward, material)
		if err != nil {
			return mesh.Empty, err
		}
		polys = append(polys, sides...)

		if !near.IsClosed() || !near.IsSimple() {
			continue
		}

		capNear, err := near.FaceVertices(material)
		if err != nil {
			return mesh.Empty, err
		}
		capFar, err := far.FaceVertices(material)
		if err != nil {
			return mesh.Empty, err
		}
		for _, tri := range capNear {
			polys = append(polys, tri.Flipped())
		}
		polys = append(polys, capFar...)
	}

	return mesh.New(polys), nil
}

// extrudeAlongGuide translates a copy of each source path to every vertex
// of guide and rules successive copies together, the same ruled-quad shape
// Loft builds between successive source paths, with caps at the guide's two
// ends when the source path is closed and planar.
func extrudeAlongGuide(paths []path.Path, guide path.Path, material *mesh.Material) (mesh.Mesh, error) {
	if len(guide.Points) < 2 {
		return mesh.Empty, &mesh.GeometryError{Kind: mesh.ErrDegeneratePath, Hint: "extrude along a guide path needs at least 2 points"}
	}

	var polys []mesh.Polygon
	for _, p := range paths {
		sections := make([]path.Path, len(guide.Points))
		for i, gp := range guide.Points {
			sections[i] = translatePath(p, gp.Position)
		}

		for i := 0; i < len(sections)-1; i++ {
			near, far := sections[i], sections[i+1]
			offset := guide.Points[i+1].Position.Sub(guide.Points[i].Position)
			sideOutward := func(k int) geom.Vector {
				segStart := p.Points[k].Position
				segEnd := p.Points[(k+1)%len(p.Points)].Position
				edge := segEnd.Sub(segStart)
				return edge.Cross(offset).Normalized()
			}
			sides, err := extrudeSides(near, far, sideOutward, material)
			if err != nil {
				return mesh.Empty, err
			}
			polys = append(polys, sides...)
		}

		if !p.IsClosed() || !p.IsSimple() {
			continue
		}

		capNear, err := sections[0].FaceVertices(material)
		if err != nil {
			return mesh.Empty, err
		}
		capFar, err := sections[len(sections)-1].FaceVertices(material)
		if err != nil {
			return mesh.Empty, err
		}
		for _, tri := range capNear {
			polys = append(polys, tri.Flipped())
		}
		polys = append(polys, capFar...)
	}

	return mesh.New(polys), nil
}

func translatePath(p path.Path, offset geom.Vector) path.Path {
	out := make([]path.PathPoint, len(p.Points))
	for i, pt := range p.Points {
		moved := pt
		moved.Position = pt.Position.Add(offset)
		out[i] = moved
	}
	return path.New(out)
}

func extrudeSides(near, far path.Path, outward func(int) geom.Vector, material *mesh.Material) ([]mesh.Polygon, error) {
	n := len(near.Points)
	if n < 2 {
		return nil, nil
	}
	nearVerts := near.EdgeVertices(outward)
	farVerts := far.EdgeVertices(outward)

	var out []mesh.Polygon
	for i := 0; i < len(nearVerts); i += 2 {
		a0, a1 := nearVerts[i], nearVerts[i+1]
		b0, b1 := farVerts[i], farVerts[i+1]
		quad, err := mesh.NewPolygon([]mesh.Vertex{a0, a1, b1, b0}, material)
		if err != nil {
			continue // degenerate (zero-length) segment; skip rather than fail the whole sweep
		}
		out = append(out, quad)
	}
	return out, nil
}
