package builder

import (
	"math"

	"github.com/jaikdean/ShapeScript/pkg/geom"
	"github.com/jaikdean/ShapeScript/pkg/mesh"
	"github.com/jaikdean/ShapeScript/pkg/path"
)

// Cube returns an axis-aligned box of the given size, centered on the origin.
func Cube(size geom.Vector, material *mesh.Material) (mesh.Mesh, error) {
	h := geom.New(size.X/2, size.Y/2, size.Z/2)
	corner := func(sx, sy, sz float64) geom.Vector {
		return geom.New(h.X*sx, h.Y*sy, h.Z*sz)
	}
	faces := [][4]geom.Vector{
		{corner(-1, -1, 1), corner(1, -1, 1), corner(1, 1, 1), corner(-1, 1, 1)},    // +Z
		{corner(1, -1, -1), corner(-1, -1, -1), corner(-1, 1, -1), corner(1, 1, -1)}, // -Z
		{corner(1, -1, 1), corner(1, -1, -1), corner(1, 1, -1), corner(1, 1, 1)},    // +X
		{corner(-1, -1, -1), corner(-1, -1, 1), corner(-1, 1, 1), corner(-1, 1, -1)}, // -X
		{corner(-1, 1, 1), corner(1, 1, 1), corner(1, 1, -1), corner(-1, 1, -1)},    // +Y
		{corner(-1, -1, -1), corner(1, -1, -1), corner(1, -1, 1), corner(-1, -1, 1)}, // -Y
	}
	var polys []mesh.Polygon
	for _, f := range faces {
		verts := make([]mesh.Vertex, 4)
		for i, p := range f {
			verts[i] = mesh.NewVertex(p, geom.Zero)
		}
		poly, err := mesh.NewPolygon(verts, material)
		if err != nil {
			return mesh.Empty, err
		}
		polys = append(polys, poly)
	}
	return mesh.New(polys), nil
}

// Sphere returns a UV sphere of the given radius, built by lathing a
// half-circle profile (pole to pole) around the Y axis.
func Sphere(radius float64, segments int, material *mesh.Material) (mesh.Mesh, error) {
	if segments < 3 {
		segments = 3
	}
	latSteps := segments
	points := make([]path.PathPoint, latSteps+1)
	for i := 0; i <= latSteps; i++ {
		angle := math.Pi * float64(i) / float64(latSteps)
		y := radius * math.Cos(angle)
		x := -radius * math.Sin(angle)
		points[i] = path.Curve(geom.New(x, y, 0))
	}
	return Lathe([]path.Path{path.New(points)}, segments, material)
}

// Cylinder returns a capped cylinder of the given radius and height,
// lathed from a profile that runs pole-rim-rim-pole so both caps form as
// degenerate fans around the Y axis.
func Cylinder(radius, height float64, segments int, material *mesh.Material) (mesh.Mesh, error) {
	if segments < 3 {
		segments = 3
	}
	h := height / 2
	profile := path.New([]path.PathPoint{
		path.Corner(geom.New(0, h, 0)),
		path.Corner(geom.New(-radius, h, 0)),
		path.Corner(geom.New(-radius, -h, 0)),
		path.Corner(geom.New(0, -h, 0)),
	})
	return Lathe([]path.Path{profile}, segments, material)
}

// Cone returns a capped cone of the given base radius and height, apex up,
// lathed from an apex-rim-center profile.
func Cone(radius, height float64, segments int, material *mesh.Material) (mesh.Mesh, error) {
	if segments < 3 {
		segments = 3
	}
	h := height / 2
	profile := path.New([]path.PathPoint{
		path.Corner(geom.New(0, h, 0)),
		path.Corner(geom.New(-radius, -h, 0)),
		path.Corner(geom.New(0, -h, 0)),
	})
	return Lathe([]path.Path{profile}, segments, material)
}

// Prism returns a right prism of the given regular-polygon cross-section
// extruded to height, built by extruding an N-gon profile along Y.
func Prism(sides int, radius, height float64, material *mesh.Material) (mesh.Mesh, error) {
	profile := translateProfileToBase(path.RegularPolygon(sides, radius), -height/2)
	return Extrude([]path.Path{profile}, geom.New(0, 1, 0), height, nil, material)
}

// Pyramid returns a right pyramid over a regular-polygon base of the given
// radius and height, apex centered above the base.
func Pyramid(sides int, radius, height float64, material *mesh.Material) (mesh.Mesh, error) {
	base := translateProfileToBase(path.RegularPolygon(sides, radius), -height/2)
	apex := geom.New(0, height/2, 0)

	n := len(base.Points)
	var polys []mesh.Polygon
	for i := 0; i < n-1; i++ {
		a := base.Points[i].Position
		b := base.Points[i+1].Position
		tri := []mesh.Vertex{
			mesh.NewVertex(a, geom.Zero),
			mesh.NewVertex(b, geom.Zero),
			mesh.NewVertex(apex, geom.Zero),
		}
		poly, err := mesh.NewPolygon(tri, material)
		if err != nil {
			continue
		}
		polys = append(polys, poly)
	}
	if base.IsClosed() && base.IsSimple() {
		capPolys, err := base.FaceVertices(material)
		if err == nil {
			polys = append(polys, capPolys...)
		}
	}
	return mesh.New(polys), nil
}

func translateProfileToBase(p path.Path, y float64) path.Path {
	out := make([]path.PathPoint, len(p.Points))
	for i, pt := range p.Points {
		moved := pt
		moved.Position = geom.New(pt.Position.X, y, pt.Position.Z)
		out[i] = moved
	}
	return path.New(out)
}
