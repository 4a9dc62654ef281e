package mesh

import (
	"math"

	"github.com/jaikdean/ShapeScript/pkg/geom"
)

// cubePolygons builds the six quad faces of an axis-aligned cube centered
// at the origin with the given half-extent, wound so each face's outward
// normal matches Newell's method.
func cubePolygons(half float64) []Polygon {
	v := func(x, y, z float64) geom.Vector { return geom.New(x*half, y*half, z*half) }

	faces := [][4]geom.Vector{
		{v(-1, -1, 1), v(1, -1, 1), v(1, 1, 1), v(-1, 1, 1)},    // +Z
		{v(1, -1, -1), v(-1, -1, -1), v(-1, 1, -1), v(1, 1, -1)}, // -Z
		{v(1, -1, 1), v(1, -1, -1), v(1, 1, -1), v(1, 1, 1)},     // +X
		{v(-1, -1, -1), v(-1, -1, 1), v(-1, 1, 1), v(-1, 1, -1)}, // -X
		{v(-1, 1, 1), v(1, 1, 1), v(1, 1, -1), v(-1, 1, -1)},     // +Y
		{v(-1, -1, -1), v(1, -1, -1), v(1, -1, 1), v(-1, -1, 1)}, // -Y
	}

	var out []Polygon
	for _, f := range faces {
		verts := make([]Vertex, 4)
		for i, p := range f {
			verts[i] = NewVertex(p, geom.Zero)
		}
		p, err := NewPolygon(verts, nil)
		if err != nil {
			panic(err)
		}
		out = append(out, p)
	}
	return out
}

func cube(half float64) Mesh {
	return New(cubePolygons(half))
}

// spherePolygons builds a UV sphere of the given radius, triangulating the
// pole rings and quad-tessellating the body, wound with outward-facing
// normals. Deliberately hand-built rather than routed through the builder
// package's lathe/revolve machinery, to keep this test package's import
// graph from cycling back through pkg/builder into pkg/mesh.
func spherePolygons(radius float64, rings, segments int) []Polygon {
	pos := func(ring, seg int) geom.Vector {
		phi := math.Pi * float64(ring) / float64(rings)
		theta := 2 * math.Pi * float64(seg) / float64(segments)
		return geom.New(
			radius*math.Sin(phi)*math.Cos(theta),
			radius*math.Cos(phi),
			radius*math.Sin(phi)*math.Sin(theta),
		)
	}

	var out []Polygon
	addTri := func(a, b, c geom.Vector) {
		verts := []Vertex{NewVertex(a, geom.Zero), NewVertex(b, geom.Zero), NewVertex(c, geom.Zero)}
		p, err := NewPolygon(verts, nil)
		if err != nil {
			panic(err)
		}
		out = append(out, p)
	}
	addQuad := func(a, b, c, d geom.Vector) {
		verts := []Vertex{NewVertex(a, geom.Zero), NewVertex(b, geom.Zero), NewVertex(c, geom.Zero), NewVertex(d, geom.Zero)}
		p, err := NewPolygon(verts, nil)
		if err != nil {
			panic(err)
		}
		out = append(out, p)
	}

	for ring := 0; ring < rings; ring++ {
		for seg := 0; seg < segments; seg++ {
			next := (seg + 1) % segments
			topLeft := pos(ring, seg)
			topRight := pos(ring, next)
			botLeft := pos(ring+1, seg)
			botRight := pos(ring+1, next)

			switch {
			case ring == 0:
				addTri(topLeft, botRight, botLeft)
			case ring == rings-1:
				addTri(topLeft, topRight, botLeft)
			default:
				addQuad(topLeft, topRight, botRight, botLeft)
			}
		}
	}
	return out
}
