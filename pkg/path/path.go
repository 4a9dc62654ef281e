// Package path implements Path, the ordered sequence of smooth/sharp
// control points that feeds the extrude/lathe/loft/fill/hull builders.
package path

import "github.com/jaikdean/ShapeScript/pkg/geom"

// PathPoint is one control point of a Path. IsCurved marks a smoothly
// blended point (used when generating side-wall normals); Color and
// Texcoord are optional per-point overrides.
type PathPoint struct {
	Position geom.Vector
	IsCurved bool
	Color    *geom.Color
	Texcoord *geom.Vector
}

// Corner returns a sharp (non-curved) control point at position.
func Corner(position geom.Vector) PathPoint {
	return PathPoint{Position: position}
}

// Curve returns a smoothly blended control point at position.
func Curve(position geom.Vector) PathPoint {
	return PathPoint{Position: position, IsCurved: true}
}

// Path is an ordered list of control points.
type Path struct {
	Points []PathPoint
}

// New builds a Path from points.
func New(points []PathPoint) Path {
	return Path{Points: append([]PathPoint(nil), points...)}
}

// IsClosed reports whether the path's first and last points coincide.
func (p Path) IsClosed() bool {
	n := len(p.Points)
	if n < 2 {
		return false
	}
	return p.Points[0].Position.Equals(p.Points[n-1].Position)
}

// Bounds returns the axis-aligned bounding box of every control point.
func (p Path) Bounds() geom.Bounds {
	b := geom.EmptyBounds()
	for _, pt := range p.Points {
		b = b.ExtendedBy(pt.Position)
	}
	return b
}

// positions returns the bare position list, a common input to the
// plane/simple/tessellation helpers below.
func (p Path) positions() []geom.Vector {
	out := make([]geom.Vector, len(p.Points))
	for i, pt := range p.Points {
		out[i] = pt.Position
	}
	return out
}

// loopPositions returns the positions with the duplicated closing point
// dropped, suitable for loop-oriented algorithms (Newell's method, ear
// clipping) that re-wrap implicitly.
func (p Path) loopPositions() []geom.Vector {
	pos := p.positions()
	if p.IsClosed() && len(pos) > 1 {
		return pos[:len(pos)-1]
	}
	return pos
}

// Plane returns the inferred plane of a closed, simple path, following
// Newell's method over the loop's edges. ok is false for open, non-simple
// or non-planar paths.
func (p Path) Plane() (geom.Plane, bool) {
	if !p.IsClosed() || !p.IsSimple() {
		return geom.Plane{}, false
	}
	loop := p.loopPositions()
	if len(loop) < 3 {
		return geom.Plane{}, false
	}
	normal := geom.NewellNormal(loop)
	if normal.IsZero() {
		return geom.Plane{}, false
	}
	plane := geom.Plane{Normal: normal, W: normal.Dot(loop[0])}
	for _, v := range loop {
		if !plane.OnPlane(v) {
			return geom.Plane{}, false
		}
	}
	return plane, true
}

// Transformed applies t to every control point's position, following
// mesh.Polygon.Transformed's pattern for the vertex-holding types.
func (p Path) Transformed(t geom.Transform) Path {
	out := make([]PathPoint, len(p.Points))
	for i, pt := range p.Points {
		pt.Position = t.Apply(pt.Position)
		out[i] = pt
	}
	return Path{Points: out}
}
