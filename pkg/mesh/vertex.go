// Package mesh implements the geometry kernel: planar convex polygons, the
// BSP tree that backs the boolean CSG operators, watertightness repair and
// an immutable, reference-counted Mesh handle.
package mesh

import "github.com/jaikdean/ShapeScript/pkg/geom"

// Material is an advisory per-polygon/per-geometry surface attribute.
// Plain value type; no behaviour.
type Material struct {
	Name  string
	Color geom.Color
}

// Vertex is a point on a polygon with its own normal, texture coordinate
// and optional per-vertex color.
type Vertex struct {
	Position geom.Vector
	Normal   geom.Vector
	Texcoord geom.Vector
	Color    *geom.Color
}

// NewVertex constructs a Vertex, defaulting Normal so that callers who pass
// the zero vector get a flag value recomputed by the owning polygon.
func NewVertex(position, normal geom.Vector) Vertex {
	return Vertex{Position: position, Normal: normal}
}

// Flipped returns v with its normal reversed, used when a polygon's winding
// is reversed (Polygon.Flipped, BSP.Invert).
func (v Vertex) Flipped() Vertex {
	v.Normal = v.Normal.Negated()
	return v
}

// Lerp linearly interpolates every attribute of v and o at parameter t,
// renormalizing the interpolated normal. Used when a plane-split cuts
// through an edge.
func (v Vertex) Lerp(o Vertex, t float64) Vertex {
	out := Vertex{
		Position: v.Position.Lerp(o.Position, t),
		Normal:   v.Normal.Lerp(o.Normal, t).Normalized(),
		Texcoord: v.Texcoord.Lerp(o.Texcoord, t),
	}
	if v.Color != nil && o.Color != nil {
		c := v.Color.Lerp(*o.Color, t)
		out.Color = &c
	} else if v.Color != nil {
		c := *v.Color
		out.Color = &c
	} else if o.Color != nil {
		c := *o.Color
		out.Color = &c
	}
	return out
}

// Transformed applies t to the vertex's position and normal.
func (v Vertex) Transformed(t geom.Transform) Vertex {
	v.Position = t.Apply(v.Position)
	if !v.Normal.IsZero() {
		v.Normal = t.ApplyNormal(v.Normal)
	}
	return v
}
