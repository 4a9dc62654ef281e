package geom

import "math"

// Bounds is an axis-aligned bounding box. An empty Bounds has Min with every
// component greater than the corresponding Max component.
type Bounds struct {
	Min, Max Vector
}

// EmptyBounds returns a Bounds that contains no points.
func EmptyBounds() Bounds {
	inf := math.Inf(1)
	return Bounds{
		Min: Vector{X: inf, Y: inf, Z: inf},
		Max: Vector{X: -inf, Y: -inf, Z: -inf},
	}
}

// IsEmpty reports whether the bounds contains no points.
func (b Bounds) IsEmpty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y || b.Min.Z > b.Max.Z
}

// BoundsFromPoints computes the minimal bounds enclosing the given points.
func BoundsFromPoints(points ...Vector) Bounds {
	b := EmptyBounds()
	for _, p := range points {
		b = b.ExtendedBy(p)
	}
	return b
}

// ExtendedBy returns bounds enlarged (if needed) to contain v.
func (b Bounds) ExtendedBy(v Vector) Bounds {
	return Bounds{
		Min: Vector{X: math.Min(b.Min.X, v.X), Y: math.Min(b.Min.Y, v.Y), Z: math.Min(b.Min.Z, v.Z)},
		Max: Vector{X: math.Max(b.Max.X, v.X), Y: math.Max(b.Max.Y, v.Y), Z: math.Max(b.Max.Z, v.Z)},
	}
}

// Union returns the smallest bounds containing both b and o.
func (b Bounds) Union(o Bounds) Bounds {
	if b.IsEmpty() {
		return o
	}
	if o.IsEmpty() {
		return b
	}
	return Bounds{
		Min: Vector{X: math.Min(b.Min.X, o.Min.X), Y: math.Min(b.Min.Y, o.Min.Y), Z: math.Min(b.Min.Z, o.Min.Z)},
		Max: Vector{X: math.Max(b.Max.X, o.Max.X), Y: math.Max(b.Max.Y, o.Max.Y), Z: math.Max(b.Max.Z, o.Max.Z)},
	}
}

// ContainsPoint reports whether v lies within the bounds (inclusive).
func (b Bounds) ContainsPoint(v Vector) bool {
	return v.X >= b.Min.X-Epsilon && v.X <= b.Max.X+Epsilon &&
		v.Y >= b.Min.Y-Epsilon && v.Y <= b.Max.Y+Epsilon &&
		v.Z >= b.Min.Z-Epsilon && v.Z <= b.Max.Z+Epsilon
}

// Compare classifies the bounds' eight corners against plane p, aggregating
// to Spanning when corners fall on both sides.
func (b Bounds) Compare(p Plane) Side {
	if b.IsEmpty() {
		return Coplanar
	}
	corners := [8]Vector{
		{b.Min.X, b.Min.Y, b.Min.Z}, {b.Max.X, b.Min.Y, b.Min.Z},
		{b.Min.X, b.Max.Y, b.Min.Z}, {b.Max.X, b.Max.Y, b.Min.Z},
		{b.Min.X, b.Min.Y, b.Max.Z}, {b.Max.X, b.Min.Y, b.Max.Z},
		{b.Min.X, b.Max.Y, b.Max.Z}, {b.Max.X, b.Max.Y, b.Max.Z},
	}
	var sawFront, sawBack bool
	for _, c := range corners {
		switch c.Compare(p) {
		case Front:
			sawFront = true
		case Back:
			sawBack = true
		}
	}
	switch {
	case sawFront && sawBack:
		return Spanning
	case sawFront:
		return Front
	case sawBack:
		return Back
	default:
		return Coplanar
	}
}

// Size returns the extents of the bounds along each axis.
func (b Bounds) Size() Vector {
	if b.IsEmpty() {
		return Vector{}
	}
	return b.Max.Sub(b.Min)
}

// Center returns the midpoint of the bounds.
func (b Bounds) Center() Vector {
	return b.Min.Lerp(b.Max, 0.5)
}
