// Package geom provides the tolerant-equality math primitives shared by the
// rest of the module: Vector, Plane, LineSegment, Bounds, Rotation and
// Transform. All types are immutable value types.
//
// Heavier linear algebra (quaternion composition, 4x4 matrix concatenation)
// is delegated to github.com/go-gl/mathgl/mgl64, the same library
// akmonengine-feather uses for its rigid-body transforms; this package adds
// the tolerant equality, hashing and plane-classification semantics that
// mathgl itself does not provide.
package geom

import "math"

// Epsilon is the absolute tolerance used for coordinate comparisons
// throughout the geometry kernel.
const Epsilon = 1e-8

// nearlyEqual reports whether a and b differ by no more than Epsilon.
func nearlyEqual(a, b float64) bool {
	return math.Abs(a-b) <= Epsilon
}

// quantize rounds v to the nearest multiple of Epsilon, for hashing.
func quantize(v float64) int64 {
	return int64(math.Round(v / Epsilon))
}

// Side classifies a point or polygon with respect to a plane.
type Side int

const (
	Coplanar Side = iota
	Front
	Back
	Spanning
)

func (s Side) String() string {
	switch s {
	case Coplanar:
		return "coplanar"
	case Front:
		return "front"
	case Back:
		return "back"
	case Spanning:
		return "spanning"
	default:
		return "invalid"
	}
}
