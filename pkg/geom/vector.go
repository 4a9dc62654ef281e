package geom

import (
	"fmt"
	"strconv"

	"github.com/go-gl/mathgl/mgl64"
)

// Vector is an ordered triple of finite doubles. Equality and hashing are
// tolerant: two vectors are equal when every axis differs by at most
// Epsilon, and HashKey quantizes each axis to the same grid so that
// hash-equal implies (tolerant) equal.
type Vector struct {
	X, Y, Z float64
}

// Zero is the origin vector.
var Zero = Vector{}

// New constructs a Vector, matching the common (x, y, z) builtin signature.
func New(x, y, z float64) Vector { return Vector{X: x, Y: y, Z: z} }

func (v Vector) mgl() mgl64.Vec3 { return mgl64.Vec3{v.X, v.Y, v.Z} }

func fromMgl(m mgl64.Vec3) Vector { return Vector{X: m[0], Y: m[1], Z: m[2]} }

// Equals reports tolerant equality: every component differs by at most Epsilon.
func (v Vector) Equals(o Vector) bool {
	return nearlyEqual(v.X, o.X) && nearlyEqual(v.Y, o.Y) && nearlyEqual(v.Z, o.Z)
}

// HashKey is a quantized key suitable for use as a map key, consistent with Equals.
func (v Vector) HashKey() [3]int64 {
	return [3]int64{quantize(v.X), quantize(v.Y), quantize(v.Z)}
}

// Less provides a deterministic lexicographic order, used to canonicalize
// LineSegment endpoints and to break coplanar-polygon id ties.
func (v Vector) Less(o Vector) bool {
	if !nearlyEqual(v.X, o.X) {
		return v.X < o.X
	}
	if !nearlyEqual(v.Y, o.Y) {
		return v.Y < o.Y
	}
	return v.Z < o.Z-Epsilon
}

func (v Vector) Add(o Vector) Vector { return fromMgl(v.mgl().Add(o.mgl())) }
func (v Vector) Sub(o Vector) Vector { return fromMgl(v.mgl().Sub(o.mgl())) }
func (v Vector) Scale(s float64) Vector { return fromMgl(v.mgl().Mul(s)) }
func (v Vector) Negated() Vector     { return v.Scale(-1) }

func (v Vector) Dot(o Vector) float64 { return v.mgl().Dot(o.mgl()) }
func (v Vector) Cross(o Vector) Vector {
	return fromMgl(v.mgl().Cross(o.mgl()))
}

// Length returns the Euclidean norm.
func (v Vector) Length() float64 { return v.mgl().Len() }

// Normalized returns a unit vector in the same direction. The zero vector
// normalizes to itself.
func (v Vector) Normalized() Vector {
	l := v.Length()
	if l <= Epsilon {
		return v
	}
	return v.Scale(1 / l)
}

// IsZero reports whether v is the zero vector within Epsilon.
func (v Vector) IsZero() bool { return v.Equals(Zero) }

// Lerp linearly interpolates between v and o at parameter t in [0,1].
func (v Vector) Lerp(o Vector, t float64) Vector {
	return v.Add(o.Sub(v).Scale(t))
}

// DistanceToPlane returns the signed distance from v to plane p.
func (v Vector) DistanceToPlane(p Plane) float64 {
	return p.Normal.Dot(v) - p.W
}

// Compare classifies v against plane p as Coplanar, Front or Back.
func (v Vector) Compare(p Plane) Side {
	d := v.DistanceToPlane(p)
	switch {
	case d > Epsilon:
		return Front
	case d < -Epsilon:
		return Back
	default:
		return Coplanar
	}
}

func (v Vector) Distance(o Vector) float64 { return v.Sub(o).Length() }

func (v Vector) String() string {
	return fmt.Sprintf("(%s, %s, %s)", trimFloat(v.X), trimFloat(v.Y), trimFloat(v.Z))
}

func trimFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// NewellNormal computes a robust normal for a (possibly mildly non-planar)
// polygon loop by summing the cross products of successive edges. The
// result points such that the loop winds counter-clockwise when viewed
// from the normal's side. Returns the zero vector for degenerate input
// (fewer than 3 points, or all points collinear/coincident).
func NewellNormal(points []Vector) Vector {
	var n Vector
	count := len(points)
	for i := 0; i < count; i++ {
		a := points[i]
		b := points[(i+1)%count]
		n = n.Add(New(
			(a.Y-b.Y)*(a.Z+b.Z),
			(a.Z-b.Z)*(a.X+b.X),
			(a.X-b.X)*(a.Y+b.Y),
		))
	}
	return n.Normalized()
}
