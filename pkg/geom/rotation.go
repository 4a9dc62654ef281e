package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Rotation is a unit quaternion, matching the representation
// akmonengine-feather uses for rigid-body orientation (actor.Transform.Rotation).
type Rotation struct {
	q mgl64.Quat
}

// Identity is the zero rotation.
var Identity = Rotation{q: mgl64.QuatIdent()}

// FromAxisAngle builds a rotation of angle radians about axis.
func FromAxisAngle(axis Vector, angle float64) Rotation {
	a := axis.Normalized()
	return Rotation{q: mgl64.QuatRotate(angle, a.mgl())}
}

// FromEulerDegrees builds a rotation from Euler angles in degrees, applied
// in X, then Y, then Z order.
func FromEulerDegrees(x, y, z float64) Rotation {
	rx := FromAxisAngle(Vector{X: 1}, x*math.Pi/180)
	ry := FromAxisAngle(Vector{Y: 1}, y*math.Pi/180)
	rz := FromAxisAngle(Vector{Z: 1}, z*math.Pi/180)
	return rz.Mul(ry).Mul(rx)
}

// Mul composes rotations: (a.Mul(b)) applies b first, then a.
func (r Rotation) Mul(o Rotation) Rotation {
	return Rotation{q: r.q.Mul(o.q)}
}

// Inverse returns the inverse rotation.
func (r Rotation) Inverse() Rotation {
	return Rotation{q: r.q.Inverse()}
}

// Rotate applies the rotation to v.
func (r Rotation) Rotate(v Vector) Vector {
	return fromMgl(r.q.Rotate(v.mgl()))
}

// IsIdentity reports whether r is (tolerantly) the identity rotation.
func (r Rotation) IsIdentity() bool {
	return r.Equals(Identity)
}

// Equals reports tolerant equality between rotations, accounting for the
// double cover of quaternions (q and -q represent the same rotation).
func (r Rotation) Equals(o Rotation) bool {
	d1 := quatDist(r.q, o.q)
	d2 := quatDist(r.q, mgl64.Quat{W: -o.q.W, V: o.q.V.Mul(-1)})
	return d1 <= Epsilon || d2 <= Epsilon
}

func quatDist(a, b mgl64.Quat) float64 {
	dw := a.W - b.W
	dv := a.V.Sub(b.V)
	return math.Sqrt(dw*dw + dv.Dot(dv))
}

// Mat4 returns the 4x4 rotation matrix.
func (r Rotation) Mat4() mgl64.Mat4 {
	return r.q.Mat4()
}
