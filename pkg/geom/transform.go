package geom

import "github.com/go-gl/mathgl/mgl64"

// Transform is a position + rotation + non-uniform scale, composed in that
// order (scale, then rotate, then translate) to form a single 4x4 matrix on
// demand. This mirrors the evaluator's notion of "current transform" that
// each scope pushes down to its children.
type Transform struct {
	Offset   Vector
	Rotation Rotation
	Scale    Vector
}

// IdentityTransform is the no-op transform.
var IdentityTransform = Transform{Scale: Vector{X: 1, Y: 1, Z: 1}}

// Matrix returns the equivalent 4x4 homogeneous transform matrix.
func (t Transform) Matrix() mgl64.Mat4 {
	s := mgl64.Scale3D(t.Scale.X, t.Scale.Y, t.Scale.Z)
	r := t.Rotation.Mat4()
	tr := mgl64.Translate3D(t.Offset.X, t.Offset.Y, t.Offset.Z)
	return tr.Mul4(r).Mul4(s)
}

// Apply transforms a point by scale, then rotation, then translation.
func (t Transform) Apply(v Vector) Vector {
	scaled := Vector{X: v.X * t.Scale.X, Y: v.Y * t.Scale.Y, Z: v.Z * t.Scale.Z}
	return t.Rotation.Rotate(scaled).Add(t.Offset)
}

// ApplyNormal transforms a normal vector: rotation only (scale is ignored
// for uniform scale; for non-uniform scale the inverse-scale is applied
// before rotation, matching the standard inverse-transpose rule for
// diagonal scale matrices), and the result is re-normalized.
func (t Transform) ApplyNormal(n Vector) Vector {
	inv := Vector{X: safeInv(t.Scale.X), Y: safeInv(t.Scale.Y), Z: safeInv(t.Scale.Z)}
	scaled := Vector{X: n.X * inv.X, Y: n.Y * inv.Y, Z: n.Z * inv.Z}
	return t.Rotation.Rotate(scaled).Normalized()
}

func safeInv(f float64) float64 {
	if f == 0 {
		return 0
	}
	return 1 / f
}

// Compose returns the transform that results from applying child relative
// to t — i.e. t.Compose(child).Apply(v) == t.Apply(child.Apply(v)). This is
// how the evaluator accumulates nested `translate`/`rotate`/`scale`
// commands down a block's scope stack.
func (t Transform) Compose(child Transform) Transform {
	return Transform{
		Offset:   t.Apply(child.Offset),
		Rotation: t.Rotation.Mul(child.Rotation),
		Scale:    Vector{X: t.Scale.X * child.Scale.X, Y: t.Scale.Y * child.Scale.Y, Z: t.Scale.Z * child.Scale.Z},
	}
}

// Translated returns t with an additional translation applied in t's local frame.
func (t Transform) Translated(v Vector) Transform {
	return t.Compose(Transform{Offset: v, Scale: Vector{X: 1, Y: 1, Z: 1}})
}

// Rotated returns t with an additional rotation applied.
func (t Transform) Rotated(r Rotation) Transform {
	return t.Compose(Transform{Rotation: r, Scale: Vector{X: 1, Y: 1, Z: 1}})
}

// Scaled returns t with an additional scale applied.
func (t Transform) Scaled(v Vector) Transform {
	return t.Compose(Transform{Scale: v})
}

// IsIdentity reports whether t is (tolerantly) the identity transform.
func (t Transform) IsIdentity() bool {
	return t.Offset.IsZero() && t.Rotation.IsIdentity() &&
		t.Scale.Equals(Vector{X: 1, Y: 1, Z: 1})
}
