package eval

import (
	"github.com/jaikdean/ShapeScript/pkg/geom"
)

// asVector implements the documented number -> vector broadcast and
// tuple -> vector coercion: a bare number fills every axis, a 2- or
// 3-element tuple of numbers fills X/Z or X/Y/Z, and any vector-shaped
// value passes through.
func asVector(v Value) (geom.Vector, bool) {
	switch x := v.(type) {
	case Number:
		return geom.New(float64(x), float64(x), float64(x)), true
	case VectorValue:
		return geom.Vector(x), true
	case SizeValue:
		return geom.Vector(x), true
	case PointValue:
		return geom.Vector(x), true
	case TupleValue:
		nums := make([]float64, 0, len(x.Elements))
		for _, e := range x.Elements {
			n, ok := e.(Number)
			if !ok {
				return geom.Zero, false
			}
			nums = append(nums, float64(n))
		}
		switch len(nums) {
		case 1:
			return geom.New(nums[0], nums[0], nums[0]), true
		case 2:
			return geom.New(nums[0], 0, nums[1]), true
		case 3:
			return geom.New(nums[0], nums[1], nums[2]), true
		default:
			return geom.Zero, false
		}
	default:
		return geom.Zero, false
	}
}

func asSize(v Value) (geom.Vector, bool) { return asVector(v) }

// asColor implements the documented color coercions: a ColorValue passes
// through, a string is parsed as a hex or named literal, and a 3/4-element
// numeric tuple is read as r,g,b[,a] in [0,1].
func asColor(v Value) (geom.Color, bool) {
	switch x := v.(type) {
	case ColorValue:
		return geom.Color(x), true
	case String:
		c, err := geom.ParseColor(string(x))
		if err != nil {
			return geom.Color{}, false
		}
		return c, true
	case TupleValue:
		nums := make([]float64, 0, len(x.Elements))
		for _, e := range x.Elements {
			n, ok := e.(Number)
			if !ok {
				return geom.Color{}, false
			}
			nums = append(nums, float64(n))
		}
		switch len(nums) {
		case 3:
			return geom.Color{R: nums[0], G: nums[1], B: nums[2], A: 1}, true
		case 4:
			return geom.Color{R: nums[0], G: nums[1], B: nums[2], A: nums[3]}, true
		default:
			return geom.Color{}, false
		}
	default:
		return geom.Color{}, false
	}
}

func asNumber(v Value) (float64, bool) {
	switch x := v.(type) {
	case Number:
		return float64(x), true
	case Boolean:
		if x {
			return 1, true
		}
		return 0, true
	default:
		return 0, false
	}
}

func asBool(v Value) (bool, bool) {
	switch x := v.(type) {
	case Boolean:
		return bool(x), true
	case Number:
		return x != 0, true
	default:
		return false, false
	}
}

func asString(v Value) (string, bool) {
	switch x := v.(type) {
	case String:
		return string(x), true
	default:
		return "", false
	}
}

func asRotation(v Value) (geom.Rotation, bool) {
	switch x := v.(type) {
	case RotationValue:
		return geom.Rotation(x), true
	default:
		vec, ok := asVector(v)
		if !ok {
			return geom.Identity, false
		}
		return geom.FromEulerDegrees(vec.X, vec.Y, vec.Z), true
	}
}
