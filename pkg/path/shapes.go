package path

import "math"

import "github.com/jaikdean/ShapeScript/pkg/geom"

// Circle returns a closed, regular polygon approximating a unit-radius
// circle scaled by radius, lying in the XZ plane (the convention builders
// expect for lathe profiles and extrusion caps).
func Circle(radius float64, segments int) Path {
	return RegularPolygon(segments, radius)
}

// RegularPolygon returns a closed, regular N-gon of the given circumradius,
// centered at the origin in the XZ plane, wound counter-clockwise when
// viewed from +Y.
func RegularPolygon(sides int, radius float64) Path {
	if sides < 3 {
		sides = 3
	}
	points := make([]PathPoint, sides+1)
	for i := 0; i <= sides; i++ {
		angle := 2 * math.Pi * float64(i) / float64(sides)
		points[i] = Curve(geom.New(radius*math.Sin(angle), 0, radius*math.Cos(angle)))
	}
	return New(points)
}

// Square returns a closed unit square of the given side length, centered
// at the origin in the XZ plane.
func Square(size float64) Path {
	h := size / 2
	return New([]PathPoint{
		Corner(geom.New(-h, 0, -h)),
		Corner(geom.New(h, 0, -h)),
		Corner(geom.New(h, 0, h)),
		Corner(geom.New(-h, 0, h)),
		Corner(geom.New(-h, 0, -h)),
	})
}

// RoundRect returns a closed rectangle with quarter-circle corners of the
// given radius, approximated with segments points per corner.
func RoundRect(width, height, radius float64, segments int) Path {
	if segments < 1 {
		segments = 4
	}
	if radius <= 0 {
		return Square2(width, height)
	}
	hw, hh := width/2, height/2
	if radius > hw {
		radius = hw
	}
	if radius > hh {
		radius = hh
	}
	centers := []geom.Vector{
		geom.New(hw-radius, 0, hh-radius),
		geom.New(-(hw - radius), 0, hh-radius),
		geom.New(-(hw - radius), 0, -(hh - radius)),
		geom.New(hw-radius, 0, -(hh - radius)),
	}
	startAngles := []float64{0, math.Pi / 2, math.Pi, 3 * math.Pi / 2}

	var points []PathPoint
	for c := 0; c < 4; c++ {
		for s := 0; s <= segments; s++ {
			angle := startAngles[c] + (math.Pi/2)*float64(s)/float64(segments)
			p := centers[c].Add(geom.New(radius*math.Sin(angle), 0, radius*math.Cos(angle)))
			points = append(points, Curve(p))
		}
	}
	points = append(points, points[0])
	return New(points)
}

// Square2 is the sharp-cornered fallback RoundRect uses when radius <= 0.
func Square2(width, height float64) Path {
	hw, hh := width/2, height/2
	return New([]PathPoint{
		Corner(geom.New(-hw, 0, -hh)),
		Corner(geom.New(hw, 0, -hh)),
		Corner(geom.New(hw, 0, hh)),
		Corner(geom.New(-hw, 0, hh)),
		Corner(geom.New(-hw, 0, -hh)),
	})
}
