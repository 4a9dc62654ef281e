package path

import "github.com/jaikdean/ShapeScript/pkg/geom"

// IsSimple reports whether no two non-adjacent edges of p cross. Edges are
// tested in the 2D projection given by the path's approximate normal
// (Newell's method over the raw point loop, regardless of whether the
// loop is actually planar), which is exact for planar paths and a
// reasonable approximation otherwise.
func (p Path) IsSimple() bool {
	loop := p.loopPositions()
	n := len(loop)
	if n < 3 {
		return true
	}
	normal := geom.NewellNormal(loop)
	if normal.IsZero() {
		normal = geom.New(0, 0, 1)
	}
	u, v := planeBasis(normal)

	segs := make([]segment2, n)
	for i := 0; i < n; i++ {
		a := loop[i]
		b := loop[(i+1)%n]
		segs[i] = segment2{a.Dot(u), a.Dot(v), b.Dot(u), b.Dot(v)}
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if j == i+1 || (i == 0 && j == n-1) {
				continue // adjacent edges share an endpoint by construction
			}
			if segmentsIntersect(segs[i], segs[j]) {
				return false
			}
		}
	}
	return true
}

func planeBasis(normal geom.Vector) (geom.Vector, geom.Vector) {
	ref := geom.New(0, 1, 0)
	if absf(normal.Dot(ref)) > 0.9 {
		ref = geom.New(1, 0, 0)
	}
	u := ref.Cross(normal).Normalized()
	w := normal.Cross(u).Normalized()
	return u, w
}

func absf(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

type segment2 struct{ ax, ay, bx, by float64 }

func segmentsIntersect(s1, s2 segment2) bool {
	d1 := cross2(s2.ax, s2.ay, s2.bx, s2.by, s1.ax, s1.ay)
	d2 := cross2(s2.ax, s2.ay, s2.bx, s2.by, s1.bx, s1.by)
	d3 := cross2(s1.ax, s1.ay, s1.bx, s1.by, s2.ax, s2.ay)
	d4 := cross2(s1.ax, s1.ay, s1.bx, s1.by, s2.bx, s2.by)

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}
	return false
}

func cross2(ax, ay, bx, by, px, py float64) float64 {
	return (bx-ax)*(py-ay) - (by-ay)*(px-ax)
}
