package path

import "github.com/jaikdean/ShapeScript/pkg/geom"

// SubdivideCurves expands each curve control point in points into `detail`
// straight segments approximating the quadratic Bezier curve it implies
// with its flanking on-curve (corner) points; a corner-to-corner run
// passes through unchanged as a single straight segment. Two consecutive
// curve points imply an on-curve anchor at their midpoint, the same
// convention TrueType quadratic outlines use for smooth runs with no
// explicit anchor between them.
func SubdivideCurves(points []PathPoint, detail int) []PathPoint {
	if detail < 1 {
		detail = 1
	}
	anchors := impliedAnchors(points)
	n := len(anchors)
	if n < 3 {
		return anchors
	}

	out := make([]PathPoint, 0, n)
	out = append(out, anchors[0])
	for i := 1; i < n; i++ {
		cur := anchors[i]
		if !cur.IsCurved || i+1 >= n {
			out = append(out, cur)
			continue
		}

		start := out[len(out)-1].Position
		next := anchors[i+1]
		for s := 1; s < detail; s++ {
			t := float64(s) / float64(detail)
			out = append(out, PathPoint{
				Position: quadraticBezier(start, cur.Position, next.Position, t),
				IsCurved: true,
				Color:    cur.Color,
				Texcoord: cur.Texcoord,
			})
		}
		out = append(out, next)
		i++ // next was consumed as this segment's far anchor
	}
	return out
}

// impliedAnchors inserts an on-curve point at the midpoint of any two
// consecutive curve points, so every curve point that survives is flanked
// by a resolved anchor on each side.
func impliedAnchors(points []PathPoint) []PathPoint {
	if len(points) == 0 {
		return nil
	}
	out := make([]PathPoint, 0, len(points)+2)
	out = append(out, points[0])
	for i := 1; i < len(points); i++ {
		prev, cur := points[i-1], points[i]
		if prev.IsCurved && cur.IsCurved {
			out = append(out, Corner(prev.Position.Lerp(cur.Position, 0.5)))
		}
		out = append(out, cur)
	}
	return out
}

func quadraticBezier(p0, p1, p2 geom.Vector, t float64) geom.Vector {
	u := 1 - t
	return p0.Scale(u * u).Add(p1.Scale(2 * u * t)).Add(p2.Scale(t * t))
}
