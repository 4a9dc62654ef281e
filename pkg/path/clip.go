package path

import "github.com/jaikdean/ShapeScript/pkg/geom"

// ClipToYAxis splits p against the plane x=0 and keeps only the x≤0
// half-space, following the x-axis sign convention the lathe builder
// sweeps around the Y axis from.
func (p Path) ClipToYAxis() Path {
	yAxisPlane := geom.Plane{Normal: geom.New(1, 0, 0), W: 0}

	var out []PathPoint
	n := len(p.Points)
	for i := 0; i < n; i++ {
		cur := p.Points[i]
		if cur.Position.X <= geom.Epsilon {
			out = append(out, cur)
		}
		if i == n-1 {
			break
		}
		next := p.Points[i+1]
		curSide := cur.Position.Compare(yAxisPlane)
		nextSide := next.Position.Compare(yAxisPlane)
		if (curSide == geom.Front && nextSide == geom.Back) || (curSide == geom.Back && nextSide == geom.Front) {
			d := yAxisPlane.Normal.Dot(cur.Position) - yAxisPlane.W
			dNext := yAxisPlane.Normal.Dot(next.Position) - yAxisPlane.W
			t := d / (d - dNext)
			mid := cur.Position.Lerp(next.Position, t)
			out = append(out, PathPoint{Position: mid, IsCurved: cur.IsCurved || next.IsCurved})
		}
	}
	return New(out)
}
