package path

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jaikdean/ShapeScript/pkg/geom"
)

// ParseSVG builds a Path from an SVG path data string, supporting the
// M/L/H/V/C/Z commands in both absolute and relative (lowercase) form.
// Cubic beziers are approximated with curveSegments straight segments.
// Coordinates are read as (x, z), matching the XZ-plane convention other
// path shapes in this package use.
func ParseSVG(d string) (Path, error) {
	const curveSegments = 12
	toks := tokenizeSVG(d)
	i := 0
	next := func() (float64, error) {
		if i >= len(toks) {
			return 0, fmt.Errorf("svg path: unexpected end of data")
		}
		v, err := strconv.ParseFloat(toks[i], 64)
		i++
		return v, err
	}

	var points []PathPoint
	var cur geom.Vector
	var start geom.Vector
	var cmd byte

	for i < len(toks) {
		if isSVGCommand(toks[i]) {
			cmd = toks[i][0]
			i++
		}
		switch cmd {
		case 'M', 'm':
			x, err := next()
			if err != nil {
				return Path{}, err
			}
			z, err := next()
			if err != nil {
				return Path{}, err
			}
			p := geom.New(x, 0, z)
			if cmd == 'm' {
				p = cur.Add(p)
			}
			cur, start = p, p
			points = append(points, Corner(p))
		case 'L', 'l':
			x, err := next()
			if err != nil {
				return Path{}, err
			}
			z, err := next()
			if err != nil {
				return Path{}, err
			}
			p := geom.New(x, 0, z)
			if cmd == 'l' {
				p = cur.Add(p)
			}
			cur = p
			points = append(points, Corner(p))
		case 'H', 'h':
			x, err := next()
			if err != nil {
				return Path{}, err
			}
			p := geom.New(x, 0, cur.Z)
			if cmd == 'h' {
				p = geom.New(cur.X+x, 0, cur.Z)
			}
			cur = p
			points = append(points, Corner(p))
		case 'V', 'v':
			z, err := next()
			if err != nil {
				return Path{}, err
			}
			p := geom.New(cur.X, 0, z)
			if cmd == 'v' {
				p = geom.New(cur.X, 0, cur.Z+z)
			}
			cur = p
			points = append(points, Corner(p))
		case 'C', 'c':
			vals := make([]float64, 6)
			for k := range vals {
				v, err := next()
				if err != nil {
					return Path{}, err
				}
				vals[k] = v
			}
			c1 := geom.New(vals[0], 0, vals[1])
			c2 := geom.New(vals[2], 0, vals[3])
			end := geom.New(vals[4], 0, vals[5])
			if cmd == 'c' {
				c1, c2, end = cur.Add(c1), cur.Add(c2), cur.Add(end)
			}
			for s := 1; s <= curveSegments; s++ {
				t := float64(s) / float64(curveSegments)
				points = append(points, Curve(cubicBezier(cur, c1, c2, end, t)))
			}
			cur = end
		case 'Z', 'z':
			points = append(points, Corner(start))
			cur = start
		default:
			return Path{}, fmt.Errorf("svg path: unsupported command %q", string(cmd))
		}
	}
	return New(points), nil
}

func cubicBezier(p0, p1, p2, p3 geom.Vector, t float64) geom.Vector {
	mt := 1 - t
	a := mt * mt * mt
	b := 3 * mt * mt * t
	c := 3 * mt * t * t
	e := t * t * t
	return p0.Scale(a).Add(p1.Scale(b)).Add(p2.Scale(c)).Add(p3.Scale(e))
}

func isSVGCommand(tok string) bool {
	if len(tok) != 1 {
		return false
	}
	switch tok[0] {
	case 'M', 'm', 'L', 'l', 'H', 'h', 'V', 'v', 'C', 'c', 'Z', 'z':
		return true
	default:
		return false
	}
}

func tokenizeSVG(d string) []string {
	var out []string
	var cur strings.Builder
	flush := func() {
		if cur.Len() > 0 {
			out = append(out, cur.String())
			cur.Reset()
		}
	}
	for _, r := range d {
		switch {
		case isSVGCommand(string(r)):
			flush()
			out = append(out, string(r))
		case r == ',' || r == ' ' || r == '\t' || r == '\n':
			flush()
		case r == '-' && cur.Len() > 0 && !strings.HasSuffix(cur.String(), "e") && !strings.HasSuffix(cur.String(), "E"):
			flush()
			cur.WriteRune(r)
		default:
			cur.WriteRune(r)
		}
	}
	flush()
	return out
}
