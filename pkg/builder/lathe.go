package builder

import (
	"math"

	"github.com/jaikdean/ShapeScript/pkg/geom"
	"github.com/jaikdean/ShapeScript/pkg/mesh"
	"github.com/jaikdean/ShapeScript/pkg/path"
)

// Lathe rotates each source path, after clipping it to the x≤0 half-space,
// around the Y axis in segments angular slices, merging the seam where the
// last slice meets the first.
func Lathe(paths []path.Path, segments int, material *mesh.Material) (mesh.Mesh, error) {
	if segments < 3 {
		segments = 3
	}
	var polys []mesh.Polygon

	for _, p := range paths {
		clipped := p.ClipToYAxis()
		if len(clipped.Points) < 2 {
			continue
		}

		slices := make([]path.Path, segments+1)
		for s := 0; s <= segments; s++ {
			angle := 2 * math.Pi * float64(s) / float64(segments)
			slices[s] = rotateAboutY(clipped, angle)
		}

		for s := 0; s < segments; s++ {
			outward := func(i int) geom.Vector {
				mid := 0.5 * (angleFor(s, segments) + angleFor(s+1, segments))
				return geom.New(math.Sin(mid), 0, math.Cos(mid))
			}
			sides, err := extrudeSides(slices[s], slices[s+1], outward, material)
			if err != nil {
				return mesh.Empty, err
			}
			polys = append(polys, sides...)
		}
	}

	return mesh.New(polys), nil
}

func angleFor(slice, segments int) float64 {
	return 2 * math.Pi * float64(slice) / float64(segments)
}

func rotateAboutY(p path.Path, angle float64) path.Path {
	rot := geom.FromAxisAngle(geom.New(0, 1, 0), angle)
	out := make([]path.PathPoint, len(p.Points))
	for i, pt := range p.Points {
		moved := pt
		moved.Position = rot.Rotate(pt.Position)
		out[i] = moved
	}
	return path.New(out)
}
