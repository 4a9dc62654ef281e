// Package font turns text into outline paths for the `text` geometry
// block, behind a narrow Provider interface so the evaluator never
// depends on a concrete font engine directly.
package font

import "github.com/jaikdean/ShapeScript/pkg/path"

// Provider outlines text set in family at size, wrapped to wrapWidth (0
// for no wrapping), returning one closed path per glyph contour.
type Provider interface {
	Outline(family string, size float64, text string, wrapWidth float64) ([]path.Path, error)
}

// Noop is the zero-dependency fallback: it always returns an empty path
// list, matching the documented degrade behaviour when no font engine is
// available rather than failing the whole evaluation.
type Noop struct{}

func (Noop) Outline(family string, size float64, text string, wrapWidth float64) ([]path.Path, error) {
	return nil, nil
}
