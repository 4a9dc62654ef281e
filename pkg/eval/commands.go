package eval

import (
	"github.com/jaikdean/ShapeScript/pkg/geom"
	"github.com/jaikdean/ShapeScript/pkg/lex"
	"github.com/jaikdean/ShapeScript/pkg/mesh"
	"github.com/jaikdean/ShapeScript/pkg/path"
)

func registerCommands(s *Scope) {
	reg := func(name string, fn CommandFunc) { s.DefineSymbol(name, &Symbol{Kind: SymbolCommand, Command: fn}) }

	reg("translate", cmdTranslate)
	reg("rotate", cmdRotate)
	reg("scale", cmdScale)
	reg("color", cmdColor)
	reg("opacity", cmdOpacity)
	reg("texture", cmdTexture)
	reg("background", cmdBackground)
	reg("name", cmdName)
	reg("position", cmdPosition)
	reg("orientation", cmdOrientation)
	reg("size", cmdSize)
	reg("detail", cmdDetail)
	reg("smoothing", cmdSmoothing)
	reg("font", cmdFont)
	reg("print", cmdPrint)
	reg("assert", cmdAssert)
	reg("point", cmdPoint)
	reg("curve", cmdCurve)
	// "polygon" is intentionally not registered here: it is wired only as
	// the `polygon` shape block (blocks.go), except inside a `mesh` block
	// body where cmdPolygonVertex shadows it locally as a command.
}

func oneArg(args []Value, loc lex.SourceRange, name string) (Value, error) {
	if len(args) != 1 {
		return nil, &RuntimeError{Kind: ErrWrongArgumentCount, Range: loc, Hint: name + " takes exactly one argument"}
	}
	return args[0], nil
}

// joinedArg bundles a command's juxtaposed arguments (e.g. the three
// numbers of `position 1 0 0`) into the single Value the asVector/
// asColor/asRotation coercions expect, the same bundling parseValue does
// at parse time for `define`.
func joinedArg(args []Value, loc lex.SourceRange, name string) (Value, error) {
	if len(args) == 0 {
		return nil, &RuntimeError{Kind: ErrWrongArgumentCount, Range: loc, Hint: name + " needs at least one argument"}
	}
	if len(args) == 1 {
		return args[0], nil
	}
	return TupleValue{Elements: args}, nil
}

func cmdTranslate(ev *Evaluator, args []Value, loc lex.SourceRange) error {
	v, err := joinedArg(args, loc, "translate")
	if err != nil {
		return err
	}
	vec, ok := asVector(v)
	if !ok {
		return typeErr(loc, "translate needs a vector")
	}
	ev.scope.Transform = ev.scope.Transform.Translated(vec)
	return nil
}

func cmdRotate(ev *Evaluator, args []Value, loc lex.SourceRange) error {
	v, err := joinedArg(args, loc, "rotate")
	if err != nil {
		return err
	}
	rot, ok := asRotation(v)
	if !ok {
		return typeErr(loc, "rotate needs a rotation")
	}
	ev.scope.Transform = ev.scope.Transform.Rotated(rot)
	return nil
}

func cmdScale(ev *Evaluator, args []Value, loc lex.SourceRange) error {
	v, err := joinedArg(args, loc, "scale")
	if err != nil {
		return err
	}
	vec, ok := asVector(v)
	if !ok {
		return typeErr(loc, "scale needs a vector")
	}
	ev.scope.Transform = ev.scope.Transform.Scaled(vec)
	return nil
}

func cmdColor(ev *Evaluator, args []Value, loc lex.SourceRange) error {
	v, err := joinedArg(args, loc, "color")
	if err != nil {
		return err
	}
	c, ok := asColor(v)
	if !ok {
		return typeErr(loc, "color needs a color")
	}
	ev.scope.Material.Color = c
	return nil
}

func cmdOpacity(ev *Evaluator, args []Value, loc lex.SourceRange) error {
	v, err := oneArg(args, loc, "opacity")
	if err != nil {
		return err
	}
	n, ok := asNumber(v)
	if !ok {
		return typeErr(loc, "opacity needs a number")
	}
	ev.scope.Opacity = n
	ev.scope.Material.Color.A = n
	return nil
}

func cmdTexture(ev *Evaluator, args []Value, loc lex.SourceRange) error {
	v, err := oneArg(args, loc, "texture")
	if err != nil {
		return err
	}
	s, ok := asString(v)
	if !ok {
		return typeErr(loc, "texture needs a string path")
	}
	ev.scope.Material.Name = s
	return nil
}

func cmdBackground(ev *Evaluator, args []Value, loc lex.SourceRange) error {
	v, err := joinedArg(args, loc, "background")
	if err != nil {
		return err
	}
	c, ok := asColor(v)
	if !ok {
		return typeErr(loc, "background needs a color or texture")
	}
	ev.scope.Background = c
	return nil
}

func cmdName(ev *Evaluator, args []Value, loc lex.SourceRange) error {
	v, err := oneArg(args, loc, "name")
	if err != nil {
		return err
	}
	s, ok := asString(v)
	if !ok {
		return typeErr(loc, "name needs a string")
	}
	ev.scope.Name = s
	return nil
}

func cmdPosition(ev *Evaluator, args []Value, loc lex.SourceRange) error {
	v, err := joinedArg(args, loc, "position")
	if err != nil {
		return err
	}
	vec, ok := asVector(v)
	if !ok {
		return typeErr(loc, "position needs a vector")
	}
	ev.scope.Transform.Offset = vec
	return nil
}

func cmdOrientation(ev *Evaluator, args []Value, loc lex.SourceRange) error {
	v, err := joinedArg(args, loc, "orientation")
	if err != nil {
		return err
	}
	rot, ok := asRotation(v)
	if !ok {
		return typeErr(loc, "orientation needs a rotation")
	}
	ev.scope.Transform.Rotation = rot
	return nil
}

func cmdSize(ev *Evaluator, args []Value, loc lex.SourceRange) error {
	v, err := joinedArg(args, loc, "size")
	if err != nil {
		return err
	}
	vec, ok := asSize(v)
	if !ok {
		return typeErr(loc, "size needs a vector")
	}
	ev.scope.CurrentSize = vec
	return nil
}

func cmdDetail(ev *Evaluator, args []Value, loc lex.SourceRange) error {
	v, err := oneArg(args, loc, "detail")
	if err != nil {
		return err
	}
	n, ok := asNumber(v)
	if !ok || n < 3 {
		return typeErr(loc, "detail needs a number >= 3")
	}
	ev.scope.Detail = int(n)
	return nil
}

func cmdSmoothing(ev *Evaluator, args []Value, loc lex.SourceRange) error {
	v, err := oneArg(args, loc, "smoothing")
	if err != nil {
		return err
	}
	n, ok := asNumber(v)
	if !ok {
		return typeErr(loc, "smoothing needs an angle in degrees")
	}
	ev.scope.Smoothing = n
	return nil
}

func cmdFont(ev *Evaluator, args []Value, loc lex.SourceRange) error {
	v, err := oneArg(args, loc, "font")
	if err != nil {
		return err
	}
	s, ok := asString(v)
	if !ok {
		return typeErr(loc, "font needs a string")
	}
	ev.scope.Font = FontValue{Family: s, Size: ev.scope.Font.Size}
	return nil
}

func cmdPrint(ev *Evaluator, args []Value, loc lex.SourceRange) error {
	if ev.debugSink != nil {
		ev.debugSink.Debug(args, loc)
	}
	return nil
}

func cmdAssert(ev *Evaluator, args []Value, loc lex.SourceRange) error {
	v, err := oneArg(args, loc, "assert")
	if err != nil {
		return err
	}
	b, ok := asBool(v)
	if !ok {
		return typeErr(loc, "assert needs a boolean")
	}
	if !b {
		return &RuntimeError{Kind: ErrAssertionFailure, Range: loc, Hint: "assertion failed"}
	}
	return nil
}

func cmdPoint(ev *Evaluator, args []Value, loc lex.SourceRange) error {
	v, err := joinedArg(args, loc, "point")
	if err != nil {
		return err
	}
	vec, ok := asVector(v)
	if !ok {
		return typeErr(loc, "point needs a vector")
	}
	ev.scope.PathPoints = append(ev.scope.PathPoints, path.Corner(vec))
	return nil
}

func cmdCurve(ev *Evaluator, args []Value, loc lex.SourceRange) error {
	v, err := joinedArg(args, loc, "curve")
	if err != nil {
		return err
	}
	vec, ok := asVector(v)
	if !ok {
		return typeErr(loc, "curve needs a vector")
	}
	ev.scope.PathPoints = append(ev.scope.PathPoints, path.Curve(vec))
	return nil
}

// cmdPolygonVertex implements the `polygon v1 v2 v3 ...` command used
// inside a `mesh` block body to add one raw polygon from a list of vertex
// positions, shadowing the `polygon` shape block's name within that scope.
func cmdPolygonVertex(ev *Evaluator, args []Value, loc lex.SourceRange) error {
	verts := make([]mesh.Vertex, 0, len(args))
	for _, a := range args {
		vec, ok := asVector(a)
		if !ok {
			return typeErr(loc, "polygon needs vector vertices")
		}
		verts = append(verts, mesh.NewVertex(vec, geom.Zero))
	}
	poly, err := mesh.NewPolygon(verts, &ev.scope.Material)
	if err != nil {
		return &RuntimeError{Kind: ErrTypeMismatch, Range: loc, Hint: "invalid polygon", Inner: err}
	}
	ev.scope.AddChild(PolygonValue{Polygon: poly})
	return nil
}
