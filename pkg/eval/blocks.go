package eval

import (
	"fmt"

	"github.com/jaikdean/ShapeScript/pkg/builder"
	"github.com/jaikdean/ShapeScript/pkg/geom"
	"github.com/jaikdean/ShapeScript/pkg/lex"
	"github.com/jaikdean/ShapeScript/pkg/mesh"
	"github.com/jaikdean/ShapeScript/pkg/parse"
	"github.com/jaikdean/ShapeScript/pkg/path"
	"github.com/jaikdean/ShapeScript/pkg/scene"
)

func registerBlocks(s *Scope) {
	reg := func(name string, fn BlockFunc) { s.DefineSymbol(name, &Symbol{Kind: SymbolBlock, Block: fn}) }

	reg("group", combineBlock(scene.TypeGroup))
	reg("union", combineBlock(scene.TypeUnion))
	reg("difference", combineBlock(scene.TypeDifference))
	reg("intersection", combineBlock(scene.TypeIntersection))
	reg("xor", combineBlock(scene.TypeXor))
	reg("stencil", combineBlock(scene.TypeStencil))

	reg("cube", blockCube)
	reg("sphere", blockSphere)
	reg("cylinder", blockCylinder)
	reg("cone", blockCone)
	reg("pyramid", blockPyramid)
	reg("prism", blockPrism)

	reg("extrude", blockExtrude)
	reg("lathe", blockLathe)
	reg("loft", blockLoft)
	reg("fill", blockFill)
	reg("hull", blockHull)

	reg("path", blockPath)
	reg("circle", shapeBlock(func(c *Scope) path.Path { return path.Circle(0.5, max3(c.Detail)) }))
	reg("square", shapeBlock(func(c *Scope) path.Path { return path.Square(1) }))
	reg("roundrect", shapeBlock(func(c *Scope) path.Path { return path.RoundRect(1, 1, 0.1, max3(c.Detail)) }))
	reg("polygon", shapeBlock(func(c *Scope) path.Path { return path.RegularPolygon(max3(c.Detail), 0.5) }))
	reg("svgpath", blockSVGPath)

	reg("text", blockText)
	reg("mesh", blockMesh)
	reg("camera", blockCamera)
	reg("light", blockLight)
	reg("debug", blockDebug)
}

func max3(n int) int {
	if n < 3 {
		return 3
	}
	return n
}

// runBlockBody pushes a fresh child scope, evaluates body in it and pops
// back, returning the child scope so the caller can read what it
// accumulated (Children, CurrentSize, PathPoints, Material, Transform)
// before it goes out of scope.
func runBlockBody(ev *Evaluator, body []parse.Statement) (*Scope, error) {
	child := ev.pushChild()
	defer ev.pop()
	if err := ev.execStatements(body); err != nil {
		return nil, err
	}
	return child, nil
}

func geometryChildren(child *Scope) ([]*scene.Geometry, []string) {
	var children []*scene.Geometry
	var keys []string
	for _, v := range child.Children {
		if g, ok := v.(GeometryValue); ok {
			children = append(children, g.Geometry)
			keys = append(keys, g.Geometry.Key)
		}
	}
	return children, keys
}

func pathChildren(child *Scope) []path.Path {
	var paths []path.Path
	for _, v := range child.Children {
		if p, ok := v.(PathValue); ok {
			paths = append(paths, p.Path)
		}
	}
	return paths
}

func pointChildren(child *Scope) []geom.Vector {
	var points []geom.Vector
	for _, v := range child.Children {
		switch p := v.(type) {
		case PointValue:
			points = append(points, geom.Vector(p))
		case PathValue:
			for _, pt := range p.Path.Points {
				points = append(points, pt.Position)
			}
		}
	}
	return points
}

func polygonChildren(child *Scope) []mesh.Polygon {
	var polys []mesh.Polygon
	for _, v := range child.Children {
		if p, ok := v.(PolygonValue); ok {
			polys = append(polys, p.Polygon)
		}
	}
	return polys
}

// combineBlock returns a BlockFunc for group and the boolean operators:
// evaluate the body, gather its geometry children, and fold them with
// typ's combination rule (applied lazily, when the resulting node is
// eventually built).
func combineBlock(typ scene.NodeType) BlockFunc {
	return func(ev *Evaluator, args []Value, body []parse.Statement, loc lex.SourceRange) (Value, error) {
		child, err := runBlockBody(ev, body)
		if err != nil {
			return nil, err
		}
		children, keys := geometryChildren(child)
		key := scene.HashKey(typ, child.Material, child.Smoothing, "", keys)
		g := scene.NewGroup(typ, key, child.Transform, child.Material, children)
		return GeometryValue{Geometry: g}, nil
	}
}

// leaf wraps a unit-sized primitive build as a scene.Geometry whose size
// is applied as a scale on the node's own Transform rather than baked into
// the built mesh, so spheres/cubes/etc of different sizes (but the same
// detail and material) share one cached mesh.
func leaf(child *Scope, params string, build func(mat *mesh.Material) (mesh.Mesh, error)) GeometryValue {
	mat := child.Material
	key := scene.HashKey(scene.TypeMesh, mat, child.Smoothing, params, nil)
	g := scene.NewLeaf(scene.TypeMesh, key, child.Transform.Scaled(child.CurrentSize), mat,
		func(isCancelled func() bool) (mesh.Mesh, error) { return build(&mat) })
	return GeometryValue{Geometry: g}
}

func blockCube(ev *Evaluator, args []Value, body []parse.Statement, loc lex.SourceRange) (Value, error) {
	child, err := runBlockBody(ev, body)
	if err != nil {
		return nil, err
	}
	return leaf(child, "cube", func(mat *mesh.Material) (mesh.Mesh, error) {
		return builder.Cube(geom.New(1, 1, 1), mat)
	}), nil
}

func blockSphere(ev *Evaluator, args []Value, body []parse.Statement, loc lex.SourceRange) (Value, error) {
	child, err := runBlockBody(ev, body)
	if err != nil {
		return nil, err
	}
	segments := max3(child.Detail)
	return leaf(child, fmt.Sprintf("sphere:%d", segments), func(mat *mesh.Material) (mesh.Mesh, error) {
		return builder.Sphere(0.5, segments, mat)
	}), nil
}

func blockCylinder(ev *Evaluator, args []Value, body []parse.Statement, loc lex.SourceRange) (Value, error) {
	child, err := runBlockBody(ev, body)
	if err != nil {
		return nil, err
	}
	segments := max3(child.Detail)
	return leaf(child, fmt.Sprintf("cylinder:%d", segments), func(mat *mesh.Material) (mesh.Mesh, error) {
		return builder.Cylinder(0.5, 1, segments, mat)
	}), nil
}

func blockCone(ev *Evaluator, args []Value, body []parse.Statement, loc lex.SourceRange) (Value, error) {
	child, err := runBlockBody(ev, body)
	if err != nil {
		return nil, err
	}
	segments := max3(child.Detail)
	return leaf(child, fmt.Sprintf("cone:%d", segments), func(mat *mesh.Material) (mesh.Mesh, error) {
		return builder.Cone(0.5, 1, segments, mat)
	}), nil
}

// blockPrism and blockPyramid reuse Detail as the regular-polygon side
// count: ShapeScript's separate `sides` command is folded into the same
// global tessellation knob the curved primitives already read.
func blockPrism(ev *Evaluator, args []Value, body []parse.Statement, loc lex.SourceRange) (Value, error) {
	child, err := runBlockBody(ev, body)
	if err != nil {
		return nil, err
	}
	sides := max3(child.Detail)
	return leaf(child, fmt.Sprintf("prism:%d", sides), func(mat *mesh.Material) (mesh.Mesh, error) {
		return builder.Prism(sides, 0.5, 1, mat)
	}), nil
}

func blockPyramid(ev *Evaluator, args []Value, body []parse.Statement, loc lex.SourceRange) (Value, error) {
	child, err := runBlockBody(ev, body)
	if err != nil {
		return nil, err
	}
	sides := max3(child.Detail)
	return leaf(child, fmt.Sprintf("pyramid:%d", sides), func(mat *mesh.Material) (mesh.Mesh, error) {
		return builder.Pyramid(sides, 0.5, 1, mat)
	}), nil
}

// pathLeaf wraps a path-consuming builder result. The path data itself is
// arbitrary (whatever the body's nested path/circle/square children
// produced), so unlike leaf it is built directly at child.Transform with
// no cache key: there is nothing to structurally hash short of the paths'
// full point lists.
func pathLeaf(child *Scope, build func(mat *mesh.Material) (mesh.Mesh, error)) GeometryValue {
	mat := child.Material
	g := scene.NewLeaf(scene.TypeMesh, "", child.Transform, mat,
		func(isCancelled func() bool) (mesh.Mesh, error) { return build(&mat) })
	return GeometryValue{Geometry: g}
}

// blockExtrude sweeps its body's source paths straight along Y by default,
// or along a guide path when called as `extrude(along)` with a path-typed
// argument: extrude's own positional arg slot carries the guide, since the
// body's path children are always the shapes being swept, never the guide
// they sweep along.
func blockExtrude(ev *Evaluator, args []Value, body []parse.Statement, loc lex.SourceRange) (Value, error) {
	var along *path.Path
	if len(args) > 0 {
		guide, ok := args[0].(PathValue)
		if !ok {
			return nil, typeErr(loc, "extrude's along argument must be a path")
		}
		along = &guide.Path
	}

	child, err := runBlockBody(ev, body)
	if err != nil {
		return nil, err
	}
	paths := pathChildren(child)
	depth := child.CurrentSize.Y
	return pathLeaf(child, func(mat *mesh.Material) (mesh.Mesh, error) {
		return builder.Extrude(paths, geom.New(0, 1, 0), depth, along, mat)
	}), nil
}

func blockLathe(ev *Evaluator, args []Value, body []parse.Statement, loc lex.SourceRange) (Value, error) {
	child, err := runBlockBody(ev, body)
	if err != nil {
		return nil, err
	}
	paths := pathChildren(child)
	segments := max3(child.Detail)
	return pathLeaf(child, func(mat *mesh.Material) (mesh.Mesh, error) {
		return builder.Lathe(paths, segments, mat)
	}), nil
}

func blockLoft(ev *Evaluator, args []Value, body []parse.Statement, loc lex.SourceRange) (Value, error) {
	child, err := runBlockBody(ev, body)
	if err != nil {
		return nil, err
	}
	paths := pathChildren(child)
	return pathLeaf(child, func(mat *mesh.Material) (mesh.Mesh, error) {
		return builder.Loft(paths, mat)
	}), nil
}

func blockFill(ev *Evaluator, args []Value, body []parse.Statement, loc lex.SourceRange) (Value, error) {
	child, err := runBlockBody(ev, body)
	if err != nil {
		return nil, err
	}
	paths := pathChildren(child)
	return pathLeaf(child, func(mat *mesh.Material) (mesh.Mesh, error) {
		return builder.Fill(paths, mat)
	}), nil
}

func blockHull(ev *Evaluator, args []Value, body []parse.Statement, loc lex.SourceRange) (Value, error) {
	child, err := runBlockBody(ev, body)
	if err != nil {
		return nil, err
	}
	points := pointChildren(child)
	return pathLeaf(child, func(mat *mesh.Material) (mesh.Mesh, error) {
		return builder.Hull(points, mat)
	}), nil
}

// blockPath collects the point/curve commands its body ran, directly
// against the child scope (PathPoints is not a Children accumulation,
// since a path's own points aren't themselves values other statements can
// see), into a single closed or open Path. Curve control points are
// subdivided into child.Detail straight segments before the Path is built,
// so a hand-written `curve` control point responds to `detail` the same
// way the parametric shapes (circle, roundrect, polygon) do.
func blockPath(ev *Evaluator, args []Value, body []parse.Statement, loc lex.SourceRange) (Value, error) {
	child, err := runBlockBody(ev, body)
	if err != nil {
		return nil, err
	}
	points := path.SubdivideCurves(child.PathPoints, child.Detail)
	p := path.New(points).Transformed(child.Transform)
	return PathValue{Path: p}, nil
}

// shapeBlock adapts a canonical-unit-size path constructor (circle,
// square, polygon, roundrect) into a BlockFunc: the body may still run
// `size`/translate/rotate/scale commands, which are applied directly to
// the path's points since a bare PathValue carries no Transform of its
// own to defer them to.
func shapeBlock(base func(child *Scope) path.Path) BlockFunc {
	return func(ev *Evaluator, args []Value, body []parse.Statement, loc lex.SourceRange) (Value, error) {
		child, err := runBlockBody(ev, body)
		if err != nil {
			return nil, err
		}
		p := base(child).Transformed(child.Transform.Scaled(child.CurrentSize))
		return PathValue{Path: p}, nil
	}
}

func blockSVGPath(ev *Evaluator, args []Value, body []parse.Statement, loc lex.SourceRange) (Value, error) {
	if len(args) != 1 {
		return nil, &RuntimeError{Kind: ErrWrongArgumentCount, Range: loc, Hint: "svgpath takes one string argument"}
	}
	d, ok := asString(args[0])
	if !ok {
		return nil, typeErr(loc, "svgpath needs a string of SVG path data")
	}
	child, err := runBlockBody(ev, body)
	if err != nil {
		return nil, err
	}
	p, err := path.ParseSVG(d)
	if err != nil {
		return nil, &RuntimeError{Kind: ErrFileParsingError, Range: loc, Hint: "invalid SVG path data", Inner: err}
	}
	return PathValue{Path: p.Transformed(child.Transform.Scaled(child.CurrentSize))}, nil
}

func blockText(ev *Evaluator, args []Value, body []parse.Statement, loc lex.SourceRange) (Value, error) {
	if len(args) != 1 {
		return nil, &RuntimeError{Kind: ErrWrongArgumentCount, Range: loc, Hint: "text takes one string argument"}
	}
	text, ok := asString(args[0])
	if !ok {
		return nil, typeErr(loc, "text needs a string")
	}
	child, err := runBlockBody(ev, body)
	if err != nil {
		return nil, err
	}
	size := child.Font.Size
	if size == 0 {
		size = 1
	}
	family := child.Font.Family
	if family == "" {
		family = "default"
	}
	outlines, err := ev.fontProvider.Outline(family, size, text, child.CurrentSize.X)
	if err != nil {
		return nil, &RuntimeError{Kind: ErrUnknownFont, Range: loc, Hint: family, Inner: err}
	}
	return pathLeaf(child, func(mat *mesh.Material) (mesh.Mesh, error) {
		return builder.Fill(outlines, mat)
	}), nil
}

// blockMesh builds a mesh directly from raw polygon vertex lists added by
// the `polygon` command, which shadows the shape block of the same name
// inside this scope only.
func blockMesh(ev *Evaluator, args []Value, body []parse.Statement, loc lex.SourceRange) (Value, error) {
	child := ev.pushChild()
	child.DefineSymbol("polygon", &Symbol{Kind: SymbolCommand, Command: cmdPolygonVertex})
	defer ev.pop()
	if err := ev.execStatements(body); err != nil {
		return nil, err
	}
	polys := polygonChildren(child)
	return pathLeaf(child, func(mat *mesh.Material) (mesh.Mesh, error) {
		return mesh.New(polys), nil
	}), nil
}

func blockCamera(ev *Evaluator, args []Value, body []parse.Statement, loc lex.SourceRange) (Value, error) {
	child, err := runBlockBody(ev, body)
	if err != nil {
		return nil, err
	}
	g := scene.NewLeaf(scene.TypeCamera, "", child.Transform, child.Material,
		func(isCancelled func() bool) (mesh.Mesh, error) { return mesh.Empty, nil })
	g.Name = child.Name
	return GeometryValue{Geometry: g}, nil
}

func blockLight(ev *Evaluator, args []Value, body []parse.Statement, loc lex.SourceRange) (Value, error) {
	child, err := runBlockBody(ev, body)
	if err != nil {
		return nil, err
	}
	g := scene.NewLeaf(scene.TypeLight, "", child.Transform, child.Material,
		func(isCancelled func() bool) (mesh.Mesh, error) { return mesh.Empty, nil })
	g.Name = child.Name
	return GeometryValue{Geometry: g}, nil
}

// blockDebug runs its body, then (if a DebugSink is configured) forwards
// whatever values the body accumulated, without adding anything itself to
// the enclosing scope.
func blockDebug(ev *Evaluator, args []Value, body []parse.Statement, loc lex.SourceRange) (Value, error) {
	child, err := runBlockBody(ev, body)
	if err != nil {
		return nil, err
	}
	if ev.debugSink != nil {
		ev.debugSink.Debug(child.Children, loc)
	}
	return Void{}, nil
}
