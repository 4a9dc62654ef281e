// Package eval walks a parsed document and evaluates it against a stack of
// scopes into a scene.Scene: geometry blocks build meshes (directly, or via
// pkg/builder from accumulated path/point children), commands mutate the
// current scope, and the standard math/logic/string library backs
// expression evaluation.
package eval

import (
	"fmt"
	"strconv"

	"github.com/jaikdean/ShapeScript/pkg/geom"
	"github.com/jaikdean/ShapeScript/pkg/mesh"
	"github.com/jaikdean/ShapeScript/pkg/path"
	"github.com/jaikdean/ShapeScript/pkg/scene"
)

// Kind identifies a Value's type in the script-visible type domain.
type Kind string

const (
	KindVoid     Kind = "void"
	KindBoolean  Kind = "boolean"
	KindNumber   Kind = "number"
	KindString   Kind = "string"
	KindColor    Kind = "color"
	KindVector   Kind = "vector"
	KindSize     Kind = "size"
	KindRotation Kind = "rotation"
	KindTexture  Kind = "texture"
	KindFont     Kind = "font"
	KindPath     Kind = "path"
	KindPoint    Kind = "point"
	KindPolygon  Kind = "polygon"
	KindMesh     Kind = "mesh"
	KindGeometry Kind = "geometry"
	KindList     Kind = "list"
	KindTuple    Kind = "tuple"
	KindAny      Kind = "any"
)

// Value is any result an expression or block can produce.
type Value interface {
	Kind() Kind
	String() string
}

type Void struct{}

func (Void) Kind() Kind      { return KindVoid }
func (Void) String() string { return "" }

type Boolean bool

func (Boolean) Kind() Kind       { return KindBoolean }
func (b Boolean) String() string { return fmt.Sprintf("%v", bool(b)) }

type Number float64

func (Number) Kind() Kind       { return KindNumber }
func (n Number) String() string { return trimFloat(float64(n)) }

type String string

func (String) Kind() Kind       { return KindString }
func (s String) String() string { return string(s) }

type ColorValue geom.Color

func (ColorValue) Kind() Kind       { return KindColor }
func (c ColorValue) String() string { return geom.Color(c).Hex() }

type VectorValue geom.Vector

func (VectorValue) Kind() Kind       { return KindVector }
func (v VectorValue) String() string { return geom.Vector(v).String() }

// SizeValue is a vector used in a size context (distinguished at the type
// level so broadcast/coercion rules can tell "a point" from "a scale").
type SizeValue geom.Vector

func (SizeValue) Kind() Kind       { return KindSize }
func (v SizeValue) String() string { return geom.Vector(v).String() }

type RotationValue geom.Rotation

func (RotationValue) Kind() Kind       { return KindRotation }
func (RotationValue) String() string    { return "rotation" }

// TextureValue names an external image resource; the engine does not
// decode image bytes itself (out of scope), only carries the reference
// through to the host for rendering.
type TextureValue struct{ Path string }

func (TextureValue) Kind() Kind         { return KindTexture }
func (t TextureValue) String() string   { return t.Path }

type FontValue struct {
	Family string
	Size   float64
}

func (FontValue) Kind() Kind       { return KindFont }
func (f FontValue) String() string { return f.Family }

type PathValue struct{ Path path.Path }

func (PathValue) Kind() Kind       { return KindPath }
func (PathValue) String() string    { return "path" }

type PointValue geom.Vector

func (PointValue) Kind() Kind       { return KindPoint }
func (v PointValue) String() string { return geom.Vector(v).String() }

type PolygonValue struct{ Polygon mesh.Polygon }

func (PolygonValue) Kind() Kind      { return KindPolygon }
func (PolygonValue) String() string   { return "polygon" }

type MeshValue struct{ Mesh mesh.Mesh }

func (MeshValue) Kind() Kind      { return KindMesh }
func (MeshValue) String() string   { return "mesh" }

// GeometryValue wraps a built-or-building scene.Geometry node — the value
// a geometry block produces when used as an expression (e.g. nested inside
// another block's argument list).
type GeometryValue struct{ Geometry *scene.Geometry }

func (GeometryValue) Kind() Kind      { return KindGeometry }
func (GeometryValue) String() string   { return "geometry" }

type ListValue struct {
	Elements []Value
	Element  Kind
}

func (ListValue) Kind() Kind { return KindList }
func (l ListValue) String() string {
	return fmt.Sprintf("list(%s)[%d]", l.Element, len(l.Elements))
}

type TupleValue struct{ Elements []Value }

func (TupleValue) Kind() Kind { return KindTuple }
func (t TupleValue) String() string {
	return fmt.Sprintf("tuple[%d]", len(t.Elements))
}

func trimFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
