package eval

import (
	"github.com/jaikdean/ShapeScript/pkg/geom"
	"github.com/jaikdean/ShapeScript/pkg/lex"
	"github.com/jaikdean/ShapeScript/pkg/mesh"
	"github.com/jaikdean/ShapeScript/pkg/parse"
	"github.com/jaikdean/ShapeScript/pkg/path"
)

// SymbolKind identifies what a name in the static symbol set resolves to.
type SymbolKind int

const (
	SymbolCommand SymbolKind = iota
	SymbolFunction
	SymbolBlock
	SymbolProperty
	SymbolConstant
	SymbolPlaceholder
)

// CommandFunc runs a side-effecting statement (e.g. translate, print)
// against the evaluator's current scope and returns no value.
type CommandFunc func(ev *Evaluator, args []Value, loc lex.SourceRange) error

// FunctionFunc computes a value from arguments (e.g. sin, split) with no
// side effects on the current scope.
type FunctionFunc func(ev *Evaluator, args []Value, loc lex.SourceRange) (Value, error)

// BlockFunc evaluates a block's body in a freshly pushed child scope and
// returns the value the block call produces.
type BlockFunc func(ev *Evaluator, args []Value, body []parse.Statement, loc lex.SourceRange) (Value, error)

// Symbol is one entry of a scope's static or user-defined symbol table.
type Symbol struct {
	Kind     SymbolKind
	Command  CommandFunc
	Function FunctionFunc
	Block    BlockFunc
	Constant Value
}

// Scope is one level of the evaluator's scope stack: the ambient state a
// block pushes down to its children (transform, material, etc.), a symbol
// table of names visible here, and the child values this block has
// accumulated so far (paths, points, polygons, meshes passed to it).
type Scope struct {
	Transform      geom.Transform
	ChildTransform geom.Transform
	Material       mesh.Material
	Opacity        float64
	Detail         int
	Smoothing      float64
	Font           FontValue
	Name           string
	Background     geom.Color
	Random         *Source

	// CurrentSize holds the vector set by the `size` command, read by
	// primitive blocks (cube/sphere/cylinder/cone/pyramid/prism) in place
	// of a block argument.
	CurrentSize geom.Vector
	// PathPoints accumulates the `point`/`curve` commands inside a `path`
	// block body.
	PathPoints []path.PathPoint
	// Texture is copied into child scopes; the `texture` command does not
	// set it (it stores its path in Material.Name) and no block reads it.
	Texture TextureValue

	vars     map[string]Value
	symbols  map[string]*Symbol
	Children []Value

	Parent *Scope
}

func newRootScope(rand *Source) *Scope {
	s := &Scope{
		Transform:      geom.IdentityTransform,
		ChildTransform: geom.IdentityTransform,
		Material:       mesh.Material{Color: geom.White},
		Opacity:        1,
		Detail:         16,
		Background:     geom.White,
		Random:         rand,
		CurrentSize:    geom.New(1, 1, 1),
		vars:           map[string]Value{},
		symbols:        map[string]*Symbol{},
	}
	registerMathBuiltins(s)
	registerStringBuiltins(s)
	registerBlocks(s)
	registerCommands(s)
	return s
}

// Child derives a new scope for a block body: it inherits the ambient
// transform/material/etc from s (so a nested block sees its parent's
// current state unless it overrides it) but starts with empty children and
// a fresh (but parent-chained) symbol/variable lookup.
func (s *Scope) Child() *Scope {
	return &Scope{
		Transform:      s.Transform,
		ChildTransform: s.ChildTransform,
		Material:       s.Material,
		Opacity:        s.Opacity,
		Detail:         s.Detail,
		Smoothing:      s.Smoothing,
		Font:           s.Font,
		Name:           s.Name,
		Background:     s.Background,
		Random:         s.Random,
		CurrentSize:    s.CurrentSize,
		Texture:        s.Texture,
		vars:           map[string]Value{},
		symbols:        map[string]*Symbol{},
		Parent:         s,
	}
}

// Define binds name to v in this scope only.
func (s *Scope) Define(name string, v Value) { s.vars[name] = v }

// Lookup resolves a variable name, walking up the parent chain.
func (s *Scope) Lookup(name string) (Value, bool) {
	for cur := s; cur != nil; cur = cur.Parent {
		if v, ok := cur.vars[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// DefineSymbol binds a command/function/block/constant name in this scope
// only (used for builtin registration on the root scope and for commands
// local to one block's child scope; `define` statements bind variables
// through Define instead).
func (s *Scope) DefineSymbol(name string, sym *Symbol) { s.symbols[name] = sym }

// LookupSymbol resolves a command/function/block name, walking up the
// parent chain so builtins registered on the root scope stay visible
// everywhere.
func (s *Scope) LookupSymbol(name string) (*Symbol, bool) {
	for cur := s; cur != nil; cur = cur.Parent {
		if sym, ok := cur.symbols[name]; ok {
			return sym, true
		}
	}
	return nil, false
}

// AddChild accumulates a .mesh/.path/.point/.polygon/.geometry value
// produced by a nested statement, to be consumed when this scope's block
// finishes evaluating its body.
func (s *Scope) AddChild(v Value) { s.Children = append(s.Children, v) }
