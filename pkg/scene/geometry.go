// Package scene holds the built geometry tree an evaluated document
// produces: a lazily-meshed, content-addressed cache of Geometry nodes
// combined by the CSG operators, plus the non-solid camera/light/debug
// leaves a host renderer consumes directly.
package scene

import (
	"sync"

	"github.com/jaikdean/ShapeScript/pkg/geom"
	"github.com/jaikdean/ShapeScript/pkg/logging"
	"github.com/jaikdean/ShapeScript/pkg/mesh"
)

// NodeType identifies what a Geometry node represents.
type NodeType string

const (
	TypeGroup        NodeType = "group"
	TypeUnion        NodeType = "union"
	TypeDifference   NodeType = "difference"
	TypeIntersection NodeType = "intersection"
	TypeXor          NodeType = "xor"
	TypeStencil      NodeType = "stencil"
	TypeMesh         NodeType = "mesh" // a leaf whose polygons are already known
	TypeCamera       NodeType = "camera"
	TypeLight        NodeType = "light"
)

// BuildFunc produces the mesh for a leaf node (a primitive, a builder
// result, or an already-known polygon set). Group/boolean nodes use a
// build closure that recurses into their children via the same Cache.
type BuildFunc func(cache *Cache, isCancelled func() bool) (mesh.Mesh, error)

// Geometry is one node of the evaluated scene tree. It is built lazily and
// at most once per node (sync.Once), and the resulting mesh may additionally
// be shared across nodes via a Cache keyed on Key.
type Geometry struct {
	Type           NodeType
	Key            string
	Transform      geom.Transform
	Material       mesh.Material
	Smoothing      float64
	Children       []*Geometry
	Name           string
	SourceLocation string

	build BuildFunc

	once sync.Once
	mesh mesh.Mesh
	err  error
}

// NewLeaf builds a Geometry node whose mesh is produced directly by build
// (a primitive shape, an extrude/lathe/loft/fill/hull result, or a loaded
// mesh.Mesh).
func NewLeaf(typ NodeType, key string, transform geom.Transform, material mesh.Material, build func(isCancelled func() bool) (mesh.Mesh, error)) *Geometry {
	return &Geometry{Type: typ, Key: key, Transform: transform, Material: material,
		build: func(_ *Cache, isCancelled func() bool) (mesh.Mesh, error) { return build(isCancelled) }}
}

// NewGroup builds a Geometry node whose mesh is derived from its children
// by the combination rule for typ (concatenation for group, boolean
// recombination for union/difference/intersection/xor/stencil).
func NewGroup(typ NodeType, key string, transform geom.Transform, material mesh.Material, children []*Geometry) *Geometry {
	g := &Geometry{Type: typ, Key: key, Transform: transform, Material: material, Children: children}
	g.build = func(cache *Cache, isCancelled func() bool) (mesh.Mesh, error) {
		return combineChildren(typ, children, cache, isCancelled)
	}
	return g
}

func combineChildren(typ NodeType, children []*Geometry, cache *Cache, isCancelled func() bool) (mesh.Mesh, error) {
	meshes := make([]mesh.Mesh, 0, len(children))
	for _, c := range children {
		m, err := c.Build(cache, isCancelled)
		if err != nil {
			return mesh.Empty, err
		}
		meshes = append(meshes, m.Transformed(c.Transform))
	}
	if len(meshes) == 0 {
		return mesh.Empty, nil
	}

	switch typ {
	case TypeGroup:
		var polys []mesh.Polygon
		for _, m := range meshes {
			polys = append(polys, m.Polygons()...)
		}
		return mesh.New(polys), nil
	case TypeUnion:
		acc := meshes[0].Polygons()
		for _, m := range meshes[1:] {
			acc = mesh.Union(acc, m.Polygons(), isCancelled)
		}
		return mesh.New(acc).MakeWatertight(), nil
	case TypeDifference:
		acc := meshes[0].Polygons()
		for _, m := range meshes[1:] {
			acc = mesh.Difference(acc, m.Polygons(), isCancelled)
		}
		return mesh.New(acc).MakeWatertight(), nil
	case TypeIntersection:
		acc := meshes[0].Polygons()
		for _, m := range meshes[1:] {
			acc = mesh.Intersection(acc, m.Polygons(), isCancelled)
		}
		return mesh.New(acc).MakeWatertight(), nil
	case TypeXor:
		acc := meshes[0].Polygons()
		for _, m := range meshes[1:] {
			acc = mesh.Xor(acc, m.Polygons(), isCancelled)
		}
		return mesh.New(acc).MakeWatertight(), nil
	case TypeStencil:
		// "A" is the first child: every fold stamps the overlap with A's own
		// declared material, never the stencil block's own ambient one.
		acc := meshes[0].Polygons()
		stamp := &children[0].Material
		for _, m := range meshes[1:] {
			acc = mesh.Stencil(acc, m.Polygons(), stamp, isCancelled)
		}
		return mesh.New(acc).MakeWatertight(), nil
	default:
		var polys []mesh.Polygon
		for _, m := range meshes {
			polys = append(polys, m.Polygons()...)
		}
		return mesh.New(polys), nil
	}
}

// Build returns the node's mesh in its own local frame (not yet
// transformed by Transform), computing it at most once and, when cache is
// non-nil, sharing the result with any other node that has the same Key.
func (g *Geometry) Build(cache *Cache, isCancelled func() bool) (mesh.Mesh, error) {
	if cache != nil && g.Key != "" {
		if m, ok := cache.get(g.Key); ok {
			logging.Logger().Debug("scene cache hit", "type", g.Type, "key", g.Key)
			return m, nil
		}
		unlock := cache.lockFor(g.Key)
		defer unlock()
		if m, ok := cache.get(g.Key); ok {
			logging.Logger().Debug("scene cache hit", "type", g.Type, "key", g.Key)
			return m, nil
		}
		logging.Logger().Debug("scene cache miss", "type", g.Type, "key", g.Key)
	}
	g.once.Do(func() {
		if g.build == nil {
			g.mesh, g.err = mesh.Empty, nil
			return
		}
		g.mesh, g.err = g.build(cache, isCancelled)
	})
	if g.err == nil && cache != nil && g.Key != "" {
		cache.put(g.Key, g.mesh)
	}
	return g.mesh, g.err
}

// IsSolid reports whether typ represents a mesh-producing node, as opposed
// to a camera/light leaf a host renderer consumes without meshing.
func (typ NodeType) IsSolid() bool {
	switch typ {
	case TypeCamera, TypeLight:
		return false
	default:
		return true
	}
}
