package mesh

import (
	"sync"

	"github.com/jaikdean/ShapeScript/pkg/geom"
)

// Mesh is an immutable handle over a set of polygons, together with a set
// of lazily computed, cached derived properties. Meshes are cheap to copy
// (a Mesh value just holds a pointer to shared, never-mutated backing
// state) and safe to share across goroutines once built.
type Mesh struct {
	state *meshState
}

type meshState struct {
	polygons []Polygon

	once       sync.Once
	bounds     geom.Bounds
	isConvex   bool
	watertight bool
	submeshes  []Mesh
	materials  []*Material
}

// New builds a Mesh from a flat polygon list. The polygons are not
// validated against each other here; NewPolygon already guarantees each is
// individually planar and convex.
func New(polygons []Polygon) Mesh {
	cp := append([]Polygon(nil), polygons...)
	return Mesh{state: &meshState{polygons: cp}}
}

// Empty is the mesh with no polygons.
var Empty = New(nil)

// Polygons returns the mesh's backing polygon list. Callers must not
// mutate the returned slice.
func (m Mesh) Polygons() []Polygon {
	if m.state == nil {
		return nil
	}
	return m.state.polygons
}

// IsEmpty reports whether the mesh has no polygons.
func (m Mesh) IsEmpty() bool {
	return len(m.Polygons()) == 0
}

func (m Mesh) ensure() {
	m.state.once.Do(func() {
		m.state.bounds = computeBounds(m.state.polygons)
		m.state.isConvex = isConvexInput(m.state.polygons)
		m.state.watertight = computeWatertight(m.state.polygons)
		m.state.materials = computeMaterials(m.state.polygons)
	})
}

// Bounds returns the axis-aligned bounding box of every vertex in the
// mesh, computed once and cached.
func (m Mesh) Bounds() geom.Bounds {
	if m.state == nil {
		return geom.EmptyBounds()
	}
	m.ensure()
	return m.state.bounds
}

// IsConvex reports whether every polygon in the mesh has every other
// polygon's vertices behind or on its plane, i.e. the mesh bounds a convex
// solid.
func (m Mesh) IsConvex() bool {
	if m.state == nil {
		return true
	}
	m.ensure()
	return m.state.isConvex
}

// IsWatertight reports whether every undirected edge in the mesh has even
// multiplicity, the necessary condition for the mesh to bound a closed
// volume with no holes.
func (m Mesh) IsWatertight() bool {
	if m.state == nil {
		return true
	}
	m.ensure()
	return m.state.watertight
}

// Materials returns the distinct, non-nil materials referenced by the
// mesh's polygons, in first-seen order.
func (m Mesh) Materials() []*Material {
	if m.state == nil {
		return nil
	}
	m.ensure()
	return m.state.materials
}

// Submeshes partitions the mesh into its connected components: maximal
// groups of polygons joined by shared edges. A fully watertight, single-
// solid mesh has exactly one submesh.
func (m Mesh) Submeshes() []Mesh {
	if m.state == nil {
		return nil
	}
	m.ensure()
	if m.state.submeshes == nil {
		m.state.submeshes = computeSubmeshes(m.state.polygons)
	}
	return m.state.submeshes
}

// Transformed applies t to every polygon, returning a new Mesh.
func (m Mesh) Transformed(t geom.Transform) Mesh {
	polys := m.Polygons()
	out := make([]Polygon, len(polys))
	for i, p := range polys {
		out[i] = p.Transformed(t)
	}
	return New(out)
}

// WithMaterial returns a copy of the mesh with every polygon's material
// replaced.
func (m Mesh) WithMaterial(material *Material) Mesh {
	polys := m.Polygons()
	out := make([]Polygon, len(polys))
	for i, p := range polys {
		out[i] = p.WithMaterial(material)
	}
	return New(out)
}

// Inverted flips every polygon, turning the mesh inside-out.
func (m Mesh) Inverted() Mesh {
	polys := m.Polygons()
	out := make([]Polygon, len(polys))
	for i, p := range polys {
		out[i] = p.Flipped()
	}
	return New(out)
}

// Triangulate decomposes every polygon into triangles via Polygon.Triangulate,
// for host consumption (render-ready buffers, mesh export) that can't assume
// convex-but-possibly-non-triangular faces.
func (m Mesh) Triangulate() Mesh {
	polys := m.Polygons()
	var out []Polygon
	for _, p := range polys {
		out = append(out, p.Triangulate()...)
	}
	return New(out)
}

// MakeWatertight attempts to close any single-face ("dangling") edges left
// by T-junctions between differently-tessellated faces, the repair step a
// boolean operator's result goes through before a caller ever asks
// IsWatertight of it.
func (m Mesh) MakeWatertight() Mesh {
	return New(RepairTJunctions(m.Polygons()))
}

// ContainsPoint reports whether v lies inside the solid the mesh bounds,
// by descending a freshly built BSP tree. Undefined (but not wrong per se)
// for a non-watertight mesh.
func (m Mesh) ContainsPoint(v geom.Vector) bool {
	tree := NewBSP(m.Polygons(), nil)
	return tree.ContainsPoint(v)
}

func computeBounds(polygons []Polygon) geom.Bounds {
	b := geom.EmptyBounds()
	for _, p := range polygons {
		for _, v := range p.Vertices {
			b = b.ExtendedBy(v.Position)
		}
	}
	return b
}

func computeMaterials(polygons []Polygon) []*Material {
	var out []*Material
	seen := map[*Material]bool{}
	for _, p := range polygons {
		if p.Material == nil || seen[p.Material] {
			continue
		}
		seen[p.Material] = true
		out = append(out, p.Material)
	}
	return out
}
