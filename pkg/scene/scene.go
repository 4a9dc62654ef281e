package scene

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/jaikdean/ShapeScript/pkg/geom"
	"github.com/jaikdean/ShapeScript/pkg/mesh"
)

// Scene is the result of evaluating a document: a background color/texture
// and the top-level children (solids, cameras, lights, debug sinks).
type Scene struct {
	Background geom.Color
	Children   []*Geometry
	Cache      *Cache
}

// New returns an empty Scene with a fresh cache.
func New() *Scene {
	return &Scene{Cache: NewCache()}
}

// Meshes builds and returns every solid child's mesh, each already
// transformed into world space, skipping camera/light leaves.
func (s *Scene) Meshes(isCancelled func() bool) ([]mesh.Mesh, error) {
	var out []mesh.Mesh
	for _, c := range s.Children {
		if !c.Type.IsSolid() {
			continue
		}
		m, err := c.Build(s.Cache, isCancelled)
		if err != nil {
			return nil, err
		}
		out = append(out, m.Transformed(c.Transform))
	}
	return out, nil
}

// HashKey computes a deterministic content-address for a geometry node's
// local-frame mesh: type, material, smoothing, shape-specific params, and
// the (already-hashed) keys of its children. A node's own Transform is
// deliberately excluded — it is applied by the parent after Build returns,
// not baked into the cached mesh — so that e.g. two identically-sized
// cubes at different positions share one cache entry.
func HashKey(typ NodeType, material mesh.Material, smoothing float64, params string, childKeys []string) string {
	h := sha1.New()
	fmt.Fprintf(h, "%s|%s|%s|%s", typ, materialKey(material), strconv.FormatFloat(smoothing, 'g', -1, 64), params)
	for _, k := range childKeys {
		fmt.Fprintf(h, "|%s", k)
	}
	return hex.EncodeToString(h.Sum(nil))
}

func materialKey(m mesh.Material) string {
	return fmt.Sprintf("%s:%s", m.Name, m.Color.Hex())
}
