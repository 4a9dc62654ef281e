// Package meshio encodes and decodes mesh.Mesh values as a JSON-ish
// persisted format: a flat polygon list with inline materials, or (when a
// mesh references distinct materials) polygons grouped by material index
// alongside a materials table.
package meshio

import (
	"encoding/json"
	"fmt"

	"github.com/jaikdean/ShapeScript/pkg/geom"
	"github.com/jaikdean/ShapeScript/pkg/mesh"
)

type vertexDoc struct {
	Position [3]float64  `json:"position"`
	Normal   [3]float64  `json:"normal,omitempty"`
	Texcoord [3]float64  `json:"texcoord,omitempty"`
	Color    *[4]float64 `json:"color,omitempty"`
}

type materialDoc struct {
	Name  string `json:"name,omitempty"`
	Color string `json:"color,omitempty"`
}

type polygonDoc struct {
	Vertices []vertexDoc  `json:"vertices"`
	Material *materialDoc `json:"material,omitempty"`
}

type boundsDoc struct {
	Min [3]float64 `json:"min"`
	Max [3]float64 `json:"max"`
}

// document is the on-disk shape. Polygons is either []polygonDoc (flat,
// inline materials) or [][]polygonDoc (grouped by Materials index),
// decided by whether Materials is non-empty.
type document struct {
	Polygons  json.RawMessage `json:"polygons"`
	Bounds    *boundsDoc      `json:"bounds,omitempty"`
	Convex    *bool           `json:"convex,omitempty"`
	Materials []materialDoc   `json:"materials,omitempty"`
}

func toVertexDoc(v mesh.Vertex) vertexDoc {
	d := vertexDoc{
		Position: [3]float64{v.Position.X, v.Position.Y, v.Position.Z},
		Normal:   [3]float64{v.Normal.X, v.Normal.Y, v.Normal.Z},
		Texcoord: [3]float64{v.Texcoord.X, v.Texcoord.Y, v.Texcoord.Z},
	}
	if v.Color != nil {
		c := [4]float64{v.Color.R, v.Color.G, v.Color.B, v.Color.A}
		d.Color = &c
	}
	return d
}

func fromVertexDoc(d vertexDoc) mesh.Vertex {
	v := mesh.Vertex{
		Position: geom.New(d.Position[0], d.Position[1], d.Position[2]),
		Normal:   geom.New(d.Normal[0], d.Normal[1], d.Normal[2]),
		Texcoord: geom.New(d.Texcoord[0], d.Texcoord[1], d.Texcoord[2]),
	}
	if d.Color != nil {
		v.Color = &geom.Color{R: d.Color[0], G: d.Color[1], B: d.Color[2], A: d.Color[3]}
	}
	return v
}

func toMaterialDoc(m *mesh.Material) *materialDoc {
	if m == nil {
		return nil
	}
	return &materialDoc{Name: m.Name, Color: m.Color.Hex()}
}

func fromMaterialDoc(d *materialDoc) (*mesh.Material, error) {
	if d == nil {
		return nil, nil
	}
	c, err := geom.ParseColor(d.Color)
	if err != nil {
		return nil, fmt.Errorf("material color: %w", err)
	}
	return &mesh.Material{Name: d.Name, Color: c}, nil
}

func toPolygonDoc(p mesh.Polygon, inlineMaterial bool) polygonDoc {
	verts := make([]vertexDoc, len(p.Vertices))
	for i, v := range p.Vertices {
		verts[i] = toVertexDoc(v)
	}
	d := polygonDoc{Vertices: verts}
	if inlineMaterial {
		d.Material = toMaterialDoc(p.Material)
	}
	return d
}

func fromPolygonDoc(d polygonDoc, material *mesh.Material) (mesh.Polygon, error) {
	verts := make([]mesh.Vertex, len(d.Vertices))
	for i, vd := range d.Vertices {
		verts[i] = fromVertexDoc(vd)
	}
	if material == nil {
		var err error
		material, err = fromMaterialDoc(d.Material)
		if err != nil {
			return mesh.Polygon{}, err
		}
	}
	return mesh.NewPolygon(verts, material)
}

// Encode serializes m. When m references one or more distinct materials,
// polygons are grouped by material index and a materials table is emitted;
// otherwise each polygon carries its own (possibly absent) inline material.
func Encode(m mesh.Mesh) ([]byte, error) {
	materials := m.Materials()
	doc := document{}

	b := m.Bounds()
	doc.Bounds = &boundsDoc{
		Min: [3]float64{b.Min.X, b.Min.Y, b.Min.Z},
		Max: [3]float64{b.Max.X, b.Max.Y, b.Max.Z},
	}
	convex := m.IsConvex()
	doc.Convex = &convex

	if len(materials) > 0 {
		index := make(map[*mesh.Material]int, len(materials))
		groups := make([][]polygonDoc, len(materials))
		for i, mat := range materials {
			index[mat] = i
			doc.Materials = append(doc.Materials, *toMaterialDoc(mat))
		}
		for _, p := range m.Polygons() {
			i := 0
			if p.Material != nil {
				i = index[p.Material]
			}
			groups[i] = append(groups[i], toPolygonDoc(p, false))
		}
		raw, err := json.Marshal(groups)
		if err != nil {
			return nil, err
		}
		doc.Polygons = raw
	} else {
		var flat []polygonDoc
		for _, p := range m.Polygons() {
			flat = append(flat, toPolygonDoc(p, true))
		}
		raw, err := json.Marshal(flat)
		if err != nil {
			return nil, err
		}
		doc.Polygons = raw
	}

	return json.Marshal(doc)
}

// Decode parses a persisted mesh document into a mesh.Mesh. Bounds/Convex
// fields, when present, are ignored: they are derived invariants that
// mesh.Mesh recomputes and caches itself, not authoritative input.
func Decode(data []byte) (mesh.Mesh, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return mesh.Empty, fmt.Errorf("decoding mesh document: %w", err)
	}

	if len(doc.Materials) > 0 {
		materials := make([]*mesh.Material, len(doc.Materials))
		for i, md := range doc.Materials {
			m, err := fromMaterialDoc(&md)
			if err != nil {
				return mesh.Empty, err
			}
			materials[i] = m
		}
		var groups [][]polygonDoc
		if err := json.Unmarshal(doc.Polygons, &groups); err != nil {
			return mesh.Empty, fmt.Errorf("decoding grouped polygons: %w", err)
		}
		if len(groups) != len(materials) {
			return mesh.Empty, fmt.Errorf("polygon group count %d does not match material count %d", len(groups), len(materials))
		}
		var polys []mesh.Polygon
		for i, group := range groups {
			for _, pd := range group {
				p, err := fromPolygonDoc(pd, materials[i])
				if err != nil {
					return mesh.Empty, err
				}
				polys = append(polys, p)
			}
		}
		return mesh.New(polys), nil
	}

	var flat []polygonDoc
	if err := json.Unmarshal(doc.Polygons, &flat); err != nil {
		return mesh.Empty, fmt.Errorf("decoding polygons: %w", err)
	}
	var polys []mesh.Polygon
	for _, pd := range flat {
		p, err := fromPolygonDoc(pd, nil)
		if err != nil {
			return mesh.Empty, err
		}
		polys = append(polys, p)
	}
	return mesh.New(polys), nil
}
