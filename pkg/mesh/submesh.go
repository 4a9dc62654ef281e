package mesh

import "github.com/jaikdean/ShapeScript/pkg/geom"

// computeSubmeshes groups polygons into connected components joined by
// shared edges, using union-find over an edge-to-polygon-index adjacency
// map so the whole pass is linear in the number of polygon edges.
func computeSubmeshes(polygons []Polygon) []Mesh {
	if len(polygons) == 0 {
		return nil
	}

	uf := newUnionFind(len(polygons))
	byEdge := map[geom.LineSegment][]int{}

	for i, p := range polygons {
		n := len(p.Vertices)
		for k := 0; k < n; k++ {
			seg := geom.NewLineSegment(p.Vertices[k].Position, p.Vertices[(k+1)%n].Position)
			if seg.IsDegenerate() {
				continue
			}
			for _, j := range byEdge[seg] {
				uf.union(i, j)
			}
			byEdge[seg] = append(byEdge[seg], i)
		}
	}

	groups := map[int][]Polygon{}
	for i, p := range polygons {
		root := uf.find(i)
		groups[root] = append(groups[root], p)
	}

	out := make([]Mesh, 0, len(groups))
	for _, g := range groups {
		out = append(out, New(g))
	}
	return out
}

type unionFind struct {
	parent []int
	rank   []int
}

func newUnionFind(n int) *unionFind {
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	return &unionFind{parent: parent, rank: make([]int, n)}
}

func (u *unionFind) find(x int) int {
	for u.parent[x] != x {
		u.parent[x] = u.parent[u.parent[x]]
		x = u.parent[x]
	}
	return x
}

func (u *unionFind) union(a, b int) {
	ra, rb := u.find(a), u.find(b)
	if ra == rb {
		return
	}
	switch {
	case u.rank[ra] < u.rank[rb]:
		u.parent[ra] = rb
	case u.rank[ra] > u.rank[rb]:
		u.parent[rb] = ra
	default:
		u.parent[rb] = ra
		u.rank[ra]++
	}
}
