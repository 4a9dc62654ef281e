package mesh

import "github.com/jaikdean/ShapeScript/pkg/geom"

// splitPenalty penalizes candidate planes that would split many polygons,
// relative to how well they balance the front/back counts.
const splitPenalty = 8

// maxPlaneCandidates bounds how many candidate planes NewBSP samples when
// picking a splitting plane for non-convex input.
const maxPlaneCandidates = 32

// Node is a binary space partition tree node: every polygon in coplanar
// lies on plane; front and back (if present) hold the polygons on either
// side, recursively partitioned by their own chosen planes.
type Node struct {
	Plane    geom.Plane
	Front    *Node
	Back     *Node
	Coplanar []Polygon
}

// NewBSP builds a BSP tree over polygons. isCancelled is polled between
// top-level polygons; construction returns nil if cancelled mid-way (the
// caller should treat a cancelled build as incomplete, not as an empty
// tree).
func NewBSP(polygons []Polygon, isCancelled func() bool) *Node {
	if len(polygons) == 0 {
		return nil
	}
	return build(polygons, isCancelled)
}

func build(polygons []Polygon, isCancelled func() bool) *Node {
	if isCancelled != nil && isCancelled() {
		return nil
	}
	plane := choosePlane(polygons)
	node := &Node{Plane: plane}

	var front, back []Polygon
	for _, p := range polygons {
		cf, cb, f, b := p.SplitByPlane(plane)
		node.Coplanar = append(node.Coplanar, cf...)
		node.Coplanar = append(node.Coplanar, cb...)
		if f != nil {
			front = append(front, *f)
		}
		if b != nil {
			back = append(back, *b)
		}
	}

	if len(front) > 0 {
		node.Front = build(front, isCancelled)
	}
	if len(back) > 0 {
		node.Back = build(back, isCancelled)
	}
	return node
}

// isConvexInput reports whether polygons is already known to bound a convex
// solid: no polygon has a vertex in front of any polygon's outward-facing
// plane (within Epsilon). For convex input the BSP degenerates to a linear
// chain, so construction skips the scored-candidate search.
func isConvexInput(polygons []Polygon) bool {
	for _, p := range polygons {
		for _, o := range polygons {
			for _, v := range o.Vertices {
				if v.Position.Compare(p.Plane) == geom.Front {
					return false
				}
			}
		}
	}
	return true
}

// choosePlane selects the splitting plane for polygons. For convex input it
// takes the first polygon's plane (the tree then degenerates to a chain);
// otherwise it scores a bounded sample of candidate planes and picks the
// one minimizing |frontCount-backCount| + K*splitCount.
func choosePlane(polygons []Polygon) geom.Plane {
	if isConvexInput(polygons) {
		return polygons[0].Plane
	}

	candidates := polygons
	if len(candidates) > maxPlaneCandidates {
		candidates = candidates[:maxPlaneCandidates]
	}

	bestScore := -1
	best := polygons[0].Plane
	for _, cand := range candidates {
		plane := cand.Plane
		front, back, split := 0, 0, 0
		for _, p := range polygons {
			cf, cb, f, b := p.SplitByPlane(plane)
			switch {
			case len(cf) > 0 || len(cb) > 0:
				// coplanar: counts toward neither side.
			case f != nil && b != nil:
				split++
			case f != nil:
				front++
			case b != nil:
				back++
			}
		}
		score := absInt(front-back) + splitPenalty*split
		if bestScore == -1 || score < bestScore {
			bestScore = score
			best = plane
		}
	}
	return best
}

func absInt(i int) int {
	if i < 0 {
		return -i
	}
	return i
}

// Clip partitions polygons against the tree rooted at n: pieces on the
// front side recurse into n.Front (or are kept unchanged if there is no
// front child); pieces on the back side recurse into n.Back (or are
// discarded if there is no back child). Coplanar pieces route by the sign
// of n.Plane.Normal . piece.Plane.Normal; when that projection is ~0, ties
// route by keepCoplanarFront and by the piece's ID parity so that two
// operands' identical coplanar fragments cancel deterministically.
func (n *Node) Clip(polygons []Polygon, keepCoplanarFront bool) []Polygon {
	if n == nil {
		return append([]Polygon(nil), polygons...)
	}

	var front, back []Polygon
	for _, p := range polygons {
		cf, cb, f, b := p.SplitByPlane(n.Plane)
		for _, c := range cf {
			routeCoplanar(c, n.Plane, keepCoplanarFront, &front, &back)
		}
		for _, c := range cb {
			routeCoplanar(c, n.Plane, keepCoplanarFront, &front, &back)
		}
		if f != nil {
			front = append(front, *f)
		}
		if b != nil {
			back = append(back, *b)
		}
	}

	if n.Front != nil {
		front = n.Front.Clip(front, keepCoplanarFront)
	}
	if n.Back != nil {
		back = n.Back.Clip(back, keepCoplanarFront)
	} else {
		back = nil
	}

	return append(front, back...)
}

func routeCoplanar(p Polygon, plane geom.Plane, keepCoplanarFront bool, front, back *[]Polygon) {
	proj := plane.Normal.Dot(p.Plane.Normal)
	switch {
	case proj > geom.Epsilon:
		*front = append(*front, p)
	case proj < -geom.Epsilon:
		*back = append(*back, p)
	default:
		// A true tie (orthogonal planes): fall back to keepCoplanarFront and
		// the polygon id's parity so that two operands' coincident coplanar
		// fragments cancel the same way regardless of evaluation order.
		if keepCoplanarFront || p.ID%2 == 0 {
			*front = append(*front, p)
		} else {
			*back = append(*back, p)
		}
	}
}

// Invert recursively flips every plane, swaps front/back children and
// inverts all coplanar polygons, turning the solid described by n
// inside-out.
func (n *Node) Invert() *Node {
	if n == nil {
		return nil
	}
	coplanar := make([]Polygon, len(n.Coplanar))
	for i, p := range n.Coplanar {
		coplanar[i] = p.Flipped()
	}
	return &Node{
		Plane:    n.Plane.Flipped(),
		Front:    n.Back.Invert(),
		Back:     n.Front.Invert(),
		Coplanar: coplanar,
	}
}

// ClipTo removes, from every polygon bucket in the tree rooted at n
// (including nested front/back children), whatever portion lies inside the
// solid rooted at other. Unlike Clip, which partitions a flat polygon list,
// ClipTo walks n's own structure so its front/back children keep their
// position in the tree.
func (n *Node) ClipTo(other *Node) *Node {
	if n == nil {
		return nil
	}
	return &Node{
		Plane:    n.Plane,
		Coplanar: other.Clip(n.Coplanar, true),
		Front:    n.Front.ClipTo(other),
		Back:     n.Back.ClipTo(other),
	}
}

// Build folds additional polygons into the tree rooted at n, splitting them
// against existing planes the same way NewBSP partitions its initial input.
func (n *Node) Build(polygons []Polygon, isCancelled func() bool) *Node {
	if len(polygons) == 0 {
		return n
	}
	if n == nil {
		return NewBSP(polygons, isCancelled)
	}
	coplanar := append([]Polygon(nil), n.Coplanar...)
	var front, back []Polygon
	for _, p := range polygons {
		cf, cb, f, b := p.SplitByPlane(n.Plane)
		coplanar = append(coplanar, cf...)
		coplanar = append(coplanar, cb...)
		if f != nil {
			front = append(front, *f)
		}
		if b != nil {
			back = append(back, *b)
		}
	}
	return &Node{
		Plane:    n.Plane,
		Coplanar: coplanar,
		Front:    n.Front.Build(front, isCancelled),
		Back:     n.Back.Build(back, isCancelled),
	}
}

// AllPolygons collects every polygon stored in the tree (coplanar buckets
// at every node), used to flatten a BSP back into a polygon list.
func (n *Node) AllPolygons() []Polygon {
	if n == nil {
		return nil
	}
	out := append([]Polygon(nil), n.Coplanar...)
	out = append(out, n.Front.AllPolygons()...)
	out = append(out, n.Back.AllPolygons()...)
	return out
}

// ContainsPoint descends the tree by signed distance to each node's plane;
// a point strictly inside the back half at a leaf with no back child is
// inside the solid.
func (n *Node) ContainsPoint(v geom.Vector) bool {
	if n == nil {
		return false
	}
	switch v.Compare(n.Plane) {
	case geom.Front:
		if n.Front == nil {
			return false
		}
		return n.Front.ContainsPoint(v)
	case geom.Back:
		if n.Back == nil {
			return true
		}
		return n.Back.ContainsPoint(v)
	default: // Coplanar: treat as just inside, consistent with a closed solid's boundary.
		if n.Back == nil {
			return true
		}
		return n.Back.ContainsPoint(v)
	}
}
