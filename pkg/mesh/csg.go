package mesh

// CSG combines two polygon soups by converting each to a BSP tree and
// running the classic clip/invert/build dance: clip each tree against the
// other to discard the interior overlap, invert and re-clip to also drop
// coincident back-facing duplicates, then fold the survivors of one tree
// back into the other before flattening. Union, difference and
// intersection are the same three-step shape; only which trees get
// inverted, and whether the final result is inverted back, differs.

// Union merges a and b, keeping everything outside both solids' shared
// interior.
func Union(a, b []Polygon, isCancelled func() bool) []Polygon {
	A := NewBSP(a, isCancelled)
	B := NewBSP(b, isCancelled)

	A = A.ClipTo(B)
	B = B.ClipTo(A)
	B = B.Invert()
	B = B.ClipTo(A)
	B = B.Invert()
	A = A.Build(B.AllPolygons(), isCancelled)

	return Detessellate(A.AllPolygons())
}

// Difference removes b's volume from a.
func Difference(a, b []Polygon, isCancelled func() bool) []Polygon {
	A := NewBSP(a, isCancelled)
	B := NewBSP(b, isCancelled)

	A = A.Invert()
	A = A.ClipTo(B)
	B = B.ClipTo(A)
	B = B.Invert()
	B = B.ClipTo(A)
	B = B.Invert()
	A = A.Build(B.AllPolygons(), isCancelled)
	A = A.Invert()

	return Detessellate(A.AllPolygons())
}

// Intersection keeps only the region shared by both a and b.
func Intersection(a, b []Polygon, isCancelled func() bool) []Polygon {
	A := NewBSP(a, isCancelled)
	B := NewBSP(b, isCancelled)

	A = A.Invert()
	B = B.ClipTo(A)
	B = B.Invert()
	A = A.ClipTo(B)
	B = B.ClipTo(A)
	A = A.Build(B.AllPolygons(), isCancelled)
	A = A.Invert()

	return Detessellate(A.AllPolygons())
}

// Xor keeps the region covered by exactly one of a or b: (a\b) ∪ (b\a).
func Xor(a, b []Polygon, isCancelled func() bool) []Polygon {
	aMinusB := Difference(a, b, isCancelled)
	bMinusA := Difference(b, a, isCancelled)
	return Detessellate(append(aMinusB, bMinusA...))
}

// Stencil keeps a's geometry outside b unchanged, and replaces b's own
// geometry with the portion of it that falls inside a, recolored with
// material (a's material): a's shape outside the overlap, b's shape inside
// it, colored as a.
func Stencil(a, b []Polygon, material *Material, isCancelled func() bool) []Polygon {
	A := NewBSP(a, isCancelled)
	B := NewBSP(b, isCancelled)

	outsideB := B.Clip(a, true)
	insideA := A.Invert().Clip(b, false)

	recolored := make([]Polygon, len(insideA))
	for i, p := range insideA {
		recolored[i] = p.WithMaterial(material)
	}
	return Detessellate(append(outsideB, recolored...))
}
