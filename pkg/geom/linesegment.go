package geom

// LineSegment is an unordered pair of distinct vectors, canonicalized so
// that Start <= End lexicographically. This gives direction-independent
// equality and hashing, used to detect watertightness (every undirected
// edge must appear an even number of times).
type LineSegment struct {
	Start, End Vector
}

// NewLineSegment canonicalizes a and b into a direction-independent segment.
func NewLineSegment(a, b Vector) LineSegment {
	if b.Less(a) {
		a, b = b, a
	}
	return LineSegment{Start: a, End: b}
}

// Equals reports tolerant equality, independent of original direction.
func (l LineSegment) Equals(o LineSegment) bool {
	return l.Start.Equals(o.Start) && l.End.Equals(o.End)
}

// HashKey is a quantized key consistent with Equals, suitable for map keys.
func (l LineSegment) HashKey() [6]int64 {
	s, e := l.Start.HashKey(), l.End.HashKey()
	return [6]int64{s[0], s[1], s[2], e[0], e[1], e[2]}
}

// IsDegenerate reports whether the two endpoints coincide within Epsilon.
func (l LineSegment) IsDegenerate() bool {
	return l.Start.Equals(l.End)
}

// Length returns the Euclidean length of the segment.
func (l LineSegment) Length() float64 {
	return l.Start.Distance(l.End)
}
