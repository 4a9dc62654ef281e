package path

// Subpaths decomposes p at self-touching joints: whenever a point equals
// an earlier non-adjacent point, the run between them (inclusive) closes
// off as its own subpath and a new run starts from that point. Runs with
// no repeated point at all remain as a single subpath (open or closed
// depending on whether the whole path's endpoints coincide).
func (p Path) Subpaths() []Path {
	if len(p.Points) == 0 {
		return nil
	}

	var subpaths []Path
	start := 0
	seenAt := map[[3]int64]int{}

	for i, pt := range p.Points {
		key := pt.Position.HashKey()
		if j, ok := seenAt[key]; ok && j >= start && i-j > 1 {
			subpaths = append(subpaths, New(p.Points[start:i+1]))
			start = i
			// Restart tracking from the new subpath's start point so a
			// later point can close against it too.
			seenAt = map[[3]int64]int{key: i}
			continue
		}
		seenAt[key] = i
	}
	if start < len(p.Points)-1 || len(subpaths) == 0 {
		subpaths = append(subpaths, New(p.Points[start:]))
	}
	return subpaths
}
