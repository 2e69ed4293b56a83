package mesh

import "math"

// Point is a 2D point in the mesh's local coordinate space.
type Point struct {
	X, Y float64
}

// Triangle is a single output primitive: three vertices, CCW wound.
type Triangle struct {
	A, B, C Point
}

// Contour is one closed polygon loop. The Hole flag, not point order,
// determines role — Tessellate normalizes winding internally (outer
// contours CCW, holes CW) regardless of the order the caller supplies.
type Contour struct {
	Points []Point
	Hole   bool
}

// Tessellate triangulates a set of contours (one outer contour plus
// zero or more holes) into a triangle mesh via ear clipping, bridging
// hole contours into the outer contour by inserting a zero-width
// bridge edge to their nearest outer vertex.
//
// This is an approximation: true polygon triangulation with multiple
// nested holes benefits from a sorted sweep to pick optimal bridge
// points (as Mapbox's earcut does); this implementation picks the
// nearest vertex only, which is correct but can produce thinner
// triangles near the bridge seam for deeply concave holes.
func Tessellate(contours []Contour) []Triangle {
	if len(contours) == 0 {
		return nil
	}

	var outer []Point
	var holes [][]Point
	var extraOuters [][]Point
	for _, c := range contours {
		if c.Hole {
			// Holes must wind opposite to the outer contour for the
			// bridge-and-clip trick below to subtract (rather than add)
			// their area; normalize regardless of the caller's supplied
			// winding.
			holes = append(holes, normalizeWinding(c.Points, false))
		} else if outer == nil {
			outer = normalizeWinding(c.Points, true)
		} else {
			// Multiple disjoint outer contours: tessellate independently
			// and concatenate (no shared bridging between them).
			extraOuters = append(extraOuters, normalizeWinding(c.Points, true))
		}
	}
	if len(outer) < 3 {
		return nil
	}

	merged := outer
	for _, h := range holes {
		merged = bridgeHole(merged, h)
	}

	tris := earClip(merged)
	for _, o := range extraOuters {
		tris = append(tris, earClip(o)...)
	}
	return tris
}

// normalizeWinding reverses pts if its winding doesn't match wantCCW.
func normalizeWinding(pts []Point, wantCCW bool) []Point {
	out := append([]Point{}, pts...)
	if (signedArea(out) > 0) != wantCCW {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out
}

// bridgeHole splices a hole contour into the outer polygon by
// connecting the hole vertex nearest to any outer vertex with a
// double edge (out -> hole -> ... -> hole -> out), which earClip then
// treats as a single simple polygon.
func bridgeHole(outer, hole []Point) []Point {
	if len(hole) < 3 {
		return outer
	}

	bestOuter, bestHole := 0, 0
	bestDist := math.Inf(1)
	for i, op := range outer {
		for j, hp := range hole {
			d := distSq(op, hp)
			if d < bestDist {
				bestDist, bestOuter, bestHole = d, i, j
			}
		}
	}

	// Rotate hole so it starts at bestHole.
	rotated := make([]Point, len(hole))
	for i := range hole {
		rotated[i] = hole[(bestHole+i)%len(hole)]
	}

	result := make([]Point, 0, len(outer)+len(rotated)+2)
	result = append(result, outer[:bestOuter+1]...)
	result = append(result, rotated...)
	result = append(result, rotated[0])
	result = append(result, outer[bestOuter:]...)
	return result
}

func distSq(a, b Point) float64 {
	dx, dy := a.X-b.X, a.Y-b.Y
	return dx*dx + dy*dy
}

// earClip triangulates a simple (possibly non-convex) polygon using
// the ear-clipping algorithm: repeatedly find a convex vertex whose
// triangle with its neighbors contains no other polygon vertex, emit
// it, and remove it from the working loop.
func earClip(poly []Point) []Triangle {
	n := len(poly)
	if n < 3 {
		return nil
	}

	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}

	// Ensure CCW winding so the convexity test below is consistent.
	if signedArea(poly) < 0 {
		for i, j := 0, len(idx)-1; i < j; i, j = i+1, j-1 {
			idx[i], idx[j] = idx[j], idx[i]
		}
	}

	var tris []Triangle
	guard := 0
	maxGuard := n * n // bounds the search if the polygon is degenerate
	for len(idx) > 3 && guard < maxGuard {
		guard++
		earFound := false
		for i := 0; i < len(idx); i++ {
			prev := idx[(i-1+len(idx))%len(idx)]
			cur := idx[i]
			next := idx[(i+1)%len(idx)]

			a, b, c := poly[prev], poly[cur], poly[next]
			if !isConvex(a, b, c) {
				continue
			}
			if triangleContainsAny(a, b, c, poly, idx, prev, cur, next) {
				continue
			}

			tris = append(tris, Triangle{A: a, B: b, C: c})
			idx = append(idx[:i], idx[i+1:]...)
			earFound = true
			break
		}
		if !earFound {
			break // degenerate polygon: stop rather than loop forever
		}
	}
	if len(idx) == 3 {
		tris = append(tris, Triangle{A: poly[idx[0]], B: poly[idx[1]], C: poly[idx[2]]})
	}
	return tris
}

func signedArea(poly []Point) float64 {
	area := 0.0
	n := len(poly)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += poly[i].X*poly[j].Y - poly[j].X*poly[i].Y
	}
	return area
}

func isConvex(a, b, c Point) bool {
	cross := (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
	return cross > 1e-10
}

func triangleContainsAny(a, b, c Point, poly []Point, idx []int, prev, cur, next int) bool {
	for i, pIdx := range idx {
		if pIdx == prev || pIdx == cur || pIdx == next {
			continue
		}
		_ = i
		if pointInTriangle(poly[pIdx], a, b, c) {
			return true
		}
	}
	return false
}

func pointInTriangle(p, a, b, c Point) bool {
	d1 := sign(p, a, b)
	d2 := sign(p, b, c)
	d3 := sign(p, c, a)

	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

func sign(p, a, b Point) float64 {
	return (p.X-b.X)*(a.Y-b.Y) - (a.X-b.X)*(p.Y-b.Y)
}
