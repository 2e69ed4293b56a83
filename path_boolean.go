package vgfx

import (
	"github.com/pegasusheavy/vgfx/internal/pathops"
)

// BooleanOp enumerates the Boolean set operations available on paths.
type BooleanOp int

const (
	// OpUnion keeps the union of both paths' covered area.
	OpUnion BooleanOp = iota
	// OpIntersect keeps only the area covered by both paths.
	OpIntersect
	// OpDifference keeps the area of the first path not covered by the second.
	OpDifference
	// OpReverseDifference keeps the area of the second path not covered by the first.
	OpReverseDifference
	// OpXor keeps the area covered by exactly one of the two paths.
	OpXor
)

// booleanTolerance is the flattening tolerance used when converting
// curved paths to polygons for Boolean operations. It is intentionally
// looser than the rasterizer's fill tolerance (0.1): boolean prep only
// needs a topologically faithful polygon, not a pixel-accurate one.
const booleanTolerance = 0.5

// PathOp computes the Boolean set operation op between a and b,
// returning a new Path built from the resulting polygon contours.
//
// Curves in both inputs are flattened (tolerance ~0.5, looser than
// fill's ~0.25 per spec.md §4.1) before the polygon algorithm runs;
// the result is therefore always a polygonal (line-only) path even if
// the inputs contained curves.
func PathOp(a, b *Path, op BooleanOp) *Path {
	setA := toPathSet(a)
	setB := toPathSet(b)

	result := pathops.Combine(setA, setB, toInternalOp(op))
	return fromPathSet(result)
}

// Simplify resolves self-intersections and overlapping sub-paths
// within a single path: Simplify(p) == PathOp(p, emptyPath, OpUnion).
func Simplify(p *Path) *Path {
	set := toPathSet(p)
	result := pathops.Simplify(set)
	return fromPathSet(result)
}

func toInternalOp(op BooleanOp) pathops.Op {
	switch op {
	case OpUnion:
		return pathops.Union
	case OpIntersect:
		return pathops.Intersect
	case OpDifference:
		return pathops.Difference
	case OpReverseDifference:
		return pathops.ReverseDifference
	case OpXor:
		return pathops.Xor
	default:
		return pathops.Union
	}
}

// toPathSet flattens every sub-contour of p into a polygon, discarding
// degenerate (fewer than 3 point) contours.
func toPathSet(p *Path) pathops.PathSet {
	if p == nil {
		return pathops.PathSet{}
	}

	var set pathops.PathSet
	for _, sp := range p.collectSubpaths() {
		pts := flattenSubpath(sp, booleanTolerance)
		pts = dedupClosingPoint(pts)
		if len(pts) < 3 {
			continue
		}
		poly := pathops.Polygon{Points: make([]pathops.Point, len(pts))}
		for i, pt := range pts {
			poly.Points[i] = pathops.Point{X: pt.X, Y: pt.Y}
		}
		set.Polygons = append(set.Polygons, poly)
	}
	return set
}

// flattenSubpath flattens a single subpath's elements into a point
// polyline, reusing the same de Casteljau flatteners as Path.Flatten.
func flattenSubpath(sp subpath, tolerance float64) []Point {
	var pts []Point
	var current Point

	for _, elem := range sp.elements {
		switch e := elem.(type) {
		case MoveTo:
			pts = append(pts, e.Point)
			current = e.Point
		case LineTo:
			pts = append(pts, e.Point)
			current = e.Point
		case QuadTo:
			flattenQuad(current, e.Control, e.Point, tolerance, func(pt Point) {
				pts = append(pts, pt)
			})
			current = e.Point
		case CubicTo:
			flattenCubic(current, e.Control1, e.Control2, e.Point, tolerance, func(pt Point) {
				pts = append(pts, pt)
			})
			current = e.Point
		case Conic:
			flattenQuad(current, e.Control, e.Point, tolerance, func(pt Point) {
				pts = append(pts, pt)
			})
			current = e.Point
		}
	}
	return pts
}

// dedupClosingPoint drops a trailing point that coincides with the
// first point, since Polygon contours are implicitly closed.
func dedupClosingPoint(pts []Point) []Point {
	if len(pts) < 2 {
		return pts
	}
	first, last := pts[0], pts[len(pts)-1]
	if first.X == last.X && first.Y == last.Y {
		return pts[:len(pts)-1]
	}
	return pts
}

// fromPathSet stitches each polygon contour back into a path as
// Move + Lines + Close, per spec.md §4.2.
func fromPathSet(set pathops.PathSet) *Path {
	result := NewPath()
	for _, poly := range set.Polygons {
		if len(poly.Points) < 3 {
			continue
		}
		result.MoveTo(poly.Points[0].X, poly.Points[0].Y)
		for _, pt := range poly.Points[1:] {
			result.LineTo(pt.X, pt.Y)
		}
		result.Close()
	}
	return result
}
