package pathops

import "math"

// Point is a 2D point (internal copy, avoids an import cycle with the
// root package).
type Point struct {
	X, Y float64
}

// Polygon is a single closed contour: a loop of vertices, implicitly
// closed (the last vertex connects back to the first).
type Polygon struct {
	Points []Point
}

// Op enumerates the supported Boolean set operations.
type Op int

const (
	Union Op = iota
	Intersect
	Difference
	ReverseDifference
	Xor
)

const epsilon = 1e-10

// SignedArea returns twice the signed area of the polygon (shoelace
// formula); positive for counter-clockwise winding, negative for
// clockwise.
func (p Polygon) SignedArea() float64 {
	n := len(p.Points)
	if n < 3 {
		return 0
	}
	area := 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += p.Points[i].X*p.Points[j].Y - p.Points[j].X*p.Points[i].Y
	}
	return area
}

// IsCCW reports whether the polygon winds counter-clockwise.
func (p Polygon) IsCCW() bool {
	return p.SignedArea() > 0
}

// Reversed returns a copy of the polygon with vertex order reversed,
// flipping its orientation.
func (p Polygon) Reversed() Polygon {
	n := len(p.Points)
	out := make([]Point, n)
	for i, pt := range p.Points {
		out[n-1-i] = pt
	}
	return Polygon{Points: out}
}

// Bounds returns the axis-aligned bounding box of the polygon.
func (p Polygon) Bounds() (minX, minY, maxX, maxY float64) {
	if len(p.Points) == 0 {
		return 0, 0, 0, 0
	}
	minX, minY = p.Points[0].X, p.Points[0].Y
	maxX, maxY = minX, minY
	for _, pt := range p.Points[1:] {
		minX = math.Min(minX, pt.X)
		minY = math.Min(minY, pt.Y)
		maxX = math.Max(maxX, pt.X)
		maxY = math.Max(maxY, pt.Y)
	}
	return
}

func boundsDisjoint(a, b Polygon) bool {
	aMinX, aMinY, aMaxX, aMaxY := a.Bounds()
	bMinX, bMinY, bMaxX, bMaxY := b.Bounds()
	return aMaxX < bMinX || bMaxX < aMinX || aMaxY < bMinY || bMaxY < aMinY
}

// ContainsPoint reports whether pt lies inside the polygon using the
// even-odd ray-casting rule. Points exactly on an edge may resolve
// either way; edges whose endpoints differ in Y by less than the
// package's fixed epsilon (1e-10) are skipped.
func (p Polygon) ContainsPoint(pt Point) bool {
	n := len(p.Points)
	if n < 3 {
		return false
	}
	inside := false
	j := n - 1
	for i := 0; i < n; i++ {
		pi, pj := p.Points[i], p.Points[j]
		if math.Abs(pi.Y-pj.Y) < epsilon {
			j = i
			continue
		}
		if (pi.Y > pt.Y) != (pj.Y > pt.Y) {
			xCross := pj.X + (pt.Y-pj.Y)*(pi.X-pj.X)/(pi.Y-pj.Y)
			if pt.X < xCross {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}

// ContainsPolygon reports whether every vertex of other lies inside p
// (a vertex-containment test, not an exact area test — matches the
// "all subject vertices lie inside clip" rule used by Difference and
// Union's containment elimination).
func (p Polygon) ContainsPolygon(other Polygon) bool {
	for _, pt := range other.Points {
		if !p.ContainsPoint(pt) {
			return false
		}
	}
	return len(other.Points) > 0
}
