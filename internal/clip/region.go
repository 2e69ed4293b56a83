package clip

import "math"

// IRect is an integer-pixel rectangle, the building block of a Region.
type IRect struct {
	X0, Y0, X1, Y1 int
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r IRect) IsEmpty() bool {
	return r.X1 <= r.X0 || r.Y1 <= r.Y0
}

// Contains returns true if the integer point (x, y) falls inside r.
func (r IRect) Contains(x, y int) bool {
	return x >= r.X0 && x < r.X1 && y >= r.Y0 && y < r.Y1
}

// Intersects returns true if r and o overlap.
func (r IRect) Intersects(o IRect) bool {
	return r.X0 < o.X1 && o.X0 < r.X1 && r.Y0 < o.Y1 && o.Y0 < r.Y1
}

// Intersect returns the overlapping rectangle of r and o, or the zero
// IRect (IsEmpty() == true) if they don't overlap.
func (r IRect) Intersect(o IRect) IRect {
	x0, y0 := maxInt(r.X0, o.X0), maxInt(r.Y0, o.Y0)
	x1, y1 := minInt(r.X1, o.X1), minInt(r.Y1, o.Y1)
	if x1 <= x0 || y1 <= y0 {
		return IRect{}
	}
	return IRect{X0: x0, Y0: y0, X1: x1, Y1: y1}
}

// Union returns the bounding rectangle that contains both r and o.
func (r IRect) Union(o IRect) IRect {
	if r.IsEmpty() {
		return o
	}
	if o.IsEmpty() {
		return r
	}
	return IRect{
		X0: minInt(r.X0, o.X0), Y0: minInt(r.Y0, o.Y0),
		X1: maxInt(r.X1, o.X1), Y1: maxInt(r.Y1, o.Y1),
	}
}

// FromRect converts a float Rect to an integer IRect, rounding outward
// so the integer region is never smaller than the float rectangle.
func FromRect(r Rect) IRect {
	return IRect{
		X0: int(math.Floor(r.X)),
		Y0: int(math.Floor(r.Y)),
		X1: int(math.Ceil(r.Right())),
		Y1: int(math.Ceil(r.Bottom())),
	}
}

// ToRect converts an IRect back to a float Rect.
func (r IRect) ToRect() Rect {
	if r.IsEmpty() {
		return Rect{}
	}
	return Rect{X: float64(r.X0), Y: float64(r.Y0), W: float64(r.X1 - r.X0), H: float64(r.Y1 - r.Y0)}
}

// Region is a clip shape made of a set of integer rectangles, the
// equivalent of Skia's SkRegion / spec.md §3's Region ClipState
// variant: an axis-aligned, possibly disconnected or non-convex area
// described without a coverage mask.
//
// Simplification (documented, mirrors the approximate-Difference
// resolution in internal/pathops): Rects is stored as-supplied rather
// than kept merged into a minimal non-overlapping run list. Contains,
// Bounds, Union, and Intersect are all correct regardless of overlap
// between entries; only the *storage* is non-minimal, which only
// matters for memory/iteration cost, never for query correctness.
type Region struct {
	Rects []IRect
}

// RegionFromRect builds a single-rectangle Region.
func RegionFromRect(r Rect) Region {
	ir := FromRect(r)
	if ir.IsEmpty() {
		return Region{}
	}
	return Region{Rects: []IRect{ir}}
}

// IsEmpty returns true if the region covers no area.
func (reg Region) IsEmpty() bool {
	for _, r := range reg.Rects {
		if !r.IsEmpty() {
			return false
		}
	}
	return true
}

// Contains returns true if the integer point (x, y) is inside any of
// the region's rectangles.
func (reg Region) Contains(x, y int) bool {
	for _, r := range reg.Rects {
		if r.Contains(x, y) {
			return true
		}
	}
	return false
}

// Bounds returns the smallest IRect enclosing every rectangle in the
// region.
func (reg Region) Bounds() IRect {
	var b IRect
	for _, r := range reg.Rects {
		b = b.Union(r)
	}
	return b
}

// Union returns a region covering the area of reg or other.
func (reg Region) Union(other Region) Region {
	out := Region{Rects: make([]IRect, 0, len(reg.Rects)+len(other.Rects))}
	out.Rects = append(out.Rects, reg.Rects...)
	out.Rects = append(out.Rects, other.Rects...)
	return out
}

// Intersect returns a region covering only the area present in both
// reg and other, decomposed into one rectangle per overlapping pair.
func (reg Region) Intersect(other Region) Region {
	var out Region
	for _, a := range reg.Rects {
		for _, b := range other.Rects {
			if a.Intersects(b) {
				out.Rects = append(out.Rects, a.Intersect(b))
			}
		}
	}
	return out
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
