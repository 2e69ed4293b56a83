package vgfx

import (
	"math"

	"github.com/pegasusheavy/vgfx/internal/clip"
)

// Clip sets the current path as the clipping region and clears the path.
// Subsequent drawing operations will be clipped to this region.
// The clip region is intersected with any existing clip regions.
func (c *Canvas) Clip() {
	if c.clipStack == nil {
		c.initClipStack()
	}

	// Convert gg.PathElement to clip.PathElement
	elements := convertPathElements(c.path.Elements())

	// Push the path as a clip region
	_ = c.clipStack.PushPath(elements, true) // anti-aliased by default

	// Clear the path
	c.path.Clear()
}

// ClipPreserve sets the current path as the clipping region but keeps the path.
// This is like Clip() but doesn't clear the path, allowing you to both clip
// and then fill/stroke the same path.
func (c *Canvas) ClipPreserve() {
	if c.clipStack == nil {
		c.initClipStack()
	}

	// Convert gg.PathElement to clip.PathElement
	elements := convertPathElements(c.path.Elements())

	// Push the path as a clip region
	_ = c.clipStack.PushPath(elements, true) // anti-aliased by default
	// Path is preserved
}

// ClipRect sets a rectangular clipping region.
// This is a faster alternative to creating a rectangular path and calling Clip().
// The clip region is intersected with any existing clip regions.
func (c *Canvas) ClipRect(x, y, w, h float64) {
	if c.clipStack == nil {
		c.initClipStack()
	}

	// Transform the rectangle corners
	p1 := c.matrix.TransformPoint(Pt(x, y))
	p2 := c.matrix.TransformPoint(Pt(x+w, y+h))

	// Create clip rectangle in device coordinates
	rect := clip.NewRect(
		math.Min(p1.X, p2.X),
		math.Min(p1.Y, p2.Y),
		math.Abs(p2.X-p1.X),
		math.Abs(p2.Y-p1.Y),
	)

	c.clipStack.PushRect(rect)
}

// ClipRects intersects the current clip with the union of rects, a
// Region clip per spec.md §3's ClipState enumeration: unlike ClipRect,
// the resulting clip area may be disconnected (no single bounding
// rectangle describes it) and carries no anti-aliased coverage mask —
// only hard inside/outside membership. Useful for clipping to a set
// of selection highlights or tile boundaries in one push.
func (c *Canvas) ClipRects(rects []Rect) {
	if c.clipStack == nil {
		c.initClipStack()
	}
	var region clip.Region
	for _, r := range rects {
		p1 := c.matrix.TransformPoint(r.Min)
		p2 := c.matrix.TransformPoint(r.Max)
		deviceRect := clip.NewRect(
			math.Min(p1.X, p2.X), math.Min(p1.Y, p2.Y),
			math.Abs(p2.X-p1.X), math.Abs(p2.Y-p1.Y),
		)
		region = region.Union(clip.RegionFromRect(deviceRect))
	}
	c.clipStack.PushRegion(region)
}

// ClipState describes the shape of the canvas's current clip, per
// spec.md §3: the clip is always exactly one of a single rectangle, a
// multi-rectangle Region, a coverage Mask, or a Region composed with a
// Mask. The concrete variant types (ClipStateRect, ClipStateRegion,
// ClipStateMask, ClipStateRegionAndMask) implement this as a sealed
// interface, the same pattern as PathElement and Shader.
type ClipState interface {
	clipStateMarker()
}

// ClipStateRect is the ClipState variant for a clip stack containing
// only rectangular (and/or empty) entries.
type ClipStateRect struct {
	Bounds Rect
}

func (ClipStateRect) clipStateMarker() {}

// ClipStateRegion is the ClipState variant for a clip stack whose
// most specific entry is a multi-rectangle Region with no mask.
type ClipStateRegion struct {
	Bounds Rect
}

func (ClipStateRegion) clipStateMarker() {}

// ClipStateMask is the ClipState variant for a clip stack containing a
// path-rasterized coverage mask with no Region entries.
type ClipStateMask struct {
	Bounds Rect
}

func (ClipStateMask) clipStateMarker() {}

// ClipStateRegionAndMask is the ClipState variant for a clip stack
// containing both a Region clip and a coverage-mask clip, composed as
// described on PushRegion: hard region membership multiplied by
// graded mask coverage.
type ClipStateRegionAndMask struct {
	Bounds Rect
}

func (ClipStateRegionAndMask) clipStateMarker() {}

// ClipState classifies the canvas's current clip into one of
// ClipStateRect, ClipStateRegion, ClipStateMask, or
// ClipStateRegionAndMask based on which kinds of entries are present
// on the clip stack.
func (c *Canvas) ClipState() ClipState {
	bounds := Rect{}
	if c.clipStack == nil {
		return ClipStateRect{Bounds: bounds}
	}
	b := c.clipStack.Bounds()
	bounds = Rect{Min: Pt(b.X, b.Y), Max: Pt(b.Right(), b.Bottom())}

	hasRegion, hasMask := c.clipStack.EntryKinds()
	switch {
	case hasRegion && hasMask:
		return ClipStateRegionAndMask{Bounds: bounds}
	case hasRegion:
		return ClipStateRegion{Bounds: bounds}
	case hasMask:
		return ClipStateMask{Bounds: bounds}
	default:
		return ClipStateRect{Bounds: bounds}
	}
}

// ResetClip removes all clipping regions, restoring the full canvas as drawable.
func (c *Canvas) ResetClip() {
	if c.clipStack == nil {
		return
	}

	// Reset to canvas bounds
	bounds := clip.NewRect(0, 0, float64(c.width), float64(c.height))
	c.clipStack.Reset(bounds)
}

// initClipStack initializes the clip stack with canvas bounds.
func (c *Canvas) initClipStack() {
	bounds := clip.NewRect(0, 0, float64(c.width), float64(c.height))
	c.clipStack = clip.NewClipStack(bounds)
}

// convertPathElements converts gg.PathElement slice to clip.PathElement slice.
func convertPathElements(elements []PathElement) []clip.PathElement {
	result := make([]clip.PathElement, len(elements))
	for i, elem := range elements {
		switch e := elem.(type) {
		case MoveTo:
			result[i] = clip.MoveTo{Point: clip.Pt(e.Point.X, e.Point.Y)}
		case LineTo:
			result[i] = clip.LineTo{Point: clip.Pt(e.Point.X, e.Point.Y)}
		case QuadTo:
			result[i] = clip.QuadTo{
				Control: clip.Pt(e.Control.X, e.Control.Y),
				Point:   clip.Pt(e.Point.X, e.Point.Y),
			}
		case CubicTo:
			result[i] = clip.CubicTo{
				Control1: clip.Pt(e.Control1.X, e.Control1.Y),
				Control2: clip.Pt(e.Control2.X, e.Control2.Y),
				Point:    clip.Pt(e.Point.X, e.Point.Y),
			}
		case Conic:
			// Clip mask rasterization treats a conic as a quadratic
			// (documented approximation, see the Conic type's doc comment).
			result[i] = clip.QuadTo{
				Control: clip.Pt(e.Control.X, e.Control.Y),
				Point:   clip.Pt(e.Point.X, e.Point.Y),
			}
		case Close:
			result[i] = clip.Close{}
		}
	}
	return result
}
