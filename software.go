package vgfx

import (
	intBlend "github.com/pegasusheavy/vgfx/internal/blend"
	"github.com/pegasusheavy/vgfx/internal/clip"
	"github.com/pegasusheavy/vgfx/internal/path"
	"github.com/pegasusheavy/vgfx/internal/raster"
	"github.com/pegasusheavy/vgfx/internal/stroke"
)

// SoftwareRenderer is a CPU-based scanline rasterizer. It fills paths using
// a global/active edge table with 4x4 supersampled anti-aliasing, sampling
// the paint's brush per pixel and compositing through the requested
// Porter-Duff blend mode.
type SoftwareRenderer struct {
	rasterizer *raster.Rasterizer
	clipStack  *clip.ClipStack

	width, height int
}

// NewSoftwareRenderer creates a new software renderer.
func NewSoftwareRenderer(width, height int) *SoftwareRenderer {
	return &SoftwareRenderer{
		rasterizer: raster.NewRasterizer(width, height),
		width:      width,
		height:     height,
	}
}

// Resize rebuilds the rasterizer for new dimensions.
func (r *SoftwareRenderer) Resize(width, height int) {
	r.width = width
	r.height = height
	r.rasterizer = raster.NewRasterizer(width, height)
}

// SetClipStack installs the clip stack whose coverage multiplies every pixel
// this renderer draws. Pass nil to clear clipping.
func (r *SoftwareRenderer) SetClipStack(cs *clip.ClipStack) {
	r.clipStack = cs
}

// pixmapAdapter adapts Pixmap to raster.AAPixmap, sampling the active paint's
// brush per pixel and compositing through its blend mode and the renderer's
// clip coverage rather than writing a single baked-in color.
type pixmapAdapter struct {
	pixmap    *Pixmap
	paint     *Paint
	clipStack *clip.ClipStack
}

func (p *pixmapAdapter) Width() int  { return p.pixmap.Width() }
func (p *pixmapAdapter) Height() int { return p.pixmap.Height() }

func (p *pixmapAdapter) SetPixel(x, y int, _ raster.RGBA) {
	p.blend(x, y, 255)
}

// BlendPixelAlpha blends the paint's brush color with the existing pixel at
// the given supersampled coverage alpha. The color argument from the
// rasterizer is ignored in favor of sampling the brush directly, so
// gradients and other non-solid brushes render correctly.
func (p *pixmapAdapter) BlendPixelAlpha(x, y int, _ raster.RGBA, alpha uint8) {
	if alpha == 0 {
		return
	}
	p.blend(x, y, alpha)
}

func (p *pixmapAdapter) blend(x, y int, alpha uint8) {
	if x < 0 || x >= p.pixmap.Width() || y < 0 || y >= p.pixmap.Height() {
		return
	}

	coverage := alpha
	if p.clipStack != nil {
		clipCoverage := p.clipStack.Coverage(float64(x)+0.5, float64(y)+0.5)
		coverage = byte((uint16(coverage) * uint16(clipCoverage)) / 255)
	}
	if coverage == 0 {
		return
	}

	col := p.paint.ColorAt(float64(x)+0.5, float64(y)+0.5)
	effectiveAlpha := col.A * float64(coverage) / 255.0
	if effectiveAlpha <= 0 {
		return
	}

	srcR, srcG, srcB, srcA := premultiplyByte(col.R, col.G, col.B, effectiveAlpha)
	dst := p.pixmap.GetPixel(x, y)
	dstR, dstG, dstB, dstA := premultiplyByte(dst.R, dst.G, dst.B, dst.A)

	blendFn := intBlend.GetBlendFunc(p.paint.BlendMode)
	outR, outG, outB, outA := blendFn(srcR, srcG, srcB, srcA, dstR, dstG, dstB, dstA)

	p.pixmap.SetPixel(x, y, unpremultiplyByte(outR, outG, outB, outA))
}

// premultiplyByte converts an unpremultiplied float color channel (0-1) and
// alpha (0-1) into premultiplied 8-bit components.
func premultiplyByte(r, g, b, a float64) (rb, gb, bb, ab byte) {
	a = clampT(a)
	ab = byte(a*255 + 0.5)
	rb = byte(clampT(r)*a*255 + 0.5)
	gb = byte(clampT(g)*a*255 + 0.5)
	bb = byte(clampT(b)*a*255 + 0.5)
	return
}

// unpremultiplyByte converts premultiplied 8-bit components back into an
// unpremultiplied RGBA float color.
func unpremultiplyByte(r, g, b, a byte) RGBA {
	if a == 0 {
		return RGBA{}
	}
	af := float64(a) / 255.0
	return RGBA{
		R: float64(r) / 255.0 / af,
		G: float64(g) / 255.0 / af,
		B: float64(b) / 255.0 / af,
		A: af,
	}
}

// convertPath converts gg.Path elements to path.PathElement for flattening.
func convertPath(p *Path) []path.PathElement {
	var elements []path.PathElement
	for _, elem := range p.Elements() {
		switch e := elem.(type) {
		case MoveTo:
			elements = append(elements, path.MoveTo{Point: path.Point{X: e.Point.X, Y: e.Point.Y}})
		case LineTo:
			elements = append(elements, path.LineTo{Point: path.Point{X: e.Point.X, Y: e.Point.Y}})
		case QuadTo:
			elements = append(elements, path.QuadTo{
				Control: path.Point{X: e.Control.X, Y: e.Control.Y},
				Point:   path.Point{X: e.Point.X, Y: e.Point.Y},
			})
		case CubicTo:
			elements = append(elements, path.CubicTo{
				Control1: path.Point{X: e.Control1.X, Y: e.Control1.Y},
				Control2: path.Point{X: e.Control2.X, Y: e.Control2.Y},
				Point:    path.Point{X: e.Point.X, Y: e.Point.Y},
			})
		case Conic:
			// Rasterization treats a conic as a quadratic (documented
			// approximation, see the Conic type's doc comment).
			elements = append(elements, path.QuadTo{
				Control: path.Point{X: e.Control.X, Y: e.Control.Y},
				Point:   path.Point{X: e.Point.X, Y: e.Point.Y},
			})
		case Close:
			elements = append(elements, path.Close{})
		}
	}
	return elements
}

// convertPoints converts path.Point to raster.Point.
func convertPoints(points []path.Point) []raster.Point {
	result := make([]raster.Point, len(points))
	for i, p := range points {
		result[i] = raster.Point{X: p.X, Y: p.Y}
	}
	return result
}

// Fill implements Renderer.Fill using 4x4 supersampled anti-aliasing.
func (r *SoftwareRenderer) Fill(pixmap *Pixmap, p *Path, paint *Paint) error {
	elements := convertPath(p)
	flattenedPath := path.Flatten(elements)
	rasterPoints := convertPoints(flattenedPath)

	fillRule := raster.FillRuleNonZero
	if paint.FillRule == FillRuleEvenOdd {
		fillRule = raster.FillRuleEvenOdd
	}

	adapter := &pixmapAdapter{pixmap: pixmap, paint: paint, clipStack: r.clipStack}
	r.rasterizer.FillAA(adapter, rasterPoints, fillRule, raster.RGBA{})

	return nil
}

// FillNoAA fills without anti-aliasing (faster but aliased).
func (r *SoftwareRenderer) FillNoAA(pixmap *Pixmap, p *Path, paint *Paint) error {
	elements := convertPath(p)
	flattenedPath := path.Flatten(elements)
	rasterPoints := convertPoints(flattenedPath)

	fillRule := raster.FillRuleNonZero
	if paint.FillRule == FillRuleEvenOdd {
		fillRule = raster.FillRuleEvenOdd
	}

	adapter := &pixmapAdapter{pixmap: pixmap, paint: paint, clipStack: r.clipStack}
	r.rasterizer.Fill(adapter, rasterPoints, fillRule, raster.RGBA{})

	return nil
}

// Stroke implements Renderer.Stroke with anti-aliasing support.
// Strokes are expanded to fill paths and rendered with the Fill method
// to get smooth anti-aliased edges.
func (r *SoftwareRenderer) Stroke(pixmap *Pixmap, p *Path, paint *Paint) error {
	strokeElements := convertPathToStrokeElements(p)

	scale := paint.TransformScale
	if scale <= 0 {
		scale = 1.0
	}

	strokeStyle := stroke.Stroke{
		Width:      paint.EffectiveLineWidth() * scale,
		Cap:        convertLineCap(paint.EffectiveLineCap()),
		Join:       convertLineJoin(paint.EffectiveLineJoin()),
		MiterLimit: paint.EffectiveMiterLimit(),
	}
	if strokeStyle.MiterLimit <= 0 {
		strokeStyle.MiterLimit = 4.0
	}

	expander := stroke.NewStrokeExpander(strokeStyle)
	expander.SetTolerance(0.1)

	expandedElements := expander.Expand(strokeElements)
	strokePath := convertStrokeElementsToPath(expandedElements)

	return r.Fill(pixmap, strokePath, paint)
}

// convertPathToStrokeElements converts gg.Path elements to stroke.PathElement.
func convertPathToStrokeElements(p *Path) []stroke.PathElement {
	var elements []stroke.PathElement
	for _, elem := range p.Elements() {
		switch e := elem.(type) {
		case MoveTo:
			elements = append(elements, stroke.MoveTo{Point: stroke.Point{X: e.Point.X, Y: e.Point.Y}})
		case LineTo:
			elements = append(elements, stroke.LineTo{Point: stroke.Point{X: e.Point.X, Y: e.Point.Y}})
		case QuadTo:
			elements = append(elements, stroke.QuadTo{
				Control: stroke.Point{X: e.Control.X, Y: e.Control.Y},
				Point:   stroke.Point{X: e.Point.X, Y: e.Point.Y},
			})
		case CubicTo:
			elements = append(elements, stroke.CubicTo{
				Control1: stroke.Point{X: e.Control1.X, Y: e.Control1.Y},
				Control2: stroke.Point{X: e.Control2.X, Y: e.Control2.Y},
				Point:    stroke.Point{X: e.Point.X, Y: e.Point.Y},
			})
		case Conic:
			elements = append(elements, stroke.QuadTo{
				Control: stroke.Point{X: e.Control.X, Y: e.Control.Y},
				Point:   stroke.Point{X: e.Point.X, Y: e.Point.Y},
			})
		case Close:
			elements = append(elements, stroke.Close{})
		}
	}
	return elements
}

// convertStrokeElementsToPath converts stroke.PathElement back to gg.Path.
func convertStrokeElementsToPath(elements []stroke.PathElement) *Path {
	p := NewPath()
	for _, elem := range elements {
		switch e := elem.(type) {
		case stroke.MoveTo:
			p.MoveTo(e.Point.X, e.Point.Y)
		case stroke.LineTo:
			p.LineTo(e.Point.X, e.Point.Y)
		case stroke.QuadTo:
			p.QuadraticTo(e.Control.X, e.Control.Y, e.Point.X, e.Point.Y)
		case stroke.CubicTo:
			p.CubicTo(e.Control1.X, e.Control1.Y, e.Control2.X, e.Control2.Y, e.Point.X, e.Point.Y)
		case stroke.Close:
			p.Close()
		}
	}
	return p
}

// convertLineCap converts gg.LineCap to stroke.LineCap.
func convertLineCap(cap LineCap) stroke.LineCap {
	switch cap {
	case LineCapButt:
		return stroke.LineCapButt
	case LineCapRound:
		return stroke.LineCapRound
	case LineCapSquare:
		return stroke.LineCapSquare
	default:
		return stroke.LineCapButt
	}
}

// convertLineJoin converts gg.LineJoin to stroke.LineJoin.
func convertLineJoin(join LineJoin) stroke.LineJoin {
	switch join {
	case LineJoinMiter:
		return stroke.LineJoinMiter
	case LineJoinRound:
		return stroke.LineJoinRound
	case LineJoinBevel:
		return stroke.LineJoinBevel
	default:
		return stroke.LineJoinMiter
	}
}
