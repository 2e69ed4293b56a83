package vgfx

import (
	intBlend "github.com/pegasusheavy/vgfx/internal/blend"
)

// LineCap specifies the shape of line endpoints.
type LineCap int

const (
	// LineCapButt specifies a flat line cap.
	LineCapButt LineCap = iota
	// LineCapRound specifies a rounded line cap.
	LineCapRound
	// LineCapSquare specifies a square line cap.
	LineCapSquare
)

// LineJoin specifies the shape of line joins.
type LineJoin int

const (
	// LineJoinMiter specifies a sharp (mitered) join.
	LineJoinMiter LineJoin = iota
	// LineJoinRound specifies a rounded join.
	LineJoinRound
	// LineJoinBevel specifies a beveled join.
	LineJoinBevel
)

// FillRule specifies how to determine which areas are inside a path.
type FillRule int

const (
	// FillRuleNonZero uses the non-zero winding rule.
	FillRuleNonZero FillRule = iota
	// FillRuleEvenOdd uses the even-odd rule.
	FillRuleEvenOdd
)

// PaintStyle selects which geometry a draw call produces: the filled
// interior, the stroked outline, or both (fill drawn first, then stroke).
type PaintStyle int

const (
	// StyleFill fills the path interior.
	StyleFill PaintStyle = iota
	// StyleStroke strokes the path outline.
	StyleStroke
	// StyleStrokeAndFill fills, then strokes, the same path.
	StyleStrokeAndFill
)

// Paint represents the styling information for drawing: color source,
// fill/stroke style, stroke geometry, and compositing mode.
type Paint struct {
	// Shader is the per-pixel color source (solid color, gradient, image,
	// or any other Shader). Takes precedence over Pattern when both are set.
	Shader Shader

	// Pattern is a legacy fill/stroke color source.
	//
	// Deprecated: set Shader instead. Pattern is read only when Shader is nil.
	Pattern Pattern

	// Style selects fill, stroke, or stroke-and-fill.
	Style PaintStyle

	// BlendMode selects the Porter-Duff compositing operator used when
	// stamping this paint's color into the destination. Unknown modes
	// fall back to source-over.
	BlendMode intBlend.BlendMode

	// LineWidth is the width of strokes.
	LineWidth float64

	// LineCap is the shape of line endpoints.
	LineCap LineCap

	// LineJoin is the shape of line joins.
	LineJoin LineJoin

	// MiterLimit is the miter limit for sharp joins.
	MiterLimit float64

	// Dash is the dash pattern applied to strokes. Nil means a solid line.
	Dash *Dash

	// Stroke, when set, is the authoritative stroke style and takes
	// precedence over the legacy LineWidth/LineCap/LineJoin/MiterLimit/Dash
	// fields. Use SetStroke/GetStroke rather than setting this directly.
	Stroke *Stroke

	// TransformScale is the device-space scale factor of the transform
	// active when this paint last stroked a path. The renderer widens
	// stroke geometry by this factor so stroke width stays visually
	// correct regardless of the current transform.
	TransformScale float64

	// FillRule is the fill rule for paths.
	FillRule FillRule

	// Antialias enables anti-aliasing.
	Antialias bool
}

// NewPaint creates a new Paint with default values: opaque black fill,
// non-zero winding, anti-aliasing enabled, source-over compositing.
func NewPaint() *Paint {
	return &Paint{
		Shader:         Solid(Black),
		Pattern:        NewSolidPattern(Black),
		Style:          StyleFill,
		BlendMode:      intBlend.BlendSourceOver,
		LineWidth:      1.0,
		LineCap:        LineCapButt,
		LineJoin:       LineJoinMiter,
		MiterLimit:     10.0,
		TransformScale: 1.0,
		FillRule:       FillRuleNonZero,
		Antialias:      true,
	}
}

// Clone creates a copy of the Paint. The Dash pattern, if any, is deep-copied.
func (p *Paint) Clone() *Paint {
	clone := &Paint{
		Shader:     p.Shader,
		Pattern:    p.Pattern,
		Style:      p.Style,
		BlendMode:  p.BlendMode,
		LineWidth:  p.LineWidth,
		LineCap:    p.LineCap,
		LineJoin:   p.LineJoin,
		MiterLimit: p.MiterLimit,
		FillRule:   p.FillRule,
		Antialias:  p.Antialias,
	}
	if p.Dash != nil {
		clone.Dash = p.Dash.Clone()
	}
	if p.Stroke != nil {
		s := p.Stroke.Clone()
		clone.Stroke = &s
	}
	return clone
}

// SetShader sets the color source for this paint and keeps the legacy
// Pattern field in sync so older call sites reading Pattern still work.
func (p *Paint) SetShader(b Shader) {
	p.Shader = b
	p.Pattern = PatternFromShader(b)
}

// GetShader returns the effective color source: Shader if set, otherwise
// Pattern adapted to Shader, otherwise opaque black.
func (p *Paint) GetShader() Shader {
	if p.Shader != nil {
		return p.Shader
	}
	if p.Pattern != nil {
		return ShaderFromPattern(p.Pattern)
	}
	return Solid(Black)
}

// ColorAt samples the effective color source at the given device coordinates.
func (p *Paint) ColorAt(x, y float64) RGBA {
	return p.GetShader().ColorAt(x, y)
}

// SetStroke sets the complete stroke style, superseding the legacy
// LineWidth/LineCap/LineJoin/MiterLimit/Dash fields for this paint.
func (p *Paint) SetStroke(s Stroke) {
	stroke := s.Clone()
	p.Stroke = &stroke
	p.LineWidth = s.Width
	p.LineCap = s.Cap
	p.LineJoin = s.Join
	p.MiterLimit = s.MiterLimit
	p.Dash = s.Dash
}

// GetStroke returns the current stroke style: Stroke if set, otherwise a
// Stroke synthesized from the legacy LineWidth/LineCap/LineJoin/MiterLimit
// fields.
func (p *Paint) GetStroke() Stroke {
	if p.Stroke != nil {
		return p.Stroke.Clone()
	}
	return Stroke{
		Width:      p.LineWidth,
		Cap:        p.LineCap,
		Join:       p.LineJoin,
		MiterLimit: p.MiterLimit,
		Dash:       p.Dash,
	}
}

// EffectiveLineWidth returns the stroke width that should be used for
// rendering: Stroke.Width if set, otherwise the legacy LineWidth field.
func (p *Paint) EffectiveLineWidth() float64 {
	if p.Stroke != nil {
		return p.Stroke.Width
	}
	return p.LineWidth
}

// EffectiveLineCap returns the stroke cap that should be used for rendering.
func (p *Paint) EffectiveLineCap() LineCap {
	if p.Stroke != nil {
		return p.Stroke.Cap
	}
	return p.LineCap
}

// EffectiveLineJoin returns the stroke join that should be used for rendering.
func (p *Paint) EffectiveLineJoin() LineJoin {
	if p.Stroke != nil {
		return p.Stroke.Join
	}
	return p.LineJoin
}

// EffectiveMiterLimit returns the miter limit that should be used for rendering.
func (p *Paint) EffectiveMiterLimit() float64 {
	if p.Stroke != nil {
		return p.Stroke.MiterLimit
	}
	return p.MiterLimit
}

// EffectiveDash returns the dash pattern that should be used for rendering,
// or nil for a solid line.
func (p *Paint) EffectiveDash() *Dash {
	if p.Stroke != nil {
		return p.Stroke.Dash
	}
	return p.Dash
}

// IsDashed reports whether the effective stroke style uses a dash pattern.
func (p *Paint) IsDashed() bool {
	d := p.EffectiveDash()
	return d != nil && d.IsDashed()
}
