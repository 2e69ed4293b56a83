package vgfx

// Shader represents what to paint with.
// This is a sealed interface - only types in this package implement it.
//
// The Shader pattern follows vello/peniko Rust conventions, providing a
// type-safe way to represent different brush types (solid colors, gradients,
// images) while maintaining extensibility through CustomShader.
//
// Supported brush types:
//   - ColorShader: A single solid color
//   - CustomShader: User-defined color function (see brush_custom.go)
//
// Example usage:
//
//	// Using convenience constructors
//	ctx.SetFillShader(gg.Solid(gg.Red))
//	ctx.SetStrokeShader(gg.SolidRGB(0.5, 0.5, 0.5))
//
//	// Using hex colors
//	brush := gg.SolidHex("#FF5733")
type Shader interface {
	// shaderMarker is an unexported method that seals this interface.
	// Only types in this package can implement Shader.
	shaderMarker()

	// ColorAt returns the color at the given coordinates.
	// For solid brushes, this returns the same color regardless of position.
	// For pattern-based brushes, this samples the pattern at (x, y).
	ColorAt(x, y float64) RGBA
}

// ColorShader is a single-color brush.
// It implements the Shader interface and always returns the same color.
type ColorShader struct {
	// Color is the solid color of this brush.
	Color RGBA
}

// shaderMarker implements the sealed Shader interface.
func (ColorShader) shaderMarker() {}

// ColorAt implements Shader. Returns the solid color regardless of position.
func (b ColorShader) ColorAt(_, _ float64) RGBA {
	return b.Color
}

// Solid creates a ColorShader from an RGBA color.
//
// Example:
//
//	brush := gg.Solid(gg.Red)
//	brush := gg.Solid(gg.RGBA{R: 1, G: 0, B: 0, A: 1})
func Solid(c RGBA) ColorShader {
	return ColorShader{Color: c}
}

// SolidRGB creates a ColorShader from RGB components (0-1 range).
// Alpha is set to 1.0 (fully opaque).
//
// Example:
//
//	brush := gg.SolidRGB(1, 0, 0) // Red
//	brush := gg.SolidRGB(0.5, 0.5, 0.5) // Gray
func SolidRGB(r, g, b float64) ColorShader {
	return ColorShader{Color: RGB(r, g, b)}
}

// SolidRGBA creates a ColorShader from RGBA components (0-1 range).
//
// Example:
//
//	brush := gg.SolidRGBA(1, 0, 0, 0.5) // Semi-transparent red
func SolidRGBA(r, g, b, a float64) ColorShader {
	return ColorShader{Color: RGBA2(r, g, b, a)}
}

// SolidHex creates a ColorShader from a hex color string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with optional '#' prefix.
//
// Example:
//
//	brush := gg.SolidHex("#FF5733")
//	brush := gg.SolidHex("FF5733")
//	brush := gg.SolidHex("#F53")
func SolidHex(hex string) ColorShader {
	return ColorShader{Color: Hex(hex)}
}

// WithAlpha returns a new ColorShader with the specified alpha value.
// The RGB components are preserved.
//
// Example:
//
//	opaqueShader := gg.Solid(gg.Red)
//	semiShader := opaqueShader.WithAlpha(0.5)
func (b ColorShader) WithAlpha(alpha float64) ColorShader {
	return ColorShader{
		Color: RGBA{
			R: b.Color.R,
			G: b.Color.G,
			B: b.Color.B,
			A: alpha,
		},
	}
}

// Opaque returns a new ColorShader with alpha set to 1.0.
func (b ColorShader) Opaque() ColorShader {
	return b.WithAlpha(1.0)
}

// Transparent returns a new ColorShader with alpha set to 0.0.
func (b ColorShader) Transparent() ColorShader {
	return b.WithAlpha(0.0)
}

// Lerp performs linear interpolation between two solid brushes.
// Returns a new ColorShader with the interpolated color.
//
// Example:
//
//	red := gg.Solid(gg.Red)
//	blue := gg.Solid(gg.Blue)
//	purple := red.Lerp(blue, 0.5)
func (b ColorShader) Lerp(other ColorShader, t float64) ColorShader {
	return ColorShader{Color: b.Color.Lerp(other.Color, t)}
}

// ShaderFromPattern converts a legacy Pattern to a Shader.
// This is a compatibility helper for migrating from Pattern to Shader.
//
// If the pattern is a SolidPattern, it returns a ColorShader.
// Otherwise, it wraps the pattern in a CustomShader.
//
// Deprecated: Use Shader types directly instead of Pattern.
func ShaderFromPattern(p Pattern) Shader {
	if sp, ok := p.(*SolidPattern); ok {
		return ColorShader{Color: sp.Color}
	}
	// Wrap non-solid patterns in a CustomShader
	return CustomShader{
		Func: p.ColorAt,
		Name: "pattern",
	}
}

// PatternFromShader converts a Shader to a legacy Pattern.
// This is a compatibility helper for code that still uses Pattern.
//
// Deprecated: Use Shader types directly instead of Pattern.
func PatternFromShader(b Shader) Pattern {
	if sb, ok := b.(ColorShader); ok {
		return NewSolidPattern(sb.Color)
	}
	// For other brush types, create a wrapper pattern
	return &shaderPattern{brush: b}
}

// shaderPattern wraps a Shader to implement the Pattern interface.
type shaderPattern struct {
	brush Shader
}

// ColorAt implements Pattern.
func (p *shaderPattern) ColorAt(x, y float64) RGBA {
	return p.brush.ColorAt(x, y)
}
