package vgfx

import (
	"testing"
)

// TestNewPaint tests the NewPaint constructor.
func TestNewPaint(t *testing.T) {
	p := NewPaint()

	if p.LineWidth != 1.0 {
		t.Errorf("LineWidth = %v, want 1.0", p.LineWidth)
	}
	if p.LineCap != LineCapButt {
		t.Errorf("LineCap = %v, want LineCapButt", p.LineCap)
	}
	if p.LineJoin != LineJoinMiter {
		t.Errorf("LineJoin = %v, want LineJoinMiter", p.LineJoin)
	}
	if p.MiterLimit != 10.0 {
		t.Errorf("MiterLimit = %v, want 10.0", p.MiterLimit)
	}
	if p.FillRule != FillRuleNonZero {
		t.Errorf("FillRule = %v, want FillRuleNonZero", p.FillRule)
	}
	if !p.Antialias {
		t.Error("Antialias = false, want true")
	}
	if p.Shader == nil {
		t.Error("Shader = nil, want non-nil")
	}
	if p.Pattern == nil {
		t.Error("Pattern = nil, want non-nil")
	}
}

// TestPaintClone tests the Clone method.
func TestPaintClone(t *testing.T) {
	p := NewPaint()
	p.LineWidth = 5.0
	p.LineCap = LineCapRound
	p.SetShader(Solid(Red))

	clone := p.Clone()

	if clone.LineWidth != p.LineWidth {
		t.Errorf("clone.LineWidth = %v, want %v", clone.LineWidth, p.LineWidth)
	}
	if clone.LineCap != p.LineCap {
		t.Errorf("clone.LineCap = %v, want %v", clone.LineCap, p.LineCap)
	}
	if clone.Shader == nil {
		t.Error("clone.Shader = nil")
	}

	// Verify it's a separate object
	clone.LineWidth = 10.0
	if p.LineWidth == clone.LineWidth {
		t.Error("Clone is not independent")
	}
}

// TestPaintSetShader tests the SetShader method.
func TestPaintSetShader(t *testing.T) {
	p := NewPaint()
	brush := Solid(Blue)
	p.SetShader(brush)

	if sb, ok := p.Shader.(ColorShader); !ok || sb.Color != Blue {
		t.Error("SetShader did not set brush correctly")
	}
	if p.Pattern == nil {
		t.Error("SetShader did not update Pattern for compatibility")
	}
}

// TestPaintGetShader tests the GetShader method.
func TestPaintGetShader(t *testing.T) {
	t.Run("with brush set", func(t *testing.T) {
		p := NewPaint()
		p.Shader = Solid(Green)
		brush := p.GetShader()
		if sb, ok := brush.(ColorShader); !ok || sb.Color != Green {
			t.Error("GetShader did not return set brush")
		}
	})

	t.Run("with only pattern set", func(t *testing.T) {
		p := &Paint{
			Pattern: NewSolidPattern(Yellow),
		}
		brush := p.GetShader()
		if brush == nil {
			t.Error("GetShader returned nil for Pattern-only paint")
		}
		c := brush.ColorAt(0, 0)
		if c != Yellow {
			t.Errorf("GetShader returned wrong color: %v, want Yellow", c)
		}
	})

	t.Run("with nothing set", func(t *testing.T) {
		p := &Paint{}
		brush := p.GetShader()
		if brush == nil {
			t.Error("GetShader returned nil for empty paint")
		}
		// Should return default black
		c := brush.ColorAt(0, 0)
		if c != Black {
			t.Errorf("GetShader returned wrong default color: %v, want Black", c)
		}
	})
}

// TestPaintColorAt tests the ColorAt method.
func TestPaintColorAt(t *testing.T) {
	t.Run("with brush set", func(t *testing.T) {
		p := NewPaint()
		p.Shader = Solid(Red)
		c := p.ColorAt(0, 0)
		if c != Red {
			t.Errorf("ColorAt = %v, want Red", c)
		}
	})

	t.Run("with only pattern set", func(t *testing.T) {
		p := &Paint{
			Pattern: NewSolidPattern(Blue),
		}
		c := p.ColorAt(0, 0)
		if c != Blue {
			t.Errorf("ColorAt = %v, want Blue", c)
		}
	})

	t.Run("with nothing set", func(t *testing.T) {
		p := &Paint{}
		c := p.ColorAt(0, 0)
		if c != Black {
			t.Errorf("ColorAt = %v, want Black (default)", c)
		}
	})

	t.Run("brush takes precedence over pattern", func(t *testing.T) {
		p := &Paint{
			Pattern: NewSolidPattern(Blue),
			Shader:   Solid(Red),
		}
		c := p.ColorAt(0, 0)
		if c != Red {
			t.Errorf("ColorAt = %v, want Red (brush should take precedence)", c)
		}
	})
}

// TestContextSetFillShader tests the SetFillShader method.
func TestContextSetFillShader(t *testing.T) {
	ctx := NewCanvas(100, 100)
	ctx.SetFillShader(Solid(Magenta))

	brush := ctx.FillShader()
	c := brush.ColorAt(0, 0)
	if c != Magenta {
		t.Errorf("FillShader color = %v, want Magenta", c)
	}
}

// TestContextSetStrokeShader tests the SetStrokeShader method.
func TestContextSetStrokeShader(t *testing.T) {
	ctx := NewCanvas(100, 100)
	ctx.SetStrokeShader(Solid(Cyan))

	brush := ctx.StrokeShader()
	c := brush.ColorAt(0, 0)
	if c != Cyan {
		t.Errorf("StrokeShader color = %v, want Cyan", c)
	}
}

// TestContextFillShader tests the FillShader getter.
func TestContextFillShader(t *testing.T) {
	ctx := NewCanvas(100, 100)
	// Default should be black
	brush := ctx.FillShader()
	c := brush.ColorAt(0, 0)
	if c != Black {
		t.Errorf("default FillShader color = %v, want Black", c)
	}
}

// TestContextStrokeShader tests the StrokeShader getter.
func TestContextStrokeShader(t *testing.T) {
	ctx := NewCanvas(100, 100)
	// Default should be black
	brush := ctx.StrokeShader()
	c := brush.ColorAt(0, 0)
	if c != Black {
		t.Errorf("default StrokeShader color = %v, want Black", c)
	}
}

// TestContextSetColorUpdatesPatternAndShader tests that SetColor updates both.
func TestContextSetColorUpdatesPatternAndShader(t *testing.T) {
	ctx := NewCanvas(100, 100)
	ctx.SetRGB(1, 0, 0) // Red

	// Check brush
	brush := ctx.FillShader()
	c := brush.ColorAt(0, 0)
	if c != Red {
		t.Errorf("brush color = %v, want Red", c)
	}

	// Check pattern (for backward compatibility)
	if ctx.paint.Pattern == nil {
		t.Error("Pattern is nil after SetRGB")
	}
}

// BenchmarkPaintSetShader benchmarks SetShader.
func BenchmarkPaintSetShader(b *testing.B) {
	p := NewPaint()
	brush := Solid(Red)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p.SetShader(brush)
	}
}

// BenchmarkPaintColorAt benchmarks ColorAt.
func BenchmarkPaintColorAt(b *testing.B) {
	p := NewPaint()
	p.SetShader(Solid(Red))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = p.ColorAt(float64(i%100), float64(i%100))
	}
}
