package vgfx

import (
	"image"
	"image/color"
	"testing"

	intBlend "github.com/pegasusheavy/vgfx/internal/blend"
)

func solidImage(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestImageShader_SamplesSolidImage(t *testing.T) {
	img := solidImage(4, 4, color.NRGBA{R: 255, G: 0, B: 0, A: 255})
	shader := NewImageShader(img)

	c := shader.ColorAt(1, 1)
	if c.R < 0.99 || c.G > 0.01 || c.B > 0.01 || c.A < 0.99 {
		t.Errorf("ColorAt(1,1) = %+v, want opaque red", c)
	}
}

func TestImageShader_ClampTile(t *testing.T) {
	img := solidImage(2, 2, color.NRGBA{R: 0, G: 255, B: 0, A: 255})
	shader := NewImageShader(img)
	shader.TileX = ImageTileClamp
	shader.TileY = ImageTileClamp

	// Sampling far outside bounds should still clamp to an edge pixel,
	// not go transparent.
	c := shader.ColorAt(100, 100)
	if c.A < 0.99 {
		t.Errorf("ClampTile out-of-bounds sample = %+v, want opaque", c)
	}
}

func TestImageShader_DecalTileGoesTransparent(t *testing.T) {
	img := solidImage(2, 2, color.NRGBA{R: 0, G: 0, B: 255, A: 255})
	shader := NewImageShader(img)
	shader.TileX = ImageTileDecal
	shader.TileY = ImageTileDecal

	c := shader.ColorAt(100, 100)
	if c.A != 0 {
		t.Errorf("DecalTile out-of-bounds sample A = %v, want 0", c.A)
	}
}

func TestEmptyShader_AlwaysTransparent(t *testing.T) {
	var s EmptyShader
	c := s.ColorAt(5, 5)
	if c != (RGBA{}) {
		t.Errorf("EmptyShader.ColorAt = %+v, want zero value", c)
	}
}

func TestLocalMatrixShader_TranslatesChildSampling(t *testing.T) {
	child := Solid(RGB(1, 0, 0))
	shader := NewLocalMatrixShader(child, Identity())

	c := shader.ColorAt(10, 10)
	if c.R != 1 {
		t.Errorf("LocalMatrixShader with identity matrix should sample child unchanged, got %+v", c)
	}
}

func TestComposeShader_UsesComposeFunc(t *testing.T) {
	dst := Solid(RGB(0, 0, 0))
	src := Solid(RGB(1, 1, 1))
	called := false
	shader := NewComposeShader(dst, src, func(d, s RGBA) RGBA {
		called = true
		return s
	})

	got := shader.ColorAt(0, 0)
	if !called {
		t.Fatal("Compose function was not invoked")
	}
	if got.R != 1 {
		t.Errorf("ComposeShader.ColorAt = %+v, want src color", got)
	}
}

func TestBlendShader_SrcOverOpaqueSourceReplacesDestination(t *testing.T) {
	dst := Solid(RGB(0, 0, 1))
	src := Solid(RGB(1, 0, 0))
	shader := NewBlendShader(dst, src, intBlend.BlendSourceOver)

	got := shader.ColorAt(0, 0)
	if got.R < 0.99 || got.B > 0.01 {
		t.Errorf("BlendShader(SrcOver, opaque src) = %+v, want dst replaced by src", got)
	}
}
