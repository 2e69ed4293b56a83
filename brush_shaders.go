package vgfx

import (
	"image"

	intBlend "github.com/pegasusheavy/vgfx/internal/blend"
)

// ImageShader samples color from an image.Image, mapping device-space
// coordinates into image space through a local matrix, per spec.md
// §4.6. Out-of-bounds sampling is resolved per-axis by ImageTileMode:
// Clamp/Repeat/Mirror/Decal, matching spec's tile-mode enumeration.
type ImageShader struct {
	Image       image.Image
	LocalMatrix Matrix
	TileX       ImageTileMode
	TileY       ImageTileMode

	// mips holds a power-of-two mipmap pyramid built by EnableMipmaps,
	// with mips[0] == Image. Left nil (the default) ColorAt always
	// samples Image directly.
	mips []image.Image
}

// ImageTileMode controls how an ImageShader resolves out-of-bounds
// sample coordinates.
type ImageTileMode int

const (
	// ImageTileClamp clamps to the nearest edge pixel.
	ImageTileClamp ImageTileMode = iota
	// ImageTileRepeat wraps the coordinate periodically.
	ImageTileRepeat
	// ImageTileMirror reflects the coordinate at each edge.
	ImageTileMirror
	// ImageTileDecal returns transparent black outside the image.
	ImageTileDecal
)

// NewImageShader creates an ImageShader with an identity local matrix
// and clamp tiling on both axes.
func NewImageShader(img image.Image) *ImageShader {
	return &ImageShader{
		Image:       img,
		LocalMatrix: Identity(),
		TileX:       ImageTileClamp,
		TileY:       ImageTileClamp,
	}
}

func (*ImageShader) shaderMarker() {}

// EnableMipmaps builds a power-of-two mipmap pyramid for s.Image (via
// Pixmap.MipLevels, which resamples each level with
// golang.org/x/image/draw's Catmull-Rom filter) so ColorAt can pick a
// lower-resolution level under minification instead of point-sampling
// the full-resolution source and aliasing.
func (s *ImageShader) EnableMipmaps() {
	if s.Image == nil {
		return
	}
	base := FromImage(s.Image)
	levels := base.MipLevels()
	s.mips = make([]image.Image, len(levels))
	for i, lvl := range levels {
		s.mips[i] = lvl
	}
}

// ColorAt implements Shader. (x, y) is in the shader's parent coordinate
// space; it is mapped through the inverse local matrix into image
// space before sampling. When EnableMipmaps has been called, the
// local matrix's scale factor selects which pyramid level to sample,
// per spec.md §4.6's minification guidance.
func (s *ImageShader) ColorAt(x, y float64) RGBA {
	if s.Image == nil {
		return RGBA{}
	}
	inv := s.LocalMatrix.Invert()
	p := inv.TransformPoint(Point{X: x, Y: y})

	img := s.selectLevel()
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w == 0 || h == 0 {
		return RGBA{}
	}

	// Mip levels are progressively halved, so coordinates sampled
	// against the base image must scale down with the chosen level.
	baseBounds := s.Image.Bounds()
	if baseBounds.Dx() > 0 && baseBounds.Dy() > 0 {
		p.X = p.X * float64(w) / float64(baseBounds.Dx())
		p.Y = p.Y * float64(h) / float64(baseBounds.Dy())
	}

	ix, ixOK := tileImageCoord(p.X, w, s.TileX)
	iy, iyOK := tileImageCoord(p.Y, h, s.TileY)
	if !ixOK || !iyOK {
		return RGBA{}
	}

	c := img.At(bounds.Min.X+ix, bounds.Min.Y+iy)
	return FromColor(c)
}

// selectLevel picks a mipmap level from the local matrix's minifying
// scale factor: a scale factor of 0.5 (half size on screen) selects
// level 1, 0.25 selects level 2, and so on. Returns s.Image directly
// when EnableMipmaps was never called.
func (s *ImageShader) selectLevel() image.Image {
	if len(s.mips) == 0 {
		return s.Image
	}
	scale := s.LocalMatrix.MaxScaleFactor()
	if scale <= 0 {
		return s.mips[0]
	}
	level := 0
	for inv := 1.0 / scale; inv >= 2.0 && level < len(s.mips)-1; inv /= 2.0 {
		level++
	}
	return s.mips[level]
}

func tileImageCoord(v float64, size int, mode ImageTileMode) (int, bool) {
	i := int(v)
	switch mode {
	case ImageTileClamp:
		if i < 0 {
			i = 0
		}
		if i >= size {
			i = size - 1
		}
		return i, true
	case ImageTileRepeat:
		i = i % size
		if i < 0 {
			i += size
		}
		return i, true
	case ImageTileMirror:
		period := 2 * size
		i = i % period
		if i < 0 {
			i += period
		}
		if i >= size {
			i = period - 1 - i
		}
		return i, true
	case ImageTileDecal:
		if i < 0 || i >= size {
			return 0, false
		}
		return i, true
	default:
		return 0, false
	}
}

// LocalMatrixShader wraps another Shader, applying an additional local
// matrix before sampling it. Used to reposition/scale a shared
// gradient or image brush without mutating the original.
type LocalMatrixShader struct {
	Child  Shader
	Matrix Matrix
}

// NewLocalMatrixShader wraps child with an additional transform.
func NewLocalMatrixShader(child Shader, m Matrix) *LocalMatrixShader {
	return &LocalMatrixShader{Child: child, Matrix: m}
}

func (*LocalMatrixShader) shaderMarker() {}

// ColorAt implements Shader, mapping (x, y) through the inverse of
// Matrix before delegating to Child.
func (s *LocalMatrixShader) ColorAt(x, y float64) RGBA {
	if s.Child == nil {
		return RGBA{}
	}
	inv := s.Matrix.Invert()
	p := inv.TransformPoint(Point{X: x, Y: y})
	return s.Child.ColorAt(p.X, p.Y)
}

// ComposeShader samples two child shaders at the same point and
// combines them with a caller-supplied compose function (e.g. a
// Porter-Duff blend). It is a structural wrapper, not a blend-mode
// table itself — see BlendShader for the blend-mode-driven variant.
type ComposeShader struct {
	Dst, Src Shader
	Compose  func(dst, src RGBA) RGBA
}

// NewComposeShader creates a ComposeShader from two child brushes and
// a composition function.
func NewComposeShader(dst, src Shader, compose func(dst, src RGBA) RGBA) *ComposeShader {
	return &ComposeShader{Dst: dst, Src: src, Compose: compose}
}

func (*ComposeShader) shaderMarker() {}

// ColorAt implements Shader by sampling both children and combining
// them through Compose.
func (s *ComposeShader) ColorAt(x, y float64) RGBA {
	var dst, src RGBA
	if s.Dst != nil {
		dst = s.Dst.ColorAt(x, y)
	}
	if s.Src != nil {
		src = s.Src.ColorAt(x, y)
	}
	if s.Compose == nil {
		return src
	}
	return s.Compose(dst, src)
}

// BlendShader combines two child shaders under a named Porter-Duff
// blend mode evaluated per sample, per spec.md §4.6.
type BlendShader struct {
	Dst, Src Shader
	Mode     intBlend.BlendMode
}

// NewBlendShader creates a BlendShader combining dst and src under mode.
func NewBlendShader(dst, src Shader, mode intBlend.BlendMode) *BlendShader {
	return &BlendShader{Dst: dst, Src: src, Mode: mode}
}

func (*BlendShader) shaderMarker() {}

// ColorAt implements Shader by sampling both children and blending
// them with the configured blend mode, reusing the same premultiplied
// byte blend path the rasterizer uses for paint.BlendMode.
func (s *BlendShader) ColorAt(x, y float64) RGBA {
	var dst, src RGBA
	if s.Dst != nil {
		dst = s.Dst.ColorAt(x, y)
	}
	if s.Src != nil {
		src = s.Src.ColorAt(x, y)
	}

	srcR, srcG, srcB, srcA := premultiplyByte(src.R, src.G, src.B, src.A)
	dstR, dstG, dstB, dstA := premultiplyByte(dst.R, dst.G, dst.B, dst.A)

	blendFn := intBlend.GetBlendFunc(s.Mode)
	outR, outG, outB, outA := blendFn(srcR, srcG, srcB, srcA, dstR, dstG, dstB, dstA)
	return unpremultiplyByte(outR, outG, outB, outA)
}

// EmptyShader always samples as fully transparent black. It is the
// identity element for ComposeShader/BlendShader chains and a safe
// default when a Shader reference is unset.
type EmptyShader struct{}

func (EmptyShader) shaderMarker() {}

// ColorAt implements Shader, always returning transparent black.
func (EmptyShader) ColorAt(_, _ float64) RGBA {
	return RGBA{}
}
