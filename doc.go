// Package vgfx provides a simple 2D graphics library for Go.
//
// # Overview
//
// vgfx is a Pure Go 2D graphics library inspired by fogleman/gg. It provides
// an immediate-mode drawing API similar to HTML Canvas, backed by a
// software scanline rasterizer.
//
// # Quick Start
//
//	import "github.com/pegasusheavy/vgfx"
//
//	// Create a drawing context (dc = drawing context convention)
//	dc := vgfx.NewCanvas(512, 512)
//
//	// Draw shapes
//	dc.SetRGB(1, 0, 0)
//	dc.DrawCircle(256, 256, 100)
//	dc.Fill()
//
//	// Save to PNG
//	dc.SavePNG("output.png")
//
// # API Compatibility
//
// The API is designed to be compatible with fogleman/gg for easy migration.
// Most fogleman/gg code should work with minimal changes.
//
// # Architecture
//
// The library is organized into:
//   - Public API: Canvas, Path, Paint, Shader, Matrix, Point
//   - Internal: raster (scanline), clip (clip stack), blend (compositing),
//     stroke (outline expansion), color (color space conversion)
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians, 0 is right, increases toward +Y (clockwise on screen)
//
// # Performance
//
// The software renderer prioritizes correctness over raw throughput.
package vgfx
