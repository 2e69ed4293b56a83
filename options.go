package vgfx

// CanvasOption configures a Canvas during creation.
// Use functional options to customize Canvas behavior.
//
// Example:
//
//	// Default software rendering
//	dc := vgfx.NewCanvas(800, 600)
//
//	// Custom renderer (dependency injection)
//	dc := vgfx.NewCanvas(800, 600, vgfx.WithRenderer(myRenderer))
type CanvasOption func(*canvasOptions)

// canvasOptions holds optional configuration for Canvas creation.
type canvasOptions struct {
	renderer Renderer
	pixmap   *Pixmap
}

// defaultOptions returns the default context options.
func defaultOptions() canvasOptions {
	return canvasOptions{
		renderer: nil, // Will be set to SoftwareRenderer if nil
		pixmap:   nil, // Will be created if nil
	}
}

// WithRenderer sets a custom renderer for the Canvas.
// Use this for dependency injection of alternative rasterizer backends.
//
// Example:
//
//	customRenderer := mypackage.NewRenderer()
//	dc := vgfx.NewCanvas(800, 600, vgfx.WithRenderer(customRenderer))
func WithRenderer(r Renderer) CanvasOption {
	return func(o *canvasOptions) {
		o.renderer = r
	}
}

// WithPixmap sets a custom pixmap for the Canvas.
// The pixmap dimensions should match the Canvas dimensions.
//
// Example:
//
//	pm := vgfx.NewPixmap(800, 600)
//	dc := vgfx.NewCanvas(800, 600, vgfx.WithPixmap(pm))
func WithPixmap(pm *Pixmap) CanvasOption {
	return func(o *canvasOptions) {
		o.pixmap = pm
	}
}
