package vgfx

import (
	"github.com/pegasusheavy/vgfx/internal/pathops"
	"github.com/pegasusheavy/vgfx/mesh"
)

// Triangle is a single tessellated primitive, re-exported from the
// mesh package for callers that only need the public API surface.
type Triangle = mesh.Triangle

// Tessellate converts p into a triangle mesh suitable for upload to
// an external GPU renderer (see spec.md §1, "GPU is an alternative
// pluggable rasterizer"). Curves are flattened with tolerance before
// ear-clipping; sub-contours are classified outer/hole by signed area
// using the same orientation convention as PathOp.
func Tessellate(p *Path, tolerance float64) []Triangle {
	if tolerance <= 0 {
		tolerance = booleanTolerance
	}

	var contours []mesh.Contour
	for _, sp := range p.collectSubpaths() {
		pts := flattenSubpath(sp, tolerance)
		pts = dedupClosingPoint(pts)
		if len(pts) < 3 {
			continue
		}

		poly := pathops.Polygon{Points: make([]pathops.Point, len(pts))}
		for i, pt := range pts {
			poly.Points[i] = pathops.Point{X: pt.X, Y: pt.Y}
		}

		meshPts := make([]mesh.Point, len(pts))
		for i, pt := range pts {
			meshPts[i] = mesh.Point{X: pt.X, Y: pt.Y}
		}
		contours = append(contours, mesh.Contour{Points: meshPts, Hole: !poly.IsCCW()})
	}

	return mesh.Tessellate(contours)
}
