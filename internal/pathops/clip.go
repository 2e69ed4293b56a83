package pathops

// SutherlandHodgman clips subject against a convex clip polygon,
// returning the resulting (possibly empty) polygon. clip must be
// convex; subject may be arbitrary but non-convex subjects against a
// convex clip still produce a correct single-contour result because
// each clip edge only ever removes a half-plane.
func SutherlandHodgman(subject, clip Polygon) Polygon {
	output := subject.Points
	if len(output) == 0 || len(clip.Points) < 3 {
		return Polygon{}
	}

	n := len(clip.Points)
	for i := 0; i < n; i++ {
		if len(output) == 0 {
			break
		}
		a := clip.Points[i]
		b := clip.Points[(i+1)%n]
		output = clipEdge(output, a, b)
	}
	return Polygon{Points: output}
}

// clipEdge clips a point list against the half-plane to the left of
// directed edge a->b (inside iff the point is on the left, matching a
// CCW clip polygon; a CW clip polygon flips "left"/"right" uniformly
// so the result is still correct relative to the polygon's own
// interior).
func clipEdge(points []Point, a, b Point) []Point {
	var out []Point
	n := len(points)
	for i := 0; i < n; i++ {
		cur := points[i]
		prev := points[(i-1+n)%n]

		curIn := isLeft(a, b, cur) >= 0
		prevIn := isLeft(a, b, prev) >= 0

		if curIn {
			if !prevIn {
				if ip, ok := lineIntersect(prev, cur, a, b); ok {
					out = append(out, ip)
				}
			}
			out = append(out, cur)
		} else if prevIn {
			if ip, ok := lineIntersect(prev, cur, a, b); ok {
				out = append(out, ip)
			}
		}
	}
	return out
}

// isLeft returns >0 if pt is left of directed line a->b, <0 if right,
// 0 if collinear.
func isLeft(a, b, pt Point) float64 {
	return (b.X-a.X)*(pt.Y-a.Y) - (b.Y-a.Y)*(pt.X-a.X)
}

// lineIntersect finds the intersection of segment p1-p2 with the
// infinite line through a-b. Returns ok=false for (near-)parallel
// lines, matching the package's fixed absolute-epsilon policy.
func lineIntersect(p1, p2, a, b Point) (Point, bool) {
	d1x, d1y := p2.X-p1.X, p2.Y-p1.Y
	d2x, d2y := b.X-a.X, b.Y-a.Y

	denom := d1x*d2y - d1y*d2x
	if denom > -1e-10 && denom < 1e-10 {
		return Point{}, false
	}

	t := ((a.X-p1.X)*d2y - (a.Y-p1.Y)*d2x) / denom
	return Point{X: p1.X + t*d1x, Y: p1.Y + t*d1y}, true
}
