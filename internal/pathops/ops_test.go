package pathops

import "testing"

func rectPoly(x0, y0, x1, y1 float64) Polygon {
	return Polygon{Points: []Point{
		{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1},
	}}
}

func samePolys(a, b []Polygon) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if len(a[i].Points) != len(b[i].Points) {
			return false
		}
		for j := range a[i].Points {
			if a[i].Points[j] != b[i].Points[j] {
				return false
			}
		}
	}
	return true
}

func TestCombine_EmptyOperand(t *testing.T) {
	a := PathSet{Polygons: []Polygon{rectPoly(0, 0, 10, 10)}}
	empty := PathSet{}

	tests := []struct {
		name    string
		op      Op
		wantLen int
	}{
		{"union with empty", Union, 1},
		{"intersect with empty", Intersect, 0},
		{"difference with empty", Difference, 1},
		{"xor with empty", Xor, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Combine(a, empty, tt.op)
			if len(got.Polygons) != tt.wantLen {
				t.Errorf("Combine(A, empty, %v) produced %d polygons, want %d", tt.op, len(got.Polygons), tt.wantLen)
			}
		})
	}
}

func TestCombine_DisjointBounds(t *testing.T) {
	a := PathSet{Polygons: []Polygon{rectPoly(0, 0, 10, 10)}}
	b := PathSet{Polygons: []Polygon{rectPoly(100, 100, 110, 110)}}

	if got := Combine(a, b, Union); len(got.Polygons) != 2 {
		t.Errorf("disjoint Union produced %d polygons, want 2", len(got.Polygons))
	}
	if got := Combine(a, b, Intersect); len(got.Polygons) != 0 {
		t.Errorf("disjoint Intersect produced %d polygons, want 0", len(got.Polygons))
	}
	if got := Combine(a, b, Difference); len(got.Polygons) != 1 {
		t.Errorf("disjoint Difference produced %d polygons, want 1", len(got.Polygons))
	}
}

func TestCombine_Intersect_Overlapping(t *testing.T) {
	a := PathSet{Polygons: []Polygon{rectPoly(0, 0, 10, 10)}}
	b := PathSet{Polygons: []Polygon{rectPoly(5, 5, 15, 15)}}

	got := Combine(a, b, Intersect)
	if len(got.Polygons) != 1 {
		t.Fatalf("Intersect produced %d polygons, want 1", len(got.Polygons))
	}
	minX, minY, maxX, maxY := got.Polygons[0].Bounds()
	if minX != 5 || minY != 5 || maxX != 10 || maxY != 10 {
		t.Errorf("Intersect bounds = (%v,%v,%v,%v), want (5,5,10,10)", minX, minY, maxX, maxY)
	}
}

func TestCombine_Union_FullyContained(t *testing.T) {
	outer := rectPoly(0, 0, 20, 20)
	inner := rectPoly(5, 5, 10, 10)
	a := PathSet{Polygons: []Polygon{outer}}
	b := PathSet{Polygons: []Polygon{inner}}

	got := Combine(a, b, Union)
	if len(got.Polygons) != 1 {
		t.Fatalf("Union of nested rects produced %d polygons, want 1 (inner discarded)", len(got.Polygons))
	}
}

func TestCombine_Difference_FullyContainedClip(t *testing.T) {
	subject := rectPoly(0, 0, 10, 10)
	clip := rectPoly(-5, -5, 20, 20)
	a := PathSet{Polygons: []Polygon{subject}}
	b := PathSet{Polygons: []Polygon{clip}}

	got := Combine(a, b, Difference)
	if len(got.Polygons) != 0 {
		t.Errorf("Difference with fully-containing clip produced %d polygons, want 0", len(got.Polygons))
	}
}

func TestCombine_Difference_PartialOverlapRetainsSubject(t *testing.T) {
	// Documented approximation: partial overlap retains the full subject.
	subject := rectPoly(0, 0, 10, 10)
	clip := rectPoly(5, 5, 15, 15)
	a := PathSet{Polygons: []Polygon{subject}}
	b := PathSet{Polygons: []Polygon{clip}}

	got := Combine(a, b, Difference)
	if len(got.Polygons) != 1 {
		t.Fatalf("partial Difference produced %d polygons, want 1", len(got.Polygons))
	}
	minX, minY, maxX, maxY := got.Polygons[0].Bounds()
	if minX != 0 || minY != 0 || maxX != 10 || maxY != 10 {
		t.Errorf("partial Difference altered the subject bounds: got (%v,%v,%v,%v)", minX, minY, maxX, maxY)
	}
}

func TestCombine_Xor_Disjoint(t *testing.T) {
	a := PathSet{Polygons: []Polygon{rectPoly(0, 0, 10, 10)}}
	b := PathSet{Polygons: []Polygon{rectPoly(20, 20, 30, 30)}}

	got := Combine(a, b, Xor)
	if len(got.Polygons) != 2 {
		t.Errorf("Xor of disjoint rects produced %d polygons, want 2", len(got.Polygons))
	}
}

func TestCombine_ReverseDifference(t *testing.T) {
	a := PathSet{Polygons: []Polygon{rectPoly(0, 0, 10, 10)}}
	b := PathSet{Polygons: []Polygon{rectPoly(-5, -5, 20, 20)}}

	// ReverseDifference(a, b) == Difference(b, a): b fully contains a,
	// so subtracting a from b retains b minus nothing discardable here
	// only when a does not contain b — assert via the defining identity.
	got := Combine(a, b, ReverseDifference)
	want := Combine(b, a, Difference)
	if !samePolys(got.Polygons, want.Polygons) {
		t.Errorf("ReverseDifference(a,b) != Difference(b,a)")
	}
}

func TestSimplify_IsUnionWithEmpty(t *testing.T) {
	a := PathSet{Polygons: []Polygon{rectPoly(0, 0, 10, 10)}}
	got := Simplify(a)
	want := Combine(a, PathSet{}, Union)
	if !samePolys(got.Polygons, want.Polygons) {
		t.Errorf("Simplify(a) != Combine(a, empty, Union)")
	}
}

func TestPolygon_SignedAreaAndOrientation(t *testing.T) {
	ccw := Polygon{Points: []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}}
	if !ccw.IsCCW() {
		t.Error("expected CCW rectangle to report IsCCW() == true")
	}
	cw := ccw.Reversed()
	if cw.IsCCW() {
		t.Error("expected reversed rectangle to report IsCCW() == false")
	}
}

func TestPolygon_ContainsPoint(t *testing.T) {
	square := rectPoly(0, 0, 10, 10)
	tests := []struct {
		name string
		pt   Point
		want bool
	}{
		{"center", Point{5, 5}, true},
		{"outside", Point{15, 15}, false},
		{"far outside negative", Point{-5, -5}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := square.ContainsPoint(tt.pt); got != tt.want {
				t.Errorf("ContainsPoint(%v) = %v, want %v", tt.pt, got, tt.want)
			}
		})
	}
}

func TestSutherlandHodgman_RectClip(t *testing.T) {
	subject := rectPoly(0, 0, 10, 10)
	clip := rectPoly(5, -5, 20, 20)

	got := SutherlandHodgman(subject, clip)
	if len(got.Points) < 3 {
		t.Fatalf("expected a non-empty clipped polygon, got %d points", len(got.Points))
	}
	minX, minY, maxX, maxY := got.Bounds()
	if minX != 5 || minY != 0 || maxX != 10 || maxY != 10 {
		t.Errorf("clip bounds = (%v,%v,%v,%v), want (5,0,10,10)", minX, minY, maxX, maxY)
	}
}
