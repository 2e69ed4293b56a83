package clip

import "testing"

func TestIRect_Contains(t *testing.T) {
	r := IRect{X0: 0, Y0: 0, X1: 10, Y1: 10}
	if !r.Contains(5, 5) {
		t.Error("expected (5,5) inside")
	}
	if r.Contains(10, 5) {
		t.Error("expected (10,5) outside (half-open upper bound)")
	}
	if r.Contains(-1, 5) {
		t.Error("expected (-1,5) outside")
	}
}

func TestIRect_IntersectsAndIntersect(t *testing.T) {
	a := IRect{X0: 0, Y0: 0, X1: 10, Y1: 10}
	b := IRect{X0: 5, Y0: 5, X1: 15, Y1: 15}
	if !a.Intersects(b) {
		t.Fatal("expected a and b to intersect")
	}
	got := a.Intersect(b)
	want := IRect{X0: 5, Y0: 5, X1: 10, Y1: 10}
	if got != want {
		t.Errorf("Intersect() = %+v, want %+v", got, want)
	}

	c := IRect{X0: 20, Y0: 20, X1: 30, Y1: 30}
	if a.Intersects(c) {
		t.Error("expected a and c not to intersect")
	}
	if !a.Intersect(c).IsEmpty() {
		t.Error("expected non-overlapping Intersect to be empty")
	}
}

func TestIRect_Union(t *testing.T) {
	a := IRect{X0: 0, Y0: 0, X1: 10, Y1: 10}
	b := IRect{X0: 5, Y0: -5, X1: 20, Y1: 8}
	got := a.Union(b)
	want := IRect{X0: 0, Y0: -5, X1: 20, Y1: 10}
	if got != want {
		t.Errorf("Union() = %+v, want %+v", got, want)
	}

	var empty IRect
	if got := empty.Union(a); got != a {
		t.Errorf("Union with empty = %+v, want %+v", got, a)
	}
}

func TestFromRectRoundsOutward(t *testing.T) {
	r := Rect{X: 0.5, Y: 0.5, W: 2.2, H: 2.2}
	got := FromRect(r)
	want := IRect{X0: 0, Y0: 0, X1: 3, Y1: 3}
	if got != want {
		t.Errorf("FromRect() = %+v, want %+v", got, want)
	}
}

func TestRegion_ContainsAcrossDisjointRects(t *testing.T) {
	reg := Region{Rects: []IRect{
		{X0: 0, Y0: 0, X1: 5, Y1: 5},
		{X0: 20, Y0: 20, X1: 25, Y1: 25},
	}}
	if !reg.Contains(2, 2) {
		t.Error("expected (2,2) inside first rect")
	}
	if !reg.Contains(22, 22) {
		t.Error("expected (22,22) inside second rect")
	}
	if reg.Contains(10, 10) {
		t.Error("expected (10,10) in the gap to be outside")
	}
}

func TestRegion_BoundsSpansAllRects(t *testing.T) {
	reg := Region{Rects: []IRect{
		{X0: 0, Y0: 0, X1: 5, Y1: 5},
		{X0: 20, Y0: 20, X1: 25, Y1: 25},
	}}
	got := reg.Bounds()
	want := IRect{X0: 0, Y0: 0, X1: 25, Y1: 25}
	if got != want {
		t.Errorf("Bounds() = %+v, want %+v", got, want)
	}
}

func TestRegion_UnionKeepsBothAreas(t *testing.T) {
	a := RegionFromRect(Rect{X: 0, Y: 0, W: 5, H: 5})
	b := RegionFromRect(Rect{X: 20, Y: 20, W: 5, H: 5})
	u := a.Union(b)
	if !u.Contains(2, 2) || !u.Contains(22, 22) {
		t.Error("union should contain points from both source regions")
	}
	if len(u.Rects) != 2 {
		t.Errorf("len(Rects) = %d, want 2 (storage is non-minimal by design)", len(u.Rects))
	}
}

func TestRegion_IntersectOnlyOverlap(t *testing.T) {
	a := RegionFromRect(Rect{X: 0, Y: 0, W: 10, H: 10})
	b := RegionFromRect(Rect{X: 5, Y: 5, W: 10, H: 10})
	got := a.Intersect(b)
	if got.Contains(1, 1) {
		t.Error("(1,1) is only in a, should not be in intersection")
	}
	if !got.Contains(6, 6) {
		t.Error("(6,6) is in both a and b, should be in intersection")
	}
}

func TestRegion_IsEmpty(t *testing.T) {
	var reg Region
	if !reg.IsEmpty() {
		t.Error("zero-value Region should be empty")
	}
	reg = RegionFromRect(Rect{X: 0, Y: 0, W: 1, H: 1})
	if reg.IsEmpty() {
		t.Error("Region with a real rect should not be empty")
	}
}
