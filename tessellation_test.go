package vgfx

import "testing"

func TestTessellate_Rectangle(t *testing.T) {
	p := NewPath()
	p.Rectangle(0, 0, 10, 20)

	tris := Tessellate(p, 0.5)
	if len(tris) != 2 {
		t.Fatalf("Tessellate(rect) produced %d triangles, want 2", len(tris))
	}

	total := 0.0
	for _, tri := range tris {
		total += triangleArea(tri)
	}
	if total < 199 || total > 201 {
		t.Errorf("total triangle area = %v, want ~200", total)
	}
}

func TestTessellate_EmptyPath(t *testing.T) {
	p := NewPath()
	if got := Tessellate(p, 0.5); got != nil {
		t.Errorf("Tessellate(empty path) = %v, want nil", got)
	}
}

func triangleArea(t Triangle) float64 {
	return 0.5 * absF((t.B.X-t.A.X)*(t.C.Y-t.A.Y)-(t.C.X-t.A.X)*(t.B.Y-t.A.Y))
}

func absF(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
