package mesh

import (
	"math"
	"testing"

	"github.com/goki/mat32"
)

func TestNewGridLayout(t *testing.T) {
	g := NewGrid(4, 3, 2)
	if len(g.Vertices()) != 12 || len(g.Normals()) != 12 {
		t.Fatalf("expected 12 vertices and normals, got %d and %d",
			len(g.Vertices()), len(g.Normals()))
	}
	v := g.Vertices()[2*4+3] // row 2, col 3
	if v.X != 6 || v.Y != 4 || v.Z != 0 {
		t.Errorf("unexpected vertex position: %+v", v)
	}
	for i, n := range g.Normals() {
		if (n != mat32.Vec3{Z: 1}) {
			t.Fatalf("normal %d not up: %+v", i, n)
		}
	}
}

func TestRecomputeNormalsFlat(t *testing.T) {
	g := NewGrid(8, 8, 1)
	g.RecomputeNormals()
	for i, n := range g.Normals() {
		if (n != mat32.Vec3{Z: 1}) {
			t.Fatalf("flat field normal %d tilted: %+v", i, n)
		}
	}
}

func TestRecomputeNormalsSlope(t *testing.T) {
	// Height rising along +x tilts normals toward -x.
	g := NewGrid(8, 8, 1)
	vs := g.Vertices()
	for i := range vs {
		vs[i].Z = vs[i].X * 0.5
	}
	g.RecomputeNormals()

	for i, n := range g.Normals() {
		if n.X >= 0 {
			t.Fatalf("normal %d does not lean against the slope: %+v", i, n)
		}
		if n.Y != 0 {
			t.Errorf("normal %d has y tilt on an x-only slope: %+v", i, n)
		}
		if l := n.Length(); math.Abs(float64(l)-1) > 1e-5 {
			t.Errorf("normal %d not unit length: %v", i, l)
		}
		if n.Z <= 0 {
			t.Errorf("normal %d lost its upward component: %+v", i, n)
		}
	}
}

func TestHeightAt(t *testing.T) {
	g := NewGrid(5, 5, 1)
	g.Vertices()[3*5+2].Z = 1.25
	if h := g.HeightAt(2, 3); h != 1.25 {
		t.Errorf("expected height 1.25, got %v", h)
	}
}
