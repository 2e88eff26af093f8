package render

import "testing"

func TestAffineMulOrder(t *testing.T) {
	// Translate then scale in the local frame: scale applies to the point
	// first, then the translation.
	m := Translation(10, 20).Scale(2, 3)
	got := m.Apply(Point{X: 1, Y: 1})
	if got != (Point{X: 12, Y: 23}) {
		t.Fatalf("got %+v, want (12,23)", got)
	}
}

func TestRotationQuarterTurnsAreExact(t *testing.T) {
	tests := []struct {
		deg  float64
		want Point
	}{
		{0, Point{X: 1, Y: 0}},
		{90, Point{X: 0, Y: 1}},
		{180, Point{X: -1, Y: 0}},
		{270, Point{X: 0, Y: -1}},
	}
	for _, tt := range tests {
		got := Rotation(tt.deg).Apply(Point{X: 1, Y: 0})
		if got != tt.want {
			t.Fatalf("Rotation(%v) maps (1,0) to %+v, want %+v", tt.deg, got, tt.want)
		}
		if r := Rotation(tt.deg).RotationDegrees(); r != tt.deg {
			t.Fatalf("RotationDegrees = %v, want %v", r, tt.deg)
		}
	}
}

func TestInvert(t *testing.T) {
	m := Translation(5, -3).Rotate(90).Scale(2, 4)
	inv, ok := m.Invert()
	if !ok {
		t.Fatal("Invert reported degenerate")
	}
	if !m.Mul(inv).ApproxEqual(Identity(), 1e-12) {
		t.Fatalf("m*inv = %+v, want identity", m.Mul(inv))
	}
	if _, ok := (Affine{}).Invert(); ok {
		t.Fatal("zero matrix should not invert")
	}
}

func TestPlacementDropsScale(t *testing.T) {
	m := Translation(7, 9).Scale(15, 15).Rotate(90)
	p := m.Placement()
	sx, sy := p.AxisScale()
	if !near(sx, 1) || !near(sy, 1) {
		t.Fatalf("placement scale = %v,%v, want 1,1", sx, sy)
	}
	if p.C != 7 || p.F != 9 {
		t.Fatalf("placement translation = %v,%v, want 7,9", p.C, p.F)
	}
	if p.RotationDegrees() != 90 {
		t.Fatalf("placement rotation = %v, want 90", p.RotationDegrees())
	}
}

func TestAff3(t *testing.T) {
	m := Affine{A: 1, B: 2, C: 3, D: 4, E: 5, F: 6}
	a := m.Aff3()
	for i, want := range []float64{1, 2, 3, 4, 5, 6} {
		if a[i] != want {
			t.Fatalf("Aff3[%d] = %v, want %v", i, a[i], want)
		}
	}
}
