package render

import (
	"math"

	"golang.org/x/image/math/f64"
)

// Point is a position in whatever space the current transform maps from.
type Point struct {
	X, Y float64
}

// Affine is a 2D affine transform stored as a row-major 2x3 matrix:
//
//	x' = A*x + B*y + C
//	y' = D*x + E*y + F
//
// The builder methods (Translate, Scale, Rotate) work in the local frame:
// m.Translate(1, 0) moves points by one unit before m is applied.
type Affine struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity transform.
func Identity() Affine {
	return Affine{A: 1, E: 1}
}

// Translation returns a pure translation.
func Translation(x, y float64) Affine {
	return Affine{A: 1, C: x, E: 1, F: y}
}

// Scaling returns a pure axis-aligned scale.
func Scaling(sx, sy float64) Affine {
	return Affine{A: sx, E: sy}
}

// Rotation returns a rotation by deg degrees, clockwise on a y-down surface.
func Rotation(deg float64) Affine {
	rad := deg * math.Pi / 180.0
	sin, cos := math.Sincos(rad)
	// Snap quarter turns so 90 degrees is exactly (0,1).
	if math.Mod(deg, 90) == 0 {
		sin, cos = math.Round(sin), math.Round(cos)
	}
	return Affine{
		A: cos, B: -sin,
		D: sin, E: cos,
	}
}

// Mul returns m*n: n is applied first, then m.
func (m Affine) Mul(n Affine) Affine {
	return Affine{
		A: m.A*n.A + m.B*n.D,
		B: m.A*n.B + m.B*n.E,
		C: m.A*n.C + m.B*n.F + m.C,
		D: m.D*n.A + m.E*n.D,
		E: m.D*n.B + m.E*n.E,
		F: m.D*n.C + m.E*n.F + m.F,
	}
}

// Translate appends a translation in the local frame.
func (m Affine) Translate(x, y float64) Affine {
	return m.Mul(Translation(x, y))
}

// Scale appends a scale in the local frame.
func (m Affine) Scale(sx, sy float64) Affine {
	return m.Mul(Scaling(sx, sy))
}

// Rotate appends a rotation in the local frame.
func (m Affine) Rotate(deg float64) Affine {
	return m.Mul(Rotation(deg))
}

// Apply maps p through m.
func (m Affine) Apply(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// Det is the determinant of the linear part.
func (m Affine) Det() float64 {
	return m.A*m.E - m.B*m.D
}

// Degenerate reports whether m collapses area and cannot be inverted.
func (m Affine) Degenerate() bool {
	return math.Abs(m.Det()) < 1e-12
}

// Invert returns the inverse of m. ok is false for degenerate transforms.
func (m Affine) Invert() (inv Affine, ok bool) {
	det := m.Det()
	if math.Abs(det) < 1e-12 {
		return Affine{}, false
	}
	d := 1.0 / det
	return Affine{
		A: m.E * d,
		B: -m.B * d,
		C: (m.B*m.F - m.C*m.E) * d,
		D: -m.D * d,
		E: m.A * d,
		F: (m.C*m.D - m.A*m.F) * d,
	}, true
}

// AxisScale returns the lengths that one local unit along x and along y
// have after m is applied.
func (m Affine) AxisScale() (sx, sy float64) {
	return math.Hypot(m.A, m.D), math.Hypot(m.B, m.E)
}

// RotationDegrees returns the angle of the transformed x axis, normalized
// to [0, 360).
func (m Affine) RotationDegrees() float64 {
	deg := math.Atan2(m.D, m.A) * 180.0 / math.Pi
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	// Keep 359.9999999 from leaking out of quarter-turn transforms.
	if r := math.Round(deg); math.Abs(deg-r) < 1e-9 {
		deg = math.Mod(r, 360)
	}
	return deg
}

// Placement returns the translate+rotate part of m, dropping scale.
func (m Affine) Placement() Affine {
	return Translation(m.C, m.F).Rotate(m.RotationDegrees())
}

// Aff3 converts m to the x/image representation.
func (m Affine) Aff3() f64.Aff3 {
	return f64.Aff3{m.A, m.B, m.C, m.D, m.E, m.F}
}

// ApproxEqual compares two transforms element-wise within eps.
func (m Affine) ApproxEqual(n Affine, eps float64) bool {
	return math.Abs(m.A-n.A) <= eps && math.Abs(m.B-n.B) <= eps &&
		math.Abs(m.C-n.C) <= eps && math.Abs(m.D-n.D) <= eps &&
		math.Abs(m.E-n.E) <= eps && math.Abs(m.F-n.F) <= eps
}
