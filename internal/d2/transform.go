package d2

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

var identityT = Transform{data: [9]float64{
	1, 0, 0,
	0, 1, 0,
	0, 0, 1,
}}

func (t Transform) isIdentity() bool {
	return t == identityT
}

// Transform represents a 2D spatial transformation
// including translation and rotation.
type Transform struct {
	data [3 * 3]float64 // row major
}

// TranslateTransform returns a transform translating by v.
func TranslateTransform(v r2.Vec) Transform {
	t := identityT
	t.Set(0, 2, v.X)
	t.Set(1, 2, v.Y)
	return t
}

// RotateTransform returns a transform rotating by a radians about the origin.
// In screen coordinates (y down) positive angles rotate clockwise.
func RotateTransform(a float64) Transform {
	s, c := math.Sincos(a)
	t := identityT
	t.Set(0, 0, c)
	t.Set(0, 1, -s)
	t.Set(1, 0, s)
	t.Set(1, 1, c)
	return t
}

func (t *Transform) At(i, j int) float64 {
	return t.data[i*3+j]
}

func (t *Transform) Set(i, j int, v float64) {
	t.data[i*3+j] = v
}

// Mul multiplies 3x3 matrices. The resulting transform applies b first.
func (a Transform) Mul(b Transform) Transform {
	m := Transform{}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			m.Set(i, j, a.At(i, 0)*b.At(0, j)+a.At(i, 1)*b.At(1, j)+a.At(i, 2)*b.At(2, j))
		}
	}
	return m
}

func (t Transform) ApplyPos(b r2.Vec) r2.Vec {
	if t.isIdentity() {
		return b
	}
	return r2.Vec{
		X: t.At(0, 0)*b.X + t.At(0, 1)*b.Y + t.At(0, 2),
		Y: t.At(1, 0)*b.X + t.At(1, 1)*b.Y + t.At(1, 2),
	}
}

// ApplyBox rotates/translates a 2d bounding box and resizes for axis-alignment.
func (a Transform) ApplyBox(box Box) Box {
	if a.isIdentity() {
		return box
	}
	// http://dev.theomader.com/transform-bounding-boxes/
	r := r2.Vec{X: a.At(0, 0), Y: a.At(1, 0)}
	u := r2.Vec{X: a.At(0, 1), Y: a.At(1, 1)}
	t := r2.Vec{X: a.At(0, 2), Y: a.At(1, 2)}
	xa := r2.Scale(box.Min.X, r)
	xb := r2.Scale(box.Max.X, r)
	ya := r2.Scale(box.Min.Y, u)
	yb := r2.Scale(box.Max.Y, u)
	xa, xb = MinElem(xa, xb), MaxElem(xa, xb)
	ya, yb = MinElem(ya, yb), MaxElem(ya, yb)
	min := xa.Add(ya).Add(t)
	max := xb.Add(yb).Add(t)
	return Box{min, max}
}

// Determinant returns the determinant of a 3x3 matrix.
func (a Transform) Determinant() float64 {
	return a.At(0, 0)*(a.At(1, 1)*a.At(2, 2)-a.At(1, 2)*a.At(2, 1)) -
		a.At(0, 1)*(a.At(1, 0)*a.At(2, 2)-a.At(1, 2)*a.At(2, 0)) +
		a.At(0, 2)*(a.At(1, 0)*a.At(2, 1)-a.At(1, 1)*a.At(2, 0))
}

// Inverse returns the inverse of a 3x3 matrix.
func (a Transform) Inverse() Transform {
	m := Transform{}
	d := 1 / a.Determinant()
	m.Set(0, 0, (a.At(1, 1)*a.At(2, 2)-a.At(1, 2)*a.At(2, 1))*d)
	m.Set(0, 1, (a.At(2, 1)*a.At(0, 2)-a.At(0, 1)*a.At(2, 2))*d)
	m.Set(0, 2, (a.At(0, 1)*a.At(1, 2)-a.At(1, 1)*a.At(0, 2))*d)
	m.Set(1, 0, (a.At(1, 2)*a.At(2, 0)-a.At(2, 2)*a.At(1, 0))*d)
	m.Set(1, 1, (a.At(2, 2)*a.At(0, 0)-a.At(2, 0)*a.At(0, 2))*d)
	m.Set(1, 2, (a.At(0, 2)*a.At(1, 0)-a.At(1, 2)*a.At(0, 0))*d)
	m.Set(2, 0, (a.At(1, 0)*a.At(2, 1)-a.At(2, 0)*a.At(1, 1))*d)
	m.Set(2, 1, (a.At(2, 0)*a.At(0, 1)-a.At(0, 0)*a.At(2, 1))*d)
	m.Set(2, 2, (a.At(0, 0)*a.At(1, 1)-a.At(0, 1)*a.At(1, 0))*d)
	return m
}
