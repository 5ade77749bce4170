package circslider

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/soypat/glgl/math/ms2"
)

// Single precision variants of the kernel. These follow the float64 functions
// exactly, including the error policy, for callers working with float32
// view coordinates.

// Translate32 is the float32 version of Translate.
func Translate32(v, srcMin, srcMax, dstMin, dstMax float32) (float32, error) {
	if srcMin == srcMax || math32.IsNaN(srcMin) || math32.IsNaN(srcMax) {
		return math32.NaN(), fmt.Errorf("source [%g, %g]: %w", srcMin, srcMax, ErrInvalidInterval)
	}
	switch v {
	case srcMin:
		return dstMin, nil
	case srcMax:
		return dstMax, nil
	}
	a := (dstMax - dstMin) / (srcMax - srcMin)
	b := dstMax - a*srcMax
	return a*v + b, nil
}

// AngleBetween32 is the float32 version of AngleBetween.
func AngleBetween32(center, p1, p2 ms2.Vec) (float32, error) {
	d1 := ms2.Sub(p1, center)
	d2 := ms2.Sub(p2, center)
	if d1 == (ms2.Vec{}) || d2 == (ms2.Vec{}) {
		return math32.NaN(), fmt.Errorf("point at center: %w", ErrDegenerateGeometry)
	}
	d := math32.Abs(math32.Atan2(d1.Y, d1.X) - math32.Atan2(d2.Y, d2.X))
	if d > math32.Pi {
		d = 2*math32.Pi - d
	}
	return d, nil
}
