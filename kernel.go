package circslider

import (
	"errors"
	"fmt"
	"math"

	"github.com/soypat/circslider/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

var (
	// ErrInvalidInterval is returned when a source interval has zero width
	// (or NaN bounds) and no affine translation out of it exists.
	ErrInvalidInterval = errors.New("invalid interval")
	// ErrDegenerateGeometry is returned when a ray has zero length because
	// its point coincides with the center.
	ErrDegenerateGeometry = errors.New("degenerate geometry")
)

// Interval is a closed numeric range [Min, Max]. Min <= Max is not enforced.
type Interval struct {
	Min, Max float64
}

// Width returns Max-Min.
func (itv Interval) Width() float64 { return itv.Max - itv.Min }

// Degenerate returns true if the interval has zero width or NaN bounds.
func (itv Interval) Degenerate() bool {
	return itv.Min == itv.Max || math.IsNaN(itv.Min) || math.IsNaN(itv.Max)
}

// Contains returns true if val is within the interval, bounds included.
func (itv Interval) Contains(val float64) bool {
	return itv.Min <= val && val <= itv.Max
}

// Clamp limits val to the interval. Assumes Min <= Max.
func (itv Interval) Clamp(val float64) float64 {
	return Clamp(val, itv.Min, itv.Max)
}

// Translator is an affine map y = a*x + b taking one interval onto another.
type Translator struct {
	src, dst Interval
	a, b     float64
}

// NewTranslator returns the affine map from src onto dst.
// src.Min maps to dst.Min and src.Max maps to dst.Max.
func NewTranslator(src, dst Interval) (Translator, error) {
	if src.Degenerate() {
		return Translator{}, fmt.Errorf("source [%g, %g]: %w", src.Min, src.Max, ErrInvalidInterval)
	}
	a := dst.Width() / src.Width()
	return Translator{
		src: src,
		dst: dst,
		a:   a,
		b:   dst.Max - a*src.Max,
	}, nil
}

// Apply translates v from the source interval to the destination interval.
// Values outside the source interval are extrapolated, not clamped.
// The source bounds map exactly onto the destination bounds.
func (t Translator) Apply(v float64) float64 {
	switch v {
	case t.src.Min:
		return t.dst.Min
	case t.src.Max:
		return t.dst.Max
	}
	return t.a*v + t.b
}

// Inverse returns the translator mapping the destination interval back onto
// the source interval.
func (t Translator) Inverse() (Translator, error) {
	return NewTranslator(t.dst, t.src)
}

// Translate maps v from the interval [srcMin, srcMax] to the interval
// [dstMin, dstMax] using the linear function y = a*x + b where
//
//	a = (dstMax - dstMin) / (srcMax - srcMin)
//	b = dstMax - a*srcMax
//
// If the source interval has zero width Translate returns NaN and an error
// wrapping ErrInvalidInterval.
func Translate(v, srcMin, srcMax, dstMin, dstMax float64) (float64, error) {
	t, err := NewTranslator(Interval{srcMin, srcMax}, Interval{dstMin, dstMax})
	if err != nil {
		return math.NaN(), err
	}
	return t.Apply(v), nil
}

// Angle returns the angle of the ray from center to p measured from the
// positive x axis, in (-π, π]. It returns an error wrapping
// ErrDegenerateGeometry if p equals center.
func Angle(center, p r2.Vec) (float64, error) {
	pol := d2.CartesianToPolar(r2.Sub(p, center))
	if pol.R == 0 {
		return math.NaN(), fmt.Errorf("point %v at center: %w", p, ErrDegenerateGeometry)
	}
	return pol.Theta, nil
}

// AngleBetween returns the smallest angle between the rays center->p1 and
// center->p2 in radians. The result is always in [0, π].
// If p1 or p2 coincides with center AngleBetween returns NaN and an error
// wrapping ErrDegenerateGeometry.
func AngleBetween(center, p1, p2 r2.Vec) (float64, error) {
	a1, err := Angle(center, p1)
	if err != nil {
		return math.NaN(), err
	}
	a2, err := Angle(center, p2)
	if err != nil {
		return math.NaN(), err
	}
	return foldAngle(a1 - a2), nil
}

// foldAngle maps a difference of two angles in (-π, π] to the smaller
// non-reflex angle in [0, π].
func foldAngle(d float64) float64 {
	d = math.Abs(d)
	if d > pi {
		d = tau - d
	}
	return d
}
