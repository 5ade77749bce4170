package circslider

import (
	"math"

	"github.com/soypat/circslider/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

const (
	pi        = math.Pi
	tau       = 2 * pi
	tolerance = 1e-9
)

// DtoR converts degrees to radians
func DtoR(degrees float64) float64 {
	return (pi / 180) * degrees
}

// RtoD converts radians to degrees
func RtoD(radians float64) float64 {
	return (180 / pi) * radians
}

// Clamp x between a and b, assume a <= b
func Clamp(x, a, b float64) float64 {
	if x < a {
		return a
	}
	if x > b {
		return b
	}
	return x
}

// Mix does a linear interpolation from x to y, a = [0,1]
func Mix(x, y, a float64) float64 {
	return x + (a * (y - x))
}

// WrapAngle maps an angle in radians to [0, 2π).
func WrapAngle(theta float64) float64 {
	theta = math.Mod(theta, tau)
	if theta < 0 {
		theta += tau
	}
	return theta
}

// Floating Point Comparisons
// See: http://floating-point-gui.de/errors/NearlyEqualsTest.java

const minNormal = 2.2250738585072014e-308 // 2**-1022

// EqualFloat64 compares two float64 values for equality.
func EqualFloat64(a, b, epsilon float64) bool {
	if a == b {
		return true
	}
	absA := math.Abs(a)
	absB := math.Abs(b)
	diff := math.Abs(a - b)
	if a == 0 || b == 0 || diff < minNormal {
		// a or b is zero or both are extremely close to it
		// relative error is less meaningful here
		return diff < (epsilon * minNormal)
	}
	// use relative error
	return diff/math.Min((absA+absB), math.MaxFloat64) < epsilon
}

// EqualPoint compares two points component-wise within an absolute tolerance.
func EqualPoint(a, b r2.Vec, tol float64) bool {
	return d2.EqualWithin(a, b, tol)
}
