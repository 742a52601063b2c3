// Package angles provides the degree-domain helpers shared by the solar
// position engines: range reduction, polynomial evaluation and dot products.
package angles

import (
	"errors"
	"fmt"
	"math"
)

const (
	deg2rad = math.Pi / 180.0
	rad2deg = 180.0 / math.Pi
)

// ErrDimensionMismatch is returned by Dot when the vectors differ in length.
var ErrDimensionMismatch = errors.New("vectors have different lengths")

// Deg2Rad converts degrees to radians.
func Deg2Rad(deg float64) float64 {
	return deg * deg2rad
}

// Rad2Deg converts radians to degrees.
func Rad2Deg(rad float64) float64 {
	return rad * rad2deg
}

// LimitDegrees reduces an angle to the range [0, 360).
func LimitDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360.0)
	if deg < 0 {
		deg += 360.0
	}
	return deg
}

// LimitDegrees180 reduces an angle to the range [0, 180).
func LimitDegrees180(deg float64) float64 {
	deg = math.Mod(deg, 180.0)
	if deg < 0 {
		deg += 180.0
	}
	return deg
}

// LimitDegreesPm180 reduces an angle to the range [-180, 180]. Both
// endpoints map to themselves.
func LimitDegreesPm180(deg float64) float64 {
	deg = math.Mod(deg, 360.0)
	if deg < -180.0 {
		deg += 360.0
	}
	if deg > 180.0 {
		deg -= 360.0
	}
	return deg
}

// LimitZeroToOne reduces a value to the range [0, 1).
func LimitZeroToOne(v float64) float64 {
	v = math.Mod(v, 1.0)
	if v < 0 {
		v += 1.0
	}
	return v
}

// Polyval evaluates a polynomial at x using Horner's method.
// Coefficients are ordered highest degree first.
func Polyval(coeffs []float64, x float64) float64 {
	result := 0.0
	for _, c := range coeffs {
		result = result*x + c
	}
	return result
}

// Dot computes the dot product of a and b.
func Dot(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("dot: %w: %d != %d", ErrDimensionMismatch, len(a), len(b))
	}
	sum := 0.0
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum, nil
}
