package transform

import (
	"math"

	"github.com/sun/sungo/internal/angles"
)

// RefractionCorrection computes the atmospheric refraction correction,
// delta e, in degrees (42). Pressure is in millibars, temperature in degrees
// Celsius. The correction applies only while the uncorrected elevation e0 is
// at or above h0Prime; below that the refraction model is not valid and the
// correction is zero.
func RefractionCorrection(pressure, temperature, e0, h0Prime float64) float64 {
	if e0 < h0Prime {
		return 0
	}
	e0Prime := angles.Deg2Rad(e0 + 10.3/(e0+5.11))
	return (pressure / 1010.0) * (283.0 / (273 + temperature)) * (1.02 / (60 * math.Tan(e0Prime)))
}

// ZenithAngle computes the topocentric zenith angle, in degrees, from the
// refraction-corrected elevation angle (43, 44).
func ZenithAngle(e float64) float64 {
	return 90.0 - e
}
