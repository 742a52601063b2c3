package solar

import (
	"math"

	"github.com/sun/sungo/internal/angles"
)

// Sun mean longitude polynomial in JME, coefficients ordered highest degree
// first (A2).
var sunMeanLongitudeCoeffs = []float64{-1.0 / 2000000, -1.0 / 15300, 1.0 / 49931, 0.03032028, 360007.6982779, 280.4664567}

// EquationOfTime holds the Sun's mean longitude M, in degrees, and the
// equation of time E, in minutes: the difference between solar apparent and
// mean time.
type EquationOfTime struct {
	SunMeanLongitude float64 `json:"sun_mean_longitude"`
	Minutes          float64 `json:"minutes"`
}

// SunMeanLongitude computes M, in degrees, limited to [0, 360) (A2).
func SunMeanLongitude(jme float64) float64 {
	return angles.LimitDegrees(angles.Polyval(sunMeanLongitudeCoeffs, jme))
}

// ComputeEquationOfTime derives the equation of time from a position
// snapshot (A1). The mean longitude is re-derived from the snapshot's Julian
// millennium.
func ComputeEquationOfTime(p Position) EquationOfTime {
	m := SunMeanLongitude(p.JulianMillennium)
	e := 4 * (m - 0.0057183 - p.RightAscension + p.NutationLongitude*math.Cos(angles.Deg2Rad(p.TrueObliquity)))
	// Right ascension wraps at 360, which can push the raw value across a
	// full-day boundary.
	if e > 20 {
		e -= 1440
	} else if e < -20 {
		e += 1440
	}
	return EquationOfTime{SunMeanLongitude: m, Minutes: e}
}
