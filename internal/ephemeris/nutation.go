package ephemeris

import (
	"math"

	"github.com/sun/sungo/internal/angles"
)

// Fundamental lunisolar argument polynomials in JCE, coefficients ordered
// highest degree first (15-19).
var (
	// Mean elongation of the Moon from the Sun.
	meanElongationMoonSun = []float64{1.0 / 189474, -0.0019142, 445267.111480, 297.85036}
	// Mean anomaly of the Sun (Earth).
	meanAnomalySun = []float64{-1.0 / 3e5, -0.0001603, 35999.050340, 357.52772}
	// Mean anomaly of the Moon.
	meanAnomalyMoon = []float64{1.0 / 56250, 0.0086972, 477198.867398, 134.96298}
	// Moon's argument of latitude.
	moonArgumentLatitude = []float64{1.0 / 327270, -0.0036825, 483202.017538, 93.27191}
	// Longitude of the ascending node of the Moon's mean orbit on the
	// ecliptic, measured from the mean equinox of the date.
	moonAscendingNode = []float64{1.0 / 45e4, 0.0020708, -1934.136261, 125.04452}
)

// Mean obliquity of the ecliptic polynomial in JME/10, arcseconds (24).
var meanObliquityCoeffs = []float64{2.45, 5.79, 27.87, 7.12, -39.05, -249.67, -51.38, 1999.25, -1.55, -4680.93, 84381.448}

// nutationPhases computes the phase angle of every nutation term in radians:
// the dot product of the five fundamental arguments with the term's integer
// multipliers (15-19 and the X.Y part of 20, 21). Both nutation components
// reuse this one array so they stay numerically consistent.
func nutationPhases(jce float64) [len(nutationTerms)]float64 {
	x := [5]float64{
		angles.Polyval(meanElongationMoonSun, jce),
		angles.Polyval(meanAnomalySun, jce),
		angles.Polyval(meanAnomalyMoon, jce),
		angles.Polyval(moonArgumentLatitude, jce),
		angles.Polyval(moonAscendingNode, jce),
	}
	var phases [len(nutationTerms)]float64
	for i, term := range nutationTerms {
		xy, err := angles.Dot(x[:], term.y[:])
		if err != nil {
			// Both vectors have fixed length 5.
			panic(err)
		}
		phases[i] = angles.Deg2Rad(xy)
	}
	return phases
}

// Nutation computes the nutation in longitude (delta psi) and in obliquity
// (delta epsilon), both in degrees (20-23).
func Nutation(jce float64) (deltaPsi, deltaEpsilon float64) {
	phases := nutationPhases(jce)
	for i, term := range nutationTerms {
		deltaPsi += (term.a + term.b*jce) * math.Sin(phases[i])
		deltaEpsilon += (term.c + term.d*jce) * math.Cos(phases[i])
	}
	deltaPsi /= 36e6
	deltaEpsilon /= 36e6
	return deltaPsi, deltaEpsilon
}

// TrueObliquity computes the true obliquity of the ecliptic epsilon in
// degrees from JME and the nutation in obliquity (24, 25).
func TrueObliquity(jme, deltaEpsilon float64) float64 {
	u := jme / 10
	e0 := angles.Polyval(meanObliquityCoeffs, u)
	return e0/3600 + deltaEpsilon
}
