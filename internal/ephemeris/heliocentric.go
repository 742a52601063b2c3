package ephemeris

import (
	"math"

	"github.com/sun/sungo/internal/angles"
)

// sumSeries evaluates each sub-series of a periodic table at jme and returns
// the partial sums ordered highest polynomial power first, ready for Horner
// evaluation (9, 10).
func sumSeries(series [][]periodicTerm, jme float64) []float64 {
	n := len(series)
	sums := make([]float64, n)
	for i, terms := range series {
		sum := 0.0
		for _, t := range terms {
			sum += t.a * math.Cos(t.b+t.c*jme)
		}
		sums[n-1-i] = sum
	}
	return sums
}

// HeliocentricLongitude computes the Earth heliocentric longitude L in
// degrees, limited to [0, 360) (11, 12).
func HeliocentricLongitude(jme float64) float64 {
	sums := sumSeries(longitudeTerms[:], jme)
	l := angles.Polyval(sums, jme) / 1e8
	return angles.LimitDegrees(angles.Rad2Deg(l))
}

// HeliocentricLatitude computes the Earth heliocentric latitude B in degrees.
func HeliocentricLatitude(jme float64) float64 {
	sums := sumSeries(latitudeTerms[:], jme)
	b := angles.Polyval(sums, jme) / 1e8
	return angles.Rad2Deg(b)
}

// RadiusVector computes the Earth radius vector R in astronomical units.
func RadiusVector(jme float64) float64 {
	sums := sumSeries(radiusTerms[:], jme)
	return angles.Polyval(sums, jme) / 1e8
}

// GeocentricLongitude computes Theta in degrees from the heliocentric
// longitude (13).
func GeocentricLongitude(l float64) float64 {
	return angles.LimitDegrees(l + 180.0)
}

// GeocentricLatitude computes beta in degrees from the heliocentric
// latitude (14).
func GeocentricLatitude(b float64) float64 {
	return -b
}
