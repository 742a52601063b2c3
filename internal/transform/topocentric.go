// Package transform converts geocentric sun coordinates to the observer's
// topocentric frame and projects them onto tilted surfaces. Equation numbers
// refer to Reda & Andreas (NREL, 2004).
package transform

import (
	"math"

	"github.com/sun/sungo/internal/angles"
)

// equatorialRadiusM is the Earth equatorial radius used by the flattened-Earth
// reduction terms, in meters.
const equatorialRadiusM = 6378140.0

// flattening is the Earth flattening factor of the reduction terms.
const flattening = 0.99664719

// Observer holds a ground observer's geodetic latitude and elevation together
// with the flattened-Earth reduction terms x, y. The terms are precomputed
// once so they can be reused across many position lookups.
type Observer struct {
	LatitudeDeg float64
	ElevationM  float64
	X, Y        float64 // reduction terms (35, 36)
}

// NewObserver creates an Observer from a geodetic latitude in degrees and an
// elevation in meters (34, 35, 36).
func NewObserver(latitudeDeg, elevationM float64) Observer {
	phi := angles.Deg2Rad(latitudeDeg)
	u := math.Atan(flattening * math.Tan(phi))
	x := math.Cos(u) + elevationM*math.Cos(phi)/equatorialRadiusM
	y := flattening*math.Sin(u) + elevationM*math.Sin(phi)/equatorialRadiusM
	return Observer{
		LatitudeDeg: latitudeDeg,
		ElevationM:  elevationM,
		X:           x,
		Y:           y,
	}
}

// HorizontalParallax computes the equatorial horizontal parallax of the Sun,
// xi, in degrees, from the Earth radius vector in AU (33).
func HorizontalParallax(r float64) float64 {
	return 8.794 / (3600 * r)
}

// LocalHourAngle computes the observer local hour angle, in degrees, limited
// to [0, 360) (32). Longitude is positive east of Greenwich.
func LocalHourAngle(nu, longitudeDeg, alpha float64) float64 {
	return angles.LimitDegrees(nu + longitudeDeg - alpha)
}

// Position holds the sun coordinates shifted to the observer's location.
type Position struct {
	RightAscensionDeg float64
	DeclinationDeg    float64
	HourAngleDeg      float64
}

// Topocentric applies the parallax correction to geocentric right ascension
// and declination (both in degrees) at local hour angle h, producing the
// topocentric sun position (37-40).
func Topocentric(obs Observer, alpha, delta, xi, h float64) Position {
	sinXi := math.Sin(angles.Deg2Rad(xi))
	sinH := math.Sin(angles.Deg2Rad(h))
	cosH := math.Cos(angles.Deg2Rad(h))
	cosDelta := math.Cos(angles.Deg2Rad(delta))

	deltaAlpha := angles.Rad2Deg(math.Atan2(-obs.X*sinXi*sinH, cosDelta-obs.X*sinXi*cosH))
	deltaPrime := angles.Rad2Deg(math.Atan2(
		math.Sin(angles.Deg2Rad(delta))-obs.Y*sinXi*math.Cos(angles.Deg2Rad(deltaAlpha)),
		cosDelta-obs.X*sinXi*cosH))

	return Position{
		RightAscensionDeg: alpha + deltaAlpha,
		DeclinationDeg:    deltaPrime,
		HourAngleDeg:      h - deltaAlpha,
	}
}

// ElevationAngle computes the topocentric elevation angle, in degrees,
// without refraction correction (41). The same formula gives the sun
// altitude of the rise/set refinement (A12).
func ElevationAngle(latitudeDeg, deltaPrime, hPrime float64) float64 {
	phi := angles.Deg2Rad(latitudeDeg)
	d := angles.Deg2Rad(deltaPrime)
	return angles.Rad2Deg(math.Asin(math.Sin(phi)*math.Sin(d) + math.Cos(phi)*math.Cos(d)*math.Cos(angles.Deg2Rad(hPrime))))
}
