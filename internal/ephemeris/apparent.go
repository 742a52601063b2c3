package ephemeris

import (
	"math"

	"github.com/sun/sungo/internal/angles"
)

// AberrationCorrection computes delta tau in degrees from the Earth radius
// vector in AU (26).
func AberrationCorrection(r float64) float64 {
	return -20.4898 / (3600 * r)
}

// ApparentSunLongitude computes lambda in degrees (27).
func ApparentSunLongitude(theta, deltaPsi, deltaTau float64) float64 {
	return theta + deltaPsi + deltaTau
}

// ApparentSiderealTime computes the apparent sidereal time at Greenwich, nu,
// in degrees (28, 29). jc is the Julian Century derived from the Julian Day,
// not the ephemeris day.
func ApparentSiderealTime(jd, jc, deltaPsi, epsilon float64) float64 {
	nu0 := angles.LimitDegrees(280.46061837 + 360.98564736629*(jd-j2000) + 0.000387933*(jc*jc) - (jc*jc*jc)/38710000.0)
	return nu0 + deltaPsi*math.Cos(angles.Deg2Rad(epsilon))
}

// RightAscension computes the geocentric sun right ascension alpha in
// degrees, limited to [0, 360) (30).
func RightAscension(lambda, epsilon, beta float64) float64 {
	l := angles.Deg2Rad(lambda)
	e := angles.Deg2Rad(epsilon)
	alpha := math.Atan2(math.Sin(l)*math.Cos(e)-math.Tan(angles.Deg2Rad(beta))*math.Sin(e), math.Cos(l))
	return angles.LimitDegrees(angles.Rad2Deg(alpha))
}

// Declination computes the geocentric sun declination delta in degrees (31).
func Declination(beta, epsilon, lambda float64) float64 {
	b := angles.Deg2Rad(beta)
	e := angles.Deg2Rad(epsilon)
	l := angles.Deg2Rad(lambda)
	return angles.Rad2Deg(math.Asin(math.Sin(b)*math.Cos(e) + math.Cos(b)*math.Sin(e)*math.Sin(l)))
}

// SunCoordinates computes the geocentric right ascension and declination of
// the Sun at the given unix millisecond time, running the full
// heliocentric-to-apparent chain.
func SunCoordinates(timeMillis int64, deltaT float64) (alpha, delta float64) {
	jd := JulianDay(timeMillis)
	jde := JulianEphemerisDay(jd, deltaT)
	jce := JulianCentury(jde)
	jme := JulianMillennium(jce)
	l := HeliocentricLongitude(jme)
	b := HeliocentricLatitude(jme)
	r := RadiusVector(jme)
	theta := GeocentricLongitude(l)
	beta := GeocentricLatitude(b)
	deltaPsi, deltaEpsilon := Nutation(jce)
	epsilon := TrueObliquity(jme, deltaEpsilon)
	lambda := ApparentSunLongitude(theta, deltaPsi, AberrationCorrection(r))
	alpha = RightAscension(lambda, epsilon, beta)
	delta = Declination(beta, epsilon, lambda)
	return alpha, delta
}

// GreenwichSiderealTime computes the apparent sidereal time at Greenwich, in
// degrees, for the given unix millisecond time. deltaT enters only through
// the nutation and obliquity terms.
func GreenwichSiderealTime(timeMillis int64, deltaT float64) float64 {
	jd := JulianDay(timeMillis)
	jde := JulianEphemerisDay(jd, deltaT)
	jce := JulianCentury(jde)
	jme := JulianMillennium(jce)
	deltaPsi, deltaEpsilon := Nutation(jce)
	epsilon := TrueObliquity(jme, deltaEpsilon)
	jc := JulianCentury(jd)
	return ApparentSiderealTime(jd, jc, deltaPsi, epsilon)
}
