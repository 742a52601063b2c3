package transform

import (
	"math"

	"github.com/sun/sungo/internal/angles"
)

// AstronomersAzimuth computes the topocentric astronomers azimuth angle,
// Gamma, in degrees [0, 360), measured westward from south (45).
func AstronomersAzimuth(hPrime, latitudeDeg, deltaPrime float64) float64 {
	phi := angles.Deg2Rad(latitudeDeg)
	h := angles.Deg2Rad(hPrime)
	gamma := math.Atan2(math.Sin(h), math.Cos(h)*math.Sin(phi)-math.Tan(angles.Deg2Rad(deltaPrime))*math.Cos(phi))
	return angles.LimitDegrees(angles.Rad2Deg(gamma))
}

// Azimuth converts the astronomers azimuth to the compass azimuth Phi, in
// degrees [0, 360), measured eastward from north (46).
func Azimuth(gamma float64) float64 {
	return angles.LimitDegrees(gamma + 180)
}

// SurfaceIncidence computes the incidence angle, in degrees, for a surface
// with the given slope from horizontal and azimuth rotation measured from
// south (47). theta is the topocentric zenith angle.
func SurfaceIncidence(theta, slope, gamma, azimuthRotation float64) float64 {
	t := angles.Deg2Rad(theta)
	w := angles.Deg2Rad(slope)
	return angles.Rad2Deg(math.Acos(math.Cos(t)*math.Cos(w) + math.Sin(w)*math.Sin(t)*math.Cos(angles.Deg2Rad(gamma-azimuthRotation))))
}
